package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/siguint/ayabot/internal/dice Roller

// Roller produces opaque roll values for the games. Handlers run on
// concurrent goroutines, so implementations must be safe for parallel use.
type Roller interface {
	Roll(sides int) int
}

// Config for the dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// randRoller implements Roller with math/rand behind a mutex; rand.Rand
// is not safe for concurrent use.
type randRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *randRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &randRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random roll in [1, sides]
func (r *randRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}
