package casino

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/siguint/ayabot/internal/models"
	casinoRepo "github.com/siguint/ayabot/internal/repositories/casino"
	"github.com/siguint/ayabot/internal/slot"
)

const defaultDailySpinCap = 3

// Config holds configuration for the casino service
type Config struct {
	// Repo persists ledger snapshots
	Repo casinoRepo.Repository

	// DailySpinCap is the spin allowance granted to new players and
	// restored by RefreshAll. Defaults to 3.
	DailySpinCap int
}

// service implements the Service interface. All ledger state lives in
// memory behind a single mutex; the repository is only touched by Save
// and Load.
type service struct {
	repo         casinoRepo.Repository
	dailySpinCap int

	mu      sync.Mutex
	entries map[string]*models.LedgerEntry
	// order tracks the sequence players first appeared, for stable
	// tie-breaking in standings
	order []string
}

// New creates a new casino service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepo
	}

	dailySpinCap := cfg.DailySpinCap
	if dailySpinCap <= 0 {
		dailySpinCap = defaultDailySpinCap
	}

	return &service{
		repo:         cfg.Repo,
		dailySpinCap: dailySpinCap,
		entries:      make(map[string]*models.LedgerEntry),
	}, nil
}

// TrySpin consumes a spin allowance and credits the outcome's points.
// A player with no spins remaining gets a Denied output and no state
// change; decoding and crediting happen in one critical section.
func (s *service) TrySpin(ctx context.Context, input *TrySpinInput) (*TrySpinOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.PlayerID == "" {
		return nil, ErrMissingPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[input.PlayerID]
	if ok && entry.SpinsRemaining <= 0 {
		return &TrySpinOutput{
			Denied:         true,
			Points:         entry.Points,
			TotalSpins:     entry.TotalSpins,
			SpinsRemaining: 0,
		}, nil
	}

	if !ok {
		entry = &models.LedgerEntry{
			PlayerID:       input.PlayerID,
			SpinsRemaining: s.dailySpinCap,
		}
		s.entries[input.PlayerID] = entry
		s.order = append(s.order, input.PlayerID)
	}

	outcome := slot.FromRaw(input.RawValue)
	pointsWon := outcome.Points()

	entry.Name = input.PlayerName
	entry.Points += pointsWon
	entry.TotalSpins++
	entry.SpinsRemaining--

	return &TrySpinOutput{
		Outcome:        outcome,
		PointsWon:      pointsWon,
		Points:         entry.Points,
		TotalSpins:     entry.TotalSpins,
		SpinsRemaining: entry.SpinsRemaining,
	}, nil
}

// RefreshAll restores every player's spin allowance to the daily cap.
// Points and spin counts are untouched, so the operation is idempotent.
func (s *service) RefreshAll(ctx context.Context, input *RefreshAllInput) (*RefreshAllOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range s.entries {
		entry.SpinsRemaining = s.dailySpinCap
	}

	return &RefreshAllOutput{
		PlayersRefreshed: len(s.entries),
	}, nil
}

// GetStandings returns all ledger entries ordered by points descending
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]*models.LedgerEntry, 0, len(s.order))
	for _, playerID := range s.order {
		entries = append(entries, s.entries[playerID].Clone())
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})

	return &GetStandingsOutput{
		Entries: entries,
	}, nil
}

// Save writes the current ledger to the repository. The state is copied
// under the lock; the repository call happens outside it.
func (s *service) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	entries := make(map[string]*models.LedgerEntry, len(s.entries))
	for playerID, entry := range s.entries {
		entries[playerID] = entry.Clone()
	}
	s.mu.Unlock()

	if err := s.repo.SaveLedger(ctx, &casinoRepo.SaveLedgerInput{
		Entries: entries,
	}); err != nil {
		return nil, fmt.Errorf("failed to save ledger: %w", err)
	}

	return &SaveOutput{
		PlayersSaved: len(entries),
	}, nil
}

// Load replaces the in-memory ledger with the stored snapshot. The
// standings order is rebuilt sorted by player ID, which keeps ties
// stable across restarts.
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	output, err := s.repo.LoadLedger(ctx, &casinoRepo.LoadLedgerInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	entries := make(map[string]*models.LedgerEntry, len(output.Entries))
	order := make([]string, 0, len(output.Entries))
	for playerID, entry := range output.Entries {
		entries[playerID] = entry.Clone()
		order = append(order, playerID)
	}
	sort.Strings(order)

	s.mu.Lock()
	s.entries = entries
	s.order = order
	s.mu.Unlock()

	return &LoadOutput{
		PlayersLoaded: len(entries),
	}, nil
}
