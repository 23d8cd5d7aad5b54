package casino

import (
	"github.com/siguint/ayabot/internal/models"
	"github.com/siguint/ayabot/internal/slot"
)

// TrySpinInput contains parameters for a spin attempt
type TrySpinInput struct {
	// PlayerID is the Discord ID of the spinning player
	PlayerID string

	// PlayerName is the display name recorded on the ledger
	PlayerName string

	// RawValue is the slot machine's raw reel value
	RawValue int
}

// TrySpinOutput contains the result of a spin attempt
type TrySpinOutput struct {
	// Denied is true when the player had no spins remaining; nothing
	// was mutated in that case
	Denied bool

	// Outcome is the symbol combination the raw value decoded to
	Outcome slot.Outcome

	// PointsWon is the points credited by this spin
	PointsWon int

	// Points is the player's total points after the spin
	Points int

	// TotalSpins is the player's lifetime spin count
	TotalSpins int

	// SpinsRemaining is the player's allowance after the spin
	SpinsRemaining int
}

// RefreshAllInput contains parameters for refreshing spin allowances
type RefreshAllInput struct{}

// RefreshAllOutput contains the result of a refresh
type RefreshAllOutput struct {
	// PlayersRefreshed is the number of ledger entries touched
	PlayersRefreshed int
}

// GetStandingsInput contains parameters for retrieving standings
type GetStandingsInput struct{}

// GetStandingsOutput contains the ordered standings
type GetStandingsOutput struct {
	// Entries is sorted by points descending; ties keep the order
	// players first appeared on the ledger
	Entries []*models.LedgerEntry
}

// SaveInput contains parameters for saving the ledger
type SaveInput struct{}

// SaveOutput contains the result of a save
type SaveOutput struct {
	// PlayersSaved is the number of entries written
	PlayersSaved int
}

// LoadInput contains parameters for loading the ledger
type LoadInput struct{}

// LoadOutput contains the result of a load
type LoadOutput struct {
	// PlayersLoaded is the number of entries restored
	PlayersLoaded int
}
