package models

// LedgerEntry tracks a player's casino progress
type LedgerEntry struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// Name is the display name of the player; the last seen value wins
	Name string

	// Points is the player's lifetime point total
	Points int

	// TotalSpins is the number of spins the player has ever taken
	TotalSpins int

	// SpinsRemaining is the number of spins left in the current day
	SpinsRemaining int
}

// Clone returns an independent copy of the entry
func (e *LedgerEntry) Clone() *LedgerEntry {
	if e == nil {
		return nil
	}

	clone := *e
	return &clone
}
