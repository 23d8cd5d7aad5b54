package engine

// RefreshInput contains parameters for the daily refresh
type RefreshInput struct{}

// RefreshOutput contains the result of a refresh
type RefreshOutput struct {
	// PlayersRefreshed is the number of ledger entries whose spin
	// allowance was restored
	PlayersRefreshed int
}

// SaveInput contains parameters for snapshotting both stores
type SaveInput struct{}

// SaveOutput contains the result of a snapshot
type SaveOutput struct {
	// LedgerPlayersSaved is the number of ledger entries written
	LedgerPlayersSaved int

	// DuelPlayersSaved is the number of duel records written
	DuelPlayersSaved int
}

// LoadInput contains parameters for restoring both stores
type LoadInput struct{}

// LoadOutput contains the result of a restore
type LoadOutput struct {
	// LedgerPlayersLoaded is the number of ledger entries restored
	LedgerPlayersLoaded int

	// DuelPlayersLoaded is the number of duel records restored
	DuelPlayersLoaded int
}
