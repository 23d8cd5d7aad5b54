package casino

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/siguint/ayabot/internal/repositories/casino Repository

// Repository persists casino ledger snapshots
type Repository interface {
	// SaveLedger replaces the stored snapshot with the given entries
	SaveLedger(ctx context.Context, input *SaveLedgerInput) error

	// LoadLedger retrieves the most recent snapshot
	LoadLedger(ctx context.Context, input *LoadLedgerInput) (*LoadLedgerOutput, error)
}
