package duel

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/siguint/ayabot/internal/repositories/duel Repository

// Repository persists lifetime duel record snapshots. Open duels are
// announcement-scoped and intentionally never stored.
type Repository interface {
	// SaveRecords replaces the stored snapshot with the given records
	SaveRecords(ctx context.Context, input *SaveRecordsInput) error

	// LoadRecords retrieves the most recent snapshot
	LoadRecords(ctx context.Context, input *LoadRecordsInput) (*LoadRecordsOutput, error)
}
