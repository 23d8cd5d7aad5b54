package casino

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/siguint/ayabot/internal/services/casino Service

// Service defines the interface for slot machine ledger operations
type Service interface {
	// TrySpin consumes a spin allowance and credits the outcome's points
	TrySpin(ctx context.Context, input *TrySpinInput) (*TrySpinOutput, error)

	// RefreshAll restores every player's spin allowance to the daily cap
	RefreshAll(ctx context.Context, input *RefreshAllInput) (*RefreshAllOutput, error)

	// GetStandings returns all ledger entries ordered by points
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// Save writes the current ledger to the repository
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load replaces the in-memory ledger with the stored snapshot
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}
