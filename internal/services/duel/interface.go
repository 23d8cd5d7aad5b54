package duel

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/siguint/ayabot/internal/services/duel Service

// Service defines the interface for duel table operations
type Service interface {
	// Open creates a pending duel under the given key
	Open(ctx context.Context, input *OpenInput) (*OpenOutput, error)

	// RegisterThrow records a participant's throw and resolves the duel
	// once both throws are in
	RegisterThrow(ctx context.Context, input *RegisterThrowInput) (*RegisterThrowOutput, error)

	// CanAct reports whether a player may still throw in a duel
	CanAct(ctx context.Context, input *CanActInput) (*CanActOutput, error)

	// GetStandings returns all duel records ordered by wins
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// Save writes the lifetime duel records to the repository
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load replaces the in-memory records with the stored snapshot
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}
