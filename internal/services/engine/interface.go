package engine

import (
	"context"

	"github.com/siguint/ayabot/internal/services/casino"
	"github.com/siguint/ayabot/internal/services/duel"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/siguint/ayabot/internal/services/engine Service

// Service is the single surface the Discord handler talks to. It
// exposes both game stores plus the cross-store lifecycle operations.
type Service interface {
	// TrySpin plays one slot machine spin
	TrySpin(ctx context.Context, input *casino.TrySpinInput) (*casino.TrySpinOutput, error)

	// GetCasinoStandings returns the slot machine leaderboard
	GetCasinoStandings(ctx context.Context, input *casino.GetStandingsInput) (*casino.GetStandingsOutput, error)

	// OpenDuel creates a pending duel
	OpenDuel(ctx context.Context, input *duel.OpenInput) (*duel.OpenOutput, error)

	// RegisterThrow records a duel throw and resolves the duel when
	// both throws are in
	RegisterThrow(ctx context.Context, input *duel.RegisterThrowInput) (*duel.RegisterThrowOutput, error)

	// CanAct reports whether a player may still throw in a duel
	CanAct(ctx context.Context, input *duel.CanActInput) (*duel.CanActOutput, error)

	// GetDuelStandings returns the duel leaderboard
	GetDuelStandings(ctx context.Context, input *duel.GetStandingsInput) (*duel.GetStandingsOutput, error)

	// Refresh restores spin allowances and snapshots both stores
	Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error)

	// Save snapshots both stores
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load restores both stores from their snapshots
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
}
