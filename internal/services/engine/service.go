package engine

import (
	"context"
	"fmt"

	"github.com/siguint/ayabot/internal/services/casino"
	"github.com/siguint/ayabot/internal/services/duel"
)

// Config holds configuration for the engine
type Config struct {
	// Casino is the slot machine ledger store
	Casino casino.Service

	// Duel is the duel table store
	Duel duel.Service
}

// service implements the Service interface by composing the two stores.
// It holds no state of its own; each store serializes its own
// operations, and the engine never needs both locked at once.
type service struct {
	casino casino.Service
	duel   duel.Service
}

// New creates a new engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Casino == nil {
		return nil, ErrNilCasino
	}

	if cfg.Duel == nil {
		return nil, ErrNilDuel
	}

	return &service{
		casino: cfg.Casino,
		duel:   cfg.Duel,
	}, nil
}

// TrySpin plays one slot machine spin
func (s *service) TrySpin(ctx context.Context, input *casino.TrySpinInput) (*casino.TrySpinOutput, error) {
	return s.casino.TrySpin(ctx, input)
}

// GetCasinoStandings returns the slot machine leaderboard
func (s *service) GetCasinoStandings(ctx context.Context, input *casino.GetStandingsInput) (*casino.GetStandingsOutput, error) {
	return s.casino.GetStandings(ctx, input)
}

// OpenDuel creates a pending duel
func (s *service) OpenDuel(ctx context.Context, input *duel.OpenInput) (*duel.OpenOutput, error) {
	return s.duel.Open(ctx, input)
}

// RegisterThrow records a duel throw
func (s *service) RegisterThrow(ctx context.Context, input *duel.RegisterThrowInput) (*duel.RegisterThrowOutput, error) {
	return s.duel.RegisterThrow(ctx, input)
}

// CanAct reports whether a player may still throw in a duel
func (s *service) CanAct(ctx context.Context, input *duel.CanActInput) (*duel.CanActOutput, error) {
	return s.duel.CanAct(ctx, input)
}

// GetDuelStandings returns the duel leaderboard
func (s *service) GetDuelStandings(ctx context.Context, input *duel.GetStandingsInput) (*duel.GetStandingsOutput, error) {
	return s.duel.GetStandings(ctx, input)
}

// Refresh restores every player's spin allowance and snapshots both
// stores. This is the body of the daily tick and of the maintainer's
// manual refresh.
func (s *service) Refresh(ctx context.Context, input *RefreshInput) (*RefreshOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	refreshOutput, err := s.casino.RefreshAll(ctx, &casino.RefreshAllInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to refresh spin allowances: %w", err)
	}

	if _, err := s.Save(ctx, &SaveInput{}); err != nil {
		return nil, err
	}

	return &RefreshOutput{
		PlayersRefreshed: refreshOutput.PlayersRefreshed,
	}, nil
}

// Save snapshots both stores
func (s *service) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	ledgerOutput, err := s.casino.Save(ctx, &casino.SaveInput{})
	if err != nil {
		return nil, err
	}

	duelOutput, err := s.duel.Save(ctx, &duel.SaveInput{})
	if err != nil {
		return nil, err
	}

	return &SaveOutput{
		LedgerPlayersSaved: ledgerOutput.PlayersSaved,
		DuelPlayersSaved:   duelOutput.PlayersSaved,
	}, nil
}

// Load restores both stores from their snapshots
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	ledgerOutput, err := s.casino.Load(ctx, &casino.LoadInput{})
	if err != nil {
		return nil, err
	}

	duelOutput, err := s.duel.Load(ctx, &duel.LoadInput{})
	if err != nil {
		return nil, err
	}

	return &LoadOutput{
		LedgerPlayersLoaded: ledgerOutput.PlayersLoaded,
		DuelPlayersLoaded:   duelOutput.PlayersLoaded,
	}, nil
}
