package duel

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/siguint/ayabot/internal/common/clock"
	"github.com/siguint/ayabot/internal/models"
	duelRepo "github.com/siguint/ayabot/internal/repositories/duel"
)

// Config holds configuration for the duel service
type Config struct {
	// Repo persists lifetime duel record snapshots
	Repo duelRepo.Repository

	// Clock provides the current time
	Clock clock.Clock
}

// service implements the Service interface. Live duels and lifetime
// records share one mutex; every operation is a single critical
// section, so a verdict is always computed against the same state that
// produced it.
type service struct {
	repo  duelRepo.Repository
	clock clock.Clock

	mu    sync.Mutex
	duels map[string]*models.Duel
	// records holds lifetime win/loss counts; order tracks the sequence
	// players first appeared, for stable tie-breaking in standings
	records map[string]*models.DuelRecord
	order   []string
}

// New creates a new duel service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repo == nil {
		return nil, ErrNilRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		repo:    cfg.Repo,
		clock:   cfg.Clock,
		duels:   make(map[string]*models.Duel),
		records: make(map[string]*models.DuelRecord),
	}, nil
}

// ensureRecord lazily creates a lifetime record for a player and keeps
// the snapshotted display name current. Caller must hold s.mu.
func (s *service) ensureRecord(playerID, name string) {
	record, ok := s.records[playerID]
	if !ok {
		record = &models.DuelRecord{PlayerID: playerID}
		s.records[playerID] = record
		s.order = append(s.order, playerID)
	}
	record.Name = name
}

// Open creates a pending duel under the given key. Both participants
// get a lifetime record immediately so standings are total even before
// the first resolution. An already-used key is silently overwritten.
func (s *service) Open(ctx context.Context, input *OpenInput) (*OpenOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Key == "" {
		return nil, ErrMissingKey
	}

	if input.FirstID == "" || input.SecondID == "" {
		return nil, ErrMissingPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced := s.duels[input.Key]

	duel := &models.Duel{
		Key: input.Key,
		First: models.Participant{
			PlayerID: input.FirstID,
			Name:     input.FirstName,
		},
		Second: models.Participant{
			PlayerID: input.SecondID,
			Name:     input.SecondName,
		},
		PenaltyMinutes: input.PenaltyMinutes,
		CreatedAt:      s.clock.Now(),
	}
	s.duels[input.Key] = duel

	s.ensureRecord(input.FirstID, input.FirstName)
	s.ensureRecord(input.SecondID, input.SecondName)

	return &OpenOutput{
		Duel:     duel.Clone(),
		Replaced: replaced,
	}, nil
}

// RegisterThrow records a participant's throw. The slot check, the
// write, and the resolution all happen under one lock acquisition, so
// records are updated exactly once per duel no matter how the two
// throws race.
func (s *service) RegisterThrow(ctx context.Context, input *RegisterThrowInput) (*RegisterThrowOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Key == "" {
		return nil, ErrMissingKey
	}

	if input.PlayerID == "" {
		return nil, ErrMissingPlayerID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	noop := &RegisterThrowOutput{Verdict: &Verdict{Kind: VerdictNone}}

	duel, ok := s.duels[input.Key]
	if !ok {
		return noop, nil
	}

	var slot **int
	switch input.PlayerID {
	case duel.First.PlayerID:
		slot = &duel.FirstThrow
	case duel.Second.PlayerID:
		slot = &duel.SecondThrow
	default:
		return noop, nil
	}

	if *slot != nil {
		return noop, nil
	}

	value := input.Value
	*slot = &value
	if input.RollMessageID != "" {
		duel.RollMessageIDs = append(duel.RollMessageIDs, input.RollMessageID)
	}

	if duel.FirstThrow == nil || duel.SecondThrow == nil {
		return &RegisterThrowOutput{Verdict: &Verdict{Kind: VerdictPending}}, nil
	}

	return &RegisterThrowOutput{Verdict: s.resolve(duel)}, nil
}

// resolve compares the two throws, updates records on a decisive
// outcome, and retires the duel. Caller must hold s.mu and have both
// throws recorded.
func (s *service) resolve(duel *models.Duel) *Verdict {
	delete(s.duels, duel.Key)

	first := *duel.FirstThrow
	second := *duel.SecondThrow

	verdict := &Verdict{
		PenaltyMinutes: duel.PenaltyMinutes,
		RollMessageIDs: append([]string(nil), duel.RollMessageIDs...),
	}

	if first == second {
		verdict.Kind = VerdictDraw
		verdict.WinnerThrow = first
		verdict.LoserThrow = second
		return verdict
	}

	winner, loser := duel.First, duel.Second
	winnerThrow, loserThrow := first, second
	if second > first {
		winner, loser = duel.Second, duel.First
		winnerThrow, loserThrow = second, first
	}

	s.records[winner.PlayerID].Wins++
	s.records[loser.PlayerID].Losses++

	verdict.Kind = VerdictDecisive
	verdict.WinnerID = winner.PlayerID
	verdict.WinnerName = winner.Name
	verdict.LoserID = loser.PlayerID
	verdict.LoserName = loser.Name
	verdict.WinnerThrow = winnerThrow
	verdict.LoserThrow = loserThrow

	return verdict
}

// CanAct reports whether a player may still throw in a duel
func (s *service) CanAct(ctx context.Context, input *CanActInput) (*CanActOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	duel, ok := s.duels[input.Key]
	if !ok {
		return &CanActOutput{}, nil
	}

	var canAct bool
	switch input.PlayerID {
	case duel.First.PlayerID:
		canAct = duel.FirstThrow == nil
	case duel.Second.PlayerID:
		canAct = duel.SecondThrow == nil
	}

	return &CanActOutput{CanAct: canAct}, nil
}

// GetStandings returns all duel records ordered by wins descending
func (s *service) GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]*models.DuelRecord, 0, len(s.order))
	for _, playerID := range s.order {
		records = append(records, s.records[playerID].Clone())
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Wins > records[j].Wins
	})

	return &GetStandingsOutput{
		Records: records,
	}, nil
}

// Save writes the lifetime records to the repository. Open duels are
// announcement-scoped and deliberately not persisted.
func (s *service) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	records := make(map[string]*models.DuelRecord, len(s.records))
	for playerID, record := range s.records {
		records[playerID] = record.Clone()
	}
	s.mu.Unlock()

	if err := s.repo.SaveRecords(ctx, &duelRepo.SaveRecordsInput{
		Records: records,
	}); err != nil {
		return nil, fmt.Errorf("failed to save duel records: %w", err)
	}

	return &SaveOutput{
		PlayersSaved: len(records),
	}, nil
}

// Load replaces the in-memory records with the stored snapshot. The
// standings order is rebuilt sorted by player ID, which keeps ties
// stable across restarts. Live duels are left alone.
func (s *service) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	output, err := s.repo.LoadRecords(ctx, &duelRepo.LoadRecordsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to load duel records: %w", err)
	}

	records := make(map[string]*models.DuelRecord, len(output.Records))
	order := make([]string, 0, len(output.Records))
	for playerID, record := range output.Records {
		records[playerID] = record.Clone()
		order = append(order, playerID)
	}
	sort.Strings(order)

	s.mu.Lock()
	s.records = records
	s.order = order
	s.mu.Unlock()

	return &LoadOutput{
		PlayersLoaded: len(records),
	}, nil
}
