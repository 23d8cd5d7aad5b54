package duel

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/siguint/ayabot/internal/common/clock/mocks"
	"github.com/siguint/ayabot/internal/models"
	duelRepo "github.com/siguint/ayabot/internal/repositories/duel"
	"github.com/siguint/ayabot/internal/repositories/duel/mocks"
)

type DuelServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockRepository
	mockClock *clockMocks.MockClock
	now       time.Time
	svc       Service
}

func (s *DuelServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockRepository(s.ctrl)
	s.mockClock = clockMocks.NewMockClock(s.ctrl)

	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	svc, err := New(&Config{
		Repo:  s.mockRepo,
		Clock: s.mockClock,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *DuelServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDuelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DuelServiceTestSuite))
}

func (s *DuelServiceTestSuite) openDuel(key string) *OpenOutput {
	output, err := s.svc.Open(context.Background(), &OpenInput{
		Key:            key,
		FirstID:        "player-1",
		FirstName:      "Player One",
		SecondID:       "player-2",
		SecondName:     "Player Two",
		PenaltyMinutes: 5,
	})
	s.Require().NoError(err)
	return output
}

func (s *DuelServiceTestSuite) throw(key, playerID string, value int) *Verdict {
	output, err := s.svc.RegisterThrow(context.Background(), &RegisterThrowInput{
		Key:           key,
		PlayerID:      playerID,
		Value:         value,
		RollMessageID: fmt.Sprintf("roll-%s-%d", playerID, value),
	})
	s.Require().NoError(err)
	return output.Verdict
}

func (s *DuelServiceTestSuite) TestOpenCreatesDuelAndRecords() {
	output := s.openDuel("msg-1")

	s.False(output.Replaced)
	s.Equal("msg-1", output.Duel.Key)
	s.Equal("player-1", output.Duel.First.PlayerID)
	s.Equal("player-2", output.Duel.Second.PlayerID)
	s.Equal(5, output.Duel.PenaltyMinutes)
	s.Equal(s.now, output.Duel.CreatedAt)

	// Both participants appear in standings before anything resolves
	standings, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	s.Require().Len(standings.Records, 2)
	s.Equal(0, standings.Records[0].Wins)
	s.Equal(0, standings.Records[1].Wins)
}

func (s *DuelServiceTestSuite) TestOpenReusedKeyReplacesDuel() {
	s.openDuel("msg-1")
	s.throw("msg-1", "player-1", 6)

	output := s.openDuel("msg-1")
	s.True(output.Replaced)
	s.Nil(output.Duel.FirstThrow)
}

func (s *DuelServiceTestSuite) TestRegisterThrowUnknownDuel() {
	verdict := s.throw("msg-404", "player-1", 4)
	s.Equal(VerdictNone, verdict.Kind)
}

func (s *DuelServiceTestSuite) TestRegisterThrowNonParticipant() {
	s.openDuel("msg-1")

	verdict := s.throw("msg-1", "player-3", 4)
	s.Equal(VerdictNone, verdict.Kind)

	// The intruder's throw left the duel untouched
	canAct, err := s.svc.CanAct(context.Background(), &CanActInput{Key: "msg-1", PlayerID: "player-1"})
	s.Require().NoError(err)
	s.True(canAct.CanAct)
}

func (s *DuelServiceTestSuite) TestRegisterThrowFilledSlot() {
	s.openDuel("msg-1")

	s.Equal(VerdictPending, s.throw("msg-1", "player-1", 6).Kind)
	s.Equal(VerdictNone, s.throw("msg-1", "player-1", 1).Kind)

	// The second attempt did not overwrite the first throw
	verdict := s.throw("msg-1", "player-2", 3)
	s.Equal(VerdictDecisive, verdict.Kind)
	s.Equal(6, verdict.WinnerThrow)
}

func (s *DuelServiceTestSuite) TestRegisterThrowDecisive() {
	s.openDuel("msg-1")

	s.Equal(VerdictPending, s.throw("msg-1", "player-2", 2).Kind)
	verdict := s.throw("msg-1", "player-1", 5)

	s.Equal(VerdictDecisive, verdict.Kind)
	s.Equal("player-1", verdict.WinnerID)
	s.Equal("Player One", verdict.WinnerName)
	s.Equal("player-2", verdict.LoserID)
	s.Equal("Player Two", verdict.LoserName)
	s.Equal(5, verdict.WinnerThrow)
	s.Equal(2, verdict.LoserThrow)
	s.Equal(5, verdict.PenaltyMinutes)
	s.ElementsMatch([]string{"roll-player-2-2", "roll-player-1-5"}, verdict.RollMessageIDs)

	standings, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	s.Equal("player-1", standings.Records[0].PlayerID)
	s.Equal(1, standings.Records[0].Wins)
	s.Equal(0, standings.Records[0].Losses)
	s.Equal(1, standings.Records[1].Losses)

	// The duel is retired; further throws are no-ops
	s.Equal(VerdictNone, s.throw("msg-1", "player-1", 6).Kind)
}

func (s *DuelServiceTestSuite) TestRegisterThrowDraw() {
	s.openDuel("msg-1")

	s.throw("msg-1", "player-1", 4)
	verdict := s.throw("msg-1", "player-2", 4)

	s.Equal(VerdictDraw, verdict.Kind)
	s.Empty(verdict.WinnerID)
	s.Equal(4, verdict.WinnerThrow)
	s.Equal(4, verdict.LoserThrow)

	// A draw credits neither player
	standings, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	for _, record := range standings.Records {
		s.Equal(0, record.Wins)
		s.Equal(0, record.Losses)
	}

	s.Equal(VerdictNone, s.throw("msg-1", "player-1", 6).Kind)
}

func (s *DuelServiceTestSuite) TestConcurrentThrowsResolveOnce() {
	const rounds = 50

	for i := 0; i < rounds; i++ {
		key := fmt.Sprintf("msg-%d", i)
		s.openDuel(key)

		var wg sync.WaitGroup
		verdicts := make([]*Verdict, 2)
		for j, playerID := range []string{"player-1", "player-2"} {
			wg.Add(1)
			go func(j int, playerID string) {
				defer wg.Done()
				output, err := s.svc.RegisterThrow(context.Background(), &RegisterThrowInput{
					Key:      key,
					PlayerID: playerID,
					Value:    j + 1,
				})
				s.Require().NoError(err)
				verdicts[j] = output.Verdict
			}(j, playerID)
		}
		wg.Wait()

		// Exactly one of the racing throws resolves the duel
		kinds := map[VerdictKind]int{}
		for _, verdict := range verdicts {
			kinds[verdict.Kind]++
		}
		s.Equal(1, kinds[VerdictPending])
		s.Equal(1, kinds[VerdictDecisive])
	}

	// player-2 always threw the higher value
	standings, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	s.Equal("player-2", standings.Records[0].PlayerID)
	s.Equal(rounds, standings.Records[0].Wins)
	s.Equal(rounds, standings.Records[1].Losses)
}

func (s *DuelServiceTestSuite) TestCanAct() {
	s.openDuel("msg-1")

	cases := []struct {
		key      string
		playerID string
		want     bool
	}{
		{"msg-1", "player-1", true},
		{"msg-1", "player-2", true},
		{"msg-1", "player-3", false},
		{"msg-404", "player-1", false},
	}
	for _, tc := range cases {
		output, err := s.svc.CanAct(context.Background(), &CanActInput{Key: tc.key, PlayerID: tc.playerID})
		s.Require().NoError(err)
		s.Equal(tc.want, output.CanAct, "key=%s player=%s", tc.key, tc.playerID)
	}

	s.throw("msg-1", "player-1", 3)

	output, err := s.svc.CanAct(context.Background(), &CanActInput{Key: "msg-1", PlayerID: "player-1"})
	s.Require().NoError(err)
	s.False(output.CanAct)

	output, err = s.svc.CanAct(context.Background(), &CanActInput{Key: "msg-1", PlayerID: "player-2"})
	s.Require().NoError(err)
	s.True(output.CanAct)
}

func (s *DuelServiceTestSuite) TestGetStandingsOrdering() {
	s.openDuel("msg-1")
	s.throw("msg-1", "player-1", 6)
	s.throw("msg-1", "player-2", 1)

	// A third player enters and also beats player-2
	_, err := s.svc.Open(context.Background(), &OpenInput{
		Key:            "msg-2",
		FirstID:        "player-3",
		FirstName:      "Player Three",
		SecondID:       "player-2",
		SecondName:     "Player Two",
		PenaltyMinutes: 2,
	})
	s.Require().NoError(err)
	s.throw("msg-2", "player-3", 5)
	s.throw("msg-2", "player-2", 2)

	standings, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	s.Require().Len(standings.Records, 3)

	// player-1 and player-3 are tied on wins; player-1 appeared first
	s.Equal("player-1", standings.Records[0].PlayerID)
	s.Equal("player-3", standings.Records[1].PlayerID)
	s.Equal("player-2", standings.Records[2].PlayerID)
	s.Equal(2, standings.Records[2].Losses)
}

func (s *DuelServiceTestSuite) TestSaveWritesRecords() {
	s.openDuel("msg-1")
	s.throw("msg-1", "player-1", 6)
	s.throw("msg-1", "player-2", 1)

	s.mockRepo.EXPECT().
		SaveRecords(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *duelRepo.SaveRecordsInput) error {
			s.Require().Len(input.Records, 2)
			s.Equal(1, input.Records["player-1"].Wins)
			s.Equal(1, input.Records["player-2"].Losses)
			return nil
		})

	output, err := s.svc.Save(context.Background(), &SaveInput{})
	s.Require().NoError(err)
	s.Equal(2, output.PlayersSaved)
}

func (s *DuelServiceTestSuite) TestLoadReplacesRecords() {
	s.mockRepo.EXPECT().
		LoadRecords(gomock.Any(), gomock.Any()).
		Return(&duelRepo.LoadRecordsOutput{
			Records: map[string]*models.DuelRecord{
				"player-1": {PlayerID: "player-1", Name: "Player One", Wins: 4, Losses: 2},
				"player-2": {PlayerID: "player-2", Name: "Player Two", Wins: 4, Losses: 1},
			},
		}, nil)

	output, err := s.svc.Load(context.Background(), &LoadInput{})
	s.Require().NoError(err)
	s.Equal(2, output.PlayersLoaded)

	standings, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	s.Require().Len(standings.Records, 2)
	// Tied restored players come back in player ID order
	s.Equal("player-1", standings.Records[0].PlayerID)
	s.Equal("player-2", standings.Records[1].PlayerID)
}

func (s *DuelServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.Require().ErrorIs(err, ErrNilRepo)

	_, err = New(&Config{Repo: s.mockRepo})
	s.Require().ErrorIs(err, ErrNilClock)
}
