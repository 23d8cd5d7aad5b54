package casino

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/siguint/ayabot/internal/models"
	casinoRepo "github.com/siguint/ayabot/internal/repositories/casino"
	"github.com/siguint/ayabot/internal/repositories/casino/mocks"
	"github.com/siguint/ayabot/internal/slot"
)

type CasinoServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockRepository
	svc      Service
}

func (s *CasinoServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockRepository(s.ctrl)

	svc, err := New(&Config{
		Repo: s.mockRepo,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *CasinoServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCasinoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CasinoServiceTestSuite))
}

func (s *CasinoServiceTestSuite) spin(playerID, name string, rawValue int) *TrySpinOutput {
	output, err := s.svc.TrySpin(context.Background(), &TrySpinInput{
		PlayerID:   playerID,
		PlayerName: name,
		RawValue:   rawValue,
	})
	s.Require().NoError(err)
	return output
}

func (s *CasinoServiceTestSuite) TestTrySpinCreatesPlayer() {
	output := s.spin("player-1", "Player One", 64)

	s.False(output.Denied)
	s.Equal(slot.OutcomeSevens, output.Outcome)
	s.Equal(5, output.PointsWon)
	s.Equal(5, output.Points)
	s.Equal(1, output.TotalSpins)
	s.Equal(2, output.SpinsRemaining)
}

func (s *CasinoServiceTestSuite) TestTrySpinUnknownRawValueConsumesSpin() {
	output := s.spin("player-1", "Player One", 17)

	s.False(output.Denied)
	s.Equal(slot.OutcomeNothing, output.Outcome)
	s.Equal(0, output.PointsWon)
	s.Equal(0, output.Points)
	s.Equal(1, output.TotalSpins)
	s.Equal(2, output.SpinsRemaining)
}

func (s *CasinoServiceTestSuite) TestTrySpinDeniedAtCap() {
	for i := 0; i < 3; i++ {
		output := s.spin("player-1", "Player One", 1)
		s.False(output.Denied)
	}

	output := s.spin("player-1", "Player One", 64)
	s.True(output.Denied)
	s.Equal(3, output.Points)
	s.Equal(3, output.TotalSpins)
	s.Equal(0, output.SpinsRemaining)

	// A denied spin changes nothing; the next denied attempt sees the
	// same totals
	again := s.spin("player-1", "Player One", 64)
	s.True(again.Denied)
	s.Equal(3, again.Points)
	s.Equal(3, again.TotalSpins)
}

func (s *CasinoServiceTestSuite) TestTrySpinMissingPlayerID() {
	_, err := s.svc.TrySpin(context.Background(), &TrySpinInput{
		PlayerName: "Nobody",
		RawValue:   1,
	})
	s.Require().ErrorIs(err, ErrMissingPlayerID)
}

func (s *CasinoServiceTestSuite) TestTrySpinNilInput() {
	_, err := s.svc.TrySpin(context.Background(), nil)
	s.Require().ErrorIs(err, ErrNilInput)
}

func (s *CasinoServiceTestSuite) TestRefreshAllRestoresAllowance() {
	for i := 0; i < 3; i++ {
		s.spin("player-1", "Player One", 1)
	}
	s.True(s.spin("player-1", "Player One", 1).Denied)

	output, err := s.svc.RefreshAll(context.Background(), &RefreshAllInput{})
	s.Require().NoError(err)
	s.Equal(1, output.PlayersRefreshed)

	// Points and lifetime spins survive the refresh
	spin := s.spin("player-1", "Player One", 1)
	s.False(spin.Denied)
	s.Equal(4, spin.Points)
	s.Equal(4, spin.TotalSpins)
	s.Equal(2, spin.SpinsRemaining)
}

func (s *CasinoServiceTestSuite) TestRefreshAllIdempotent() {
	s.spin("player-1", "Player One", 1)

	for i := 0; i < 2; i++ {
		_, err := s.svc.RefreshAll(context.Background(), &RefreshAllInput{})
		s.Require().NoError(err)
	}

	spin := s.spin("player-1", "Player One", 1)
	s.Equal(2, spin.SpinsRemaining)
	s.Equal(2, spin.Points)
}

func (s *CasinoServiceTestSuite) TestOutcomeTableCredits() {
	// A higher cap so one player can see every outcome once
	svc, err := New(&Config{
		Repo:         s.mockRepo,
		DailySpinCap: 5,
	})
	s.Require().NoError(err)

	for _, rawValue := range []int{1, 22, 43, 64, 17} {
		output, err := svc.TrySpin(context.Background(), &TrySpinInput{
			PlayerID:   "player-1",
			PlayerName: "Player One",
			RawValue:   rawValue,
		})
		s.Require().NoError(err)
		s.False(output.Denied)
	}

	standings, err := svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	s.Equal(11, standings.Entries[0].Points)
	s.Equal(5, standings.Entries[0].TotalSpins)
}

func (s *CasinoServiceTestSuite) TestGetStandingsOrdering() {
	s.spin("player-1", "Player One", 1)   // 1 point
	s.spin("player-2", "Player Two", 64)  // 5 points
	s.spin("player-3", "Player Three", 1) // 1 point, ties player-1

	output, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 3)

	s.Equal("player-2", output.Entries[0].PlayerID)
	// Tied players keep the order they first appeared
	s.Equal("player-1", output.Entries[1].PlayerID)
	s.Equal("player-3", output.Entries[2].PlayerID)
}

func (s *CasinoServiceTestSuite) TestGetStandingsReturnsCopies() {
	s.spin("player-1", "Player One", 1)

	output, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	output.Entries[0].Points = 999

	again, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	s.Equal(1, again.Entries[0].Points)
}

func (s *CasinoServiceTestSuite) TestConcurrentSpinsRespectCap() {
	const attempts = 20

	var wg sync.WaitGroup
	results := make([]*TrySpinOutput, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			output, err := s.svc.TrySpin(context.Background(), &TrySpinInput{
				PlayerID:   "player-1",
				PlayerName: "Player One",
				RawValue:   1,
			})
			s.Require().NoError(err)
			results[i] = output
		}(i)
	}
	wg.Wait()

	granted := 0
	for _, output := range results {
		if !output.Denied {
			granted++
		}
	}
	s.Equal(3, granted)

	standings, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	s.Equal(3, standings.Entries[0].TotalSpins)
	s.Equal(3, standings.Entries[0].Points)
}

func (s *CasinoServiceTestSuite) TestSaveWritesCurrentLedger() {
	s.spin("player-1", "Player One", 64)

	s.mockRepo.EXPECT().
		SaveLedger(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *casinoRepo.SaveLedgerInput) error {
			s.Require().Len(input.Entries, 1)
			s.Equal(5, input.Entries["player-1"].Points)
			return nil
		})

	output, err := s.svc.Save(context.Background(), &SaveInput{})
	s.Require().NoError(err)
	s.Equal(1, output.PlayersSaved)
}

func (s *CasinoServiceTestSuite) TestLoadReplacesLedger() {
	s.spin("player-9", "Stale Player", 1)

	s.mockRepo.EXPECT().
		LoadLedger(gomock.Any(), gomock.Any()).
		Return(&casinoRepo.LoadLedgerOutput{
			Entries: map[string]*models.LedgerEntry{
				"player-1": {PlayerID: "player-1", Name: "Player One", Points: 11, TotalSpins: 5, SpinsRemaining: 1},
				"player-2": {PlayerID: "player-2", Name: "Player Two", Points: 11, TotalSpins: 4, SpinsRemaining: 0},
			},
		}, nil)

	output, err := s.svc.Load(context.Background(), &LoadInput{})
	s.Require().NoError(err)
	s.Equal(2, output.PlayersLoaded)

	standings, err := s.svc.GetStandings(context.Background(), &GetStandingsInput{})
	s.Require().NoError(err)
	s.Require().Len(standings.Entries, 2)
	// The stale in-memory player is gone; tied restored players come
	// back in player ID order
	s.Equal("player-1", standings.Entries[0].PlayerID)
	s.Equal("player-2", standings.Entries[1].PlayerID)
}

func (s *CasinoServiceTestSuite) TestNewNilConfig() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)
}

func (s *CasinoServiceTestSuite) TestNewNilRepo() {
	_, err := New(&Config{})
	s.Require().ErrorIs(err, ErrNilRepo)
}
