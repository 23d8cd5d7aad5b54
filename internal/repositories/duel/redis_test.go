package duel

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/siguint/ayabot/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndLoadRecords() {
	records := map[string]*models.DuelRecord{
		"player-1": {PlayerID: "player-1", Name: "Player One", Wins: 3, Losses: 1},
		"player-2": {PlayerID: "player-2", Name: "Player Two", Wins: 1, Losses: 3},
	}

	err := s.repo.SaveRecords(context.Background(), &SaveRecordsInput{
		Records: records,
	})
	s.Require().NoError(err)

	output, err := s.repo.LoadRecords(context.Background(), &LoadRecordsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 2)

	s.Equal(records["player-1"], output.Records["player-1"])
	s.Equal(records["player-2"], output.Records["player-2"])
	s.NotEmpty(output.SnapshotID)
	s.False(output.SavedAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestSaveReplacesPriorSnapshot() {
	err := s.repo.SaveRecords(context.Background(), &SaveRecordsInput{
		Records: map[string]*models.DuelRecord{
			"player-1": {PlayerID: "player-1", Name: "Player One", Wins: 1, Losses: 0},
			"player-2": {PlayerID: "player-2", Name: "Player Two", Wins: 0, Losses: 1},
		},
	})
	s.Require().NoError(err)

	// Second snapshot drops player-2; the load must not resurrect them
	err = s.repo.SaveRecords(context.Background(), &SaveRecordsInput{
		Records: map[string]*models.DuelRecord{
			"player-1": {PlayerID: "player-1", Name: "Player One", Wins: 2, Losses: 0},
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.LoadRecords(context.Background(), &LoadRecordsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Records, 1)
	s.Equal(2, output.Records["player-1"].Wins)
}

func (s *RedisRepositoryTestSuite) TestLoadEmptyRecords() {
	output, err := s.repo.LoadRecords(context.Background(), &LoadRecordsInput{})
	s.Require().NoError(err)
	s.Empty(output.Records)
	s.Empty(output.SnapshotID)
}

func (s *RedisRepositoryTestSuite) TestSaveNilInput() {
	err := s.repo.SaveRecords(context.Background(), nil)
	s.Require().Error(err)
}
