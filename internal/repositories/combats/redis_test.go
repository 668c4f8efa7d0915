package combats_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/repositories/combats"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/repositories/combats/mocks"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/testutils"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testTTL = time.Hour

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         combats.Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
	now          time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	s.repo = combats.NewRedisRepository(&combats.RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
		TTL:          testTTL,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) snapshot(id string) *combats.Snapshot {
	return &combats.Snapshot{
		ID:       id,
		PlayerID: "player-1",
		Turn:     1,
		Player:   testutils.CreateTestPlayer(),
		Enemies:  testutils.CreateTestEnemies(40),
	}
}

func (s *RedisRepoTestSuite) encode(snapshot *combats.Snapshot) []byte {
	data, err := json.Marshal(snapshot)
	s.Require().NoError(err)
	return data
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	s.timeProvider.EXPECT().Now().Return(s.now).Times(2)

	// Happy path
	snapshot := s.snapshot("combat-1")
	expected := s.snapshot("combat-1")
	expected.CreatedAt = s.now
	expected.UpdatedAt = s.now

	s.mock.ExpectSetNX("combat:combat-1", s.encode(expected), testTTL).SetVal(true)
	s.mock.ExpectSAdd("player:player-1:combats", "combat-1").SetVal(1)

	s.NoError(s.repo.Create(ctx, snapshot))
	s.Equal(s.now, snapshot.CreatedAt)

	// Already stored
	s.mock.ExpectSetNX("combat:combat-1", s.encode(expected), testTTL).SetVal(false)

	err := s.repo.Create(ctx, s.snapshot("combat-1"))
	s.True(dnderr.IsAlreadyExists(err))

	// Input validation
	s.True(dnderr.IsInvalidArgument(s.repo.Create(ctx, nil)))
	s.True(dnderr.IsInvalidArgument(s.repo.Create(ctx, &combats.Snapshot{ID: "x"})))
}

func (s *RedisRepoTestSuite) TestCreate_DependencyError() {
	s.timeProvider.EXPECT().Now().Return(s.now)
	expected := s.snapshot("combat-1")
	expected.CreatedAt = s.now
	expected.UpdatedAt = s.now

	s.mock.ExpectSetNX("combat:combat-1", s.encode(expected), testTTL).SetErr(errors.New("redis error"))

	err := s.repo.Create(context.Background(), s.snapshot("combat-1"))
	s.Error(err)
	s.Equal(dnderr.CodeInternal, dnderr.GetCode(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	stored := s.snapshot("combat-1")
	stored.CreatedAt = s.now
	stored.UpdatedAt = s.now

	// Happy path
	s.mock.ExpectGet("combat:combat-1").SetVal(string(s.encode(stored)))

	got, err := s.repo.Get(ctx, "combat-1")
	s.Require().NoError(err)
	s.Equal(stored, got)

	// Missing
	s.mock.ExpectGet("combat:combat-2").RedisNil()

	_, err = s.repo.Get(ctx, "combat-2")
	s.True(dnderr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("combat:combat-1").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "combat-1")
	s.Error(err)
	s.False(dnderr.IsNotFound(err))

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestUpdate() {
	ctx := context.Background()
	later := s.now.Add(time.Minute)
	s.timeProvider.EXPECT().Now().Return(later).Times(2)

	snapshot := s.snapshot("combat-1")
	snapshot.CreatedAt = s.now
	snapshot.Turn = 2

	expected := s.snapshot("combat-1")
	expected.CreatedAt = s.now
	expected.UpdatedAt = later
	expected.Turn = 2

	// Happy path
	s.mock.ExpectSetXX("combat:combat-1", s.encode(expected), testTTL).SetVal(true)

	s.NoError(s.repo.Update(ctx, snapshot))
	s.Equal(later, snapshot.UpdatedAt)

	// Expired or deleted
	s.mock.ExpectSetXX("combat:combat-1", s.encode(expected), testTTL).SetVal(false)

	s.True(dnderr.IsNotFound(s.repo.Update(ctx, snapshot)))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	stored := s.snapshot("combat-1")

	// Happy path
	s.mock.ExpectGet("combat:combat-1").SetVal(string(s.encode(stored)))
	s.mock.ExpectDel("combat:combat-1").SetVal(1)
	s.mock.ExpectSRem("player:player-1:combats", "combat-1").SetVal(1)

	s.NoError(s.repo.Delete(ctx, "combat-1"))

	// Dependency error
	s.mock.ExpectGet("combat:combat-1").SetErr(errors.New("redis error"))

	s.Error(s.repo.Delete(ctx, "combat-1"))

	// Input validation
	s.True(dnderr.IsInvalidArgument(s.repo.Delete(ctx, "")))
}

func (s *RedisRepoTestSuite) TestListByPlayer() {
	ctx := context.Background()
	first := s.snapshot("combat-1")
	second := s.snapshot("combat-3")

	// Happy path, with one expired snapshot still indexed
	s.mock.ExpectSMembers("player:player-1:combats").SetVal([]string{"combat-1", "combat-2", "combat-3"})
	s.mock.ExpectMGet("combat:combat-1", "combat:combat-2", "combat:combat-3").
		SetVal([]interface{}{string(s.encode(first)), nil, string(s.encode(second))})
	s.mock.ExpectSRem("player:player-1:combats", "combat-2").SetVal(1)

	snapshots, err := s.repo.ListByPlayer(ctx, "player-1")
	s.Require().NoError(err)
	s.Require().Len(snapshots, 2)
	s.Equal("combat-1", snapshots[0].ID)
	s.Equal("combat-3", snapshots[1].ID)

	// Nothing indexed
	s.mock.ExpectSMembers("player:player-2:combats").SetVal([]string{})

	snapshots, err = s.repo.ListByPlayer(ctx, "player-2")
	s.NoError(err)
	s.Empty(snapshots)

	// Dependency error
	s.mock.ExpectSMembers("player:player-1:combats").SetErr(errors.New("redis error"))

	_, err = s.repo.ListByPlayer(ctx, "player-1")
	s.Error(err)

	// Input validation
	_, err = s.repo.ListByPlayer(ctx, "")
	s.True(dnderr.IsInvalidArgument(err))
}
