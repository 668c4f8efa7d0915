package combats

import (
	"context"
	"testing"
	"time"

	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newSnapshot(id, playerID string) *Snapshot {
	return &Snapshot{
		ID:       id,
		PlayerID: playerID,
		Turn:     1,
		Player:   testutils.CreateTestPlayer(),
		Enemies:  testutils.CreateTestEnemies(30, 40),
	}
}

func TestInMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	repo := NewInMemoryRepository(&InMemoryRepoConfig{TimeProvider: clock})

	snapshot := newSnapshot("c1", "p1")
	require.NoError(t, repo.Create(ctx, snapshot))
	assert.Equal(t, clock.now, snapshot.CreatedAt)

	err := repo.Create(ctx, newSnapshot("c1", "p1"))
	assert.True(t, dnderr.IsAlreadyExists(err))

	got, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	// Stored state is never aliased
	got.Player.Health = 1
	snapshot.Enemies[0].Health = 1
	again, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 80, again.Player.Health)
	assert.Equal(t, 30, again.Enemies[0].Health)

	clock.now = clock.now.Add(time.Minute)
	again.Turn = 2
	require.NoError(t, repo.Update(ctx, again))

	updated, err := repo.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Turn)
	assert.Equal(t, snapshot.CreatedAt, updated.CreatedAt)
	assert.Equal(t, clock.now, updated.UpdatedAt)

	require.NoError(t, repo.Delete(ctx, "c1"))
	_, err = repo.Get(ctx, "c1")
	assert.True(t, dnderr.IsNotFound(err))
	assert.True(t, dnderr.IsNotFound(repo.Delete(ctx, "c1")))
	assert.True(t, dnderr.IsNotFound(repo.Update(ctx, again)))
}

func TestInMemoryRepository_TTL(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	repo := NewInMemoryRepository(&InMemoryRepoConfig{TimeProvider: clock, TTL: time.Hour})

	require.NoError(t, repo.Create(ctx, newSnapshot("c1", "p1")))

	clock.now = clock.now.Add(59 * time.Minute)
	_, err := repo.Get(ctx, "c1")
	require.NoError(t, err)

	clock.now = clock.now.Add(time.Minute)
	_, err = repo.Get(ctx, "c1")
	assert.True(t, dnderr.IsNotFound(err))

	// An expired ID can be reused
	assert.NoError(t, repo.Create(ctx, newSnapshot("c1", "p1")))
}

func TestInMemoryRepository_ListByPlayer(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryRepository(nil)

	require.NoError(t, repo.Create(ctx, newSnapshot("c2", "p1")))
	require.NoError(t, repo.Create(ctx, newSnapshot("c1", "p1")))
	require.NoError(t, repo.Create(ctx, newSnapshot("c3", "p2")))

	list, err := repo.ListByPlayer(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, "c2", list[1].ID)

	_, err = repo.ListByPlayer(ctx, "")
	assert.True(t, dnderr.IsInvalidArgument(err))
}

func TestSnapshot_Clone(t *testing.T) {
	var missing *Snapshot
	assert.Nil(t, missing.Clone())

	snapshot := newSnapshot("c1", "p1")
	clone := snapshot.Clone()
	clone.Enemies[1].Block = 9
	clone.Player.Energy = 0

	assert.Equal(t, 0, snapshot.Enemies[1].Block)
	assert.Equal(t, 3, snapshot.Player.Energy)
}
