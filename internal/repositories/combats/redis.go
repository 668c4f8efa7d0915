package combats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	// Key patterns
	combatKeyPrefix = "combat:"
	playerCombatKey = "player:%s:combats"

	// DefaultTTL bounds how long an abandoned combat survives
	DefaultTTL = 24 * time.Hour
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
	TTL          time.Duration
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
	ttl          time.Duration
}

// NewRedisRepository creates a new Redis-backed combat repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("redis client is required")
	}

	tp := cfg.TimeProvider
	if tp == nil {
		tp = NewRealTimeProvider()
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client:       cfg.Client,
		timeProvider: tp,
		ttl:          ttl,
	}
}

func combatKey(id string) string {
	return combatKeyPrefix + id
}

func playerCombatsKey(playerID string) string {
	return fmt.Sprintf(playerCombatKey, playerID)
}

func (r *redisRepository) Create(ctx context.Context, snapshot *Snapshot) error {
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	now := r.timeProvider.Now()
	snapshot.CreatedAt = now
	snapshot.UpdatedAt = now

	data, err := json.Marshal(snapshot)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal combat snapshot")
	}

	created, err := r.client.SetNX(ctx, combatKey(snapshot.ID), data, r.ttl).Result()
	if err != nil {
		return repositories.NewStorageError(err, "create", recordKind)
	}
	if !created {
		return repositories.NewRecordExistsError(recordKind, snapshot.ID)
	}

	if err := r.client.SAdd(ctx, playerCombatsKey(snapshot.PlayerID), snapshot.ID).Err(); err != nil {
		return repositories.NewStorageError(err, "index", recordKind)
	}

	return nil
}

func (r *redisRepository) Get(ctx context.Context, id string) (*Snapshot, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("combat ID is required")
	}

	data, err := r.client.Get(ctx, combatKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repositories.NewRecordNotFoundError(recordKind, id)
		}
		return nil, repositories.NewStorageError(err, "get", recordKind)
	}

	return decode(data)
}

func (r *redisRepository) Update(ctx context.Context, snapshot *Snapshot) error {
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	snapshot.UpdatedAt = r.timeProvider.Now()

	data, err := json.Marshal(snapshot)
	if err != nil {
		return dnderr.Wrap(err, "failed to marshal combat snapshot")
	}

	// XX refuses to resurrect a combat that expired or was deleted
	updated, err := r.client.SetXX(ctx, combatKey(snapshot.ID), data, r.ttl).Result()
	if err != nil {
		return repositories.NewStorageError(err, "update", recordKind)
	}
	if !updated {
		return repositories.NewRecordNotFoundError(recordKind, snapshot.ID)
	}

	return nil
}

func (r *redisRepository) Delete(ctx context.Context, id string) error {
	snapshot, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, combatKey(id))
	pipe.SRem(ctx, playerCombatsKey(snapshot.PlayerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return repositories.NewStorageError(err, "delete", recordKind)
	}

	return nil
}

func (r *redisRepository) ListByPlayer(ctx context.Context, playerID string) ([]*Snapshot, error) {
	if playerID == "" {
		return nil, dnderr.InvalidArgument("player ID is required")
	}

	indexKey := playerCombatsKey(playerID)
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, repositories.NewStorageError(err, "list", recordKind)
	}
	if len(ids) == 0 {
		return []*Snapshot{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = combatKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, repositories.NewStorageError(err, "list", recordKind)
	}

	snapshots := make([]*Snapshot, 0, len(values))
	var stale []any
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		snapshot, err := decode([]byte(raw))
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}

	// Index entries outlive their expired snapshots
	if len(stale) > 0 {
		if err := r.client.SRem(ctx, indexKey, stale...).Err(); err != nil {
			log.Printf("[COMBAT] Failed to prune %d expired combats for player %s: %v", len(stale), playerID, err)
		}
	}

	return snapshots, nil
}

func decode(data []byte) (*Snapshot, error) {
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, dnderr.Wrap(err, "failed to unmarshal combat snapshot")
	}
	return &snapshot, nil
}
