package combats

import (
	"context"
	"sort"
	"sync"
	"time"

	dnderr "github.com/aleserena/Don-t-slay-the-spire-sub001/internal/errors"
	"github.com/aleserena/Don-t-slay-the-spire-sub001/internal/repositories"
)

type memoryEntry struct {
	snapshot  *Snapshot
	expiresAt time.Time
}

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	combats      map[string]memoryEntry
	timeProvider TimeProvider
	ttl          time.Duration
}

// InMemoryRepoConfig holds configuration for the in-memory repository
type InMemoryRepoConfig struct {
	TimeProvider TimeProvider
	TTL          time.Duration // zero keeps snapshots forever
}

// NewInMemoryRepository creates a new in-memory combat repository
func NewInMemoryRepository(cfg *InMemoryRepoConfig) Repository {
	if cfg == nil {
		cfg = &InMemoryRepoConfig{}
	}
	tp := cfg.TimeProvider
	if tp == nil {
		tp = NewRealTimeProvider()
	}

	return &inMemoryRepository{
		combats:      make(map[string]memoryEntry),
		timeProvider: tp,
		ttl:          cfg.TTL,
	}
}

func (r *inMemoryRepository) Create(ctx context.Context, snapshot *Snapshot) error {
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	if _, ok := r.live(snapshot.ID, now); ok {
		return repositories.NewRecordExistsError(recordKind, snapshot.ID)
	}

	snapshot.CreatedAt = now
	snapshot.UpdatedAt = now
	r.store(snapshot, now)

	return nil
}

func (r *inMemoryRepository) Get(ctx context.Context, id string) (*Snapshot, error) {
	if id == "" {
		return nil, dnderr.InvalidArgument("combat ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.live(id, r.timeProvider.Now())
	if !ok {
		return nil, repositories.NewRecordNotFoundError(recordKind, id)
	}

	return entry.snapshot.Clone(), nil
}

func (r *inMemoryRepository) Update(ctx context.Context, snapshot *Snapshot) error {
	if err := validateSnapshot(snapshot); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	existing, ok := r.live(snapshot.ID, now)
	if !ok {
		return repositories.NewRecordNotFoundError(recordKind, snapshot.ID)
	}

	snapshot.CreatedAt = existing.snapshot.CreatedAt
	snapshot.UpdatedAt = now
	r.store(snapshot, now)

	return nil
}

func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dnderr.InvalidArgument("combat ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.live(id, r.timeProvider.Now()); !ok {
		return repositories.NewRecordNotFoundError(recordKind, id)
	}
	delete(r.combats, id)

	return nil
}

func (r *inMemoryRepository) ListByPlayer(ctx context.Context, playerID string) ([]*Snapshot, error) {
	if playerID == "" {
		return nil, dnderr.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	now := r.timeProvider.Now()
	var out []*Snapshot
	for id := range r.combats {
		entry, ok := r.live(id, now)
		if ok && entry.snapshot.PlayerID == playerID {
			out = append(out, entry.snapshot.Clone())
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// live returns the entry for id unless it is missing or expired. Expired
// entries are left for the next write to overwrite.
func (r *inMemoryRepository) live(id string, now time.Time) (memoryEntry, bool) {
	entry, ok := r.combats[id]
	if !ok {
		return memoryEntry{}, false
	}
	if !entry.expiresAt.IsZero() && !now.Before(entry.expiresAt) {
		return memoryEntry{}, false
	}
	return entry, true
}

func (r *inMemoryRepository) store(snapshot *Snapshot, now time.Time) {
	entry := memoryEntry{snapshot: snapshot.Clone()}
	if r.ttl > 0 {
		entry.expiresAt = now.Add(r.ttl)
	}
	r.combats[snapshot.ID] = entry
}

func validateSnapshot(snapshot *Snapshot) error {
	if snapshot == nil {
		return dnderr.InvalidArgument("combat snapshot cannot be nil")
	}
	if snapshot.ID == "" {
		return dnderr.InvalidArgument("combat ID is required")
	}
	if snapshot.PlayerID == "" {
		return dnderr.InvalidArgument("player ID is required")
	}
	return nil
}
