package combats

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/aleserena/Don-t-slay-the-spire-sub001/internal/repositories/combats Repository

import (
	"context"
)

const recordKind = "combat"

// Repository stores combat snapshots
type Repository interface {
	// Create stores a new snapshot, stamping CreatedAt and UpdatedAt
	Create(ctx context.Context, snapshot *Snapshot) error

	// Get returns a copy of the stored snapshot
	Get(ctx context.Context, id string) (*Snapshot, error)

	// Update replaces an existing snapshot, stamping UpdatedAt
	Update(ctx context.Context, snapshot *Snapshot) error

	// Delete removes a snapshot
	Delete(ctx context.Context, id string) error

	// ListByPlayer returns every live snapshot owned by playerID
	ListByPlayer(ctx context.Context, playerID string) ([]*Snapshot, error)
}
