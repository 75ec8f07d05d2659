package crates

import (
	"context"
	"time"

	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

// Store is an interface for components that manage persistent crate
// records.
type Store interface {
	Create(ctx context.Context, crate cr8s.Crate) error
	Get(ctx context.Context, id string) (cr8s.Crate, error)
	List(ctx context.Context) (cr8s.CrateList, error)
	// ListCreatedSince returns all crates created at or after the specified
	// time. The digest email job uses this to find recent additions.
	ListCreatedSince(ctx context.Context, since time.Time) (cr8s.CrateList, error)
	Update(ctx context.Context, crate cr8s.Crate) error
	Delete(ctx context.Context, id string) error
}
