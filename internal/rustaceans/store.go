package rustaceans

import (
	"context"

	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

// Store is an interface for components that manage persistent rustacean
// records.
type Store interface {
	Create(ctx context.Context, rustacean cr8s.Rustacean) error
	Get(ctx context.Context, id string) (cr8s.Rustacean, error)
	List(ctx context.Context) (cr8s.RustaceanList, error)
	Update(ctx context.Context, rustacean cr8s.Rustacean) error
	Delete(ctx context.Context, id string) error
}
