package roles

import (
	"context"

	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

// Store is an interface for components that manage persistent role records
// and their assignment to users.
type Store interface {
	// Grant assigns the roles having the specified codes to the specified
	// user, creating role records for any codes not seen before.
	Grant(ctx context.Context, userID string, codes []string) ([]cr8s.Role, error)
	// FindByUser returns all roles assigned to the specified user.
	FindByUser(ctx context.Context, userID string) ([]cr8s.Role, error)
}
