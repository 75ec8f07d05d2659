package users

import (
	"context"

	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

// Store is an interface for components that manage persistent user records.
// Password hashes live exclusively on this side of the interface; they are
// returned only by the FindByUsername lookup that credential verification
// requires and never appear on the cr8s.User type itself.
type Store interface {
	// Create persists a new user with the specified password hash.
	Create(ctx context.Context, user cr8s.User, passwordHash string) error
	// Get returns the user with the specified ID.
	Get(ctx context.Context, id string) (cr8s.User, error)
	// FindByUsername returns the user with the specified username along with
	// that user's password hash.
	FindByUsername(
		ctx context.Context,
		username string,
	) (cr8s.User, string, error)
	// List returns all users.
	List(ctx context.Context) (cr8s.UserList, error)
	// Delete removes the user with the specified ID and all of that user's
	// role assignments.
	Delete(ctx context.Context, id string) error
}
