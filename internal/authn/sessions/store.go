package sessions

import (
	"context"
	"time"
)

// Store is an interface for components that manage the token → user ID
// mappings that constitute sessions. Entries expire on their own after the
// TTL elapses; expiry is the normal removal path.
type Store interface {
	// Create stores a mapping from the specified token to the specified user
	// ID with the specified TTL.
	Create(
		ctx context.Context,
		token string,
		userID string,
		ttl time.Duration,
	) error
	// GetUserIDByToken returns the user ID the specified token maps to. A
	// token with no mapping-- never issued, expired, or deleted-- yields
	// *cr8s.ErrNotFound. A transport failure yields a different error so
	// callers can tell an absent session from an unreachable cache.
	GetUserIDByToken(ctx context.Context, token string) (string, error)
	// Delete removes the mapping for the specified token, if any.
	Delete(ctx context.Context, token string) error
}
