package authn

import (
	"context"

	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

type userContextKey struct{}

type sessionTokenContextKey struct{}

// ContextWithUser returns a context that carries the authenticated user.
func ContextWithUser(ctx context.Context, user cr8s.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the authenticated user carried by the context, if
// any.
func UserFromContext(ctx context.Context) (cr8s.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(cr8s.User)
	return user, ok
}

// ContextWithSessionToken returns a context that carries the session token
// the request authenticated with.
func ContextWithSessionToken(
	ctx context.Context,
	token string,
) context.Context {
	return context.WithValue(ctx, sessionTokenContextKey{}, token)
}

// SessionTokenFromContext returns the session token carried by the context,
// if any.
func SessionTokenFromContext(ctx context.Context) string {
	token := ctx.Value(sessionTokenContextKey{})
	if token == nil {
		return ""
	}
	return token.(string)
}
