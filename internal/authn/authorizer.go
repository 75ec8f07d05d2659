package authn

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"github.com/cr8s-io/cr8s/internal/roles"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

// Authorizer is an interface for the component that decides whether the
// authenticated principal on a context may perform an operation gated by a
// set of allowed roles.
type Authorizer interface {
	// Authorize returns nil if the context's principal holds at least one
	// role whose code appears in allowedRoleCodes; otherwise it returns
	// *cr8s.ErrAuthorization. An empty allowedRoleCodes means any
	// authenticated principal is permitted.
	Authorize(ctx context.Context, allowedRoleCodes ...string) error
}

type authorizer struct {
	rolesStore roles.Store
}

// NewAuthorizer returns a role-based Authorizer backed by the specified
// roles store.
func NewAuthorizer(rolesStore roles.Store) Authorizer {
	return &authorizer{
		rolesStore: rolesStore,
	}
}

func (a *authorizer) Authorize(
	ctx context.Context,
	allowedRoleCodes ...string,
) error {
	user, ok := UserFromContext(ctx)
	if !ok {
		return cr8s.NewErrAuthorization()
	}
	if len(allowedRoleCodes) == 0 {
		// The operation requires nothing beyond an authenticated principal.
		return nil
	}
	userRoles, err := a.rolesStore.FindByUser(ctx, user.ID)
	if err != nil {
		// Fail closed. The store error is logged so an operator can tell an
		// outage from a denial; the client cannot.
		log.Println(
			errors.Wrapf(err, "error finding roles for user %q", user.ID),
		)
		return cr8s.NewErrAuthorization()
	}
	for _, role := range userRoles {
		for _, code := range allowedRoleCodes {
			if role.Code == code {
				return nil
			}
		}
	}
	return cr8s.NewErrAuthorization()
}
