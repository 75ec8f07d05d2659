package authn

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

type fakeRolesStore struct {
	roles []cr8s.Role
	err   error
}

func (f *fakeRolesStore) Grant(
	ctx context.Context,
	userID string,
	codes []string,
) ([]cr8s.Role, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRolesStore) FindByUser(
	ctx context.Context,
	userID string,
) ([]cr8s.Role, error) {
	return f.roles, f.err
}

func contextWithTestUser() context.Context {
	return ContextWithUser(
		context.Background(),
		cr8s.NewUser("alice-id", "alice"),
	)
}

func TestAuthorizeWithNoUserOnContext(t *testing.T) {
	a := NewAuthorizer(&fakeRolesStore{})
	err := a.Authorize(context.Background(), RoleCodeEditor)
	require.IsType(t, &cr8s.ErrAuthorization{}, err)
}

func TestAuthorizeWithNoRolesRequired(t *testing.T) {
	a := NewAuthorizer(&fakeRolesStore{})
	err := a.Authorize(contextWithTestUser())
	require.NoError(t, err)
}

func TestAuthorizeWithViewerRoleOnly(t *testing.T) {
	a := NewAuthorizer(&fakeRolesStore{
		roles: []cr8s.Role{
			cr8s.NewRole("role-id", RoleCodeViewer, "Viewer"),
		},
	})
	err := a.Authorize(contextWithTestUser(), RoleCodeAdmin, RoleCodeEditor)
	require.IsType(t, &cr8s.ErrAuthorization{}, err)
}

func TestAuthorizeWithEditorRole(t *testing.T) {
	a := NewAuthorizer(&fakeRolesStore{
		roles: []cr8s.Role{
			cr8s.NewRole("role-id", RoleCodeEditor, "Editor"),
		},
	})
	err := a.Authorize(contextWithTestUser(), RoleCodeAdmin, RoleCodeEditor)
	require.NoError(t, err)
}

func TestAuthorizeWithAdminRole(t *testing.T) {
	a := NewAuthorizer(&fakeRolesStore{
		roles: []cr8s.Role{
			cr8s.NewRole("role-id", RoleCodeAdmin, "Admin"),
		},
	})
	err := a.Authorize(contextWithTestUser(), RoleCodeAdmin, RoleCodeEditor)
	require.NoError(t, err)
}

func TestAuthorizeWithUnrecognizedRoleCode(t *testing.T) {
	// Unknown role codes exist but confer nothing. Codes are also
	// case-sensitive, so "Editor" is not the editor role.
	a := NewAuthorizer(&fakeRolesStore{
		roles: []cr8s.Role{
			cr8s.NewRole("role-id-1", "auditor", "Auditor"),
			cr8s.NewRole("role-id-2", "Editor", "Editor"),
		},
	})
	err := a.Authorize(contextWithTestUser(), RoleCodeAdmin, RoleCodeEditor)
	require.IsType(t, &cr8s.ErrAuthorization{}, err)
}

func TestAuthorizeFailsClosedOnStoreError(t *testing.T) {
	a := NewAuthorizer(&fakeRolesStore{
		err: errors.New("store is unreachable"),
	})
	err := a.Authorize(contextWithTestUser(), RoleCodeAdmin, RoleCodeEditor)
	require.IsType(t, &cr8s.ErrAuthorization{}, err)
}
