package users

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/cr8s-io/cr8s/internal/crypto"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

type fakeStore struct {
	usersByID    map[string]cr8s.User
	passwordHash string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		usersByID: map[string]cr8s.User{},
	}
}

func (f *fakeStore) Create(
	ctx context.Context,
	user cr8s.User,
	passwordHash string,
) error {
	f.usersByID[user.ID] = user
	f.passwordHash = passwordHash
	return nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (cr8s.User, error) {
	user, ok := f.usersByID[id]
	if !ok {
		return cr8s.User{}, cr8s.NewErrNotFound("User", id)
	}
	return user, nil
}

func (f *fakeStore) FindByUsername(
	ctx context.Context,
	username string,
) (cr8s.User, string, error) {
	for _, user := range f.usersByID {
		if user.Username == username {
			return user, f.passwordHash, nil
		}
	}
	return cr8s.User{}, "", cr8s.NewErrNotFound("User", username)
}

func (f *fakeStore) List(ctx context.Context) (cr8s.UserList, error) {
	userList := cr8s.NewUserList()
	for _, user := range f.usersByID {
		userList.Items = append(userList.Items, user)
	}
	return userList, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.usersByID[id]; !ok {
		return cr8s.NewErrNotFound("User", id)
	}
	delete(f.usersByID, id)
	return nil
}

type fakeRolesStore struct {
	grantedUserID string
	grantedCodes  []string
}

func (f *fakeRolesStore) Grant(
	ctx context.Context,
	userID string,
	codes []string,
) ([]cr8s.Role, error) {
	f.grantedUserID = userID
	f.grantedCodes = codes
	grantedRoles := make([]cr8s.Role, len(codes))
	for i, code := range codes {
		grantedRoles[i] = cr8s.NewRole(code+"-id", code, code)
	}
	return grantedRoles, nil
}

func (f *fakeRolesStore) FindByUser(
	ctx context.Context,
	userID string,
) ([]cr8s.Role, error) {
	return nil, errors.New("not implemented")
}

func TestCreateUserHashesPasswordAndGrantsRoles(t *testing.T) {
	store := newFakeStore()
	rolesStore := &fakeRolesStore{}
	svc := NewService(store, rolesStore)

	user, err := svc.Create(
		context.Background(),
		"alice",
		"s3cret",
		[]string{"editor", "viewer"},
	)
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.NotNil(t, user.Created)

	// The stored hash is a real Argon2id hash of the password, not the
	// password itself.
	require.NotEqual(t, "s3cret", store.passwordHash)
	ok, err := crypto.VerifyPassword("s3cret", store.passwordHash)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, user.ID, rolesStore.grantedUserID)
	require.Equal(t, []string{"editor", "viewer"}, rolesStore.grantedCodes)
}

func TestGetUserNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeRolesStore{})
	_, err := svc.Get(context.Background(), "nobody")
	require.IsType(t, &cr8s.ErrNotFound{}, errors.Cause(err))
}

func TestDeleteUser(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store, &fakeRolesStore{})
	user, err := svc.Create(
		context.Background(),
		"alice",
		"s3cret",
		[]string{"viewer"},
	)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), user.ID))
	_, err = svc.Get(context.Background(), user.ID)
	require.IsType(t, &cr8s.ErrNotFound{}, errors.Cause(err))
}

func TestDeleteUserNotFound(t *testing.T) {
	svc := NewService(newFakeStore(), &fakeRolesStore{})
	err := svc.Delete(context.Background(), "nobody")
	require.IsType(t, &cr8s.ErrNotFound{}, errors.Cause(err))
}
