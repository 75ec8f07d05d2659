package rustaceans

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

type fakeAuthorizer struct {
	err error
}

func (f *fakeAuthorizer) Authorize(
	ctx context.Context,
	allowedRoleCodes ...string,
) error {
	return f.err
}

type fakeStore struct {
	rustaceansByID map[string]cr8s.Rustacean
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		rustaceansByID: map[string]cr8s.Rustacean{},
	}
}

func (f *fakeStore) Create(
	ctx context.Context,
	rustacean cr8s.Rustacean,
) error {
	f.rustaceansByID[rustacean.ID] = rustacean
	return nil
}

func (f *fakeStore) Get(
	ctx context.Context,
	id string,
) (cr8s.Rustacean, error) {
	rustacean, ok := f.rustaceansByID[id]
	if !ok {
		return cr8s.Rustacean{}, cr8s.NewErrNotFound("Rustacean", id)
	}
	return rustacean, nil
}

func (f *fakeStore) List(ctx context.Context) (cr8s.RustaceanList, error) {
	rustaceanList := cr8s.NewRustaceanList()
	for _, rustacean := range f.rustaceansByID {
		rustaceanList.Items = append(rustaceanList.Items, rustacean)
	}
	return rustaceanList, nil
}

func (f *fakeStore) Update(
	ctx context.Context,
	rustacean cr8s.Rustacean,
) error {
	existing, ok := f.rustaceansByID[rustacean.ID]
	if !ok {
		return cr8s.NewErrNotFound("Rustacean", rustacean.ID)
	}
	existing.Name = rustacean.Name
	existing.Email = rustacean.Email
	f.rustaceansByID[rustacean.ID] = existing
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.rustaceansByID[id]; !ok {
		return cr8s.NewErrNotFound("Rustacean", id)
	}
	delete(f.rustaceansByID, id)
	return nil
}

func TestCreateRustacean(t *testing.T) {
	store := newFakeStore()
	svc := NewService(&fakeAuthorizer{}, store)
	rustacean, err := svc.Create(
		context.Background(),
		"Ferris",
		"ferris@cr8s.io",
	)
	require.NoError(t, err)
	require.NotEmpty(t, rustacean.ID)
	require.NotNil(t, rustacean.Created)
	stored, err := svc.Get(context.Background(), rustacean.ID)
	require.NoError(t, err)
	require.Equal(t, "Ferris", stored.Name)
	require.Equal(t, "ferris@cr8s.io", stored.Email)
}

func TestCreateRustaceanDenied(t *testing.T) {
	store := newFakeStore()
	svc := NewService(
		&fakeAuthorizer{err: cr8s.NewErrAuthorization()},
		store,
	)
	_, err := svc.Create(context.Background(), "Ferris", "ferris@cr8s.io")
	require.IsType(t, &cr8s.ErrAuthorization{}, errors.Cause(err))
	require.Empty(t, store.rustaceansByID)
}

func TestUpdateRustacean(t *testing.T) {
	store := newFakeStore()
	svc := NewService(&fakeAuthorizer{}, store)
	rustacean, err := svc.Create(
		context.Background(),
		"Ferris",
		"ferris@cr8s.io",
	)
	require.NoError(t, err)
	rustacean.Name = "Ferris the Crab"
	updated, err := svc.Update(context.Background(), rustacean)
	require.NoError(t, err)
	require.Equal(t, "Ferris the Crab", updated.Name)
}

func TestUpdateRustaceanNotFound(t *testing.T) {
	svc := NewService(&fakeAuthorizer{}, newFakeStore())
	rustacean := cr8s.NewRustacean("nobody", "Ferris", "ferris@cr8s.io")
	_, err := svc.Update(context.Background(), rustacean)
	require.IsType(t, &cr8s.ErrNotFound{}, errors.Cause(err))
}

func TestDeleteRustaceanDenied(t *testing.T) {
	store := newFakeStore()
	svc := NewService(&fakeAuthorizer{}, store)
	rustacean, err := svc.Create(
		context.Background(),
		"Ferris",
		"ferris@cr8s.io",
	)
	require.NoError(t, err)

	deniedSvc := NewService(
		&fakeAuthorizer{err: cr8s.NewErrAuthorization()},
		store,
	)
	err = deniedSvc.Delete(context.Background(), rustacean.ID)
	require.IsType(t, &cr8s.ErrAuthorization{}, errors.Cause(err))

	// Reads remain open to any authenticated principal.
	_, err = deniedSvc.Get(context.Background(), rustacean.ID)
	require.NoError(t, err)
}
