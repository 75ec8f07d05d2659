package crates

import (
	"context"
	"testing"
	"time"

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

type fakeRustaceansStore struct {
	rustaceansByID map[string]cr8s.Rustacean
}

func (f *fakeRustaceansStore) Create(
	ctx context.Context,
	rustacean cr8s.Rustacean,
) error {
	return errors.New("not implemented")
}

func (f *fakeRustaceansStore) Get(
	ctx context.Context,
	id string,
) (cr8s.Rustacean, error) {
	rustacean, ok := f.rustaceansByID[id]
	if !ok {
		return cr8s.Rustacean{}, cr8s.NewErrNotFound("Rustacean", id)
	}
	return rustacean, nil
}

func (f *fakeRustaceansStore) List(
	ctx context.Context,
) (cr8s.RustaceanList, error) {
	return cr8s.RustaceanList{}, errors.New("not implemented")
}

func (f *fakeRustaceansStore) Update(
	ctx context.Context,
	rustacean cr8s.Rustacean,
) error {
	return errors.New("not implemented")
}

func (f *fakeRustaceansStore) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

type fakeStore struct {
	cratesByID map[string]cr8s.Crate
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		cratesByID: map[string]cr8s.Crate{},
	}
}

func (f *fakeStore) Create(ctx context.Context, crate cr8s.Crate) error {
	f.cratesByID[crate.ID] = crate
	return nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (cr8s.Crate, error) {
	crate, ok := f.cratesByID[id]
	if !ok {
		return cr8s.Crate{}, cr8s.NewErrNotFound("Crate", id)
	}
	return crate, nil
}

func (f *fakeStore) List(ctx context.Context) (cr8s.CrateList, error) {
	crateList := cr8s.NewCrateList()
	for _, crate := range f.cratesByID {
		crateList.Items = append(crateList.Items, crate)
	}
	return crateList, nil
}

func (f *fakeStore) ListCreatedSince(
	ctx context.Context,
	since time.Time,
) (cr8s.CrateList, error) {
	crateList := cr8s.NewCrateList()
	for _, crate := range f.cratesByID {
		if crate.Created != nil && !crate.Created.Before(since) {
			crateList.Items = append(crateList.Items, crate)
		}
	}
	return crateList, nil
}

func (f *fakeStore) Update(ctx context.Context, crate cr8s.Crate) error {
	existing, ok := f.cratesByID[crate.ID]
	if !ok {
		return cr8s.NewErrNotFound("Crate", crate.ID)
	}
	existing.RustaceanID = crate.RustaceanID
	existing.Code = crate.Code
	existing.Name = crate.Name
	existing.Version = crate.Version
	existing.Description = crate.Description
	f.cratesByID[crate.ID] = existing
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.cratesByID[id]; !ok {
		return cr8s.NewErrNotFound("Crate", id)
	}
	delete(f.cratesByID, id)
	return nil
}

func testRustaceansStore() *fakeRustaceansStore {
	return &fakeRustaceansStore{
		rustaceansByID: map[string]cr8s.Rustacean{
			"ferris-id": cr8s.NewRustacean(
				"ferris-id",
				"Ferris",
				"ferris@cr8s.io",
			),
		},
	}
}

func testCrate() cr8s.Crate {
	crate := cr8s.Crate{}
	crate.RustaceanID = "ferris-id"
	crate.Code = "serde"
	crate.Name = "Serde"
	crate.Version = "1.0.0"
	return crate
}

func TestCreateCrate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(&fakeAuthorizer{}, store, testRustaceansStore())
	created, err := svc.Create(context.Background(), testCrate())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotNil(t, created.Created)
	require.Equal(t, "serde", created.Code)
}

func TestCreateCrateWithUnknownRustacean(t *testing.T) {
	store := newFakeStore()
	svc := NewService(&fakeAuthorizer{}, store, testRustaceansStore())
	crate := testCrate()
	crate.RustaceanID = "nobody"
	_, err := svc.Create(context.Background(), crate)
	require.IsType(t, &cr8s.ErrBadRequest{}, errors.Cause(err))
	require.Empty(t, store.cratesByID)
}

func TestCreateCrateDenied(t *testing.T) {
	store := newFakeStore()
	svc := NewService(
		&fakeAuthorizer{err: cr8s.NewErrAuthorization()},
		store,
		testRustaceansStore(),
	)
	_, err := svc.Create(context.Background(), testCrate())
	require.IsType(t, &cr8s.ErrAuthorization{}, errors.Cause(err))
	require.Empty(t, store.cratesByID)
}

func TestUpdateCrate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(&fakeAuthorizer{}, store, testRustaceansStore())
	created, err := svc.Create(context.Background(), testCrate())
	require.NoError(t, err)
	created.Version = "1.0.1"
	updated, err := svc.Update(context.Background(), created)
	require.NoError(t, err)
	require.Equal(t, "1.0.1", updated.Version)
}

func TestListCratesCreatedSince(t *testing.T) {
	store := newFakeStore()
	svc := NewService(&fakeAuthorizer{}, store, testRustaceansStore())

	crate, err := svc.Create(context.Background(), testCrate())
	require.NoError(t, err)

	// Backdate a second crate beyond the window.
	old := testCrate()
	old.Code = "old-crate"
	oldCrate, err := svc.Create(context.Background(), old)
	require.NoError(t, err)
	backdated := time.Now().Add(-48 * time.Hour)
	stored := store.cratesByID[oldCrate.ID]
	stored.Created = &backdated
	store.cratesByID[oldCrate.ID] = stored

	recent, err := svc.ListCreatedSince(
		context.Background(),
		time.Now().Add(-24*time.Hour),
	)
	require.NoError(t, err)
	require.Len(t, recent.Items, 1)
	require.Equal(t, crate.ID, recent.Items[0].ID)
}
