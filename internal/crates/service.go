package crates

import (
	"context"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/cr8s-io/cr8s/internal/authn"
	"github.com/cr8s-io/cr8s/internal/rustaceans"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

// Service is an interface for components that manage crates. Reads are open
// to any authenticated principal; mutations require the editor or admin
// role.
type Service interface {
	List(ctx context.Context) (cr8s.CrateList, error)
	ListCreatedSince(ctx context.Context, since time.Time) (cr8s.CrateList, error)
	Get(ctx context.Context, id string) (cr8s.Crate, error)
	Create(ctx context.Context, crate cr8s.Crate) (cr8s.Crate, error)
	Update(ctx context.Context, crate cr8s.Crate) (cr8s.Crate, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	authorize       authn.Authorizer
	store           Store
	rustaceansStore rustaceans.Store
}

// NewService returns a crates service backed by the specified stores.
func NewService(
	authorizer authn.Authorizer,
	store Store,
	rustaceansStore rustaceans.Store,
) Service {
	return &service{
		authorize:       authorizer,
		store:           store,
		rustaceansStore: rustaceansStore,
	}
}

func (s *service) List(ctx context.Context) (cr8s.CrateList, error) {
	crateList, err := s.store.List(ctx)
	if err != nil {
		return crateList, errors.Wrap(err, "error retrieving crates from store")
	}
	return crateList, nil
}

func (s *service) ListCreatedSince(
	ctx context.Context,
	since time.Time,
) (cr8s.CrateList, error) {
	crateList, err := s.store.ListCreatedSince(ctx, since)
	if err != nil {
		return crateList,
			errors.Wrap(err, "error retrieving recent crates from store")
	}
	return crateList, nil
}

func (s *service) Get(ctx context.Context, id string) (cr8s.Crate, error) {
	crate, err := s.store.Get(ctx, id)
	if err != nil {
		return crate, errors.Wrapf(
			err,
			"error retrieving crate %q from store",
			id,
		)
	}
	return crate, nil
}

func (s *service) Create(
	ctx context.Context,
	crate cr8s.Crate,
) (cr8s.Crate, error) {
	if err := s.authorize.Authorize(
		ctx,
		authn.RoleCodeAdmin,
		authn.RoleCodeEditor,
	); err != nil {
		return cr8s.Crate{}, err
	}
	if _, err := s.rustaceansStore.Get(ctx, crate.RustaceanID); err != nil {
		if _, ok := errors.Cause(err).(*cr8s.ErrNotFound); ok {
			return cr8s.Crate{}, cr8s.NewErrBadRequest(
				"The referenced rustacean does not exist.",
			)
		}
		return cr8s.Crate{}, errors.Wrapf(
			err,
			"error retrieving rustacean %q from store",
			crate.RustaceanID,
		)
	}
	created := cr8s.NewCrate(
		uuid.NewV4().String(),
		crate.RustaceanID,
		crate.Code,
		crate.Name,
		crate.Version,
	)
	created.Description = crate.Description
	now := time.Now()
	created.Created = &now
	if err := s.store.Create(ctx, created); err != nil {
		return cr8s.Crate{}, errors.Wrapf(
			err,
			"error storing new crate %q",
			created.ID,
		)
	}
	return created, nil
}

func (s *service) Update(
	ctx context.Context,
	crate cr8s.Crate,
) (cr8s.Crate, error) {
	if err := s.authorize.Authorize(
		ctx,
		authn.RoleCodeAdmin,
		authn.RoleCodeEditor,
	); err != nil {
		return cr8s.Crate{}, err
	}
	if _, err := s.rustaceansStore.Get(ctx, crate.RustaceanID); err != nil {
		if _, ok := errors.Cause(err).(*cr8s.ErrNotFound); ok {
			return cr8s.Crate{}, cr8s.NewErrBadRequest(
				"The referenced rustacean does not exist.",
			)
		}
		return cr8s.Crate{}, errors.Wrapf(
			err,
			"error retrieving rustacean %q from store",
			crate.RustaceanID,
		)
	}
	if err := s.store.Update(ctx, crate); err != nil {
		return cr8s.Crate{}, errors.Wrapf(
			err,
			"error updating crate %q",
			crate.ID,
		)
	}
	return s.store.Get(ctx, crate.ID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.authorize.Authorize(
		ctx,
		authn.RoleCodeAdmin,
		authn.RoleCodeEditor,
	); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "error removing crate %q from store", id)
	}
	return nil
}
