package rustaceans

import (
	"context"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/cr8s-io/cr8s/internal/authn"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

// Service is an interface for components that manage rustaceans. Reads are
// open to any authenticated principal; mutations require the editor or
// admin role.
type Service interface {
	List(ctx context.Context) (cr8s.RustaceanList, error)
	Get(ctx context.Context, id string) (cr8s.Rustacean, error)
	Create(ctx context.Context, name, email string) (cr8s.Rustacean, error)
	Update(ctx context.Context, rustacean cr8s.Rustacean) (cr8s.Rustacean, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	authorize authn.Authorizer
	store     Store
}

// NewService returns a rustaceans service backed by the specified store.
func NewService(authorizer authn.Authorizer, store Store) Service {
	return &service{
		authorize: authorizer,
		store:     store,
	}
}

func (s *service) List(ctx context.Context) (cr8s.RustaceanList, error) {
	rustaceanList, err := s.store.List(ctx)
	if err != nil {
		return rustaceanList,
			errors.Wrap(err, "error retrieving rustaceans from store")
	}
	return rustaceanList, nil
}

func (s *service) Get(ctx context.Context, id string) (cr8s.Rustacean, error) {
	rustacean, err := s.store.Get(ctx, id)
	if err != nil {
		return rustacean, errors.Wrapf(
			err,
			"error retrieving rustacean %q from store",
			id,
		)
	}
	return rustacean, nil
}

func (s *service) Create(
	ctx context.Context,
	name string,
	email string,
) (cr8s.Rustacean, error) {
	if err := s.authorize.Authorize(
		ctx,
		authn.RoleCodeAdmin,
		authn.RoleCodeEditor,
	); err != nil {
		return cr8s.Rustacean{}, err
	}
	rustacean := cr8s.NewRustacean(uuid.NewV4().String(), name, email)
	now := time.Now()
	rustacean.Created = &now
	if err := s.store.Create(ctx, rustacean); err != nil {
		return cr8s.Rustacean{}, errors.Wrapf(
			err,
			"error storing new rustacean %q",
			rustacean.ID,
		)
	}
	return rustacean, nil
}

func (s *service) Update(
	ctx context.Context,
	rustacean cr8s.Rustacean,
) (cr8s.Rustacean, error) {
	if err := s.authorize.Authorize(
		ctx,
		authn.RoleCodeAdmin,
		authn.RoleCodeEditor,
	); err != nil {
		return cr8s.Rustacean{}, err
	}
	if err := s.store.Update(ctx, rustacean); err != nil {
		return cr8s.Rustacean{}, errors.Wrapf(
			err,
			"error updating rustacean %q",
			rustacean.ID,
		)
	}
	return s.store.Get(ctx, rustacean.ID)
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
		return errors.Wrapf(err, "error removing rustacean %q from store", id)
	}
	return nil
}
