package users

import (
	"context"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"

	"github.com/cr8s-io/cr8s/internal/crypto"
	"github.com/cr8s-io/cr8s/internal/roles"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

// Service is an interface for components that manage users.
type Service interface {
	// Create hashes the supplied password, persists a new user, and grants
	// the specified roles. Role codes not seen before are created on the
	// fly.
	Create(
		ctx context.Context,
		username string,
		password string,
		roleCodes []string,
	) (cr8s.User, error)
	// Get returns the user with the specified ID.
	Get(ctx context.Context, id string) (cr8s.User, error)
	// List returns all users.
	List(ctx context.Context) (cr8s.UserList, error)
	// Delete removes the user with the specified ID along with all of that
	// user's role assignments.
	Delete(ctx context.Context, id string) error
}

type service struct {
	store      Store
	rolesStore roles.Store
}

// NewService returns a users service backed by the specified stores.
func NewService(store Store, rolesStore roles.Store) Service {
	return &service{
		store:      store,
		rolesStore: rolesStore,
	}
}

func (s *service) Create(
	ctx context.Context,
	username string,
	password string,
	roleCodes []string,
) (cr8s.User, error) {
	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return cr8s.User{}, errors.Wrap(err, "error hashing password")
	}
	user := cr8s.NewUser(uuid.NewV4().String(), username)
	now := time.Now()
	user.Created = &now
	if err := s.store.Create(ctx, user, passwordHash); err != nil {
		return cr8s.User{}, errors.Wrapf(
			err,
			"error storing new user %q",
			user.ID,
		)
	}
	if _, err := s.rolesStore.Grant(ctx, user.ID, roleCodes); err != nil {
		return cr8s.User{}, errors.Wrapf(
			err,
			"error granting roles to new user %q",
			user.ID,
		)
	}
	return user, nil
}

func (s *service) Get(ctx context.Context, id string) (cr8s.User, error) {
	user, err := s.store.Get(ctx, id)
	if err != nil {
		return user, errors.Wrapf(
			err,
			"error retrieving user %q from store",
			id,
		)
	}
	return user, nil
}

func (s *service) List(ctx context.Context) (cr8s.UserList, error) {
	userList, err := s.store.List(ctx)
	if err != nil {
		return userList, errors.Wrap(err, "error retrieving users from store")
	}
	return userList, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return errors.Wrapf(err, "error retrieving user %q from store", id)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return errors.Wrapf(err, "error removing user %q from store", id)
	}
	return nil
}
