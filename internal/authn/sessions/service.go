package sessions

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"github.com/cr8s-io/cr8s/internal/crypto"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
	"github.com/cr8s-io/cr8s/internal/users"
)

// All credential failures produce this reason verbatim. An unknown
// username, a wrong password, and a corrupted stored hash must be
// indistinguishable to the caller.
const invalidCredentialsReason = "Could not authenticate the request " +
	"using the supplied credentials."

// Service is an interface for components that issue and resolve sessions.
type Service interface {
	// Create authenticates the supplied credentials and, on success, mints a
	// token, caches it for the configured TTL, and returns it.
	Create(ctx context.Context, credentials cr8s.Credentials) (cr8s.Token, error)
	// GetUserIDByToken resolves a previously issued token back to a user ID.
	GetUserIDByToken(ctx context.Context, token string) (string, error)
	// Delete removes the session for the specified token.
	Delete(ctx context.Context, token string) error
}

type service struct {
	store      Store
	usersStore users.Store
	config     Config
	// referenceHash is verified against when a username lookup misses so the
	// miss costs the same as a wrong password. Without it, response timing
	// would reveal which usernames exist.
	referenceHash string
}

// NewService returns a sessions service backed by the specified stores.
func NewService(
	store Store,
	usersStore users.Store,
	config Config,
) (Service, error) {
	referenceHash, err := crypto.HashPassword("reference")
	if err != nil {
		return nil, errors.Wrap(err, "error computing reference hash")
	}
	return &service{
		store:         store,
		usersStore:    usersStore,
		config:        config,
		referenceHash: referenceHash,
	}, nil
}

func (s *service) Create(
	ctx context.Context,
	credentials cr8s.Credentials,
) (cr8s.Token, error) {
	user, passwordHash, err := s.usersStore.FindByUsername(
		ctx,
		credentials.Username,
	)
	if err != nil {
		if _, ok := errors.Cause(err).(*cr8s.ErrNotFound); ok {
			// Burn a verification anyway. See the referenceHash field.
			_, _ = crypto.VerifyPassword(credentials.Password, s.referenceHash)
			return cr8s.Token{},
				cr8s.NewErrAuthentication(invalidCredentialsReason)
		}
		return cr8s.Token{}, errors.Wrapf(
			err,
			"error finding user %q",
			credentials.Username,
		)
	}
	ok, err := crypto.VerifyPassword(credentials.Password, passwordHash)
	if err != nil {
		// The stored hash could not even be parsed. To the caller this is a
		// failed login like any other, but it means the users store holds a
		// corrupted record, which an operator will want to know about.
		log.Println(errors.Wrapf(
			err,
			"data integrity warning: unparseable password hash for user %q",
			user.ID,
		))
	}
	if !ok {
		return cr8s.Token{},
			cr8s.NewErrAuthentication(invalidCredentialsReason)
	}
	token := crypto.NewToken(s.config.TokenLength())
	if err := s.store.Create(ctx, token, user.ID, s.config.TTL()); err != nil {
		// The minted token is discarded; it was never returned to anyone and
		// nothing references it.
		return cr8s.Token{}, errors.Wrapf(
			err,
			"error storing new session for user %q",
			user.ID,
		)
	}
	return cr8s.NewToken(token), nil
}

func (s *service) GetUserIDByToken(
	ctx context.Context,
	token string,
) (string, error) {
	userID, err := s.store.GetUserIDByToken(ctx, token)
	if err != nil {
		if _, ok := errors.Cause(err).(*cr8s.ErrNotFound); ok {
			return "", err
		}
		return "", errors.Wrap(err, "error resolving session token")
	}
	return userID, nil
}

func (s *service) Delete(ctx context.Context, token string) error {
	if err := s.store.Delete(ctx, token); err != nil {
		return errors.Wrap(err, "error removing session from store")
	}
	return nil
}
