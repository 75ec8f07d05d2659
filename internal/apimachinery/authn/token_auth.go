package authn

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/cr8s-io/cr8s/internal/apimachinery"
	"github.com/cr8s-io/cr8s/internal/authn"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

// FindUserIDFn resolves a session token to the ID of the user that holds
// the session.
type FindUserIDFn func(ctx context.Context, token string) (string, error)

// FindUserFn retrieves a user by ID.
type FindUserFn func(ctx context.Context, id string) (cr8s.User, error)

type tokenAuthFilter struct {
	findUserID FindUserIDFn
	findUser   FindUserFn
}

// NewTokenAuthFilter returns a filter that authenticates requests by
// resolving a bearer token to a session and loading the session's user. The
// user is added to the request context for downstream authorization checks.
func NewTokenAuthFilter(
	findUserID FindUserIDFn,
	findUser FindUserFn,
) apimachinery.Filter {
	return &tokenAuthFilter{
		findUserID: findUserID,
		findUser:   findUser,
	}
}

func (t *tokenAuthFilter) Decorate(handle http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headerValue := r.Header.Get("Authorization")
		if headerValue == "" {
			t.writeResponse(
				w,
				http.StatusUnauthorized,
				cr8s.NewErrAuthentication(
					`"Authorization" header is missing.`,
				),
			)
			return
		}
		headerValueParts := strings.Fields(headerValue)
		if len(headerValueParts) != 2 || headerValueParts[0] != "Bearer" {
			t.writeResponse(
				w,
				http.StatusUnauthorized,
				cr8s.NewErrAuthentication(
					`"Authorization" header is malformed.`,
				),
			)
			return
		}
		token := headerValueParts[1]

		userID, err := t.findUserID(r.Context(), token)
		if err != nil {
			if _, ok := errors.Cause(err).(*cr8s.ErrNotFound); ok {
				t.writeResponse(
					w,
					http.StatusUnauthorized,
					cr8s.NewErrAuthentication(
						"Session not found. Please log in again.",
					),
				)
				return
			}
			log.Println(err)
			t.writeResponse(
				w,
				http.StatusInternalServerError,
				cr8s.NewErrInternalServer(),
			)
			return
		}

		user, err := t.findUser(r.Context(), userID)
		if err != nil {
			if _, ok := errors.Cause(err).(*cr8s.ErrNotFound); ok {
				// The session outlived its user. Treat the request as
				// unauthenticated.
				t.writeResponse(
					w,
					http.StatusUnauthorized,
					cr8s.NewErrAuthentication(
						"Session user no longer exists. Please log in again.",
					),
				)
				return
			}
			log.Println(err)
			t.writeResponse(
				w,
				http.StatusInternalServerError,
				cr8s.NewErrInternalServer(),
			)
			return
		}

		// Success! Add the user and the session token to the context.
		ctx := authn.ContextWithUser(r.Context(), user)
		ctx = authn.ContextWithSessionToken(ctx, token)
		handle(w, r.WithContext(ctx))
	}
}

func (t *tokenAuthFilter) writeResponse(
	w http.ResponseWriter,
	statusCode int,
	response interface{},
) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	responseBody, ok := response.([]byte)
	if !ok {
		var err error
		if responseBody, err = json.Marshal(response); err != nil {
			log.Println(errors.Wrap(err, "error marshaling response body"))
		}
	}
	if _, err := w.Write(responseBody); err != nil {
		log.Println(errors.Wrap(err, "error writing response body"))
	}
}
