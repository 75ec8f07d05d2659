package users

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cr8s-io/cr8s/internal/apimachinery"
	"github.com/cr8s-io/cr8s/internal/authn"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

type endpoints struct {
	*apimachinery.BaseEndpoints
	service Service
}

// NewEndpoints returns user endpoints.
func NewEndpoints(
	baseEndpoints *apimachinery.BaseEndpoints,
	service Service,
) apimachinery.Endpoints {
	return &endpoints{
		BaseEndpoints: baseEndpoints,
		service:       service,
	}
}

func (e *endpoints) Register(router *mux.Router) {
	// Get the authenticated user
	router.HandleFunc(
		"/v1/users/me",
		e.TokenAuthFilter.Decorate(e.getMe),
	).Methods(http.MethodGet)
}

func (e *endpoints) getMe(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		apimachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				// The auth filter already loaded the user; only its public
				// fields are on the type, so this cannot leak the password
				// hash.
				user, ok := authn.UserFromContext(r.Context())
				if !ok {
					return nil, cr8s.NewErrAuthentication(
						"No authenticated user on request.",
					)
				}
				return user, nil
			},
			SuccessCode: http.StatusOK,
		},
	)
}
