package sessions

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xeipuuv/gojsonschema"

	"github.com/cr8s-io/cr8s/internal/apimachinery"
	"github.com/cr8s-io/cr8s/internal/authn"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

type endpoints struct {
	*apimachinery.BaseEndpoints
	credentialsSchemaLoader gojsonschema.JSONLoader
	service                 Service
}

// NewEndpoints returns session management endpoints.
func NewEndpoints(
	baseEndpoints *apimachinery.BaseEndpoints,
	service Service,
) apimachinery.Endpoints {
	return &endpoints{
		BaseEndpoints: baseEndpoints,
		credentialsSchemaLoader: gojsonschema.NewReferenceLoader(
			"file:///cr8s/schemas/credentials.json",
		),
		service: service,
	}
}

func (e *endpoints) Register(router *mux.Router) {
	// Log in
	router.HandleFunc(
		"/v1/login",
		e.create, // No filters applied to this request
	).Methods(http.MethodPost)

	// Log out
	router.HandleFunc(
		"/v1/session",
		e.TokenAuthFilter.Decorate(e.delete),
	).Methods(http.MethodDelete)
}

func (e *endpoints) create(w http.ResponseWriter, r *http.Request) {
	credentials := cr8s.Credentials{}
	e.ServeRequest(
		apimachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: e.credentialsSchemaLoader,
			ReqBodyObj:          &credentials,
			EndpointLogic: func() (interface{}, error) {
				return e.service.Create(r.Context(), credentials)
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) delete(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		apimachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return nil,
					e.service.Delete(
						r.Context(),
						authn.SessionTokenFromContext(r.Context()),
					)
			},
			SuccessCode: http.StatusOK,
		},
	)
}
