package rustaceans

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xeipuuv/gojsonschema"

	"github.com/cr8s-io/cr8s/internal/apimachinery"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

type rustaceanRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type endpoints struct {
	*apimachinery.BaseEndpoints
	rustaceanSchemaLoader gojsonschema.JSONLoader
	service               Service
}

// NewEndpoints returns rustacean endpoints.
func NewEndpoints(
	baseEndpoints *apimachinery.BaseEndpoints,
	service Service,
) apimachinery.Endpoints {
	return &endpoints{
		BaseEndpoints: baseEndpoints,
		rustaceanSchemaLoader: gojsonschema.NewReferenceLoader(
			"file:///cr8s/schemas/rustacean.json",
		),
		service: service,
	}
}

func (e *endpoints) Register(router *mux.Router) {
	// List rustaceans
	router.HandleFunc(
		"/v1/rustaceans",
		e.TokenAuthFilter.Decorate(e.list),
	).Methods(http.MethodGet)

	// Get rustacean
	router.HandleFunc(
		"/v1/rustaceans/{id}",
		e.TokenAuthFilter.Decorate(e.get),
	).Methods(http.MethodGet)

	// Create rustacean
	router.HandleFunc(
		"/v1/rustaceans",
		e.TokenAuthFilter.Decorate(e.create),
	).Methods(http.MethodPost)

	// Update rustacean
	router.HandleFunc(
		"/v1/rustaceans/{id}",
		e.TokenAuthFilter.Decorate(e.update),
	).Methods(http.MethodPut)

	// Delete rustacean
	router.HandleFunc(
		"/v1/rustaceans/{id}",
		e.TokenAuthFilter.Decorate(e.delete),
	).Methods(http.MethodDelete)
}

func (e *endpoints) list(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		apimachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return e.service.List(r.Context())
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) get(w http.ResponseWriter, r *http.Request) {
	e.ServeRequest(
		apimachinery.InboundRequest{
			W: w,
			R: r,
			EndpointLogic: func() (interface{}, error) {
				return e.service.Get(r.Context(), mux.Vars(r)["id"])
			},
			SuccessCode: http.StatusOK,
		},
	)
}

func (e *endpoints) create(w http.ResponseWriter, r *http.Request) {
	req := rustaceanRequest{}
	e.ServeRequest(
		apimachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: e.rustaceanSchemaLoader,
			ReqBodyObj:          &req,
			EndpointLogic: func() (interface{}, error) {
				return e.service.Create(r.Context(), req.Name, req.Email)
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (e *endpoints) update(w http.ResponseWriter, r *http.Request) {
	req := rustaceanRequest{}
	e.ServeRequest(
		apimachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: e.rustaceanSchemaLoader,
			ReqBodyObj:          &req,
			EndpointLogic: func() (interface{}, error) {
				rustacean := cr8s.Rustacean{}
				rustacean.ID = mux.Vars(r)["id"]
				rustacean.Name = req.Name
				rustacean.Email = req.Email
				return e.service.Update(r.Context(), rustacean)
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
				return nil, e.service.Delete(r.Context(), mux.Vars(r)["id"])
			},
			SuccessCode: http.StatusNoContent,
		},
	)
}
