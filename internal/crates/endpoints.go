package crates

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xeipuuv/gojsonschema"

	"github.com/cr8s-io/cr8s/internal/apimachinery"
	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

type crateRequest struct {
	RustaceanID string `json:"rustaceanId"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

type endpoints struct {
	*apimachinery.BaseEndpoints
	crateSchemaLoader gojsonschema.JSONLoader
	service           Service
}

// NewEndpoints returns crate endpoints.
func NewEndpoints(
	baseEndpoints *apimachinery.BaseEndpoints,
	service Service,
) apimachinery.Endpoints {
	return &endpoints{
		BaseEndpoints: baseEndpoints,
		crateSchemaLoader: gojsonschema.NewReferenceLoader(
			"file:///cr8s/schemas/crate.json",
		),
		service: service,
	}
}

func (e *endpoints) Register(router *mux.Router) {
	// List crates
	router.HandleFunc(
		"/v1/crates",
		e.TokenAuthFilter.Decorate(e.list),
	).Methods(http.MethodGet)

	// Get crate
	router.HandleFunc(
		"/v1/crates/{id}",
		e.TokenAuthFilter.Decorate(e.get),
	).Methods(http.MethodGet)

	// Create crate
	router.HandleFunc(
		"/v1/crates",
		e.TokenAuthFilter.Decorate(e.create),
	).Methods(http.MethodPost)

	// Update crate
	router.HandleFunc(
		"/v1/crates/{id}",
		e.TokenAuthFilter.Decorate(e.update),
	).Methods(http.MethodPut)

	// Delete crate
	router.HandleFunc(
		"/v1/crates/{id}",
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
	req := crateRequest{}
	e.ServeRequest(
		apimachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: e.crateSchemaLoader,
			ReqBodyObj:          &req,
			EndpointLogic: func() (interface{}, error) {
				crate := cr8s.Crate{}
				crate.RustaceanID = req.RustaceanID
				crate.Code = req.Code
				crate.Name = req.Name
				crate.Version = req.Version
				crate.Description = req.Description
				return e.service.Create(r.Context(), crate)
			},
			SuccessCode: http.StatusCreated,
		},
	)
}

func (e *endpoints) update(w http.ResponseWriter, r *http.Request) {
	req := crateRequest{}
	e.ServeRequest(
		apimachinery.InboundRequest{
			W:                   w,
			R:                   r,
			ReqBodySchemaLoader: e.crateSchemaLoader,
			ReqBodyObj:          &req,
			EndpointLogic: func() (interface{}, error) {
				crate := cr8s.Crate{}
				crate.ID = mux.Vars(r)["id"]
				crate.RustaceanID = req.RustaceanID
				crate.Code = req.Code
				crate.Name = req.Name
				crate.Version = req.Version
				crate.Description = req.Description
				return e.service.Update(r.Context(), crate)
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
