package apimachinery

import (
	"net/http"

	"github.com/xeipuuv/gojsonschema"
)

// InboundRequest bundles everything an endpoint needs to serve a single
// inbound API request.
type InboundRequest struct {
	W                   http.ResponseWriter
	R                   *http.Request
	ReqBodySchemaLoader gojsonschema.JSONLoader
	ReqBodyObj          interface{}
	EndpointLogic       func() (interface{}, error)
	SuccessCode         int
}
