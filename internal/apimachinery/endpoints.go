package apimachinery

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"

	cr8s "github.com/cr8s-io/cr8s/internal/sdk"
)

// Endpoints is an interface for any component that can register one or more
// routes with a router.
type Endpoints interface {
	Register(router *mux.Router)
}

// BaseEndpoints provides shared request-serving machinery to all endpoints
// implementations: request body validation and unmarshaling, invocation of
// endpoint logic, and mapping of typed errors to HTTP status codes.
type BaseEndpoints struct {
	TokenAuthFilter Filter
}

func (b *BaseEndpoints) readAndValidateRequestBody(
	w http.ResponseWriter,
	r *http.Request,
	bodySchemaLoader gojsonschema.JSONLoader,
	bodyObj interface{},
) bool {
	defer r.Body.Close()
	bodyBytes, err := ioutil.ReadAll(r.Body)
	if err != nil {
		// Log it in case something is actually wrong...
		log.Println(errors.Wrap(err, "error reading request body"))
		// But we're going to assume this is because the request body is
		// missing, so we'll treat it as a bad request.
		b.WriteAPIResponse(
			w,
			http.StatusBadRequest,
			cr8s.NewErrBadRequest("Could not read request body."),
		)
		return false
	}
	if bodySchemaLoader != nil {
		var validationResult *gojsonschema.Result
		validationResult, err = gojsonschema.Validate(
			bodySchemaLoader,
			gojsonschema.NewBytesLoader(bodyBytes),
		)
		if err != nil {
			// Log it in case something is actually wrong...
			log.Println(errors.Wrap(err, "error validating request body"))
			// But as long as the schema itself was valid, the most likely
			// scenario here is that the request body wasn't valid JSON, so
			// we'll treat this as a bad request.
			b.WriteAPIResponse(
				w,
				http.StatusBadRequest,
				cr8s.NewErrBadRequest("Could not validate request body."),
			)
			return false
		}
		if !validationResult.Valid() {
			// We don't bother to log this because this is DEFINITELY a bad
			// request.
			verrStrs := make([]string, len(validationResult.Errors()))
			for i, verr := range validationResult.Errors() {
				verrStrs[i] = verr.String()
			}
			b.WriteAPIResponse(
				w,
				http.StatusBadRequest,
				cr8s.NewErrBadRequest(
					"Request body failed JSON validation",
					verrStrs...,
				),
			)
			return false
		}
	}
	if bodyObj != nil {
		if err = json.Unmarshal(bodyBytes, bodyObj); err != nil {
			log.Println(errors.Wrap(err, "error unmarshaling request body"))
			// We were already able to validate the request body, which means
			// it was valid JSON. If something went wrong with unmarshaling,
			// it's NOT because of a bad request-- it's a real, internal
			// problem.
			b.WriteAPIResponse(
				w,
				http.StatusInternalServerError,
				cr8s.NewErrInternalServer(),
			)
			return false
		}
	}
	return true
}

// ServeRequest serves an inbound API request: the body, if any, is validated
// and unmarshaled, the endpoint logic is invoked, and the result-- success
// or typed error-- is written to the response.
func (b *BaseEndpoints) ServeRequest(req InboundRequest) {
	if req.ReqBodySchemaLoader != nil || req.ReqBodyObj != nil {
		if !b.readAndValidateRequestBody(
			req.W,
			req.R,
			req.ReqBodySchemaLoader,
			req.ReqBodyObj,
		) {
			return
		}
	}
	respBodyObj, err := req.EndpointLogic()
	if err != nil {
		switch e := errors.Cause(err).(type) {
		case *cr8s.ErrAuthentication:
			b.WriteAPIResponse(req.W, http.StatusUnauthorized, e)
		case *cr8s.ErrAuthorization:
			b.WriteAPIResponse(req.W, http.StatusForbidden, e)
		case *cr8s.ErrBadRequest:
			b.WriteAPIResponse(req.W, http.StatusBadRequest, e)
		case *cr8s.ErrNotFound:
			b.WriteAPIResponse(req.W, http.StatusNotFound, e)
		case *cr8s.ErrConflict:
			b.WriteAPIResponse(req.W, http.StatusConflict, e)
		case *cr8s.ErrInternalServer:
			b.WriteAPIResponse(req.W, http.StatusInternalServerError, e)
		default:
			log.Println(err)
			b.WriteAPIResponse(
				req.W,
				http.StatusInternalServerError,
				cr8s.NewErrInternalServer(),
			)
		}
		return
	}
	b.WriteAPIResponse(req.W, req.SuccessCode, respBodyObj)
}

// WriteAPIResponse writes a JSON response body and status code.
func (b *BaseEndpoints) WriteAPIResponse(
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
