package apimachinery

import "net/http"

// Filter is an interface for any component that can decorate an
// http.HandlerFunc, e.g. to enforce authentication before the wrapped
// handler executes.
type Filter interface {
	Decorate(http.HandlerFunc) http.HandlerFunc
}
