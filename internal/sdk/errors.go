package cr8s

import (
	"fmt"

	"github.com/cr8s-io/cr8s/internal/sdk/meta"
)

// ErrAuthentication represents an error asserting that a request could not
// be authenticated. Deliberately carries no detail about WHY authentication
// failed-- an unknown username, a wrong password, and an expired session all
// produce an identical response.
type ErrAuthentication struct {
	meta.TypeMeta `json:",inline"`
	Reason        string `json:"reason"`
}

func NewErrAuthentication(reason string) *ErrAuthentication {
	return &ErrAuthentication{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "AuthenticationError",
		},
		Reason: reason,
	}
}

func (e *ErrAuthentication) Error() string {
	return fmt.Sprintf("Could not authenticate the request: %s", e.Reason)
}

// ErrAuthorization represents an error asserting that an authenticated
// principal is not permitted to perform the requested operation. It does not
// disclose which role would have been required.
type ErrAuthorization struct {
	meta.TypeMeta `json:",inline"`
}

func NewErrAuthorization() *ErrAuthorization {
	return &ErrAuthorization{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "AuthorizationError",
		},
	}
}

func (e *ErrAuthorization) Error() string {
	return "The request is not authorized."
}

// ErrBadRequest represents an error wherein an otherwise well-intentioned
// request cannot be processed as submitted.
type ErrBadRequest struct {
	meta.TypeMeta `json:",inline"`
	Reason        string   `json:"reason"`
	Details       []string `json:"details,omitempty"`
}

func NewErrBadRequest(reason string, details ...string) *ErrBadRequest {
	return &ErrBadRequest{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "BadRequestError",
		},
		Reason:  reason,
		Details: details,
	}
}

func (e *ErrBadRequest) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("Bad request: %s", e.Reason)
	}
	msg := fmt.Sprintf("Bad request: %s:", e.Reason)
	for i, detail := range e.Details {
		msg = fmt.Sprintf("%s\n  %d. %s", msg, i, detail)
	}
	return msg
}

// ErrNotFound represents an error wherein a requested resource does not
// exist.
type ErrNotFound struct {
	meta.TypeMeta `json:",inline"`
	Type          string `json:"type"`
	ID            string `json:"id"`
}

func NewErrNotFound(tipe, id string) *ErrNotFound {
	return &ErrNotFound{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "NotFoundError",
		},
		Type: tipe,
		ID:   id,
	}
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s %q not found.", e.Type, e.ID)
}

// ErrConflict represents an error wherein a resource cannot be created
// because one with an identical identifier already exists.
type ErrConflict struct {
	meta.TypeMeta `json:",inline"`
	Type          string `json:"type"`
	ID            string `json:"id"`
	Reason        string `json:"reason,omitempty"`
}

func NewErrConflict(tipe, id, reason string) *ErrConflict {
	return &ErrConflict{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "ConflictError",
		},
		Type:   tipe,
		ID:     id,
		Reason: reason,
	}
}

func (e *ErrConflict) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("A %s with the ID %q already exists.", e.Type, e.ID)
}

// ErrInternalServer represents a condition wherein the server encountered an
// unexpected internal error. Details are deliberately withheld from clients
// and are logged server-side instead.
type ErrInternalServer struct {
	meta.TypeMeta `json:",inline"`
}

func NewErrInternalServer() *ErrInternalServer {
	return &ErrInternalServer{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "InternalServerError",
		},
	}
}

func (e *ErrInternalServer) Error() string {
	return "An internal server error occurred."
}
