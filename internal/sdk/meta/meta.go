package meta

import "time"

// APIVersion represents the API and major version thereof with which this
// version of the cr8s API server is compatible.
const APIVersion = "github.com/cr8s-io/cr8s"

// TypeMeta represents metadata about a resource type to help clients and
// servers mutually head off potential confusion over types (and versions
// thereof) sent over the wire.
type TypeMeta struct {
	// Kind specifies the type of a serialized resource.
	Kind string `json:"kind,omitempty"`
	// APIVersion specifies the major version of the cr8s API with which the
	// client or server having serialized the resource is compatible.
	APIVersion string `json:"apiVersion,omitempty"`
}

// ObjectMeta represents metadata about an instance of a resource. The fields
// of this type are broadly applicable to most if not all resource types.
type ObjectMeta struct {
	// ID is an immutable resource identifier.
	ID string `json:"id,omitempty" bson:"id,omitempty"`
	// Created indicates the time at which a resource was created.
	Created *time.Time `json:"created,omitempty" bson:"created,omitempty"`
}
