package cr8s

import (
	"github.com/cr8s-io/cr8s/internal/sdk/meta"
)

// Role represents a named permission group assignable to a User. Role codes
// are case-sensitive; codes outside the well-known set are permitted but
// confer no privileges.
type Role struct {
	meta.TypeMeta   `json:",inline" bson:",inline"`
	meta.ObjectMeta `json:"metadata" bson:",inline"`
	Code            string `json:"code" bson:"code"`
	Name            string `json:"name" bson:"name"`
}

func NewRole(id, code, name string) Role {
	return Role{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "Role",
		},
		ObjectMeta: meta.ObjectMeta{
			ID: id,
		},
		Code: code,
		Name: name,
	}
}
