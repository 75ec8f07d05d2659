package cr8s

import (
	"github.com/cr8s-io/cr8s/internal/sdk/meta"
)

// Rustacean represents a crate author.
type Rustacean struct {
	meta.TypeMeta   `json:",inline" bson:",inline"`
	meta.ObjectMeta `json:"metadata" bson:",inline"`
	Name            string `json:"name" bson:"name"`
	Email           string `json:"email" bson:"email"`
}

func NewRustacean(id, name, email string) Rustacean {
	return Rustacean{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "Rustacean",
		},
		ObjectMeta: meta.ObjectMeta{
			ID: id,
		},
		Name:  name,
		Email: email,
	}
}

// RustaceanList is an ordered collection of Rustaceans.
type RustaceanList struct {
	meta.TypeMeta `json:",inline"`
	Items         []Rustacean `json:"items"`
}

func NewRustaceanList() RustaceanList {
	return RustaceanList{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "RustaceanList",
		},
	}
}
