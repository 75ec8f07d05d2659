package cr8s

import (
	"github.com/cr8s-io/cr8s/internal/sdk/meta"
)

// Crate represents a package published by a Rustacean.
type Crate struct {
	meta.TypeMeta   `json:",inline" bson:",inline"`
	meta.ObjectMeta `json:"metadata" bson:",inline"`
	RustaceanID     string `json:"rustaceanId" bson:"rustaceanId"`
	Code            string `json:"code" bson:"code"`
	Name            string `json:"name" bson:"name"`
	Version         string `json:"version" bson:"version"`
	Description     string `json:"description,omitempty" bson:"description,omitempty"`
}

func NewCrate(id, rustaceanID, code, name, version string) Crate {
	return Crate{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "Crate",
		},
		ObjectMeta: meta.ObjectMeta{
			ID: id,
		},
		RustaceanID: rustaceanID,
		Code:        code,
		Name:        name,
		Version:     version,
	}
}

// CrateList is an ordered collection of Crates.
type CrateList struct {
	meta.TypeMeta `json:",inline"`
	Items         []Crate `json:"items"`
}

func NewCrateList() CrateList {
	return CrateList{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "CrateList",
		},
	}
}
