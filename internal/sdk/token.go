package cr8s

import (
	"github.com/cr8s-io/cr8s/internal/sdk/meta"
)

// Token represents an opaque bearer token issued at login.
type Token struct {
	meta.TypeMeta `json:",inline"`
	Value         string `json:"token"`
}

func NewToken(value string) Token {
	return Token{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "Token",
		},
		Value: value,
	}
}

// Credentials are the username and password presented at login. They are
// transient; nothing ever persists a Credentials value.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
