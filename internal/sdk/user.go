package cr8s

import (
	"github.com/cr8s-io/cr8s/internal/sdk/meta"
)

// User represents a principal that can authenticate to the API server with a
// username and password. The password hash is deliberately excluded from
// this type; it never travels past the users store.
type User struct {
	meta.TypeMeta   `json:",inline" bson:",inline"`
	meta.ObjectMeta `json:"metadata" bson:",inline"`
	Username        string `json:"username" bson:"username"`
}

func NewUser(id, username string) User {
	return User{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "User",
		},
		ObjectMeta: meta.ObjectMeta{
			ID: id,
		},
		Username: username,
	}
}

// UserList is an ordered collection of Users.
type UserList struct {
	meta.TypeMeta `json:",inline"`
	Items         []User `json:"items"`
}

func NewUserList() UserList {
	return UserList{
		TypeMeta: meta.TypeMeta{
			APIVersion: meta.APIVersion,
			Kind:       "UserList",
		},
	}
}
