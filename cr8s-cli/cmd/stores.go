package main

import (
	"github.com/pkg/errors"

	"github.com/cr8s-io/cr8s/internal/crates"
	cratesMongodb "github.com/cr8s-io/cr8s/internal/crates/mongodb"
	"github.com/cr8s-io/cr8s/internal/mongodb"
	"github.com/cr8s-io/cr8s/internal/roles"
	rolesMongodb "github.com/cr8s-io/cr8s/internal/roles/mongodb"
	"github.com/cr8s-io/cr8s/internal/users"
	usersMongodb "github.com/cr8s-io/cr8s/internal/users/mongodb"
)

// The CLI operates on the database directly; it does not go through the API
// server.
type stores struct {
	users  users.Store
	roles  roles.Store
	crates crates.Store
}

func getStoresFromEnvironment() (*stores, error) {
	database, err := mongodb.Database()
	if err != nil {
		return nil, errors.Wrap(err, "error connecting to database")
	}
	usersStore, err := usersMongodb.NewStore(database)
	if err != nil {
		return nil, err
	}
	rolesStore, err := rolesMongodb.NewStore(database)
	if err != nil {
		return nil, err
	}
	cratesStore, err := cratesMongodb.NewStore(database)
	if err != nil {
		return nil, err
	}
	return &stores{
		users:  usersStore,
		roles:  rolesStore,
		crates: cratesStore,
	}, nil
}
