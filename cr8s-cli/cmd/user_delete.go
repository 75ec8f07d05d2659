package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/cr8s-io/cr8s/internal/users"
)

func userDelete(c *cli.Context) error {
	// Args
	if len(c.Args()) != 1 {
		return errors.New("user delete requires one argument-- a user ID")
	}
	id := c.Args()[0]

	stores, err := getStoresFromEnvironment()
	if err != nil {
		return err
	}
	usersService := users.NewService(stores.users, stores.roles)

	if err := usersService.Delete(context.Background(), id); err != nil {
		return err
	}

	fmt.Printf("User %q deleted.\n", id)

	return nil
}
