package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/cr8s-io/cr8s/internal/users"
)

func userCreate(c *cli.Context) error {
	// Args
	if len(c.Args()) != 3 {
		return errors.New(
			"user create requires three arguments-- a username, a password, " +
				"and a comma-separated list of roles",
		)
	}
	username := c.Args()[0]
	password := c.Args()[1]
	roleCodes := strings.Split(c.Args()[2], ",")

	stores, err := getStoresFromEnvironment()
	if err != nil {
		return err
	}
	usersService := users.NewService(stores.users, stores.roles)

	user, err := usersService.Create(
		context.Background(),
		username,
		password,
		roleCodes,
	)
	if err != nil {
		return err
	}

	fmt.Printf("User created: %s (%s)\n", user.Username, user.ID)
	userRoles, err := stores.roles.FindByUser(context.Background(), user.ID)
	if err != nil {
		return errors.Wrap(err, "error finding roles for new user")
	}
	for _, role := range userRoles {
		fmt.Printf("Role assigned: %s\n", role.Code)
	}

	return nil
}
