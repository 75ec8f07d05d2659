package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func userList(c *cli.Context) error {
	// Args
	if len(c.Args()) != 0 {
		return errors.New("user list requires no arguments")
	}

	stores, err := getStoresFromEnvironment()
	if err != nil {
		return err
	}

	userList, err := stores.users.List(context.Background())
	if err != nil {
		return err
	}

	if len(userList.Items) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	table := uitable.New()
	table.AddRow("ID", "USERNAME", "ROLES", "CREATED")
	for _, user := range userList.Items {
		userRoles, err := stores.roles.FindByUser(
			context.Background(),
			user.ID,
		)
		if err != nil {
			return errors.Wrapf(
				err,
				"error finding roles for user %q",
				user.ID,
			)
		}
		roleCodes := make([]string, len(userRoles))
		for i, role := range userRoles {
			roleCodes[i] = role.Code
		}
		table.AddRow(
			user.ID,
			user.Username,
			strings.Join(roleCodes, ", "),
			user.Created,
		)
	}
	fmt.Println(table)

	return nil
}
