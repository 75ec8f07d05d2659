package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "cr8s"
	app.Usage = "Cr8s administration"
	app.Commands = []cli.Command{
		{
			Name:  "user",
			Usage: "Manage users",
			Subcommands: []cli.Command{
				{
					Name:      "create",
					Usage:     "Create a user with one or more roles attached",
					ArgsUsage: "USERNAME PASSWORD ROLE[,ROLE...]",
					Action:    userCreate,
				},
				{
					Name:   "list",
					Usage:  "List all users and their roles",
					Action: userList,
				},
				{
					Name:      "delete",
					Usage:     "Delete a user by ID",
					ArgsUsage: "USER_ID",
					Action:    userDelete,
				},
			},
		},
		{
			Name:  "digest",
			Usage: "Digest emails",
			Subcommands: []cli.Command{
				{
					Name:  "send",
					Usage: "Email a digest of recently added crates",
					Flags: []cli.Flag{
						cli.IntFlag{
							Name:  flagHours,
							Usage: "Include crates added within this many hours",
							Value: 24,
						},
						cli.StringSliceFlag{
							Name:  flagTo,
							Usage: "Digest recipient (may be specified multiple times)",
						},
						cli.StringFlag{
							Name:  flagTemplates,
							Usage: "Glob from which to load email templates",
							Value: "templates/email/*.html",
						},
					},
					Action: digestSend,
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Printf("\n%s\n\n", err)
		os.Exit(1)
	}
}
