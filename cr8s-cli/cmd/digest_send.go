package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/cr8s-io/cr8s/internal/mail"
)

func digestSend(c *cli.Context) error {
	// Args
	if len(c.Args()) != 0 {
		return errors.New("digest send requires no arguments")
	}

	// Command-specific flags
	hours := c.Int(flagHours)
	to := c.StringSlice(flagTo)
	templatesGlob := c.String(flagTemplates)

	if len(to) == 0 {
		return errors.New("digest send requires at least one --to recipient")
	}

	stores, err := getStoresFromEnvironment()
	if err != nil {
		return err
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour)
	crateList, err := stores.crates.ListCreatedSince(
		context.Background(),
		since,
	)
	if err != nil {
		return err
	}
	if len(crateList.Items) == 0 {
		fmt.Println("No crates added recently; no digest sent.")
		return nil
	}

	mailConfig, err := mail.GetConfigFromEnvironment()
	if err != nil {
		return err
	}
	mailer, err := mail.NewHTMLMailer(mailConfig, templatesGlob)
	if err != nil {
		return err
	}
	if err := mailer.SendDigest(to, crateList.Items); err != nil {
		return err
	}

	fmt.Printf(
		"Digest of %d crate(s) sent to %d recipient(s).\n",
		len(crateList.Items),
		len(to),
	)

	return nil
}
