package mail

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const envconfigPrefix = "SMTP"

// Config represents settings for connecting to an SMTP relay.
type Config struct {
	Host     string `envconfig:"HOST" required:"true"`
	Port     int    `envconfig:"PORT" default:"587"`
	Username string `envconfig:"USERNAME" required:"true"`
	Password string `envconfig:"PASSWORD" required:"true"`
	From     string `envconfig:"FROM" default:"Cr8s <info@cr8s.io>"`
}

// GetConfigFromEnvironment returns configuration derived from environment
// variables.
func GetConfigFromEnvironment() (Config, error) {
	c := Config{}
	if err := envconfig.Process(envconfigPrefix, &c); err != nil {
		return c, errors.Wrap(
			err,
			"error getting smtp configuration from environment",
		)
	}
	return c, nil
}
