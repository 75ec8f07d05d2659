package sessions

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envconfigPrefix = "SESSIONS"

// Config is an interface for session issuance settings. Values are fixed at
// process start; nothing mutates them at runtime.
type Config interface {
	TokenLength() int
	TTL() time.Duration
}

type config struct {
	TokenLengthAttr int `envconfig:"TOKEN_LENGTH" default:"128"`
	TTLSecondsAttr  int `envconfig:"TTL_SECONDS" default:"10800"`
}

// NewConfigWithDefaults returns a Config object with default values already
// applied: 128-character tokens with a three-hour lifetime.
func NewConfigWithDefaults() Config {
	return &config{
		TokenLengthAttr: 128,
		TTLSecondsAttr:  10800,
	}
}

// GetConfigFromEnvironment returns configuration derived from environment
// variables.
func GetConfigFromEnvironment() (Config, error) {
	c := config{}
	if err := envconfig.Process(envconfigPrefix, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *config) TokenLength() int {
	return c.TokenLengthAttr
}

func (c *config) TTL() time.Duration {
	return time.Duration(c.TTLSecondsAttr) * time.Second
}
