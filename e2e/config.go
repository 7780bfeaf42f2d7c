package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_NOW pins the clock used when a scenario omits a date
	Now string `envconfig:"E2E_NOW" default:"2020-10-15T09:00:00Z"`
	// E2E_DEBUG logs every command output
	Debug bool `envconfig:"E2E_DEBUG" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
