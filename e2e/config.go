package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_FIXTURE_PATH points at a JSON fixture; empty runs the built-in seed
	FixturePath string `envconfig:"E2E_FIXTURE_PATH"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_STEP_TIMEOUT bounds every asynchronous assertion
	StepTimeout string `envconfig:"E2E_STEP_TIMEOUT" default:"5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
