package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_COLOURS enables colorized headers for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_MESSAGE_TEXT overrides the text sent through every messenger
	MessageText string `envconfig:"E2E_MESSAGE_TEXT" default:"Test"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
