// Package config loads the bot configuration: a JSON file with the
// credentials and version, plus environment variables for everything that
// differs between deployments.
package config

import (
	"encoding/json"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config is the content of config.json.
type Config struct {
	Token         string `json:"token"`
	ApplicationID uint64 `json:"application_id"`
	Version       string `json:"version"`
}

// Env holds the settings read from the environment.
type Env struct {
	ConfigPath   string   `env:"BOT_CONFIG" envDefault:"config.json"`
	Prefix       string   `env:"BOT_PREFIX" envDefault:"-"`
	Delimiters   []string `env:"BOT_DELIMITERS" envDefault:", |," envSeparator:"|"`
	LogLevel     string   `env:"LOG_LEVEL" envDefault:"info"`
	CommandRate  float64  `env:"COMMAND_RATE" envDefault:"1"`
	CommandBurst int      `env:"COMMAND_BURST" envDefault:"3"`
	DiscordAPI   string   `env:"DISCORD_API" envDefault:"https://discord.com/api/v8"`
}

// LoadEnv reads a .env file if there is one and parses the environment.
func LoadEnv() (*Env, error) {
	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	switch {
	case e.Prefix == "":
		return nil, errors.New("BOT_PREFIX must not be empty")
	case !(e.CommandRate > 0):
		return nil, errors.Errorf("COMMAND_RATE must be positive, got %v", e.CommandRate)
	case e.CommandBurst < 1:
		return nil, errors.Errorf("COMMAND_BURST must be at least 1, got %d", e.CommandBurst)
	}
	return &e, nil
}

// Load reads and validates the JSON config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	var c Config
	if err = json.NewDecoder(f).Decode(&c); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	switch {
	case c.Token == "":
		return nil, errors.Errorf("%s: token is missing", path)
	case c.ApplicationID == 0:
		return nil, errors.Errorf("%s: application_id is missing", path)
	case c.Version == "":
		return nil, errors.Errorf("%s: version is missing", path)
	}
	return &c, nil
}
