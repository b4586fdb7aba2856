package config

import (
	"fmt"
	"os"

	"blackjack/internal/util"
	"blackjack/pkg/playable/blackjack"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack table
type Config struct {
	loaded bool
	// Decks is how many standard decks are shuffled into the pile
	Decks int `yaml:"decks" envconfig:"decks"`
	// Computers is how many computer-controlled hands sit at the table with the player
	Computers int `yaml:"computers" envconfig:"computers"`
	Log       struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log" envconfig:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing else is specified
func DefaultConfig() Config {
	cfg := Config{
		Decks:     6,
		Computers: 0,
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values come from DefaultConfig(), then the YAML file (if it exists), then the environment.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Options returns the round options described by the configuration
func (c Config) Options() blackjack.Options {
	return blackjack.Options{
		Decks:     c.Decks,
		Computers: c.Computers,
	}
}

// Validate returns an error if the configuration cannot be used to start a round
func (c Config) Validate() error {
	return c.Options().Validate()
}
