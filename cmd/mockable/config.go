package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

const configFile = "mockable.toml"

// Config holds the generation settings. Values come from mockable.toml in
// the working directory, when present, and may be overridden by flags.
type Config struct {
	Lang      string `toml:"lang"`
	Suffix    string `toml:"suffix"`
	Helper    string `toml:"helper"`
	GoPackage string `toml:"go_package"`
}

func DefaultConfig() Config {
	return Config{
		Lang:      "iface",
		Suffix:    "_mock",
		GoPackage: "mocks",
	}
}

func LoadConfig() (Config, error) {
	c := DefaultConfig()

	_, err := toml.DecodeFile(configFile, &c)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}

		return c, fmt.Errorf("cannot load %s: %v", configFile, err)
	}

	return c, nil
}

func (c Config) Validate() error {
	switch c.Lang {
	case "iface", "go":
	default:
		return fmt.Errorf("unknown lang %q: expected \"iface\" or \"go\"", c.Lang)
	}
	if c.Suffix == "" {
		return errors.New("suffix must not be empty")
	}
	if c.Lang == "go" && c.GoPackage == "" {
		return errors.New("go_package is required when lang is \"go\"")
	}

	return nil
}
