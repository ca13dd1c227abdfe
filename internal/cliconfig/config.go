// Package cliconfig holds the configuration layering for the friendship
// CLI: defaults, then config file, then FRIENDSHIP_* environment
// variables, then explicitly set flags.
package cliconfig

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds CLI configuration for friendship.
type Config struct {
	SaveDir   string
	ImportDir string

	// DBPath switches the CLI to the SQLite backend when set.
	DBPath string

	ProfileID        int
	SortByUpdateTime bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		SaveDir: os.Getenv("FRIENDSHIP_SAVE_DIR"),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.SaveDir == "" && c.DBPath == "" {
		return fmt.Errorf("save-dir is required (or db)")
	}
	if c.ProfileID < 0 {
		return fmt.Errorf("profile must not be negative")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
