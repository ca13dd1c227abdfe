package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML field names.
type FileConfig struct {
	SaveDir          string `toml:"save_dir"`
	ImportDir        string `toml:"import_dir"`
	DBPath           string `toml:"db_path"`
	ProfileID        int    `toml:"profile_id"`
	SortByUpdateTime *bool  `toml:"sort_by_update_time"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.friendship/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".friendship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("save-dir", fc.SaveDir, &cfg.SaveDir)
	s.setString("import-dir", fc.ImportDir, &cfg.ImportDir)
	s.setString("db", fc.DBPath, &cfg.DBPath)
	s.setInt("profile", fc.ProfileID, &cfg.ProfileID)
	s.setBool("by-date", fc.SortByUpdateTime, &cfg.SortByUpdateTime)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
