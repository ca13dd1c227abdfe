package cliconfig

import "os"

// ApplyEnvConfig applies FRIENDSHIP_* environment variables to the config.
// Environment overrides file config but is overridden by explicit flags.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("save-dir", os.Getenv("FRIENDSHIP_SAVE_DIR"), &cfg.SaveDir)
	s.setString("import-dir", os.Getenv("FRIENDSHIP_IMPORT_DIR"), &cfg.ImportDir)
	s.setString("db", os.Getenv("FRIENDSHIP_DB"), &cfg.DBPath)

	if err := s.setIntFromString("profile", os.Getenv("FRIENDSHIP_PROFILE"), &cfg.ProfileID); err != nil {
		return err
	}
	s.setBoolFromString("by-date", os.Getenv("FRIENDSHIP_BY_DATE"), &cfg.SortByUpdateTime)

	return nil
}
