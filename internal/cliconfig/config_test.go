package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"save dir set", Config{SaveDir: "/saves"}, false},
		{"db path set", Config{DBPath: "/saves.db"}, false},
		{"neither set", Config{}, true},
		{"negative profile", Config{SaveDir: "/saves", ProfileID: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetterRespectsChangedFlags(t *testing.T) {
	s := newConfigSetter(map[string]bool{"save-dir": true})

	dst := "from-flag"
	s.setString("save-dir", "from-file", &dst)
	if dst != "from-flag" {
		t.Errorf("changed flag overwritten: %q", dst)
	}

	s.setString("import-dir", "from-file", &dst)
	if dst != "from-file" {
		t.Errorf("unchanged flag not set: %q", dst)
	}

	// Empty values never overwrite.
	s.setString("import-dir", "", &dst)
	if dst != "from-file" {
		t.Errorf("empty value overwrote: %q", dst)
	}
}

func TestSetterIntAndBoolFromString(t *testing.T) {
	s := newConfigSetter(nil)

	var profile int
	if err := s.setIntFromString("profile", "3", &profile); err != nil {
		t.Fatalf("setIntFromString: %v", err)
	}
	if profile != 3 {
		t.Errorf("profile = %d, want 3", profile)
	}
	if err := s.setIntFromString("profile", "abc", &profile); err == nil {
		t.Error("non-numeric value must error")
	}
	if err := s.setIntFromString("profile", "-2", &profile); err != nil || profile != 3 {
		t.Errorf("non-positive value must be ignored, profile = %d", profile)
	}

	var byDate bool
	s.setBoolFromString("by-date", "true", &byDate)
	if !byDate {
		t.Error("\"true\" must set the flag")
	}
	s.setBoolFromString("by-date", "0", &byDate)
	if byDate {
		t.Error("\"0\" must clear the flag")
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
save_dir = "/data/saves"
db_path = "/data/saves.db"
profile_id = 2
sort_by_update_time = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	if fc.SaveDir != "/data/saves" || fc.DBPath != "/data/saves.db" || fc.ProfileID != 2 {
		t.Errorf("unexpected file config: %+v", fc)
	}
	if fc.SortByUpdateTime == nil || !*fc.SortByUpdateTime {
		t.Error("sort_by_update_time = nil or false, want true")
	}
}

func TestLoadFileConfigErrors(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file must error")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("save_dir = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("malformed TOML must error")
	}
}

func TestApplyFileConfigPrecedence(t *testing.T) {
	cfg := Config{SaveDir: "/from-flag"}
	yes := true
	fc := FileConfig{
		SaveDir:          "/from-file",
		ImportDir:        "/imports",
		SortByUpdateTime: &yes,
	}

	changed := map[string]bool{"save-dir": true}
	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}
	if cfg.SaveDir != "/from-flag" {
		t.Errorf("SaveDir = %q, explicit flag must win over file", cfg.SaveDir)
	}
	if cfg.ImportDir != "/imports" {
		t.Errorf("ImportDir = %q, want file value", cfg.ImportDir)
	}
	if !cfg.SortByUpdateTime {
		t.Error("SortByUpdateTime not applied from file")
	}
}

func TestApplyEnvConfigPrecedence(t *testing.T) {
	t.Setenv("FRIENDSHIP_SAVE_DIR", "/from-env")
	t.Setenv("FRIENDSHIP_PROFILE", "4")
	t.Setenv("FRIENDSHIP_BY_DATE", "1")

	cfg := Config{SaveDir: "/from-flag"}
	changed := map[string]bool{"save-dir": true}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig: %v", err)
	}
	if cfg.SaveDir != "/from-flag" {
		t.Errorf("SaveDir = %q, explicit flag must win over environment", cfg.SaveDir)
	}
	if cfg.ProfileID != 4 {
		t.Errorf("ProfileID = %d, want 4", cfg.ProfileID)
	}
	if !cfg.SortByUpdateTime {
		t.Error("SortByUpdateTime not applied from environment")
	}
}

func TestApplyEnvConfigBadProfile(t *testing.T) {
	t.Setenv("FRIENDSHIP_PROFILE", "not-a-number")

	cfg := Config{}
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Error("non-numeric FRIENDSHIP_PROFILE must error")
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if FileExists(path) {
		t.Error("missing file reported as existing")
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("existing file reported as missing")
	}
}
