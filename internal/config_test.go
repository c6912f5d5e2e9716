package internal

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
default_org: myorg
default_repo: myrepo
assumed_end_of_work: "18:00"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DefaultOrg != "myorg" || cfg.DefaultRepo != "myrepo" {
		t.Errorf("LoadConfig() defaults = %q/%q, want myorg/myrepo", cfg.DefaultOrg, cfg.DefaultRepo)
	}

	tod := cfg.EOW()
	if tod == nil || tod.Hour != 18 || tod.Minute != 0 {
		t.Errorf("EOW() = %v, want 18:00", tod)
	}
	if lc := cfg.LinkConfig(); lc.DefaultOrg != "myorg" {
		t.Errorf("LinkConfig() = %+v", lc)
	}
}

func TestLoadConfig_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() on a missing file error = %v, want nil", err)
	}
	if cfg.DefaultOrg != "" || cfg.EOW() != nil {
		t.Errorf("LoadConfig() on a missing file = %+v, want zero values", cfg)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeConfigFile(t, "default_org: [not: closed")
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() should fail on malformed yaml")
	}
}

func TestLoadConfig_BadEndOfWork(t *testing.T) {
	for _, bad := range []string{"25:99", "18:00oops", "six pm"} {
		path := writeConfigFile(t, `assumed_end_of_work: "`+bad+`"`)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("LoadConfig() should reject end-of-work time %q", bad)
		}
	}
}

func TestConfigEOW_Unset(t *testing.T) {
	var cfg Config
	if cfg.EOW() != nil {
		t.Error("EOW() on an empty config should be nil")
	}
}
