package internal

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestInputError(t *testing.T) {
	err := &InputError{Field: "window", Reason: "from must precede to"}
	if !strings.Contains(err.Error(), "window") || !strings.Contains(err.Error(), "from must precede to") {
		t.Errorf("InputError message = %q", err.Error())
	}
}

func TestStoreError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := &StoreError{Op: "append", Path: "/tmp/db.sqlite3", Err: cause}

	if !strings.Contains(err.Error(), "append") || !strings.Contains(err.Error(), "/tmp/db.sqlite3") {
		t.Errorf("StoreError message = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("StoreError should unwrap to its cause")
	}
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("bad yaml")
	err := &ConfigError{Path: "/tmp/config.yaml", Err: cause}

	if !strings.Contains(err.Error(), "/tmp/config.yaml") {
		t.Errorf("ConfigError message = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("ConfigError should unwrap to its cause")
	}
}
