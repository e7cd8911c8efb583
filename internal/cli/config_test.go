package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigSetAndGet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := executeRoot(t, "", "config", "set", "default_name", "starter")
	if err != nil {
		t.Fatalf("config set error: %v\noutput: %s", err, out)
	}
	if !strings.Contains(out, "Set default_name = starter") {
		t.Errorf("missing confirmation, output: %s", out)
	}

	// The value lands in ~/.mkapp/config.yaml.
	data, err := os.ReadFile(filepath.Join(home, ".mkapp", "config.yaml"))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "starter") {
		t.Errorf("config file missing value: %s", data)
	}

	out, err = executeRoot(t, "", "config", "get", "default_name")
	if err != nil {
		t.Fatalf("config get error: %v", err)
	}
	if strings.TrimSpace(out) != "starter" {
		t.Errorf("config get = %q, want %q", out, "starter")
	}
}
