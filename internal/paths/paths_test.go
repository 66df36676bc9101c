package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUserHomeDir_NoSudo(t *testing.T) {
	os.Unsetenv("SUDO_USER")

	got, err := UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}

	expected, _ := os.UserHomeDir()
	if got != expected {
		t.Errorf("UserHomeDir() = %q, want %q", got, expected)
	}
}

func TestUserHomeDir_NonexistentSudoUser(t *testing.T) {
	// SUDO_USER set to a nonexistent user should fall back
	os.Setenv("SUDO_USER", "nonexistent_user_12345")
	defer os.Unsetenv("SUDO_USER")

	got, err := UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}

	expected, _ := os.UserHomeDir()
	if got != expected {
		t.Errorf("UserHomeDir() = %q, want %q", got, expected)
	}
}

func TestUserHomeDir_SudoUserRoot(t *testing.T) {
	// SUDO_USER=root should be ignored
	os.Setenv("SUDO_USER", "root")
	defer os.Unsetenv("SUDO_USER")

	got, err := UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() error = %v", err)
	}

	expected, _ := os.UserHomeDir()
	if got != expected {
		t.Errorf("UserHomeDir() = %q, want %q", got, expected)
	}
}

func TestConfigPath(t *testing.T) {
	os.Unsetenv("SUDO_USER")

	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}

	if filepath.Base(got) != "config.toml" {
		t.Errorf("ConfigPath() = %q, want config.toml basename", got)
	}
	if !strings.Contains(got, filepath.Join(".config", "callnum")) {
		t.Errorf("ConfigPath() = %q, want path under .config/callnum", got)
	}
}

func TestLogPath(t *testing.T) {
	os.Unsetenv("SUDO_USER")

	got, err := LogPath()
	if err != nil {
		t.Fatalf("LogPath() error = %v", err)
	}

	if filepath.Base(got) != "callnum.log" {
		t.Errorf("LogPath() = %q, want callnum.log basename", got)
	}
}
