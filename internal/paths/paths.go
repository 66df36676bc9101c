// Package paths resolves the callnum config and log locations.
//
// When running with sudo, these functions resolve paths to the original
// user's directories (via SUDO_USER) instead of root's directories.
package paths

import (
	"os"
	"os/user"
	"path/filepath"
)

// UserHomeDir returns the home directory of the actual user.
// If running with sudo, returns the SUDO_USER's home directory, not root's.
func UserHomeDir() (string, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" && sudoUser != "root" {
		u, err := user.Lookup(sudoUser)
		if err == nil {
			return u.HomeDir, nil
		}
		// Fall through if lookup fails
	}
	return os.UserHomeDir()
}

// UserConfigDir returns the config directory of the actual user.
// On Linux this is typically ~/.config
func UserConfigDir() (string, error) {
	homeDir, err := UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config"), nil
}

// CallnumDir returns the callnum config directory,
// ~/.config/callnum for the actual user.
func CallnumDir() (string, error) {
	configDir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "callnum"), nil
}

// ConfigPath returns the path to the callnum config file,
// ~/.config/callnum/config.toml.
func ConfigPath() (string, error) {
	dir, err := CallnumDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LogPath returns the default log file path,
// ~/.config/callnum/logs/callnum.log.
func LogPath() (string, error) {
	dir, err := CallnumDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "logs", "callnum.log"), nil
}
