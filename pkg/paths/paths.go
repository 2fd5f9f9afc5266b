// Package paths provides centralized path handling for farmgate.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigFile points at an explicit config file, bypassing the search order
	EnvConfigFile = "FARMGATE_CONFIG"

	// EnvConfigDir overrides the XDG config directory for farmgate
	EnvConfigDir = "FARMGATE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for farmgate
	EnvStateDir = "FARMGATE_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for farmgate-specific files
	AppDirName = "farmgate"

	// ConfigFileName is the canonical config file name
	ConfigFileName = "farmgate.toml"

	// LogFileName is the name of the log file inside the state directory
	LogFileName = "farmgate.log"
)

// ConfigDir returns the directory searched for the user config file.
// FARMGATE_CONFIG_DIR takes precedence over the XDG config home.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory for state files such as logs.
// FARMGATE_STATE_DIR takes precedence over the XDG state home.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFile returns the path to the log file
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ConfigFileCandidates returns the config file search order. An explicit
// FARMGATE_CONFIG wins outright; otherwise the working directory is tried
// before the XDG config directory, TOML before YAML.
func ConfigFileCandidates() []string {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return []string{path}
	}
	dir := ConfigDir()
	return []string{
		ConfigFileName,
		"farmgate.yaml",
		"farmgate.yml",
		filepath.Join(dir, ConfigFileName),
		filepath.Join(dir, "farmgate.yaml"),
		filepath.Join(dir, "farmgate.yml"),
	}
}

// FindConfigFile returns the first existing config file from the search
// order, or an empty string when none exists.
func FindConfigFile() string {
	for _, candidate := range ConfigFileCandidates() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
