package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigFileName = ".trivia.yml"
	DotEnvFileName = ".env"
	EnvPrefix      = "TRIVIA_"
	ConfigPathEnv  = EnvPrefix + "CONFIG"
)

// resolveConfigPath picks the explicit config path or the default file in dir.
// It returns "" when no default file exists.
func resolveConfigPath(dir, explicit string) (string, error) {
	if explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(dir, explicit)
		}
		return explicit, nil
	}
	candidate := filepath.Join(dir, ConfigFileName)
	info, err := os.Stat(candidate)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("stat config path %q: %w", candidate, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("config path %q is a directory", candidate)
	}
	return candidate, nil
}
