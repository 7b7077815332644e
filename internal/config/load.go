package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadOptions controls where settings are read from.
type LoadOptions struct {
	// Dir is searched for .trivia.yml and .env. Defaults to the working directory.
	Dir string
	// Environ is the process environment in "KEY=value" form.
	Environ []string
}

// Load layers defaults, the YAML config file, .env, and TRIVIA_* variables.
// Process variables win over .env entries.
func Load(opts LoadOptions) (Settings, error) {
	dir := strings.TrimSpace(opts.Dir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Settings{}, fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}

	environment, err := mergeEnvironment(dir, opts.Environ)
	if err != nil {
		return Settings{}, err
	}

	settings := Defaults()
	path, err := resolveConfigPath(dir, environment[ConfigPathEnv])
	if err != nil {
		return Settings{}, err
	}
	if path != "" {
		if err := decodeFile(path, &settings); err != nil {
			return Settings{}, err
		}
	}

	if err := env.ParseWithOptions(&settings, env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	Normalize(&settings)
	if err := Validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// mergeEnvironment reads .env from dir and overlays the process environment.
func mergeEnvironment(dir string, environ []string) (map[string]string, error) {
	environment := map[string]string{}
	dotenv := filepath.Join(dir, DotEnvFileName)
	values, err := godotenv.Read(dotenv)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", DotEnvFileName, err)
	}
	for key, value := range values {
		environment[key] = value
	}
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		environment[key] = value
	}
	return environment, nil
}

// decodeFile reads a single YAML document into settings, rejecting unknown keys.
func decodeFile(path string, settings *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(settings); err != nil {
		return fmt.Errorf("parse yaml %s: %w", filepath.Base(path), err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse yaml %s: multiple documents are not supported", filepath.Base(path))
		}
		return fmt.Errorf("parse yaml %s: %w", filepath.Base(path), err)
	}
	return nil
}
