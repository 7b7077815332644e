package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	settings, err := Load(LoadOptions{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings != Defaults() {
		t.Fatalf("expected defaults %+v, got %+v", Defaults(), settings)
	}
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "skip_policy: Return\nui: plain\nclear_screen: false\nlog_file: trivia.log\n")
	settings, err := Load(LoadOptions{Dir: dir})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.SkipPolicy != SkipReturn {
		t.Fatalf("expected skip policy %q, got %q", SkipReturn, settings.SkipPolicy)
	}
	if settings.UI != UIPlain {
		t.Fatalf("expected ui %q, got %q", UIPlain, settings.UI)
	}
	if settings.ClearScreen {
		t.Fatalf("expected clear_screen false")
	}
	if settings.LogFile != "trivia.log" {
		t.Fatalf("expected log file trivia.log, got %q", settings.LogFile)
	}
}

func TestLoadRejectsUnknownYAMLKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "rounds: 3\n")
	if _, err := Load(LoadOptions{Dir: dir}); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestLoadEnvironmentOverridesFileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "ui: plain\nenv: local\n")
	writeFile(t, dir, DotEnvFileName, "TRIVIA_UI=color\nTRIVIA_ENV=production\n")
	settings, err := Load(LoadOptions{Dir: dir, Environ: []string{"TRIVIA_ENV=local", "UNRELATED=1"}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.UI != UIColor {
		t.Fatalf("expected .env to override file ui, got %q", settings.UI)
	}
	if settings.Env != EnvLocal {
		t.Fatalf("expected process env to win over .env, got %q", settings.Env)
	}
}

func TestLoadExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "custom.yml", "skip_policy: return\n")
	settings, err := Load(LoadOptions{Dir: dir, Environ: []string{ConfigPathEnv + "=custom.yml"}})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.SkipPolicy != SkipReturn {
		t.Fatalf("expected skip policy from explicit file, got %q", settings.SkipPolicy)
	}
}

func TestLoadMissingExplicitConfigFails(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(LoadOptions{Dir: dir, Environ: []string{ConfigPathEnv + "=nope.yml"}})
	if err == nil || !strings.Contains(err.Error(), "read config") {
		t.Fatalf("expected read config error, got %v", err)
	}
}

func TestValidateCollectsAllIssues(t *testing.T) {
	settings := Settings{Env: "staging", SkipPolicy: "keep", UI: "fancy"}
	err := Validate(settings)
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validation.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", validation.Issues)
	}
	if !strings.Contains(err.Error(), "skip_policy") {
		t.Fatalf("expected skip_policy in message, got %q", err.Error())
	}
}

func TestNormalizeFillsEmptyEnums(t *testing.T) {
	settings := Settings{Env: " PRODUCTION ", LogFile: "  "}
	Normalize(&settings)
	if settings.Env != EnvProduction {
		t.Fatalf("expected production, got %q", settings.Env)
	}
	if settings.SkipPolicy != SkipDiscard || settings.UI != UIAuto {
		t.Fatalf("expected defaults for empty enums, got %+v", settings)
	}
	if settings.LogFile != "" {
		t.Fatalf("expected trimmed log file, got %q", settings.LogFile)
	}
}
