package config

import "strings"

// Normalize lowercases enum fields and fills empty ones with defaults.
func Normalize(settings *Settings) {
	defaults := Defaults()
	settings.Env = normalizeEnum(settings.Env, defaults.Env)
	settings.SkipPolicy = normalizeEnum(settings.SkipPolicy, defaults.SkipPolicy)
	settings.UI = normalizeEnum(settings.UI, defaults.UI)
	settings.LogFile = strings.TrimSpace(settings.LogFile)
}

func normalizeEnum(value, fallback string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return fallback
	}
	return value
}
