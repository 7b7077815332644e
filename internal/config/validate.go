package config

import (
	"fmt"
	"strings"
)

// Issue captures a validation problem with a settings field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates settings validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// issueCollector accumulates validation issues.
type issueCollector struct {
	issues []Issue
}

// add records a new validation issue.
func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

// result returns a ValidationError when issues are present.
func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks normalized settings for unsupported values.
func Validate(settings Settings) error {
	collector := &issueCollector{}
	checkEnum(collector, "env", settings.Env, EnvLocal, EnvProduction)
	checkEnum(collector, "skip_policy", settings.SkipPolicy, SkipDiscard, SkipReturn)
	checkEnum(collector, "ui", settings.UI, UIAuto, UIColor, UIPlain)
	return collector.result()
}

func checkEnum(collector *issueCollector, field, value string, allowed ...string) {
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	collector.add(field, fmt.Sprintf("unsupported value %q (expected %s)", value, strings.Join(allowed, "|")))
}
