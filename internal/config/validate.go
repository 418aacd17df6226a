package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidationResult holds config validation results.
type ValidationResult struct {
	Errors   []string
	Warnings []string
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) errf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// ValidateDetailed checks the config beyond structural JSON validity.
// Errors make the config unusable; warnings are advisory findings the check
// subcommand surfaces.
func (c *Config) ValidateDetailed() *ValidationResult {
	result := &ValidationResult{}
	c.checkPatterns(result)
	c.checkOutputs(result)
	c.checkWatch(result)
	return result
}

func (c *Config) checkPatterns(r *ValidationResult) {
	if len(c.Include) == 0 {
		r.errf("include: at least one pattern required")
	}
	for _, pattern := range c.Include {
		if !validGlob(pattern) {
			r.errf("include: malformed glob pattern %q", pattern)
			continue
		}
		if !strings.Contains(pattern, "*") && !strings.HasSuffix(pattern, ".ts") {
			r.warnf("include: pattern %q doesn't contain a wildcard or .ts extension — did you mean %q?",
				pattern, pattern+"/**/*.ts")
		}
	}
	for _, pattern := range c.Exclude {
		if !validGlob(pattern) {
			r.errf("exclude: malformed glob pattern %q", pattern)
		}
	}
}

func (c *Config) checkOutputs(r *ValidationResult) {
	if c.Output.Manifest == "" && c.Output.GoFile == "" {
		r.errf("output: at least one of manifest or goFile must be set")
	}
	if c.Output.Manifest != "" {
		if ext := filepath.Ext(c.Output.Manifest); ext != ".json" {
			r.errf("output.manifest: extension %q is invalid — expected .json", ext)
		}
	}
	if c.Output.GoFile != "" {
		if ext := filepath.Ext(c.Output.GoFile); ext != ".go" {
			r.errf("output.goFile: extension %q is invalid — expected .go", ext)
		}
		if c.Output.GoPackage == "" {
			r.errf("output.goPackage: required when output.goFile is set")
		}
	}
	if c.Output.GoPackage != "" && c.Output.GoFile == "" {
		r.warnf("output.goPackage: set without output.goFile — no Go file will be generated")
	}
}

func (c *Config) checkWatch(r *ValidationResult) {
	switch {
	case c.Watch.IntervalMs < 0:
		r.errf("watch.intervalMs: must not be negative, got %d", c.Watch.IntervalMs)
	case c.Watch.IntervalMs > 0 && c.Watch.IntervalMs < 50:
		r.warnf("watch.intervalMs: %dms polls very aggressively — 250ms is usually enough", c.Watch.IntervalMs)
	}
}
