package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the tsconst configuration (tsconst.json).
type Config struct {
	// TSConfig is the path to the TypeScript project file, relative to the
	// config file location (default: "tsconfig.json").
	TSConfig string `json:"tsconfig,omitempty"`

	// Include lists glob patterns for source files to scan for constants.
	Include []string `json:"include"`
	// Exclude lists glob patterns for source files to skip.
	Exclude []string `json:"exclude,omitempty"`

	Constants ConstantsConfig `json:"constants,omitempty"`
	Output    OutputConfig    `json:"output"`
	Watch     WatchConfig     `json:"watch,omitempty"`

	// Strict promotes extraction warnings (unresolved constants, skipped
	// declarations) to errors.
	Strict bool `json:"strict,omitempty"`
}

// ConstantsConfig controls which exported constants are extracted.
type ConstantsConfig struct {
	// AnnotatedOnly restricts extraction to declarations carrying a
	// @tsconst JSDoc tag. Without it, every `export const` in an included
	// file is a candidate.
	AnnotatedOnly bool `json:"annotatedOnly,omitempty"`
}

// OutputConfig specifies where extraction results are written.
type OutputConfig struct {
	// Manifest is the path of the JSON constants manifest.
	Manifest string `json:"manifest"`
	// GoFile, when set, is the path of a generated Go source file with the
	// extracted constants. Requires GoPackage.
	GoFile string `json:"goFile,omitempty"`
	// GoPackage is the package clause for the generated Go file.
	GoPackage string `json:"goPackage,omitempty"`
}

// WatchConfig specifies watch-mode settings.
type WatchConfig struct {
	// IntervalMs is the polling interval in milliseconds (default: 250).
	IntervalMs int `json:"intervalMs,omitempty"`
	// Run is a shell command started after each successful extraction and
	// restarted when outputs change (e.g. "go generate ./...").
	Run string `json:"run,omitempty"`
}

// DefaultConfig is the config an empty tsconst.json resolves to. Loaded
// files overlay it, so unset fields keep these values.
func DefaultConfig() Config {
	return Config{
		TSConfig: "tsconfig.json",
		Include:  []string{"src/**/*.ts"},
		Output: OutputConfig{
			Manifest: "dist/constants.json",
		},
		Watch: WatchConfig{
			IntervalMs: 250,
		},
	}
}

// Load reads and parses a tsconst config file (JSON).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %q: %w", path, err)
	}

	return &config, nil
}

// Discover looks for a config file in the given directory.
// Checks tsconst.json first, then tsconst.config.json.
// Returns the absolute path, or empty string if none exists.
func Discover(dir string) string {
	for _, name := range []string{"tsconst.json", "tsconst.config.json"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate rejects configs that no run could execute, like an empty
// include list or a malformed glob.
func (c *Config) Validate() error {
	if len(c.Include) == 0 {
		return fmt.Errorf("include must have at least one pattern")
	}
	for _, pattern := range c.Include {
		if !validGlob(pattern) {
			return fmt.Errorf("include: malformed glob pattern %q", pattern)
		}
	}
	for _, pattern := range c.Exclude {
		if !validGlob(pattern) {
			return fmt.Errorf("exclude: malformed glob pattern %q", pattern)
		}
	}

	if c.Output.Manifest == "" && c.Output.GoFile == "" {
		return fmt.Errorf("output: at least one of manifest or goFile must be set")
	}
	if c.Output.Manifest != "" {
		ext := filepath.Ext(c.Output.Manifest)
		if ext != ".json" {
			return fmt.Errorf("output.manifest must have a .json extension, got %q", ext)
		}
	}
	if c.Output.GoFile != "" {
		if filepath.Ext(c.Output.GoFile) != ".go" {
			return fmt.Errorf("output.goFile must have a .go extension, got %q", filepath.Ext(c.Output.GoFile))
		}
		if c.Output.GoPackage == "" {
			return fmt.Errorf("output.goPackage is required when output.goFile is set")
		}
	}

	if c.Watch.IntervalMs < 0 {
		return fmt.Errorf("watch.intervalMs must not be negative, got %d", c.Watch.IntervalMs)
	}

	return nil
}

// validGlob reports whether pattern parses as a glob. The ** segments are
// expanded by the analyzer's matcher, so the probe only needs the rest to
// satisfy filepath.Match syntax.
func validGlob(pattern string) bool {
	_, err := filepath.Match(globProbe(pattern), "probe")
	return err == nil
}

// globProbe collapses ** runs so filepath.Match can check the remainder.
func globProbe(pattern string) string {
	out := make([]rune, 0, len(pattern))
	prev := rune(0)
	for _, r := range pattern {
		if r == '*' && prev == '*' {
			prev = r
			continue
		}
		out = append(out, r)
		prev = r
	}
	return string(out)
}
