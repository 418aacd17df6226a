package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/tsconst/tsconst/internal/analyzer"
	"github.com/tsconst/tsconst/internal/config"
)

// TimingReport accumulates per-phase durations of one extraction run.
type TimingReport struct {
	TSConfig time.Duration
	Program  time.Duration
	Checker  time.Duration
	Analyze  time.Duration
	Manifest time.Duration
	GoFile   time.Duration
	Total    time.Duration
}

// Print writes the phase breakdown to stderr, one row per phase.
func (t *TimingReport) Print() {
	rows := []struct {
		label string
		d     time.Duration
	}{
		{"tsconfig", t.TSConfig},
		{"program", t.Program},
		{"checker", t.Checker},
		{"analyze", t.Analyze},
		{"manifest", t.Manifest},
		{"gofile", t.GoFile},
		{"total", t.Total},
	}
	fmt.Fprintf(os.Stderr, "\n--- timing ---\n")
	for _, r := range rows {
		fmt.Fprintf(os.Stderr, "  %-14s %s\n", r.label+":", r.d.Round(time.Millisecond))
	}
}

// ConfigResult ties a loaded config to where it came from, so commands can
// resolve the config's relative paths against its own directory.
type ConfigResult struct {
	Config *config.Config
	Path   string // absolute path of the loaded file, empty when none was found
	Dir    string // base for resolving relative config paths, cwd when none was found
}

// loadOrDiscoverConfig loads the config at configPath, falling back to
// discovery in cwd when no path was given. Extract, check, and watch all go
// through here. A missing config is not an error; the defaults apply.
func loadOrDiscoverConfig(configPath, cwd string) (*ConfigResult, error) {
	path := configPath
	if path == "" {
		path = config.Discover(cwd)
		if path == "" {
			return &ConfigResult{Dir: cwd}, nil
		}
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return &ConfigResult{Config: cfg, Path: path, Dir: filepath.Dir(path)}, nil
}

// effectiveConfig returns the loaded config, or the built-in defaults when
// no config file was found.
func (r *ConfigResult) effectiveConfig() *config.Config {
	if r.Config != nil {
		return r.Config
	}
	cfg := config.DefaultConfig()
	return &cfg
}

// resolveAgainst makes path absolute relative to dir. Absolute paths pass
// through unchanged.
func resolveAgainst(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// printConstants writes a human-readable listing of extracted constants,
// one per line in discovery order. Unresolved constants print a "?" in the
// kind column and no value.
func printConstants(w io.Writer, constants []analyzer.Constant, baseDir string) {
	for _, c := range constants {
		rel := relPath(baseDir, c.File)
		if !c.Result.Resolved() {
			fmt.Fprintf(w, "%-30s %-8s %s:%d\n", c.Name, "?", rel, c.Line)
			continue
		}
		fmt.Fprintf(w, "%-30s %-8s %s:%d = %s\n", c.Name, c.Result.Kind, rel, c.Line, c.Result.Describe())
	}
}

// relPath shortens path relative to base for display. Falls back to the
// original path when no relative form exists.
func relPath(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
