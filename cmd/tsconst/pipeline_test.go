package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsconst/tsconst/internal/analyzer"
	"github.com/tsconst/tsconst/internal/literal"
)

// ── loadOrDiscoverConfig tests ───────────────────────────────────────────────

const minimalConfig = `{
	"include": ["src/**/*.ts"],
	"output": {"manifest": "dist/constants.json"}
}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestLoadOrDiscoverConfig_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "tools")
	os.MkdirAll(sub, 0755)
	writeFile(t, filepath.Join(sub, "tsconst.json"), minimalConfig)

	result, err := loadOrDiscoverConfig(filepath.Join("tools", "tsconst.json"), dir)
	if err != nil {
		t.Fatalf("loadOrDiscoverConfig error: %v", err)
	}
	if result.Config == nil {
		t.Fatal("expected config to load")
	}
	if result.Path != filepath.Join(sub, "tsconst.json") {
		t.Errorf("Path = %q, want %q", result.Path, filepath.Join(sub, "tsconst.json"))
	}
	if result.Dir != sub {
		t.Errorf("Dir = %q, want %q (config file location)", result.Dir, sub)
	}
}

func TestLoadOrDiscoverConfig_ExplicitPathMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := loadOrDiscoverConfig("no-such-config.json", dir)
	if err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadOrDiscoverConfig_Discovery(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tsconst.json"), minimalConfig)

	result, err := loadOrDiscoverConfig("", dir)
	if err != nil {
		t.Fatalf("loadOrDiscoverConfig error: %v", err)
	}
	if result.Config == nil {
		t.Fatal("expected discovered config")
	}
	if filepath.Base(result.Path) != "tsconst.json" {
		t.Errorf("Path = %q, want tsconst.json discovered", result.Path)
	}
	if result.Dir != dir {
		t.Errorf("Dir = %q, want %q", result.Dir, dir)
	}
}

func TestLoadOrDiscoverConfig_DiscoveryFallbackName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tsconst.config.json"), minimalConfig)

	result, err := loadOrDiscoverConfig("", dir)
	if err != nil {
		t.Fatalf("loadOrDiscoverConfig error: %v", err)
	}
	if result.Config == nil {
		t.Fatal("expected discovered config")
	}
	if filepath.Base(result.Path) != "tsconst.config.json" {
		t.Errorf("Path = %q, want tsconst.config.json discovered", result.Path)
	}
}

func TestLoadOrDiscoverConfig_NoneFound(t *testing.T) {
	dir := t.TempDir()

	result, err := loadOrDiscoverConfig("", dir)
	if err != nil {
		t.Fatalf("loadOrDiscoverConfig error: %v", err)
	}
	if result.Config != nil {
		t.Errorf("Config = %+v, want nil (none found)", result.Config)
	}
	if result.Path != "" {
		t.Errorf("Path = %q, want empty", result.Path)
	}
	if result.Dir != dir {
		t.Errorf("Dir = %q, want cwd %q", result.Dir, dir)
	}
}

func TestLoadOrDiscoverConfig_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "tsconst.json"), `{"include": []}`)

	_, err := loadOrDiscoverConfig("", dir)
	if err == nil {
		t.Error("expected validation error for empty include")
	}
}

func TestConfigResult_EffectiveConfigDefaults(t *testing.T) {
	result := &ConfigResult{Dir: "/work"}
	cfg := result.effectiveConfig()

	if cfg.TSConfig != "tsconfig.json" {
		t.Errorf("TSConfig = %q, want default", cfg.TSConfig)
	}
	if cfg.Output.Manifest != "dist/constants.json" {
		t.Errorf("Manifest = %q, want default", cfg.Output.Manifest)
	}
	if len(cfg.Include) == 0 {
		t.Error("default include patterns missing")
	}
}

// ── path helpers ─────────────────────────────────────────────────────────────

func TestResolveAgainst(t *testing.T) {
	tests := []struct {
		dir  string
		path string
		want string
	}{
		{"/work", "out.json", filepath.Join("/work", "out.json")},
		{"/work", "/abs/out.json", "/abs/out.json"},
		{"/work", "", ""},
	}
	for _, tt := range tests {
		if got := resolveAgainst(tt.dir, tt.path); got != tt.want {
			t.Errorf("resolveAgainst(%q, %q) = %q, want %q", tt.dir, tt.path, got, tt.want)
		}
	}
}

func TestRelPath(t *testing.T) {
	if got := relPath("/a/b", "/a/b/src/x.ts"); got != "src/x.ts" {
		t.Errorf("relPath = %q, want %q", got, "src/x.ts")
	}
	// Unrelatable paths fall back to the input
	if got := relPath("/a/b", "c.ts"); got != "c.ts" {
		t.Errorf("relPath = %q, want fallback %q", got, "c.ts")
	}
}

// ── printConstants ───────────────────────────────────────────────────────────

func TestPrintConstants(t *testing.T) {
	constants := []analyzer.Constant{
		{
			Name:   "SERVICE_NAME",
			File:   "/proj/src/consts.ts",
			Line:   1,
			Result: literal.Result{Kind: literal.KindString, Value: "billing"},
		},
		{
			Name: "STARTED_AT",
			File: "/proj/src/consts.ts",
			Line: 2,
		},
	}

	var buf bytes.Buffer
	printConstants(&buf, constants, "/proj")
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "SERVICE_NAME") || !strings.Contains(lines[0], `= "billing"`) {
		t.Errorf("resolved line = %q", lines[0])
	}
	if !strings.Contains(lines[0], "src/consts.ts:1") {
		t.Errorf("resolved line missing location: %q", lines[0])
	}
	if !strings.Contains(lines[1], "STARTED_AT") || !strings.Contains(lines[1], "?") {
		t.Errorf("unresolved line = %q", lines[1])
	}
	if strings.Contains(lines[1], "=") {
		t.Errorf("unresolved line should have no value: %q", lines[1])
	}
}
