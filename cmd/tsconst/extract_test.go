package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsconst/tsconst/internal/analyzer"
	"github.com/tsconst/tsconst/internal/codegen"
	"github.com/tsconst/tsconst/internal/compiler"
	"github.com/tsconst/tsconst/internal/config"
	"github.com/tsconst/tsconst/internal/extractcache"
)

// ── parseExtractArgs tests ───────────────────────────────────────────────────

func TestParseExtractArgs_Defaults(t *testing.T) {
	f, err := parseExtractArgs(nil)
	if err != nil {
		t.Fatalf("parseExtractArgs error: %v", err)
	}
	if f.configPath != "" {
		t.Errorf("configPath = %q, want empty", f.configPath)
	}
	if f.tsconfigPath != "" {
		t.Errorf("tsconfigPath = %q, want empty", f.tsconfigPath)
	}
	if f.manifestPath != "" || f.goFile != "" || f.goPackage != "" {
		t.Error("output overrides should be empty by default")
	}
	if f.strict || f.noCache || f.pretty || f.quiet {
		t.Error("boolean flags should be false by default")
	}
}

func TestParseExtractArgs_AllFlags(t *testing.T) {
	args := []string{
		"--config", "tsconst.json",
		"--project", "tsconfig.build.json",
		"--manifest", "out/constants.json",
		"--go-out", "gen/constants.go",
		"--go-package", "constants",
		"--strict",
		"--no-cache",
		"--pretty",
		"--quiet",
	}
	f, err := parseExtractArgs(args)
	if err != nil {
		t.Fatalf("parseExtractArgs error: %v", err)
	}

	if f.configPath != "tsconst.json" {
		t.Errorf("configPath = %q, want %q", f.configPath, "tsconst.json")
	}
	if f.tsconfigPath != "tsconfig.build.json" {
		t.Errorf("tsconfigPath = %q, want %q", f.tsconfigPath, "tsconfig.build.json")
	}
	if f.manifestPath != "out/constants.json" {
		t.Errorf("manifestPath = %q, want %q", f.manifestPath, "out/constants.json")
	}
	if f.goFile != "gen/constants.go" {
		t.Errorf("goFile = %q, want %q", f.goFile, "gen/constants.go")
	}
	if f.goPackage != "constants" {
		t.Errorf("goPackage = %q, want %q", f.goPackage, "constants")
	}
	if !f.strict || !f.noCache || !f.pretty || !f.quiet {
		t.Error("all boolean flags should be true")
	}
}

func TestParseExtractArgs_ProjectShortFlag(t *testing.T) {
	f, err := parseExtractArgs([]string{"-p", "tsconfig.app.json"})
	if err != nil {
		t.Fatalf("parseExtractArgs error: %v", err)
	}
	if f.tsconfigPath != "tsconfig.app.json" {
		t.Errorf("tsconfigPath = %q, want %q", f.tsconfigPath, "tsconfig.app.json")
	}
}

func TestParseExtractArgs_RepeatedFlags(t *testing.T) {
	// Last value wins
	f, err := parseExtractArgs([]string{
		"-p", "first.json",
		"--project", "second.json",
	})
	if err != nil {
		t.Fatalf("parseExtractArgs error: %v", err)
	}
	if f.tsconfigPath != "second.json" {
		t.Errorf("tsconfigPath = %q, want %q (last value wins)", f.tsconfigPath, "second.json")
	}
}

func TestParseExtractArgs_UnknownFlag(t *testing.T) {
	_, err := parseExtractArgs([]string{"--frobnicate"})
	if err == nil {
		t.Error("expected error for unknown flag, got nil")
	}
}

func TestParseExtractArgs_ValueFlagAtEnd(t *testing.T) {
	// --config without a value at end of args should error, not panic
	_, err := parseExtractArgs([]string{"--config"})
	if err == nil {
		t.Error("expected error for missing flag value, got nil")
	}
}

// ── applyExtractOverrides tests ──────────────────────────────────────────────

func TestApplyExtractOverrides_PathsResolveAgainstCwd(t *testing.T) {
	cfg := config.DefaultConfig()
	flags := extractFlags{
		tsconfigPath: "tsconfig.build.json",
		manifestPath: "out/constants.json",
		goFile:       "gen/constants.go",
		goPackage:    "constants",
	}
	applyExtractOverrides(&cfg, flags, "/work")

	if cfg.TSConfig != filepath.Join("/work", "tsconfig.build.json") {
		t.Errorf("TSConfig = %q, want resolved against cwd", cfg.TSConfig)
	}
	if cfg.Output.Manifest != filepath.Join("/work", "out/constants.json") {
		t.Errorf("Manifest = %q, want resolved against cwd", cfg.Output.Manifest)
	}
	if cfg.Output.GoFile != filepath.Join("/work", "gen/constants.go") {
		t.Errorf("GoFile = %q, want resolved against cwd", cfg.Output.GoFile)
	}
	if cfg.Output.GoPackage != "constants" {
		t.Errorf("GoPackage = %q, want %q", cfg.Output.GoPackage, "constants")
	}
}

func TestApplyExtractOverrides_EmptyFlagsKeepConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Manifest = "custom/manifest.json"
	cfg.Strict = true

	applyExtractOverrides(&cfg, extractFlags{}, "/work")

	if cfg.TSConfig != "tsconfig.json" {
		t.Errorf("TSConfig = %q, want untouched default", cfg.TSConfig)
	}
	if cfg.Output.Manifest != "custom/manifest.json" {
		t.Errorf("Manifest = %q, want untouched", cfg.Output.Manifest)
	}
	// --strict can only turn strict on, never off
	if !cfg.Strict {
		t.Error("Strict should remain true")
	}
}

// ── writeOutput tests ────────────────────────────────────────────────────────

func TestWriteOutput_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "out.json")

	if err := writeOutput(path, []byte(`{"schema":1}`)); err != nil {
		t.Fatalf("writeOutput error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != `{"schema":1}` {
		t.Errorf("content = %q", data)
	}
}

// ── extraction pipeline integration ──────────────────────────────────────────

// setupTSProject creates a temp dir with a tsconfig.json and the given source
// files. tsgo requires at least one source file.
func setupTSProject(t *testing.T, tsconfigContent string, sources map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte(tsconfigContent), 0644)

	for name, content := range sources {
		path := filepath.Join(dir, filepath.FromSlash(name))
		os.MkdirAll(filepath.Dir(path), 0755)
		os.WriteFile(path, []byte(content), 0644)
	}

	return dir
}

func TestExtractPipeline_FullIntegration(t *testing.T) {
	dir := setupTSProject(t, `{
		"compilerOptions": {
			"target": "es2022",
			"strict": true
		},
		"include": ["src/**/*.ts"]
	}`, map[string]string{
		"src/consts.ts": `export const MAX_RETRIES = 5;
export const RETRY_LIMIT = MAX_RETRIES;
export const SERVICE_NAME = "billing";
export const TIMEOUT_MS = MAX_RETRIES * 1000;
export const STARTED_AT = Date.now();
`,
	})

	tsFS := compiler.CreateDefaultFS()
	host := compiler.CreateDefaultHost(dir, tsFS)

	parsed, diags, err := compiler.ParseTSConfig(tsFS, dir, "tsconfig.json", host)
	if err != nil {
		t.Fatalf("ParseTSConfig error: %v", err)
	}
	if len(diags) > 0 {
		t.Fatalf("ParseTSConfig diagnostics: %v", diags)
	}

	program, programDiags, err := compiler.CreateProgramFromConfig(true, parsed, host)
	if err != nil {
		t.Fatalf("CreateProgramFromConfig error: %v", err)
	}
	if len(programDiags) > 0 {
		t.Fatalf("program diagnostics: %v", programDiags)
	}

	checker, release := compiler.GetTypeChecker(program)
	if checker == nil {
		t.Fatal("could not get type checker")
	}
	defer release()

	a := analyzer.New(program, checker, false)
	constants := a.AnalyzeProgram([]string{"src/**/*.ts"}, nil)

	if len(constants) != 5 {
		t.Fatalf("got %d constants, want 5: %+v", len(constants), constants)
	}

	byName := map[string]analyzer.Constant{}
	for _, c := range constants {
		byName[c.Name] = c
	}

	if c := byName["MAX_RETRIES"]; !c.Result.Resolved() || c.Result.Value != 5.0 {
		t.Errorf("MAX_RETRIES = %+v, want number 5", c.Result)
	}
	if c := byName["RETRY_LIMIT"]; !c.Result.Resolved() || c.Result.Value != 5.0 {
		t.Errorf("RETRY_LIMIT = %+v, want number 5 (via MAX_RETRIES)", c.Result)
	}
	if c := byName["TIMEOUT_MS"]; c.Result.Resolved() {
		t.Errorf("TIMEOUT_MS resolved to %+v, want unresolved (arithmetic)", c.Result)
	}
	if c := byName["STARTED_AT"]; c.Result.Resolved() {
		t.Errorf("STARTED_AT resolved to %+v, want unresolved (runtime call)", c.Result)
	}

	// Manifest: unresolved constants are omitted
	manifest := codegen.BuildManifest(constants, dir)
	if len(manifest.Constants) != 3 {
		t.Fatalf("manifest has %d constants, want 3", len(manifest.Constants))
	}

	jsonBytes, err := codegen.ManifestJSON(manifest)
	if err != nil {
		t.Fatalf("ManifestJSON error: %v", err)
	}

	manifestPath := filepath.Join(dir, "dist", "constants.json")
	if err := writeOutput(manifestPath, jsonBytes); err != nil {
		t.Fatalf("writeOutput error: %v", err)
	}

	var readBack struct {
		Schema    int `json:"schema"`
		Constants map[string]struct {
			Kind  string `json:"kind"`
			Value any    `json:"value"`
			File  string `json:"file"`
			Line  int    `json:"line"`
		} `json:"constants"`
	}
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	if err := json.Unmarshal(data, &readBack); err != nil {
		t.Fatalf("unmarshaling manifest: %v", err)
	}
	if readBack.Schema != 1 {
		t.Errorf("schema = %d, want 1", readBack.Schema)
	}
	entry, ok := readBack.Constants["MAX_RETRIES"]
	if !ok {
		t.Fatal("manifest missing MAX_RETRIES")
	}
	if entry.Kind != "number" || entry.Value != 5.0 {
		t.Errorf("MAX_RETRIES entry = %+v, want number 5", entry)
	}
	if entry.File != "src/consts.ts" {
		t.Errorf("MAX_RETRIES file = %q, want %q", entry.File, "src/consts.ts")
	}

	// Generated Go file
	goBytes, err := codegen.GenerateGoFile(constants, "constants")
	if err != nil {
		t.Fatalf("GenerateGoFile error: %v", err)
	}
	goSrc := string(goBytes)
	if !strings.Contains(goSrc, "package constants") {
		t.Errorf("generated Go file missing package clause:\n%s", goSrc)
	}
	if !strings.Contains(goSrc, "MaxRetries") {
		t.Errorf("generated Go file missing MaxRetries:\n%s", goSrc)
	}
	if strings.Contains(goSrc, "StartedAt") {
		t.Errorf("unresolved constant leaked into Go file:\n%s", goSrc)
	}

	// Cache round trip: valid after save, invalid after a source edit
	tsconfigPath := filepath.Join(dir, "tsconfig.json")
	cachePath := extractcache.CachePath(manifestPath, "")
	hash := extractcache.HashInputs("", tsconfigPath, parsed.FileNames())

	if err := extractcache.Save(cachePath, extractcache.New(hash, []string{manifestPath})); err != nil {
		t.Fatalf("cache save error: %v", err)
	}
	if !extractcache.Load(cachePath).IsValid(hash) {
		t.Error("cache should be valid right after save")
	}

	srcPath := filepath.Join(dir, "src", "consts.ts")
	os.WriteFile(srcPath, []byte("export const MAX_RETRIES = 6;\n"), 0644)
	newHash := extractcache.HashInputs("", tsconfigPath, parsed.FileNames())
	if extractcache.Load(cachePath).IsValid(newHash) {
		t.Error("cache should be invalid after a source edit")
	}
}
