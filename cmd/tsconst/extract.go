package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tsconst/tsconst/internal/analyzer"
	"github.com/tsconst/tsconst/internal/codegen"
	"github.com/tsconst/tsconst/internal/compiler"
	"github.com/tsconst/tsconst/internal/config"
	"github.com/tsconst/tsconst/internal/diagnostic"
	"github.com/tsconst/tsconst/internal/extractcache"
)

// extractFlags holds the parsed command line for the extract subcommand.
type extractFlags struct {
	configPath   string
	tsconfigPath string
	manifestPath string
	goFile       string
	goPackage    string
	strict       bool
	noCache      bool
	pretty       bool
	quiet        bool
}

// parseExtractArgs parses the extract subcommand's flags. A returned error
// signals a usage problem; the flag set has already printed it.
func parseExtractArgs(args []string) (extractFlags, error) {
	var flags extractFlags

	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.StringVar(&flags.configPath, "config", "", "Path to tsconst config file (tsconst.json)")
	fs.StringVar(&flags.tsconfigPath, "project", "", "Path to tsconfig.json (overrides config)")
	fs.StringVar(&flags.tsconfigPath, "p", "", "Path to tsconfig.json (shorthand for --project)")
	fs.StringVar(&flags.manifestPath, "manifest", "", "Manifest output path (overrides config)")
	fs.StringVar(&flags.goFile, "go-out", "", "Generated Go file path (overrides config)")
	fs.StringVar(&flags.goPackage, "go-package", "", "Package clause for the generated Go file")
	fs.BoolVar(&flags.strict, "strict", false, "Treat extraction warnings as errors")
	fs.BoolVar(&flags.noCache, "no-cache", false, "Extract even when outputs are up to date")
	fs.BoolVar(&flags.pretty, "pretty", false, "Print the extracted constants to stdout")
	fs.BoolVar(&flags.quiet, "quiet", false, "Suppress progress and warning output")

	fs.Usage = func() {
		fmt.Println("Usage: tsconst extract [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		fs.PrintDefaults()
	}

	err := fs.Parse(args)
	return flags, err
}

// applyExtractOverrides layers CLI flags over the loaded config. Paths given
// on the command line are resolved against the working directory here;
// paths from the config file resolve against the config location later.
func applyExtractOverrides(cfg *config.Config, flags extractFlags, cwd string) {
	if flags.tsconfigPath != "" {
		cfg.TSConfig = resolveAgainst(cwd, flags.tsconfigPath)
	}
	if flags.manifestPath != "" {
		cfg.Output.Manifest = resolveAgainst(cwd, flags.manifestPath)
	}
	if flags.goFile != "" {
		cfg.Output.GoFile = resolveAgainst(cwd, flags.goFile)
	}
	if flags.goPackage != "" {
		cfg.Output.GoPackage = flags.goPackage
	}
	if flags.strict {
		cfg.Strict = true
	}
}

// runExtract executes the extraction pipeline:
// config -> tsconfig -> program -> checker -> analyze -> manifest -> Go file.
func runExtract(args []string) int {
	flags, err := parseExtractArgs(args)
	if err != nil {
		return 2
	}

	extractStart := time.Now()
	timing := &TimingReport{}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not get working directory: %v\n", err)
		return 2
	}

	cfgResult, err := loadOrDiscoverConfig(flags.configPath, cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	cfg := cfgResult.effectiveConfig()
	applyExtractOverrides(cfg, flags, cwd)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if cfgResult.Path != "" && !flags.quiet {
		fmt.Fprintf(os.Stderr, "loaded config from %s\n", filepath.Base(cfgResult.Path))
	}

	tsconfigPath := resolveAgainst(cfgResult.Dir, cfg.TSConfig)
	manifestPath := resolveAgainst(cfgResult.Dir, cfg.Output.Manifest)
	goFilePath := resolveAgainst(cfgResult.Dir, cfg.Output.GoFile)

	// Step 1: Parse tsconfig using tsgo's native JSONC parser (handles
	// comments, trailing commas, extends).
	tsconfigStart := time.Now()
	tsFS := compiler.CreateDefaultFS()
	host := compiler.CreateDefaultHost(cwd, tsFS)
	reporter := compiler.NewDiagnosticWriter(os.Stderr, cwd, compiler.IsPrettyOutput())

	if !flags.quiet {
		fmt.Fprintf(os.Stderr, "extracting with tsconfig: %s\n", relPath(cwd, tsconfigPath))
	}

	parsedConfig, diags, err := compiler.ParseTSConfig(tsFS, cwd, tsconfigPath, host)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}
	if len(diags) > 0 {
		reporter.WriteAll(diags)
		reporter.WriteSummary(diags)
		return 1
	}
	timing.TSConfig = time.Since(tsconfigStart)

	// Step 2: Cache check. The inputs hash covers the tsconst config, the
	// tsconfig, and every file the project names, so any edit invalidates it.
	cachePath := extractcache.CachePath(manifestPath, cfgResult.Path)
	inputsHash := extractcache.HashInputs(cfgResult.Path, tsconfigPath, parsedConfig.FileNames())
	if !flags.noCache {
		if cached := extractcache.Load(cachePath); cached.IsValid(inputsHash) {
			if !flags.quiet {
				fmt.Fprintln(os.Stderr, "outputs up to date (use --no-cache to force)")
			}
			return 0
		}
	}

	// Step 3: Create program and bind source files.
	programStart := time.Now()
	program, programDiags, err := compiler.CreateProgramFromConfig(true, parsedConfig, host)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	if len(programDiags) > 0 {
		reporter.WriteAll(programDiags)
		reporter.WriteSummary(programDiags)
		return 1
	}

	// Refuse to extract from files that did not parse; resolution over a
	// broken AST reports nonsense.
	if synDiags := compiler.SyntaxDiagnostics(program); compiler.CountErrors(synDiags) > 0 {
		reporter.WriteAll(synDiags)
		reporter.WriteSummary(synDiags)
		return 1
	}
	timing.Program = time.Since(programStart)

	// Step 4: Type checker for cross-file identifier resolution.
	checkerStart := time.Now()
	checker, release := compiler.GetTypeChecker(program)
	if checker == nil {
		fmt.Fprintln(os.Stderr, "error: could not get type checker")
		return 1
	}
	defer release()
	timing.Checker = time.Since(checkerStart)

	// Step 5: Discover exported constants and resolve their initializers.
	analyzeStart := time.Now()
	a := analyzer.New(program, checker, cfg.Constants.AnnotatedOnly)
	constants := a.AnalyzeProgram(cfg.Include, cfg.Exclude)
	timing.Analyze = time.Since(analyzeStart)

	resolved := 0
	for _, c := range constants {
		if c.Result.Resolved() {
			resolved++
		}
	}
	if !flags.quiet {
		fmt.Fprintf(os.Stderr, "resolved %d of %d constant(s)\n", resolved, len(constants))
	}

	collector := diagnostic.NewCollector(cfg.Strict, flags.quiet)
	for _, w := range a.Warnings() {
		category := diagnostic.CategorySkipped
		if w.Kind == analyzer.WarnDuplicateName {
			category = diagnostic.CategoryDuplicate
		}
		collector.Warn(category, relPath(cfgResult.Dir, w.File), w.Line, w.Message)
	}
	for _, c := range constants {
		if !c.Result.Resolved() {
			collector.WarnWithHint(diagnostic.CategoryUnresolved, relPath(cfgResult.Dir, c.File), c.Line,
				fmt.Sprintf("cannot resolve %q to a compile-time value", c.Name),
				"initializers must be literals, references to other constants, or expressions over them")
		}
	}
	collector.Print(os.Stderr)

	if flags.pretty {
		printConstants(os.Stdout, constants, cfgResult.Dir)
	}

	// Step 6: Write the JSON manifest.
	manifestStart := time.Now()
	if manifestPath != "" {
		manifest := codegen.BuildManifest(constants, cfgResult.Dir)
		jsonBytes, jsonErr := codegen.ManifestJSON(manifest)
		if jsonErr != nil {
			fmt.Fprintf(os.Stderr, "error generating manifest: %v\n", jsonErr)
			return 1
		}
		if writeErr := writeOutput(manifestPath, jsonBytes); writeErr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", writeErr)
			return 1
		}
		if !flags.quiet {
			fmt.Fprintf(os.Stderr, "wrote manifest: %s\n", relPath(cwd, manifestPath))
		}
	}
	timing.Manifest = time.Since(manifestStart)

	// Step 7: Write the generated Go file when configured.
	goFileStart := time.Now()
	if goFilePath != "" {
		goBytes, genErr := codegen.GenerateGoFile(constants, cfg.Output.GoPackage)
		if genErr != nil {
			fmt.Fprintf(os.Stderr, "error generating Go file: %v\n", genErr)
			return 1
		}
		if writeErr := writeOutput(goFilePath, goBytes); writeErr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", writeErr)
			return 1
		}
		if !flags.quiet {
			fmt.Fprintf(os.Stderr, "wrote Go file: %s\n", relPath(cwd, goFilePath))
		}
	}
	timing.GoFile = time.Since(goFileStart)

	// Step 8: Save the cache, unless diagnostics reached error severity.
	// A cache hit skips diagnostics entirely, so only clean runs may be
	// replayed from cache.
	if collector.HasErrors() {
		extractcache.Delete(cachePath)
	} else {
		outputs := []string{}
		if manifestPath != "" {
			outputs = append(outputs, manifestPath)
		}
		if goFilePath != "" {
			outputs = append(outputs, goFilePath)
		}
		if saveErr := extractcache.Save(cachePath, extractcache.New(inputsHash, outputs)); saveErr != nil && !flags.quiet {
			fmt.Fprintf(os.Stderr, "warning: could not save cache: %v\n", saveErr)
		}
	}

	if !flags.quiet && (collector.ErrorCount() > 0 || collector.WarningCount() > 0) {
		fmt.Fprintf(os.Stderr, "%s\n", collector.Summary())
	}

	timing.Total = time.Since(extractStart)
	if !flags.quiet {
		timing.Print()
	}

	if collector.HasErrors() {
		return 1
	}
	return 0
}

// writeOutput writes an output file, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
