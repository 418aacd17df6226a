package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsconst/tsconst/internal/analyzer"
	"github.com/tsconst/tsconst/internal/compiler"
	"github.com/tsconst/tsconst/internal/diagnostic"
)

// checkFlags holds the parsed command line for the check subcommand.
type checkFlags struct {
	configPath   string
	tsconfigPath string
	strict       bool
	pretty       bool
	checkTypes   bool
}

// parseCheckArgs parses the check subcommand's flags.
func parseCheckArgs(args []string) (checkFlags, error) {
	var flags checkFlags

	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.StringVar(&flags.configPath, "config", "", "Path to tsconst config file (tsconst.json)")
	fs.StringVar(&flags.tsconfigPath, "project", "", "Path to tsconfig.json (overrides config)")
	fs.StringVar(&flags.tsconfigPath, "p", "", "Path to tsconfig.json (shorthand for --project)")
	fs.BoolVar(&flags.strict, "strict", false, "Treat extraction warnings as errors")
	fs.BoolVar(&flags.pretty, "pretty", false, "Print the extracted constants to stdout")
	fs.BoolVar(&flags.checkTypes, "check-types", false, "Type-check the project before checking constants")

	fs.Usage = func() {
		fmt.Println("Usage: tsconst check [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		fs.PrintDefaults()
	}

	err := fs.Parse(args)
	return flags, err
}

// runCheck runs discovery and resolution and reports diagnostics without
// writing any outputs. The exit code tells CI whether every constant
// resolved: 0 clean, 1 diagnostics at error severity.
func runCheck(args []string) int {
	flags, err := parseCheckArgs(args)
	if err != nil {
		return 2
	}

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
	if flags.tsconfigPath != "" {
		cfg.TSConfig = resolveAgainst(cwd, flags.tsconfigPath)
	}
	if flags.strict {
		cfg.Strict = true
	}
	if cfgResult.Path != "" {
		fmt.Fprintf(os.Stderr, "loaded config from %s\n", filepath.Base(cfgResult.Path))
	}

	collector := diagnostic.NewCollector(cfg.Strict, false)

	// Loading already rejected invalid configs; what remains are advisory
	// findings like a bare directory include or an aggressive poll interval.
	if cfgResult.Config != nil {
		for _, w := range cfgResult.Config.ValidateDetailed().Warnings {
			collector.Warn(diagnostic.CategoryConfig, filepath.Base(cfgResult.Path), 0, w)
		}
	}

	tsconfigPath := resolveAgainst(cfgResult.Dir, cfg.TSConfig)

	tsFS := compiler.CreateDefaultFS()
	host := compiler.CreateDefaultHost(cwd, tsFS)
	reporter := compiler.NewDiagnosticWriter(os.Stderr, cwd, compiler.IsPrettyOutput())

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

	if synDiags := compiler.SyntaxDiagnostics(program); compiler.CountErrors(synDiags) > 0 {
		reporter.WriteAll(synDiags)
		reporter.WriteSummary(synDiags)
		return 1
	}

	// Full type check on request. The incremental wrapper reuses any
	// .tsbuildinfo the project's own builds left behind, so repeated CI runs
	// only re-check changed files; without one it degrades to a fresh check.
	typeErrors := 0
	if flags.checkTypes {
		incr := compiler.CreateIncrementalProgram(program, nil, host, parsedConfig)
		tsDiags := compiler.IncrementalDiagnostics(incr, false)
		if len(tsDiags) > 0 {
			reporter.WriteAll(tsDiags)
			reporter.WriteSummary(tsDiags)
		}
		typeErrors = compiler.CountErrors(tsDiags)
	}

	checker, release := compiler.GetTypeChecker(program)
	if checker == nil {
		fmt.Fprintln(os.Stderr, "error: could not get type checker")
		return 1
	}
	defer release()

	a := analyzer.New(program, checker, cfg.Constants.AnnotatedOnly)
	constants := a.AnalyzeProgram(cfg.Include, cfg.Exclude)

	for _, w := range a.Warnings() {
		category := diagnostic.CategorySkipped
		if w.Kind == analyzer.WarnDuplicateName {
			category = diagnostic.CategoryDuplicate
		}
		collector.Warn(category, relPath(cfgResult.Dir, w.File), w.Line, w.Message)
	}
	resolved := 0
	for _, c := range constants {
		if c.Result.Resolved() {
			resolved++
			continue
		}
		collector.WarnWithHint(diagnostic.CategoryUnresolved, relPath(cfgResult.Dir, c.File), c.Line,
			fmt.Sprintf("cannot resolve %q to a compile-time value", c.Name),
			"initializers must be literals, references to other constants, or expressions over them")
	}
	collector.Print(os.Stderr)

	if flags.pretty {
		printConstants(os.Stdout, constants, cfgResult.Dir)
	}

	fmt.Fprintf(os.Stderr, "checked %d constant(s), %d resolved: %s\n", len(constants), resolved, collector.Summary())

	if collector.HasErrors() || typeErrors > 0 {
		return 1
	}
	return 0
}
