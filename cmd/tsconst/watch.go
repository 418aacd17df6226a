package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/tsconst/tsconst/internal/compiler"
	"github.com/tsconst/tsconst/internal/runner"
	"github.com/tsconst/tsconst/internal/watcher"
)

// watchFlags holds the parsed command line for the watch subcommand.
type watchFlags struct {
	configPath          string
	tsconfigPath        string
	intervalMs          int
	run                 string
	preserveWatchOutput bool
}

// parseWatchArgs parses the watch subcommand's flags.
func parseWatchArgs(args []string) (watchFlags, error) {
	var flags watchFlags

	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.StringVar(&flags.configPath, "config", "", "Path to tsconst config file (tsconst.json)")
	fs.StringVar(&flags.tsconfigPath, "project", "", "Path to tsconfig.json (overrides config)")
	fs.StringVar(&flags.tsconfigPath, "p", "", "Path to tsconfig.json (shorthand for --project)")
	fs.IntVar(&flags.intervalMs, "interval", 0, "Polling interval in milliseconds (overrides config)")
	fs.StringVar(&flags.run, "run", "", "Command to run after each successful extraction (overrides config)")
	fs.BoolVar(&flags.preserveWatchOutput, "preserveWatchOutput", false, "Don't clear console between extractions")

	fs.Usage = func() {
		fmt.Println("Usage: tsconst watch [flags]")
		fmt.Println()
		fmt.Println("Flags:")
		fs.PrintDefaults()
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println("  tsconst watch")
		fmt.Println("  tsconst watch --interval 1000")
		fmt.Println("  tsconst watch --run 'go generate ./...'")
	}

	err := fs.Parse(args)
	return flags, err
}

// runWatch implements the "tsconst watch" command: extract, then re-extract
// whenever a source file, the tsconfig, or the tsconst config changes. When a
// run command is configured it is (re)started after each successful
// extraction.
func runWatch(args []string) int {
	flags, err := parseWatchArgs(args)
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

	tsconfigPath := resolveAgainst(cfgResult.Dir, cfg.TSConfig)

	// Resolve watch settings: CLI flag > config > default
	intervalMs := cfg.Watch.IntervalMs
	if flags.intervalMs > 0 {
		intervalMs = flags.intervalMs
	}
	runCmd := cfg.Watch.Run
	if flags.run != "" {
		runCmd = flags.run
	}

	// Args forwarded to extract on every (re)run. Config rediscovery happens
	// inside, so config edits take effect without restarting watch.
	extractArgs := []string{}
	if flags.configPath != "" {
		extractArgs = append(extractArgs, "--config", flags.configPath)
	}
	if flags.tsconfigPath != "" {
		extractArgs = append(extractArgs, "--project", flags.tsconfigPath)
	}

	// Initial extraction
	fmt.Fprintln(os.Stderr, "performing initial extraction...")
	extractResult := runExtract(extractArgs)
	if extractResult != 0 {
		fmt.Fprintln(os.Stderr, "initial extraction failed, watching for changes...")
	} else {
		fmt.Fprintln(os.Stderr, "initial extraction succeeded")
	}

	// Watch the static prefixes of the include patterns, plus the config
	// files and the project file set. Imports can resolve outside the
	// include roots; following the tsconfig file list catches those.
	var dirs []string
	for _, root := range watchRoots(cfg.Include, cfgResult.Dir) {
		if _, statErr := os.Stat(root); statErr == nil {
			dirs = append(dirs, root)
		}
	}
	if len(dirs) == 0 {
		dirs = []string{cfgResult.Dir}
	}

	watchedFiles := func() []string {
		files := projectFiles(cwd, tsconfigPath)
		if cfgResult.Path != "" {
			files = append(files, cfgResult.Path)
		}
		return append(files, tsconfigPath)
	}

	var proc *runner.Runner
	if runCmd != "" {
		proc = runner.New("sh", []string{"-c", runCmd}, cwd)
		// Watch mode owns the terminal for "rs"; the child must not race
		// for stdin.
		proc.DisableStdin = true
	}

	if proc != nil && extractResult == 0 {
		fmt.Fprintf(os.Stderr, "starting: %s\n", runCmd)
		if err := proc.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "error starting process: %v\n", err)
		}
	}

	var w *watcher.Watcher

	refresh := func(events []watcher.Event) {
		if !flags.preserveWatchOutput {
			// tsc --watch clears the screen between runs; match that.
			fmt.Fprint(os.Stderr, "\033[2J\033[H")
		}

		fmt.Fprintf(os.Stderr, "\ndetected %d change(s), re-extracting...\n", len(events))

		result := runExtract(extractArgs)

		if result != 0 {
			fmt.Fprintln(os.Stderr, "extraction failed, waiting for changes...")
			return
		}

		// Imports may have come or gone; refresh the followed file set.
		w.SetFiles(watchedFiles())

		if proc != nil {
			fmt.Fprintln(os.Stderr, "restarting...")
			if err := proc.Restart(); err != nil {
				fmt.Fprintf(os.Stderr, "error restarting: %v\n", err)
			}
		}

		fmt.Fprintln(os.Stderr, "To re-extract at any time, enter \"rs\".")
	}

	w = watcher.New(
		dirs,
		[]string{".ts", ".tsx", ".mts", ".cts"},
		watchedFiles(),
		100*time.Millisecond,
		refresh,
	)
	if intervalMs > 0 {
		w.SetPollInterval(time.Duration(intervalMs) * time.Millisecond)
	}

	// Stop the child on any exit path, panics included, so no orphan
	// keeps running after watch dies.
	if proc != nil {
		defer func() {
			proc.Stop()
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "tsconst watch: panic: %v\n", r)
		}
	}()

	// Ctrl-C, kill, or a closed terminal all shut down cleanly.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nshutting down...")
		w.Stop()
		if proc != nil {
			proc.Stop()
		}
	}()

	// Manual re-extract: listen for "rs" on stdin
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "rs" {
				fmt.Fprintln(os.Stderr, "\nmanual re-extract triggered...")
				result := runExtract(extractArgs)
				if result != 0 {
					fmt.Fprintln(os.Stderr, "extraction failed, waiting for changes...")
				} else if proc != nil {
					fmt.Fprintln(os.Stderr, "restarting...")
					if err := proc.Restart(); err != nil {
						fmt.Fprintf(os.Stderr, "error restarting: %v\n", err)
					}
				}
				fmt.Fprintln(os.Stderr, "To re-extract at any time, enter \"rs\".")
			}
		}
	}()
	fmt.Fprintln(os.Stderr, "To re-extract at any time, enter \"rs\".")

	fmt.Fprintln(os.Stderr, "watching for changes...")
	w.Watch()

	return 0
}

// watchRoots derives the directories to watch from include glob patterns:
// the static prefix of each pattern up to its first wildcard segment.
// Patterns with no static prefix map to the base directory.
func watchRoots(includes []string, baseDir string) []string {
	seen := map[string]bool{}
	var roots []string
	for _, pattern := range includes {
		prefix := staticPrefix(pattern)
		dir := baseDir
		if prefix != "" {
			dir = resolveAgainst(baseDir, filepath.FromSlash(prefix))
		}
		if !seen[dir] {
			seen[dir] = true
			roots = append(roots, dir)
		}
	}
	if len(roots) == 0 {
		roots = append(roots, baseDir)
	}
	return roots
}

// staticPrefix returns the leading path segments of pattern that are free of
// glob metacharacters. A fully static pattern names a file, so its last
// segment is dropped: "src/consts.ts" watches "src".
func staticPrefix(pattern string) string {
	segs := strings.Split(filepath.ToSlash(pattern), "/")
	var keep []string
	for _, seg := range segs {
		if strings.ContainsAny(seg, "*?[") {
			break
		}
		keep = append(keep, seg)
	}
	if len(keep) == len(segs) && len(keep) > 0 {
		keep = keep[:len(keep)-1]
	}
	return strings.Join(keep, "/")
}

// projectFiles returns the files the tsconfig names, so the watcher can
// follow imports living outside the include roots. Returns nil when the
// tsconfig cannot be parsed; the directory walk still covers the roots.
func projectFiles(cwd, tsconfigPath string) []string {
	tsFS := compiler.CreateDefaultFS()
	host := compiler.CreateDefaultHost(cwd, tsFS)
	parsedConfig, diags, err := compiler.ParseTSConfig(tsFS, cwd, tsconfigPath, host)
	if err != nil || len(diags) > 0 || parsedConfig == nil {
		return nil
	}
	return parsedConfig.FileNames()
}
