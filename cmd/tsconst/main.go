package main

import (
	"fmt"
	"os"
	"strings"
)

const version = "0.1.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) < 2 {
		// No subcommand: default to extract
		return runExtract(os.Args[1:])
	}

	switch os.Args[1] {
	case "extract":
		return runExtract(os.Args[2:])
	case "check":
		return runCheck(os.Args[2:])
	case "watch":
		return runWatch(os.Args[2:])
	case "--version", "-v":
		fmt.Println("tsconst", version)
		return 0
	case "--help", "-h":
		printUsage()
		return 0
	default:
		// A leading dash means flags for the default subcommand, not a
		// subcommand name.
		if strings.HasPrefix(os.Args[1], "-") {
			return runExtract(os.Args[1:])
		}
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Println("tsconst - extract compile-time constants from TypeScript projects")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  tsconst [flags]               Extract constants (default)")
	fmt.Println("  tsconst extract [flags]       Extract constants and write outputs")
	fmt.Println("  tsconst check [flags]         Report diagnostics without writing outputs")
	fmt.Println("  tsconst watch [flags]         Re-extract when source files change")
	fmt.Println()
	fmt.Println("Global Flags:")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Extract Flags:")
	fmt.Println("  --config <path>        Path to tsconst.json")
	fmt.Println("  --project, -p <path>   Path to tsconfig.json (overrides config)")
	fmt.Println("  --manifest <path>      Manifest output path (overrides config)")
	fmt.Println("  --go-out <path>        Generated Go file path (overrides config)")
	fmt.Println("  --go-package <name>    Package clause for the generated Go file")
	fmt.Println("  --strict               Treat extraction warnings as errors")
	fmt.Println("  --no-cache             Extract even when outputs are up to date")
	fmt.Println("  --pretty               Print the extracted constants to stdout")
	fmt.Println("  --quiet                Suppress progress and warning output")
	fmt.Println()
	fmt.Println("Check Flags:")
	fmt.Println("  --check-types          Type-check the project before checking constants")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  tsconst")
	fmt.Println("  tsconst extract --config tsconst.json")
	fmt.Println("  tsconst check --strict --check-types")
	fmt.Println("  tsconst watch --run 'go generate ./...'")
	fmt.Println()
}
