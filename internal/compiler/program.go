// Package compiler wraps tsgo program construction for constant extraction.
//
// tsconst never emits JavaScript. Programs are built for analysis only:
// parse the tsconfig, bind the source files, and hand out a type checker
// when identifier resolution needs one.
package compiler

import (
	"context"
	"errors"
	"fmt"

	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/microsoft/typescript-go/shim/bundled"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/core"
	shimincremental "github.com/microsoft/typescript-go/shim/execute/incremental"
	"github.com/microsoft/typescript-go/shim/tsoptions"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
	"github.com/microsoft/typescript-go/shim/vfs/cachedvfs"
	"github.com/microsoft/typescript-go/shim/vfs/osvfs"
)

// CreateDefaultFS creates a filesystem using the OS filesystem with bundled libs.
func CreateDefaultFS() vfs.FS {
	return bundled.WrapFS(cachedvfs.From(osvfs.FS()))
}

// CreateDefaultHost creates a compiler host with default settings.
func CreateDefaultHost(cwd string, fs vfs.FS) shimcompiler.CompilerHost {
	return shimcompiler.NewCompilerHost(cwd, fs, bundled.LibPath())
}

// ParseTSConfig parses a tsconfig.json through tsgo's native JSONC parser, so
// comments, trailing commas, and extends chains all behave exactly as tsc.
// Problems in the config come back as diagnostics rather than an error; the
// error return is reserved for a missing file.
func ParseTSConfig(fs vfs.FS, cwd string, tsconfigPath string, host shimcompiler.CompilerHost) (*tsoptions.ParsedCommandLine, []*ast.Diagnostic, error) {
	configPath := tspath.ResolvePath(cwd, tsconfigPath)
	if !fs.FileExists(configPath) {
		return nil, nil, fmt.Errorf("could not find tsconfig at %v", configPath)
	}

	parsed, diags := tsoptions.GetParsedCommandLineOfConfigFile(tsconfigPath, &core.CompilerOptions{}, host)
	if len(diags) == 0 && parsed != nil {
		diags = parsed.Errors
	}
	if len(diags) > 0 {
		return nil, diags, nil
	}
	return parsed, nil, nil
}

// CreateProgramFromConfig creates a TypeScript program from an already-parsed
// tsconfig and binds its source files. No emit pipeline is set up.
func CreateProgramFromConfig(singleThreaded bool, parsedConfig *tsoptions.ParsedCommandLine, host shimcompiler.CompilerHost) (*shimcompiler.Program, []*ast.Diagnostic, error) {
	threading := core.TSFalse
	if singleThreaded {
		threading = core.TSTrue
	}

	program := shimcompiler.NewProgram(shimcompiler.ProgramOptions{
		Config:                      parsedConfig,
		SingleThreaded:              threading,
		Host:                        host,
		UseSourceOfProjectReference: true,
	})
	if program == nil {
		return nil, nil, errors.New("program construction failed")
	}

	if diags := program.GetProgramDiagnostics(); len(diags) > 0 {
		return nil, diags, nil
	}

	program.BindSourceFiles()
	return program, nil, nil
}

// GetTypeChecker returns the program's type checker and a release function.
// The release function must be called when resolution is finished.
func GetTypeChecker(program *shimcompiler.Program) (*shimchecker.Checker, func()) {
	return shimcompiler.Program_GetTypeChecker(program, context.Background())
}

// SyntaxDiagnostics returns parse errors across the whole program, without
// touching the type checker.
func SyntaxDiagnostics(program *shimcompiler.Program) []*ast.Diagnostic {
	return shimcompiler.Program_GetSyntacticDiagnostics(program, context.Background(), nil)
}

// gatherCascade runs every diagnostic phase tsc runs, in tsc's order: config
// and parse errors first, then program construction, bind, option, and
// global findings, then semantic and declaration checks. Bind and semantic
// collection differ between plain and incremental programs, so the caller
// supplies both.
func gatherCascade(
	program shimcompiler.AnyProgram,
	bind func(context.Context, *ast.SourceFile) []*ast.Diagnostic,
	semantic func(context.Context, *ast.SourceFile) []*ast.Diagnostic,
) []*ast.Diagnostic {
	return shimcompiler.GetDiagnosticsOfAnyProgram(
		context.Background(),
		program,
		nil,   // every source file
		false, // keep the noEmit check for .d.ts inputs
		bind,
		semantic,
	)
}

// AllDiagnostics collects the full diagnostics cascade for a program. With
// noCheck it stops after the parse phase, which skips checker construction
// entirely; on a large project that is the difference between milliseconds
// and minutes.
func AllDiagnostics(program *shimcompiler.Program, noCheck bool) []*ast.Diagnostic {
	if noCheck {
		return SyntaxDiagnostics(program)
	}
	return gatherCascade(program,
		func(context.Context, *ast.SourceFile) []*ast.Diagnostic {
			// BindSourceFiles already ran; bind findings surface through the
			// semantic pass.
			return nil
		},
		func(ctx context.Context, file *ast.SourceFile) []*ast.Diagnostic {
			return shimcompiler.Program_GetSemanticDiagnostics(program, ctx, file)
		},
	)
}

// CreateIncrementalProgram layers .tsbuildinfo state over a freshly built
// program. First callers pass oldProgram=nil and prior state is read from
// disk; long-lived callers thread their previous incremental program
// through instead.
func CreateIncrementalProgram(
	program *shimcompiler.Program,
	oldProgram *shimincremental.Program,
	host shimcompiler.CompilerHost,
	parsedConfig *tsoptions.ParsedCommandLine,
) *shimincremental.Program {
	if oldProgram == nil {
		reader := shimincremental.NewBuildInfoReader(host)
		// Nil when no .tsbuildinfo exists yet; the check simply runs fresh.
		oldProgram = shimincremental.ReadBuildInfoProgram(parsedConfig, reader, host)
	}
	return shimincremental.NewProgram(program, oldProgram, shimincremental.CreateHost(host), false)
}

// IncrementalDiagnostics is AllDiagnostics for an incremental program. The
// semantic pass re-checks only affected files and answers from cached state
// for the rest, so repeated checks over an unchanged project stay cheap.
func IncrementalDiagnostics(incrProgram *shimincremental.Program, noCheck bool) []*ast.Diagnostic {
	if noCheck {
		return incrProgram.GetSyntacticDiagnostics(context.Background(), nil)
	}
	return gatherCascade(incrProgram, incrProgram.GetBindDiagnostics, incrProgram.GetSemanticDiagnostics)
}
