// Package compiler re-exports tsgo program construction and diagnostics
// collection. Program_ functions wrap exported methods so callers get
// shim-visible signatures without importing tsgo's internal packages.
package compiler

import (
	"context"

	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/checker"
	"github.com/microsoft/typescript-go/internal/compiler"
	"github.com/microsoft/typescript-go/internal/core"
	"github.com/microsoft/typescript-go/internal/vfs"
)

type (
	CompilerHost   = compiler.CompilerHost
	Program        = compiler.Program
	ProgramOptions = compiler.ProgramOptions
)

// NewCompilerHost builds a host rooted at currentDirectory. The extended
// config cache is omitted; each tsconfig is parsed once per run.
func NewCompilerHost(currentDirectory string, fs vfs.FS, defaultLibraryPath string) CompilerHost {
	return compiler.NewCompilerHost(currentDirectory, fs, defaultLibraryPath, nil, nil)
}

func NewProgram(opts ProgramOptions) *Program {
	return compiler.NewProgram(opts)
}

func Program_GetTypeChecker(p *Program, ctx context.Context) (*checker.Checker, func()) {
	return p.GetTypeChecker(ctx)
}

func Program_GetSyntacticDiagnostics(p *Program, ctx context.Context, file *ast.SourceFile) []*ast.Diagnostic {
	return p.GetSyntacticDiagnostics(ctx, file)
}

func Program_GetSemanticDiagnostics(p *Program, ctx context.Context, file *ast.SourceFile) []*ast.Diagnostic {
	return p.GetSemanticDiagnostics(ctx, file)
}

// AnyProgram is the diagnostics surface shared by compiler and incremental
// programs. Bind and semantic collection differ between the two, so
// GetDiagnosticsOfAnyProgram takes them as callbacks.
type AnyProgram interface {
	Options() *core.CompilerOptions
	GetConfigFileParsingDiagnostics() []*ast.Diagnostic
	GetSyntacticDiagnostics(ctx context.Context, file *ast.SourceFile) []*ast.Diagnostic
	GetProgramDiagnostics() []*ast.Diagnostic
	GetOptionsDiagnostics(ctx context.Context) []*ast.Diagnostic
	GetGlobalDiagnostics(ctx context.Context) []*ast.Diagnostic
	GetDeclarationDiagnostics(ctx context.Context, file *ast.SourceFile) []*ast.Diagnostic
}

// GetDiagnosticsOfAnyProgram runs tsc's diagnostics cascade. Config and
// syntactic errors suppress everything downstream; semantic checking only
// runs once the earlier stages come back clean. Declaration diagnostics
// normally require noEmit (when emitting, emit itself reports them);
// skipNoEmitCheckForDtsDiagnostics lifts that requirement.
func GetDiagnosticsOfAnyProgram(
	ctx context.Context,
	program AnyProgram,
	file *ast.SourceFile,
	skipNoEmitCheckForDtsDiagnostics bool,
	getBindDiagnostics func(context.Context, *ast.SourceFile) []*ast.Diagnostic,
	getSemanticDiagnostics func(context.Context, *ast.SourceFile) []*ast.Diagnostic,
) []*ast.Diagnostic {
	allDiagnostics := append([]*ast.Diagnostic{}, program.GetConfigFileParsingDiagnostics()...)
	configLen := len(allDiagnostics)

	allDiagnostics = append(allDiagnostics, program.GetSyntacticDiagnostics(ctx, file)...)

	if len(allDiagnostics) == configLen {
		allDiagnostics = append(allDiagnostics, program.GetProgramDiagnostics()...)
		allDiagnostics = append(allDiagnostics, getBindDiagnostics(ctx, file)...)
		if len(allDiagnostics) == configLen {
			allDiagnostics = append(allDiagnostics, program.GetOptionsDiagnostics(ctx)...)
			allDiagnostics = append(allDiagnostics, program.GetGlobalDiagnostics(ctx)...)
			if len(allDiagnostics) == configLen {
				allDiagnostics = append(allDiagnostics, getSemanticDiagnostics(ctx, file)...)
				opts := program.Options()
				if opts.GetEmitDeclarations() && (skipNoEmitCheckForDtsDiagnostics || opts.NoEmit.IsTrue()) {
					allDiagnostics = append(allDiagnostics, program.GetDeclarationDiagnostics(ctx, file)...)
				}
			}
		}
	}

	return allDiagnostics
}
