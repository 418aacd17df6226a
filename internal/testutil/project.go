package testutil

import (
	"testing"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"

	"github.com/tsconst/tsconst/internal/compiler"
)

// Project bundles the pieces checker-backed tests need from one bound
// in-memory program.
type Project struct {
	Program *shimcompiler.Program
	Checker *shimchecker.Checker
	Release func()
}

// BuildProject parses the tsconfig.json under rootDir and builds a bound
// single-threaded program over fs, usually an overlay that shadows rootDir
// with in-memory sources. Tests must call Release when done with the
// checker.
func BuildProject(t testing.TB, rootDir string, fs vfs.FS) *Project {
	t.Helper()

	host := compiler.CreateDefaultHost(rootDir, fs)
	parsed, diags, err := compiler.ParseTSConfig(fs, rootDir, "tsconfig.json", host)
	if err != nil {
		t.Fatal(err)
	}
	if len(diags) > 0 {
		t.Fatalf("tsconfig: %v", diags[0].String())
	}

	program, progDiags, err := compiler.CreateProgramFromConfig(true, parsed, host)
	if err != nil {
		t.Fatal(err)
	}
	if len(progDiags) > 0 {
		t.Fatalf("program: %v", progDiags[0].String())
	}

	checker, release := compiler.GetTypeChecker(program)
	if checker == nil {
		t.Fatal("no type checker")
	}
	return &Project{Program: program, Checker: checker, Release: release}
}

// BuildProjectFiles is BuildProject over inline sources keyed by path
// relative to rootDir.
func BuildProjectFiles(t testing.TB, rootDir string, sources map[string]string) *Project {
	t.Helper()
	overlay := make(map[string]string, len(sources))
	for name, src := range sources {
		overlay[tspath.ResolvePath(rootDir, name)] = src
	}
	return BuildProject(t, rootDir, NewDefaultOverlayVFS(overlay))
}

// File returns the program's parsed source file for a path relative to the
// project root.
func (p *Project) File(t testing.TB, name string) *ast.SourceFile {
	t.Helper()
	sf := p.Program.GetSourceFile(name)
	if sf == nil {
		t.Fatalf("%s is not part of the program", name)
	}
	return sf
}
