package analyzer_test

import (
	"path"
	"runtime"
	"testing"

	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	"github.com/tsconst/tsconst/internal/analyzer"
	"github.com/tsconst/tsconst/internal/testutil"
)

// analyzerTestDir returns the absolute path to testdata/analyzer/.
func analyzerTestDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return path.Join(path.Dir(filename), "..", "..", "testdata", "analyzer")
}

// analyzerEnv holds a tsgo program and checker for discovery tests.
type analyzerEnv struct {
	program *shimcompiler.Program
	checker *shimchecker.Checker
	release func()
}

// setupAnalyzer builds a program from inline sources keyed by relative path
// (e.g. "src/limits.ts"). The caller must call env.release() when done.
func setupAnalyzer(t *testing.T, sources map[string]string) *analyzerEnv {
	t.Helper()
	return wrap(testutil.BuildProjectFiles(t, analyzerTestDir(), sources))
}

// setupAnalyzerArchive is setupAnalyzer for txtar-formatted fixtures, whose
// file names are relative to the test project root.
func setupAnalyzerArchive(t *testing.T, archive []byte) *analyzerEnv {
	t.Helper()
	root := analyzerTestDir()
	return wrap(testutil.BuildProject(t, root, testutil.NewTxtarOverlayVFS(root, archive)))
}

func wrap(proj *testutil.Project) *analyzerEnv {
	return &analyzerEnv{program: proj.Program, checker: proj.Checker, release: proj.Release}
}

// analyze runs a full discovery pass over src/**/*.ts.
func (env *analyzerEnv) analyze(t *testing.T, annotatedOnly bool) ([]analyzer.Constant, []analyzer.Warning) {
	t.Helper()
	a := analyzer.New(env.program, env.checker, annotatedOnly)
	constants := a.AnalyzeProgram([]string{"src/**/*.ts"}, nil)
	return constants, a.Warnings()
}

// constantNames returns the names in declaration order.
func constantNames(constants []analyzer.Constant) []string {
	names := make([]string, len(constants))
	for i, c := range constants {
		names[i] = c.Name
	}
	return names
}

// findConstant returns the constant with the given name, failing if absent.
func findConstant(t *testing.T, constants []analyzer.Constant, name string) analyzer.Constant {
	t.Helper()
	for _, c := range constants {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("constant %q not found in %v", name, constantNames(constants))
	return analyzer.Constant{}
}

// hasWarning reports whether a warning of the given kind was collected.
func hasWarning(warnings []analyzer.Warning, kind analyzer.WarningKind) bool {
	for _, w := range warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}
