package literal_test

import (
	"path"
	"reflect"
	"runtime"
	"testing"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	"github.com/tsconst/tsconst/internal/literal"
	"github.com/tsconst/tsconst/internal/testutil"
)

// resolverTestDir returns the absolute path to testdata/resolver/.
func resolverTestDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return path.Join(path.Dir(filename), "..", "..", "testdata", "resolver")
}

// resolverEnv gives checker-backed resolver tests the two things they touch:
// the checker and the main.ts syntax tree.
type resolverEnv struct {
	checker    *shimchecker.Checker
	sourceFile *ast.SourceFile
	release    func()
}

// setupResolver builds a program around a single inline main.ts. The caller
// must call env.release() when done.
func setupResolver(t *testing.T, source string) *resolverEnv {
	t.Helper()
	return setupResolverFiles(t, map[string]string{"main.ts": source})
}

// setupResolverFiles builds a program from several inline files; main.ts
// becomes env.sourceFile.
func setupResolverFiles(t *testing.T, sources map[string]string) *resolverEnv {
	t.Helper()
	proj := testutil.BuildProjectFiles(t, resolverTestDir(), sources)
	return &resolverEnv{
		checker:    proj.Checker,
		sourceFile: proj.File(t, "main.ts"),
		release:    proj.Release,
	}
}

// findDecl finds the top-level variable declaration named name in main.ts.
func (env *resolverEnv) findDecl(t *testing.T, name string) *ast.Node {
	t.Helper()
	for _, stmt := range env.sourceFile.Statements.Nodes {
		if stmt.Kind != ast.KindVariableStatement {
			continue
		}
		list := stmt.AsVariableStatement().DeclarationList.AsVariableDeclarationList()
		for _, decl := range list.Declarations.Nodes {
			if decl.AsVariableDeclaration().Name().Text() == name {
				return decl
			}
		}
	}
	t.Fatalf("declaration %q not found in main.ts", name)
	return nil
}

// resolveDecl resolves the initializer of the top-level declaration name.
func (env *resolverEnv) resolveDecl(t *testing.T, name string) literal.Result {
	t.Helper()
	init := env.findDecl(t, name).AsVariableDeclaration().Initializer
	if init == nil {
		t.Fatalf("declaration %q has no initializer", name)
	}
	return literal.Resolve(init, env.checker)
}

func assertResultKind(t *testing.T, res literal.Result, kind literal.Kind) {
	t.Helper()
	if res.Kind != kind {
		t.Fatalf("expected kind %q, got %q (value %v)", kind, res.Kind, res.Value)
	}
}

func assertUnresolvedResult(t *testing.T, res literal.Result) {
	t.Helper()
	if res.Resolved() {
		t.Fatalf("expected unresolved, got %s %v", res.Kind, res.Value)
	}
}

func assertStringResult(t *testing.T, res literal.Result, want string) {
	t.Helper()
	assertResultKind(t, res, literal.KindString)
	if got := res.Value.(string); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func assertNumberResult(t *testing.T, res literal.Result, want float64) {
	t.Helper()
	assertResultKind(t, res, literal.KindNumber)
	if got := res.Value.(float64); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func assertValueDeepEqual(t *testing.T, res literal.Result, want any) {
	t.Helper()
	if !reflect.DeepEqual(res.Value, want) {
		t.Fatalf("expected %#v, got %#v", want, res.Value)
	}
}
