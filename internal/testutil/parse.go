package testutil

import (
	"github.com/microsoft/typescript-go/shim/ast"
	shimparser "github.com/microsoft/typescript-go/shim/parser"
)

// ParseSource parses TypeScript source text into a bare syntax tree outside
// any program. Checker-backed resolution is unavailable on such a tree;
// syntax-only tests use this to skip program construction entirely.
func ParseSource(fileName string, source string) *ast.SourceFile {
	return shimparser.ParseSourceFile(fileName, source)
}
