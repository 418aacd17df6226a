// Package parser re-exports standalone source file parsing.
package parser

import (
	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/core"
	"github.com/microsoft/typescript-go/internal/parser"
	"github.com/microsoft/typescript-go/internal/tspath"
)

// ParseSourceFile parses source as a standalone TypeScript file with JSDoc
// retained, so doc-comment annotations survive on the resulting tree.
func ParseSourceFile(fileName string, sourceText string) *ast.SourceFile {
	opts := ast.SourceFileParseOptions{
		FileName:         fileName,
		Path:             tspath.Path(fileName),
		JSDocParsingMode: ast.JSDocParsingModeParseAll,
	}
	return parser.ParseSourceFile(opts, sourceText, core.ScriptKindTS)
}
