// Package analyzer discovers exported constants in TypeScript source files
// and resolves their initializers to literal values.
package analyzer

import (
	"fmt"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	shimcompiler "github.com/microsoft/typescript-go/shim/compiler"
	shimscanner "github.com/microsoft/typescript-go/shim/scanner"
	"github.com/tsconst/tsconst/internal/literal"
)

// Constant is one extracted constant declaration.
type Constant struct {
	// Name is the exported identifier.
	Name string
	// File is the source file path as the program names it.
	File string
	// Line is the 1-based line of the declaration name.
	Line int
	// Pos and End bound the declaration in the source text.
	Pos int
	End int
	// Doc is the JSDoc description attached to the declaration, if any.
	Doc string
	// Result is the resolved literal value. A zero Result means the
	// initializer could not be reduced to a literal.
	Result literal.Result
}

// Analyzer walks a program's source files for `export const` declarations.
type Analyzer struct {
	program       *shimcompiler.Program
	resolver      *literal.Resolver
	annotatedOnly bool
	warnings      *warningLog
	seen          map[string]string // constant name -> file that first exported it
}

// New creates an analyzer over the given program. The checker may be nil,
// in which case identifier references resolve to their own text.
func New(program *shimcompiler.Program, checker *shimchecker.Checker, annotatedOnly bool) *Analyzer {
	return &Analyzer{
		program:       program,
		resolver:      literal.NewResolver(checker),
		annotatedOnly: annotatedOnly,
		warnings:      &warningLog{},
		seen:          make(map[string]string),
	}
}

// Warnings returns all warnings raised during analysis.
func (a *Analyzer) Warnings() []Warning {
	if a.warnings == nil {
		return nil
	}
	return a.warnings.Warnings
}

// AnalyzeProgram extracts constants from all source files matching the
// include patterns. Files are visited in program order, so repeated runs
// over the same project produce the same constant list.
func (a *Analyzer) AnalyzeProgram(includePatterns []string, excludePatterns []string) []Constant {
	var all []Constant

	for _, sf := range a.program.GetSourceFiles() {
		if sf.IsDeclarationFile {
			continue
		}

		if !MatchesGlob(sf.FileName(), includePatterns, excludePatterns) {
			continue
		}

		all = append(all, a.AnalyzeSourceFile(sf)...)
	}

	return all
}

// AnalyzeSourceFile extracts all exported constants from a source file.
func (a *Analyzer) AnalyzeSourceFile(sf *ast.SourceFile) []Constant {
	var constants []Constant

	for _, stmt := range sf.Statements.Nodes {
		if stmt.Kind != ast.KindVariableStatement {
			continue
		}
		constants = append(constants, a.analyzeVariableStatement(stmt, sf)...)
	}

	return constants
}

// analyzeVariableStatement extracts constants from one `export const` statement.
// Returns nil when the statement is not an exported const, is opted out via
// @tsconst-ignore, or lacks a @tsconst marker in annotatedOnly mode.
func (a *Analyzer) analyzeVariableStatement(stmt *ast.Node, sf *ast.SourceFile) []Constant {
	if !ast.HasSyntacticModifier(stmt, ast.ModifierFlagsExport) {
		return nil
	}

	varStmt := stmt.AsVariableStatement()
	declList := varStmt.DeclarationList
	if declList == nil || declList.Flags&ast.NodeFlagsConst == 0 {
		return nil
	}

	doc := extractConstJSDoc(stmt)
	if doc.Ignored {
		return nil
	}
	if a.annotatedOnly && !doc.Annotated {
		return nil
	}

	var constants []Constant
	for _, decl := range declList.AsVariableDeclarationList().Declarations.Nodes {
		varDecl := decl.AsVariableDeclaration()
		nameNode := varDecl.Name()
		if nameNode == nil {
			continue
		}

		if nameNode.Kind != ast.KindIdentifier {
			// Destructuring exports bind several names to one initializer;
			// extracting them would need pattern-aware value slicing.
			pos := shimscanner.SkipTrivia(sf.Text(), nameNode.Pos())
			a.warnings.add(sf.FileName(), a.lineOf(sf, pos), WarnSkippedDestructuring,
				"destructured export skipped, only identifier-named constants are extracted")
			continue
		}

		name := nameNode.Text()
		namePos := shimscanner.SkipTrivia(sf.Text(), nameNode.Pos())
		line := a.lineOf(sf, namePos)

		if varDecl.Initializer == nil {
			a.warnings.add(sf.FileName(), line, WarnSkippedNoInitializer,
				fmt.Sprintf("constant %q has no initializer and was skipped", name))
			continue
		}

		if firstFile, dup := a.seen[name]; dup {
			a.warnings.add(sf.FileName(), line, WarnDuplicateName,
				fmt.Sprintf("constant %q already exported from %s — keeping the first occurrence", name, firstFile))
			continue
		}
		a.seen[name] = sf.FileName()

		constants = append(constants, Constant{
			Name:   name,
			File:   sf.FileName(),
			Line:   line,
			Pos:    namePos,
			End:    decl.End(),
			Doc:    doc.Description,
			Result: a.resolver.Resolve(decl),
		})
	}

	return constants
}

// lineOf returns the 1-based line for a position in a source file.
func (a *Analyzer) lineOf(sf *ast.SourceFile, pos int) int {
	line, _ := shimscanner.GetECMALineAndCharacterOfPosition(sf, pos)
	return line + 1
}
