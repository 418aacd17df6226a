// Package ast re-exports the subset of tsgo's internal AST that tsconst
// consumes. The module path sits under github.com/microsoft/typescript-go/
// so the internal packages are importable from here; the aliases carry the
// internal types' methods with them.
package ast

import (
	"github.com/microsoft/typescript-go/internal/ast"
)

type (
	Node       = ast.Node
	NodeList   = ast.NodeList
	SourceFile = ast.SourceFile
	Symbol     = ast.Symbol
	Diagnostic = ast.Diagnostic
)

type Kind = ast.Kind

const (
	KindIdentifier                   = ast.KindIdentifier
	KindStringLiteral                = ast.KindStringLiteral
	KindNumericLiteral               = ast.KindNumericLiteral
	KindBigIntLiteral                = ast.KindBigIntLiteral
	KindRegularExpressionLiteral     = ast.KindRegularExpressionLiteral
	KindNoSubstitutionTemplateLiteral = ast.KindNoSubstitutionTemplateLiteral
	KindTemplateExpression           = ast.KindTemplateExpression
	KindTrueKeyword                  = ast.KindTrueKeyword
	KindFalseKeyword                 = ast.KindFalseKeyword
	KindPrefixUnaryExpression        = ast.KindPrefixUnaryExpression
	KindParenthesizedExpression      = ast.KindParenthesizedExpression
	KindArrayLiteralExpression       = ast.KindArrayLiteralExpression
	KindObjectLiteralExpression      = ast.KindObjectLiteralExpression
	KindPropertyAssignment           = ast.KindPropertyAssignment
	KindComputedPropertyName         = ast.KindComputedPropertyName
	KindAsExpression                 = ast.KindAsExpression
	KindTypeAssertionExpression      = ast.KindTypeAssertionExpression
	KindVariableStatement            = ast.KindVariableStatement
	KindVariableDeclaration          = ast.KindVariableDeclaration
	KindMinusToken                   = ast.KindMinusToken
	KindJSDocTag                     = ast.KindJSDocTag
	KindJSDocText                    = ast.KindJSDocText
	KindJSDocLink                    = ast.KindJSDocLink
	KindJSDocLinkCode                = ast.KindJSDocLinkCode
	KindJSDocLinkPlain               = ast.KindJSDocLinkPlain
)

type NodeFlags = ast.NodeFlags

const NodeFlagsConst = ast.NodeFlagsConst

type ModifierFlags = ast.ModifierFlags

const ModifierFlagsExport = ast.ModifierFlagsExport

type SymbolFlags = ast.SymbolFlags

const (
	SymbolFlagsBlockScopedVariable = ast.SymbolFlagsBlockScopedVariable
	SymbolFlagsProperty            = ast.SymbolFlagsProperty
	SymbolFlagsObjectLiteral       = ast.SymbolFlagsObjectLiteral
	SymbolFlagsAlias               = ast.SymbolFlagsAlias
)

// HasSyntacticModifier reports whether the node carries the given modifier
// in source (as opposed to flags synthesized during binding).
func HasSyntacticModifier(node *Node, flags ModifierFlags) bool {
	return ast.HasSyntacticModifier(node, flags)
}

// Diagnostic_Category exposes a diagnostic's category as a plain int so
// callers do not need tsgo's internal diagnostics package on their import
// path.
func Diagnostic_Category(d *Diagnostic) int32 {
	return int32(d.Category())
}
