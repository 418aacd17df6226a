package literal

import (
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
)

// maxDepth caps recursion through bindings, aggregates and type arguments.
// Real expression nesting stays far below this; the cap exists so that
// self-referential bindings (`const x = x`) come back unresolved instead of
// overflowing the stack.
const maxDepth = 64

// Resolver computes literal values for syntax nodes. The checker supplies
// symbol lookup and type inference and may be nil, which disables identifier
// binding (identifiers then take the name fallback) while keeping every
// syntax-only path usable.
//
// A Resolver holds no per-call state and no cache: calls are independent,
// side-effect-free, and deterministic against an unchanged program. The
// syntax tree, symbols and types are read-only inputs owned by the caller.
type Resolver struct {
	checker *shimchecker.Checker
}

// NewResolver returns a Resolver backed by checker. A nil checker is valid
// for syntax-only resolution.
func NewResolver(checker *shimchecker.Checker) *Resolver {
	return &Resolver{checker: checker}
}

// Resolve computes the most specific compile-time value reachable from node.
// It never panics and has no error return; anything without a static value
// yields the zero Result.
func Resolve(node *ast.Node, checker *shimchecker.Checker) Result {
	return NewResolver(checker).Resolve(node)
}

// Resolve computes the most specific compile-time value reachable from node.
func (r *Resolver) Resolve(node *ast.Node) Result {
	return r.resolve(node, 0)
}

// resolve is the node dispatcher; every other resolution function recurses
// back through it. Unhandled kinds are unresolved.
func (r *Resolver) resolve(node *ast.Node, depth int) Result {
	if node == nil || depth > maxDepth {
		return unresolved()
	}
	switch node.Kind {
	case ast.KindNumericLiteral:
		return resolveNumber(node.Text())
	case ast.KindBigIntLiteral:
		return resolveBigInt(node.Text())
	case ast.KindStringLiteral, ast.KindNoSubstitutionTemplateLiteral:
		// Escapes and code points are already decoded into the node text.
		return Result{Kind: KindString, Value: node.Text()}
	case ast.KindRegularExpressionLiteral:
		return resolveRegExp(node.Text())
	case ast.KindTrueKeyword:
		return Result{Kind: KindBoolean, Value: true}
	case ast.KindFalseKeyword:
		return Result{Kind: KindBoolean, Value: false}
	case ast.KindPrefixUnaryExpression:
		return r.resolvePrefixUnary(node, depth)
	case ast.KindArrayLiteralExpression:
		return r.resolveArray(node, depth)
	case ast.KindParenthesizedExpression:
		return r.resolve(node.AsParenthesizedExpression().Expression, depth+1)
	case ast.KindComputedPropertyName:
		return r.resolve(node.AsComputedPropertyName().Expression, depth+1)
	case ast.KindAsExpression:
		return r.resolve(node.AsAsExpression().Expression, depth+1)
	case ast.KindTypeAssertionExpression:
		return r.resolve(node.AsTypeAssertion().Expression, depth+1)
	case ast.KindVariableDeclaration:
		decl := node.AsVariableDeclaration()
		if decl.Initializer == nil {
			return unresolved()
		}
		return r.resolve(decl.Initializer, depth+1)
	case ast.KindObjectLiteralExpression:
		return r.resolveObject(node, depth)
	case ast.KindIdentifier:
		return r.resolveIdentifier(node, depth)
	case ast.KindTemplateExpression:
		return r.resolveTemplate(node, depth)
	}
	return unresolved()
}

// resolvePrefixUnary evaluates unary minus over a numeric operand. The parser
// represents a negative literal as minus applied to a positive literal, so
// this bridges that representation; no other operator is evaluated.
func (r *Resolver) resolvePrefixUnary(node *ast.Node, depth int) Result {
	unary := node.AsPrefixUnaryExpression()
	if unary.Operator != ast.KindMinusToken {
		return unresolved()
	}
	operand := r.resolve(unary.Operand, depth+1)
	if operand.Kind != KindNumber {
		return unresolved()
	}
	return Result{Kind: KindNumber, Value: -operand.Value.(float64)}
}

// resolveRegExp compiles a regular-expression literal. The node text is the
// raw source form /body/flags; the body between the delimiters is compiled in
// ECMAScript mode and the trailing flags are dropped. A body the engine
// rejects is unresolved.
func resolveRegExp(text string) Result {
	start := strings.IndexByte(text, '/')
	end := strings.LastIndexByte(text, '/')
	if start < 0 || end <= start {
		return unresolved()
	}
	re, err := regexp2.Compile(text[start+1:end], regexp2.ECMAScript)
	if err != nil {
		return unresolved()
	}
	return Result{Kind: KindRegExp, Value: re}
}
