package literal

import (
	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
)

// resolveIdentifier resolves a name reference through the checker's binding.
// A name the checker cannot bind falls back to its own text; see fallbackName.
// An alias (import or re-export) is followed through exactly one hop; chains
// of re-exports beyond that are a stated limitation and stay unresolved at
// whatever the first hop yields.
func (r *Resolver) resolveIdentifier(node *ast.Node, depth int) Result {
	if r.checker == nil {
		return fallbackName(node)
	}
	sym := r.checker.GetSymbolAtLocation(node)
	if sym == nil {
		return fallbackName(node)
	}
	if sym.Flags&ast.SymbolFlagsAlias != 0 {
		sym = r.checker.GetAliasedSymbol(sym)
	}
	return r.resolveSymbol(sym, depth)
}

// fallbackName treats an unbound identifier as a string literal spelling its
// own name, so that unresolved bindings in key and name positions still
// surface as usable keys. The cost: a genuinely dangling reference is
// indistinguishable from a short string constant with the same spelling.
func fallbackName(node *ast.Node) Result {
	return Result{Kind: KindString, Value: node.Text()}
}

// resolveSymbol dispatches on the symbol's classification. A property symbol
// resolves to its name: the key-position concern, not the property's value.
// Object-literal and block-scoped bindings resolve back through their
// declaration; everything else, including bindings without a declaration,
// defers to the symbol's inferred type.
func (r *Resolver) resolveSymbol(sym *ast.Symbol, depth int) Result {
	if sym == nil {
		return unresolved()
	}
	if sym.Flags&ast.SymbolFlagsProperty != 0 {
		return Result{Kind: KindString, Value: sym.Name}
	}
	if sym.Flags&(ast.SymbolFlagsObjectLiteral|ast.SymbolFlagsBlockScopedVariable) != 0 {
		if decl := symbolDeclaration(sym); decl != nil {
			return r.resolve(decl, depth+1)
		}
	}
	return r.resolveType(shimchecker.Checker_getTypeOfSymbol(r.checker, sym), depth+1)
}

// symbolDeclaration picks the declaration to recurse into: the value
// declaration when the binder recorded one, otherwise the first declaration.
func symbolDeclaration(sym *ast.Symbol) *ast.Node {
	if sym.ValueDeclaration != nil {
		return sym.ValueDeclaration
	}
	if len(sym.Declarations) > 0 {
		return sym.Declarations[0]
	}
	return nil
}
