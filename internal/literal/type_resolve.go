package literal

import (
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
)

// resolveType extracts literal information carried at the type level. This is
// the last stop of identifier resolution: a binding that does not lead back
// to a declaration can still be narrowed to a literal type, and `as const`
// data survives only here, in the type arguments of a reference type.
func (r *Resolver) resolveType(t *shimchecker.Type, depth int) Result {
	if t == nil || depth > maxDepth {
		return unresolved()
	}
	flags := t.Flags()
	if flags&shimchecker.TypeFlagsStringLiteral != 0 {
		if s, ok := t.AsLiteralType().Value().(string); ok {
			return Result{Kind: KindString, Value: s}
		}
		return unresolved()
	}
	if flags&shimchecker.TypeFlagsNumberLiteral != 0 {
		if n, ok := normalizeNumber(t.AsLiteralType().Value()); ok {
			return Result{Kind: KindNumber, Value: n}
		}
		return unresolved()
	}
	if flags&shimchecker.TypeFlagsObject != 0 {
		if t.ObjectFlags()&shimchecker.ObjectFlagsReference != 0 {
			// A parameterized reference carries its literal payload in the
			// type arguments; package them under the array policy, holes
			// included, so an `as const` tuple reconstructs the same values
			// as the equivalent syntactic literal.
			args := shimchecker.Checker_getTypeArguments(r.checker, t)
			values := make([]any, 0, len(args))
			for _, arg := range args {
				values = append(values, r.resolveType(arg, depth+1).Value)
			}
			return Result{Kind: KindArray, Value: values}
		}
		if sym := t.Symbol(); sym != nil {
			return r.resolveSymbol(sym, depth+1)
		}
	}
	return unresolved()
}
