package literal_test

import (
	"testing"

	"github.com/tsconst/tsconst/internal/literal"
)

// var bindings are function-scoped, so identifier resolution cannot take the
// declaration shortcut reserved for block-scoped bindings and must go through
// the symbol's inferred type. These tests pin the type-level paths.

func TestResolveTypeLevelStringLiteral(t *testing.T) {
	env := setupResolver(t, `
// @ts-nocheck
var v: "narrow";
export const out = v;
`)
	defer env.release()

	assertStringResult(t, env.resolveDecl(t, "out"), "narrow")
}

func TestResolveTypeLevelNumberLiteral(t *testing.T) {
	env := setupResolver(t, `
// @ts-nocheck
var v: 42;
export const out = v;
`)
	defer env.release()

	assertNumberResult(t, env.resolveDecl(t, "out"), 42)
}

func TestResolveTypeLevelAsConstTuple(t *testing.T) {
	// The tuple survives only as type arguments of the readonly reference;
	// type-level resolution must reconstruct the same values the syntactic
	// literal would produce.
	env := setupResolver(t, `
var tags = ["alpha", "beta"] as const;
export const out = tags;
`)
	defer env.release()

	res := env.resolveDecl(t, "out")
	assertResultKind(t, res, literal.KindArray)
	assertValueDeepEqual(t, res, []any{"alpha", "beta"})
}

func TestResolveTypeLevelMixedTuple(t *testing.T) {
	env := setupResolver(t, `
var pair = [1, "two"] as const;
export const out = pair;
`)
	defer env.release()

	res := env.resolveDecl(t, "out")
	assertResultKind(t, res, literal.KindArray)
	assertValueDeepEqual(t, res, []any{1.0, "two"})
}

func TestResolveTypeSymbolBacksIntoSyntax(t *testing.T) {
	// The anonymous object type carries the object literal's symbol; resolving
	// it lands back in the syntactic object resolution.
	env := setupResolver(t, `
var o = { a: 1 };
export const out = o;
`)
	defer env.release()

	res := env.resolveDecl(t, "out")
	assertResultKind(t, res, literal.KindObject)
	assertValueDeepEqual(t, res, map[string]any{"a": 1.0})
}

func TestResolveWideTypesUnresolved(t *testing.T) {
	env := setupResolver(t, `
// @ts-nocheck
var s: string;
var n: number;
var b: true;
export const outS = s;
export const outN = n;
export const outB = b;
`)
	defer env.release()

	assertUnresolvedResult(t, env.resolveDecl(t, "outS"))
	assertUnresolvedResult(t, env.resolveDecl(t, "outN"))
	// Boolean literal types are not extracted at the type level.
	assertUnresolvedResult(t, env.resolveDecl(t, "outB"))
}
