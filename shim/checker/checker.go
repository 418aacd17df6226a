// Package checker re-exports the pieces of tsgo's type checker that tsconst
// needs to turn symbols into types and types into literal values. The two
// Checker_ functions reach unexported methods via go:linkname; everything
// else rides the type aliases.
package checker

import (
	_ "unsafe"

	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/checker"
)

type (
	Checker = checker.Checker
	Type    = checker.Type
)

type TypeFlags = checker.TypeFlags

const (
	TypeFlagsStringLiteral = checker.TypeFlagsStringLiteral
	TypeFlagsNumberLiteral = checker.TypeFlagsNumberLiteral
	TypeFlagsObject        = checker.TypeFlagsObject
)

type ObjectFlags = checker.ObjectFlags

const ObjectFlagsReference = checker.ObjectFlagsReference

//go:linkname Checker_getTypeOfSymbol github.com/microsoft/typescript-go/internal/checker.(*Checker).getTypeOfSymbol
func Checker_getTypeOfSymbol(c *Checker, symbol *ast.Symbol) *Type

//go:linkname Checker_getTypeArguments github.com/microsoft/typescript-go/internal/checker.(*Checker).getTypeArguments
func Checker_getTypeArguments(c *Checker, t *Type) []*Type
