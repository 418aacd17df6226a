// Package core re-exports tsgo compiler options and tristate values.
package core

import "github.com/microsoft/typescript-go/internal/core"

type CompilerOptions = core.CompilerOptions

type Tristate = core.Tristate

const (
	TSTrue  = core.TSTrue
	TSFalse = core.TSFalse
)
