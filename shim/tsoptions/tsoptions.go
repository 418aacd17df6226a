// Package tsoptions re-exports tsconfig parsing.
package tsoptions

import (
	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/compiler"
	"github.com/microsoft/typescript-go/internal/core"
	"github.com/microsoft/typescript-go/internal/tsoptions"
)

type ParsedCommandLine = tsoptions.ParsedCommandLine

// GetParsedCommandLineOfConfigFile parses a tsconfig.json (JSONC, extends
// chains, trailing commas) through the host's filesystem. The extended
// config cache is omitted; each config is parsed once per run.
func GetParsedCommandLineOfConfigFile(configFileName string, options *core.CompilerOptions, host compiler.CompilerHost) (*ParsedCommandLine, []*ast.Diagnostic) {
	return tsoptions.GetParsedCommandLineOfConfigFile(configFileName, options, nil, host, nil)
}
