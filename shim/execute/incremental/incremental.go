// Package incremental re-exports tsgo's incremental program wrapper and
// .tsbuildinfo reading.
package incremental

import (
	"github.com/microsoft/typescript-go/internal/compiler"
	"github.com/microsoft/typescript-go/internal/execute/incremental"
	"github.com/microsoft/typescript-go/internal/tsoptions"
)

type (
	Program         = incremental.Program
	Host            = incremental.Host
	BuildInfoReader = incremental.BuildInfoReader
)

// NewProgram wraps a freshly built program with incremental state carried
// over from oldProgram (or from a .tsbuildinfo read, via ReadBuildInfoProgram).
func NewProgram(program *compiler.Program, oldProgram *Program, host Host, testing bool) *Program {
	return incremental.NewProgram(program, oldProgram, host, testing)
}

func CreateHost(host compiler.CompilerHost) Host {
	return incremental.CreateHost(host)
}

func NewBuildInfoReader(host compiler.CompilerHost) BuildInfoReader {
	return incremental.NewBuildInfoReader(host)
}

// ReadBuildInfoProgram reconstructs prior incremental state from the
// project's .tsbuildinfo. Returns nil when none exists or it cannot be used.
func ReadBuildInfoProgram(config *tsoptions.ParsedCommandLine, reader BuildInfoReader, host compiler.CompilerHost) *Program {
	return incremental.ReadBuildInfoProgram(config, reader, host)
}
