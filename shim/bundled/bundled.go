// Package bundled re-exports tsgo's embedded lib.d.ts distribution, so
// programs resolve the standard libraries without a TypeScript install.
package bundled

import (
	"github.com/microsoft/typescript-go/internal/bundled"
	"github.com/microsoft/typescript-go/internal/vfs"
)

func LibPath() string {
	return bundled.LibPath()
}

// WrapFS overlays the embedded libs onto fs at LibPath.
func WrapFS(fs vfs.FS) vfs.FS {
	return bundled.WrapFS(fs)
}
