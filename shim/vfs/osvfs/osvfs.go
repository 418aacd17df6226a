// Package osvfs re-exports tsgo's OS-backed filesystem.
package osvfs

import (
	"github.com/microsoft/typescript-go/internal/vfs"
	"github.com/microsoft/typescript-go/internal/vfs/osvfs"
)

func FS() vfs.FS {
	return osvfs.FS()
}
