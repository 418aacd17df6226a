// Package cachedvfs re-exports tsgo's caching filesystem wrapper.
package cachedvfs

import (
	"github.com/microsoft/typescript-go/internal/vfs"
	"github.com/microsoft/typescript-go/internal/vfs/cachedvfs"
)

// From wraps fs with memoized stat, read, and directory listing results.
func From(fs vfs.FS) vfs.FS {
	return cachedvfs.From(fs)
}
