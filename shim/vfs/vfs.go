// Package vfs re-exports tsgo's filesystem abstraction. Implementations
// must use forward-slash paths and report string contents; see osvfs and
// cachedvfs for the standard stacks.
package vfs

import "github.com/microsoft/typescript-go/internal/vfs"

type (
	FS          = vfs.FS
	FileInfo    = vfs.FileInfo
	Entries     = vfs.Entries
	WalkDirFunc = vfs.WalkDirFunc
)
