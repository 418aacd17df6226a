// Package testutil provides test utilities for tsconst: a virtual filesystem
// overlay for building tsgo programs from inline TypeScript source, a txtar
// loader for multi-file fixtures, and a bare single-file parser.
package testutil

import (
	"io/fs"
	"slices"
	"strings"
	"time"

	"github.com/microsoft/typescript-go/shim/bundled"
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
	"github.com/microsoft/typescript-go/shim/vfs/osvfs"
)

// overlayFS layers in-memory source files over a base filesystem. Reads hit
// the virtual layer first; anything not found there falls through to the base.
// The virtual layer is immutable once built, so writes to a virtual path panic.
type overlayFS struct {
	base    vfs.FS
	virtual map[string]string
}

var _ vfs.FS = (*overlayFS)(nil)

// NewDefaultOverlayVFS builds a filesystem that serves virtualFiles on top of
// the bundled OS filesystem, so test programs see the TypeScript lib files
// without any setup on disk. Keys are normalized, so fixtures may use any
// slash or casing convention tspath accepts.
func NewDefaultOverlayVFS(virtualFiles map[string]string) vfs.FS {
	virtual := make(map[string]string, len(virtualFiles))
	for path, src := range virtualFiles {
		virtual[tspath.NormalizePath(path)] = src
	}
	return &overlayFS{base: bundled.WrapFS(osvfs.FS()), virtual: virtual}
}

// lookup reports the virtual content for path, if the virtual layer holds it.
func (fsys *overlayFS) lookup(path string) (string, bool) {
	src, ok := fsys.virtual[tspath.NormalizePath(path)]
	return src, ok
}

// dirPrefix normalizes path into the "dir/" form used to test whether a
// virtual file lives under it.
func dirPrefix(path string) string {
	p := tspath.NormalizePath(path)
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

func (fsys *overlayFS) UseCaseSensitiveFileNames() bool {
	return fsys.base.UseCaseSensitiveFileNames()
}

func (fsys *overlayFS) FileExists(path string) bool {
	if _, ok := fsys.lookup(path); ok {
		return true
	}
	return fsys.base.FileExists(path)
}

func (fsys *overlayFS) ReadFile(path string) (contents string, ok bool) {
	if src, ok := fsys.lookup(path); ok {
		return src, true
	}
	return fsys.base.ReadFile(path)
}

func (fsys *overlayFS) Realpath(path string) string {
	if _, ok := fsys.lookup(path); ok {
		return path
	}
	return fsys.base.Realpath(path)
}

func (fsys *overlayFS) Stat(path string) vfs.FileInfo {
	if src, ok := fsys.lookup(path); ok {
		return virtualInfo{name: path, size: int64(len(src))}
	}
	return fsys.base.Stat(path)
}

func (fsys *overlayFS) DirectoryExists(path string) bool {
	prefix := dirPrefix(path)
	for p := range fsys.virtual {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return fsys.base.DirectoryExists(path)
}

// GetAccessibleEntries merges the base directory listing with the virtual
// files and first-level virtual subdirectories under path. Listings are
// sorted by name, matching the contract real filesystems provide.
func (fsys *overlayFS) GetAccessibleEntries(path string) vfs.Entries {
	entries := fsys.base.GetAccessibleEntries(path)
	prefix := dirPrefix(path)
	for p := range fsys.virtual {
		rel, ok := strings.CutPrefix(p, prefix)
		if !ok {
			continue
		}
		if child, _, nested := strings.Cut(rel, "/"); nested {
			entries.Directories = append(entries.Directories, child)
		} else {
			entries.Files = append(entries.Files, rel)
		}
	}
	slices.Sort(entries.Files)
	slices.Sort(entries.Directories)
	return entries
}

// WalkDir only sees the base filesystem. Program construction resolves the
// virtual files through GetAccessibleEntries and ReadFile, which is all the
// analyzer tests need.
func (fsys *overlayFS) WalkDir(root string, walkFn vfs.WalkDirFunc) error {
	return fsys.base.WalkDir(root, walkFn)
}

func (fsys *overlayFS) WriteFile(path string, data string, writeByteOrderMark bool) error {
	fsys.assertMutable(path)
	return fsys.base.WriteFile(path, data, writeByteOrderMark)
}

func (fsys *overlayFS) Remove(path string) error {
	fsys.assertMutable(path)
	return fsys.base.Remove(path)
}

func (fsys *overlayFS) Chtimes(path string, aTime time.Time, mTime time.Time) error {
	fsys.assertMutable(path)
	return fsys.base.Chtimes(path, aTime, mTime)
}

func (fsys *overlayFS) assertMutable(path string) {
	if _, ok := fsys.lookup(path); ok {
		panic("overlay virtual files are read-only: " + path)
	}
}

// virtualInfo is the Stat result for a virtual file: a regular file with a
// zero mod time, which keeps change detection from ever seeing it as updated.
type virtualInfo struct {
	name string
	size int64
}

var (
	_ fs.FileInfo = virtualInfo{}
	_ fs.DirEntry = virtualInfo{}
)

func (fi virtualInfo) Name() string               { return fi.name }
func (fi virtualInfo) Size() int64                { return fi.size }
func (fi virtualInfo) Mode() fs.FileMode          { return 0 }
func (fi virtualInfo) ModTime() time.Time         { return time.Time{} }
func (fi virtualInfo) IsDir() bool                { return false }
func (fi virtualInfo) Sys() any                   { return nil }
func (fi virtualInfo) Type() fs.FileMode          { return 0 }
func (fi virtualInfo) Info() (fs.FileInfo, error) { return fi, nil }
