package testutil

import (
	"github.com/microsoft/typescript-go/shim/tspath"
	"github.com/microsoft/typescript-go/shim/vfs"
	"golang.org/x/tools/txtar"
)

// NewTxtarOverlayVFS loads a txtar archive as virtual files rooted at
// rootDir, on top of the bundled OS filesystem. Multi-file fixtures stay in
// a single testdata file this way.
func NewTxtarOverlayVFS(rootDir string, archive []byte) vfs.FS {
	virtualFiles := make(map[string]string)
	for _, f := range txtar.Parse(archive).Files {
		virtualFiles[tspath.ResolvePath(rootDir, f.Name)] = string(f.Data)
	}
	return NewDefaultOverlayVFS(virtualFiles)
}
