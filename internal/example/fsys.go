package example

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-docnorm/pkg/component"
)

// OSFileSystem implements component.FileSystem against the host filesystem.
// It is the default strategy for resolving external example references.
type OSFileSystem struct{}

var _ component.FileSystem = OSFileSystem{}

// Exists reports whether the path names a regular file. Any stat failure is a
// definitive not-found.
func (OSFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile reads the file contents from disk.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FSFileSystem adapts an fs.FS so tests and embedded trees can stand in for
// the host filesystem. Paths are normalized to slash-separated, root-relative
// names before lookup.
type FSFileSystem struct {
	fsys fs.FS
}

var _ component.FileSystem = FSFileSystem{}

// NewFSFileSystem wraps the provided fs.FS.
func NewFSFileSystem(fsys fs.FS) FSFileSystem {
	return FSFileSystem{fsys: fsys}
}

// Exists reports whether the path names a regular file inside the wrapped fs.
func (f FSFileSystem) Exists(path string) bool {
	if f.fsys == nil {
		return false
	}
	info, err := fs.Stat(f.fsys, fsName(path))
	return err == nil && info.Mode().IsRegular()
}

// ReadFile reads the file contents from the wrapped fs.
func (f FSFileSystem) ReadFile(path string) ([]byte, error) {
	if f.fsys == nil {
		return nil, errors.New("example loader: filesystem is not configured")
	}
	return fs.ReadFile(f.fsys, fsName(path))
}

func fsName(path string) string {
	name := filepath.ToSlash(path)
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		name = "."
	}
	return name
}
