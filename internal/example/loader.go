package example

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-docnorm/pkg/component"
)

// FileLoader implements component.ExampleLoader by reading the referenced
// file through the filesystem collaborator. The loaded value keeps the
// resolved path alongside the source so renderers can attribute it.
type FileLoader struct {
	fs     component.FileSystem
	prefix string
}

var _ component.ExampleLoader = (*FileLoader)(nil)

// NewFileLoader constructs the default example loader.
func NewFileLoader(fs component.FileSystem, prefix string) *FileLoader {
	if prefix == "" {
		prefix = LoaderPrefix
	}
	return &FileLoader{fs: fs, prefix: prefix}
}

// Load strips the loader identifier from the specifier and reads the file.
func (l *FileLoader) Load(specifier string) (any, error) {
	path := strings.TrimPrefix(specifier, l.prefix)
	if path == "" {
		return nil, errors.New("example loader: empty specifier")
	}
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("example loader: read %s: %w", path, err)
	}
	return component.LoadedExample{Path: path, Source: string(data)}, nil
}
