// File: pkg/chunk/collect.go
package chunk

import (
	"path"
	"path/filepath"

	"go.uber.org/zap"
)

// FileEntry is an eligible file discovered under the root.
type FileEntry struct {
	Path string // Filesystem path used to read the file.
	Rel  string // Slash-separated path relative to the root.
}

// DisplayPath returns the path shown in the file's header, e.g. "./src/app.js".
func (e FileEntry) DisplayPath() string {
	return "./" + e.Rel
}

// CollectFiles walks root and returns the eligible files in traversal order:
// at each level subdirectories first, then files, both sorted by name.
// This is the same order in which RenderTree lists them.
func CollectFiles(root string, filter *Filter, logger *zap.Logger) []FileEntry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Starting file collection", zap.String("root", root))

	var files []FileEntry
	collectRecursively(root, "", filter, &files)

	logger.Debug("Completed file collection", zap.Int("fileCount", len(files)))
	return files
}

func collectRecursively(dir, rel string, filter *Filter, files *[]FileEntry) {
	l := filter.listDir(dir, rel)

	for _, name := range l.dirs {
		collectRecursively(filepath.Join(dir, name), path.Join(rel, name), filter, files)
	}
	for _, name := range l.files {
		*files = append(*files, FileEntry{
			Path: filepath.Join(dir, name),
			Rel:  path.Join(rel, name),
		})
	}
}
