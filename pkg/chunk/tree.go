// File: pkg/chunk/tree.go
package chunk

import (
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	branchConnector   = "├── "
	terminalConnector = "└── "
	branchIndent      = "│   "
	terminalIndent    = "    "
	treeLinePrefix    = "// "
)

// RenderTree returns the filtered directory tree of root, wrapped in the
// configured header and footer banners. Every line is commented with "// ".
// Directories are listed before files at each level; empty directories are kept.
func RenderTree(root string, filter *Filter, cfg Config, logger *zap.Logger) string {
	if logger == nil {
		logger = zap.NewNop()
	}

	rootName := filepath.Base(root)
	if abs, err := filepath.Abs(root); err == nil {
		rootName = filepath.Base(abs)
	} else {
		logger.Warn("Failed to get absolute path for tree generation", zap.String("root", root), zap.Error(err))
	}

	lines := []string{
		cfg.TreeHeader + "\n",
		treeLinePrefix + rootName + "/",
	}
	lines = renderRecursively(root, "", "", filter, lines)
	lines = append(lines, cfg.TreeFooter+"\n\n")

	return strings.Join(lines, "\n")
}

// renderRecursively appends one line per entry of dir, descending into subdirectories.
func renderRecursively(dir, rel, prefix string, filter *Filter, lines []string) []string {
	l := filter.listDir(dir, rel)
	total := len(l.dirs) + len(l.files)

	for i, name := range l.dirs {
		connector, indent := connectorFor(i, total)
		lines = append(lines, treeLinePrefix+prefix+connector+name)
		lines = renderRecursively(filepath.Join(dir, name), path.Join(rel, name), prefix+indent, filter, lines)
	}
	for j, name := range l.files {
		connector, _ := connectorFor(len(l.dirs)+j, total)
		lines = append(lines, treeLinePrefix+prefix+connector+name)
	}
	return lines
}

// connectorFor returns the connector for entry i of total and the indent its children get.
func connectorFor(i, total int) (string, string) {
	if i == total-1 {
		return terminalConnector, terminalIndent
	}
	return branchConnector, branchIndent
}
