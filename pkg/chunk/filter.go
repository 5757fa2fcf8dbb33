// File: pkg/chunk/filter.go
package chunk

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// PathMatcher matches root-relative, slash-separated paths against extra exclusions.
// Directory paths are passed with a trailing slash.
type PathMatcher interface {
	MatchesPath(path string) bool
}

// Filter decides which directories are descended into and which files are eligible.
// The collector and the tree renderer share one Filter so both see the same tree.
type Filter struct {
	excludedDirs  map[string]bool
	excludedFiles map[string]bool
	extensions    []string
	outputPrefix  string
	selfName      string
	matcher       PathMatcher
	logger        *zap.Logger
}

// NewFilter builds a Filter from the configuration. The matcher may be nil.
func NewFilter(cfg Config, matcher PathMatcher, logger *zap.Logger) *Filter {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &Filter{
		excludedDirs:  make(map[string]bool, len(cfg.ExcludedDirs)),
		excludedFiles: make(map[string]bool, len(cfg.ExcludedFiles)),
		extensions:    append([]string(nil), cfg.AllowedExtensions...),
		outputPrefix:  cfg.OutputPrefix,
		selfName:      cfg.SelfName,
		matcher:       matcher,
		logger:        logger,
	}
	for _, d := range cfg.ExcludedDirs {
		f.excludedDirs[strings.ToLower(d)] = true
	}
	for _, name := range cfg.ExcludedFiles {
		f.excludedFiles[name] = true
	}
	return f
}

// AllowDir reports whether the directory at rel (slash-separated, relative to root) is descended into.
func (f *Filter) AllowDir(rel string) bool {
	name := path.Base(rel)
	if f.excludedDirs[strings.ToLower(name)] {
		return false
	}
	if f.matcher != nil && f.matcher.MatchesPath(rel+"/") {
		return false
	}
	return true
}

// AllowFile reports whether the file at rel (slash-separated, relative to root) is eligible.
func (f *Filter) AllowFile(rel string) bool {
	name := path.Base(rel)
	switch {
	case f.selfName != "" && name == f.selfName:
		return false
	case f.IsOutputFile(name):
		return false
	case f.excludedFiles[name]:
		return false
	case !f.hasAllowedExtension(name):
		return false
	case f.matcher != nil && f.matcher.MatchesPath(rel):
		return false
	}
	return true
}

// IsOutputFile reports whether name looks like a chunk file produced by an earlier run.
func (f *Filter) IsOutputFile(name string) bool {
	return strings.HasPrefix(name, f.outputPrefix+"_") && strings.HasSuffix(name, ".txt")
}

func (f *Filter) hasAllowedExtension(name string) bool {
	for _, ext := range f.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// listing is the filtered content of one directory, each part sorted by name.
type listing struct {
	dirs  []string
	files []string
}

// listDir returns the eligible subdirectories and files of dir, whose root-relative
// path is rel ("" for the root). Listing failures yield an empty listing.
func (f *Filter) listDir(dir, rel string) listing {
	var l listing

	entries, err := os.ReadDir(dir)
	if err != nil {
		f.logger.Debug("Skipping unreadable directory", zap.String("directory", dir), zap.Error(err))
		return l
	}

	for _, entry := range entries {
		name := entry.Name()
		entryRel := path.Join(rel, name)

		if entry.IsDir() {
			if f.AllowDir(entryRel) {
				l.dirs = append(l.dirs, name)
			} else {
				f.logger.Debug("Skipping excluded directory", zap.String("directory", entryRel))
			}
			continue
		}

		if !isRegular(filepath.Join(dir, name), entry) {
			continue
		}
		if f.AllowFile(entryRel) {
			l.files = append(l.files, name)
		} else {
			f.logger.Debug("Skipping ineligible file", zap.String("file", entryRel))
		}
	}

	sort.Strings(l.dirs)
	sort.Strings(l.files)
	return l
}

// isRegular reports whether the entry is a regular file or a symlink to one.
// Symlinked directories are never followed.
func isRegular(fullPath string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(fullPath)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
