// Package ignore loads gitignore-style exclusions that supplement the built-in
// directory and file filters.
package ignore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	gitignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// GlobalEnv names the environment variable consulted when no global ignore file is given.
const GlobalEnv = "CHUNKIGNORE_GLOBAL"

// Matcher matches root-relative, slash-separated paths against compiled patterns.
// Directory paths must carry a trailing slash for directory-only patterns to apply.
type Matcher struct {
	gi       *gitignore.GitIgnore
	patterns []string // Pattern lines in load order.
	sources  []string // Ignore files that contributed patterns.
	logger   *zap.Logger
}

// Load compiles patterns from the global ignore file, the local ignore file in
// root and the extra lines, in that order. Missing files are not an error.
func Load(root, localName, globalPath string, extra []string, logger *zap.Logger) (*Matcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Matcher{logger: logger}

	if globalPath == "" {
		globalPath = os.Getenv(GlobalEnv)
	}
	if globalPath != "" {
		expanded, err := homedir.Expand(filepath.Clean(globalPath))
		if err != nil {
			return nil, fmt.Errorf("failed to expand global ignore path %q: %w", globalPath, err)
		}
		if err := m.addFile(expanded); err != nil {
			return nil, err
		}
	}

	if localName != "" {
		if err := m.addFile(filepath.Join(root, localName)); err != nil {
			return nil, err
		}
	}

	m.add(extra...)
	m.gi = gitignore.CompileIgnoreLines(m.patterns...)
	logger.Debug("Compiled ignore patterns",
		zap.Strings("sources", m.sources),
		zap.Int("patternCount", len(m.patterns)))
	return m, nil
}

// addFile appends the lines of an ignore file. A missing file is skipped.
func (m *Matcher) addFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
			return nil
		}
		m.logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}
	m.sources = append(m.sources, path)
	m.add(strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")...)
	return nil
}

func (m *Matcher) add(lines ...string) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		m.patterns = append(m.patterns, trimmed)
	}
}

// MatchesPath reports whether the path is excluded. A nil Matcher matches nothing.
func (m *Matcher) MatchesPath(path string) bool {
	if m == nil || m.gi == nil || len(m.patterns) == 0 {
		return false
	}
	path = filepath.ToSlash(path)
	matched := m.gi.MatchesPath(path)
	if matched {
		m.logger.Debug("Path matches ignore pattern", zap.String("path", path))
	}
	return matched
}

// Patterns returns the compiled pattern lines in load order.
func (m *Matcher) Patterns() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.patterns...)
}

// Sources returns the ignore files that were read.
func (m *Matcher) Sources() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.sources...)
}
