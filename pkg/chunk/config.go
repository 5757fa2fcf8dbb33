// File: pkg/chunk/config.go
package chunk

import (
	"fmt"
	"strings"
)

// Config holds the settings for a single chunking run.
// It is built once at startup and passed by value to every component.
type Config struct {
	Root               string   // Directory to walk.
	OutputDir          string   // Directory receiving <prefix>_<n>.txt files.
	MaxLines           int      // Line budget per chunk.
	OutputPrefix       string   // Prefix of output chunk files.
	AllowedExtensions  []string // File name suffixes eligible for inclusion (case-sensitive).
	ExcludedDirs       []string // Directory names never descended into (case-insensitive).
	ExcludedFiles      []string // Exact file names never included.
	SelfName           string   // Name of the running executable, never included.
	IgnorePatterns     []string // Extra gitignore-style patterns.
	GlobalIgnoreFile   string   // Optional global ignore file.
	IntermediateFooter string   // Appended to every chunk but the last.
	FinalFooter        string   // Appended to the last chunk.
	TreeHeader         string   // First line of the rendered tree.
	TreeFooter         string   // Last line of the rendered tree.
}

// Default values used by DefaultConfig.
const (
	DefaultMaxLines     = 5000
	DefaultOutputPrefix = "chunk"
	IgnoreFileName      = ".chunkignore"
)

// DefaultConfig returns the configuration the tool runs with when no flags are given.
func DefaultConfig() Config {
	return Config{
		Root:              ".",
		OutputDir:         ".",
		MaxLines:          DefaultMaxLines,
		OutputPrefix:      DefaultOutputPrefix,
		AllowedExtensions: []string{".php", ".js", ".css", ".html", ".txt", ".md", ".json", ".xml", ".scss"},
		ExcludedDirs:      []string{"__pycache__", ".git", ".vscode", "node_modules", "vendor", "languages", "build"},
		ExcludedFiles:     []string{"package-lock.json", "composer.lock"},
		IntermediateFooter: "\n// --- TO BE CONTINUED ---\n" +
			"// The code is not finished yet. I am ready to receive the next part (chunk).\n",
		FinalFooter: "\n// --- THIS WAS THE LAST PART ---\n" +
			"// You have received the complete code. Now please perform the analysis requested in my very first message.\n",
		TreeHeader: "// --- PROJECT FILE STRUCTURE ---",
		TreeFooter: "// ---------------------------",
	}
}

// Validate reports whether the configuration can drive a run.
func (c Config) Validate() error {
	if c.MaxLines < 1 {
		return fmt.Errorf("%w: max lines must be positive, got %d", ErrInvalidConfig, c.MaxLines)
	}
	if c.OutputPrefix == "" {
		return fmt.Errorf("%w: output prefix is empty", ErrInvalidConfig)
	}
	if strings.ContainsAny(c.OutputPrefix, `/\`) {
		return fmt.Errorf("%w: output prefix %q contains a path separator", ErrInvalidConfig, c.OutputPrefix)
	}
	if len(c.AllowedExtensions) == 0 {
		return fmt.Errorf("%w: no allowed extensions", ErrInvalidConfig)
	}
	return nil
}

// OutputName returns the file name of the chunk with the given 1-based index.
func (c Config) OutputName(index int) string {
	return fmt.Sprintf("%s_%d.txt", c.OutputPrefix, index)
}
