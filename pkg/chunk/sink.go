// File: pkg/chunk/sink.go
package chunk

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"
)

// Clipboard receives the payload of a single-chunk run.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// NewSystemClipboard returns the OS clipboard, or a *ClipboardUnavailableError
// when no clipboard utility can be found.
func NewSystemClipboard() (Clipboard, error) {
	if clipboard.Unsupported {
		return nil, NewClipboardUnavailableError()
	}
	return systemClipboard{}, nil
}

// WrittenFile describes one chunk written to disk.
type WrittenFile struct {
	Path  string
	Lines int
}

// Sink delivers finished chunks.
type Sink struct {
	cfg       Config
	clipboard Clipboard
	logger    *zap.Logger
}

// NewSink returns a Sink. With a nil clipboard every chunk is written to a file.
func NewSink(cfg Config, cb Clipboard, logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{cfg: cfg, clipboard: cb, logger: logger}
}

// Emit copies a lone chunk to the clipboard, or writes every chunk to
// <prefix>_<n>.txt in the output directory, overwriting existing files.
// The first write failure stops the remaining chunks; files written before it
// are still returned.
func (s *Sink) Emit(chunks []Chunk) (copied bool, written []WrittenFile, err error) {
	if len(chunks) == 1 && s.clipboard != nil {
		if err := s.clipboard.WriteAll(chunks[0].String()); err != nil {
			s.logger.Error("Failed to copy chunk to clipboard", zap.Error(err))
			return false, nil, fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		s.logger.Debug("Copied chunk to clipboard", zap.Int("lines", chunks[0].LineCount()))
		return true, nil, nil
	}

	for i, c := range chunks {
		content := c.String()
		outPath := filepath.Join(s.cfg.OutputDir, s.cfg.OutputName(i+1))
		if err := writeToFile(outPath, []byte(content), 0o644, s.logger); err != nil {
			return false, written, fmt.Errorf("failed to write chunk %d: %w", i+1, err)
		}
		written = append(written, WrittenFile{Path: outPath, Lines: countLines(content)})
	}
	return false, written, nil
}

// writeToFile writes data to a file and logs the operation.
func writeToFile(path string, data []byte, perm os.FileMode, logger *zap.Logger) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Successfully wrote file", zap.String("path", path))
	return nil
}
