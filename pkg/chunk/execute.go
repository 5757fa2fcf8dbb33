// File: pkg/chunk/execute.go
package chunk

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"chunkpaste/pkg/ignore"

	"go.uber.org/zap"
)

// Options bundles what a run needs besides the configuration.
type Options struct {
	Clipboard Clipboard   // Nil writes even a single chunk to a file.
	Out       io.Writer   // Operator-facing progress messages.
	Logger    *zap.Logger // Structured logs.
}

// Result summarizes a run.
type Result struct {
	Files   []FileEntry
	Chunks  []Chunk
	Skipped []SkippedFile
	Copied  bool
	Written []WrittenFile
}

// Run walks cfg.Root, packs the eligible files into chunks and delivers them.
// Finding no files is not an error: a message is printed and an empty Result returned.
func Run(cfg Config, opts Options) (Result, error) {
	var res Result

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	if err := cfg.Validate(); err != nil {
		return res, err
	}

	startTime := time.Now()
	absRoot, err := filepath.Abs(cfg.Root)
	if err != nil {
		logger.Error("Failed to resolve directory path", zap.Error(err))
		return res, fmt.Errorf("failed to get absolute path: %w", err)
	}
	logger.Info("Starting chunking process", zap.String("directory", absRoot))
	fmt.Fprintf(out, "Processing '%s'...\n", absRoot)

	matcher, err := ignore.Load(cfg.Root, IgnoreFileName, cfg.GlobalIgnoreFile, cfg.IgnorePatterns, logger)
	if err != nil {
		return res, fmt.Errorf("failed to load ignore patterns: %w", err)
	}
	filter := NewFilter(cfg, matcher, logger)

	res.Files = CollectFiles(cfg.Root, filter, logger)
	if len(res.Files) == 0 {
		logger.Warn("No files to process after filtering")
		fmt.Fprintln(out, "Error: no eligible files were found in the directory.")
		return res, nil
	}
	fmt.Fprintf(out, "Processing %d files...\n", len(res.Files))

	tree := RenderTree(cfg.Root, filter, cfg, logger)

	res.Chunks, res.Skipped = NewBuilder(cfg, logger).Build(tree, res.Files)
	for _, s := range res.Skipped {
		fmt.Fprintf(out, "Error reading '%s': %v\n", s.Rel, s.Err)
	}
	if len(res.Chunks) == 0 {
		logger.Warn("No chunks were produced", zap.Int("skippedFiles", len(res.Skipped)))
		fmt.Fprintln(out, "Error: processing produced no chunks.")
		return res, nil
	}

	sink := NewSink(cfg, opts.Clipboard, logger)
	if len(res.Chunks) > 1 {
		fmt.Fprintf(out, "\nThe code is too long, creating %d files...\n", len(res.Chunks))
	}
	res.Copied, res.Written, err = sink.Emit(res.Chunks)
	for _, w := range res.Written {
		fmt.Fprintf(out, "Created: %s (%d lines)\n", w.Path, w.Lines)
	}
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return res, err
	}

	if res.Copied {
		fmt.Fprintln(out, "\n------------------------------------------------------")
		fmt.Fprintln(out, "SUCCESS: the code is short enough, copied to the clipboard!")
		fmt.Fprintln(out, "Just paste it (Ctrl+V).")
		fmt.Fprintln(out, "------------------------------------------------------")
	} else {
		fmt.Fprintln(out, "\nProcessing finished successfully.")
	}

	logger.Info("Chunking process completed",
		zap.Int("files", len(res.Files)),
		zap.Int("chunks", len(res.Chunks)),
		zap.Duration("elapsed", time.Since(startTime)))
	return res, nil
}
