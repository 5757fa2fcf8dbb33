// File: pkg/chunk/builder.go
package chunk

import (
	"strings"

	"go.uber.org/zap"
)

// fileOverhead is the header line plus the two separator lines added per file.
const fileOverhead = 3

// Chunk is one unit of output: a clipboard payload or one numbered file.
type Chunk struct {
	Fragments []string // Text pieces in output order, footer last once sealed.
	Files     []string // Root-relative paths of the files packed into the chunk.
	Lines     int      // Running line count used for packing; excludes the footer.
}

// String concatenates the chunk's fragments.
func (c Chunk) String() string {
	var sb strings.Builder
	for _, f := range c.Fragments {
		sb.WriteString(f)
	}
	return sb.String()
}

// LineCount returns the number of lines of the assembled chunk, footer included.
func (c Chunk) LineCount() int {
	return countLines(c.String())
}

func (c *Chunk) empty() bool {
	return len(c.Files) == 0
}

// SkippedFile records a file that could not be read.
type SkippedFile struct {
	Rel string
	Err error
}

// Builder packs files into chunks greedily, in order, never splitting a file.
type Builder struct {
	cfg      Config
	logger   *zap.Logger
	readFile func(path string) ([]string, error)
}

// NewBuilder returns a Builder reading files from disk.
func NewBuilder(cfg Config, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{cfg: cfg, logger: logger, readFile: readLines}
}

// Build packs files into chunks. The tree is prepended to the first chunk and
// counts against its budget. A file whose cost would push a non-empty chunk over
// MaxLines starts a new chunk; a file larger than MaxLines goes in whole.
// Unreadable files are skipped and returned. Every chunk but the last ends
// with the intermediate footer, the last with the final footer.
func (b *Builder) Build(tree string, files []FileEntry) ([]Chunk, []SkippedFile) {
	var (
		chunks  []Chunk
		skipped []SkippedFile
		current Chunk
	)

	for _, file := range files {
		lines, err := b.readFile(file.Path)
		if err != nil {
			b.logger.Warn("Failed to read file, skipping", zap.String("file", file.Rel), zap.Error(err))
			skipped = append(skipped, SkippedFile{Rel: file.Rel, Err: err})
			continue
		}

		cost := len(lines) + fileOverhead
		if !current.empty() && current.Lines+cost > b.cfg.MaxLines {
			b.logger.Debug("Sealing chunk",
				zap.Int("chunk", len(chunks)+1),
				zap.Int("lines", current.Lines),
				zap.Int("files", len(current.Files)))
			chunks = append(chunks, current)
			current = Chunk{}
		}

		if current.empty() && len(chunks) == 0 && tree != "" {
			current.Fragments = append(current.Fragments, tree)
			current.Lines += countLines(tree)
		}

		current.Fragments = append(current.Fragments, "// --- "+file.DisplayPath()+" ---\n")
		current.Fragments = append(current.Fragments, lines...)
		current.Fragments = append(current.Fragments, "\n\n")
		current.Files = append(current.Files, file.Rel)
		current.Lines += cost

		if cost > b.cfg.MaxLines {
			b.logger.Debug("File exceeds the line budget on its own and is kept whole",
				zap.String("file", file.Rel),
				zap.Int("lines", len(lines)))
		}
	}

	if !current.empty() {
		chunks = append(chunks, current)
	}

	for i := range chunks {
		footer := b.cfg.IntermediateFooter
		if i == len(chunks)-1 {
			footer = b.cfg.FinalFooter
		}
		chunks[i].Fragments = append(chunks[i].Fragments, footer)
	}

	return chunks, skipped
}
