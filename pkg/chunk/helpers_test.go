package chunk

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates the given files under root. Keys ending in "/" create
// empty directories.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(p, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
}

// numberedLines returns n lines "prefix 1\n" .. "prefix n\n".
func numberedLines(prefix string, n int) string {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		sb.WriteString(prefix)
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("x", i%7))
		sb.WriteString("\n")
	}
	return sb.String()
}

type fakeClipboard struct {
	writes []string
	err    error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.writes = append(f.writes, text)
	return nil
}

func testConfig(root, outDir string) Config {
	cfg := DefaultConfig()
	cfg.Root = root
	cfg.OutputDir = outDir
	return cfg
}
