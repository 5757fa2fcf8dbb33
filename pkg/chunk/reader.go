// File: pkg/chunk/reader.go
package chunk

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
)

// sniffLen is how many leading bytes are inspected for binary content.
const sniffLen = 512

// errBinaryContent marks a file whose content cannot be pasted as text.
var errBinaryContent = errors.New("file contains binary data")

// readLines reads the whole file and splits it into lines that keep their "\n"
// terminators, so joining them reproduces the file byte for byte.
func readLines(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	if isBinaryContent(content) {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, errBinaryContent)
	}
	return splitLines(string(content)), nil
}

// splitLines splits s after every "\n". A trailing fragment without a newline
// is its own line; an empty string has no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// countLines counts lines the way an editor does: a final line without a
// newline still counts, a trailing newline does not open a new one.
func countLines(s string) int {
	n := strings.Count(s, "\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// isBinaryContent checks the leading bytes for a NUL, which no text encoding
// the tool targets produces.
func isBinaryContent(content []byte) bool {
	head := content
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	return bytes.IndexByte(head, 0) >= 0
}
