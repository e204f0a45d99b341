package fixer

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	configMarker    = "export const dynamic"
	directiveMarker = `"use client"`
)

// FixFile inspects the first two lines of the file at path and swaps them
// when the dynamic-rendering export sits above the "use client" directive.
// It reports whether the file was rewritten.
func FixFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	if !utf8.Valid(data) {
		return false, fmt.Errorf("file is not valid UTF-8")
	}

	lines := splitLines(string(data))
	if len(lines) < 2 {
		return false, nil
	}

	// Compare trimmed copies only; the stored lines keep their whitespace
	// and terminators.
	if !strings.Contains(strings.TrimSpace(lines[0]), configMarker) ||
		!strings.Contains(strings.TrimSpace(lines[1]), directiveMarker) {
		return false, nil
	}

	lines[0], lines[1] = lines[1], lines[0]
	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), 0644); err != nil {
		return false, err
	}
	return true, nil
}

// splitLines splits content into lines with their terminators kept, so a
// write-back round-trips every byte outside the swap. A final line without a
// trailing newline stays that way through the swap.
func splitLines(content string) []string {
	var lines []string
	for content != "" {
		i := strings.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, content)
			break
		}
		lines = append(lines, content[:i+1])
		content = content[i+1:]
	}
	return lines
}
