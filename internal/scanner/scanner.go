package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
)

// Scanner enumerates candidate files under a root directory.
type Scanner struct {
	root       string
	extensions []string
}

// New creates a Scanner. It fails if the root does not exist or is not a
// directory.
func New(root string, extensions []string) (*Scanner, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "scan", Path: root, Err: syscall.ENOTDIR}
	}
	return &Scanner{root: root, extensions: extensions}, nil
}

// Scan returns every file under the root whose extension matches, at any
// depth, sorted by path.
func (s *Scanner) Scan() ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	for _, ext := range s.extensions {
		pattern := filepath.Join(s.root, "**", "*"+ext)
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				// A directory named like "pages.js" is not a candidate.
				continue
			}
			if _, ok := seen[match]; ok {
				continue
			}
			seen[match] = struct{}{}
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}
