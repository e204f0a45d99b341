package model

// FileError records a recoverable failure while processing a single file.
type FileError struct {
	Path string
	Err  error
}

// Report holds the results of a fix run.
type Report struct {
	Fixed  []string
	Errors []FileError
}

// Count returns the number of files whose content was changed on disk.
func (r Report) Count() int {
	return len(r.Fixed)
}

// EventKind identifies the outcome of processing one file.
type EventKind int

const (
	EventFixed EventKind = iota
	EventError
)

// Event is emitted once per fixed or failed file, in processing order.
// Files that need no change produce no event.
type Event struct {
	Kind EventKind
	Path string
	Err  error
}
