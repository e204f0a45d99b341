package usefix

import (
	"fmt"
	"runtime/debug"

	"github.com/sokinpui/usefix/cli"
	"github.com/sokinpui/usefix/internal/fixer"
	"github.com/sokinpui/usefix/internal/scanner"
	"github.com/sokinpui/usefix/model"
)

// ProgressUpdate is a callback function to report progress.
type ProgressUpdate func(current, total int)

// EventCallback receives one event per fixed or failed file, as the run
// progresses.
type EventCallback func(ev model.Event)

// App orchestrates a single fix run.
type App struct {
	cfg              *cli.Config
	scanner          *scanner.Scanner
	progressCallback ProgressUpdate
	eventCallback    EventCallback
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance. It fails if the configured root directory
// does not exist or is not a directory; nothing is read from disk yet.
func New(cfg *cli.Config) (*App, error) {
	sc, err := scanner.New(cfg.Root, cfg.Extensions)
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, scanner: sc}, nil
}

// SetProgressCallback sets a function to be called for progress updates.
func (a *App) SetProgressCallback(cb ProgressUpdate) {
	a.progressCallback = cb
}

// SetEventCallback sets a function to be called per fixed or failed file.
func (a *App) SetEventCallback(cb EventCallback) {
	a.eventCallback = cb
}

// Execute scans the tree and repairs every file whose first two lines put
// the dynamic-rendering export above the "use client" directive. A failure
// on one file is recorded in the report and does not stop the run; only a
// failure to enumerate the tree aborts.
func (a *App) Execute() (report model.Report, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	files, err := a.scanner.Scan()
	if err != nil {
		return model.Report{}, err
	}

	for i, path := range files {
		if a.progressCallback != nil {
			a.progressCallback(i+1, len(files))
		}

		fixed, fileErr := fixer.FixFile(path)
		switch {
		case fileErr != nil:
			report.Errors = append(report.Errors, model.FileError{Path: path, Err: fileErr})
			a.emit(model.Event{Kind: model.EventError, Path: path, Err: fileErr})
		case fixed:
			report.Fixed = append(report.Fixed, path)
			a.emit(model.Event{Kind: model.EventFixed, Path: path})
		}
	}

	return report, nil
}

func (a *App) emit(ev model.Event) {
	if a.eventCallback != nil {
		a.eventCallback(ev)
	}
}
