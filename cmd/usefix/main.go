package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sokinpui/usefix/cli"
	"github.com/sokinpui/usefix/internal/tui"
	"github.com/sokinpui/usefix/internal/ui"
	"github.com/sokinpui/usefix/model"
	"github.com/sokinpui/usefix/usefix"
)

func main() {
	cfg, err := cli.ParseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	app, err := usefix.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	if !cfg.Interactive {
		runPlain(app)
		return
	}

	m := tui.New(app)
	p := tea.NewProgram(m)
	m.SetProgram(p)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	if m.Err() != nil {
		os.Exit(1)
	}
}

// runPlain processes the tree with line-per-file output, printing each
// repaired path as it happens.
func runPlain(app *usefix.App) {
	app.SetEventCallback(func(ev model.Event) {
		switch ev.Kind {
		case model.EventFixed:
			ui.Fixed(ev.Path)
		case model.EventError:
			ui.ProcessingError(ev.Path, ev.Err)
		}
	})

	report, err := app.Execute()
	if err != nil {
		ui.Error("Error: %v", err)
		if e, ok := err.(*usefix.DetailedError); ok {
			fmt.Fprintf(os.Stderr, "\n--- Stack Trace ---\n%s\n", e.Stack)
		}
		os.Exit(1)
	}

	ui.PrintTotal(report)
}
