package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sokinpui/usefix/model"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

// --- Report lines ---

// Fixed prints the per-file repair line to stdout.
func Fixed(path string) {
	fmt.Printf("Fixed: %s\n", path)
}

// ProcessingError prints the per-file failure line to stderr.
func ProcessingError(path string, err error) {
	ErrorColor.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
}

// PrintTotal prints the final summary line to stdout.
func PrintTotal(report model.Report) {
	fmt.Printf("\nTotal files fixed: %d\n", report.Count())
}
