package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	Root        string
	Extensions  []string
	Interactive bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.StringVarP(&cfg.Root, "root", "r", ".", "Root directory to scan for script files.")
	pflag.StringSliceVarP(&cfg.Extensions, "extension", "e", []string{"js"}, "File extensions to scan (e.g., 'js', 'jsx', 'ts').")
	pflag.BoolVarP(&cfg.Interactive, "interactive", "i", false, "Show a spinner with live progress instead of plain line output.")

	pflag.Usage = func() {
		fmt.Println("Usage: usefix [flags] [root]")
		fmt.Println("\nSwap a misplaced \"use client\" directive with the 'export const dynamic'")
		fmt.Println("line above it, in every matching file under the root directory.")
		fmt.Println("\nExample: usefix -e js -e jsx ./frontend/src")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// A positional root overrides the flag.
	switch pflag.NArg() {
	case 0:
	case 1:
		cfg.Root = pflag.Arg(0)
	default:
		return nil, fmt.Errorf("error: expected at most one root directory, got %d arguments", pflag.NArg())
	}

	// Normalize extensions
	for i, ext := range cfg.Extensions {
		if len(ext) > 0 && ext[0] != '.' {
			cfg.Extensions[i] = "." + ext
		}
	}

	return cfg, nil
}
