package usefix_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sokinpui/usefix/cli"
	"github.com/sokinpui/usefix/model"
	"github.com/sokinpui/usefix/usefix"
)

const (
	brokenContent = "export const dynamic = \"force-dynamic\"\n\"use client\"\nexport default function Page() {}\n"
	fixedContent  = "\"use client\"\nexport const dynamic = \"force-dynamic\"\nexport default function Page() {}\n"
	goodContent   = "\"use client\"\nexport const dynamic = \"force-dynamic\"\nexport default function Page() {}\n"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("Failed to create dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", rel, err)
		}
	}
}

func TestExecute(t *testing.T) {
	tempDir := t.TempDir()
	writeTree(t, tempDir, map[string]string{
		"app/page.js":            brokenContent,
		"app/blog/page.js":       brokenContent,
		"app/admin/users/box.js": brokenContent,
		"app/layout.js":          goodContent,
		"app/util.js":            "export function noop() {}\n",
		"app/styles.css":         ".broken { order: 1 }\n",
		"app/bad.js":             "export const dynamic\xff\n\"use client\"\n",
	})

	cfg := &cli.Config{Root: tempDir, Extensions: []string{".js"}}
	app, err := usefix.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	var events []model.Event
	app.SetEventCallback(func(ev model.Event) {
		events = append(events, ev)
	})
	var lastCurrent, lastTotal int
	app.SetProgressCallback(func(current, total int) {
		lastCurrent, lastTotal = current, total
	})

	report, err := app.Execute()
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	t.Run("report counts changed files only", func(t *testing.T) {
		if report.Count() != 3 {
			t.Fatalf("Expected 3 fixed files, got %d: %v", report.Count(), report.Fixed)
		}
		if len(report.Errors) != 1 {
			t.Fatalf("Expected 1 error, got %d: %v", len(report.Errors), report.Errors)
		}
		badPath := filepath.Join(tempDir, "app", "bad.js")
		if report.Errors[0].Path != badPath {
			t.Errorf("Expected error for %s, got %s", badPath, report.Errors[0].Path)
		}
	})

	t.Run("broken files are rewritten", func(t *testing.T) {
		for _, rel := range []string{"app/page.js", "app/blog/page.js", "app/admin/users/box.js"} {
			data, err := os.ReadFile(filepath.Join(tempDir, filepath.FromSlash(rel)))
			if err != nil {
				t.Fatalf("Failed to read %s: %v", rel, err)
			}
			if string(data) != fixedContent {
				t.Errorf("Expected %s to be fixed, got:\n%s", rel, data)
			}
		}
	})

	t.Run("healthy files are untouched", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(tempDir, "app", "layout.js"))
		if err != nil {
			t.Fatalf("Failed to read layout.js: %v", err)
		}
		if string(data) != goodContent {
			t.Errorf("layout.js was modified:\n%s", data)
		}
	})

	t.Run("one event per fixed or failed file", func(t *testing.T) {
		var fixed, failed int
		for _, ev := range events {
			switch ev.Kind {
			case model.EventFixed:
				fixed++
			case model.EventError:
				failed++
			}
		}
		if fixed != 3 || failed != 1 {
			t.Errorf("Expected 3 fixed and 1 failed event, got %d and %d", fixed, failed)
		}
	})

	t.Run("progress reaches the last candidate", func(t *testing.T) {
		// 6 .js entries under the root; the .css file is not a candidate.
		if lastTotal != 6 || lastCurrent != lastTotal {
			t.Errorf("Expected progress to end at [6/6], got [%d/%d]", lastCurrent, lastTotal)
		}
	})
}

func TestExecuteIsIdempotent(t *testing.T) {
	tempDir := t.TempDir()
	writeTree(t, tempDir, map[string]string{"page.js": brokenContent})

	cfg := &cli.Config{Root: tempDir, Extensions: []string{".js"}}
	app, err := usefix.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	if report, err := app.Execute(); err != nil || report.Count() != 1 {
		t.Fatalf("First run: expected 1 fix, got %d (err: %v)", report.Count(), err)
	}
	if report, err := app.Execute(); err != nil || report.Count() != 0 {
		t.Fatalf("Second run: expected 0 fixes, got %d (err: %v)", report.Count(), err)
	}
}

func TestNewFailsOnMissingRoot(t *testing.T) {
	cfg := &cli.Config{
		Root:       filepath.Join(t.TempDir(), "does-not-exist"),
		Extensions: []string{".js"},
	}
	if _, err := usefix.New(cfg); err == nil {
		t.Fatal("Expected an error for a missing root directory")
	}
}
