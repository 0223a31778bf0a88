package discovery

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestClassifier_IsTestModule(t *testing.T) {
	classifier := NewClassifier()
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"marker at start", `touca.Workflow("a", run)`, true},
		{"marker in declaration", "package suite\n\nvar _ = touca.Workflow(\"students\", students)\n", true},
		{"marker in comment", "package suite\n\n// see touca.Workflow(name, fn)\n", true},
		{"marker in string literal", "package suite\n\nconst doc = \"touca.Workflow(\"\n", true},
		{"no marker", "package suite\n\nfunc helper() {}\n", false},
		{"marker without call", "package suite\n\nvar w *touca.Workflow\n", false},
		{"empty file", "", false},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, "case", string(rune('a'+i))+".go")
			writeFile(t, path, tt.content)

			ok, err := classifier.IsTestModule(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, ok)
			}
		})
	}
}

func TestClassifier_ReadErrors(t *testing.T) {
	classifier := NewClassifier()

	t.Run("missing file", func(t *testing.T) {
		_, err := classifier.IsTestModule(filepath.Join(t.TempDir(), "missing.go"))
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			t.Fatalf("expected ReadError, got %v", err)
		}
	})

	t.Run("binary content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blob.go")
		writeFile(t, path, "touca.Workflow(\xff\xfe")
		_, err := classifier.IsTestModule(path)
		var readErr *ReadError
		if !errors.As(err, &readErr) {
			t.Fatalf("expected ReadError, got %v", err)
		}
	})
}

func TestClassifier_MarkerAnywhere(t *testing.T) {
	classifier := NewClassifier()
	path := filepath.Join(t.TempDir(), "generated.go")
	text := rapid.StringMatching(`[a-zA-Z0-9 _.,;"/\n]{0,80}`)

	rapid.Check(t, func(rt *rapid.T) {
		before := text.Draw(rt, "before")
		after := text.Draw(rt, "after")
		withMarker := rapid.Bool().Draw(rt, "withMarker")

		content := before + after
		if withMarker {
			content = before + Marker + after
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			rt.Fatalf("write: %v", err)
		}

		ok, err := classifier.IsTestModule(path)
		if err != nil {
			rt.Fatalf("unexpected error: %v", err)
		}
		if ok != withMarker {
			rt.Fatalf("content %q: expected %v, got %v", content, withMarker, ok)
		}
	})
}
