package preview

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestIndexListsDocsAndMockups(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "docs", "srs.html"), "<html></html>")
	mustWrite(t, filepath.Join(dir, "docs", "data_flow.html"), "<html></html>")
	mustWrite(t, filepath.Join(dir, "mockups", "home.html"), "<html></html>")
	mustWrite(t, filepath.Join(dir, "docs", "notes.txt"), "ignored")

	rec := httptest.NewRecorder()
	serveIndex(rec, dir)

	body := rec.Body.String()
	for _, want := range []string{"Srs", "Data Flow", "Home", "docs/srs.html", "mockups/home.html"} {
		if !strings.Contains(body, want) {
			t.Errorf("index missing %q", want)
		}
	}
	if strings.Contains(body, "notes.txt") {
		t.Errorf("index should skip non-HTML files")
	}
}

func TestIndexEmptyOutput(t *testing.T) {
	rec := httptest.NewRecorder()
	serveIndex(rec, t.TempDir())

	if !strings.Contains(rec.Body.String(), "Nothing generated yet") {
		t.Errorf("empty index should suggest running generate")
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"srs":          "Srs",
		"data flow":    "Data Flow",
		"color palette": "Color Palette",
		"":             "",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
