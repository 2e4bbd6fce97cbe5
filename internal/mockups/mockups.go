// Package mockups parses and stores the HTML screen mockups returned by the
// agent backend. The backend's mockups_data field arrives either as a JSON
// object or as a JSON-encoded string of one, depending on how the model
// answered; both forms are handled here.
package mockups

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Mockup is one generated screen.
type Mockup struct {
	ScreenName  string `json:"screen_name"`
	Description string `json:"description"`
	HTMLContent string `json:"html_content"`
}

// DesignSummary describes the overall look the agent settled on.
type DesignSummary struct {
	ColorScheme string `json:"color_scheme"`
	Style       string `json:"style"`
	Components  string `json:"components"`
}

// Set is the parsed mockups payload for one generation run.
type Set struct {
	Mockups       []Mockup      `json:"mockups"`
	DesignSummary DesignSummary `json:"design_summary"`
}

// Parse decodes a mockups_data value. Double-encoded payloads (a JSON string
// containing the object) are unwrapped first.
func Parse(data string) (*Set, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, fmt.Errorf("empty mockups data")
	}

	// Unwrap the JSON-string form.
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			return nil, fmt.Errorf("unwrapping mockups string: %w", err)
		}
		trimmed = inner
	}

	var set Set
	if err := json.Unmarshal([]byte(trimmed), &set); err != nil {
		return nil, fmt.Errorf("decoding mockups: %w", err)
	}
	if len(set.Mockups) == 0 {
		return nil, fmt.Errorf("mockups payload contains no screens")
	}
	return &set, nil
}

// Find returns the mockup whose screen name matches, ignoring case.
func (s *Set) Find(screen string) (Mockup, bool) {
	for _, m := range s.Mockups {
		if strings.EqualFold(m.ScreenName, screen) {
			return m, true
		}
	}
	return Mockup{}, false
}

// Fallback returns the builtin static template set for the given screens,
// used when the backend yields nothing usable.
func Fallback(screens []string) *Set {
	set := &Set{
		DesignSummary: DesignSummary{
			ColorScheme: "Neutral grays with a blue accent",
			Style:       "Static placeholder templates",
			Components:  "Header, content card",
		},
	}
	for _, screen := range screens {
		var buf strings.Builder
		// Template data is controlled, so Execute cannot fail here.
		_ = fallbackTemplate.Execute(&buf, map[string]string{"Screen": screen})
		set.Mockups = append(set.Mockups, Mockup{
			ScreenName:  screen,
			Description: fmt.Sprintf("Placeholder %s screen", screen),
			HTMLContent: buf.String(),
		})
	}
	return set
}

// WriteAll writes one HTML file per screen plus an index page that cycles
// through them, and returns the directory written.
func (s *Set) WriteAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating mockups dir: %w", err)
	}

	type indexEntry struct {
		Name        string
		Description string
		File        string
	}
	var entries []indexEntry

	for _, m := range s.Mockups {
		name := fileName(m.ScreenName)
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(m.HTMLContent), 0o644); err != nil {
			return fmt.Errorf("writing mockup %s: %w", m.ScreenName, err)
		}
		entries = append(entries, indexEntry{Name: m.ScreenName, Description: m.Description, File: name})
	}

	var buf strings.Builder
	if err := indexTemplate.Execute(&buf, map[string]any{
		"Entries": entries,
		"Summary": s.DesignSummary,
	}); err != nil {
		return fmt.Errorf("rendering mockup index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("writing mockup index: %w", err)
	}
	return nil
}

// fileName converts a screen name into a safe file name.
func fileName(screen string) string {
	s := strings.ToLower(strings.TrimSpace(screen))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '-'
		}
	}, s)
	s = strings.Trim(s, "-")
	if s == "" {
		s = "screen"
	}
	return s + ".html"
}
