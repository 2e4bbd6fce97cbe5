package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/store"
)

// ExportSection is one document in a combined export.
type ExportSection struct {
	Title    string
	Markdown string
}

// Heading is one entry extracted from Markdown source for the table of
// contents.
type Heading struct {
	Level int
	Title string
	ID    string
}

var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// ExtractHeadings returns the headings of a Markdown document in order.
// Lines inside fenced code blocks are skipped.
func ExtractHeadings(markdown string) []Heading {
	var out []Heading
	inFence := false
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		m := headingPattern.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		title := strings.TrimSpace(m[2])
		out = append(out, Heading{
			Level: len(m[1]),
			Title: title,
			ID:    headingID(title),
		})
	}
	return out
}

var headingIDStrip = regexp.MustCompile(`[^a-z0-9\s\-]`)

// headingID builds the anchor id goldmark assigns to a heading: lowercase,
// punctuation stripped, spaces collapsed to hyphens.
func headingID(title string) string {
	id := strings.ToLower(title)
	id = headingIDStrip.ReplaceAllString(id, "")
	id = strings.Join(strings.Fields(id), "-")
	return id
}

// Export assembles every section into one combined HTML document with a
// generated table of contents. Section entries link to section anchors;
// headings up to level 3 nest beneath them.
func (r *Renderer) Export(title string, sections []ExportSection, theme store.Theme) (string, error) {
	var toc strings.Builder
	var body strings.Builder

	toc.WriteString(`<nav class="toc"><h2>Table of Contents</h2><ul>`)
	for _, sec := range sections {
		anchor := "sec-" + headingID(sec.Title)
		fmt.Fprintf(&toc, `<li><a href="#%s">%s</a>`, anchor, escapeHTML(sec.Title))

		var nested []Heading
		for _, h := range ExtractHeadings(sec.Markdown) {
			// The section's own top-level title repeats the TOC entry.
			if h.Level == 1 {
				continue
			}
			if h.Level <= 3 {
				nested = append(nested, h)
			}
		}
		if len(nested) > 0 {
			toc.WriteString("<ul>")
			for _, h := range nested {
				fmt.Fprintf(&toc, `<li><a href="#%s">%s</a></li>`, h.ID, escapeHTML(h.Title))
			}
			toc.WriteString("</ul>")
		}
		toc.WriteString("</li>")

		page, err := r.Render(sec.Markdown, theme)
		if err != nil {
			return "", fmt.Errorf("rendering section %s: %w", sec.Title, err)
		}
		fmt.Fprintf(&body, `<section id="%s">%s</section>`, anchor, page.HTML)
	}
	toc.WriteString("</ul></nav>")

	return Document(title, toc.String()+body.String(), theme)
}
