// Package render converts generated Markdown into themed HTML, turning
// mermaid code fences into diagram blocks that compile out-of-band.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/store"
)

// DiagramBlock is one mermaid fence found during a render. The ID is freshly
// generated per render so concurrent diagram instances on the same page never
// collide, even across re-renders of identical source.
type DiagramBlock struct {
	ID     string
	Source string
}

// Page is the output of one render pass.
type Page struct {
	HTML     string
	Diagrams []DiagramBlock
}

// Renderer renders Markdown with GFM tables, syntax highlighting, and
// auto heading anchors.
type Renderer struct {
	md goldmark.Markdown
}

// New builds a Renderer.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts Markdown to HTML. Mermaid fences become placeholder divs
// carrying the sanitized diagram source; the returned Diagrams list pairs each
// placeholder id with its source so callers can compile them asynchronously.
func (r *Renderer) Render(markdown string, theme store.Theme) (Page, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return Page{}, fmt.Errorf("converting markdown: %w", err)
	}

	htmlContent, diagrams := extractMermaid(buf.String())
	return Page{
		HTML:     fmt.Sprintf(`<div class="doc %s">%s</div>`, themeClass(theme), htmlContent),
		Diagrams: diagrams,
	}, nil
}

func themeClass(theme store.Theme) string {
	if theme == store.ThemeLight {
		return "theme-light"
	}
	return "theme-dark"
}

// extractMermaid rewrites <pre><code class="language-mermaid"> blocks into
// <div class="mermaid"> placeholders with per-instance ids.
func extractMermaid(htmlContent string) (string, []DiagramBlock) {
	const openTag = `<pre><code class="language-mermaid">`
	const closeTag = `</code></pre>`

	var diagrams []DiagramBlock
	for {
		idx := strings.Index(htmlContent, openTag)
		if idx == -1 {
			break
		}
		endIdx := strings.Index(htmlContent[idx:], closeTag)
		if endIdx == -1 {
			break
		}
		endIdx += idx

		source := unescapeHTML(htmlContent[idx+len(openTag) : endIdx])
		id := "mermaid-" + uuid.NewString()
		diagrams = append(diagrams, DiagramBlock{ID: id, Source: source})

		replacement := fmt.Sprintf(
			`<div class="mermaid" id="%s">%s</div>`,
			id, escapeHTML(Sanitize(source)),
		)
		htmlContent = htmlContent[:idx] + replacement + htmlContent[endIdx+len(closeTag):]
	}
	return htmlContent, diagrams
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// unescapeHTML reverses goldmark's code-block escaping so the diagram source
// round-trips to what the author wrote.
func unescapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", "\"")
	s = strings.ReplaceAll(s, "&#39;", "'")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}
