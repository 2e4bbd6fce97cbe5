package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/store"
)

// Document wraps rendered section HTML in a full standalone page with theme
// tokens, a mermaid.js loader, and the loading spinner styles.
func Document(title string, body string, theme store.Theme) (string, error) {
	var buf strings.Builder
	err := docTemplate.Execute(&buf, docData{
		Title:      title,
		Body:       template.HTML(body),
		ThemeAttr:  themeClass(theme),
		MermaidOpt: mermaidTheme(theme),
	})
	if err != nil {
		return "", fmt.Errorf("executing page template: %w", err)
	}
	return buf.String(), nil
}

func mermaidTheme(theme store.Theme) string {
	if theme == store.ThemeLight {
		return "default"
	}
	return "dark"
}

type docData struct {
	Title      string
	Body       template.HTML
	ThemeAttr  string
	MermaidOpt string
}

var docTemplate = template.Must(template.New("doc").Parse(`<!DOCTYPE html>
<html lang="en" data-theme="{{.ThemeAttr}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>` + docCSS + `</style>
  <script src="https://cdn.jsdelivr.net/npm/mermaid@10/dist/mermaid.min.js"></script>
  <script>
    mermaid.initialize({ startOnLoad: true, theme: "{{.MermaidOpt}}", securityLevel: "loose" });
  </script>
</head>
<body>
  <main class="content">
    <h1 class="page-title">{{.Title}}</h1>
    {{.Body}}
  </main>
</body>
</html>`))

const docCSS = `
:root, [data-theme="theme-light"] {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --code-bg: #f1f3f5;
  --error: #e03131;
  --error-bg: #fff5f5;
}
[data-theme="theme-dark"] {
  --bg: #1a1b1e;
  --bg-secondary: #25262b;
  --text: #e9ecef;
  --text-muted: #909296;
  --border: #373a40;
  --accent: #4dabf7;
  --code-bg: #2c2e33;
  --error: #ff6b6b;
  --error-bg: #2c1a1a;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
  line-height: 1.65;
}
.content { max-width: 900px; margin: 0 auto; padding: 2rem 1.5rem; }
.page-title { border-bottom: 1px solid var(--border); padding-bottom: 0.5rem; }
h1, h2, h3 { color: var(--text); }
a { color: var(--accent); }
code {
  background: var(--code-bg);
  border-radius: 4px;
  padding: 0.15em 0.4em;
  font-size: 0.9em;
}
pre {
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 1rem;
  overflow-x: auto;
}
pre code { background: none; padding: 0; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid var(--border); padding: 0.4rem 0.8rem; text-align: left; }
th { background: var(--bg-secondary); }
blockquote {
  border-left: 3px solid var(--accent);
  margin-left: 0;
  padding-left: 1rem;
  color: var(--text-muted);
}
.mermaid {
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 1rem;
  max-width: 100%;
  overflow-x: auto;
}
.diagram-error {
  color: var(--error);
  background: var(--error-bg);
  border: 1px solid var(--error);
  border-radius: 6px;
  padding: 0.5rem 1rem;
  font-size: 0.9em;
}
.spinner {
  width: 24px;
  height: 24px;
  border: 3px solid var(--border);
  border-top-color: var(--accent);
  border-radius: 50%;
  animation: spin 0.8s linear infinite;
  margin: 1rem auto;
}
@keyframes spin { to { transform: rotate(360deg); } }
.toc {
  background: var(--bg-secondary);
  border: 1px solid var(--border);
  border-radius: 6px;
  padding: 1rem 1.5rem;
  margin-bottom: 2rem;
}
.toc ul { margin: 0.25rem 0; padding-left: 1.25rem; }
.toc a { text-decoration: none; }
section { margin-bottom: 3rem; }
`

// ErrorBlock is the inline fallback shown in place of a diagram that failed
// to compile. The fault stays scoped to that one block.
func ErrorBlock(id, message string) string {
	return fmt.Sprintf(`<div class="diagram-error" id="%s">diagram failed: %s</div>`, id, escapeHTML(message))
}
