package generator

import "strings"

// diagramKeywords are the mermaid diagram-type declarations recognized at the
// start of a payload's first line.
var diagramKeywords = map[string]bool{
	"graph":           true,
	"flowchart":       true,
	"sequenceDiagram": true,
	"classDiagram":    true,
	"stateDiagram":    true,
	"stateDiagram-v2": true,
	"erDiagram":       true,
	"journey":         true,
	"gantt":           true,
	"pie":             true,
	"mindmap":         true,
	"timeline":        true,
}

// LooksLikeDiagram reports whether the text starts with a mermaid diagram
// declaration.
func LooksLikeDiagram(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		first := trimmed
		if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
			first = trimmed[:i]
		}
		return diagramKeywords[first]
	}
	return false
}

// EnsureDiagramFence wraps raw mermaid source in a fenced code block so the
// renderer treats it as a diagram. Text that is already fenced, or that does
// not look like diagram source, is returned unchanged.
func EnsureDiagramFence(text string) string {
	if strings.Contains(text, "```") {
		return text
	}
	if !LooksLikeDiagram(text) {
		return text
	}
	return "```mermaid\n" + strings.TrimRight(text, "\n") + "\n```"
}
