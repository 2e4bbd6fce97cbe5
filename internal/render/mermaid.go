package render

import (
	"fmt"
	"regexp"
	"strings"
)

// Sanitize repairs common syntax faults in model-generated mermaid source.
// Flowchart and graph diagrams get their node ids and labels normalized and
// unbalanced subgraph blocks closed. Other diagram kinds pass through with
// only stray code fences removed.
func Sanitize(diagram string) string {
	lines := splitDiagram(diagram)
	if len(lines) == 0 {
		return ""
	}

	head := strings.Fields(lines[0])
	if len(head) > 0 && (head[0] == "graph" || head[0] == "flowchart") {
		return sanitizeFlowchart(lines)
	}
	// Headerless flowchart output is a common model fault: the body arrives
	// without its graph declaration. Repair it instead of passing it through.
	if flowchartBody(lines[0]) {
		return sanitizeFlowchart(lines)
	}
	return strings.Join(lines, "\n")
}

// flowchartBody reports whether a line is shaped like flowchart content
// rather than another diagram kind's declaration.
func flowchartBody(line string) bool {
	trimmed := strings.TrimSpace(line)
	return arrowLine.MatchString(line) || nodeLine.MatchString(line) ||
		strings.HasPrefix(trimmed, "subgraph ")
}

// splitDiagram drops blank lines and leftover ``` fences.
func splitDiagram(diagram string) []string {
	var out []string
	for _, raw := range strings.Split(diagram, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "```") {
			continue
		}
		out = append(out, raw)
	}
	return out
}

func sanitizeFlowchart(lines []string) string {
	var out []string
	hasHeader := false
	depth := 0

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, "graph ") || strings.HasPrefix(line, "flowchart "):
			if !hasHeader {
				out = append(out, line)
				hasHeader = true
			}
		case strings.HasPrefix(line, "%%"),
			strings.HasPrefix(line, "classDef "),
			strings.HasPrefix(line, "class "),
			strings.HasPrefix(line, "style "):
			out = append(out, line)
		case strings.HasPrefix(line, "subgraph "):
			out = append(out, line)
			depth++
		case line == "end" || line == "en":
			if depth > 0 {
				out = append(out, "end")
				depth--
			}
		default:
			if fixed := normalizeLine(raw); fixed != "" {
				out = append(out, fixed)
			}
		}
	}
	for depth > 0 {
		out = append(out, "end")
		depth--
	}
	if !hasHeader {
		out = append([]string{"graph TD"}, out...)
	}
	return strings.Join(out, "\n")
}

var (
	arrowLine   = regexp.MustCompile(`^(\s*)(\S+?)(\s*-->.*)$`)
	arrowTarget = regexp.MustCompile(`(-->(?:\|[^|]*\|)?\s*)(\S+)(.*)$`)
	nodeLine    = regexp.MustCompile(`^(\s*)(\S+?)(\[.*)$`)
	idCleaner   = strings.NewReplacer(
		"&", "_", "#", "_", "@", "_", "!", "_", "?", "_",
		"(", "_", ")", "_", "[", "_", "]", "_", "{", "_", "}", "_",
		"<", "_", ">", "_", ";", "_", ",", "_", "'", "_", `"`, "_",
	)
	labelEscaper = strings.NewReplacer(
		`"`, "#quot;", "(", "#lpar;", ")", "#rpar;",
		"[", "#lsqb;", "]", "#rsqb;", "{", "#lbrace;", "}", "#rbrace;",
		"<", "#lt;", ">", "#gt;",
	)
)

// normalizeLine rewrites a node or arrow line with cleaned ids and quoted,
// escaped labels. Lines that match neither shape are dropped.
func normalizeLine(line string) string {
	if m := arrowLine.FindStringSubmatch(line); m != nil {
		indent, rawSource, rest := m[1], m[2], m[3]
		tm := arrowTarget.FindStringSubmatch(rest)
		if tm == nil {
			return ""
		}
		arrow := strings.TrimSpace(tm[1])
		return indent + renderNode(rawSource) + " " + arrow + " " + renderNode(strings.TrimSpace(tm[2]+tm[3]))
	}
	if m := nodeLine.FindStringSubmatch(line); m != nil {
		node := renderNode(strings.TrimSpace(line))
		if node == "" {
			return ""
		}
		return m[1] + node
	}
	return ""
}

// renderNode re-emits a node reference (bare id, id[label], optional :::class)
// in canonical id["label"]:::class form.
func renderNode(ref string) string {
	id, label, class := parseNode(ref)
	var b strings.Builder
	b.WriteString(idCleaner.Replace(id))
	if label != "" {
		fmt.Fprintf(&b, `["%s"]`, labelEscaper.Replace(label))
	}
	b.WriteString(class)
	return b.String()
}

func parseNode(s string) (id, label, class string) {
	s = strings.TrimSpace(s)

	// A :::class suffix sits outside any bracketed label.
	bracket := 0
	for i := 0; i+3 <= len(s); i++ {
		switch s[i] {
		case '[':
			bracket++
		case ']':
			bracket--
		}
		if bracket == 0 && s[i:i+3] == ":::" {
			class = s[i:]
			if sp := strings.IndexByte(class, ' '); sp >= 0 {
				class = class[:sp]
			}
			s = s[:i]
			break
		}
	}

	open := strings.IndexByte(s, '[')
	if open < 0 {
		return s, "", class
	}
	id = s[:open]

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				label = strings.TrimSpace(s[open+1 : i])
				label = strings.TrimSuffix(strings.TrimPrefix(label, `"`), `"`)
				return id, label, class
			}
		}
	}
	// Unclosed label bracket: keep what is there.
	label = strings.TrimSpace(strings.TrimPrefix(s[open+1:], `"`))
	return id, label, class
}
