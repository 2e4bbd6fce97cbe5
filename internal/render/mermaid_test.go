package render

import (
	"strings"
	"testing"
)

func TestSanitizeAddsMissingHeader(t *testing.T) {
	got := Sanitize("A[Start] --> B[End]")
	if !strings.HasPrefix(got, "graph TD") {
		t.Errorf("missing header:\n%s", got)
	}
}

func TestSanitizeAddsHeaderToSubgraphBody(t *testing.T) {
	got := Sanitize("subgraph API\nA[Start] --> B[End]\nend")
	if !strings.HasPrefix(got, "graph TD") {
		t.Errorf("missing header:\n%s", got)
	}
	if !strings.Contains(got, "subgraph API") {
		t.Errorf("subgraph dropped:\n%s", got)
	}
}

func TestSanitizeStripsFences(t *testing.T) {
	got := Sanitize("```mermaid\ngraph TD\nA --> B\n```")
	if strings.Contains(got, "```") {
		t.Errorf("fence survived:\n%s", got)
	}
}

func TestSanitizeClosesUnbalancedSubgraphs(t *testing.T) {
	got := Sanitize("graph TD\nsubgraph API\nA --> B\nsubgraph Inner\nC --> D")
	ends := 0
	for _, line := range strings.Split(got, "\n") {
		if strings.TrimSpace(line) == "end" {
			ends++
		}
	}
	if ends != 2 {
		t.Errorf("got %d end lines, want 2:\n%s", ends, got)
	}
}

func TestSanitizeCleansNodeIDs(t *testing.T) {
	got := Sanitize("graph TD\nUser&Auth[Login] --> DB(1)[Store]")
	if strings.Contains(got, "User&Auth") {
		t.Errorf("invalid id survived:\n%s", got)
	}
	if !strings.Contains(got, "User_Auth") {
		t.Errorf("id not normalized:\n%s", got)
	}
}

func TestSanitizeEscapesLabels(t *testing.T) {
	got := Sanitize(`graph TD` + "\n" + `A[Call foo(bar)] --> B[Done]`)
	if strings.Contains(got, "foo(bar)") {
		t.Errorf("parens survived in label:\n%s", got)
	}
	if !strings.Contains(got, "#lpar;") {
		t.Errorf("label not escaped:\n%s", got)
	}
}

func TestSanitizeQuotesLabels(t *testing.T) {
	got := Sanitize("graph TD\nA[plain label] --> B")
	if !strings.Contains(got, `A["plain label"]`) {
		t.Errorf("label not quoted:\n%s", got)
	}
}

func TestSanitizeKeepsNodeClasses(t *testing.T) {
	got := Sanitize("graph TD\nclassDef svc fill:#f9f\nA[Gateway]:::svc --> B")
	if !strings.Contains(got, ":::svc") {
		t.Errorf("class suffix dropped:\n%s", got)
	}
	if !strings.Contains(got, "classDef svc") {
		t.Errorf("classDef dropped:\n%s", got)
	}
}

func TestSanitizeLeavesOtherDiagramKindsAlone(t *testing.T) {
	src := "sequenceDiagram\nparticipant U as User\nU->>S: login(credentials)"
	got := Sanitize(src)
	if got != src {
		t.Errorf("sequence diagram rewritten:\ngot  %q\nwant %q", got, src)
	}
}

func TestSanitizeDropsDuplicateHeaders(t *testing.T) {
	got := Sanitize("graph TD\ngraph LR\nA --> B")
	if strings.Count(got, "graph ") != 1 {
		t.Errorf("duplicate header survived:\n%s", got)
	}
}

func TestSanitizeEmptyInput(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if got := Sanitize("```\n```"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
