package agents

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/llm"
)

// scriptedProvider returns queued responses (or errors) in order, recording
// every request.
type scriptedProvider struct {
	mu      sync.Mutex
	queue   []step
	Calls   []llm.CompletionRequest
	repeats step // used when queue is exhausted
}

type step struct {
	content string
	err     error
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls = append(p.Calls, req)
	st := p.repeats
	if len(p.queue) > 0 {
		st = p.queue[0]
		p.queue = p.queue[1:]
	}
	if st.err != nil {
		return nil, st.err
	}
	return &llm.CompletionResponse{Content: st.content, FinishReason: "stop"}, nil
}

func newService(p llm.Provider) *Service {
	s := NewService(p)
	s.retryPause = time.Millisecond
	return s
}

func TestGenerateSRSParsesStructuredOutput(t *testing.T) {
	p := &scriptedProvider{queue: []step{
		{content: `{"srs_document": "# MyApp SRS\nScope...", "srs_summary": "{\"scope\": \"small\"}"}`},
	}}
	res, err := newService(p).GenerateSRS(context.Background(), "a todo app", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Document, "# MyApp SRS") {
		t.Errorf("document = %q", res.Document)
	}
	if res.Summary == "" {
		t.Error("summary lost")
	}
}

func TestGenerateSRSFallsBackToRawText(t *testing.T) {
	p := &scriptedProvider{queue: []step{{content: "# Plain markdown, no JSON"}}}
	res, err := newService(p).GenerateSRS(context.Background(), "a todo app", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Document != "# Plain markdown, no JSON" {
		t.Errorf("document = %q", res.Document)
	}
}

func TestGenerateSRSIsSingleAttempt(t *testing.T) {
	p := &scriptedProvider{repeats: step{err: errors.New("boom")}}
	if _, err := newService(p).GenerateSRS(context.Background(), "x", "", ""); err == nil {
		t.Fatal("expected error")
	}
	if len(p.Calls) != 1 {
		t.Errorf("calls = %d, want 1 (no retry for SRS)", len(p.Calls))
	}
}

func TestGenerateERDStripsFences(t *testing.T) {
	p := &scriptedProvider{queue: []step{
		{content: "```mermaid\nerDiagram\n  USER ||--o{ ORDER : places\n```"},
	}}
	got, err := newService(p).GenerateERD(context.Background(), "users(id), orders(id, user_id)")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "```") {
		t.Errorf("fence survived: %q", got)
	}
	if !strings.HasPrefix(got, "erDiagram") {
		t.Errorf("diagram = %q", got)
	}
}

func TestGenerateArchitectureRetriesThenSucceeds(t *testing.T) {
	p := &scriptedProvider{queue: []step{
		{err: errors.New("rate limited")},
		{err: errors.New("rate limited")},
		{content: `{"architecture_diagram": "graph TD\nA --> B", "component_summary": "{}"}`},
	}}
	res, err := newService(p).GenerateArchitecture(context.Background(), "reqs", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Calls) != 3 {
		t.Errorf("calls = %d, want 3", len(p.Calls))
	}
	if !strings.HasPrefix(res.Diagram, "graph TD") {
		t.Errorf("diagram = %q", res.Diagram)
	}
}

func TestGenerateArchitectureGivesUpAfterThreeAttempts(t *testing.T) {
	p := &scriptedProvider{repeats: step{err: errors.New("down")}}
	_, err := newService(p).GenerateArchitecture(context.Background(), "reqs", "", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(p.Calls) != 3 {
		t.Errorf("calls = %d, want 3", len(p.Calls))
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("err = %v", err)
	}
}

func TestGenerateSequenceIsSingleAttempt(t *testing.T) {
	p := &scriptedProvider{repeats: step{err: errors.New("boom")}}
	if _, err := newService(p).GenerateSequence(context.Background(), "desc", ""); err == nil {
		t.Fatal("expected error")
	}
	if len(p.Calls) != 1 {
		t.Errorf("calls = %d, want 1", len(p.Calls))
	}
}

func TestGenerateMicroservicesDefaultsScaleAndConsistency(t *testing.T) {
	p := &scriptedProvider{queue: []step{
		{content: `{"architecture_diagram": "graph TB\nGW --> Svc", "service_summary": "{}"}`},
	}}
	_, err := newService(p).GenerateMicroservices(context.Background(), "reqs", "", "")
	if err != nil {
		t.Fatal(err)
	}
	user := p.Calls[0].Messages[1].Content
	if !strings.Contains(user, "Scale: medium") || !strings.Contains(user, "Consistency: eventual") {
		t.Errorf("defaults missing from message:\n%s", user)
	}
}

func TestDiagramFallsBackToWholeOutput(t *testing.T) {
	p := &scriptedProvider{queue: []step{{content: "flowchart LR\nA --> B"}}}
	res, err := newService(p).GenerateSequence(context.Background(), "desc", "")
	if err != nil {
		t.Fatal(err)
	}
	if res.Diagram != "flowchart LR\nA --> B" {
		t.Errorf("diagram = %q", res.Diagram)
	}
}

func TestGenerateMockupsRequiresValidJSON(t *testing.T) {
	p := &scriptedProvider{repeats: step{content: "not json at all"}}
	_, err := newService(p).GenerateMockups(context.Background(), "desc", "", "")
	if err == nil {
		t.Fatal("expected error for non-JSON mockups output")
	}
	if len(p.Calls) != 3 {
		t.Errorf("calls = %d, want 3 (mockups retries)", len(p.Calls))
	}
}

func TestGenerateMockupsUsesJSONMode(t *testing.T) {
	payload := `{"mockups": [{"screen_name": "Home", "description": "d", "html_content": "<!DOCTYPE html>"}], "design_summary": {"style": "clean"}}`
	p := &scriptedProvider{queue: []step{{content: payload}}}

	res, err := newService(p).GenerateMockups(context.Background(), "desc", "", "Home")
	if err != nil {
		t.Fatal(err)
	}
	if !p.Calls[0].JSONMode {
		t.Error("mockups request must set JSON mode")
	}
	if res.Data != payload {
		t.Errorf("data = %q", res.Data)
	}
	if !strings.Contains(res.DesignSummary, "clean") {
		t.Errorf("design summary = %q", res.DesignSummary)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct{ in, want string }{
		{"graph TD\nA --> B", "graph TD\nA --> B"},
		{"```mermaid\ngraph TD\nA --> B\n```", "graph TD\nA --> B"},
		{"```\ngraph TD\n```", "graph TD"},
		{"  graph TD  ", "graph TD"},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
