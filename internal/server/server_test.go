package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/agents"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/db"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/generator"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/history"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/llm"
)

// allFieldsResponse satisfies every agent's field extraction at once.
const allFieldsResponse = `{
	"srs_document": "# Project SRS\nScope...",
	"srs_summary": "{}",
	"erd_diagram": "erDiagram\n  USER ||--o{ ORDER : places",
	"architecture_diagram": "graph TD\nA --> B",
	"component_summary": "{}",
	"dataflow_diagram": "flowchart LR\nA --> B",
	"sequence_diagram": "sequenceDiagram\nA->>B: hi",
	"participant_summary": "{}",
	"palette_diagram": "flowchart TD\nP[\"Primary (#1E3A8A)\"]",
	"color_summary": "{}",
	"service_summary": "{}",
	"mockups": [{"screen_name": "Home", "description": "landing", "html_content": "<!DOCTYPE html><html></html>"}],
	"design_summary": {"style": "clean"}
}`

type fakeProvider struct {
	mu      sync.Mutex
	calls   int
	content string
	err     error
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Complete(_ context.Context, _ llm.CompletionRequest) (*llm.CompletionResponse, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{Content: p.content, FinishReason: "stop"}, nil
}

func newTestServer(t *testing.T, provider llm.Provider, hist *history.Store) *Server {
	t.Helper()
	svc := agents.NewService(provider)
	return New(Config{Port: 0, Screens: []string{"Home"}, AllowAll: true}, svc, hist)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeProvider{content: allFieldsResponse}, nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeMap(t, rec)["status"]; got != "healthy" {
		t.Errorf("status field = %v", got)
	}
}

func TestEchoReturnsRequestData(t *testing.T) {
	s := newTestServer(t, &fakeProvider{content: allFieldsResponse}, nil)
	rec := postJSON(t, s.Router(), "/api/echo", map[string]string{"ping": "pong"})

	out := decodeMap(t, rec)
	received, ok := out["received_data"].(map[string]any)
	if !ok || received["ping"] != "pong" {
		t.Errorf("received_data = %v", out["received_data"])
	}
}

func TestGenerateSRSEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeProvider{content: allFieldsResponse}, nil)
	rec := postJSON(t, s.Router(), "/api/generate_srs", map[string]string{"description": "a todo app"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeMap(t, rec)
	doc, _ := out["srs_document"].(string)
	if !strings.HasPrefix(doc, "# Project SRS") {
		t.Errorf("srs_document = %q", doc)
	}
}

func TestGenerateSRSRequiresDescription(t *testing.T) {
	s := newTestServer(t, &fakeProvider{content: allFieldsResponse}, nil)
	rec := postJSON(t, s.Router(), "/api/generate_srs", map[string]string{"description": "  "})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if decodeMap(t, rec)["error"] == "" {
		t.Error("error field missing")
	}
}

func TestGenerateERDEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeProvider{content: allFieldsResponse}, nil)
	rec := postJSON(t, s.Router(), "/api/generate_erd", map[string]any{
		"table_definitions": []string{"users(id int pk, name text)"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	diagram, _ := decodeMap(t, rec)["erd_diagram"].(string)
	if !strings.HasPrefix(diagram, "erDiagram") {
		t.Errorf("erd_diagram = %q", diagram)
	}
}

func TestAgentFailureReturnsErrorEnvelope(t *testing.T) {
	s := newTestServer(t, &fakeProvider{err: errors.New("provider down")}, nil)
	rec := postJSON(t, s.Router(), "/api/generate_sequence", map[string]string{"description": "x"})

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	msg, _ := decodeMap(t, rec)["error"].(string)
	if !strings.Contains(msg, "provider down") {
		t.Errorf("error = %q", msg)
	}
}

func TestGenerateMockupsAcceptsScreenArray(t *testing.T) {
	s := newTestServer(t, &fakeProvider{content: allFieldsResponse}, nil)
	rec := postJSON(t, s.Router(), "/api/generate_mockups", map[string]any{
		"description":        "a shop",
		"design_preferences": "minimal",
		"screens":            []string{"Home", "Cart"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	out := decodeMap(t, rec)
	data, _ := out["mockups_data"].(string)
	if !strings.Contains(data, "screen_name") {
		t.Errorf("mockups_data = %q", data)
	}
}

func TestGenerateMicroservicesEndpoint(t *testing.T) {
	s := newTestServer(t, &fakeProvider{content: allFieldsResponse}, nil)
	rec := postJSON(t, s.Router(), "/api/generate_microservices", map[string]string{
		"requirements": "orders and payments",
		"scale":        "medium",
		"consistency":  "eventual",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	diagram, _ := decodeMap(t, rec)["architecture_diagram"].(string)
	if !strings.HasPrefix(diagram, "graph TD") {
		t.Errorf("architecture_diagram = %q", diagram)
	}
}

func TestRequestsAreRecorded(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer database.Close()
	hist := history.NewStore(database)

	s := newTestServer(t, &fakeProvider{content: allFieldsResponse}, hist)
	postJSON(t, s.Router(), "/api/generate_srs", map[string]string{"description": "a todo app"})
	postJSON(t, s.Router(), "/api/generate_dataflow", map[string]string{"description": "a todo app"})

	entries, err := hist.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Outcome != history.OutcomeOK {
			t.Errorf("entry %s outcome = %s", e.Endpoint, e.Outcome)
		}
	}
}

func TestFailedRequestRecordedWithDetail(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer database.Close()
	hist := history.NewStore(database)

	s := newTestServer(t, &fakeProvider{err: errors.New("boom")}, hist)
	postJSON(t, s.Router(), "/api/generate_srs", map[string]string{"description": "x"})

	entries, err := hist.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Outcome != history.OutcomeError {
		t.Fatalf("entries = %+v", entries)
	}
	if !strings.Contains(entries[0].Detail, "boom") {
		t.Errorf("detail = %q", entries[0].Detail)
	}
}

func TestWebSocketGenerateStreamsToDone(t *testing.T) {
	s := newTestServer(t, &fakeProvider{content: allFieldsResponse}, nil)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/generate"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(generateRequest{Description: "a todo app"}); err != nil {
		t.Fatal(err)
	}

	var final generator.Snapshot
	sawSnapshot := false
	deadline := time.Now().Add(10 * time.Second)
	for {
		conn.SetReadDeadline(deadline)
		var ev generateEvent
		if err := conn.ReadJSON(&ev); err != nil {
			t.Fatalf("reading event: %v", err)
		}
		switch ev.Type {
		case "snapshot":
			sawSnapshot = true
		case "done":
			final = ev.Snapshot
		case "error":
			t.Fatalf("unexpected error event: %s", ev.Error)
		}
		if ev.Type == "done" {
			break
		}
	}

	if !sawSnapshot {
		t.Error("no intermediate snapshot streamed")
	}
	if len(final.Sections) != 7 {
		t.Fatalf("sections = %d, want 7", len(final.Sections))
	}
	for _, sec := range final.Sections {
		if sec.Status != generator.StatusDone {
			t.Errorf("section %s status = %s", sec.Name, sec.Status)
		}
	}
	if len(final.Mockups) != 1 || final.Mockups[0].Status != generator.StatusDone {
		t.Errorf("mockups = %+v", final.Mockups)
	}
	if final.Generating {
		t.Error("final snapshot still generating")
	}
}

func TestWebSocketRejectsEmptyDescription(t *testing.T) {
	s := newTestServer(t, &fakeProvider{content: allFieldsResponse}, nil)
	srv := httptest.NewServer(s.Router())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/generate"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(generateRequest{Description: ""}); err != nil {
		t.Fatal(err)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var ev generateEvent
	if err := conn.ReadJSON(&ev); err != nil {
		t.Fatal(err)
	}
	if ev.Type != "error" {
		t.Errorf("event type = %s, want error", ev.Type)
	}
}
