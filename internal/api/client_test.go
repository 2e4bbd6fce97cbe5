package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestGenerateSRSExtractsAliasedFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"primary field", `{"srs_document":"full srs"}`, "full srs"},
		{"first alias", `{"srs":"short srs"}`, "short srs"},
		{"second alias", `{"document":"doc text"}`, "doc text"},
		{"unknown shape degrades to dump", `{"something_else":"x"}`, `{"something_else":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/generate_srs" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				var req map[string]any
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatalf("decoding request: %v", err)
				}
				if req["description"] != "a todo app" {
					t.Errorf("description = %v", req["description"])
				}
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := New(srv.URL).GenerateSRS(context.Background(), "a todo app")
			if err != nil {
				t.Fatalf("GenerateSRS: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTTPErrorCarriesBodyMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"agent exploded"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GenerateERD(context.Background(), "src")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %T: %v", err, err)
	}
	if httpErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d", httpErr.Status)
	}
	if httpErr.Message != "agent exploded" {
		t.Errorf("Message = %q", httpErr.Message)
	}
}

func TestHTTPErrorFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GenerateDataflow(context.Background(), "src")
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if httpErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("Message = %q", httpErr.Message)
	}
}

func TestTransportErrorOnConnectionFailure(t *testing.T) {
	// A server that is already closed refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL).GenerateSequence(context.Background(), "src")
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected TransportError, got %T: %v", err, err)
	}
}

func TestMalformedSectionBodyDegradesToDump(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text, not json"))
	}))
	defer srv.Close()

	got, err := New(srv.URL).GeneratePalette(context.Background(), "src")
	if err != nil {
		t.Fatalf("malformed section body must not error: %v", err)
	}
	if got != "plain text, not json" {
		t.Errorf("got %q", got)
	}
}

func TestGenerateMockupsParseErrorIsFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text, not json"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).GenerateMockups(context.Background(), "desc", "", []string{"Home"})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T: %v", err, err)
	}
}

func TestGenerateMockupsHandlesObjectAndStringForms(t *testing.T) {
	object := `{"mockups_data":{"mockups":[{"screen_name":"Home","description":"d","html_content":"<html></html>"}],"design_summary":{}}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(object))
	}))
	defer srv.Close()

	got, err := New(srv.URL).GenerateMockups(context.Background(), "desc", "clean", []string{"Home", "Login"})
	if err != nil {
		t.Fatalf("GenerateMockups: %v", err)
	}
	if !strings.Contains(got, `"screen_name":"Home"`) {
		t.Errorf("object form not re-encoded: %q", got)
	}

	srvStr := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"mockups_data":"{\"mockups\":[]}"}`))
	}))
	defer srvStr.Close()

	got, err = New(srvStr.URL).GenerateMockups(context.Background(), "desc", "", nil)
	if err != nil {
		t.Fatalf("GenerateMockups string form: %v", err)
	}
	if got != `{"mockups":[]}` {
		t.Errorf("string form: got %q", got)
	}
}

func TestMicroservicesRequestShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req["scale"] != "medium" || req["consistency"] != "eventual" {
			t.Errorf("missing fixed fields: %v", req)
		}
		if req["requirements"] != "the source" {
			t.Errorf("requirements = %v", req["requirements"])
		}
		w.Write([]byte(`{"architecture_diagram":"graph TB\nA-->B"}`))
	}))
	defer srv.Close()

	got, err := New(srv.URL).GenerateMicroservices(context.Background(), "the source")
	if err != nil {
		t.Fatalf("GenerateMicroservices: %v", err)
	}
	if got != "graph TB\nA-->B" {
		t.Errorf("got %q", got)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/health" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"status":"healthy","message":"Server is running"}`))
	}))
	defer srv.Close()

	status, err := New(srv.URL).Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if status != "healthy" {
		t.Errorf("status = %q", status)
	}
}
