// Package api is the HTTP client for the blueprint agent backend. Each
// generation endpoint takes a free-text input and answers with a JSON object
// whose payload field name varies per agent; extraction falls back across the
// known aliases and finally to the raw JSON dump.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Backend abstracts the generation operations so the orchestrator can run
// over HTTP or against an in-process implementation on the server side.
type Backend interface {
	GenerateSRS(ctx context.Context, description string) (string, error)
	GenerateERD(ctx context.Context, source string) (string, error)
	GenerateArchitecture(ctx context.Context, source string) (string, error)
	GenerateDataflow(ctx context.Context, source string) (string, error)
	GenerateSequence(ctx context.Context, source string) (string, error)
	GeneratePalette(ctx context.Context, source string) (string, error)
	GenerateMicroservices(ctx context.Context, source string) (string, error)
	GenerateMockups(ctx context.Context, description, designPreferences string, screens []string) (string, error)
}

// Client talks to the agent backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ Backend = (*Client)(nil)

// New creates a Client for the given backend base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Minute},
	}
}

// postJSON issues a POST and decodes the response. On a 2xx with an
// undecodable body it returns a nil map and the raw bytes; the caller decides
// whether that degrades to a JSON dump or is a ParseError.
func (c *Client) postJSON(ctx context.Context, path string, payload any) (map[string]any, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &HTTPError{Status: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode)}
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, raw, nil
	}
	return fields, raw, nil
}

// errorMessage pulls the "error" field out of an error body, falling back to
// the HTTP status text.
func errorMessage(raw []byte, status int) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return http.StatusText(status)
}

// extractText returns the first of the given keys present in fields as a
// string. When the body was undecodable or no key matches, the raw JSON text
// is returned as-is: an unknown-shaped success response degrades to a dump
// rather than failing the section.
func extractText(fields map[string]any, raw []byte, keys ...string) string {
	for _, key := range keys {
		if v, ok := fields[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		}
	}
	return string(raw)
}

// GenerateSRS requests the SRS document for a project description.
func (c *Client) GenerateSRS(ctx context.Context, description string) (string, error) {
	fields, raw, err := c.postJSON(ctx, "/api/generate_srs", map[string]any{
		"description": description,
	})
	if err != nil {
		return "", err
	}
	return extractText(fields, raw, "srs_document", "srs", "document"), nil
}

// GenerateERD requests an entity-relationship diagram from the source text.
func (c *Client) GenerateERD(ctx context.Context, source string) (string, error) {
	fields, raw, err := c.postJSON(ctx, "/api/generate_erd", map[string]any{
		"table_definitions": []string{source},
	})
	if err != nil {
		return "", err
	}
	return extractText(fields, raw, "erd_diagram", "erd", "diagram"), nil
}

// GenerateArchitecture requests a system architecture diagram.
func (c *Client) GenerateArchitecture(ctx context.Context, source string) (string, error) {
	fields, raw, err := c.postJSON(ctx, "/api/generate_architecture", map[string]any{
		"requirements": source,
	})
	if err != nil {
		return "", err
	}
	return extractText(fields, raw, "architecture_diagram", "architecture"), nil
}

// GenerateDataflow requests a data flow diagram.
func (c *Client) GenerateDataflow(ctx context.Context, source string) (string, error) {
	fields, raw, err := c.postJSON(ctx, "/api/generate_dataflow", map[string]any{
		"description": source,
	})
	if err != nil {
		return "", err
	}
	return extractText(fields, raw, "dataflow_diagram", "dataflow"), nil
}

// GenerateSequence requests a sequence diagram.
func (c *Client) GenerateSequence(ctx context.Context, source string) (string, error) {
	fields, raw, err := c.postJSON(ctx, "/api/generate_sequence", map[string]any{
		"description": source,
	})
	if err != nil {
		return "", err
	}
	return extractText(fields, raw, "sequence_diagram", "sequence"), nil
}

// GeneratePalette requests a color palette diagram.
func (c *Client) GeneratePalette(ctx context.Context, source string) (string, error) {
	fields, raw, err := c.postJSON(ctx, "/api/generate_palette", map[string]any{
		"description": source,
	})
	if err != nil {
		return "", err
	}
	return extractText(fields, raw, "palette_diagram", "palette"), nil
}

// GenerateMicroservices requests a microservices architecture diagram.
func (c *Client) GenerateMicroservices(ctx context.Context, source string) (string, error) {
	fields, raw, err := c.postJSON(ctx, "/api/generate_microservices", map[string]any{
		"requirements": source,
		"scale":        "medium",
		"consistency":  "eventual",
	})
	if err != nil {
		return "", err
	}
	return extractText(fields, raw, "architecture_diagram", "architecture"), nil
}

// GenerateMockups requests HTML screen mockups and returns the raw
// mockups_data value (a JSON object or a JSON-encoded string of one).
// Unlike the section endpoints, an undecodable body here is a ParseError.
func (c *Client) GenerateMockups(ctx context.Context, description, designPreferences string, screens []string) (string, error) {
	fields, raw, err := c.postJSON(ctx, "/api/generate_mockups", map[string]any{
		"description":        description,
		"design_preferences": designPreferences,
		"screens":            strings.Join(screens, ", "),
	})
	if err != nil {
		return "", err
	}
	if fields == nil {
		return "", &ParseError{Err: fmt.Errorf("mockups response is not valid JSON")}
	}
	switch v := fields["mockups_data"].(type) {
	case string:
		return v, nil
	case nil:
		return string(raw), nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", &ParseError{Err: err}
		}
		return string(b), nil
	}
}

// Echo posts the given contact-form fields to the echo endpoint and returns
// the backend's message.
func (c *Client) Echo(ctx context.Context, fields map[string]string) (string, error) {
	resp, raw, err := c.postJSON(ctx, "/api/echo", fields)
	if err != nil {
		return "", err
	}
	return extractText(resp, raw, "message"), nil
}

// Health checks the backend health endpoint and returns its status string.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{Status: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode)}
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", &ParseError{Err: err}
	}
	return body.Status, nil
}
