// Package agents implements the generation agents behind the API endpoints.
// Each agent pairs a system prompt with a structured completion over an
// llm.Provider.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/llm"
)

// Service runs the generation agents on a shared provider.
type Service struct {
	provider llm.Provider
	// retryPause separates retry attempts. Tests shrink it.
	retryPause time.Duration
}

// NewService creates a Service over the given provider.
func NewService(provider llm.Provider) *Service {
	return &Service{provider: provider, retryPause: time.Second}
}

// SRSResult is the SRS agent's structured output.
type SRSResult struct {
	Document string `json:"srs_document"`
	Summary  string `json:"srs_summary"`
}

// DiagramResult is the common diagram-plus-summary shape most agents emit.
type DiagramResult struct {
	Diagram string
	Summary string
}

// MockupsResult carries the mockups JSON payload and the design summary.
type MockupsResult struct {
	Data          string `json:"mockups_data"`
	DesignSummary string `json:"design_summary"`
}

// GenerateSRS produces a full SRS document. Single attempt.
func (s *Service) GenerateSRS(ctx context.Context, description, requirements, audience string) (SRSResult, error) {
	if requirements == "" {
		requirements = "Not specified"
	}
	if audience == "" {
		audience = "Not specified"
	}
	msg := fmt.Sprintf(`Generate a Software Requirements Specification for the project inferred from this description. Infer a short, descriptive project name.

Description: %s
Requirements: %s
Audience: %s

Follow the SRS structure and return the full SRS text and a JSON summary mapping the main sections to short bullets. Include the inferred project name at the top of the document.`,
		description, requirements, audience)

	var out SRSResult
	content, err := s.complete(ctx, srsPrompt, msg)
	if err != nil {
		return SRSResult{}, err
	}
	if err := json.Unmarshal([]byte(content), &out); err != nil || out.Document == "" {
		// Non-JSON output is still a usable document.
		out = SRSResult{Document: content}
	}
	return out, nil
}

// GenerateERD produces a Mermaid ERD from table definitions. Single attempt.
func (s *Service) GenerateERD(ctx context.Context, tableDefinitions string) (string, error) {
	msg := fmt.Sprintf("Generate an ERD diagram for these tables: %s", tableDefinitions)

	content, err := s.complete(ctx, erdPrompt, msg)
	if err != nil {
		return "", err
	}
	var out struct {
		Diagram string `json:"erd_diagram"`
	}
	if err := json.Unmarshal([]byte(content), &out); err == nil && out.Diagram != "" {
		return stripFences(out.Diagram), nil
	}
	return stripFences(content), nil
}

// GenerateArchitecture produces a system architecture diagram. Retries
// transient provider failures.
func (s *Service) GenerateArchitecture(ctx context.Context, requirements, technologyStack, deploymentType string) (DiagramResult, error) {
	if technologyStack == "" {
		technologyStack = "Not specified - use modern web technologies"
	}
	if deploymentType == "" {
		deploymentType = "web"
	}
	msg := fmt.Sprintf(`Generate a system architecture diagram based on these requirements:

Requirements: %s

Technology Stack: %s

Deployment Type: %s

Please create a comprehensive system architecture diagram showing all components, data flows, and integrations.`,
		requirements, technologyStack, deploymentType)

	return s.diagramWithRetry(ctx, "system architecture", architecturePrompt, msg, "architecture_diagram", "component_summary")
}

// GenerateDataflow produces a data flow diagram. Retries transient failures.
func (s *Service) GenerateDataflow(ctx context.Context, description, components string) (DiagramResult, error) {
	if components == "" {
		components = "Not specified - infer components from description"
	}
	msg := fmt.Sprintf(`Generate a dataflow diagram for the following system description:

Description: %s

Components: %s

Please return a Mermaid dataflow diagram and a concise JSON summary of components.`,
		description, components)

	return s.diagramWithRetry(ctx, "dataflow", dataflowPrompt, msg, "dataflow_diagram", "component_summary")
}

// GenerateSequence produces a sequence diagram. Single attempt.
func (s *Service) GenerateSequence(ctx context.Context, description, actors string) (DiagramResult, error) {
	if actors == "" {
		actors = "Not specified - infer actors from description"
	}
	msg := fmt.Sprintf(`Generate a sequence diagram for the following interaction description:

Description: %s

Actors: %s

Please return a Mermaid sequenceDiagram and a concise JSON summary of participants.`,
		description, actors)

	return s.diagram(ctx, sequencePrompt, msg, "sequence_diagram", "participant_summary")
}

// GeneratePalette recommends a color palette as a Mermaid flowchart. Retries
// transient failures.
func (s *Service) GeneratePalette(ctx context.Context, description, styleHints string) (DiagramResult, error) {
	msg := fmt.Sprintf(`Recommend a color palette and return a Mermaid flowchart for these inputs:

Description: %s
Style hints: %s

Please return a Mermaid flowchart (horizontal boxes) and a JSON color summary mapping roles to hex colors and short justifications.`,
		description, styleHints)

	return s.diagramWithRetry(ctx, "palette", palettePrompt, msg, "palette_diagram", "color_summary")
}

// GenerateMicroservices produces a microservices architecture diagram.
// Single attempt.
func (s *Service) GenerateMicroservices(ctx context.Context, requirements, scale, consistency string) (DiagramResult, error) {
	if scale == "" {
		scale = "medium"
	}
	if consistency == "" {
		consistency = "eventual"
	}
	msg := fmt.Sprintf(`Generate a microservices architecture diagram according to these inputs:

Requirements: %s
Scale: %s
Consistency: %s

Please return a Mermaid diagram and a JSON service summary.`,
		requirements, scale, consistency)

	return s.diagram(ctx, microservicesPrompt, msg, "architecture_diagram", "service_summary")
}

// GenerateMockups produces the mockups JSON payload. Retries transient
// failures and runs in JSON mode.
func (s *Service) GenerateMockups(ctx context.Context, description, designPreferences, screens string) (MockupsResult, error) {
	if designPreferences == "" {
		designPreferences = "Modern, clean, professional design"
	}
	if screens == "" {
		screens = "Generate appropriate screens based on description"
	}
	msg := fmt.Sprintf(`Generate HTML/CSS screen mockups for the following application:

Description: %s
Design Preferences: %s
Specific Screens: %s

Please return a JSON object with complete HTML mockups and design summary.`,
		description, designPreferences, screens)

	var result MockupsResult
	err := s.withRetry(ctx, "mockups", func() error {
		content, err := s.completeJSON(ctx, mockupsPrompt, msg)
		if err != nil {
			return err
		}
		content = stripFences(content)
		if !json.Valid([]byte(content)) {
			return fmt.Errorf("mockups output is not valid JSON")
		}
		var summary struct {
			DesignSummary json.RawMessage `json:"design_summary"`
		}
		_ = json.Unmarshal([]byte(content), &summary)
		result = MockupsResult{Data: content, DesignSummary: string(summary.DesignSummary)}
		return nil
	})
	if err != nil {
		return MockupsResult{}, err
	}
	return result, nil
}

// diagram runs one diagram agent attempt and extracts the named fields.
func (s *Service) diagram(ctx context.Context, prompt, msg, diagramKey, summaryKey string) (DiagramResult, error) {
	content, err := s.complete(ctx, prompt, msg)
	if err != nil {
		return DiagramResult{}, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err == nil {
		res := DiagramResult{
			Diagram: stripFences(rawToString(fields[diagramKey])),
			Summary: rawToString(fields[summaryKey]),
		}
		if res.Diagram != "" {
			return res, nil
		}
	}
	// The model ignored the JSON instruction; take the whole output as the
	// diagram.
	return DiagramResult{Diagram: stripFences(content)}, nil
}

func (s *Service) diagramWithRetry(ctx context.Context, name, prompt, msg, diagramKey, summaryKey string) (DiagramResult, error) {
	var result DiagramResult
	err := s.withRetry(ctx, name, func() error {
		var attemptErr error
		result, attemptErr = s.diagram(ctx, prompt, msg, diagramKey, summaryKey)
		return attemptErr
	})
	return result, err
}

const maxAttempts = 3

// withRetry runs fn up to maxAttempts times with a pause between attempts.
func (s *Service) withRetry(ctx context.Context, name string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		log.Printf("attempt %d failed for %s generation: %v", attempt, name, lastErr)
		if attempt == maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.retryPause):
		}
	}
	return fmt.Errorf("%s generation failed after %d attempts: %w", name, maxAttempts, lastErr)
}

func (s *Service) complete(ctx context.Context, systemPrompt, userMsg string) (string, error) {
	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: userMsg},
		},
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

func (s *Service) completeJSON(ctx context.Context, systemPrompt, userMsg string) (string, error) {
	resp, err := s.provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: userMsg},
		},
		JSONMode: true,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Content), nil
}

// rawToString unquotes JSON strings and passes other JSON values through as
// their literal text.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return string(raw)
}

// stripFences removes a surrounding ```mermaid / ``` fence the model was told
// not to emit but sometimes does anyway.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
