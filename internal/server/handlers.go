package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error":"encoding response"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func (s *Server) handleHome(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to the Blueprint API",
		"status":  "success",
		"version": "1.0.0",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	var data any
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&data)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":       "Echo successful",
		"received_data": data,
		"status":        "success",
	})
}

func (s *Server) handleGenerateSRS(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description  string `json:"description"`
		Requirements string `json:"requirements"`
		Audience     string `json:"audience"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	start := time.Now()
	res, err := s.agents.GenerateSRS(r.Context(), req.Description, req.Requirements, req.Audience)
	s.record("/api/generate_srs", start, err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"srs_document": res.Document,
		"srs_summary":  res.Summary,
	})
}

func (s *Server) handleGenerateERD(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TableDefinitions []string `json:"table_definitions"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.TableDefinitions) == 0 {
		writeError(w, http.StatusBadRequest, "table_definitions is required")
		return
	}

	start := time.Now()
	diagram, err := s.agents.GenerateERD(r.Context(), strings.Join(req.TableDefinitions, "\n"))
	s.record("/api/generate_erd", start, err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"erd_diagram": diagram})
}

func (s *Server) handleGenerateArchitecture(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Requirements    string `json:"requirements"`
		TechnologyStack string `json:"technology_stack"`
		DeploymentType  string `json:"deployment_type"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Requirements) == "" {
		writeError(w, http.StatusBadRequest, "requirements is required")
		return
	}

	start := time.Now()
	res, err := s.agents.GenerateArchitecture(r.Context(), req.Requirements, req.TechnologyStack, req.DeploymentType)
	s.record("/api/generate_architecture", start, err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"architecture_diagram": res.Diagram,
		"component_summary":    res.Summary,
	})
}

func (s *Server) handleGenerateDataflow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
		Components  string `json:"components"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	start := time.Now()
	res, err := s.agents.GenerateDataflow(r.Context(), req.Description, req.Components)
	s.record("/api/generate_dataflow", start, err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"dataflow_diagram":  res.Diagram,
		"component_summary": res.Summary,
	})
}

func (s *Server) handleGenerateSequence(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
		Actors      string `json:"actors"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	start := time.Now()
	res, err := s.agents.GenerateSequence(r.Context(), req.Description, req.Actors)
	s.record("/api/generate_sequence", start, err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"sequence_diagram":    res.Diagram,
		"participant_summary": res.Summary,
	})
}

func (s *Server) handleGeneratePalette(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description string `json:"description"`
		StyleHints  string `json:"style_hints"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	start := time.Now()
	res, err := s.agents.GeneratePalette(r.Context(), req.Description, req.StyleHints)
	s.record("/api/generate_palette", start, err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"palette_diagram": res.Diagram,
		"color_summary":   res.Summary,
	})
}

func (s *Server) handleGenerateMicroservices(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Requirements string `json:"requirements"`
		Scale        string `json:"scale"`
		Consistency  string `json:"consistency"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Requirements) == "" {
		writeError(w, http.StatusBadRequest, "requirements is required")
		return
	}

	start := time.Now()
	res, err := s.agents.GenerateMicroservices(r.Context(), req.Requirements, req.Scale, req.Consistency)
	s.record("/api/generate_microservices", start, err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"architecture_diagram": res.Diagram,
		"service_summary":      res.Summary,
	})
}

func (s *Server) handleGenerateMockups(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Description       string          `json:"description"`
		DesignPreferences string          `json:"design_preferences"`
		Screens           json.RawMessage `json:"screens"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	start := time.Now()
	res, err := s.agents.GenerateMockups(r.Context(), req.Description, req.DesignPreferences, screensToString(req.Screens))
	s.record("/api/generate_mockups", start, err)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"mockups_data":   res.Data,
		"design_summary": res.DesignSummary,
	})
}

// screensToString accepts the screens field as either a JSON array of names
// or a plain string.
func screensToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return ""
}
