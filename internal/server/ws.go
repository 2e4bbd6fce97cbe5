package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/agents"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/generator"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// generateRequest is the incoming WebSocket message format.
type generateRequest struct {
	Description string `json:"description"`
}

// generateEvent is the outgoing WebSocket message format. Snapshot events
// stream the evolving section/mockup lists; the final event has type "done".
type generateEvent struct {
	Type     string             `json:"type"` // "snapshot", "done" or "error"
	Snapshot generator.Snapshot `json:"snapshot,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// handleGenerateWS runs the full generation pipeline in-process and streams
// every state change to the client.
func (s *Server) handleGenerateWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		var req generateRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendEvent(conn, generateEvent{Type: "error", Error: "invalid message format"})
			continue
		}
		if strings.TrimSpace(req.Description) == "" {
			s.sendEvent(conn, generateEvent{Type: "error", Error: "description is required"})
			continue
		}

		s.runGeneration(r.Context(), conn, req.Description)
	}
}

func (s *Server) runGeneration(ctx context.Context, conn *websocket.Conn, description string) {
	// Snapshots arrive from the orchestrator's goroutines; serialize writes
	// through a channel since a websocket conn allows one writer.
	updates := make(chan generator.Snapshot, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for snap := range updates {
			s.sendEvent(conn, generateEvent{Type: "snapshot", Snapshot: snap})
		}
	}()

	orch := generator.New(agentBackend{s.agents}, s.cfg.Screens, func(snap generator.Snapshot) {
		select {
		case updates <- snap:
		default:
			// A slow client drops intermediate snapshots; the final one
			// still arrives via the done event.
		}
	})
	final := orch.Generate(ctx, description)

	close(updates)
	<-done
	s.sendEvent(conn, generateEvent{Type: "done", Snapshot: final})
}

func (s *Server) sendEvent(conn *websocket.Conn, ev generateEvent) {
	if err := conn.WriteJSON(ev); err != nil {
		log.Printf("server: websocket write: %v", err)
	}
}

// agentBackend runs the orchestrator directly on the agent service, without
// going back out over HTTP.
type agentBackend struct {
	svc *agents.Service
}

func (b agentBackend) GenerateSRS(ctx context.Context, description string) (string, error) {
	res, err := b.svc.GenerateSRS(ctx, description, "", "")
	return res.Document, err
}

func (b agentBackend) GenerateERD(ctx context.Context, source string) (string, error) {
	return b.svc.GenerateERD(ctx, source)
}

func (b agentBackend) GenerateArchitecture(ctx context.Context, source string) (string, error) {
	res, err := b.svc.GenerateArchitecture(ctx, source, "", "")
	return res.Diagram, err
}

func (b agentBackend) GenerateDataflow(ctx context.Context, source string) (string, error) {
	res, err := b.svc.GenerateDataflow(ctx, source, "")
	return res.Diagram, err
}

func (b agentBackend) GenerateSequence(ctx context.Context, source string) (string, error) {
	res, err := b.svc.GenerateSequence(ctx, source, "")
	return res.Diagram, err
}

func (b agentBackend) GeneratePalette(ctx context.Context, source string) (string, error) {
	res, err := b.svc.GeneratePalette(ctx, source, "")
	return res.Diagram, err
}

func (b agentBackend) GenerateMicroservices(ctx context.Context, source string) (string, error) {
	res, err := b.svc.GenerateMicroservices(ctx, source, "medium", "eventual")
	return res.Diagram, err
}

func (b agentBackend) GenerateMockups(ctx context.Context, description, designPreferences string, screens []string) (string, error) {
	res, err := b.svc.GenerateMockups(ctx, description, designPreferences, strings.Join(screens, ", "))
	return res.Data, err
}
