package history

import (
	"testing"
	"time"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/db"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestRecordAndRecent(t *testing.T) {
	store := newTestStore(t)

	if err := store.Record("/api/generate_srs", OutcomeOK, 1200*time.Millisecond, ""); err != nil {
		t.Fatal(err)
	}
	if err := store.Record("/api/generate_erd", OutcomeError, 300*time.Millisecond, "provider down"); err != nil {
		t.Fatal(err)
	}

	entries, err := store.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	// Newest first.
	if entries[0].Endpoint != "/api/generate_erd" {
		t.Errorf("first entry = %s", entries[0].Endpoint)
	}
	if entries[0].Outcome != OutcomeError || entries[0].Detail != "provider down" {
		t.Errorf("error entry = %+v", entries[0])
	}
	if entries[1].Duration != 1200*time.Millisecond {
		t.Errorf("duration = %v", entries[1].Duration)
	}
	if entries[0].ID == entries[1].ID {
		t.Error("entries share an id")
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 5; i++ {
		if err := store.Record("/api/echo", OutcomeOK, time.Millisecond, ""); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := store.Recent(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("entries = %d, want 3", len(entries))
	}
}

func TestCountByEndpoint(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 3; i++ {
		if err := store.Record("/api/generate_srs", OutcomeOK, time.Millisecond, ""); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.Record("/api/generate_palette", OutcomeOK, time.Millisecond, ""); err != nil {
		t.Fatal(err)
	}

	counts, err := store.CountByEndpoint()
	if err != nil {
		t.Fatal(err)
	}
	if counts["/api/generate_srs"] != 3 || counts["/api/generate_palette"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}
