package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/generator"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/store"
)

func newTestModel() *Model {
	return NewModel(nil, store.New(), []string{"Home"})
}

func sampleSnapshot() generator.Snapshot {
	return generator.Snapshot{
		Sections: []generator.Section{
			{Name: generator.SectionSRS, Content: "# SRS\nScope", Status: generator.StatusDone},
			{Name: generator.SectionERD, Content: "compile failed", Status: generator.StatusError},
			{Name: generator.SectionArchitecture, Status: generator.StatusLoading},
		},
		Mockups: []generator.ScreenMockup{
			{Name: "Home", Description: "landing page", Status: generator.StatusDone},
			{Name: "Login", Description: "sign in", Status: generator.StatusLoading},
		},
		Generating: true,
	}
}

func TestViewShowsSectionStatusIcons(t *testing.T) {
	m := newTestModel()
	m.Update(snapshotMsg{snap: sampleSnapshot()})

	out := m.View()
	if !strings.Contains(out, IconDone) {
		t.Error("done icon missing")
	}
	if !strings.Contains(out, IconError) {
		t.Error("error icon missing")
	}
	if !strings.Contains(out, generator.SectionSRS) || !strings.Contains(out, generator.SectionERD) {
		t.Errorf("section names missing:\n%s", out)
	}
}

func TestErrorSectionShowsErrorText(t *testing.T) {
	m := newTestModel()
	m.Update(snapshotMsg{snap: sampleSnapshot()})
	m.selected = 1
	m.refreshContent()

	if !strings.Contains(m.content.View(), "compile failed") {
		t.Error("error text not shown for failed section")
	}
}

func TestMockupCycling(t *testing.T) {
	m := newTestModel()
	m.Update(snapshotMsg{snap: sampleSnapshot()})
	m.focus = viewMockups

	m.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	if m.mockup != 1 {
		t.Errorf("mockup = %d, want 1", m.mockup)
	}
	m.handleKey(tea.KeyMsg{Type: tea.KeyRight})
	if m.mockup != 0 {
		t.Errorf("mockup = %d, want 0 (wraps)", m.mockup)
	}
	m.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	if m.mockup != 1 {
		t.Errorf("mockup = %d, want 1 (wraps backwards)", m.mockup)
	}
}

func TestSectionNavigationStaysInBounds(t *testing.T) {
	m := newTestModel()
	m.Update(snapshotMsg{snap: sampleSnapshot()})
	m.focus = viewSections

	m.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if m.selected != 0 {
		t.Errorf("selected = %d, want 0", m.selected)
	}
	for i := 0; i < 10; i++ {
		m.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.selected != 2 {
		t.Errorf("selected = %d, want 2 (clamped)", m.selected)
	}
}

func TestRunDoneNotifiesThroughStore(t *testing.T) {
	st := store.New()
	m := NewModel(nil, st, nil)

	snap := sampleSnapshot()
	snap.Generating = false
	m.Update(runDoneMsg{snap: snap})

	n := st.Snapshot().Notification
	if n == nil {
		t.Fatal("no notification after run")
	}
	// The sample snapshot has one failed section, so the notice is a warning.
	if n.Kind != store.NotifyWarning {
		t.Errorf("kind = %s, want warning", n.Kind)
	}
	if m.running {
		t.Error("model still running after done message")
	}
}

func TestShrinkingSnapshotClampsSelection(t *testing.T) {
	m := newTestModel()
	m.Update(snapshotMsg{snap: sampleSnapshot()})
	m.selected = 2

	m.Update(snapshotMsg{snap: generator.Snapshot{
		Sections: []generator.Section{{Name: generator.SectionSRS, Status: generator.StatusError}},
	}})
	if m.selected != 0 {
		t.Errorf("selected = %d, want 0", m.selected)
	}
}
