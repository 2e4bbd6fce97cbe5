package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/api"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/generator"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/store"
)

// view selects which pane has focus.
type view int

const (
	viewInput view = iota
	viewSections
	viewMockups
)

// Message types for dashboard updates.
type (
	snapshotMsg struct{ snap generator.Snapshot }
	runDoneMsg  struct{ snap generator.Snapshot }
	storeMsg    struct{ state store.State }
)

// Model is the Bubble Tea model for the generation dashboard.
type Model struct {
	backend api.Backend
	store   *store.Store
	screens []string
	styles  Styles

	input    textinput.Model
	spin     spinner.Model
	content  viewport.Model
	renderer *glamour.TermRenderer

	snap     generator.Snapshot
	selected int
	mockup   int
	focus    view
	running  bool

	notification string

	width  int
	height int

	program *tea.Program
	ctx     context.Context
	cancel  context.CancelFunc
}

var _ tea.Model = (*Model)(nil)

// NewModel creates a dashboard over the given backend and state store.
func NewModel(backend api.Backend, st *store.Store, screens []string) *Model {
	styles := DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Describe your project idea..."
	ti.CharLimit = 2000
	ti.Width = 70
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 20)
	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return &Model{
		backend:  backend,
		store:    st,
		screens:  screens,
		styles:   styles,
		input:    ti,
		spin:     sp,
		content:  vp,
		renderer: renderer,
		focus:    viewInput,
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(ctx context.Context, backend api.Backend, st *store.Store, screens []string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := NewModel(backend, st, screens)
	m.ctx = ctx
	m.cancel = cancel

	p := tea.NewProgram(m, tea.WithAltScreen())
	m.program = p

	// Store updates (notifications, theme) flow into the event loop.
	unsubscribe := st.Subscribe(func(state store.State) {
		p.Send(storeMsg{state: state})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.content.Width = msg.Width - 4
		m.content.Height = msg.Height - 14

	case snapshotMsg:
		m.snap = msg.snap
		m.clampSelection()
		m.refreshContent()

	case runDoneMsg:
		m.snap = msg.snap
		m.running = false
		m.clampSelection()
		m.refreshContent()
		if failed := countErrors(msg.snap); failed > 0 {
			m.store.ShowNotification(store.NotifyWarning,
				fmt.Sprintf("generation finished with %d failed sections", failed))
		} else {
			m.store.ShowNotification(store.NotifySuccess, "generation complete")
		}

	case storeMsg:
		if msg.state.Notification != nil {
			m.notification = msg.state.Notification.Message
		} else {
			m.notification = ""
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	if m.focus == viewInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.focus == viewInput && msg.String() == "q" {
			break // let the input consume the letter
		}
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case "enter":
		if m.focus == viewInput && !m.running {
			description := strings.TrimSpace(m.input.Value())
			if description == "" {
				return m, nil
			}
			return m, m.startRun(description)
		}

	case "tab":
		m.cycleFocus()
		return m, nil

	case "up", "k":
		if m.focus == viewSections && m.selected > 0 {
			m.selected--
			m.refreshContent()
			return m, nil
		}

	case "down", "j":
		if m.focus == viewSections && m.selected < len(m.snap.Sections)-1 {
			m.selected++
			m.refreshContent()
			return m, nil
		}

	case "left", "h":
		if m.focus == viewMockups && len(m.snap.Mockups) > 0 {
			m.mockup = (m.mockup + len(m.snap.Mockups) - 1) % len(m.snap.Mockups)
			return m, nil
		}

	case "right", "l":
		if m.focus == viewMockups && len(m.snap.Mockups) > 0 {
			m.mockup = (m.mockup + 1) % len(m.snap.Mockups)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == viewInput {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleFocus() {
	switch m.focus {
	case viewInput:
		if len(m.snap.Sections) > 0 {
			m.focus = viewSections
			m.input.Blur()
		}
	case viewSections:
		if len(m.snap.Mockups) > 0 {
			m.focus = viewMockups
		} else {
			m.focus = viewInput
			m.input.Focus()
		}
	case viewMockups:
		m.focus = viewInput
		m.input.Focus()
	}
}

// startRun kicks off the orchestrator in the background; snapshots stream in
// through program.Send.
func (m *Model) startRun(description string) tea.Cmd {
	m.running = true
	m.store.SetMessage("generating documentation")

	orch := generator.New(m.backend, m.screens, func(snap generator.Snapshot) {
		if m.program != nil {
			m.program.Send(snapshotMsg{snap: snap})
		}
	})

	go func() {
		final := orch.Generate(m.ctx, description)
		if m.program != nil {
			m.program.Send(runDoneMsg{snap: final})
		}
	}()

	return m.spin.Tick
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.snap.Sections) {
		m.selected = len(m.snap.Sections) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.mockup >= len(m.snap.Mockups) {
		m.mockup = 0
	}
}

// refreshContent re-renders the selected section into the viewport. A failed
// markdown render falls back to the raw text so one bad section never takes
// the dashboard down.
func (m *Model) refreshContent() {
	if len(m.snap.Sections) == 0 {
		m.content.SetContent("")
		return
	}
	sec := m.snap.Sections[m.selected]
	if sec.Status == generator.StatusError {
		m.content.SetContent(m.styles.Error.Render("error: " + sec.Content))
		return
	}
	if m.renderer == nil {
		m.content.SetContent(sec.Content)
		return
	}
	rendered, err := m.renderer.Render(sec.Content)
	if err != nil {
		m.content.SetContent(sec.Content)
		return
	}
	m.content.SetContent(rendered)
}

func countErrors(snap generator.Snapshot) int {
	n := 0
	for _, sec := range snap.Sections {
		if sec.Status == generator.StatusError {
			n++
		}
	}
	for _, mk := range snap.Mockups {
		if mk.Status == generator.StatusError {
			n++
		}
	}
	return n
}
