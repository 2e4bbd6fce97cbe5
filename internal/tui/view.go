package tui

import (
	"fmt"
	"strings"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/generator"
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Blueprint"))
	b.WriteString(m.styles.Muted.Render("  — describe an idea, get docs, diagrams and mockups"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.running {
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.Status.Render(" generating..."))
		b.WriteString("\n")
	}

	if len(m.snap.Sections) > 0 {
		b.WriteString(m.renderSections())
		b.WriteString("\n")
		b.WriteString(m.content.View())
		b.WriteString("\n")
	}

	if len(m.snap.Mockups) > 0 {
		b.WriteString(m.renderMockups())
	}

	if m.notification != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Notice.Render(m.notification))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("tab: switch pane • ↑/↓: sections • ←/→: mockups • ctrl+c: quit"))
	return b.String()
}

func (m *Model) renderSections() string {
	var rows []string
	for i, sec := range m.snap.Sections {
		icon := StatusIcon(sec.Status)
		if sec.Status == generator.StatusLoading {
			icon = m.spin.View()
		}
		line := fmt.Sprintf("%s %s", m.styles.StatusStyle(sec.Status).Render(icon), sec.Name)
		if i == m.selected && m.focus == viewSections {
			line = m.styles.Selected.Render("> ") + line
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderMockups() string {
	mk := m.snap.Mockups[m.mockup]
	header := fmt.Sprintf("Mockups (%d/%d)", m.mockup+1, len(m.snap.Mockups))

	var body string
	switch {
	case mk.Status == generator.StatusError:
		body = m.styles.Error.Render(IconError + " " + mk.Name + ": " + mk.Description)
	case mk.Status == generator.StatusLoading:
		body = m.spin.View() + " " + mk.Name
	default:
		body = m.styles.Success.Render(IconDone+" "+mk.Name) + "\n" + m.styles.Muted.Render(mk.Description)
	}

	return m.styles.Title.Render(header) + "\n" + m.styles.Border.Render(body)
}
