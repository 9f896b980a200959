package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/toolkit"
)

// viewToolSession renders the active tool overlay.
func (m Model) viewToolSession() string {
	session := m.tools.Active()
	title := ""
	if info, err := domain.InfoFor(session.Tool()); err == nil {
		title = fmt.Sprintf("%s %s", toolIcon(m.theme, info.IconKey), info.Title)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorAccent))

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n\n")

	switch s := session.(type) {
	case *toolkit.Breathing:
		b.WriteString(m.viewBreathing(s))
	case *toolkit.Sprint:
		b.WriteString(m.viewSprint(s))
	case *toolkit.ResetSequence:
		b.WriteString(m.viewResetSequence(s))
	case *toolkit.Checklist:
		b.WriteString(m.viewChecklist(s))
	case *toolkit.FieldSession:
		b.WriteString(m.viewFieldSession(s))
	case *toolkit.Buddy:
		b.WriteString(m.viewBuddy(s))
	}

	return b.String()
}

func (m Model) viewBreathing(s *toolkit.Breathing) string {
	phase := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorCalm))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder
	b.WriteString(phase.Render(s.Phase().Label()) + "\n\n")
	b.WriteString(dim.Render(fmt.Sprintf("Cycle %d of %d", s.Cycles()+boolToInt(!s.Frozen()), s.MaxCycles())) + "\n")
	if s.Frozen() {
		b.WriteString(dim.Render("Done. Stay here as long as you like.") + "\n")
	}
	b.WriteString("\n" + m.helpLine("r restart · esc close"))
	return b.String()
}

func (m Model) viewSprint(s *toolkit.Sprint) string {
	timer := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorFocus))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	pbar := progress.New(progress.WithSolidFill(m.theme.ColorFocus))
	if m.width > 4 {
		pbar.Width = m.width - 4
	}

	var b strings.Builder
	b.WriteString(timer.Render(formatDuration(s.Remaining())) + "\n\n")
	b.WriteString(pbar.ViewAs(s.Progress()) + "\n\n")
	switch {
	case s.Remaining() == 0:
		b.WriteString(dim.Render("Sprint done. Shake it off.") + "\n")
	case s.Running():
		b.WriteString(dim.Render("One thing. Just this.") + "\n")
	default:
		b.WriteString(dim.Render("Paused.") + "\n")
	}
	b.WriteString("\n" + m.helpLine("space start/pause · r reset · esc close"))
	return b.String()
}

func (m Model) viewResetSequence(s *toolkit.ResetSequence) string {
	step, index := s.Step()
	body := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorSubtle))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder
	b.WriteString(body.Render(step) + "\n\n")
	b.WriteString(dim.Render(fmt.Sprintf("%d of %d", index+1, s.Len())) + "\n")
	b.WriteString("\n" + m.helpLine("enter next · esc close"))
	return b.String()
}

func (m Model) viewChecklist(s *toolkit.Checklist) string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorAccent))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder
	for i, item := range s.Items() {
		if i == m.listCursor {
			b.WriteString(active.Render("▸ "+item) + "\n")
		} else {
			b.WriteString(dim.Render("  "+item) + "\n")
		}
	}
	b.WriteString("\n" + m.helpLine("↑/↓ browse · esc close"))
	return b.String()
}

func (m Model) viewFieldSession(s *toolkit.FieldSession) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	done := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorSubtle))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder
	for i, prompt := range s.Labels() {
		if i == m.fieldIndex {
			b.WriteString(label.Render(prompt) + "\n")
			b.WriteString(m.fieldInput.View() + "\n\n")
			continue
		}
		value := s.Value(i)
		if value == "" {
			value = "—"
		}
		b.WriteString(dim.Render(prompt) + "\n")
		b.WriteString(done.Render(value) + "\n\n")
	}
	b.WriteString(m.helpLine("enter save · ↑/↓ field · esc close"))
	return b.String()
}

func (m Model) viewBuddy(s *toolkit.Buddy) string {
	them := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorCalm))
	me := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorSubtle)).Align(lipgloss.Right)

	var b strings.Builder
	for _, msg := range s.Messages() {
		if msg.IsFromUser {
			b.WriteString(me.Render("you: "+msg.Text) + "\n")
		} else {
			b.WriteString(them.Render("buddy: "+msg.Text) + "\n")
		}
	}
	b.WriteString("\n" + m.buddyInput.View() + "\n")
	b.WriteString("\n" + m.helpLine("enter send · esc close"))
	return b.String()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
