package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvela/reframe/internal/domain"
)

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.viewHeader())

	switch {
	case m.pickerOpen:
		sections = append(sections, m.viewPicker())
	case m.tools.Active() != nil:
		sections = append(sections, m.viewToolSession())
	default:
		sections = append(sections, m.viewScreen())
	}

	return strings.Join(sections, "\n") + "\n"
}

func (m Model) viewHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	return titleStyle.Render(fmt.Sprintf("%s Reframe", m.theme.IconApp))
}

func (m Model) viewScreen() string {
	switch screen := m.journey.Screen().(type) {
	case domain.StoryScreen:
		return m.viewStory()
	case domain.InputScreen:
		return m.viewInput()
	case domain.TranslatingScreen:
		return m.viewTranslating(screen)
	case domain.ResultScreen:
		return m.viewResult(screen.Result)
	case domain.LandingScreen:
		return m.viewLanding(screen.Result)
	case domain.EndingScreen:
		return m.viewEnding()
	default:
		return ""
	}
}

func (m Model) viewStory() string {
	body := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorSubtle))
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAccent)).Bold(true)

	var b strings.Builder
	b.WriteString(accent.Render("Your mind speaks in alarms.") + "\n\n")
	b.WriteString(body.Render("Anxious thoughts sound like facts, but they are usually\npatterns. This translator reads the pattern and hands the\nthought back to you in plain language.") + "\n")
	b.WriteString("\n" + m.helpLine("enter begin · q quit"))
	return b.String()
}

func (m Model) viewInput() string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var moods []string
	for _, mood := range domain.AllMoods() {
		style := dim
		if mood == m.journey.Mood() {
			style = lipgloss.NewStyle().Foreground(moodColor(m.theme, mood)).Bold(true)
		}
		moods = append(moods, style.Render(mood.Label()))
	}

	var b strings.Builder
	b.WriteString(label.Render("What is the thought?") + "\n\n")
	b.WriteString(m.thoughtInput.View() + "\n\n")
	b.WriteString("Tone: " + strings.Join(moods, "  ") + "\n")
	b.WriteString("\n" + m.helpLine("enter translate · tab tone"))
	return b.String()
}

func (m Model) viewTranslating(screen domain.TranslatingScreen) string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAccent))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp)).Italic(true)

	var b strings.Builder
	b.WriteString(accent.Render("Translating…") + "\n\n")
	b.WriteString(dim.Render("“"+screen.OriginalText+"”") + "\n")
	return b.String()
}

func (m Model) viewResult(result domain.TranslationResult) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	tag := lipgloss.NewStyle().Foreground(moodColor(m.theme, result.Mood)).Bold(true)
	body := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorSubtle))

	var b strings.Builder
	b.WriteString(tag.Render(fmt.Sprintf("%s · %s", result.EmotionLabel, result.PatternTag)) + "\n\n")
	b.WriteString(label.Render("Translation") + "\n")
	b.WriteString(body.Render(result.ReadableTranslation) + "\n\n")
	b.WriteString(label.Render("Why it feels true") + "\n")
	b.WriteString(body.Render(result.Why) + "\n\n")
	b.WriteString(label.Render("Reframe") + "\n")
	b.WriteString(body.Render(result.Reframe) + "\n\n")
	b.WriteString(label.Render("One small step") + "\n")
	b.WriteString(body.Render(result.OneSmallStep) + "\n")
	b.WriteString("\n" + m.helpLine("s take the step · o start over · q quit"))
	return b.String()
}

func (m Model) viewLanding(result domain.TranslationResult) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	body := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorSubtle))

	var b strings.Builder
	b.WriteString(label.Render("Nice. The step is yours now.") + "\n\n")
	b.WriteString(body.Render(result.OneSmallStep) + "\n\n")
	b.WriteString(body.Render("If the noise comes back, the tools below are quick.") + "\n")
	b.WriteString("\n" + m.helpLine("t tools · n another thought · b back · f finish · q quit"))
	return b.String()
}

func (m Model) viewEnding() string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAccent)).Bold(true)
	body := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorSubtle))

	var b strings.Builder
	b.WriteString(accent.Render("That's a wrap.") + "\n\n")
	b.WriteString(body.Render("The thought was loud, and you read it anyway.\nCome back whenever the volume creeps up.") + "\n")
	b.WriteString("\n" + m.helpLine("n translate another · q quit"))
	return b.String()
}

func (m Model) viewPicker() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	active := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorAccent)).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder
	b.WriteString(title.Render("Tools") + "  " + m.pickerInput.View() + "\n\n")

	items := m.filteredTools()
	if len(items) == 0 {
		b.WriteString(dim.Render("  no matching tools") + "\n")
	}
	for i, info := range items {
		icon := toolIcon(m.theme, info.IconKey)
		line := fmt.Sprintf("%s %-18s %s", icon, info.Title, info.Subtitle)
		if i == m.pickerCursor {
			b.WriteString(active.Render("▸ "+line) + "\n")
		} else {
			b.WriteString(dim.Render("  "+line) + "\n")
		}
	}
	b.WriteString("\n" + m.helpLine("↑/↓ navigate · enter open · esc back"))
	return b.String()
}

func (m Model) helpLine(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp)).Render(text)
}
