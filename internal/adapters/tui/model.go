// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/xvela/reframe/internal/config"
	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/journey"
	"github.com/xvela/reframe/internal/toolkit"
)

// tickMsg is sent once per second to keep countdowns fresh.
type tickMsg time.Time

// refreshMsg is sent by the journey and toolkit observers whenever state
// changes outside a key press, e.g. a timer fired.
type refreshMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model represents the TUI state. All flow state lives in the journey
// and the toolkit manager; the model only holds presentation state such
// as text inputs and cursors.
type Model struct {
	journey *journey.Journey
	tools   *toolkit.Manager
	theme   config.ThemeConfig
	width   int
	height  int

	thoughtInput textinput.Model
	buddyInput   textinput.Model
	fieldInput   textinput.Model
	fieldIndex   int

	pickerOpen   bool
	pickerInput  textinput.Model
	pickerCursor int

	listCursor int
}

// NewModel creates a new TUI model.
func NewModel(j *journey.Journey, tools *toolkit.Manager, theme *config.ThemeConfig) Model {
	thought := textinput.New()
	thought.Placeholder = "What is the thought?"
	thought.CharLimit = 280
	thought.Width = 60
	thought.Focus()

	buddy := textinput.New()
	buddy.Placeholder = "Say anything"
	buddy.CharLimit = 280
	buddy.Width = 50

	field := textinput.New()
	field.CharLimit = 280
	field.Width = 50

	picker := textinput.New()
	picker.Placeholder = "Filter tools"
	picker.CharLimit = 40
	picker.Width = 30

	return Model{
		journey:      j,
		tools:        tools,
		theme:        resolveTheme(theme),
		thoughtInput: thought,
		buddyInput:   buddy,
		fieldInput:   field,
		pickerInput:  picker,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), textinput.Blink)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tickCmd()

	case refreshMsg:
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.pickerOpen {
			return m.updatePicker(msg)
		}
		if session := m.tools.Active(); session != nil {
			return m.updateToolSession(session, msg)
		}
		return m.updateScreen(msg)
	}

	return m, nil
}

// updateScreen handles keys for the main flow screens.
func (m Model) updateScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.journey.Screen().(type) {
	case domain.StoryScreen:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "enter", " ":
			m.journey.Start()
		}

	case domain.InputScreen:
		switch msg.String() {
		case "tab":
			m.journey.SelectMood(nextMood(m.journey.Mood()))
			return m, nil
		case "enter":
			m.journey.SetDraft(m.thoughtInput.Value())
			m.journey.Submit()
			if _, translating := m.journey.Screen().(domain.TranslatingScreen); translating {
				m.thoughtInput.Reset()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.thoughtInput, cmd = m.thoughtInput.Update(msg)
		return m, cmd

	case domain.TranslatingScreen:
		// No interaction while the translation is in flight.

	case domain.ResultScreen:
		switch msg.String() {
		case "s", "enter":
			m.journey.TakeStep()
		case "o":
			m.thoughtInput.Reset()
			m.journey.StartOver()
		case "q":
			return m, tea.Quit
		}

	case domain.LandingScreen:
		switch msg.String() {
		case "t":
			m.pickerOpen = true
			m.pickerCursor = 0
			m.pickerInput.Reset()
			m.pickerInput.Focus()
			return m, m.pickerInput.Cursor.BlinkCmd()
		case "n":
			m.journey.TranslateAnother()
		case "b":
			m.journey.Back()
		case "f":
			m.journey.Finish()
		case "q":
			return m, tea.Quit
		}

	case domain.EndingScreen:
		switch msg.String() {
		case "n":
			m.journey.TranslateAnother()
		case "q", "enter", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

// updatePicker handles keys while the tool picker overlay is open.
func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pickerOpen = false
		return m, nil
	case "up":
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
		return m, nil
	case "down":
		if m.pickerCursor < len(m.filteredTools())-1 {
			m.pickerCursor++
		}
		return m, nil
	case "enter":
		items := m.filteredTools()
		if len(items) == 0 {
			return m, nil
		}
		if m.pickerCursor >= len(items) {
			m.pickerCursor = len(items) - 1
		}
		m.pickerOpen = false
		return m.openTool(items[m.pickerCursor].Tool)
	}

	var cmd tea.Cmd
	m.pickerInput, cmd = m.pickerInput.Update(msg)
	if m.pickerCursor >= len(m.filteredTools()) {
		m.pickerCursor = 0
	}
	return m, cmd
}

// openTool opens a tool session and prepares its presentation state.
func (m Model) openTool(t domain.Tool) (tea.Model, tea.Cmd) {
	m.tools.Open(t)
	m.listCursor = 0
	m.fieldIndex = 0
	switch t {
	case domain.ToolJournal, domain.ToolThoughtChallenger:
		m.fieldInput.Reset()
		m.fieldInput.Focus()
		return m, m.fieldInput.Cursor.BlinkCmd()
	case domain.ToolBuddy:
		m.buddyInput.Reset()
		m.buddyInput.Focus()
		return m, m.buddyInput.Cursor.BlinkCmd()
	}
	return m, nil
}

// updateToolSession handles keys while a tool overlay is open.
func (m Model) updateToolSession(session toolkit.Session, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.tools.Close()
		return m, nil
	}

	switch s := session.(type) {
	case *toolkit.Breathing:
		if msg.String() == "r" {
			s.Restart()
		}

	case *toolkit.Sprint:
		switch msg.String() {
		case " ", "enter":
			s.Toggle()
		case "r":
			s.Reset()
		}

	case *toolkit.ResetSequence:
		switch msg.String() {
		case " ", "enter", "n":
			s.Next()
		}

	case *toolkit.Checklist:
		switch msg.String() {
		case "up", "k":
			if m.listCursor > 0 {
				m.listCursor--
			}
		case "down", "j":
			if m.listCursor < len(s.Items())-1 {
				m.listCursor++
			}
		}

	case *toolkit.FieldSession:
		switch msg.String() {
		case "enter":
			s.SetValue(m.fieldIndex, strings.TrimSpace(m.fieldInput.Value()))
			if m.fieldIndex < len(s.Labels())-1 {
				m.fieldIndex++
				m.fieldInput.SetValue(s.Value(m.fieldIndex))
			}
			return m, nil
		case "up":
			if m.fieldIndex > 0 {
				s.SetValue(m.fieldIndex, strings.TrimSpace(m.fieldInput.Value()))
				m.fieldIndex--
				m.fieldInput.SetValue(s.Value(m.fieldIndex))
			}
			return m, nil
		case "down":
			if m.fieldIndex < len(s.Labels())-1 {
				s.SetValue(m.fieldIndex, strings.TrimSpace(m.fieldInput.Value()))
				m.fieldIndex++
				m.fieldInput.SetValue(s.Value(m.fieldIndex))
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.fieldInput, cmd = m.fieldInput.Update(msg)
		return m, cmd

	case *toolkit.Buddy:
		if msg.String() == "enter" {
			s.Send(m.buddyInput.Value())
			m.buddyInput.Reset()
			return m, nil
		}
		var cmd tea.Cmd
		m.buddyInput, cmd = m.buddyInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// filteredTools returns the picker entries matching the filter text, in
// match order. An empty filter lists every tool.
func (m Model) filteredTools() []domain.ToolInfo {
	infos := domain.AllTools()
	query := strings.TrimSpace(m.pickerInput.Value())
	if query == "" {
		return infos
	}
	titles := make([]string, len(infos))
	for i, info := range infos {
		titles[i] = info.Title
	}
	matches := fuzzy.Find(query, titles)
	out := make([]domain.ToolInfo, 0, len(matches))
	for _, match := range matches {
		out = append(out, infos[match.Index])
	}
	return out
}

func nextMood(m domain.Mood) domain.Mood {
	moods := domain.AllMoods()
	for i, mood := range moods {
		if mood == m {
			return moods[(i+1)%len(moods)]
		}
	}
	return moods[0]
}
