package tui

import (
	"fmt"
	"reflect"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvela/reframe/internal/config"
	"github.com/xvela/reframe/internal/domain"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// moodColor returns the accent color for a mood.
func moodColor(theme config.ThemeConfig, m domain.Mood) lipgloss.Color {
	switch m {
	case domain.MoodFocus:
		return lipgloss.Color(theme.ColorFocus)
	case domain.MoodConfidence:
		return lipgloss.Color(theme.ColorConfid)
	default:
		return lipgloss.Color(theme.ColorCalm)
	}
}

// toolIcon maps a tool's icon key to the themed icon.
func toolIcon(theme config.ThemeConfig, key string) string {
	switch key {
	case "wind":
		return theme.IconBreathing
	case "anchor":
		return theme.IconGrounding
	case "book":
		return theme.IconJournal
	case "loop":
		return theme.IconReset
	case "timer":
		return theme.IconSprint
	case "scale":
		return theme.IconChallenge
	case "cards":
		return theme.IconCards
	case "chat":
		return theme.IconBuddy
	default:
		return "•"
	}
}

// formatDuration formats a duration as MM:SS.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
