// Package domain contains the core entities for reframe.
// These entities represent the fundamental concepts of the thought
// translation flow and are independent of any external frameworks.
package domain

import "errors"

// Common domain errors.
var (
	ErrInvalidMood     = errors.New("invalid mood")
	ErrInvalidTool     = errors.New("invalid tool")
	ErrThoughtTooShort = errors.New("thought must be at least 2 characters")
)

// Mood is the tone selector applied to a translation. It reshapes the
// phrasing of a result without changing its underlying pattern.
type Mood string

const (
	MoodCalm       Mood = "calm"
	MoodFocus      Mood = "focus"
	MoodConfidence Mood = "confidence"
)

// AllMoods lists the moods in display order.
func AllMoods() []Mood {
	return []Mood{MoodCalm, MoodFocus, MoodConfidence}
}

// Label returns the human-readable mood label used in pattern tags.
func (m Mood) Label() string {
	switch m {
	case MoodCalm:
		return "Calm"
	case MoodFocus:
		return "Focus"
	case MoodConfidence:
		return "Confidence"
	default:
		return "Unknown"
	}
}

// ValidateMood parses a mood string, accepting the lowercase identifiers
// used on the CLI and in config files.
func ValidateMood(s string) (Mood, error) {
	switch Mood(s) {
	case MoodCalm, MoodFocus, MoodConfidence:
		return Mood(s), nil
	default:
		return "", ErrInvalidMood
	}
}
