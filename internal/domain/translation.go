package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranslationResult is the immutable record produced by one classification.
// It is created once per translation and never edited, only superseded.
type TranslationResult struct {
	ID                  string
	Mood                Mood
	OriginalText        string
	EmotionLabel        string
	PatternTag          string
	ReadableTranslation string
	Why                 string
	Reframe             string
	OneSmallStep        string
	CreatedAt           time.Time
}

// ChatMessage is one entry in a buddy session transcript.
type ChatMessage struct {
	ID         string
	IsFromUser bool
	Text       string
	SentAt     time.Time
}

// NewChatMessage creates a transcript entry.
func NewChatMessage(isFromUser bool, text string) ChatMessage {
	return ChatMessage{
		ID:         uuid.NewString(),
		IsFromUser: isFromUser,
		Text:       text,
		SentAt:     time.Now(),
	}
}

// NewResultID returns a fresh identifier for a translation result.
func NewResultID() string {
	return uuid.NewString()
}
