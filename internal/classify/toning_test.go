package classify

import (
	"strings"
	"testing"

	"github.com/xvela/reframe/internal/domain"
)

// Changing mood changes only the toned prefixes/suffixes, never the
// emotion label or the pattern base name.
func TestApplyTone_MoodOnlyChangesDecoration(t *testing.T) {
	text := "I always mess this up"

	calm := Classify(text, domain.MoodCalm)
	focus := Classify(text, domain.MoodFocus)
	conf := Classify(text, domain.MoodConfidence)

	for _, r := range []domain.TranslationResult{calm, focus, conf} {
		if r.EmotionLabel != "Pressure" {
			t.Errorf("EmotionLabel = %q, want %q", r.EmotionLabel, "Pressure")
		}
		if !strings.HasPrefix(r.PatternTag, "All-or-Nothing") {
			t.Errorf("PatternTag = %q, want prefix %q", r.PatternTag, "All-or-Nothing")
		}
	}

	// The why field carries no toning at all.
	if calm.Why != focus.Why || focus.Why != conf.Why {
		t.Error("Why should be identical across moods")
	}

	// Strip the known prefixes: the remaining translation base must match.
	base := strings.TrimPrefix(calm.ReadableTranslation, "Settle first → ")
	if strings.TrimPrefix(focus.ReadableTranslation, "Turn noise into a plan → ") != base {
		t.Error("translation base differs between calm and focus")
	}
	if strings.TrimPrefix(conf.ReadableTranslation, "Name it, then face it → ") != base {
		t.Error("translation base differs between calm and confidence")
	}
}

func TestApplyTone_DistinctPerMood(t *testing.T) {
	tests := []struct {
		mood       domain.Mood
		wantPrefix string
		wantStep   string
	}{
		{domain.MoodCalm, "Settle first → ", "Go slowly; there is no timer on this."},
		{domain.MoodFocus, "Turn noise into a plan → ", "Give it ten focused minutes, then stop."},
		{domain.MoodConfidence, "Name it, then face it → ", "Doing it scared still counts as brave."},
	}

	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			got := Classify("something on my mind", tt.mood)
			if !strings.HasPrefix(got.ReadableTranslation, tt.wantPrefix) {
				t.Errorf("ReadableTranslation = %q, want prefix %q", got.ReadableTranslation, tt.wantPrefix)
			}
			if !strings.HasSuffix(got.OneSmallStep, tt.wantStep) {
				t.Errorf("OneSmallStep = %q, want suffix %q", got.OneSmallStep, tt.wantStep)
			}
		})
	}
}

func TestApplyTone_UnknownMoodFallsBackToCalm(t *testing.T) {
	got := applyTone(baseFields{Translation: "x"}, domain.Mood("bogus"))
	if !strings.HasPrefix(got.Translation, "Settle first → ") {
		t.Errorf("Translation = %q, want calm prefix", got.Translation)
	}
}
