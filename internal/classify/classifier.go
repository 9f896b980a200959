// Package classify implements the deterministic thought classifier and the
// buddy reply engine. Both are pure functions over lower-cased input text:
// an ordered list of keyword rules is evaluated and the first match wins.
package classify

import (
	"strings"
	"time"

	"github.com/xvela/reframe/internal/domain"
)

// baseFields are the untoned text fields a pattern produces. The mood
// toning transform decorates them into the final phrasing.
type baseFields struct {
	Translation  string
	Why          string
	Reframe      string
	OneSmallStep string
}

// Pattern is one cognitive-distortion category with its matching rule.
type Pattern struct {
	Name     string
	Emotion  string
	Keywords []string // for display on the patterns command; matching uses match()
	match    func(lower string) bool
	base     baseFields
}

// patterns is the ordered rule list. Order is load-bearing: when several
// keyword sets match, the earliest rule wins.
var patterns = []Pattern{
	{
		Name:     "Mind Reading",
		Emotion:  "Social Anxiety",
		Keywords: []string{"they + think/judge/laugh", "everyone will", "people will"},
		match: func(s string) bool {
			if strings.Contains(s, "they") && containsAny(s, "think", "judge", "laugh") {
				return true
			}
			return containsAny(s, "everyone will", "people will")
		},
		base: baseFields{
			Translation:  "My brain is guessing what other people think and treating the guess as fact.",
			Why:          "Mind reading feels protective because it braces you for judgment before it happens.",
			Reframe:      "Nobody can read minds, including yours. Most people are busy worrying about themselves.",
			OneSmallStep: "Write down one piece of actual evidence, not a guess, about what they said or did.",
		},
	},
	{
		Name:     "All-or-Nothing",
		Emotion:  "Pressure",
		Keywords: []string{"perfect", "ruined", "always", "never"},
		match: func(s string) bool {
			return containsAny(s, "perfect", "ruined", "always", "never")
		},
		base: baseFields{
			Translation:  "My brain has collapsed every outcome into either flawless or ruined.",
			Why:          "All-or-nothing thinking turns one rough moment into a verdict on everything.",
			Reframe:      "Most results live in the middle. A seven out of ten still counts.",
			OneSmallStep: "Name one part of this that went fine, even a small one.",
		},
	},
	{
		Name:     "Catastrophizing",
		Emotion:  "Fear",
		Keywords: []string{"what if", "fail", "mess up", "worst"},
		match: func(s string) bool {
			return containsAny(s, "what if", "fail", "mess up", "worst")
		},
		base: baseFields{
			Translation:  "My brain is rehearsing the worst outcome as if it were the likely one.",
			Why:          "Catastrophizing is fear running a fire drill; it confuses possible with probable.",
			Reframe:      "The worst case is one outcome of many, and rarely the one that happens.",
			OneSmallStep: "Write the most likely outcome next to the worst one and compare them.",
		},
	},
	{
		Name:     "Overthinking",
		Emotion:  "Overload",
		Keywords: []string{"tired", "exhaust", "burn", "overwhelm"},
		match: func(s string) bool {
			return containsAny(s, "tired", "exhaust", "burn", "overwhelm")
		},
		base: baseFields{
			Translation:  "My brain is running too many tabs at once and reading the load as failure.",
			Why:          "Overload makes every thought feel urgent because you are tired, not because it is true.",
			Reframe:      "Tired thoughts are not accurate thoughts. Rest is maintenance, not quitting.",
			OneSmallStep: "Pick one thing to drop or delay today, then actually drop it.",
		},
	},
	{
		Name:     "Uncertainty Loop",
		Emotion:  "Anxiety",
		Keywords: []string{"(default)"},
		match:    func(string) bool { return true },
		base: baseFields{
			Translation:  "My brain is circling a question it cannot answer right now.",
			Why:          "Uncertainty loops keep spinning because certainty is the one thing they demand.",
			Reframe:      "You do not need the full answer today, only the next small move.",
			OneSmallStep: "Set the question down and do one concrete thing with your hands.",
		},
	},
}

// Patterns returns the ordered pattern list for display purposes.
func Patterns() []Pattern {
	out := make([]Pattern, len(patterns))
	copy(out, patterns)
	return out
}

// Classify translates a free-text anxious thought into a structured
// translation result. It is total: when no keyword rule matches, the
// Uncertainty Loop default applies. The caller enforces the minimum input
// length; Classify itself never fails.
func Classify(text string, mood domain.Mood) domain.TranslationResult {
	lower := strings.ToLower(text)

	var matched Pattern
	for _, p := range patterns {
		if p.match(lower) {
			matched = p
			break
		}
	}

	toned := applyTone(matched.base, mood)

	return domain.TranslationResult{
		ID:                  domain.NewResultID(),
		Mood:                mood,
		OriginalText:        text,
		EmotionLabel:        matched.Emotion,
		PatternTag:          matched.Name + " · " + mood.Label(),
		ReadableTranslation: toned.Translation,
		Why:                 toned.Why,
		Reframe:             toned.Reframe,
		OneSmallStep:        toned.OneSmallStep,
		CreatedAt:           time.Now(),
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
