package classify

import "github.com/xvela/reframe/internal/domain"

// tone holds the fixed per-mood decorations. The transform is uniform
// across all patterns: the translation gains a prefix, the reframe and the
// one-small-step gain a suffix, and the why is carried through untouched.
type tone struct {
	translationPrefix string
	reframeSuffix     string
	stepSuffix        string
}

var tones = map[domain.Mood]tone{
	domain.MoodCalm: {
		translationPrefix: "Settle first → ",
		reframeSuffix:     " Let your shoulders drop while you read that again.",
		stepSuffix:        " Go slowly; there is no timer on this.",
	},
	domain.MoodFocus: {
		translationPrefix: "Turn noise into a plan → ",
		reframeSuffix:     " One clear action beats an hour of spinning.",
		stepSuffix:        " Give it ten focused minutes, then stop.",
	},
	domain.MoodConfidence: {
		translationPrefix: "Name it, then face it → ",
		reframeSuffix:     " You have gotten through every hard day so far.",
		stepSuffix:        " Doing it scared still counts as brave.",
	},
}

// applyTone produces the final phrasing for the given mood. Unknown moods
// fall back to Calm toning so the transform stays total.
func applyTone(base baseFields, mood domain.Mood) baseFields {
	t, ok := tones[mood]
	if !ok {
		t = tones[domain.MoodCalm]
	}
	return baseFields{
		Translation:  t.translationPrefix + base.Translation,
		Why:          base.Why,
		Reframe:      base.Reframe + t.reframeSuffix,
		OneSmallStep: base.OneSmallStep + t.stepSuffix,
	}
}
