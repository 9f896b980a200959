package classify

import "strings"

// Buddy reply templates, one per rule.
const (
	replyShrink  = "That sounds heavy. Shrink it: what is the five-minute version of this you could do right now?"
	replyMinds   = "You might be reading minds again. What do you actually know they said or did, versus what you are guessing?"
	replySmall   = "Stuck is a signal, not a verdict. What is the smallest next action, so small it feels almost silly?"
	replyAskFeel = "I hear you. Which emotion sits underneath that thought: fear, pressure, or tiredness?"
)

// Reply generates the buddy's canned supportive reply for a user message.
// Same shape as Classify: lower-case, ordered keyword rules, first match
// wins, total.
func Reply(userText string) string {
	lower := strings.ToLower(userText)

	switch {
	case containsAny(lower, "fail", "mess", "ruin"):
		return replyShrink
	case strings.Contains(lower, "they") && containsAny(lower, "think", "judge"):
		return replyMinds
	case containsAny(lower, "can't", "cant", "stuck"):
		return replySmall
	default:
		return replyAskFeel
	}
}
