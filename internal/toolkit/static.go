package toolkit

// GroundingSteps returns the 5-4-3-2-1 grounding checklist.
func GroundingSteps() []string {
	return []string{
		"Name 5 things you can see",
		"Name 4 things you can touch",
		"Name 3 things you can hear",
		"Name 2 things you can smell",
		"Name 1 thing you can taste",
	}
}

// ResetSteps returns the quick reset instructions, shown one at a time.
func ResetSteps() []string {
	return []string{
		"Unclench your jaw and drop your shoulders",
		"Take one slow breath, out longer than in",
		"Drink a sip of water",
		"Stand up and stretch toward the ceiling",
		"Look at something far away for ten seconds",
	}
}

// CopingCards returns the affirmation cards.
func CopingCards() []string {
	return []string{
		"Feelings are weather, not climate.",
		"You have handled 100% of your hard days so far.",
		"Slow is smooth, smooth is fast.",
		"You can do the next five minutes.",
		"A thought is a suggestion, not an order.",
	}
}

// JournalPrompts returns the mini journal field labels.
func JournalPrompts() []string {
	return []string{
		"Situation",
		"Thought",
		"Evidence",
		"Kinder alternative",
	}
}

// ChallengerPrompts returns the thought challenger field labels.
func ChallengerPrompts() []string {
	return []string{
		"Thought",
		"Evidence for",
		"Evidence against",
		"Balanced thought",
	}
}
