package domain

// Screen is the tagged union of journey states. Exactly one Screen is
// active at a time and it is the sole source of truth for what is
// rendered. Variants carrying data own that data for as long as they are
// on screen.
//
// The sealed marker method keeps the set of variants closed so that
// consumption sites can type-switch exhaustively.
type Screen interface {
	screen()
	Name() string
}

// StoryScreen is the opening narrative screen.
type StoryScreen struct{}

// InputScreen collects the anxious thought and the mood.
type InputScreen struct{}

// TranslatingScreen shows the thinking delay for a submitted thought.
type TranslatingScreen struct {
	OriginalText string
}

// ResultScreen presents a finished translation.
type ResultScreen struct {
	Result TranslationResult
}

// LandingScreen presents the one-small-step view for the same translation.
type LandingScreen struct {
	Result TranslationResult
}

// EndingScreen closes the loop and offers another round.
type EndingScreen struct{}

func (StoryScreen) screen()       {}
func (InputScreen) screen()       {}
func (TranslatingScreen) screen() {}
func (ResultScreen) screen()      {}
func (LandingScreen) screen()     {}
func (EndingScreen) screen()      {}

func (StoryScreen) Name() string       { return "story" }
func (InputScreen) Name() string       { return "input" }
func (TranslatingScreen) Name() string { return "translating" }
func (ResultScreen) Name() string      { return "result" }
func (LandingScreen) Name() string     { return "landing" }
func (EndingScreen) Name() string      { return "ending" }
