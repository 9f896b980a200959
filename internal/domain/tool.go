package domain

// Tool identifies one of the self-help tools offered on the landing
// screen. Selecting a tool opens a short-lived session whose state is
// discarded on close.
type Tool string

const (
	ToolBreathing         Tool = "breathing"
	ToolGrounding         Tool = "grounding"
	ToolJournal           Tool = "journal"
	ToolReset             Tool = "reset"
	ToolFocusSprint       Tool = "focus_sprint"
	ToolThoughtChallenger Tool = "thought_challenger"
	ToolCopingCards       Tool = "coping_cards"
	ToolBuddy             Tool = "buddy"
)

// ToolInfo holds the static display metadata for a tool.
type ToolInfo struct {
	Tool     Tool
	Title    string
	Subtitle string
	IconKey  string
}

// AllTools lists the tools in display order with their metadata.
func AllTools() []ToolInfo {
	return []ToolInfo{
		{ToolBreathing, "Breathing", "4-2-6 guided cycle", "wind"},
		{ToolGrounding, "Grounding", "5-4-3-2-1 senses check", "anchor"},
		{ToolJournal, "Mini Journal", "Four quick prompts", "book"},
		{ToolReset, "Reset", "Five small instructions", "loop"},
		{ToolFocusSprint, "Focus Sprint", "Five minutes, one thing", "timer"},
		{ToolThoughtChallenger, "Thought Challenger", "Weigh the evidence", "scale"},
		{ToolCopingCards, "Coping Cards", "Five reminders", "cards"},
		{ToolBuddy, "Buddy", "A short supportive chat", "chat"},
	}
}

// InfoFor returns the metadata for a single tool.
func InfoFor(t Tool) (ToolInfo, error) {
	for _, info := range AllTools() {
		if info.Tool == t {
			return info, nil
		}
	}
	return ToolInfo{}, ErrInvalidTool
}

// ValidateTool parses a tool identifier.
func ValidateTool(s string) (Tool, error) {
	info, err := InfoFor(Tool(s))
	if err != nil {
		return "", err
	}
	return info.Tool, nil
}
