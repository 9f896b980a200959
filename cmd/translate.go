package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xvela/reframe/internal/classify"
	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/journey"
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate [thought]",
	Short: "Translate a thought without the interactive flow",
	Long: `Translate an anxious thought directly from the command line. The
result names the matched pattern and includes the plain translation,
the reframe, and one small step.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		if len([]rune(text)) < journey.MinThoughtLength {
			return domain.ErrThoughtTooShort
		}

		mood, err := effectiveMood()
		if err != nil {
			return fmt.Errorf("invalid mood: %w", err)
		}

		result := classify.Classify(text, mood)

		if jsonOutput {
			data := map[string]interface{}{
				"mood":           string(result.Mood),
				"original_text":  result.OriginalText,
				"emotion":        result.EmotionLabel,
				"pattern":        result.PatternTag,
				"translation":    result.ReadableTranslation,
				"why":            result.Why,
				"reframe":        result.Reframe,
				"one_small_step": result.OneSmallStep,
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal result: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Println()
		fmt.Printf("  %s · %s\n\n", result.EmotionLabel, result.PatternTag)
		fmt.Printf("  Translation:    %s\n", result.ReadableTranslation)
		fmt.Printf("  Why it feels true: %s\n", result.Why)
		fmt.Printf("  Reframe:        %s\n", result.Reframe)
		fmt.Printf("  One small step: %s\n", result.OneSmallStep)
		fmt.Println()

		return nil
	},
}
