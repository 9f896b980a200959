package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xvela/reframe/internal/classify"
)

// patternsCmd represents the patterns command
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the recognizable thought patterns",
	Long: `List the thought patterns the translator recognizes, in matching
priority order. The first pattern whose keywords match wins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		patterns := classify.Patterns()

		if jsonOutput {
			var list []map[string]interface{}
			for _, p := range patterns {
				list = append(list, map[string]interface{}{
					"name":     p.Name,
					"emotion":  p.Emotion,
					"keywords": p.Keywords,
				})
			}
			data := map[string]interface{}{
				"patterns": list,
				"count":    len(list),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal patterns: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Println()
		for i, p := range patterns {
			fmt.Printf("  %d. %-18s %-15s %s\n", i+1, p.Name, p.Emotion, strings.Join(p.Keywords, ", "))
		}
		fmt.Println()
		return nil
	},
}
