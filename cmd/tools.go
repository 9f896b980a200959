package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xvela/reframe/internal/domain"
)

// toolsCmd represents the tools command
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the self-help tools",
	Long:  `List the quick self-help tools available on the landing screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := domain.AllTools()

		if jsonOutput {
			var list []map[string]interface{}
			for _, info := range infos {
				list = append(list, map[string]interface{}{
					"id":       string(info.Tool),
					"title":    info.Title,
					"subtitle": info.Subtitle,
				})
			}
			data := map[string]interface{}{
				"tools": list,
				"count": len(list),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal tools: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Println()
		for _, info := range infos {
			fmt.Printf("  %-20s %s\n", info.Title, info.Subtitle)
		}
		fmt.Println()
		return nil
	},
}
