package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xvela/reframe/internal/classify"
)

// buddyCmd represents the buddy command
var buddyCmd = &cobra.Command{
	Use:   "buddy [message]",
	Short: "Get a one-off supportive reply",
	Long:  `Send one message to the supportive buddy and print its reply.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return fmt.Errorf("message is empty")
		}

		reply := classify.Reply(text)

		if jsonOutput {
			data := map[string]interface{}{
				"message": text,
				"reply":   reply,
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal reply: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		fmt.Printf("\n  %s\n\n", reply)
		return nil
	},
}
