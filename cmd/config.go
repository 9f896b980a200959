package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xvela/reframe/internal/config"
	"github.com/xvela/reframe/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit the default mood, timings, and notifications",
	Long:  `Interactively configure the default tone preset, the sprint duration, and notification settings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		mood, err := domain.ValidateMood(appConfig.Mood)
		if err != nil {
			mood = domain.MoodCalm
		}

		notifStatus := "off"
		if appConfig.Notifications.Enabled {
			notifStatus = "on"
			if appConfig.Notifications.Sound {
				notifStatus = "on (with sound)"
			}
		}

		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Printf("    Default tone:    %s\n", mood.Label())
		fmt.Printf("    Sprint duration: %s\n", appConfig.Timings.SprintDuration)
		fmt.Printf("    Breathing:       %s in / %s hold / %s out, %d cycles\n",
			appConfig.Timings.BreathInhale, appConfig.Timings.BreathHold,
			appConfig.Timings.BreathExhale, appConfig.Timings.BreathingCycles)
		fmt.Printf("    Notifications:   %s\n", notifStatus)
		fmt.Println()
		fmt.Println("  What would you like to change?")
		fmt.Println("    [m] Change default tone")
		fmt.Println("    [s] Change sprint duration")
		fmt.Println("    [n] Toggle notifications")
		fmt.Println("    [q] Quit without saving")
		fmt.Print("  Choose: ")

		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))

		switch choice {
		case "m":
			fmt.Print("  Tone (calm, focus, confidence): ")
			raw, _ := reader.ReadString('\n')
			m, err := domain.ValidateMood(strings.TrimSpace(strings.ToLower(raw)))
			if err != nil {
				return fmt.Errorf("invalid tone: %w", err)
			}
			appConfig.Mood = string(m)
		case "s":
			fmt.Print("  Sprint duration (e.g. 5m, 10m): ")
			raw, _ := reader.ReadString('\n')
			d, err := time.ParseDuration(strings.TrimSpace(raw))
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}
			if d <= 0 {
				return fmt.Errorf("duration must be positive")
			}
			appConfig.Timings.SprintDuration = config.Duration(d)
		case "n":
			appConfig.Notifications.Enabled = !appConfig.Notifications.Enabled
		default:
			return nil
		}

		if err := config.Save(appConfig); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		fmt.Println("  Saved.")
		return nil
	},
}
