// Package cmd provides the CLI commands for the Reframe application.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xvela/reframe/internal/adapters/notification"
	"github.com/xvela/reframe/internal/adapters/tui"
	"github.com/xvela/reframe/internal/config"
	"github.com/xvela/reframe/internal/domain"
	"github.com/xvela/reframe/internal/journey"
	"github.com/xvela/reframe/internal/logging"
	"github.com/xvela/reframe/internal/ports"
	"github.com/xvela/reframe/internal/toolkit"
)

var (
	// Version info (set at build time via ldflags)
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"

	// Global flags
	jsonOutput bool
	moodFlag   string
	verbose    bool

	// Global dependencies
	appConfig *config.Config
	appLogger *zap.Logger
	notifier  *notification.Notifier
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reframe",
	Short: "Reframe - translate anxious thoughts into calmer language",
	Long: `Reframe reads an anxious thought, names the thinking pattern behind
it, and hands it back as a plain translation with a reframe and one
small step. It also carries a pocket kit of quick self-help tools.

Run "reframe" with no arguments to start the interactive flow.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appLogger != nil {
			_ = appLogger.Sync()
		}
	},
	RunE: runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().StringVar(&moodFlag, "mood", "", "Tone preset: calm, focus, confidence")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")

	// Set version - cobra handles --version automatically
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Reframe\nVersion: {{.Version}}\n")

	// Add subcommands
	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(buddyCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(configCmd)
}

// initializeServices loads configuration and builds the shared adapters.
func initializeServices() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	appLogger, err = logging.New(appConfig.Logging, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	notifier = notification.New(&appConfig.Notifications)

	return nil
}

// effectiveMood resolves the mood from --mood flag > config > calm.
func effectiveMood() (domain.Mood, error) {
	raw := appConfig.Mood
	if moodFlag != "" {
		raw = moodFlag
	}
	if raw == "" {
		raw = string(domain.MoodCalm)
	}
	return domain.ValidateMood(raw)
}

// setupSignalHandler sets up a context that cancels on interrupt signals.
func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
	}()

	return ctx
}

// runInteractive launches the fullscreen flow for the bare "reframe" command.
func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	mood, err := effectiveMood()
	if err != nil {
		return fmt.Errorf("invalid mood: %w", err)
	}

	scheduler := ports.SystemScheduler{}

	j := journey.New(scheduler,
		journey.WithDelay(appConfig.TranslateDelay()),
		journey.WithMood(mood),
		journey.WithLogger(appLogger),
	)

	tools := toolkit.NewManager(scheduler, appConfig.ToToolkitConfig(),
		toolkit.WithLogger(appLogger),
		toolkit.WithBreathingDone(func() {
			if err := notifier.NotifyBreathingComplete(appConfig.Timings.BreathingCycles); err != nil {
				appLogger.Warn("notification failed", zap.Error(err))
			}
		}),
		toolkit.WithSprintDone(func() {
			if err := notifier.NotifySprintComplete(appConfig.ToToolkitConfig().SprintDuration); err != nil {
				appLogger.Warn("notification failed", zap.Error(err))
			}
		}),
	)

	appLogger.Info("starting interactive flow", zap.String("mood", string(mood)))

	if appConfig.FirstRun {
		appConfig.FirstRun = false
		_ = config.Save(appConfig)
	}

	return tui.Run(ctx, j, tools, &appConfig.Theme)
}
