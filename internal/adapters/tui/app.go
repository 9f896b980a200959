package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvela/reframe/internal/config"
	"github.com/xvela/reframe/internal/journey"
	"github.com/xvela/reframe/internal/toolkit"
)

// Run starts the interactive flow and blocks until the user quits. State
// changes that happen off the Bubbletea loop, like a timer firing, are
// forwarded to the program as refresh messages.
func Run(ctx context.Context, j *journey.Journey, tools *toolkit.Manager, theme *config.ThemeConfig) error {
	model := NewModel(j, tools, theme)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	j.Subscribe(func() {
		program.Send(refreshMsg{})
	})
	tools.Subscribe(func() {
		program.Send(refreshMsg{})
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			program.Quit()
		case <-done:
		}
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	// Leftover timers must not fire after the UI is gone.
	tools.Close()

	return nil
}

// ShowError displays an error message.
func ShowError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
