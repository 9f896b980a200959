// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/xvela/reframe/internal/config"
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if n.cfg == nil || !n.cfg.Enabled {
		return nil
	}

	return beeep.Notify(title, message, "")
}

// NotifyBreathingComplete displays a notification when a breathing
// session finishes its final cycle.
func (n *Notifier) NotifyBreathingComplete(cycles int) error {
	title := "🫁 Breathing Done"
	message := fmt.Sprintf("You finished %d slow cycles. Notice how your body feels now.", cycles)
	return n.Notify(title, message)
}

// NotifySprintComplete displays a notification when the focus sprint
// reaches zero.
func (n *Notifier) NotifySprintComplete(duration time.Duration) error {
	title := "⏱ Sprint Complete"
	message := fmt.Sprintf("Your %s focus sprint is done. Stand up and shake it off.", duration)
	return n.Notify(title, message)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
