// Package config provides configuration management for Reframe.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/xvela/reframe/internal/toolkit"
)

// Config holds all configuration for the Reframe application.
type Config struct {
	Mood          string             `mapstructure:"mood"`
	FirstRun      bool               `mapstructure:"first_run"`
	Timings       TimingConfig       `mapstructure:"timings"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	MCP           MCPConfig          `mapstructure:"mcp"`
	Logging       LoggingConfig      `mapstructure:"logging"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// TimingConfig holds the delays and durations of the timed features.
type TimingConfig struct {
	TranslateDelay  Duration `mapstructure:"translate_delay"`
	BuddyReplyDelay Duration `mapstructure:"buddy_reply_delay"`
	BreathInhale    Duration `mapstructure:"breath_inhale"`
	BreathHold      Duration `mapstructure:"breath_hold"`
	BreathExhale    Duration `mapstructure:"breath_exhale"`
	BreathingCycles int      `mapstructure:"breathing_cycles"`
	SprintDuration  Duration `mapstructure:"sprint_duration"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorAccent   string `mapstructure:"color_accent"`
	ColorCalm     string `mapstructure:"color_calm"`
	ColorFocus    string `mapstructure:"color_focus"`
	ColorConfid   string `mapstructure:"color_confidence"`
	ColorTitle    string `mapstructure:"color_title"`
	ColorSubtle   string `mapstructure:"color_subtle"`
	ColorHelp     string `mapstructure:"color_help"`
	IconApp       string `mapstructure:"icon_app"`
	IconBreathing string `mapstructure:"icon_breathing"`
	IconGrounding string `mapstructure:"icon_grounding"`
	IconJournal   string `mapstructure:"icon_journal"`
	IconReset     string `mapstructure:"icon_reset"`
	IconSprint    string `mapstructure:"icon_sprint"`
	IconChallenge string `mapstructure:"icon_challenge"`
	IconCards     string `mapstructure:"icon_cards"`
	IconBuddy     string `mapstructure:"icon_buddy"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorAccent:   "#7C6FE0",
		ColorCalm:     "#4ECDC4",
		ColorFocus:    "#F6AD55",
		ColorConfid:   "#FC8181",
		ColorTitle:    "#6B7280",
		ColorSubtle:   "#A0AEC0",
		ColorHelp:     "#95A5A6",
		IconApp:       "🌤",
		IconBreathing: "🫁",
		IconGrounding: "🌳",
		IconJournal:   "📓",
		IconReset:     "🔄",
		IconSprint:    "⏱",
		IconChallenge: "⚖",
		IconCards:     "🃏",
		IconBuddy:     "💬",
	}
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// MCPConfig holds MCP server settings.
type MCPConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig holds log file settings.
type LoggingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// Duration is a wrapper around time.Duration for TOML parsing.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(duration)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// String returns the string representation of the duration.
func (d Duration) String() string {
	return time.Duration(d).String()
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Mood:     "calm",
		FirstRun: true,
		Timings: TimingConfig{
			TranslateDelay:  Duration(1050 * time.Millisecond),
			BuddyReplyDelay: Duration(550 * time.Millisecond),
			BreathInhale:    Duration(4 * time.Second),
			BreathHold:      Duration(2 * time.Second),
			BreathExhale:    Duration(6 * time.Second),
			BreathingCycles: 4,
			SprintDuration:  Duration(5 * time.Minute),
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		MCP: MCPConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Enabled: false,
			File:    "~/.reframe/reframe.log",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	// Set defaults
	setDefaults()

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := Save(DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand ~ in log file path
	if len(cfg.Logging.File) > 1 && cfg.Logging.File[:2] == "~/" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		cfg.Logging.File = filepath.Join(homeDir, cfg.Logging.File[2:])
	}

	return &cfg, nil
}

// Save saves the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("toml")

	// Set all values
	viper.Set("mood", cfg.Mood)
	viper.Set("first_run", cfg.FirstRun)
	viper.Set("timings.translate_delay", cfg.Timings.TranslateDelay.String())
	viper.Set("timings.buddy_reply_delay", cfg.Timings.BuddyReplyDelay.String())
	viper.Set("timings.breath_inhale", cfg.Timings.BreathInhale.String())
	viper.Set("timings.breath_hold", cfg.Timings.BreathHold.String())
	viper.Set("timings.breath_exhale", cfg.Timings.BreathExhale.String())
	viper.Set("timings.breathing_cycles", cfg.Timings.BreathingCycles)
	viper.Set("timings.sprint_duration", cfg.Timings.SprintDuration.String())
	viper.Set("notifications.enabled", cfg.Notifications.Enabled)
	viper.Set("notifications.sound", cfg.Notifications.Sound)
	viper.Set("mcp.enabled", cfg.MCP.Enabled)
	viper.Set("logging.enabled", cfg.Logging.Enabled)
	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("theme.color_accent", cfg.Theme.ColorAccent)
	viper.Set("theme.color_calm", cfg.Theme.ColorCalm)
	viper.Set("theme.color_focus", cfg.Theme.ColorFocus)
	viper.Set("theme.color_confidence", cfg.Theme.ColorConfid)
	viper.Set("theme.color_title", cfg.Theme.ColorTitle)
	viper.Set("theme.color_subtle", cfg.Theme.ColorSubtle)
	viper.Set("theme.color_help", cfg.Theme.ColorHelp)
	viper.Set("theme.icon_app", cfg.Theme.IconApp)
	viper.Set("theme.icon_breathing", cfg.Theme.IconBreathing)
	viper.Set("theme.icon_grounding", cfg.Theme.IconGrounding)
	viper.Set("theme.icon_journal", cfg.Theme.IconJournal)
	viper.Set("theme.icon_reset", cfg.Theme.IconReset)
	viper.Set("theme.icon_sprint", cfg.Theme.IconSprint)
	viper.Set("theme.icon_challenge", cfg.Theme.IconChallenge)
	viper.Set("theme.icon_cards", cfg.Theme.IconCards)
	viper.Set("theme.icon_buddy", cfg.Theme.IconBuddy)

	return viper.WriteConfig()
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".reframe", "config.toml"), nil
}

// setDefaults sets default values for viper.
func setDefaults() {
	viper.SetDefault("mood", "calm")
	viper.SetDefault("first_run", true)
	viper.SetDefault("timings.translate_delay", "1.05s")
	viper.SetDefault("timings.buddy_reply_delay", "550ms")
	viper.SetDefault("timings.breath_inhale", "4s")
	viper.SetDefault("timings.breath_hold", "2s")
	viper.SetDefault("timings.breath_exhale", "6s")
	viper.SetDefault("timings.breathing_cycles", 4)
	viper.SetDefault("timings.sprint_duration", "5m0s")
	viper.SetDefault("notifications.enabled", true)
	viper.SetDefault("notifications.sound", true)
	viper.SetDefault("mcp.enabled", true)
	viper.SetDefault("logging.enabled", false)
	viper.SetDefault("logging.file", "~/.reframe/reframe.log")

	// Theme defaults
	defaults := DefaultThemeConfig()
	viper.SetDefault("theme.color_accent", defaults.ColorAccent)
	viper.SetDefault("theme.color_calm", defaults.ColorCalm)
	viper.SetDefault("theme.color_focus", defaults.ColorFocus)
	viper.SetDefault("theme.color_confidence", defaults.ColorConfid)
	viper.SetDefault("theme.color_title", defaults.ColorTitle)
	viper.SetDefault("theme.color_subtle", defaults.ColorSubtle)
	viper.SetDefault("theme.color_help", defaults.ColorHelp)
	viper.SetDefault("theme.icon_app", defaults.IconApp)
	viper.SetDefault("theme.icon_breathing", defaults.IconBreathing)
	viper.SetDefault("theme.icon_grounding", defaults.IconGrounding)
	viper.SetDefault("theme.icon_journal", defaults.IconJournal)
	viper.SetDefault("theme.icon_reset", defaults.IconReset)
	viper.SetDefault("theme.icon_sprint", defaults.IconSprint)
	viper.SetDefault("theme.icon_challenge", defaults.IconChallenge)
	viper.SetDefault("theme.icon_cards", defaults.IconCards)
	viper.SetDefault("theme.icon_buddy", defaults.IconBuddy)
}

// TranslateDelay returns the artificial thinking delay before a result
// is shown.
func (c *Config) TranslateDelay() time.Duration {
	d := time.Duration(c.Timings.TranslateDelay)
	if d <= 0 {
		d = 1050 * time.Millisecond
	}
	return d
}

// ToToolkitConfig converts the timing settings to the toolkit's config,
// falling back to the canonical timings for zero values.
func (c *Config) ToToolkitConfig() toolkit.Config {
	out := toolkit.DefaultConfig()
	if d := time.Duration(c.Timings.BreathInhale); d > 0 {
		out.Inhale = d
	}
	if d := time.Duration(c.Timings.BreathHold); d > 0 {
		out.Hold = d
	}
	if d := time.Duration(c.Timings.BreathExhale); d > 0 {
		out.Exhale = d
	}
	if c.Timings.BreathingCycles > 0 {
		out.BreathingCycles = c.Timings.BreathingCycles
	}
	if d := time.Duration(c.Timings.SprintDuration); d > 0 {
		out.SprintDuration = d
	}
	if d := time.Duration(c.Timings.BuddyReplyDelay); d > 0 {
		out.BuddyReplyDelay = d
	}
	return out
}
