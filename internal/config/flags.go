package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/stigoleg/safedot/internal/device"
	"github.com/stigoleg/safedot/internal/ui"
)

// DefaultService is the dot service component of the Safe Dot app.
const DefaultService = "com.aravi.dotpro/.service.DotService"

type Config struct {
	ADBPath         string `env:"SAFEDOT_ADB"`
	Serial          string `env:"SAFEDOT_SERIAL"`
	Service         string `env:"SAFEDOT_SERVICE"`
	PrefsPath       string `env:"SAFEDOT_PREFS"`
	LogFile         string `env:"SAFEDOT_LOG_FILE"`
	Debug           bool   `env:"SAFEDOT_DEBUG"`
	Manufacturer    string `env:"SAFEDOT_MANUFACTURER"`
	FeedbackAddress string `env:"SAFEDOT_FEEDBACK_ADDRESS"`
	Locale          string `env:"LANG"`
	ShowVersion     bool

	// Component is Service parsed.
	Component device.Component
}

// Defaults returns the configuration before .env, environment and flags.
func Defaults() *Config {
	prefsDir, err := os.UserConfigDir()
	if err != nil {
		prefsDir = "."
	}
	return &Config{
		ADBPath:         "adb",
		Service:         DefaultService,
		PrefsPath:       filepath.Join(prefsDir, "safedot", "prefs.yaml"),
		LogFile:         "debug.log",
		FeedbackAddress: "feedback@aravi.me",
	}
}

func formatError(err error) string {
	msg := err.Error()
	header, details, ok := strings.Cut(msg, "\n\n")
	if !ok {
		return ui.Current.Error.Render(msg)
	}

	errorBox := ui.Current.Help.Copy().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF4040"))

	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF4040")).
		Render(header)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#999999")).
		Render(details)

	return errorBox.Render(fmt.Sprintf("%s\n\n%s", head, body))
}

// Load builds the configuration from defaults, a .env file, the environment
// and finally args (without the program name).
func Load(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Defaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	flags := flag.NewFlagSet("safedot", flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprint(flags.Output(), ui.HelpView())
	}

	flags.StringVar(&cfg.Serial, "serial", cfg.Serial, "Serial of the device to manage (adb -s)")
	flags.StringVar(&cfg.Serial, "s", cfg.Serial, "Serial of the device to manage (adb -s)")
	flags.StringVar(&cfg.ADBPath, "adb", cfg.ADBPath, "Path to the adb binary")
	flags.StringVar(&cfg.Service, "service", cfg.Service, "Accessibility service component (package/class)")
	flags.StringVar(&cfg.PrefsPath, "prefs", cfg.PrefsPath, "Preferences file")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Log file, empty to disable logging")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log adb traffic")
	flags.StringVar(&cfg.Manufacturer, "manufacturer", cfg.Manufacturer, "Override the device manufacturer")
	flags.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flags.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	component, err := device.ParseComponent(cfg.Service)
	if err != nil {
		return nil, fmt.Errorf("invalid service component: %s\n\nExpected package/class, e.g. %q", cfg.Service, DefaultService)
	}
	cfg.Component = component

	return cfg, nil
}

// FormatError renders a configuration error for the terminal.
func FormatError(err error) string {
	return formatError(err)
}
