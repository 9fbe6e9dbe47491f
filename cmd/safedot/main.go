package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/stigoleg/safedot/internal/analytics"
	"github.com/stigoleg/safedot/internal/config"
	"github.com/stigoleg/safedot/internal/device"
	"github.com/stigoleg/safedot/internal/lifecycle"
	"github.com/stigoleg/safedot/internal/logging"
	"github.com/stigoleg/safedot/internal/prefs"
	"github.com/stigoleg/safedot/internal/toggle"
	"github.com/stigoleg/safedot/internal/ui"
	"github.com/stigoleg/safedot/internal/upsell"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const appVersion = "4.1.0"

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, config.FormatError(err))
		os.Exit(1)
	}
	if cfg.ShowVersion {
		fmt.Printf("safedot version %s\n", appVersion)
		return
	}

	logger, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, config.FormatError(err))
		os.Exit(1)
	}

	cleanup := lifecycle.NewCleanup(3*time.Second, logger)
	cleanup.Register("logger", func() error {
		_ = logger.Sync()
		return nil
	})

	if err := run(cfg, logger, cleanup); err != nil {
		logger.Errorw("main: exiting", "error", err)
		_ = cleanup.Run()
		fmt.Fprintln(os.Stderr, config.FormatError(err))
		os.Exit(1)
	}
	if err := cleanup.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func run(cfg *config.Config, logger *zap.SugaredLogger, cleanup *lifecycle.Cleanup) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := prefs.OpenFile(cfg.PrefsPath)
	if err != nil {
		return fmt.Errorf("failed to open preferences\n\n%v", err)
	}
	logger.Infow("main: preferences loaded", "path", store.Path())

	adb, err := device.NewADB(cfg.ADBPath, cfg.Serial)
	if err != nil {
		return fmt.Errorf("cannot reach the device\n\n%v (set --adb or SAFEDOT_ADB)", err)
	}
	phone := device.New(adb, cfg.Component, logger)
	logger.Infow("main: managing service", "component", phone.Component().Flatten(), "serial", adb.Serial)

	manufacturer := cfg.Manufacturer
	if manufacturer == "" {
		if manufacturer, err = phone.Manufacturer(ctx); err != nil {
			logger.Warnw("main: could not read manufacturer", "error", err)
		}
	}

	settings := store.Settings()
	tracker := analytics.NewLogTracker(nil, logger, 0)
	model := ui.InitialModel(ui.Deps{
		Context:         ctx,
		Controller:      toggle.New(store, phone, phone, logger),
		Upsell:          upsell.NewFlow(tracker, phone, settings.InstallID, upsell.LocaleFromEnv(cfg.Locale)),
		Device:          phone,
		Manufacturer:    manufacturer,
		FeedbackAddress: cfg.FeedbackAddress,
		Version:         appVersion,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)

	go func() {
		for sig := range sigChan {
			if isSIGTSTPForPlatform(sig) {
				continue
			}
			logger.Infow("main: received signal", "signal", sig.String())
			cancel()
			if err := cleanup.Run(); err != nil {
				logger.Warnw("main: cleanup failed", "error", err)
			}
			p.Kill()
			return
		}
	}()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("error running program\n\n%v", err)
	}
	return nil
}
