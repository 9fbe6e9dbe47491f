// Package toggle turns the user's switch gestures into starting or releasing
// the dot service while keeping the persisted "enabled" flag consistent with
// the accessibility permission the OS actually grants.
package toggle

import (
	"context"
	"fmt"
	"sync"

	"github.com/stigoleg/safedot/internal/prefs"
	"go.uber.org/zap"
)

// PermissionOracle answers live permission queries for the dot service.
type PermissionOracle interface {
	IsGranted(ctx context.Context) (bool, error)
	IsServiceRunning(ctx context.Context) (bool, error)
}

// Launcher starts the dot service and opens the OS screens the user is sent
// to. Launches are fire-and-forget.
type Launcher interface {
	StartService(ctx context.Context) error
	OpenAccessibilitySettings(ctx context.Context) error
}

// Controller owns the on/off intent for the dot service.
type Controller struct {
	mu       sync.Mutex
	store    prefs.Store
	oracle   PermissionOracle
	launcher Launcher
	logger   *zap.SugaredLogger

	// started is set once this process launched the service.
	started bool
}

// New returns a controller over store, oracle and launcher.
func New(store prefs.Store, oracle PermissionOracle, launcher Launcher, logger *zap.SugaredLogger) *Controller {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Controller{
		store:    store,
		oracle:   oracle,
		launcher: launcher,
		logger:   logger,
	}
}

// isGranted treats a failed query as "not granted".
func (c *Controller) isGranted(ctx context.Context) bool {
	granted, err := c.oracle.IsGranted(ctx)
	if err != nil {
		c.logger.Warnw("controller: permission check failed", "error", err)
		return false
	}
	return granted
}

func (c *Controller) isServiceRunning(ctx context.Context) bool {
	running, err := c.oracle.IsServiceRunning(ctx)
	if err != nil {
		c.logger.Warnw("controller: service running check failed", "error", err)
		return false
	}
	return running
}

func derive(persisted, granted bool) Enablement {
	switch {
	case !persisted:
		return Disabled
	case granted:
		return Enabled
	default:
		return EnabledPendingPermission
	}
}

// OnUserToggle handles a flip of the main switch.
func (c *Controller) OnUserToggle(ctx context.Context, on bool) (Result, error) {
	if on {
		return c.RequestEnable(ctx)
	}
	return c.RequestDisable(ctx)
}

// RequestEnable starts the service when the accessibility permission is
// granted. Without it the switch snaps back off and a persisted enabled flag
// is reverted to false.
func (c *Controller) RequestEnable(ctx context.Context) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isGranted(ctx) {
		c.logger.Infow("controller: enable refused, accessibility permission missing")
		res := Result{
			Toggle:  false,
			State:   Disabled,
			Signals: []Signal{permissionRequiredSignal},
		}
		// A flag left over from a revoked grant must not outlive a failed check.
		if c.store.Bool(prefs.KeyServiceEnabled) {
			if err := c.store.SetBool(prefs.KeyServiceEnabled, false); err != nil {
				res.State = EnabledPendingPermission
				return res, fmt.Errorf("revert service enabled: %w", err)
			}
			c.started = false
			c.logger.Infow("controller: reverted stale service enabled flag")
		}
		return res, nil
	}

	if err := c.store.SetBool(prefs.KeyServiceEnabled, true); err != nil {
		return Result{Toggle: false, State: Disabled}, fmt.Errorf("persist service enabled: %w", err)
	}

	if c.started {
		c.logger.Debugw("controller: service already started")
	} else if err := c.launcher.StartService(ctx); err != nil {
		c.logger.Warnw("controller: start service failed", "error", err)
	} else {
		c.started = true
		c.logger.Infow("controller: service started")
	}

	return Result{Toggle: true, State: Enabled}, nil
}

// RequestDisable persists the service as disabled. The service itself can
// only be stopped from the OS accessibility screen, which is opened when the
// service is still listed as running.
func (c *Controller) RequestDisable(ctx context.Context) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := Result{Toggle: false, State: Disabled}

	running := c.isServiceRunning(ctx)
	if err := c.store.SetBool(prefs.KeyServiceEnabled, false); err != nil {
		return res, fmt.Errorf("persist service disabled: %w", err)
	}
	c.started = false

	if running {
		res.Signals = append(res.Signals, manualStopSignal)
		if err := c.launcher.OpenAccessibilitySettings(ctx); err != nil {
			c.logger.Warnw("controller: open accessibility settings failed", "error", err)
		}
	}
	res.Signals = append(res.Signals, reminderSignal)

	c.logger.Infow("controller: service disabled", "running", running)
	return res, nil
}

// ReconcileOnResume re-derives the visible switch from a fresh permission
// check. It never writes preferences.
func (c *Controller) ReconcileOnResume(ctx context.Context) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	persisted := c.store.Bool(prefs.KeyServiceEnabled)
	granted := c.isGranted(ctx)
	if persisted && !granted {
		c.logger.Infow("controller: permission revoked outside the app")
	}
	return Result{Toggle: granted, State: derive(persisted, granted)}
}

// State derives the current enablement.
func (c *Controller) State(ctx context.Context) Enablement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return derive(c.store.Bool(prefs.KeyServiceEnabled), c.isGranted(ctx))
}

// OpenAccessibilitySettings sends the user to grant or revoke the permission.
func (c *Controller) OpenAccessibilitySettings(ctx context.Context) error {
	return c.launcher.OpenAccessibilitySettings(ctx)
}

// SetVibration persists the vibration preference.
func (c *Controller) SetVibration(on bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.SetBool(prefs.KeyVibrationEnabled, on); err != nil {
		return fmt.Errorf("persist vibration: %w", err)
	}
	return nil
}

// SetPosition persists the corner the dot is drawn in.
func (c *Controller) SetPosition(p prefs.Position) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.SetPosition(p); err != nil {
		return fmt.Errorf("persist position: %w", err)
	}
	return nil
}

// Settings returns a snapshot of the persisted preferences.
func (c *Controller) Settings() prefs.Settings {
	return c.store.Settings()
}
