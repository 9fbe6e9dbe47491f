package integration

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stigoleg/safedot/internal/analytics"
	"github.com/stigoleg/safedot/internal/device"
	"github.com/stigoleg/safedot/internal/prefs"
	"github.com/stigoleg/safedot/internal/toggle"
	"github.com/stigoleg/safedot/internal/upsell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const service = "com.aravi.dotpro/com.aravi.dotpro.service.DotService"

// phone simulates the adb side of a device: the secure accessibility
// setting, the activity manager and a few product properties.
type phone struct {
	mu           sync.Mutex
	enabled      string
	manufacturer string
	starts       int
	settingsOpen int
	views        []string
}

func (p *phone) Run(ctx context.Context, args ...string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cmd := strings.Join(args, " ")
	switch {
	case cmd == "shell settings get secure enabled_accessibility_services":
		if p.enabled == "" {
			return "null\n", nil
		}
		return p.enabled + "\n", nil
	case strings.HasPrefix(cmd, "shell am start-foreground-service -n "):
		p.starts++
		return "Starting service: Intent { cmp=" + strings.TrimPrefix(cmd, "shell am start-foreground-service -n ") + " }\n", nil
	case cmd == "shell am start -a android.settings.ACCESSIBILITY_SETTINGS":
		p.settingsOpen++
		return "Starting: Intent { act=android.settings.ACCESSIBILITY_SETTINGS }\n", nil
	case strings.HasPrefix(cmd, "shell am start -a android.intent.action.VIEW -d "):
		p.views = append(p.views, strings.Trim(strings.TrimPrefix(cmd, "shell am start -a android.intent.action.VIEW -d "), "'"))
		return "Starting: Intent { act=android.intent.action.VIEW }\n", nil
	case cmd == "shell getprop ro.product.manufacturer":
		return p.manufacturer + "\n", nil
	}
	return "", nil
}

// grant simulates the user enabling the service in accessibility settings.
func (p *phone) grant(flat string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled == "" {
		p.enabled = flat
		return
	}
	p.enabled += ":" + flat
}

func (p *phone) revoke() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = "com.google.android.marvin.talkback/.TalkBackService"
}

type app struct {
	ctl   *toggle.Controller
	dev   *device.Device
	store *prefs.FileStore
	path  string
}

func openApp(t *testing.T, p *phone, path string) app {
	t.Helper()
	component, err := device.ParseComponent(service)
	require.NoError(t, err)

	store, err := prefs.OpenFile(path)
	require.NoError(t, err, "preferences should open")

	dev := device.New(p, component, nil)
	return app{
		ctl:   toggle.New(store, dev, dev, nil),
		dev:   dev,
		store: store,
		path:  path,
	}
}

// TestEnableLifecycle walks the main switch through a grant, a revoke and a
// disable against a simulated device and a preferences file on disk.
func TestEnableLifecycle(t *testing.T) {
	ctx := context.Background()
	p := &phone{}
	a := openApp(t, p, t.TempDir()+"/prefs.yaml")

	res, err := a.ctl.OnUserToggle(ctx, true)
	require.NoError(t, err)
	assert.False(t, res.Toggle, "switch should snap back without permission")
	assert.True(t, res.Has(toggle.PermissionRequired))
	assert.False(t, a.store.Bool(prefs.KeyServiceEnabled))
	assert.Zero(t, p.starts)

	require.NoError(t, a.ctl.OpenAccessibilitySettings(ctx))
	assert.Equal(t, 1, p.settingsOpen)

	p.grant(service)
	res = a.ctl.ReconcileOnResume(ctx)
	assert.True(t, res.Toggle)
	assert.Equal(t, toggle.Disabled, res.State, "granting alone must not enable the service")

	res, err = a.ctl.OnUserToggle(ctx, true)
	require.NoError(t, err)
	assert.True(t, res.Toggle)
	assert.Equal(t, toggle.Enabled, res.State)
	assert.Equal(t, 1, p.starts)

	res, err = a.ctl.OnUserToggle(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, p.starts, "service should start once per process")

	p.revoke()
	res = a.ctl.ReconcileOnResume(ctx)
	assert.False(t, res.Toggle)
	assert.Equal(t, toggle.EnabledPendingPermission, res.State)
	assert.True(t, a.store.Bool(prefs.KeyServiceEnabled), "resume must not rewrite preferences")

	p.grant(service)
	res, err = a.ctl.OnUserToggle(ctx, false)
	require.NoError(t, err)
	assert.False(t, res.Toggle)
	assert.Equal(t, toggle.Disabled, res.State)
	assert.True(t, res.Has(toggle.ManualStopRequired))
	assert.True(t, res.Has(toggle.Reminder))
	assert.Equal(t, 2, p.settingsOpen, "disabling a running service opens accessibility settings")
}

// TestPreferencesSurviveRestart checks that a second process sees what the
// first one persisted, and that a fresh process starts the service again.
func TestPreferencesSurviveRestart(t *testing.T) {
	ctx := context.Background()
	p := &phone{}
	p.grant(service)
	path := t.TempDir() + "/prefs.yaml"

	first := openApp(t, p, path)
	_, err := first.ctl.RequestEnable(ctx)
	require.NoError(t, err)
	require.NoError(t, first.ctl.SetVibration(false))
	require.NoError(t, first.ctl.SetPosition(prefs.TopRight))
	installID := first.store.Settings().InstallID
	require.NotEmpty(t, installID)

	second := openApp(t, p, path)
	s := second.store.Settings()
	assert.True(t, s.ServiceEnabled)
	assert.False(t, s.VibrationEnabled)
	assert.Equal(t, prefs.TopRight, s.Position)
	assert.Equal(t, installID, s.InstallID, "install id should be stable across restarts")
	assert.Equal(t, toggle.Enabled, second.ctl.State(ctx))

	_, err = second.ctl.RequestEnable(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, p.starts)
}

// TestEnableAfterRevokeClearsFlag covers a grant revoked between sessions:
// the next enable attempt must leave the flag false on disk.
func TestEnableAfterRevokeClearsFlag(t *testing.T) {
	ctx := context.Background()
	p := &phone{}
	p.grant(service)
	path := t.TempDir() + "/prefs.yaml"

	first := openApp(t, p, path)
	_, err := first.ctl.RequestEnable(ctx)
	require.NoError(t, err)
	require.True(t, first.store.Bool(prefs.KeyServiceEnabled))

	p.revoke()
	second := openApp(t, p, path)
	res := second.ctl.ReconcileOnResume(ctx)
	assert.Equal(t, toggle.EnabledPendingPermission, res.State)
	assert.True(t, second.store.Bool(prefs.KeyServiceEnabled), "resume alone must not write")

	res, err = second.ctl.OnUserToggle(ctx, true)
	require.NoError(t, err)
	assert.False(t, res.Toggle)
	assert.Equal(t, toggle.Disabled, res.State)
	assert.True(t, res.Has(toggle.PermissionRequired))

	third := openApp(t, p, path)
	assert.False(t, third.store.Bool(prefs.KeyServiceEnabled), "stale flag should be reverted on disk")
	assert.Equal(t, toggle.Disabled, third.ctl.State(ctx))
	assert.Equal(t, 1, p.starts)
}

func TestShortFormGrant(t *testing.T) {
	ctx := context.Background()
	p := &phone{}
	p.grant("com.aravi.dotpro/.service.DotService")
	a := openApp(t, p, t.TempDir()+"/prefs.yaml")

	granted, err := a.dev.IsGranted(ctx)
	require.NoError(t, err)
	assert.True(t, granted, "short form should count as granted")

	running, err := a.dev.IsServiceRunning(ctx)
	require.NoError(t, err)
	assert.False(t, running, "running check matches the long form only")

	res, err := a.ctl.RequestDisable(ctx)
	require.NoError(t, err)
	assert.False(t, res.Has(toggle.ManualStopRequired))
	assert.Zero(t, p.settingsOpen)
}

func TestAutoStartPromptOnDevice(t *testing.T) {
	ctx := context.Background()
	p := &phone{manufacturer: "Xiaomi"}
	path := t.TempDir() + "/prefs.yaml"
	a := openApp(t, p, path)

	manufacturer, err := a.dev.Manufacturer(ctx)
	require.NoError(t, err)

	res, err := a.ctl.MaybeShowAutoStartPrompt(manufacturer)
	require.NoError(t, err)
	assert.True(t, res.Has(toggle.AutoStartPromptNeeded))

	again := openApp(t, p, path)
	res, err = again.ctl.MaybeShowAutoStartPrompt(manufacturer)
	require.NoError(t, err)
	assert.False(t, res.Has(toggle.AutoStartPromptNeeded), "prompt is shown once per install")
}

func TestUpsellOpensStoreOnDevice(t *testing.T) {
	ctx := context.Background()
	p := &phone{}
	a := openApp(t, p, t.TempDir()+"/prefs.yaml")
	tracker := analytics.NewLogTracker(nil, nil, 0)

	flow := upsell.NewFlow(tracker, a.dev, a.store.Settings().InstallID, upsell.LocaleFromEnv("en_US.UTF-8"))
	require.NoError(t, flow.Accept(ctx))

	assert.Equal(t, []string{upsell.StoreURL}, p.views)
	events := tracker.Recent()
	require.Len(t, events, 1)
	assert.Equal(t, analytics.EventLikelyPurchaser, events[0].Name)
	assert.Equal(t, a.store.Settings().InstallID, events[0].Params["user_id"])
}
