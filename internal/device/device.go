// Package device talks to an attached Android device over adb. It answers
// accessibility permission queries for the dot service and launches the
// service and the system screens the user is sent to.
package device

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	accessibilitySettingsAction = "android.settings.ACCESSIBILITY_SETTINGS"
	enabledServicesSetting      = "enabled_accessibility_services"
)

// Info describes the device hardware, as attached to feedback mails.
type Info struct {
	Device       string
	Board        string
	Brand        string
	Manufacturer string
	Model        string
}

// Device is one Android device running the dot service.
type Device struct {
	runner    Runner
	component Component
	logger    *zap.SugaredLogger
}

// New returns a Device that manages component through runner.
func New(runner Runner, component Component, logger *zap.SugaredLogger) *Device {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Device{runner: runner, component: component, logger: logger}
}

// Component returns the managed service component.
func (d *Device) Component() Component {
	return d.component
}

func (d *Device) shell(ctx context.Context, op string, args ...string) (string, error) {
	full := append([]string{"shell"}, args...)
	out, err := d.runner.Run(ctx, full...)
	out = strings.TrimSpace(out)
	d.logger.Debugw("device: shell", "op", op, "args", args, "output", out)
	if err != nil {
		return out, &Error{Op: op, Output: out, Cause: err}
	}
	return out, nil
}

// activityManager runs an "am" command and treats an "Error:" line as a
// failure, since am exits 0 on most launch errors.
func (d *Device) activityManager(ctx context.Context, op string, args ...string) error {
	out, err := d.shell(ctx, op, append([]string{"am"}, args...)...)
	if err != nil {
		return err
	}
	if strings.Contains(out, "Error:") || strings.Contains(out, "Exception") {
		return &Error{Op: op, Output: out}
	}
	return nil
}

func (d *Device) enabledServices(ctx context.Context) (string, error) {
	return d.shell(ctx, "read enabled services", "settings", "get", "secure", enabledServicesSetting)
}

// IsGranted reports whether the dot service is among the accessibility
// services the user has authorized.
func (d *Device) IsGranted(ctx context.Context) (bool, error) {
	raw, err := d.enabledServices(ctx)
	if err != nil {
		return false, err
	}
	return containsComponent(raw, d.component), nil
}

// IsServiceRunning reports whether the OS lists the service component in
// its long form among enabled accessibility services.
func (d *Device) IsServiceRunning(ctx context.Context) (bool, error) {
	raw, err := d.enabledServices(ctx)
	if err != nil {
		return false, err
	}
	return strings.Contains(raw, d.component.Flatten()), nil
}

// StartService starts the dot service in the foreground.
func (d *Device) StartService(ctx context.Context) error {
	return d.activityManager(ctx, "start service", "start-foreground-service", "-n", shellQuote(d.component.Flatten()))
}

// OpenAccessibilitySettings brings up the system accessibility screen.
func (d *Device) OpenAccessibilitySettings(ctx context.Context) error {
	return d.activityManager(ctx, "open accessibility settings", "start", "-a", accessibilitySettingsAction)
}

// OpenURL opens url in the device browser or the app that owns it.
func (d *Device) OpenURL(ctx context.Context, url string) error {
	return d.activityManager(ctx, "open url", "start", "-a", "android.intent.action.VIEW", "-d", shellQuote(url))
}

// Share opens the system share sheet with text.
func (d *Device) Share(ctx context.Context, text string) error {
	return d.activityManager(ctx, "share",
		"start", "-a", "android.intent.action.SEND",
		"-t", "text/plain",
		"--es", "android.intent.extra.TEXT", shellQuote(text),
	)
}

// SendFeedback opens a mail composer addressed to address with the device
// information prefilled in the body.
func (d *Device) SendFeedback(ctx context.Context, address, subject string) error {
	info, err := d.Info(ctx)
	if err != nil {
		return err
	}
	return d.activityManager(ctx, "send feedback",
		"start", "-a", "android.intent.action.SENDTO",
		"-d", shellQuote("mailto:"+address),
		"--es", "android.intent.extra.SUBJECT", shellQuote(subject),
		"--es", "android.intent.extra.TEXT", shellQuote(FeedbackBody(info)),
	)
}

// FeedbackBody renders the device block users are asked to keep in mails.
func FeedbackBody(info Info) string {
	return fmt.Sprintf("Device Information : \n----- Don't clear these ----\n %s ,\n %s ,\n %s , %s ,\n %s\n ------ ",
		info.Device, info.Board, info.Brand, info.Manufacturer, info.Model)
}

func (d *Device) prop(ctx context.Context, name string) (string, error) {
	return d.shell(ctx, "getprop "+name, "getprop", name)
}

// Manufacturer returns ro.product.manufacturer.
func (d *Device) Manufacturer(ctx context.Context) (string, error) {
	return d.prop(ctx, "ro.product.manufacturer")
}

// Info reads the product properties of the device.
func (d *Device) Info(ctx context.Context) (Info, error) {
	var info Info
	fields := []struct {
		prop string
		dst  *string
	}{
		{"ro.product.device", &info.Device},
		{"ro.product.board", &info.Board},
		{"ro.product.brand", &info.Brand},
		{"ro.product.manufacturer", &info.Manufacturer},
		{"ro.product.model", &info.Model},
	}
	for _, f := range fields {
		v, err := d.prop(ctx, f.prop)
		if err != nil {
			return Info{}, err
		}
		*f.dst = v
	}
	return info, nil
}
