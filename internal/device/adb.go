package device

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/stigoleg/safedot/internal/util"
)

// ErrADBNotFound is returned when the adb binary is not on PATH.
var ErrADBNotFound = errors.New("adb not found in PATH")

// Runner executes an adb invocation and returns its combined output.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ADB runs commands through the adb binary, optionally pinned to one device.
type ADB struct {
	Path   string
	Serial string
}

// NewADB returns an ADB runner after checking the binary exists.
func NewADB(path, serial string) (*ADB, error) {
	if path == "" {
		path = "adb"
	}
	resolved, ok := util.LookCommand(path)
	if !ok {
		return nil, ErrADBNotFound
	}
	return &ADB{Path: resolved, Serial: serial}, nil
}

// Run executes adb with args and returns its combined output.
func (a *ADB) Run(ctx context.Context, args ...string) (string, error) {
	full := make([]string, 0, len(args)+2)
	if a.Serial != "" {
		full = append(full, "-s", a.Serial)
	}
	full = append(full, args...)

	out, err := exec.CommandContext(ctx, a.Path, full...).CombinedOutput()
	return string(out), err
}

// shellQuote quotes s for the device's sh, which re-splits adb shell args.
func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$&;|<>()*?!#`~{}[]") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
