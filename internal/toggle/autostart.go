package toggle

import (
	"strings"

	"github.com/stigoleg/safedot/internal/prefs"
)

// aggressiveManufacturers kill background services unless the user grants
// an OEM auto-start permission.
var aggressiveManufacturers = []string{"xiaomi", "oppo", "vivo", "honor"}

// NeedsAutoStart reports whether manufacturer is on the aggressive list.
func NeedsAutoStart(manufacturer string) bool {
	manufacturer = strings.TrimSpace(manufacturer)
	for _, m := range aggressiveManufacturers {
		if strings.EqualFold(m, manufacturer) {
			return true
		}
	}
	return false
}

// MaybeShowAutoStartPrompt emits the auto-start prompt once per install on
// manufacturers that need it. It never fires again after firstLaunchSeen is
// persisted.
func (c *Controller) MaybeShowAutoStartPrompt(manufacturer string) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := Result{}
	if c.store.Bool(prefs.KeyFirstLaunchSeen) || !NeedsAutoStart(manufacturer) {
		return res, nil
	}

	if err := c.store.SetBool(prefs.KeyFirstLaunchSeen, true); err != nil {
		return res, err
	}
	c.logger.Infow("controller: auto-start prompt shown", "manufacturer", manufacturer)
	res.Signals = append(res.Signals, autoStartSignal)
	return res, nil
}
