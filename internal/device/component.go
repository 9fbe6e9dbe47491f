package device

import (
	"fmt"
	"strings"
)

// Component identifies an Android service by package and class name.
type Component struct {
	Package string
	Class   string
}

// ParseComponent parses a flattened "package/class" name. A class starting
// with "." is relative to the package.
func ParseComponent(flat string) (Component, error) {
	flat = strings.TrimSpace(flat)
	pkg, cls, ok := strings.Cut(flat, "/")
	if !ok || pkg == "" || cls == "" {
		return Component{}, fmt.Errorf("invalid component name %q", flat)
	}
	if strings.HasPrefix(cls, ".") {
		cls = pkg + cls
	}
	return Component{Package: pkg, Class: cls}, nil
}

// Flatten returns the long "package/full.Class" form.
func (c Component) Flatten() string {
	return c.Package + "/" + c.Class
}

func (c Component) String() string {
	return c.Flatten()
}

// enabledServices splits the enabled_accessibility_services setting.
// The setting reads "null" when nothing was ever enabled.
func enabledServices(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ":") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// containsComponent reports whether raw lists c, comparing parsed names so
// short and long forms match.
func containsComponent(raw string, c Component) bool {
	for _, flat := range enabledServices(raw) {
		got, err := ParseComponent(flat)
		if err != nil {
			continue
		}
		if got == c {
			return true
		}
	}
	return false
}
