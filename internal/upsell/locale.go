package upsell

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Locale is the user's language and country as reported with upgrade events.
type Locale struct {
	Language string
	Country  string
}

// LocaleFromEnv parses a POSIX locale value such as "de_DE.UTF-8".
// Unparseable values yield an empty Locale.
func LocaleFromEnv(value string) Locale {
	value, _, _ = strings.Cut(value, ".")
	value, _, _ = strings.Cut(value, "@")
	if value == "" || value == "C" || value == "POSIX" {
		return Locale{}
	}

	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return Locale{}
	}

	var loc Locale
	if base, conf := tag.Base(); conf != language.No {
		loc.Language = display.Self.Name(base)
	}
	if region, conf := tag.Region(); conf == language.Exact {
		loc.Country = region.String()
	}
	return loc
}
