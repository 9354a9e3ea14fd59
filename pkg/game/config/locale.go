package config

import (
	"github.com/leonelquinteros/gotext"
)

// Domain is the gettext domain of the catalogs
const Domain = "default"

// InitLocale loads the message catalog of the configured locale. Message ids
// are the English texts, so a missing catalog falls back to English.
func (c Config) InitLocale() {
	gotext.Configure(c.LocalesDir, c.Locale, Domain)
}
