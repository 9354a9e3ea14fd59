package config

import (
	"testing"

	"github.com/leonelquinteros/gotext"
)

func TestInitLocale(t *testing.T) {
	t.Cleanup(func() {
		Config{LocalesDir: "../../../locales", Locale: "en_US"}.InitLocale()
	})

	Config{LocalesDir: "../../../locales", Locale: "fr_FR"}.InitLocale()
	if got := gotext.Get("Lives:"); got != "Vies :" {
		t.Errorf("Get(Lives:) = %q, want %q", got, "Vies :")
	}
	if got := gotext.Get("not in the catalog"); got != "not in the catalog" {
		t.Errorf("Get of an unknown id = %q, want the id", got)
	}

	Config{LocalesDir: "../../../locales", Locale: "en_US"}.InitLocale()
	if got := gotext.Get("Lives:"); got != "Lives:" {
		t.Errorf("Get(Lives:) = %q in English", got)
	}
}
