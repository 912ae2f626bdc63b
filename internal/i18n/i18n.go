// Package i18n serves the storefront's UI strings in English, Spanish and
// Portuguese.
package i18n

import (
	"golang.org/x/text/language"
)

// Supported language codes.
const (
	English    = "en"
	Spanish    = "es"
	Portuguese = "pt"
)

// Default is the fallback language for missing keys and unknown languages.
const Default = English

var supported = []string{English, Spanish, Portuguese}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Spanish,
	language.Portuguese,
})

// Supported lists the language codes with a translation table.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether lang has its own table.
func IsSupported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Translate looks key up in lang, then in English, and finally returns key
// itself.
func Translate(lang, key string) string {
	if value, ok := tables[lang][key]; ok && value != "" {
		return value
	}
	if value, ok := tables[Default][key]; ok && value != "" {
		return value
	}
	return key
}

// Table returns every English key translated into lang.
func Table(lang string) map[string]string {
	out := make(map[string]string, len(tables[Default]))
	for key := range tables[Default] {
		out[key] = Translate(lang, key)
	}
	return out
}

// Match picks the best supported language for an Accept-Language header.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return supported[index]
}
