// Package i18n provides the Spanish/English dictionary for UI strings.
// Translations are compiled into the binary; lookups never do I/O.
package i18n

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported UI language code.
type Lang string

const (
	Spanish Lang = "es"
	English Lang = "en"
)

// Default is the language used when nothing else matches.
const Default = Spanish

// Supported lists the recognized languages in preference order.
var Supported = []Lang{Spanish, English}

var matcher = language.NewMatcher([]language.Tag{language.Spanish, language.English})

// ParseLang returns the Lang for s and whether it was recognized.
func ParseLang(s string) (Lang, bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(s))) {
	case Spanish:
		return Spanish, true
	case English:
		return English, true
	}
	return Default, false
}

// Tag returns the x/text language tag for l.
func (l Lang) Tag() language.Tag {
	if l == English {
		return language.English
	}
	return language.Spanish
}

// Translator looks up strings for a single language.
type Translator struct {
	lang Lang
}

// New returns a translator for lang. Unknown languages fall back to Default.
func New(lang Lang) Translator {
	if _, ok := messages[lang]; !ok {
		lang = Default
	}
	return Translator{lang: lang}
}

// Lang returns the translator's language.
func (t Translator) Lang() Lang {
	return t.lang
}

// T returns the display string for key, or key itself when it is missing.
func (t Translator) T(key string) string {
	if s, ok := messages[t.lang][key]; ok && s != "" {
		return s
	}
	return key
}

// Has reports whether key exists for the translator's language.
func (t Translator) Has(key string) bool {
	_, ok := messages[t.lang][key]
	return ok
}

// Keys returns every dictionary key, sorted.
func Keys() []string {
	return slices.Sorted(maps.Keys(messages[Default]))
}

// Dictionary returns a copy of the strings for lang.
func Dictionary(lang Lang) map[string]string {
	return maps.Clone(messages[New(lang).lang])
}

// Negotiate picks the UI language. An explicit query value wins, then the
// cookie, then the Accept-Language header, then Default.
func Negotiate(query, cookie, acceptLanguage string) Lang {
	if l, ok := ParseLang(query); ok {
		return l
	}
	if l, ok := ParseLang(cookie); ok {
		return l
	}
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}
