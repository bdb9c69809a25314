// Package i18n is the typed message catalog for the supported locales.
//
// Every (Locale, Key) pair must resolve to a non-empty string. The catalog is
// checked when the package is initialised, so a missing translation fails
// at startup and in tests instead of rendering blank text.
package i18n

import (
	"errors"
	"fmt"
	"strings"

	"unit-converter/internal/units"
)

// Locale is a supported display language.
type Locale string

const (
	English  Locale = "en"
	Korean   Locale = "ko"
	Japanese Locale = "ja"
)

// Default is used when no supported locale is requested.
const Default = English

// Locales returns the supported locales in display order.
func Locales() []Locale {
	return []Locale{English, Korean, Japanese}
}

// ParseLocale maps a language tag such as "ko-KR" to a supported Locale.
func ParseLocale(tag string) (Locale, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	base, _, _ := strings.Cut(tag, "-")
	base, _, _ = strings.Cut(base, "_")
	for _, l := range Locales() {
		if string(l) == base {
			return l, true
		}
	}
	return "", false
}

// Negotiate picks a locale from an explicit query value first and the
// Accept-Language header second, falling back to def.
func Negotiate(query, acceptLanguage string, def Locale) Locale {
	if l, ok := ParseLocale(query); ok {
		return l
	}
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag, _, _ := strings.Cut(part, ";")
		if l, ok := ParseLocale(tag); ok {
			return l
		}
	}
	return def
}

// Key identifies a translatable message.
type Key string

const (
	KeyInvalidInput       Key = "message.invalid_input"
	KeyUnknownUnit        Key = "message.unknown_unit"
	KeyUnknownCategory    Key = "message.unknown_category"
	KeyPreferenceNotFound Key = "message.preference_not_found"
)

// CategoryKey is the key of a category's display name.
func CategoryKey(c units.Category) Key {
	return Key("category." + string(c))
}

// UnitKey is the key of a unit's display label.
func UnitKey(c units.Category, id string) Key {
	return Key("unit." + string(c) + "." + id)
}

// MessageKeys lists the non-unit keys every locale must define.
func MessageKeys() []Key {
	return []Key{KeyInvalidInput, KeyUnknownUnit, KeyUnknownCategory, KeyPreferenceNotFound}
}

// RequiredKeys returns every key the catalog must define: messages, category
// names and the label of every registered unit.
func RequiredKeys() []Key {
	keys := MessageKeys()
	for _, c := range units.Categories() {
		keys = append(keys, CategoryKey(c))
		for _, u := range units.UnitsFor(c) {
			keys = append(keys, UnitKey(c, u.ID))
		}
	}
	return keys
}

// Text returns the message for key in locale l. Unsupported locales use
// English.
func Text(l Locale, key Key) string {
	msgs, ok := catalog[l]
	if !ok {
		msgs = catalog[Default]
	}
	if s, ok := msgs[key]; ok {
		return s
	}
	return catalog[Default][key]
}

// Validate reports every missing or empty translation.
func Validate() error {
	var errs []error
	for _, l := range Locales() {
		msgs := catalog[l]
		for _, k := range RequiredKeys() {
			if strings.TrimSpace(msgs[k]) == "" {
				errs = append(errs, fmt.Errorf("locale %s: missing %s", l, k))
			}
		}
	}
	return errors.Join(errs...)
}

func init() {
	if err := Validate(); err != nil {
		panic(fmt.Sprintf("i18n: incomplete catalog: %v", err))
	}
}
