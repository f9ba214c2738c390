// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultLanguage is used when a requested language has no table.
const DefaultLanguage = "en"

// supported lists language codes in menu order.
var supported = []string{"en", "hi", "bn", "gu", "pa", "kn", "ml", "or", "ur", "ta", "te"}

// nativeNames are the names shown in the language picker.
var nativeNames = map[string]string{
	"en": "English",
	"hi": "हिन्दी",
	"bn": "বাংলা",
	"gu": "ગુજરાતી",
	"pa": "ਪੰਜਾਬੀ",
	"kn": "ಕನ್ನಡ",
	"ml": "മലയാളം",
	"or": "ଓଡ଼ିଆ",
	"ur": "اردو",
	"ta": "தமிழ்",
	"te": "తెలుగు",
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, code := range supported {
		tags[i] = language.Make(code)
	}
	return language.NewMatcher(tags)
}()

// =============================================================================
// LOOKUP
// =============================================================================

// T returns the string for key in lang. Missing translations fall back to
// English, then to the key itself.
func T(lang, key string) string {
	if s, ok := tables[lang][key]; ok {
		return s
	}
	if s, ok := tables[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// Tf formats the string for key in lang with args.
func Tf(lang, key string, args ...interface{}) string {
	return fmt.Sprintf(T(lang, key), args...)
}

// =============================================================================
// LANGUAGE SELECTION
// =============================================================================

// Supported returns the supported language codes in menu order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether code has a string table.
func IsSupported(code string) bool {
	_, ok := tables[code]
	return ok
}

// Match returns the supported language closest to a BCP 47 or POSIX style
// tag such as "hi-IN", "en_GB" or "ta_IN.UTF-8". Unrecognized input yields
// DefaultLanguage.
func Match(tag string) string {
	tag = strings.TrimSpace(tag)
	if i := strings.IndexAny(tag, ".@"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ReplaceAll(tag, "_", "-")
	if tag == "" {
		return DefaultLanguage
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return DefaultLanguage
	}
	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return DefaultLanguage
	}
	return supported[index]
}

// DisplayName returns the name of a language in that language, for example
// "தமிழ்" for "ta". Codes outside the supported set are named from CLDR
// data; unparseable codes are returned unchanged.
func DisplayName(code string) string {
	if name, ok := nativeNames[code]; ok {
		return name
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}

// FormatLanguageList renders "code  name" lines, marking current with "*".
func FormatLanguageList(current string) string {
	var sb strings.Builder
	for _, code := range supported {
		marker := " "
		if code == current {
			marker = "*"
		}
		fmt.Fprintf(&sb, "%s %-3s %s\n", marker, code, DisplayName(code))
	}
	return sb.String()
}
