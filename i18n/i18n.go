// Package i18n provides internationalization support for loccheck itself.
//
// It wraps the gotext library to provide simple T() and N() functions
// for translating loccheck's user-facing summary strings. Translations
// are embedded in the binary via //go:embed and loaded at startup via
// Init(). Diagnostic messages are NOT translated: their text is part of
// the tool's stable output contract.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// locales embeds the translation catalogs.
// Directory structure: locales/{lang}/LC_MESSAGES/loccheck.po
//
//go:embed all:locales
var locales embed.FS

// domain is the gettext domain name for loccheck.
const domain = "loccheck"

// po is the gotext locale object used for translations.
var po *gotext.Locale

// Init initializes the i18n system. If lang is empty, it auto-detects
// from the environment variables LANGUAGE, LC_ALL, LC_MESSAGES, LANG
// (in that order, matching GNU gettext behavior).
//
// Init should be called once at program startup, before any T() or N()
// calls.
func Init(lang string) {
	if lang == "" {
		lang = detectLanguage()
	}

	po = gotext.NewLocaleFSWithPath(lang, locales, "locales")
	po.AddDomain(domain)
	po.SetDomain(domain)
}

// T translates a string, formatting it with vars when any are given.
// If no translation is available, the original string is returned
// (standard gettext passthrough behavior).
func T(msgid string, vars ...interface{}) string {
	if po == nil {
		if len(vars) == 0 {
			return msgid
		}
		return fmt.Sprintf(msgid, vars...)
	}
	return po.Get(msgid, vars...)
}

// N translates a string with plural forms. The singular form is used
// when n == 1, the plural form otherwise (exact rules depend on the
// target language's plural formula).
func N(singular, plural string, n int, vars ...interface{}) string {
	if po == nil {
		form := plural
		if n == 1 {
			form = singular
		}
		if len(vars) == 0 {
			return form
		}
		return fmt.Sprintf(form, vars...)
	}
	return po.GetN(singular, plural, n, vars...)
}

// detectLanguage reads environment variables to determine the user's
// preferred language, following GNU gettext conventions.
func detectLanguage() string {
	// GNU gettext priority: LANGUAGE > LC_ALL > LC_MESSAGES > LANG
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if val := os.Getenv(env); val != "" {
			// LANGUAGE can be a colon-separated list; take the first
			if env == "LANGUAGE" {
				parts := strings.SplitN(val, ":", 2)
				val = parts[0]
			}
			// Strip encoding suffix (e.g. "ru_RU.UTF-8" -> "ru_RU")
			if idx := strings.IndexByte(val, '.'); idx >= 0 {
				val = val[:idx]
			}
			// Skip "C" and "POSIX" — these mean no translation
			if val == "C" || val == "POSIX" || val == "" {
				continue
			}
			return val
		}
	}
	return "en"
}
