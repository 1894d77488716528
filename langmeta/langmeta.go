// Package langmeta provides the registry of supported language tags.
//
// The list is used only to validate the --show-lang selector and to show
// display names in CLI output; it never restricts which language tags may
// appear in the data being validated.
package langmeta

import "strings"

// Meta describes language display metadata.
type Meta struct {
	Name string
}

// supported is the fixed supported-tag list, in canonical order.
var supported = []string{
	"en-US", "de-DE", "fr-FR", "nl-NL", "it-IT", "es-ES", "pt-BR",
	"pl-PL", "tr-TR", "ar-001", "zh-Hans", "zh-Hant", "hi-Latn",
	"vi-VN", "th-TH", "id-ID", "cs-CZ", "da-DK", "sv-SE", "ru-RU",
	"lv-LV", "et-EE", "no-NO",
}

// Registry contains metadata for every supported tag.
var Registry = map[string]Meta{
	"en-US":   {Name: "English (US)"},
	"de-DE":   {Name: "Deutsch"},
	"fr-FR":   {Name: "Français"},
	"nl-NL":   {Name: "Nederlands"},
	"it-IT":   {Name: "Italiano"},
	"es-ES":   {Name: "Español"},
	"pt-BR":   {Name: "Português (Brasil)"},
	"pl-PL":   {Name: "Polski"},
	"tr-TR":   {Name: "Türkçe"},
	"ar-001":  {Name: "العربية"},
	"zh-Hans": {Name: "简体中文"},
	"zh-Hant": {Name: "繁體中文"},
	"hi-Latn": {Name: "Hinglish"},
	"vi-VN":   {Name: "Tiếng Việt"},
	"th-TH":   {Name: "ไทย"},
	"id-ID":   {Name: "Bahasa Indonesia"},
	"cs-CZ":   {Name: "Čeština"},
	"da-DK":   {Name: "Dansk"},
	"sv-SE":   {Name: "Svenska"},
	"ru-RU":   {Name: "Русский"},
	"lv-LV":   {Name: "Latviešu"},
	"et-EE":   {Name: "Eesti"},
	"no-NO":   {Name: "Norsk"},
}

// Supported returns the supported tags in canonical order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether tag is in the supported list.
func IsSupported(tag string) bool {
	_, ok := Registry[tag]
	return ok
}

// canonicalize normalizes separator and case variants (ru_ru -> ru-RU).
// Script subtags keep their title case (zh-hans -> zh-Hans).
func canonicalize(tag string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if normalized == "" {
		return ""
	}
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		switch len(parts[1]) {
		case 2:
			parts[1] = strings.ToUpper(parts[1])
		case 4:
			parts[1] = strings.ToUpper(parts[1][:1]) + strings.ToLower(parts[1][1:])
		}
	}
	return strings.Join(parts, "-")
}

// Resolve returns the canonical supported tag for case and separator
// variants (ru_ru -> ru-RU), or "" when the tag is not supported.
func Resolve(tag string) string {
	if IsSupported(tag) {
		return tag
	}
	normalized := canonicalize(tag)
	if IsSupported(normalized) {
		return normalized
	}
	// Bare base language: match the first supported tag with that base.
	base := strings.SplitN(normalized, "-", 2)[0]
	for _, s := range supported {
		if strings.SplitN(s, "-", 2)[0] == base {
			return s
		}
	}
	return ""
}
