package site

import (
	"golang.org/x/text/language"
)

const DefaultLocale = "fa"

// locales is ordered so that the matcher falls back to the default.
var locales = []string{"fa", "en"}

var matcher = language.NewMatcher([]language.Tag{
	language.Persian,
	language.English,
})

// Negotiate picks the supported locale that best fits an Accept-Language
// header, falling back to DefaultLocale.
func Negotiate(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return locales[idx]
}

func Supported(lang string) bool {
	for _, l := range locales {
		if l == lang {
			return true
		}
	}
	return false
}

// Dir is the text direction of a locale.
func Dir(lang string) string {
	if lang == "fa" {
		return "rtl"
	}
	return "ltr"
}
