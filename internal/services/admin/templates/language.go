package templates

import (
	admini18n "github.com/louisbranch/conectareparo/internal/services/admin/i18n"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the dashboard.
type LanguageOption = admini18n.LanguageOption

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext, loc Localizer) []LanguageOption {
	return admini18n.LanguageOptions(page.Lang, func(tag language.Tag) string {
		return T(loc, admini18n.LanguageKeyLabel(tag))
	})
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	return admini18n.LanguageURL(page.CurrentPath, page.CurrentQuery, tag)
}
