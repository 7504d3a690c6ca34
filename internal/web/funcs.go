package web

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/cnk-ceneka/cnk/internal/i18n"
	"github.com/cnk-ceneka/cnk/internal/property"
)

var funcMap = template.FuncMap{
	"enum":    enumText,
	"num":     formatNumber,
	"area":    formatArea,
	"add":     func(a, b int) int { return a + b },
	"join":    strings.Join,
	"langURL": langURL,
	"contactURL": func(id int64) string {
		return "/contact?property=" + strconv.FormatInt(id, 10)
	},
}

// enumText shows an enum in the page language.
func enumText(e property.Enum, t i18n.Translator) string {
	return e.Translate(t.T)
}

// formatNumber drops a trailing ".0" so 2.0 baths reads "2".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatArea renders square meters, or an empty string when unknown.
func formatArea(f float64) string {
	if f <= 0 {
		return ""
	}
	return formatNumber(f) + " m²"
}

// langURL links the current path in another language.
func langURL(path string, lang i18n.Lang) string {
	if path == "" {
		path = "/"
	}
	return path + "?lang=" + string(lang)
}
