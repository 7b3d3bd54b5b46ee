package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language es el tag de idioma activo.
// @Enum en, ta
type Language string

const (
	EN Language = "en"
	TA Language = "ta"
)

// Supported en orden de preferencia; el primero es el default del matcher.
var Supported = []Language{EN, TA}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Tamil,
})

func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en":
		return EN, true
	case "ta":
		return TA, true
	default:
		return "", false
	}
}

// Resolve decide el idioma de un request:
// 1) query explícita (?lang=)
// 2) header Accept-Language
// 3) def (si def tampoco es válido => EN)
func Resolve(query, acceptLanguage string, def Language) Language {
	if l, ok := ParseLanguage(query); ok {
		return l
	}

	if strings.TrimSpace(acceptLanguage) != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No && idx >= 0 && idx < len(Supported) {
				return Supported[idx]
			}
		}
	}

	if l, ok := ParseLanguage(string(def)); ok {
		return l
	}
	return EN
}

// Text es un string bilingüe.
type Text struct {
	EN string
	TA string
}

// In devuelve la traducción; si falta, cae a inglés.
func (t Text) In(lang Language) string {
	if lang == TA && t.TA != "" {
		return t.TA
	}
	return t.EN
}

// Texts es una lista bilingüe (mismo orden en ambos idiomas).
type Texts struct {
	EN []string
	TA []string
}

// In devuelve una copia, nunca nil.
func (t Texts) In(lang Language) []string {
	src := t.EN
	if lang == TA && len(t.TA) > 0 {
		src = t.TA
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
