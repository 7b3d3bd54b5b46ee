package middleware

import (
	"context"
	"net/http"

	"vet-care-assistant/internal/i18n"
)

type ctxKey string

const langKey ctxKey = "lang"

// LangContext resuelve el idioma activo del request y lo deja en el context:
// - ?lang=en|ta tiene prioridad
// - luego Accept-Language
// - si nada aplica => def
// Los handlers lo leen con GetLanguage; nunca falla.
func LangContext(def i18n.Language) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := i18n.Resolve(
				r.URL.Query().Get("lang"),
				r.Header.Get("Accept-Language"),
				def,
			)

			w.Header().Set("Content-Language", string(lang))

			ctx := context.WithValue(r.Context(), langKey, lang)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLanguage devuelve el idioma del request (EN si el middleware no corrió).
func GetLanguage(ctx context.Context) i18n.Language {
	if v, ok := ctx.Value(langKey).(i18n.Language); ok {
		return v
	}
	return i18n.EN
}

// WithLanguage es útil en tests y en flujos fuera de HTTP.
func WithLanguage(ctx context.Context, lang i18n.Language) context.Context {
	return context.WithValue(ctx, langKey, lang)
}
