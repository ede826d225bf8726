package middleware

import (
	"context"
	"net/http"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/i18n"
)

const localeKey contextKey = "locale"

// Locale validates the Accept-Language header and injects the resolved locale
// into the request context. Requests without a supported language are rejected
// with 400 before any quota or business logic runs.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc, err := i18n.ResolveAcceptLanguage(r.Header.Get("Accept-Language"))
		if err != nil {
			writeStatusJSON(w, http.StatusBadRequest,
				"unsupported or missing Accept-Language header, supported languages: en, pl")
			return
		}
		ctx := context.WithValue(r.Context(), localeKey, loc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LocaleFromContext extracts the resolved locale. Handlers behind the Locale
// middleware may assume ok; English is the fallback elsewhere.
func LocaleFromContext(ctx context.Context) (i18n.Locale, bool) {
	loc, ok := ctx.Value(localeKey).(i18n.Locale)
	return loc, ok
}
