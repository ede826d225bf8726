package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/i18n"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/transport/http/middleware"
)

// StatusEnvelope is the public wire contract: every response on the guest
// surface carries the HTTP status code and a human-readable message.
type StatusEnvelope struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

// AuthEnvelope wraps login responses.
type AuthEnvelope struct {
	Bearer   string           `json:"Bearer,omitempty"`
	Employee *domain.Employee `json:"employee,omitempty"`
}

// DataEnvelope wraps staff-facing resource responses.
type DataEnvelope struct {
	Data interface{} `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeMessage emits the {status_code, message} envelope for both success and
// error outcomes.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, StatusEnvelope{StatusCode: status, Message: msg})
}

// locale returns the request's resolved locale, falling back to English on
// routes that sit outside the Locale middleware.
func locale(r *http.Request) i18n.Locale {
	if loc, ok := middleware.LocaleFromContext(r.Context()); ok {
		return loc
	}
	return i18n.LocaleEN
}

// writeError maps a service error onto the wire contract with a message
// localized to the request. Cooldown rejections additionally carry a
// Retry-After header so clients know when to come back. Anything outside the
// domain taxonomy is logged and reported as a generic internal error; raw
// error text never reaches the client on that path.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	loc := locale(r)

	var cooldown *domain.OtpCooldownError
	if errors.As(err, &cooldown) {
		retry := int(math.Ceil(cooldown.RetryAfter.Seconds()))
		w.Header().Set("Retry-After", strconv.Itoa(retry))
		writeMessage(w, http.StatusTooManyRequests, i18n.Messagef(loc, i18n.KeyErrOtpCooldown, retry))
		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		writeMessage(w, status, i18n.Message(loc, i18n.KeyErrInternal))
		return
	}
	writeMessage(w, status, i18n.Message(loc, messageKeyFor(err)))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDiscountCodeExpired):
		return http.StatusGone
	case errors.Is(err, domain.ErrOtpRegenerationTooSoon):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// messageKeyFor picks the localized message for a taxonomy error. Feature
// sentinels are matched before the generic ones they wrap.
func messageKeyFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrSubscriberAlreadyExists):
		return i18n.KeyErrSubscriberExists
	case errors.Is(err, domain.ErrSubscriberNotFound):
		return i18n.KeyErrSubscriberNotFound
	case errors.Is(err, domain.ErrOtpMismatch):
		return i18n.KeyErrOtpMismatch
	case errors.Is(err, domain.ErrOtpExpired):
		return i18n.KeyErrOtpExpired
	case errors.Is(err, domain.ErrDiscountCodeAlreadyExists):
		return i18n.KeyErrDiscountExists
	case errors.Is(err, domain.ErrDiscountCodeNotFound):
		return i18n.KeyErrDiscountNotFound
	case errors.Is(err, domain.ErrDiscountCodeExpired):
		return i18n.KeyErrDiscountExpired
	case errors.Is(err, domain.ErrBadRequest):
		return i18n.KeyErrBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return i18n.KeyErrUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return i18n.KeyErrForbidden
	case errors.Is(err, domain.ErrNotFound):
		return i18n.KeyErrNotFound
	case errors.Is(err, domain.ErrConflict):
		return i18n.KeyErrConflict
	default:
		return i18n.KeyErrInternal
	}
}
