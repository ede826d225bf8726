package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/i18n"
	jwtinfra "github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/infrastructure/jwt"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestLimiter(clk clock.Clock) *RateLimiter {
	return NewRateLimiter(rate.Every(5*time.Minute), 1, clk)
}

func TestRealIP_XForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	assert.Equal(t, "1.2.3.4", realIP(req))
}

func TestRealIP_XRealIP_Fallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-Ip", "9.10.11.12")
	assert.Equal(t, "9.10.11.12", realIP(req))
}

func TestRealIP_RemoteAddr_Fallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.168.1.1:54321"
	assert.Equal(t, "192.168.1.1", realIP(req))
}

func TestRealIP_XForwardedFor_TakesPrecedenceOverXRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.1.1.1")
	req.Header.Set("X-Real-Ip", "2.2.2.2")
	assert.Equal(t, "1.1.1.1", realIP(req))
}

func TestAllow_FreshIdentityPassesOnceThenDenies(t *testing.T) {
	clk := clock.NewFixed(time.Unix(1_700_000_000, 0))
	rl := newTestLimiter(clk)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
}

func TestAllow_RefillBoundary(t *testing.T) {
	clk := clock.NewFixed(time.Unix(1_700_000_000, 0))
	rl := newTestLimiter(clk)

	assert.True(t, rl.Allow("1.2.3.4"))

	clk.Advance(299 * time.Second)
	assert.False(t, rl.Allow("1.2.3.4"))

	clk.Advance(1 * time.Second)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestAllow_DeniedAttemptsDoNotDelayRefill(t *testing.T) {
	clk := clock.NewFixed(time.Unix(1_700_000_000, 0))
	rl := newTestLimiter(clk)

	assert.True(t, rl.Allow("1.2.3.4"))

	clk.Advance(10 * time.Second)
	assert.False(t, rl.Allow("1.2.3.4"))

	clk.Advance(291 * time.Second)
	assert.True(t, rl.Allow("1.2.3.4"))
}

func TestAllow_IdentitiesAreIndependent(t *testing.T) {
	clk := clock.NewFixed(time.Unix(1_700_000_000, 0))
	rl := newTestLimiter(clk)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestLimit_DeniedRequestCarriesLocalizedEnvelope(t *testing.T) {
	clk := clock.NewFixed(time.Unix(1_700_000_000, 0))
	rl := newTestLimiter(clk)
	handler := rl.Limit(i18n.KeyRateLimitNewsletter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(loc i18n.Locale) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/newsletter/subscribe", nil)
		req.RemoteAddr = "1.2.3.4:1111"
		req = req.WithContext(context.WithValue(req.Context(), localeKey, loc))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	rec := do(i18n.LocalePL)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(i18n.LocalePL)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	var body statusEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusTooManyRequests, body.StatusCode)
	assert.Equal(t, i18n.Message(i18n.LocalePL, i18n.KeyRateLimitNewsletter), body.Message)
}

func TestLimit_OperationalStaffBypassesWithoutConsumingTokens(t *testing.T) {
	clk := clock.NewFixed(time.Unix(1_700_000_000, 0))
	rl := newTestLimiter(clk)
	handler := rl.Limit(i18n.KeyRateLimitOrder)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(role string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/orders/add-order", nil)
		req.RemoteAddr = "1.2.3.4:1111"
		ctx := context.WithValue(req.Context(), localeKey, i18n.LocaleEN)
		if role != "" {
			ctx = context.WithValue(ctx, ClaimsKey, &jwtinfra.Claims{Role: role})
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		return rec
	}

	// Repeated staff requests from the same IP all pass.
	assert.Equal(t, http.StatusOK, do(domain.RoleManager).Code)
	assert.Equal(t, http.StatusOK, do(domain.RoleEmployee).Code)
	assert.Equal(t, http.StatusOK, do(domain.RoleManager).Code)

	// The guest bucket for that IP is untouched: a guest still gets one pass.
	assert.Equal(t, http.StatusOK, do("").Code)
	assert.Equal(t, http.StatusTooManyRequests, do("").Code)
}
