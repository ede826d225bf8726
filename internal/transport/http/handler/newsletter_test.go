package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/i18n"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockNewsletterService struct {
	mock.Mock
}

func (m *mockNewsletterService) Subscribe(ctx context.Context, req domain.SubscribeRequest, loc i18n.Locale) error {
	return m.Called(ctx, req, loc).Error(0)
}

func (m *mockNewsletterService) Verify(ctx context.Context, req domain.VerifySubscriptionRequest, loc i18n.Locale) error {
	return m.Called(ctx, req, loc).Error(0)
}

func (m *mockNewsletterService) RegenerateOtp(ctx context.Context, req domain.RegenerateOtpRequest, loc i18n.Locale) error {
	return m.Called(ctx, req, loc).Error(0)
}

func (m *mockNewsletterService) Unsubscribe(ctx context.Context, req domain.UnsubscribeRequest, loc i18n.Locale) error {
	return m.Called(ctx, req, loc).Error(0)
}

// do routes the request through the Locale middleware so the handler sees the
// same context as in production.
func do(h http.HandlerFunc, method, target, acceptLanguage, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if acceptLanguage != "" {
		req.Header.Set("Accept-Language", acceptLanguage)
	}
	rr := httptest.NewRecorder()
	middleware.Locale(h).ServeHTTP(rr, req)
	return rr
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) StatusEnvelope {
	t.Helper()
	var env StatusEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestSubscribe_Success_LocalizedMessage(t *testing.T) {
	svc := new(mockNewsletterService)
	svc.On("Subscribe", mock.Anything, domain.SubscribeRequest{Email: "guest@example.com", FirstName: "Ala"}, i18n.LocalePL).
		Return(nil)
	h := NewNewsletterHandler(svc)

	rr := do(h.Subscribe, http.MethodPost, "/newsletter/subscribe", "pl",
		`{"email":"guest@example.com","first_name":"Ala"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, i18n.Message(i18n.LocalePL, i18n.KeySubscribed), env.Message)
	svc.AssertExpectations(t)
}

func TestSubscribe_InvalidBody(t *testing.T) {
	svc := new(mockNewsletterService)
	h := NewNewsletterHandler(svc)

	rr := do(h.Subscribe, http.MethodPost, "/newsletter/subscribe", "en", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Subscribe")
}

func TestSubscribe_ValidationFailure(t *testing.T) {
	svc := new(mockNewsletterService)
	h := NewNewsletterHandler(svc)

	rr := do(h.Subscribe, http.MethodPost, "/newsletter/subscribe", "en",
		`{"email":"not-an-email","first_name":"Ala"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	svc.AssertNotCalled(t, "Subscribe")
}

func TestSubscribe_Conflict(t *testing.T) {
	svc := new(mockNewsletterService)
	svc.On("Subscribe", mock.Anything, mock.Anything, i18n.LocaleEN).
		Return(domain.ErrSubscriberAlreadyExists)
	h := NewNewsletterHandler(svc)

	rr := do(h.Subscribe, http.MethodPost, "/newsletter/subscribe", "en",
		`{"email":"guest@example.com","first_name":"Ala"}`)

	require.Equal(t, http.StatusConflict, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.Equal(t, http.StatusConflict, env.StatusCode)
}

func TestSubscribe_MissingAcceptLanguage(t *testing.T) {
	svc := new(mockNewsletterService)
	h := NewNewsletterHandler(svc)

	rr := do(h.Subscribe, http.MethodPost, "/newsletter/subscribe", "",
		`{"email":"guest@example.com","first_name":"Ala"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Subscribe")
}

func TestVerifySubscription_OtpMismatch(t *testing.T) {
	svc := new(mockNewsletterService)
	svc.On("Verify", mock.Anything, mock.Anything, i18n.LocaleEN).
		Return(domain.ErrOtpMismatch)
	h := NewNewsletterHandler(svc)

	rr := do(h.VerifySubscription, http.MethodPut, "/newsletter/verify-subscription", "en",
		`{"email":"guest@example.com","otp_code":123456}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestVerifySubscription_OtpOutOfRange(t *testing.T) {
	svc := new(mockNewsletterService)
	h := NewNewsletterHandler(svc)

	rr := do(h.VerifySubscription, http.MethodPut, "/newsletter/verify-subscription", "en",
		`{"email":"guest@example.com","otp_code":99999}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	svc.AssertNotCalled(t, "Verify")
}

func TestRegenerateOtp_CooldownCarriesRetryAfter(t *testing.T) {
	svc := new(mockNewsletterService)
	svc.On("RegenerateOtp", mock.Anything, mock.Anything, i18n.LocaleEN).
		Return(&domain.OtpCooldownError{Cooldown: 5 * time.Minute, RetryAfter: 200 * time.Second})
	h := NewNewsletterHandler(svc)

	rr := do(h.RegenerateOtp, http.MethodPut, "/newsletter/regenerate-otp", "en",
		`{"email":"guest@example.com"}`)

	require.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "200", rr.Header().Get("Retry-After"))
	env := decodeEnvelope(t, rr)
	assert.Equal(t, http.StatusTooManyRequests, env.StatusCode)
	assert.Equal(t, i18n.Messagef(i18n.LocaleEN, i18n.KeyErrOtpCooldown, 200), env.Message)
}

func TestVerifySubscription_ErrorMessageFollowsRequestLocale(t *testing.T) {
	svc := new(mockNewsletterService)
	svc.On("Verify", mock.Anything, mock.Anything, i18n.LocalePL).
		Return(domain.ErrOtpMismatch)
	h := NewNewsletterHandler(svc)

	rr := do(h.VerifySubscription, http.MethodPut, "/newsletter/verify-subscription", "pl",
		`{"email":"guest@example.com","otp_code":123456}`)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.Equal(t, i18n.Message(i18n.LocalePL, i18n.KeyErrOtpMismatch), env.Message)
}

func TestSubscribe_StoreFailureIsGenericAndHidesDetail(t *testing.T) {
	svc := new(mockNewsletterService)
	svc.On("Subscribe", mock.Anything, mock.Anything, i18n.LocaleEN).
		Return(errors.New("operation error DynamoDB: PutItem, https response error StatusCode: 500, RequestID: ABC123"))
	h := NewNewsletterHandler(svc)

	rr := do(h.Subscribe, http.MethodPost, "/newsletter/subscribe", "en",
		`{"email":"guest@example.com","first_name":"Ala"}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.Equal(t, i18n.Message(i18n.LocaleEN, i18n.KeyErrInternal), env.Message)
	assert.NotContains(t, rr.Body.String(), "RequestID")
	assert.NotContains(t, rr.Body.String(), "DynamoDB")
}

func TestUnsubscribe_NotFound(t *testing.T) {
	svc := new(mockNewsletterService)
	svc.On("Unsubscribe", mock.Anything, mock.Anything, i18n.LocaleEN).
		Return(domain.ErrSubscriberNotFound)
	h := NewNewsletterHandler(svc)

	rr := do(h.Unsubscribe, http.MethodPost, "/newsletter/unsubscribe", "en",
		`{"email":"guest@example.com"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
