package handler

import (
	"encoding/json"
	"net/http"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/application/newsletter"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/i18n"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/validate"
)

// NewsletterHandler handles the subscription lifecycle endpoints.
type NewsletterHandler struct {
	svc newsletter.Service
}

func NewNewsletterHandler(svc newsletter.Service) *NewsletterHandler {
	return &NewsletterHandler{svc: svc}
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	loc := locale(r)
	var req domain.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.Subscribe(r.Context(), req, loc); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, i18n.Message(loc, i18n.KeySubscribed))
}

func (h *NewsletterHandler) VerifySubscription(w http.ResponseWriter, r *http.Request) {
	loc := locale(r)
	var req domain.VerifySubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.Verify(r.Context(), req, loc); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, i18n.Message(loc, i18n.KeyVerified))
}

func (h *NewsletterHandler) RegenerateOtp(w http.ResponseWriter, r *http.Request) {
	loc := locale(r)
	var req domain.RegenerateOtpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.RegenerateOtp(r.Context(), req, loc); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, i18n.Message(loc, i18n.KeyRegenerated))
}

func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	loc := locale(r)
	var req domain.UnsubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err := h.svc.Unsubscribe(r.Context(), req, loc); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, i18n.Message(loc, i18n.KeyUnsubscribed))
}
