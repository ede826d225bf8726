package handler

import (
	"encoding/json"
	"net/http"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/application/promotion"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// PromotionHandler handles discount-code management and redemption lookups.
type PromotionHandler struct {
	svc promotion.Service
}

func NewPromotionHandler(svc promotion.Service) *PromotionHandler {
	return &PromotionHandler{svc: svc}
}

func (h *PromotionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDiscountCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	code, err := h.svc.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, DataEnvelope{Data: code})
}

func (h *PromotionHandler) Get(w http.ResponseWriter, r *http.Request) {
	code, err := h.svc.Get(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Data: code})
}

func (h *PromotionHandler) List(w http.ResponseWriter, r *http.Request) {
	codes, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Data: codes})
}

func (h *PromotionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateDiscountCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	code, err := h.svc.Update(r.Context(), chi.URLParam(r, "code"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Data: code})
}

func (h *PromotionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "code")); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "discount code deleted")
}
