package handler

import (
	"encoding/json"
	"net/http"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/application/recruitment"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// JobHandler handles job-offer applications.
type JobHandler struct {
	svc recruitment.Service
}

func NewJobHandler(svc recruitment.Service) *JobHandler {
	return &JobHandler{svc: svc}
}

func (h *JobHandler) AddApplication(w http.ResponseWriter, r *http.Request) {
	var req domain.AddJobApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	a, err := h.svc.Apply(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, DataEnvelope{Data: a})
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, DataEnvelope{Data: a})
}
