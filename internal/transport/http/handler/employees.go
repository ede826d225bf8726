package handler

import (
	"encoding/json"
	"net/http"

	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/application/auth"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/domain"
	"github.com/P4ZD4N/miesiany-miesiany-kebab-sub000/internal/pkg/validate"
)

// EmployeeHandler handles staff account management (manager only).
type EmployeeHandler struct {
	svc auth.Service
}

func NewEmployeeHandler(svc auth.Service) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeMessage(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	emp, err := h.svc.CreateEmployee(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, DataEnvelope{Data: emp})
}
