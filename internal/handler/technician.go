package handler

import (
	"encoding/json"
	"net/http"

	"fixly/internal/compliance"
	"fixly/internal/domain"
	"fixly/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TechnicianHandler struct {
	service *compliance.Service
	logger  logger.Logger
}

func NewTechnicianHandler(service *compliance.Service, log logger.Logger) *TechnicianHandler {
	return &TechnicianHandler{
		service: service,
		logger:  log,
	}
}

// Upsert adds a technician to the roster, or updates one when the payload
// carries an ID.
func (h *TechnicianHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	providerID, ok := providerIDFromPath(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}

	var req domain.UpsertTechnicianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tech, err := h.service.UpsertTechnician(r.Context(), providerID, &req)
	if err != nil {
		h.respondServiceError(w, err, "Failed to upsert technician")
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}
	h.respondJSON(w, status, tech)
}

// Deactivate soft-deletes a roster member. The technician immediately stops
// counting toward service eligibility.
func (h *TechnicianHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	providerID, ok := providerIDFromPath(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}

	technicianID, err := uuid.Parse(mux.Vars(r)["technicianId"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid technician id")
		return
	}

	if err := h.service.DeactivateTechnician(r.Context(), providerID, technicianID); err != nil {
		h.respondServiceError(w, err, "Failed to deactivate technician")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{"message": "technician deactivated"})
}

// Helpers (shared error mapping lives in compliance.go)

func (h *TechnicianHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("json encode failed", map[string]interface{}{"error": err.Error()})
	}
}

func (h *TechnicianHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

func (h *TechnicianHandler) respondServiceError(w http.ResponseWriter, err error, logMessage string) {
	ch := ComplianceHandler{logger: h.logger}
	ch.respondServiceError(w, err, logMessage)
}
