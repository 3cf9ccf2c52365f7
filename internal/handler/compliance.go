package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"fixly/internal/compliance"
	"fixly/internal/domain"
	fixlyerrors "fixly/pkg/errors"
	"fixly/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ComplianceHandler struct {
	service *compliance.Service
	logger  logger.Logger
}

func NewComplianceHandler(service *compliance.Service, log logger.Logger) *ComplianceHandler {
	return &ComplianceHandler{
		service: service,
		logger:  log,
	}
}

// GetSummary serves the dashboard aggregate: overall status, per-item
// statuses, roster, and the gate decision for every service category.
func (h *ComplianceHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	providerID, ok := providerIDFromPath(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}

	summary, err := h.service.GetComplianceSummary(r.Context(), providerID)
	if err != nil {
		h.respondServiceError(w, err, "Failed to build compliance summary")
		return
	}

	h.respondJSON(w, http.StatusOK, summary)
}

// UpsertItem declares or updates a regulatory registration.
func (h *ComplianceHandler) UpsertItem(w http.ResponseWriter, r *http.Request) {
	providerID, ok := providerIDFromPath(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}

	var req domain.UpsertComplianceItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.UpsertComplianceItem(r.Context(), providerID, &req)
	if err != nil {
		h.respondServiceError(w, err, "Failed to upsert compliance item")
		return
	}

	h.respondJSON(w, http.StatusOK, item)
}

// AutoCreateItems seeds the mandatory registration records for a provider
// entering the compliance flow.
func (h *ComplianceHandler) AutoCreateItems(w http.ResponseWriter, r *http.Request) {
	providerID, ok := providerIDFromPath(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}

	created, err := h.service.AutoCreateComplianceItems(r.Context(), providerID)
	if err != nil {
		h.respondServiceError(w, err, "Failed to auto-create compliance items")
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"created": created,
		"count":   len(created),
	})
}

// UpsertPolicy declares or updates coverage in one insurance category.
func (h *ComplianceHandler) UpsertPolicy(w http.ResponseWriter, r *http.Request) {
	providerID, ok := providerIDFromPath(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}

	var req domain.UpsertInsurancePolicyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	policy, err := h.service.UpsertInsurancePolicy(r.Context(), providerID, &req)
	if err != nil {
		h.respondServiceError(w, err, "Failed to upsert insurance policy")
		return
	}

	h.respondJSON(w, http.StatusOK, policy)
}

// CheckEligibility answers the per-action gate question for one service
// category, e.g. before a quote is created.
func (h *ComplianceHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	providerID, ok := providerIDFromPath(r)
	if !ok {
		h.respondError(w, http.StatusBadRequest, "invalid provider id")
		return
	}

	serviceType := domain.ServiceType(mux.Vars(r)["serviceType"])
	result, err := h.service.CheckServiceEligibility(r.Context(), providerID, serviceType)
	if err != nil {
		h.respondServiceError(w, err, "Failed to evaluate service eligibility")
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"service_type": serviceType,
		"allowed":      result.Allowed,
		"reason":       result.Reason,
	})
}

// Helpers

func providerIDFromPath(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["providerId"])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func (h *ComplianceHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("json encode failed", map[string]interface{}{"error": err.Error()})
	}
}

func (h *ComplianceHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps service errors onto HTTP statuses: structured
// validation failures become 400 with per-field details, missing entities
// become 404, everything else is a 500.
func (h *ComplianceHandler) respondServiceError(w http.ResponseWriter, err error, logMessage string) {
	var verrs compliance.ValidationErrors
	if errors.As(err, &verrs) {
		h.respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": verrs,
		})
		return
	}

	switch {
	case errors.Is(err, fixlyerrors.ErrUnknownServiceType):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, fixlyerrors.ErrProviderNotFound),
		errors.Is(err, fixlyerrors.ErrTechnicianNotFound),
		errors.Is(err, fixlyerrors.ErrItemNotFound),
		errors.Is(err, fixlyerrors.ErrPolicyNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, fixlyerrors.ErrProviderInactive),
		errors.Is(err, fixlyerrors.ErrNothingToReview),
		errors.Is(err, fixlyerrors.ErrAlreadyRejected):
		h.respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error(logMessage, map[string]interface{}{"error": err.Error()})
		h.respondError(w, http.StatusInternalServerError, logMessage)
	}
}
