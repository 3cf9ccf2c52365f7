package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fixly/internal/compliance"
	"fixly/internal/domain"
	"fixly/internal/middleware"
	"fixly/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// AdminHandler exposes the reviewer capabilities: the pending-review queue
// and verify/reject decisions on items and policies.
type AdminHandler struct {
	service *compliance.Service
	logger  logger.Logger
}

func NewAdminHandler(service *compliance.Service, log logger.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  log,
	}
}

// ListPendingReview returns the cross-provider queue of records awaiting a
// reviewer decision.
func (h *AdminHandler) ListPendingReview(w http.ResponseWriter, r *http.Request) {
	limit := 0
	offset := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}

	queue, err := h.service.ListPendingReview(r.Context(), limit, offset)
	if err != nil {
		h.respondServiceError(w, err, "Failed to list pending review queue")
		return
	}

	h.respondJSON(w, http.StatusOK, queue)
}

// VerifyItem records a successful review of a registration.
func (h *AdminHandler) VerifyItem(w http.ResponseWriter, r *http.Request) {
	itemID, reviewerID, ok := h.reviewIDs(w, r)
	if !ok {
		return
	}

	item, err := h.service.VerifyComplianceItem(r.Context(), itemID, reviewerID)
	if err != nil {
		h.respondServiceError(w, err, "Failed to verify compliance item")
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

// RejectItem records a failed review of a registration with a reason.
func (h *AdminHandler) RejectItem(w http.ResponseWriter, r *http.Request) {
	itemID, reviewerID, ok := h.reviewIDs(w, r)
	if !ok {
		return
	}

	var req domain.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.RejectComplianceItem(r.Context(), itemID, reviewerID, req.Reason)
	if err != nil {
		h.respondServiceError(w, err, "Failed to reject compliance item")
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

// VerifyPolicy records a successful review of a coverage declaration.
func (h *AdminHandler) VerifyPolicy(w http.ResponseWriter, r *http.Request) {
	policyID, reviewerID, ok := h.reviewIDs(w, r)
	if !ok {
		return
	}

	policy, err := h.service.VerifyInsurancePolicy(r.Context(), policyID, reviewerID)
	if err != nil {
		h.respondServiceError(w, err, "Failed to verify insurance policy")
		return
	}
	h.respondJSON(w, http.StatusOK, policy)
}

// RejectPolicy records a failed review of a coverage declaration.
func (h *AdminHandler) RejectPolicy(w http.ResponseWriter, r *http.Request) {
	policyID, reviewerID, ok := h.reviewIDs(w, r)
	if !ok {
		return
	}

	var req domain.RejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	policy, err := h.service.RejectInsurancePolicy(r.Context(), policyID, reviewerID, req.Reason)
	if err != nil {
		h.respondServiceError(w, err, "Failed to reject insurance policy")
		return
	}
	h.respondJSON(w, http.StatusOK, policy)
}

// reviewIDs extracts the target record ID from the path and the reviewer ID
// from the authenticated context.
func (h *AdminHandler) reviewIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	recordID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid record id")
		return uuid.Nil, uuid.Nil, false
	}

	reviewerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	return recordID, reviewerID, true
}

func (h *AdminHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("json encode failed", map[string]interface{}{"error": err.Error()})
	}
}

func (h *AdminHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

func (h *AdminHandler) respondServiceError(w http.ResponseWriter, err error, logMessage string) {
	ch := ComplianceHandler{logger: h.logger}
	ch.respondServiceError(w, err, logMessage)
}
