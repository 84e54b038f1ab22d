package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/casemark/lead-intake/internal/infra/http/middleware"
	"github.com/casemark/lead-intake/internal/usecase"
)

// LeadHandler serves the public intake form.
type LeadHandler struct {
	CreateLeadUC *usecase.CreateLeadUseCase
	rateLimiter  *RateLimiter
}

func NewLeadHandler(uc *usecase.CreateLeadUseCase) *LeadHandler {
	return &LeadHandler{
		CreateLeadUC: uc,
		rateLimiter:  NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *LeadHandler) Capture(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	lead, fieldErrors, err := h.CreateLeadUC.Execute(r.Context(), input)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "CAPTURE_FAILED", "Failed to capture lead")
		return
	}
	if len(fieldErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  "VALIDATION_FAILED",
			"fields": fieldErrors,
		})
		return
	}

	middleware.RecordLeadCaptured()
	writeJSON(w, http.StatusCreated, lead)
}
