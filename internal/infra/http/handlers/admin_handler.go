package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/casemark/lead-intake/internal/entity"
	"github.com/casemark/lead-intake/internal/infra/http/middleware"
	"github.com/casemark/lead-intake/internal/usecase"
)

// AdminHandler serves the authenticated review dashboard.
type AdminHandler struct {
	ListUC   *usecase.ListLeadsUseCase
	UpdateUC *usecase.UpdateLeadStatusUseCase
	BulkUC   *usecase.BulkUpdateStatusUseCase
	DeleteUC *usecase.DeleteLeadUseCase
	Repo     entity.LeadRepositoryInterface
}

func NewAdminHandler(
	listUC *usecase.ListLeadsUseCase,
	updateUC *usecase.UpdateLeadStatusUseCase,
	bulkUC *usecase.BulkUpdateStatusUseCase,
	deleteUC *usecase.DeleteLeadUseCase,
	repo entity.LeadRepositoryInterface,
) *AdminHandler {
	return &AdminHandler{
		ListUC:   listUC,
		UpdateUC: updateUC,
		BulkUC:   bulkUC,
		DeleteUC: deleteUC,
		Repo:     repo,
	}
}

// ListLeads (GET /admin/leads) derives the visible page from query params.
// Every call recomputes the projection; nothing is cached or written back.
func (h *AdminHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))

	input := usecase.ListLeadsInput{
		Filter: usecase.FilterSpec{
			Search:   q.Get("search"),
			Status:   q.Get("status"),
			Country:  q.Get("country"),
			VisaType: q.Get("visaType"),
		},
		Sort: usecase.SortSpec{
			Field:     usecase.SortField(q.Get("sortBy")),
			Direction: usecase.SortDirection(q.Get("sortDir")),
		},
		Page: page,
	}

	output, err := h.ListUC.Execute(r.Context(), input)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "LIST_FAILED", "Failed to load leads")
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *AdminHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to load lead")
		return
	}

	writeJSON(w, http.StatusOK, lead)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), id, entity.LeadStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrLeadNotFound):
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case usecase.IsDomainError(err):
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_STATUS", err.Error())
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update lead")
		}
		return
	}

	middleware.RecordStatusUpdate(req.Status, false)
	writeJSON(w, http.StatusOK, lead)
}

type bulkUpdateRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

func (h *AdminHandler) BulkUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	updated, err := h.BulkUC.Execute(r.Context(), req.IDs, entity.LeadStatus(req.Status))
	if err != nil {
		if usecase.IsDomainError(err) {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_STATUS", err.Error())
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update leads")
		return
	}

	middleware.RecordStatusUpdate(req.Status, true)
	writeJSON(w, http.StatusOK, map[string]any{"updated": updated})
}

func (h *AdminHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.DeleteUC.Execute(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete lead")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
