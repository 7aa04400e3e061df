package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/workday"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/handler/http/response"
)

type WorkdayHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	ComputeBulk(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
}

type WorkdayHandlerImpl struct {
	workdayService workday.WorkdayService
}

func NewWorkdayHandler(workdayService workday.WorkdayService) WorkdayHandler {
	return &WorkdayHandlerImpl{workdayService: workdayService}
}

// Compute implements WorkdayHandler.
func (h *WorkdayHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var req workday.ComputeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Compute workday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	computed, err := h.workdayService.Compute(r.Context(), req)
	if err != nil {
		slog.Error("Compute workday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Workday computed successfully", computed)
}

// ComputeBulk implements WorkdayHandler.
func (h *WorkdayHandlerImpl) ComputeBulk(w http.ResponseWriter, r *http.Request) {
	var req workday.BulkComputeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bulk compute decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workdayService.ComputeBulk(r.Context(), req)
	if err != nil {
		slog.Error("Bulk compute service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Bulk compute finished",
		"computed", len(result.Computed),
		"failed", len(result.Failed),
	)
	response.Success(w, result)
}

// Get implements WorkdayHandler.
func (h *WorkdayHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.workdayService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByEmployee implements WorkdayHandler.
func (h *WorkdayHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var filter workday.RangeFilter
	query := r.URL.Query()
	if start := query.Get("start_date"); start != "" {
		filter.StartDate = &start
	}
	if end := query.Get("end_date"); end != "" {
		filter.EndDate = &end
	}

	workdays, err := h.workdayService.ListByEmployee(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workdays)
}

// Close implements WorkdayHandler.
func (h *WorkdayHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	closed, err := h.workdayService.Close(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Workday closed successfully", closed)
}
