package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/holiday"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/handler/http/response"
)

type HolidayHandler interface {
	ListYear(w http.ResponseWriter, r *http.Request)
	Check(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Remove(w http.ResponseWriter, r *http.Request)
	WarmYear(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// ListYear implements HolidayHandler.
func (h *HolidayHandlerImpl) ListYear(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	holidays, err := h.holidayService.ListYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Check implements HolidayHandler. Reports whether a date is a rest day.
func (h *HolidayHandlerImpl) Check(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.BadRequest(w, "date must be \"YYYY-MM-DD\"", nil)
		return
	}

	restDay, err := h.holidayService.IsRestDay(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]any{
		"date":     dateStr,
		"rest_day": restDay,
	})
}

// Register implements HolidayHandler.
func (h *HolidayHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req holiday.RegisterHolidayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Register holiday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.holidayService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Register holiday service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday registered successfully", saved)
}

// Remove implements HolidayHandler.
func (h *HolidayHandlerImpl) Remove(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.BadRequest(w, "date must be \"YYYY-MM-DD\"", nil)
		return
	}

	if err := h.holidayService.Remove(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday removed successfully", nil)
}

// WarmYear implements HolidayHandler. Precomputes the almanac for a year.
func (h *HolidayHandlerImpl) WarmYear(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		year = parsed
	}

	if err := h.holidayService.WarmYear(r.Context(), year); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday calendar warmed successfully", map[string]any{"year": year})
}
