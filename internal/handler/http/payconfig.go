package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payconfig"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/handler/http/response"
)

type PayConfigHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type PayConfigHandlerImpl struct {
	payConfigService payconfig.PayConfigService
}

func NewPayConfigHandler(payConfigService payconfig.PayConfigService) PayConfigHandler {
	return &PayConfigHandlerImpl{payConfigService: payConfigService}
}

// Get implements PayConfigHandler.
func (h *PayConfigHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	config, err := h.payConfigService.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, config)
}

// Update implements PayConfigHandler.
func (h *PayConfigHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req payconfig.UpdateConfigRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update pay config decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.payConfigService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update pay config service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Configuration updated successfully", updated)
}
