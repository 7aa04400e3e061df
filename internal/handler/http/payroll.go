package http

import (
	"net/http"
	"time"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/payroll"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/handler/http/response"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/period"
)

type PayrollHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Summary implements PayrollHandler. Without explicit dates the current
// payroll period (15th to 14th) is summarised; period=previous selects the
// one before it.
func (h *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	cycle := period.Current(time.Now())
	if query.Get("period") == "previous" {
		cycle = period.Previous(time.Now())
	}

	filter := payroll.SummaryFilter{
		StartDate: cycle.StartISO(),
		EndDate:   cycle.EndISO(),
	}
	if start := query.Get("start_date"); start != "" {
		filter.StartDate = start
	}
	if end := query.Get("end_date"); end != "" {
		filter.EndDate = end
	}
	if company := query.Get("company"); company != "" {
		filter.Company = &company
	}

	summary, err := h.payrollService.Summary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
