package holiday

import (
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/validator"
)

type RegisterHolidayRequest struct {
	Date string `json:"date"` // "YYYY-MM-DD"
	Name string `json:"name"`
}

func (r *RegisterHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be \"YYYY-MM-DD\""})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	Date   string `json:"date"`
	Name   string `json:"name"`
	Source Source `json:"source"`
}

func ToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		Date:   h.Date.Format("2006-01-02"),
		Name:   h.Name,
		Source: h.Source,
	}
}
