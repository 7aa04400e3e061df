package shift

import (
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/validator"
)

type UpsertShiftRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
}

func (r *UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	} else if !validator.IsValidShiftCode(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code must be 1-10 uppercase letters or digits"})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}

	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be \"HH:MM\""})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be \"HH:MM\""})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationHours   float64 `json:"duration_hours"`
	CrossesMidnight bool    `json:"crosses_midnight"`
	Description     *string `json:"description,omitempty"`
	Location        *string `json:"location,omitempty"`
}

func ToResponse(s Shift) ShiftResponse {
	return ShiftResponse{
		Code:            s.Code,
		Name:            s.Name,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		DurationHours:   s.DurationHours,
		CrossesMidnight: s.CrossesMidnight(),
		Description:     s.Description,
		Location:        s.Location,
	}
}
