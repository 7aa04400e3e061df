package shift

import (
	"context"
	"errors"
	"math"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/shift"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
}

func NewShiftService(shiftRepository shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository: shiftRepository,
	}
}

// List implements shift.ShiftService. An empty catalog serves the seeded
// defaults without writing them.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		shifts = shift.DefaultShifts()
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}
	return responses, nil
}

// Get implements shift.ShiftService. Codes missing from storage still
// resolve against the defaults.
func (s *ShiftServiceImpl) Get(ctx context.Context, code string) (shift.ShiftResponse, error) {
	found, err := s.ShiftRepository.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			for _, d := range shift.DefaultShifts() {
				if d.Code == code {
					return shift.ToResponse(d), nil
				}
			}
		}
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(found), nil
}

// Upsert implements shift.ShiftService.
func (s *ShiftServiceImpl) Upsert(ctx context.Context, req shift.UpsertShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	saved, err := s.ShiftRepository.Upsert(ctx, shift.Shift{
		Code:          req.Code,
		Name:          req.Name,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DurationHours: durationHours(req.StartTime, req.EndTime),
		Description:   req.Description,
		Location:      req.Location,
	})
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return shift.ToResponse(saved), nil
}

// Delete implements shift.ShiftService.
func (s *ShiftServiceImpl) Delete(ctx context.Context, code string) error {
	return s.ShiftRepository.Delete(ctx, code)
}

// durationHours derives the elapsed hours between two validated "HH:MM"
// times, treating an end at or before the start as next-day.
func durationHours(startTime, endTime string) float64 {
	start, err := validator.ParseClockTime(startTime)
	if err != nil {
		return 0
	}
	end, err := validator.ParseClockTime(endTime)
	if err != nil {
		return 0
	}
	if end <= start {
		end += 24 * 60
	}
	return math.Round(float64(end-start)/60*100) / 100
}
