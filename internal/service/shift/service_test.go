package shift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/shift"
)

type stubShiftRepository struct {
	shifts map[string]shift.Shift
}

func newStubShiftRepository() *stubShiftRepository {
	return &stubShiftRepository{shifts: make(map[string]shift.Shift)}
}

func (s *stubShiftRepository) List(ctx context.Context) ([]shift.Shift, error) {
	out := make([]shift.Shift, 0, len(s.shifts))
	for _, sh := range s.shifts {
		out = append(out, sh)
	}
	return out, nil
}

func (s *stubShiftRepository) GetByCode(ctx context.Context, code string) (shift.Shift, error) {
	sh, ok := s.shifts[code]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return sh, nil
}

func (s *stubShiftRepository) Upsert(ctx context.Context, sh shift.Shift) (shift.Shift, error) {
	s.shifts[sh.Code] = sh
	return sh, nil
}

func (s *stubShiftRepository) Delete(ctx context.Context, code string) error {
	if _, ok := s.shifts[code]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(s.shifts, code)
	return nil
}

func TestListFallsBackToDefaults(t *testing.T) {
	svc := NewShiftService(newStubShiftRepository())

	shifts, err := svc.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, shifts, len(shift.DefaultShifts()))
	codes := make(map[string]bool)
	for _, sh := range shifts {
		codes[sh.Code] = true
	}
	for _, want := range []string{"M8", "T8", "N8", "D12", "N12"} {
		assert.True(t, codes[want], "expected default shift %s", want)
	}
}

func TestListPrefersStoredCatalog(t *testing.T) {
	repo := newStubShiftRepository()
	repo.shifts["X6"] = shift.Shift{Code: "X6", Name: "Turno corto", StartTime: "09:00", EndTime: "15:00", DurationHours: 6}
	svc := NewShiftService(repo)

	shifts, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, shifts, 1)
	assert.Equal(t, "X6", shifts[0].Code)
}

func TestGetResolvesDefaultWhenNotStored(t *testing.T) {
	svc := NewShiftService(newStubShiftRepository())

	got, err := svc.Get(context.Background(), "N8")
	require.NoError(t, err)

	assert.Equal(t, "N8", got.Code)
	assert.True(t, got.CrossesMidnight)
}

func TestGetUnknownCode(t *testing.T) {
	svc := NewShiftService(newStubShiftRepository())

	_, err := svc.Get(context.Background(), "ZZ99")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestUpsertComputesDuration(t *testing.T) {
	svc := NewShiftService(newStubShiftRepository())

	got, err := svc.Upsert(context.Background(), shift.UpsertShiftRequest{
		Code:      "T6",
		Name:      "Tarde corta",
		StartTime: "14:00",
		EndTime:   "20:30",
	})
	require.NoError(t, err)

	assert.InDelta(t, 6.5, got.DurationHours, 0.001)
	assert.False(t, got.CrossesMidnight)
}

func TestUpsertMidnightCrossingDuration(t *testing.T) {
	svc := NewShiftService(newStubShiftRepository())

	got, err := svc.Upsert(context.Background(), shift.UpsertShiftRequest{
		Code:      "N10",
		Name:      "Noche larga",
		StartTime: "20:00",
		EndTime:   "06:00",
	})
	require.NoError(t, err)

	assert.InDelta(t, 10, got.DurationHours, 0.001)
	assert.True(t, got.CrossesMidnight)
}

func TestUpsertValidation(t *testing.T) {
	svc := NewShiftService(newStubShiftRepository())

	_, err := svc.Upsert(context.Background(), shift.UpsertShiftRequest{
		Code:      "m8",
		Name:      "",
		StartTime: "8:00",
		EndTime:   "16:00",
	})
	require.Error(t, err)
}

func TestDeleteMissingShift(t *testing.T) {
	svc := NewShiftService(newStubShiftRepository())

	err := svc.Delete(context.Background(), "M8")
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestDurationHours(t *testing.T) {
	assert.InDelta(t, 8, durationHours("08:00", "16:00"), 0.001)
	assert.InDelta(t, 8, durationHours("22:00", "06:00"), 0.001)
	assert.InDelta(t, 24, durationHours("08:00", "08:00"), 0.001)
	assert.InDelta(t, 7.75, durationHours("06:15", "14:00"), 0.001)
}
