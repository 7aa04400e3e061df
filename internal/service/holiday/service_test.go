package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/holiday"
)

type stubHolidayRepository struct {
	manual    map[string]holiday.Holiday
	listCalls int
}

func newStubHolidayRepository() *stubHolidayRepository {
	return &stubHolidayRepository{manual: make(map[string]holiday.Holiday)}
}

func (s *stubHolidayRepository) ListByYear(_ context.Context, year int) ([]holiday.Holiday, error) {
	s.listCalls++
	var out []holiday.Holiday
	for _, h := range s.manual {
		if h.Date.Year() == year {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *stubHolidayRepository) Exists(_ context.Context, date time.Time) (bool, error) {
	_, found := s.manual[date.Format("2006-01-02")]
	return found, nil
}

func (s *stubHolidayRepository) Register(_ context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	key := h.Date.Format("2006-01-02")
	if _, found := s.manual[key]; found {
		return holiday.Holiday{}, holiday.ErrHolidayExists
	}
	h.Source = holiday.SourceManual
	s.manual[key] = h
	return h, nil
}

func (s *stubHolidayRepository) Remove(_ context.Context, date time.Time) error {
	key := date.Format("2006-01-02")
	if _, found := s.manual[key]; !found {
		return holiday.ErrHolidayNotFound
	}
	delete(s.manual, key)
	return nil
}

func TestIsRestDaySunday(t *testing.T) {
	svc := NewHolidayService(newStubHolidayRepository())

	// 2026-03-08 is a Sunday.
	restDay, err := svc.IsRestDay(context.Background(), time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, restDay)

	// The Monday after is a plain workday.
	restDay, err = svc.IsRestDay(context.Background(), time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, restDay)
}

func TestIsRestDayComputedHoliday(t *testing.T) {
	svc := NewHolidayService(newStubHolidayRepository())

	restDay, err := svc.IsRestDay(context.Background(), time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, restDay)
}

func TestIsRestDayManualHoliday(t *testing.T) {
	repo := newStubHolidayRepository()
	svc := NewHolidayService(repo)

	date := time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC) // a Thursday

	restDay, err := svc.IsRestDay(context.Background(), date)
	require.NoError(t, err)
	assert.False(t, restDay)

	_, err = svc.Register(context.Background(), holiday.RegisterHolidayRequest{
		Date: "2026-09-03",
		Name: "Día cívico",
	})
	require.NoError(t, err)

	// Registration invalidates the cached year.
	restDay, err = svc.IsRestDay(context.Background(), date)
	require.NoError(t, err)
	assert.True(t, restDay)
}

func TestIsRestDayCachesYear(t *testing.T) {
	repo := newStubHolidayRepository()
	svc := NewHolidayService(repo)

	for day := 1; day <= 20; day++ {
		_, err := svc.IsRestDay(context.Background(), time.Date(2026, time.May, day, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
	}

	assert.Equal(t, 1, repo.listCalls)
}

func TestListYearMergesComputedAndManual(t *testing.T) {
	repo := newStubHolidayRepository()
	svc := NewHolidayService(repo)

	_, err := svc.Register(context.Background(), holiday.RegisterHolidayRequest{
		Date: "2026-09-03",
		Name: "Día cívico",
	})
	require.NoError(t, err)

	holidays, err := svc.ListYear(context.Background(), 2026)
	require.NoError(t, err)
	assert.Len(t, holidays, 19) // 18 computed + 1 manual

	var foundManual bool
	for _, h := range holidays {
		if h.Date == "2026-09-03" {
			foundManual = true
			assert.Equal(t, holiday.SourceManual, h.Source)
		}
	}
	assert.True(t, foundManual)
}

func TestRemoveManualHoliday(t *testing.T) {
	repo := newStubHolidayRepository()
	svc := NewHolidayService(repo)

	date := time.Date(2026, time.September, 3, 0, 0, 0, 0, time.UTC)
	_, err := svc.Register(context.Background(), holiday.RegisterHolidayRequest{Date: "2026-09-03", Name: "Día cívico"})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), date))

	restDay, err := svc.IsRestDay(context.Background(), date)
	require.NoError(t, err)
	assert.False(t, restDay)

	// Computed dates have no manual row to remove.
	err = svc.Remove(context.Background(), time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, holiday.ErrHolidayNotFound)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewHolidayService(newStubHolidayRepository())

	_, err := svc.Register(context.Background(), holiday.RegisterHolidayRequest{Date: "03/09/2026", Name: "x"})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), holiday.RegisterHolidayRequest{Date: "2026-09-03", Name: ""})
	assert.Error(t, err)
}
