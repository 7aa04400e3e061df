package holiday

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository

	// Per-year cache of the full rest-day set (computed almanac plus
	// manual registrations), keyed by "YYYY-MM-DD".
	mu    sync.RWMutex
	years map[int]map[string]holiday.Holiday
}

func NewHolidayService(holidayRepository holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepository,
		years:             make(map[int]map[string]holiday.Holiday),
	}
}

const dateKeyLayout = "2006-01-02"

// IsRestDay implements holiday.HolidayService. Sundays are always rest
// days; everything else consults the year set.
func (s *HolidayServiceImpl) IsRestDay(ctx context.Context, date time.Time) (bool, error) {
	if date.Weekday() == time.Sunday {
		return true, nil
	}

	yearSet, err := s.yearSet(ctx, date.Year())
	if err != nil {
		return false, err
	}

	_, found := yearSet[date.Format(dateKeyLayout)]
	return found, nil
}

// ListYear implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	yearSet, err := s.yearSet(ctx, year)
	if err != nil {
		return nil, err
	}

	holidays := make([]holiday.Holiday, 0, len(yearSet))
	for _, h := range yearSet {
		holidays = append(holidays, h)
	}
	sort.Slice(holidays, func(i, j int) bool {
		return holidays[i].Date.Before(holidays[j].Date)
	})

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}
	return responses, nil
}

// Register implements holiday.HolidayService.
func (s *HolidayServiceImpl) Register(ctx context.Context, req holiday.RegisterHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse(dateKeyLayout, req.Date)
	saved, err := s.HolidayRepository.Register(ctx, holiday.Holiday{
		Date:   date,
		Name:   req.Name,
		Source: holiday.SourceManual,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	s.invalidate(date.Year())
	return holiday.ToResponse(saved), nil
}

// Remove implements holiday.HolidayService. Only manual registrations can
// be removed; the repository reports not-found for almanac dates.
func (s *HolidayServiceImpl) Remove(ctx context.Context, date time.Time) error {
	if err := s.HolidayRepository.Remove(ctx, date); err != nil {
		return err
	}
	s.invalidate(date.Year())
	return nil
}

// WarmYear implements holiday.HolidayService.
func (s *HolidayServiceImpl) WarmYear(ctx context.Context, year int) error {
	_, err := s.yearSet(ctx, year)
	return err
}

// yearSet returns the cached union of computed and manual holidays,
// building it on first use.
func (s *HolidayServiceImpl) yearSet(ctx context.Context, year int) (map[string]holiday.Holiday, error) {
	s.mu.RLock()
	cached, found := s.years[year]
	s.mu.RUnlock()
	if found {
		return cached, nil
	}

	manual, err := s.HolidayRepository.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	yearSet := make(map[string]holiday.Holiday)
	for _, h := range computedHolidays(year) {
		yearSet[h.Date.Format(dateKeyLayout)] = h
	}
	// Manual registrations win on collision so the stored name is kept.
	for _, h := range manual {
		yearSet[h.Date.Format(dateKeyLayout)] = h
	}

	s.mu.Lock()
	s.years[year] = yearSet
	s.mu.Unlock()

	return yearSet, nil
}

func (s *HolidayServiceImpl) invalidate(year int) {
	s.mu.Lock()
	delete(s.years, year)
	s.mu.Unlock()
}
