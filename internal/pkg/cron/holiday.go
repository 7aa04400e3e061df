package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/holiday"
)

// HolidayJobs keeps the holiday oracle's almanac cache warm so workday
// computations never pay the first-lookup cost for a new year.
type HolidayJobs struct {
	holidayService holiday.HolidayService
}

func NewHolidayJobs(holidayService holiday.HolidayService) *HolidayJobs {
	return &HolidayJobs{holidayService: holidayService}
}

func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("warm_holiday_almanac", 24*time.Hour, j.WarmAlmanac)
}

// WarmAlmanac precomputes the current and next year. December runs keep
// January lookups warm across the year boundary.
func (j *HolidayJobs) WarmAlmanac(ctx context.Context) error {
	year := time.Now().Year()
	for _, y := range []int{year, year + 1} {
		if err := j.holidayService.WarmYear(ctx, y); err != nil {
			return err
		}
		slog.Info("Cron: holiday almanac warmed", "year", y)
	}
	return nil
}
