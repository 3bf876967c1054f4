package seminar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"seminarhall/config"
	"seminarhall/models"
	"seminarhall/services/schedule"
	"seminarhall/utils"
)

const monthSummaryCacheTTL = 60 * time.Second

// bookingOptions is the working window and suggestion step used by booking
// forms, taken from configuration.
func bookingOptions() schedule.Options {
	return schedule.Options{
		Window: models.WorkingWindow{
			Start: config.AppConfig.BookingDayStart,
			End:   config.AppConfig.BookingDayEnd,
		},
		StepMinutes: config.AppConfig.SuggestionStepMin,
	}
}

// calendarWindow is the narrower window the month views compute occupancy in.
func calendarWindow() models.WorkingWindow {
	return models.WorkingWindow{
		Start: config.AppConfig.CalendarDayStart,
		End:   config.AppConfig.CalendarDayEnd,
	}
}

// snapshot fetches the full raw record set and normalizes it. Every check
// works on a fresh snapshot; there is no incremental index maintenance.
func (svc *DefaultSeminarService) snapshot() (schedule.BookingSet, error) {
	seminars, err := svc.Repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seminar snapshot: %w", err)
	}
	return schedule.Normalize(seminars), nil
}

// CheckAvailability runs the conflict checker against the current snapshot.
func (svc *DefaultSeminarService) CheckAvailability(req models.AvailabilityRequest) (models.CheckResult, error) {
	set, err := svc.snapshot()
	if err != nil {
		return models.CheckResult{}, err
	}
	return schedule.CheckAvailability(req, set, bookingOptions())
}

// DayAvailability returns the merged blocks, free ranges and percent-free for
// one hall and date, as shown by the booking form sidebars.
func (svc *DefaultSeminarService) DayAvailability(hall, date string) (*models.DayAvailability, error) {
	if hall == "" || date == "" {
		return nil, fmt.Errorf("hall and date are required")
	}
	set, err := svc.snapshot()
	if err != nil {
		return nil, err
	}

	window := bookingOptions().Window
	idx := schedule.BuildDayIndex(hall, date, set, window)
	return &models.DayAvailability{
		Hall:             hall,
		Date:             date,
		IsFullDayBlocked: idx.IsFullDayBlocked,
		MergedBlocks:     idx.MergedBlocks,
		FreeRanges:       schedule.FreeRanges(idx.MergedBlocks, window),
		PercentFree:      schedule.PercentFree(idx.MergedBlocks, window),
	}, nil
}

// MonthSummary returns the occupancy grid for one hall and month. The grid
// is re-rendered on every calendar navigation, so results are cached briefly
// in Redis.
func (svc *DefaultSeminarService) MonthSummary(hall string, year, month int) ([]models.DaySummary, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month %d", month)
	}
	logger := utils.GetLogger()
	cache := utils.GetCacheClient()
	ctx := context.Background()

	cacheKey := fmt.Sprintf("monthsummary:%s:%04d-%02d", hall, year, month)
	if cached, err := cache.Get(ctx, cacheKey).Result(); err == nil {
		var days []models.DaySummary
		if err := json.Unmarshal([]byte(cached), &days); err == nil {
			return days, nil
		}
	}

	set, err := svc.snapshot()
	if err != nil {
		return nil, err
	}
	days := schedule.SummarizeMonth(hall, year, time.Month(month), set, calendarWindow(), schedule.DefaultTiers())

	if data, err := json.Marshal(days); err == nil {
		if err := cache.Set(ctx, cacheKey, data, monthSummaryCacheTTL).Err(); err != nil {
			logger.Warn("failed to cache month summary", zap.String("key", cacheKey), zap.Error(err))
		}
	}
	return days, nil
}
