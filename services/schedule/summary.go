package schedule

import (
	"fmt"
	"time"

	"seminarhall/models"
)

// TierThresholds classifies percentFree into the calendar color tiers.
// Policy constants, not derived values; callers may tune them.
type TierThresholds struct {
	RedBelow    int // percentFree below this (or a full-day block) is "red"
	OrangeBelow int // below this is "orange"; everything else is "green"
}

// DefaultTiers matches the portal's month grid coloring.
func DefaultTiers() TierThresholds {
	return TierThresholds{RedBelow: 30, OrangeBelow: 70}
}

// Classify maps a day's occupancy onto a tier name.
func (t TierThresholds) Classify(percentFree int, fullDayBlocked bool) string {
	switch {
	case fullDayBlocked || percentFree < t.RedBelow:
		return "red"
	case percentFree < t.OrangeBelow:
		return "orange"
	default:
		return "green"
	}
}

// SummarizeMonth produces one DaySummary per date of the month for the given
// hall: approved booking count, percent free within the window, and color
// tier. A multi-day booking counts once per date it touches.
func SummarizeMonth(hall string, year int, month time.Month, set BookingSet, window models.WorkingWindow, tiers TierThresholds) []models.DaySummary {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	out := make([]models.DaySummary, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, d)
		idx := BuildDayIndex(hall, date, set, window)
		pctFree := PercentFree(idx.MergedBlocks, window)
		out = append(out, models.DaySummary{
			Date:         date,
			BookingCount: len(idx.Intervals),
			PercentFree:  pctFree,
			Tier:         tiers.Classify(pctFree, idx.IsFullDayBlocked),
		})
	}
	return out
}
