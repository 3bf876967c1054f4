package schedule

import (
	"testing"
	"time"

	"seminarhall/models"
)

var calendarWindow = models.WorkingWindow{Start: 9 * 60, End: 17 * 60}

func TestSummarizeMonth(t *testing.T) {
	set := Normalize([]models.Seminar{
		// 4h of an 8h window booked: 50% free -> orange.
		{ID: "1", HallName: "A", Status: models.StatusApproved, Date: "2025-03-10", StartTime: "09:00", EndTime: "13:00"},
		// Full-day block -> red.
		{ID: "2", HallName: "A", Status: models.StatusApproved, Date: "2025-03-11"},
		// Two short bookings, mostly free -> green, count 2.
		{ID: "3", HallName: "A", Status: models.StatusApproved, Date: "2025-03-12", StartTime: "09:00", EndTime: "09:30"},
		{ID: "4", HallName: "A", Status: models.StatusApproved, Date: "2025-03-12", StartTime: "16:00", EndTime: "16:30"},
		// Pending never shows up.
		{ID: "5", HallName: "A", Status: models.StatusPending, Date: "2025-03-13", StartTime: "09:00", EndTime: "17:00"},
		// Multi-day booking touches the 14th and 15th once each.
		{ID: "6", HallName: "A", Status: models.StatusApproved, StartDate: "2025-03-14", EndDate: "2025-03-15"},
	})

	days := SummarizeMonth("A", 2025, time.March, set, calendarWindow, DefaultTiers())
	if len(days) != 31 {
		t.Fatalf("March has 31 days, got %d summaries", len(days))
	}

	byDate := make(map[string]models.DaySummary, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	tests := []struct {
		date        string
		count       int
		percentFree int
		tier        string
	}{
		{"2025-03-09", 0, 100, "green"},
		{"2025-03-10", 1, 50, "orange"},
		{"2025-03-11", 1, 0, "red"},
		{"2025-03-12", 2, 88, "green"},
		{"2025-03-13", 0, 100, "green"},
		{"2025-03-14", 1, 0, "red"},
		{"2025-03-15", 1, 0, "red"},
	}
	for _, tt := range tests {
		got, ok := byDate[tt.date]
		if !ok {
			t.Fatalf("missing summary for %s", tt.date)
		}
		if got.BookingCount != tt.count {
			t.Errorf("%s: bookingCount = %d, want %d", tt.date, got.BookingCount, tt.count)
		}
		if got.PercentFree != tt.percentFree {
			t.Errorf("%s: percentFree = %d, want %d", tt.date, got.PercentFree, tt.percentFree)
		}
		if got.Tier != tt.tier {
			t.Errorf("%s: tier = %q, want %q", tt.date, got.Tier, tt.tier)
		}
	}
}

func TestTierThresholds_Classify(t *testing.T) {
	tiers := DefaultTiers()
	tests := []struct {
		pct     int
		fullDay bool
		want    string
	}{
		{100, false, "green"},
		{70, false, "green"},
		{69, false, "orange"},
		{30, false, "orange"},
		{29, false, "red"},
		{0, false, "red"},
		{100, true, "red"}, // a full-day block is red regardless
	}
	for _, tt := range tests {
		if got := tiers.Classify(tt.pct, tt.fullDay); got != tt.want {
			t.Errorf("Classify(%d, %v) = %q, want %q", tt.pct, tt.fullDay, got, tt.want)
		}
	}
}
