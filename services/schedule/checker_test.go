package schedule

import (
	"fmt"
	"strings"
	"testing"

	"seminarhall/models"
)

func fixtureSet() BookingSet {
	return Normalize([]models.Seminar{
		// Hall A: one approved booking 10:00-11:00 on 2025-03-10.
		{ID: "a1", HallName: "A", Status: models.StatusApproved, Date: "2025-03-10", StartTime: "10:00", EndTime: "11:00"},
		// Hall B: full-day approved booking on 2025-04-01.
		{ID: "b1", HallName: "B", Status: models.StatusApproved, Date: "2025-04-01"},
	})
}

func timeRequest(hall, date, start, end string) models.AvailabilityRequest {
	return models.AvailabilityRequest{
		Hall: hall, Mode: "time", Date: date, StartTime: start, EndTime: end,
	}
}

func TestCheckAvailability_TouchingIsFree(t *testing.T) {
	res, err := CheckAvailability(timeRequest("A", "2025-03-10", "09:00", "10:00"), fixtureSet(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK {
		t.Fatalf("expected ok, got conflict: %s", res.Message)
	}
}

func TestCheckAvailability_ConflictWithSuggestion(t *testing.T) {
	res, err := CheckAvailability(timeRequest("A", "2025-03-10", "10:30", "11:30"), fixtureSet(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK {
		t.Fatal("expected conflict")
	}
	if len(res.Conflicts) != 1 || res.Conflicts[0].Date != "2025-03-10" {
		t.Fatalf("conflicts = %+v", res.Conflicts)
	}
	if !strings.Contains(res.Message, "2025-03-10") {
		t.Errorf("message should name the date: %q", res.Message)
	}
	if !strings.Contains(res.Message, "10:00 AM — 11:00 AM") {
		t.Errorf("message should quote the conflicting range: %q", res.Message)
	}
	if len(res.Suggestions) != 1 {
		t.Fatalf("expected one suggestion, got %+v", res.Suggestions)
	}
	sug := res.Suggestions[0]
	// First 15-min-aligned duration-preserving slot after the conflict.
	if sug.Range.StartMin != 660 || sug.Range.EndMin != 720 {
		t.Errorf("suggestion = [%d,%d), want [660,720)", sug.Range.StartMin, sug.Range.EndMin)
	}
}

func TestCheckAvailability_SuggestionStaysOnStepGrid(t *testing.T) {
	// An off-grid request must not produce off-grid suggestion candidates.
	res, err := CheckAvailability(timeRequest("A", "2025-03-10", "10:20", "11:20"), fixtureSet(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK {
		t.Fatal("expected conflict")
	}
	if len(res.Suggestions) != 1 {
		t.Fatalf("expected one suggestion, got %+v", res.Suggestions)
	}
	sug := res.Suggestions[0]
	if sug.Range.StartMin%15 != 0 {
		t.Errorf("suggestion start %d is off the 15-minute grid", sug.Range.StartMin)
	}
	if sug.Range.StartMin != 660 || sug.Range.EndMin != 720 {
		t.Errorf("suggestion = [%d,%d), want [660,720)", sug.Range.StartMin, sug.Range.EndMin)
	}
}

func TestCheckAvailability_SuggestionIsValid(t *testing.T) {
	set := fixtureSet()
	res, err := CheckAvailability(timeRequest("A", "2025-03-10", "10:30", "11:30"), set, DefaultOptions())
	if err != nil || res.OK || len(res.Suggestions) == 0 {
		t.Fatalf("precondition failed: res=%+v err=%v", res, err)
	}

	sug := res.Suggestions[0]
	recheck, err := CheckAvailability(timeRequest("A", sug.Date,
		minutesToHHMM(sug.Range.StartMin), minutesToHHMM(sug.Range.EndMin)), set, DefaultOptions())
	if err != nil {
		t.Fatalf("recheck error: %v", err)
	}
	if !recheck.OK {
		t.Errorf("suggested slot is itself conflicting: %s", recheck.Message)
	}
}

func TestCheckAvailability_FullDayBlocked(t *testing.T) {
	res, err := CheckAvailability(timeRequest("B", "2025-04-01", "08:00", "09:00"), fixtureSet(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK {
		t.Fatal("expected conflict on full-day blocked date")
	}
	if len(res.Conflicts) != 1 || !res.Conflicts[0].FullDay {
		t.Fatalf("expected full-day conflict, got %+v", res.Conflicts)
	}
	if len(res.Suggestions) != 0 {
		t.Errorf("no suggestion expected on a fully blocked day, got %+v", res.Suggestions)
	}
}

func TestCheckAvailability_MultiDayAllFree(t *testing.T) {
	req := models.AvailabilityRequest{
		Hall: "C", Mode: "day", StartDate: "2025-05-01", EndDate: "2025-05-03",
	}
	res, err := CheckAvailability(req, fixtureSet(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK {
		t.Fatalf("expected ok for unbooked range, got: %s", res.Message)
	}
}

func TestCheckAvailability_FullDayClaimConflictsWithPartialBooking(t *testing.T) {
	// Hall A has a 10:00-11:00 booking on 2025-03-10; claiming the whole day
	// must conflict even though no full-day block exists.
	req := models.AvailabilityRequest{
		Hall: "A", Mode: "day", StartDate: "2025-03-10", EndDate: "2025-03-10",
	}
	res, err := CheckAvailability(req, fixtureSet(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK {
		t.Fatal("full-day claim over a partial booking must conflict")
	}
	if len(res.Conflicts) != 1 || !res.Conflicts[0].FullDay {
		t.Fatalf("conflicts = %+v", res.Conflicts)
	}
}

func TestCheckAvailability_MultiDayPerDateSuggestions(t *testing.T) {
	req := models.AvailabilityRequest{
		Hall: "A", Mode: "day", StartDate: "2025-03-10", EndDate: "2025-03-11",
		DaySlots: map[string]*models.DaySlot{
			"2025-03-10": {StartTime: "10:00", EndTime: "11:00"}, // clashes
			"2025-03-11": {StartTime: "10:00", EndTime: "11:00"}, // free day
		},
	}
	res, err := CheckAvailability(req, fixtureSet(), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.OK {
		t.Fatal("expected conflict on 2025-03-10")
	}
	if len(res.Conflicts) != 1 || res.Conflicts[0].Date != "2025-03-10" {
		t.Fatalf("conflicts = %+v", res.Conflicts)
	}
	if len(res.Suggestions) != 1 || res.Suggestions[0].Date != "2025-03-10" {
		t.Fatalf("suggestions = %+v", res.Suggestions)
	}
	// Day-wise suggestions scan from the window start: 08:00-09:00 is free.
	if got := res.Suggestions[0].Range; got.StartMin != 480 || got.EndMin != 540 {
		t.Errorf("suggestion = [%d,%d), want [480,540)", got.StartMin, got.EndMin)
	}
}

func TestCheckAvailability_InvalidRequests(t *testing.T) {
	tests := []struct {
		name string
		req  models.AvailabilityRequest
	}{
		{"missing hall", timeRequest("", "2025-03-10", "09:00", "10:00")},
		{"missing date", timeRequest("A", "", "09:00", "10:00")},
		{"bad start time", timeRequest("A", "2025-03-10", "nope", "10:00")},
		{"inverted times", timeRequest("A", "2025-03-10", "11:00", "10:00")},
		{"zero-length", timeRequest("A", "2025-03-10", "10:00", "10:00")},
		{"inverted dates", models.AvailabilityRequest{Hall: "A", Mode: "day", StartDate: "2025-03-12", EndDate: "2025-03-10"}},
		{"bad mode", models.AvailabilityRequest{Hall: "A", Mode: "weekly"}},
		{"bad day slot times", models.AvailabilityRequest{
			Hall: "A", Mode: "day", StartDate: "2025-03-10", EndDate: "2025-03-10",
			DaySlots: map[string]*models.DaySlot{"2025-03-10": {StartTime: "zz", EndTime: "10:00"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CheckAvailability(tt.req, fixtureSet(), DefaultOptions())
			if err == nil {
				t.Fatal("expected InvalidRequestError")
			}
			if !IsInvalidRequest(err) {
				t.Errorf("error is not InvalidRequestError: %v", err)
			}
		})
	}
}

func TestCheckAvailability_Idempotent(t *testing.T) {
	set := fixtureSet()
	req := timeRequest("A", "2025-03-10", "10:30", "11:30")
	first, err1 := CheckAvailability(req, set, DefaultOptions())
	second, err2 := CheckAvailability(req, set, DefaultOptions())
	if err1 != nil || err2 != nil {
		t.Fatalf("errors: %v, %v", err1, err2)
	}
	if first.OK != second.OK || first.Message != second.Message {
		t.Errorf("results differ across identical calls: %+v vs %+v", first, second)
	}
	if len(first.Suggestions) != len(second.Suggestions) {
		t.Errorf("suggestion counts differ: %d vs %d", len(first.Suggestions), len(second.Suggestions))
	}
}

func minutesToHHMM(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
