package schedule

import (
	"fmt"
	"strings"

	"seminarhall/models"
)

// Options configures a conflict check. Call sites pass their own working
// window and step; neither is a global constant.
type Options struct {
	Window      models.WorkingWindow
	StepMinutes int
}

// DefaultOptions is the booking-form configuration: 08:00-18:00 window,
// 15-minute suggestion granularity.
func DefaultOptions() Options {
	return Options{
		Window:      models.WorkingWindow{Start: 8 * 60, End: 18 * 60},
		StepMinutes: 15,
	}
}

// CheckAvailability decides whether the candidate request fits the snapshot.
// A conflict is returned as a normal ok=false CheckResult; the error return
// is reserved for structurally invalid requests (InvalidRequestError).
//
// Each call is an independent, bounded computation: the snapshot is an
// explicit input and no state outlives the call, so re-checking identical
// inputs yields identical results.
func CheckAvailability(req models.AvailabilityRequest, set BookingSet, opts Options) (models.CheckResult, error) {
	if req.Hall == "" {
		return models.CheckResult{}, NewInvalidRequest("hall", "no hall selected")
	}
	if opts.StepMinutes <= 0 {
		opts.StepMinutes = 15
	}

	switch req.Mode {
	case "time", "":
		return checkTimeWise(req, set, opts)
	case "day":
		return checkDayWise(req, set, opts)
	default:
		return models.CheckResult{}, NewInvalidRequest("mode", fmt.Sprintf("unknown mode %q", req.Mode))
	}
}

// checkTimeWise handles a single time-range request on one date.
func checkTimeWise(req models.AvailabilityRequest, set BookingSet, opts Options) (models.CheckResult, error) {
	date, ok := normalizeDateKey(req.Date)
	if !ok {
		return models.CheckResult{}, NewInvalidRequest("date", "missing or malformed date")
	}
	start, sOK := ParseTimeOfDay(req.StartTime)
	end, eOK := ParseTimeOfDay(req.EndTime)
	if !sOK {
		return models.CheckResult{}, NewInvalidRequest("startTime", "missing or malformed start time")
	}
	if !eOK {
		return models.CheckResult{}, NewInvalidRequest("endTime", "missing or malformed end time")
	}
	if end <= start {
		return models.CheckResult{}, NewInvalidRequest("endTime", "end time must be after start time")
	}

	idx := BuildDayIndex(req.Hall, date, set, opts.Window)
	if idx.IsFullDayBlocked {
		return models.CheckResult{
			OK:        false,
			Message:   fmt.Sprintf("Conflict: %s is blocked for the whole day.", date),
			Conflicts: []models.DateConflict{{Date: date, FullDay: true}},
		}, nil
	}

	clashes := overlapping(idx.Intervals, start, end)
	if len(clashes) == 0 {
		return models.CheckResult{
			OK: true,
			Message: fmt.Sprintf("Available on %s: %s — %s",
				date, FormatTimeOfDay12h(start), FormatTimeOfDay12h(end)),
		}, nil
	}

	conflict := models.DateConflict{Date: date, Ranges: rangesOf(clashes)}
	result := models.CheckResult{
		OK:        false,
		Conflicts: []models.DateConflict{conflict},
	}

	// Same-day alternative of the same duration. The scan starts shortly
	// before the requested start rather than at the window edge, so the
	// suggestion lands near what the user asked for.
	needed := end - start
	scanFrom := start - 60
	if scanFrom < opts.Window.Start {
		scanFrom = opts.Window.Start
	}
	// Snap down onto the step grid so suggestions stay aligned even when
	// the requested start is not.
	scanFrom = opts.Window.Start + (scanFrom-opts.Window.Start)/opts.StepMinutes*opts.StepMinutes
	suggestionText := fmt.Sprintf("No suitable alternative found on %s", date)
	if cand, found := scanForSlot(idx.Intervals, scanFrom, opts.Window.End, needed, opts.StepMinutes); found {
		sug := models.DateSuggestion{
			Date:  date,
			Range: models.TimeRange{StartMin: cand, EndMin: cand + needed},
			Label: fmt.Sprintf("%s — %s", FormatTimeOfDay12h(cand), FormatTimeOfDay12h(cand+needed)),
		}
		result.Suggestions = []models.DateSuggestion{sug}
		suggestionText = fmt.Sprintf("Suggested alternative on %s: %s", date, sug.Label)
	}

	result.Message = fmt.Sprintf("Conflict on: %s. %s", describeConflict(conflict), suggestionText)
	return result, nil
}

// checkDayWise handles a multi-day request with optional per-date overrides.
// A date without override times is a full-day claim; it conflicts with any
// existing booking on that hall and date, partial or full-day.
func checkDayWise(req models.AvailabilityRequest, set BookingSet, opts Options) (models.CheckResult, error) {
	if req.StartDate == "" || req.EndDate == "" {
		return models.CheckResult{}, NewInvalidRequest("startDate", "missing start or end date")
	}
	startDate, ok := normalizeDateKey(req.StartDate)
	if !ok {
		return models.CheckResult{}, NewInvalidRequest("startDate", "malformed start date")
	}
	endDate, ok := normalizeDateKey(req.EndDate)
	if !ok {
		return models.CheckResult{}, NewInvalidRequest("endDate", "malformed end date")
	}
	dates, err := DateRange(startDate, endDate)
	if err != nil {
		return models.CheckResult{}, NewInvalidRequest("endDate", "end date can't be before start date")
	}

	var conflicts []models.DateConflict
	var suggestions []models.DateSuggestion

	for _, date := range dates {
		idx := BuildDayIndex(req.Hall, date, set, opts.Window)

		slot := req.DaySlots[date]
		if slot == nil {
			// Full-day claim for this date.
			if len(idx.Intervals) > 0 {
				conflicts = append(conflicts, models.DateConflict{
					Date:    date,
					FullDay: true,
					Ranges:  rangesOf(idx.Intervals),
				})
			}
			continue
		}

		start, end, parsed := slotTimes(slot)
		if !parsed {
			return models.CheckResult{}, NewInvalidRequest("daySlots", fmt.Sprintf("malformed times for %s", date))
		}
		if end <= start {
			return models.CheckResult{}, NewInvalidRequest("daySlots", fmt.Sprintf("end time must be after start time for %s", date))
		}

		if idx.IsFullDayBlocked {
			conflicts = append(conflicts, models.DateConflict{Date: date, FullDay: true})
			continue
		}
		clashes := overlapping(idx.Intervals, start, end)
		if len(clashes) == 0 {
			continue
		}
		conflicts = append(conflicts, models.DateConflict{Date: date, Ranges: rangesOf(clashes)})

		needed := end - start
		if cand, found := scanForSlot(idx.Intervals, opts.Window.Start, opts.Window.End, needed, opts.StepMinutes); found {
			suggestions = append(suggestions, models.DateSuggestion{
				Date:  date,
				Range: models.TimeRange{StartMin: cand, EndMin: cand + needed},
				Label: fmt.Sprintf("%s — %s", FormatTimeOfDay12h(cand), FormatTimeOfDay12h(cand+needed)),
			})
		}
	}

	if len(conflicts) == 0 {
		return models.CheckResult{
			OK:      true,
			Message: fmt.Sprintf("All selected days are available (%s → %s)", startDate, endDate),
		}, nil
	}

	parts := make([]string, len(conflicts))
	for i, c := range conflicts {
		parts[i] = describeConflict(c)
	}
	msg := "Conflicts on: " + strings.Join(parts, ", ")
	if len(suggestions) > 0 {
		labels := make([]string, 0, len(suggestions))
		for _, s := range suggestions {
			labels = append(labels, fmt.Sprintf("%s: %s", s.Date, s.Label))
		}
		msg += ". Suggestions: " + strings.Join(labels, "; ")
	}
	return models.CheckResult{
		OK:          false,
		Message:     msg,
		Conflicts:   conflicts,
		Suggestions: suggestions,
	}, nil
}

// overlapping returns the intervals that strictly overlap [start, end).
func overlapping(intervals []models.Interval, start, end int) []models.Interval {
	var out []models.Interval
	for _, iv := range intervals {
		if Overlaps(start, end, iv.StartMin, iv.EndMin) {
			out = append(out, iv)
		}
	}
	return out
}

// scanForSlot walks candidate start times at step granularity and returns
// the first whose [cand, cand+needed) overlaps nothing.
func scanForSlot(intervals []models.Interval, from, windowEnd, needed, step int) (int, bool) {
	for cand := from; cand+needed <= windowEnd; cand += step {
		if len(overlapping(intervals, cand, cand+needed)) == 0 {
			return cand, true
		}
	}
	return 0, false
}

func rangesOf(intervals []models.Interval) []models.TimeRange {
	out := make([]models.TimeRange, len(intervals))
	for i, iv := range intervals {
		out[i] = models.TimeRange{StartMin: iv.StartMin, EndMin: iv.EndMin}
	}
	return out
}

func describeConflict(c models.DateConflict) string {
	if c.FullDay && len(c.Ranges) == 0 {
		return fmt.Sprintf("%s (full-day)", c.Date)
	}
	labels := make([]string, len(c.Ranges))
	for i, r := range c.Ranges {
		labels[i] = fmt.Sprintf("%s — %s", FormatTimeOfDay12h(r.StartMin), FormatTimeOfDay12h(r.EndMin))
	}
	return fmt.Sprintf("%s (%s)", c.Date, strings.Join(labels, ", "))
}
