// Package schedule is the hall availability and conflict-resolution engine.
// It is pure computation over an in-memory snapshot of seminar records: no
// I/O, no shared mutable state, safe to call concurrently.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"seminarhall/models"
)

// MinutesPerDay bounds a TimeOfDay value: [0, 1440).
const MinutesPerDay = 24 * 60

const dateLayout = "2006-01-02"

// ParseTimeOfDay parses "HH:MM" (24h) or "HH:MM AM/PM" into minutes from
// midnight. It reports ok=false on unparseable input instead of an error:
// callers treat a missing or bad time as "infer full-day".
func ParseTimeOfDay(text string) (int, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}

	meridiem := ""
	upper := strings.ToUpper(s)
	for _, suffix := range []string{"AM", "PM"} {
		if strings.HasSuffix(upper, suffix) {
			meridiem = suffix
			s = strings.TrimSpace(s[:len(s)-len(suffix)])
			break
		}
	}

	hh, mm, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return 0, false
	}
	if m < 0 || m > 59 {
		return 0, false
	}

	switch meridiem {
	case "AM":
		if h < 1 || h > 12 {
			return 0, false
		}
		if h == 12 {
			h = 0
		}
	case "PM":
		if h < 1 || h > 12 {
			return 0, false
		}
		if h < 12 {
			h += 12
		}
	default:
		if h < 0 || h > 23 {
			return 0, false
		}
	}
	return h*60 + m, true
}

// FormatTimeOfDay12h renders minutes from midnight as a 12-hour label with
// zero-padded fields and an AM/PM suffix, e.g. 540 -> "09:00 AM".
func FormatTimeOfDay12h(min int) string {
	h := min / 60
	m := min % 60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	hour12 := (h+11)%12 + 1
	return fmt.Sprintf("%02d:%02d %s", hour12, m, period)
}

// Overlaps is the strict half-open interval overlap test. Touching intervals
// (aEnd == bStart) do not overlap, and a degenerate interval overlaps
// nothing.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	if aEnd <= aStart || bEnd <= bStart {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// ClampToWindow clips a time range into the working window. If the clipped
// end does not exceed the clipped start, the range is degenerate and the
// caller must drop it.
func ClampToWindow(start, end int, w models.WorkingWindow) (int, int) {
	if start < w.Start {
		start = w.Start
	}
	if end > w.End {
		end = w.End
	}
	return start, end
}

// DateRange returns the inclusive ascending list of YYYY-MM-DD keys between
// startDate and endDate. It fails when endDate precedes startDate or either
// key does not parse.
func DateRange(startDate, endDate string) ([]string, error) {
	sd, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	ed, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if ed.Before(sd) {
		return nil, fmt.Errorf("invalid range: end date %s precedes start date %s", endDate, startDate)
	}

	var out []string
	for d := sd; !d.After(ed); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(dateLayout))
	}
	return out, nil
}

// normalizeDateKey reduces the historical date encodings ("2025-03-10",
// "2025-03-10T09:30:00Z", RFC3339 with offset) to a plain YYYY-MM-DD key.
// Comparisons and grouping always use this key, never a timestamp, so
// timezone drift cannot split a day.
func normalizeDateKey(value string) (string, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return "", false
	}
	if t, _, found := strings.Cut(s, "T"); found {
		s = t
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", false
	}
	return s, true
}
