package schedule

import (
	"sort"

	"seminarhall/models"
)

// BookingSet holds the normalized intervals of one booking snapshot, keyed by
// date. Intervals carry their hall identity, so one set serves queries for
// any hall. A set is rebuilt wholesale from the raw records on every check;
// it is never mutated incrementally.
type BookingSet map[string][]models.Interval

// ForHallDate returns the intervals of the given hall on the given date.
func (bs BookingSet) ForHallDate(hall, date string) []models.Interval {
	var out []models.Interval
	for _, iv := range bs[date] {
		if iv.MatchesHall(hall) {
			out = append(out, iv)
		}
	}
	return out
}

// Normalize converts raw seminar records into canonical intervals. Only
// APPROVED records participate; everything else is informational and never
// blocks availability.
//
// Shape resolution per record, in priority order:
//  1. an explicit per-date override map, or distinct start and end dates
//     -> multi-day: one interval per date, full-day unless overridden;
//  2. parseable start and end times -> single time-slot on one date;
//  3. anything else -> full-day block on the record's date.
//
// A record whose times fail to parse degrades to a full-day block rather
// than being dropped: the author meant to occupy the hall, so the engine
// errs toward over-blocking.
func Normalize(seminars []models.Seminar) BookingSet {
	set := make(BookingSet)
	for i := range seminars {
		s := &seminars[i]
		if s.Status != models.StatusApproved {
			continue
		}
		hallName, hallID := s.HallKeys()

		if dates, overrides, ok := multiDayShape(s); ok {
			for _, date := range dates {
				slot, present := overrides[date]
				if !present || slot == nil {
					set.add(fullDay(s, hallName, hallID, date))
					continue
				}
				start, end, parsed := slotTimes(slot)
				if !parsed || end <= start {
					// Bad override times degrade to full-day.
					set.add(fullDay(s, hallName, hallID, date))
					continue
				}
				set.add(models.Interval{
					HallName: hallName,
					HallID:   hallID,
					Date:     date,
					StartMin: start,
					EndMin:   end,
					Source:   s,
				})
			}
			continue
		}

		date, ok := normalizeDateKey(firstNonEmpty(s.Date, s.StartDate, s.DateFrom))
		if !ok {
			continue
		}

		start, sOK := ParseTimeOfDay(s.StartTime)
		end, eOK := ParseTimeOfDay(s.EndTime)
		if !sOK || !eOK || end <= start {
			set.add(fullDay(s, hallName, hallID, date))
			continue
		}
		set.add(models.Interval{
			HallName: hallName,
			HallID:   hallID,
			Date:     date,
			StartMin: start,
			EndMin:   end,
			Source:   s,
		})
	}
	return set
}

func (bs BookingSet) add(iv models.Interval) {
	bs[iv.Date] = append(bs[iv.Date], iv)
}

func fullDay(s *models.Seminar, hallName, hallID, date string) models.Interval {
	return models.Interval{
		HallName: hallName,
		HallID:   hallID,
		Date:     date,
		StartMin: 0,
		EndMin:   MinutesPerDay,
		FullDay:  true,
		Source:   s,
	}
}

// multiDayShape resolves the multi-day encodings: an explicit DaySlots map,
// or a start/end date pair that actually spans more than one day. It returns
// the expanded date keys and, when present, the per-date overrides.
func multiDayShape(s *models.Seminar) ([]string, map[string]*models.DaySlot, bool) {
	startKey, sOK := normalizeDateKey(firstNonEmpty(s.StartDate, s.DateFrom))
	endKey, eOK := normalizeDateKey(firstNonEmpty(s.EndDate, s.DateTo))

	if len(s.DaySlots) > 0 {
		if !sOK || !eOK {
			// Derive the span from the override keys themselves.
			dates := make([]string, 0, len(s.DaySlots))
			for k := range s.DaySlots {
				if key, ok := normalizeDateKey(k); ok {
					dates = append(dates, key)
				}
			}
			sort.Strings(dates)
			return dates, s.DaySlots, len(dates) > 0
		}
		dates, err := DateRange(startKey, endKey)
		if err != nil {
			return nil, nil, false
		}
		return dates, s.DaySlots, true
	}

	if sOK && eOK && startKey != endKey {
		dates, err := DateRange(startKey, endKey)
		if err != nil {
			return nil, nil, false
		}
		return dates, nil, true
	}

	// A record that self-identifies as a day booking with equal start/end
	// dates is a single full-day date.
	if sOK && eOK && s.Slot == "Day" {
		return []string{startKey}, nil, true
	}
	return nil, nil, false
}

func slotTimes(slot *models.DaySlot) (start, end int, ok bool) {
	startText := firstNonEmpty(slot.StartTime, slot.Start)
	endText := firstNonEmpty(slot.EndTime, slot.End)
	s, sOK := ParseTimeOfDay(startText)
	e, eOK := ParseTimeOfDay(endText)
	if !sOK || !eOK {
		return 0, 0, false
	}
	return s, e, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
