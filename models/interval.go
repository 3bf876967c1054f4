package models

// WorkingWindow is the daily bound within which availability is computed,
// minutes from midnight, half-open [Start, End). Different call sites use
// different windows (booking forms vs month calendars), so it is always
// passed as a parameter.
type WorkingWindow struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Duration returns the window length in minutes.
func (w WorkingWindow) Duration() int {
	return w.End - w.Start
}

// Interval is the canonical normalized booking unit: one hall, one date, one
// half-open minute range. Produced exclusively by the schedule normalizer and
// immutable afterwards.
type Interval struct {
	HallName string   `json:"hallName"`
	HallID   string   `json:"hallId"`
	Date     string   `json:"date"`     // YYYY-MM-DD
	StartMin int      `json:"startMin"` // minutes from midnight
	EndMin   int      `json:"endMin"`
	FullDay  bool     `json:"fullDay"` // implies [0, 1440)
	Source   *Seminar `json:"-"`
}

// MatchesHall reports whether this interval belongs to the queried hall.
// Records are inconsistent about whether name or id is populated, so both
// forms are accepted as identity.
func (iv Interval) MatchesHall(hall string) bool {
	if hall == "" {
		return false
	}
	return iv.HallName == hall || iv.HallID == hall
}

// MergedBlock is a coalesced run of overlapping or touching intervals for one
// hall and date. Blocks are sorted by start and non-overlapping.
type MergedBlock struct {
	StartMin  int        `json:"startMin"`
	EndMin    int        `json:"endMin"`
	Intervals []Interval `json:"-"` // contributing intervals
}

// FreeRange is a gap between merged blocks inside the working window.
type FreeRange struct {
	StartMin int `json:"startMin"`
	EndMin   int `json:"endMin"`
}
