package models

// TimeRange is a start/end pair in minutes from midnight.
type TimeRange struct {
	StartMin int `json:"startMin"`
	EndMin   int `json:"endMin"`
}

// AvailabilityRequest is a candidate booking to check: either a single
// time-range on one date (Mode "time") or a multi-day range with optional
// per-date overrides (Mode "day"). Dates are YYYY-MM-DD, times are "HH:MM".
type AvailabilityRequest struct {
	Hall string `json:"hall" binding:"required"`
	Mode string `json:"mode" binding:"required,oneof=time day"`

	// Time mode.
	Date      string `json:"date,omitempty" binding:"omitempty,datekey"`
	StartTime string `json:"startTime,omitempty" binding:"omitempty,hhmm"`
	EndTime   string `json:"endTime,omitempty" binding:"omitempty,hhmm"`

	// Day mode. A date missing from DaySlots (or mapped to nil) is a
	// full-day claim for that date.
	StartDate string              `json:"startDate,omitempty" binding:"omitempty,datekey"`
	EndDate   string              `json:"endDate,omitempty" binding:"omitempty,datekey"`
	DaySlots  map[string]*DaySlot `json:"daySlots,omitempty"`
}

// DateConflict describes one conflicting date in a check result.
type DateConflict struct {
	Date    string      `json:"date"`
	FullDay bool        `json:"fullDay"`
	Ranges  []TimeRange `json:"ranges,omitempty"` // existing bookings that clash
}

// DateSuggestion is a same-day alternative slot for a conflicting date.
type DateSuggestion struct {
	Date  string    `json:"date"`
	Range TimeRange `json:"range"`
	Label string    `json:"label"` // e.g., "11:00 AM — 12:00 PM"
}

// CheckResult is the outcome of an availability check. A conflict is a
// normal OK=false result, never an error.
type CheckResult struct {
	OK          bool             `json:"ok"`
	Message     string           `json:"message"`
	Conflicts   []DateConflict   `json:"conflicts,omitempty"`
	Suggestions []DateSuggestion `json:"suggestions,omitempty"`
}

// DayAvailability is the per-day view served to calendars and forms.
type DayAvailability struct {
	Hall             string        `json:"hall"`
	Date             string        `json:"date"`
	IsFullDayBlocked bool          `json:"isFullDayBlocked"`
	MergedBlocks     []MergedBlock `json:"mergedBlocks"`
	FreeRanges       []FreeRange   `json:"freeRanges"`
	PercentFree      int           `json:"percentFree"`
}

// DaySummary is one cell of the month occupancy grid.
type DaySummary struct {
	Date         string `json:"date"`
	BookingCount int    `json:"bookingCount"`
	PercentFree  int    `json:"percentFree"`
	Tier         string `json:"tier"` // "red", "orange" or "green"
}
