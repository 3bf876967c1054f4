package models

import "time"

// Booking statuses. Only APPROVED bookings block availability; every other
// status is informational.
const (
	StatusPending         = "PENDING"
	StatusApproved        = "APPROVED"
	StatusRejected        = "REJECTED"
	StatusCancelRequested = "CANCEL_REQUESTED"
	StatusCancelled       = "CANCELLED"
)

// DaySlot is the per-date time override inside a multi-day seminar record.
// A nil *DaySlot in the DaySlots map means that date is booked full-day.
type DaySlot struct {
	StartTime string `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime   string `bson:"endTime,omitempty" json:"endTime,omitempty"`
	// Older records used "start"/"end" instead of "startTime"/"endTime".
	Start string `bson:"start,omitempty" json:"start,omitempty"`
	End   string `bson:"end,omitempty" json:"end,omitempty"`
}

// Seminar is the raw booking record as stored. Upstream writers have been
// inconsistent about field names over time, so several aliases coexist; the
// schedule normalizer resolves them into canonical intervals.
type Seminar struct {
	ID string `bson:"id" json:"id"`

	// Hall identity: flat fields, or an embedded reference on older records.
	HallName string   `bson:"hallName,omitempty" json:"hallName,omitempty"`
	HallID   string   `bson:"hallId,omitempty" json:"hallId,omitempty"`
	Hall     *HallRef `bson:"hall,omitempty" json:"hall,omitempty"`

	Status string `bson:"status" json:"status"`

	// Single-slot shape: one date plus start/end times.
	Date      string `bson:"date,omitempty" json:"date,omitempty"`
	StartTime string `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime   string `bson:"endTime,omitempty" json:"endTime,omitempty"`

	// Multi-day shape: date range, optionally with per-date overrides.
	StartDate string              `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   string              `bson:"endDate,omitempty" json:"endDate,omitempty"`
	DateFrom  string              `bson:"dateFrom,omitempty" json:"dateFrom,omitempty"`
	DateTo    string              `bson:"dateTo,omitempty" json:"dateTo,omitempty"`
	DaySlots  map[string]*DaySlot `bson:"daySlots,omitempty" json:"daySlots,omitempty"`

	// Request metadata.
	Slot        string    `bson:"slot,omitempty" json:"slot,omitempty"` // "Custom" or "Day"
	SlotTitle   string    `bson:"slotTitle,omitempty" json:"slotTitle,omitempty"`
	BookingName string    `bson:"bookingName,omitempty" json:"bookingName,omitempty"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Department  string    `bson:"department,omitempty" json:"department,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Remarks     string    `bson:"remarks,omitempty" json:"remarks,omitempty"`
	AppliedAt   time.Time `bson:"appliedAt,omitempty" json:"appliedAt,omitempty"`
}

// HallKeys returns the hall display name and id after alias resolution.
func (s *Seminar) HallKeys() (name, id string) {
	name = s.HallName
	id = s.HallID
	if s.Hall != nil {
		if name == "" {
			name = s.Hall.Name
		}
		if id == "" {
			id = s.Hall.ID
		}
	}
	return name, id
}
