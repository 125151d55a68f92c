package attendance

import (
	"time"
)

// EventKind is the type of a check event. Values match the wire/database enum.
type EventKind string

const (
	EventCheckIn       EventKind = "CheckIn"
	EventFieldCheckIn  EventKind = "FieldCheckIn"
	EventFieldCheckOut EventKind = "FieldCheckOut"
	EventCheckOut      EventKind = "CheckOut"
)

// ValidEventKind reports whether k is one of the four known kinds.
func ValidEventKind(k EventKind) bool {
	switch k {
	case EventCheckIn, EventFieldCheckIn, EventFieldCheckOut, EventCheckOut:
		return true
	}
	return false
}

// LeaveKind is the reason for a whole-day absence.
type LeaveKind string

const (
	LeaveSick     LeaveKind = "Sick"
	LeaveVacation LeaveKind = "Leave"
)

// EarlyLeaveKind is the reason for a mid-day exception ("izin").
type EarlyLeaveKind string

const (
	EarlyLeaveWorkingHours   EarlyLeaveKind = "Time"
	EarlyLeaveEarlyDeparture EarlyLeaveKind = "Early"
)

// AttendanceDay anchors all of a user's records for one calendar date.
// At most one exists per (user, date); the pair is unique at the storage layer.
type AttendanceDay struct {
	ID        string
	UserID    string
	Date      time.Time // calendar day, time component zero
	CreatedAt time.Time
}

// CheckEvent is an immutable check action recorded against an AttendanceDay.
// At most one event per kind exists per day.
type CheckEvent struct {
	ID              string
	AttendanceDayID string
	Kind            EventKind
	Time            time.Time // absolute instant, UTC
	Latitude        float64
	Longitude       float64
	PhotoURL        *string
	CreatedAt       time.Time
}

// LeaveRequest marks the whole day as an absence. Mutually exclusive with
// check events on the same day.
type LeaveRequest struct {
	ID              string
	AttendanceDayID string
	Kind            LeaveKind
	Time            time.Time
	Remarks         *string
	CreatedAt       time.Time
}

// EarlyLeaveRequest is a mid-day exception, independent of LeaveRequest.
type EarlyLeaveRequest struct {
	ID              string
	AttendanceDayID string
	Kind            EarlyLeaveKind
	Time            time.Time
	Remarks         *string
	CreatedAt       time.Time
}

// DaySnapshot is everything recorded for one (user, date), read in one shot
// at the data-access boundary.
type DaySnapshot struct {
	Day        AttendanceDay
	Events     []CheckEvent
	Leave      *LeaveRequest
	EarlyLeave *EarlyLeaveRequest
}

// HasEvent reports whether an event of kind k is recorded in the snapshot.
func (s *DaySnapshot) HasEvent(k EventKind) bool {
	for _, ev := range s.Events {
		if ev.Kind == k {
			return true
		}
	}
	return false
}

// Progress derives the progression input from the snapshot. A nil snapshot is
// a day with nothing recorded yet.
func (s *DaySnapshot) Progress(isField bool) Progress {
	if s == nil {
		return Progress{Field: isField}
	}
	return Progress{
		Field:            isField,
		HasCheckIn:       s.HasEvent(EventCheckIn),
		HasFieldCheckIn:  s.HasEvent(EventFieldCheckIn),
		HasFieldCheckOut: s.HasEvent(EventFieldCheckOut),
		HasCheckOut:      s.HasEvent(EventCheckOut),
		HasLeave:         s.Leave != nil,
		HasEarlyLeave:    s.EarlyLeave != nil,
	}
}

// DayReport is a snapshot joined with its owner, used by the admin listing.
type DayReport struct {
	Snapshot DaySnapshot

	UserID         string
	Username       string
	FullName       string
	Role           string
	DepartmentID   string
	DepartmentName string
	IsField        bool
}
