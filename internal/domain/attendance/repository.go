package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance days and their
// children. Snapshot reads return nil when no day exists for the pair.
type AttendanceRepository interface {
	// GetSnapshot loads the day and everything recorded against it in one read.
	GetSnapshot(ctx context.Context, userID string, date time.Time) (*DaySnapshot, error)

	// CreateDayWithEvent inserts the day and its first check event atomically.
	// A concurrent winner on the (user_id, date) unique pair surfaces as
	// ErrAlreadyRecorded.
	CreateDayWithEvent(ctx context.Context, day AttendanceDay, event CheckEvent) error

	// AddEvent appends a check event to an existing day. A duplicate kind on
	// the same day surfaces as ErrAlreadyRecorded; a leave recorded since the
	// caller's snapshot surfaces as ErrDayOnLeave.
	AddEvent(ctx context.Context, event CheckEvent) error

	// CreateDayWithLeave inserts the day and its leave atomically.
	CreateDayWithLeave(ctx context.Context, day AttendanceDay, leave LeaveRequest) error

	// AddLeave attaches a leave to an existing day. A check event recorded
	// since the caller's snapshot surfaces as ErrLeaveAfterCheckIn.
	AddLeave(ctx context.Context, leave LeaveRequest) error

	// CreateDayWithEarlyLeave inserts the day and its early-leave atomically.
	CreateDayWithEarlyLeave(ctx context.Context, day AttendanceDay, earlyLeave EarlyLeaveRequest) error

	// AddEarlyLeave attaches an early-leave to an existing day.
	AddEarlyLeave(ctx context.Context, earlyLeave EarlyLeaveRequest) error

	// ListByDay returns every user's report for one calendar day.
	ListByDay(ctx context.Context, date time.Time) ([]DayReport, error)

	// ListByMonth returns every report whose date falls in the given month.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]DayReport, error)
}
