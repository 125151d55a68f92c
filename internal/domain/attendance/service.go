package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations. Every
// submission is re-validated server-side against the stored day before it is
// written; client-side gating is a convenience only.
type AttendanceService interface {
	// CheckIn records the opening check of the day.
	CheckIn(ctx context.Context, req CheckEventRequest) (DayResponse, error)

	// FieldCheckIn records arrival at the field location (field departments only).
	FieldCheckIn(ctx context.Context, req CheckEventRequest) (DayResponse, error)

	// FieldCheckOut records departure from the field location.
	FieldCheckOut(ctx context.Context, req CheckEventRequest) (DayResponse, error)

	// CheckOut records the closing check of the day.
	CheckOut(ctx context.Context, req CheckEventRequest) (DayResponse, error)

	// SubmitLeave marks the whole day as an absence.
	SubmitLeave(ctx context.Context, req SubmitLeaveRequest) (DayResponse, error)

	// SubmitEarlyLeave records a mid-day exception.
	SubmitEarlyLeave(ctx context.Context, req SubmitEarlyLeaveRequest) (DayResponse, error)

	// GetUserDay returns one user's day, derived state included. Days with
	// nothing recorded are returned as NotStarted, not as an error.
	GetUserDay(ctx context.Context, userID string, date time.Time) (DayResponse, error)

	// ListReports returns the admin report for one day or one month.
	ListReports(ctx context.Context, filter ReportFilter) (ListReportResponse, error)
}
