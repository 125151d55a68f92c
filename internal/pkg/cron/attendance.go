package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tugasgi/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs holds background work over attendance data.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

// LogOpenDays reports users who checked in but never completed their day.
// It only logs; nothing is auto-closed, the record stays as the user left it.
func (j *AttendanceJobs) LogOpenDays(ctx context.Context) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	reports, err := j.attendanceRepo.ListByDay(ctx, today)
	if err != nil {
		return fmt.Errorf("list attendance for open-day check: %w", err)
	}

	open := 0
	for _, r := range reports {
		p := r.Snapshot.Progress(r.IsField)
		if !p.HasCheckIn || p.HasCheckOut || p.HasLeave {
			continue
		}
		open++
		slog.Warn("Attendance day still open",
			"user_id", r.UserID,
			"username", r.Username,
			"state", string(attendance.StateOf(p)),
		)
	}

	slog.Info("Open-day check completed", "date", today.Format("2006-01-02"), "open_days", open)
	return nil
}
