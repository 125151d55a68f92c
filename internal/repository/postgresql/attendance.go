package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tugasgi/attendance-backend-go/internal/domain/attendance"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// isUniqueViolation reports a PostgreSQL unique constraint error (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}

// GetSnapshot implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetSnapshot(ctx context.Context, userID string, date time.Time) (*attendance.DaySnapshot, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, user_id, date, created_at
		FROM attendance_days
		WHERE user_id = $1 AND date = $2
	`

	var snap attendance.DaySnapshot
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&snap.Day.ID, &snap.Day.UserID, &snap.Day.Date, &snap.Day.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no day yet for this pair
		}
		return nil, fmt.Errorf("failed to get attendance day: %w", err)
	}

	if err := a.loadChildren(ctx, q, &snap); err != nil {
		return nil, err
	}

	return &snap, nil
}

func (a *attendanceRepository) loadChildren(ctx context.Context, q database.Querier, snap *attendance.DaySnapshot) error {
	rows, err := q.Query(ctx, `
		SELECT id, attendance_day_id, kind, time, latitude, longitude, photo_url, created_at
		FROM check_events
		WHERE attendance_day_id = $1
		ORDER BY time ASC
	`, snap.Day.ID)
	if err != nil {
		return fmt.Errorf("failed to list check events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ev attendance.CheckEvent
		if err := rows.Scan(&ev.ID, &ev.AttendanceDayID, &ev.Kind, &ev.Time, &ev.Latitude, &ev.Longitude, &ev.PhotoURL, &ev.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan check event: %w", err)
		}
		snap.Events = append(snap.Events, ev)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read check events: %w", err)
	}

	var leave attendance.LeaveRequest
	err = q.QueryRow(ctx, `
		SELECT id, attendance_day_id, kind, time, remarks, created_at
		FROM leave_requests
		WHERE attendance_day_id = $1
	`, snap.Day.ID).Scan(&leave.ID, &leave.AttendanceDayID, &leave.Kind, &leave.Time, &leave.Remarks, &leave.CreatedAt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to get leave request: %w", err)
	}
	if err == nil {
		snap.Leave = &leave
	}

	var earlyLeave attendance.EarlyLeaveRequest
	err = q.QueryRow(ctx, `
		SELECT id, attendance_day_id, kind, time, remarks, created_at
		FROM early_leave_requests
		WHERE attendance_day_id = $1
	`, snap.Day.ID).Scan(&earlyLeave.ID, &earlyLeave.AttendanceDayID, &earlyLeave.Kind, &earlyLeave.Time, &earlyLeave.Remarks, &earlyLeave.CreatedAt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to get early leave request: %w", err)
	}
	if err == nil {
		snap.EarlyLeave = &earlyLeave
	}

	return nil
}

func (a *attendanceRepository) insertDay(ctx context.Context, tx pgx.Tx, day attendance.AttendanceDay) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO attendance_days (id, user_id, date)
		VALUES ($1, $2, $3)
	`, day.ID, day.UserID, day.Date)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race for (user_id, date); a concurrent submission won.
			return attendance.ErrAlreadyRecorded
		}
		return fmt.Errorf("failed to create attendance day: %w", err)
	}
	return nil
}

// insertEvent refuses to record a check event once a leave exists for the day.
// The guard runs inside the insert itself so a leave committed between the
// service's snapshot read and this write still blocks the event.
func (a *attendanceRepository) insertEvent(ctx context.Context, q database.Querier, event attendance.CheckEvent) error {
	tag, err := q.Exec(ctx, `
		INSERT INTO check_events (id, attendance_day_id, kind, time, latitude, longitude, photo_url)
		SELECT $1, $2, $3, $4, $5, $6, $7
		WHERE NOT EXISTS (
			SELECT 1 FROM leave_requests WHERE attendance_day_id = $2
		)
	`, event.ID, event.AttendanceDayID, event.Kind, event.Time, event.Latitude, event.Longitude, event.PhotoURL)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.ErrAlreadyRecorded
		}
		return fmt.Errorf("failed to create check event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrDayOnLeave
	}
	return nil
}

// CreateDayWithEvent implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateDayWithEvent(ctx context.Context, day attendance.AttendanceDay, event attendance.CheckEvent) error {
	return WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		if err := a.insertDay(ctx, tx, day); err != nil {
			return err
		}
		event.AttendanceDayID = day.ID
		return a.insertEvent(ctx, tx, event)
	})
}

// AddEvent implements attendance.AttendanceRepository.
func (a *attendanceRepository) AddEvent(ctx context.Context, event attendance.CheckEvent) error {
	return a.insertEvent(ctx, GetQuerier(ctx, a.db), event)
}

// insertLeave refuses to record a leave once any check event exists for the
// day, mirroring the guard in insertEvent. Two submissions that both saw an
// empty day cannot end up with a leave and a check event on the same row.
func (a *attendanceRepository) insertLeave(ctx context.Context, q database.Querier, leave attendance.LeaveRequest) error {
	tag, err := q.Exec(ctx, `
		INSERT INTO leave_requests (id, attendance_day_id, kind, time, remarks)
		SELECT $1, $2, $3, $4, $5
		WHERE NOT EXISTS (
			SELECT 1 FROM check_events WHERE attendance_day_id = $2
		)
	`, leave.ID, leave.AttendanceDayID, leave.Kind, leave.Time, leave.Remarks)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.ErrAlreadyRecorded
		}
		return fmt.Errorf("failed to create leave request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrLeaveAfterCheckIn
	}
	return nil
}

// CreateDayWithLeave implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateDayWithLeave(ctx context.Context, day attendance.AttendanceDay, leave attendance.LeaveRequest) error {
	return WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		if err := a.insertDay(ctx, tx, day); err != nil {
			return err
		}
		leave.AttendanceDayID = day.ID
		return a.insertLeave(ctx, tx, leave)
	})
}

// AddLeave implements attendance.AttendanceRepository.
func (a *attendanceRepository) AddLeave(ctx context.Context, leave attendance.LeaveRequest) error {
	return a.insertLeave(ctx, GetQuerier(ctx, a.db), leave)
}

func (a *attendanceRepository) insertEarlyLeave(ctx context.Context, q database.Querier, earlyLeave attendance.EarlyLeaveRequest) error {
	_, err := q.Exec(ctx, `
		INSERT INTO early_leave_requests (id, attendance_day_id, kind, time, remarks)
		VALUES ($1, $2, $3, $4, $5)
	`, earlyLeave.ID, earlyLeave.AttendanceDayID, earlyLeave.Kind, earlyLeave.Time, earlyLeave.Remarks)
	if err != nil {
		if isUniqueViolation(err) {
			return attendance.ErrAlreadyRecorded
		}
		return fmt.Errorf("failed to create early leave request: %w", err)
	}
	return nil
}

// CreateDayWithEarlyLeave implements attendance.AttendanceRepository.
func (a *attendanceRepository) CreateDayWithEarlyLeave(ctx context.Context, day attendance.AttendanceDay, earlyLeave attendance.EarlyLeaveRequest) error {
	return WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		if err := a.insertDay(ctx, tx, day); err != nil {
			return err
		}
		earlyLeave.AttendanceDayID = day.ID
		return a.insertEarlyLeave(ctx, tx, earlyLeave)
	})
}

// AddEarlyLeave implements attendance.AttendanceRepository.
func (a *attendanceRepository) AddEarlyLeave(ctx context.Context, earlyLeave attendance.EarlyLeaveRequest) error {
	return a.insertEarlyLeave(ctx, GetQuerier(ctx, a.db), earlyLeave)
}

// ListByDay implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByDay(ctx context.Context, date time.Time) ([]attendance.DayReport, error) {
	return a.listReports(ctx, `WHERE d.date = $1`, date)
}

// ListByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]attendance.DayReport, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return a.listReports(ctx, `WHERE d.date >= $1 AND d.date < $2`, start, end)
}

func (a *attendanceRepository) listReports(ctx context.Context, where string, args ...interface{}) ([]attendance.DayReport, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT d.id, d.user_id, d.date, d.created_at,
			   u.username, u.full_name, u.role,
			   dept.id, dept.name, dept.is_field
		FROM attendance_days d
		JOIN users u ON u.id = d.user_id
		JOIN departments dept ON dept.id = u.department_id
		` + where + `
		ORDER BY d.date ASC, u.username ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	var reports []attendance.DayReport
	for rows.Next() {
		var r attendance.DayReport
		if err := rows.Scan(
			&r.Snapshot.Day.ID, &r.Snapshot.Day.UserID, &r.Snapshot.Day.Date, &r.Snapshot.Day.CreatedAt,
			&r.Username, &r.FullName, &r.Role,
			&r.DepartmentID, &r.DepartmentName, &r.IsField,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		r.UserID = r.Snapshot.Day.UserID
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance days: %w", err)
	}

	for i := range reports {
		if err := a.loadChildren(ctx, q, &reports[i].Snapshot); err != nil {
			return nil, err
		}
	}

	return reports, nil
}
