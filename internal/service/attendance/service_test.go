package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tugasgi/attendance-backend-go/internal/domain/attendance"
	"github.com/tugasgi/attendance-backend-go/internal/domain/user"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/geo"
	attendanceservice "github.com/tugasgi/attendance-backend-go/internal/service/attendance"
)

const (
	officeLat  = -6.2000
	officeLong = 106.8166

	officeUserID = "user-office"
	fieldUserID  = "user-field"
	adminUserID  = "user-admin"
)

// stubUserRepo serves a fixed set of users.
type stubUserRepo struct {
	users map[string]user.User
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (r *stubUserRepo) Update(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (r *stubUserRepo) SoftDelete(ctx context.Context, id string) error            { return nil }
func (r *stubUserRepo) List(ctx context.Context, f user.ListUserFilter) ([]user.User, error) {
	return nil, nil
}

type dayKey struct {
	userID string
	date   string
}

// stubAttendanceRepo keeps snapshots in memory and enforces the same unique
// pairs the database schema does.
type stubAttendanceRepo struct {
	days map[dayKey]*attendance.DaySnapshot
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{days: make(map[dayKey]*attendance.DaySnapshot)}
}

func keyOf(userID string, date time.Time) dayKey {
	return dayKey{userID: userID, date: date.Format("2006-01-02")}
}

func (r *stubAttendanceRepo) GetSnapshot(ctx context.Context, userID string, date time.Time) (*attendance.DaySnapshot, error) {
	snap, ok := r.days[keyOf(userID, date)]
	if !ok {
		return nil, nil
	}
	cp := *snap
	return &cp, nil
}

func (r *stubAttendanceRepo) CreateDayWithEvent(ctx context.Context, day attendance.AttendanceDay, event attendance.CheckEvent) error {
	k := keyOf(day.UserID, day.Date)
	if _, exists := r.days[k]; exists {
		return attendance.ErrAlreadyRecorded
	}
	event.AttendanceDayID = day.ID
	r.days[k] = &attendance.DaySnapshot{Day: day, Events: []attendance.CheckEvent{event}}
	return nil
}

func (r *stubAttendanceRepo) findDay(dayID string) *attendance.DaySnapshot {
	for _, snap := range r.days {
		if snap.Day.ID == dayID {
			return snap
		}
	}
	return nil
}

func (r *stubAttendanceRepo) AddEvent(ctx context.Context, event attendance.CheckEvent) error {
	snap := r.findDay(event.AttendanceDayID)
	if snap == nil {
		return attendance.ErrDayNotFound
	}
	if snap.HasEvent(event.Kind) {
		return attendance.ErrAlreadyRecorded
	}
	snap.Events = append(snap.Events, event)
	return nil
}

func (r *stubAttendanceRepo) CreateDayWithLeave(ctx context.Context, day attendance.AttendanceDay, leave attendance.LeaveRequest) error {
	k := keyOf(day.UserID, day.Date)
	if _, exists := r.days[k]; exists {
		return attendance.ErrAlreadyRecorded
	}
	leave.AttendanceDayID = day.ID
	r.days[k] = &attendance.DaySnapshot{Day: day, Leave: &leave}
	return nil
}

func (r *stubAttendanceRepo) AddLeave(ctx context.Context, leave attendance.LeaveRequest) error {
	snap := r.findDay(leave.AttendanceDayID)
	if snap == nil {
		return attendance.ErrDayNotFound
	}
	if snap.Leave != nil {
		return attendance.ErrAlreadyRecorded
	}
	snap.Leave = &leave
	return nil
}

func (r *stubAttendanceRepo) CreateDayWithEarlyLeave(ctx context.Context, day attendance.AttendanceDay, earlyLeave attendance.EarlyLeaveRequest) error {
	k := keyOf(day.UserID, day.Date)
	if _, exists := r.days[k]; exists {
		return attendance.ErrAlreadyRecorded
	}
	earlyLeave.AttendanceDayID = day.ID
	r.days[k] = &attendance.DaySnapshot{Day: day, EarlyLeave: &earlyLeave}
	return nil
}

func (r *stubAttendanceRepo) AddEarlyLeave(ctx context.Context, earlyLeave attendance.EarlyLeaveRequest) error {
	snap := r.findDay(earlyLeave.AttendanceDayID)
	if snap == nil {
		return attendance.ErrDayNotFound
	}
	if snap.EarlyLeave != nil {
		return attendance.ErrAlreadyRecorded
	}
	snap.EarlyLeave = &earlyLeave
	return nil
}

func (r *stubAttendanceRepo) ListByDay(ctx context.Context, date time.Time) ([]attendance.DayReport, error) {
	var reports []attendance.DayReport
	for k, snap := range r.days {
		if k.date == date.Format("2006-01-02") {
			reports = append(reports, attendance.DayReport{Snapshot: *snap, UserID: k.userID})
		}
	}
	return reports, nil
}

func (r *stubAttendanceRepo) ListByMonth(ctx context.Context, year int, month time.Month) ([]attendance.DayReport, error) {
	var reports []attendance.DayReport
	prefix := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
	for k, snap := range r.days {
		if len(k.date) >= 7 && k.date[:7] == prefix {
			reports = append(reports, attendance.DayReport{Snapshot: *snap, UserID: k.userID})
		}
	}
	return reports, nil
}

func newService(repo *stubAttendanceRepo) attendance.AttendanceService {
	users := &stubUserRepo{users: map[string]user.User{
		officeUserID: {ID: officeUserID, Username: "budi", Role: user.RoleUser, IsField: false},
		fieldUserID:  {ID: fieldUserID, Username: "sari", Role: user.RoleUser, IsField: true},
		adminUserID:  {ID: adminUserID, Username: "admin", Role: user.RoleAdmin, IsField: false},
	}}
	return attendanceservice.NewAttendanceService(
		repo, users, nil,
		geo.NewEvaluator(officeLat, officeLong, 100),
	)
}

func atOffice(userID string) attendance.CheckEventRequest {
	return attendance.CheckEventRequest{UserID: userID, Latitude: officeLat, Longitude: officeLong}
}

func farAway(userID string) attendance.CheckEventRequest {
	// ~500m north of the office.
	return attendance.CheckEventRequest{UserID: userID, Latitude: officeLat + 0.0045, Longitude: officeLong}
}

func TestCheckInCheckOut_OfficeUser(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	resp, err := svc.CheckIn(ctx, atOffice(officeUserID))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateAwaitingCheckOut), resp.State)
	require.NotNil(t, resp.NextAction)
	assert.Equal(t, string(attendance.EventCheckOut), *resp.NextAction)
	assert.Len(t, resp.Events, 1)

	resp, err = svc.CheckOut(ctx, atOffice(officeUserID))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateDone), resp.State)
	assert.Nil(t, resp.NextAction)
	assert.Len(t, resp.Events, 2)
}

func TestCheckIn_OutOfGeofence(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	_, err := svc.CheckIn(ctx, farAway(officeUserID))
	assert.ErrorIs(t, err, attendance.ErrOutOfGeofence)
}

func TestCheckIn_AdminExemptFromGeofence(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	resp, err := svc.CheckIn(ctx, farAway(adminUserID))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateAwaitingCheckOut), resp.State)
}

func TestCheckIn_LocationUnavailable(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	_, err := svc.CheckIn(ctx, attendance.CheckEventRequest{UserID: officeUserID})
	assert.ErrorIs(t, err, attendance.ErrLocationUnavailable)
}

func TestCheckIn_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	_, err := svc.CheckIn(ctx, atOffice(officeUserID))
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, atOffice(officeUserID))
	assert.ErrorIs(t, err, attendance.ErrAlreadyRecorded)
}

func TestFieldSequence(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	_, err := svc.CheckIn(ctx, atOffice(fieldUserID))
	require.NoError(t, err)

	// Skipping the field check-in is rejected and the state stays put.
	_, err = svc.FieldCheckOut(ctx, farAway(fieldUserID))
	assert.ErrorIs(t, err, attendance.ErrOutOfSequence)

	day, err := svc.GetUserDay(ctx, fieldUserID, time.Now().UTC().Truncate(24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateAwaitingFieldCheckIn), day.State)

	// The field legs are not fenced to the office radius.
	_, err = svc.FieldCheckIn(ctx, farAway(fieldUserID))
	require.NoError(t, err)
	_, err = svc.FieldCheckOut(ctx, farAway(fieldUserID))
	require.NoError(t, err)

	resp, err := svc.CheckOut(ctx, atOffice(fieldUserID))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateDone), resp.State)
	assert.Len(t, resp.Events, 4)
}

func TestFieldCheckIn_OfficeUserRejected(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	_, err := svc.CheckIn(ctx, atOffice(officeUserID))
	require.NoError(t, err)

	_, err = svc.FieldCheckIn(ctx, atOffice(officeUserID))
	assert.ErrorIs(t, err, attendance.ErrOutOfSequence)
}

func TestSubmitLeave(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	resp, err := svc.SubmitLeave(ctx, attendance.SubmitLeaveRequest{UserID: officeUserID, Kind: "Sick"})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateOnLeave), resp.State)
	assert.Nil(t, resp.NextAction)
	require.NotNil(t, resp.Leave)
	assert.Equal(t, "Sick", resp.Leave.Kind)

	// Any check on a leave day is rejected.
	_, err = svc.CheckIn(ctx, atOffice(officeUserID))
	assert.ErrorIs(t, err, attendance.ErrDayOnLeave)
}

func TestSubmitLeave_AfterCheckIn(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	_, err := svc.CheckIn(ctx, atOffice(officeUserID))
	require.NoError(t, err)

	_, err = svc.SubmitLeave(ctx, attendance.SubmitLeaveRequest{UserID: officeUserID, Kind: "Leave"})
	assert.ErrorIs(t, err, attendance.ErrLeaveAfterCheckIn)
}

func TestSubmitEarlyLeave_DoesNotBlockCheckOut(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	_, err := svc.CheckIn(ctx, atOffice(officeUserID))
	require.NoError(t, err)

	resp, err := svc.SubmitEarlyLeave(ctx, attendance.SubmitEarlyLeaveRequest{UserID: officeUserID, Kind: "Early"})
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateOnEarlyLeave), resp.State)
	require.NotNil(t, resp.NextAction)
	assert.Equal(t, string(attendance.EventCheckOut), *resp.NextAction)

	resp, err = svc.CheckOut(ctx, atOffice(officeUserID))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateDone), resp.State)
}

func TestSubmitEarlyLeave_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	_, err := svc.SubmitEarlyLeave(ctx, attendance.SubmitEarlyLeaveRequest{UserID: officeUserID, Kind: "Time"})
	require.NoError(t, err)

	_, err = svc.SubmitEarlyLeave(ctx, attendance.SubmitEarlyLeaveRequest{UserID: officeUserID, Kind: "Early"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyRecorded)
}

func TestGetUserDay_Empty(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	resp, err := svc.GetUserDay(ctx, officeUserID, time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, string(attendance.StateNotStarted), resp.State)
	require.NotNil(t, resp.NextAction)
	assert.Equal(t, string(attendance.EventCheckIn), *resp.NextAction)
	assert.Empty(t, resp.Events)
}

func TestGetUserDay_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	_, err := svc.GetUserDay(ctx, "missing", time.Now())
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestListReports_FilterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService(newStubAttendanceRepo())

	_, err := svc.ListReports(ctx, attendance.ReportFilter{})
	assert.Error(t, err)

	_, err = svc.ListReports(ctx, attendance.ReportFilter{Day: "2026-08-03", Month: "2026-08"})
	assert.Error(t, err)

	_, err = svc.ListReports(ctx, attendance.ReportFilter{Day: "03-08-2026"})
	assert.Error(t, err)
}

func TestListReports_ByDay(t *testing.T) {
	ctx := context.Background()
	repo := newStubAttendanceRepo()
	svc := newService(repo)

	_, err := svc.CheckIn(ctx, atOffice(officeUserID))
	require.NoError(t, err)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	resp, err := svc.ListReports(ctx, attendance.ReportFilter{Day: today.Format("2006-01-02")})
	require.NoError(t, err)
	require.Len(t, resp.Reports, 1)
	assert.Equal(t, officeUserID, resp.Reports[0].UserID)
}
