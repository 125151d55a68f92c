package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tugasgi/attendance-backend-go/internal/domain/attendance"
	"github.com/tugasgi/attendance-backend-go/internal/domain/user"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/geo"
	"github.com/tugasgi/attendance-backend-go/internal/service/file"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	fileService    file.FileService
	geofence       geo.Evaluator
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	fileService file.FileService,
	geofence geo.Evaluator,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		fileService:    fileService,
		geofence:       geofence,
	}
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}

// today returns the current UTC calendar date with a zero time component.
func today(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckEventRequest) (attendance.DayResponse, error) {
	return a.recordEvent(ctx, req, attendance.EventCheckIn)
}

// FieldCheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) FieldCheckIn(ctx context.Context, req attendance.CheckEventRequest) (attendance.DayResponse, error) {
	return a.recordEvent(ctx, req, attendance.EventFieldCheckIn)
}

// FieldCheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) FieldCheckOut(ctx context.Context, req attendance.CheckEventRequest) (attendance.DayResponse, error) {
	return a.recordEvent(ctx, req, attendance.EventFieldCheckOut)
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckEventRequest) (attendance.DayResponse, error) {
	return a.recordEvent(ctx, req, attendance.EventCheckOut)
}

// requiresGeofence reports whether kind must happen inside the office radius.
// The field legs happen at customer locations, so only the bracketing office
// checks are fenced.
func requiresGeofence(kind attendance.EventKind) bool {
	return kind == attendance.EventCheckIn || kind == attendance.EventCheckOut
}

// recordEvent runs the shared submission path: the client's claimed action is
// re-validated against the stored day, never trusted.
func (a *AttendanceServiceImpl) recordEvent(ctx context.Context, req attendance.CheckEventRequest, kind attendance.EventKind) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	target, err := a.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	// A zero coordinate pair means the device never produced a fix.
	if req.Latitude == 0 && req.Longitude == 0 {
		return attendance.DayResponse{}, attendance.ErrLocationUnavailable
	}

	if requiresGeofence(kind) && !target.IsAdmin() {
		if verdict := a.geofence.Evaluate(req.Latitude, req.Longitude); !verdict.InRange {
			return attendance.DayResponse{}, attendance.ErrOutOfGeofence
		}
	}

	now := time.Now().UTC()
	date := today(now)

	snap, err := a.attendanceRepo.GetSnapshot(ctx, target.ID, date)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	if err := attendance.ValidateEvent(snap.Progress(target.IsField), kind); err != nil {
		return attendance.DayResponse{}, err
	}

	photoURL := req.PhotoURL
	if req.File != nil && req.FileHeader != nil {
		path, err := a.fileService.UploadAttendancePhoto(ctx, target.ID, date, req.File, req.FileHeader.Filename, string(kind))
		if err != nil {
			return attendance.DayResponse{}, fmt.Errorf("failed to store attendance photo: %w", err)
		}
		url, err := a.fileService.GetFileURL(ctx, path, 0)
		if err != nil {
			return attendance.DayResponse{}, fmt.Errorf("failed to resolve attendance photo url: %w", err)
		}
		photoURL = &url
	}

	eventID, err := newID()
	if err != nil {
		return attendance.DayResponse{}, err
	}
	event := attendance.CheckEvent{
		ID:        eventID,
		Kind:      kind,
		Time:      now,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		PhotoURL:  photoURL,
	}

	if snap == nil {
		dayID, err := newID()
		if err != nil {
			return attendance.DayResponse{}, err
		}
		day := attendance.AttendanceDay{ID: dayID, UserID: target.ID, Date: date}
		err = a.attendanceRepo.CreateDayWithEvent(ctx, day, event)
		if err != nil {
			return attendance.DayResponse{}, err
		}
	} else {
		event.AttendanceDayID = snap.Day.ID
		if err := a.attendanceRepo.AddEvent(ctx, event); err != nil {
			return attendance.DayResponse{}, err
		}
	}

	return a.dayResponse(ctx, target, date)
}

// SubmitLeave implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SubmitLeave(ctx context.Context, req attendance.SubmitLeaveRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	target, err := a.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	now := time.Now().UTC()
	date := today(now)

	snap, err := a.attendanceRepo.GetSnapshot(ctx, target.ID, date)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	if err := attendance.ValidateLeave(snap.Progress(target.IsField)); err != nil {
		return attendance.DayResponse{}, err
	}

	leaveID, err := newID()
	if err != nil {
		return attendance.DayResponse{}, err
	}
	leave := attendance.LeaveRequest{
		ID:      leaveID,
		Kind:    attendance.LeaveKind(req.Kind),
		Time:    now,
		Remarks: req.Remarks,
	}

	if snap == nil {
		dayID, err := newID()
		if err != nil {
			return attendance.DayResponse{}, err
		}
		day := attendance.AttendanceDay{ID: dayID, UserID: target.ID, Date: date}
		if err := a.attendanceRepo.CreateDayWithLeave(ctx, day, leave); err != nil {
			return attendance.DayResponse{}, err
		}
	} else {
		leave.AttendanceDayID = snap.Day.ID
		if err := a.attendanceRepo.AddLeave(ctx, leave); err != nil {
			return attendance.DayResponse{}, err
		}
	}

	return a.dayResponse(ctx, target, date)
}

// SubmitEarlyLeave implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SubmitEarlyLeave(ctx context.Context, req attendance.SubmitEarlyLeaveRequest) (attendance.DayResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DayResponse{}, err
	}

	target, err := a.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	now := time.Now().UTC()
	date := today(now)

	snap, err := a.attendanceRepo.GetSnapshot(ctx, target.ID, date)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	if err := attendance.ValidateEarlyLeave(snap.Progress(target.IsField)); err != nil {
		return attendance.DayResponse{}, err
	}

	earlyLeaveID, err := newID()
	if err != nil {
		return attendance.DayResponse{}, err
	}
	earlyLeave := attendance.EarlyLeaveRequest{
		ID:      earlyLeaveID,
		Kind:    attendance.EarlyLeaveKind(req.Kind),
		Time:    now,
		Remarks: req.Remarks,
	}

	if snap == nil {
		dayID, err := newID()
		if err != nil {
			return attendance.DayResponse{}, err
		}
		day := attendance.AttendanceDay{ID: dayID, UserID: target.ID, Date: date}
		if err := a.attendanceRepo.CreateDayWithEarlyLeave(ctx, day, earlyLeave); err != nil {
			return attendance.DayResponse{}, err
		}
	} else {
		earlyLeave.AttendanceDayID = snap.Day.ID
		if err := a.attendanceRepo.AddEarlyLeave(ctx, earlyLeave); err != nil {
			return attendance.DayResponse{}, err
		}
	}

	return a.dayResponse(ctx, target, date)
}

// GetUserDay implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetUserDay(ctx context.Context, userID string, date time.Time) (attendance.DayResponse, error) {
	target, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return attendance.DayResponse{}, err
	}

	return a.dayResponse(ctx, target, date)
}

func (a *AttendanceServiceImpl) dayResponse(ctx context.Context, target user.User, date time.Time) (attendance.DayResponse, error) {
	snap, err := a.attendanceRepo.GetSnapshot(ctx, target.ID, date)
	if err != nil {
		return attendance.DayResponse{}, err
	}
	return attendance.NewDayResponse(snap, target.ID, date, target.IsField), nil
}

// ListReports implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListReports(ctx context.Context, filter attendance.ReportFilter) (attendance.ListReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListReportResponse{}, err
	}

	var (
		reports []attendance.DayReport
		err     error
	)
	if filter.Day != "" {
		date, _ := time.Parse(attendance.DateLayout, filter.Day)
		reports, err = a.attendanceRepo.ListByDay(ctx, date)
	} else {
		month, _ := time.Parse(attendance.MonthLayout, filter.Month)
		reports, err = a.attendanceRepo.ListByMonth(ctx, month.Year(), month.Month())
	}
	if err != nil {
		return attendance.ListReportResponse{}, err
	}

	resp := attendance.ListReportResponse{Reports: []attendance.DayReportResponse{}}
	for _, r := range reports {
		resp.Reports = append(resp.Reports, attendance.NewDayReportResponse(r))
	}

	return resp, nil
}
