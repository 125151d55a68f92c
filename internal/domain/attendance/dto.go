package attendance

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/tugasgi/attendance-backend-go/internal/pkg/validator"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	TimeLayout  = "15:04:05"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// CheckEventRequest carries one check submission. The event kind comes from
// the route, never from the client payload.
type CheckEventRequest struct {
	UserID     string                `json:"user_id"`
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	PhotoURL   *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CheckEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.FileHeader != nil {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "photo",
				Message: "attendance photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitLeaveRequest struct {
	UserID  string  `json:"user_id"`
	Kind    string  `json:"kind"`
	Remarks *string `json:"remarks,omitempty"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	switch LeaveKind(r.Kind) {
	case LeaveSick, LeaveVacation:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: Sick, Leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitEarlyLeaveRequest struct {
	UserID  string  `json:"user_id"`
	Kind    string  `json:"kind"`
	Remarks *string `json:"remarks,omitempty"`
}

func (r *SubmitEarlyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	switch EarlyLeaveKind(r.Kind) {
	case EarlyLeaveWorkingHours, EarlyLeaveEarlyDeparture:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: Time, Early",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReportFilter selects attendance reports for exactly one calendar day or
// exactly one calendar month.
type ReportFilter struct {
	Day   string // "2006-01-02"
	Month string // "2006-01"
}

func (f ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case f.Day == "" && f.Month == "":
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "either day or month query parameter is required",
		})
	case f.Day != "" && f.Month != "":
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day and month are mutually exclusive",
		})
	case f.Day != "":
		if _, err := time.Parse(DateLayout, f.Day); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "day",
				Message: "day must be in YYYY-MM-DD format",
			})
		}
	default:
		if _, err := time.Parse(MonthLayout, f.Month); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSES
// ========================================

type CheckEventResponse struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Time      string  `json:"time"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	PhotoURL  *string `json:"photo_url,omitempty"`
}

type LeaveResponse struct {
	ID      string  `json:"id"`
	Kind    string  `json:"kind"`
	Time    string  `json:"time"`
	Remarks *string `json:"remarks,omitempty"`
}

type EarlyLeaveResponse struct {
	ID      string  `json:"id"`
	Kind    string  `json:"kind"`
	Time    string  `json:"time"`
	Remarks *string `json:"remarks,omitempty"`
}

// DayResponse is the canonical shape for one user's day: everything recorded
// plus the derived state and the single next permitted action.
type DayResponse struct {
	ID         string               `json:"id,omitempty"`
	UserID     string               `json:"user_id"`
	Date       string               `json:"date"`
	State      string               `json:"state"`
	NextAction *string              `json:"next_action,omitempty"`
	Events     []CheckEventResponse `json:"events"`
	Leave      *LeaveResponse       `json:"leave,omitempty"`
	EarlyLeave *EarlyLeaveResponse  `json:"early_leave,omitempty"`
}

type DayReportResponse struct {
	DayResponse

	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	IsField        bool   `json:"is_field"`
}

type ListReportResponse struct {
	Reports []DayReportResponse `json:"reports"`
}

// NewDayResponse maps a snapshot to its response shape. A nil snapshot stands
// for a day with nothing recorded yet.
func NewDayResponse(s *DaySnapshot, userID string, date time.Time, isField bool) DayResponse {
	p := s.Progress(isField)

	resp := DayResponse{
		UserID: userID,
		Date:   date.Format(DateLayout),
		State:  string(StateOf(p)),
		Events: []CheckEventResponse{},
	}

	if next, ok := NextAction(p); ok {
		n := string(next)
		resp.NextAction = &n
	}

	if s == nil {
		return resp
	}

	resp.ID = s.Day.ID
	for _, ev := range s.Events {
		resp.Events = append(resp.Events, CheckEventResponse{
			ID:        ev.ID,
			Kind:      string(ev.Kind),
			Time:      ev.Time.Format(TimeLayout),
			Latitude:  ev.Latitude,
			Longitude: ev.Longitude,
			PhotoURL:  ev.PhotoURL,
		})
	}
	if s.Leave != nil {
		resp.Leave = &LeaveResponse{
			ID:      s.Leave.ID,
			Kind:    string(s.Leave.Kind),
			Time:    s.Leave.Time.Format(TimeLayout),
			Remarks: s.Leave.Remarks,
		}
	}
	if s.EarlyLeave != nil {
		resp.EarlyLeave = &EarlyLeaveResponse{
			ID:      s.EarlyLeave.ID,
			Kind:    string(s.EarlyLeave.Kind),
			Time:    s.EarlyLeave.Time.Format(TimeLayout),
			Remarks: s.EarlyLeave.Remarks,
		}
	}

	return resp
}

func NewDayReportResponse(r DayReport) DayReportResponse {
	return DayReportResponse{
		DayResponse:    NewDayResponse(&r.Snapshot, r.UserID, r.Snapshot.Day.Date, r.IsField),
		Username:       r.Username,
		FullName:       r.FullName,
		DepartmentID:   r.DepartmentID,
		DepartmentName: r.DepartmentName,
		IsField:        r.IsField,
	}
}
