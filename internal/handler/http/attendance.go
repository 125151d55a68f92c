package http

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tugasgi/attendance-backend-go/internal/domain/attendance"
	"github.com/tugasgi/attendance-backend-go/internal/domain/user"
	"github.com/tugasgi/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	FieldCheckIn(w http.ResponseWriter, r *http.Request)
	FieldCheckOut(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	SubmitLeave(w http.ResponseWriter, r *http.Request)
	SubmitEarlyLeave(w http.ResponseWriter, r *http.Request)
	GetUserDay(w http.ResponseWriter, r *http.Request)
	ListReports(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// decodeCheckEvent reads a check event submission. Clients submitting a photo
// send multipart/form-data with a "data" JSON field and a "photo" file; plain
// submissions send a JSON body.
func decodeCheckEvent(r *http.Request) (attendance.CheckEventRequest, error) {
	var req attendance.CheckEventRequest

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		// Parse multipart form (max 10MB)
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return req, err
		}

		if data := r.FormValue("data"); data != "" {
			if err := json.Unmarshal([]byte(data), &req); err != nil {
				return req, err
			}
		}

		file, header, err := r.FormFile("photo")
		if err == nil {
			req.File = file
			req.FileHeader = header
		} else if err != http.ErrMissingFile {
			return req, err
		}

		return req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, err
	}
	return req, nil
}

// resolveTargetUser fills req.UserID from the token when absent, and stops
// non-admins from recording on someone else's behalf.
func resolveTargetUser(r *http.Request, requestUserID string) (string, bool) {
	callerID, role, ok := callerClaims(r)
	if !ok {
		return "", false
	}
	if requestUserID == "" {
		return callerID, true
	}
	if requestUserID != callerID && !role.IsAdmin() {
		return "", false
	}
	return requestUserID, true
}

func (h *AttendanceHandlerImpl) handleCheckEvent(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	submit func(r *http.Request, req attendance.CheckEventRequest) (attendance.DayResponse, error),
) {
	req, err := decodeCheckEvent(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if req.File != nil {
		defer func(f multipart.File) { _ = f.Close() }(req.File)
	}

	userID, ok := resolveTargetUser(r, req.UserID)
	if !ok {
		response.Forbidden(w, "Cannot record attendance for another user")
		return
	}
	req.UserID = userID

	result, err := submit(r, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, message, result)
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.handleCheckEvent(w, r, "Check-in recorded", func(r *http.Request, req attendance.CheckEventRequest) (attendance.DayResponse, error) {
		return h.attendanceService.CheckIn(r.Context(), req)
	})
}

// FieldCheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) FieldCheckIn(w http.ResponseWriter, r *http.Request) {
	h.handleCheckEvent(w, r, "Field check-in recorded", func(r *http.Request, req attendance.CheckEventRequest) (attendance.DayResponse, error) {
		return h.attendanceService.FieldCheckIn(r.Context(), req)
	})
}

// FieldCheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) FieldCheckOut(w http.ResponseWriter, r *http.Request) {
	h.handleCheckEvent(w, r, "Field check-out recorded", func(r *http.Request, req attendance.CheckEventRequest) (attendance.DayResponse, error) {
		return h.attendanceService.FieldCheckOut(r.Context(), req)
	})
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.handleCheckEvent(w, r, "Check-out recorded", func(r *http.Request, req attendance.CheckEventRequest) (attendance.DayResponse, error) {
		return h.attendanceService.CheckOut(r.Context(), req)
	})
}

// SubmitLeave implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	userID, ok := resolveTargetUser(r, req.UserID)
	if !ok {
		response.Forbidden(w, "Cannot submit leave for another user")
		return
	}
	req.UserID = userID

	result, err := h.attendanceService.SubmitLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave recorded", result)
}

// SubmitEarlyLeave implements AttendanceHandler.
func (h *AttendanceHandlerImpl) SubmitEarlyLeave(w http.ResponseWriter, r *http.Request) {
	var req attendance.SubmitEarlyLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	userID, ok := resolveTargetUser(r, req.UserID)
	if !ok {
		response.Forbidden(w, "Cannot submit early leave for another user")
		return
	}
	req.UserID = userID

	result, err := h.attendanceService.SubmitEarlyLeave(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Early leave recorded", result)
}

// GetUserDay implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetUserDay(w http.ResponseWriter, r *http.Request) {
	targetID := chi.URLParam(r, "userID")

	callerID, role, ok := callerClaims(r)
	if !ok {
		response.Forbidden(w, "Cannot view another user's attendance")
		return
	}
	if targetID != callerID && !role.IsAdmin() {
		response.HandleError(w, user.ErrAdminPrivilegeRequired)
		return
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(attendance.DateLayout, raw)
		if err != nil {
			response.BadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
			return
		}
		date = parsed
	}

	result, err := h.attendanceService.GetUserDay(r.Context(), targetID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListReports implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListReports(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ReportFilter{
		Day:   r.URL.Query().Get("day"),
		Month: r.URL.Query().Get("month"),
	}

	result, err := h.attendanceService.ListReports(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
