package response

import (
	"errors"
	"net/http"

	"github.com/tugasgi/attendance-backend-go/internal/domain/attendance"
	"github.com/tugasgi/attendance-backend-go/internal/domain/auth"
	"github.com/tugasgi/attendance-backend-go/internal/domain/department"
	"github.com/tugasgi/attendance-backend-go/internal/domain/fieldvisit"
	"github.com/tugasgi/attendance-backend-go/internal/domain/user"
	"github.com/tugasgi/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Attendance domain errors. A duplicate is a conflict with what is
	// already stored; the other rejections are bad submissions.
	case errors.Is(err, attendance.ErrAlreadyRecorded):
		Conflict(w, "Action already recorded for this day")
	case errors.Is(err, attendance.ErrOutOfSequence):
		BadRequest(w, "Action attempted before its prerequisite", nil)
	case errors.Is(err, attendance.ErrDayOnLeave):
		BadRequest(w, "Day already marked as leave", nil)
	case errors.Is(err, attendance.ErrLeaveAfterCheckIn):
		BadRequest(w, "Cannot mark leave after a check event exists", nil)
	case errors.Is(err, attendance.ErrOutOfGeofence):
		BadRequest(w, "You are outside the allowed office radius", nil)
	case errors.Is(err, attendance.ErrLocationUnavailable):
		BadRequest(w, "Location could not be determined", nil)
	case errors.Is(err, attendance.ErrDayNotFound):
		NotFound(w, "Attendance record not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		Conflict(w, "Username already registered")
	case errors.Is(err, user.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		BadRequest(w, "Cannot delete own account", nil)

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrNameTaken):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department still has users assigned")

	// Field visit domain errors
	case errors.Is(err, fieldvisit.ErrFieldVisitNotFound):
		NotFound(w, "Field visit not found")
	case errors.Is(err, fieldvisit.ErrNotFieldDepartment):
		Forbidden(w, "User is not in a field department")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
