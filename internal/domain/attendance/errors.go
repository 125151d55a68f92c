package attendance

import "errors"

// Attendance domain errors. All of these are client-facing rejections.
var (
	ErrOutOfSequence   = errors.New("action attempted before its prerequisite")
	ErrAlreadyRecorded = errors.New("action already recorded for this day")

	ErrDayOnLeave        = errors.New("day already marked as leave")
	ErrLeaveAfterCheckIn = errors.New("cannot mark leave after a check event exists")

	ErrOutOfGeofence       = errors.New("you are outside the allowed office radius")
	ErrLocationUnavailable = errors.New("location could not be determined")

	ErrDayNotFound = errors.New("attendance record not found")
)
