package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentInUse    = errors.New("department still has users assigned")
	ErrNameTaken          = errors.New("department name already exists")
)
