package fieldvisit

import "errors"

var (
	ErrFieldVisitNotFound = errors.New("field visit not found")
	ErrNotFieldDepartment = errors.New("user is not in a field department")
)
