package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUsernameTaken          = errors.New("username already registered")
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrCannotDeleteSelf       = errors.New("cannot delete own account")
)
