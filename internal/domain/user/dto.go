package user

import (
	"time"

	"github.com/tugasgi/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// USER DTOs
// ========================================

type CreateUserRequest struct {
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	DepartmentID string `json:"department_id"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if len(r.Username) < 3 {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be at least 3 characters long",
		})
	} else if len(r.Username) > 50 {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must not exceed 50 characters",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username may only contain letters, numbers, dots, underscores, and hyphens",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	} else if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	} else if len(r.Password) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 255 characters",
		})
	}

	if !ValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: Admin, User",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest updates an account. Zero-value fields are left unchanged;
// Password is optional and re-hashed when present.
type UpdateUserRequest struct {
	ID           string `json:"-"`
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	DepartmentID string `json:"department_id"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != "" {
		if len(r.Username) < 3 || len(r.Username) > 50 {
			errs = append(errs, validator.ValidationError{
				Field:   "username",
				Message: "username must be between 3 and 50 characters",
			})
		} else if !validator.IsValidUsername(r.Username) {
			errs = append(errs, validator.ValidationError{
				Field:   "username",
				Message: "username may only contain letters, numbers, dots, underscores, and hyphens",
			})
		}
	}

	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if r.Password != "" && len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	}

	if r.Role != "" && !ValidRole(Role(r.Role)) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: Admin, User",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListUserFilter struct {
	DepartmentID string
	Role         string
	Search       string
}

type UserResponse struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name,omitempty"`
	IsField        bool   `json:"is_field"`
	CreatedAt      string `json:"created_at"`
}

type ListUserResponse struct {
	Users []UserResponse `json:"users"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		FullName:       u.FullName,
		Role:           string(u.Role),
		DepartmentID:   u.DepartmentID,
		DepartmentName: u.DepartmentName,
		IsField:        u.IsField,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
