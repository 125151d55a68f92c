package department

import (
	"time"

	"github.com/tugasgi/attendance-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name    string `json:"name"`
	IsField bool   `json:"is_field"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDepartmentRequest struct {
	ID      string `json:"-"`
	Name    string `json:"name"`
	IsField *bool  `json:"is_field"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DepartmentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsField   bool   `json:"is_field"`
	CreatedAt string `json:"created_at"`
}

type ListDepartmentResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}

func NewDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		IsField:   d.IsField,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}
