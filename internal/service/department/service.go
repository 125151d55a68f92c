package department

import (
	"context"

	"github.com/tugasgi/attendance-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	deptRepo department.DepartmentRepository
}

func NewDepartmentService(deptRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{deptRepo: deptRepo}
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.deptRepo.Create(ctx, department.Department{
		Name:    req.Name,
		IsField: req.IsField,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.NewDepartmentResponse(created), nil
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.deptRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.NewDepartmentResponse(d), nil
}

// UpdateDepartment implements department.DepartmentService. Changing is_field
// only affects future days; recorded days keep the shape they were made with.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	current, err := s.deptRepo.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != "" {
		current.Name = req.Name
	}
	if req.IsField != nil {
		current.IsField = *req.IsField
	}

	updated, err := s.deptRepo.Update(ctx, current)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.NewDepartmentResponse(updated), nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	count, err := s.deptRepo.CountUsers(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return department.ErrDepartmentInUse
	}

	return s.deptRepo.Delete(ctx, id)
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) (department.ListDepartmentResponse, error) {
	departments, err := s.deptRepo.List(ctx)
	if err != nil {
		return department.ListDepartmentResponse{}, err
	}

	resp := department.ListDepartmentResponse{Departments: []department.DepartmentResponse{}}
	for _, d := range departments {
		resp.Departments = append(resp.Departments, department.NewDepartmentResponse(d))
	}

	return resp, nil
}
