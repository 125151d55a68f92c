package department

import (
	"context"
)

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	Create(ctx context.Context, dept Department) (Department, error)
	Update(ctx context.Context, dept Department) (Department, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Department, error)
	CountUsers(ctx context.Context, id string) (int64, error)
}
