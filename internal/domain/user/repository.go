package user

import (
	"context"
)

// UserRepository defines data access for accounts. Soft-deleted users are
// invisible to every method except Create's uniqueness check.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, updated User) (User, error)
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListUserFilter) ([]User, error)
}
