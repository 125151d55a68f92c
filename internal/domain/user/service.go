package user

import (
	"context"
)

// UserService defines business logic for account management (admin only).
type UserService interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	DeleteUser(ctx context.Context, id string, actorID string) error
	ListUsers(ctx context.Context, filter ListUserFilter) (ListUserResponse, error)
}
