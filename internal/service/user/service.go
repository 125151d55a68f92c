package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tugasgi/attendance-backend-go/internal/domain/department"
	"github.com/tugasgi/attendance-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
	deptRepo department.DepartmentRepository
}

func NewUserService(userRepo user.UserRepository, deptRepo department.DepartmentRepository) user.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		deptRepo: deptRepo,
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	dept, err := s.deptRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return user.UserResponse{}, user.ErrDepartmentNotFound
		}
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Username:     req.Username,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         user.Role(req.Role),
		DepartmentID: dept.ID,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	created.DepartmentName = dept.Name
	created.IsField = dept.IsField

	return user.NewUserResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.NewUserResponse(u), nil
}

// UpdateUser implements user.UserService. Empty request fields keep their
// stored values; a new password is re-hashed before storage.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Username != "" {
		current.Username = req.Username
	}
	if req.FullName != "" {
		current.FullName = req.FullName
	}
	if req.Role != "" {
		current.Role = user.Role(req.Role)
	}
	if req.DepartmentID != "" && req.DepartmentID != current.DepartmentID {
		dept, err := s.deptRepo.GetByID(ctx, req.DepartmentID)
		if err != nil {
			if errors.Is(err, department.ErrDepartmentNotFound) {
				return user.UserResponse{}, user.ErrDepartmentNotFound
			}
			return user.UserResponse{}, err
		}
		current.DepartmentID = dept.ID
		current.DepartmentName = dept.Name
		current.IsField = dept.IsField
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		current.PasswordHash = string(hash)
	}

	updated, err := s.userRepo.Update(ctx, current)
	if err != nil {
		return user.UserResponse{}, err
	}

	updated.DepartmentName = current.DepartmentName
	updated.IsField = current.IsField

	return user.NewUserResponse(updated), nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string, actorID string) error {
	if id == actorID {
		return user.ErrCannotDeleteSelf
	}
	return s.userRepo.SoftDelete(ctx, id)
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context, filter user.ListUserFilter) (user.ListUserResponse, error) {
	users, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return user.ListUserResponse{}, err
	}

	resp := user.ListUserResponse{Users: []user.UserResponse{}}
	for _, u := range users {
		resp.Users = append(resp.Users, user.NewUserResponse(u))
	}

	return resp, nil
}
