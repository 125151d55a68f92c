package user

import "time"

type Role string

const (
	RoleAdmin Role = "Admin" // Can manage users, departments, and view all reports
	RoleUser  Role = "User"  // Regular employee
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleUser
}

// IsAdmin checks if the role grants admin privileges.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string
	Role         Role
	DepartmentID string
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	DepartmentName string
	IsField        bool
}

// IsAdmin checks if the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}
