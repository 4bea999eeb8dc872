package model

// Role is the caller role carried in access tokens.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RoleNurse   Role = "nurse"
	RoleAnalyst Role = "analyst"
	RoleStaff   Role = "staff"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleNurse, RoleAnalyst, RoleStaff:
		return true
	}
	return false
}

// User represents a system user
type User struct {
	Base
	Username     string  `json:"username" db:"username"`
	Email        string  `json:"email" db:"email"`
	FullName     *string `json:"full_name,omitempty" db:"full_name"`
	Role         Role    `json:"role" db:"role"`
	PasswordHash string  `json:"-" db:"password_hash"`
	IsActive     bool    `json:"is_active" db:"is_active"`
}

type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Email    string  `json:"email" binding:"required,email"`
	FullName *string `json:"full_name" binding:"omitempty,max=200"`
	Role     Role    `json:"role" binding:"required,oneof=admin doctor nurse analyst staff"`
	Password string  `json:"password" binding:"required,min=8"`
}
