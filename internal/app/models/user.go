package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"user@shc.edu.ph"`               // User's email address
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	FirstName string    `json:"firstname" db:"first_name" example:"Maria"`                // User's first name
	LastName  string    `json:"lastname" db:"last_name" example:"Santos"`                 // User's last name
	RoleType  RoleType  `json:"roleType" db:"role_type" example:"COUNSELOR"`              // User's role (ADMIN, COUNSELOR or STUDENT)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2025-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" example:"2025-01-02T15:30:00Z"` // Timestamp when the user was last updated
}

// FullName returns "First Last".
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// ListedName returns "Last, First", the format used on remark entries.
func (u *User) ListedName() string {
	return u.LastName + ", " + u.FirstName
}
