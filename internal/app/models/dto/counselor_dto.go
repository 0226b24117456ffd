package dto

import "github.com/ecalderon/guidancehub/internal/app/models"

// CreateCounselorRequest represents an admin creating a counselor account
type CreateCounselorRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	FirstName       string `json:"firstname" binding:"required"`
	LastName        string `json:"lastname" binding:"required"`
}

// UpdateCounselorRequest represents a partial counselor update; nil fields
// are left unchanged.
type UpdateCounselorRequest struct {
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Password  *string `json:"password,omitempty" binding:"omitempty,min=8"`
	FirstName *string `json:"firstname,omitempty"`
	LastName  *string `json:"lastname,omitempty"`
}

// AssignmentEntry is one course or year tag in an assignment list
type AssignmentEntry struct {
	Type  models.AssignmentType `json:"type" binding:"required,oneof=course year"`
	Value string                `json:"value" binding:"required"`
}

// AssignmentsRequest replaces a counselor's full assignment list
type AssignmentsRequest struct {
	Assignments []AssignmentEntry `json:"assignments" binding:"required,dive"`
}
