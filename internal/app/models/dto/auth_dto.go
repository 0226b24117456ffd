package dto

import "github.com/ecalderon/guidancehub/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful authentication
type LoginResponse struct {
	Message     string `json:"message" example:"Login successful"`
	Role        string `json:"role" example:"counselor"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

// RegisterStudentRequest represents a student self-registration. Level acts
// as a discriminator: HED registrations carry a course, BED registrations a
// year and section.
type RegisterStudentRequest struct {
	Email     string       `json:"email" binding:"required,email"`
	Password  string       `json:"password" binding:"required,min=8"`
	FirstName string       `json:"firstname" binding:"required"`
	LastName  string       `json:"lastname" binding:"required"`
	StudentNo string       `json:"student_no" binding:"required"`
	Level     models.Level `json:"level" binding:"required,oneof=HED BED"`
	Course    string       `json:"course,omitempty"`
	Year      string       `json:"year,omitempty"`
	Section   string       `json:"section,omitempty"`
	Gender    *string      `json:"gender,omitempty"`
	PhoneNo   *string      `json:"phone_no,omitempty"`
	Address   *string      `json:"address,omitempty"`
	DOB       *string      `json:"dob,omitempty"`
}

// LevelInfo assembles the level union from the flat request fields.
func (r *RegisterStudentRequest) LevelInfo() models.LevelInfo {
	if r.Level == models.LevelBED {
		return models.BEDLevel(r.Year, r.Section)
	}
	return models.HEDLevel(r.Course)
}
