package dto

import "github.com/ecalderon/guidancehub/internal/app/models"

// ListStudentsQuery carries the student listing filters. CounselingDone
// filters on the sent-to-admin flag, matching how the admin dashboard has
// always consumed it.
type ListStudentsQuery struct {
	CounselingDone *bool  `form:"counselingDone"`
	Level          string `form:"level"`
	Course         string `form:"course"`
	Year           string `form:"year"`
	Section        string `form:"section"`
}

// UpdateStudentRequest represents a partial student update; a level change
// must carry the new variant's fields and nulls the other variant's.
type UpdateStudentRequest struct {
	FirstName *string       `json:"firstname,omitempty"`
	LastName  *string       `json:"lastname,omitempty"`
	Level     *models.Level `json:"level,omitempty" binding:"omitempty,oneof=HED BED"`
	Course    string        `json:"course,omitempty"`
	Year      string        `json:"year,omitempty"`
	Section   string        `json:"section,omitempty"`
	Gender    *string       `json:"gender,omitempty"`
	PhoneNo   *string       `json:"phone_no,omitempty"`
	Address   *string       `json:"address,omitempty"`
	DOB       *string       `json:"dob,omitempty"`
}

// RemarkRequest appends a counseling remark to a student record
type RemarkRequest struct {
	Text        string `json:"text" binding:"required"`
	SendToAdmin bool   `json:"sendToAdmin"`
}

// AdminRemarkRequest appends a remark on behalf of a named counselor
type AdminRemarkRequest struct {
	Text      string `json:"text" binding:"required"`
	Counselor string `json:"counselor" binding:"required"`
}

// EditRemarkRequest replaces the text of a remark at a list position
type EditRemarkRequest struct {
	Text string `json:"text" binding:"required"`
}

// EditRemarkResponse reports the outcome of a remark edit. The edit is
// applied locally first; Persisted is false when the save failed, in which
// case the returned remark still carries the edit.
type EditRemarkResponse struct {
	Remark         models.StudentRemark `json:"remark"`
	AppliedLocally bool                 `json:"appliedLocally"`
	Persisted      bool                 `json:"persisted"`
}

// DashboardStats summarizes the student body for the admin dashboard
type DashboardStats struct {
	TotalStudents   int64 `json:"totalStudents"`
	TotalCounselors int64 `json:"totalCounselors"`
	HEDStudents     int64 `json:"hedStudents"`
	BEDStudents     int64 `json:"bedStudents"`
	SentToAdmin     int64 `json:"sentToAdmin"`
}

// AssignedCounselorResponse identifies the counselor covering a student
type AssignedCounselorResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}
