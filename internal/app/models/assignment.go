package models

// AssignmentType distinguishes course-based (HED) from year-based (BED) assignments
type AssignmentType string

const (
	AssignmentCourse AssignmentType = "course"
	AssignmentYear   AssignmentType = "year"
)

// Assignment maps a counselor to one course or year tag. At most one
// counselor may hold a given (type, value) pair system-wide; the service
// layer checks this before saving.
type Assignment struct {
	ID          int64          `json:"id,omitempty" db:"id"`
	CounselorID int64          `json:"counselorId,omitempty" db:"counselor_id"`
	Type        AssignmentType `json:"type" db:"assignment_type"`
	Value       string         `json:"value" db:"value"`
}

// Matches reports whether the assignment covers the given student track.
func (a Assignment) Matches(level LevelInfo) bool {
	switch a.Type {
	case AssignmentCourse:
		return level.Level == LevelHED && level.Course() == a.Value
	case AssignmentYear:
		return level.Level == LevelBED && level.Year() == a.Value
	}
	return false
}
