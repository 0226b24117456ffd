package models

// Counselor defines the counselor model based on the 'counselors' table
type Counselor struct {
	ID          int64        `json:"id" db:"id"`
	UserID      int64        `json:"userId" db:"user_id"`
	User        *User        `json:"user,omitempty"`        // Relation, loaded via join
	Assignments []Assignment `json:"assignments,omitempty"` // Relation, loaded separately
}
