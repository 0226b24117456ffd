package models

import (
	"time"
)

// AppointmentStatus is the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending        AppointmentStatus = "pending"
	StatusApproved       AppointmentStatus = "approved"
	StatusRejected       AppointmentStatus = "rejected"
	StatusCompleted      AppointmentStatus = "completed"
	StatusFailedToAttend AppointmentStatus = "failed to attend"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusFailedToAttend:
		return true
	}
	return false
}

// Appointment defines the appointment model based on the 'appointments' table.
// Student and counselor names are denormalized so listings render without joins.
type Appointment struct {
	ID            int64             `json:"id" db:"id"`
	StudentID     int64             `json:"student_id" db:"student_id"`
	CounselorID   int64             `json:"counselor_id" db:"counselor_id"`
	StudentName   string            `json:"student_name" db:"student_name"`
	StudentEmail  string            `json:"student_email" db:"student_email"`
	CounselorName string            `json:"counselor_name" db:"counselor_name"`
	Date          string            `json:"appointment_date" db:"appointment_date"`
	Time          string            `json:"appointment_time" db:"appointment_time"`
	Reason        string            `json:"reason" db:"reason"`
	Status        AppointmentStatus `json:"status" db:"status"`
	Remarks       *string           `json:"remarks,omitempty" db:"remarks"`
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`
}
