package dto

import "github.com/ecalderon/guidancehub/internal/app/models"

// RequestAppointmentRequest represents a student requesting an appointment
type RequestAppointmentRequest struct {
	Date   string `json:"appointment_date" binding:"required"`
	Time   string `json:"appointment_time" binding:"required"`
	Reason string `json:"reason" binding:"required"`
}

// UpdateAppointmentStatusRequest moves an appointment through its lifecycle
type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required"`
}

// AppointmentRemarkRequest attaches a session remark to a completed appointment
type AppointmentRemarkRequest struct {
	Remarks string `json:"remarks" binding:"required"`
}

// BulkScheduleRequest schedules one appointment per listed student with a
// shared date, time and reason
type BulkScheduleRequest struct {
	StudentIDs []int64 `json:"student_ids" binding:"required,min=1"`
	Date       string  `json:"appointment_date" binding:"required"`
	Time       string  `json:"appointment_time" binding:"required"`
	Reason     string  `json:"reason" binding:"required"`
}

// BulkScheduleResponse reports how many appointments a bulk request created
type BulkScheduleResponse struct {
	Message   string `json:"message"`
	Scheduled int    `json:"scheduled"`
}
