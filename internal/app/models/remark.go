package models

import (
	"errors"
)

// ErrRemarkIndexOutOfRange is returned when a remark edit targets a
// position outside the student's remark list.
var ErrRemarkIndexOutOfRange = errors.New("remark index out of range")

// StudentRemark is one entry in a student's counseling remark list.
// DateLabel is a display string, not a timestamp: edits append an
// " (edited)" marker to it rather than replacing it.
type StudentRemark struct {
	ID            int64  `json:"-" db:"id"`
	StudentID     int64  `json:"-" db:"student_id"`
	Text          string `json:"text" db:"text"`
	DateLabel     string `json:"date" db:"date_label"`
	Counselor     string `json:"counselor" db:"counselor"`
	CounselorName string `json:"counselor_name" db:"counselor_name"`
	AppointmentID *int64 `json:"appointment_id,omitempty" db:"appointment_id"`
}

// ApplyRemarkEdit returns a copy of the remark list with the entry at index
// replaced by the new text and its date marked as edited. All other entries
// keep their content and order.
func ApplyRemarkEdit(remarks []StudentRemark, index int, text string) ([]StudentRemark, error) {
	if index < 0 || index >= len(remarks) {
		return nil, ErrRemarkIndexOutOfRange
	}
	out := make([]StudentRemark, len(remarks))
	copy(out, remarks)
	out[index].Text = text
	out[index].DateLabel += " (edited)"
	return out, nil
}
