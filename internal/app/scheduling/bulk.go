package scheduling

import (
	"time"

	"github.com/ecalderon/guidancehub/internal/app/models"
)

// BuildBulk fans one date/time/reason out into an appointment per student.
// Counselor-authored appointments skip the request step and are created
// already approved; neither the date/time rules nor per-student assignment
// ownership are re-validated here, matching the counselor bulk path.
func BuildBulk(students []*models.Student, counselor *models.Counselor, date, clock, reason string, now time.Time) []*models.Appointment {
	out := make([]*models.Appointment, 0, len(students))
	for _, st := range students {
		appt := &models.Appointment{
			StudentID:     st.ID,
			CounselorID:   counselor.ID,
			CounselorName: counselor.User.FullName(),
			Date:          date,
			Time:          clock,
			Reason:        reason,
			Status:        models.StatusApproved,
			CreatedAt:     now,
		}
		if st.User != nil {
			appt.StudentName = st.User.FullName()
			appt.StudentEmail = st.User.Email
		}
		out = append(out, appt)
	}
	return out
}
