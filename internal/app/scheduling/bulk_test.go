package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecalderon/guidancehub/internal/app/models"
)

func TestBuildBulk(t *testing.T) {
	counselor := &models.Counselor{
		ID:   7,
		User: &models.User{FirstName: "Ana", LastName: "Reyes"},
	}
	students := []*models.Student{
		{ID: 1, User: &models.User{FirstName: "Juan", LastName: "Cruz", Email: "juan.cruz@shc.edu.ph"}},
		{ID: 2, User: &models.User{FirstName: "Mia", LastName: "Lopez", Email: "mia.lopez@shc.edu.ph"}},
	}
	now := time.Date(2026, time.March, 4, 9, 30, 0, 0, time.UTC)

	out := BuildBulk(students, counselor, "2026-03-10", "10:00", "Career guidance", now)
	require.Len(t, out, 2)

	for i, appt := range out {
		assert.Equal(t, students[i].ID, appt.StudentID)
		assert.Equal(t, int64(7), appt.CounselorID)
		assert.Equal(t, "Ana Reyes", appt.CounselorName)
		assert.Equal(t, "2026-03-10", appt.Date)
		assert.Equal(t, "10:00", appt.Time)
		assert.Equal(t, "Career guidance", appt.Reason)
		assert.Equal(t, models.StatusApproved, appt.Status, "counselor-created appointments start approved")
		assert.Equal(t, now, appt.CreatedAt)
	}
	assert.Equal(t, "Juan Cruz", out[0].StudentName)
	assert.Equal(t, "mia.lopez@shc.edu.ph", out[1].StudentEmail)
}

func TestBuildBulk_Empty(t *testing.T) {
	counselor := &models.Counselor{ID: 7, User: &models.User{FirstName: "Ana", LastName: "Reyes"}}
	out := BuildBulk(nil, counselor, "2026-03-10", "10:00", "Follow up", time.Now())
	assert.Empty(t, out)
}
