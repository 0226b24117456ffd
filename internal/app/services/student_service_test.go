package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/app/repositories"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
)

type fakeStudentRecords struct {
	students map[int64]*models.Student
	remarks  map[int64][]models.StudentRemark
	flags    map[int64][2]bool

	lastFilter      repositories.StudentFilter
	updateRemarkErr error
}

func newFakeStudentRecords(students ...*models.Student) *fakeStudentRecords {
	f := &fakeStudentRecords{
		students: map[int64]*models.Student{},
		remarks:  map[int64][]models.StudentRemark{},
		flags:    map[int64][2]bool{},
	}
	for _, st := range students {
		f.students[st.ID] = st
	}
	return f
}

func (f *fakeStudentRecords) List(_ context.Context, filter repositories.StudentFilter) ([]*models.Student, error) {
	f.lastFilter = filter
	if filter.Scope != nil && len(filter.Scope) == 0 {
		return nil, nil
	}
	var out []*models.Student
	for _, st := range f.students {
		if filter.Scope != nil {
			matched := false
			for _, a := range filter.Scope {
				if a.Matches(st.Level) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		out = append(out, st)
	}
	return out, nil
}

func (f *fakeStudentRecords) GetByID(_ context.Context, id int64) (*models.Student, error) {
	st, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

func (f *fakeStudentRecords) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	for _, st := range f.students {
		if st.UserID == userID {
			return st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRecords) Update(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentRecords) Delete(_ context.Context, id int64) error {
	if _, ok := f.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentRecords) GetRemarks(_ context.Context, studentID int64) ([]models.StudentRemark, error) {
	return f.remarks[studentID], nil
}

func (f *fakeStudentRecords) AppendRemark(_ context.Context, studentID int64, remark *models.StudentRemark) error {
	remark.StudentID = studentID
	f.remarks[studentID] = append(f.remarks[studentID], *remark)
	return nil
}

func (f *fakeStudentRecords) UpdateRemarkAt(_ context.Context, studentID int64, position int, text, dateLabel string) error {
	if f.updateRemarkErr != nil {
		return f.updateRemarkErr
	}
	list := f.remarks[studentID]
	if position < 0 || position >= len(list) {
		return apperrors.ErrRemarkNotFound
	}
	list[position].Text = text
	list[position].DateLabel = dateLabel
	return nil
}

func (f *fakeStudentRecords) SetCounselingFlags(_ context.Context, studentID int64, counselingDone, sentToAdmin *bool) error {
	current := f.flags[studentID]
	if counselingDone != nil {
		current[0] = *counselingDone
	}
	if sentToAdmin != nil {
		current[1] = *sentToAdmin
	}
	f.flags[studentID] = current
	return nil
}

func (f *fakeStudentRecords) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.students)), nil
}

func (f *fakeStudentRecords) CountByLevel(_ context.Context, level models.Level) (int64, error) {
	var n int64
	for _, st := range f.students {
		if st.Level.Level == level {
			n++
		}
	}
	return n, nil
}

func (f *fakeStudentRecords) CountSentToAdmin(_ context.Context) (int64, error) {
	var n int64
	for _, sent := range f.flags {
		if sent[1] {
			n++
		}
	}
	return n, nil
}

type fakeCounselorRoster struct {
	counselors  map[int64]*models.Counselor
	assignments []models.Assignment
}

func (f *fakeCounselorRoster) GetByUserID(_ context.Context, userID int64) (*models.Counselor, error) {
	for _, c := range f.counselors {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, apperrors.ErrCounselorNotFound
}

func (f *fakeCounselorRoster) GetAllAssignments(_ context.Context) ([]models.Assignment, error) {
	return f.assignments, nil
}

func (f *fakeCounselorRoster) Count(_ context.Context) (int64, error) {
	return int64(len(f.counselors)), nil
}

// Fixture: a BSCS student (user 100) and a BSIT student (user 101), one
// counselor (user 200) assigned to BSCS only.
func newStudentTestService() (*StudentService, *fakeStudentRecords, *fakeCounselorRoster) {
	records := newFakeStudentRecords(
		&models.Student{
			ID:     1,
			UserID: 100,
			Level:  models.HEDLevel("BSCS"),
			User:   &models.User{ID: 100, Email: "juan.cruz@shc.edu.ph", FirstName: "Juan", LastName: "Cruz"},
		},
		&models.Student{
			ID:     2,
			UserID: 101,
			Level:  models.HEDLevel("BSIT"),
			User:   &models.User{ID: 101, Email: "mia.lopez@shc.edu.ph", FirstName: "Mia", LastName: "Lopez"},
		},
	)
	roster := &fakeCounselorRoster{
		counselors: map[int64]*models.Counselor{
			7: {ID: 7, UserID: 200, User: &models.User{ID: 200, Email: "ana.reyes@shc.edu.ph", FirstName: "Ana", LastName: "Reyes"}},
			8: {ID: 8, UserID: 201, User: &models.User{ID: 201, Email: "leo.tan@shc.edu.ph", FirstName: "Leo", LastName: "Tan"}},
		},
		assignments: []models.Assignment{
			{ID: 1, CounselorID: 7, Type: models.AssignmentCourse, Value: "BSCS"},
			{ID: 2, CounselorID: 8, Type: models.AssignmentCourse, Value: "BSIT"},
		},
	}
	return NewStudentService(records, roster), records, roster
}

func TestEditRemark_Persisted(t *testing.T) {
	svc, records, _ := newStudentTestService()
	records.remarks[1] = []models.StudentRemark{
		{Text: "Initial intake session", DateLabel: "March 02, 2026 and 09:00 AM", CounselorName: "Reyes, Ana"},
	}

	result, err := svc.EditRemark(context.Background(), 1, 0, &dto.EditRemarkRequest{Text: "Intake done, follow up set"})
	require.NoError(t, err)

	assert.True(t, result.AppliedLocally)
	assert.True(t, result.Persisted)
	assert.Equal(t, "Intake done, follow up set", result.Remark.Text)
	assert.Equal(t, "March 02, 2026 and 09:00 AM (edited)", result.Remark.DateLabel)
	assert.Equal(t, "Intake done, follow up set", records.remarks[1][0].Text)
}

func TestEditRemark_SaveFailureKeepsLocalEdit(t *testing.T) {
	svc, records, _ := newStudentTestService()
	records.remarks[1] = []models.StudentRemark{
		{Text: "Initial intake session", DateLabel: "March 02, 2026 and 09:00 AM", CounselorName: "Reyes, Ana"},
	}
	records.updateRemarkErr = errors.New("connection reset")

	result, err := svc.EditRemark(context.Background(), 1, 0, &dto.EditRemarkRequest{Text: "Intake done, follow up set"})
	require.NoError(t, err)

	assert.True(t, result.AppliedLocally)
	assert.False(t, result.Persisted)
	assert.Equal(t, "Intake done, follow up set", result.Remark.Text)
	assert.Equal(t, "March 02, 2026 and 09:00 AM (edited)", result.Remark.DateLabel)

	// the stored record kept the original text
	assert.Equal(t, "Initial intake session", records.remarks[1][0].Text)
}

func TestEditRemark_IndexOutOfRange(t *testing.T) {
	svc, records, _ := newStudentTestService()
	records.remarks[1] = []models.StudentRemark{
		{Text: "Initial intake session", DateLabel: "March 02, 2026 and 09:00 AM"},
	}

	_, err := svc.EditRemark(context.Background(), 1, 3, &dto.EditRemarkRequest{Text: "text"})
	assert.ErrorIs(t, err, apperrors.ErrRemarkNotFound)
}

func TestListForCounselor_RestrictedToAssignmentScope(t *testing.T) {
	svc, records, _ := newStudentTestService()

	students, err := svc.ListForCounselor(context.Background(), 200, &dto.ListStudentsQuery{})
	require.NoError(t, err)

	require.Len(t, students, 1)
	assert.Equal(t, int64(1), students[0].ID)
	require.Len(t, records.lastFilter.Scope, 1)
	assert.Equal(t, "BSCS", records.lastFilter.Scope[0].Value)
}

func TestListForCounselor_NoAssignmentsSeesNoStudents(t *testing.T) {
	svc, records, roster := newStudentTestService()
	roster.assignments = nil

	students, err := svc.ListForCounselor(context.Background(), 200, &dto.ListStudentsQuery{})
	require.NoError(t, err)

	assert.Empty(t, students)
	require.NotNil(t, records.lastFilter.Scope, "empty scope must still be set so the filter matches nothing")
	assert.Empty(t, records.lastFilter.Scope)
}

func TestGetForCounselor_OutsideAssignment(t *testing.T) {
	svc, _, _ := newStudentTestService()

	// student 2 is BSIT, covered by the other counselor
	_, err := svc.GetForCounselor(context.Background(), 200, 2)
	assert.ErrorIs(t, err, apperrors.ErrStudentOutsideAssignment)

	student, err := svc.GetForCounselor(context.Background(), 200, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), student.ID)
}
