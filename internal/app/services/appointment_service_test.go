package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/app/scheduling"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
)

type fakeAppointmentStore struct {
	appts  map[int64]*models.Appointment
	nextID int64

	batchErr   error
	remarksErr error
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{appts: map[int64]*models.Appointment{}, nextID: 1}
}

func (f *fakeAppointmentStore) Create(_ context.Context, appt *models.Appointment) error {
	appt.ID = f.nextID
	f.nextID++
	stored := *appt
	f.appts[appt.ID] = &stored
	return nil
}

func (f *fakeAppointmentStore) CreateBatch(ctx context.Context, appts []*models.Appointment) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	for _, appt := range appts {
		if err := f.Create(ctx, appt); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeAppointmentStore) GetByID(_ context.Context, id int64) (*models.Appointment, error) {
	appt, ok := f.appts[id]
	if !ok {
		return nil, apperrors.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentStore) ListByCounselor(_ context.Context, counselorID int64, status *models.AppointmentStatus) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for _, appt := range f.appts {
		if appt.CounselorID != counselorID {
			continue
		}
		if status != nil && appt.Status != *status {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (f *fakeAppointmentStore) ListByStudent(_ context.Context, studentID int64) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for _, appt := range f.appts {
		if appt.StudentID == studentID {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) ListByStudentWithStatuses(_ context.Context, studentID int64, statuses []models.AppointmentStatus) ([]*models.Appointment, error) {
	var out []*models.Appointment
	for _, appt := range f.appts {
		if appt.StudentID != studentID {
			continue
		}
		for _, st := range statuses {
			if appt.Status == st {
				out = append(out, appt)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) UpdateStatus(_ context.Context, id int64, status models.AppointmentStatus) error {
	appt, ok := f.appts[id]
	if !ok {
		return apperrors.ErrAppointmentNotFound
	}
	appt.Status = status
	return nil
}

func (f *fakeAppointmentStore) SetRemarks(_ context.Context, id int64, remarks string) error {
	if f.remarksErr != nil {
		return f.remarksErr
	}
	appt, ok := f.appts[id]
	if !ok {
		return apperrors.ErrAppointmentNotFound
	}
	appt.Remarks = &remarks
	return nil
}

type fakeStudentStore struct {
	students map[int64]*models.Student
	remarks  map[int64][]models.StudentRemark
	flags    map[int64][2]bool
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	f := &fakeStudentStore{
		students: map[int64]*models.Student{},
		remarks:  map[int64][]models.StudentRemark{},
		flags:    map[int64][2]bool{},
	}
	for _, st := range students {
		f.students[st.ID] = st
	}
	return f
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	st, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

func (f *fakeStudentStore) GetByUserID(_ context.Context, userID int64) (*models.Student, error) {
	for _, st := range f.students {
		if st.UserID == userID {
			return st, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) AppendRemark(_ context.Context, studentID int64, remark *models.StudentRemark) error {
	remark.StudentID = studentID
	f.remarks[studentID] = append(f.remarks[studentID], *remark)
	return nil
}

func (f *fakeStudentStore) SetCounselingFlags(_ context.Context, studentID int64, counselingDone, sentToAdmin *bool) error {
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

type fakeCounselorStore struct {
	counselors  map[int64]*models.Counselor
	assignments []models.Assignment
}

func (f *fakeCounselorStore) GetByID(_ context.Context, id int64) (*models.Counselor, error) {
	c, ok := f.counselors[id]
	if !ok {
		return nil, apperrors.ErrCounselorNotFound
	}
	return c, nil
}

func (f *fakeCounselorStore) GetByUserID(_ context.Context, userID int64) (*models.Counselor, error) {
	for _, c := range f.counselors {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, apperrors.ErrCounselorNotFound
}

func (f *fakeCounselorStore) GetAllAssignments(_ context.Context) ([]models.Assignment, error) {
	return f.assignments, nil
}

// Fixture: one BSCS student (user 100), one counselor (user 200) assigned to
// BSCS.
func newTestService() (*AppointmentService, *fakeAppointmentStore, *fakeStudentStore, *fakeCounselorStore) {
	student := &models.Student{
		ID:     1,
		UserID: 100,
		Level:  models.HEDLevel("BSCS"),
		User:   &models.User{ID: 100, Email: "juan.cruz@shc.edu.ph", FirstName: "Juan", LastName: "Cruz"},
	}
	counselor := &models.Counselor{
		ID:     7,
		UserID: 200,
		User:   &models.User{ID: 200, Email: "ana.reyes@shc.edu.ph", FirstName: "Ana", LastName: "Reyes"},
	}

	appts := newFakeAppointmentStore()
	students := newFakeStudentStore(student)
	counselors := &fakeCounselorStore{
		counselors: map[int64]*models.Counselor{7: counselor},
		assignments: []models.Assignment{
			{ID: 1, CounselorID: 7, Type: models.AssignmentCourse, Value: "BSCS"},
		},
	}

	svc := NewAppointmentService(appts, students, counselors, scheduling.NewHolidays(nil))
	svc.clock = func() time.Time {
		return time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC) // Wednesday
	}
	return svc, appts, students, counselors
}

func TestRequestAppointment_CreatesPending(t *testing.T) {
	svc, store, _, _ := newTestService()

	appt, err := svc.RequestAppointment(context.Background(), 100, &dto.RequestAppointmentRequest{
		Date: "2026-03-10", Time: "09:00", Reason: "Academic concerns",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, appt.Status)
	assert.Equal(t, int64(7), appt.CounselorID)
	assert.Equal(t, "Juan Cruz", appt.StudentName)
	assert.Equal(t, "juan.cruz@shc.edu.ph", appt.StudentEmail)
	assert.Equal(t, "Ana Reyes", appt.CounselorName)
	assert.Len(t, store.appts, 1)
}

func TestRequestAppointment_DuplicatesCreateDistinctRecords(t *testing.T) {
	svc, store, _, _ := newTestService()
	req := &dto.RequestAppointmentRequest{Date: "2026-03-10", Time: "09:00", Reason: "Follow up"}

	first, err := svc.RequestAppointment(context.Background(), 100, req)
	require.NoError(t, err)
	second, err := svc.RequestAppointment(context.Background(), 100, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, store.appts, 2)
}

func TestRequestAppointment_NoCounselorAssigned(t *testing.T) {
	svc, _, _, counselors := newTestService()
	counselors.assignments = nil

	_, err := svc.RequestAppointment(context.Background(), 100, &dto.RequestAppointmentRequest{
		Date: "2026-03-10", Time: "09:00", Reason: "Follow up",
	})
	assert.ErrorIs(t, err, apperrors.ErrNoCounselorAssigned)
}

func TestRequestAppointment_RejectsInvalidSlot(t *testing.T) {
	svc, store, _, _ := newTestService()

	// Saturday
	_, err := svc.RequestAppointment(context.Background(), 100, &dto.RequestAppointmentRequest{
		Date: "2026-03-07", Time: "09:00", Reason: "Follow up",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAppointmentDay)

	// Lunch break
	_, err = svc.RequestAppointment(context.Background(), 100, &dto.RequestAppointmentRequest{
		Date: "2026-03-10", Time: "12:30", Reason: "Follow up",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAppointmentDay)

	assert.Empty(t, store.appts)
}

func TestUpdateStatus_AllowsApproval(t *testing.T) {
	svc, _, _, _ := newTestService()
	created, err := svc.RequestAppointment(context.Background(), 100, &dto.RequestAppointmentRequest{
		Date: "2026-03-10", Time: "09:00", Reason: "Follow up",
	})
	require.NoError(t, err)

	appt, err := svc.UpdateStatus(context.Background(), 200, created.ID, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, appt.Status)
}

func TestUpdateStatus_RejectsIllegalTransition(t *testing.T) {
	svc, store, _, _ := newTestService()
	created, err := svc.RequestAppointment(context.Background(), 100, &dto.RequestAppointmentRequest{
		Date: "2026-03-10", Time: "09:00", Reason: "Follow up",
	})
	require.NoError(t, err)

	// pending cannot jump straight to completed
	_, err = svc.UpdateStatus(context.Background(), 200, created.ID, models.StatusCompleted)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	// terminal states accept nothing
	require.NoError(t, store.UpdateStatus(context.Background(), created.ID, models.StatusRejected))
	_, err = svc.UpdateStatus(context.Background(), 200, created.ID, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestUpdateStatus_DeniesForeignAppointment(t *testing.T) {
	svc, _, _, counselors := newTestService()
	counselors.counselors[8] = &models.Counselor{
		ID: 8, UserID: 201,
		User: &models.User{ID: 201, Email: "leo.tan@shc.edu.ph", FirstName: "Leo", LastName: "Tan"},
	}

	created, err := svc.RequestAppointment(context.Background(), 100, &dto.RequestAppointmentRequest{
		Date: "2026-03-10", Time: "09:00", Reason: "Follow up",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), 201, created.ID, models.StatusApproved)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestAttachRemark_RequiresCompletedStatus(t *testing.T) {
	svc, _, _, _ := newTestService()
	created, err := svc.RequestAppointment(context.Background(), 100, &dto.RequestAppointmentRequest{
		Date: "2026-03-10", Time: "09:00", Reason: "Follow up",
	})
	require.NoError(t, err)

	_, err = svc.AttachRemark(context.Background(), 200, created.ID, "Attended and discussed")
	assert.ErrorIs(t, err, apperrors.ErrAppointmentNotDone)
}

func TestAttachRemark_WritesAppointmentAndStudentRecord(t *testing.T) {
	svc, store, students, _ := newTestService()
	created, err := svc.RequestAppointment(context.Background(), 100, &dto.RequestAppointmentRequest{
		Date: "2026-03-10", Time: "09:00", Reason: "Follow up",
	})
	require.NoError(t, err)
	require.NoError(t, store.UpdateStatus(context.Background(), created.ID, models.StatusCompleted))

	appt, err := svc.AttachRemark(context.Background(), 200, created.ID, "Attended and discussed")
	require.NoError(t, err)

	require.NotNil(t, appt.Remarks)
	assert.Equal(t, "Attended and discussed", *appt.Remarks)

	remarks := students.remarks[1]
	require.Len(t, remarks, 1)
	assert.Equal(t, "Attended and discussed", remarks[0].Text)
	assert.Equal(t, "Reyes, Ana", remarks[0].CounselorName)
	assert.Equal(t, "March 04, 2026 and 10:00 AM", remarks[0].DateLabel)
	require.NotNil(t, remarks[0].AppointmentID)
	assert.Equal(t, created.ID, *remarks[0].AppointmentID)

	assert.Equal(t, [2]bool{true, true}, students.flags[1])
}

func TestBulkSchedule_CreatesApprovedPerStudent(t *testing.T) {
	svc, store, students, _ := newTestService()
	students.students[2] = &models.Student{
		ID: 2, UserID: 101,
		Level: models.HEDLevel("BSCS"),
		User:  &models.User{ID: 101, Email: "mia.lopez@shc.edu.ph", FirstName: "Mia", LastName: "Lopez"},
	}

	count, err := svc.BulkSchedule(context.Background(), 200, &dto.BulkScheduleRequest{
		StudentIDs: []int64{1, 2},
		Date:       "2026-03-10",
		Time:       "10:00",
		Reason:     "Career guidance",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, store.appts, 2)
	for _, appt := range store.appts {
		assert.Equal(t, models.StatusApproved, appt.Status)
		assert.Equal(t, "Career guidance", appt.Reason)
	}
}

func TestBulkSchedule_AllOrNothing(t *testing.T) {
	svc, store, _, _ := newTestService()
	store.batchErr = errors.New("insert failed")

	_, err := svc.BulkSchedule(context.Background(), 200, &dto.BulkScheduleRequest{
		StudentIDs: []int64{1},
		Date:       "2026-03-10",
		Time:       "10:00",
		Reason:     "Career guidance",
	})
	require.Error(t, err)
	assert.Empty(t, store.appts)
}

func TestBulkSchedule_UnknownStudent(t *testing.T) {
	svc, store, _, _ := newTestService()

	_, err := svc.BulkSchedule(context.Background(), 200, &dto.BulkScheduleRequest{
		StudentIDs: []int64{1, 99},
		Date:       "2026-03-10",
		Time:       "10:00",
		Reason:     "Career guidance",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
	assert.Empty(t, store.appts)
}

func TestResolveCounselor(t *testing.T) {
	svc, _, _, _ := newTestService()

	counselor, err := svc.ResolveCounselor(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, int64(7), counselor.ID)
}
