package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/app/scheduling"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
	"github.com/ecalderon/guidancehub/internal/pkg/helpers"
	"github.com/ecalderon/guidancehub/internal/pkg/logger"
)

// AppointmentStore is the persistence surface the appointment workflow needs
type AppointmentStore interface {
	Create(ctx context.Context, appt *models.Appointment) error
	CreateBatch(ctx context.Context, appts []*models.Appointment) error
	GetByID(ctx context.Context, id int64) (*models.Appointment, error)
	ListByCounselor(ctx context.Context, counselorID int64, status *models.AppointmentStatus) ([]*models.Appointment, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Appointment, error)
	ListByStudentWithStatuses(ctx context.Context, studentID int64, statuses []models.AppointmentStatus) ([]*models.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status models.AppointmentStatus) error
	SetRemarks(ctx context.Context, id int64, remarks string) error
}

// StudentStore resolves students and records counseling outcomes
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	AppendRemark(ctx context.Context, studentID int64, remark *models.StudentRemark) error
	SetCounselingFlags(ctx context.Context, studentID int64, counselingDone, sentToAdmin *bool) error
}

// CounselorStore resolves counselors and their assignments
type CounselorStore interface {
	GetByID(ctx context.Context, id int64) (*models.Counselor, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Counselor, error)
	GetAllAssignments(ctx context.Context) ([]models.Assignment, error)
}

// AppointmentService drives the appointment scheduling workflow
type AppointmentService struct {
	appointments AppointmentStore
	students     StudentStore
	counselors   CounselorStore
	holidays     scheduling.Holidays
	clock        func() time.Time
}

// NewAppointmentService creates a new AppointmentService
func NewAppointmentService(
	appointments AppointmentStore,
	students StudentStore,
	counselors CounselorStore,
	holidays scheduling.Holidays,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		students:     students,
		counselors:   counselors,
		holidays:     holidays,
		clock:        time.Now,
	}
}

// ResolveCounselor finds the counselor assigned to the student's course or
// year.
func (s *AppointmentService) ResolveCounselor(ctx context.Context, studentUserID int64) (*models.Counselor, error) {
	student, err := s.students.GetByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	return s.resolveForStudent(ctx, student)
}

// RequestAppointment creates a pending appointment request for the student.
// Every submission creates a new record; the workflow does not collapse
// duplicates.
func (s *AppointmentService) RequestAppointment(ctx context.Context, studentUserID int64, req *dto.RequestAppointmentRequest) (*models.Appointment, error) {
	student, err := s.students.GetByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}

	counselor, err := s.resolveForStudent(ctx, student)
	if err != nil {
		return nil, err
	}

	if err := scheduling.ValidateRequestDateTime(req.Date, req.Time, s.clock(), s.holidays); err != nil {
		var violation *scheduling.Violation
		if errors.As(err, &violation) {
			return nil, apperrors.NewCustomError(apperrors.ErrInvalidAppointmentDay, violation.Message)
		}
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	appt := &models.Appointment{
		StudentID:     student.ID,
		CounselorID:   counselor.ID,
		StudentName:   student.User.FullName(),
		StudentEmail:  student.User.Email,
		CounselorName: counselor.User.FullName(),
		Date:          req.Date,
		Time:          req.Time,
		Reason:        req.Reason,
		Status:        models.StatusPending,
		CreatedAt:     s.clock(),
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	return appt, nil
}

// ListForStudent returns the student's appointments, newest first
func (s *AppointmentService) ListForStudent(ctx context.Context, studentUserID int64) ([]*models.Appointment, error) {
	student, err := s.students.GetByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	return s.appointments.ListByStudent(ctx, student.ID)
}

// ListSchedulesForStudent returns the student's upcoming schedule: approved
// and still-pending appointments.
func (s *AppointmentService) ListSchedulesForStudent(ctx context.Context, studentUserID int64) ([]*models.Appointment, error) {
	student, err := s.students.GetByUserID(ctx, studentUserID)
	if err != nil {
		return nil, err
	}
	return s.appointments.ListByStudentWithStatuses(ctx, student.ID,
		[]models.AppointmentStatus{models.StatusApproved, models.StatusPending})
}

// ListForCounselor returns the counselor's appointments in date order, with
// an optional status filter.
func (s *AppointmentService) ListForCounselor(ctx context.Context, counselorUserID int64, status string) ([]*models.Appointment, error) {
	counselor, err := s.counselors.GetByUserID(ctx, counselorUserID)
	if err != nil {
		return nil, err
	}

	var filter *models.AppointmentStatus
	if status != "" {
		st := models.AppointmentStatus(status)
		if !st.Valid() {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown appointment status %q", status))
		}
		filter = &st
	}

	return s.appointments.ListByCounselor(ctx, counselor.ID, filter)
}

// UpdateStatus moves one of the counselor's appointments through the
// lifecycle. Only transitions the state machine allows are accepted.
func (s *AppointmentService) UpdateStatus(ctx context.Context, counselorUserID, appointmentID int64, to models.AppointmentStatus) (*models.Appointment, error) {
	appt, err := s.ownedAppointment(ctx, counselorUserID, appointmentID)
	if err != nil {
		return nil, err
	}

	if err := scheduling.Transition(appt.Status, to); err != nil {
		return nil, err
	}

	if err := s.appointments.UpdateStatus(ctx, appt.ID, to); err != nil {
		return nil, err
	}

	appt.Status = to
	return appt, nil
}

// AttachRemark records the session outcome on a completed appointment: the
// appointment remark is overwritten and a linked remark is appended to the
// student's counseling record, which is marked done and forwarded to the
// admin. The two writes are not atomic; the appointment write wins on
// failure.
func (s *AppointmentService) AttachRemark(ctx context.Context, counselorUserID, appointmentID int64, remarks string) (*models.Appointment, error) {
	counselor, err := s.counselors.GetByUserID(ctx, counselorUserID)
	if err != nil {
		return nil, err
	}

	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.CounselorID != counselor.ID {
		return nil, apperrors.ErrPermissionDenied
	}

	if !scheduling.CanAttachRemark(appt.Status) {
		return nil, apperrors.NewCustomError(apperrors.ErrAppointmentNotDone,
			"Remarks can only be added to completed appointments")
	}

	if err := s.appointments.SetRemarks(ctx, appt.ID, remarks); err != nil {
		return nil, err
	}
	appt.Remarks = &remarks

	remark := &models.StudentRemark{
		Text:          remarks,
		DateLabel:     helpers.FormatRemarkDate(s.clock()),
		Counselor:     counselor.User.Email,
		CounselorName: counselor.User.ListedName(),
		AppointmentID: &appt.ID,
	}
	if err := s.students.AppendRemark(ctx, appt.StudentID, remark); err != nil {
		logger.Error().Err(err).Int64("appointmentID", appt.ID).
			Msg("Appointment remark saved but student record update failed")
		return nil, err
	}

	done, sent := true, true
	if err := s.students.SetCounselingFlags(ctx, appt.StudentID, &done, &sent); err != nil {
		return nil, err
	}

	return appt, nil
}

// BulkSchedule creates one approved appointment per listed student, sharing
// a date, time and reason. The insert is all-or-nothing.
func (s *AppointmentService) BulkSchedule(ctx context.Context, counselorUserID int64, req *dto.BulkScheduleRequest) (int, error) {
	counselor, err := s.counselors.GetByUserID(ctx, counselorUserID)
	if err != nil {
		return 0, err
	}

	students := make([]*models.Student, 0, len(req.StudentIDs))
	for _, id := range req.StudentIDs {
		student, err := s.students.GetByID(ctx, id)
		if err != nil {
			return 0, err
		}
		students = append(students, student)
	}

	appts := scheduling.BuildBulk(students, counselor, req.Date, req.Time, req.Reason, s.clock())
	if err := s.appointments.CreateBatch(ctx, appts); err != nil {
		return 0, err
	}

	logger.Info().Int64("counselorID", counselor.ID).Int("count", len(appts)).
		Str("date", req.Date).Msg("Bulk schedule created")
	return len(appts), nil
}

func (s *AppointmentService) ownedAppointment(ctx context.Context, counselorUserID, appointmentID int64) (*models.Appointment, error) {
	counselor, err := s.counselors.GetByUserID(ctx, counselorUserID)
	if err != nil {
		return nil, err
	}

	appt, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.CounselorID != counselor.ID {
		return nil, apperrors.ErrPermissionDenied
	}
	return appt, nil
}

func (s *AppointmentService) resolveForStudent(ctx context.Context, student *models.Student) (*models.Counselor, error) {
	assignments, err := s.counselors.GetAllAssignments(ctx)
	if err != nil {
		return nil, err
	}

	counselorID, ok := scheduling.NewDirectory(assignments).Resolve(student.Level)
	if !ok {
		return nil, apperrors.ErrNoCounselorAssigned
	}

	return s.counselors.GetByID(ctx, counselorID)
}
