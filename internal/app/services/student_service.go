package services

import (
	"context"
	"errors"
	"time"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/app/repositories"
	"github.com/ecalderon/guidancehub/internal/app/scheduling"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
	"github.com/ecalderon/guidancehub/internal/pkg/helpers"
	"github.com/ecalderon/guidancehub/internal/pkg/logger"
)

// StudentRecordStore is the persistence surface for student records, their
// counseling remarks and the dashboard counters
type StudentRecordStore interface {
	List(ctx context.Context, filter repositories.StudentFilter) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByUserID(ctx context.Context, userID int64) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	GetRemarks(ctx context.Context, studentID int64) ([]models.StudentRemark, error)
	AppendRemark(ctx context.Context, studentID int64, remark *models.StudentRemark) error
	UpdateRemarkAt(ctx context.Context, studentID int64, position int, text, dateLabel string) error
	SetCounselingFlags(ctx context.Context, studentID int64, counselingDone, sentToAdmin *bool) error
	CountAll(ctx context.Context) (int64, error)
	CountByLevel(ctx context.Context, level models.Level) (int64, error)
	CountSentToAdmin(ctx context.Context) (int64, error)
}

// CounselorRoster resolves counselors and the assignment table
type CounselorRoster interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Counselor, error)
	GetAllAssignments(ctx context.Context) ([]models.Assignment, error)
	Count(ctx context.Context) (int64, error)
}

// StudentService handles student records, remarks and dashboard stats
type StudentService struct {
	students   StudentRecordStore
	counselors CounselorRoster
	clock      func() time.Time
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentRecordStore, counselors CounselorRoster) *StudentService {
	return &StudentService{
		students:   students,
		counselors: counselors,
		clock:      time.Now,
	}
}

// ListForAdmin lists students with the admin dashboard filters. The
// counselingDone filter matches the sent-to-admin flag: the admin dashboard
// has always read "counseling done" as "forwarded to me".
func (s *StudentService) ListForAdmin(ctx context.Context, query *dto.ListStudentsQuery) ([]*models.Student, error) {
	return s.students.List(ctx, repositories.StudentFilter{
		SentToAdmin: query.CounselingDone,
		Level:       query.Level,
		Course:      query.Course,
		Year:        query.Year,
		Section:     query.Section,
	})
}

// ListForCounselor lists the students covered by the counselor's assignments.
// A counselor with no assignments sees an empty list.
func (s *StudentService) ListForCounselor(ctx context.Context, counselorUserID int64, query *dto.ListStudentsQuery) ([]*models.Student, error) {
	counselor, err := s.counselors.GetByUserID(ctx, counselorUserID)
	if err != nil {
		return nil, err
	}

	assignments, err := s.counselors.GetAllAssignments(ctx)
	if err != nil {
		return nil, err
	}

	scope := scheduling.NewDirectory(assignments).ScopeFor(counselor.ID)
	if scope == nil {
		scope = []models.Assignment{}
	}

	return s.students.List(ctx, repositories.StudentFilter{
		Level:   query.Level,
		Course:  query.Course,
		Year:    query.Year,
		Section: query.Section,
		Scope:   scope,
	})
}

// Get returns one student with its remark list
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// GetByUserID returns the student behind a user account, with remarks
func (s *StudentService) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	student, err := s.students.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	student.Remarks, err = s.students.GetRemarks(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// GetForCounselor returns a student after checking it falls inside the
// counselor's assignment scope.
func (s *StudentService) GetForCounselor(ctx context.Context, counselorUserID, studentID int64) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := s.checkScope(ctx, counselorUserID, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update applies a partial update to a student record. A level change must
// carry the new variant's fields; the previous variant's fields are dropped.
func (s *StudentService) Update(ctx context.Context, studentID int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.User.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.User.LastName = *req.LastName
	}
	if req.Gender != nil {
		student.Gender = req.Gender
	}
	if req.PhoneNo != nil {
		student.PhoneNo = req.PhoneNo
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.DOB != nil {
		student.DOB = req.DOB
	}

	level := student.Level
	switch {
	case req.Level != nil:
		if *req.Level == models.LevelBED {
			level = models.BEDLevel(req.Year, req.Section)
		} else {
			level = models.HEDLevel(req.Course)
		}
	case req.Course != "" && level.HED != nil:
		level = models.HEDLevel(req.Course)
	case (req.Year != "" || req.Section != "") && level.BED != nil:
		year, section := level.Year(), level.Section()
		if req.Year != "" {
			year = req.Year
		}
		if req.Section != "" {
			section = req.Section
		}
		level = models.BEDLevel(year, section)
	}
	if err := level.Validate(); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	student.Level = level

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateForCounselor updates a student after an assignment scope check
func (s *StudentService) UpdateForCounselor(ctx context.Context, counselorUserID, studentID int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := s.checkScope(ctx, counselorUserID, student); err != nil {
		return nil, err
	}
	return s.Update(ctx, studentID, req)
}

// DeleteForCounselor removes a student after an assignment scope check
func (s *StudentService) DeleteForCounselor(ctx context.Context, counselorUserID, studentID int64) error {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if err := s.checkScope(ctx, counselorUserID, student); err != nil {
		return err
	}
	return s.students.Delete(ctx, studentID)
}

// AddRemarkForCounselor appends a remark to the student's counseling record,
// marks the counseling as done and optionally forwards the student to the
// admin.
func (s *StudentService) AddRemarkForCounselor(ctx context.Context, counselorUserID, studentID int64, req *dto.RemarkRequest) (*models.StudentRemark, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if err := s.checkScope(ctx, counselorUserID, student); err != nil {
		return nil, err
	}

	counselor, err := s.counselors.GetByUserID(ctx, counselorUserID)
	if err != nil {
		return nil, err
	}

	remark := &models.StudentRemark{
		Text:          req.Text,
		DateLabel:     helpers.FormatRemarkDate(s.clock()),
		Counselor:     counselor.User.Email,
		CounselorName: counselor.User.ListedName(),
	}
	if err := s.students.AppendRemark(ctx, studentID, remark); err != nil {
		return nil, err
	}

	done := true
	var sentToAdmin *bool
	if req.SendToAdmin {
		sentToAdmin = &req.SendToAdmin
	}
	if err := s.students.SetCounselingFlags(ctx, studentID, &done, sentToAdmin); err != nil {
		return nil, err
	}

	return remark, nil
}

// AddRemarkAsAdmin appends a remark on behalf of a named counselor
func (s *StudentService) AddRemarkAsAdmin(ctx context.Context, studentID int64, req *dto.AdminRemarkRequest) (*models.StudentRemark, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	remark := &models.StudentRemark{
		Text:          req.Text,
		DateLabel:     helpers.FormatRemarkDate(s.clock()),
		Counselor:     req.Counselor,
		CounselorName: req.Counselor,
	}
	if err := s.students.AppendRemark(ctx, studentID, remark); err != nil {
		return nil, err
	}

	done := true
	if err := s.students.SetCounselingFlags(ctx, studentID, &done, nil); err != nil {
		return nil, err
	}

	return remark, nil
}

// EditRemark replaces the text of the remark at a list position. The edit is
// applied to the in-memory copy first and then persisted; when the save
// fails, the locally edited remark is still returned so the caller sees the
// change, with Persisted reporting the divergence. There is no retry.
func (s *StudentService) EditRemark(ctx context.Context, studentID int64, index int, req *dto.EditRemarkRequest) (*dto.EditRemarkResponse, error) {
	remarks, err := s.students.GetRemarks(ctx, studentID)
	if err != nil {
		return nil, err
	}

	edited, err := models.ApplyRemarkEdit(remarks, index, req.Text)
	if err != nil {
		if errors.Is(err, models.ErrRemarkIndexOutOfRange) {
			return nil, apperrors.ErrRemarkNotFound
		}
		return nil, err
	}

	result := &dto.EditRemarkResponse{
		Remark:         edited[index],
		AppliedLocally: true,
	}

	if err := s.students.UpdateRemarkAt(ctx, studentID, index, edited[index].Text, edited[index].DateLabel); err != nil {
		logger.Warn().Err(err).Int64("studentID", studentID).Int("index", index).
			Msg("Remark edit applied locally but not persisted")
		return result, nil
	}

	result.Persisted = true
	return result, nil
}

// SendToAdmin forwards a student's record to the admin dashboard
func (s *StudentService) SendToAdmin(ctx context.Context, counselorUserID, studentID int64) error {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	if err := s.checkScope(ctx, counselorUserID, student); err != nil {
		return err
	}

	sent := true
	return s.students.SetCounselingFlags(ctx, studentID, nil, &sent)
}

// DashboardStats assembles the admin dashboard counters
func (s *StudentService) DashboardStats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}
	var err error

	if stats.TotalStudents, err = s.students.CountAll(ctx); err != nil {
		return nil, err
	}
	if stats.TotalCounselors, err = s.counselors.Count(ctx); err != nil {
		return nil, err
	}
	if stats.HEDStudents, err = s.students.CountByLevel(ctx, models.LevelHED); err != nil {
		return nil, err
	}
	if stats.BEDStudents, err = s.students.CountByLevel(ctx, models.LevelBED); err != nil {
		return nil, err
	}
	if stats.SentToAdmin, err = s.students.CountSentToAdmin(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetRemarks returns a student's counseling history
func (s *StudentService) GetRemarks(ctx context.Context, studentID int64) ([]models.StudentRemark, error) {
	return s.students.GetRemarks(ctx, studentID)
}

// checkScope verifies the student is covered by one of the counselor's
// assignments.
func (s *StudentService) checkScope(ctx context.Context, counselorUserID int64, student *models.Student) error {
	counselor, err := s.counselors.GetByUserID(ctx, counselorUserID)
	if err != nil {
		return err
	}

	assignments, err := s.counselors.GetAllAssignments(ctx)
	if err != nil {
		return err
	}

	for _, a := range scheduling.NewDirectory(assignments).ScopeFor(counselor.ID) {
		if a.Matches(student.Level) {
			return nil
		}
	}
	return apperrors.ErrStudentOutsideAssignment
}
