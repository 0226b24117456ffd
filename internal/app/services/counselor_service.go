package services

import (
	"context"
	"fmt"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/app/repositories"
	"github.com/ecalderon/guidancehub/internal/app/scheduling"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
	"github.com/ecalderon/guidancehub/internal/pkg/auth"
	"github.com/ecalderon/guidancehub/internal/pkg/logger"
)

// CounselorService handles counselor account and assignment management
type CounselorService struct {
	counselorRepo *repositories.CounselorRepository
	userRepo      *repositories.UserRepository
}

// NewCounselorService creates a new CounselorService
func NewCounselorService(counselorRepo *repositories.CounselorRepository, userRepo *repositories.UserRepository) *CounselorService {
	return &CounselorService{
		counselorRepo: counselorRepo,
		userRepo:      userRepo,
	}
}

// Create registers a counselor account
func (s *CounselorService) Create(ctx context.Context, req *dto.CreateCounselorRequest) (*models.Counselor, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.ErrPasswordsDoNotMatch
	}

	if err := checkPersonNames(req.FirstName, req.LastName); err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleType:  models.RoleCounselor,
	}

	return s.counselorRepo.Create(ctx, user)
}

// List returns all counselors with their assignments
func (s *CounselorService) List(ctx context.Context) ([]*models.Counselor, error) {
	return s.counselorRepo.List(ctx)
}

// Get returns one counselor with its assignments
func (s *CounselorService) Get(ctx context.Context, id int64) (*models.Counselor, error) {
	counselor, err := s.counselorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counselor.Assignments, err = s.counselorRepo.GetAssignments(ctx, id)
	if err != nil {
		return nil, err
	}
	return counselor, nil
}

// GetByUserID returns the counselor behind a user account
func (s *CounselorService) GetByUserID(ctx context.Context, userID int64) (*models.Counselor, error) {
	counselor, err := s.counselorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	counselor.Assignments, err = s.counselorRepo.GetAssignments(ctx, counselor.ID)
	if err != nil {
		return nil, err
	}
	return counselor, nil
}

// Update applies a partial update to the counselor's account
func (s *CounselorService) Update(ctx context.Context, id int64, req *dto.UpdateCounselorRequest) (*models.Counselor, error) {
	counselor, err := s.counselorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user := counselor.User
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return counselor, nil
}

// Delete removes a counselor account
func (s *CounselorService) Delete(ctx context.Context, id int64) error {
	return s.counselorRepo.Delete(ctx, id)
}

// SaveAssignments replaces a counselor's assignment list. Each entry is
// checked against the assignments of every other counselor and against the
// entries accepted so far, then the whole list is swapped in. The check reads
// current state before writing and is not atomic with the save.
func (s *CounselorService) SaveAssignments(ctx context.Context, counselorID int64, req *dto.AssignmentsRequest) ([]models.Assignment, error) {
	if _, err := s.counselorRepo.GetByID(ctx, counselorID); err != nil {
		return nil, err
	}

	all, err := s.counselorRepo.GetAllAssignments(ctx)
	if err != nil {
		return nil, err
	}

	held := make([]models.Assignment, 0, len(all))
	for _, a := range all {
		if a.CounselorID != counselorID {
			held = append(held, a)
		}
	}

	assignments := make([]models.Assignment, 0, len(req.Assignments))
	for _, entry := range req.Assignments {
		directory := scheduling.NewDirectory(held)
		if err := directory.CheckAddition(counselorID, entry.Type, entry.Value); err != nil {
			return nil, apperrors.NewCustomError(err,
				fmt.Sprintf("Cannot assign %s %q: %s", entry.Type, entry.Value, err.Error()))
		}
		a := models.Assignment{CounselorID: counselorID, Type: entry.Type, Value: entry.Value}
		held = append(held, a)
		assignments = append(assignments, a)
	}

	if err := s.counselorRepo.ReplaceAssignments(ctx, counselorID, assignments); err != nil {
		return nil, err
	}

	logger.Info().Int64("counselorID", counselorID).Int("assignments", len(assignments)).Msg("Assignments replaced")
	return assignments, nil
}
