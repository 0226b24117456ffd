package services

import (
	"context"
	"fmt"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/app/repositories"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
	"github.com/ecalderon/guidancehub/internal/pkg/auth"
	"github.com/ecalderon/guidancehub/internal/pkg/logger"
	"github.com/ecalderon/guidancehub/internal/pkg/validation"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo     *repositories.UserRepository
	studentRepo  *repositories.StudentRepository
	jwtService   *auth.JWTService
	schoolDomain string
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	studentRepo *repositories.StudentRepository,
	jwtService *auth.JWTService,
	schoolDomain string,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		studentRepo:  studentRepo,
		jwtService:   jwtService,
		schoolDomain: schoolDomain,
	}
}

// checkPersonNames bounds the first/last name lengths shared by the account
// creation flows.
func checkPersonNames(firstName, lastName string) error {
	for _, name := range []string{firstName, lastName} {
		ok := validation.NewStringValidation(name).
			WithMinLength(validation.NameMinLength).
			WithMaxLength(validation.NameMaxLength).
			Validate()
		if !ok {
			return apperrors.NewBadRequestError(fmt.Sprintf(
				"Names must be between %d and %d characters",
				validation.NameMinLength, validation.NameMaxLength))
		}
	}
	return nil
}

// Login authenticates a user and issues an access token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info().Int64("userID", user.ID).Str("role", user.RoleType.Label()).Msg("User logged in")

	return &dto.LoginResponse{
		Message:     "Login successful",
		Role:        user.RoleType.Label(),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}

// RegisterStudent creates a student account from a self-registration request.
// New registrations start with counseling_done and sent_to_admin set, the
// state the dashboards expect for students who have not been counseled under
// the current workflow yet.
func (s *AuthService) RegisterStudent(ctx context.Context, req *dto.RegisterStudentRequest) (*models.Student, error) {
	if !validation.IsSchoolEmail(req.Email, s.schoolDomain) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidSchoolEmail,
			fmt.Sprintf("Email must be a %s address", s.schoolDomain))
	}

	if !validation.IsValidStudentNo(req.StudentNo) {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStudentNo,
			"Student number must match the XX-XXXXX format")
	}

	if err := checkPersonNames(req.FirstName, req.LastName); err != nil {
		return nil, err
	}

	level := req.LevelInfo()
	if err := level.Validate(); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	taken, err := s.studentRepo.StudentNoExists(ctx, req.StudentNo)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrStudentNoAlreadyExists
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
		RoleType:  models.RoleStudent,
	}
	student := &models.Student{
		StudentNo:      req.StudentNo,
		Level:          level,
		Gender:         req.Gender,
		PhoneNo:        req.PhoneNo,
		Address:        req.Address,
		DOB:            req.DOB,
		CounselingDone: true,
		SentToAdmin:    true,
	}

	if err := s.studentRepo.Create(ctx, user, student); err != nil {
		return nil, err
	}

	return student, nil
}
