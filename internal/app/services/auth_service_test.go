package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
)

// The pre-persistence validation paths reject before any repository call, so
// these run against a service with no backing stores.

func validRegistration() *dto.RegisterStudentRequest {
	return &dto.RegisterStudentRequest{
		Email:     "juan.cruz@shc.edu.ph",
		Password:  "secret123",
		FirstName: "Juan",
		LastName:  "Cruz",
		StudentNo: "22-01116",
		Level:     models.LevelHED,
		Course:    "BSCS",
	}
}

func TestRegisterStudent_RejectsNonSchoolEmail(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, "@shc.edu.ph")

	req := validRegistration()
	req.Email = "juan.cruz@gmail.com"
	_, err := svc.RegisterStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSchoolEmail)
}

func TestRegisterStudent_RejectsBadStudentNo(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, "@shc.edu.ph")

	req := validRegistration()
	req.StudentNo = "2201116"
	_, err := svc.RegisterStudent(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrInvalidStudentNo)
}

func TestRegisterStudent_RejectsOutOfBoundsNames(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, "@shc.edu.ph")

	req := validRegistration()
	req.FirstName = "J"
	_, err := svc.RegisterStudent(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	req = validRegistration()
	req.LastName = strings.Repeat("x", 101)
	_, err = svc.RegisterStudent(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
