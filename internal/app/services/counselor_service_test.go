package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecalderon/guidancehub/internal/app/models/dto"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
)

func TestCreateCounselor_RejectsPasswordMismatch(t *testing.T) {
	svc := NewCounselorService(nil, nil)

	_, err := svc.Create(context.Background(), &dto.CreateCounselorRequest{
		Email:           "ana.reyes@shc.edu.ph",
		Password:        "secret123",
		ConfirmPassword: "secret124",
		FirstName:       "Ana",
		LastName:        "Reyes",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordsDoNotMatch)
}

func TestCreateCounselor_RejectsShortName(t *testing.T) {
	svc := NewCounselorService(nil, nil)

	_, err := svc.Create(context.Background(), &dto.CreateCounselorRequest{
		Email:           "ana.reyes@shc.edu.ph",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		FirstName:       "A",
		LastName:        "Reyes",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}
