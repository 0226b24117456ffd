package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to models.AppointmentStatus }{
		{models.StatusPending, models.StatusApproved},
		{models.StatusPending, models.StatusRejected},
		{models.StatusApproved, models.StatusCompleted},
		{models.StatusApproved, models.StatusFailedToAttend},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to models.AppointmentStatus }{
		{models.StatusPending, models.StatusCompleted},
		{models.StatusPending, models.StatusFailedToAttend},
		{models.StatusApproved, models.StatusRejected},
		{models.StatusApproved, models.StatusPending},
		{models.StatusRejected, models.StatusApproved},
		{models.StatusCompleted, models.StatusPending},
		{models.StatusFailedToAttend, models.StatusCompleted},
		{models.StatusPending, models.StatusPending},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}
}

func TestTransition_IllegalMove(t *testing.T) {
	err := Transition(models.StatusRejected, models.StatusApproved)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestTransition_UnknownTarget(t *testing.T) {
	err := Transition(models.StatusPending, "cancelled")
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestTransition_LegalMove(t *testing.T) {
	assert.NoError(t, Transition(models.StatusPending, models.StatusApproved))
	assert.NoError(t, Transition(models.StatusApproved, models.StatusFailedToAttend))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(models.StatusPending))
	assert.False(t, IsTerminal(models.StatusApproved))
	assert.True(t, IsTerminal(models.StatusRejected))
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusFailedToAttend))
}

func TestCanAttachRemark(t *testing.T) {
	assert.True(t, CanAttachRemark(models.StatusCompleted))
	assert.False(t, CanAttachRemark(models.StatusPending))
	assert.False(t, CanAttachRemark(models.StatusApproved))
	assert.False(t, CanAttachRemark(models.StatusRejected))
	assert.False(t, CanAttachRemark(models.StatusFailedToAttend))
}
