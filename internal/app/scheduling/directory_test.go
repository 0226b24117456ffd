package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
)

func testDirectory() *Directory {
	return NewDirectory([]models.Assignment{
		{ID: 1, CounselorID: 10, Type: models.AssignmentCourse, Value: "BSCS"},
		{ID: 2, CounselorID: 10, Type: models.AssignmentYear, Value: "Grade 11"},
		{ID: 3, CounselorID: 20, Type: models.AssignmentCourse, Value: "BSIT"},
	})
}

func TestDirectory_Resolve(t *testing.T) {
	d := testDirectory()

	id, ok := d.Resolve(models.HEDLevel("BSCS"))
	require.True(t, ok)
	assert.Equal(t, int64(10), id)

	id, ok = d.Resolve(models.BEDLevel("Grade 11", "A"))
	require.True(t, ok)
	assert.Equal(t, int64(10), id)

	_, ok = d.Resolve(models.HEDLevel("BSN"))
	assert.False(t, ok, "unassigned course resolves to no counselor")

	// A year assignment never covers an HED course of the same value.
	_, ok = d.Resolve(models.HEDLevel("Grade 11"))
	assert.False(t, ok)
}

func TestDirectory_CheckAddition(t *testing.T) {
	d := testDirectory()

	assert.NoError(t, d.CheckAddition(20, models.AssignmentYear, "Grade 12"))

	err := d.CheckAddition(20, models.AssignmentCourse, "BSCS")
	assert.ErrorIs(t, err, apperrors.ErrAssignmentTaken)

	err = d.CheckAddition(10, models.AssignmentCourse, "BSCS")
	assert.ErrorIs(t, err, apperrors.ErrAssignmentDuplicated)

	// Same value under a different type is a distinct pair.
	assert.NoError(t, d.CheckAddition(20, models.AssignmentYear, "BSCS"))
}

func TestDirectory_ScopeFor(t *testing.T) {
	d := testDirectory()

	scope := d.ScopeFor(10)
	require.Len(t, scope, 2)
	assert.Equal(t, "BSCS", scope[0].Value)
	assert.Equal(t, "Grade 11", scope[1].Value)

	assert.Empty(t, d.ScopeFor(99))
}
