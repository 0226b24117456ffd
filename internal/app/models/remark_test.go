package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRemarks() []StudentRemark {
	return []StudentRemark{
		{Text: "Initial intake session", DateLabel: "March 02, 2026 and 09:00 AM", CounselorName: "Reyes, Ana"},
		{Text: "Follow up on attendance", DateLabel: "March 04, 2026 and 10:00 AM", CounselorName: "Reyes, Ana"},
	}
}

func TestApplyRemarkEdit(t *testing.T) {
	original := sampleRemarks()

	edited, err := ApplyRemarkEdit(original, 1, "Follow up on attendance and grades")
	require.NoError(t, err)

	assert.Equal(t, "Follow up on attendance and grades", edited[1].Text)
	assert.Equal(t, "March 04, 2026 and 10:00 AM (edited)", edited[1].DateLabel)

	// untouched entries keep content and order
	assert.Equal(t, original[0], edited[0])

	// the input slice is not mutated
	assert.Equal(t, "Follow up on attendance", original[1].Text)
	assert.Equal(t, "March 04, 2026 and 10:00 AM", original[1].DateLabel)
}

func TestApplyRemarkEdit_MarksEveryEdit(t *testing.T) {
	edited, err := ApplyRemarkEdit(sampleRemarks(), 1, "First revision")
	require.NoError(t, err)

	edited, err = ApplyRemarkEdit(edited, 1, "Second revision")
	require.NoError(t, err)

	assert.Equal(t, "Second revision", edited[1].Text)
	assert.Equal(t, "March 04, 2026 and 10:00 AM (edited) (edited)", edited[1].DateLabel)
}

func TestApplyRemarkEdit_IndexOutOfRange(t *testing.T) {
	_, err := ApplyRemarkEdit(sampleRemarks(), 2, "text")
	assert.ErrorIs(t, err, ErrRemarkIndexOutOfRange)

	_, err = ApplyRemarkEdit(sampleRemarks(), -1, "text")
	assert.ErrorIs(t, err, ErrRemarkIndexOutOfRange)

	_, err = ApplyRemarkEdit(nil, 0, "text")
	assert.ErrorIs(t, err, ErrRemarkIndexOutOfRange)
}
