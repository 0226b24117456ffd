package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelInfoValidate(t *testing.T) {
	assert.NoError(t, HEDLevel("BSCS").Validate())
	assert.NoError(t, BEDLevel("Grade 11", "A").Validate())

	assert.ErrorIs(t, HEDLevel("").Validate(), ErrCourseRequired)
	assert.ErrorIs(t, BEDLevel("", "A").Validate(), ErrYearSectionNeeded)
	assert.ErrorIs(t, BEDLevel("Grade 11", "").Validate(), ErrYearSectionNeeded)
	assert.ErrorIs(t, LevelInfo{Level: "JHS"}.Validate(), ErrUnknownLevel)

	mixed := HEDLevel("BSCS")
	mixed.BED = &BEDProgram{Year: "Grade 11", Section: "A"}
	assert.ErrorIs(t, mixed.Validate(), ErrUnknownLevel)
}

func TestStudentMarshalJSON_FlattensLevel(t *testing.T) {
	hed := Student{ID: 1, UserID: 10, StudentNo: "22-01116", Level: HEDLevel("BSCS")}
	data, err := json.Marshal(hed)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "HED", out["level"])
	assert.Equal(t, "BSCS", out["course"])
	assert.Nil(t, out["year"])
	assert.Nil(t, out["section"])

	bed := Student{ID: 2, UserID: 11, StudentNo: "22-01117", Level: BEDLevel("Grade 11", "A")}
	data, err = json.Marshal(bed)
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "BED", out["level"])
	assert.Nil(t, out["course"])
	assert.Equal(t, "Grade 11", out["year"])
	assert.Equal(t, "A", out["section"])
}

func TestAssignmentMatches(t *testing.T) {
	course := Assignment{Type: AssignmentCourse, Value: "BSCS"}
	assert.True(t, course.Matches(HEDLevel("BSCS")))
	assert.False(t, course.Matches(HEDLevel("BSIT")))
	assert.False(t, course.Matches(BEDLevel("BSCS", "A")))

	year := Assignment{Type: AssignmentYear, Value: "Grade 11"}
	assert.True(t, year.Matches(BEDLevel("Grade 11", "A")))
	assert.False(t, year.Matches(BEDLevel("Grade 12", "A")))
	assert.False(t, year.Matches(HEDLevel("Grade 11")))
}
