package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStudentNo(t *testing.T) {
	valid := []string{"22-01116", "00-00000", "99-99999"}
	for _, no := range valid {
		assert.True(t, IsValidStudentNo(no), no)
	}

	invalid := []string{"", "2201116", "22-1116", "222-01116", "22-011160", "ab-01116", "22-0111a", " 22-01116"}
	for _, no := range invalid {
		assert.False(t, IsValidStudentNo(no), no)
	}
}

func TestIsSchoolEmail(t *testing.T) {
	assert.True(t, IsSchoolEmail("juan.cruz@shc.edu.ph", "@shc.edu.ph"))
	assert.True(t, IsSchoolEmail("Juan.Cruz@SHC.EDU.PH", "@shc.edu.ph"))
	assert.False(t, IsSchoolEmail("juan.cruz@gmail.com", "@shc.edu.ph"))
	assert.False(t, IsSchoolEmail("", "@shc.edu.ph"))

	// no configured domain means no restriction
	assert.True(t, IsSchoolEmail("anyone@example.com", ""))
}

func TestStringValidation(t *testing.T) {
	name := func(v string) *StringValidation {
		return NewStringValidation(v).WithMinLength(NameMinLength).WithMaxLength(NameMaxLength)
	}

	assert.True(t, name("Ana").Validate())
	assert.True(t, name("Li").Validate())
	assert.False(t, name("A").Validate())
	assert.False(t, name("").Validate())
	assert.False(t, name(strings.Repeat("x", NameMaxLength+1)).Validate())

	// optional fields accept empty values but still bound non-empty ones
	optional := NewStringValidation("").WithRequired(false).WithMinLength(2)
	assert.True(t, optional.Validate())
	assert.False(t, NewStringValidation("x").WithRequired(false).WithMinLength(2).Validate())

	assert.True(t, NewStringValidation("22-01116").WithPattern(CompiledPatterns.StudentNo).Validate())
	assert.False(t, NewStringValidation("2201116").WithPattern(CompiledPatterns.StudentNo).Validate())
}
