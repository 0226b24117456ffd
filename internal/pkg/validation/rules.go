package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Student number pattern, e.g. "22-01116"
	StudentNoPattern = `^\d{2}-\d{5}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	StudentNo *regexp.Regexp
}{
	StudentNo: regexp.MustCompile(StudentNoPattern),
}

// IsSchoolEmail reports whether the email carries the required school domain
// suffix (e.g. "@shc.edu.ph").
func IsSchoolEmail(email, domainSuffix string) bool {
	if domainSuffix == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(email), strings.ToLower(domainSuffix))
}

// IsValidStudentNo reports whether the student number matches the XX-XXXXX format.
func IsValidStudentNo(studentNo string) bool {
	return CompiledPatterns.StudentNo.MatchString(studentNo)
}

// StringValidation validates a string value against length and pattern rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
