package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Level identifies the student's department track
type Level string

const (
	LevelHED Level = "HED" // Higher Education Department
	LevelBED Level = "BED" // Basic Education Department
)

// Level-related errors
var (
	ErrUnknownLevel      = errors.New("unknown student level")
	ErrCourseRequired    = errors.New("course is required for HED students")
	ErrYearSectionNeeded = errors.New("year and section are required for BED students")
)

// HEDProgram carries the fields only HED students have.
type HEDProgram struct {
	Course string `json:"course"`
}

// BEDProgram carries the fields only BED students have.
type BEDProgram struct {
	Year    string `json:"year"`
	Section string `json:"section"`
}

// LevelInfo is a tagged union over the two level tracks: an HED student
// carries a course, a BED student a year and section, never both.
type LevelInfo struct {
	Level Level
	HED   *HEDProgram
	BED   *BEDProgram
}

// HEDLevel builds the HED variant.
func HEDLevel(course string) LevelInfo {
	return LevelInfo{Level: LevelHED, HED: &HEDProgram{Course: course}}
}

// BEDLevel builds the BED variant.
func BEDLevel(year, section string) LevelInfo {
	return LevelInfo{Level: LevelBED, BED: &BEDProgram{Year: year, Section: section}}
}

// Validate checks the variant's fields against its tag.
func (l LevelInfo) Validate() error {
	switch l.Level {
	case LevelHED:
		if l.HED == nil || l.HED.Course == "" {
			return ErrCourseRequired
		}
		if l.BED != nil {
			return fmt.Errorf("%w: HED student carries BED fields", ErrUnknownLevel)
		}
	case LevelBED:
		if l.BED == nil || l.BED.Year == "" || l.BED.Section == "" {
			return ErrYearSectionNeeded
		}
		if l.HED != nil {
			return fmt.Errorf("%w: BED student carries HED fields", ErrUnknownLevel)
		}
	default:
		return ErrUnknownLevel
	}
	return nil
}

// Course returns the course for HED students, "" otherwise.
func (l LevelInfo) Course() string {
	if l.HED != nil {
		return l.HED.Course
	}
	return ""
}

// Year returns the year for BED students, "" otherwise.
func (l LevelInfo) Year() string {
	if l.BED != nil {
		return l.BED.Year
	}
	return ""
}

// Section returns the section for BED students, "" otherwise.
func (l LevelInfo) Section() string {
	if l.BED != nil {
		return l.BED.Section
	}
	return ""
}

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64
	UserID         int64
	StudentNo      string
	Level          LevelInfo
	Gender         *string
	PhoneNo        *string
	Address        *string
	DOB            *string
	CounselingDone bool
	SentToAdmin    bool
	User           *User           // Relation, loaded via join
	Remarks        []StudentRemark // Relation, loaded separately
}

// studentJSON flattens the level union onto the wire format the dashboards
// consume: level plus course or year/section, with the inactive variant null.
type studentJSON struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"userId"`
	StudentNo      string          `json:"student_no"`
	Level          Level           `json:"level"`
	Course         *string         `json:"course"`
	Year           *string         `json:"year"`
	Section        *string         `json:"section"`
	Gender         *string         `json:"gender"`
	PhoneNo        *string         `json:"phone_no"`
	Address        *string         `json:"address"`
	DOB            *string         `json:"dob"`
	CounselingDone bool            `json:"counselingDone"`
	SentToAdmin    bool            `json:"sentToAdmin"`
	User           *User           `json:"user,omitempty"`
	Remarks        []StudentRemark `json:"remarks,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (s Student) MarshalJSON() ([]byte, error) {
	out := studentJSON{
		ID:             s.ID,
		UserID:         s.UserID,
		StudentNo:      s.StudentNo,
		Level:          s.Level.Level,
		Gender:         s.Gender,
		PhoneNo:        s.PhoneNo,
		Address:        s.Address,
		DOB:            s.DOB,
		CounselingDone: s.CounselingDone,
		SentToAdmin:    s.SentToAdmin,
		User:           s.User,
		Remarks:        s.Remarks,
	}
	if s.Level.HED != nil {
		out.Course = &s.Level.HED.Course
	}
	if s.Level.BED != nil {
		out.Year = &s.Level.BED.Year
		out.Section = &s.Level.BED.Section
	}
	return json.Marshal(out)
}
