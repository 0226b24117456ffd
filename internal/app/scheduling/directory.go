package scheduling

import (
	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
)

// Directory is an in-memory view of all counselor assignments, used to
// resolve which counselor owns a student and to precheck assignment
// uniqueness before a save. It carries no locking: the read-then-write
// uniqueness check mirrors the persistence contract and is not atomic.
type Directory struct {
	entries []models.Assignment
}

// NewDirectory builds a directory from the persisted assignment list.
func NewDirectory(entries []models.Assignment) *Directory {
	return &Directory{entries: entries}
}

// Resolve returns the counselor holding the assignment that covers the
// student's track. ok is false when no counselor is assigned — a normal
// outcome the caller must handle, not an error.
func (d *Directory) Resolve(level models.LevelInfo) (counselorID int64, ok bool) {
	for _, a := range d.entries {
		if a.Matches(level) {
			return a.CounselorID, true
		}
	}
	return 0, false
}

// Holder returns the counselor currently holding (type, value), if any.
func (d *Directory) Holder(t models.AssignmentType, value string) (counselorID int64, ok bool) {
	for _, a := range d.entries {
		if a.Type == t && a.Value == value {
			return a.CounselorID, true
		}
	}
	return 0, false
}

// CheckAddition prechecks whether a counselor may take on (type, value):
// it fails when another counselor already holds the pair, or when the
// counselor itself already does.
func (d *Directory) CheckAddition(counselorID int64, t models.AssignmentType, value string) error {
	holder, held := d.Holder(t, value)
	if !held {
		return nil
	}
	if holder == counselorID {
		return apperrors.ErrAssignmentDuplicated
	}
	return apperrors.ErrAssignmentTaken
}

// ScopeFor returns the assignments held by one counselor, the scope used
// to restrict student listings.
func (d *Directory) ScopeFor(counselorID int64) []models.Assignment {
	var scope []models.Assignment
	for _, a := range d.entries {
		if a.CounselorID == counselorID {
			scope = append(scope, a)
		}
	}
	return scope
}
