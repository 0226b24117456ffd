package scheduling

import (
	"fmt"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
)

// transitions holds the allowed status moves. Rejected and "failed to
// attend" are terminal; completed is terminal for status changes but stays
// open for remark attachment.
var transitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.StatusPending:  {models.StatusApproved, models.StatusRejected},
	models.StatusApproved: {models.StatusCompleted, models.StatusFailedToAttend},
}

// CanTransition reports whether from→to is a legal status move.
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition validates a status move and returns the error the API surfaces
// when it is not allowed.
func Transition(from, to models.AppointmentStatus) error {
	if !to.Valid() {
		return apperrors.NewBadRequestError(fmt.Sprintf("unknown appointment status %q", to))
	}
	if !CanTransition(from, to) {
		return apperrors.NewCustomError(apperrors.ErrInvalidTransition,
			fmt.Sprintf("cannot move appointment from %q to %q", from, to))
	}
	return nil
}

// CanAttachRemark reports whether a remark may be attached to an appointment
// in the given status. Only completed appointments accept remarks.
func CanAttachRemark(status models.AppointmentStatus) bool {
	return status == models.StatusCompleted
}

// IsTerminal reports whether no further status transition is possible.
func IsTerminal(status models.AppointmentStatus) bool {
	return len(transitions[status]) == 0
}
