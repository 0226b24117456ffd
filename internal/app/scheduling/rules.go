package scheduling

import (
	"fmt"
	"time"
)

// Office hours and scheduling window, in minutes from midnight.
const (
	morningStartMinutes = 7*60 + 30 // 7:30 AM
	lunchStartMinutes   = 12 * 60   // 12:00 PM
	lunchEndMinutes     = 13 * 60   // 1:00 PM
	eveningEndMinutes   = 17 * 60   // 5:00 PM

	// MaxDaysAhead is how far in advance an appointment may be requested,
	// boundary inclusive.
	MaxDaysAhead = 30
)

// Wire formats for appointment dates and times.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ViolationReason categorizes why a requested date/time was rejected.
type ViolationReason string

const (
	ReasonPastDate    ViolationReason = "past-date"
	ReasonWeekend     ViolationReason = "weekend"
	ReasonTooFarAhead ViolationReason = "too-far-ahead"
	ReasonHoliday     ViolationReason = "holiday"
	ReasonBeforeHours ViolationReason = "before-hours"
	ReasonAfterHours  ViolationReason = "after-hours"
	ReasonLunchBreak  ViolationReason = "lunch-break"
)

// Violation is a rejected date/time with the first rule it broke.
type Violation struct {
	Reason  ViolationReason
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return v.Message
}

// Holidays is a set of dates (in DateLayout form) closed for counseling.
type Holidays map[string]struct{}

// NewHolidays builds a holiday set from a list of YYYY-MM-DD strings.
func NewHolidays(days []string) Holidays {
	h := make(Holidays, len(days))
	for _, day := range days {
		h[day] = struct{}{}
	}
	return h
}

// Contains reports whether the date is a holiday.
func (h Holidays) Contains(date string) bool {
	_, ok := h[date]
	return ok
}

// ValidateRequestDateTime applies the appointment request rules to a
// date/time pair. Date rules run before time rules, and the first rule
// broken determines the violation: past date, weekend, beyond the booking
// window, holiday, before office hours, after office hours, lunch break.
// A nil return means the slot is requestable.
func ValidateRequestDateTime(date, clock string, now time.Time, holidays Holidays) error {
	day, err := time.ParseInLocation(DateLayout, date, now.Location())
	if err != nil {
		return fmt.Errorf("invalid appointment date %q: %w", date, err)
	}

	t, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return fmt.Errorf("invalid appointment time %q: %w", clock, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return &Violation{
			Reason:  ReasonPastDate,
			Message: "Please select a future date. Past dates are not available for appointments.",
		}
	}

	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return &Violation{
			Reason:  ReasonWeekend,
			Message: "Appointments are not available on weekends. Please select a weekday.",
		}
	}

	if day.After(today.AddDate(0, 0, MaxDaysAhead)) {
		return &Violation{
			Reason:  ReasonTooFarAhead,
			Message: fmt.Sprintf("Appointments can only be scheduled up to %d days in advance.", MaxDaysAhead),
		}
	}

	if holidays.Contains(date) {
		return &Violation{
			Reason:  ReasonHoliday,
			Message: "The selected date is a holiday. Counseling services are not available.",
		}
	}

	minutes := t.Hour()*60 + t.Minute()

	if minutes < morningStartMinutes {
		return &Violation{
			Reason:  ReasonBeforeHours,
			Message: "Appointments cannot be scheduled before 7:30 AM.",
		}
	}

	if minutes > eveningEndMinutes {
		return &Violation{
			Reason:  ReasonAfterHours,
			Message: "Appointments cannot be scheduled after 5:00 PM.",
		}
	}

	if minutes >= lunchStartMinutes && minutes < lunchEndMinutes {
		return &Violation{
			Reason:  ReasonLunchBreak,
			Message: "Appointments cannot be scheduled during lunch break (12:00 PM - 1:00 PM).",
		}
	}

	return nil
}
