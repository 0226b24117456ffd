package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, mid-morning. All date arithmetic in the tests is relative to this.
var testNow = time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

var testHolidays = NewHolidays([]string{"2026-03-17", "2026-04-01"})

func reasonOf(t *testing.T, err error) ViolationReason {
	t.Helper()
	var v *Violation
	require.ErrorAs(t, err, &v)
	return v.Reason
}

func TestValidateRequestDateTime_DateRules(t *testing.T) {
	tests := []struct {
		name       string
		date       string
		wantReason ViolationReason
	}{
		{"yesterday rejected", "2026-03-03", ReasonPastDate},
		{"last month rejected", "2026-02-10", ReasonPastDate},
		{"saturday rejected", "2026-03-07", ReasonWeekend},
		{"sunday rejected", "2026-03-08", ReasonWeekend},
		{"weekday beyond window rejected", "2026-04-06", ReasonTooFarAhead},
		{"holiday rejected", "2026-03-17", ReasonHoliday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequestDateTime(tt.date, "09:00", testNow, testHolidays)
			require.Error(t, err)
			assert.Equal(t, tt.wantReason, reasonOf(t, err))
		})
	}
}

func TestValidateRequestDateTime_DateBoundaries(t *testing.T) {
	// Same day is still bookable.
	assert.NoError(t, ValidateRequestDateTime("2026-03-04", "09:00", testNow, testHolidays))

	// Exactly 30 days out (a Friday) is the last bookable day.
	assert.NoError(t, ValidateRequestDateTime("2026-04-03", "09:00", testNow, testHolidays))
}

func TestValidateRequestDateTime_WeekendBeatsWindow(t *testing.T) {
	// 31 days out lands on a Saturday; the weekend rule fires first.
	err := ValidateRequestDateTime("2026-04-04", "09:00", testNow, testHolidays)
	require.Error(t, err)
	assert.Equal(t, ReasonWeekend, reasonOf(t, err))
}

func TestValidateRequestDateTime_TimeRules(t *testing.T) {
	tests := []struct {
		clock      string
		wantReason ViolationReason
	}{
		{"07:29", ReasonBeforeHours},
		{"00:00", ReasonBeforeHours},
		{"12:00", ReasonLunchBreak},
		{"12:30", ReasonLunchBreak},
		{"12:59", ReasonLunchBreak},
		{"17:01", ReasonAfterHours},
		{"23:00", ReasonAfterHours},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			err := ValidateRequestDateTime("2026-03-05", tt.clock, testNow, testHolidays)
			require.Error(t, err)
			assert.Equal(t, tt.wantReason, reasonOf(t, err))
		})
	}
}

func TestValidateRequestDateTime_TimeBoundaries(t *testing.T) {
	for _, clock := range []string{"07:30", "11:59", "13:00", "17:00"} {
		assert.NoError(t, ValidateRequestDateTime("2026-03-05", clock, testNow, testHolidays), clock)
	}
}

func TestValidateRequestDateTime_MalformedInput(t *testing.T) {
	err := ValidateRequestDateTime("03/05/2026", "09:00", testNow, testHolidays)
	require.Error(t, err)
	var v *Violation
	assert.False(t, errors.As(err, &v), "parse failures are not rule violations")

	err = ValidateRequestDateTime("2026-03-05", "9am", testNow, testHolidays)
	require.Error(t, err)
	assert.False(t, errors.As(err, &v))
}

func TestHolidays_Contains(t *testing.T) {
	h := NewHolidays([]string{"2026-12-25"})
	assert.True(t, h.Contains("2026-12-25"))
	assert.False(t, h.Contains("2026-12-26"))
	assert.False(t, NewHolidays(nil).Contains("2026-12-25"))
}
