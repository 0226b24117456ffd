package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// RemarkDateLayout is the display format used for remark timestamps,
// e.g. "April 23, 2025 and 02:00 PM".
const RemarkDateLayout = "January 02, 2006 and 03:04 PM"

// ParseDuration parses a duration string, returns the default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// FormatRemarkDate renders a timestamp in the remark display format.
func FormatRemarkDate(t time.Time) string {
	return t.Format(RemarkDateLayout)
}
