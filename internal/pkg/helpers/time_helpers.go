package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a pool lifetime such as "30m", falling back to
// defaultDuration when the string is malformed.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// called while the database is opened, before any request logger exists
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}
