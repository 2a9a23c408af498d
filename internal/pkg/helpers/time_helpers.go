package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, falling back to def when the
// string is empty or malformed. Malformed input logs a warning; an
// empty string does not.
func ParseDuration(value string, def time.Duration) time.Duration {
	if value == "" {
		return def
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Warn().Str("value", value).Dur("default", def).Msg("Failed to parse duration, using default")
		return def
	}
	return duration
}
