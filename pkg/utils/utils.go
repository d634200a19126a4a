package utils

import "time"

// TimestampISO current time, RFC3339 UTC
func TimestampISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}
