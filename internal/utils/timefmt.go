package utils

import "time"

// timestampLayout renders timestamps the way every output header expects them.
const timestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders the given time for output headers.
// The zero time renders as an empty string.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(timestampLayout)
}
