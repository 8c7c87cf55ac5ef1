package utils

import "fmt"

var sizeUnitNames = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize converts a byte count into a human-readable unit string.
// Zero and negative values format as "0 B"; any other value is scaled to the
// largest unit keeping the value below 1024 and printed with one decimal place.
func FormatSize(sizeBytes int64) string {
	if sizeBytes <= 0 {
		return "0 B"
	}
	scaledValue := float64(sizeBytes)
	unitIndex := 0
	for scaledValue >= 1024 && unitIndex < len(sizeUnitNames)-1 {
		scaledValue /= 1024
		unitIndex++
	}
	return fmt.Sprintf("%.1f %s", scaledValue, sizeUnitNames[unitIndex])
}
