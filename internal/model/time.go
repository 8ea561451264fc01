package model

import (
	"fmt"
	"time"
)

// FormatTime returns d formatted as MM:SS, or HH:MM:SS from one hour on.
// Sub-second parts are truncated and negative values render as 00:00.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
