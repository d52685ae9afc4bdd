package mediainfo

import (
	"fmt"
	"strconv"
	"time"
)

// formatDuration renders d the way the text report shows it, rounded to the
// millisecond. It returns "" for a zero or negative duration.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}

	totalMs := d.Round(time.Millisecond).Milliseconds()
	if totalMs < 1000 {
		return fmt.Sprintf("%d ms", totalMs)
	}

	totalSec := totalMs / 1000
	remMs := totalMs % 1000
	if totalSec == 59 && remMs >= 500 {
		totalSec = 60
		remMs = 0
	}
	if totalSec < 60 {
		return fmt.Sprintf("%d s %d ms", totalSec, remMs)
	}

	hours := totalSec / 3600
	minutes := (totalSec % 3600) / 60
	secondsOnly := totalSec % 60
	if hours > 0 {
		return fmt.Sprintf("%d h %d min %d s", hours, minutes, secondsOnly)
	}
	return fmt.Sprintf("%d min %d s", minutes, secondsOnly)
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}
