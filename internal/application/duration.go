package application

import (
	"fmt"
	"time"
)

// formatLiveDuration renders how long a live game has been running given
// its start timestamp in unix milliseconds. Spectator sometimes reports a
// zero start time for games still in loading screen.
func formatLiveDuration(startMillis int64) string {
	if startMillis <= 0 {
		return "unknown"
	}

	elapsed := time.Since(time.UnixMilli(startMillis))
	if elapsed < time.Minute {
		return "just started"
	}

	minutes := int(elapsed.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%dh %dmin", minutes/60, minutes%60)
}
