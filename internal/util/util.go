package util

import (
	"fmt"
	"time"
)

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatDistanceKm formats a distance in kilometres for display
// (e.g., "850 m", "12.5 km").
func FormatDistanceKm(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(km*1000))
	}

	return fmt.Sprintf("%.1f km", km)
}
