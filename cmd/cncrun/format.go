package main

import (
	"fmt"
	"strings"
	"time"
)

// formatNumber adds thousands separators (12450 -> "12,450"), the way
// the teacher's internal/cli.FormatNumber formats line and byte counts.
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	length := len(str)

	var result strings.Builder
	result.Grow(length + length/3)

	for i, digit := range str {
		result.WriteRune(digit)
		remaining := length - i - 1
		if remaining > 0 && remaining%3 == 0 {
			result.WriteRune(',')
		}
	}

	return result.String()
}

// formatDuration renders a duration in human-readable form (3.2s, 1m
// 15s, 2h 5m), matching the teacher's internal/cli.FormatDuration.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	seconds := int(d.Seconds())
	minutes := seconds / 60
	secs := seconds % 60
	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, secs)
	}

	hours := minutes / 60
	mins := minutes % 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}
