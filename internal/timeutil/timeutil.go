// Package timeutil provides utility functions for formatting durations.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const secondsInAMinute = 60

// Round rounds a time value in seconds, minutes, or hours to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val float64) (mins, secs int) {
	total := Round(val)

	return total / secondsInAMinute, total % secondsInAMinute
}

// Clock formats d as MM:SS.
func Clock(d time.Duration) string {
	m, s := SecsToMinsAndSecs(d.Seconds())

	return fmt.Sprintf("%02d:%02d", m, s)
}
