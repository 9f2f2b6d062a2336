// Package constants defines shared constants for the guardlog application.
package constants

// MinutesPerHour bounds every recorded sleep minute to [0, MinutesPerHour).
const MinutesPerHour = 60

// Event texts that drive the shift state machine.
// Any other text is expected to be a "Guard #<id> begins shift" line.
const (
	FallsAsleep = "falls asleep"
	WakesUp     = "wakes up"
)
