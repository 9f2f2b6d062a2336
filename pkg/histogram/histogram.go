// Package histogram provides visualization of sleep patterns.
package histogram

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/codeGROOVE-dev/guardlog/pkg/constants"
	"github.com/codeGROOVE-dev/guardlog/pkg/shift"
	"github.com/codeGROOVE-dev/guardlog/pkg/sleep"
)

// Counts tallies how many times each minute of the hour appears in minutes.
func Counts(minutes []int) [constants.MinutesPerHour]int {
	var counts [constants.MinutesPerHour]int
	for _, m := range minutes {
		if m >= 0 && m < constants.MinutesPerHour {
			counts[m]++
		}
	}
	return counts
}

// Generate creates a visual representation of when a guard sleeps, one row per minute.
// The guard's most slept minute is marked with "z".
func Generate(guard shift.GuardID, minutes []int) string {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("💤 Guard #%d sleep pattern (1-minute resolution)\n", guard))
	output.WriteString(strings.Repeat("─", 50) + "\n")

	mode, err := sleep.Mode(minutes)
	if err != nil {
		return output.String() + "No sleep recorded\n"
	}

	// Only show the days count when it is informative
	if mode.Occurrence > 1 {
		output.WriteString(fmt.Sprintf("Asleep %d minutes, most often at 00:%02d (%d days)\n",
			len(minutes), mode.Value, mode.Occurrence))
	} else {
		output.WriteString(fmt.Sprintf("Asleep %d minutes\n", len(minutes)))
	}
	output.WriteString(strings.Repeat("─", 50) + "\n")

	counts := Counts(minutes)
	marker := color.New(color.FgBlue)
	bar := color.New(color.FgHiBlack)
	peak := color.New(color.FgYellow)

	for minute, count := range counts {
		line := fmt.Sprintf("00:%02d ", minute)

		if minute == mode.Value {
			line += marker.Sprint("z") + " "
		} else {
			line += "  "
		}

		if count == 0 {
			output.WriteString(line + "\n")
			continue
		}
		line += fmt.Sprintf("(%2d) ", count)

		switch {
		case count == mode.Occurrence:
			line += peak.Sprint(strings.Repeat("█", count))
		case count == 1:
			line += bar.Sprint("·")
		default:
			line += bar.Sprint(strings.Repeat("█", count))
		}
		output.WriteString(line + "\n")
	}

	return output.String()
}
