// Package shift replays a guard log to find out who was asleep and when.
package shift

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"

	"github.com/codeGROOVE-dev/guardlog/pkg/constants"
	"github.com/codeGROOVE-dev/guardlog/pkg/guardlog"
)

// ErrMalformedShift is returned for event text that is neither a sleep/wake event
// nor a "Guard #<id> begins shift" line.
var ErrMalformedShift = errors.New("malformed shift text")

var guardRe = regexp.MustCompile(`^Guard #(\d+) begins shift$`)

// GuardID identifies a guard.
type GuardID uint32

// SleepLog maps each guard to every minute they were seen asleep, one element per
// observed minute, duplicates included. Guards who never slept have no key.
type SleepLog map[GuardID][]int

// Guards returns the guard ids in ascending order.
func (l SleepLog) Guards() []GuardID {
	ids := make([]GuardID, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ParseGuardID extracts the id from a "Guard #<id> begins shift" line.
func ParseGuardID(text string) (GuardID, error) {
	m := guardRe.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedShift, text)
	}
	id, err := strconv.ParseUint(m[1], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing guard id: %w", err)
	}
	return GuardID(id), nil
}

// Reconstruct sorts the entries by time and replays them, recording each
// falls-asleep/next-event interval against the guard on duty.
// The entries slice itself is left untouched.
func Reconstruct(logger *slog.Logger, entries []guardlog.Entry) (SleepLog, error) {
	sorted := slices.Clone(entries)
	guardlog.Sort(sorted)

	sleeps := make(SleepLog)
	var (
		guard      GuardID
		onDuty     bool
		sleepStart int
		asleep     bool
	)

	for _, entry := range sorted {
		if entry.Text == constants.FallsAsleep {
			sleepStart = entry.Minute()
			asleep = true
			continue
		}

		if asleep {
			end := entry.Minute()
			asleep = false
			if !onDuty {
				logger.Warn("dropping sleep interval before any shift began",
					"start", sleepStart, "end", end, "at", entry.Timestamp)
			} else {
				for m := sleepStart; m < end; m++ {
					sleeps[guard] = append(sleeps[guard], m)
				}
			}
		}

		if entry.Text != constants.WakesUp {
			id, err := ParseGuardID(entry.Text)
			if err != nil {
				return nil, fmt.Errorf("entry %s: %w", entry, err)
			}
			guard = id
			onDuty = true
			logger.Debug("shift begins", "guard", guard, "at", entry.Timestamp)
		}
	}

	return sleeps, nil
}

// Total returns the number of minutes recorded across all guards.
func (l SleepLog) Total() int {
	n := 0
	for _, minutes := range l {
		n += len(minutes)
	}
	return n
}
