package sleep

import (
	"errors"
	"fmt"

	"github.com/maypok86/otter/v2"

	"github.com/codeGROOVE-dev/guardlog/pkg/shift"
)

// ErrNoGuards is returned when the sleep log holds no guard at all.
var ErrNoGuards = errors.New("no guard was recorded asleep")

// Summary describes one guard's sleeping habits.
type Summary struct {
	Guard        shift.GuardID
	TotalMinutes int
	ModeMinute   int
	ModeCount    int
}

// Analyzer answers questions about a SleepLog, computing each guard's mode minute once.
type Analyzer struct {
	sleeps shift.SleepLog
	modes  *otter.Cache[shift.GuardID, ModeResult[int]]
}

// NewAnalyzer creates an Analyzer for the given log. The log must not change afterwards.
func NewAnalyzer(sleeps shift.SleepLog) *Analyzer {
	size := max(len(sleeps), 1)
	return &Analyzer{
		sleeps: sleeps,
		modes: otter.Must(&otter.Options[shift.GuardID, ModeResult[int]]{
			MaximumSize:     size,
			InitialCapacity: size,
		}),
	}
}

// GuardMode returns the minute the guard was most often asleep.
func (a *Analyzer) GuardMode(id shift.GuardID) (ModeResult[int], error) {
	if r, ok := a.modes.GetIfPresent(id); ok {
		return r, nil
	}
	r, err := Mode(a.sleeps[id])
	if err != nil {
		return r, fmt.Errorf("guard %d: %w", id, err)
	}
	a.modes.Set(id, r)
	return r, nil
}

// Sleepiest returns the guard with the most minutes asleep overall.
// Ties go to the lowest guard id.
func (a *Analyzer) Sleepiest() (shift.GuardID, error) {
	guards := a.sleeps.Guards()
	if len(guards) == 0 {
		return 0, ErrNoGuards
	}
	best := guards[0]
	for _, id := range guards[1:] {
		if len(a.sleeps[id]) > len(a.sleeps[best]) {
			best = id
		}
	}
	return best, nil
}

// Answer1 multiplies the sleepiest guard's id by that guard's most slept minute.
func (a *Analyzer) Answer1() (int, error) {
	id, err := a.Sleepiest()
	if err != nil {
		return 0, err
	}
	mode, err := a.GuardMode(id)
	if err != nil {
		return 0, err
	}
	return int(id) * mode.Value, nil
}

// Answer2 finds the guard most frequently asleep on one particular minute and
// multiplies the guard's id by that minute. Ties go to the lowest guard id.
func (a *Analyzer) Answer2() (int, error) {
	guards := a.sleeps.Guards()
	if len(guards) == 0 {
		return 0, ErrNoGuards
	}

	var (
		bestID   shift.GuardID
		bestMode ModeResult[int]
	)
	for i, id := range guards {
		mode, err := a.GuardMode(id)
		if err != nil {
			return 0, err
		}
		if i == 0 || mode.Occurrence > bestMode.Occurrence {
			bestID, bestMode = id, mode
		}
	}
	return int(bestID) * bestMode.Value, nil
}

// Summaries returns one Summary per guard ordered by guard id.
func (a *Analyzer) Summaries() ([]Summary, error) {
	guards := a.sleeps.Guards()
	out := make([]Summary, 0, len(guards))
	for _, id := range guards {
		mode, err := a.GuardMode(id)
		if err != nil {
			return nil, err
		}
		out = append(out, Summary{
			Guard:        id,
			TotalMinutes: len(a.sleeps[id]),
			ModeMinute:   mode.Value,
			ModeCount:    mode.Occurrence,
		})
	}
	return out, nil
}

// Answer1 is a convenience wrapper around Analyzer.Answer1.
func Answer1(sleeps shift.SleepLog) (int, error) {
	return NewAnalyzer(sleeps).Answer1()
}

// Answer2 is a convenience wrapper around Analyzer.Answer2.
func Answer2(sleeps shift.SleepLog) (int, error) {
	return NewAnalyzer(sleeps).Answer2()
}
