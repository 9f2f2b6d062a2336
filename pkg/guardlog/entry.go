// Package guardlog parses guard duty log lines of the form "[YYYY-MM-DD hh:mm] text".
package guardlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"time"
)

var (
	// ErrMalformedLine is returned when a line does not have the "[date time] text" shape.
	ErrMalformedLine = errors.New("malformed log line")
	// ErrInvalidDate is returned when the timestamp fields do not form a real calendar minute.
	ErrInvalidDate = errors.New("invalid calendar date")
)

var lineRe = regexp.MustCompile(`^\[(\d+)-(\d+)-(\d+) (\d+):(\d+)\] (.+)$`)

// Entry is a single timestamped event from the guard log.
type Entry struct {
	Timestamp time.Time
	Text      string
}

// Minute returns the minute past the hour at which the event happened.
func (e Entry) Minute() int {
	return e.Timestamp.Minute()
}

// String formats the entry the way it appears in the log.
func (e Entry) String() string {
	return fmt.Sprintf("[%04d-%02d-%02d %02d:%02d] %s",
		e.Timestamp.Year(), int(e.Timestamp.Month()), e.Timestamp.Day(),
		e.Timestamp.Hour(), e.Timestamp.Minute(), e.Text)
}

// Parse converts one raw log line into an Entry.
func Parse(line string) (Entry, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	year, err := strconv.ParseInt(m[1], 10, 32)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing year: %w", err)
	}
	var fields [4]int
	for i, name := range []string{"month", "day", "hour", "minute"} {
		v, err := strconv.ParseUint(m[i+2], 10, 32)
		if err != nil {
			return Entry{}, fmt.Errorf("parsing %s: %w", name, err)
		}
		fields[i] = int(v)
	}

	ts, err := date(int(year), fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		return Entry{}, err
	}
	return Entry{Timestamp: ts, Text: m[6]}, nil
}

// date builds a UTC minute timestamp, refusing anything time.Date would normalize.
func date(year, month, day, hour, minute int) (time.Time, error) {
	if hour > 23 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidDate, hour, minute)
	}
	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	if ts.Year() != year || int(ts.Month()) != month || ts.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return ts, nil
}

// ParseAll reads r to the end and parses every line.
// Parsing stops at the first bad line.
func ParseAll(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		entry, err := Parse(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	return entries, nil
}

// Sort orders entries by timestamp. Entries sharing a timestamp keep their relative order.
func Sort(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
}
