package guardlog

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Entry
	}{
		{
			name: "shift begin",
			line: "[1518-11-01 00:00] Guard #10 begins shift",
			want: Entry{Timestamp: time.Date(1518, 11, 1, 0, 0, 0, 0, time.UTC), Text: "Guard #10 begins shift"},
		},
		{
			name: "falls asleep",
			line: "[1518-11-01 00:05] falls asleep",
			want: Entry{Timestamp: time.Date(1518, 11, 1, 0, 5, 0, 0, time.UTC), Text: "falls asleep"},
		},
		{
			name: "late evening",
			line: "[1518-03-31 23:58] Guard #3517 begins shift",
			want: Entry{Timestamp: time.Date(1518, 3, 31, 23, 58, 0, 0, time.UTC), Text: "Guard #3517 begins shift"},
		},
		{
			name: "text kept verbatim",
			line: "[1518-11-01 00:05]   wakes up  ",
			want: Entry{Timestamp: time.Date(1518, 11, 1, 0, 5, 0, 0, time.UTC), Text: "  wakes up  "},
		},
		{
			name: "leap day",
			line: "[2024-02-29 12:30] falls asleep",
			want: Entry{Timestamp: time.Date(2024, 2, 29, 12, 30, 0, 0, time.UTC), Text: "falls asleep"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.line, err)
			}
			if !got.Timestamp.Equal(tt.want.Timestamp) || got.Text != tt.want.Text {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"empty line", "", ErrMalformedLine},
		{"missing brackets", "1518-11-01 00:00 Guard #10 begins shift", ErrMalformedLine},
		{"missing text", "[1518-11-01 00:00] ", ErrMalformedLine},
		{"leading space", " [1518-11-01 00:00] falls asleep", ErrMalformedLine},
		{"seconds present", "[1518-11-01 00:00:00] falls asleep", ErrMalformedLine},
		{"negative month", "[1518--1-01 00:00] falls asleep", ErrMalformedLine},
		{"month 13", "[1518-13-01 00:00] falls asleep", ErrInvalidDate},
		{"day 32", "[1518-11-32 00:00] falls asleep", ErrInvalidDate},
		{"february 30", "[1518-02-30 00:00] falls asleep", ErrInvalidDate},
		{"month zero", "[1518-00-10 00:00] falls asleep", ErrInvalidDate},
		{"hour 24", "[1518-11-01 24:00] falls asleep", ErrInvalidDate},
		{"minute 60", "[1518-11-01 00:60] falls asleep", ErrInvalidDate},
		{"year overflow", "[99999999999-11-01 00:00] falls asleep", strconv.ErrRange},
		{"minute overflow", "[1518-11-01 00:99999999999] falls asleep", strconv.ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.line)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	lines := []string{
		"[1518-11-01 00:00] Guard #10 begins shift",
		"[1518-11-05 00:55] wakes up",
		"[0001-01-01 00:00] falls asleep",
		"[2023-12-31 23:59] falls asleep",
	}
	for _, line := range lines {
		entry, err := Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", line, err)
		}
		if got := entry.String(); got != line {
			t.Errorf("round trip of %q produced %q", line, got)
		}
		again, err := Parse(entry.String())
		if err != nil {
			t.Fatalf("reparse of %q error: %v", entry.String(), err)
		}
		if !again.Timestamp.Equal(entry.Timestamp) {
			t.Errorf("reparse timestamp = %v, want %v", again.Timestamp, entry.Timestamp)
		}
	}
}

func TestParseAll(t *testing.T) {
	input := "[1518-11-01 00:00] Guard #10 begins shift\n" +
		"[1518-11-01 00:05] falls asleep\r\n" +
		"[1518-11-01 00:25] wakes up\n"

	entries, err := ParseAll(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseAll error: %v", err)
	}
	var texts []string
	for _, e := range entries {
		texts = append(texts, e.Text)
	}
	want := []string{"Guard #10 begins shift", "falls asleep", "wakes up"}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("ParseAll texts mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAllEmpty(t *testing.T) {
	entries, err := ParseAll(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseAll error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseAllReportsLine(t *testing.T) {
	input := "[1518-11-01 00:00] Guard #10 begins shift\n" +
		"garbage\n" +
		"[1518-11-01 00:25] wakes up\n"

	_, err := ParseAll(strings.NewReader(input))
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("ParseAll error = %v, want %v", err, ErrMalformedLine)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected error to name line 2, got %q", err)
	}
}

func TestSort(t *testing.T) {
	input := []string{
		"[1518-11-02 00:40] Guard #99 begins shift",
		"[1518-11-01 00:05] falls asleep",
		"[1518-11-01 00:00] Guard #10 begins shift",
		"[1518-11-01 00:05] wakes up",
		"[1517-12-31 23:59] Guard #1 begins shift",
	}
	var entries []Entry
	for _, line := range input {
		e, err := Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", line, err)
		}
		entries = append(entries, e)
	}

	Sort(entries)
	var got []string
	for _, e := range entries {
		got = append(got, e.String())
	}
	want := []string{
		"[1517-12-31 23:59] Guard #1 begins shift",
		"[1518-11-01 00:00] Guard #10 begins shift",
		"[1518-11-01 00:05] falls asleep", // equal timestamps keep input order
		"[1518-11-01 00:05] wakes up",
		"[1518-11-02 00:40] Guard #99 begins shift",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Sort mismatch (-want +got):\n%s", diff)
	}

	Sort(entries)
	var again []string
	for _, e := range entries {
		again = append(again, e.String())
	}
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("sorting twice changed order (-first +second):\n%s", diff)
	}
}
