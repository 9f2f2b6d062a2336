// Package main implements the guardlog CLI tool for finding sleeping guards.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/codeGROOVE-dev/guardlog/pkg/guardlog"
	"github.com/codeGROOVE-dev/guardlog/pkg/histogram"
	"github.com/codeGROOVE-dev/guardlog/pkg/shift"
	"github.com/codeGROOVE-dev/guardlog/pkg/sleep"
)

var (
	verbose       = flag.Bool("verbose", false, "Enable verbose logging")
	showHistogram = flag.Bool("histogram", false, "Print the sleepiest guard's minute histogram to stderr")
	version       = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("guardlog CLI v1.0.0")
		return
	}

	if flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] < guard.log\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Configure logging
	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	var chart io.Writer
	if *showHistogram {
		chart = os.Stderr
	}

	if err := run(logger, os.Stdin, os.Stdout, chart); err != nil {
		logger.Error("Analysis failed", "error", err)
		os.Exit(1)
	}
}

// run reads the whole guard log from in and writes both answers to out.
// Nothing is written to out unless both answers could be computed.
// When chart is non-nil the sleepiest guard's histogram is written to it.
func run(logger *slog.Logger, in io.Reader, out, chart io.Writer) error {
	entries, err := guardlog.ParseAll(in)
	if err != nil {
		return fmt.Errorf("parsing log: %w", err)
	}
	logger.Debug("parsed log", "entries", len(entries))

	sleeps, err := shift.Reconstruct(logger, entries)
	if err != nil {
		return fmt.Errorf("reconstructing shifts: %w", err)
	}
	logger.Debug("reconstructed shifts", "guards", len(sleeps), "minutes", sleeps.Total())

	analyzer := sleep.NewAnalyzer(sleeps)
	answer1, err := analyzer.Answer1()
	if err != nil {
		return fmt.Errorf("computing first answer: %w", err)
	}
	answer2, err := analyzer.Answer2()
	if err != nil {
		return fmt.Errorf("computing second answer: %w", err)
	}

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		summaries, err := analyzer.Summaries()
		if err != nil {
			return fmt.Errorf("summarizing guards: %w", err)
		}
		for _, s := range summaries {
			logger.Debug("guard summary", "guard", s.Guard, "total_minutes", s.TotalMinutes,
				"mode_minute", s.ModeMinute, "mode_count", s.ModeCount)
		}
	}

	if chart != nil {
		guard, err := analyzer.Sleepiest()
		if err != nil {
			return fmt.Errorf("finding sleepiest guard: %w", err)
		}
		if _, err := io.WriteString(chart, histogram.Generate(guard, sleeps[guard])); err != nil {
			return fmt.Errorf("writing histogram: %w", err)
		}
	}

	if _, err := fmt.Fprintf(out, "1st Answer = %d\n2st Answer = %d\n", answer1, answer2); err != nil {
		return fmt.Errorf("writing answers: %w", err)
	}
	return nil
}
