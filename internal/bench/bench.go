// Package bench provides benchmarking primitives for the kokorog2p bench command.
package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// ---------------------------------------------------------------------------
// Run result and stats
// ---------------------------------------------------------------------------

// RunResult holds the timing metadata for a single phonemization run.
type RunResult struct {
	Index       int
	Cold        bool // true for the first run (cold-start, includes dictionary load)
	Duration    time.Duration
	Chars       int
	Tokens      int
	CharsPerSec float64
}

// Stats holds aggregate timing statistics across all runs.
type Stats struct {
	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
}

// ComputeStats calculates min, max and mean over a slice of durations.
// The slice must be non-empty.
func ComputeStats(durations []time.Duration) Stats {
	if len(durations) == 0 {
		return Stats{}
	}
	mn, mx := durations[0], durations[0]
	var sum time.Duration
	for _, d := range durations {
		if d < mn {
			mn = d
		}
		if d > mx {
			mx = d
		}
		sum += d
	}
	return Stats{
		Min:  mn,
		Max:  mx,
		Mean: sum / time.Duration(len(durations)),
	}
}

// ---------------------------------------------------------------------------
// Throughput helpers
// ---------------------------------------------------------------------------

// CalcCharsPerSec returns chars / duration in seconds.
// Returns 0 if dur is zero to avoid division by zero.
func CalcCharsPerSec(chars int, dur time.Duration) float64 {
	if dur <= 0 {
		return 0
	}
	return float64(chars) / dur.Seconds()
}

// ProcessFunc runs one phonemization and returns the token count.
type ProcessFunc func(text, language string) (tokens int, err error)

// Run executes fn runs times over the same input and collects per-run
// timings. The first run is marked cold; it typically includes
// one-time dictionary construction.
func Run(fn ProcessFunc, text, language string, runs int) ([]RunResult, Stats, error) {
	if runs < 1 {
		return nil, Stats{}, fmt.Errorf("runs must be >= 1, got %d", runs)
	}

	chars := utf8.RuneCountInString(text)
	results := make([]RunResult, 0, runs)
	durations := make([]time.Duration, 0, runs)

	for i := 0; i < runs; i++ {
		start := time.Now()
		tokens, err := fn(text, language)
		dur := time.Since(start)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("run %d: %w", i+1, err)
		}

		results = append(results, RunResult{
			Index:       i,
			Cold:        i == 0,
			Duration:    dur,
			Chars:       chars,
			Tokens:      tokens,
			CharsPerSec: CalcCharsPerSec(chars, dur),
		})
		durations = append(durations, dur)
	}

	return results, ComputeStats(durations), nil
}

// ---------------------------------------------------------------------------
// Throughput threshold gate
// ---------------------------------------------------------------------------

// CheckThroughputThreshold returns an error if meanCharsPerSec < threshold.
// A threshold of 0 disables the gate.
func CheckThroughputThreshold(meanCharsPerSec, threshold float64) error {
	if threshold <= 0 {
		return nil
	}
	if meanCharsPerSec < threshold {
		return fmt.Errorf("mean throughput %.1f chars/s below threshold %.1f", meanCharsPerSec, threshold)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Output formatters
// ---------------------------------------------------------------------------

// FormatTable writes a human-readable ASCII table of bench results to w.
func FormatTable(runs []RunResult, stats Stats, w io.Writer) {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "%-5s  %-5s  %10s  %8s  %8s  %12s\n", "Run", "Cold", "µs", "Chars", "Tokens", "Chars/s")
	fmt.Fprintln(sb, strings.Repeat("-", 58))

	for _, r := range runs {
		cold := ""
		if r.Cold {
			cold = "yes"
		}
		fmt.Fprintf(sb, "%-5d  %-5s  %10.1f  %8d  %8d  %12.1f\n",
			r.Index+1,
			cold,
			float64(r.Duration.Microseconds()),
			r.Chars,
			r.Tokens,
			r.CharsPerSec,
		)
	}

	fmt.Fprintln(sb, strings.Repeat("-", 58))
	fmt.Fprintf(sb, "%-5s  %-5s  %10.1f  (min)\n", "", "", float64(stats.Min.Microseconds()))
	fmt.Fprintf(sb, "%-5s  %-5s  %10.1f  (mean)\n", "", "", float64(stats.Mean.Microseconds()))
	fmt.Fprintf(sb, "%-5s  %-5s  %10.1f  (max)\n", "", "", float64(stats.Max.Microseconds()))

	fmt.Fprint(w, sb.String())
}

// jsonReport is the top-level JSON structure emitted by FormatJSON.
type jsonReport struct {
	Runs  []jsonRun `json:"runs"`
	Stats jsonStats `json:"stats"`
}

type jsonRun struct {
	Index       int     `json:"index"`
	Cold        bool    `json:"cold"`
	DurationUS  float64 `json:"duration_us"`
	Chars       int     `json:"chars"`
	Tokens      int     `json:"tokens"`
	CharsPerSec float64 `json:"chars_per_sec"`
}

type jsonStats struct {
	MinUS  float64 `json:"min_us"`
	MeanUS float64 `json:"mean_us"`
	MaxUS  float64 `json:"max_us"`
}

// FormatJSON writes a JSON report of bench results to w.
func FormatJSON(runs []RunResult, stats Stats, w io.Writer) {
	jr := jsonReport{
		Runs: make([]jsonRun, len(runs)),
		Stats: jsonStats{
			MinUS:  float64(stats.Min.Microseconds()),
			MeanUS: float64(stats.Mean.Microseconds()),
			MaxUS:  float64(stats.Max.Microseconds()),
		},
	}
	for i, r := range runs {
		jr.Runs[i] = jsonRun{
			Index:       r.Index,
			Cold:        r.Cold,
			DurationUS:  float64(r.Duration.Microseconds()),
			Chars:       r.Chars,
			Tokens:      r.Tokens,
			CharsPerSec: r.CharsPerSec,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(jr)
}
