package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/example/go-kokoro-g2p/internal/bench"
	"github.com/example/go-kokoro-g2p/internal/pipeline"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		text      string
		language  string
		runs      int
		format    string
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark phonemization throughput",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("--text is required for bench")
			}
			if runs < 1 {
				return fmt.Errorf("--runs must be at least 1")
			}
			if format != "table" && format != "json" {
				return fmt.Errorf("--format must be 'table' or 'json'")
			}

			selectedLang := cfg.G2P.Language
			if language != "" {
				selectedLang = language
			}
			canonical, err := pipeline.CanonicalLanguage(selectedLang)
			if err != nil {
				return err
			}

			g2p := pipeline.New(slog.Default())
			fn := func(text, language string) (int, error) {
				res, err := g2p.Process(text, language)
				if err != nil {
					return 0, err
				}
				return len(res.Tokens), nil
			}

			results, stats, err := bench.Run(fn, text, canonical, runs)
			if err != nil {
				return err
			}

			switch format {
			case "json":
				bench.FormatJSON(results, stats, os.Stdout)
			default:
				bench.FormatTable(results, stats, os.Stdout)
			}

			// Compute mean throughput across all runs.
			var total float64
			for _, r := range results {
				total += r.CharsPerSec
			}
			mean := total / float64(len(results))

			return bench.CheckThroughputThreshold(mean, threshold)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to phonemize for each run (required)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Language code (overrides config)")
	cmd.Flags().IntVar(&runs, "runs", 5, "Number of phonemization runs")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table|json")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Exit non-zero if mean chars/s falls below this value (0 = disabled)")

	return cmd
}
