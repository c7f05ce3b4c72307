package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/example/go-kokoro-g2p/internal/pipeline"
	"github.com/spf13/cobra"
)

func newPhonemizeCmd() *cobra.Command {
	var inputText string
	var language string
	var showTokens bool
	var asJSON bool
	var split bool

	cmd := &cobra.Command{
		Use:   "phonemize [text]",
		Short: "Convert text to phonemes and token IDs",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if language == "" {
				language = cfg.G2P.Language
			}

			input, err := readPhonemizeText(inputText, args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			g2p := pipeline.New(slog.Default())

			var results []pipeline.Result
			if split {
				results, err = g2p.ProcessChunked(input, language)
			} else {
				var res pipeline.Result
				res, err = g2p.Process(input, language)
				results = []pipeline.Result{res}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if asJSON {
				lang, _ := pipeline.CanonicalLanguage(language)
				enc := json.NewEncoder(out)
				if split {
					return enc.Encode(map[string]any{
						"language": lang,
						"chunks":   results,
					})
				}
				return enc.Encode(map[string]any{
					"language": lang,
					"phonemes": results[0].Phonemes,
					"tokens":   results[0].Tokens,
				})
			}

			for _, res := range results {
				if _, err := fmt.Fprintln(out, res.Phonemes); err != nil {
					return err
				}

				if showTokens {
					ids := make([]string, len(res.Tokens))
					for i, tok := range res.Tokens {
						ids[i] = fmt.Sprintf("%d", tok)
					}
					if _, err := fmt.Fprintln(out, strings.Join(ids, " ")); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputText, "text", "", "Text to convert (- reads stdin)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "Language code (defaults to configured language)")
	cmd.Flags().BoolVar(&showTokens, "tokens", false, "Also print token IDs")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON with language, phonemes and tokens")
	cmd.Flags().BoolVar(&split, "split", false, "Split long input at sentence boundaries into model-window chunks")

	return cmd
}

// readPhonemizeText picks the input text from --text, positional args,
// or stdin, in that order. "--text -" forces stdin.
func readPhonemizeText(flagText string, args []string, stdin io.Reader) (string, error) {
	if flagText != "" && flagText != "-" {
		return flagText, nil
	}
	if flagText == "" && len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("no input text: pass an argument, --text, or pipe stdin")
	}
	return string(data), nil
}
