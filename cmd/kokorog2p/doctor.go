package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/example/go-kokoro-g2p/internal/doctor"
	"github.com/example/go-kokoro-g2p/internal/lexicon"
	"github.com/example/go-kokoro-g2p/internal/pipeline"
	"github.com/example/go-kokoro-g2p/internal/vocab"
	"github.com/spf13/cobra"
)

// doctorSamples holds one known-good word per language. A resolver that
// cannot phonemize its sample has broken or missing data.
var doctorSamples = map[string]string{
	pipeline.LangEnglishUS: "hello",
	pipeline.LangEnglishGB: "water",
	pipeline.LangMandarin:  "你好",
	pipeline.LangSpanish:   "hola",
	pipeline.LangGerman:    "haus",
}

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run local phoneme data checks",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := requireConfig(); err != nil {
				return err
			}

			dcfg := doctor.Config{
				Vocabulary: checkVocabulary,
				Lexicons: map[string]doctor.CheckFunc{
					"en-us": checkLexicon(false, "hello"),
					"en-gb": checkLexicon(true, "water"),
				},
				Resolvers: map[string]doctor.CheckFunc{},
			}

			g2p := pipeline.New(slog.Default())
			for _, lang := range pipeline.Languages() {
				dcfg.Resolvers[lang] = checkResolver(g2p, lang)
			}

			result := doctor.Run(dcfg, os.Stdout)

			if result.Failed() {
				for _, f := range result.Failures() {
					fmt.Fprintf(os.Stderr, "FAIL: %s\n", f)
				}
				return errors.New("doctor checks failed")
			}

			fmt.Fprintln(os.Stdout, "doctor checks passed")
			return nil
		},
	}

	return cmd
}

// checkVocabulary verifies the token table is populated and that
// symbol/id lookups round-trip for the structural symbols.
func checkVocabulary() (string, error) {
	size := vocab.Size()
	if size == 0 {
		return "", errors.New("token table is empty")
	}

	for _, sym := range []rune{'ˈ', 'ˌ', ' ', '.'} {
		id, ok := vocab.ID(sym)
		if !ok {
			return "", fmt.Errorf("symbol %q missing from token table", sym)
		}
		back, ok := vocab.Symbol(id)
		if !ok || back != sym {
			return "", fmt.Errorf("symbol %q does not round-trip (id %d)", sym, id)
		}
	}

	return fmt.Sprintf("%d symbols", size), nil
}

// checkLexicon loads one dialect's dictionary tiers and resolves a
// sample word through them.
func checkLexicon(british bool, sample string) doctor.CheckFunc {
	return func() (string, error) {
		lex := lexicon.New(british)
		phonemes, tier, ok := lex.Lookup(sample, "")
		if !ok {
			return "", fmt.Errorf("sample word %q not found", sample)
		}
		return fmt.Sprintf("%q -> %q (tier %d)", sample, phonemes, tier), nil
	}
}

// checkResolver builds the resolver for lang (loading any dictionaries
// it needs) and phonemizes its sample word end to end.
func checkResolver(g2p *pipeline.G2P, lang string) doctor.CheckFunc {
	return func() (string, error) {
		sample := doctorSamples[lang]
		if sample == "" {
			return "", fmt.Errorf("no sample word for %s", lang)
		}

		res, err := g2p.Process(sample, lang)
		if err != nil {
			return "", err
		}
		if res.Phonemes == "" {
			return "", fmt.Errorf("sample word %q produced no phonemes", sample)
		}

		return fmt.Sprintf("%q -> %q (%d tokens)", sample, res.Phonemes, len(res.Tokens)), nil
	}
}
