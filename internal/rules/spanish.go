package rules

import (
	"log/slog"
	"strings"
	"sync"
)

// Spanish orthography is nearly one-to-one with its phonology, so a
// rule transducer covers it without a dictionary. Seseo readings are
// used (c/z before front vowels as s) for broad coverage.

const spanishVowels = "aeiouáéíóúü"

func spanishIsVowel(r rune) bool {
	return strings.ContainsRune(spanishVowels, r)
}

func spanishFrontVowel(r rune) bool {
	switch r {
	case 'e', 'i', 'é', 'í':
		return true
	}
	return false
}

func rune2(word []rune, pos, n int) (rune, bool) {
	if pos+n < len(word) {
		return word[pos+n], true
	}
	return 0, false
}

var spanishRules = []Rule{
	{Pattern: "ch", Emit: "ʧ"},
	{Pattern: "ll", Emit: "ʝ"}, // yeísmo
	{Pattern: "rr", Emit: "r"},
	{Pattern: "qu", Emit: "k"},
	{Pattern: "gu", Emit: "ɡ", When: func(w []rune, pos, n int) bool {
		next, ok := rune2(w, pos, n)
		return ok && spanishFrontVowel(next)
	}},
	{Pattern: "gu", Emit: "ɡw", When: func(w []rune, pos, n int) bool {
		next, ok := rune2(w, pos, n)
		switch next {
		case 'a', 'o', 'á', 'ó':
			return ok
		}
		return false
	}},

	{Pattern: "a", Emit: "a"}, {Pattern: "á", Emit: "a"},
	{Pattern: "e", Emit: "e"}, {Pattern: "é", Emit: "e"},
	{Pattern: "i", Emit: "i"}, {Pattern: "í", Emit: "i"},
	{Pattern: "o", Emit: "o"}, {Pattern: "ó", Emit: "o"},
	{Pattern: "u", Emit: "u"}, {Pattern: "ú", Emit: "u"},
	{Pattern: "ü", Emit: "u"},

	// y: consonant at syllable onset, vowel elsewhere.
	{Pattern: "y", Emit: "ʝ", When: func(w []rune, pos, n int) bool {
		return pos == 0 || !spanishIsVowel(w[pos-1])
	}},
	{Pattern: "y", Emit: "i"},

	{Pattern: "b", Emit: "b"},
	{Pattern: "v", Emit: "b"}, // betacism
	{Pattern: "c", Emit: "s", When: func(w []rune, pos, n int) bool {
		next, ok := rune2(w, pos, n)
		return ok && spanishFrontVowel(next)
	}},
	{Pattern: "c", Emit: "k"},
	{Pattern: "d", Emit: "d"},
	{Pattern: "f", Emit: "f"},
	{Pattern: "g", Emit: "x", When: func(w []rune, pos, n int) bool {
		next, ok := rune2(w, pos, n)
		return ok && spanishFrontVowel(next)
	}},
	{Pattern: "g", Emit: "ɡ"},
	{Pattern: "h", Emit: ""}, // silent
	{Pattern: "j", Emit: "x"},
	{Pattern: "k", Emit: "k"},
	{Pattern: "l", Emit: "l"},
	{Pattern: "m", Emit: "m"},
	{Pattern: "n", Emit: "n"},
	{Pattern: "ñ", Emit: "ɲ"},
	{Pattern: "p", Emit: "p"},
	// r: trill word-initially and after n/l/s, tap elsewhere.
	{Pattern: "r", Emit: "r", When: func(w []rune, pos, n int) bool {
		if pos == 0 {
			return true
		}
		switch w[pos-1] {
		case 'n', 'l', 's':
			return true
		}
		return false
	}},
	{Pattern: "r", Emit: "ɾ"},
	{Pattern: "s", Emit: "s"},
	{Pattern: "t", Emit: "t"},
	{Pattern: "w", Emit: "w"},
	{Pattern: "x", Emit: "ks"},
	{Pattern: "z", Emit: "s"},
}

// spanishStress: a written accent always decides; otherwise words
// ending in a vowel, n or s stress the penultimate syllable and the
// rest stress the final one.
func spanishStress(word []rune, total int) int {
	if total <= 1 {
		return 1
	}

	syllable := 0
	for _, r := range word {
		if spanishIsVowel(r) {
			syllable++
		}
		switch r {
		case 'á', 'é', 'í', 'ó', 'ú':
			return syllable
		}
	}

	last := word[len(word)-1]
	if spanishIsVowel(last) || last == 'n' || last == 's' {
		if total > 1 {
			return total - 1
		}
		return 1
	}
	return total
}

// Spanish resolves Spanish text by rule. Safe for concurrent use.
type Spanish struct {
	t   *Transducer
	log *slog.Logger
}

var (
	spanishOnce sync.Once
	spanishT    *Transducer
)

// NewSpanish returns a Spanish resolver.
func NewSpanish(logger *slog.Logger) *Spanish {
	if logger == nil {
		logger = slog.Default()
	}
	spanishOnce.Do(func() {
		spanishT = NewTransducer(spanishRules, spanishIsVowel, spanishStress)
	})
	return &Spanish{t: spanishT, log: logger}
}

// Phonemize converts normalized Spanish text to phonemes.
func (s *Spanish) Phonemize(input string) (string, error) {
	return phonemizeWords(s.t, input, s.log), nil
}
