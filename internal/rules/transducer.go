// Package rules implements rule-based grapheme-to-phoneme conversion
// for languages with regular orthography. A Transducer scans each
// word with greedy longest-match rules; rules may carry a context
// predicate, and a per-language stress hook decides which syllable
// receives the primary stress mark.
package rules

import (
	"log/slog"
	"strings"
)

// Rule maps a grapheme pattern to a phoneme emission. When several
// rules share a pattern they are tried in declaration order; the
// first whose predicate passes wins. A nil When always passes. An
// empty Emit consumes the pattern silently.
type Rule struct {
	Pattern string
	Emit    string
	When    func(word []rune, pos, n int) bool
}

// StressFunc returns the 1-based index of the stressed syllable,
// counting vowels from the left. Zero means no stress mark.
type StressFunc func(word []rune, totalSyllables int) int

// Transducer converts single words via an ordered rule set.
type Transducer struct {
	rules   map[string][]Rule
	maxLen  int // longest pattern, in runes
	isVowel func(r rune) bool
	stress  StressFunc
}

// NewTransducer compiles a rule list. Rules keep their declaration
// order within each pattern.
func NewTransducer(rules []Rule, isVowel func(rune) bool, stress StressFunc) *Transducer {
	t := &Transducer{
		rules:   make(map[string][]Rule, len(rules)),
		isVowel: isVowel,
		stress:  stress,
	}
	for _, r := range rules {
		n := len([]rune(r.Pattern))
		if n > t.maxLen {
			t.maxLen = n
		}
		t.rules[r.Pattern] = append(t.rules[r.Pattern], r)
	}
	return t
}

// Word converts one lowercased word to phonemes.
func (t *Transducer) Word(word string) string {
	runes := []rune(strings.ToLower(word))

	total := 0
	for _, r := range runes {
		if t.isVowel(r) {
			total++
		}
	}
	if total == 0 {
		total = 1
	}

	stressPos := 0
	if t.stress != nil {
		stressPos = t.stress(runes, total)
	}

	var b strings.Builder
	syllable := 0
	stressed := false

	for i := 0; i < len(runes); {
		if t.isVowel(runes[i]) {
			syllable++
			if syllable == stressPos && !stressed && total > 1 {
				b.WriteRune('ˈ')
				stressed = true
			}
		}

		n := t.match(runes, i, &b)
		if n == 0 {
			// Attached punctuation is forwarded into the phoneme
			// stream; anything else unknown is skipped.
			if strings.ContainsRune(passthroughPunct, runes[i]) {
				b.WriteRune(runes[i])
			}
			i++
			continue
		}
		i += n
	}

	return b.String()
}

// match tries patterns longest-first at position i, writing the
// winning emission. It returns the consumed length, 0 on no match.
func (t *Transducer) match(runes []rune, i int, b *strings.Builder) int {
	max := t.maxLen
	if rest := len(runes) - i; rest < max {
		max = rest
	}
	for n := max; n >= 1; n-- {
		for _, r := range t.rules[string(runes[i:i+n])] {
			if r.When != nil && !r.When(runes, i, n) {
				continue
			}
			b.WriteString(r.Emit)
			return n
		}
	}
	return 0
}

// Punctuation forwarded unchanged by the word-level resolvers. Every
// rune here has a vocabulary entry, so forwarded marks encode cleanly.
const passthroughPunct = ".,!?;:—…\"()¡¿“”"

func isPunctuation(word string) bool {
	for _, r := range word {
		if !strings.ContainsRune(passthroughPunct, r) {
			return false
		}
	}
	return word != ""
}

// phonemizeWords runs a transducer over whitespace-separated words,
// passing punctuation-only tokens through.
func phonemizeWords(t *Transducer, input string, log *slog.Logger) string {
	words := strings.Fields(input)
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if isPunctuation(w) {
			parts = append(parts, w)
			continue
		}
		parts = append(parts, t.Word(w))
	}
	out := strings.Join(parts, " ")
	log.Debug("rule transduction", "words", len(words))
	return out
}
