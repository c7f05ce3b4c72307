// Package g2p converts English text into phoneme strings for the
// acoustic model. Words resolve through the tiered dictionary first;
// misses fall through contraction handling, compound splitting,
// acronym spell-out and finally letter-to-sound rules.
package g2p

import (
	"log/slog"
	"strings"

	"github.com/example/go-kokoro-g2p/internal/lexicon"
	"github.com/example/go-kokoro-g2p/internal/text"
)

// UnknownMarker is emitted for input that has no spellable letters at
// all. It is not in the model vocabulary, so it encodes to the
// reserved unknown token.
const UnknownMarker = "❓"

// Punctuation forwarded into the phoneme stream unchanged (after
// quote normalization). Everything else is dropped.
const passthroughPunct = ".!?,;:—…\"()“”"

// English resolves English text. Safe for concurrent use.
type English struct {
	lex     *lexicon.Lexicon
	british bool
	log     *slog.Logger
}

// NewEnglish returns a resolver for the requested dialect.
func NewEnglish(british bool, logger *slog.Logger) *English {
	if logger == nil {
		logger = slog.Default()
	}
	return &English{
		lex:     lexicon.New(british),
		british: british,
		log:     logger,
	}
}

// British reports whether this resolver uses the British tiers.
func (e *English) British() bool {
	return e.british
}

// Phonemize converts normalized text to a phoneme string.
func (e *English) Phonemize(input string) (string, error) {
	verbalized := text.Verbalize(input)
	tokens := text.Tokenize(verbalized)

	var b strings.Builder
	for _, tok := range tokens {
		if tok.Punct {
			r := []rune(tok.Text)[0]
			if strings.ContainsRune(passthroughPunct, r) {
				b.WriteRune(normalizeQuote(r))
			}
		} else {
			b.WriteString(e.WordToPhonemes(tok.Text, ""))
		}
		if tok.Whitespace {
			b.WriteByte(' ')
		}
	}

	return collapseSpaces(b.String()), nil
}

// WordToPhonemes resolves a single word, optionally biased by a POS
// tag for heteronyms.
func (e *English) WordToPhonemes(word, tag string) string {
	if word == "" {
		return ""
	}

	if ps, ok := e.contraction(word); ok {
		return ps
	}

	if ps, _, ok := e.lex.Get(word, tag); ok {
		return ps
	}

	if strings.ContainsRune(word, '-') || hasInternalCaps(word) {
		if ps, ok := e.compound(word, tag); ok {
			return ps
		}
	}

	// Short all-caps words read as initialisms.
	if len(word) <= 5 && isASCIIUpper(word) {
		return e.spellOut(word)
	}
	if len(word) <= 3 {
		return e.spellOut(word)
	}

	ps := e.letterToSound(word)
	if ps == "" {
		e.log.Warn("word has no spellable letters", "word", word)
		return UnknownMarker
	}
	e.log.Debug("letter-to-sound fallback", "word", word, "phonemes", ps)
	return ps
}

// compound splits hyphenated and camelCase words and resolves the
// parts independently. It reports failure when any part stays unknown.
func (e *English) compound(word, tag string) (string, bool) {
	var parts []string
	if strings.ContainsRune(word, '-') {
		parts = strings.Split(word, "-")
	} else {
		parts = splitCamelCase(word)
	}
	if len(parts) < 2 {
		return "", false
	}

	phonemes := make([]string, 0, len(parts))
	for _, p := range parts {
		ps := e.WordToPhonemes(p, tag)
		if ps == "" || strings.Contains(ps, UnknownMarker) {
			return "", false
		}
		phonemes = append(phonemes, ps)
	}
	return strings.Join(phonemes, " "), true
}

// contraction resolves fixed contractions and productive 's clitics.
func (e *English) contraction(word string) (string, bool) {
	lower := strings.ToLower(strings.ReplaceAll(word, "’", "'"))
	if ps, ok := contractions[lower]; ok {
		return ps, true
	}

	if base, found := strings.CutSuffix(lower, "'s"); found {
		if ps, _, ok := e.lex.Get(base, ""); ok {
			last := lastPhoneme(ps)
			switch {
			case strings.ContainsRune("szʃʒʧʤ", last):
				return ps + "ᵻz", true
			case strings.ContainsRune("ptkfθ", last):
				return ps + "s", true
			default:
				return ps + "z", true
			}
		}
	}

	return "", false
}

var contractions = map[string]string{
	"can't":     "kˈænt",
	"won't":     "wˈOnt",
	"don't":     "dˈOnt",
	"didn't":    "dˈɪdᵊnt",
	"doesn't":   "dˈʌzᵊnt",
	"couldn't":  "kˈʊdᵊnt",
	"wouldn't":  "wˈʊdᵊnt",
	"shouldn't": "ʃˈʊdᵊnt",
	"isn't":     "ˈɪzᵊnt",
	"aren't":    "ˈɑɹᵊnt",
	"wasn't":    "wˈɑzᵊnt",
	"weren't":   "wˈɜɹᵊnt",
	"haven't":   "hˈævᵊnt",
	"hasn't":    "hˈæzᵊnt",
	"hadn't":    "hˈædᵊnt",
	"i'm":       "ˌIm",
	"i've":      "ˌIv",
	"i'll":      "ˌIl",
	"i'd":       "ˌId",
	"you're":    "jˈʊɹ",
	"you've":    "jˈuv",
	"you'll":    "jˈul",
	"you'd":     "jˈud",
	"he's":      "hˈiz",
	"she's":     "ʃˈiz",
	"it's":      "ˈɪts",
	"we're":     "wˈɪɹ",
	"we've":     "wˈiv",
	"we'll":     "wˈil",
	"we'd":      "wˈid",
	"they're":   "ðˈɛɹ",
	"they've":   "ðˈAv",
	"they'll":   "ðˈAl",
	"they'd":    "ðˈAd",
	"that's":    "ðˈæts",
	"what's":    "wˈʌts",
	"there's":   "ðˈɛɹz",
	"here's":    "hˈɪɹz",
	"let's":     "lˈɛts",
}

// spellOut reads a word letter by letter, as initialisms are spoken.
func (e *English) spellOut(word string) string {
	var parts []string
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if ps, ok := letterNames[r]; ok {
			parts = append(parts, ps)
		}
	}
	if len(parts) == 0 {
		return UnknownMarker
	}
	return strings.Join(parts, " ")
}

var letterNames = map[rune]string{
	'A': "ˈA", 'B': "bˈi", 'C': "sˈi", 'D': "dˈi", 'E': "ˈi",
	'F': "ˈɛf", 'G': "ʤˈi", 'H': "ˈAʧ", 'I': "ˈI", 'J': "ʤˈA",
	'K': "kˈA", 'L': "ˈɛl", 'M': "ˈɛm", 'N': "ˈɛn", 'O': "ˈO",
	'P': "pˈi", 'Q': "kjˈu", 'R': "ˈɑɹ", 'S': "ˈɛs", 'T': "tˈi",
	'U': "jˈu", 'V': "vˈi", 'W': "dˈʌbᵊljˌu", 'X': "ˈɛks",
	'Y': "wˈI", 'Z': "zˈi",
}

func normalizeQuote(r rune) rune {
	switch r {
	case '"', '“', '”':
		return '"'
	}
	return r
}

func hasInternalCaps(word string) bool {
	runes := []rune(word)
	for i := 1; i < len(runes); i++ {
		if isUpper(runes[i]) && isLower(runes[i-1]) {
			return true
		}
	}
	return false
}

func splitCamelCase(word string) []string {
	var parts []string
	var current []rune
	for _, r := range word {
		if isUpper(r) && len(current) > 0 {
			parts = append(parts, string(current))
			current = current[:0]
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		parts = append(parts, string(current))
	}
	return parts
}

func isASCIIUpper(word string) bool {
	for _, r := range word {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return word != ""
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func lastPhoneme(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

func collapseSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}
