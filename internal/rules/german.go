package rules

import (
	"log/slog"
	"strings"
	"sync"
)

// German is regular enough for rules once the ch allophony, initial
// sp/st, vowel length marking and final devoicing are handled.

const germanVowels = "aeiouäöüy"

func germanIsVowel(r rune) bool {
	return strings.ContainsRune(germanVowels, r)
}

func germanFinal(w []rune, pos, n int) bool {
	return pos+n == len(w)
}

// longVowel builds the doubled-vowel length rules (aa, ee, ...).
func longVowel(v, phoneme string) Rule {
	return Rule{Pattern: v, Emit: phoneme + "ː"}
}

var germanRules = []Rule{
	{Pattern: "tsch", Emit: "ʧ"},
	{Pattern: "sch", Emit: "ʃ"},

	// ch: ach-Laut after back vowels, ich-Laut elsewhere.
	{Pattern: "ch", Emit: "x", When: func(w []rune, pos, n int) bool {
		if pos == 0 {
			return false
		}
		switch w[pos-1] {
		case 'a', 'o', 'u':
			return true
		}
		return false
	}},
	{Pattern: "ch", Emit: "ç"},

	{Pattern: "ck", Emit: "k"},
	{Pattern: "ie", Emit: "iː"},
	{Pattern: "ei", Emit: "aɪ"},
	{Pattern: "eu", Emit: "ɔɪ"},
	{Pattern: "äu", Emit: "ɔɪ"},
	{Pattern: "au", Emit: "aʊ"},
	{Pattern: "ng", Emit: "ŋ"},
	{Pattern: "pf", Emit: "pf"},
	{Pattern: "qu", Emit: "kv"},
	{Pattern: "tz", Emit: "ts"},

	// Word-initial sp/st palatalize.
	{Pattern: "sp", Emit: "ʃp", When: func(w []rune, pos, n int) bool { return pos == 0 }},
	{Pattern: "st", Emit: "ʃt", When: func(w []rune, pos, n int) bool { return pos == 0 }},

	// Doubled vowels mark length.
	longVowel("aa", "a"), longVowel("ee", "e"), longVowel("ii", "i"),
	longVowel("oo", "o"), longVowel("uu", "u"), longVowel("ää", "ɛ"),
	longVowel("öö", "ø"), longVowel("üü", "y"), longVowel("yy", "y"),

	{Pattern: "a", Emit: "a"},
	{Pattern: "e", Emit: "ɛ"},
	{Pattern: "i", Emit: "ɪ"},
	{Pattern: "o", Emit: "ɔ"},
	{Pattern: "u", Emit: "ʊ"},
	{Pattern: "ä", Emit: "ɛ"},
	{Pattern: "ö", Emit: "ø"},
	{Pattern: "ü", Emit: "y"},
	{Pattern: "y", Emit: "y"},

	// Final devoicing of b, d, g.
	{Pattern: "b", Emit: "p", When: germanFinal},
	{Pattern: "b", Emit: "b"},
	{Pattern: "d", Emit: "t", When: germanFinal},
	{Pattern: "d", Emit: "d"},
	{Pattern: "g", Emit: "k", When: germanFinal},
	{Pattern: "g", Emit: "ɡ"},

	{Pattern: "c", Emit: "k"},
	{Pattern: "f", Emit: "f"},
	// h is silent after a vowel, where it marks length.
	{Pattern: "h", Emit: "", When: func(w []rune, pos, n int) bool {
		return pos > 0 && germanIsVowel(w[pos-1])
	}},
	{Pattern: "h", Emit: "h"},
	{Pattern: "j", Emit: "j"},
	{Pattern: "k", Emit: "k"},
	{Pattern: "l", Emit: "l"},
	{Pattern: "m", Emit: "m"},
	{Pattern: "n", Emit: "n"},
	{Pattern: "p", Emit: "p"},
	{Pattern: "r", Emit: "ʁ"},
	// s voices before a vowel at the word start or between vowels.
	{Pattern: "s", Emit: "z", When: func(w []rune, pos, n int) bool {
		next := pos + n
		if next >= len(w) || !germanIsVowel(w[next]) {
			return false
		}
		return pos == 0 || germanIsVowel(w[pos-1])
	}},
	{Pattern: "s", Emit: "s"},
	{Pattern: "ß", Emit: "s"},
	{Pattern: "t", Emit: "t"},
	{Pattern: "v", Emit: "f"},
	{Pattern: "w", Emit: "v"},
	{Pattern: "x", Emit: "ks"},
	{Pattern: "z", Emit: "ts"},
}

// germanStress puts primary stress on the first syllable.
func germanStress(word []rune, total int) int {
	return 1
}

// German resolves German text by rule. Safe for concurrent use.
type German struct {
	t   *Transducer
	log *slog.Logger
}

var (
	germanOnce sync.Once
	germanT    *Transducer
)

// NewGerman returns a German resolver.
func NewGerman(logger *slog.Logger) *German {
	if logger == nil {
		logger = slog.Default()
	}
	germanOnce.Do(func() {
		germanT = NewTransducer(germanRules, germanIsVowel, germanStress)
	})
	return &German{t: germanT, log: logger}
}

// Phonemize converts normalized German text to phonemes.
func (g *German) Phonemize(input string) (string, error) {
	return phonemizeWords(g.t, input, g.log), nil
}
