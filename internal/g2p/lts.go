package g2p

import "strings"

// Letter-to-sound rules for words outside the dictionary. Matching is
// greedy longest-first at each position, trying lengths 4 down to 1.
// Emitted symbols all exist in the model vocabulary.
var ltsRules = map[string]string{
	// length 4
	"tion": "ʃən",
	"sion": "ʒən",
	"ight": "It",
	"ough": "O",
	"augh": "ɔ",
	"eigh": "A",

	// length 3
	"igh": "I",
	"tch": "ʧ",
	"dge": "ʤ",
	"ing": "ɪŋ",
	"ear": "ɪɹ",
	"air": "ɛɹ",
	"oor": "ɔɹ",
	"sch": "sk",

	// length 2
	"ch": "ʧ", "sh": "ʃ", "th": "θ", "ph": "f", "wh": "w",
	"ck": "k", "ng": "ŋ", "qu": "kw", "kn": "n", "wr": "ɹ",
	"ee": "i", "ea": "i", "oo": "u", "ou": "W", "ow": "W",
	"ay": "A", "ai": "A", "ey": "A", "oa": "O", "oy": "Y",
	"oi": "Y", "au": "ɔ", "aw": "ɔ", "ew": "u", "ie": "i",
	"er": "ɚ", "ar": "ɑɹ", "or": "ɔɹ", "ir": "ɜɹ", "ur": "ɜɹ",

	// length 1
	"a": "æ", "b": "b", "c": "k", "d": "d", "e": "ɛ",
	"f": "f", "g": "ɡ", "h": "h", "i": "ɪ", "j": "ʤ",
	"k": "k", "l": "l", "m": "m", "n": "n", "o": "ɑ",
	"p": "p", "q": "k", "r": "ɹ", "s": "s", "t": "t",
	"u": "ʌ", "v": "v", "w": "w", "x": "ks", "y": "j",
	"z": "z",
}

// Non-rhotic variants applied on top of ltsRules for British output.
var ltsBritish = map[string]string{
	"er": "ə", "ar": "ɑː", "or": "ɔː", "ir": "ɜː", "ur": "ɜː",
	"ear": "ɪə", "air": "ɛː", "oor": "ɔː",
}

const ltsVowels = "AIOWYaiuæɑɔəɛɜɪʊʌɚ"

// letterToSound derives phonemes for an out-of-dictionary word by
// greedy rule matching, placing primary stress before the first vowel.
// Returns "" when the word has no letters the rules can read.
func (e *English) letterToSound(word string) string {
	lower := strings.ToLower(word)

	var b strings.Builder
	for i := 0; i < len(lower); {
		matched := false
		for n := 4; n >= 1; n-- {
			if i+n > len(lower) {
				continue
			}
			chunk := lower[i : i+n]
			ps, ok := e.ltsLookup(chunk)
			if !ok {
				continue
			}
			b.WriteString(ps)
			i += n
			matched = true
			break
		}
		if !matched {
			i++
		}
	}

	return stressFirstVowel(b.String())
}

func (e *English) ltsLookup(chunk string) (string, bool) {
	if e.british {
		if ps, ok := ltsBritish[chunk]; ok {
			return ps, true
		}
	}
	ps, ok := ltsRules[chunk]
	return ps, ok
}

// stressFirstVowel inserts the primary stress mark before the first
// vowel symbol of an unstressed phoneme string.
func stressFirstVowel(ps string) string {
	if ps == "" || strings.ContainsRune(ps, 'ˈ') {
		return ps
	}
	for i, r := range ps {
		if strings.ContainsRune(ltsVowels, r) {
			return ps[:i] + "ˈ" + ps[i:]
		}
	}
	return ps
}
