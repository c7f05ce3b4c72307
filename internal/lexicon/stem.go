package lexicon

import "strings"

// Phoneme classes used when reattaching suffixes.
const (
	voicelessEndings = "ptkfθʃsʧ"
	sibilantEndings  = "szʃʒʧʤ"
	flapContexts     = "AIOWYiuæɑəɛɪɹʊʌ"
)

// stem tries each known inflectional suffix in turn. The strip depth
// is one suffix: a stem is looked up directly, never re-stemmed, which
// bounds the recursion by construction.
func (l *Lexicon) stem(word, tag string) (string, int, bool) {
	if ps, rating, ok := l.stemS(word, tag); ok {
		return ps, rating, true
	}
	if ps, rating, ok := l.stemEd(word, tag); ok {
		return ps, rating, true
	}
	return l.stemIng(word, tag)
}

// stemS handles plural and third-person -s, possessive 's, -es, -ies.
func (l *Lexicon) stemS(word, tag string) (string, int, bool) {
	if len(word) < 3 || !strings.HasSuffix(word, "s") {
		return "", 0, false
	}

	var stem string
	switch {
	case !strings.HasSuffix(word, "ss") && l.Contains(word[:len(word)-1]):
		stem = word[:len(word)-1]
	case (strings.HasSuffix(word, "'s") ||
		(len(word) > 4 && strings.HasSuffix(word, "es") && !strings.HasSuffix(word, "ies"))) &&
		l.Contains(word[:len(word)-2]):
		stem = word[:len(word)-2]
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		base := word[:len(word)-3] + "y"
		if !l.Contains(base) {
			return "", 0, false
		}
		stem = base
	default:
		return "", 0, false
	}

	ps, rating, ok := l.Lookup(stem, tag)
	if !ok {
		return "", 0, false
	}
	return l.applyS(ps), rating, true
}

// applyS picks /s/, /z/ or the epenthetic vowel + /z/ from the stem's
// final phoneme.
func (l *Lexicon) applyS(stem string) string {
	if stem == "" {
		return ""
	}
	last := lastRune(stem)
	switch {
	case strings.ContainsRune(sibilantEndings, last):
		return stem + l.reducedVowel() + "z"
	case strings.ContainsRune(voicelessEndings, last):
		return stem + "s"
	default:
		return stem + "z"
	}
}

// stemEd handles past-tense -ed and bare -d.
func (l *Lexicon) stemEd(word, tag string) (string, int, bool) {
	if len(word) < 4 || !strings.HasSuffix(word, "d") {
		return "", 0, false
	}

	var stem string
	switch {
	case !strings.HasSuffix(word, "dd") && l.Contains(word[:len(word)-1]):
		stem = word[:len(word)-1]
	case len(word) > 4 && strings.HasSuffix(word, "ed") && !strings.HasSuffix(word, "eed") &&
		l.Contains(word[:len(word)-2]):
		stem = word[:len(word)-2]
	default:
		return "", 0, false
	}

	ps, rating, ok := l.Lookup(stem, tag)
	if !ok {
		return "", 0, false
	}
	return l.applyEd(ps), rating, true
}

func (l *Lexicon) applyEd(stem string) string {
	if stem == "" {
		return ""
	}
	runes := []rune(stem)
	last := runes[len(runes)-1]
	switch {
	case strings.ContainsRune("pkfθʃsʧ", last):
		return stem + "t"
	case last == 'd':
		return stem + l.reducedVowel() + "d"
	case last != 't':
		return stem + "d"
	case l.british || len(runes) < 2:
		return stem + "ɪd"
	default:
		// American flap: write+ed ends in a tapped t.
		if strings.ContainsRune(flapContexts, runes[len(runes)-2]) {
			return string(runes[:len(runes)-1]) + "ɾᵻd"
		}
		return stem + "ᵻd"
	}
}

// stemIng handles -ing, including e-drop (make -> making) and doubled
// consonants (run -> running).
func (l *Lexicon) stemIng(word, tag string) (string, int, bool) {
	if len(word) < 5 || !strings.HasSuffix(word, "ing") {
		return "", 0, false
	}

	base := word[:len(word)-3]
	var stem string
	switch {
	case len(word) > 5 && l.Contains(base):
		stem = base
	case l.Contains(base + "e"):
		stem = base + "e"
	case len(word) > 5 && hasDoubledConsonant(word) && l.Contains(word[:len(word)-4]):
		stem = word[:len(word)-4]
	default:
		return "", 0, false
	}

	ps, rating, ok := l.Lookup(stem, tag)
	if !ok {
		return "", 0, false
	}
	suffixed := l.applyIng(ps)
	if suffixed == "" {
		return "", 0, false
	}
	return suffixed, rating, true
}

func (l *Lexicon) applyIng(stem string) string {
	if stem == "" {
		return ""
	}
	runes := []rune(stem)
	if l.british {
		if strings.ContainsRune("əː", runes[len(runes)-1]) {
			return "" // needs a linking r, not derivable from the stem
		}
	} else if len(runes) > 1 {
		last := runes[len(runes)-1]
		if last == 't' && strings.ContainsRune(flapContexts, runes[len(runes)-2]) {
			return string(runes[:len(runes)-1]) + "ɾɪŋ"
		}
	}
	return stem + "ɪŋ"
}

// reducedVowel is the epenthetic vowel between sibilants and the
// suffix consonant: ɪ in the British tables, ᵻ in the American ones.
func (l *Lexicon) reducedVowel() string {
	if l.british {
		return "ɪ"
	}
	return "ᵻ"
}

func hasDoubledConsonant(word string) bool {
	if strings.HasSuffix(word, "cking") {
		return true
	}
	if !strings.HasSuffix(word, "ing") || len(word) < 5 {
		return false
	}
	c1 := word[len(word)-5]
	c2 := word[len(word)-4]
	return c1 == c2 && strings.IndexByte("bcdgklmnprstvxz", c1) >= 0
}

func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}
