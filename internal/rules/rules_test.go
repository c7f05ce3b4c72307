package rules

import (
	"testing"
)

func TestSpanishWords(t *testing.T) {
	s := NewSpanish(nil)

	tests := []struct {
		word string
		want string
	}{
		{"hola", "ˈola"},          // silent h, penultimate stress
		{"mucho", "mˈuʧo"},        // ch digraph
		{"llamar", "ʝamˈaɾ"},      // yeísmo, final-syllable stress
		{"niño", "nˈiɲo"},         // palatal nasal
		{"café", "kafˈe"},         // written accent decides
		{"perro", "pˈero"},        // rr trill
		{"pero", "pˈeɾo"},         // single r tap
		{"queso", "kesˈo"},        // qu before e; the u still counts a syllable
		{"guerra", "ɡerˈa"},       // gu before e
		{"guapo", "ɡwapˈo"},       // gu before a
		{"gente", "xˈente"},       // g before e
		{"cielo", "siˈelo"},       // c before front vowel, seseo
		{"casa", "kˈasa"},         // c before back vowel
		{"examen", "eksˈamen"},    // x cluster
	}
	for _, tt := range tests {
		got := s.t.Word(tt.word)
		if got != tt.want {
			t.Errorf("Word(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestSpanishStressRules(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"casa", 1},   // ends in vowel: penultimate of 2
		{"cantar", 2}, // ends in consonant: final of 2
		{"café", 2},   // accent on final syllable
		{"sol", 1},    // single syllable
	}
	for _, tt := range tests {
		runes := []rune(tt.word)
		total := 0
		for _, r := range runes {
			if spanishIsVowel(r) {
				total++
			}
		}
		if total == 0 {
			total = 1
		}
		if got := spanishStress(runes, total); got != tt.want {
			t.Errorf("spanishStress(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestSpanishPhonemize(t *testing.T) {
	s := NewSpanish(nil)

	// Attached punctuation is forwarded into the phoneme stream. It
	// also makes the word end in a non-vowel for stress purposes, so
	// "mundo." stresses the final syllable.
	tests := []struct {
		input string
		want  string
	}{
		{"hola mundo.", "ˈola mundˈo."},
		{"hola, mundo", "olˈa, mˈundo"},
		{"hola mundo .", "ˈola mˈundo ."},
	}
	for _, tt := range tests {
		got, err := s.Phonemize(tt.input)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Phonemize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGermanWords(t *testing.T) {
	g := NewGerman(nil)

	tests := []struct {
		word string
		want string
	}{
		{"ich", "ɪç"},           // ich-Laut, single syllable unstressed
		{"ach", "ax"},           // ach-Laut
		{"schule", "ʃˈʊlɛ"},     // sch trigraph
		{"mein", "mˈaɪn"},       // ei diphthong
		{"tag", "tak"},          // final devoicing
		{"haus", "hˈaʊs"},       // au diphthong
		{"heute", "hˈɔɪtɛ"},     // eu diphthong
		{"schön", "ʃøn"},        // umlaut ö
		{"für", "fyʁ"},          // umlaut ü
		{"stein", "ʃtˈaɪn"},     // initial st
		{"sprache", "ʃpʁˈaxɛ"},  // initial sp, ach-Laut
		{"katze", "kˈatsɛ"},     // tz affricate
		{"sehen", "zˈɛɛn"},      // voiced s, silent h after vowel
		{"quelle", "kvˈɛllɛ"},   // qu cluster
		{"deutsch", "dˈɔɪʧ"},    // tsch tetragraph
	}
	for _, tt := range tests {
		got := g.t.Word(tt.word)
		if got != tt.want {
			t.Errorf("Word(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestGermanPhonemize(t *testing.T) {
	g := NewGerman(nil)

	tests := []struct {
		input string
		want  string
	}{
		{"guten morgen!", "ɡˈʊtɛn mˈɔʁɡɛn!"},
		{"guten tag .", "ɡˈʊtɛn tak ."},
	}
	for _, tt := range tests {
		got, err := g.Phonemize(tt.input)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("Phonemize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransducerLongestMatchWins(t *testing.T) {
	rules := []Rule{
		{Pattern: "abc", Emit: "3"},
		{Pattern: "ab", Emit: "2"},
		{Pattern: "a", Emit: "1"},
		{Pattern: "b", Emit: "B"},
		{Pattern: "c", Emit: "C"},
	}
	tr := NewTransducer(rules, func(r rune) bool { return r == 'a' }, nil)

	if got := tr.Word("abc"); got != "3" {
		t.Errorf("Word(abc) = %q, want %q", got, "3")
	}
	if got := tr.Word("abx"); got != "2" {
		t.Errorf("Word(abx) = %q, want %q", got, "2")
	}
}

func TestTransducerPredicateOrder(t *testing.T) {
	rules := []Rule{
		{Pattern: "a", Emit: "first", When: func(w []rune, pos, n int) bool { return pos == 0 }},
		{Pattern: "a", Emit: "rest"},
	}
	tr := NewTransducer(rules, func(r rune) bool { return false }, nil)

	if got := tr.Word("aa"); got != "firstrest" {
		t.Errorf("Word(aa) = %q, want %q", got, "firstrest")
	}
}

func TestTransducerSkipsUnknownRunes(t *testing.T) {
	tr := NewTransducer([]Rule{{Pattern: "a", Emit: "a"}}, func(r rune) bool { return r == 'a' }, nil)
	if got := tr.Word("a#a"); got != "aa" {
		t.Errorf("Word(a#a) = %q, want %q", got, "aa")
	}
}

func TestTransducerForwardsAttachedPunctuation(t *testing.T) {
	tr := NewTransducer([]Rule{{Pattern: "a", Emit: "a"}}, func(r rune) bool { return r == 'a' }, nil)

	tests := []struct {
		word string
		want string
	}{
		{"a.", "a."},
		{"a,", "a,"},
		{"a!?", "a!?"},
		{"¡a!", "¡a!"},
		{"#a", "a"}, // no vocabulary entry, dropped
	}
	for _, tt := range tests {
		if got := tr.Word(tt.word); got != tt.want {
			t.Errorf("Word(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}
