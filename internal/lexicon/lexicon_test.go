package lexicon

import "testing"

func TestLookupTierPrecedence(t *testing.T) {
	lex := New(false)

	// "tomato" exists in both tiers with different readings.
	ps, rating, ok := lex.Lookup("tomato", "")
	if !ok {
		t.Fatal("Lookup(tomato) failed")
	}
	if rating != RatingGold {
		t.Errorf("rating = %d, want %d", rating, RatingGold)
	}
	if ps != "təmˈAɾO" {
		t.Errorf("phonemes = %q, want gold reading %q", ps, "təmˈAɾO")
	}
}

func TestLookupSilverFallback(t *testing.T) {
	lex := New(false)

	ps, rating, ok := lex.Lookup("zephyr", "")
	if !ok {
		t.Fatal("Lookup(zephyr) failed")
	}
	if rating != RatingSilver {
		t.Errorf("rating = %d, want %d", rating, RatingSilver)
	}
	if ps != "zˈɛfɚ" {
		t.Errorf("phonemes = %q, want %q", ps, "zˈɛfɚ")
	}
}

func TestLookupTaggedEntries(t *testing.T) {
	lex := New(false)

	tests := []struct {
		word string
		tag  string
		want string
	}{
		{"read", "VBD", "ɹˈɛd"},
		{"read", "VB", "ɹˈid"},
		{"read", "", "ɹˈid"},
		{"record", "NN", "ɹˈɛkɚd"},
		{"record", "VB", "ɹɪkˈɔɹd"},
		{"use", "VBZ", "jˈuz"},
		{"use", "NNS", "jˈus"},
	}

	for _, tt := range tests {
		t.Run(tt.word+"/"+tt.tag, func(t *testing.T) {
			ps, _, ok := lex.Lookup(tt.word, tt.tag)
			if !ok {
				t.Fatalf("Lookup(%q, %q) failed", tt.word, tt.tag)
			}
			if ps != tt.want {
				t.Errorf("Lookup(%q, %q) = %q, want %q", tt.word, tt.tag, ps, tt.want)
			}
		})
	}
}

func TestGetCaseInsensitivity(t *testing.T) {
	lex := New(false)

	for _, word := range []string{"hello", "Hello", "HELLO"} {
		ps, _, ok := lex.Get(word, "")
		if !ok {
			t.Fatalf("Get(%q) failed", word)
		}
		if ps != "həlˈO" {
			t.Errorf("Get(%q) = %q, want %q", word, ps, "həlˈO")
		}
	}
}

func TestStemming(t *testing.T) {
	lex := New(false)

	tests := []struct {
		name string
		word string
		want string
	}{
		{"plural voiced", "dogs", "dˈɔɡz"},
		{"plural voiceless", "walks", "wˈɔks"},
		{"plural sibilant", "houses", "hˈWsᵻz"},
		{"possessive", "dog's", "dˈɔɡz"},
		{"past voiceless", "walked", "wˈɔkt"},
		{"past voiced", "loved", "lˈʌvd"},
		{"past flapped t", "righted", "ɹˈIɾᵻd"},
		{"gerund plain", "walking", "wˈɔkɪŋ"},
		{"gerund e-drop", "making", "mˈAkɪŋ"},
		{"gerund doubled consonant", "running", "ɹˈʌnɪŋ"},
		{"gerund flapped t", "righting", "ɹˈIɾɪŋ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, _, ok := lex.Get(tt.word, "")
			if !ok {
				t.Fatalf("Get(%q) failed", tt.word)
			}
			if ps != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.word, ps, tt.want)
			}
		})
	}
}

func TestStemmingDoesNotRecurse(t *testing.T) {
	lex := New(false)

	// "walkings" would need two strips; a single suffix is the limit.
	if _, _, ok := lex.Get("walkings", ""); ok {
		t.Error("Get(walkings) succeeded, want failure")
	}
}

func TestBritishSuffixes(t *testing.T) {
	lex := New(true)

	ps, _, ok := lex.Get("walking", "")
	if !ok {
		t.Fatal("Get(walking) failed")
	}
	if ps != "wˈɔːkɪŋ" {
		t.Errorf("Get(walking) = %q, want %q", ps, "wˈɔːkɪŋ")
	}

	// Stems ending in ə need a linking r; the suffix rule refuses them.
	if _, _, ok := lex.Get("watering", ""); ok {
		t.Error("Get(watering) succeeded, want failure")
	}

	ps, _, ok = lex.Get("houses", "")
	if !ok {
		t.Fatal("Get(houses) failed")
	}
	if ps != "hˈWsɪz" {
		t.Errorf("Get(houses) = %q, want %q", ps, "hˈWsɪz")
	}
}

func TestGetMissReportsFailure(t *testing.T) {
	lex := New(false)

	if _, _, ok := lex.Get("qzxqzx", ""); ok {
		t.Error("Get on an unknown word succeeded, want failure")
	}
}

func TestApplyStress(t *testing.T) {
	tests := []struct {
		name  string
		ps    string
		level int
		want  string
	}{
		{"strip", "həlˈO", -2, "həlO"},
		{"demote primary", "həlˈO", -1, "həlˌO"},
		{"zero demotes existing primary", "həlˈO", 0, "həlˌO"},
		{"zero adds secondary when unstressed", "ðə", 0, "ˌðə"},
		{"one promotes secondary", "həlˌO", 1, "həlˈO"},
		{"two adds primary when unstressed", "ðə", 2, "ˈðə"},
		{"no stressable vowel", "st", 2, "st"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyStress(tt.ps, tt.level); got != tt.want {
				t.Errorf("ApplyStress(%q, %d) = %q, want %q", tt.ps, tt.level, got, tt.want)
			}
		})
	}
}
