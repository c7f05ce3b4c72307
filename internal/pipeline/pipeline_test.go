package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/example/go-kokoro-g2p/internal/vocab"
)

// stubResolver returns a fixed phoneme string for any input.
type stubResolver struct {
	out   string
	calls int
}

func (s *stubResolver) Phonemize(string) (string, error) {
	s.calls++
	return s.out, nil
}

func TestCanonicalLanguage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", LangEnglishUS},
		{"EN-US", LangEnglishUS},
		{"English", LangEnglishUS},
		{"en-gb", LangEnglishGB},
		{"British", LangEnglishGB},
		{"zh", LangMandarin},
		{"Mandarin", LangMandarin},
		{"cmn", LangMandarin},
		{"ES", LangSpanish},
		{"german", LangGerman},
		{" de ", LangGerman},
	}
	for _, tt := range tests {
		got, err := CanonicalLanguage(tt.code)
		if err != nil {
			t.Errorf("CanonicalLanguage(%q) error: %v", tt.code, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CanonicalLanguage(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}

	if _, err := CanonicalLanguage("klingon"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("CanonicalLanguage(klingon) error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestProcessEnglish(t *testing.T) {
	g := New(nil)

	res, err := g.Process("hello world", "en-us")
	if err != nil {
		t.Fatal(err)
	}
	if res.Phonemes != "həlˈO wˈɜɹld" {
		t.Errorf("Phonemes = %q", res.Phonemes)
	}
	if len(res.Tokens) < 3 {
		t.Fatalf("Tokens = %v", res.Tokens)
	}
	if res.Tokens[0] != vocab.PadID || res.Tokens[len(res.Tokens)-1] != vocab.PadID {
		t.Errorf("Tokens not bracketed by pad: %v", res.Tokens)
	}
	for i, tok := range res.Tokens[1 : len(res.Tokens)-1] {
		if tok == vocab.UnknownID {
			t.Errorf("token %d is the unknown ID; every emitted symbol should be in vocabulary", i+1)
		}
	}
}

func TestProcessEmptyInput(t *testing.T) {
	g := New(nil)

	for _, input := range []string{"", "   ", "\n\t"} {
		res, err := g.Process(input, "en-us")
		if err != nil {
			t.Errorf("Process(%q) error: %v", input, err)
			continue
		}
		if res.Phonemes != "" {
			t.Errorf("Process(%q) phonemes = %q, want empty", input, res.Phonemes)
		}
		want := []int64{vocab.PadID, vocab.PadID}
		if len(res.Tokens) != 2 || res.Tokens[0] != want[0] || res.Tokens[1] != want[1] {
			t.Errorf("Process(%q) tokens = %v, want %v", input, res.Tokens, want)
		}
	}
}

func TestProcessInvalidUTF8(t *testing.T) {
	g := New(nil)

	if _, err := g.Process("abc\xff", "en"); err == nil {
		t.Error("Process accepted malformed UTF-8")
	}
}

func TestProcessUnsupportedLanguage(t *testing.T) {
	g := New(nil)

	if _, err := g.Process("hello", "xx"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestUnsupportedLanguageLeavesCache(t *testing.T) {
	g := New(nil)
	stub := &stubResolver{out: "ㄋㄧ↗ ㄏㄠ↓"}
	g.Register(LangMandarin, stub)

	if _, err := g.Process("hello", "xx"); err == nil {
		t.Fatal("expected error for unknown language")
	}

	res, err := g.Process("你好", "zh")
	if err != nil {
		t.Fatal(err)
	}
	if res.Phonemes != "ㄋㄧ↗ ㄏㄠ↓" {
		t.Errorf("cached resolver was not used: %q", res.Phonemes)
	}
	if stub.calls != 1 {
		t.Errorf("stub calls = %d, want 1", stub.calls)
	}
}

func TestRegisterOverridesLazyConstruction(t *testing.T) {
	g := New(nil)
	stub := &stubResolver{out: "a"}
	g.Register(LangSpanish, stub)

	res, err := g.Process("hola", "es")
	if err != nil {
		t.Fatal(err)
	}
	if res.Phonemes != "a" || stub.calls != 1 {
		t.Errorf("registered resolver not dispatched: %q, calls %d", res.Phonemes, stub.calls)
	}
}

func TestProcessAliasesShareResolver(t *testing.T) {
	g := New(nil)

	first, err := g.Process("water", "en-gb")
	if err != nil {
		t.Fatal(err)
	}
	second, err := g.Process("water", "british")
	if err != nil {
		t.Fatal(err)
	}
	if first.Phonemes != second.Phonemes {
		t.Errorf("aliases diverge: %q vs %q", first.Phonemes, second.Phonemes)
	}
	if first.Phonemes != "wˈɔːtə" {
		t.Errorf("en-gb water = %q", first.Phonemes)
	}
}

func TestProcessDeterministic(t *testing.T) {
	g := New(nil)

	a, err := g.Process("The wind is cold.", "en")
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.Process("The wind is cold.", "en")
	if err != nil {
		t.Fatal(err)
	}
	if a.Phonemes != b.Phonemes {
		t.Errorf("phonemes differ: %q vs %q", a.Phonemes, b.Phonemes)
	}
	if len(a.Tokens) != len(b.Tokens) {
		t.Fatalf("token lengths differ: %d vs %d", len(a.Tokens), len(b.Tokens))
	}
	for i := range a.Tokens {
		if a.Tokens[i] != b.Tokens[i] {
			t.Fatalf("token %d differs: %d vs %d", i, a.Tokens[i], b.Tokens[i])
		}
	}
}

func TestProcessChunkedShortInput(t *testing.T) {
	g := New(nil)
	stub := &stubResolver{out: "ˈola"}
	g.Register(LangSpanish, stub)

	results, err := g.ProcessChunked("hola.", "es")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d chunks, want 1", len(results))
	}
	if results[0].Phonemes != "ˈola" {
		t.Errorf("Phonemes = %q", results[0].Phonemes)
	}
}

func TestProcessChunkedSplitsLongInput(t *testing.T) {
	g := New(nil)
	stub := &stubResolver{out: "a"}
	g.Register(LangSpanish, stub)

	// Each sentence is ~200 chars; four of them exceed the window, so
	// the input must split into more than one chunk.
	sentence := strings.Repeat("palabra ", 25) + "fin."
	input := strings.TrimSpace(strings.Repeat(sentence+" ", 4))

	results, err := g.ProcessChunked(input, "es")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) < 2 {
		t.Fatalf("got %d chunks, want at least 2", len(results))
	}
	if stub.calls != len(results) {
		t.Errorf("resolver calls = %d, want %d", stub.calls, len(results))
	}
	for i, res := range results {
		if res.Tokens[0] != vocab.PadID || res.Tokens[len(res.Tokens)-1] != vocab.PadID {
			t.Errorf("chunk %d tokens not pad-bracketed: %v", i, res.Tokens)
		}
	}
}

func TestProcessChunkedUnsupportedLanguage(t *testing.T) {
	g := New(nil)

	if _, err := g.ProcessChunked("hello.", "xx"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Errorf("error = %v, want ErrUnsupportedLanguage", err)
	}
}

func TestLanguagesAllCanonical(t *testing.T) {
	for _, lang := range Languages() {
		got, err := CanonicalLanguage(lang)
		if err != nil {
			t.Errorf("Languages() entry %q is not resolvable: %v", lang, err)
			continue
		}
		if got != lang {
			t.Errorf("Languages() entry %q canonicalizes to %q", lang, got)
		}
	}
}
