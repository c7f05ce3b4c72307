// Package pipeline routes text through the grapheme-to-phoneme
// resolver for a requested language and encodes the phoneme stream to
// Kokoro token IDs. Resolvers are built lazily on first use and cached
// for the process lifetime; the shared tables they consult are
// read-only, so a G2P value is safe for concurrent use.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/example/go-kokoro-g2p/internal/g2p"
	"github.com/example/go-kokoro-g2p/internal/rules"
	"github.com/example/go-kokoro-g2p/internal/text"
	"github.com/example/go-kokoro-g2p/internal/vocab"
	"github.com/example/go-kokoro-g2p/internal/zh"
)

// Canonical language codes. Aliases normalize to one of these.
const (
	LangEnglishUS = "en-us"
	LangEnglishGB = "en-gb"
	LangMandarin  = "zh"
	LangSpanish   = "es"
	LangGerman    = "de"
)

// ErrUnsupportedLanguage reports a language code with no resolver.
var ErrUnsupportedLanguage = errors.New("unsupported language")

var languageAliases = map[string]string{
	"en-us":    LangEnglishUS,
	"en":       LangEnglishUS,
	"english":  LangEnglishUS,
	"american": LangEnglishUS,
	"us":       LangEnglishUS,

	"en-gb":   LangEnglishGB,
	"gb":      LangEnglishGB,
	"uk":      LangEnglishGB,
	"british": LangEnglishGB,

	"zh":       LangMandarin,
	"zh-cn":    LangMandarin,
	"chinese":  LangMandarin,
	"mandarin": LangMandarin,
	"cmn":      LangMandarin,

	"es":      LangSpanish,
	"spanish": LangSpanish,

	"de":     LangGerman,
	"german": LangGerman,
}

// CanonicalLanguage resolves a language code or alias,
// case-insensitively, to its canonical form.
func CanonicalLanguage(code string) (string, error) {
	lang, ok := languageAliases[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	return lang, nil
}

// Languages returns the canonical codes with a resolver, sorted for
// stable display.
func Languages() []string {
	return []string{LangGerman, LangEnglishGB, LangEnglishUS, LangSpanish, LangMandarin}
}

// Resolver converts normalized text in one language to a stream of
// phoneme symbols.
type Resolver interface {
	Phonemize(text string) (string, error)
}

// Result is the output of one Process call.
type Result struct {
	Phonemes string  `json:"phonemes"`
	Tokens   []int64 `json:"tokens"`
}

// G2P dispatches texts to per-language resolvers.
type G2P struct {
	mu        sync.RWMutex
	resolvers map[string]Resolver
	log       *slog.Logger
}

// New returns an empty dispatcher. Resolvers are constructed on the
// first Process call for their language.
func New(logger *slog.Logger) *G2P {
	if logger == nil {
		logger = slog.Default()
	}
	return &G2P{
		resolvers: make(map[string]Resolver),
		log:       logger,
	}
}

// Register installs a resolver for a canonical language code,
// replacing any cached one. It lets callers supply a resolver with
// custom collaborators, such as a preloaded segmenter.
func (g *G2P) Register(lang string, r Resolver) {
	g.mu.Lock()
	g.resolvers[lang] = r
	g.mu.Unlock()
}

// Process converts text in the given language to phonemes and token
// IDs. Empty input is not an error: it yields only the boundary
// tokens. Malformed UTF-8 and unknown language codes are reported to
// the caller; everything else degrades locally (unknown words fall to
// letter rules, unknown symbols encode as the reserved token).
func (g *G2P) Process(input, language string) (Result, error) {
	lang, err := CanonicalLanguage(language)
	if err != nil {
		return Result{}, err
	}

	r, err := g.resolver(lang)
	if err != nil {
		return Result{}, err
	}

	normalized, err := text.Normalize(input)
	if errors.Is(err, text.ErrEmptyText) {
		return Result{Tokens: []int64{vocab.PadID, vocab.PadID}}, nil
	}
	if err != nil {
		return Result{}, err
	}

	phonemes, err := r.Phonemize(normalized)
	if err != nil {
		return Result{}, fmt.Errorf("phonemize %s: %w", lang, err)
	}

	tokens := vocab.Encode(phonemes)
	g.log.Debug("processed text",
		"language", lang,
		"chars", len(normalized),
		"tokens", len(tokens))

	return Result{Phonemes: phonemes, Tokens: tokens}, nil
}

// ProcessChunked splits long input at sentence boundaries so each
// chunk's token sequence stays within the model window, then processes
// every chunk independently. Short input yields a single Result,
// identical to Process. Chunk sizing is by character count, a close
// proxy for token count; oversized chunks still truncate at encode.
func (g *G2P) ProcessChunked(input, language string) ([]Result, error) {
	chunks := text.ChunkBySentence(input, vocab.MaxTokens)

	results := make([]Result, 0, len(chunks))
	for _, chunk := range chunks {
		res, err := g.Process(chunk, language)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// Phonemize converts text to phoneme symbols without tokenizing.
func (g *G2P) Phonemize(input, language string) (string, error) {
	res, err := g.Process(input, language)
	if err != nil {
		return "", err
	}
	return res.Phonemes, nil
}

// resolver returns the cached resolver for lang, building it on first
// use. Reads are lock-free once a resolver is cached.
func (g *G2P) resolver(lang string) (Resolver, error) {
	g.mu.RLock()
	r, ok := g.resolvers[lang]
	g.mu.RUnlock()
	if ok {
		return r, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if r, ok := g.resolvers[lang]; ok {
		return r, nil
	}

	r, err := g.build(lang)
	if err != nil {
		return nil, err
	}
	g.resolvers[lang] = r
	g.log.Info("resolver ready", "language", lang)
	return r, nil
}

func (g *G2P) build(lang string) (Resolver, error) {
	switch lang {
	case LangEnglishUS:
		return g2p.NewEnglish(false, g.log), nil
	case LangEnglishGB:
		return g2p.NewEnglish(true, g.log), nil
	case LangMandarin:
		return zh.NewMandarin(g.log)
	case LangSpanish:
		return rules.NewSpanish(g.log), nil
	case LangGerman:
		return rules.NewGerman(g.log), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
}
