// Package lexicon implements the tiered pronunciation dictionary used
// by the English resolver. Two tiers are consulted in fixed order:
// gold (highest confidence) then silver. On a miss in both tiers the
// lookup falls back to suffix stemming (-s, -ed, -ing) with phonemic
// reattachment. All tiers are immutable after load, so concurrent
// reads need no locking.
package lexicon

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"unicode"
)

//go:embed data/*.json
var dictFS embed.FS

// Tier confidence ratings reported by Lookup.
const (
	RatingGold   = 4
	RatingSilver = 3
)

// Entry is one dictionary value: either a plain phoneme string or a
// map from POS tag to phoneme string with a DEFAULT key.
type Entry struct {
	simple string
	tagged map[string]*string
}

// UnmarshalJSON accepts either a JSON string or an object of
// tag -> phonemes (values may be null for tags with no reading).
func (e *Entry) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &e.simple)
	}
	return json.Unmarshal(data, &e.tagged)
}

// Get returns the phoneme string for the given POS tag. Tagged entries
// try the exact tag, then its parent category, then DEFAULT.
func (e *Entry) Get(tag string) (string, bool) {
	if e.tagged == nil {
		return e.simple, e.simple != ""
	}
	if tag != "" {
		if v, ok := e.tagged[tag]; ok && v != nil {
			return *v, true
		}
		if parent := parentTag(tag); parent != tag {
			if v, ok := e.tagged[parent]; ok && v != nil {
				return *v, true
			}
		}
	}
	if v, ok := e.tagged["DEFAULT"]; ok && v != nil {
		return *v, true
	}
	return "", false
}

// parentTag collapses Penn-style POS tags into coarse categories.
func parentTag(tag string) string {
	switch {
	case strings.HasPrefix(tag, "VB"):
		return "VERB"
	case strings.HasPrefix(tag, "NN"):
		return "NOUN"
	case strings.HasPrefix(tag, "ADV"), strings.HasPrefix(tag, "RB"):
		return "ADV"
	case strings.HasPrefix(tag, "ADJ"), strings.HasPrefix(tag, "JJ"):
		return "ADJ"
	}
	return tag
}

type dictionary map[string]Entry

// Lexicon is a read-only view over the gold and silver tiers of one
// dialect. Construct via New; instances are shared and safe for
// concurrent use.
type Lexicon struct {
	british bool
	gold    dictionary
	silver  dictionary
}

var (
	usOnce sync.Once
	gbOnce sync.Once
	usLex  *Lexicon
	gbLex  *Lexicon
)

// New returns the shared lexicon for the requested dialect, loading
// the embedded dictionaries on first use.
func New(british bool) *Lexicon {
	if british {
		gbOnce.Do(func() {
			gbLex = &Lexicon{
				british: true,
				gold:    mustLoad("data/gb_gold.json"),
				silver:  mustLoad("data/gb_silver.json"),
			}
		})
		return gbLex
	}
	usOnce.Do(func() {
		usLex = &Lexicon{
			british: false,
			gold:    mustLoad("data/us_gold.json"),
			silver:  mustLoad("data/us_silver.json"),
		}
	})
	return usLex
}

func mustLoad(name string) dictionary {
	raw, err := dictFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("lexicon: missing embedded dictionary %s: %v", name, err))
	}
	var d dictionary
	if err := json.Unmarshal(raw, &d); err != nil {
		panic(fmt.Sprintf("lexicon: parse %s: %v", name, err))
	}
	growCaseVariants(d)
	return d
}

// growCaseVariants adds Capitalized forms for lowercase keys and vice
// versa, so sentence-initial words resolve without a second lookup.
func growCaseVariants(d dictionary) {
	additions := make(dictionary)
	for k, v := range d {
		if len(k) < 2 {
			continue
		}
		lower := strings.ToLower(k)
		cap := capitalize(k)
		switch k {
		case lower:
			if _, exists := d[cap]; cap != k && !exists {
				additions[cap] = v
			}
		case cap:
			if _, exists := d[lower]; lower != k && !exists {
				additions[lower] = v
			}
		}
	}
	for k, v := range additions {
		d[k] = v
	}
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// British reports whether this lexicon carries the British tiers.
func (l *Lexicon) British() bool {
	return l.british
}

// Contains reports whether word exists in either tier.
func (l *Lexicon) Contains(word string) bool {
	if _, ok := l.gold[word]; ok {
		return true
	}
	_, ok := l.silver[word]
	return ok
}

// Lookup consults the tiers in priority order: gold first, silver on a
// miss. It does not stem. The returned rating identifies the tier.
func (l *Lexicon) Lookup(word, tag string) (string, int, bool) {
	if entry, ok := l.gold[word]; ok {
		if ps, ok := entry.Get(tag); ok {
			return ps, RatingGold, true
		}
	}
	if entry, ok := l.silver[word]; ok {
		if ps, ok := entry.Get(tag); ok {
			return ps, RatingSilver, true
		}
	}
	return "", 0, false
}

// Get resolves a word to phonemes: direct lookup, then a lowercase
// retry, then suffix stemming. It reports failure rather than
// guessing, leaving the fallback decision to the caller.
func (l *Lexicon) Get(word, tag string) (string, int, bool) {
	if ps, rating, ok := l.Lookup(word, tag); ok {
		return ps, rating, true
	}

	lower := strings.ToLower(word)
	if lower != word {
		if ps, rating, ok := l.Lookup(lower, tag); ok {
			return ps, rating, true
		}
	}

	return l.stem(word, tag)
}
