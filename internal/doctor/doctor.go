// Package doctor provides data preflight checks for kokorog2p.
package doctor

import (
	"fmt"
	"io"
	"sort"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// CheckFunc runs one check and returns a human-readable detail string,
// such as an entry count, or an error if the component is unusable.
type CheckFunc func() (string, error)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// Vocabulary verifies the phoneme token table.
	Vocabulary CheckFunc
	// Lexicons verifies each dictionary tier set, keyed by dialect.
	Lexicons map[string]CheckFunc
	// Resolvers smoke-tests each language resolver, keyed by language
	// code. Building a resolver here surfaces missing or corrupt
	// segmentation dictionaries before a server takes traffic.
	Resolvers map[string]CheckFunc
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

// AddFailure appends an external failure message to the result.
func (r *Result) AddFailure(msg string) { r.failures = append(r.failures, msg) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	// ---- vocabulary ---------------------------------------------------------
	if cfg.Vocabulary != nil {
		detail, err := cfg.Vocabulary()
		if err != nil {
			res.fail(fmt.Sprintf("vocabulary: %v", err))
			fmt.Fprintf(w, "%s vocabulary: %v\n", FailMark, err)
		} else {
			fmt.Fprintf(w, "%s vocabulary: %s\n", PassMark, detail)
		}
	}

	// ---- lexicons -----------------------------------------------------------
	for _, dialect := range sortedKeys(cfg.Lexicons) {
		detail, err := cfg.Lexicons[dialect]()
		if err != nil {
			res.fail(fmt.Sprintf("lexicon %s: %v", dialect, err))
			fmt.Fprintf(w, "%s lexicon %s: %v\n", FailMark, dialect, err)
		} else {
			fmt.Fprintf(w, "%s lexicon %s: %s\n", PassMark, dialect, detail)
		}
	}

	// ---- resolvers ----------------------------------------------------------
	for _, lang := range sortedKeys(cfg.Resolvers) {
		detail, err := cfg.Resolvers[lang]()
		if err != nil {
			res.fail(fmt.Sprintf("resolver %s: %v", lang, err))
			fmt.Fprintf(w, "%s resolver %s: %v\n", FailMark, lang, err)
		} else {
			fmt.Fprintf(w, "%s resolver %s: %s\n", PassMark, lang, detail)
		}
	}

	return res
}

func sortedKeys(m map[string]CheckFunc) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
