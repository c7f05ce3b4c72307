// Package zh converts Mandarin text into zhuyin-based phoneme strings.
// The pipeline is: normalize numerals, segment into words with POS
// tags, resolve each word to pinyin (phrase > POS > default reading),
// apply tone sandhi, then map pinyin to zhuyin with tone markers.
package zh

import (
	"sync"

	"github.com/go-ego/gse"
	"github.com/go-ego/gse/hmm/pos"
)

// Segment is one segmented word with its part-of-speech tag.
type Segment struct {
	Text string
	POS  string
}

// Segmenter produces a POS-tagged word segmentation. The production
// implementation wraps gse; tests inject fixed segmentations.
type Segmenter interface {
	Segment(text string) []Segment
}

// GseSegmenter segments with the gse dictionary and HMM POS tagger.
type GseSegmenter struct {
	tagger pos.Segmenter
}

var (
	gseOnce sync.Once
	gseSeg  *GseSegmenter
	gseErr  error
)

// NewSegmenter returns the shared gse-backed segmenter, loading the
// embedded dictionary on first use.
func NewSegmenter() (*GseSegmenter, error) {
	gseOnce.Do(func() {
		var seg gse.Segmenter
		if err := seg.LoadDict(); err != nil {
			gseErr = err
			return
		}
		var tagger pos.Segmenter
		tagger.WithGse(seg)
		gseSeg = &GseSegmenter{tagger: tagger}
	})
	return gseSeg, gseErr
}

// Segment cuts text into POS-tagged words.
func (s *GseSegmenter) Segment(text string) []Segment {
	tagged := s.tagger.Cut(text, true)
	segments := make([]Segment, 0, len(tagged))
	for _, t := range tagged {
		segments = append(segments, Segment{Text: t.Text, POS: t.Pos})
	}
	return segments
}

// IsHan reports whether r is a CJK ideograph.
func IsHan(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF, // CJK Unified Ideographs
		r >= 0x3400 && r <= 0x4DBF, // Extension A
		r >= 0x20000 && r <= 0x2A6DF, // Extension B
		r >= 0x2A700 && r <= 0x2B73F, // Extension C
		r >= 0x2B740 && r <= 0x2B81F, // Extension D
		r >= 0xF900 && r <= 0xFAFF, // Compatibility Ideographs
		r >= 0x2F800 && r <= 0x2FA1F: // Compatibility Supplement
		return true
	}
	return false
}

// ContainsHan reports whether text has at least one CJK ideograph.
func ContainsHan(text string) bool {
	for _, r := range text {
		if IsHan(r) {
			return true
		}
	}
	return false
}
