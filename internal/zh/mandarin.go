package zh

import "log/slog"

// Mandarin resolves Mandarin text to zhuyin phonemes. Safe for
// concurrent use once constructed.
type Mandarin struct {
	seg Segmenter
	log *slog.Logger
}

// NewMandarin builds a resolver around the shared gse segmenter.
func NewMandarin(logger *slog.Logger) (*Mandarin, error) {
	seg, err := NewSegmenter()
	if err != nil {
		return nil, err
	}
	return NewMandarinWithSegmenter(seg, logger), nil
}

// NewMandarinWithSegmenter builds a resolver around a caller-supplied
// segmenter.
func NewMandarinWithSegmenter(seg Segmenter, logger *slog.Logger) *Mandarin {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mandarin{seg: seg, log: logger}
}

// Phonemize converts normalized text to a zhuyin phoneme string with
// tone markers.
func (m *Mandarin) Phonemize(input string) (string, error) {
	normalized := Normalize(input)
	segments := m.seg.Segment(normalized)

	var syllables []Syllable
	for _, s := range segments {
		syllables = append(syllables, ToPinyinWithPOS(s.Text, s.POS)...)
	}

	ApplySandhi(syllables)

	phonemes := ToZhuyin(syllables)
	m.log.Debug("mandarin phonemize", "segments", len(segments), "syllables", len(syllables))
	return phonemes, nil
}
