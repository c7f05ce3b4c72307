// Package vocab holds the fixed phoneme vocabulary of the Kokoro token
// space: a bidirectional mapping between phoneme/punctuation/stress
// symbols and int64 token IDs. The table is immutable; it matches the
// Kokoro-82M inventory, extended with the bopomofo block used by the
// v1.1-zh voices (IDs 178 and up).
package vocab

const (
	// PadID brackets every encoded sequence (same ID at start and end).
	PadID int64 = 0

	// UnknownID is the reserved token for symbols that are not in the
	// table. Slot 26 is left open in the model's embedding table.
	UnknownID int64 = 26

	// MaxTokens caps the encoded payload length, excluding the two
	// boundary tokens.
	MaxTokens = 510
)

var symbolToID = map[rune]int64{
	// Punctuation
	';': 1, ':': 2, ',': 3, '.': 4, '!': 5, '?': 6,
	'¡': 7, '¿': 8, '—': 9, '…': 10, '"': 11, '(': 12, ')': 13,
	'“': 14, '”': 15, ' ': 16,
	'̃': 17, // combining tilde

	// Affricate ligatures
	'ʣ': 18, 'ʥ': 19, 'ʦ': 20, 'ʨ': 21, 'ᵝ': 22, 'ꭧ': 23,

	// Diphthong shorthand (capitals)
	'A': 24, 'I': 25, 'O': 31, 'Q': 33, 'S': 35, 'T': 36, 'W': 39, 'Y': 41,

	'ᵊ': 42, // small schwa

	// Lowercase letters
	'a': 43, 'b': 44, 'c': 45, 'd': 46, 'e': 47, 'f': 48,
	'h': 50, 'i': 51, 'j': 52, 'k': 53, 'l': 54, 'm': 55, 'n': 56,
	'o': 57, 'p': 58, 'q': 59, 'r': 60, 's': 61, 't': 62, 'u': 63,
	'v': 64, 'w': 65, 'x': 66, 'y': 67, 'z': 68,

	// IPA
	'ɑ': 69, 'ɐ': 70, 'ɒ': 71, 'æ': 72, 'β': 75, 'ɔ': 76, 'ɕ': 77,
	'ç': 78, 'ɖ': 80, 'ð': 81, 'ʤ': 82, 'ə': 83, 'ɚ': 85, 'ɛ': 86,
	'ɜ': 87, 'ɟ': 90, 'ɡ': 92, 'ɥ': 99, 'ɨ': 101, 'ɪ': 102, 'ʝ': 103,
	'ɯ': 110, 'ɰ': 111, 'ŋ': 112, 'ɳ': 113, 'ɲ': 114, 'ɴ': 115,
	'ø': 116, 'ɸ': 118, 'θ': 119, 'œ': 120, 'ɹ': 123, 'ɾ': 125,
	'ɻ': 126, 'ʁ': 128, 'ɽ': 129, 'ʂ': 130, 'ʃ': 131, 'ʈ': 132,
	'ʧ': 133, 'ʊ': 135, 'ʋ': 136, 'ʌ': 138, 'ɣ': 139, 'ɤ': 140,
	'χ': 142, 'ʎ': 143, 'ʒ': 147, 'ʔ': 148,

	// Stress and length
	'ˈ': 156, 'ˌ': 157, 'ː': 158,

	// Aspiration and palatalization
	'ʰ': 162, 'ʲ': 164,

	// Tone contour markers (Mandarin tones 3, 1, 2, 4)
	'↓': 169, '→': 171, '↗': 172, '↘': 173,

	'ᵻ': 177, // American reduced vowel

	// Bopomofo extension (v1.1-zh)
	'ㄅ': 178, 'ㄆ': 179, 'ㄇ': 180, 'ㄈ': 181, 'ㄉ': 182, 'ㄊ': 183,
	'ㄋ': 184, 'ㄌ': 185, 'ㄍ': 186, 'ㄎ': 187, 'ㄏ': 188, 'ㄐ': 189,
	'ㄑ': 190, 'ㄒ': 191, 'ㄓ': 192, 'ㄔ': 193, 'ㄕ': 194, 'ㄖ': 195,
	'ㄗ': 196, 'ㄘ': 197, 'ㄙ': 198, 'ㄚ': 199, 'ㄛ': 200, 'ㄜ': 201,
	'ㄝ': 202, 'ㄞ': 203, 'ㄟ': 204, 'ㄠ': 205, 'ㄡ': 206, 'ㄢ': 207,
	'ㄣ': 208, 'ㄤ': 209, 'ㄥ': 210, 'ㄦ': 211, 'ㄧ': 212, 'ㄨ': 213,
	'ㄩ': 214,
}

var idToSymbol = func() map[int64]rune {
	m := make(map[int64]rune, len(symbolToID))
	for sym, id := range symbolToID {
		m[id] = sym
	}
	return m
}()

// ID returns the token ID for a phoneme symbol.
func ID(sym rune) (int64, bool) {
	id, ok := symbolToID[sym]
	return id, ok
}

// Symbol returns the phoneme symbol for a token ID.
func Symbol(id int64) (rune, bool) {
	sym, ok := idToSymbol[id]
	return sym, ok
}

// Contains reports whether sym has a vocabulary entry.
func Contains(sym rune) bool {
	_, ok := symbolToID[sym]
	return ok
}

// Size returns the number of symbols in the table.
func Size() int {
	return len(symbolToID)
}

// Encode converts a phoneme string to token IDs. The result is
// bracketed by PadID at both ends; symbols without a vocabulary entry
// encode as UnknownID. Sequences longer than MaxTokens are truncated
// so the trailing PadID is preserved. Encoding is pure: identical
// inputs always yield identical outputs.
func Encode(phonemes string) []int64 {
	tokens := make([]int64, 0, len(phonemes)+2)
	tokens = append(tokens, PadID)

	for _, sym := range phonemes {
		if id, ok := symbolToID[sym]; ok {
			tokens = append(tokens, id)
		} else {
			tokens = append(tokens, UnknownID)
		}
	}

	tokens = append(tokens, PadID)

	if len(tokens) > MaxTokens+2 {
		tokens = tokens[:MaxTokens+1]
		tokens = append(tokens, PadID)
	}

	return tokens
}

// Decode converts token IDs back to a phoneme string, skipping padding
// and unknown tokens.
func Decode(tokens []int64) string {
	out := make([]rune, 0, len(tokens))
	for _, id := range tokens {
		if id == PadID || id == UnknownID {
			continue
		}
		if sym, ok := idToSymbol[id]; ok {
			out = append(out, sym)
		}
	}
	return string(out)
}
