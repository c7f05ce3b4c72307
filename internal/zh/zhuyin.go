package zh

import "strings"

// Tone markers appended to each zhuyin syllable. Indexed by tone
// number; the neutral tone (5) carries no marker.
var toneMarks = [6]string{"", "→", "↗", "↓", "↘", ""}

// initials maps pinyin initials to zhuyin.
var initials = map[string]string{
	"b": "ㄅ", "p": "ㄆ", "m": "ㄇ", "f": "ㄈ",
	"d": "ㄉ", "t": "ㄊ", "n": "ㄋ", "l": "ㄌ",
	"g": "ㄍ", "k": "ㄎ", "h": "ㄏ",
	"j": "ㄐ", "q": "ㄑ", "x": "ㄒ",
	"zh": "ㄓ", "ch": "ㄔ", "sh": "ㄕ", "r": "ㄖ",
	"z": "ㄗ", "c": "ㄘ", "s": "ㄙ",
}

// finals maps pinyin finals (medial + nucleus + coda) to zhuyin.
var finals = map[string]string{
	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "i": "ㄧ", "u": "ㄨ",
	"v": "ㄩ", "ü": "ㄩ",

	"ai": "ㄞ", "ao": "ㄠ", "an": "ㄢ", "ang": "ㄤ",
	"ei": "ㄟ", "en": "ㄣ", "eng": "ㄥ", "er": "ㄦ",
	"ou": "ㄡ", "ong": "ㄨㄥ",

	"ia": "ㄧㄚ", "ie": "ㄧㄝ", "iao": "ㄧㄠ", "iu": "ㄧㄡ",
	"ian": "ㄧㄢ", "in": "ㄧㄣ", "iang": "ㄧㄤ", "ing": "ㄧㄥ",
	"iong": "ㄩㄥ",

	"ua": "ㄨㄚ", "uo": "ㄨㄛ", "uai": "ㄨㄞ", "ui": "ㄨㄟ",
	"uan": "ㄨㄢ", "un": "ㄨㄣ", "uang": "ㄨㄤ", "ueng": "ㄨㄥ",

	"ve": "ㄩㄝ", "üe": "ㄩㄝ", "van": "ㄩㄢ", "üan": "ㄩㄢ",
	"vn": "ㄩㄣ", "ün": "ㄩㄣ",
}

// wholeSyllables maps complete syllables that do not decompose
// regularly: the apical-vowel row, the y/w spellings of bare finals,
// j/q/x before ü, and nü/lü.
var wholeSyllables = map[string]string{
	"zhi": "ㄓ", "chi": "ㄔ", "shi": "ㄕ", "ri": "ㄖ",
	"zi": "ㄗ", "ci": "ㄘ", "si": "ㄙ",

	"yi": "ㄧ", "ya": "ㄧㄚ", "ye": "ㄧㄝ", "yao": "ㄧㄠ",
	"you": "ㄧㄡ", "yan": "ㄧㄢ", "yin": "ㄧㄣ", "yang": "ㄧㄤ",
	"ying": "ㄧㄥ", "yong": "ㄩㄥ",

	"wu": "ㄨ", "wa": "ㄨㄚ", "wo": "ㄨㄛ", "wai": "ㄨㄞ",
	"wei": "ㄨㄟ", "wan": "ㄨㄢ", "wen": "ㄨㄣ", "wang": "ㄨㄤ",
	"weng": "ㄨㄥ",

	"yu": "ㄩ", "yue": "ㄩㄝ", "yuan": "ㄩㄢ", "yun": "ㄩㄣ",

	"nv": "ㄋㄩ", "nü": "ㄋㄩ", "lv": "ㄌㄩ", "lü": "ㄌㄩ",
	"nve": "ㄋㄩㄝ", "nüe": "ㄋㄩㄝ", "lve": "ㄌㄩㄝ", "lüe": "ㄌㄩㄝ",

	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "ai": "ㄞ", "ei": "ㄟ",
	"ao": "ㄠ", "ou": "ㄡ", "an": "ㄢ", "en": "ㄣ", "ang": "ㄤ",
	"eng": "ㄥ", "er": "ㄦ",

	"ju": "ㄐㄩ", "qu": "ㄑㄩ", "xu": "ㄒㄩ",
	"jue": "ㄐㄩㄝ", "que": "ㄑㄩㄝ", "xue": "ㄒㄩㄝ",
	"juan": "ㄐㄩㄢ", "quan": "ㄑㄩㄢ", "xuan": "ㄒㄩㄢ",
	"jun": "ㄐㄩㄣ", "qun": "ㄑㄩㄣ", "xun": "ㄒㄩㄣ",
}

// SyllableToZhuyin converts one toneless pinyin syllable to zhuyin.
// Unmappable syllables pass through unchanged.
func SyllableToZhuyin(syllable string) string {
	lower := strings.ToLower(syllable)

	if zy, ok := wholeSyllables[lower]; ok {
		return zy
	}

	initial, final := splitInitialFinal(lower)

	var b strings.Builder
	if initial != "" {
		if zy, ok := initials[initial]; ok {
			b.WriteString(zy)
		}
	}
	if final != "" {
		if zy, ok := finals[final]; ok {
			b.WriteString(zy)
		} else {
			for _, r := range final {
				if zy, ok := finals[string(r)]; ok {
					b.WriteString(zy)
				}
			}
		}
	}

	if b.Len() == 0 {
		return syllable
	}
	return b.String()
}

func splitInitialFinal(syllable string) (string, string) {
	if len(syllable) >= 2 {
		switch syllable[:2] {
		case "zh", "ch", "sh":
			return syllable[:2], syllable[2:]
		}
	}
	if len(syllable) >= 1 {
		switch syllable[:1] {
		case "b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h",
			"j", "q", "x", "r", "z", "c", "s":
			return syllable[:1], syllable[1:]
		}
	}
	return "", syllable
}

// ToZhuyin renders a syllable sequence as a space-separated zhuyin
// string with tone markers.
func ToZhuyin(syllables []Syllable) string {
	var b strings.Builder
	for i, syl := range syllables {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(SyllableToZhuyin(syl.Syllable))
		if syl.Tone >= 1 && syl.Tone <= 4 {
			b.WriteString(toneMarks[syl.Tone])
		}
	}
	return b.String()
}
