package zh

import "strings"

// Syllable is a toneless pinyin syllable plus its tone number.
// Tone 5 is the neutral tone.
type Syllable struct {
	Syllable string
	Tone     int
}

// ParsePinyin splits a numbered pinyin string ("ni3") into syllable
// and tone. A missing tone digit reads as neutral.
func ParsePinyin(s string) Syllable {
	if s == "" {
		return Syllable{Tone: 5}
	}
	last := s[len(s)-1]
	if last >= '0' && last <= '9' {
		return Syllable{Syllable: s[:len(s)-1], Tone: int(last - '0')}
	}
	return Syllable{Syllable: s, Tone: 5}
}

// charPinyin maps frequent single characters to their usual numbered
// pinyin. Polyphones resolve through the polyphone tables first.
var charPinyin = map[rune]string{
	'的': "de5", '一': "yi1", '是': "shi4", '不': "bu4", '了': "le5",
	'在': "zai4", '人': "ren2", '有': "you3", '我': "wo3", '他': "ta1",
	'这': "zhe4", '中': "zhong1", '大': "da4", '来': "lai2", '上': "shang4",
	'国': "guo2", '个': "ge4", '到': "dao4", '说': "shuo1", '们': "men5",
	'为': "wei4", '子': "zi3", '和': "he2", '你': "ni3", '地': "di4",
	'出': "chu1", '道': "dao4", '也': "ye3", '时': "shi2", '年': "nian2",
	'得': "de2", '就': "jiu4", '那': "na4", '要': "yao4", '下': "xia4",
	'以': "yi3", '生': "sheng1", '会': "hui4", '自': "zi4", '着': "zhe5",
	'去': "qu4", '之': "zhi1", '过': "guo4", '家': "jia1", '学': "xue2",
	'对': "dui4", '可': "ke3", '她': "ta1", '里': "li3", '后': "hou4",
	'小': "xiao3", '么': "me5", '心': "xin1", '多': "duo1", '天': "tian1",
	'而': "er2", '能': "neng2", '好': "hao3", '都': "dou1", '然': "ran2",
	'没': "mei2", '日': "ri4", '于': "yu2", '起': "qi3", '还': "hai2",
	'发': "fa1", '成': "cheng2", '事': "shi4", '只': "zhi3", '作': "zuo4",
	'当': "dang1", '想': "xiang3", '看': "kan4", '文': "wen2", '无': "wu2",
	'开': "kai1", '手': "shou3", '十': "shi2", '用': "yong4", '主': "zhu3",
	'行': "xing2", '方': "fang1", '又': "you4", '如': "ru2", '前': "qian2",
	'所': "suo3", '本': "ben3", '见': "jian4", '经': "jing1", '头': "tou2",
	'面': "mian4", '把': "ba3", '问': "wen4", '样': "yang4", '定': "ding4",
	'长': "chang2", '很': "hen3", '女': "nv3", '些': "xie1", '名': "ming2",
	'外': "wai4", '却': "que4", '让': "rang4", '被': "bei4", '点': "dian3",
	'高': "gao1", '走': "zou3", '世': "shi4", '界': "jie4", '万': "wan4",
	'百': "bai3", '千': "qian1", '零': "ling2", '二': "er4", '三': "san1",
	'四': "si4", '五': "wu3", '六': "liu4", '七': "qi1", '八': "ba1",
	'九': "jiu3", '元': "yuan2", '角': "jiao3", '分': "fen1", '新': "xin1",
	'加': "jia1", '坡': "po1", '美': "mei3", '月': "yue4",
}

// CharToPinyin resolves one character's usual reading.
func CharToPinyin(r rune) (Syllable, bool) {
	if py, ok := charPinyin[r]; ok {
		return ParsePinyin(py), true
	}
	if py, ok := DefaultPinyin(r); ok {
		return ParsePinyin(py), true
	}
	return Syllable{}, false
}

// ToPinyinWithPOS converts a segmented word to pinyin syllables.
// Resolution order: exact phrase entry, POS-conditioned reading per
// character, then the character's default reading. Non-Han runes are
// skipped.
func ToPinyinWithPOS(word, posTag string) []Syllable {
	if py, ok := LookupPhrase(word); ok {
		var syllables []Syllable
		for _, p := range strings.Fields(py) {
			syllables = append(syllables, ParsePinyin(p))
		}
		return syllables
	}

	var syllables []Syllable
	for _, r := range word {
		if !IsHan(r) {
			continue
		}
		if py, ok := LookupPOS(r, posTag); ok {
			syllables = append(syllables, ParsePinyin(py))
			continue
		}
		if syl, ok := CharToPinyin(r); ok {
			syllables = append(syllables, syl)
		}
	}
	return syllables
}
