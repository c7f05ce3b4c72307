package zh

import (
	"regexp"
	"strings"
)

// Verbalization of numerals, dates, currency and percentages into
// spoken Chinese, applied before segmentation.

var (
	numPattern     = regexp.MustCompile(`\d+`)
	decimalPattern = regexp.MustCompile(`(\d+)\.(\d+)`)
	datePattern    = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)
	clockPattern   = regexp.MustCompile(`(\d{1,2})[点时](\d{1,2})分?`)
	sgdPattern     = regexp.MustCompile(`S\$(\d+(?:\.\d{2})?)`)
	rmbPattern     = regexp.MustCompile(`(?:RMB|￥|¥)(\d+(?:\.\d{2})?)`)
	usdPattern     = regexp.MustCompile(`\$(\d+(?:\.\d{2})?)`)
	percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)
	phonePattern   = regexp.MustCompile(`1[3-9]\d{9}`)
)

var hanDigits = [10]string{"零", "一", "二", "三", "四", "五", "六", "七", "八", "九"}
var hanUnits = [4]string{"", "十", "百", "千"}
var hanBigUnits = [4]string{"", "万", "亿", "兆"}

// Normalize rewrites digits and sign-prefixed amounts as spoken
// Chinese. Most specific patterns run first so plain digit expansion
// never clobbers a currency or date form.
func Normalize(text string) string {
	text = replaceAmount(sgdPattern, text, "新加坡元", "")
	text = replaceRMB(text)
	text = replaceAmount(usdPattern, text, "美元", "")
	text = percentPattern.ReplaceAllStringFunc(text, func(m string) string {
		num := percentPattern.FindStringSubmatch(m)[1]
		if whole, frac, ok := strings.Cut(num, "."); ok {
			return "百分之" + NumberToChinese(whole) + "点" + digitsToChinese(frac)
		}
		return "百分之" + NumberToChinese(num)
	})
	text = datePattern.ReplaceAllStringFunc(text, func(m string) string {
		caps := datePattern.FindStringSubmatch(m)
		return digitsToChinese(caps[1]) + "年" + NumberToChinese(caps[2]) + "月" + NumberToChinese(caps[3]) + "日"
	})
	text = clockPattern.ReplaceAllStringFunc(text, func(m string) string {
		caps := clockPattern.FindStringSubmatch(m)
		hour := NumberToChinese(caps[1])
		minute := NumberToChinese(caps[2])
		if minute == "零" {
			return hour + "点整"
		}
		return hour + "点" + minute + "分"
	})
	text = phonePattern.ReplaceAllStringFunc(text, digitsToChinese)
	text = decimalPattern.ReplaceAllStringFunc(text, func(m string) string {
		caps := decimalPattern.FindStringSubmatch(m)
		return NumberToChinese(caps[1]) + "点" + digitsToChinese(caps[2])
	})
	text = numPattern.ReplaceAllStringFunc(text, NumberToChinese)
	return text
}

func replaceAmount(re *regexp.Regexp, text, prefix, suffix string) string {
	return re.ReplaceAllStringFunc(text, func(m string) string {
		amount := re.FindStringSubmatch(m)[1]
		if whole, frac, ok := strings.Cut(amount, "."); ok {
			return prefix + NumberToChinese(whole) + "元" + NumberToChinese(frac) + "分" + suffix
		}
		return prefix + NumberToChinese(amount) + suffix
	})
}

// replaceRMB reads fractional yuan as 角 and 分.
func replaceRMB(text string) string {
	return rmbPattern.ReplaceAllStringFunc(text, func(m string) string {
		amount := rmbPattern.FindStringSubmatch(m)[1]
		whole, frac, ok := strings.Cut(amount, ".")
		if !ok {
			return NumberToChinese(whole) + "元"
		}
		jiao := hanDigits[frac[0]-'0']
		if len(frac) < 2 || frac[1] == '0' {
			return NumberToChinese(whole) + "元" + jiao + "角"
		}
		fen := hanDigits[frac[1]-'0']
		return NumberToChinese(whole) + "元" + jiao + "角" + fen + "分"
	})
}

func digitsToChinese(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(hanDigits[r-'0'])
		}
	}
	return b.String()
}

// NumberToChinese converts a digit string to spoken Chinese. Numbers
// longer than eight digits read digit by digit.
func NumberToChinese(numStr string) string {
	trimmed := strings.TrimLeft(numStr, "0")
	if trimmed == "" {
		return hanDigits[0]
	}
	if len(trimmed) > 8 {
		return digitsToChinese(trimmed)
	}

	// Process in groups of four digits from the right (万 scale).
	var groups []string
	for len(trimmed) > 0 {
		cut := len(trimmed) - 4
		if cut < 0 {
			cut = 0
		}
		groups = append(groups, trimmed[cut:])
		trimmed = trimmed[:cut]
	}

	var b strings.Builder
	for gi := len(groups) - 1; gi >= 0; gi-- {
		group := convertFourDigits(groups[gi])
		if group != "" {
			b.WriteString(group)
			if gi > 0 && gi < len(hanBigUnits) {
				b.WriteString(hanBigUnits[gi])
			}
		} else if b.Len() > 0 && !strings.HasSuffix(b.String(), hanDigits[0]) {
			b.WriteString(hanDigits[0])
		}
	}

	result := strings.TrimRight(b.String(), hanDigits[0])

	// 10-19 read 十 not 一十.
	if strings.HasPrefix(result, "一十") && len([]rune(result)) <= 3 {
		result = strings.Replace(result, "一十", "十", 1)
	}
	return result
}

func convertFourDigits(digits string) string {
	var b strings.Builder
	needZero := false
	for i := 0; i < len(digits); i++ {
		pos := len(digits) - 1 - i
		d := int(digits[i] - '0')
		if d == 0 {
			needZero = true
			continue
		}
		if needZero && b.Len() > 0 {
			b.WriteString(hanDigits[0])
		}
		b.WriteString(hanDigits[d])
		if pos > 0 {
			b.WriteString(hanUnits[pos])
		}
		needZero = false
	}
	return b.String()
}
