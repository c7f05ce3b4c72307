package text

import (
	"regexp"
	"strings"
)

// abbreviations expands titles, units and latinisms before phonemization.
// Longer keys are listed first so the replacer prefers them at a given
// position.
var abbreviations = strings.NewReplacer(
	"Cmdr.", "Commander",
	"Capt.", "Captain",
	"Prof.", "Professor",
	"Sgt.", "Sergeant",
	"Gov.", "Governor",
	"Sen.", "Senator",
	"Rep.", "Representative",
	"Gen.", "General",
	"Col.", "Colonel",
	"Adm.", "Admiral",
	"Rev.", "Reverend",
	"Mrs.", "Missus",
	"Mr.", "Mister",
	"Ms.", "Miss",
	"Dr.", "Doctor",
	"Sr.", "Senior",
	"Jr.", "Junior",
	"St.", "Saint",
	"Lt.", "Lieutenant",
	"vs.", "versus",
	"etc.", "etcetera",
	"i.e.", "that is",
	"e.g.", "for example",
	"a.m.", "AM",
	"p.m.", "PM",
	"A.M.", "AM",
	"P.M.", "PM",
	"lbs.", "pounds",
	"lb.", "pounds",
	"oz.", "ounces",
	"gal.", "gallons",
	"mi.", "miles",
	"yd.", "yards",
	"sq.", "square",
	"ft.", "feet",
	"hrs.", "hours",
	"hr.", "hour",
	"mins.", "minutes",
	"min.", "minute",
	"secs.", "seconds",
	"sec.", "second",
)

// currencies maps a currency sign to its unit and subunit names.
var currencies = map[string][2]string{
	"$": {"dollar", "cent"},
	"£": {"pound", "pence"},
	"€": {"euro", "cent"},
	"¥": {"yen", "sen"},
}

var (
	timePattern   = regexp.MustCompile(`(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\s*(AM|PM|am|pm|a\.m\.|p\.m\.))?`)
	numberPattern = regexp.MustCompile(`(?i)([$£€¥])?(-?\d{1,3}(?:,\d{3})*(?:\.\d+)?|\d+(?:\.\d+)?)(st|nd|rd|th|'?s)?`)
	spacePattern  = regexp.MustCompile(`\s+`)
)

// Verbalize rewrites numerals, currency amounts, clock times, ordinals
// and common abbreviations as plain words, so the downstream resolvers
// only ever see spellable text.
func Verbalize(s string) string {
	s = abbreviations.Replace(s)

	s = timePattern.ReplaceAllStringFunc(s, func(m string) string {
		caps := timePattern.FindStringSubmatch(m)
		hours := parseInt(caps[1])
		minutes := parseInt(caps[2])
		seconds := -1
		if caps[3] != "" {
			seconds = parseInt(caps[3])
		}
		return TimeToWords(hours, minutes, seconds, caps[4])
	})

	s = numberPattern.ReplaceAllStringFunc(s, func(m string) string {
		caps := numberPattern.FindStringSubmatch(m)
		sign, num, suffix := caps[1], caps[2], caps[3]
		num = strings.ReplaceAll(num, ",", "")

		if sign != "" {
			return CurrencyToWords(num, sign)
		}

		switch strings.ToLower(suffix) {
		case "st", "nd", "rd", "th":
			return OrdinalToWords(parseInt64(num))
		case "s", "'s":
			return NumberToWords(parseInt64(num)) + suffix
		}

		whole, frac, isDecimal := strings.Cut(num, ".")
		if !isDecimal {
			// Standalone four-digit numbers in this range read as years.
			if n := parseInt64(whole); n >= 1000 && n <= 2100 {
				return YearToWords(n)
			}
			return NumberToWords(parseInt64(whole))
		}

		var b strings.Builder
		b.WriteString(NumberToWords(parseInt64(whole)))
		b.WriteString(" point")
		for _, d := range frac {
			if d >= '0' && d <= '9' {
				b.WriteByte(' ')
				b.WriteString(digitWords[d-'0'])
			}
		}
		return b.String()
	})

	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

var digitWords = []string{
	"zero", "one", "two", "three", "four",
	"five", "six", "seven", "eight", "nine",
}

var onesWords = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

var tensWords = []string{
	"", "", "twenty", "thirty", "forty", "fifty",
	"sixty", "seventy", "eighty", "ninety",
}

var magnitudes = []struct {
	divisor int64
	name    string
}{
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
	{100, "hundred"},
}

// NumberToWords spells out a cardinal number.
func NumberToWords(n int64) string {
	if n == 0 {
		return "zero"
	}

	var parts []string
	if n < 0 {
		parts = append(parts, "minus")
		n = -n
	}

	for _, mag := range magnitudes {
		if n >= mag.divisor {
			parts = append(parts, smallNumberToWords(int(n/mag.divisor)), mag.name)
			n %= mag.divisor
		}
	}
	if n > 0 {
		parts = append(parts, smallNumberToWords(int(n)))
	}
	return strings.Join(parts, " ")
}

// smallNumberToWords spells 0-99.
func smallNumberToWords(n int) string {
	if n < 20 {
		return onesWords[n]
	}
	if n%10 == 0 {
		return tensWords[n/10]
	}
	return tensWords[n/10] + " " + onesWords[n%10]
}

// OrdinalToWords spells out an ordinal number.
func OrdinalToWords(n int64) string {
	if n == 0 {
		return "zeroth"
	}

	cardinal := NumberToWords(n)
	switch {
	case strings.HasSuffix(cardinal, "one"):
		return cardinal[:len(cardinal)-3] + "first"
	case strings.HasSuffix(cardinal, "two"):
		return cardinal[:len(cardinal)-3] + "second"
	case strings.HasSuffix(cardinal, "three"):
		return cardinal[:len(cardinal)-5] + "third"
	case strings.HasSuffix(cardinal, "five"):
		return cardinal[:len(cardinal)-4] + "fifth"
	case strings.HasSuffix(cardinal, "eight"):
		return cardinal[:len(cardinal)-5] + "eighth"
	case strings.HasSuffix(cardinal, "nine"):
		return cardinal[:len(cardinal)-4] + "ninth"
	case strings.HasSuffix(cardinal, "twelve"):
		return cardinal[:len(cardinal)-6] + "twelfth"
	case strings.HasSuffix(cardinal, "y"):
		return cardinal[:len(cardinal)-1] + "ieth"
	default:
		return cardinal + "th"
	}
}

// YearToWords spells a year the way it is read aloud: 1984 becomes
// "nineteen eighty four" and 2001 becomes "twenty oh one". Values
// outside 1000-2999 read as plain cardinals.
func YearToWords(year int64) string {
	if year < 1000 || year >= 3000 {
		return NumberToWords(year)
	}

	century := int(year / 100)
	decade := int(year % 100)
	switch {
	case decade == 0:
		return smallNumberToWords(century) + " hundred"
	case decade < 10:
		return smallNumberToWords(century) + " oh " + smallNumberToWords(decade)
	default:
		return smallNumberToWords(century) + " " + smallNumberToWords(decade)
	}
}

// TimeToWords spells a clock time. seconds < 0 means no seconds field
// was present; period is the optional AM/PM marker as matched.
func TimeToWords(hours, minutes, seconds int, period string) string {
	var b strings.Builder

	switch {
	case hours == 0:
		b.WriteString("twelve")
	case hours > 12:
		b.WriteString(smallNumberToWords(hours - 12))
	default:
		b.WriteString(smallNumberToWords(hours))
	}

	switch {
	case minutes == 0:
		// "two o'clock" reads oddly mid-sentence, leave the bare hour.
	case minutes < 10:
		b.WriteString(" oh ")
		b.WriteString(smallNumberToWords(minutes))
	default:
		b.WriteByte(' ')
		b.WriteString(smallNumberToWords(minutes))
	}

	if seconds > 0 {
		b.WriteString(" and ")
		b.WriteString(smallNumberToWords(seconds))
		b.WriteString(" seconds")
	}

	if period != "" {
		b.WriteByte(' ')
		b.WriteString(strings.ToUpper(strings.ReplaceAll(period, ".", "")))
	}

	return b.String()
}

// CurrencyToWords spells a currency amount given its numeral string
// (commas already stripped) and its sign.
func CurrencyToWords(num, sign string) string {
	names, ok := currencies[sign]
	if !ok {
		names = currencies["$"]
	}
	unit, subunit := names[0], names[1]

	negative := strings.HasPrefix(num, "-")
	num = strings.TrimPrefix(num, "-")

	wholeStr, fracStr, _ := strings.Cut(num, ".")
	whole := parseInt64(wholeStr)

	// Subunits are read as hundredths: $1.5 is one dollar and fifty cents.
	if len(fracStr) > 2 {
		fracStr = fracStr[:2]
	}
	for len(fracStr) > 0 && len(fracStr) < 2 {
		fracStr += "0"
	}
	frac := parseInt64(fracStr)

	var parts []string
	if negative {
		parts = append(parts, "minus")
	}
	if whole > 0 {
		parts = append(parts, NumberToWords(whole), pluralUnit(unit, whole))
	}
	if frac > 0 {
		if whole > 0 {
			parts = append(parts, "and")
		}
		parts = append(parts, NumberToWords(frac), pluralUnit(subunit, frac))
	}
	if whole == 0 && frac == 0 {
		return "zero " + pluralUnit(unit, 0)
	}
	return strings.Join(parts, " ")
}

func pluralUnit(unit string, n int64) string {
	if n == 1 || unit == "pence" {
		return unit
	}
	return unit + "s"
}

func parseInt(s string) int {
	return int(parseInt64(s))
}

func parseInt64(s string) int64 {
	var n int64
	neg := false
	for i, c := range s {
		if i == 0 && c == '-' {
			neg = true
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int64(c-'0')
	}
	if neg {
		return -n
	}
	return n
}
