package text

import "regexp"

// Token is one unit of the word/punctuation stream handed to a
// language resolver.
type Token struct {
	Text       string
	Whitespace bool // a space followed this token in the input
	Punct      bool
}

// Words match letters with internal apostrophes (don't, o'clock) or
// digit runs; anything else non-space matches as a single rune.
var tokenPattern = regexp.MustCompile(`[a-zA-Z'’]+|[0-9]+(?:[.,][0-9]+)*|[^\s\w]`)

// Tokenize splits text into word and punctuation tokens, recording
// whether whitespace followed each token so the resolver can
// reconstruct spacing in its output.
func Tokenize(s string) []Token {
	matches := tokenPattern.FindAllStringIndex(s, -1)
	tokens := make([]Token, 0, len(matches))

	lastEnd := 0
	for _, m := range matches {
		if m[0] > lastEnd && len(tokens) > 0 {
			tokens[len(tokens)-1].Whitespace = true
		}
		word := s[m[0]:m[1]]
		tokens = append(tokens, Token{
			Text:  word,
			Punct: isPunctToken(word),
		})
		lastEnd = m[1]
	}
	if lastEnd < len(s) && len(tokens) > 0 {
		tokens[len(tokens)-1].Whitespace = true
	}

	return tokens
}

func isPunctToken(word string) bool {
	runes := []rune(word)
	if len(runes) != 1 {
		return false
	}
	r := runes[0]
	return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
}
