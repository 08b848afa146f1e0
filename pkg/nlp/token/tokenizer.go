package token

import (
	"strings"
	"unicode"
)

// Token is a single word taken from the raw query, with the positions it
// occupied in the original text so downstream extractors can mark spans as
// claimed.
type Token struct {
	Text  string
	Lower string
	Index int // position in the token stream
}

// Tokenize splits raw text into word tokens. Punctuation glued to a word
// ("Atlas?", "5th,") is stripped from the edges; inner punctuation such as
// the dashes in "05-03-2024" is preserved because date extraction depends
// on it.
func Tokenize(text string) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) && r != '-' && r != '/'
		})
		if w == "" {
			continue
		}
		tokens = append(tokens, Token{
			Text:  w,
			Lower: strings.ToLower(w),
			Index: len(tokens),
		})
	}
	return tokens
}

// Words returns just the surface forms, in stream order.
func Words(tokens []Token) []string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return words
}
