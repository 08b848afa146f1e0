package extract

import (
	"hr-assistant-be/pkg/nlp/token"
)

const minCodeDigits = 4

// ExtractEmployeeCode returns the first bare numeric token of four or more
// digits that was not already consumed as part of a date. Tokens with a
// non-numeric prefix ("EMP1024") are not codes; the caller is expected to
// quote the plain number.
func ExtractEmployeeCode(tokens []token.Token, claims *ClaimSet) string {
	for _, t := range tokens {
		if len(t.Text) < minCodeDigits || !allDigits(t.Text) {
			continue
		}
		if claims.ClaimedToken(t.Text) {
			continue
		}
		claims.Claim(t.Text)
		return t.Text
	}
	return ""
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
