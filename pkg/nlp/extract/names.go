package extract

import (
	"regexp"
	"strings"

	"hr-assistant-be/pkg/nlp/token"
)

// nameAnchor matches the explicit person-reference phrasings. Longer
// anchors come first so "assigned to" is not consumed as a bare "to".
var nameAnchor = regexp.MustCompile(`(?i)\b(?:assigned\s+to|info\s+of|details\s+of|by|for|of)\s+([A-Za-z][A-Za-z .'-]*)`)

// ExtractName pulls a person-name span out of the query.
//
// Strategy one: the explicit anchor pattern ("by X", "for X", "info of X"),
// capturing up to the first keyword token. Strategy two, only when the
// first found nothing: walk the tagged tokens and collect the longest run
// of nominal tokens that are not keywords, not digits and not claimed by
// the date or domain extractors.
//
// Either way a candidate that overlaps an already-extracted project, task
// or organization name is discarded, so "project Atlas" never yields an
// employee called Atlas.
func ExtractName(tagged []token.TaggedToken, text string, claims *ClaimSet, isKeyword func(string) bool) string {
	if name := anchoredPersonName(text, claims, isKeyword); name != "" {
		return name
	}
	return walkedPersonName(tagged, claims, isKeyword)
}

func anchoredPersonName(text string, claims *ClaimSet, isKeyword func(string) bool) string {
	m := nameAnchor.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	var kept []string
	for _, w := range strings.Fields(m[1]) {
		clean := strings.Trim(w, ".,!?")
		if clean == "" || isKeyword(strings.ToLower(clean)) || allDigits(clean) || claims.ClaimedToken(clean) {
			break
		}
		kept = append(kept, clean)
	}

	candidate := strings.Join(kept, " ")
	if candidate == "" || claims.OverlapsSpan(candidate) {
		return ""
	}
	return candidate
}

func walkedPersonName(tagged []token.TaggedToken, claims *ClaimSet, isKeyword func(string) bool) string {
	var run []string
	flush := func() string {
		candidate := strings.Join(run, " ")
		if candidate != "" && !claims.OverlapsSpan(candidate) {
			return candidate
		}
		return ""
	}

	for _, t := range tagged {
		eligible := t.Tag.IsNominal() &&
			!isKeyword(t.Lower) &&
			!allDigits(t.Text) &&
			!claims.ClaimedToken(t.Text)

		if eligible {
			run = append(run, t.Text)
			continue
		}
		if name := flush(); name != "" {
			return name
		}
		run = run[:0]
	}
	return flush()
}
