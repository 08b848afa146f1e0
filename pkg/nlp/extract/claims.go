package extract

import "strings"

// ClaimSet tracks text spans already consumed by an extractor so later
// extractors do not capture the same tokens again. All spans are stored
// lowercased.
type ClaimSet struct {
	spans  []string
	tokens map[string]struct{}
}

func NewClaimSet() *ClaimSet {
	return &ClaimSet{tokens: make(map[string]struct{})}
}

// Claim records a consumed span and each of its word tokens.
func (c *ClaimSet) Claim(span string) {
	span = strings.ToLower(strings.TrimSpace(span))
	if span == "" {
		return
	}
	c.spans = append(c.spans, span)
	for _, w := range strings.Fields(span) {
		c.tokens[w] = struct{}{}
	}
}

// ClaimedToken reports whether a single token was consumed by an earlier
// extractor.
func (c *ClaimSet) ClaimedToken(word string) bool {
	_, ok := c.tokens[strings.ToLower(word)]
	return ok
}

// OverlapsSpan reports whether the candidate is contained in (or contains)
// one of the claimed spans. Used to suppress a person-name candidate that
// is really part of an already-extracted project/task/organization name.
func (c *ClaimSet) OverlapsSpan(candidate string) bool {
	candidate = strings.ToLower(strings.TrimSpace(candidate))
	if candidate == "" {
		return false
	}
	for _, s := range c.spans {
		if strings.Contains(s, candidate) || strings.Contains(candidate, s) {
			return true
		}
	}
	return false
}
