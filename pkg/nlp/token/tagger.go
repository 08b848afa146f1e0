package token

import (
	"strings"
	"unicode"
)

// POS is a coarse part-of-speech tag. The pipeline only needs enough
// resolution to tell name-like tokens from function words.
type POS string

const (
	Noun        POS = "NN"
	ProperNoun  POS = "NNP"
	Verb        POS = "VB"
	Adjective   POS = "JJ"
	Adverb      POS = "RB"
	Determiner  POS = "DT"
	Preposition POS = "IN"
	Auxiliary   POS = "AUX"
	Modal       POS = "MD"
	Conjunction POS = "CC"
	Pronoun     POS = "PRP"
	Number      POS = "CD"
	Punct       POS = "PUNCT"
)

// IsNominal reports whether the tag is noun-like. The name-span extractor
// only collects nominal tokens.
func (p POS) IsNominal() bool {
	return p == Noun || p == ProperNoun
}

// TaggedToken pairs a token with its tag.
type TaggedToken struct {
	Token
	Tag POS
}

// Tagger assigns coarse POS tags from a fixed lexicon plus suffix
// heuristics. The lexicon is built once and never mutated afterwards, so a
// single Tagger is safe to share across concurrent requests.
type Tagger struct {
	lexicon map[string]POS
}

// NewTagger builds a tagger with the default English function-word lexicon.
func NewTagger() *Tagger {
	t := &Tagger{lexicon: make(map[string]POS)}
	t.loadDefaultLexicon()
	return t
}

// Tag tags every token. It never fails: any panic inside the heuristics is
// recovered and the remaining tokens are tagged as plain nouns, because a
// query must still parse when the tagger misbehaves.
func (t *Tagger) Tag(tokens []Token) (tagged []TaggedToken) {
	tagged = make([]TaggedToken, len(tokens))

	defer func() {
		if r := recover(); r != nil {
			for i := range tagged {
				if tagged[i].Token.Text == "" {
					tagged[i] = TaggedToken{Token: tokens[i], Tag: Noun}
				}
			}
		}
	}()

	for i, tok := range tokens {
		tagged[i] = TaggedToken{Token: tok, Tag: t.lookup(tok)}
	}

	// Contextual correction: a nominal right after a determiner stays a
	// noun even if the suffix heuristics said verb ("the meeting ended").
	for i := 1; i < len(tagged); i++ {
		if tagged[i-1].Tag == Determiner && tagged[i].Tag == Verb {
			tagged[i].Tag = Noun
		}
	}
	return tagged
}

func (t *Tagger) lookup(tok Token) POS {
	if pos, ok := t.lexicon[tok.Lower]; ok {
		return pos
	}
	return t.infer(tok)
}

func (t *Tagger) infer(tok Token) POS {
	if isDigits(tok.Text) {
		return Number
	}
	if len(tok.Text) == 1 && unicode.IsPunct(rune(tok.Text[0])) {
		return Punct
	}
	if unicode.IsUpper(rune(tok.Text[0])) {
		return ProperNoun
	}

	lower := tok.Lower
	switch {
	case strings.HasSuffix(lower, "ly"):
		return Adverb
	case strings.HasSuffix(lower, "ing"), strings.HasSuffix(lower, "ed"):
		return Verb
	case strings.HasSuffix(lower, "ness"), strings.HasSuffix(lower, "tion"),
		strings.HasSuffix(lower, "ment"), strings.HasSuffix(lower, "ity"):
		return Noun
	case strings.HasSuffix(lower, "ful"), strings.HasSuffix(lower, "less"),
		strings.HasSuffix(lower, "ous"), strings.HasSuffix(lower, "ive"):
		return Adjective
	}

	return Noun
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (t *Tagger) loadDefaultLexicon() {
	for _, w := range []string{"the", "a", "an", "this", "that", "these", "those", "my", "your",
		"his", "her", "its", "our", "their", "some", "any", "no", "every", "each", "all"} {
		t.lexicon[w] = Determiner
	}

	for _, w := range []string{"in", "on", "at", "to", "for", "with", "by", "from", "of", "about",
		"into", "during", "before", "after", "between", "under", "over", "since", "within"} {
		t.lexicon[w] = Preposition
	}

	for _, w := range []string{"is", "are", "was", "were", "be", "been", "being", "am",
		"have", "has", "had", "do", "does", "did"} {
		t.lexicon[w] = Auxiliary
	}

	for _, w := range []string{"can", "could", "will", "would", "shall", "should", "may", "might", "must"} {
		t.lexicon[w] = Modal
	}

	for _, w := range []string{"and", "or", "but", "nor", "so", "because", "while", "if", "when", "where", "whether"} {
		t.lexicon[w] = Conjunction
	}

	for _, w := range []string{"i", "you", "he", "she", "it", "we", "they", "me", "him", "us", "them",
		"who", "whom", "whose", "which", "what"} {
		t.lexicon[w] = Pronoun
	}

	for _, w := range []string{"show", "list", "give", "tell", "get", "find",
		"came", "come", "left", "leave", "work", "worked", "assign"} {
		t.lexicon[w] = Verb
	}

	// "late"/"last"/"early" would otherwise infer as nouns or proper nouns
	// when capitalized at sentence start.
	for _, w := range []string{"late", "last", "early", "open", "overdue", "completed",
		"pending", "present", "absent", "average", "many", "much"} {
		t.lexicon[w] = Adjective
	}

	for _, w := range []string{"today", "yesterday", "tomorrow", "now", "here", "there"} {
		t.lexicon[w] = Adverb
	}
}
