package token

import (
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple words",
			text: "who was late today",
			want: []string{"who", "was", "late", "today"},
		},
		{
			name: "edge punctuation stripped",
			text: "Was Ravi late, on Monday?",
			want: []string{"Was", "Ravi", "late", "on", "Monday"},
		},
		{
			name: "inner dashes survive",
			text: "attendance on 05-03-2024",
			want: []string{"attendance", "on", "05-03-2024"},
		},
		{
			name: "empty after trimming dropped",
			text: "what ?? now",
			want: []string{"what", "now"},
		},
		{
			name: "blank input",
			text: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(Tokenize(tt.text))
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokenizeIndexes(t *testing.T) {
	tokens := Tokenize("list open tasks")
	for i, tok := range tokens {
		if tok.Index != i {
			t.Errorf("token %q Index = %d, want %d", tok.Text, tok.Index, i)
		}
		if tok.Lower != strings.ToLower(tok.Text) {
			t.Errorf("token %q Lower = %q", tok.Text, tok.Lower)
		}
	}
}

func TestTaggerLexicon(t *testing.T) {
	tagger := NewTagger()

	tests := []struct {
		word string
		want POS
	}{
		{"the", Determiner},
		{"on", Preposition},
		{"was", Auxiliary},
		{"should", Modal},
		{"and", Conjunction},
		{"who", Pronoun},
		{"show", Verb},
		{"late", Adjective},
		{"yesterday", Adverb},
	}

	for _, tt := range tests {
		tagged := tagger.Tag(Tokenize(tt.word))
		if len(tagged) != 1 || tagged[0].Tag != tt.want {
			t.Errorf("Tag(%q) = %v, want %v", tt.word, tagged[0].Tag, tt.want)
		}
	}
}

func TestTaggerInference(t *testing.T) {
	tagger := NewTagger()

	tests := []struct {
		word string
		want POS
	}{
		{"1024", Number},
		{"Ravi", ProperNoun},
		{"quickly", Adverb},
		{"working", Verb},
		{"designation", Noun},
		{"careless", Adjective},
		{"attendance", Noun},
	}

	for _, tt := range tests {
		tagged := tagger.Tag(Tokenize(tt.word))
		if len(tagged) != 1 || tagged[0].Tag != tt.want {
			t.Errorf("Tag(%q) = %v, want %v", tt.word, tagged[0].Tag, tt.want)
		}
	}
}

func TestTaggerDeterminerContext(t *testing.T) {
	tagger := NewTagger()

	// "ended" infers as a verb from its suffix, but after a determiner it is
	// read as a noun phrase head
	tagged := tagger.Tag(Tokenize("the weekend"))
	if tagged[1].Tag != Noun && tagged[1].Tag != ProperNoun {
		t.Errorf("Tag = %v, want nominal", tagged[1].Tag)
	}

	tagged = tagger.Tag(Tokenize("the assigned"))
	if tagged[1].Tag != Noun {
		t.Errorf("Tag(\"assigned\" after determiner) = %v, want %v", tagged[1].Tag, Noun)
	}
}

func TestIsNominal(t *testing.T) {
	if !Noun.IsNominal() || !ProperNoun.IsNominal() {
		t.Error("Noun and ProperNoun must be nominal")
	}
	if Verb.IsNominal() || Preposition.IsNominal() {
		t.Error("Verb and Preposition must not be nominal")
	}
}
