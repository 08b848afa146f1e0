package nlp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hr-assistant-be/pkg/nlp/extract"
	"hr-assistant-be/pkg/nlp/keyword"
	"hr-assistant-be/pkg/nlp/token"
)

// Identity is the canonical result of a user lookup.
type Identity struct {
	ID   uuid.UUID
	Code string
	Name string
}

// IdentityLookup is the user collaborator the normalizer needs. Matches
// are exact and case-insensitive; a miss returns (nil, nil).
type IdentityLookup interface {
	FindByName(ctx context.Context, name string) (*Identity, error)
	FindByCode(ctx context.Context, code string) (*Identity, error)
}

// Pipeline assembles tokenizer, tagger, extractors and classifier output
// into one ParsedQuery. It holds only immutable tables and is safe to use
// from concurrent requests.
type Pipeline struct {
	tagger     *token.Tagger
	classifier *keyword.Classifier
	identities IdentityLookup
	now        func() time.Time
}

// NewPipeline wires the parsing pipeline. now may be nil, defaulting to
// time.Now; tests pin it.
func NewPipeline(identities IdentityLookup, now func() time.Time) *Pipeline {
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		tagger:     token.NewTagger(),
		classifier: keyword.NewClassifier(),
		identities: identities,
		now:        now,
	}
}

// Classifier exposes the immutable keyword tables, for callers that need
// the vocabulary predicate.
func (p *Pipeline) Classifier() *keyword.Classifier { return p.classifier }

// Parse runs the full extraction pipeline over one query. Extractor misses
// are not errors; the only error path is a failing identity lookup, which
// is a collaborator failure the caller must surface.
func (p *Pipeline) Parse(ctx context.Context, text string) (*ParsedQuery, error) {
	now := p.now()
	tokens := token.Tokenize(text)
	tagged := p.tagger.Tag(tokens)

	// Extraction order matters: domain names and dates claim their spans
	// before the code and person-name extractors walk the stream.
	claims := extract.NewClaimSet()
	domains := extract.ExtractDomainNames(text, claims)
	dates := extract.ExtractDates(text, now, claims)
	code := extract.ExtractEmployeeCode(tokens, claims)
	name := extract.ExtractName(tagged, text, claims, p.classifier.IsVocabulary)

	classified := p.classifier.Classify(text, tokens)

	q := &ParsedQuery{
		Keywords:         classified.Keywords,
		Dates:            dates.Dates,
		DateRange:        dates.Range,
		TimeRange:        dates.TimeRange,
		EmpCode:          code,
		EmpName:          name,
		ProjectName:      domains.Project,
		TaskName:         domains.Task,
		OrganizationName: domains.Organization,
		Flags:            classified.Flags,
	}
	if q.Keywords == nil {
		q.Keywords = []string{}
	}

	if err := p.resolveIdentity(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// resolveIdentity turns an extracted name or code into a canonical user
// identity. A lookup miss is not an error: the free-text name stays as-is
// and the resolver decides how to report an unknown employee.
func (p *Pipeline) resolveIdentity(ctx context.Context, q *ParsedQuery) error {
	if q.EmpName != "" {
		id, err := p.identities.FindByName(ctx, q.EmpName)
		if err != nil {
			return fmt.Errorf("identity lookup for %q: %w", q.EmpName, err)
		}
		if id != nil {
			q.EmpName = id.Name
			userID := id.ID
			q.UserID = &userID
			if q.EmpCode == "" {
				q.EmpCode = id.Code
			}
		}
		return nil
	}

	if q.EmpCode != "" {
		id, err := p.identities.FindByCode(ctx, q.EmpCode)
		if err != nil {
			return fmt.Errorf("identity lookup for code %q: %w", q.EmpCode, err)
		}
		if id != nil {
			q.EmpName = id.Name
			userID := id.ID
			q.UserID = &userID
		}
	}
	return nil
}
