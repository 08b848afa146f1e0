package nlp

import (
	"time"

	"github.com/google/uuid"

	"hr-assistant-be/pkg/nlp/extract"
	"hr-assistant-be/pkg/nlp/keyword"
)

// ParsedQuery is the structured record one request's parsing produces. It
// is built, consumed and discarded inside a single request; the history
// store only ever sees a serialized snapshot.
type ParsedQuery struct {
	Keywords  []string            `json:"keywords"`
	Dates     []time.Time         `json:"dates,omitempty"`
	DateRange *extract.DateRange  `json:"dateRange,omitempty"`
	TimeRange string              `json:"timeRange,omitempty"`

	EmpCode string     `json:"empCode,omitempty"`
	EmpName string     `json:"empName,omitempty"`
	UserID  *uuid.UUID `json:"userId,omitempty"`

	ProjectName      string     `json:"projectName,omitempty"`
	ProjectID        *uuid.UUID `json:"projectId,omitempty"`
	TaskName         string     `json:"taskName,omitempty"`
	OrganizationName string     `json:"organizationName,omitempty"`

	Flags keyword.Flags `json:"flags"`
}

// HasKeyword reports whether the canonical keyword was recognized.
func (q *ParsedQuery) HasKeyword(kw string) bool {
	for _, k := range q.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// HasTemporalScope reports whether any date window was specified.
func (q *ParsedQuery) HasTemporalScope() bool {
	return len(q.Dates) > 0 || q.DateRange != nil || q.TimeRange != ""
}

// HasIdentity reports whether the query pinpoints one employee, either by
// numeric code or by a name that resolved to a user.
func (q *ParsedQuery) HasIdentity() bool {
	return q.EmpCode != "" || q.UserID != nil
}

// HasDomainReference reports whether a project, task or organization was
// named or resolved.
func (q *ParsedQuery) HasDomainReference() bool {
	return q.ProjectName != "" || q.ProjectID != nil || q.TaskName != "" || q.OrganizationName != ""
}

// DateWindow resolves the temporal scope to an inclusive [from, to] pair
// relative to the supplied clock.
func (q *ParsedQuery) DateWindow(now time.Time) (time.Time, time.Time, bool) {
	r := extract.DateResult{Dates: q.Dates, Range: q.DateRange, TimeRange: q.TimeRange}
	return r.Window(now)
}
