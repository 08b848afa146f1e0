package extract

import (
	"regexp"
	"strings"
)

// DomainNames holds the business entities a query refers to by anchor
// phrase ("project Atlas", "task Payment Gateway", "organization Initech").
type DomainNames struct {
	Project      string
	Task         string
	Organization string
}

var (
	projectAnchor = regexp.MustCompile(`(?i)\bprojects?\s+(?:named\s+|called\s+)?([A-Za-z0-9][A-Za-z0-9 _-]*)`)
	taskAnchor    = regexp.MustCompile(`(?i)\btasks?\s+(?:named\s+|called\s+)?([A-Za-z0-9][A-Za-z0-9 _-]*)`)
	orgAnchor     = regexp.MustCompile(`(?i)\b(?:organizations?|organisations?|org|company)\s+(?:named\s+|called\s+)?([A-Za-z0-9][A-Za-z0-9 _-]*)`)
)

// domainBoundary words terminate a captured name. Go's regexp has no
// lookahead, so the anchor patterns capture greedily and the capture is cut
// at the first boundary word instead.
var domainBoundary = map[string]struct{}{
	"project": {}, "projects": {}, "task": {}, "tasks": {},
	"organization": {}, "organizations": {}, "organisation": {}, "organisations": {},
	"org": {}, "company": {},
	"status": {}, "due": {}, "deadline": {}, "severity": {}, "priority": {},
	"open": {}, "completed": {}, "overdue": {}, "pending": {}, "assigned": {},
	"hours": {}, "spent": {}, "employees": {}, "employee": {},
	"from": {}, "to": {}, "on": {}, "in": {}, "by": {}, "for": {}, "of": {},
	"under": {}, "with": {}, "at": {}, "about": {},
	"and": {}, "or": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"this": {}, "last": {}, "today": {}, "yesterday": {}, "week": {}, "month": {},
}

// ExtractDomainNames runs the three anchored extractors and claims every
// captured span. Each extractor is independent; a query may name a project,
// a task and an organization at once.
func ExtractDomainNames(text string, claims *ClaimSet) DomainNames {
	var d DomainNames
	d.Project = anchoredName(projectAnchor, text, claims)
	d.Task = anchoredName(taskAnchor, text, claims)
	d.Organization = anchoredName(orgAnchor, text, claims)
	return d
}

func anchoredName(anchor *regexp.Regexp, text string, claims *ClaimSet) string {
	m := anchor.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	name := cutAtBoundary(m[1])
	if name == "" {
		return ""
	}
	claims.Claim(name)
	return name
}

func cutAtBoundary(capture string) string {
	var kept []string
	for _, w := range strings.Fields(capture) {
		if _, stop := domainBoundary[strings.ToLower(w)]; stop {
			break
		}
		if allDigits(w) {
			break
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}
