package keyword

import (
	"strings"

	"hr-assistant-be/pkg/nlp/token"
)

// Flags is the battery of boolean intent signals. Flags are not mutually
// exclusive; dispatch precedence resolves conflicts.
type Flags struct {
	// attendance domain
	IsAttendanceQuery bool `json:"isAttendanceQuery"`
	InTime            bool `json:"inTime"`
	OutTime           bool `json:"outTime"`
	Late              bool `json:"late"`
	MinutesLate       bool `json:"minutesLate"`
	HoursLate         bool `json:"hoursLate"`
	AfterTenAM        bool `json:"afterTenAM"`
	OnTime            bool `json:"onTime"`
	Absent            bool `json:"absent"`
	Present           bool `json:"present"`
	AverageInTime     bool `json:"averageInTime"`
	WorkedHours       bool `json:"workedHours"`
	LeaveQuery        bool `json:"leaveQuery"`

	// employee domain
	EmployeeDetails bool `json:"employeeDetails"`

	// task / project domain
	OpenTasks            bool `json:"openTasks"`
	CompletedTasks       bool `json:"completedTasks"`
	OverdueTasks         bool `json:"overdueTasks"`
	DueDate              bool `json:"dueDate"`
	TaskStatus           bool `json:"taskStatus"`
	TaskSeverity         bool `json:"taskSeverity"`
	HoursSpent           bool `json:"hoursSpent"`
	AssignedEmployees    bool `json:"assignedEmployees"`
	ProjectStatus        bool `json:"projectStatus"`
	ProjectQuery         bool `json:"projectQuery"`
	TaskQuery            bool `json:"taskQuery"`
	OrganizationProjects bool `json:"organizationProjects"`
}

// TaskDomain reports whether any task/project flag is raised.
func (f Flags) TaskDomain() bool {
	return f.OpenTasks || f.CompletedTasks || f.OverdueTasks || f.DueDate ||
		f.TaskStatus || f.TaskSeverity || f.HoursSpent || f.AssignedEmployees ||
		f.ProjectStatus || f.ProjectQuery || f.TaskQuery || f.OrganizationProjects
}

// AttendanceDomain reports whether any attendance flag is raised.
func (f Flags) AttendanceDomain() bool {
	return f.IsAttendanceQuery || f.InTime || f.OutTime || f.Late || f.MinutesLate ||
		f.HoursLate || f.AfterTenAM || f.OnTime || f.Absent || f.Present ||
		f.AverageInTime || f.WorkedHours || f.LeaveQuery
}

// Result is the classifier output: the deduplicated keyword sequence in
// first-occurrence order plus the flag battery.
type Result struct {
	Keywords []string
	Flags    Flags
}

// Has reports whether the canonical keyword was recognized.
func (r Result) Has(kw string) bool {
	for _, k := range r.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// Classifier holds the static lookup tables. Built once at startup,
// immutable afterwards, safe for concurrent use.
type Classifier struct {
	tokens  map[string]string
	phrases []phraseRule
}

// NewClassifier returns a classifier with the default tables.
func NewClassifier() *Classifier {
	return &Classifier{
		tokens:  defaultTokenTable(),
		phrases: defaultPhraseRules(),
	}
}

// IsVocabulary reports whether the word belongs to the keyword vocabulary
// (either as a raw token or a canonical keyword). The name extractors use
// this as their stop predicate.
func (c *Classifier) IsVocabulary(word string) bool {
	if _, ok := c.tokens[word]; ok {
		return true
	}
	for _, kw := range c.tokens {
		if kw == word {
			return true
		}
	}
	return false
}

// Classify runs the token table over the stream and the phrase rules over
// the lowercased full query. Deterministic: same input, same Result.
func (c *Classifier) Classify(text string, tokens []token.Token) Result {
	var res Result
	seen := make(map[string]struct{})
	add := func(kw string) {
		if _, dup := seen[kw]; dup {
			return
		}
		seen[kw] = struct{}{}
		res.Keywords = append(res.Keywords, kw)
	}

	for _, t := range tokens {
		if kw, ok := c.tokens[t.Lower]; ok {
			add(kw)
			c.raiseTokenFlag(kw, &res.Flags)
		}
	}

	lower := strings.ToLower(text)
	for _, rule := range c.phrases {
		if !strings.Contains(lower, rule.phrase) {
			continue
		}
		if rule.keyword != "" {
			add(rule.keyword)
		}
		if rule.apply != nil {
			rule.apply(&res.Flags)
		}
	}

	// keyword pairs that only mean something in combination
	if res.Flags.AverageInTime || (res.Has(KwAverage) && (res.Has(KwInTime) || res.Has(KwAttendance))) {
		res.Flags.AverageInTime = true
	}
	if res.Has(KwOrganization) && res.Has(KwProject) {
		res.Flags.OrganizationProjects = true
	}
	if res.Has(KwStatus) && res.Has(KwProject) && !res.Has(KwTask) {
		res.Flags.ProjectStatus = true
	}

	return res
}

func (c *Classifier) raiseTokenFlag(kw string, f *Flags) {
	switch kw {
	case KwInTime:
		f.InTime = true
		f.IsAttendanceQuery = true
	case KwOutTime:
		f.OutTime = true
		f.IsAttendanceQuery = true
	case KwLate:
		f.Late = true
		f.IsAttendanceQuery = true
	case KwAbsent:
		f.Absent = true
		f.IsAttendanceQuery = true
	case KwPresent:
		f.Present = true
		f.IsAttendanceQuery = true
	case KwAttendance:
		f.IsAttendanceQuery = true
	case KwLeave:
		f.LeaveQuery = true
		f.IsAttendanceQuery = true
	case KwHours:
		f.WorkedHours = true
	case KwDue:
		f.DueDate = true
	case KwOpen:
		f.OpenTasks = true
	case KwCompleted:
		f.CompletedTasks = true
	case KwOverdue:
		f.OverdueTasks = true
	case KwStatus:
		f.TaskStatus = true
	case KwSeverity:
		f.TaskSeverity = true
	case KwSpent:
		f.HoursSpent = true
	case KwAssigned:
		f.AssignedEmployees = true
	case KwProject:
		f.ProjectQuery = true
	case KwTask:
		f.TaskQuery = true
	case KwEmployee, KwInfo:
		// meaningful only in combination; phrase rules raise EmployeeDetails
	}
}
