package keyword

// Canonical intent keywords. Many raw tokens map onto one of these.
const (
	KwInTime       = "intime"
	KwOutTime      = "outtime"
	KwLate         = "late"
	KwAbsent       = "absent"
	KwPresent      = "present"
	KwAttendance   = "attendance"
	KwAverage      = "average"
	KwHours        = "hours"
	KwDue          = "due"
	KwOpen         = "open"
	KwCompleted    = "completed"
	KwOverdue      = "overdue"
	KwStatus       = "status"
	KwSeverity     = "severity"
	KwSpent        = "spent"
	KwAssigned     = "assigned"
	KwProject      = "project"
	KwTask         = "task"
	KwOrganization = "organization"
	KwInfo         = "info"
	KwEmployee     = "employee"
	KwLeave        = "leave"
	KwAfterTen     = "after10am"
)

// defaultTokenTable maps single raw tokens to canonical keywords,
// many-to-one. Loaded once at startup and treated as immutable.
func defaultTokenTable() map[string]string {
	return map[string]string{
		"clockin": KwInTime, "clocked": KwInTime, "intime": KwInTime,
		"login": KwInTime, "signin": KwInTime, "punchin": KwInTime, "checkin": KwInTime,

		"clockout": KwOutTime, "outtime": KwOutTime, "logout": KwOutTime,
		"signout": KwOutTime, "punchout": KwOutTime, "checkout": KwOutTime,

		"late": KwLate, "delayed": KwLate,
		"absent": KwAbsent, "absence": KwAbsent,
		"present": KwPresent, "attended": KwPresent,
		"attendance": KwAttendance,
		"average":    KwAverage, "avg": KwAverage,
		"hours": KwHours, "hrs": KwHours, "worked": KwHours,

		"due": KwDue, "deadline": KwDue,
		"open": KwOpen, "pending": KwOpen, "ongoing": KwOpen, "unfinished": KwOpen,
		"completed": KwCompleted, "finished": KwCompleted, "done": KwCompleted, "closed": KwCompleted,
		"overdue":  KwOverdue,
		"status":   KwStatus,
		"severity": KwSeverity, "priority": KwSeverity,
		"spent":    KwSpent,
		"assigned": KwAssigned, "assignee": KwAssigned,

		"project": KwProject, "projects": KwProject,
		"task": KwTask, "tasks": KwTask,
		"organization": KwOrganization, "organizations": KwOrganization,
		"organisation": KwOrganization, "organisations": KwOrganization,
		"org": KwOrganization, "company": KwOrganization,

		"info": KwInfo, "information": KwInfo, "detail": KwInfo, "details": KwInfo, "profile": KwInfo,
		"employee": KwEmployee, "employees": KwEmployee, "staff": KwEmployee, "worker": KwEmployee,
		"leave": KwLeave, "leaves": KwLeave, "holiday": KwLeave,
	}
}

// phraseRule is a multi-word cue evaluated by substring containment
// against the lowercased full query. A rule may set flags and may inject a
// keyword that no single token would have produced.
type phraseRule struct {
	phrase  string
	keyword string // optional keyword to inject
	apply   func(*Flags)
}

func defaultPhraseRules() []phraseRule {
	return []phraseRule{
		{phrase: "after 10", keyword: KwAfterTen, apply: func(f *Flags) { f.AfterTenAM = true }},
		{phrase: "late login", keyword: KwAfterTen, apply: func(f *Flags) { f.AfterTenAM = true; f.Late = true }},
		{phrase: "minutes late", apply: func(f *Flags) { f.MinutesLate = true; f.Late = true }},
		{phrase: "hours late", apply: func(f *Flags) { f.HoursLate = true; f.Late = true }},
		{phrase: "on time", apply: func(f *Flags) { f.OnTime = true }},
		{phrase: "on leave", apply: func(f *Flags) { f.LeaveQuery = true }},
		{phrase: "average in", apply: func(f *Flags) { f.AverageInTime = true }},
		{phrase: "how many hours", apply: func(f *Flags) { f.WorkedHours = true }},
		{phrase: "worked hours", apply: func(f *Flags) { f.WorkedHours = true }},
		{phrase: "due date", apply: func(f *Flags) { f.DueDate = true }},
		{phrase: "hours spent", apply: func(f *Flags) { f.HoursSpent = true }},
		{phrase: "time spent", apply: func(f *Flags) { f.HoursSpent = true }},
		{phrase: "assigned to", apply: func(f *Flags) { f.AssignedEmployees = true }},
		{phrase: "working on", apply: func(f *Flags) { f.AssignedEmployees = true }},
		{phrase: "employee detail", apply: func(f *Flags) { f.EmployeeDetails = true }},
		{phrase: "employee info", apply: func(f *Flags) { f.EmployeeDetails = true }},
		{phrase: "info of", apply: func(f *Flags) { f.EmployeeDetails = true }},
		{phrase: "details of", apply: func(f *Flags) { f.EmployeeDetails = true }},
	}
}
