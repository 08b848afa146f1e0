package resolver

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"
	"hr-assistant-be/internal/repository/unitofwork"
	"hr-assistant-be/pkg/nlp"
)

// attendanceResolver answers attendance questions from the attendance
// store. The generic variant summarizes a day or window across everyone;
// the per-employee variant narrows to one person.
type attendanceResolver struct {
	uowFactory unitofwork.RepositoryFactory
	now        func() time.Time
}

func NewAttendanceResolver(uowFactory unitofwork.RepositoryFactory, now func() time.Time) AttendanceResolver {
	if now == nil {
		now = time.Now
	}
	return &attendanceResolver{uowFactory: uowFactory, now: now}
}

func (r *attendanceResolver) Resolve(ctx context.Context, raw string, q *nlp.ParsedQuery) (Result, error) {
	from, to, ok := q.DateWindow(r.now())
	if !ok {
		// no temporal scope means today
		today := dateOnly(r.now())
		from, to = today, today
	}

	uow := r.uowFactory.NewUnitOfWork(ctx)
	records, err := uow.AttendanceRepository().FindAll(ctx,
		specification.DateBetween{From: from, To: to},
		specification.OrderBy{Field: "date", Desc: false},
	)
	if err != nil {
		return Result{}, fmt.Errorf("attendance lookup: %w", err)
	}
	if len(records) == 0 {
		return Failure(fmt.Sprintf("No attendance records found between %s and %s.", fmtDate(from), fmtDate(to))), nil
	}

	names, err := r.userNames(ctx, uow, records)
	if err != nil {
		return Result{}, err
	}

	switch {
	case q.Flags.AverageInTime:
		return r.averageInTime(records, from, to), nil
	case q.Flags.Absent:
		return listByPredicate(records, names, "absent", func(rec *entity.AttendanceRecord) bool {
			return !rec.Present && !rec.OnLeave
		}), nil
	case q.Flags.LeaveQuery:
		return listByPredicate(records, names, "on leave", func(rec *entity.AttendanceRecord) bool {
			return rec.OnLeave
		}), nil
	case q.Flags.Late, q.Flags.AfterTenAM, q.Flags.MinutesLate, q.Flags.HoursLate:
		return listByPredicate(records, names, "late", func(rec *entity.AttendanceRecord) bool {
			return rec.Late
		}), nil
	case q.Flags.Present:
		return listByPredicate(records, names, "present", func(rec *entity.AttendanceRecord) bool {
			return rec.Present
		}), nil
	}

	present, late, absent := 0, 0, 0
	for _, rec := range records {
		switch {
		case rec.Present:
			present++
			if rec.Late {
				late++
			}
		case !rec.OnLeave:
			absent++
		}
	}
	msg := fmt.Sprintf("Between %s and %s: %d present (%d late), %d absent.",
		fmtDate(from), fmtDate(to), present, late, absent)
	return Result{Success: true, Message: msg, Data: records}, nil
}

func (r *attendanceResolver) ResolveForEmployee(ctx context.Context, raw string, q *nlp.ParsedQuery) (Result, error) {
	uow := r.uowFactory.NewUnitOfWork(ctx)

	user, err := findQueriedUser(ctx, uow, q)
	if err != nil {
		return Result{}, err
	}
	if user == nil {
		return Failure(fmt.Sprintf("Could not find an employee matching %q.", employeeRef(q))), nil
	}

	from, to, ok := q.DateWindow(r.now())
	if !ok {
		today := dateOnly(r.now())
		from, to = today, today
	}

	records, err := uow.AttendanceRepository().FindAll(ctx,
		specification.ByUserID{UserID: user.Id},
		specification.DateBetween{From: from, To: to},
		specification.OrderBy{Field: "date", Desc: false},
	)
	if err != nil {
		return Result{}, fmt.Errorf("attendance lookup: %w", err)
	}
	if len(records) == 0 {
		return Failure(fmt.Sprintf("No attendance records found for %s between %s and %s.",
			user.FullName, fmtDate(from), fmtDate(to))), nil
	}

	switch {
	case q.Flags.Late, q.Flags.MinutesLate, q.Flags.HoursLate, q.Flags.AfterTenAM:
		return employeeLateness(user, records), nil
	case q.Flags.WorkedHours:
		var total float64
		for _, rec := range records {
			total += rec.WorkedHours
		}
		msg := fmt.Sprintf("%s worked %.1f hours between %s and %s.",
			user.FullName, total, fmtDate(from), fmtDate(to))
		return Result{Success: true, Message: msg, Data: records}, nil
	case q.Flags.InTime, q.Flags.OutTime:
		return employeeTimes(user, records, q.Flags.OutTime), nil
	}

	present, late := 0, 0
	for _, rec := range records {
		if rec.Present {
			present++
		}
		if rec.Late {
			late++
		}
	}
	msg := fmt.Sprintf("%s was present on %d of %d days (%d late) between %s and %s.",
		user.FullName, present, len(records), late, fmtDate(from), fmtDate(to))
	return Result{Success: true, Message: msg, Data: records}, nil
}

func (r *attendanceResolver) averageInTime(records []*entity.AttendanceRecord, from, to time.Time) Result {
	var total time.Duration
	var counted int
	for _, rec := range records {
		if rec.InTime == nil {
			continue
		}
		in := *rec.InTime
		total += time.Duration(in.Hour())*time.Hour + time.Duration(in.Minute())*time.Minute
		counted++
	}
	if counted == 0 {
		return Failure(fmt.Sprintf("No clock-in times recorded between %s and %s.", fmtDate(from), fmtDate(to)))
	}
	avg := total / time.Duration(counted)
	msg := fmt.Sprintf("Average clock-in time between %s and %s is %02d:%02d.",
		fmtDate(from), fmtDate(to), int(avg.Hours()), int(avg.Minutes())%60)
	return Result{Success: true, Message: msg}
}

func (r *attendanceResolver) userNames(ctx context.Context, uow unitofwork.UnitOfWork, records []*entity.AttendanceRecord) (map[uuid.UUID]string, error) {
	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("user lookup: %w", err)
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.Id] = u.FullName
	}
	return names, nil
}

func listByPredicate(records []*entity.AttendanceRecord, names map[uuid.UUID]string, label string, match func(*entity.AttendanceRecord) bool) Result {
	seen := make(map[uuid.UUID]struct{})
	var matched []string
	for _, rec := range records {
		if !match(rec) {
			continue
		}
		if _, dup := seen[rec.UserId]; dup {
			continue
		}
		seen[rec.UserId] = struct{}{}
		if name, ok := names[rec.UserId]; ok {
			matched = append(matched, name)
		}
	}
	if len(matched) == 0 {
		return Result{Success: true, Message: fmt.Sprintf("Nobody was %s in that period.", label)}
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("%s in that period: %s.", capitalize(label), strings.Join(matched, ", ")),
		Data:    matched,
	}
}

func employeeLateness(user *entity.User, records []*entity.AttendanceRecord) Result {
	var lateDays, lateMinutes int
	for _, rec := range records {
		if rec.Late {
			lateDays++
			lateMinutes += rec.MinutesLate
		}
	}
	if lateDays == 0 {
		return Result{Success: true, Message: fmt.Sprintf("%s was not late in that period.", user.FullName)}
	}
	if len(records) == 1 {
		return Result{
			Success: true,
			Message: fmt.Sprintf("%s was %d minutes late on %s.", user.FullName, lateMinutes, fmtDate(records[0].Date)),
			Data:    records,
		}
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("%s was late on %d days, %d minutes in total.", user.FullName, lateDays, lateMinutes),
		Data:    records,
	}
}

func employeeTimes(user *entity.User, records []*entity.AttendanceRecord, out bool) Result {
	var parts []string
	for _, rec := range records {
		t := rec.InTime
		if out {
			t = rec.OutTime
		}
		if t == nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s at %s", fmtDate(rec.Date), t.Format("15:04")))
	}
	kind := "clocked in"
	if out {
		kind = "clocked out"
	}
	if len(parts) == 0 {
		return Failure(fmt.Sprintf("%s has no recorded times in that period.", user.FullName))
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("%s %s on %s.", user.FullName, kind, strings.Join(parts, "; ")),
		Data:    records,
	}
}

// findQueriedUser resolves the employee a query points at, preferring the
// already-resolved id, then the badge code, then the raw name.
func findQueriedUser(ctx context.Context, uow unitofwork.UnitOfWork, q *nlp.ParsedQuery) (*entity.User, error) {
	repo := uow.UserRepository()
	switch {
	case q.UserID != nil:
		return repo.FindOne(ctx, specification.ByID{ID: *q.UserID})
	case q.EmpCode != "":
		return repo.FindOne(ctx, specification.Filter("code", q.EmpCode))
	case q.EmpName != "":
		return repo.FindOne(ctx, specification.NameEqualFold{Field: "full_name", Name: q.EmpName})
	}
	return nil, nil
}

func employeeRef(q *nlp.ParsedQuery) string {
	if q.EmpName != "" {
		return q.EmpName
	}
	return q.EmpCode
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func fmtDate(t time.Time) string {
	return t.Format("2 January 2006")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
