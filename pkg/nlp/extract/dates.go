package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateRange is an inclusive calendar window.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DateResult carries whatever temporal scope the query specified. At most
// one of Dates, Range and TimeRange is populated; the others stay zero.
type DateResult struct {
	Dates     []time.Time
	Range     *DateRange
	TimeRange string // "this week" | "last week" | "yesterday" | "last month"
}

// Relative-period tags.
const (
	PeriodThisWeek  = "this week"
	PeriodLastWeek  = "last week"
	PeriodYesterday = "yesterday"
	PeriodLastMonth = "last month"
)

var monthNumbers = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var weekdayNumbers = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

const (
	monthAlt   = `january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec`
	weekdayAlt = `sunday|monday|tuesday|wednesday|thursday|friday|saturday`
	// one absolute date in any supported format
	dateAlt = `\d{1,2}-\d{1,2}-\d{4}|\d{4}-\d{1,2}-\d{1,2}|\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?(?:` + monthAlt + `)(?:\s+\d{4})?`
)

var (
	rangePattern    = regexp.MustCompile(`(?i)\bfrom\s+(` + dateAlt + `)\s+(?:to|till|until)\s+(` + dateAlt + `)`)
	dmyPattern      = regexp.MustCompile(`\b(\d{1,2})-(\d{1,2})-(\d{4})\b`)
	ymdPattern      = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
	ordinalPattern  = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthAlt + `)(?:\s+(\d{4}))?\b`)
	modifiedWeekday = regexp.MustCompile(`(?i)\b(this|last)\s+(` + weekdayAlt + `)\b`)
	bareWeekday     = regexp.MustCompile(`(?i)\b(` + weekdayAlt + `)\b`)
	relativePeriod  = regexp.MustCompile(`(?i)\b(this\s+week|last\s+week|yesterday|last\s+month)\b`)
)

// ExtractDates pulls the temporal scope out of the query, in priority
// order: explicit range, absolute dates, relative period, modified weekday
// ("this friday" / "last friday"), then a bare weekday. The first category
// that matches wins; nothing else fires for the same query.
//
// All resolution relative to "now" is done against the supplied clock so
// tests can pin it. Every matched span is claimed so the code and name
// extractors skip its tokens.
func ExtractDates(text string, now time.Time, claims *ClaimSet) DateResult {
	today := truncate(now)

	// (a) explicit "from X to Y" range
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		start, okS := parseAbsolute(m[1], now)
		end, okE := parseAbsolute(m[2], now)
		if okS && okE {
			if end.Before(start) {
				start, end = end, start
			}
			claims.Claim(m[0])
			return DateResult{Range: &DateRange{Start: start, End: end}}
		}
	}

	// (b) single absolute dates, every occurrence, stream order
	var dates []time.Time
	for _, p := range []*regexp.Regexp{dmyPattern, ymdPattern, ordinalPattern} {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if d, ok := parseAbsolute(m[0], now); ok {
				dates = append(dates, d)
				claims.Claim(m[0])
			}
		}
	}
	if len(dates) > 0 {
		return DateResult{Dates: dates}
	}

	// relative period tag ("last week" must win over the bare-weekday rule)
	if m := relativePeriod.FindStringSubmatch(text); m != nil {
		claims.Claim(m[0])
		return DateResult{TimeRange: normalizePeriod(m[1])}
	}

	// (c) "this <day>" / "last <day>"
	if m := modifiedWeekday.FindStringSubmatch(text); m != nil {
		wd := weekdayNumbers[strings.ToLower(m[2])]
		this := nextOnOrAfter(today, wd)
		claims.Claim(m[0])
		if strings.EqualFold(m[1], "last") {
			return DateResult{Dates: []time.Time{this.AddDate(0, 0, -7)}}
		}
		return DateResult{Dates: []time.Time{this}}
	}

	// (d) bare weekday resolves to the next occurrence strictly after today
	if m := bareWeekday.FindStringSubmatch(text); m != nil {
		wd := weekdayNumbers[strings.ToLower(m[1])]
		claims.Claim(m[0])
		return DateResult{Dates: []time.Time{nextOnOrAfter(today.AddDate(0, 0, 1), wd)}}
	}

	return DateResult{}
}

// Window converts the extracted scope into an inclusive [from, to] pair.
// ok is false when the query carried no temporal scope at all.
func (r DateResult) Window(now time.Time) (from, to time.Time, ok bool) {
	today := truncate(now)
	switch {
	case r.Range != nil:
		return r.Range.Start, r.Range.End, true
	case len(r.Dates) > 0:
		from, to = r.Dates[0], r.Dates[0]
		for _, d := range r.Dates[1:] {
			if d.Before(from) {
				from = d
			}
			if d.After(to) {
				to = d
			}
		}
		return from, to, true
	case r.TimeRange == PeriodYesterday:
		y := today.AddDate(0, 0, -1)
		return y, y, true
	case r.TimeRange == PeriodThisWeek:
		start := startOfWeek(today)
		return start, start.AddDate(0, 0, 6), true
	case r.TimeRange == PeriodLastWeek:
		start := startOfWeek(today).AddDate(0, 0, -7)
		return start, start.AddDate(0, 0, 6), true
	case r.TimeRange == PeriodLastMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).AddDate(0, -1, 0)
		return first, first.AddDate(0, 1, -1), true
	}
	return time.Time{}, time.Time{}, false
}

// Empty reports that no temporal scope was found.
func (r DateResult) Empty() bool {
	return len(r.Dates) == 0 && r.Range == nil && r.TimeRange == ""
}

func parseAbsolute(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)

	if m := dmyPattern.FindStringSubmatch(s); m != nil && m[0] == s {
		return makeDate(m[3], m[2], m[1], now)
	}
	if m := ymdPattern.FindStringSubmatch(s); m != nil && m[0] == s {
		return makeDate(m[1], m[2], m[3], now)
	}
	if m := ordinalPattern.FindStringSubmatch(s); m != nil && m[0] == s {
		day, _ := strconv.Atoi(m[1])
		month, ok := monthNumbers[strings.ToLower(m[2])]
		if !ok {
			return time.Time{}, false
		}
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		return validDate(year, month, day, now.Location())
	}
	return time.Time{}, false
}

func makeDate(ys, ms, ds string, now time.Time) (time.Time, bool) {
	year, _ := strconv.Atoi(ys)
	month, _ := strconv.Atoi(ms)
	day, _ := strconv.Atoi(ds)
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	return validDate(year, time.Month(month), day, now.Location())
}

func validDate(year int, month time.Month, day int, loc *time.Location) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, loc)
	// reject normalized overflow such as 31 February
	if d.Day() != day || d.Month() != month {
		return time.Time{}, false
	}
	return d, true
}

func nextOnOrAfter(from time.Time, wd time.Weekday) time.Time {
	diff := (int(wd) - int(from.Weekday()) + 7) % 7
	return from.AddDate(0, 0, diff)
}

func startOfWeek(day time.Time) time.Time {
	// weeks start on Monday
	diff := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -diff)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func normalizePeriod(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
