package kdate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver converts Korean relative and absolute date/time expressions into
// concrete timestamps. Every method takes the reference time explicitly so
// results are a pure function of (text, now).
//
// Timestamps are always built with time.Date from local components in the
// resolver's zone. Round-tripping through UTC strings shifts the calendar
// date backward for zones ahead of UTC, which silently breaks "tomorrow".
type Resolver struct {
	location *time.Location
}

// DefaultTimezone is used when the caller does not configure one.
const DefaultTimezone = "Asia/Seoul"

// DefaultStartHour is assumed when an expression carries a date but no time.
const DefaultStartHour = 10

// NewResolver creates a resolver for the given IANA timezone string.
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

var weekdayByName = map[string]time.Weekday{
	"월": time.Monday,
	"화": time.Tuesday,
	"수": time.Wednesday,
	"목": time.Thursday,
	"금": time.Friday,
	"토": time.Saturday,
	"일": time.Sunday,
}

var (
	nextWeekdayRE = regexp.MustCompile(`다음\s*주\s*([월화수목금토일])요일`)
	monthDayRE    = regexp.MustCompile(`(\d{1,2})월\s*(\d{1,2})일`)
	slashDateRE   = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})\b`)
	// Go regexp has no lookbehind, so the digit guard is a leading group:
	// "16일" must not read as the weekday 일 (Sunday).
	thisWeekdayRE = regexp.MustCompile(`(?:^|[^0-9])(?:이번\s*주\s*)?([월화수목금토일])요일`)
	daysLaterRE   = regexp.MustCompile(`(\d+)일\s*(?:후|뒤)`)
	nextWeekRE    = regexp.MustCompile(`다음\s*주`)

	clockRE = regexp.MustCompile(`(오전|오후|아침|저녁|밤|낮)?\s*(\d{1,2})시\s*(?:(\d{1,2})분|(반))?`)
	rangeRE = regexp.MustCompile(`(\d{1,2})시\s*부터\s*(\d{1,2})시\s*까지`)
)

// ResolveDate extracts a calendar date (midnight, resolver zone) from text.
// Patterns are tried in a fixed priority order; the explicit month/day form
// is checked before weekday names so a numeric day suffix never reads as a
// weekday. Returns false when nothing matches.
func (r *Resolver) ResolveDate(text string, now time.Time) (time.Time, bool) {
	now = now.In(r.location)

	// 1. Relative day words. 모레 before 내일 so 내일모레 counts as +2.
	switch {
	case strings.Contains(text, "모레"):
		return r.startOfDay(now.AddDate(0, 0, 2)), true
	case strings.Contains(text, "내일"):
		return r.startOfDay(now.AddDate(0, 0, 1)), true
	case strings.Contains(text, "오늘"):
		return r.startOfDay(now), true
	}

	// 2. Next week + weekday.
	if m := nextWeekdayRE.FindStringSubmatch(text); m != nil {
		base := r.nextMonday(now)
		offset := (int(weekdayByName[m[1]]) - int(time.Monday) + 7) % 7
		return base.AddDate(0, 0, offset), true
	}

	// 3. Explicit month/day, before any weekday reading.
	if d, ok := r.resolveMonthDay(text, now); ok {
		return d, true
	}

	// 4. This-week or bare weekday.
	if m := thisWeekdayRE.FindStringSubmatch(text); m != nil {
		target := weekdayByName[m[1]]
		daysUntil := (int(target) - int(now.Weekday()) + 7) % 7
		return r.startOfDay(now.AddDate(0, 0, daysUntil)), true
	}

	// 5. N days later.
	if m := daysLaterRE.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return r.startOfDay(now.AddDate(0, 0, n)), true
		}
	}

	// 6. Bare "next week" resolves to next Monday.
	if nextWeekRE.MatchString(text) {
		return r.nextMonday(now), true
	}

	return time.Time{}, false
}

// resolveMonthDay handles "2월 16일" and "2/16". A month/day already past
// relative to now rolls the year forward by one.
func (r *Resolver) resolveMonthDay(text string, now time.Time) (time.Time, bool) {
	m := monthDayRE.FindStringSubmatch(text)
	if m == nil {
		m = slashDateRE.FindStringSubmatch(text)
	}
	if m == nil {
		return time.Time{}, false
	}

	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}

	d := time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, r.location)
	if d.Before(r.startOfDay(now)) {
		d = d.AddDate(1, 0, 0)
	}
	return d, true
}

// ResolveDateTime combines ResolveDate with time-of-day recognition.
// Missing date defaults to now's date; missing time defaults to
// DefaultStartHour. end is non-nil only for an explicit "H시부터 H시까지"
// range. ok reports whether any date or time expression matched at all.
func (r *Resolver) ResolveDateTime(text string, now time.Time) (start time.Time, end *time.Time, ok bool) {
	now = now.In(r.location)

	date, dateOK := r.ResolveDate(text, now)
	if !dateOK {
		date = r.startOfDay(now)
	}

	hour, minute, endHour, timeOK := resolveTime(text)
	if !timeOK {
		hour, minute = DefaultStartHour, 0
	}

	start = time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, r.location)
	if endHour != nil {
		e := time.Date(date.Year(), date.Month(), date.Day(), *endHour, 0, 0, 0, r.location)
		end = &e
	}
	return start, end, dateOK || timeOK
}

// HasTime reports whether text contains any recognizable time-of-day
// expression. Used by the lighter-weight full-text event fallback.
func (r *Resolver) HasTime(text string) bool {
	_, _, _, ok := resolveTime(text)
	return ok
}

// resolveTime recognizes a time of day. Ranges are checked first so the
// explicit end hour survives; then the clock pattern; then time idioms.
func resolveTime(text string) (hour, minute int, endHour *int, ok bool) {
	if m := rangeRE.FindStringSubmatch(text); m != nil {
		startH, _ := strconv.Atoi(m[1])
		endH, _ := strconv.Atoi(m[2])
		if startH >= 1 && startH <= 6 {
			startH += 12
		}
		// An end hour up to 6 o'clock is afternoon in practice.
		if endH <= 6 {
			endH += 12
		}
		return startH, 0, &endH, true
	}

	if m := clockRE.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[2])
		if h <= 24 {
			h = normalizeHour(h, m[1])
			minute := 0
			if m[3] != "" {
				minute, _ = strconv.Atoi(m[3])
			} else if m[4] != "" { // 반 = half past
				minute = 30
			}
			if minute >= 0 && minute < 60 {
				return h, minute, nil, true
			}
		}
	}

	switch {
	case strings.Contains(text, "점심"):
		return 12, 0, nil, true
	case strings.Contains(text, "아침"):
		return 9, 0, nil, true
	case strings.Contains(text, "저녁"):
		return 18, 0, nil, true
	}

	return 0, 0, nil, false
}

// normalizeHour applies AM/PM markers. Without a marker, 1-6 o'clock is
// taken as afternoon; 12 AM maps to hour 0.
func normalizeHour(h int, period string) int {
	switch period {
	case "오전", "아침":
		if h == 12 {
			return 0
		}
		return h
	case "오후", "저녁", "밤", "낮":
		if h < 12 {
			return h + 12
		}
		return h
	default:
		if h >= 1 && h <= 6 {
			return h + 12
		}
		return h
	}
}

// startOfDay returns midnight of t's calendar day in the resolver's zone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// nextMonday returns the Monday of the following week.
func (r *Resolver) nextMonday(now time.Time) time.Time {
	daysUntil := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if daysUntil == 0 {
		daysUntil = 7
	}
	return r.startOfDay(now.AddDate(0, 0, daysUntil))
}

// Location exposes the resolver's zone for callers that need to interpret
// a wall clock in the same frame.
func (r *Resolver) Location() *time.Location {
	return r.location
}
