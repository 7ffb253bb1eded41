// Package dates owns the calendar arithmetic behind the leave intake:
// resolving relative expressions against a fixed reference day and
// completing the (start, end, day count) triple when two parts are known.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const Layout = "2006-01-02"

// Date is a timezone-free calendar day. It marshals as YYYY-MM-DD.
type Date struct {
	t time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of truncates an instant to its calendar day.
func Of(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return Of(t), nil
}

func (d Date) AddDays(n int) Date {
	return Of(d.t.AddDate(0, 0, n))
}

// DaysUntil returns the whole days from d to other (negative if other is
// earlier).
func (d Date) DaysUntil(other Date) int {
	return int(other.t.Sub(d.t).Hours() / 24)
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }
func (d Date) Time() time.Time        { return d.t }
func (d Date) Weekday() time.Weekday  { return d.t.Weekday() }

func (d Date) String() string {
	return d.t.Format(Layout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ResolveTriple completes the start/end/days triple when exactly two of
// the three are known. The policy is permissive: when both end and days
// arrive they are trusted as-is, and a lone start date defaults to a
// single day of leave.
func ResolveTriple(start, end *Date, days *int) (*Date, *Date, *int) {
	if start == nil {
		return start, end, days
	}

	switch {
	case end != nil && days != nil:
		// Both supplied: trust the extracted values, no recompute.
	case days != nil:
		e := start.AddDays(*days - 1)
		end = &e
	case end != nil:
		if end.Before(*start) {
			// An end before the start cannot yield a positive day
			// count; drop it so the caller asks again.
			end = nil
			break
		}
		n := start.DaysUntil(*end) + 1
		days = &n
	default:
		n := 1
		days = &n
		e := *start
		end = &e
	}
	return start, end, days
}

var inDaysPattern = regexp.MustCompile(`^in\s+(\d+)\s+days?$`)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Absolute layouts accepted from the extraction step besides YYYY-MM-DD.
var fallbackLayouts = []string{
	"2 Jan 2006",
	"Jan 2 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// ResolveExpression turns an already-extracted date token into a calendar
// day. Relative expressions resolve against ref only, so the result is a
// pure function of (expr, ref) regardless of when it is formatted.
func ResolveExpression(expr string, ref Date) (Date, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	if s == "" {
		return Date{}, fmt.Errorf("empty date expression")
	}

	switch s {
	case "today":
		return ref, nil
	case "tomorrow":
		return ref.AddDays(1), nil
	case "day after tomorrow":
		return ref.AddDays(2), nil
	case "yesterday":
		return ref.AddDays(-1), nil
	}

	if m := inDaysPattern.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return Date{}, fmt.Errorf("invalid day offset %q", m[1])
		}
		return ref.AddDays(n), nil
	}

	if name, ok := strings.CutPrefix(s, "next "); ok {
		if wd, known := weekdays[strings.TrimSpace(name)]; known {
			offset := (int(wd) - int(ref.Weekday()) + 7) % 7
			if offset == 0 {
				offset = 7
			}
			return ref.AddDays(offset), nil
		}
	}

	if d, err := Parse(expr); err == nil {
		return d, nil
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(expr)); err == nil {
			return Of(t), nil
		}
	}

	return Date{}, fmt.Errorf("unrecognized date expression %q", expr)
}
