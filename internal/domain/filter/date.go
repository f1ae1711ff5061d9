package filter

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the calendar-day format accepted for date bounds.
const DayLayout = "2006-01-02"

type dateRangePredicate[T any] struct {
	from  *time.Time // start of the from day
	until *time.Time // start of the day after the to day, exclusive
	field func(T) *time.Time
}

// DateRange keeps items whose field falls between the calendar days of from and to,
// both days included. Bounds are interpreted in their own location.
// Items without a value for field are excluded. With both bounds nil it is inactive.
func DateRange[T any](from, to *time.Time, field func(T) *time.Time) Predicate[T] {
	p := dateRangePredicate[T]{field: field}
	if from != nil {
		start := startOfDay(*from)
		p.from = &start
	}
	if to != nil {
		next := startOfDay(*to).AddDate(0, 0, 1)
		p.until = &next
	}
	return p
}

func (p dateRangePredicate[T]) Active() bool {
	return p.from != nil || p.until != nil
}

func (p dateRangePredicate[T]) Accept(item T) bool {
	v := p.field(item)
	if v == nil || v.IsZero() {
		return false
	}
	if p.from != nil && v.Before(*p.from) {
		return false
	}
	if p.until != nil && !v.Before(*p.until) {
		return false
	}
	return true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ParseDay parses a date bound from a query string. Both "2006-01-02" and RFC 3339
// are accepted; a bare day is placed in loc. An empty string yields nil.
func ParseDay(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(DayLayout, s, loc); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return &t, nil
}
