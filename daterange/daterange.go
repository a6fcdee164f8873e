// Package daterange computes which calendar days a date range picker leaves unselectable.
package daterange

import "time"

// Limit is a distance from the first picked day. Months are applied before days.
type Limit struct {
	Months int `json:"month,omitempty"`
	Days   int `json:"day,omitempty"`
}

// Range disables every day from From to To inclusive, or only From when To is nil.
type Range struct {
	From time.Time
	To   *time.Time
}

type Window struct {
	// Before disables every day strictly before it.
	Before *time.Time
	// After disables every day strictly after it.
	After  *time.Time
	Ranges []Range
}

// Limits returns the window reachable from the first picked day. A nil limit leaves that side open.
func Limits(from time.Time, before, after *Limit) Window {
	var w Window
	if before != nil {
		b := from.AddDate(0, -before.Months, 0).AddDate(0, 0, -before.Days)
		w.Before = &b
	}
	if after != nil {
		a := from.AddDate(0, after.Months, 0).AddDate(0, 0, after.Days)
		w.After = &a
	}
	return w
}

// With adds caller provided disabled ranges to the window.
func (w Window) With(ranges ...Range) Window {
	w.Ranges = append(append([]Range(nil), w.Ranges...), ranges...)
	return w
}

// Disabled reports whether day t cannot be picked. Only the calendar day of t is considered.
func (w Window) Disabled(t time.Time) bool {
	day := truncate(t)
	if w.Before != nil && day.Before(truncate(*w.Before)) {
		return true
	}
	if w.After != nil && day.After(truncate(*w.After)) {
		return true
	}
	for _, r := range w.Ranges {
		from := truncate(r.From)
		to := from
		if r.To != nil {
			to = truncate(*r.To)
		}
		if !day.Before(from) && !day.After(to) {
			return true
		}
	}
	return false
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
