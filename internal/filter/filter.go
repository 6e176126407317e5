// Package filter narrows an event table by machine, responsible party and date range.
package filter

import (
	"time"

	"github.com/wurt83ow/maintracker/internal/models"
	"github.com/wurt83ow/maintracker/internal/normalize"
)

// Sentinel values meaning "no predicate".
const (
	AllMachines     = "Todas"
	AllResponsibles = "Todos"
)

// Criteria are the optional query parameters of a filtered view.
type Criteria struct {
	Machine     string
	Responsible string
	DateFrom    string
	DateTo      string
}

// BoundState tells what happened to an optional date bound.
type BoundState int

const (
	Absent BoundState = iota
	Applied
	Ignored
)

func (s BoundState) String() string {
	switch s {
	case Applied:
		return "applied"
	case Ignored:
		return "ignored"
	default:
		return "absent"
	}
}

// BoundStatus is the outcome of parsing one date bound.
type BoundStatus struct {
	State  BoundState `json:"-"`
	Value  string     `json:"value,omitempty"`
	Reason string     `json:"reason,omitempty"`
}

// Result is the filtered view plus how each bound was treated.
type Result struct {
	Events   []models.Event
	DateFrom BoundStatus
	DateTo   BoundStatus
}

// Apply keeps the dated events matching every active predicate, in input order.
func Apply(events []models.Event, c Criteria) Result {
	machine, byMachine := selector(c.Machine, AllMachines)
	responsible, byResponsible := selector(c.Responsible, AllResponsibles)

	from, fromStatus := parseBound(c.DateFrom)
	to, toStatus := parseBound(c.DateTo)

	out := make([]models.Event, 0, len(events))

	for _, e := range events {
		day, ok := e.Day()
		if !ok {
			continue
		}

		if byMachine && e.Machine != machine {
			continue
		}

		if byResponsible && e.Responsible != responsible {
			continue
		}

		if fromStatus.State == Applied && day.Before(from) {
			continue
		}

		if toStatus.State == Applied && day.After(to) {
			continue
		}

		out = append(out, e)
	}

	return Result{Events: out, DateFrom: fromStatus, DateTo: toStatus}
}

// Dated drops the rows whose date cannot be parsed.
func Dated(events []models.Event) []models.Event {
	return Apply(events, Criteria{}).Events
}

func selector(v, sentinel string) (string, bool) {
	switch v {
	case "", sentinel, "todos", "Todas", "Todos", "todas":
		return "", false
	}

	n := normalize.Name(v)
	if n == "" {
		return "", false
	}

	return n, true
}

func parseBound(v string) (time.Time, BoundStatus) {
	if v == "" {
		return time.Time{}, BoundStatus{State: Absent}
	}

	t, ok := models.ParseStrictDate(v)
	if !ok {
		return time.Time{}, BoundStatus{State: Ignored, Value: v, Reason: "expected YYYY-MM-DD"}
	}

	return t, BoundStatus{State: Applied, Value: v}
}
