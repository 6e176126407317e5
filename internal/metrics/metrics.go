// Package metrics derives reliability statistics from a maintenance event table.
//
// Every function is total: rows with unparseable dates are skipped, and a
// statistic that cannot be computed is reported as a nil pointer rather than
// an error or a zero.
package metrics

import (
	"math"
	"sort"
	"time"

	"github.com/wurt83ow/maintracker/internal/models"
)

type row struct {
	event models.Event
	day   time.Time
}

// dated keeps the rows with a parseable date, in input order.
func dated(events []models.Event) []row {
	rows := make([]row, 0, len(events))

	for _, e := range events {
		day, ok := e.Day()
		if !ok {
			continue
		}

		rows = append(rows, row{event: e, day: day})
	}

	return rows
}

// byMachine groups rows by machine, skipping blank machine names.
// The returned names are sorted.
func byMachine(rows []row) ([]string, map[string][]row) {
	groups := make(map[string][]row)

	for _, r := range rows {
		if r.event.Machine == "" {
			continue
		}

		groups[r.event.Machine] = append(groups[r.event.Machine], r)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}

	sort.Strings(names)

	return names, groups
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}

func ptr(v float64) *float64 {
	return &v
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return ptr(sum / float64(len(values)))
}
