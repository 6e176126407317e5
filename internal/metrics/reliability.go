package metrics

import (
	"math"
	"sort"

	"github.com/wurt83ow/maintracker/internal/models"
)

// MachineMTBF is the mean number of days between consecutive events of a machine.
type MachineMTBF struct {
	Machine  string   `json:"machine"`
	Failures int      `json:"failures"`
	MTBFDays *float64 `json:"mtbf_days"`
}

// MachineMTTR is the mean recorded repair duration of a machine.
type MachineMTTR struct {
	Machine       string  `json:"machine"`
	Interventions int     `json:"interventions"`
	MTTRHours     float64 `json:"mttr_hours"`
}

// MachineAvailability is the share of the observation window free of downtime.
type MachineAvailability struct {
	Machine       string   `json:"machine"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	TotalHours    float64  `json:"total_hours"`
	DowntimeHours float64  `json:"downtime_hours"`
	Availability  *float64 `json:"availability"`
}

// deltas returns the day gaps between consecutive dates of rows belonging to one machine.
func deltas(rows []row) []float64 {
	if len(rows) < 2 {
		return nil
	}

	sorted := make([]row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].day.Before(sorted[j].day) })

	out := make([]float64, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		out = append(out, float64(models.DaysBetween(sorted[i-1].day, sorted[i].day)))
	}

	return out
}

// MTBF returns the MTBF of a single machine's events, nil with fewer than two dated events.
func MTBF(events []models.Event) *float64 {
	m := mean(deltas(dated(events)))
	if m == nil {
		return nil
	}

	return ptr(round(*m, 1))
}

// GlobalMTBF pools the consecutive deltas of every machine and averages them.
func GlobalMTBF(events []models.Event) *float64 {
	names, groups := byMachine(dated(events))

	var pooled []float64
	for _, name := range names {
		pooled = append(pooled, deltas(groups[name])...)
	}

	m := mean(pooled)
	if m == nil {
		return nil
	}

	return ptr(round(*m, 1))
}

// MTBFByMachine ranks machines by MTBF ascending; machines without MTBF go last.
func MTBFByMachine(events []models.Event) []MachineMTBF {
	names, groups := byMachine(dated(events))

	out := make([]MachineMTBF, 0, len(names))
	for _, name := range names {
		item := MachineMTBF{Machine: name, Failures: len(groups[name])}
		if m := mean(deltas(groups[name])); m != nil {
			item.MTBFDays = ptr(round(*m, 1))
		}

		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].MTBFDays, out[j].MTBFDays
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	return out
}

func durations(rows []row) []float64 {
	var out []float64

	for _, r := range rows {
		d := r.event.DurationHours
		if d == nil || math.IsNaN(*d) || math.IsInf(*d, 0) {
			continue
		}

		out = append(out, *d)
	}

	return out
}

// MTTR averages the present durations, nil when none is usable.
func MTTR(events []models.Event) *float64 {
	m := mean(durations(dated(events)))
	if m == nil {
		return nil
	}

	return ptr(round(*m, 1))
}

// MTTRByMachine ranks machines with at least one duration by MTTR descending.
func MTTRByMachine(events []models.Event) []MachineMTTR {
	names, groups := byMachine(dated(events))

	out := make([]MachineMTTR, 0, len(names))
	for _, name := range names {
		d := durations(groups[name])

		m := mean(d)
		if m == nil {
			continue
		}

		out = append(out, MachineMTTR{Machine: name, Interventions: len(d), MTTRHours: round(*m, 1)})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].MTTRHours > out[j].MTTRHours })

	return out
}

// window computes availability over min..max date of rows.
// ok is false when no row carries both clock times.
func window(rows []row) (MachineAvailability, bool) {
	var res MachineAvailability

	if len(rows) == 0 {
		return res, false
	}

	first, last := rows[0].day, rows[0].day
	timed := false

	for _, r := range rows {
		if r.day.Before(first) {
			first = r.day
		}

		if r.day.After(last) {
			last = r.day
		}

		if h, ok := r.event.Downtime(); ok {
			res.DowntimeHours += h
			timed = true
		}
	}

	if !timed {
		return res, false
	}

	res.From = models.FormatDate(first)
	res.To = models.FormatDate(last)
	res.TotalHours = float64(models.DaysBetween(first, last)+1) * 24

	if res.TotalHours > 0 {
		a := (res.TotalHours - res.DowntimeHours) / res.TotalHours * 100
		a = math.Max(0, math.Min(100, a))
		res.Availability = ptr(round(a, 2))
	}

	res.DowntimeHours = round(res.DowntimeHours, 1)

	return res, true
}

// Availability returns the availability percentage of events, nil when not computable.
func Availability(events []models.Event) *float64 {
	w, ok := window(dated(events))
	if !ok {
		return nil
	}

	return w.Availability
}

// AvailabilityByMachine ranks machines with timed events by availability ascending.
func AvailabilityByMachine(events []models.Event) []MachineAvailability {
	names, groups := byMachine(dated(events))

	out := make([]MachineAvailability, 0, len(names))
	for _, name := range names {
		w, ok := window(groups[name])
		if !ok {
			continue
		}

		w.Machine = name
		out = append(out, w)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Availability, out[j].Availability
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	return out
}
