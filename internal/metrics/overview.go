package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/wurt83ow/maintracker/internal/models"
)

// Bucket is one bar of a histogram.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

func histogram(events []models.Event, layout string) []Bucket {
	counts := make(map[string]int)

	for _, r := range dated(events) {
		counts[r.day.Format(layout)]++
	}

	out := make([]Bucket, 0, len(counts))
	for label, c := range counts {
		out = append(out, Bucket{Label: label, Count: c})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })

	return out
}

// MonthlyHistogram counts dated events per YYYY-MM, chronologically.
func MonthlyHistogram(events []models.Event) []Bucket {
	return histogram(events, "2006-01")
}

// DailyHistogram counts dated events per YYYY-MM-DD, chronologically.
func DailyHistogram(events []models.Event) []Bucket {
	return histogram(events, models.DateLayout)
}

type Dashboard struct {
	TotalEvents     int               `json:"total_events"`
	TotalMachines   int               `json:"total_machines"`
	EventsThisMonth int               `json:"events_this_month"`
	MTBFDays        *float64          `json:"mtbf_days"`
	MTTRHours       *float64          `json:"mttr_hours"`
	Availability    *float64          `json:"availability"`
	Monthly         []Bucket          `json:"monthly"`
	Preventive      PreventiveSummary `json:"preventive"`
}

// BuildDashboard assembles the global indicators of events.
func BuildDashboard(events []models.Event, today time.Time) Dashboard {
	rows := dated(events)
	month := today.Format("2006-01")

	d := Dashboard{
		TotalEvents:  len(rows),
		MTBFDays:     GlobalMTBF(events),
		MTTRHours:    MTTR(events),
		Availability: Availability(events),
		Monthly:      MonthlyHistogram(events),
		Preventive:   Summarize(events, today),
	}

	for _, r := range rows {
		if r.day.Format("2006-01") == month {
			d.EventsThisMonth++
		}
	}

	d.TotalMachines = len(Machines(events))

	return d
}

type MachineDetail struct {
	Machine      string         `json:"machine"`
	Total        int            `json:"total"`
	Corrective   int            `json:"corrective"`
	Preventive   int            `json:"preventive"`
	First        string         `json:"first,omitempty"`
	Last         string         `json:"last,omitempty"`
	MTBFDays     *float64       `json:"mtbf_days"`
	MTTRHours    *float64       `json:"mttr_hours"`
	Availability *float64       `json:"availability"`
	Daily        []Bucket       `json:"daily"`
	History      []models.Event `json:"history"`
}

// BuildMachineDetail reports on one machine. ok is false when it has no dated events.
func BuildMachineDetail(events []models.Event, machine string) (MachineDetail, bool) {
	var own []models.Event

	for _, r := range dated(events) {
		if r.event.Machine == machine {
			own = append(own, r.event)
		}
	}

	if len(own) == 0 {
		return MachineDetail{Machine: machine}, false
	}

	history := dated(own)
	sort.SliceStable(history, func(i, j int) bool { return history[i].day.Before(history[j].day) })

	d := MachineDetail{
		Machine:      machine,
		Total:        len(own),
		First:        models.FormatDate(history[0].day),
		Last:         models.FormatDate(history[len(history)-1].day),
		MTBFDays:     MTBF(own),
		MTTRHours:    MTTR(own),
		Availability: Availability(own),
		Daily:        DailyHistogram(own),
		History:      make([]models.Event, 0, len(history)),
	}

	for _, r := range history {
		switch r.event.Kind {
		case models.Preventive:
			d.Preventive++
		default:
			d.Corrective++
		}

		d.History = append(d.History, r.event)
	}

	return d, true
}

func distinct(events []models.Event, key func(models.Event) string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)

	for _, r := range dated(events) {
		k := key(r.event)
		if k == "" {
			continue
		}

		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

// Machines lists the distinct machines of dated events, sorted.
func Machines(events []models.Event) []string {
	return distinct(events, func(e models.Event) string { return e.Machine })
}

// Responsibles lists the distinct responsible parties of dated events, sorted.
func Responsibles(events []models.Event) []string {
	return distinct(events, func(e models.Event) string { return e.Responsible })
}

type CalendarEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	Color string `json:"color"`
}

const (
	colorDefault    = "#28a745"
	colorCorrective = "#dc3545"
	colorPreventive = "#007bff"
)

// Calendar renders dated events as calendar entries.
func Calendar(events []models.Event) []CalendarEntry {
	rows := dated(events)
	out := make([]CalendarEntry, 0, len(rows))

	for _, r := range rows {
		e := r.event

		machine := e.Machine
		if machine == "" {
			machine = "Unknown machine"
		}

		title := machine
		color := colorDefault

		switch e.Kind {
		case models.Corrective:
			color = colorCorrective
		case models.Preventive:
			color = colorPreventive
		}

		if e.Kind != "" {
			title = fmt.Sprintf("%s (%s)", machine, e.Kind)
		}

		out = append(out, CalendarEntry{ID: e.ID, Title: title, Start: models.FormatDate(r.day), Color: color})
	}

	return out
}
