package metrics

import (
	"time"

	"github.com/wurt83ow/maintracker/internal/models"
)

// Status is the due state of a preventive task relative to today.
type Status string

const (
	Unclassified Status = ""
	Overdue      Status = "Overdue"
	DueToday     Status = "Due-Today"
	Upcoming     Status = "Upcoming"
	OK           Status = "OK"
)

// UpcomingHorizon is the last day count still reported as Upcoming.
const UpcomingHorizon = 7

// PreventiveItem is one classified preventive task.
type PreventiveItem struct {
	Index         int    `json:"index"`
	ID            string `json:"id"`
	Machine       string `json:"machine"`
	Date          string `json:"date"`
	NextDue       string `json:"next_due"`
	DaysRemaining int    `json:"days_remaining"`
	Status        Status `json:"status"`
}

// PreventiveSummary counts classified preventive tasks.
type PreventiveSummary struct {
	Total    int `json:"total"`
	Overdue  int `json:"overdue"`
	Upcoming int `json:"upcoming"`
	OK       int `json:"ok"`
}

// Classify returns the days until next_due and its status. Non preventive events
// and events without a parseable next_due are Unclassified.
func Classify(e models.Event, today time.Time) (int, Status) {
	if e.Kind != models.Preventive {
		return 0, Unclassified
	}

	due, ok := e.NextDueDay()
	if !ok {
		return 0, Unclassified
	}

	days := models.DaysBetween(models.Today(today), due)

	switch {
	case days < 0:
		return days, Overdue
	case days == 0:
		return days, DueToday
	case days <= UpcomingHorizon:
		return days, Upcoming
	default:
		return days, OK
	}
}

// PreventiveList classifies every preventive event of the full table.
// Index is the position of the event in events.
func PreventiveList(events []models.Event, today time.Time) []PreventiveItem {
	items := make([]PreventiveItem, 0)

	for i, e := range events {
		days, status := Classify(e, today)
		if status == Unclassified {
			continue
		}

		items = append(items, PreventiveItem{
			Index:         i,
			ID:            e.ID,
			Machine:       e.Machine,
			Date:          e.Date,
			NextDue:       *e.NextDue,
			DaysRemaining: days,
			Status:        status,
		})
	}

	return items
}

// Summarize counts classified preventive events that also carry a valid date.
// Upcoming covers 0..7 days, so tasks due today are counted there as well.
func Summarize(events []models.Event, today time.Time) PreventiveSummary {
	var s PreventiveSummary

	for _, r := range dated(events) {
		days, status := Classify(r.event, today)
		if status == Unclassified {
			continue
		}

		s.Total++

		switch {
		case days < 0:
			s.Overdue++
		case days <= UpcomingHorizon:
			s.Upcoming++
		default:
			s.OK++
		}
	}

	return s
}
