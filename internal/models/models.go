package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Key string

// Kind is the maintenance event type.
type Kind string

const (
	Corrective Kind = "Corrective"
	Preventive Kind = "Preventive"
)

// ParseKind maps stored kind values (including the legacy spanish labels) onto a Kind.
// Anything unknown falls back to Corrective.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "preventive", "preventivo":
		return Preventive
	default:
		return Corrective
	}
}

// Event is one row of the maintenance event table.
type Event struct {
	ID            string   `json:"id"`
	Machine       string   `json:"machine"`
	Date          string   `json:"date"`
	Description   string   `json:"description"`
	Responsible   string   `json:"responsible"`
	StartTime     *string  `json:"start_time,omitempty"`
	EndTime       *string  `json:"end_time,omitempty"`
	DurationHours *float64 `json:"duration_hours,omitempty"`
	Kind          Kind     `json:"kind"`
	FrequencyDays *int     `json:"frequency_days,omitempty"`
	NextDue       *string  `json:"next_due,omitempty"`
}

// Record renders the event columns after the id as text, in stored order.
// Absent optional values become empty strings.
func (e Event) Record() []string {
	return []string{
		e.Machine,
		e.Date,
		e.Description,
		e.Responsible,
		text(e.StartTime),
		text(e.EndTime),
		floatText(e.DurationHours),
		string(e.Kind),
		intText(e.FrequencyDays),
		text(e.NextDue),
	}
}

func text(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func floatText(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intText(v *int) string {
	if v == nil {
		return ""
	}

	return strconv.Itoa(*v)
}

// Day returns the parsed event date. ok is false for unparseable dates.
func (e Event) Day() (time.Time, bool) {
	return ParseDate(e.Date)
}

// NextDueDay returns the parsed next due date of a preventive event.
func (e Event) NextDueDay() (time.Time, bool) {
	if e.NextDue == nil {
		return time.Time{}, false
	}

	return ParseDate(*e.NextDue)
}

// Downtime returns end-start in hours for rows carrying both clock times.
// Negative spans are clamped to zero.
func (e Event) Downtime() (float64, bool) {
	if e.StartTime == nil || e.EndTime == nil {
		return 0, false
	}

	start, ok := ParseClock(*e.StartTime)
	if !ok {
		return 0, false
	}

	end, ok := ParseClock(*e.EndTime)
	if !ok {
		return 0, false
	}

	hours := (end - start).Hours()
	if hours < 0 {
		hours = 0
	}

	return hours, true
}

// EventInput carries the user supplied fields of an add or edit request.
type EventInput struct {
	Machine       string `json:"machine"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	Responsible   string `json:"responsible"`
	StartTime     string `json:"start_time,omitempty"`
	EndTime       string `json:"end_time,omitempty"`
	DurationHours string `json:"duration_hours,omitempty"`
	Kind          string `json:"kind,omitempty"`
	FrequencyDays string `json:"frequency_days,omitempty"`
}

// Role is the normalized user role.
type Role = string

const (
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
	RoleViewer     Role = "viewer"
)

// User is an account of the dashboard.
type User struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

// CanMutate reports whether the role may add, edit or delete events.
func CanMutate(role string) bool {
	switch role {
	case RoleAdmin, RoleTechnician, "tecnico":
		return true
	default:
		return false
	}
}

// Principal is the authenticated caller of a request.
type Principal struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (p Principal) CanMutate() bool {
	return CanMutate(p.Role)
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// ValidationError lists missing or malformed input fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Fields, ", "))
}

type RequestUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResponseUser struct {
	Response string `json:"response"`
	Role     string `json:"role,omitempty"`
}

type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// PreventiveAlert reports a preventive task that is overdue or close to its due date.
type PreventiveAlert struct {
	EventID       string `json:"event_id"`
	Machine       string `json:"machine"`
	NextDue       string `json:"next_due"`
	DaysRemaining int    `json:"days_remaining"`
	Status        string `json:"status"`
}
