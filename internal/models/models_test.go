package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestParseDate(t *testing.T) {
	d, ok := ParseDate("2024-01-11")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDate("2024-01-11 13:45:00")
	assert.True(t, ok)
	assert.Equal(t, 11, d.Day())

	d, ok = ParseDate("01/02/2024")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), d)

	d, ok = ParseDate("12-31-2023")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), d)

	_, ok = ParseDate("31/12/2023")
	assert.False(t, ok)

	_, ok = ParseDate("not a date")
	assert.False(t, ok)

	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestParseStrictDate(t *testing.T) {
	_, ok := ParseStrictDate("2024-02-30")
	assert.False(t, ok)

	_, ok = ParseStrictDate("11-01-2024")
	assert.False(t, ok)

	_, ok = ParseStrictDate("2024-01-11")
	assert.True(t, ok)
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 31, DaysBetween(a, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, DaysBetween(a, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysBetween(a, a))

	// spans longer than time.Duration can hold
	epoch := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 738885, DaysBetween(epoch, a))
	assert.Equal(t, -738885, DaysBetween(a, epoch))

	far := a.AddDate(0, 0, 200000)
	assert.Equal(t, 200000, DaysBetween(a, far))
}

func TestDowntime(t *testing.T) {
	e := Event{StartTime: strptr("08:00"), EndTime: strptr("10:30")}
	h, ok := e.Downtime()
	assert.True(t, ok)
	assert.InDelta(t, 2.5, h, 1e-9)

	e = Event{StartTime: strptr("10:00"), EndTime: strptr("08:00")}
	h, ok = e.Downtime()
	assert.True(t, ok)
	assert.Zero(t, h)

	e = Event{StartTime: strptr("10:00")}
	_, ok = e.Downtime()
	assert.False(t, ok)

	e = Event{StartTime: strptr("soon"), EndTime: strptr("10:00")}
	_, ok = e.Downtime()
	assert.False(t, ok)
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, Preventive, ParseKind("Preventivo"))
	assert.Equal(t, Preventive, ParseKind(" preventive"))
	assert.Equal(t, Corrective, ParseKind(""))
	assert.Equal(t, Corrective, ParseKind("Correctivo"))
}

func TestCanMutate(t *testing.T) {
	assert.True(t, CanMutate(RoleAdmin))
	assert.True(t, CanMutate(RoleTechnician))
	assert.False(t, CanMutate(RoleViewer))
	assert.False(t, CanMutate(""))
}

func TestEventRecord(t *testing.T) {
	hours := 2.5
	freq := 30

	e := Event{
		ID: "x", Machine: "Torno", Date: "2024-01-11", Description: "belt", Responsible: "Ana",
		StartTime: strptr("08:00"), DurationHours: &hours, Kind: Preventive,
		FrequencyDays: &freq, NextDue: strptr("2024-02-10"),
	}

	assert.Equal(t, []string{
		"Torno", "2024-01-11", "belt", "Ana", "08:00", "", "2.5", "Preventive", "30", "2024-02-10",
	}, e.Record())

	assert.Equal(t, []string{"", "", "", "", "", "", "", "", "", ""}, Event{}.Record())
}
