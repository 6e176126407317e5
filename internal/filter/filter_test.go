package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wurt83ow/maintracker/internal/models"
)

func sample() []models.Event {
	return []models.Event{
		{ID: "1", Machine: "Torno", Responsible: "Ana", Date: "2024-01-01"},
		{ID: "2", Machine: "Prensa", Responsible: "Luis", Date: "2024-01-05"},
		{ID: "3", Machine: "Torno", Responsible: "Luis", Date: "2024-02-10"},
		{ID: "4", Machine: "Torno", Responsible: "Ana", Date: "2024-03-01"},
	}
}

func ids(events []models.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}

	return out
}

func TestApplyNoPredicatesIsIdentity(t *testing.T) {
	in := sample()

	for _, c := range []Criteria{
		{},
		{Machine: AllMachines, Responsible: AllResponsibles},
		{Machine: "todos", Responsible: "todos"},
	} {
		res := Apply(in, c)
		assert.Equal(t, in, res.Events)
		assert.Equal(t, Absent, res.DateFrom.State)
		assert.Equal(t, Absent, res.DateTo.State)
	}
}

func TestApplyNormalizesSelectors(t *testing.T) {
	res := Apply(sample(), Criteria{Machine: "  TORNO ", Responsible: "ana"})
	assert.Equal(t, []string{"1", "4"}, ids(res.Events))
}

func TestApplyDateBounds(t *testing.T) {
	res := Apply(sample(), Criteria{DateFrom: "2024-01-05", DateTo: "2024-02-10"})
	assert.Equal(t, []string{"2", "3"}, ids(res.Events))
	assert.Equal(t, Applied, res.DateFrom.State)
	assert.Equal(t, Applied, res.DateTo.State)
}

func TestApplyIgnoresMalformedBounds(t *testing.T) {
	res := Apply(sample(), Criteria{DateFrom: "05/01/2024", DateTo: "2024-01-31"})
	assert.Equal(t, []string{"1", "2"}, ids(res.Events))
	assert.Equal(t, Ignored, res.DateFrom.State)
	assert.NotEmpty(t, res.DateFrom.Reason)
	assert.Equal(t, Applied, res.DateTo.State)
}

func TestApplyDropsUndatedRows(t *testing.T) {
	in := append(sample(), models.Event{ID: "5", Machine: "Torno", Date: "someday"})

	res := Apply(in, Criteria{Machine: "Torno"})
	assert.Equal(t, []string{"1", "3", "4"}, ids(res.Events))
	assert.Len(t, Dated(in), 4)
}

func TestApplyEmpty(t *testing.T) {
	res := Apply(nil, Criteria{Machine: "Torno", DateFrom: "2024-01-01"})
	assert.Empty(t, res.Events)
}
