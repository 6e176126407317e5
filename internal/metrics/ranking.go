package metrics

import (
	"sort"
	"strings"

	"github.com/wurt83ow/maintracker/internal/models"
)

// ChartTop is the number of repetitiveness rows shown in charts.
const ChartTop = 15

// RankRow is one category of a frequency ranking.
type RankRow struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
	Cumulative float64 `json:"cumulative"`
}

// Ranking is ordered by Count descending, ties by Label.
type Ranking []RankRow

// Top returns at most n leading rows.
func (r Ranking) Top(n int) Ranking {
	if n < 0 || len(r) <= n {
		return r
	}

	return r[:n]
}

func rank(keys []string) Ranking {
	counts := make(map[string]int)
	total := 0

	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			continue
		}

		counts[k]++
		total++
	}

	out := make(Ranking, 0, len(counts))
	for k, c := range counts {
		out = append(out, RankRow{Label: k, Count: c})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Label < out[j].Label
	})

	// cumulative is accumulated on unrounded shares so the last row lands on 100
	acc := 0.0
	for i := range out {
		share := float64(out[i].Count) / float64(total) * 100
		acc += share
		out[i].Percentage = round(share, 1)
		out[i].Cumulative = round(acc, 1)
	}

	return out
}

// Pareto ranks machines by number of dated events.
func Pareto(events []models.Event) Ranking {
	rows := dated(events)

	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r.event.Machine)
	}

	return rank(keys)
}

// Repetitiveness ranks event descriptions by number of occurrences.
func Repetitiveness(events []models.Event) Ranking {
	rows := dated(events)

	keys := make([]string, 0, len(rows))
	for _, r := range rows {
		keys = append(keys, r.event.Description)
	}

	return rank(keys)
}
