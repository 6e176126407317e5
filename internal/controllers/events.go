package controllers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi"
	authz "github.com/wurt83ow/maintracker/internal/authorization"
	"github.com/wurt83ow/maintracker/internal/filter"
	"github.com/wurt83ow/maintracker/internal/metrics"
	"github.com/wurt83ow/maintracker/internal/models"
	"go.uber.org/zap"
)

// EventRow is an event with its position in the full table and its preventive status.
type EventRow struct {
	models.Event
	Index         int            `json:"index"`
	Status        metrics.Status `json:"status,omitempty"`
	DaysRemaining *int           `json:"days_remaining,omitempty"`
}

type EventsResponse struct {
	Events    []EventRow         `json:"events"`
	DateFrom  filter.BoundStatus `json:"date_from"`
	DateTo    filter.BoundStatus `json:"date_to"`
	CanMutate bool               `json:"can_mutate"`
}

// @Summary List events
// @Description Dated events matching the filters, in stored order
// @Tags Events
// @Produce json
// @Param machine query string false "Machine or Todas"
// @Param responsible query string false "Responsible or Todos"
// @Param date_from query string false "YYYY-MM-DD"
// @Param date_to query string false "YYYY-MM-DD"
// @Success 200 {object} EventsResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/events [get]
func (h *BaseController) GetEvents(w http.ResponseWriter, r *http.Request) {
	all, res, err := h.filtered(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	position := make(map[string]int, len(all))
	for i, e := range all {
		position[e.ID] = i
	}

	today := h.now()
	rows := make([]EventRow, 0, len(res.Events))

	for _, e := range res.Events {
		row := EventRow{Event: e, Index: position[e.ID]}

		if days, status := metrics.Classify(e, today); status != metrics.Unclassified {
			d := days
			row.Status = status
			row.DaysRemaining = &d
		}

		rows = append(rows, row)
	}

	p, _ := authz.PrincipalFromContext(r.Context())

	h.writeJSON(w, http.StatusOK, EventsResponse{
		Events:    rows,
		DateFrom:  res.DateFrom,
		DateTo:    res.DateTo,
		CanMutate: p.CanMutate(),
	})
}

// @Summary Add event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body models.EventInput true "Event"
// @Success 201 {object} models.Event
// @Failure 400 {object} errorResponse
// @Failure 403 {string} string "Forbidden"
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/events [post]
func (h *BaseController) AddEvent(w http.ResponseWriter, r *http.Request) {
	var in models.EventInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.log.Info("cannot decode request JSON body: ", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ev, err := h.storage.AddEvent(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, ev)
}

// @Summary Edit event
// @Description ref is an event id or a position in the table
// @Tags Events
// @Accept json
// @Produce json
// @Param ref path string true "Event id or index"
// @Param event body models.EventInput true "Event"
// @Success 200 {object} models.Event
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/events/{ref} [put]
func (h *BaseController) EditEvent(w http.ResponseWriter, r *http.Request) {
	var in models.EventInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.log.Info("cannot decode request JSON body: ", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ev, err := h.storage.EditEvent(r.Context(), chi.URLParam(r, "ref"), in)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ev)
}

// @Summary Delete event
// @Tags Events
// @Produce json
// @Param ref path string true "Event id or index"
// @Success 200 {object} models.Event
// @Failure 404 {object} errorResponse
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/events/{ref} [delete]
func (h *BaseController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ev, err := h.storage.DeleteEvent(r.Context(), chi.URLParam(r, "ref"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ev)
}

type PreventivesResponse struct {
	Items   []metrics.PreventiveItem  `json:"items"`
	Summary metrics.PreventiveSummary `json:"summary"`
}

// @Summary Preventive tasks
// @Description Classified preventive tasks of the whole table with a summary
// @Tags Preventive
// @Produce json
// @Success 200 {object} PreventivesResponse
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/preventives [get]
func (h *BaseController) GetPreventives(w http.ResponseWriter, r *http.Request) {
	events, err := h.storage.Events(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	today := h.now()

	h.writeJSON(w, http.StatusOK, PreventivesResponse{
		Items:   metrics.PreventiveList(events, today),
		Summary: metrics.Summarize(events, today),
	})
}

// @Summary Mark preventive done
// @Description Reschedule next_due to today plus the frequency
// @Tags Preventive
// @Produce json
// @Param ref path string true "Event id or index"
// @Success 200 {object} models.Event
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /api/preventives/{ref}/done [post]
func (h *BaseController) MarkPreventiveDone(w http.ResponseWriter, r *http.Request) {
	ev, err := h.storage.MarkPreventiveDone(r.Context(), chi.URLParam(r, "ref"), h.now())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ev)
}

// @Summary Export events
// @Description Filtered events as a semicolon separated CSV sorted by date
// @Tags Events
// @Produce text/csv
// @Success 200 {string} string "CSV"
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/events/export [get]
func (h *BaseController) ExportEvents(w http.ResponseWriter, r *http.Request) {
	_, res, err := h.filtered(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	events := res.Events
	sort.SliceStable(events, func(i, j int) bool {
		a, _ := events[i].Day()
		b, _ := events[j].Day()

		return a.Before(b)
	})

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="events.csv"`)
	w.WriteHeader(http.StatusOK)

	_, _ = w.Write([]byte("\ufeff"))

	cw := csv.NewWriter(w)
	cw.Comma = ';'

	_ = cw.Write([]string{
		"machine", "date", "description", "responsible", "start_time", "end_time",
		"duration_hours", "kind", "frequency_days", "next_due",
	})

	for _, e := range events {
		_ = cw.Write(e.Record())
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		h.log.Info("error writing csv export: ", zap.Error(err))
	}
}
