package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/wurt83ow/maintracker/internal/filter"
	"github.com/wurt83ow/maintracker/internal/metrics"
	"github.com/wurt83ow/maintracker/internal/models"
	"github.com/wurt83ow/maintracker/internal/normalize"
)

type MTBFResponse struct {
	Global    *float64              `json:"global"`
	ByMachine []metrics.MachineMTBF `json:"by_machine"`
}

type MTTRResponse struct {
	Global    *float64              `json:"global"`
	ByMachine []metrics.MachineMTTR `json:"by_machine"`
}

type AvailabilityResponse struct {
	Global    *float64                      `json:"global"`
	ByMachine []metrics.MachineAvailability `json:"by_machine"`
}

type RepetitivenessResponse struct {
	All metrics.Ranking `json:"all"`
	Top metrics.Ranking `json:"top"`
}

type FilterOptions struct {
	Machines     []string `json:"machines"`
	Responsibles []string `json:"responsibles"`
}

// report runs fn over the filtered events and writes its result as JSON.
func (h *BaseController) report(fn func([]models.Event) interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, res, err := h.filtered(r)
		if err != nil {
			h.writeError(w, err)
			return
		}

		h.writeJSON(w, http.StatusOK, fn(res.Events))
	}
}

// @Summary Dashboard
// @Tags Metrics
// @Produce json
// @Success 200 {object} metrics.Dashboard
// @Router /api/metrics/dashboard [get]
func (h *BaseController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	h.report(func(events []models.Event) interface{} {
		return metrics.BuildDashboard(events, h.now())
	})(w, r)
}

// @Summary MTBF
// @Description Mean days between failures, global and per machine
// @Tags Metrics
// @Produce json
// @Success 200 {object} MTBFResponse
// @Router /api/metrics/mtbf [get]
func (h *BaseController) GetMTBF(w http.ResponseWriter, r *http.Request) {
	h.report(func(events []models.Event) interface{} {
		return MTBFResponse{Global: metrics.GlobalMTBF(events), ByMachine: metrics.MTBFByMachine(events)}
	})(w, r)
}

// @Summary MTTR
// @Description Mean repair hours, global and per machine
// @Tags Metrics
// @Produce json
// @Success 200 {object} MTTRResponse
// @Router /api/metrics/mttr [get]
func (h *BaseController) GetMTTR(w http.ResponseWriter, r *http.Request) {
	h.report(func(events []models.Event) interface{} {
		return MTTRResponse{Global: metrics.MTTR(events), ByMachine: metrics.MTTRByMachine(events)}
	})(w, r)
}

// @Summary Availability
// @Description Availability percentage, global and per machine
// @Tags Metrics
// @Produce json
// @Success 200 {object} AvailabilityResponse
// @Router /api/metrics/availability [get]
func (h *BaseController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	h.report(func(events []models.Event) interface{} {
		return AvailabilityResponse{Global: metrics.Availability(events), ByMachine: metrics.AvailabilityByMachine(events)}
	})(w, r)
}

// @Summary Pareto of failures by machine
// @Tags Metrics
// @Produce json
// @Success 200 {array} metrics.RankRow
// @Router /api/metrics/pareto [get]
func (h *BaseController) GetPareto(w http.ResponseWriter, r *http.Request) {
	h.report(func(events []models.Event) interface{} {
		return metrics.Pareto(events)
	})(w, r)
}

// @Summary Repeated failures by description
// @Tags Metrics
// @Produce json
// @Param top query int false "Rows in the chart view, 15 by default"
// @Success 200 {object} RepetitivenessResponse
// @Router /api/metrics/repetitiveness [get]
func (h *BaseController) GetRepetitiveness(w http.ResponseWriter, r *http.Request) {
	top := metrics.ChartTop
	if v := r.URL.Query().Get("top"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			h.log.Info("invalid top format")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		top = n
	}

	h.report(func(events []models.Event) interface{} {
		all := metrics.Repetitiveness(events)
		return RepetitivenessResponse{All: all, Top: all.Top(top)}
	})(w, r)
}

// @Summary Events per month
// @Tags Metrics
// @Produce json
// @Success 200 {array} metrics.Bucket
// @Router /api/metrics/monthly [get]
func (h *BaseController) GetMonthly(w http.ResponseWriter, r *http.Request) {
	h.report(func(events []models.Event) interface{} {
		return metrics.MonthlyHistogram(events)
	})(w, r)
}

// @Summary Calendar
// @Tags Events
// @Produce json
// @Success 200 {array} metrics.CalendarEntry
// @Router /api/calendar [get]
func (h *BaseController) GetCalendar(w http.ResponseWriter, r *http.Request) {
	h.report(func(events []models.Event) interface{} {
		return metrics.Calendar(events)
	})(w, r)
}

// @Summary Machines
// @Tags Machines
// @Produce json
// @Success 200 {array} string
// @Router /api/machines [get]
func (h *BaseController) GetMachines(w http.ResponseWriter, r *http.Request) {
	h.report(func(events []models.Event) interface{} {
		return metrics.Machines(events)
	})(w, r)
}

// @Summary Machine detail
// @Tags Machines
// @Produce json
// @Param name path string true "Machine"
// @Success 200 {object} metrics.MachineDetail
// @Failure 404 {string} string "Not Found"
// @Router /api/machines/{name} [get]
func (h *BaseController) GetMachine(w http.ResponseWriter, r *http.Request) {
	events, err := h.storage.Events(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	detail, ok := metrics.BuildMachineDetail(events, normalize.Name(chi.URLParam(r, "name")))
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, detail)
}

// @Summary Filter options
// @Description Values for the machine and responsible selects, sentinels first
// @Tags Events
// @Produce json
// @Success 200 {object} FilterOptions
// @Router /api/filters [get]
func (h *BaseController) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	events, err := h.storage.Events(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, FilterOptions{
		Machines:     append([]string{filter.AllMachines}, metrics.Machines(events)...),
		Responsibles: append([]string{filter.AllResponsibles}, metrics.Responsibles(events)...),
	})
}
