package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	authz "github.com/wurt83ow/maintracker/internal/authorization"
	"github.com/wurt83ow/maintracker/internal/filter"
	"github.com/wurt83ow/maintracker/internal/middleware"
	"github.com/wurt83ow/maintracker/internal/models"
	"github.com/wurt83ow/maintracker/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Storage interface {
	GetBaseConnection(context.Context) bool

	Events(context.Context) ([]models.Event, error)
	AddEvent(context.Context, models.EventInput) (models.Event, error)
	EditEvent(context.Context, string, models.EventInput) (models.Event, error)
	DeleteEvent(context.Context, string) (models.Event, error)
	MarkPreventiveDone(context.Context, string, time.Time) (models.Event, error)

	Users(context.Context) ([]models.User, error)
	Authenticate(context.Context, string, string) (models.User, error)
	CreateUser(context.Context, string, string, string) (models.User, error)
	DeleteUser(context.Context, string) error
}

type Log interface {
	Info(string, ...zapcore.Field)
}

type Authz interface {
	JWTAuthzMiddleware(authz.Log) func(http.Handler) http.Handler
	CreateJWTTokenForUser(models.User) string
	AuthCookie(string, string) *http.Cookie
	ExpiredCookie(string) *http.Cookie
}

type BaseController struct {
	storage Storage
	log     Log
	authz   Authz
	now     func() time.Time
}

func NewBaseController(storage Storage, log Log, authz Authz) *BaseController {
	instance := &BaseController{
		storage: storage,
		log:     log,
		authz:   authz,
		now:     time.Now,
	}

	return instance
}

func (h *BaseController) Route() *chi.Mux {
	r := chi.NewRouter()

	r.Get("/ping", h.GetPing)
	r.With(middleware.AuthRateLimit()).Post("/api/user/login", h.Login)
	r.Post("/api/user/logout", h.Logout)

	// group where the middleware authorization is needed
	r.Group(func(r chi.Router) {
		r.Use(h.authz.JWTAuthzMiddleware(h.log))

		r.Get("/api/user/me", h.GetMe)

		r.Get("/api/events", h.GetEvents)
		r.Get("/api/events/export", h.ExportEvents)
		r.Get("/api/filters", h.GetFilterOptions)
		r.Get("/api/preventives", h.GetPreventives)
		r.Get("/api/calendar", h.GetCalendar)
		r.Get("/api/machines", h.GetMachines)
		r.Get("/api/machines/{name}", h.GetMachine)

		r.Route("/api/metrics", func(r chi.Router) {
			r.Get("/dashboard", h.GetDashboard)
			r.Get("/mtbf", h.GetMTBF)
			r.Get("/mttr", h.GetMTTR)
			r.Get("/availability", h.GetAvailability)
			r.Get("/pareto", h.GetPareto)
			r.Get("/repetitiveness", h.GetRepetitiveness)
			r.Get("/monthly", h.GetMonthly)
		})

		r.Group(func(r chi.Router) {
			r.Use(authz.RequireMutator)

			r.Post("/api/events", h.AddEvent)
			r.Put("/api/events/{ref}", h.EditEvent)
			r.Delete("/api/events/{ref}", h.DeleteEvent)
			r.Post("/api/preventives/{ref}/done", h.MarkPreventiveDone)
		})

		r.Group(func(r chi.Router) {
			r.Use(authz.RequireAdmin)

			r.Get("/api/admin/users", h.GetUsers)
			r.Post("/api/admin/users", h.AddUser)
			r.Delete("/api/admin/users/{username}", h.DeleteUser)
		})
	})

	return r
}

// @Summary Ping
// @Description Check that the event store is reachable
// @Tags Service
// @Success 200 {string} string "OK"
// @Failure 500 {string} string "Internal Server Error"
// @Router /ping [get]
func (h *BaseController) GetPing(w http.ResponseWriter, r *http.Request) {
	if !h.storage.GetBaseConnection(r.Context()) {
		h.log.Info("got status internal server error")
		w.WriteHeader(http.StatusInternalServerError) // 500
		return
	}

	w.WriteHeader(http.StatusOK)
	h.log.Info("sending HTTP 200 response")
}

// @Summary Login
// @Description Authenticate a user and issue a session token
// @Tags User
// @Accept json
// @Produce json
// @Param credentials body models.RequestUser true "Credentials"
// @Success 200 {object} models.ResponseUser
// @Failure 400 {string} string "Bad Request"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {string} string "Internal Server Error"
// @Router /api/user/login [post]
func (h *BaseController) Login(w http.ResponseWriter, r *http.Request) {
	metod := zap.String("method", r.Method)

	var rb models.RequestUser
	if err := json.NewDecoder(r.Body).Decode(&rb); err != nil {
		// invalid request format
		w.WriteHeader(http.StatusBadRequest)
		h.log.Info("invalid request format, request status 400: ", metod)
		return
	}

	user, err := h.storage.Authenticate(r.Context(), rb.Username, rb.Password)
	if errors.Is(err, storage.ErrNotFound) {
		// incorrect login/password pair
		w.WriteHeader(http.StatusUnauthorized) // code 401
		h.log.Info("incorrect login/password pair, request status 401: ", metod)
		return
	}

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError) // code 500
		h.log.Info("cannot load users: ", zap.Error(err))
		return
	}

	freshToken := h.authz.CreateJWTTokenForUser(user)
	if freshToken == "" {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.authz.AuthCookie(authz.CookieName, freshToken))
	w.Header().Set("Authorization", freshToken)

	h.writeJSON(w, http.StatusOK, models.ResponseUser{Response: "success", Role: user.Role})
}

// @Summary Logout
// @Description Clear the session cookie
// @Tags User
// @Success 200 {string} string "OK"
// @Router /api/user/logout [post]
func (h *BaseController) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, h.authz.ExpiredCookie(authz.CookieName))
	w.WriteHeader(http.StatusOK)
}

// @Summary Current user
// @Tags User
// @Produce json
// @Success 200 {object} models.Principal
// @Failure 401 {string} string "Unauthorized"
// @Router /api/user/me [get]
func (h *BaseController) GetMe(w http.ResponseWriter, r *http.Request) {
	p, ok := authz.PrincipalFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	h.writeJSON(w, http.StatusOK, p)
}

// filtered loads the event table and applies the filter criteria found in the query string.
func (h *BaseController) filtered(r *http.Request) ([]models.Event, filter.Result, error) {
	events, err := h.storage.Events(r.Context())
	if err != nil {
		return nil, filter.Result{}, err
	}

	q := r.URL.Query()
	res := filter.Apply(events, filter.Criteria{
		Machine:     q.Get("machine"),
		Responsible: q.Get("responsible"),
		DateFrom:    q.Get("date_from"),
		DateTo:      q.Get("date_to"),
	})

	return events, res, nil
}

type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// writeError maps storage and validation errors to status codes.
func (h *BaseController) writeError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError

	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing or invalid fields", Fields: verr.Fields})
	case errors.Is(err, storage.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, storage.ErrConflict), errors.Is(err, storage.ErrNotPreventive):
		h.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, storage.ErrProtected):
		h.writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	default:
		h.log.Info("internal server error: ", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (h *BaseController) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Info("error encoding response: ", zap.Error(err))
	}
}
