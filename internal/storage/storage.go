package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wurt83ow/maintracker/internal/models"
	"github.com/wurt83ow/maintracker/internal/normalize"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	ErrConflict      = errors.New("data conflict")
	ErrNotFound      = errors.New("record not found")
	ErrProtected     = errors.New("record is protected")
	ErrNotPreventive = errors.New("event is not preventive")
)

type Log interface {
	Info(string, ...zapcore.Field)
}

// Keeper persists whole tables. Save always overwrites the previous snapshot.
type Keeper interface {
	LoadEvents(context.Context) ([]models.Event, error)
	SaveEvents(context.Context, []models.Event) error
	LoadUsers(context.Context) ([]models.User, error)
	SaveUsers(context.Context, []models.User) error
	Ping(context.Context) bool
	Close() bool
}

// Storage runs load, mutate and save cycles against a Keeper.
// Cycles are serialized inside the process; across processes the last writer wins.
type Storage struct {
	emx    sync.Mutex
	umx    sync.Mutex
	keeper Keeper
	log    Log
	newID  func() string
}

func NewStorage(keeper Keeper, log Log) *Storage {
	return &Storage{
		keeper: keeper,
		log:    log,
		newID:  func() string { return uuid.New().String() },
	}
}

// Events returns the full, normalized event table in stored order.
func (s *Storage) Events(ctx context.Context) ([]models.Event, error) {
	s.emx.Lock()
	defer s.emx.Unlock()

	events, _, err := s.load(ctx)

	return events, err
}

// PrepareEvents assigns ids to stored rows that lack one and writes the table
// back once. It runs at startup so that read paths never rewrite the store.
func (s *Storage) PrepareEvents(ctx context.Context) error {
	s.emx.Lock()
	defer s.emx.Unlock()

	events, assigned, err := s.load(ctx)
	if err != nil {
		return err
	}

	if assigned == 0 {
		return nil
	}

	if err := s.keeper.SaveEvents(ctx, events); err != nil {
		return fmt.Errorf("failed to persist event ids: %w", err)
	}

	s.log.Info("assigned ids to stored events", zap.Int("count", assigned))

	return nil
}

// load normalizes identifiers and assigns ids in memory to rows stored without one.
// Those ids reach the store only through PrepareEvents or the next mutation.
func (s *Storage) load(ctx context.Context) ([]models.Event, int, error) {
	events, err := s.keeper.LoadEvents(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load events: %w", err)
	}

	assigned := 0

	for i := range events {
		events[i].Machine = normalize.Name(events[i].Machine)
		events[i].Responsible = normalize.Name(events[i].Responsible)

		if events[i].Kind == "" {
			events[i].Kind = models.Corrective
		}

		if events[i].ID == "" {
			events[i].ID = s.newID()
			assigned++
		}
	}

	return events, assigned, nil
}

func (s *Storage) mutate(ctx context.Context, fn func([]models.Event) ([]models.Event, error)) error {
	s.emx.Lock()
	defer s.emx.Unlock()

	events, _, err := s.load(ctx)
	if err != nil {
		return err
	}

	events, err = fn(events)
	if err != nil {
		return err
	}

	if err := s.keeper.SaveEvents(ctx, events); err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}

	return nil
}

// locate resolves a row reference: an event id or a positional index into the full table.
func locate(events []models.Event, ref string) (int, error) {
	ref = strings.TrimSpace(ref)

	for i := range events {
		if events[i].ID == ref {
			return i, nil
		}
	}

	if idx, err := strconv.Atoi(ref); err == nil && idx >= 0 && idx < len(events) {
		return idx, nil
	}

	return -1, ErrNotFound
}

// AddEvent appends a new event. Preventive events with a frequency get next_due = date + frequency.
func (s *Storage) AddEvent(ctx context.Context, in models.EventInput) (models.Event, error) {
	ev, err := buildEvent(in)
	if err != nil {
		return models.Event{}, err
	}

	ev.ID = s.newID()

	if ev.Kind == models.Preventive && ev.FrequencyDays != nil {
		day, _ := ev.Day()
		due := models.FormatDate(day.AddDate(0, 0, *ev.FrequencyDays))
		ev.NextDue = &due
	}

	err = s.mutate(ctx, func(events []models.Event) ([]models.Event, error) {
		return append(events, ev), nil
	})
	if err != nil {
		return models.Event{}, err
	}

	s.log.Info("event added", zap.String("id", ev.ID), zap.String("machine", ev.Machine))

	return ev, nil
}

// EditEvent replaces the user supplied fields of an event. next_due is kept,
// except that it is cleared when the event stops being preventive.
func (s *Storage) EditEvent(ctx context.Context, ref string, in models.EventInput) (models.Event, error) {
	upd, err := buildEvent(in)
	if err != nil {
		return models.Event{}, err
	}

	var out models.Event

	err = s.mutate(ctx, func(events []models.Event) ([]models.Event, error) {
		idx, err := locate(events, ref)
		if err != nil {
			return nil, err
		}

		upd.ID = events[idx].ID
		upd.NextDue = events[idx].NextDue

		if upd.Kind != models.Preventive {
			upd.NextDue = nil
		}

		events[idx] = upd
		out = upd

		return events, nil
	})
	if err != nil {
		return models.Event{}, err
	}

	s.log.Info("event updated", zap.String("id", out.ID))

	return out, nil
}

// DeleteEvent removes an event and returns it.
func (s *Storage) DeleteEvent(ctx context.Context, ref string) (models.Event, error) {
	var out models.Event

	err := s.mutate(ctx, func(events []models.Event) ([]models.Event, error) {
		idx, err := locate(events, ref)
		if err != nil {
			return nil, err
		}

		out = events[idx]

		return append(events[:idx:idx], events[idx+1:]...), nil
	})
	if err != nil {
		return models.Event{}, err
	}

	s.log.Info("event deleted", zap.String("id", out.ID))

	return out, nil
}

// MarkPreventiveDone moves a preventive event to today and schedules the next occurrence
// frequency_days later. A missing frequency schedules it for today.
func (s *Storage) MarkPreventiveDone(ctx context.Context, ref string, now time.Time) (models.Event, error) {
	var out models.Event

	today := models.Today(now)

	err := s.mutate(ctx, func(events []models.Event) ([]models.Event, error) {
		idx, err := locate(events, ref)
		if err != nil {
			return nil, err
		}

		if events[idx].Kind != models.Preventive {
			return nil, ErrNotPreventive
		}

		freq := 0
		if events[idx].FrequencyDays != nil {
			freq = *events[idx].FrequencyDays
		}

		due := models.FormatDate(today.AddDate(0, 0, freq))
		events[idx].Date = models.FormatDate(today)
		events[idx].NextDue = &due
		out = events[idx]

		return events, nil
	})
	if err != nil {
		return models.Event{}, err
	}

	s.log.Info("preventive marked done", zap.String("id", out.ID), zap.String("next_due", *out.NextDue))

	return out, nil
}

func (s *Storage) GetBaseConnection(ctx context.Context) bool {
	if s.keeper == nil {
		return false
	}

	return s.keeper.Ping(ctx)
}

func buildEvent(in models.EventInput) (models.Event, error) {
	var missing []string

	machine := normalize.Name(in.Machine)
	if machine == "" {
		missing = append(missing, "machine")
	}

	day, ok := models.ParseStrictDate(in.Date)
	if !ok {
		missing = append(missing, "date")
	}

	if len(missing) > 0 {
		return models.Event{}, &models.ValidationError{Fields: missing}
	}

	ev := models.Event{
		Machine:       machine,
		Date:          models.FormatDate(day),
		Description:   strings.TrimSpace(in.Description),
		Responsible:   normalize.Name(in.Responsible),
		StartTime:     optional(in.StartTime),
		EndTime:       optional(in.EndTime),
		DurationHours: ParseDuration(in.DurationHours),
		Kind:          models.ParseKind(in.Kind),
		FrequencyDays: ParseFrequency(in.FrequencyDays),
	}

	return ev, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}

// ParseDuration reads an hour count; malformed values are absent.
func ParseDuration(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != v {
		return nil
	}

	return &v
}

// ParseFrequency reads a positive day count; anything else is absent.
// Stored values such as "30.0" are accepted.
func ParseFrequency(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || f != float64(int(f)) {
			return nil
		}

		v = int(f)
	}

	if v <= 0 {
		return nil
	}

	return &v
}
