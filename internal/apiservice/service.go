package apiservice

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/wurt83ow/maintracker/internal/metrics"
	"github.com/wurt83ow/maintracker/internal/models"
	"github.com/wurt83ow/maintracker/internal/workerpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultInterval = time.Hour
	defaultHorizon  = metrics.UpcomingHorizon
)

type External interface {
	Notify(context.Context, models.PreventiveAlert) error
}

type Log interface {
	Info(string, ...zapcore.Field)
}

type Storage interface {
	Events(context.Context) ([]models.Event, error)
}

type Pool interface {
	AddTask(task *workerpool.Task)
}

// ApiService periodically checks preventive tasks and hands the ones that are
// overdue or due within the horizon to the worker pool for delivery.
// An alert is sent once per event, due date and status; failed deliveries are retried on the next tick.
// Workers settle their own outcome so the check loop never waits on them.
type ApiService struct {
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc
	external   External
	pool       Pool
	storage    Storage
	log        Log
	interval   time.Duration
	horizon    int
	now        func() time.Time

	mx       sync.Mutex
	notified map[string]struct{}
}

func NewApiService(external External, pool Pool, storage Storage,
	log Log, taskInterval func() string, horizonDays func() string,
) *ApiService {
	interval := defaultInterval

	ms, err := strconv.Atoi(taskInterval())
	if err != nil || ms <= 0 {
		log.Info("cannot convert option 'TaskExecutionInterval': ", zap.String("value", taskInterval()), zap.Error(err))
	} else {
		interval = time.Duration(ms) * time.Millisecond
	}

	horizon, err := strconv.Atoi(horizonDays())
	if err != nil || horizon < 0 {
		log.Info("cannot convert option 'NotifyHorizonDays': ", zap.String("value", horizonDays()), zap.Error(err))

		horizon = defaultHorizon
	}

	return &ApiService{
		external: external,
		pool:     pool,
		storage:  storage,
		log:      log,
		interval: interval,
		horizon:  horizon,
		now:      time.Now,
		notified: make(map[string]struct{}),
	}
}

// Start runs the check loop in the background until Stop.
func (a *ApiService) Start() {
	ctx, cancelFunc := context.WithCancel(context.Background())
	a.cancelFunc = cancelFunc
	a.wg.Add(1)

	go a.watch(ctx)
}

func (a *ApiService) Stop() {
	if a.cancelFunc == nil {
		return
	}

	a.cancelFunc()
	a.wg.Wait()
}

func (a *ApiService) watch(ctx context.Context) {
	defer a.wg.Done()

	t := time.NewTicker(a.interval)
	defer t.Stop()

	a.check(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			a.check(ctx)
		}
	}
}

func (a *ApiService) check(ctx context.Context) {
	alerts, err := a.Due(ctx)
	if err != nil {
		a.log.Info("cannot load events for preventive check: ", zap.Error(err))
		return
	}

	a.CreateAlertTasks(ctx, alerts)
}

// Due lists the preventive tasks that deserve an alert today.
func (a *ApiService) Due(ctx context.Context) ([]models.PreventiveAlert, error) {
	events, err := a.storage.Events(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]models.PreventiveAlert, 0)

	for _, item := range metrics.PreventiveList(events, a.now()) {
		if item.DaysRemaining > a.horizon {
			continue
		}

		alerts = append(alerts, models.PreventiveAlert{
			EventID:       item.ID,
			Machine:       item.Machine,
			NextDue:       item.NextDue,
			DaysRemaining: item.DaysRemaining,
			Status:        string(item.Status),
		})
	}

	return alerts, nil
}

// CreateAlertTasks queues one delivery task per alert not yet sent.
func (a *ApiService) CreateAlertTasks(ctx context.Context, alerts []models.PreventiveAlert) {
	for _, alert := range alerts {
		if ctx.Err() != nil {
			return
		}

		key := alertKey(alert)
		if !a.claim(key) {
			continue
		}

		task := workerpool.NewTask(func(data interface{}) error {
			al, ok := data.(models.PreventiveAlert)
			if !ok {
				return fmt.Errorf("unexpected task payload %T", data)
			}

			err := a.external.Notify(ctx, al)
			a.settle(key, err)

			if err != nil {
				return fmt.Errorf("failed to deliver alert for %s: %w", al.Machine, err)
			}

			return nil
		}, alert)

		a.pool.AddTask(task)
	}
}

func (a *ApiService) claim(key string) bool {
	a.mx.Lock()
	defer a.mx.Unlock()

	if _, ok := a.notified[key]; ok {
		return false
	}

	a.notified[key] = struct{}{}

	return true
}

// settle releases the claim on a failed delivery so the next tick retries it.
func (a *ApiService) settle(key string, err error) {
	if err == nil {
		return
	}

	a.mx.Lock()
	delete(a.notified, key)
	a.mx.Unlock()
}

func alertKey(al models.PreventiveAlert) string {
	return al.EventID + "|" + al.NextDue + "|" + al.Status
}
