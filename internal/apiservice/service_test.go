package apiservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wurt83ow/maintracker/internal/models"
	"github.com/wurt83ow/maintracker/internal/workerpool"
	"go.uber.org/zap"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Events(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Event), args.Error(1)
}

type recorder struct {
	mx    sync.Mutex
	calls []models.PreventiveAlert
	fail  int
}

func (r *recorder) Notify(_ context.Context, al models.PreventiveAlert) error {
	r.mx.Lock()
	defer r.mx.Unlock()

	r.calls = append(r.calls, al)
	if r.fail > 0 {
		r.fail--
		return errors.New("webhook down")
	}

	return nil
}

func (r *recorder) count() int {
	r.mx.Lock()
	defer r.mx.Unlock()

	return len(r.calls)
}

func preventive(id, due string) models.Event {
	freq := 30
	return models.Event{ID: id, Machine: "M-" + id, Date: "2024-05-01", Kind: models.Preventive, FrequencyDays: &freq, NextDue: &due}
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
}

func newService(t *testing.T, ext External, pool Pool, events []models.Event, interval string) *ApiService {
	t.Helper()

	st := new(MockStorage)
	st.On("Events", mock.Anything).Return(events, nil)

	a := NewApiService(ext, pool, st, zap.NewNop(), func() string { return interval }, func() string { return "7" })
	a.now = fixedNow

	return a
}

func TestDue(t *testing.T) {
	events := []models.Event{
		preventive("late", "2024-05-30"),
		preventive("today", "2024-06-01"),
		preventive("soon", "2024-06-04"),
		preventive("far", "2024-07-01"),
		{ID: "corr", Machine: "X", Date: "2024-06-01", Kind: models.Corrective},
	}

	a := newService(t, &recorder{}, nil, events, "1000")

	alerts, err := a.Due(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 3)

	assert.Equal(t, "late", alerts[0].EventID)
	assert.Equal(t, -2, alerts[0].DaysRemaining)
	assert.Equal(t, "Overdue", alerts[0].Status)
	assert.Equal(t, "Due-Today", alerts[1].Status)
	assert.Equal(t, "Upcoming", alerts[2].Status)
	assert.Equal(t, 3, alerts[2].DaysRemaining)
}

func TestDueStorageError(t *testing.T) {
	st := new(MockStorage)
	st.On("Events", mock.Anything).Return([]models.Event(nil), errors.New("disk"))

	a := NewApiService(&recorder{}, nil, st, zap.NewNop(), func() string { return "x" }, func() string { return "-1" })

	assert.Equal(t, defaultInterval, a.interval)
	assert.Equal(t, defaultHorizon, a.horizon)

	_, err := a.Due(context.Background())
	assert.Error(t, err)
}

func runPool(t *testing.T) *workerpool.Pool {
	t.Helper()

	pool := workerpool.NewPool(nil, func() string { return "2" }, zap.NewNop())
	go pool.RunBackground()
	t.Cleanup(pool.Stop)

	return pool
}

func TestAlertsAreSentOnce(t *testing.T) {
	ext := &recorder{}
	a := newService(t, ext, runPool(t), []models.Event{preventive("late", "2024-05-30"), preventive("soon", "2024-06-04")}, "10")

	a.Start()
	defer a.Stop()

	assert.Eventually(t, func() bool { return ext.count() == 2 }, time.Second, 5*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 2, ext.count())
}

func TestFailedAlertIsRetried(t *testing.T) {
	ext := &recorder{fail: 1}
	a := newService(t, ext, runPool(t), []models.Event{preventive("late", "2024-05-30")}, "10")

	a.Start()
	defer a.Stop()

	assert.Eventually(t, func() bool { return ext.count() == 2 }, time.Second, 5*time.Millisecond)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 2, ext.count())
}

func TestAlertsBeyondPoolBuffer(t *testing.T) {
	const total = 1100

	events := make([]models.Event, 0, total)
	for i := 0; i < total; i++ {
		events = append(events, preventive(fmt.Sprintf("ev-%04d", i), "2024-05-30"))
	}

	ext := &recorder{}
	a := newService(t, ext, runPool(t), events, "10")

	a.Start()
	defer a.Stop()

	assert.Eventually(t, func() bool { return ext.count() == total }, 3*time.Second, 10*time.Millisecond)
}

func TestSettleReleasesFailedClaim(t *testing.T) {
	a := newService(t, &recorder{}, nil, nil, "1000")

	require.True(t, a.claim("k"))
	require.False(t, a.claim("k"))

	a.settle("k", nil)
	assert.False(t, a.claim("k"))

	a.settle("k", errors.New("timeout"))
	assert.True(t, a.claim("k"))
}
