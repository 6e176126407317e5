package storage

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wurt83ow/maintracker/internal/models"
	"go.uber.org/zap"
)

// memKeeper keeps snapshots in memory and copies on every load and save.
type memKeeper struct {
	events []models.Event
	users  []models.User
	saves  int
}

func (k *memKeeper) LoadEvents(context.Context) ([]models.Event, error) {
	return append([]models.Event(nil), k.events...), nil
}

func (k *memKeeper) SaveEvents(_ context.Context, events []models.Event) error {
	k.events = append([]models.Event(nil), events...)
	k.saves++

	return nil
}

func (k *memKeeper) LoadUsers(context.Context) ([]models.User, error) {
	return append([]models.User(nil), k.users...), nil
}

func (k *memKeeper) SaveUsers(_ context.Context, users []models.User) error {
	k.users = append([]models.User(nil), users...)

	return nil
}

func (k *memKeeper) Ping(context.Context) bool { return true }
func (k *memKeeper) Close() bool               { return true }

// MockKeeper is a testify mock of the Keeper interface
type MockKeeper struct {
	mock.Mock
}

func (m *MockKeeper) LoadEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockKeeper) SaveEvents(ctx context.Context, events []models.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockKeeper) LoadUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockKeeper) SaveUsers(ctx context.Context, users []models.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *MockKeeper) Ping(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockKeeper) Close() bool {
	args := m.Called()
	return args.Bool(0)
}

func newTestStorage(k Keeper) *Storage {
	s := NewStorage(k, zap.NewNop())

	n := 0
	s.newID = func() string {
		n++
		return "id-" + strconv.Itoa(n)
	}

	return s
}

func TestEventsNormalizesAndAssignsIDs(t *testing.T) {
	k := &memKeeper{events: []models.Event{
		{Machine: "  tORNO ", Responsible: "ANA", Date: "2024-01-01"},
		{ID: "keep", Machine: "prensa", Date: "bad date"},
	}}
	s := newTestStorage(k)

	events, err := s.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Torno", events[0].Machine)
	assert.Equal(t, "Ana", events[0].Responsible)
	assert.Equal(t, models.Corrective, events[0].Kind)
	assert.Equal(t, "id-1", events[0].ID)
	assert.Equal(t, "keep", events[1].ID)
	assert.Equal(t, "bad date", events[1].Date)

	// reads never write back
	assert.Equal(t, 0, k.saves)
	assert.Empty(t, k.events[0].ID)
}

func TestPrepareEventsPersistsIDsOnce(t *testing.T) {
	k := &memKeeper{events: []models.Event{
		{Machine: "torno", Date: "2024-01-01"},
		{ID: "keep", Machine: "prensa", Date: "2024-01-02"},
	}}
	s := newTestStorage(k)

	require.NoError(t, s.PrepareEvents(context.Background()))
	assert.Equal(t, 1, k.saves)
	assert.Equal(t, "id-1", k.events[0].ID)

	again, err := s.Events(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id-1", again[0].ID)

	require.NoError(t, s.PrepareEvents(context.Background()))
	assert.Equal(t, 1, k.saves)
}

func TestPrepareEventsSaveFailure(t *testing.T) {
	k := new(MockKeeper)
	k.On("LoadEvents", mock.Anything).Return([]models.Event{{Machine: "A", Date: "2024-01-01"}}, nil)
	k.On("SaveEvents", mock.Anything, mock.Anything).Return(errors.New("read-only"))

	s := newTestStorage(k)

	assert.ErrorContains(t, s.PrepareEvents(context.Background()), "read-only")
}

func TestAddEvent(t *testing.T) {
	k := &memKeeper{}
	s := newTestStorage(k)

	ev, err := s.AddEvent(context.Background(), models.EventInput{
		Machine:       " compresor ",
		Date:          "2024-03-01",
		Description:   "Cambio de filtro",
		Responsible:   "luis",
		DurationHours: "1,5",
		Kind:          "Preventive",
		FrequencyDays: "30",
	})
	require.NoError(t, err)

	assert.Equal(t, "Compresor", ev.Machine)
	assert.Equal(t, "Luis", ev.Responsible)
	require.NotNil(t, ev.DurationHours)
	assert.Equal(t, 1.5, *ev.DurationHours)
	require.NotNil(t, ev.NextDue)
	assert.Equal(t, "2024-03-31", *ev.NextDue)
	assert.Nil(t, ev.StartTime)
	assert.Len(t, k.events, 1)
}

func TestAddEventCorrectiveHasNoNextDue(t *testing.T) {
	s := newTestStorage(&memKeeper{})

	ev, err := s.AddEvent(context.Background(), models.EventInput{
		Machine: "Torno", Date: "2024-03-01", FrequencyDays: "30", DurationHours: "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, models.Corrective, ev.Kind)
	assert.Nil(t, ev.NextDue)
	assert.Nil(t, ev.DurationHours)
}

func TestAddEventValidation(t *testing.T) {
	k := &memKeeper{}
	s := newTestStorage(k)

	_, err := s.AddEvent(context.Background(), models.EventInput{Machine: "  ", Date: "01/03/2024"})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"machine", "date"}, verr.Fields)
	assert.Empty(t, k.events)
}

func TestDeleteByIndexThenReload(t *testing.T) {
	k := &memKeeper{events: []models.Event{
		{ID: "a", Machine: "A", Date: "2024-01-01"},
		{ID: "b", Machine: "B", Date: "2024-01-02"},
		{ID: "c", Machine: "C", Date: "2024-01-03"},
	}}
	s := newTestStorage(k)

	deleted, err := s.DeleteEvent(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "c", deleted.ID)

	events, err := s.Events(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "b", events[1].ID)
}

func TestDeleteByID(t *testing.T) {
	k := &memKeeper{events: []models.Event{
		{ID: "a", Machine: "A", Date: "2024-01-01"},
		{ID: "b", Machine: "B", Date: "2024-01-02"},
	}}
	s := newTestStorage(k)

	_, err := s.DeleteEvent(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, k.events, 1)
	assert.Equal(t, "b", k.events[0].ID)
}

func TestMutationsOutOfRange(t *testing.T) {
	k := &memKeeper{events: []models.Event{{ID: "a", Machine: "A", Date: "2024-01-01", Kind: models.Preventive}}}
	s := newTestStorage(k)
	ctx := context.Background()

	for _, ref := range []string{"1", "-1", "missing"} {
		_, err := s.DeleteEvent(ctx, ref)
		assert.ErrorIs(t, err, ErrNotFound, ref)

		_, err = s.EditEvent(ctx, ref, models.EventInput{Machine: "A", Date: "2024-01-01"})
		assert.ErrorIs(t, err, ErrNotFound, ref)

		_, err = s.MarkPreventiveDone(ctx, ref, time.Now())
		assert.ErrorIs(t, err, ErrNotFound, ref)
	}

	assert.Len(t, k.events, 1)
	assert.Zero(t, k.saves)
}

func TestEditEvent(t *testing.T) {
	due := "2024-02-01"
	freq := 31
	k := &memKeeper{events: []models.Event{
		{ID: "a", Machine: "A", Date: "2024-01-01", Kind: models.Preventive, FrequencyDays: &freq, NextDue: &due},
	}}
	s := newTestStorage(k)

	ev, err := s.EditEvent(context.Background(), "0", models.EventInput{
		Machine: "b", Date: "2024-01-05", Kind: "Preventive", FrequencyDays: "10", StartTime: "08:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "a", ev.ID)
	assert.Equal(t, "B", ev.Machine)
	assert.Equal(t, "2024-01-05", ev.Date)
	require.NotNil(t, ev.NextDue)
	assert.Equal(t, "2024-02-01", *ev.NextDue)
	assert.Equal(t, 10, *ev.FrequencyDays)

	ev, err = s.EditEvent(context.Background(), "a", models.EventInput{Machine: "b", Date: "2024-01-05"})
	require.NoError(t, err)
	assert.Equal(t, models.Corrective, ev.Kind)
	assert.Nil(t, ev.NextDue)
}

func TestMarkPreventiveDone(t *testing.T) {
	freq := 30
	k := &memKeeper{events: []models.Event{
		{ID: "p", Machine: "A", Date: "2024-01-01", Kind: models.Preventive, FrequencyDays: &freq},
		{ID: "q", Machine: "A", Date: "2024-01-01", Kind: models.Preventive},
		{ID: "c", Machine: "A", Date: "2024-01-01", Kind: models.Corrective},
	}}
	s := newTestStorage(k)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	ev, err := s.MarkPreventiveDone(context.Background(), "0", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", ev.Date)
	assert.Equal(t, "2024-07-01", *ev.NextDue)
	assert.Equal(t, "2024-07-01", *k.events[0].NextDue)

	ev, err = s.MarkPreventiveDone(context.Background(), "q", now)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", *ev.NextDue)

	_, err = s.MarkPreventiveDone(context.Background(), "c", now)
	assert.ErrorIs(t, err, ErrNotPreventive)
}

func TestLoadFailureIsReported(t *testing.T) {
	k := new(MockKeeper)
	k.On("LoadEvents", mock.Anything).Return([]models.Event(nil), errors.New("disk gone"))

	s := newTestStorage(k)

	_, err := s.Events(context.Background())
	assert.ErrorContains(t, err, "disk gone")

	_, err = s.DeleteEvent(context.Background(), "0")
	assert.Error(t, err)
	k.AssertNotCalled(t, "SaveEvents", mock.Anything, mock.Anything)
}

func TestSaveFailureIsReported(t *testing.T) {
	k := new(MockKeeper)
	k.On("LoadEvents", mock.Anything).Return([]models.Event{}, nil)
	k.On("SaveEvents", mock.Anything, mock.Anything).Return(errors.New("read-only"))

	s := newTestStorage(k)

	_, err := s.AddEvent(context.Background(), models.EventInput{Machine: "A", Date: "2024-01-01"})
	assert.ErrorContains(t, err, "read-only")
	k.AssertExpectations(t)
}
