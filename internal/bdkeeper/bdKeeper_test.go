package bdkeeper

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wurt83ow/maintracker/internal/models"
	"go.uber.org/zap"
)

var eventCols = []string{
	"id", "machine", "event_date", "description", "responsible",
	"start_time", "end_time", "duration_hours", "kind", "frequency_days", "next_due",
}

func TestLoadEvents(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows(eventCols).
		AddRow("a", "Torno", "2024-01-01", "Falla", "Ana", "08:00", "10:00", "2", "Preventive", "30", "2024-01-31").
		AddRow("b", "Prensa", "not a date", "", "", "", "", "", "Corrective", "", "")
	mock.ExpectQuery(`(?s)SELECT(.+)FROM(.+)events`).WillReturnRows(rows)

	kp := NewWithPool(mock, zap.NewNop())

	events, err := kp.LoadEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, "Torno", events[0].Machine)
	require.NotNil(t, events[0].DurationHours)
	assert.Equal(t, 2.0, *events[0].DurationHours)
	assert.Equal(t, 30, *events[0].FrequencyDays)
	assert.Equal(t, "2024-01-31", *events[0].NextDue)
	assert.Equal(t, models.Preventive, events[0].Kind)

	assert.Equal(t, "not a date", events[1].Date)
	assert.Nil(t, events[1].StartTime)
	assert.Nil(t, events[1].DurationHours)
	assert.Nil(t, events[1].FrequencyDays)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEventsRewritesTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	dur := 1.5
	events := []models.Event{
		{ID: "a", Machine: "Torno", Date: "2024-01-01", Kind: models.Corrective, DurationHours: &dur},
		{ID: "b", Machine: "Prensa", Date: "2024-01-02", Kind: models.Corrective},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM events").WillReturnResult(pgxmock.NewResult("DELETE", 3))
	mock.ExpectExec("INSERT INTO events").
		WithArgs(0, "a", "Torno", "2024-01-01", "", "", "", "", "1.5", "Corrective", "", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO events").
		WithArgs(1, "b", "Prensa", "2024-01-02", "", "", "", "", "", "Corrective", "", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	kp := NewWithPool(mock, zap.NewNop())
	require.NoError(t, kp.SaveEvents(context.Background(), events))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEventsRollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM events").WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO events").WillReturnError(errors.New("unique violation"))
	mock.ExpectRollback()

	kp := NewWithPool(mock, zap.NewNop())
	err = kp.SaveEvents(context.Background(), []models.Event{{ID: "a", Kind: models.Corrective}})
	assert.ErrorContains(t, err, "unique violation")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`(?s)SELECT(.+)FROM(.+)users`).
		WillReturnRows(pgxmock.NewRows([]string{"username", "password", "role"}).AddRow("admin", "1234", "admin"))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users").WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("INSERT INTO users").WithArgs("admin", "1234", "admin").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO users").WithArgs("luis", "pw", "viewer").WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	kp := NewWithPool(mock, zap.NewNop())
	ctx := context.Background()

	users, err := kp.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.User{{Username: "admin", Password: "1234", Role: "admin"}}, users)

	users = append(users, models.User{Username: "luis", Password: "pw", Role: "viewer"})
	require.NoError(t, kp.SaveUsers(ctx, users))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("down"))

	kp := NewWithPool(mock, zap.NewNop())
	assert.True(t, kp.Ping(context.Background()))
	assert.False(t, kp.Ping(context.Background()))
}
