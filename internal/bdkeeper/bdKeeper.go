package bdkeeper

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // registers a migrate driver.
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers a pgx driver.
	"github.com/wurt83ow/maintracker/internal/models"
	"github.com/wurt83ow/maintracker/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log interface {
	Info(string, ...zapcore.Field)
}

// DBPool is the subset of *pgxpool.Pool the keeper needs.
type DBPool interface {
	Begin(context.Context) (pgx.Tx, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	Ping(context.Context) error
	Close()
}

// BDKeeper stores the event and user tables in PostgreSQL.
type BDKeeper struct {
	pool DBPool
	log  Log
}

var _ storage.Keeper = (*BDKeeper)(nil)

func NewBDKeeper(dsn func() string, log Log) *BDKeeper {
	addr := dsn()
	if addr == "" {
		log.Info("database dsn is empty")

		return nil
	}

	if err := migrateUp(addr, log); err != nil {
		log.Info("Error while performing migration: ", zap.Error(err))

		return nil
	}

	pool, err := pgxpool.New(context.Background(), addr)
	if err != nil {
		log.Info("Unable to connection to database: ", zap.Error(err))

		return nil
	}

	log.Info("Connected!")

	return NewWithPool(pool, log)
}

func NewWithPool(pool DBPool, log Log) *BDKeeper {
	return &BDKeeper{
		pool: pool,
		log:  log,
	}
}

func migrateUp(dsn string, log Log) error {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("unable to open database: %w", err)
	}
	defer conn.Close()

	driver, err := postgres.WithInstance(conn, new(postgres.Config))
	if err != nil {
		return fmt.Errorf("error getting driver: %w", err)
	}

	dir, err := os.Getwd()
	if err != nil {
		log.Info("error getting current directory: ", zap.Error(err))
	}

	// fix error test path
	mp := dir + "/migrations"

	var path string
	if _, err := os.Stat(mp); err != nil {
		path = "../../"
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%smigrations", path),
		"postgres",
		driver)
	if err != nil {
		return fmt.Errorf("error creating migration instance: %w", err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func (kp *BDKeeper) LoadEvents(ctx context.Context) ([]models.Event, error) {
	sql := `
	SELECT
		id,
		machine,
		event_date,
		description,
		responsible,
		start_time,
		end_time,
		duration_hours,
		kind,
		frequency_days,
		next_due
	FROM
		events
	ORDER BY
		position`

	rows, err := kp.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	defer rows.Close()

	data := make([]models.Event, 0)

	for rows.Next() {
		var (
			m                                           models.Event
			start, end, duration, kind, freq, nextDue string
		)

		err := rows.Scan(
			&m.ID,
			&m.Machine,
			&m.Date,
			&m.Description,
			&m.Responsible,
			&start,
			&end,
			&duration,
			&kind,
			&freq,
			&nextDue,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load events: %w", err)
		}

		m.StartTime = optional(start)
		m.EndTime = optional(end)
		m.DurationHours = storage.ParseDuration(duration)
		m.Kind = models.ParseKind(kind)
		m.FrequencyDays = storage.ParseFrequency(freq)
		m.NextDue = optional(nextDue)

		data = append(data, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	return data, nil
}

// SaveEvents rewrites the whole events table in one transaction.
func (kp *BDKeeper) SaveEvents(ctx context.Context, events []models.Event) error {
	tx, err := kp.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM events"); err != nil {
		return rollback(ctx, tx, fmt.Errorf("failed to clear events: %w", err))
	}

	query := `
		INSERT INTO events (
			position, id, machine, event_date, description, responsible,
			start_time, end_time, duration_hours, kind, frequency_days, next_due
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)`

	for i, e := range events {
		args := []interface{}{i, e.ID}
		for _, v := range e.Record() {
			args = append(args, v)
		}

		_, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return rollback(ctx, tx, fmt.Errorf("failed to save event %s: %w", e.ID, err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit events: %w", err)
	}

	kp.log.Info("events saved", zap.Int("count", len(events)))

	return nil
}

func (kp *BDKeeper) LoadUsers(ctx context.Context) ([]models.User, error) {
	sql := `
	SELECT
		username,
		password,
		role
	FROM
		users
	ORDER BY
		username`

	rows, err := kp.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	defer rows.Close()

	data := make([]models.User, 0)

	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Username, &u.Password, &u.Role); err != nil {
			return nil, fmt.Errorf("failed to load users: %w", err)
		}

		data = append(data, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	return data, nil
}

// SaveUsers rewrites the whole users table in one transaction.
func (kp *BDKeeper) SaveUsers(ctx context.Context, users []models.User) error {
	tx, err := kp.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM users"); err != nil {
		return rollback(ctx, tx, fmt.Errorf("failed to clear users: %w", err))
	}

	for _, u := range users {
		_, err := tx.Exec(ctx, "INSERT INTO users (username, password, role) VALUES ($1, $2, $3)",
			u.Username, u.Password, u.Role)
		if err != nil {
			return rollback(ctx, tx, fmt.Errorf("failed to save user %s: %w", u.Username, err))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit users: %w", err)
	}

	return nil
}

func (kp *BDKeeper) Ping(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := kp.pool.Ping(ctx); err != nil {
		return false
	}

	return true
}

func (kp *BDKeeper) Close() bool {
	kp.pool.Close()

	return true
}

func rollback(ctx context.Context, tx pgx.Tx, cause error) error {
	if err := tx.Rollback(ctx); err != nil {
		return errors.Join(cause, err)
	}

	return cause
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
