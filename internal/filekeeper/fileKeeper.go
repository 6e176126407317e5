package filekeeper

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wurt83ow/maintracker/internal/models"
	"github.com/wurt83ow/maintracker/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EventsFile = "events.csv"
	UsersFile  = "users.csv"
)

var eventColumns = []string{
	"id", "machine", "date", "description", "responsible",
	"start_time", "end_time", "duration_hours", "kind", "frequency_days", "next_due",
}

var userColumns = []string{"username", "password", "role"}

// legacy headers written by the first version of the tool
var aliases = map[string]string{
	"máquina":               "machine",
	"maquina":               "machine",
	"fecha":                 "date",
	"descripción":           "description",
	"descripcion":           "description",
	"responsable":           "responsible",
	"hora_inicio":           "start_time",
	"hora_fin":              "end_time",
	"duración_horas":        "duration_hours",
	"duracion_horas":        "duration_hours",
	"tipo":                  "kind",
	"frecuencia_dias":       "frequency_days",
	"próximo_mantenimiento": "next_due",
	"proximo_mantenimiento": "next_due",
	"usuario":               "username",
	"contrasena":            "password",
	"contraseña":            "password",
	"rol":                   "role",
}

type Log interface {
	Info(string, ...zapcore.Field)
}

// FileKeeper stores the event and user tables as CSV files in one directory.
type FileKeeper struct {
	dir string
	log Log
}

var _ storage.Keeper = (*FileKeeper)(nil)

func NewFileKeeper(dir string, log Log) (*FileKeeper, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &FileKeeper{dir: dir, log: log}, nil
}

func (fk *FileKeeper) LoadEvents(_ context.Context) ([]models.Event, error) {
	records, err := fk.read(EventsFile)
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(records))
	for _, r := range records {
		ev := models.Event{
			ID:            r["id"],
			Machine:       r["machine"],
			Date:          r["date"],
			Description:   r["description"],
			Responsible:   r["responsible"],
			StartTime:     optional(r["start_time"]),
			EndTime:       optional(r["end_time"]),
			DurationHours: storage.ParseDuration(r["duration_hours"]),
			Kind:          models.ParseKind(r["kind"]),
			FrequencyDays: storage.ParseFrequency(r["frequency_days"]),
			NextDue:       optional(r["next_due"]),
		}

		events = append(events, ev)
	}

	return events, nil
}

func (fk *FileKeeper) SaveEvents(_ context.Context, events []models.Event) error {
	rows := make([][]string, 0, len(events))

	for _, e := range events {
		rows = append(rows, append([]string{e.ID}, e.Record()...))
	}

	return fk.write(EventsFile, eventColumns, rows)
}

func (fk *FileKeeper) LoadUsers(_ context.Context) ([]models.User, error) {
	records, err := fk.read(UsersFile)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(records))
	for _, r := range records {
		users = append(users, models.User{Username: r["username"], Password: r["password"], Role: r["role"]})
	}

	return users, nil
}

func (fk *FileKeeper) SaveUsers(_ context.Context, users []models.User) error {
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{u.Username, u.Password, u.Role})
	}

	return fk.write(UsersFile, userColumns, rows)
}

// Ping reports whether the data directory is reachable.
func (fk *FileKeeper) Ping(_ context.Context) bool {
	info, err := os.Stat(fk.dir)

	return err == nil && info.IsDir()
}

func (fk *FileKeeper) Close() bool {
	return true
}

// read returns one map per data row keyed by canonical column name.
// A missing file is an empty table.
func (fk *FileKeeper) read(name string) ([]map[string]string, error) {
	f, err := os.Open(filepath.Join(fk.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", name, err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if canonical, ok := aliases[h]; ok {
			h = canonical
		}

		columns[i] = h
	}

	var out []map[string]string

	for line := 2; ; line++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			fk.log.Info("skipping malformed csv line", zap.String("file", name), zap.Int("line", line), zap.Error(err))
			continue
		}

		m := make(map[string]string, len(columns))
		for i, v := range rec {
			if i < len(columns) {
				m[columns[i]] = v
			}
		}

		out = append(out, m)
	}

	return out, nil
}

// write replaces the file through a temporary file in the same directory.
func (fk *FileKeeper) write(name string, header []string, rows [][]string) error {
	tmp, err := os.CreateTemp(fk.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(fk.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}

	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "none", "null", "nat":
		return nil
	}

	return &s
}
