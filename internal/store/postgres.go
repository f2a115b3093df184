package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/eventmatch-ai/event-advisor/internal/model"
)

// Schema is the SQL DDL for the events table. Execute it via
// [PostgresStore.Migrate] or apply it manually during deployment.
const Schema = `
CREATE TABLE IF NOT EXISTS events (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    location    TEXT NOT NULL DEFAULT '',
    start_date  TIMESTAMPTZ NOT NULL,
    end_date    TIMESTAMPTZ NOT NULL,
    website     TEXT NOT NULL DEFAULT '',
    longitude   DOUBLE PRECISION NOT NULL DEFAULT 0,
    latitude    DOUBLE PRECISION NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_events_name ON events(name);
CREATE INDEX IF NOT EXISTS idx_events_dates ON events(start_date, end_date);
`

// DB is the database interface used by [PostgresStore]. Both *pgxpool.Pool
// and *pgx.Conn satisfy this interface.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore is an [EventStore] backed by a PostgreSQL database.
type PostgresStore struct {
	db DB
}

// Compile-time interface check.
var _ EventStore = (*PostgresStore)(nil)

// NewPostgresStore creates a new [PostgresStore] that uses the given database
// connection or pool. The caller is responsible for calling
// [PostgresStore.Migrate] to ensure the schema exists before issuing queries.
func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate executes the [Schema] DDL against the database.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("store: migrate: %w", err)
	}
	return nil
}

// Ping verifies the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	var one int
	if err := s.db.QueryRow(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("store: ping: %w", err)
	}
	return nil
}

// ListEvents returns events matching the filter, ordered by start date.
func (s *PostgresStore) ListEvents(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.StartAfter != nil {
		conds = append(conds, "start_date >= "+arg(*f.StartAfter))
	}
	if f.EndBefore != nil {
		conds = append(conds, "end_date <= "+arg(*f.EndBefore))
	}
	if f.Location != "" {
		conds = append(conds, "location ILIKE "+arg("%"+f.Location+"%"))
	}
	if f.ExcludeName != "" {
		conds = append(conds, "name <> "+arg(f.ExcludeName))
	}

	query := `SELECT id, name, description, location, start_date, end_date, website, longitude, latitude FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_date"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: list events: %w", err)
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Location,
			&e.StartDate, &e.EndDate, &e.Website, &e.Longitude, &e.Latitude); err != nil {
			return nil, fmt.Errorf("store: scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: list events: %w", err)
	}

	return events, nil
}

// Count returns the total number of stored events.
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count events: %w", err)
	}
	return n, nil
}

// Seed inserts the given events, skipping any whose ID already exists.
func (s *PostgresStore) Seed(ctx context.Context, events []model.Event) error {
	const query = `
		INSERT INTO events (id, name, description, location, start_date, end_date, website, longitude, latitude)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO NOTHING`

	for _, e := range events {
		if _, err := s.db.Exec(ctx, query,
			e.ID, e.Name, e.Description, e.Location,
			e.StartDate, e.EndDate, e.Website, e.Longitude, e.Latitude,
		); err != nil {
			return fmt.Errorf("store: seed event %q: %w", e.Name, err)
		}
	}
	return nil
}
