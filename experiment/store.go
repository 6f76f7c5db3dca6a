// SPDX-License-Identifier: MIT

package experiment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists experiment runs in SQLite.
type Store struct {
	db *sql.DB
}

// RunSummary is one row of the runs table.
type RunSummary struct {
	ID           string
	Started      time.Time
	Elapsed      time.Duration
	Seed         int64
	Reference    string
	Generators   []string
	Algorithms   []string
	Measurements int
}

// OpenStore opens (creating if needed) the database at path and migrates
// its schema. ":memory:" gives a private in-memory database.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serialises writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	PRAGMA foreign_keys = ON;

	CREATE TABLE IF NOT EXISTS runs (
		id              TEXT PRIMARY KEY,
		started_unix_ns INTEGER NOT NULL,
		elapsed_ns      INTEGER NOT NULL,
		seed            INTEGER NOT NULL,
		reference       TEXT NOT NULL,
		generators      TEXT NOT NULL,
		algorithms      TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS measurements (
		run_id     TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		generator  TEXT NOT NULL,
		vertices   INTEGER NOT NULL,
		edges      INTEGER NOT NULL,
		repetition INTEGER NOT NULL,
		seed       INTEGER NOT NULL,
		algorithm  TEXT NOT NULL,
		seconds    REAL NOT NULL,
		cover_size INTEGER NOT NULL,
		optimum    INTEGER NOT NULL,
		quality    REAL NOT NULL,
		optimal    INTEGER NOT NULL,
		error      TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_measurements_run ON measurements(run_id);
	`
	_, err := s.db.Exec(schema)

	return err
}

// SaveRun stores the report and its measurements in one transaction.
func (s *Store) SaveRun(ctx context.Context, rep Report, cfg Config) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("SaveRun: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	algos := make([]string, len(cfg.Algorithms))
	for i, a := range cfg.Algorithms {
		algos[i] = a.String()
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, started_unix_ns, elapsed_ns, seed, reference, generators, algorithms)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rep.RunID, rep.Started.UnixNano(), int64(rep.Elapsed), cfg.Seed, cfg.Reference.String(),
		strings.Join(cfg.Generators, ","), strings.Join(algos, ","))
	if err != nil {
		return fmt.Errorf("SaveRun: insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO measurements (run_id, generator, vertices, edges, repetition, seed,
			algorithm, seconds, cover_size, optimum, quality, optimal, error)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("SaveRun: %w", err)
	}
	defer stmt.Close()

	for _, m := range rep.Measurements {
		var errText sql.NullString
		if m.Err != "" {
			errText = sql.NullString{String: m.Err, Valid: true}
		}
		_, err = stmt.ExecContext(ctx, rep.RunID, m.Generator, m.Vertices, m.Edges, m.Repetition, m.Seed,
			m.Algorithm, m.Seconds, m.CoverSize, m.Optimum, m.Quality, boolToInt(m.Optimal), errText)
		if err != nil {
			return fmt.Errorf("SaveRun: insert measurement: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("SaveRun: %w", err)
	}

	return nil
}

// Runs lists stored runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.started_unix_ns, r.elapsed_ns, r.seed, r.reference, r.generators, r.algorithms,
			(SELECT COUNT(*) FROM measurements m WHERE m.run_id = r.id)
		FROM runs r
		ORDER BY r.started_unix_ns DESC, r.id`)
	if err != nil {
		return nil, fmt.Errorf("Runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			rs                RunSummary
			started, elapsed  int64
			generators, algos string
		)
		if err := rows.Scan(&rs.ID, &started, &elapsed, &rs.Seed, &rs.Reference, &generators, &algos,
			&rs.Measurements); err != nil {
			return nil, fmt.Errorf("Runs: %w", err)
		}
		rs.Started = time.Unix(0, started).UTC()
		rs.Elapsed = time.Duration(elapsed)
		rs.Generators = splitList(generators)
		rs.Algorithms = splitList(algos)
		out = append(out, rs)
	}

	return out, rows.Err()
}

// Measurements returns the raw measurements of a run in insertion order.
func (s *Store) Measurements(ctx context.Context, runID string) ([]Measurement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT generator, vertices, edges, repetition, seed, algorithm, seconds,
			cover_size, optimum, quality, optimal, error
		FROM measurements
		WHERE run_id = ?
		ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("Measurements: %w", err)
	}
	defer rows.Close()

	var out []Measurement
	for rows.Next() {
		var (
			m       Measurement
			optimal int64
			errText sql.NullString
		)
		if err := rows.Scan(&m.Generator, &m.Vertices, &m.Edges, &m.Repetition, &m.Seed, &m.Algorithm,
			&m.Seconds, &m.CoverSize, &m.Optimum, &m.Quality, &optimal, &errText); err != nil {
			return nil, fmt.Errorf("Measurements: %w", err)
		}
		m.Optimal = optimal != 0
		if errText.Valid {
			m.Err = errText.String
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	return strings.Split(s, ",")
}
