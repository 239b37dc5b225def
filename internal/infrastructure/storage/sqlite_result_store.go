package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"insert-inspector/internal/domain/entity"
	"insert-inspector/internal/domain/port"
)

const schema = `
CREATE TABLE IF NOT EXISTS inspections (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	cycle_id      TEXT NOT NULL UNIQUE,
	status        TEXT NOT NULL,
	cause_stage   TEXT,
	cause_kind    TEXT,
	cause_message TEXT,
	count         INTEGER NOT NULL,
	mean          REAL NOT NULL,
	median        REAL NOT NULL,
	variance      REAL NOT NULL,
	stddev        REAL NOT NULL,
	bound_min     REAL NOT NULL,
	bound_max     REAL NOT NULL,
	bound_std     REAL NOT NULL,
	lines_json    TEXT,
	arc_json      TEXT,
	positions     TEXT,
	elapsed_ns    INTEGER NOT NULL,
	created_at    INTEGER NOT NULL
)`

// SQLiteResultStore история инспекций в файле sqlite
type SQLiteResultStore struct {
	db *sql.DB
}

// NewSQLiteResultStore открывает базу и создаёт схему
func NewSQLiteResultStore(path string) (*SQLiteResultStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open result store: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteResultStore{db: db}, nil
}

// Close закрывает базу
func (s *SQLiteResultStore) Close() error {
	return s.db.Close()
}

type storedLines struct {
	Line1 *entity.Line `json:"line1,omitempty"`
	Line2 *entity.Line `json:"line2,omitempty"`
}

// Save сохраняет итог цикла
func (s *SQLiteResultStore) Save(ctx context.Context, result *entity.InspectionResult) error {
	if result == nil {
		return errors.New("nil inspection result")
	}

	var stage, kind, message sql.NullString
	if result.Cause != nil {
		stage = sql.NullString{String: string(result.Cause.Stage), Valid: true}
		kind = sql.NullString{String: string(result.Cause.Kind), Valid: true}
		if result.Cause.Err != nil {
			message = sql.NullString{String: result.Cause.Err.Error(), Valid: true}
		}
	}

	lines, err := json.Marshal(storedLines{Line1: result.Line1, Line2: result.Line2})
	if err != nil {
		return fmt.Errorf("marshal lines: %w", err)
	}
	var arc sql.NullString
	if result.Arc != nil {
		b, err := json.Marshal(result.Arc)
		if err != nil {
			return fmt.Errorf("marshal arc: %w", err)
		}
		arc = sql.NullString{String: string(b), Valid: true}
	}
	positions, err := json.Marshal(result.RadialPositions)
	if err != nil {
		return fmt.Errorf("marshal positions: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `INSERT INTO inspections (
		cycle_id, status, cause_stage, cause_kind, cause_message,
		count, mean, median, variance, stddev,
		bound_min, bound_max, bound_std,
		lines_json, arc_json, positions, elapsed_ns, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.CycleID, string(result.Status), stage, kind, message,
		result.Stats.Count, result.Stats.Mean, result.Stats.Median, result.Stats.Variance, result.Stats.StdDev,
		result.Bounds.Min, result.Bounds.Max, result.Bounds.MaxStdError,
		string(lines), arc, string(positions), int64(result.Elapsed), time.Now().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert inspection %s: %w", result.CycleID, err)
	}
	return nil
}

// Recent возвращает последние итоги, новые первыми
func (s *SQLiteResultStore) Recent(ctx context.Context, limit int) ([]entity.InspectionResult, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, `SELECT
		cycle_id, status, cause_stage, cause_kind, cause_message,
		count, mean, median, variance, stddev,
		bound_min, bound_max, bound_std,
		lines_json, arc_json, positions, elapsed_ns
	FROM inspections ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query inspections: %w", err)
	}
	defer rows.Close()

	var out []entity.InspectionResult
	for rows.Next() {
		var (
			r                     entity.InspectionResult
			status                string
			stage, kind, message  sql.NullString
			lines, arc, positions sql.NullString
			elapsed               int64
		)
		if err := rows.Scan(
			&r.CycleID, &status, &stage, &kind, &message,
			&r.Stats.Count, &r.Stats.Mean, &r.Stats.Median, &r.Stats.Variance, &r.Stats.StdDev,
			&r.Bounds.Min, &r.Bounds.Max, &r.Bounds.MaxStdError,
			&lines, &arc, &positions, &elapsed,
		); err != nil {
			return nil, fmt.Errorf("scan inspection: %w", err)
		}
		r.Status = entity.Status(status)
		r.Elapsed = time.Duration(elapsed)
		if stage.Valid {
			r.Cause = &entity.InspectionError{
				Stage: entity.Stage(stage.String),
				Kind:  entity.ErrorKind(kind.String),
				Err:   errors.New(message.String),
			}
		}
		if lines.Valid {
			var l storedLines
			if err := json.Unmarshal([]byte(lines.String), &l); err != nil {
				return nil, fmt.Errorf("decode lines of %s: %w", r.CycleID, err)
			}
			r.Line1, r.Line2 = l.Line1, l.Line2
		}
		if arc.Valid {
			r.Arc = &entity.ArcCenterResult{}
			if err := json.Unmarshal([]byte(arc.String), r.Arc); err != nil {
				return nil, fmt.Errorf("decode arc of %s: %w", r.CycleID, err)
			}
		}
		if positions.Valid {
			if err := json.Unmarshal([]byte(positions.String), &r.RadialPositions); err != nil {
				return nil, fmt.Errorf("decode positions of %s: %w", r.CycleID, err)
			}
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

var _ port.ResultStore = (*SQLiteResultStore)(nil)
