package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nathanieltooley/klefki/owned"
	_ "modernc.org/sqlite"
)

var ErrNoSuchTrainer = errors.New("no such trainer exists")

const schema = `
CREATE TABLE IF NOT EXISTS trainers (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL,
	money        INTEGER NOT NULL,
	payload_json TEXT NOT NULL,
	created_at   INTEGER NOT NULL,
	updated_at   INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS trainers_name ON trainers (name);
`

// TrainerSummary is the listing view of a stored trainer
type TrainerSummary struct {
	ID        uuid.UUID
	Name      string
	Money     owned.Money
	UpdatedAt time.Time
}

// SQLiteStore persists saved trainers in a SQLite database
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens the database at path and creates its tables
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	internalLogger.V(1).Info("opened sqlite store", "path", path)
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// CreateTrainer stores a new trainer and returns its generated id
func (s *SQLiteStore) CreateTrainer(ctx context.Context, trainer owned.SavedTrainer) (uuid.UUID, error) {
	payload, err := json.Marshal(trainer)
	if err != nil {
		return uuid.Nil, fmt.Errorf("encode trainer: %w", err)
	}

	id := uuid.New()
	now := time.Now().UTC().UnixMilli()
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO trainers (id, name, money, payload_json, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id.String(), trainer.Name, int64(trainer.Money), string(payload), now, now,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert trainer: %w", err)
	}

	internalLogger.Info("created trainer", "id", id, "name", trainer.Name)
	return id, nil
}

// SaveTrainer replaces a stored trainer
func (s *SQLiteStore) SaveTrainer(ctx context.Context, id uuid.UUID, trainer owned.SavedTrainer) error {
	payload, err := json.Marshal(trainer)
	if err != nil {
		return fmt.Errorf("encode trainer: %w", err)
	}

	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE trainers SET name = ?, money = ?, payload_json = ?, updated_at = ? WHERE id = ?`,
		trainer.Name, int64(trainer.Money), string(payload), time.Now().UTC().UnixMilli(), id.String(),
	)
	if err != nil {
		return fmt.Errorf("update trainer: %w", err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("%w: %s", ErrNoSuchTrainer, id)
	}

	return nil
}

func (s *SQLiteStore) LoadTrainer(ctx context.Context, id uuid.UUID) (owned.SavedTrainer, error) {
	var payload string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT payload_json FROM trainers WHERE id = ?`, id.String()).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return owned.SavedTrainer{}, fmt.Errorf("%w: %s", ErrNoSuchTrainer, id)
	}
	if err != nil {
		return owned.SavedTrainer{}, fmt.Errorf("get trainer: %w", err)
	}

	var trainer owned.SavedTrainer
	if err := json.Unmarshal([]byte(payload), &trainer); err != nil {
		return owned.SavedTrainer{}, fmt.Errorf("decode trainer %s: %w", id, err)
	}

	return trainer, nil
}

// ListTrainers lists every stored trainer, most recently saved first
func (s *SQLiteStore) ListTrainers(ctx context.Context) ([]TrainerSummary, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, name, money, updated_at FROM trainers ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	defer rows.Close()

	summaries := make([]TrainerSummary, 0)
	for rows.Next() {
		var (
			id        string
			summary   TrainerSummary
			money     int64
			updatedAt int64
		)
		if err := rows.Scan(&id, &summary.Name, &money, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan trainer: %w", err)
		}

		summary.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("invalid trainer id %q: %w", id, err)
		}
		summary.Money = owned.Money(money)
		summary.UpdatedAt = time.UnixMilli(updatedAt).UTC()

		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

func (s *SQLiteStore) DeleteTrainer(ctx context.Context, id uuid.UUID) error {
	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM trainers WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete trainer: %w", err)
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("%w: %s", ErrNoSuchTrainer, id)
	}

	return nil
}
