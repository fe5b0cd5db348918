package recruit

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver.

	"github.com/dreamshade/recruit-api/internal/entities"
	"github.com/dreamshade/recruit-api/internal/entities/stats"
	"github.com/dreamshade/recruit-api/internal/errors"
	"github.com/dreamshade/recruit-api/internal/pkg/clock"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*sqliteRepository)(nil)

// SQLiteConfig contains configuration for the SQLite recruit repository
type SQLiteConfig struct {
	// Path of the database file, or MemoryPath
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("path cannot be empty")
	}
	return nil
}

// SQLiteRepository is a Repository backed by a single SQLite file. Close
// releases the database handle.
type SQLiteRepository interface {
	Repository
	Close() error
}

// NewSQLite opens or creates the database and applies migrations
func NewSQLite(cfg *SQLiteConfig) (SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, errors.Wrapf(err, "failed to create directory for %s", cfg.Path)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database")
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	repo := &sqliteRepository{db: db, clock: c}
	if err := repo.migrate(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to migrate sqlite database")
	}
	return repo, nil
}

func (r *sqliteRepository) Close() error {
	return r.db.Close()
}

func (r *sqliteRepository) migrate() error {
	stmts := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS recruits (
			id TEXT PRIMARY KEY,
			player_id TEXT NOT NULL,
			name TEXT NOT NULL,
			job TEXT NOT NULL,
			level INTEGER NOT NULL,
			stat_set_version INTEGER NOT NULL,
			profile TEXT NOT NULL,
			seed TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS recruit_ranks (
			recruit_id TEXT NOT NULL REFERENCES recruits(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			stat TEXT NOT NULL,
			rank INTEGER NOT NULL,
			PRIMARY KEY (recruit_id, stat)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_recruits_player ON recruits(player_id, created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecruit(input.Recruit); err != nil {
		return nil, err
	}

	rec := *input.Recruit
	now := r.clock.Now()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM recruits WHERE id = ?`, rec.ID).Scan(&exists)
		if err != nil {
			return errors.Wrapf(err, "failed to check existence")
		}
		if exists > 0 {
			return errors.AlreadyExistsf("recruit with ID %s already exists", rec.ID)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO recruits (id, player_id, name, job, level, stat_set_version, profile, seed, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID,
			rec.PlayerID,
			rec.Name,
			rec.Job.String(),
			rec.Level,
			rec.StatSetVersion,
			rec.Profile,
			encodeSeed(rec.Seed),
			formatTime(rec.CreatedAt),
			formatTime(rec.UpdatedAt),
		)
		if err != nil {
			return errors.Wrapf(err, "failed to insert recruit")
		}
		return insertRanks(ctx, tx, &rec)
	})
	if err != nil {
		return nil, err
	}

	return &CreateOutput{Recruit: &rec}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecruitIDEmpty)
	}

	recruits, err := r.query(ctx, `WHERE id = ?`, input.ID)
	if err != nil {
		return nil, err
	}
	if len(recruits) == 0 {
		return nil, errors.NotFoundf(errRecruitNotFound, input.ID)
	}

	return &GetOutput{Recruit: recruits[0]}, nil
}

func (r *sqliteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateRecruit(input.Recruit); err != nil {
		return nil, err
	}

	rec := *input.Recruit
	rec.UpdatedAt = r.clock.Now()

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		var createdAt string
		err := tx.QueryRowContext(ctx, `SELECT created_at FROM recruits WHERE id = ?`, rec.ID).Scan(&createdAt)
		if err == sql.ErrNoRows {
			return errors.NotFoundf(errRecruitNotFound, rec.ID)
		}
		if err != nil {
			return errors.Wrapf(err, "failed to get recruit")
		}
		rec.CreatedAt, err = parseTime(createdAt)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE recruits SET player_id = ?, name = ?, job = ?, level = ?, stat_set_version = ?,
			 profile = ?, seed = ?, updated_at = ? WHERE id = ?`,
			rec.PlayerID,
			rec.Name,
			rec.Job.String(),
			rec.Level,
			rec.StatSetVersion,
			rec.Profile,
			encodeSeed(rec.Seed),
			formatTime(rec.UpdatedAt),
			rec.ID,
		)
		if err != nil {
			return errors.Wrapf(err, "failed to update recruit")
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM recruit_ranks WHERE recruit_id = ?`, rec.ID); err != nil {
			return errors.Wrapf(err, "failed to clear recruit ranks")
		}
		return insertRanks(ctx, tx, &rec)
	})
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Recruit: &rec}, nil
}

func (r *sqliteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecruitIDEmpty)
	}

	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM recruit_ranks WHERE recruit_id = ?`, input.ID); err != nil {
			return errors.Wrapf(err, "failed to delete recruit ranks")
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM recruits WHERE id = ?`, input.ID)
		if err != nil {
			return errors.Wrapf(err, "failed to delete recruit")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return errors.Wrapf(err, "failed to delete recruit")
		}
		if n == 0 {
			return errors.NotFoundf(errRecruitNotFound, input.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &DeleteOutput{}, nil
}

func (r *sqliteRepository) ListByPlayerID(
	ctx context.Context,
	input ListByPlayerIDInput,
) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	recruits, err := r.query(ctx, `WHERE player_id = ?`, input.PlayerID)
	if err != nil {
		return nil, err
	}
	sortRoster(recruits)

	return &ListByPlayerIDOutput{Recruits: recruits}, nil
}

// query loads recruits matching the where clause together with their ranks
func (r *sqliteRepository) query(ctx context.Context, where string, args ...any) ([]*entities.Recruit, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, player_id, name, job, level, stat_set_version, profile, seed, created_at, updated_at
		 FROM recruits `+where, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query recruits")
	}
	defer func() {
		_ = rows.Close()
	}()

	var recruits []*entities.Recruit
	for rows.Next() {
		var (
			rec                  entities.Recruit
			job                  string
			seed                 sql.NullString
			createdAt, updatedAt string
		)
		if err := rows.Scan(&rec.ID, &rec.PlayerID, &rec.Name, &job, &rec.Level, &rec.StatSetVersion,
			&rec.Profile, &seed, &createdAt, &updatedAt); err != nil {
			return nil, errors.Wrapf(err, "failed to scan recruit")
		}

		if rec.Job, err = entities.ParseJobClass(job); err != nil {
			return nil, errors.Wrapf(err, "recruit %s has an invalid job", rec.ID)
		}
		if rec.Seed, err = decodeSeed(seed); err != nil {
			return nil, err
		}
		if rec.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if rec.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		recruits = append(recruits, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read recruits")
	}

	for _, rec := range recruits {
		if err := r.loadRanks(ctx, rec); err != nil {
			return nil, err
		}
	}
	return recruits, nil
}

func (r *sqliteRepository) loadRanks(ctx context.Context, rec *entities.Recruit) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT stat, rank FROM recruit_ranks WHERE recruit_id = ? ORDER BY position`, rec.ID)
	if err != nil {
		return errors.Wrapf(err, "failed to query recruit ranks")
	}
	defer func() {
		_ = rows.Close()
	}()

	rec.Ranks = []entities.StatRank{}
	for rows.Next() {
		var (
			stat string
			rank int
		)
		if err := rows.Scan(&stat, &rank); err != nil {
			return errors.Wrapf(err, "failed to scan recruit rank")
		}
		rec.Ranks = append(rec.Ranks, entities.StatRank{Stat: stats.StatType(stat), Rank: rank})
	}
	if err := rows.Err(); err != nil {
		return errors.Wrapf(err, "failed to read recruit ranks")
	}
	return nil
}

func (r *sqliteRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrapf(err, "failed to commit transaction")
	}
	return nil
}

func insertRanks(ctx context.Context, tx *sql.Tx, rec *entities.Recruit) error {
	if len(rec.Ranks) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO recruit_ranks (recruit_id, position, stat, rank) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrapf(err, "failed to prepare rank insert")
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i, sr := range rec.Ranks {
		if _, err := stmt.ExecContext(ctx, rec.ID, i, string(sr.Stat), sr.Rank); err != nil {
			return errors.Wrapf(err, "failed to insert rank %s", sr.Stat)
		}
	}
	return nil
}

// seeds are uint64 and may not fit an SQLite integer, so they are stored as text
func encodeSeed(seed *uint64) sql.NullString {
	if seed == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: strconv.FormatUint(*seed, 10), Valid: true}
}

func decodeSeed(s sql.NullString) (*uint64, error) {
	if !s.Valid {
		return nil, nil
	}
	v, err := strconv.ParseUint(s.String, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid stored seed %q", s.String)
	}
	return &v, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid stored time %q", s)
	}
	return t, nil
}
