package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/nulzo/provider-gateway/internal/store"
	"github.com/nulzo/provider-gateway/internal/store/model"
)

// DB is the query surface shared by *sqlx.DB and *sqlx.Tx.
type DB interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// SqliteRepository implements store.Repository over a single sqlite file.
type SqliteRepository struct {
	db *sqlx.DB
}

func NewSqliteRepository(db *sqlx.DB) *SqliteRepository {
	return &SqliteRepository{db: db}
}

func (r *SqliteRepository) Close() error {
	return r.db.Close()
}

func (r *SqliteRepository) Generations() store.GenerationRepository {
	return &generationRepo{db: r.db}
}

type generationRepo struct {
	db DB
}

func (r *generationRepo) Log(ctx context.Context, entry *model.GenerationLog) error {
	query := `
	INSERT INTO generation_logs (
		id, model_id, provider_id, mode,
		prompt_tokens, completion_tokens, total_tokens,
		cost_micros, latency_ms, status, error_kind, created_at
	) VALUES (
		:id, :model_id, :provider_id, :mode,
		:prompt_tokens, :completion_tokens, :total_tokens,
		:cost_micros, :latency_ms, :status, :error_kind, :created_at
	)`
	_, err := r.db.NamedExecContext(ctx, query, entry)
	return err
}

func (r *generationRepo) GetRecent(ctx context.Context, limit int) ([]model.GenerationLog, error) {
	var logs []model.GenerationLog
	query := `SELECT * FROM generation_logs ORDER BY created_at DESC LIMIT ?`
	err := r.db.SelectContext(ctx, &logs, query, limit)
	return logs, err
}

func (r *generationRepo) GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error) {
	var stats []model.DailyStats
	query := `
		SELECT
			DATE(created_at) as date,
			COUNT(*) as total_requests,
			COALESCE(SUM(total_tokens), 0) as total_tokens,
			COALESCE(SUM(cost_micros), 0) as total_cost_micros,
			COALESCE(AVG(latency_ms), 0) as avg_latency
		FROM generation_logs
		WHERE created_at >= DATE('now', ?)
		GROUP BY date
		ORDER BY date DESC
	`
	// sqlite date offset format is '-7 days'
	err := r.db.SelectContext(ctx, &stats, query, fmt.Sprintf("-%d days", days))
	return stats, err
}
