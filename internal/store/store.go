package store

import (
	"context"

	"github.com/nulzo/provider-gateway/internal/store/model"
)

// Repository is the contract for the usage ledger.
type Repository interface {
	Generations() GenerationRepository
	Close() error
}

type GenerationRepository interface {
	// Log stores one completed dispatch.
	Log(ctx context.Context, entry *model.GenerationLog) error
	// GetRecent returns the last N entries, newest first.
	GetRecent(ctx context.Context, limit int) ([]model.GenerationLog, error)
	// GetDailyStats returns per-day aggregates for the trailing window.
	GetDailyStats(ctx context.Context, days int) ([]model.DailyStats, error)
}
