// Package analytics persists the usage ledger asynchronously so the
// dispatch path never blocks on storage.
package analytics

import (
	"context"
	"time"

	"github.com/nulzo/provider-gateway/internal/store"
	"github.com/nulzo/provider-gateway/internal/store/model"
	"go.uber.org/zap"
)

// Ingestor handles the asynchronous persistence of generation logs.
type Ingestor interface {
	Log(entry *model.GenerationLog)
	Start(ctx context.Context)
	Stop()
}

type ingestor struct {
	logger    *zap.Logger
	repo      store.Repository
	logChan   chan *model.GenerationLog
	batchSize int
	flushTime time.Duration
}

func NewIngestor(logger *zap.Logger, repo store.Repository) Ingestor {
	return &ingestor{
		logger:    logger,
		repo:      repo,
		logChan:   make(chan *model.GenerationLog, 10000),
		batchSize: 50,
		flushTime: 5 * time.Second,
	}
}

// Log enqueues an entry. A full buffer drops the entry with a warning
// rather than stalling a generation call.
func (i *ingestor) Log(entry *model.GenerationLog) {
	select {
	case i.logChan <- entry:
	default:
		i.logger.Warn("Usage buffer full, dropping entry", zap.String("id", entry.ID))
	}
}

func (i *ingestor) Start(ctx context.Context) {
	go i.worker(ctx)
}

func (i *ingestor) Stop() {
	close(i.logChan)
}

func (i *ingestor) worker(ctx context.Context) {
	batch := make([]*model.GenerationLog, 0, i.batchSize)
	ticker := time.NewTicker(i.flushTime)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		for _, entry := range batch {
			if err := i.repo.Generations().Log(context.Background(), entry); err != nil {
				i.logger.Error("Failed to persist generation log",
					zap.String("id", entry.ID), zap.Error(err))
			}
		}
		batch = batch[:0]
	}

	for {
		select {
		case entry, ok := <-i.logChan:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= i.batchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-ctx.Done():
			flush()
			return
		}
	}
}
