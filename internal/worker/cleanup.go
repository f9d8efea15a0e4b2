package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Ometeor-Zheero-OMZ/gamernage/internal/repository"
)

// CleanupWorker periodically purges todos that have been soft-deleted
// longer than the retention window.
type CleanupWorker struct {
	todoRepo  repository.ITodoRepository
	interval  time.Duration
	retention time.Duration
	stopChan  chan struct{}
}

// NewCleanupWorker creates a new cleanup worker
func NewCleanupWorker(todoRepo repository.ITodoRepository, interval, retention time.Duration) *CleanupWorker {
	return &CleanupWorker{
		todoRepo:  todoRepo,
		interval:  interval,
		retention: retention,
		stopChan:  make(chan struct{}),
	}
}

// Start starts the cleanup worker
func (w *CleanupWorker) Start() {
	zap.L().Info("starting cleanup worker", zap.Duration("interval", w.interval))

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.cleanup()
			case <-w.stopChan:
				zap.L().Info("stopping cleanup worker")
				return
			}
		}
	}()
}

// Stop stops the cleanup worker
func (w *CleanupWorker) Stop() {
	close(w.stopChan)
}

func (w *CleanupWorker) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-w.retention)
	if err := w.todoRepo.PurgeDeleted(ctx, cutoff); err != nil {
		zap.L().Error("failed to purge deleted todos", zap.Error(err))
		return
	}

	zap.L().Info("deleted todos purged", zap.Time("cutoff", cutoff))
}
