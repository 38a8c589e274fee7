package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/interview-generator/internal/repositories"
)

// Worker indexes generated sessions in the background.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(sessionID uuid.UUID)
}

type worker struct {
	sessionRepo  repositories.SessionRepository
	indexer      SessionIndexer
	jobQueue     chan uuid.UUID
	concurrency  int
	pollInterval time.Duration
	wg           sync.WaitGroup
	stopChan     chan struct{}
	stopOnce     sync.Once
	log          *zap.Logger
}

func NewWorker(
	sessionRepo repositories.SessionRepository,
	indexer SessionIndexer,
	concurrency int,
	pollInterval time.Duration,
	log *zap.Logger,
) Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &worker{
		sessionRepo:  sessionRepo,
		indexer:      indexer,
		jobQueue:     make(chan uuid.UUID, 100),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
		log:          log,
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.log.Info("🚀 Starting index worker", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}

	if w.pollInterval > 0 {
		w.wg.Add(1)
		go w.pollUnindexed(ctx)
	}
}

// Stop implements Worker.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		w.log.Info("🛑 Stopping index worker...")
		close(w.stopChan)
		w.wg.Wait()
		w.log.Info("✅ Index worker stopped")
	})
}

// EnqueueJob implements Worker. A full queue drops the job; the poller
// picks the session up on its next pass.
func (w *worker) EnqueueJob(sessionID uuid.UUID) {
	select {
	case <-w.stopChan:
		w.log.Warn("⚠️ Worker stopped, cannot enqueue session", zap.String("session_id", sessionID.String()))
	case w.jobQueue <- sessionID:
		w.log.Debug("📥 Session enqueued for indexing", zap.String("session_id", sessionID.String()))
	default:
		w.log.Warn("⚠️ Index queue full, deferring to poller", zap.String("session_id", sessionID.String()))
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case sessionID := <-w.jobQueue:
			if err := w.indexer.IndexSession(ctx, sessionID); err != nil {
				w.log.Error("❌ Failed to index session",
					zap.Int("worker", workerID),
					zap.String("session_id", sessionID.String()),
					zap.Error(err),
				)
			}
		}
	}
}

func (w *worker) pollUnindexed(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions, err := w.sessionRepo.FindUnindexed(ctx, 10)
			if err != nil {
				w.log.Warn("⚠️ Failed to fetch unindexed sessions", zap.Error(err))
				continue
			}
			for _, s := range sessions {
				w.EnqueueJob(s.ID)
			}
		}
	}
}
