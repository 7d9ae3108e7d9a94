package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/outboxentry"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and delivers outbox entries.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   Config
	executor DeliveryExecutor
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	mu               sync.RWMutex
	status           WorkerStatus
	currentEntryID   string
	entriesDelivered int
	lastActivity     time.Time
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg Config, executor DeliveryExecutor) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish. Safe to call
// multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:               w.id,
		Status:           string(w.status),
		CurrentEntryID:   w.currentEntryID,
		EntriesDelivered: w.entriesDelivered,
		LastActivity:     w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("outbox worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("outbox worker shutting down")
			return
		case <-ctx.Done():
			log.Info("context cancelled, outbox worker shutting down")
			return
		default:
			if err := w.pollAndDeliver(ctx); err != nil {
				if errors.Is(err, ErrNoEntriesAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.config.PollInterval)
					continue
				}
				log.Error("error delivering outbox entry", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndDeliver checks capacity, claims an entry, and delivers it.
func (w *Worker) pollAndDeliver(ctx context.Context) error {
	activeCount, err := w.client.OutboxEntry.Query().
		Where(outboxentry.StatusEQ("in_progress")).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking in-progress deliveries: %w", err)
	}
	if activeCount >= w.config.MaxConcurrent {
		return ErrAtCapacity
	}

	entry, err := w.claimNextEntry(ctx)
	if err != nil {
		return err
	}

	log := slog.With("outbox_id", entry.ID, "kind", entry.Kind, "worker_id", w.id)
	log.Info("outbox entry claimed")

	w.setStatus(WorkerStatusWorking, entry.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	result := w.executor.Deliver(ctx, entry)
	if result == nil {
		result = &DeliveryResult{Delivered: false, Err: fmt.Errorf("executor returned nil result")}
	}

	if err := w.updateTerminalStatus(context.Background(), entry, result); err != nil {
		log.Error("failed to update outbox entry status", "error", err)
		return err
	}

	w.mu.Lock()
	w.entriesDelivered++
	w.mu.Unlock()

	log.Info("outbox entry processed", "delivered", result.Delivered)
	return nil
}

// claimNextEntry atomically claims the next pending entry using
// FOR UPDATE SKIP LOCKED so concurrent workers never deliver the same row
// twice.
func (w *Worker) claimNextEntry(ctx context.Context) (*ent.OutboxEntry, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	entry, err := tx.OutboxEntry.Query().
		Where(
			outboxentry.StatusEQ("pending"),
			outboxentry.NextAttemptAtLTE(time.Now()),
		).
		Order(ent.Asc(outboxentry.FieldNextAttemptAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoEntriesAvailable
		}
		return nil, fmt.Errorf("failed to query pending outbox entry: %w", err)
	}

	entry, err = entry.Update().
		SetStatus("in_progress").
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim outbox entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return entry, nil
}

// updateTerminalStatus records the delivery outcome. A failed delivery is
// rescheduled with exponential backoff until it exhausts MaxAttempts, at
// which point it is marked failed for good.
func (w *Worker) updateTerminalStatus(ctx context.Context, entry *ent.OutboxEntry, result *DeliveryResult) error {
	// Rebind to the pool client: entry was loaded inside the claim
	// transaction, which has already committed.
	if result.Delivered {
		return w.client.OutboxEntry.UpdateOneID(entry.ID).
			SetStatus("delivered").
			SetDeliveredAt(time.Now()).
			Exec(ctx)
	}

	attempts := entry.Attempts + 1
	update := w.client.OutboxEntry.UpdateOneID(entry.ID).SetAttempts(attempts)
	if result.Err != nil {
		update = update.SetLastError(result.Err.Error())
	}

	if attempts >= w.config.MaxAttempts {
		return update.SetStatus("failed").Exec(ctx)
	}

	backoff := time.Duration(math.Pow(2, float64(attempts))) * w.config.BaseRetryInterval
	return update.
		SetStatus("pending").
		SetNextAttemptAt(time.Now().Add(backoff)).
		Exec(ctx)
}

func (w *Worker) setStatus(status WorkerStatus, entryID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentEntryID = entryID
	w.lastActivity = time.Now()
}
