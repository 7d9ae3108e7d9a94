// Package queue drains the outbox of pending email/webhook deliveries
// with a pod-scoped pool of polling workers.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/sourcehut/todosrht-core/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoEntriesAvailable indicates no pending outbox entries are ready to claim.
	ErrNoEntriesAvailable = errors.New("no outbox entries available")

	// ErrAtCapacity indicates the global concurrent-delivery limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// DeliveryExecutor performs the actual transport for one outbox entry
// (sending the email, or POSTing the signed webhook payload). The worker
// owns claiming, retry bookkeeping, and terminal status update; the
// executor only needs to attempt delivery and report the outcome.
type DeliveryExecutor interface {
	Deliver(ctx context.Context, entry *ent.OutboxEntry) *DeliveryResult
}

// DeliveryResult is the terminal outcome of one delivery attempt.
type DeliveryResult struct {
	Delivered bool
	Err       error
}

// Config controls worker pool sizing and retry behavior.
type Config struct {
	WorkerCount       int
	PollInterval      time.Duration
	MaxConcurrent     int
	MaxAttempts       int
	BaseRetryInterval time.Duration
}

// PoolHealth reports the current health of the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth reports the current health of a single worker.
type WorkerHealth struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "idle" or "working"
	CurrentEntryID   string    `json:"current_entry_id,omitempty"`
	EntriesDelivered int       `json:"entries_delivered"`
	LastActivity     time.Time `json:"last_activity"`
}
