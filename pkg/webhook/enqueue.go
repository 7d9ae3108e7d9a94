package webhook

import "context"

// Enqueuer is the contract the lifecycle and subscription services call
// after a transaction commits, to hand a Payload off to every matching
// WebhookSubscription for asynchronous delivery. Production is satisfied
// by pkg/queue, which persists one OutboxEntry row of kind "webhook" per
// matching subscription and delivers it from a worker.
type Enqueuer interface {
	EnqueueWebhook(ctx context.Context, eventID string, scope Scope, scopeID string, payload Payload) error
}
