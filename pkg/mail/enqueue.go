package mail

import "context"

// Enqueuer is the contract the lifecycle and subscription services call
// after a transaction commits, to hand an Envelope off for asynchronous
// delivery. Production is satisfied by pkg/queue, which persists the
// envelope as a pending ent OutboxEntry row of kind "mail" and
// delivers it from a worker.
type Enqueuer interface {
	EnqueueMail(ctx context.Context, eventID string, env Envelope) error
}
