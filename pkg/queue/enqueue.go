package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/webhooksubscription"
	"github.com/sourcehut/todosrht-core/pkg/mail"
	"github.com/sourcehut/todosrht-core/pkg/webhook"
)

// OutboxEnqueuer persists pkg/mail and pkg/webhook deliveries as pending
// OutboxEntry rows, satisfying both packages' Enqueuer interfaces without
// either depending on ent directly. A WorkerPool configured with a
// DeliveryExecutor drains the rows this type writes.
type OutboxEnqueuer struct {
	client *ent.Client
}

// NewOutboxEnqueuer wraps client so it can be handed to services as both a
// mail.Enqueuer and a webhook.Enqueuer.
func NewOutboxEnqueuer(client *ent.Client) *OutboxEnqueuer {
	return &OutboxEnqueuer{client: client}
}

// EnqueueMail implements mail.Enqueuer.
func (e *OutboxEnqueuer) EnqueueMail(ctx context.Context, eventID string, env mail.Envelope) error {
	payload, err := envelopeToPayload(env)
	if err != nil {
		return fmt.Errorf("marshaling mail envelope: %w", err)
	}
	return e.client.OutboxEntry.Create().
		SetID(uuid.NewString()).
		SetKind("mail").
		SetNillableEventID(nillableString(eventID)).
		SetTarget(env.To).
		SetPayload(payload).
		Exec(ctx)
}

// EnqueueWebhook implements webhook.Enqueuer: it fans payload out to one
// OutboxEntry per WebhookSubscription registered at (scope, scopeID) and
// subscribed to the payload's event name. Each entry carries its own
// delivery UUID — delivery is at-least-once, and consumers dedup on it.
func (e *OutboxEnqueuer) EnqueueWebhook(ctx context.Context, eventID string, scope webhook.Scope, scopeID string, payload webhook.Payload) error {
	q := e.client.WebhookSubscription.Query()
	switch scope {
	case webhook.ScopeUser:
		q = q.Where(
			webhooksubscription.OwnerUserIDEQ(scopeID),
			webhooksubscription.TrackerIDIsNil(),
			webhooksubscription.TicketIDIsNil(),
		)
	case webhook.ScopeTracker:
		q = q.Where(webhooksubscription.TrackerIDEQ(scopeID), webhooksubscription.TicketIDIsNil())
	case webhook.ScopeTicket:
		q = q.Where(webhooksubscription.TicketIDEQ(scopeID))
	default:
		return fmt.Errorf("unknown webhook scope %q", scope)
	}

	subs, err := q.All(ctx)
	if err != nil {
		return fmt.Errorf("querying webhook subscriptions: %w", err)
	}

	for _, sub := range subs {
		if !subscribedTo(sub.Events, payload.Event) {
			continue
		}
		deliveryID := uuid.NewString()
		body, err := payloadToMap(payload)
		if err != nil {
			return fmt.Errorf("marshaling webhook payload: %w", err)
		}
		body["delivery_id"] = deliveryID
		if err := e.client.OutboxEntry.Create().
			SetID(deliveryID).
			SetKind("webhook").
			SetNillableEventID(nillableString(eventID)).
			SetTarget(sub.ID).
			SetPayload(body).
			Exec(ctx); err != nil {
			return fmt.Errorf("enqueuing webhook delivery: %w", err)
		}
	}
	return nil
}

func subscribedTo(events []string, name string) bool {
	for _, e := range events {
		if e == name {
			return true
		}
	}
	return false
}

func envelopeToPayload(env mail.Envelope) (map[string]any, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func payloadToMap(p webhook.Payload) (map[string]any, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func nillableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
