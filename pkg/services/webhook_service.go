package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/webhooksubscription"
	"github.com/sourcehut/todosrht-core/pkg/models"
	"github.com/sourcehut/todosrht-core/pkg/webhook"
)

// WebhookService manages webhook subscription CRUD at user, tracker, and
// ticket scope, and resolves subscription ids for the delivery worker.
type WebhookService struct {
	client *ent.Client
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(client *ent.Client) *WebhookService {
	return &WebhookService{client: client}
}

// Subscribe registers a webhook at the given scope. trackerID/ticketID
// are empty except for their respective scopes. The generated signing
// secret is returned exactly once, in the response, and never again
// retrievable.
func (s *WebhookService) Subscribe(ctx context.Context, ownerUserID string, scope webhook.Scope, trackerID, ticketID string, req models.WebhookSubscribeRequest) (*models.WebhookSubscribeResponse, error) {
	if len(req.Events) == 0 {
		return nil, NewValidationError("events", "at least one event is required")
	}
	for _, name := range req.Events {
		if !webhook.IsAllowed(scope, name) {
			return nil, NewValidationError("events", fmt.Sprintf("event %q is not available at %s scope", name, scope))
		}
	}

	secretBytes := make([]byte, 32)
	if _, err := rand.Read(secretBytes); err != nil {
		return nil, fmt.Errorf("generating webhook secret: %w", err)
	}
	secret := hex.EncodeToString(secretBytes)

	create := s.client.WebhookSubscription.Create().
		SetID(uuid.NewString()).
		SetOwnerUserID(ownerUserID).
		SetURL(req.URL).
		SetSecret(secret).
		SetEvents(req.Events)
	switch scope {
	case webhook.ScopeTracker:
		create = create.SetTrackerID(trackerID)
	case webhook.ScopeTicket:
		create = create.SetTicketID(ticketID)
	}

	sub, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating webhook subscription: %w", err)
	}
	return &models.WebhookSubscribeResponse{WebhookSubscription: sub, Secret: secret}, nil
}

// List returns the webhook subscriptions registered by ownerUserID,
// optionally narrowed to one tracker or ticket.
func (s *WebhookService) List(ctx context.Context, ownerUserID, trackerID, ticketID string) ([]*ent.WebhookSubscription, error) {
	q := s.client.WebhookSubscription.Query().
		Where(webhooksubscription.OwnerUserIDEQ(ownerUserID))
	if trackerID != "" {
		q = q.Where(webhooksubscription.TrackerIDEQ(trackerID))
	}
	if ticketID != "" {
		q = q.Where(webhooksubscription.TicketIDEQ(ticketID))
	}
	subs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing webhook subscriptions: %w", err)
	}
	return subs, nil
}

// Unsubscribe removes a webhook subscription, scoped to its registrant.
func (s *WebhookService) Unsubscribe(ctx context.Context, ownerUserID, subscriptionID string) error {
	sub, err := s.client.WebhookSubscription.Get(ctx, subscriptionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("getting webhook subscription: %w", err)
	}
	if sub.OwnerUserID != ownerUserID {
		return ErrPermissionDenied
	}
	if err := s.client.WebhookSubscription.DeleteOneID(subscriptionID).Exec(ctx); err != nil {
		return fmt.Errorf("deleting webhook subscription: %w", err)
	}
	return nil
}

// LookupWebhookTarget implements queue.SubscriptionLookup: it resolves an
// outbox entry's target subscription to its current URL and signing
// secret at delivery time, so rotation or revocation between enqueue and
// delivery is honored.
func (s *WebhookService) LookupWebhookTarget(ctx context.Context, subscriptionID string) (string, []byte, bool, error) {
	sub, err := s.client.WebhookSubscription.Query().
		Where(webhooksubscription.IDEQ(subscriptionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil, false, nil
		}
		return "", nil, false, fmt.Errorf("looking up webhook subscription: %w", err)
	}
	return sub.URL, []byte(sub.Secret), true, nil
}
