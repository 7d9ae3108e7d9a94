package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/ent/participant"
	"github.com/sourcehut/todosrht-core/ent/ticketsubscription"
)

// SubscriptionService manages TicketSubscription rows and fans an Event out
// to EventNotification rows for every subscribed user participant.
type SubscriptionService struct {
	client *ent.Client
}

// NewSubscriptionService creates a new SubscriptionService.
func NewSubscriptionService(client *ent.Client) *SubscriptionService {
	return &SubscriptionService{client: client}
}

// SubscribeToTracker subscribes participantID at tracker scope, covering
// every current and future ticket. Idempotent: a second call is a no-op.
func (s *SubscriptionService) SubscribeToTracker(ctx context.Context, participantID, trackerID string) error {
	return s.subscribe(ctx, participantID, &trackerID, nil)
}

// SubscribeToTicket subscribes participantID to a single ticket.
func (s *SubscriptionService) SubscribeToTicket(ctx context.Context, participantID, ticketID string) error {
	return s.subscribe(ctx, participantID, nil, &ticketID)
}

func (s *SubscriptionService) subscribe(ctx context.Context, participantID string, trackerID, ticketID *string) error {
	q := s.client.TicketSubscription.Query().Where(ticketsubscription.ParticipantIDEQ(participantID))
	if trackerID != nil {
		q = q.Where(ticketsubscription.TrackerIDEQ(*trackerID))
	} else {
		q = q.Where(ticketsubscription.TicketIDEQ(*ticketID))
	}
	exists, err := q.Exist(ctx)
	if err != nil {
		return fmt.Errorf("checking existing subscription: %w", err)
	}
	if exists {
		return nil
	}

	create := s.client.TicketSubscription.Create().SetID(uuid.NewString()).SetParticipantID(participantID)
	if trackerID != nil {
		create = create.SetTrackerID(*trackerID)
	}
	if ticketID != nil {
		create = create.SetTicketID(*ticketID)
	}
	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil // lost a race with another subscribe call
		}
		return fmt.Errorf("creating subscription: %w", err)
	}
	return nil
}

// Unsubscribe removes a participant's subscription to a tracker or ticket.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, subscriptionID string) error {
	err := s.client.TicketSubscription.DeleteOneID(subscriptionID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting subscription: %w", err)
	}
	return nil
}

// IsSubscribed reports whether participantID holds a subscription at
// either ticket or tracker scope for the given ticket.
func (s *SubscriptionService) IsSubscribed(ctx context.Context, participantID, trackerID, ticketID string) (bool, error) {
	return s.client.TicketSubscription.Query().
		Where(
			ticketsubscription.ParticipantIDEQ(participantID),
			ticketsubscription.Or(
				ticketsubscription.TrackerIDEQ(trackerID),
				ticketsubscription.TicketIDEQ(ticketID),
			),
		).
		Exist(ctx)
}

// Subscriber pairs a subscription with its resolved participant, for the
// email fan-out: the unsubscribe link depends on which scope the
// subscription was made at.
type Subscriber struct {
	Participant  *ent.Participant
	Subscription *ent.TicketSubscription
}

// Subscribers returns the distinct participants subscribed to ticketID
// directly or via trackerID. A participant subscribed at both scopes
// counts once; the ticket-scope subscription wins so their unsubscribe
// link targets the narrower scope.
func (s *SubscriptionService) Subscribers(ctx context.Context, trackerID, ticketID string) ([]Subscriber, error) {
	subs, err := s.client.TicketSubscription.Query().
		Where(ticketsubscription.Or(
			ticketsubscription.TrackerIDEQ(trackerID),
			ticketsubscription.TicketIDEQ(ticketID),
		)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying subscriptions: %w", err)
	}

	byParticipant := make(map[string]*ent.TicketSubscription, len(subs))
	order := make([]string, 0, len(subs))
	for _, sub := range subs {
		existing, ok := byParticipant[sub.ParticipantID]
		if !ok {
			byParticipant[sub.ParticipantID] = sub
			order = append(order, sub.ParticipantID)
			continue
		}
		if existing.TicketID == nil && sub.TicketID != nil {
			byParticipant[sub.ParticipantID] = sub
		}
	}
	if len(order) == 0 {
		return nil, nil
	}

	rows, err := s.client.Participant.Query().
		Where(participant.IDIn(order...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving participants: %w", err)
	}
	participants := make(map[string]*ent.Participant, len(rows))
	for _, p := range rows {
		participants[p.ID] = p
	}

	out := make([]Subscriber, 0, len(order))
	for _, id := range order {
		if p, ok := participants[id]; ok {
			out = append(out, Subscriber{Participant: p, Subscription: byParticipant[id]})
		}
	}
	return out, nil
}

// NotifyEvent writes one EventNotification row per subscribed user. The
// actor is not exempt: their inbox records their own actions too — only
// the email fan-out applies the notify_self suppression.
func (s *SubscriptionService) NotifyEvent(ctx context.Context, eventID string, userIDs []string) error {
	for _, userID := range userIDs {
		if err := s.client.EventNotification.Create().
			SetID(uuid.NewString()).
			SetEventID(eventID).
			SetUserID(userID).
			Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("creating notification for user %s: %w", userID, err)
		}
	}
	return nil
}
