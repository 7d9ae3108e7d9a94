package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketSubscription holds the schema definition for the
// TicketSubscription entity: (participant, tracker?, ticket?), exactly
// one of tracker/ticket non-null.
type TicketSubscription struct {
	ent.Schema
}

// Fields of the TicketSubscription.
func (TicketSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("subscription_id").
			Unique().
			Immutable(),
		field.String("participant_id").
			Immutable(),
		field.String("tracker_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("ticket_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketSubscription.
func (TicketSubscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tracker", Tracker.Type).
			Ref("subscriptions").
			Field("tracker_id").
			Unique().
			Immutable(),
		edge.From("ticket", Ticket.Type).
			Ref("subscriptions").
			Field("ticket_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the TicketSubscription.
func (TicketSubscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tracker_id", "participant_id").
			Unique(),
		index.Fields("ticket_id", "participant_id").
			Unique(),
	}
}
