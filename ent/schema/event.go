package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — the
// append-only history. event_types is a bitset (see pkg/models.EventType)
// so one logical action ("comment" + "status_change", "comment" +
// "user_mentioned") is one row.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.Int("event_types").
			Comment("Bitset: created|comment|status_change|label_added|label_removed|assigned_user|unassigned_user|user_mentioned|ticket_mentioned"),
		field.String("actor_id").
			Immutable().
			Comment("Participant id who performed the action"),
		field.String("comment_id").
			Optional().
			Nillable().
			Comment("Mutable: a comment edit re-points the comment's latest event at the replacement row"),
		field.String("label_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("old_status").
			Optional().
			Nillable().
			Immutable(),
		field.String("new_status").
			Optional().
			Nillable().
			Immutable(),
		field.String("old_resolution").
			Optional().
			Nillable().
			Immutable(),
		field.String("new_resolution").
			Optional().
			Nillable().
			Immutable(),
		field.String("by_participant_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Causer for label_added/removed, assigned/unassigned_user, *_mentioned; distinct from actor when the mention/assignment was a side effect of someone else's comment"),
		field.String("from_ticket_id").
			Optional().
			Nillable().
			Immutable().
			Comment("For *_mentioned events: the ticket the mention text was parsed from"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("events").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
		edge.To("notifications", EventNotification.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Event. A ticket's history reads in (created_at, id)
// order; the composite index supports that pattern directly.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "created_at"),
	}
}
