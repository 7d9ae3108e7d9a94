package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Ticket holds the schema definition for the Ticket entity.
type Ticket struct {
	ent.Schema
}

// Fields of the Ticket.
func (Ticket) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_id").
			Unique().
			Immutable(),
		field.String("tracker_id").
			Immutable(),
		field.Int("scoped_id").
			Immutable().
			Comment("Unique per tracker; assigned from tracker.next_ticket_id under a row lock"),
		field.String("dupe_of_id").
			Optional().
			Nillable().
			Comment("Self-reference set when resolution=duplicate; cleared (not cascaded) if the target is deleted"),
		field.String("submitter_id").
			Immutable().
			Comment("Participant id; fetched via repository lookup, not an ent edge"),
		field.String("title").
			NotEmpty().
			Comment("3-2048 chars"),
		field.Text("description").
			Optional().
			Default("").
			Comment("<=16384 chars"),
		field.Int("comment_count").
			Default(0).
			Comment("Materialized aggregate; must equal non-superseded child comments"),
		field.Enum("status").
			Values("reported", "confirmed", "in_progress", "pending", "resolved").
			Default("reported"),
		field.Enum("resolution").
			Values("unresolved", "fixed", "implemented", "wont_fix", "by_design", "invalid", "duplicate", "not_our_bug", "closed").
			Default("unresolved"),
		field.Enum("authenticity").
			Values("authentic", "unauthenticated", "tampered", "edited_by_other").
			Default("authentic"),
		field.Time("created_at").
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Ticket.
func (Ticket) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tracker", Tracker.Type).
			Ref("tickets").
			Field("tracker_id").
			Unique().
			Required().
			Immutable(),
		edge.To("dupe_of", Ticket.Type).
			Unique().
			Field("dupe_of_id"),
		edge.To("comments", TicketComment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("labels", TicketLabel.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("assignees", TicketAssignee.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("subscriptions", TicketSubscription.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("webhooks", WebhookSubscription.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Ticket.
func (Ticket) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tracker_id", "scoped_id").
			Unique(),
		index.Fields("tracker_id", "status"),
		index.Fields("tracker_id", "updated_at"),
		index.Fields("submitter_id"),
	}
}
