package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketComment holds the schema definition for the TicketComment entity.
//
// Comments are never destructively mutated: editing creates a new row and
// points the original's SupercededByID at it (see lifecycle_service.go).
type TicketComment struct {
	ent.Schema
}

// Fields of the TicketComment.
func (TicketComment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("comment_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.String("submitter_id").
			Immutable().
			Comment("Participant id; fetched via repository lookup, not an ent edge"),
		field.Text("text").
			NotEmpty().
			Comment("3-16384 chars"),
		field.Enum("authenticity").
			Values("authentic", "unauthenticated", "tampered", "edited_by_other").
			Default("authentic"),
		field.String("superceded_by_id").
			Optional().
			Nillable().
			Comment("Points at the replacement comment when this one was edited"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketComment.
func (TicketComment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("comments").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
		edge.To("superceded_by", TicketComment.Type).
			Unique().
			Field("superceded_by_id"),
	}
}

// Indexes of the TicketComment.
func (TicketComment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "created_at"),
	}
}
