package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketLabel holds the schema definition for the TicketLabel entity,
// the many-to-many association between Ticket and Label.
type TicketLabel struct {
	ent.Schema
}

// Fields of the TicketLabel.
func (TicketLabel) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_label_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.String("label_id").
			Immutable(),
		field.String("applied_by_id").
			Immutable().
			Comment("Participant id who applied the label"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketLabel.
func (TicketLabel) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("labels").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
		edge.From("label", Label.Type).
			Ref("applications").
			Field("label_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TicketLabel.
func (TicketLabel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "label_id").
			Unique(),
	}
}
