package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TicketAssignee holds the schema definition for the TicketAssignee entity,
// the many-to-many association between Ticket and assignee Participant.
type TicketAssignee struct {
	ent.Schema
}

// Fields of the TicketAssignee.
func (TicketAssignee) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("ticket_assignee_id").
			Unique().
			Immutable(),
		field.String("ticket_id").
			Immutable(),
		field.String("assignee_id").
			Immutable().
			Comment("Participant id being assigned"),
		field.String("assigned_by_id").
			Immutable().
			Comment("Participant id who performed the assignment"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TicketAssignee.
func (TicketAssignee) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("ticket", Ticket.Type).
			Ref("assignees").
			Field("ticket_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TicketAssignee.
func (TicketAssignee) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("ticket_id", "assignee_id").
			Unique(),
	}
}
