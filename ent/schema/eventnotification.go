package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventNotification holds the schema definition for the EventNotification
// entity: an (event, user) pair representing "this event is visible in
// the user's inbox." Written only for participants of variant user.
type EventNotification struct {
	ent.Schema
}

// Fields of the EventNotification.
func (EventNotification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_notification_id").
			Unique().
			Immutable(),
		field.String("event_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Bool("read").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EventNotification.
func (EventNotification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", Event.Type).
			Ref("notifications").
			Field("event_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EventNotification.
func (EventNotification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("event_id", "user_id").
			Unique(),
		index.Fields("user_id", "created_at"),
	}
}
