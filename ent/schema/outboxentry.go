package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// OutboxEntry holds the schema definition for the OutboxEntry entity: a
// durable, at-least-once delivery record for the two outbound transports
// this service enqueues rather than performs directly (email, webhook).
// Queue rows are kept separate from the domain entities they describe,
// since a single event can fan out to many deliveries.
type OutboxEntry struct {
	ent.Schema
}

// Fields of the OutboxEntry.
func (OutboxEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("outbox_id").
			Unique().
			Immutable(),
		field.String("kind").
			Immutable().
			Comment("\"mail\" or \"webhook\""),
		field.String("event_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Event this delivery fans out from, if any"),
		field.String("target").
			Immutable().
			Comment("Recipient address (mail) or subscription id (webhook)"),
		field.JSON("payload", map[string]any{}).
			Immutable(),
		field.String("status").
			Default("pending").
			Comment("pending, in_progress, delivered, failed"),
		field.Int("attempts").
			Default(0),
		field.Time("next_attempt_at").
			Default(time.Now),
		field.Time("delivered_at").
			Optional().
			Nillable(),
		field.String("last_error").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the OutboxEntry.
func (OutboxEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "next_attempt_at"),
		index.Fields("kind", "status"),
	}
}
