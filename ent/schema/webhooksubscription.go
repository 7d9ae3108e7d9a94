package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookSubscription holds the schema definition for the
// WebhookSubscription entity: a registered outbound webhook scoped to
// exactly one of (user, tracker, ticket), each scope with its own set of
// subscribable event names.
type WebhookSubscription struct {
	ent.Schema
}

// Fields of the WebhookSubscription.
func (WebhookSubscription) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("webhook_id").
			Unique().
			Immutable(),
		field.String("owner_user_id").
			Immutable().
			Comment("The user who registered this webhook"),
		field.String("tracker_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("ticket_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("url").
			NotEmpty(),
		field.String("secret").
			Sensitive().
			Comment("HMAC signing key generated at creation; never re-displayed"),
		field.JSON("events", []string{}).
			Comment("Subscribed event names drawn from the scope's event enum"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WebhookSubscription.
func (WebhookSubscription) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tracker", Tracker.Type).
			Ref("webhooks").
			Field("tracker_id").
			Unique().
			Immutable(),
		edge.From("ticket", Ticket.Type).
			Ref("webhooks").
			Field("ticket_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the WebhookSubscription.
func (WebhookSubscription) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_user_id"),
	}
}
