package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tracker holds the schema definition for the Tracker entity.
// A Tracker is owned by exactly one User and contains Tickets and Labels.
type Tracker struct {
	ent.Schema
}

// Fields of the Tracker.
func (Tracker) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tracker_id").
			Unique().
			Immutable(),
		field.String("owner_id").
			Immutable(),
		field.String("name").
			NotEmpty().
			Comment("Matches [A-Za-z0-9._-]+, 1-255 chars, not '.'/'..'/'.git'/'.hg'"),
		field.String("description").
			Optional().
			Default(""),
		field.Enum("visibility").
			Values("public", "unlisted", "private").
			Default("public"),
		field.Int("default_access").
			Default(0).
			Comment("Bitset over {browse, submit, comment, edit, triage} applied when no ACL row matches"),
		field.Int("next_ticket_id").
			Default(1).
			Comment("Monotonic counter; scoped_id is assigned from this value under a row lock"),
		field.Bool("import_in_progress").
			Default(false).
			Comment("Masks partial state while a bulk import is running"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Tracker.
func (Tracker) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("trackers").
			Field("owner_id").
			Unique().
			Required().
			Immutable(),
		edge.To("tickets", Ticket.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("labels", Label.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("access_grants", UserAccess.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("subscriptions", TicketSubscription.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("webhooks", WebhookSubscription.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Tracker.
func (Tracker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id", "name").
			Unique(),
		index.Fields("visibility"),
	}
}

// Annotations for PostgreSQL-specific features.
func (Tracker) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
