package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UserAccess holds the schema definition for the UserAccess entity: a
// per-(user, tracker) capability override bitset, takes precedence over
// tracker.default_access.
type UserAccess struct {
	ent.Schema
}

// Fields of the UserAccess.
func (UserAccess) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_access_id").
			Unique().
			Immutable(),
		field.String("tracker_id").
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Int("permissions").
			Comment("Capability bitset, see pkg/models.Capability"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the UserAccess.
func (UserAccess) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tracker", Tracker.Type).
			Ref("access_grants").
			Field("tracker_id").
			Unique().
			Required().
			Immutable(),
		edge.From("user", User.Type).
			Ref("access_grants").
			Field("user_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the UserAccess.
func (UserAccess) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tracker_id", "user_id").
			Unique(),
	}
}
