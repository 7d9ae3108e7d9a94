package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
//
// A User is created on first OAuth exchange; it owns Trackers. Users are
// not referenced directly by tickets/comments/events — see Participant,
// which is the uniform actor identity those point at instead.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("user_id").
			Unique().
			Immutable().
			Comment("Stable foreign id issued by the identity service"),
		field.String("username").
			NotEmpty().
			Comment("Canonical name, referenced as ~username"),
		field.String("email").
			Optional().
			Nillable(),
		field.Bool("notify_self").
			Default(false).
			Comment("If false, a user's own actions never generate a notification to themself"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("trackers", Tracker.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("access_grants", UserAccess.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").
			Unique(),
	}
}
