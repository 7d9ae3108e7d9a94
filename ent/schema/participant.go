package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Participant holds the schema definition for the Participant entity.
//
// A Participant is a discriminated union over three identity variants —
// user, email, external — with exactly one of the three natural-key
// columns populated. Participants, never Users directly, are the actors
// recorded on tickets, comments, events and subscriptions. Participant is
// deliberately a standalone record: other entities hold its id in a plain
// string field rather than an ent edge (see repository lookups in
// pkg/services), matching the "navigation is by repository calls, not by
// chasing pointers" design note for this domain.
type Participant struct {
	ent.Schema
}

// Fields of the Participant.
func (Participant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("participant_id").
			Unique().
			Immutable(),
		field.Enum("variant").
			Values("user", "email", "external").
			Immutable().
			Comment("Discriminates which of the three natural-key columns is populated"),
		field.String("user_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("email_address").
			Optional().
			Nillable().
			Immutable(),
		field.String("email_name").
			Optional().
			Nillable().
			Comment("Display name for an email-variant participant; falls back to the address"),
		field.String("external_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("external_url").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Participant enforce uniqueness per natural key, one
// unique index per column. Only one of the three columns is ever non-null
// for a given row, and Postgres unique indexes treat NULLs as distinct
// from one another, so the NULL columns never collide.
func (Participant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").
			Unique(),
		index.Fields("email_address").
			Unique(),
		index.Fields("external_id").
			Unique(),
	}
}
