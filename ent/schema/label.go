package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Label holds the schema definition for the Label entity.
type Label struct {
	ent.Schema
}

// Fields of the Label.
func (Label) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("label_id").
			Unique().
			Immutable(),
		field.String("tracker_id").
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.String("color").
			Comment("Background color, e.g. #rrggbb"),
		field.String("text_color").
			Comment("Computed contrasting foreground color"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Label.
func (Label) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tracker", Tracker.Type).
			Ref("labels").
			Field("tracker_id").
			Unique().
			Required().
			Immutable(),
		edge.To("applications", TicketLabel.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Label.
func (Label) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tracker_id", "name").
			Unique(),
	}
}
