package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentItem holds the schema definition for the ContentItem entity: a
// persisted unit of fetched content, process-wide and shared across tenants.
type ContentItem struct {
	ent.Schema
}

// Fields of the ContentItem.
func (ContentItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("content_id").
			Unique().
			Immutable(),
		field.String("source_id").
			Unique().
			Immutable().
			Comment("Opaque upstream id"),
		field.String("community").
			Immutable(),
		field.Enum("kind").
			Values("post", "comment").
			Immutable(),
		field.String("title").
			Optional().
			Nillable().
			Comment("Posts only"),
		field.Text("body").
			Comment("Raw text as fetched"),
		field.String("author").
			Optional().
			Nillable(),
		field.Text("normalized_text").
			Comment("Output of the normalizer pipeline"),
		field.String("digest").
			Unique().
			Immutable().
			Comment("Hex SHA-256 of normalized_text"),
		field.Time("source_created_at"),
		field.Time("fetched_at").
			Default(time.Now).
			Immutable(),
		field.Bool("is_deleted").
			Default(false),
	}
}

// Edges of the ContentItem.
func (ContentItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("matches", Match.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ContentItem.
func (ContentItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id").
			Unique(),
		index.Fields("digest").
			Unique(),
		index.Fields("community"),
		index.Fields("fetched_at"),
	}
}
