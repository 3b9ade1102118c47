package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Match holds the schema definition for the Match entity: a tenant-scoped
// finding produced by the match engine and consumed by the dispatcher.
type Match struct {
	ent.Schema
}

// Fields of the Match.
func (Match) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("match_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("keyword_rule_id").
			Immutable(),
		field.String("content_id").
			Immutable(),
		field.Enum("kind").
			Values("post", "comment").
			Immutable(),
		field.String("community").
			Immutable(),
		field.String("matched_phrase").
			Immutable().
			Comment("Joined tokens of the phrase that matched"),
		field.JSON("also_matched", []string{}).
			Optional().
			Comment("Other phrases matched on the same item for the same tenant"),
		field.String("snippet").
			Immutable().
			Comment("<=200 chars, centered on the match span"),
		field.Text("full_text").
			Optional().
			Nillable().
			Comment("Full body of the matched content, copied for audit without re-joining content_item"),
		field.Float("proximity_score").
			Immutable(),
		field.String("reddit_url").
			Immutable(),
		field.String("author").
			Optional().
			Nillable(),
		field.Bool("is_deleted").
			Default(false),
		field.Time("detected_at").
			Default(time.Now).
			Immutable(),
		field.Time("alert_sent_at").
			Optional().
			Nillable(),
		field.Enum("alert_status").
			Values("pending", "sent", "failed").
			Default("pending"),
	}
}

// Edges of the Match.
func (Match) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("matches").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("keyword_rule", KeywordRule.Type).
			Ref("matches").
			Field("keyword_rule_id").
			Unique().
			Required().
			Immutable(),
		edge.From("content", ContentItem.Type).
			Ref("matches").
			Field("content_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Match.
func (Match) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("alert_status"),
		index.Fields("community"),
		index.Fields("tenant_id"),
		index.Fields("tenant_id", "keyword_rule_id", "content_id").
			Unique(),
		index.Fields("detected_at"),
	}
}
