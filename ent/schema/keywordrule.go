package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KeywordRule holds the schema definition for the KeywordRule entity: the
// matcher's unit of configuration.
type KeywordRule struct {
	ent.Schema
}

// Fields of the KeywordRule.
func (KeywordRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("keyword_rule_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.JSON("phrases", []string{}).
			Comment("OR group; each entry is a phrase, whitespace-split into tokens at match time"),
		field.JSON("exclusions", []string{}).
			Optional(),
		field.Int("proximity_window").
			Default(15),
		field.Bool("require_order").
			Default(false),
		field.Bool("use_stemming").
			Default(false),
		field.Enum("exclusion_scope").
			Values("anywhere", "proximity").
			Default("anywhere"),
		field.Bool("is_active").
			Default(true),
		field.Time("silenced_until").
			Optional().
			Nillable().
			Comment("While set and in the future, the rule is treated as inactive"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the KeywordRule.
func (KeywordRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("keyword_rules").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.To("matches", Match.Type),
	}
}

// Indexes of the KeywordRule.
func (KeywordRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("is_active"),
	}
}
