package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tenant holds the schema definition for the Tenant entity.
// Identity for an isolated owner of rules, communities, webhook endpoints
// and matches.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tenant_id").
			Unique().
			Immutable(),
		field.String("contact_email").
			Optional().
			Nillable(),
		field.Int("poll_interval_minutes").
			Default(60).
			Comment("Desired ingest cadence; stored only, the scheduler runs on the global poll interval"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("keyword_rules", KeywordRule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("monitored_communities", MonitoredCommunity.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("webhook_endpoints", WebhookEndpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("matches", Match.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Tenant.
func (Tenant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contact_email"),
	}
}
