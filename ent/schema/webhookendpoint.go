package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEndpoint holds the schema definition for the WebhookEndpoint
// entity: a per-tenant outbound dispatch target.
type WebhookEndpoint struct {
	ent.Schema
}

// Fields of the WebhookEndpoint.
func (WebhookEndpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("webhook_endpoint_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("url").
			Comment("Must match the accepted chat-provider pattern and pass the SSRF guard"),
		field.String("guild_name").
			Optional().
			Nillable().
			Comment("Operator-facing label for the destination server; not used for dispatch"),
		field.Bool("is_primary").
			Default(false),
		field.Bool("is_active").
			Default(true),
		field.Time("last_tested_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the WebhookEndpoint.
func (WebhookEndpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("webhook_endpoints").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WebhookEndpoint.
func (WebhookEndpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("tenant_id", "is_primary"),
	}
}
