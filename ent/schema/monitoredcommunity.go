package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonitoredCommunity holds the schema definition for the MonitoredCommunity
// entity: a (tenant, community name, flags) record the Ingestor polls.
type MonitoredCommunity struct {
	ent.Schema
}

// Fields of the MonitoredCommunity.
func (MonitoredCommunity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("community_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name").
			Comment("Lowercase community name, r/ prefix stripped at the CRUD boundary"),
		field.Bool("include_media_posts").
			Default(false),
		field.Bool("dedupe_crossposts").
			Default(true),
		field.Bool("filter_bots").
			Default(true),
		field.Enum("status").
			Values("active", "inaccessible", "private").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the MonitoredCommunity.
func (MonitoredCommunity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("monitored_communities").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MonitoredCommunity.
func (MonitoredCommunity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "name").
			Unique(),
		index.Fields("status"),
	}
}
