// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the tenant type in the database.
	Label = "tenant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tenant_id"
	// FieldContactEmail holds the string denoting the contact_email field in the database.
	FieldContactEmail = "contact_email"
	// FieldPollIntervalMinutes holds the string denoting the poll_interval_minutes field in the database.
	FieldPollIntervalMinutes = "poll_interval_minutes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeKeywordRules holds the string denoting the keyword_rules edge name in mutations.
	EdgeKeywordRules = "keyword_rules"
	// EdgeMonitoredCommunities holds the string denoting the monitored_communities edge name in mutations.
	EdgeMonitoredCommunities = "monitored_communities"
	// EdgeWebhookEndpoints holds the string denoting the webhook_endpoints edge name in mutations.
	EdgeWebhookEndpoints = "webhook_endpoints"
	// EdgeMatches holds the string denoting the matches edge name in mutations.
	EdgeMatches = "matches"
	// KeywordRuleFieldID holds the string denoting the ID field of the KeywordRule.
	KeywordRuleFieldID = "keyword_rule_id"
	// MonitoredCommunityFieldID holds the string denoting the ID field of the MonitoredCommunity.
	MonitoredCommunityFieldID = "community_id"
	// WebhookEndpointFieldID holds the string denoting the ID field of the WebhookEndpoint.
	WebhookEndpointFieldID = "webhook_endpoint_id"
	// MatchFieldID holds the string denoting the ID field of the Match.
	MatchFieldID = "match_id"
	// Table holds the table name of the tenant in the database.
	Table = "tenants"
	// KeywordRulesTable is the table that holds the keyword_rules relation/edge.
	KeywordRulesTable = "keyword_rules"
	// KeywordRulesInverseTable is the table name for the KeywordRule entity.
	// It exists in this package in order to avoid circular dependency with the "keywordrule" package.
	KeywordRulesInverseTable = "keyword_rules"
	// KeywordRulesColumn is the table column denoting the keyword_rules relation/edge.
	KeywordRulesColumn = "tenant_id"
	// MonitoredCommunitiesTable is the table that holds the monitored_communities relation/edge.
	MonitoredCommunitiesTable = "monitored_communities"
	// MonitoredCommunitiesInverseTable is the table name for the MonitoredCommunity entity.
	// It exists in this package in order to avoid circular dependency with the "monitoredcommunity" package.
	MonitoredCommunitiesInverseTable = "monitored_communities"
	// MonitoredCommunitiesColumn is the table column denoting the monitored_communities relation/edge.
	MonitoredCommunitiesColumn = "tenant_id"
	// WebhookEndpointsTable is the table that holds the webhook_endpoints relation/edge.
	WebhookEndpointsTable = "webhook_endpoints"
	// WebhookEndpointsInverseTable is the table name for the WebhookEndpoint entity.
	// It exists in this package in order to avoid circular dependency with the "webhookendpoint" package.
	WebhookEndpointsInverseTable = "webhook_endpoints"
	// WebhookEndpointsColumn is the table column denoting the webhook_endpoints relation/edge.
	WebhookEndpointsColumn = "tenant_id"
	// MatchesTable is the table that holds the matches relation/edge.
	MatchesTable = "matches"
	// MatchesInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchesInverseTable = "matches"
	// MatchesColumn is the table column denoting the matches relation/edge.
	MatchesColumn = "tenant_id"
)

// Columns holds all SQL columns for tenant fields.
var Columns = []string{
	FieldID,
	FieldContactEmail,
	FieldPollIntervalMinutes,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPollIntervalMinutes holds the default value on creation for the "poll_interval_minutes" field.
	DefaultPollIntervalMinutes int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Tenant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByContactEmail orders the results by the contact_email field.
func ByContactEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactEmail, opts...).ToFunc()
}

// ByPollIntervalMinutes orders the results by the poll_interval_minutes field.
func ByPollIntervalMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPollIntervalMinutes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByKeywordRulesCount orders the results by keyword_rules count.
func ByKeywordRulesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newKeywordRulesStep(), opts...)
	}
}

// ByKeywordRules orders the results by keyword_rules terms.
func ByKeywordRules(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newKeywordRulesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMonitoredCommunitiesCount orders the results by monitored_communities count.
func ByMonitoredCommunitiesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMonitoredCommunitiesStep(), opts...)
	}
}

// ByMonitoredCommunities orders the results by monitored_communities terms.
func ByMonitoredCommunities(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMonitoredCommunitiesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWebhookEndpointsCount orders the results by webhook_endpoints count.
func ByWebhookEndpointsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWebhookEndpointsStep(), opts...)
	}
}

// ByWebhookEndpoints orders the results by webhook_endpoints terms.
func ByWebhookEndpoints(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWebhookEndpointsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMatchesCount orders the results by matches count.
func ByMatchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMatchesStep(), opts...)
	}
}

// ByMatches orders the results by matches terms.
func ByMatches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newKeywordRulesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(KeywordRulesInverseTable, KeywordRuleFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, KeywordRulesTable, KeywordRulesColumn),
	)
}
func newMonitoredCommunitiesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MonitoredCommunitiesInverseTable, MonitoredCommunityFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MonitoredCommunitiesTable, MonitoredCommunitiesColumn),
	)
}
func newWebhookEndpointsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WebhookEndpointsInverseTable, WebhookEndpointFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WebhookEndpointsTable, WebhookEndpointsColumn),
	)
}
func newMatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchesInverseTable, MatchFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
	)
}
