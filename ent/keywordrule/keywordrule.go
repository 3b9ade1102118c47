// Code generated by ent, DO NOT EDIT.

package keywordrule

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the keywordrule type in the database.
	Label = "keyword_rule"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "keyword_rule_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldPhrases holds the string denoting the phrases field in the database.
	FieldPhrases = "phrases"
	// FieldExclusions holds the string denoting the exclusions field in the database.
	FieldExclusions = "exclusions"
	// FieldProximityWindow holds the string denoting the proximity_window field in the database.
	FieldProximityWindow = "proximity_window"
	// FieldRequireOrder holds the string denoting the require_order field in the database.
	FieldRequireOrder = "require_order"
	// FieldUseStemming holds the string denoting the use_stemming field in the database.
	FieldUseStemming = "use_stemming"
	// FieldExclusionScope holds the string denoting the exclusion_scope field in the database.
	FieldExclusionScope = "exclusion_scope"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldSilencedUntil holds the string denoting the silenced_until field in the database.
	FieldSilencedUntil = "silenced_until"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// EdgeMatches holds the string denoting the matches edge name in mutations.
	EdgeMatches = "matches"
	// TenantFieldID holds the string denoting the ID field of the Tenant.
	TenantFieldID = "tenant_id"
	// MatchFieldID holds the string denoting the ID field of the Match.
	MatchFieldID = "match_id"
	// Table holds the table name of the keywordrule in the database.
	Table = "keyword_rules"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "keyword_rules"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
	// MatchesTable is the table that holds the matches relation/edge.
	MatchesTable = "matches"
	// MatchesInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchesInverseTable = "matches"
	// MatchesColumn is the table column denoting the matches relation/edge.
	MatchesColumn = "keyword_rule_id"
)

// Columns holds all SQL columns for keywordrule fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldPhrases,
	FieldExclusions,
	FieldProximityWindow,
	FieldRequireOrder,
	FieldUseStemming,
	FieldExclusionScope,
	FieldIsActive,
	FieldSilencedUntil,
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
	// DefaultProximityWindow holds the default value on creation for the "proximity_window" field.
	DefaultProximityWindow int
	// DefaultRequireOrder holds the default value on creation for the "require_order" field.
	DefaultRequireOrder bool
	// DefaultUseStemming holds the default value on creation for the "use_stemming" field.
	DefaultUseStemming bool
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ExclusionScope defines the type for the "exclusion_scope" enum field.
type ExclusionScope string

// ExclusionScopeAnywhere is the default value of the ExclusionScope enum.
const DefaultExclusionScope = ExclusionScopeAnywhere

// ExclusionScope values.
const (
	ExclusionScopeAnywhere  ExclusionScope = "anywhere"
	ExclusionScopeProximity ExclusionScope = "proximity"
)

func (es ExclusionScope) String() string {
	return string(es)
}

// ExclusionScopeValidator is a validator for the "exclusion_scope" field enum values. It is called by the builders before save.
func ExclusionScopeValidator(es ExclusionScope) error {
	switch es {
	case ExclusionScopeAnywhere, ExclusionScopeProximity:
		return nil
	default:
		return fmt.Errorf("keywordrule: invalid enum value for exclusion_scope field: %q", es)
	}
}

// OrderOption defines the ordering options for the KeywordRule queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByProximityWindow orders the results by the proximity_window field.
func ByProximityWindow(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProximityWindow, opts...).ToFunc()
}

// ByRequireOrder orders the results by the require_order field.
func ByRequireOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequireOrder, opts...).ToFunc()
}

// ByUseStemming orders the results by the use_stemming field.
func ByUseStemming(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseStemming, opts...).ToFunc()
}

// ByExclusionScope orders the results by the exclusion_scope field.
func ByExclusionScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExclusionScope, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// BySilencedUntil orders the results by the silenced_until field.
func BySilencedUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSilencedUntil, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTenantField orders the results by tenant field.
func ByTenantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTenantStep(), sql.OrderByField(field, opts...))
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
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, TenantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
func newMatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchesInverseTable, MatchFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
	)
}
