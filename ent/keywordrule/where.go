// Code generated by ent, DO NOT EDIT.

package keywordrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/keywatch/keywatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldTenantID, v))
}

// ProximityWindow applies equality check predicate on the "proximity_window" field. It's identical to ProximityWindowEQ.
func ProximityWindow(v int) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldProximityWindow, v))
}

// RequireOrder applies equality check predicate on the "require_order" field. It's identical to RequireOrderEQ.
func RequireOrder(v bool) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldRequireOrder, v))
}

// UseStemming applies equality check predicate on the "use_stemming" field. It's identical to UseStemmingEQ.
func UseStemming(v bool) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldUseStemming, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldIsActive, v))
}

// SilencedUntil applies equality check predicate on the "silenced_until" field. It's identical to SilencedUntilEQ.
func SilencedUntil(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldSilencedUntil, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldContainsFold(FieldTenantID, v))
}

// ExclusionsIsNil applies the IsNil predicate on the "exclusions" field.
func ExclusionsIsNil() predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldIsNull(FieldExclusions))
}

// ExclusionsNotNil applies the NotNil predicate on the "exclusions" field.
func ExclusionsNotNil() predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNotNull(FieldExclusions))
}

// ProximityWindowEQ applies the EQ predicate on the "proximity_window" field.
func ProximityWindowEQ(v int) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldProximityWindow, v))
}

// ProximityWindowNEQ applies the NEQ predicate on the "proximity_window" field.
func ProximityWindowNEQ(v int) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNEQ(FieldProximityWindow, v))
}

// ProximityWindowIn applies the In predicate on the "proximity_window" field.
func ProximityWindowIn(vs ...int) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldIn(FieldProximityWindow, vs...))
}

// ProximityWindowNotIn applies the NotIn predicate on the "proximity_window" field.
func ProximityWindowNotIn(vs ...int) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNotIn(FieldProximityWindow, vs...))
}

// ProximityWindowGT applies the GT predicate on the "proximity_window" field.
func ProximityWindowGT(v int) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGT(FieldProximityWindow, v))
}

// ProximityWindowGTE applies the GTE predicate on the "proximity_window" field.
func ProximityWindowGTE(v int) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGTE(FieldProximityWindow, v))
}

// ProximityWindowLT applies the LT predicate on the "proximity_window" field.
func ProximityWindowLT(v int) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLT(FieldProximityWindow, v))
}

// ProximityWindowLTE applies the LTE predicate on the "proximity_window" field.
func ProximityWindowLTE(v int) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLTE(FieldProximityWindow, v))
}

// RequireOrderEQ applies the EQ predicate on the "require_order" field.
func RequireOrderEQ(v bool) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldRequireOrder, v))
}

// RequireOrderNEQ applies the NEQ predicate on the "require_order" field.
func RequireOrderNEQ(v bool) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNEQ(FieldRequireOrder, v))
}

// UseStemmingEQ applies the EQ predicate on the "use_stemming" field.
func UseStemmingEQ(v bool) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldUseStemming, v))
}

// UseStemmingNEQ applies the NEQ predicate on the "use_stemming" field.
func UseStemmingNEQ(v bool) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNEQ(FieldUseStemming, v))
}

// ExclusionScopeEQ applies the EQ predicate on the "exclusion_scope" field.
func ExclusionScopeEQ(v ExclusionScope) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldExclusionScope, v))
}

// ExclusionScopeNEQ applies the NEQ predicate on the "exclusion_scope" field.
func ExclusionScopeNEQ(v ExclusionScope) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNEQ(FieldExclusionScope, v))
}

// ExclusionScopeIn applies the In predicate on the "exclusion_scope" field.
func ExclusionScopeIn(vs ...ExclusionScope) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldIn(FieldExclusionScope, vs...))
}

// ExclusionScopeNotIn applies the NotIn predicate on the "exclusion_scope" field.
func ExclusionScopeNotIn(vs ...ExclusionScope) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNotIn(FieldExclusionScope, vs...))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNEQ(FieldIsActive, v))
}

// SilencedUntilEQ applies the EQ predicate on the "silenced_until" field.
func SilencedUntilEQ(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldSilencedUntil, v))
}

// SilencedUntilNEQ applies the NEQ predicate on the "silenced_until" field.
func SilencedUntilNEQ(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNEQ(FieldSilencedUntil, v))
}

// SilencedUntilIn applies the In predicate on the "silenced_until" field.
func SilencedUntilIn(vs ...time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldIn(FieldSilencedUntil, vs...))
}

// SilencedUntilNotIn applies the NotIn predicate on the "silenced_until" field.
func SilencedUntilNotIn(vs ...time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNotIn(FieldSilencedUntil, vs...))
}

// SilencedUntilGT applies the GT predicate on the "silenced_until" field.
func SilencedUntilGT(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGT(FieldSilencedUntil, v))
}

// SilencedUntilGTE applies the GTE predicate on the "silenced_until" field.
func SilencedUntilGTE(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGTE(FieldSilencedUntil, v))
}

// SilencedUntilLT applies the LT predicate on the "silenced_until" field.
func SilencedUntilLT(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLT(FieldSilencedUntil, v))
}

// SilencedUntilLTE applies the LTE predicate on the "silenced_until" field.
func SilencedUntilLTE(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLTE(FieldSilencedUntil, v))
}

// SilencedUntilIsNil applies the IsNil predicate on the "silenced_until" field.
func SilencedUntilIsNil() predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldIsNull(FieldSilencedUntil))
}

// SilencedUntilNotNil applies the NotNil predicate on the "silenced_until" field.
func SilencedUntilNotNil() predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNotNull(FieldSilencedUntil))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.KeywordRule {
	return predicate.KeywordRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.KeywordRule {
	return predicate.KeywordRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.KeywordRule {
	return predicate.KeywordRule(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatches applies the HasEdge predicate on the "matches" edge.
func HasMatches() predicate.KeywordRule {
	return predicate.KeywordRule(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchesWith applies the HasEdge predicate on the "matches" edge with a given conditions (other predicates).
func HasMatchesWith(preds ...predicate.Match) predicate.KeywordRule {
	return predicate.KeywordRule(func(s *sql.Selector) {
		step := newMatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.KeywordRule) predicate.KeywordRule {
	return predicate.KeywordRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.KeywordRule) predicate.KeywordRule {
	return predicate.KeywordRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.KeywordRule) predicate.KeywordRule {
	return predicate.KeywordRule(sql.NotPredicates(p))
}
