// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/keywatch/keywatch/ent/keywordrule"
	"github.com/keywatch/keywatch/ent/tenant"
)

// KeywordRule is the model entity for the KeywordRule schema.
type KeywordRule struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// OR group; each entry is a phrase, whitespace-split into tokens at match time
	Phrases []string `json:"phrases,omitempty"`
	// Exclusions holds the value of the "exclusions" field.
	Exclusions []string `json:"exclusions,omitempty"`
	// ProximityWindow holds the value of the "proximity_window" field.
	ProximityWindow int `json:"proximity_window,omitempty"`
	// RequireOrder holds the value of the "require_order" field.
	RequireOrder bool `json:"require_order,omitempty"`
	// UseStemming holds the value of the "use_stemming" field.
	UseStemming bool `json:"use_stemming,omitempty"`
	// ExclusionScope holds the value of the "exclusion_scope" field.
	ExclusionScope keywordrule.ExclusionScope `json:"exclusion_scope,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// While set and in the future, the rule is treated as inactive
	SilencedUntil *time.Time `json:"silenced_until,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the KeywordRuleQuery when eager-loading is set.
	Edges        KeywordRuleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// KeywordRuleEdges holds the relations/edges for other nodes in the graph.
type KeywordRuleEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// Matches holds the value of the matches edge.
	Matches []*Match `json:"matches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e KeywordRuleEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// MatchesOrErr returns the Matches value or an error if the edge
// was not loaded in eager-loading.
func (e KeywordRuleEdges) MatchesOrErr() ([]*Match, error) {
	if e.loadedTypes[1] {
		return e.Matches, nil
	}
	return nil, &NotLoadedError{edge: "matches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*KeywordRule) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case keywordrule.FieldPhrases, keywordrule.FieldExclusions:
			values[i] = new([]byte)
		case keywordrule.FieldRequireOrder, keywordrule.FieldUseStemming, keywordrule.FieldIsActive:
			values[i] = new(sql.NullBool)
		case keywordrule.FieldProximityWindow:
			values[i] = new(sql.NullInt64)
		case keywordrule.FieldID, keywordrule.FieldTenantID, keywordrule.FieldExclusionScope:
			values[i] = new(sql.NullString)
		case keywordrule.FieldSilencedUntil, keywordrule.FieldCreatedAt, keywordrule.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the KeywordRule fields.
func (_m *KeywordRule) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case keywordrule.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case keywordrule.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case keywordrule.FieldPhrases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field phrases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Phrases); err != nil {
					return fmt.Errorf("unmarshal field phrases: %w", err)
				}
			}
		case keywordrule.FieldExclusions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field exclusions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Exclusions); err != nil {
					return fmt.Errorf("unmarshal field exclusions: %w", err)
				}
			}
		case keywordrule.FieldProximityWindow:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field proximity_window", values[i])
			} else if value.Valid {
				_m.ProximityWindow = int(value.Int64)
			}
		case keywordrule.FieldRequireOrder:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field require_order", values[i])
			} else if value.Valid {
				_m.RequireOrder = value.Bool
			}
		case keywordrule.FieldUseStemming:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field use_stemming", values[i])
			} else if value.Valid {
				_m.UseStemming = value.Bool
			}
		case keywordrule.FieldExclusionScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field exclusion_scope", values[i])
			} else if value.Valid {
				_m.ExclusionScope = keywordrule.ExclusionScope(value.String)
			}
		case keywordrule.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case keywordrule.FieldSilencedUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field silenced_until", values[i])
			} else if value.Valid {
				_m.SilencedUntil = new(time.Time)
				*_m.SilencedUntil = value.Time
			}
		case keywordrule.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case keywordrule.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the KeywordRule.
// This includes values selected through modifiers, order, etc.
func (_m *KeywordRule) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the KeywordRule entity.
func (_m *KeywordRule) QueryTenant() *TenantQuery {
	return NewKeywordRuleClient(_m.config).QueryTenant(_m)
}

// QueryMatches queries the "matches" edge of the KeywordRule entity.
func (_m *KeywordRule) QueryMatches() *MatchQuery {
	return NewKeywordRuleClient(_m.config).QueryMatches(_m)
}

// Update returns a builder for updating this KeywordRule.
// Note that you need to call KeywordRule.Unwrap() before calling this method if this KeywordRule
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *KeywordRule) Update() *KeywordRuleUpdateOne {
	return NewKeywordRuleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the KeywordRule entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *KeywordRule) Unwrap() *KeywordRule {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: KeywordRule is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *KeywordRule) String() string {
	var builder strings.Builder
	builder.WriteString("KeywordRule(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("phrases=")
	builder.WriteString(fmt.Sprintf("%v", _m.Phrases))
	builder.WriteString(", ")
	builder.WriteString("exclusions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exclusions))
	builder.WriteString(", ")
	builder.WriteString("proximity_window=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProximityWindow))
	builder.WriteString(", ")
	builder.WriteString("require_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequireOrder))
	builder.WriteString(", ")
	builder.WriteString("use_stemming=")
	builder.WriteString(fmt.Sprintf("%v", _m.UseStemming))
	builder.WriteString(", ")
	builder.WriteString("exclusion_scope=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExclusionScope))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.SilencedUntil; v != nil {
		builder.WriteString("silenced_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// KeywordRules is a parsable slice of KeywordRule.
type KeywordRules []*KeywordRule
