// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/keywatch/keywatch/ent/monitoredcommunity"
	"github.com/keywatch/keywatch/ent/tenant"
)

// MonitoredCommunity is the model entity for the MonitoredCommunity schema.
type MonitoredCommunity struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// Lowercase community name, r/ prefix stripped at the CRUD boundary
	Name string `json:"name,omitempty"`
	// IncludeMediaPosts holds the value of the "include_media_posts" field.
	IncludeMediaPosts bool `json:"include_media_posts,omitempty"`
	// DedupeCrossposts holds the value of the "dedupe_crossposts" field.
	DedupeCrossposts bool `json:"dedupe_crossposts,omitempty"`
	// FilterBots holds the value of the "filter_bots" field.
	FilterBots bool `json:"filter_bots,omitempty"`
	// Status holds the value of the "status" field.
	Status monitoredcommunity.Status `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MonitoredCommunityQuery when eager-loading is set.
	Edges        MonitoredCommunityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MonitoredCommunityEdges holds the relations/edges for other nodes in the graph.
type MonitoredCommunityEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MonitoredCommunityEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MonitoredCommunity) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case monitoredcommunity.FieldIncludeMediaPosts, monitoredcommunity.FieldDedupeCrossposts, monitoredcommunity.FieldFilterBots:
			values[i] = new(sql.NullBool)
		case monitoredcommunity.FieldID, monitoredcommunity.FieldTenantID, monitoredcommunity.FieldName, monitoredcommunity.FieldStatus:
			values[i] = new(sql.NullString)
		case monitoredcommunity.FieldCreatedAt, monitoredcommunity.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MonitoredCommunity fields.
func (_m *MonitoredCommunity) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case monitoredcommunity.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case monitoredcommunity.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case monitoredcommunity.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case monitoredcommunity.FieldIncludeMediaPosts:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field include_media_posts", values[i])
			} else if value.Valid {
				_m.IncludeMediaPosts = value.Bool
			}
		case monitoredcommunity.FieldDedupeCrossposts:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field dedupe_crossposts", values[i])
			} else if value.Valid {
				_m.DedupeCrossposts = value.Bool
			}
		case monitoredcommunity.FieldFilterBots:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field filter_bots", values[i])
			} else if value.Valid {
				_m.FilterBots = value.Bool
			}
		case monitoredcommunity.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = monitoredcommunity.Status(value.String)
			}
		case monitoredcommunity.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case monitoredcommunity.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MonitoredCommunity.
// This includes values selected through modifiers, order, etc.
func (_m *MonitoredCommunity) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the MonitoredCommunity entity.
func (_m *MonitoredCommunity) QueryTenant() *TenantQuery {
	return NewMonitoredCommunityClient(_m.config).QueryTenant(_m)
}

// Update returns a builder for updating this MonitoredCommunity.
// Note that you need to call MonitoredCommunity.Unwrap() before calling this method if this MonitoredCommunity
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MonitoredCommunity) Update() *MonitoredCommunityUpdateOne {
	return NewMonitoredCommunityClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MonitoredCommunity entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MonitoredCommunity) Unwrap() *MonitoredCommunity {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MonitoredCommunity is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MonitoredCommunity) String() string {
	var builder strings.Builder
	builder.WriteString("MonitoredCommunity(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("include_media_posts=")
	builder.WriteString(fmt.Sprintf("%v", _m.IncludeMediaPosts))
	builder.WriteString(", ")
	builder.WriteString("dedupe_crossposts=")
	builder.WriteString(fmt.Sprintf("%v", _m.DedupeCrossposts))
	builder.WriteString(", ")
	builder.WriteString("filter_bots=")
	builder.WriteString(fmt.Sprintf("%v", _m.FilterBots))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MonitoredCommunities is a parsable slice of MonitoredCommunity.
type MonitoredCommunities []*MonitoredCommunity
