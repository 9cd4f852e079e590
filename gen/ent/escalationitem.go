// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/document"
	"github.com/paradize/restodocs/gen/ent/escalationitem"
)

// EscalationItem is the model entity for the EscalationItem schema.
type EscalationItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// RawName holds the value of the "raw_name" field.
	RawName string `json:"raw_name,omitempty"`
	// NormalizedName holds the value of the "normalized_name" field.
	NormalizedName string `json:"normalized_name,omitempty"`
	// CatalogType holds the value of the "catalog_type" field.
	CatalogType string `json:"catalog_type,omitempty"`
	// ResolvedID holds the value of the "resolved_id" field.
	ResolvedID *uuid.UUID `json:"resolved_id,omitempty"`
	// ResolvedName holds the value of the "resolved_name" field.
	ResolvedName *string `json:"resolved_name,omitempty"`
	// Resolved holds the value of the "resolved" field.
	Resolved bool `json:"resolved,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the EscalationItemQuery when eager-loading is set.
	Edges        EscalationItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// EscalationItemEdges holds the relations/edges for other nodes in the graph.
type EscalationItemEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e EscalationItemEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EscalationItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case escalationitem.FieldResolvedID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case escalationitem.FieldResolved:
			values[i] = new(sql.NullBool)
		case escalationitem.FieldRawName, escalationitem.FieldNormalizedName, escalationitem.FieldCatalogType, escalationitem.FieldResolvedName:
			values[i] = new(sql.NullString)
		case escalationitem.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case escalationitem.FieldID, escalationitem.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EscalationItem fields.
func (_m *EscalationItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case escalationitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case escalationitem.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case escalationitem.FieldRawName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_name", values[i])
			} else if value.Valid {
				_m.RawName = value.String
			}
		case escalationitem.FieldNormalizedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_name", values[i])
			} else if value.Valid {
				_m.NormalizedName = value.String
			}
		case escalationitem.FieldCatalogType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_type", values[i])
			} else if value.Valid {
				_m.CatalogType = value.String
			}
		case escalationitem.FieldResolvedID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_id", values[i])
			} else if value.Valid {
				_m.ResolvedID = new(uuid.UUID)
				*_m.ResolvedID = *value.S.(*uuid.UUID)
			}
		case escalationitem.FieldResolvedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resolved_name", values[i])
			} else if value.Valid {
				_m.ResolvedName = new(string)
				*_m.ResolvedName = value.String
			}
		case escalationitem.FieldResolved:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field resolved", values[i])
			} else if value.Valid {
				_m.Resolved = value.Bool
			}
		case escalationitem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EscalationItem.
// This includes values selected through modifiers, order, etc.
func (_m *EscalationItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the EscalationItem entity.
func (_m *EscalationItem) QueryDocument() *DocumentQuery {
	return NewEscalationItemClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this EscalationItem.
// Note that you need to call EscalationItem.Unwrap() before calling this method if this EscalationItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EscalationItem) Update() *EscalationItemUpdateOne {
	return NewEscalationItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EscalationItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EscalationItem) Unwrap() *EscalationItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EscalationItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EscalationItem) String() string {
	var builder strings.Builder
	builder.WriteString("EscalationItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("raw_name=")
	builder.WriteString(_m.RawName)
	builder.WriteString(", ")
	builder.WriteString("normalized_name=")
	builder.WriteString(_m.NormalizedName)
	builder.WriteString(", ")
	builder.WriteString("catalog_type=")
	builder.WriteString(_m.CatalogType)
	builder.WriteString(", ")
	if v := _m.ResolvedID; v != nil {
		builder.WriteString("resolved_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ResolvedName; v != nil {
		builder.WriteString("resolved_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("resolved=")
	builder.WriteString(fmt.Sprintf("%v", _m.Resolved))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EscalationItems is a parsable slice of EscalationItem.
type EscalationItems []*EscalationItem
