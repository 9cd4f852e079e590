// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/mappingentry"
)

// MappingEntry is the model entity for the MappingEntry schema.
type MappingEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RawName holds the value of the "raw_name" field.
	RawName string `json:"raw_name,omitempty"`
	// CorrectedName holds the value of the "corrected_name" field.
	CorrectedName string `json:"corrected_name,omitempty"`
	// CatalogID holds the value of the "catalog_id" field.
	CatalogID uuid.UUID `json:"catalog_id,omitempty"`
	// CatalogType holds the value of the "catalog_type" field.
	CatalogType string `json:"catalog_type,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence int `json:"confidence,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// UseCount holds the value of the "use_count" field.
	UseCount int `json:"use_count,omitempty"`
	// LastUsedAt holds the value of the "last_used_at" field.
	LastUsedAt time.Time `json:"last_used_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MappingEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mappingentry.FieldConfidence, mappingentry.FieldUseCount:
			values[i] = new(sql.NullInt64)
		case mappingentry.FieldRawName, mappingentry.FieldCorrectedName, mappingentry.FieldCatalogType, mappingentry.FieldSource:
			values[i] = new(sql.NullString)
		case mappingentry.FieldLastUsedAt, mappingentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case mappingentry.FieldID, mappingentry.FieldCatalogID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MappingEntry fields.
func (_m *MappingEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mappingentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case mappingentry.FieldRawName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_name", values[i])
			} else if value.Valid {
				_m.RawName = value.String
			}
		case mappingentry.FieldCorrectedName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field corrected_name", values[i])
			} else if value.Valid {
				_m.CorrectedName = value.String
			}
		case mappingentry.FieldCatalogID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_id", values[i])
			} else if value != nil {
				_m.CatalogID = *value
			}
		case mappingentry.FieldCatalogType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field catalog_type", values[i])
			} else if value.Valid {
				_m.CatalogType = value.String
			}
		case mappingentry.FieldConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = int(value.Int64)
			}
		case mappingentry.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case mappingentry.FieldUseCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field use_count", values[i])
			} else if value.Valid {
				_m.UseCount = int(value.Int64)
			}
		case mappingentry.FieldLastUsedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_used_at", values[i])
			} else if value.Valid {
				_m.LastUsedAt = value.Time
			}
		case mappingentry.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MappingEntry.
// This includes values selected through modifiers, order, etc.
func (_m *MappingEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MappingEntry.
// Note that you need to call MappingEntry.Unwrap() before calling this method if this MappingEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MappingEntry) Update() *MappingEntryUpdateOne {
	return NewMappingEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MappingEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MappingEntry) Unwrap() *MappingEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MappingEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MappingEntry) String() string {
	var builder strings.Builder
	builder.WriteString("MappingEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("raw_name=")
	builder.WriteString(_m.RawName)
	builder.WriteString(", ")
	builder.WriteString("corrected_name=")
	builder.WriteString(_m.CorrectedName)
	builder.WriteString(", ")
	builder.WriteString("catalog_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CatalogID))
	builder.WriteString(", ")
	builder.WriteString("catalog_type=")
	builder.WriteString(_m.CatalogType)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("use_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UseCount))
	builder.WriteString(", ")
	builder.WriteString("last_used_at=")
	builder.WriteString(_m.LastUsedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MappingEntries is a parsable slice of MappingEntry.
type MappingEntries []*MappingEntry
