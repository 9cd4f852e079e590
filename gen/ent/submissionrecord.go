// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/document"
	"github.com/paradize/restodocs/gen/ent/submissionrecord"
	"github.com/paradize/restodocs/internal/entity"
)

// SubmissionRecord is the model entity for the SubmissionRecord schema.
type SubmissionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// DocNumber holds the value of the "doc_number" field.
	DocNumber string `json:"doc_number,omitempty"`
	// DestinationType holds the value of the "destination_type" field.
	DestinationType string `json:"destination_type,omitempty"`
	// StoreID holds the value of the "store_id" field.
	StoreID *uuid.UUID `json:"store_id,omitempty"`
	// StoreName holds the value of the "store_name" field.
	StoreName string `json:"store_name,omitempty"`
	// SupplierID holds the value of the "supplier_id" field.
	SupplierID *uuid.UUID `json:"supplier_id,omitempty"`
	// SupplierName holds the value of the "supplier_name" field.
	SupplierName string `json:"supplier_name,omitempty"`
	// DocDate holds the value of the "doc_date" field.
	DocDate time.Time `json:"doc_date,omitempty"`
	// Items holds the value of the "items" field.
	Items []entity.LineItem `json:"items,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount float64 `json:"total_amount,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Warnings holds the value of the "warnings" field.
	Warnings []string `json:"warnings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubmissionRecordQuery when eager-loading is set.
	Edges        SubmissionRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubmissionRecordEdges holds the relations/edges for other nodes in the graph.
type SubmissionRecordEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmissionRecordEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubmissionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submissionrecord.FieldStoreID, submissionrecord.FieldSupplierID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case submissionrecord.FieldItems, submissionrecord.FieldWarnings:
			values[i] = new([]byte)
		case submissionrecord.FieldTotalAmount:
			values[i] = new(sql.NullFloat64)
		case submissionrecord.FieldDocNumber, submissionrecord.FieldDestinationType, submissionrecord.FieldStoreName, submissionrecord.FieldSupplierName, submissionrecord.FieldStatus, submissionrecord.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case submissionrecord.FieldDocDate, submissionrecord.FieldCreatedAt, submissionrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case submissionrecord.FieldID, submissionrecord.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubmissionRecord fields.
func (_m *SubmissionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submissionrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case submissionrecord.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case submissionrecord.FieldDocNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_number", values[i])
			} else if value.Valid {
				_m.DocNumber = value.String
			}
		case submissionrecord.FieldDestinationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field destination_type", values[i])
			} else if value.Valid {
				_m.DestinationType = value.String
			}
		case submissionrecord.FieldStoreID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field store_id", values[i])
			} else if value.Valid {
				_m.StoreID = new(uuid.UUID)
				*_m.StoreID = *value.S.(*uuid.UUID)
			}
		case submissionrecord.FieldStoreName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field store_name", values[i])
			} else if value.Valid {
				_m.StoreName = value.String
			}
		case submissionrecord.FieldSupplierID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_id", values[i])
			} else if value.Valid {
				_m.SupplierID = new(uuid.UUID)
				*_m.SupplierID = *value.S.(*uuid.UUID)
			}
		case submissionrecord.FieldSupplierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_name", values[i])
			} else if value.Valid {
				_m.SupplierName = value.String
			}
		case submissionrecord.FieldDocDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field doc_date", values[i])
			} else if value.Valid {
				_m.DocDate = value.Time
			}
		case submissionrecord.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		case submissionrecord.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Float64
			}
		case submissionrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case submissionrecord.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case submissionrecord.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case submissionrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case submissionrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SubmissionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *SubmissionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the SubmissionRecord entity.
func (_m *SubmissionRecord) QueryDocument() *DocumentQuery {
	return NewSubmissionRecordClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this SubmissionRecord.
// Note that you need to call SubmissionRecord.Unwrap() before calling this method if this SubmissionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SubmissionRecord) Update() *SubmissionRecordUpdateOne {
	return NewSubmissionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SubmissionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SubmissionRecord) Unwrap() *SubmissionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubmissionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SubmissionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SubmissionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("doc_number=")
	builder.WriteString(_m.DocNumber)
	builder.WriteString(", ")
	builder.WriteString("destination_type=")
	builder.WriteString(_m.DestinationType)
	builder.WriteString(", ")
	if v := _m.StoreID; v != nil {
		builder.WriteString("store_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("store_name=")
	builder.WriteString(_m.StoreName)
	builder.WriteString(", ")
	if v := _m.SupplierID; v != nil {
		builder.WriteString("supplier_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("supplier_name=")
	builder.WriteString(_m.SupplierName)
	builder.WriteString(", ")
	builder.WriteString("doc_date=")
	builder.WriteString(_m.DocDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubmissionRecords is a parsable slice of SubmissionRecord.
type SubmissionRecords []*SubmissionRecord
