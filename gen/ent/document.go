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
	"github.com/paradize/restodocs/internal/entity"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType string `json:"doc_type,omitempty"`
	// DocNumber holds the value of the "doc_number" field.
	DocNumber string `json:"doc_number,omitempty"`
	// DocDate holds the value of the "doc_date" field.
	DocDate string `json:"doc_date,omitempty"`
	// SupplierName holds the value of the "supplier_name" field.
	SupplierName *string `json:"supplier_name,omitempty"`
	// SupplierInn holds the value of the "supplier_inn" field.
	SupplierInn *string `json:"supplier_inn,omitempty"`
	// BuyerName holds the value of the "buyer_name" field.
	BuyerName *string `json:"buyer_name,omitempty"`
	// BuyerInn holds the value of the "buyer_inn" field.
	BuyerInn *string `json:"buyer_inn,omitempty"`
	// Items holds the value of the "items" field.
	Items []entity.LineItem `json:"items,omitempty"`
	// TotalAmount holds the value of the "total_amount" field.
	TotalAmount float64 `json:"total_amount,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence int `json:"confidence,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// IsMerged holds the value of the "is_merged" field.
	IsMerged bool `json:"is_merged,omitempty"`
	// NeedsReview holds the value of the "needs_review" field.
	NeedsReview bool `json:"needs_review,omitempty"`
	// GroupKey holds the value of the "group_key" field.
	GroupKey string `json:"group_key,omitempty"`
	// Warnings holds the value of the "warnings" field.
	Warnings []string `json:"warnings,omitempty"`
	// Errors holds the value of the "errors" field.
	Errors []string `json:"errors,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Submissions holds the value of the submissions edge.
	Submissions []*SubmissionRecord `json:"submissions,omitempty"`
	// Escalations holds the value of the escalations edge.
	Escalations []*EscalationItem `json:"escalations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) SubmissionsOrErr() ([]*SubmissionRecord, error) {
	if e.loadedTypes[0] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// EscalationsOrErr returns the Escalations value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) EscalationsOrErr() ([]*EscalationItem, error) {
	if e.loadedTypes[1] {
		return e.Escalations, nil
	}
	return nil, &NotLoadedError{edge: "escalations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldItems, document.FieldWarnings, document.FieldErrors:
			values[i] = new([]byte)
		case document.FieldIsMerged, document.FieldNeedsReview:
			values[i] = new(sql.NullBool)
		case document.FieldTotalAmount:
			values[i] = new(sql.NullFloat64)
		case document.FieldConfidence, document.FieldPageCount:
			values[i] = new(sql.NullInt64)
		case document.FieldDocType, document.FieldDocNumber, document.FieldDocDate, document.FieldSupplierName, document.FieldSupplierInn, document.FieldBuyerName, document.FieldBuyerInn, document.FieldGroupKey, document.FieldStatus:
			values[i] = new(sql.NullString)
		case document.FieldCreatedAt, document.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case document.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case document.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = value.String
			}
		case document.FieldDocNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_number", values[i])
			} else if value.Valid {
				_m.DocNumber = value.String
			}
		case document.FieldDocDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_date", values[i])
			} else if value.Valid {
				_m.DocDate = value.String
			}
		case document.FieldSupplierName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_name", values[i])
			} else if value.Valid {
				_m.SupplierName = new(string)
				*_m.SupplierName = value.String
			}
		case document.FieldSupplierInn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supplier_inn", values[i])
			} else if value.Valid {
				_m.SupplierInn = new(string)
				*_m.SupplierInn = value.String
			}
		case document.FieldBuyerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_name", values[i])
			} else if value.Valid {
				_m.BuyerName = new(string)
				*_m.BuyerName = value.String
			}
		case document.FieldBuyerInn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field buyer_inn", values[i])
			} else if value.Valid {
				_m.BuyerInn = new(string)
				*_m.BuyerInn = value.String
			}
		case document.FieldItems:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field items", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Items); err != nil {
					return fmt.Errorf("unmarshal field items: %w", err)
				}
			}
		case document.FieldTotalAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_amount", values[i])
			} else if value.Valid {
				_m.TotalAmount = value.Float64
			}
		case document.FieldConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = int(value.Int64)
			}
		case document.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case document.FieldIsMerged:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_merged", values[i])
			} else if value.Valid {
				_m.IsMerged = value.Bool
			}
		case document.FieldNeedsReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_review", values[i])
			} else if value.Valid {
				_m.NeedsReview = value.Bool
			}
		case document.FieldGroupKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_key", values[i])
			} else if value.Valid {
				_m.GroupKey = value.String
			}
		case document.FieldWarnings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field warnings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Warnings); err != nil {
					return fmt.Errorf("unmarshal field warnings: %w", err)
				}
			}
		case document.FieldErrors:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field errors", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Errors); err != nil {
					return fmt.Errorf("unmarshal field errors: %w", err)
				}
			}
		case document.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case document.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySubmissions queries the "submissions" edge of the Document entity.
func (_m *Document) QuerySubmissions() *SubmissionRecordQuery {
	return NewDocumentClient(_m.config).QuerySubmissions(_m)
}

// QueryEscalations queries the "escalations" edge of the Document entity.
func (_m *Document) QueryEscalations() *EscalationItemQuery {
	return NewDocumentClient(_m.config).QueryEscalations(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("doc_type=")
	builder.WriteString(_m.DocType)
	builder.WriteString(", ")
	builder.WriteString("doc_number=")
	builder.WriteString(_m.DocNumber)
	builder.WriteString(", ")
	builder.WriteString("doc_date=")
	builder.WriteString(_m.DocDate)
	builder.WriteString(", ")
	if v := _m.SupplierName; v != nil {
		builder.WriteString("supplier_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SupplierInn; v != nil {
		builder.WriteString("supplier_inn=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BuyerName; v != nil {
		builder.WriteString("buyer_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BuyerInn; v != nil {
		builder.WriteString("buyer_inn=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("items=")
	builder.WriteString(fmt.Sprintf("%v", _m.Items))
	builder.WriteString(", ")
	builder.WriteString("total_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAmount))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	builder.WriteString("is_merged=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsMerged))
	builder.WriteString(", ")
	builder.WriteString("needs_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReview))
	builder.WriteString(", ")
	builder.WriteString("group_key=")
	builder.WriteString(_m.GroupKey)
	builder.WriteString(", ")
	builder.WriteString("warnings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Warnings))
	builder.WriteString(", ")
	builder.WriteString("errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Errors))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
