// Code generated by ent, DO NOT EDIT.

package escalationitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the escalationitem type in the database.
	Label = "escalation_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldRawName holds the string denoting the raw_name field in the database.
	FieldRawName = "raw_name"
	// FieldNormalizedName holds the string denoting the normalized_name field in the database.
	FieldNormalizedName = "normalized_name"
	// FieldCatalogType holds the string denoting the catalog_type field in the database.
	FieldCatalogType = "catalog_type"
	// FieldResolvedID holds the string denoting the resolved_id field in the database.
	FieldResolvedID = "resolved_id"
	// FieldResolvedName holds the string denoting the resolved_name field in the database.
	FieldResolvedName = "resolved_name"
	// FieldResolved holds the string denoting the resolved field in the database.
	FieldResolved = "resolved"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the escalationitem in the database.
	Table = "escalation_items"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "escalation_items"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for escalationitem fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldRawName,
	FieldNormalizedName,
	FieldCatalogType,
	FieldResolvedID,
	FieldResolvedName,
	FieldResolved,
	FieldCreatedAt,
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
	// RawNameValidator is a validator for the "raw_name" field. It is called by the builders before save.
	RawNameValidator func(string) error
	// NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	NormalizedNameValidator func(string) error
	// CatalogTypeValidator is a validator for the "catalog_type" field. It is called by the builders before save.
	CatalogTypeValidator func(string) error
	// DefaultResolved holds the default value on creation for the "resolved" field.
	DefaultResolved bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the EscalationItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByRawName orders the results by the raw_name field.
func ByRawName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawName, opts...).ToFunc()
}

// ByNormalizedName orders the results by the normalized_name field.
func ByNormalizedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedName, opts...).ToFunc()
}

// ByCatalogType orders the results by the catalog_type field.
func ByCatalogType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogType, opts...).ToFunc()
}

// ByResolvedID orders the results by the resolved_id field.
func ByResolvedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedID, opts...).ToFunc()
}

// ByResolvedName orders the results by the resolved_name field.
func ByResolvedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedName, opts...).ToFunc()
}

// ByResolved orders the results by the resolved field.
func ByResolved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolved, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
