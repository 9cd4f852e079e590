// Code generated by ent, DO NOT EDIT.

package submissionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the submissionrecord type in the database.
	Label = "submission_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldDocNumber holds the string denoting the doc_number field in the database.
	FieldDocNumber = "doc_number"
	// FieldDestinationType holds the string denoting the destination_type field in the database.
	FieldDestinationType = "destination_type"
	// FieldStoreID holds the string denoting the store_id field in the database.
	FieldStoreID = "store_id"
	// FieldStoreName holds the string denoting the store_name field in the database.
	FieldStoreName = "store_name"
	// FieldSupplierID holds the string denoting the supplier_id field in the database.
	FieldSupplierID = "supplier_id"
	// FieldSupplierName holds the string denoting the supplier_name field in the database.
	FieldSupplierName = "supplier_name"
	// FieldDocDate holds the string denoting the doc_date field in the database.
	FieldDocDate = "doc_date"
	// FieldItems holds the string denoting the items field in the database.
	FieldItems = "items"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldWarnings holds the string denoting the warnings field in the database.
	FieldWarnings = "warnings"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the submissionrecord in the database.
	Table = "submission_records"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "submission_records"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for submissionrecord fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldDocNumber,
	FieldDestinationType,
	FieldStoreID,
	FieldStoreName,
	FieldSupplierID,
	FieldSupplierName,
	FieldDocDate,
	FieldItems,
	FieldTotalAmount,
	FieldStatus,
	FieldErrorMessage,
	FieldWarnings,
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
	// DocNumberValidator is a validator for the "doc_number" field. It is called by the builders before save.
	DocNumberValidator func(string) error
	// DestinationTypeValidator is a validator for the "destination_type" field. It is called by the builders before save.
	DestinationTypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SubmissionRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByDocNumber orders the results by the doc_number field.
func ByDocNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocNumber, opts...).ToFunc()
}

// ByDestinationType orders the results by the destination_type field.
func ByDestinationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDestinationType, opts...).ToFunc()
}

// ByStoreID orders the results by the store_id field.
func ByStoreID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoreID, opts...).ToFunc()
}

// ByStoreName orders the results by the store_name field.
func ByStoreName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoreName, opts...).ToFunc()
}

// BySupplierID orders the results by the supplier_id field.
func BySupplierID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierID, opts...).ToFunc()
}

// BySupplierName orders the results by the supplier_name field.
func BySupplierName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierName, opts...).ToFunc()
}

// ByDocDate orders the results by the doc_date field.
func ByDocDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocDate, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
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
