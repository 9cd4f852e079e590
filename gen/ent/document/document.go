// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocType holds the string denoting the doc_type field in the database.
	FieldDocType = "doc_type"
	// FieldDocNumber holds the string denoting the doc_number field in the database.
	FieldDocNumber = "doc_number"
	// FieldDocDate holds the string denoting the doc_date field in the database.
	FieldDocDate = "doc_date"
	// FieldSupplierName holds the string denoting the supplier_name field in the database.
	FieldSupplierName = "supplier_name"
	// FieldSupplierInn holds the string denoting the supplier_inn field in the database.
	FieldSupplierInn = "supplier_inn"
	// FieldBuyerName holds the string denoting the buyer_name field in the database.
	FieldBuyerName = "buyer_name"
	// FieldBuyerInn holds the string denoting the buyer_inn field in the database.
	FieldBuyerInn = "buyer_inn"
	// FieldItems holds the string denoting the items field in the database.
	FieldItems = "items"
	// FieldTotalAmount holds the string denoting the total_amount field in the database.
	FieldTotalAmount = "total_amount"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldIsMerged holds the string denoting the is_merged field in the database.
	FieldIsMerged = "is_merged"
	// FieldNeedsReview holds the string denoting the needs_review field in the database.
	FieldNeedsReview = "needs_review"
	// FieldGroupKey holds the string denoting the group_key field in the database.
	FieldGroupKey = "group_key"
	// FieldWarnings holds the string denoting the warnings field in the database.
	FieldWarnings = "warnings"
	// FieldErrors holds the string denoting the errors field in the database.
	FieldErrors = "errors"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSubmissions holds the string denoting the submissions edge name in mutations.
	EdgeSubmissions = "submissions"
	// EdgeEscalations holds the string denoting the escalations edge name in mutations.
	EdgeEscalations = "escalations"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// SubmissionsTable is the table that holds the submissions relation/edge.
	SubmissionsTable = "submission_records"
	// SubmissionsInverseTable is the table name for the SubmissionRecord entity.
	// It exists in this package in order to avoid circular dependency with the "submissionrecord" package.
	SubmissionsInverseTable = "submission_records"
	// SubmissionsColumn is the table column denoting the submissions relation/edge.
	SubmissionsColumn = "document_id"
	// EscalationsTable is the table that holds the escalations relation/edge.
	EscalationsTable = "escalation_items"
	// EscalationsInverseTable is the table name for the EscalationItem entity.
	// It exists in this package in order to avoid circular dependency with the "escalationitem" package.
	EscalationsInverseTable = "escalation_items"
	// EscalationsColumn is the table column denoting the escalations relation/edge.
	EscalationsColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldDocType,
	FieldDocNumber,
	FieldDocDate,
	FieldSupplierName,
	FieldSupplierInn,
	FieldBuyerName,
	FieldBuyerInn,
	FieldItems,
	FieldTotalAmount,
	FieldConfidence,
	FieldPageCount,
	FieldIsMerged,
	FieldNeedsReview,
	FieldGroupKey,
	FieldWarnings,
	FieldErrors,
	FieldStatus,
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
	// DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	DocTypeValidator func(string) error
	// DefaultPageCount holds the default value on creation for the "page_count" field.
	DefaultPageCount int
	// DefaultIsMerged holds the default value on creation for the "is_merged" field.
	DefaultIsMerged bool
	// DefaultNeedsReview holds the default value on creation for the "needs_review" field.
	DefaultNeedsReview bool
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

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocType orders the results by the doc_type field.
func ByDocType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocType, opts...).ToFunc()
}

// ByDocNumber orders the results by the doc_number field.
func ByDocNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocNumber, opts...).ToFunc()
}

// ByDocDate orders the results by the doc_date field.
func ByDocDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocDate, opts...).ToFunc()
}

// BySupplierName orders the results by the supplier_name field.
func BySupplierName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierName, opts...).ToFunc()
}

// BySupplierInn orders the results by the supplier_inn field.
func BySupplierInn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSupplierInn, opts...).ToFunc()
}

// ByBuyerName orders the results by the buyer_name field.
func ByBuyerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerName, opts...).ToFunc()
}

// ByBuyerInn orders the results by the buyer_inn field.
func ByBuyerInn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyerInn, opts...).ToFunc()
}

// ByTotalAmount orders the results by the total_amount field.
func ByTotalAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAmount, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByIsMerged orders the results by the is_merged field.
func ByIsMerged(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsMerged, opts...).ToFunc()
}

// ByNeedsReview orders the results by the needs_review field.
func ByNeedsReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReview, opts...).ToFunc()
}

// ByGroupKey orders the results by the group_key field.
func ByGroupKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupKey, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySubmissionsCount orders the results by submissions count.
func BySubmissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubmissionsStep(), opts...)
	}
}

// BySubmissions orders the results by submissions terms.
func BySubmissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEscalationsCount orders the results by escalations count.
func ByEscalationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEscalationsStep(), opts...)
	}
}

// ByEscalations orders the results by escalations terms.
func ByEscalations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEscalationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newSubmissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
	)
}
func newEscalationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EscalationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EscalationsTable, EscalationsColumn),
	)
}
