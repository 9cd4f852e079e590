// Code generated by ent, DO NOT EDIT.

package mappingentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the mappingentry type in the database.
	Label = "mapping_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRawName holds the string denoting the raw_name field in the database.
	FieldRawName = "raw_name"
	// FieldCorrectedName holds the string denoting the corrected_name field in the database.
	FieldCorrectedName = "corrected_name"
	// FieldCatalogID holds the string denoting the catalog_id field in the database.
	FieldCatalogID = "catalog_id"
	// FieldCatalogType holds the string denoting the catalog_type field in the database.
	FieldCatalogType = "catalog_type"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldUseCount holds the string denoting the use_count field in the database.
	FieldUseCount = "use_count"
	// FieldLastUsedAt holds the string denoting the last_used_at field in the database.
	FieldLastUsedAt = "last_used_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the mappingentry in the database.
	Table = "mapping_entries"
)

// Columns holds all SQL columns for mappingentry fields.
var Columns = []string{
	FieldID,
	FieldRawName,
	FieldCorrectedName,
	FieldCatalogID,
	FieldCatalogType,
	FieldConfidence,
	FieldSource,
	FieldUseCount,
	FieldLastUsedAt,
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
	// CorrectedNameValidator is a validator for the "corrected_name" field. It is called by the builders before save.
	CorrectedNameValidator func(string) error
	// CatalogTypeValidator is a validator for the "catalog_type" field. It is called by the builders before save.
	CatalogTypeValidator func(string) error
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(int) error
	// SourceValidator is a validator for the "source" field. It is called by the builders before save.
	SourceValidator func(string) error
	// DefaultUseCount holds the default value on creation for the "use_count" field.
	DefaultUseCount int
	// DefaultLastUsedAt holds the default value on creation for the "last_used_at" field.
	DefaultLastUsedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the MappingEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRawName orders the results by the raw_name field.
func ByRawName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawName, opts...).ToFunc()
}

// ByCorrectedName orders the results by the corrected_name field.
func ByCorrectedName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectedName, opts...).ToFunc()
}

// ByCatalogID orders the results by the catalog_id field.
func ByCatalogID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogID, opts...).ToFunc()
}

// ByCatalogType orders the results by the catalog_type field.
func ByCatalogType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCatalogType, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByUseCount orders the results by the use_count field.
func ByUseCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseCount, opts...).ToFunc()
}

// ByLastUsedAt orders the results by the last_used_at field.
func ByLastUsedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUsedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
