// Code generated by ent, DO NOT EDIT.

package mappingentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLTE(FieldID, id))
}

// RawName applies equality check predicate on the "raw_name" field. It's identical to RawNameEQ.
func RawName(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldRawName, v))
}

// CorrectedName applies equality check predicate on the "corrected_name" field. It's identical to CorrectedNameEQ.
func CorrectedName(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldCorrectedName, v))
}

// CatalogID applies equality check predicate on the "catalog_id" field. It's identical to CatalogIDEQ.
func CatalogID(v uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldCatalogID, v))
}

// CatalogType applies equality check predicate on the "catalog_type" field. It's identical to CatalogTypeEQ.
func CatalogType(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldCatalogType, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldConfidence, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldSource, v))
}

// UseCount applies equality check predicate on the "use_count" field. It's identical to UseCountEQ.
func UseCount(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldUseCount, v))
}

// LastUsedAt applies equality check predicate on the "last_used_at" field. It's identical to LastUsedAtEQ.
func LastUsedAt(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldLastUsedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// RawNameEQ applies the EQ predicate on the "raw_name" field.
func RawNameEQ(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldRawName, v))
}

// RawNameNEQ applies the NEQ predicate on the "raw_name" field.
func RawNameNEQ(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNEQ(FieldRawName, v))
}

// RawNameIn applies the In predicate on the "raw_name" field.
func RawNameIn(vs ...string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldIn(FieldRawName, vs...))
}

// RawNameNotIn applies the NotIn predicate on the "raw_name" field.
func RawNameNotIn(vs ...string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNotIn(FieldRawName, vs...))
}

// RawNameGT applies the GT predicate on the "raw_name" field.
func RawNameGT(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGT(FieldRawName, v))
}

// RawNameGTE applies the GTE predicate on the "raw_name" field.
func RawNameGTE(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGTE(FieldRawName, v))
}

// RawNameLT applies the LT predicate on the "raw_name" field.
func RawNameLT(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLT(FieldRawName, v))
}

// RawNameLTE applies the LTE predicate on the "raw_name" field.
func RawNameLTE(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLTE(FieldRawName, v))
}

// RawNameContains applies the Contains predicate on the "raw_name" field.
func RawNameContains(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldContains(FieldRawName, v))
}

// RawNameHasPrefix applies the HasPrefix predicate on the "raw_name" field.
func RawNameHasPrefix(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldHasPrefix(FieldRawName, v))
}

// RawNameHasSuffix applies the HasSuffix predicate on the "raw_name" field.
func RawNameHasSuffix(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldHasSuffix(FieldRawName, v))
}

// RawNameEqualFold applies the EqualFold predicate on the "raw_name" field.
func RawNameEqualFold(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEqualFold(FieldRawName, v))
}

// RawNameContainsFold applies the ContainsFold predicate on the "raw_name" field.
func RawNameContainsFold(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldContainsFold(FieldRawName, v))
}

// CorrectedNameEQ applies the EQ predicate on the "corrected_name" field.
func CorrectedNameEQ(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldCorrectedName, v))
}

// CorrectedNameNEQ applies the NEQ predicate on the "corrected_name" field.
func CorrectedNameNEQ(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNEQ(FieldCorrectedName, v))
}

// CorrectedNameIn applies the In predicate on the "corrected_name" field.
func CorrectedNameIn(vs ...string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldIn(FieldCorrectedName, vs...))
}

// CorrectedNameNotIn applies the NotIn predicate on the "corrected_name" field.
func CorrectedNameNotIn(vs ...string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNotIn(FieldCorrectedName, vs...))
}

// CorrectedNameGT applies the GT predicate on the "corrected_name" field.
func CorrectedNameGT(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGT(FieldCorrectedName, v))
}

// CorrectedNameGTE applies the GTE predicate on the "corrected_name" field.
func CorrectedNameGTE(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGTE(FieldCorrectedName, v))
}

// CorrectedNameLT applies the LT predicate on the "corrected_name" field.
func CorrectedNameLT(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLT(FieldCorrectedName, v))
}

// CorrectedNameLTE applies the LTE predicate on the "corrected_name" field.
func CorrectedNameLTE(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLTE(FieldCorrectedName, v))
}

// CorrectedNameContains applies the Contains predicate on the "corrected_name" field.
func CorrectedNameContains(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldContains(FieldCorrectedName, v))
}

// CorrectedNameHasPrefix applies the HasPrefix predicate on the "corrected_name" field.
func CorrectedNameHasPrefix(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldHasPrefix(FieldCorrectedName, v))
}

// CorrectedNameHasSuffix applies the HasSuffix predicate on the "corrected_name" field.
func CorrectedNameHasSuffix(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldHasSuffix(FieldCorrectedName, v))
}

// CorrectedNameEqualFold applies the EqualFold predicate on the "corrected_name" field.
func CorrectedNameEqualFold(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEqualFold(FieldCorrectedName, v))
}

// CorrectedNameContainsFold applies the ContainsFold predicate on the "corrected_name" field.
func CorrectedNameContainsFold(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldContainsFold(FieldCorrectedName, v))
}

// CatalogIDEQ applies the EQ predicate on the "catalog_id" field.
func CatalogIDEQ(v uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldCatalogID, v))
}

// CatalogIDNEQ applies the NEQ predicate on the "catalog_id" field.
func CatalogIDNEQ(v uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNEQ(FieldCatalogID, v))
}

// CatalogIDIn applies the In predicate on the "catalog_id" field.
func CatalogIDIn(vs ...uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldIn(FieldCatalogID, vs...))
}

// CatalogIDNotIn applies the NotIn predicate on the "catalog_id" field.
func CatalogIDNotIn(vs ...uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNotIn(FieldCatalogID, vs...))
}

// CatalogIDGT applies the GT predicate on the "catalog_id" field.
func CatalogIDGT(v uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGT(FieldCatalogID, v))
}

// CatalogIDGTE applies the GTE predicate on the "catalog_id" field.
func CatalogIDGTE(v uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGTE(FieldCatalogID, v))
}

// CatalogIDLT applies the LT predicate on the "catalog_id" field.
func CatalogIDLT(v uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLT(FieldCatalogID, v))
}

// CatalogIDLTE applies the LTE predicate on the "catalog_id" field.
func CatalogIDLTE(v uuid.UUID) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLTE(FieldCatalogID, v))
}

// CatalogTypeEQ applies the EQ predicate on the "catalog_type" field.
func CatalogTypeEQ(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldCatalogType, v))
}

// CatalogTypeNEQ applies the NEQ predicate on the "catalog_type" field.
func CatalogTypeNEQ(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNEQ(FieldCatalogType, v))
}

// CatalogTypeIn applies the In predicate on the "catalog_type" field.
func CatalogTypeIn(vs ...string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldIn(FieldCatalogType, vs...))
}

// CatalogTypeNotIn applies the NotIn predicate on the "catalog_type" field.
func CatalogTypeNotIn(vs ...string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNotIn(FieldCatalogType, vs...))
}

// CatalogTypeGT applies the GT predicate on the "catalog_type" field.
func CatalogTypeGT(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGT(FieldCatalogType, v))
}

// CatalogTypeGTE applies the GTE predicate on the "catalog_type" field.
func CatalogTypeGTE(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGTE(FieldCatalogType, v))
}

// CatalogTypeLT applies the LT predicate on the "catalog_type" field.
func CatalogTypeLT(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLT(FieldCatalogType, v))
}

// CatalogTypeLTE applies the LTE predicate on the "catalog_type" field.
func CatalogTypeLTE(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLTE(FieldCatalogType, v))
}

// CatalogTypeContains applies the Contains predicate on the "catalog_type" field.
func CatalogTypeContains(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldContains(FieldCatalogType, v))
}

// CatalogTypeHasPrefix applies the HasPrefix predicate on the "catalog_type" field.
func CatalogTypeHasPrefix(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldHasPrefix(FieldCatalogType, v))
}

// CatalogTypeHasSuffix applies the HasSuffix predicate on the "catalog_type" field.
func CatalogTypeHasSuffix(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldHasSuffix(FieldCatalogType, v))
}

// CatalogTypeEqualFold applies the EqualFold predicate on the "catalog_type" field.
func CatalogTypeEqualFold(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEqualFold(FieldCatalogType, v))
}

// CatalogTypeContainsFold applies the ContainsFold predicate on the "catalog_type" field.
func CatalogTypeContainsFold(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldContainsFold(FieldCatalogType, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLTE(FieldConfidence, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldContainsFold(FieldSource, v))
}

// UseCountEQ applies the EQ predicate on the "use_count" field.
func UseCountEQ(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldUseCount, v))
}

// UseCountNEQ applies the NEQ predicate on the "use_count" field.
func UseCountNEQ(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNEQ(FieldUseCount, v))
}

// UseCountIn applies the In predicate on the "use_count" field.
func UseCountIn(vs ...int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldIn(FieldUseCount, vs...))
}

// UseCountNotIn applies the NotIn predicate on the "use_count" field.
func UseCountNotIn(vs ...int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNotIn(FieldUseCount, vs...))
}

// UseCountGT applies the GT predicate on the "use_count" field.
func UseCountGT(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGT(FieldUseCount, v))
}

// UseCountGTE applies the GTE predicate on the "use_count" field.
func UseCountGTE(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGTE(FieldUseCount, v))
}

// UseCountLT applies the LT predicate on the "use_count" field.
func UseCountLT(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLT(FieldUseCount, v))
}

// UseCountLTE applies the LTE predicate on the "use_count" field.
func UseCountLTE(v int) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLTE(FieldUseCount, v))
}

// LastUsedAtEQ applies the EQ predicate on the "last_used_at" field.
func LastUsedAtEQ(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldLastUsedAt, v))
}

// LastUsedAtNEQ applies the NEQ predicate on the "last_used_at" field.
func LastUsedAtNEQ(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNEQ(FieldLastUsedAt, v))
}

// LastUsedAtIn applies the In predicate on the "last_used_at" field.
func LastUsedAtIn(vs ...time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldIn(FieldLastUsedAt, vs...))
}

// LastUsedAtNotIn applies the NotIn predicate on the "last_used_at" field.
func LastUsedAtNotIn(vs ...time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNotIn(FieldLastUsedAt, vs...))
}

// LastUsedAtGT applies the GT predicate on the "last_used_at" field.
func LastUsedAtGT(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGT(FieldLastUsedAt, v))
}

// LastUsedAtGTE applies the GTE predicate on the "last_used_at" field.
func LastUsedAtGTE(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGTE(FieldLastUsedAt, v))
}

// LastUsedAtLT applies the LT predicate on the "last_used_at" field.
func LastUsedAtLT(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLT(FieldLastUsedAt, v))
}

// LastUsedAtLTE applies the LTE predicate on the "last_used_at" field.
func LastUsedAtLTE(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLTE(FieldLastUsedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MappingEntry {
	return predicate.MappingEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MappingEntry) predicate.MappingEntry {
	return predicate.MappingEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MappingEntry) predicate.MappingEntry {
	return predicate.MappingEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MappingEntry) predicate.MappingEntry {
	return predicate.MappingEntry(sql.NotPredicates(p))
}
