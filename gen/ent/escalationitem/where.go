// Code generated by ent, DO NOT EDIT.

package escalationitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldDocumentID, v))
}

// RawName applies equality check predicate on the "raw_name" field. It's identical to RawNameEQ.
func RawName(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldRawName, v))
}

// NormalizedName applies equality check predicate on the "normalized_name" field. It's identical to NormalizedNameEQ.
func NormalizedName(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldNormalizedName, v))
}

// CatalogType applies equality check predicate on the "catalog_type" field. It's identical to CatalogTypeEQ.
func CatalogType(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldCatalogType, v))
}

// ResolvedID applies equality check predicate on the "resolved_id" field. It's identical to ResolvedIDEQ.
func ResolvedID(v uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldResolvedID, v))
}

// ResolvedName applies equality check predicate on the "resolved_name" field. It's identical to ResolvedNameEQ.
func ResolvedName(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldResolvedName, v))
}

// Resolved applies equality check predicate on the "resolved" field. It's identical to ResolvedEQ.
func Resolved(v bool) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldResolved, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNotIn(FieldDocumentID, vs...))
}

// RawNameEQ applies the EQ predicate on the "raw_name" field.
func RawNameEQ(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldRawName, v))
}

// RawNameNEQ applies the NEQ predicate on the "raw_name" field.
func RawNameNEQ(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNEQ(FieldRawName, v))
}

// RawNameIn applies the In predicate on the "raw_name" field.
func RawNameIn(vs ...string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldIn(FieldRawName, vs...))
}

// RawNameNotIn applies the NotIn predicate on the "raw_name" field.
func RawNameNotIn(vs ...string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNotIn(FieldRawName, vs...))
}

// RawNameGT applies the GT predicate on the "raw_name" field.
func RawNameGT(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGT(FieldRawName, v))
}

// RawNameGTE applies the GTE predicate on the "raw_name" field.
func RawNameGTE(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGTE(FieldRawName, v))
}

// RawNameLT applies the LT predicate on the "raw_name" field.
func RawNameLT(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLT(FieldRawName, v))
}

// RawNameLTE applies the LTE predicate on the "raw_name" field.
func RawNameLTE(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLTE(FieldRawName, v))
}

// RawNameContains applies the Contains predicate on the "raw_name" field.
func RawNameContains(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldContains(FieldRawName, v))
}

// RawNameHasPrefix applies the HasPrefix predicate on the "raw_name" field.
func RawNameHasPrefix(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldHasPrefix(FieldRawName, v))
}

// RawNameHasSuffix applies the HasSuffix predicate on the "raw_name" field.
func RawNameHasSuffix(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldHasSuffix(FieldRawName, v))
}

// RawNameEqualFold applies the EqualFold predicate on the "raw_name" field.
func RawNameEqualFold(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEqualFold(FieldRawName, v))
}

// RawNameContainsFold applies the ContainsFold predicate on the "raw_name" field.
func RawNameContainsFold(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldContainsFold(FieldRawName, v))
}

// NormalizedNameEQ applies the EQ predicate on the "normalized_name" field.
func NormalizedNameEQ(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldNormalizedName, v))
}

// NormalizedNameNEQ applies the NEQ predicate on the "normalized_name" field.
func NormalizedNameNEQ(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNEQ(FieldNormalizedName, v))
}

// NormalizedNameIn applies the In predicate on the "normalized_name" field.
func NormalizedNameIn(vs ...string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldIn(FieldNormalizedName, vs...))
}

// NormalizedNameNotIn applies the NotIn predicate on the "normalized_name" field.
func NormalizedNameNotIn(vs ...string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNotIn(FieldNormalizedName, vs...))
}

// NormalizedNameGT applies the GT predicate on the "normalized_name" field.
func NormalizedNameGT(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGT(FieldNormalizedName, v))
}

// NormalizedNameGTE applies the GTE predicate on the "normalized_name" field.
func NormalizedNameGTE(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGTE(FieldNormalizedName, v))
}

// NormalizedNameLT applies the LT predicate on the "normalized_name" field.
func NormalizedNameLT(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLT(FieldNormalizedName, v))
}

// NormalizedNameLTE applies the LTE predicate on the "normalized_name" field.
func NormalizedNameLTE(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLTE(FieldNormalizedName, v))
}

// NormalizedNameContains applies the Contains predicate on the "normalized_name" field.
func NormalizedNameContains(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldContains(FieldNormalizedName, v))
}

// NormalizedNameHasPrefix applies the HasPrefix predicate on the "normalized_name" field.
func NormalizedNameHasPrefix(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldHasPrefix(FieldNormalizedName, v))
}

// NormalizedNameHasSuffix applies the HasSuffix predicate on the "normalized_name" field.
func NormalizedNameHasSuffix(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldHasSuffix(FieldNormalizedName, v))
}

// NormalizedNameEqualFold applies the EqualFold predicate on the "normalized_name" field.
func NormalizedNameEqualFold(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEqualFold(FieldNormalizedName, v))
}

// NormalizedNameContainsFold applies the ContainsFold predicate on the "normalized_name" field.
func NormalizedNameContainsFold(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldContainsFold(FieldNormalizedName, v))
}

// CatalogTypeEQ applies the EQ predicate on the "catalog_type" field.
func CatalogTypeEQ(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldCatalogType, v))
}

// CatalogTypeNEQ applies the NEQ predicate on the "catalog_type" field.
func CatalogTypeNEQ(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNEQ(FieldCatalogType, v))
}

// CatalogTypeIn applies the In predicate on the "catalog_type" field.
func CatalogTypeIn(vs ...string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldIn(FieldCatalogType, vs...))
}

// CatalogTypeNotIn applies the NotIn predicate on the "catalog_type" field.
func CatalogTypeNotIn(vs ...string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNotIn(FieldCatalogType, vs...))
}

// CatalogTypeGT applies the GT predicate on the "catalog_type" field.
func CatalogTypeGT(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGT(FieldCatalogType, v))
}

// CatalogTypeGTE applies the GTE predicate on the "catalog_type" field.
func CatalogTypeGTE(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGTE(FieldCatalogType, v))
}

// CatalogTypeLT applies the LT predicate on the "catalog_type" field.
func CatalogTypeLT(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLT(FieldCatalogType, v))
}

// CatalogTypeLTE applies the LTE predicate on the "catalog_type" field.
func CatalogTypeLTE(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLTE(FieldCatalogType, v))
}

// CatalogTypeContains applies the Contains predicate on the "catalog_type" field.
func CatalogTypeContains(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldContains(FieldCatalogType, v))
}

// CatalogTypeHasPrefix applies the HasPrefix predicate on the "catalog_type" field.
func CatalogTypeHasPrefix(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldHasPrefix(FieldCatalogType, v))
}

// CatalogTypeHasSuffix applies the HasSuffix predicate on the "catalog_type" field.
func CatalogTypeHasSuffix(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldHasSuffix(FieldCatalogType, v))
}

// CatalogTypeEqualFold applies the EqualFold predicate on the "catalog_type" field.
func CatalogTypeEqualFold(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEqualFold(FieldCatalogType, v))
}

// CatalogTypeContainsFold applies the ContainsFold predicate on the "catalog_type" field.
func CatalogTypeContainsFold(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldContainsFold(FieldCatalogType, v))
}

// ResolvedIDEQ applies the EQ predicate on the "resolved_id" field.
func ResolvedIDEQ(v uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldResolvedID, v))
}

// ResolvedIDNEQ applies the NEQ predicate on the "resolved_id" field.
func ResolvedIDNEQ(v uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNEQ(FieldResolvedID, v))
}

// ResolvedIDIn applies the In predicate on the "resolved_id" field.
func ResolvedIDIn(vs ...uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldIn(FieldResolvedID, vs...))
}

// ResolvedIDNotIn applies the NotIn predicate on the "resolved_id" field.
func ResolvedIDNotIn(vs ...uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNotIn(FieldResolvedID, vs...))
}

// ResolvedIDGT applies the GT predicate on the "resolved_id" field.
func ResolvedIDGT(v uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGT(FieldResolvedID, v))
}

// ResolvedIDGTE applies the GTE predicate on the "resolved_id" field.
func ResolvedIDGTE(v uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGTE(FieldResolvedID, v))
}

// ResolvedIDLT applies the LT predicate on the "resolved_id" field.
func ResolvedIDLT(v uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLT(FieldResolvedID, v))
}

// ResolvedIDLTE applies the LTE predicate on the "resolved_id" field.
func ResolvedIDLTE(v uuid.UUID) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLTE(FieldResolvedID, v))
}

// ResolvedIDIsNil applies the IsNil predicate on the "resolved_id" field.
func ResolvedIDIsNil() predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldIsNull(FieldResolvedID))
}

// ResolvedIDNotNil applies the NotNil predicate on the "resolved_id" field.
func ResolvedIDNotNil() predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNotNull(FieldResolvedID))
}

// ResolvedNameEQ applies the EQ predicate on the "resolved_name" field.
func ResolvedNameEQ(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldResolvedName, v))
}

// ResolvedNameNEQ applies the NEQ predicate on the "resolved_name" field.
func ResolvedNameNEQ(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNEQ(FieldResolvedName, v))
}

// ResolvedNameIn applies the In predicate on the "resolved_name" field.
func ResolvedNameIn(vs ...string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldIn(FieldResolvedName, vs...))
}

// ResolvedNameNotIn applies the NotIn predicate on the "resolved_name" field.
func ResolvedNameNotIn(vs ...string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNotIn(FieldResolvedName, vs...))
}

// ResolvedNameGT applies the GT predicate on the "resolved_name" field.
func ResolvedNameGT(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGT(FieldResolvedName, v))
}

// ResolvedNameGTE applies the GTE predicate on the "resolved_name" field.
func ResolvedNameGTE(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGTE(FieldResolvedName, v))
}

// ResolvedNameLT applies the LT predicate on the "resolved_name" field.
func ResolvedNameLT(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLT(FieldResolvedName, v))
}

// ResolvedNameLTE applies the LTE predicate on the "resolved_name" field.
func ResolvedNameLTE(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLTE(FieldResolvedName, v))
}

// ResolvedNameContains applies the Contains predicate on the "resolved_name" field.
func ResolvedNameContains(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldContains(FieldResolvedName, v))
}

// ResolvedNameHasPrefix applies the HasPrefix predicate on the "resolved_name" field.
func ResolvedNameHasPrefix(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldHasPrefix(FieldResolvedName, v))
}

// ResolvedNameHasSuffix applies the HasSuffix predicate on the "resolved_name" field.
func ResolvedNameHasSuffix(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldHasSuffix(FieldResolvedName, v))
}

// ResolvedNameIsNil applies the IsNil predicate on the "resolved_name" field.
func ResolvedNameIsNil() predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldIsNull(FieldResolvedName))
}

// ResolvedNameNotNil applies the NotNil predicate on the "resolved_name" field.
func ResolvedNameNotNil() predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNotNull(FieldResolvedName))
}

// ResolvedNameEqualFold applies the EqualFold predicate on the "resolved_name" field.
func ResolvedNameEqualFold(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEqualFold(FieldResolvedName, v))
}

// ResolvedNameContainsFold applies the ContainsFold predicate on the "resolved_name" field.
func ResolvedNameContainsFold(v string) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldContainsFold(FieldResolvedName, v))
}

// ResolvedEQ applies the EQ predicate on the "resolved" field.
func ResolvedEQ(v bool) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldResolved, v))
}

// ResolvedNEQ applies the NEQ predicate on the "resolved" field.
func ResolvedNEQ(v bool) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNEQ(FieldResolved, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EscalationItem {
	return predicate.EscalationItem(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.EscalationItem {
	return predicate.EscalationItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.EscalationItem {
	return predicate.EscalationItem(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EscalationItem) predicate.EscalationItem {
	return predicate.EscalationItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EscalationItem) predicate.EscalationItem {
	return predicate.EscalationItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EscalationItem) predicate.EscalationItem {
	return predicate.EscalationItem(sql.NotPredicates(p))
}
