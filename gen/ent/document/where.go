// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// DocType applies equality check predicate on the "doc_type" field. It's identical to DocTypeEQ.
func DocType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocType, v))
}

// DocNumber applies equality check predicate on the "doc_number" field. It's identical to DocNumberEQ.
func DocNumber(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocNumber, v))
}

// DocDate applies equality check predicate on the "doc_date" field. It's identical to DocDateEQ.
func DocDate(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocDate, v))
}

// SupplierName applies equality check predicate on the "supplier_name" field. It's identical to SupplierNameEQ.
func SupplierName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSupplierName, v))
}

// SupplierInn applies equality check predicate on the "supplier_inn" field. It's identical to SupplierInnEQ.
func SupplierInn(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSupplierInn, v))
}

// BuyerName applies equality check predicate on the "buyer_name" field. It's identical to BuyerNameEQ.
func BuyerName(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBuyerName, v))
}

// BuyerInn applies equality check predicate on the "buyer_inn" field. It's identical to BuyerInnEQ.
func BuyerInn(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBuyerInn, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTotalAmount, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldConfidence, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPageCount, v))
}

// IsMerged applies equality check predicate on the "is_merged" field. It's identical to IsMergedEQ.
func IsMerged(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldIsMerged, v))
}

// NeedsReview applies equality check predicate on the "needs_review" field. It's identical to NeedsReviewEQ.
func NeedsReview(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNeedsReview, v))
}

// GroupKey applies equality check predicate on the "group_key" field. It's identical to GroupKeyEQ.
func GroupKey(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldGroupKey, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocType, vs...))
}

// DocTypeGT applies the GT predicate on the "doc_type" field.
func DocTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocType, v))
}

// DocTypeGTE applies the GTE predicate on the "doc_type" field.
func DocTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocType, v))
}

// DocTypeLT applies the LT predicate on the "doc_type" field.
func DocTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocType, v))
}

// DocTypeLTE applies the LTE predicate on the "doc_type" field.
func DocTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocType, v))
}

// DocTypeContains applies the Contains predicate on the "doc_type" field.
func DocTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocType, v))
}

// DocTypeHasPrefix applies the HasPrefix predicate on the "doc_type" field.
func DocTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocType, v))
}

// DocTypeHasSuffix applies the HasSuffix predicate on the "doc_type" field.
func DocTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocType, v))
}

// DocTypeEqualFold applies the EqualFold predicate on the "doc_type" field.
func DocTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocType, v))
}

// DocTypeContainsFold applies the ContainsFold predicate on the "doc_type" field.
func DocTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocType, v))
}

// DocNumberEQ applies the EQ predicate on the "doc_number" field.
func DocNumberEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocNumber, v))
}

// DocNumberNEQ applies the NEQ predicate on the "doc_number" field.
func DocNumberNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocNumber, v))
}

// DocNumberIn applies the In predicate on the "doc_number" field.
func DocNumberIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocNumber, vs...))
}

// DocNumberNotIn applies the NotIn predicate on the "doc_number" field.
func DocNumberNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocNumber, vs...))
}

// DocNumberGT applies the GT predicate on the "doc_number" field.
func DocNumberGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocNumber, v))
}

// DocNumberGTE applies the GTE predicate on the "doc_number" field.
func DocNumberGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocNumber, v))
}

// DocNumberLT applies the LT predicate on the "doc_number" field.
func DocNumberLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocNumber, v))
}

// DocNumberLTE applies the LTE predicate on the "doc_number" field.
func DocNumberLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocNumber, v))
}

// DocNumberContains applies the Contains predicate on the "doc_number" field.
func DocNumberContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocNumber, v))
}

// DocNumberHasPrefix applies the HasPrefix predicate on the "doc_number" field.
func DocNumberHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocNumber, v))
}

// DocNumberHasSuffix applies the HasSuffix predicate on the "doc_number" field.
func DocNumberHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocNumber, v))
}

// DocNumberIsNil applies the IsNil predicate on the "doc_number" field.
func DocNumberIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDocNumber))
}

// DocNumberNotNil applies the NotNil predicate on the "doc_number" field.
func DocNumberNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDocNumber))
}

// DocNumberEqualFold applies the EqualFold predicate on the "doc_number" field.
func DocNumberEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocNumber, v))
}

// DocNumberContainsFold applies the ContainsFold predicate on the "doc_number" field.
func DocNumberContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocNumber, v))
}

// DocDateEQ applies the EQ predicate on the "doc_date" field.
func DocDateEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocDate, v))
}

// DocDateNEQ applies the NEQ predicate on the "doc_date" field.
func DocDateNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocDate, v))
}

// DocDateIn applies the In predicate on the "doc_date" field.
func DocDateIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocDate, vs...))
}

// DocDateNotIn applies the NotIn predicate on the "doc_date" field.
func DocDateNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocDate, vs...))
}

// DocDateGT applies the GT predicate on the "doc_date" field.
func DocDateGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocDate, v))
}

// DocDateGTE applies the GTE predicate on the "doc_date" field.
func DocDateGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocDate, v))
}

// DocDateLT applies the LT predicate on the "doc_date" field.
func DocDateLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocDate, v))
}

// DocDateLTE applies the LTE predicate on the "doc_date" field.
func DocDateLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocDate, v))
}

// DocDateContains applies the Contains predicate on the "doc_date" field.
func DocDateContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocDate, v))
}

// DocDateHasPrefix applies the HasPrefix predicate on the "doc_date" field.
func DocDateHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocDate, v))
}

// DocDateHasSuffix applies the HasSuffix predicate on the "doc_date" field.
func DocDateHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocDate, v))
}

// DocDateIsNil applies the IsNil predicate on the "doc_date" field.
func DocDateIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDocDate))
}

// DocDateNotNil applies the NotNil predicate on the "doc_date" field.
func DocDateNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDocDate))
}

// DocDateEqualFold applies the EqualFold predicate on the "doc_date" field.
func DocDateEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocDate, v))
}

// DocDateContainsFold applies the ContainsFold predicate on the "doc_date" field.
func DocDateContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocDate, v))
}

// SupplierNameEQ applies the EQ predicate on the "supplier_name" field.
func SupplierNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSupplierName, v))
}

// SupplierNameNEQ applies the NEQ predicate on the "supplier_name" field.
func SupplierNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSupplierName, v))
}

// SupplierNameIn applies the In predicate on the "supplier_name" field.
func SupplierNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSupplierName, vs...))
}

// SupplierNameNotIn applies the NotIn predicate on the "supplier_name" field.
func SupplierNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSupplierName, vs...))
}

// SupplierNameGT applies the GT predicate on the "supplier_name" field.
func SupplierNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSupplierName, v))
}

// SupplierNameGTE applies the GTE predicate on the "supplier_name" field.
func SupplierNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSupplierName, v))
}

// SupplierNameLT applies the LT predicate on the "supplier_name" field.
func SupplierNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSupplierName, v))
}

// SupplierNameLTE applies the LTE predicate on the "supplier_name" field.
func SupplierNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSupplierName, v))
}

// SupplierNameContains applies the Contains predicate on the "supplier_name" field.
func SupplierNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSupplierName, v))
}

// SupplierNameHasPrefix applies the HasPrefix predicate on the "supplier_name" field.
func SupplierNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSupplierName, v))
}

// SupplierNameHasSuffix applies the HasSuffix predicate on the "supplier_name" field.
func SupplierNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSupplierName, v))
}

// SupplierNameIsNil applies the IsNil predicate on the "supplier_name" field.
func SupplierNameIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSupplierName))
}

// SupplierNameNotNil applies the NotNil predicate on the "supplier_name" field.
func SupplierNameNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSupplierName))
}

// SupplierNameEqualFold applies the EqualFold predicate on the "supplier_name" field.
func SupplierNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSupplierName, v))
}

// SupplierNameContainsFold applies the ContainsFold predicate on the "supplier_name" field.
func SupplierNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSupplierName, v))
}

// SupplierInnEQ applies the EQ predicate on the "supplier_inn" field.
func SupplierInnEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSupplierInn, v))
}

// SupplierInnNEQ applies the NEQ predicate on the "supplier_inn" field.
func SupplierInnNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSupplierInn, v))
}

// SupplierInnIn applies the In predicate on the "supplier_inn" field.
func SupplierInnIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSupplierInn, vs...))
}

// SupplierInnNotIn applies the NotIn predicate on the "supplier_inn" field.
func SupplierInnNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSupplierInn, vs...))
}

// SupplierInnGT applies the GT predicate on the "supplier_inn" field.
func SupplierInnGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSupplierInn, v))
}

// SupplierInnGTE applies the GTE predicate on the "supplier_inn" field.
func SupplierInnGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSupplierInn, v))
}

// SupplierInnLT applies the LT predicate on the "supplier_inn" field.
func SupplierInnLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSupplierInn, v))
}

// SupplierInnLTE applies the LTE predicate on the "supplier_inn" field.
func SupplierInnLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSupplierInn, v))
}

// SupplierInnContains applies the Contains predicate on the "supplier_inn" field.
func SupplierInnContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSupplierInn, v))
}

// SupplierInnHasPrefix applies the HasPrefix predicate on the "supplier_inn" field.
func SupplierInnHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSupplierInn, v))
}

// SupplierInnHasSuffix applies the HasSuffix predicate on the "supplier_inn" field.
func SupplierInnHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSupplierInn, v))
}

// SupplierInnIsNil applies the IsNil predicate on the "supplier_inn" field.
func SupplierInnIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSupplierInn))
}

// SupplierInnNotNil applies the NotNil predicate on the "supplier_inn" field.
func SupplierInnNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSupplierInn))
}

// SupplierInnEqualFold applies the EqualFold predicate on the "supplier_inn" field.
func SupplierInnEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSupplierInn, v))
}

// SupplierInnContainsFold applies the ContainsFold predicate on the "supplier_inn" field.
func SupplierInnContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSupplierInn, v))
}

// BuyerNameEQ applies the EQ predicate on the "buyer_name" field.
func BuyerNameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBuyerName, v))
}

// BuyerNameNEQ applies the NEQ predicate on the "buyer_name" field.
func BuyerNameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldBuyerName, v))
}

// BuyerNameIn applies the In predicate on the "buyer_name" field.
func BuyerNameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldBuyerName, vs...))
}

// BuyerNameNotIn applies the NotIn predicate on the "buyer_name" field.
func BuyerNameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldBuyerName, vs...))
}

// BuyerNameGT applies the GT predicate on the "buyer_name" field.
func BuyerNameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldBuyerName, v))
}

// BuyerNameGTE applies the GTE predicate on the "buyer_name" field.
func BuyerNameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldBuyerName, v))
}

// BuyerNameLT applies the LT predicate on the "buyer_name" field.
func BuyerNameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldBuyerName, v))
}

// BuyerNameLTE applies the LTE predicate on the "buyer_name" field.
func BuyerNameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldBuyerName, v))
}

// BuyerNameContains applies the Contains predicate on the "buyer_name" field.
func BuyerNameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldBuyerName, v))
}

// BuyerNameHasPrefix applies the HasPrefix predicate on the "buyer_name" field.
func BuyerNameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldBuyerName, v))
}

// BuyerNameHasSuffix applies the HasSuffix predicate on the "buyer_name" field.
func BuyerNameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldBuyerName, v))
}

// BuyerNameIsNil applies the IsNil predicate on the "buyer_name" field.
func BuyerNameIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldBuyerName))
}

// BuyerNameNotNil applies the NotNil predicate on the "buyer_name" field.
func BuyerNameNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldBuyerName))
}

// BuyerNameEqualFold applies the EqualFold predicate on the "buyer_name" field.
func BuyerNameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldBuyerName, v))
}

// BuyerNameContainsFold applies the ContainsFold predicate on the "buyer_name" field.
func BuyerNameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldBuyerName, v))
}

// BuyerInnEQ applies the EQ predicate on the "buyer_inn" field.
func BuyerInnEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBuyerInn, v))
}

// BuyerInnNEQ applies the NEQ predicate on the "buyer_inn" field.
func BuyerInnNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldBuyerInn, v))
}

// BuyerInnIn applies the In predicate on the "buyer_inn" field.
func BuyerInnIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldBuyerInn, vs...))
}

// BuyerInnNotIn applies the NotIn predicate on the "buyer_inn" field.
func BuyerInnNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldBuyerInn, vs...))
}

// BuyerInnGT applies the GT predicate on the "buyer_inn" field.
func BuyerInnGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldBuyerInn, v))
}

// BuyerInnGTE applies the GTE predicate on the "buyer_inn" field.
func BuyerInnGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldBuyerInn, v))
}

// BuyerInnLT applies the LT predicate on the "buyer_inn" field.
func BuyerInnLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldBuyerInn, v))
}

// BuyerInnLTE applies the LTE predicate on the "buyer_inn" field.
func BuyerInnLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldBuyerInn, v))
}

// BuyerInnContains applies the Contains predicate on the "buyer_inn" field.
func BuyerInnContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldBuyerInn, v))
}

// BuyerInnHasPrefix applies the HasPrefix predicate on the "buyer_inn" field.
func BuyerInnHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldBuyerInn, v))
}

// BuyerInnHasSuffix applies the HasSuffix predicate on the "buyer_inn" field.
func BuyerInnHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldBuyerInn, v))
}

// BuyerInnIsNil applies the IsNil predicate on the "buyer_inn" field.
func BuyerInnIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldBuyerInn))
}

// BuyerInnNotNil applies the NotNil predicate on the "buyer_inn" field.
func BuyerInnNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldBuyerInn))
}

// BuyerInnEqualFold applies the EqualFold predicate on the "buyer_inn" field.
func BuyerInnEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldBuyerInn, v))
}

// BuyerInnContainsFold applies the ContainsFold predicate on the "buyer_inn" field.
func BuyerInnContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldBuyerInn, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTotalAmount, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldConfidence, v))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPageCount, v))
}

// IsMergedEQ applies the EQ predicate on the "is_merged" field.
func IsMergedEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldIsMerged, v))
}

// IsMergedNEQ applies the NEQ predicate on the "is_merged" field.
func IsMergedNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldIsMerged, v))
}

// NeedsReviewEQ applies the EQ predicate on the "needs_review" field.
func NeedsReviewEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNeedsReview, v))
}

// NeedsReviewNEQ applies the NEQ predicate on the "needs_review" field.
func NeedsReviewNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldNeedsReview, v))
}

// GroupKeyEQ applies the EQ predicate on the "group_key" field.
func GroupKeyEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldGroupKey, v))
}

// GroupKeyNEQ applies the NEQ predicate on the "group_key" field.
func GroupKeyNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldGroupKey, v))
}

// GroupKeyIn applies the In predicate on the "group_key" field.
func GroupKeyIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldGroupKey, vs...))
}

// GroupKeyNotIn applies the NotIn predicate on the "group_key" field.
func GroupKeyNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldGroupKey, vs...))
}

// GroupKeyGT applies the GT predicate on the "group_key" field.
func GroupKeyGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldGroupKey, v))
}

// GroupKeyGTE applies the GTE predicate on the "group_key" field.
func GroupKeyGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldGroupKey, v))
}

// GroupKeyLT applies the LT predicate on the "group_key" field.
func GroupKeyLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldGroupKey, v))
}

// GroupKeyLTE applies the LTE predicate on the "group_key" field.
func GroupKeyLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldGroupKey, v))
}

// GroupKeyContains applies the Contains predicate on the "group_key" field.
func GroupKeyContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldGroupKey, v))
}

// GroupKeyHasPrefix applies the HasPrefix predicate on the "group_key" field.
func GroupKeyHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldGroupKey, v))
}

// GroupKeyHasSuffix applies the HasSuffix predicate on the "group_key" field.
func GroupKeyHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldGroupKey, v))
}

// GroupKeyIsNil applies the IsNil predicate on the "group_key" field.
func GroupKeyIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldGroupKey))
}

// GroupKeyNotNil applies the NotNil predicate on the "group_key" field.
func GroupKeyNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldGroupKey))
}

// GroupKeyEqualFold applies the EqualFold predicate on the "group_key" field.
func GroupKeyEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldGroupKey, v))
}

// GroupKeyContainsFold applies the ContainsFold predicate on the "group_key" field.
func GroupKeyContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldGroupKey, v))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldWarnings))
}

// ErrorsIsNil applies the IsNil predicate on the "errors" field.
func ErrorsIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldErrors))
}

// ErrorsNotNil applies the NotNil predicate on the "errors" field.
func ErrorsNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldErrors))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.SubmissionRecord) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEscalations applies the HasEdge predicate on the "escalations" edge.
func HasEscalations() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EscalationsTable, EscalationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEscalationsWith applies the HasEdge predicate on the "escalations" edge with a given conditions (other predicates).
func HasEscalationsWith(preds ...predicate.EscalationItem) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newEscalationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
