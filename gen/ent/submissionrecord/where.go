// Code generated by ent, DO NOT EDIT.

package submissionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldDocumentID, v))
}

// DocNumber applies equality check predicate on the "doc_number" field. It's identical to DocNumberEQ.
func DocNumber(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldDocNumber, v))
}

// DestinationType applies equality check predicate on the "destination_type" field. It's identical to DestinationTypeEQ.
func DestinationType(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldDestinationType, v))
}

// StoreID applies equality check predicate on the "store_id" field. It's identical to StoreIDEQ.
func StoreID(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldStoreID, v))
}

// StoreName applies equality check predicate on the "store_name" field. It's identical to StoreNameEQ.
func StoreName(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldStoreName, v))
}

// SupplierID applies equality check predicate on the "supplier_id" field. It's identical to SupplierIDEQ.
func SupplierID(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldSupplierID, v))
}

// SupplierName applies equality check predicate on the "supplier_name" field. It's identical to SupplierNameEQ.
func SupplierName(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldSupplierName, v))
}

// DocDate applies equality check predicate on the "doc_date" field. It's identical to DocDateEQ.
func DocDate(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldDocDate, v))
}

// TotalAmount applies equality check predicate on the "total_amount" field. It's identical to TotalAmountEQ.
func TotalAmount(v float64) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldTotalAmount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldStatus, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocNumberEQ applies the EQ predicate on the "doc_number" field.
func DocNumberEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldDocNumber, v))
}

// DocNumberNEQ applies the NEQ predicate on the "doc_number" field.
func DocNumberNEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldDocNumber, v))
}

// DocNumberIn applies the In predicate on the "doc_number" field.
func DocNumberIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldDocNumber, vs...))
}

// DocNumberNotIn applies the NotIn predicate on the "doc_number" field.
func DocNumberNotIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldDocNumber, vs...))
}

// DocNumberGT applies the GT predicate on the "doc_number" field.
func DocNumberGT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldDocNumber, v))
}

// DocNumberGTE applies the GTE predicate on the "doc_number" field.
func DocNumberGTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldDocNumber, v))
}

// DocNumberLT applies the LT predicate on the "doc_number" field.
func DocNumberLT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldDocNumber, v))
}

// DocNumberLTE applies the LTE predicate on the "doc_number" field.
func DocNumberLTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldDocNumber, v))
}

// DocNumberContains applies the Contains predicate on the "doc_number" field.
func DocNumberContains(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContains(FieldDocNumber, v))
}

// DocNumberHasPrefix applies the HasPrefix predicate on the "doc_number" field.
func DocNumberHasPrefix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasPrefix(FieldDocNumber, v))
}

// DocNumberHasSuffix applies the HasSuffix predicate on the "doc_number" field.
func DocNumberHasSuffix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasSuffix(FieldDocNumber, v))
}

// DocNumberEqualFold applies the EqualFold predicate on the "doc_number" field.
func DocNumberEqualFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEqualFold(FieldDocNumber, v))
}

// DocNumberContainsFold applies the ContainsFold predicate on the "doc_number" field.
func DocNumberContainsFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContainsFold(FieldDocNumber, v))
}

// DestinationTypeEQ applies the EQ predicate on the "destination_type" field.
func DestinationTypeEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldDestinationType, v))
}

// DestinationTypeNEQ applies the NEQ predicate on the "destination_type" field.
func DestinationTypeNEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldDestinationType, v))
}

// DestinationTypeIn applies the In predicate on the "destination_type" field.
func DestinationTypeIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldDestinationType, vs...))
}

// DestinationTypeNotIn applies the NotIn predicate on the "destination_type" field.
func DestinationTypeNotIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldDestinationType, vs...))
}

// DestinationTypeGT applies the GT predicate on the "destination_type" field.
func DestinationTypeGT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldDestinationType, v))
}

// DestinationTypeGTE applies the GTE predicate on the "destination_type" field.
func DestinationTypeGTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldDestinationType, v))
}

// DestinationTypeLT applies the LT predicate on the "destination_type" field.
func DestinationTypeLT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldDestinationType, v))
}

// DestinationTypeLTE applies the LTE predicate on the "destination_type" field.
func DestinationTypeLTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldDestinationType, v))
}

// DestinationTypeContains applies the Contains predicate on the "destination_type" field.
func DestinationTypeContains(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContains(FieldDestinationType, v))
}

// DestinationTypeHasPrefix applies the HasPrefix predicate on the "destination_type" field.
func DestinationTypeHasPrefix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasPrefix(FieldDestinationType, v))
}

// DestinationTypeHasSuffix applies the HasSuffix predicate on the "destination_type" field.
func DestinationTypeHasSuffix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasSuffix(FieldDestinationType, v))
}

// DestinationTypeEqualFold applies the EqualFold predicate on the "destination_type" field.
func DestinationTypeEqualFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEqualFold(FieldDestinationType, v))
}

// DestinationTypeContainsFold applies the ContainsFold predicate on the "destination_type" field.
func DestinationTypeContainsFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContainsFold(FieldDestinationType, v))
}

// StoreIDEQ applies the EQ predicate on the "store_id" field.
func StoreIDEQ(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldStoreID, v))
}

// StoreIDNEQ applies the NEQ predicate on the "store_id" field.
func StoreIDNEQ(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldStoreID, v))
}

// StoreIDIn applies the In predicate on the "store_id" field.
func StoreIDIn(vs ...uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldStoreID, vs...))
}

// StoreIDNotIn applies the NotIn predicate on the "store_id" field.
func StoreIDNotIn(vs ...uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldStoreID, vs...))
}

// StoreIDGT applies the GT predicate on the "store_id" field.
func StoreIDGT(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldStoreID, v))
}

// StoreIDGTE applies the GTE predicate on the "store_id" field.
func StoreIDGTE(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldStoreID, v))
}

// StoreIDLT applies the LT predicate on the "store_id" field.
func StoreIDLT(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldStoreID, v))
}

// StoreIDLTE applies the LTE predicate on the "store_id" field.
func StoreIDLTE(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldStoreID, v))
}

// StoreIDIsNil applies the IsNil predicate on the "store_id" field.
func StoreIDIsNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIsNull(FieldStoreID))
}

// StoreIDNotNil applies the NotNil predicate on the "store_id" field.
func StoreIDNotNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotNull(FieldStoreID))
}

// StoreNameEQ applies the EQ predicate on the "store_name" field.
func StoreNameEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldStoreName, v))
}

// StoreNameNEQ applies the NEQ predicate on the "store_name" field.
func StoreNameNEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldStoreName, v))
}

// StoreNameIn applies the In predicate on the "store_name" field.
func StoreNameIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldStoreName, vs...))
}

// StoreNameNotIn applies the NotIn predicate on the "store_name" field.
func StoreNameNotIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldStoreName, vs...))
}

// StoreNameGT applies the GT predicate on the "store_name" field.
func StoreNameGT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldStoreName, v))
}

// StoreNameGTE applies the GTE predicate on the "store_name" field.
func StoreNameGTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldStoreName, v))
}

// StoreNameLT applies the LT predicate on the "store_name" field.
func StoreNameLT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldStoreName, v))
}

// StoreNameLTE applies the LTE predicate on the "store_name" field.
func StoreNameLTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldStoreName, v))
}

// StoreNameContains applies the Contains predicate on the "store_name" field.
func StoreNameContains(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContains(FieldStoreName, v))
}

// StoreNameHasPrefix applies the HasPrefix predicate on the "store_name" field.
func StoreNameHasPrefix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasPrefix(FieldStoreName, v))
}

// StoreNameHasSuffix applies the HasSuffix predicate on the "store_name" field.
func StoreNameHasSuffix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasSuffix(FieldStoreName, v))
}

// StoreNameIsNil applies the IsNil predicate on the "store_name" field.
func StoreNameIsNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIsNull(FieldStoreName))
}

// StoreNameNotNil applies the NotNil predicate on the "store_name" field.
func StoreNameNotNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotNull(FieldStoreName))
}

// StoreNameEqualFold applies the EqualFold predicate on the "store_name" field.
func StoreNameEqualFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEqualFold(FieldStoreName, v))
}

// StoreNameContainsFold applies the ContainsFold predicate on the "store_name" field.
func StoreNameContainsFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContainsFold(FieldStoreName, v))
}

// SupplierIDEQ applies the EQ predicate on the "supplier_id" field.
func SupplierIDEQ(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldSupplierID, v))
}

// SupplierIDNEQ applies the NEQ predicate on the "supplier_id" field.
func SupplierIDNEQ(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldSupplierID, v))
}

// SupplierIDIn applies the In predicate on the "supplier_id" field.
func SupplierIDIn(vs ...uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldSupplierID, vs...))
}

// SupplierIDNotIn applies the NotIn predicate on the "supplier_id" field.
func SupplierIDNotIn(vs ...uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldSupplierID, vs...))
}

// SupplierIDGT applies the GT predicate on the "supplier_id" field.
func SupplierIDGT(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldSupplierID, v))
}

// SupplierIDGTE applies the GTE predicate on the "supplier_id" field.
func SupplierIDGTE(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldSupplierID, v))
}

// SupplierIDLT applies the LT predicate on the "supplier_id" field.
func SupplierIDLT(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldSupplierID, v))
}

// SupplierIDLTE applies the LTE predicate on the "supplier_id" field.
func SupplierIDLTE(v uuid.UUID) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldSupplierID, v))
}

// SupplierIDIsNil applies the IsNil predicate on the "supplier_id" field.
func SupplierIDIsNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIsNull(FieldSupplierID))
}

// SupplierIDNotNil applies the NotNil predicate on the "supplier_id" field.
func SupplierIDNotNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotNull(FieldSupplierID))
}

// SupplierNameEQ applies the EQ predicate on the "supplier_name" field.
func SupplierNameEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldSupplierName, v))
}

// SupplierNameNEQ applies the NEQ predicate on the "supplier_name" field.
func SupplierNameNEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldSupplierName, v))
}

// SupplierNameIn applies the In predicate on the "supplier_name" field.
func SupplierNameIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldSupplierName, vs...))
}

// SupplierNameNotIn applies the NotIn predicate on the "supplier_name" field.
func SupplierNameNotIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldSupplierName, vs...))
}

// SupplierNameGT applies the GT predicate on the "supplier_name" field.
func SupplierNameGT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldSupplierName, v))
}

// SupplierNameGTE applies the GTE predicate on the "supplier_name" field.
func SupplierNameGTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldSupplierName, v))
}

// SupplierNameLT applies the LT predicate on the "supplier_name" field.
func SupplierNameLT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldSupplierName, v))
}

// SupplierNameLTE applies the LTE predicate on the "supplier_name" field.
func SupplierNameLTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldSupplierName, v))
}

// SupplierNameContains applies the Contains predicate on the "supplier_name" field.
func SupplierNameContains(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContains(FieldSupplierName, v))
}

// SupplierNameHasPrefix applies the HasPrefix predicate on the "supplier_name" field.
func SupplierNameHasPrefix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasPrefix(FieldSupplierName, v))
}

// SupplierNameHasSuffix applies the HasSuffix predicate on the "supplier_name" field.
func SupplierNameHasSuffix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasSuffix(FieldSupplierName, v))
}

// SupplierNameIsNil applies the IsNil predicate on the "supplier_name" field.
func SupplierNameIsNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIsNull(FieldSupplierName))
}

// SupplierNameNotNil applies the NotNil predicate on the "supplier_name" field.
func SupplierNameNotNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotNull(FieldSupplierName))
}

// SupplierNameEqualFold applies the EqualFold predicate on the "supplier_name" field.
func SupplierNameEqualFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEqualFold(FieldSupplierName, v))
}

// SupplierNameContainsFold applies the ContainsFold predicate on the "supplier_name" field.
func SupplierNameContainsFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContainsFold(FieldSupplierName, v))
}

// DocDateEQ applies the EQ predicate on the "doc_date" field.
func DocDateEQ(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldDocDate, v))
}

// DocDateNEQ applies the NEQ predicate on the "doc_date" field.
func DocDateNEQ(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldDocDate, v))
}

// DocDateIn applies the In predicate on the "doc_date" field.
func DocDateIn(vs ...time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldDocDate, vs...))
}

// DocDateNotIn applies the NotIn predicate on the "doc_date" field.
func DocDateNotIn(vs ...time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldDocDate, vs...))
}

// DocDateGT applies the GT predicate on the "doc_date" field.
func DocDateGT(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldDocDate, v))
}

// DocDateGTE applies the GTE predicate on the "doc_date" field.
func DocDateGTE(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldDocDate, v))
}

// DocDateLT applies the LT predicate on the "doc_date" field.
func DocDateLT(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldDocDate, v))
}

// DocDateLTE applies the LTE predicate on the "doc_date" field.
func DocDateLTE(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldDocDate, v))
}

// TotalAmountEQ applies the EQ predicate on the "total_amount" field.
func TotalAmountEQ(v float64) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldTotalAmount, v))
}

// TotalAmountNEQ applies the NEQ predicate on the "total_amount" field.
func TotalAmountNEQ(v float64) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldTotalAmount, v))
}

// TotalAmountIn applies the In predicate on the "total_amount" field.
func TotalAmountIn(vs ...float64) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldTotalAmount, vs...))
}

// TotalAmountNotIn applies the NotIn predicate on the "total_amount" field.
func TotalAmountNotIn(vs ...float64) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldTotalAmount, vs...))
}

// TotalAmountGT applies the GT predicate on the "total_amount" field.
func TotalAmountGT(v float64) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldTotalAmount, v))
}

// TotalAmountGTE applies the GTE predicate on the "total_amount" field.
func TotalAmountGTE(v float64) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldTotalAmount, v))
}

// TotalAmountLT applies the LT predicate on the "total_amount" field.
func TotalAmountLT(v float64) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldTotalAmount, v))
}

// TotalAmountLTE applies the LTE predicate on the "total_amount" field.
func TotalAmountLTE(v float64) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldTotalAmount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContainsFold(FieldStatus, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldContainsFold(FieldErrorMessage, v))
}

// WarningsIsNil applies the IsNil predicate on the "warnings" field.
func WarningsIsNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIsNull(FieldWarnings))
}

// WarningsNotNil applies the NotNil predicate on the "warnings" field.
func WarningsNotNil() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotNull(FieldWarnings))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.SubmissionRecord {
	return predicate.SubmissionRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SubmissionRecord) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SubmissionRecord) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SubmissionRecord) predicate.SubmissionRecord {
	return predicate.SubmissionRecord(sql.NotPredicates(p))
}
