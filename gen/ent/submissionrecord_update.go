// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/document"
	"github.com/paradize/restodocs/gen/ent/predicate"
	"github.com/paradize/restodocs/gen/ent/submissionrecord"
	"github.com/paradize/restodocs/internal/entity"
)

// SubmissionRecordUpdate is the builder for updating SubmissionRecord entities.
type SubmissionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionRecordMutation
}

// Where appends a list predicates to the SubmissionRecordUpdate builder.
func (_u *SubmissionRecordUpdate) Where(ps ...predicate.SubmissionRecord) *SubmissionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *SubmissionRecordUpdate) SetDocumentID(v uuid.UUID) *SubmissionRecordUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableDocumentID(v *uuid.UUID) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDocNumber sets the "doc_number" field.
func (_u *SubmissionRecordUpdate) SetDocNumber(v string) *SubmissionRecordUpdate {
	_u.mutation.SetDocNumber(v)
	return _u
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableDocNumber(v *string) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetDocNumber(*v)
	}
	return _u
}

// SetDestinationType sets the "destination_type" field.
func (_u *SubmissionRecordUpdate) SetDestinationType(v string) *SubmissionRecordUpdate {
	_u.mutation.SetDestinationType(v)
	return _u
}

// SetNillableDestinationType sets the "destination_type" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableDestinationType(v *string) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetDestinationType(*v)
	}
	return _u
}

// SetStoreID sets the "store_id" field.
func (_u *SubmissionRecordUpdate) SetStoreID(v uuid.UUID) *SubmissionRecordUpdate {
	_u.mutation.SetStoreID(v)
	return _u
}

// SetNillableStoreID sets the "store_id" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableStoreID(v *uuid.UUID) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetStoreID(*v)
	}
	return _u
}

// ClearStoreID clears the value of the "store_id" field.
func (_u *SubmissionRecordUpdate) ClearStoreID() *SubmissionRecordUpdate {
	_u.mutation.ClearStoreID()
	return _u
}

// SetStoreName sets the "store_name" field.
func (_u *SubmissionRecordUpdate) SetStoreName(v string) *SubmissionRecordUpdate {
	_u.mutation.SetStoreName(v)
	return _u
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableStoreName(v *string) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetStoreName(*v)
	}
	return _u
}

// ClearStoreName clears the value of the "store_name" field.
func (_u *SubmissionRecordUpdate) ClearStoreName() *SubmissionRecordUpdate {
	_u.mutation.ClearStoreName()
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *SubmissionRecordUpdate) SetSupplierID(v uuid.UUID) *SubmissionRecordUpdate {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableSupplierID(v *uuid.UUID) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (_u *SubmissionRecordUpdate) ClearSupplierID() *SubmissionRecordUpdate {
	_u.mutation.ClearSupplierID()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *SubmissionRecordUpdate) SetSupplierName(v string) *SubmissionRecordUpdate {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableSupplierName(v *string) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *SubmissionRecordUpdate) ClearSupplierName() *SubmissionRecordUpdate {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetDocDate sets the "doc_date" field.
func (_u *SubmissionRecordUpdate) SetDocDate(v time.Time) *SubmissionRecordUpdate {
	_u.mutation.SetDocDate(v)
	return _u
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableDocDate(v *time.Time) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetDocDate(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *SubmissionRecordUpdate) SetItems(v []entity.LineItem) *SubmissionRecordUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *SubmissionRecordUpdate) AppendItems(v []entity.LineItem) *SubmissionRecordUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *SubmissionRecordUpdate) SetTotalAmount(v float64) *SubmissionRecordUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableTotalAmount(v *float64) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *SubmissionRecordUpdate) AddTotalAmount(v float64) *SubmissionRecordUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionRecordUpdate) SetStatus(v string) *SubmissionRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableStatus(v *string) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubmissionRecordUpdate) SetErrorMessage(v string) *SubmissionRecordUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableErrorMessage(v *string) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubmissionRecordUpdate) ClearErrorMessage() *SubmissionRecordUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *SubmissionRecordUpdate) SetWarnings(v []string) *SubmissionRecordUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *SubmissionRecordUpdate) AppendWarnings(v []string) *SubmissionRecordUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *SubmissionRecordUpdate) ClearWarnings() *SubmissionRecordUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SubmissionRecordUpdate) SetCreatedAt(v time.Time) *SubmissionRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SubmissionRecordUpdate) SetNillableCreatedAt(v *time.Time) *SubmissionRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionRecordUpdate) SetUpdatedAt(v time.Time) *SubmissionRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *SubmissionRecordUpdate) SetDocument(v *Document) *SubmissionRecordUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the SubmissionRecordMutation object of the builder.
func (_u *SubmissionRecordUpdate) Mutation() *SubmissionRecordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *SubmissionRecordUpdate) ClearDocument() *SubmissionRecordUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submissionrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionRecordUpdate) check() error {
	if v, ok := _u.mutation.DocNumber(); ok {
		if err := submissionrecord.DocNumberValidator(v); err != nil {
			return &ValidationError{Name: "doc_number", err: fmt.Errorf(`ent: validator failed for field "SubmissionRecord.doc_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DestinationType(); ok {
		if err := submissionrecord.DestinationTypeValidator(v); err != nil {
			return &ValidationError{Name: "destination_type", err: fmt.Errorf(`ent: validator failed for field "SubmissionRecord.destination_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submissionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubmissionRecord.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmissionRecord.document"`)
	}
	return nil
}

func (_u *SubmissionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionrecord.Table, submissionrecord.Columns, sqlgraph.NewFieldSpec(submissionrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocNumber(); ok {
		_spec.SetField(submissionrecord.FieldDocNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.DestinationType(); ok {
		_spec.SetField(submissionrecord.FieldDestinationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoreID(); ok {
		_spec.SetField(submissionrecord.FieldStoreID, field.TypeUUID, value)
	}
	if _u.mutation.StoreIDCleared() {
		_spec.ClearField(submissionrecord.FieldStoreID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StoreName(); ok {
		_spec.SetField(submissionrecord.FieldStoreName, field.TypeString, value)
	}
	if _u.mutation.StoreNameCleared() {
		_spec.ClearField(submissionrecord.FieldStoreName, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierID(); ok {
		_spec.SetField(submissionrecord.FieldSupplierID, field.TypeUUID, value)
	}
	if _u.mutation.SupplierIDCleared() {
		_spec.ClearField(submissionrecord.FieldSupplierID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(submissionrecord.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(submissionrecord.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.DocDate(); ok {
		_spec.SetField(submissionrecord.FieldDocDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(submissionrecord.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submissionrecord.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(submissionrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(submissionrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submissionrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(submissionrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(submissionrecord.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submissionrecord.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(submissionrecord.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(submissionrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submissionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submissionrecord.DocumentTable,
			Columns: []string{submissionrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submissionrecord.DocumentTable,
			Columns: []string{submissionrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionRecordUpdateOne is the builder for updating a single SubmissionRecord entity.
type SubmissionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionRecordMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *SubmissionRecordUpdateOne) SetDocumentID(v uuid.UUID) *SubmissionRecordUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableDocumentID(v *uuid.UUID) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDocNumber sets the "doc_number" field.
func (_u *SubmissionRecordUpdateOne) SetDocNumber(v string) *SubmissionRecordUpdateOne {
	_u.mutation.SetDocNumber(v)
	return _u
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableDocNumber(v *string) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetDocNumber(*v)
	}
	return _u
}

// SetDestinationType sets the "destination_type" field.
func (_u *SubmissionRecordUpdateOne) SetDestinationType(v string) *SubmissionRecordUpdateOne {
	_u.mutation.SetDestinationType(v)
	return _u
}

// SetNillableDestinationType sets the "destination_type" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableDestinationType(v *string) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetDestinationType(*v)
	}
	return _u
}

// SetStoreID sets the "store_id" field.
func (_u *SubmissionRecordUpdateOne) SetStoreID(v uuid.UUID) *SubmissionRecordUpdateOne {
	_u.mutation.SetStoreID(v)
	return _u
}

// SetNillableStoreID sets the "store_id" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableStoreID(v *uuid.UUID) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetStoreID(*v)
	}
	return _u
}

// ClearStoreID clears the value of the "store_id" field.
func (_u *SubmissionRecordUpdateOne) ClearStoreID() *SubmissionRecordUpdateOne {
	_u.mutation.ClearStoreID()
	return _u
}

// SetStoreName sets the "store_name" field.
func (_u *SubmissionRecordUpdateOne) SetStoreName(v string) *SubmissionRecordUpdateOne {
	_u.mutation.SetStoreName(v)
	return _u
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableStoreName(v *string) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetStoreName(*v)
	}
	return _u
}

// ClearStoreName clears the value of the "store_name" field.
func (_u *SubmissionRecordUpdateOne) ClearStoreName() *SubmissionRecordUpdateOne {
	_u.mutation.ClearStoreName()
	return _u
}

// SetSupplierID sets the "supplier_id" field.
func (_u *SubmissionRecordUpdateOne) SetSupplierID(v uuid.UUID) *SubmissionRecordUpdateOne {
	_u.mutation.SetSupplierID(v)
	return _u
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableSupplierID(v *uuid.UUID) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetSupplierID(*v)
	}
	return _u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (_u *SubmissionRecordUpdateOne) ClearSupplierID() *SubmissionRecordUpdateOne {
	_u.mutation.ClearSupplierID()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *SubmissionRecordUpdateOne) SetSupplierName(v string) *SubmissionRecordUpdateOne {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableSupplierName(v *string) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *SubmissionRecordUpdateOne) ClearSupplierName() *SubmissionRecordUpdateOne {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetDocDate sets the "doc_date" field.
func (_u *SubmissionRecordUpdateOne) SetDocDate(v time.Time) *SubmissionRecordUpdateOne {
	_u.mutation.SetDocDate(v)
	return _u
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableDocDate(v *time.Time) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetDocDate(*v)
	}
	return _u
}

// SetItems sets the "items" field.
func (_u *SubmissionRecordUpdateOne) SetItems(v []entity.LineItem) *SubmissionRecordUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *SubmissionRecordUpdateOne) AppendItems(v []entity.LineItem) *SubmissionRecordUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *SubmissionRecordUpdateOne) SetTotalAmount(v float64) *SubmissionRecordUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableTotalAmount(v *float64) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *SubmissionRecordUpdateOne) AddTotalAmount(v float64) *SubmissionRecordUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SubmissionRecordUpdateOne) SetStatus(v string) *SubmissionRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableStatus(v *string) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *SubmissionRecordUpdateOne) SetErrorMessage(v string) *SubmissionRecordUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableErrorMessage(v *string) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *SubmissionRecordUpdateOne) ClearErrorMessage() *SubmissionRecordUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *SubmissionRecordUpdateOne) SetWarnings(v []string) *SubmissionRecordUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *SubmissionRecordUpdateOne) AppendWarnings(v []string) *SubmissionRecordUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *SubmissionRecordUpdateOne) ClearWarnings() *SubmissionRecordUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *SubmissionRecordUpdateOne) SetCreatedAt(v time.Time) *SubmissionRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *SubmissionRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *SubmissionRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SubmissionRecordUpdateOne) SetUpdatedAt(v time.Time) *SubmissionRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *SubmissionRecordUpdateOne) SetDocument(v *Document) *SubmissionRecordUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the SubmissionRecordMutation object of the builder.
func (_u *SubmissionRecordUpdateOne) Mutation() *SubmissionRecordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *SubmissionRecordUpdateOne) ClearDocument() *SubmissionRecordUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the SubmissionRecordUpdate builder.
func (_u *SubmissionRecordUpdateOne) Where(ps ...predicate.SubmissionRecord) *SubmissionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionRecordUpdateOne) Select(field string, fields ...string) *SubmissionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SubmissionRecord entity.
func (_u *SubmissionRecordUpdateOne) Save(ctx context.Context) (*SubmissionRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionRecordUpdateOne) SaveX(ctx context.Context) *SubmissionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SubmissionRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := submissionrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.DocNumber(); ok {
		if err := submissionrecord.DocNumberValidator(v); err != nil {
			return &ValidationError{Name: "doc_number", err: fmt.Errorf(`ent: validator failed for field "SubmissionRecord.doc_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DestinationType(); ok {
		if err := submissionrecord.DestinationTypeValidator(v); err != nil {
			return &ValidationError{Name: "destination_type", err: fmt.Errorf(`ent: validator failed for field "SubmissionRecord.destination_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := submissionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubmissionRecord.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmissionRecord.document"`)
	}
	return nil
}

func (_u *SubmissionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SubmissionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submissionrecord.Table, submissionrecord.Columns, sqlgraph.NewFieldSpec(submissionrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmissionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submissionrecord.FieldID)
		for _, f := range fields {
			if !submissionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submissionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocNumber(); ok {
		_spec.SetField(submissionrecord.FieldDocNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.DestinationType(); ok {
		_spec.SetField(submissionrecord.FieldDestinationType, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoreID(); ok {
		_spec.SetField(submissionrecord.FieldStoreID, field.TypeUUID, value)
	}
	if _u.mutation.StoreIDCleared() {
		_spec.ClearField(submissionrecord.FieldStoreID, field.TypeUUID)
	}
	if value, ok := _u.mutation.StoreName(); ok {
		_spec.SetField(submissionrecord.FieldStoreName, field.TypeString, value)
	}
	if _u.mutation.StoreNameCleared() {
		_spec.ClearField(submissionrecord.FieldStoreName, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierID(); ok {
		_spec.SetField(submissionrecord.FieldSupplierID, field.TypeUUID, value)
	}
	if _u.mutation.SupplierIDCleared() {
		_spec.ClearField(submissionrecord.FieldSupplierID, field.TypeUUID)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(submissionrecord.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(submissionrecord.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.DocDate(); ok {
		_spec.SetField(submissionrecord.FieldDocDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(submissionrecord.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submissionrecord.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(submissionrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(submissionrecord.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(submissionrecord.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(submissionrecord.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(submissionrecord.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submissionrecord.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(submissionrecord.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(submissionrecord.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(submissionrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submissionrecord.DocumentTable,
			Columns: []string{submissionrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   submissionrecord.DocumentTable,
			Columns: []string{submissionrecord.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SubmissionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submissionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
