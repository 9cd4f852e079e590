// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/document"
	"github.com/paradize/restodocs/gen/ent/submissionrecord"
	"github.com/paradize/restodocs/internal/entity"
)

// SubmissionRecordCreate is the builder for creating a SubmissionRecord entity.
type SubmissionRecordCreate struct {
	config
	mutation *SubmissionRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *SubmissionRecordCreate) SetDocumentID(v uuid.UUID) *SubmissionRecordCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetDocNumber sets the "doc_number" field.
func (_c *SubmissionRecordCreate) SetDocNumber(v string) *SubmissionRecordCreate {
	_c.mutation.SetDocNumber(v)
	return _c
}

// SetDestinationType sets the "destination_type" field.
func (_c *SubmissionRecordCreate) SetDestinationType(v string) *SubmissionRecordCreate {
	_c.mutation.SetDestinationType(v)
	return _c
}

// SetStoreID sets the "store_id" field.
func (_c *SubmissionRecordCreate) SetStoreID(v uuid.UUID) *SubmissionRecordCreate {
	_c.mutation.SetStoreID(v)
	return _c
}

// SetNillableStoreID sets the "store_id" field if the given value is not nil.
func (_c *SubmissionRecordCreate) SetNillableStoreID(v *uuid.UUID) *SubmissionRecordCreate {
	if v != nil {
		_c.SetStoreID(*v)
	}
	return _c
}

// SetStoreName sets the "store_name" field.
func (_c *SubmissionRecordCreate) SetStoreName(v string) *SubmissionRecordCreate {
	_c.mutation.SetStoreName(v)
	return _c
}

// SetNillableStoreName sets the "store_name" field if the given value is not nil.
func (_c *SubmissionRecordCreate) SetNillableStoreName(v *string) *SubmissionRecordCreate {
	if v != nil {
		_c.SetStoreName(*v)
	}
	return _c
}

// SetSupplierID sets the "supplier_id" field.
func (_c *SubmissionRecordCreate) SetSupplierID(v uuid.UUID) *SubmissionRecordCreate {
	_c.mutation.SetSupplierID(v)
	return _c
}

// SetNillableSupplierID sets the "supplier_id" field if the given value is not nil.
func (_c *SubmissionRecordCreate) SetNillableSupplierID(v *uuid.UUID) *SubmissionRecordCreate {
	if v != nil {
		_c.SetSupplierID(*v)
	}
	return _c
}

// SetSupplierName sets the "supplier_name" field.
func (_c *SubmissionRecordCreate) SetSupplierName(v string) *SubmissionRecordCreate {
	_c.mutation.SetSupplierName(v)
	return _c
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_c *SubmissionRecordCreate) SetNillableSupplierName(v *string) *SubmissionRecordCreate {
	if v != nil {
		_c.SetSupplierName(*v)
	}
	return _c
}

// SetDocDate sets the "doc_date" field.
func (_c *SubmissionRecordCreate) SetDocDate(v time.Time) *SubmissionRecordCreate {
	_c.mutation.SetDocDate(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *SubmissionRecordCreate) SetItems(v []entity.LineItem) *SubmissionRecordCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *SubmissionRecordCreate) SetTotalAmount(v float64) *SubmissionRecordCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SubmissionRecordCreate) SetStatus(v string) *SubmissionRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SubmissionRecordCreate) SetNillableStatus(v *string) *SubmissionRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *SubmissionRecordCreate) SetErrorMessage(v string) *SubmissionRecordCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *SubmissionRecordCreate) SetNillableErrorMessage(v *string) *SubmissionRecordCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *SubmissionRecordCreate) SetWarnings(v []string) *SubmissionRecordCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SubmissionRecordCreate) SetCreatedAt(v time.Time) *SubmissionRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SubmissionRecordCreate) SetNillableCreatedAt(v *time.Time) *SubmissionRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SubmissionRecordCreate) SetUpdatedAt(v time.Time) *SubmissionRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SubmissionRecordCreate) SetNillableUpdatedAt(v *time.Time) *SubmissionRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SubmissionRecordCreate) SetID(v uuid.UUID) *SubmissionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SubmissionRecordCreate) SetNillableID(v *uuid.UUID) *SubmissionRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *SubmissionRecordCreate) SetDocument(v *Document) *SubmissionRecordCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the SubmissionRecordMutation object of the builder.
func (_c *SubmissionRecordCreate) Mutation() *SubmissionRecordMutation {
	return _c.mutation
}

// Save creates the SubmissionRecord in the database.
func (_c *SubmissionRecordCreate) Save(ctx context.Context) (*SubmissionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubmissionRecordCreate) SaveX(ctx context.Context) *SubmissionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubmissionRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := submissionrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := submissionrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := submissionrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := submissionrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubmissionRecordCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "SubmissionRecord.document_id"`)}
	}
	if _, ok := _c.mutation.DocNumber(); !ok {
		return &ValidationError{Name: "doc_number", err: errors.New(`ent: missing required field "SubmissionRecord.doc_number"`)}
	}
	if v, ok := _c.mutation.DocNumber(); ok {
		if err := submissionrecord.DocNumberValidator(v); err != nil {
			return &ValidationError{Name: "doc_number", err: fmt.Errorf(`ent: validator failed for field "SubmissionRecord.doc_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DestinationType(); !ok {
		return &ValidationError{Name: "destination_type", err: errors.New(`ent: missing required field "SubmissionRecord.destination_type"`)}
	}
	if v, ok := _c.mutation.DestinationType(); ok {
		if err := submissionrecord.DestinationTypeValidator(v); err != nil {
			return &ValidationError{Name: "destination_type", err: fmt.Errorf(`ent: validator failed for field "SubmissionRecord.destination_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocDate(); !ok {
		return &ValidationError{Name: "doc_date", err: errors.New(`ent: missing required field "SubmissionRecord.doc_date"`)}
	}
	if _, ok := _c.mutation.Items(); !ok {
		return &ValidationError{Name: "items", err: errors.New(`ent: missing required field "SubmissionRecord.items"`)}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "SubmissionRecord.total_amount"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SubmissionRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := submissionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SubmissionRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubmissionRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SubmissionRecord.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "SubmissionRecord.document"`)}
	}
	return nil
}

func (_c *SubmissionRecordCreate) sqlSave(ctx context.Context) (*SubmissionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubmissionRecordCreate) createSpec() (*SubmissionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmissionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(submissionrecord.Table, sqlgraph.NewFieldSpec(submissionrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocNumber(); ok {
		_spec.SetField(submissionrecord.FieldDocNumber, field.TypeString, value)
		_node.DocNumber = value
	}
	if value, ok := _c.mutation.DestinationType(); ok {
		_spec.SetField(submissionrecord.FieldDestinationType, field.TypeString, value)
		_node.DestinationType = value
	}
	if value, ok := _c.mutation.StoreID(); ok {
		_spec.SetField(submissionrecord.FieldStoreID, field.TypeUUID, value)
		_node.StoreID = &value
	}
	if value, ok := _c.mutation.StoreName(); ok {
		_spec.SetField(submissionrecord.FieldStoreName, field.TypeString, value)
		_node.StoreName = value
	}
	if value, ok := _c.mutation.SupplierID(); ok {
		_spec.SetField(submissionrecord.FieldSupplierID, field.TypeUUID, value)
		_node.SupplierID = &value
	}
	if value, ok := _c.mutation.SupplierName(); ok {
		_spec.SetField(submissionrecord.FieldSupplierName, field.TypeString, value)
		_node.SupplierName = value
	}
	if value, ok := _c.mutation.DocDate(); ok {
		_spec.SetField(submissionrecord.FieldDocDate, field.TypeTime, value)
		_node.DocDate = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(submissionrecord.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(submissionrecord.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(submissionrecord.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(submissionrecord.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(submissionrecord.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(submissionrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(submissionrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubmissionRecord.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubmissionRecordUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubmissionRecordCreate) OnConflict(opts ...sql.ConflictOption) *SubmissionRecordUpsertOne {
	_c.conflict = opts
	return &SubmissionRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubmissionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubmissionRecordCreate) OnConflictColumns(columns ...string) *SubmissionRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubmissionRecordUpsertOne{
		create: _c,
	}
}

type (
	// SubmissionRecordUpsertOne is the builder for "upsert"-ing
	//  one SubmissionRecord node.
	SubmissionRecordUpsertOne struct {
		create *SubmissionRecordCreate
	}

	// SubmissionRecordUpsert is the "OnConflict" setter.
	SubmissionRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocumentID sets the "document_id" field.
func (u *SubmissionRecordUpsert) SetDocumentID(v uuid.UUID) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldDocumentID, v)
	return u
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateDocumentID() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldDocumentID)
	return u
}

// SetDocNumber sets the "doc_number" field.
func (u *SubmissionRecordUpsert) SetDocNumber(v string) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldDocNumber, v)
	return u
}

// UpdateDocNumber sets the "doc_number" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateDocNumber() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldDocNumber)
	return u
}

// SetDestinationType sets the "destination_type" field.
func (u *SubmissionRecordUpsert) SetDestinationType(v string) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldDestinationType, v)
	return u
}

// UpdateDestinationType sets the "destination_type" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateDestinationType() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldDestinationType)
	return u
}

// SetStoreID sets the "store_id" field.
func (u *SubmissionRecordUpsert) SetStoreID(v uuid.UUID) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldStoreID, v)
	return u
}

// UpdateStoreID sets the "store_id" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateStoreID() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldStoreID)
	return u
}

// ClearStoreID clears the value of the "store_id" field.
func (u *SubmissionRecordUpsert) ClearStoreID() *SubmissionRecordUpsert {
	u.SetNull(submissionrecord.FieldStoreID)
	return u
}

// SetStoreName sets the "store_name" field.
func (u *SubmissionRecordUpsert) SetStoreName(v string) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldStoreName, v)
	return u
}

// UpdateStoreName sets the "store_name" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateStoreName() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldStoreName)
	return u
}

// ClearStoreName clears the value of the "store_name" field.
func (u *SubmissionRecordUpsert) ClearStoreName() *SubmissionRecordUpsert {
	u.SetNull(submissionrecord.FieldStoreName)
	return u
}

// SetSupplierID sets the "supplier_id" field.
func (u *SubmissionRecordUpsert) SetSupplierID(v uuid.UUID) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldSupplierID, v)
	return u
}

// UpdateSupplierID sets the "supplier_id" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateSupplierID() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldSupplierID)
	return u
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (u *SubmissionRecordUpsert) ClearSupplierID() *SubmissionRecordUpsert {
	u.SetNull(submissionrecord.FieldSupplierID)
	return u
}

// SetSupplierName sets the "supplier_name" field.
func (u *SubmissionRecordUpsert) SetSupplierName(v string) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldSupplierName, v)
	return u
}

// UpdateSupplierName sets the "supplier_name" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateSupplierName() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldSupplierName)
	return u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (u *SubmissionRecordUpsert) ClearSupplierName() *SubmissionRecordUpsert {
	u.SetNull(submissionrecord.FieldSupplierName)
	return u
}

// SetDocDate sets the "doc_date" field.
func (u *SubmissionRecordUpsert) SetDocDate(v time.Time) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldDocDate, v)
	return u
}

// UpdateDocDate sets the "doc_date" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateDocDate() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldDocDate)
	return u
}

// SetItems sets the "items" field.
func (u *SubmissionRecordUpsert) SetItems(v []entity.LineItem) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldItems, v)
	return u
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateItems() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldItems)
	return u
}

// SetTotalAmount sets the "total_amount" field.
func (u *SubmissionRecordUpsert) SetTotalAmount(v float64) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldTotalAmount, v)
	return u
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateTotalAmount() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldTotalAmount)
	return u
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *SubmissionRecordUpsert) AddTotalAmount(v float64) *SubmissionRecordUpsert {
	u.Add(submissionrecord.FieldTotalAmount, v)
	return u
}

// SetStatus sets the "status" field.
func (u *SubmissionRecordUpsert) SetStatus(v string) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateStatus() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldStatus)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *SubmissionRecordUpsert) SetErrorMessage(v string) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateErrorMessage() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SubmissionRecordUpsert) ClearErrorMessage() *SubmissionRecordUpsert {
	u.SetNull(submissionrecord.FieldErrorMessage)
	return u
}

// SetWarnings sets the "warnings" field.
func (u *SubmissionRecordUpsert) SetWarnings(v []string) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldWarnings, v)
	return u
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateWarnings() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldWarnings)
	return u
}

// ClearWarnings clears the value of the "warnings" field.
func (u *SubmissionRecordUpsert) ClearWarnings() *SubmissionRecordUpsert {
	u.SetNull(submissionrecord.FieldWarnings)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *SubmissionRecordUpsert) SetCreatedAt(v time.Time) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateCreatedAt() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubmissionRecordUpsert) SetUpdatedAt(v time.Time) *SubmissionRecordUpsert {
	u.Set(submissionrecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubmissionRecordUpsert) UpdateUpdatedAt() *SubmissionRecordUpsert {
	u.SetExcluded(submissionrecord.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SubmissionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(submissionrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubmissionRecordUpsertOne) UpdateNewValues() *SubmissionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(submissionrecord.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubmissionRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SubmissionRecordUpsertOne) Ignore() *SubmissionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubmissionRecordUpsertOne) DoNothing() *SubmissionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubmissionRecordCreate.OnConflict
// documentation for more info.
func (u *SubmissionRecordUpsertOne) Update(set func(*SubmissionRecordUpsert)) *SubmissionRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubmissionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *SubmissionRecordUpsertOne) SetDocumentID(v uuid.UUID) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateDocumentID() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateDocumentID()
	})
}

// SetDocNumber sets the "doc_number" field.
func (u *SubmissionRecordUpsertOne) SetDocNumber(v string) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetDocNumber(v)
	})
}

// UpdateDocNumber sets the "doc_number" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateDocNumber() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateDocNumber()
	})
}

// SetDestinationType sets the "destination_type" field.
func (u *SubmissionRecordUpsertOne) SetDestinationType(v string) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetDestinationType(v)
	})
}

// UpdateDestinationType sets the "destination_type" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateDestinationType() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateDestinationType()
	})
}

// SetStoreID sets the "store_id" field.
func (u *SubmissionRecordUpsertOne) SetStoreID(v uuid.UUID) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetStoreID(v)
	})
}

// UpdateStoreID sets the "store_id" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateStoreID() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateStoreID()
	})
}

// ClearStoreID clears the value of the "store_id" field.
func (u *SubmissionRecordUpsertOne) ClearStoreID() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearStoreID()
	})
}

// SetStoreName sets the "store_name" field.
func (u *SubmissionRecordUpsertOne) SetStoreName(v string) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetStoreName(v)
	})
}

// UpdateStoreName sets the "store_name" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateStoreName() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateStoreName()
	})
}

// ClearStoreName clears the value of the "store_name" field.
func (u *SubmissionRecordUpsertOne) ClearStoreName() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearStoreName()
	})
}

// SetSupplierID sets the "supplier_id" field.
func (u *SubmissionRecordUpsertOne) SetSupplierID(v uuid.UUID) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetSupplierID(v)
	})
}

// UpdateSupplierID sets the "supplier_id" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateSupplierID() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateSupplierID()
	})
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (u *SubmissionRecordUpsertOne) ClearSupplierID() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearSupplierID()
	})
}

// SetSupplierName sets the "supplier_name" field.
func (u *SubmissionRecordUpsertOne) SetSupplierName(v string) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetSupplierName(v)
	})
}

// UpdateSupplierName sets the "supplier_name" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateSupplierName() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateSupplierName()
	})
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (u *SubmissionRecordUpsertOne) ClearSupplierName() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearSupplierName()
	})
}

// SetDocDate sets the "doc_date" field.
func (u *SubmissionRecordUpsertOne) SetDocDate(v time.Time) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetDocDate(v)
	})
}

// UpdateDocDate sets the "doc_date" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateDocDate() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateDocDate()
	})
}

// SetItems sets the "items" field.
func (u *SubmissionRecordUpsertOne) SetItems(v []entity.LineItem) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetItems(v)
	})
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateItems() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateItems()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *SubmissionRecordUpsertOne) SetTotalAmount(v float64) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *SubmissionRecordUpsertOne) AddTotalAmount(v float64) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateTotalAmount() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetStatus sets the "status" field.
func (u *SubmissionRecordUpsertOne) SetStatus(v string) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateStatus() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SubmissionRecordUpsertOne) SetErrorMessage(v string) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateErrorMessage() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SubmissionRecordUpsertOne) ClearErrorMessage() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearErrorMessage()
	})
}

// SetWarnings sets the "warnings" field.
func (u *SubmissionRecordUpsertOne) SetWarnings(v []string) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetWarnings(v)
	})
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateWarnings() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateWarnings()
	})
}

// ClearWarnings clears the value of the "warnings" field.
func (u *SubmissionRecordUpsertOne) ClearWarnings() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearWarnings()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SubmissionRecordUpsertOne) SetCreatedAt(v time.Time) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateCreatedAt() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubmissionRecordUpsertOne) SetUpdatedAt(v time.Time) *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubmissionRecordUpsertOne) UpdateUpdatedAt() *SubmissionRecordUpsertOne {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubmissionRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubmissionRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubmissionRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SubmissionRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SubmissionRecordUpsertOne.ID is not supported by MySQL driver. Use SubmissionRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SubmissionRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SubmissionRecordCreateBulk is the builder for creating many SubmissionRecord entities in bulk.
type SubmissionRecordCreateBulk struct {
	config
	err      error
	builders []*SubmissionRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the SubmissionRecord entities in the database.
func (_c *SubmissionRecordCreateBulk) Save(ctx context.Context) ([]*SubmissionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SubmissionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmissionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubmissionRecordCreateBulk) SaveX(ctx context.Context) []*SubmissionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubmissionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubmissionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SubmissionRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SubmissionRecordUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *SubmissionRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *SubmissionRecordUpsertBulk {
	_c.conflict = opts
	return &SubmissionRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SubmissionRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SubmissionRecordCreateBulk) OnConflictColumns(columns ...string) *SubmissionRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SubmissionRecordUpsertBulk{
		create: _c,
	}
}

// SubmissionRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of SubmissionRecord nodes.
type SubmissionRecordUpsertBulk struct {
	create *SubmissionRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SubmissionRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(submissionrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SubmissionRecordUpsertBulk) UpdateNewValues() *SubmissionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(submissionrecord.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SubmissionRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SubmissionRecordUpsertBulk) Ignore() *SubmissionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SubmissionRecordUpsertBulk) DoNothing() *SubmissionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SubmissionRecordCreateBulk.OnConflict
// documentation for more info.
func (u *SubmissionRecordUpsertBulk) Update(set func(*SubmissionRecordUpsert)) *SubmissionRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SubmissionRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *SubmissionRecordUpsertBulk) SetDocumentID(v uuid.UUID) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateDocumentID() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateDocumentID()
	})
}

// SetDocNumber sets the "doc_number" field.
func (u *SubmissionRecordUpsertBulk) SetDocNumber(v string) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetDocNumber(v)
	})
}

// UpdateDocNumber sets the "doc_number" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateDocNumber() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateDocNumber()
	})
}

// SetDestinationType sets the "destination_type" field.
func (u *SubmissionRecordUpsertBulk) SetDestinationType(v string) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetDestinationType(v)
	})
}

// UpdateDestinationType sets the "destination_type" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateDestinationType() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateDestinationType()
	})
}

// SetStoreID sets the "store_id" field.
func (u *SubmissionRecordUpsertBulk) SetStoreID(v uuid.UUID) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetStoreID(v)
	})
}

// UpdateStoreID sets the "store_id" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateStoreID() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateStoreID()
	})
}

// ClearStoreID clears the value of the "store_id" field.
func (u *SubmissionRecordUpsertBulk) ClearStoreID() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearStoreID()
	})
}

// SetStoreName sets the "store_name" field.
func (u *SubmissionRecordUpsertBulk) SetStoreName(v string) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetStoreName(v)
	})
}

// UpdateStoreName sets the "store_name" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateStoreName() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateStoreName()
	})
}

// ClearStoreName clears the value of the "store_name" field.
func (u *SubmissionRecordUpsertBulk) ClearStoreName() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearStoreName()
	})
}

// SetSupplierID sets the "supplier_id" field.
func (u *SubmissionRecordUpsertBulk) SetSupplierID(v uuid.UUID) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetSupplierID(v)
	})
}

// UpdateSupplierID sets the "supplier_id" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateSupplierID() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateSupplierID()
	})
}

// ClearSupplierID clears the value of the "supplier_id" field.
func (u *SubmissionRecordUpsertBulk) ClearSupplierID() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearSupplierID()
	})
}

// SetSupplierName sets the "supplier_name" field.
func (u *SubmissionRecordUpsertBulk) SetSupplierName(v string) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetSupplierName(v)
	})
}

// UpdateSupplierName sets the "supplier_name" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateSupplierName() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateSupplierName()
	})
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (u *SubmissionRecordUpsertBulk) ClearSupplierName() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearSupplierName()
	})
}

// SetDocDate sets the "doc_date" field.
func (u *SubmissionRecordUpsertBulk) SetDocDate(v time.Time) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetDocDate(v)
	})
}

// UpdateDocDate sets the "doc_date" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateDocDate() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateDocDate()
	})
}

// SetItems sets the "items" field.
func (u *SubmissionRecordUpsertBulk) SetItems(v []entity.LineItem) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetItems(v)
	})
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateItems() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateItems()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *SubmissionRecordUpsertBulk) SetTotalAmount(v float64) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *SubmissionRecordUpsertBulk) AddTotalAmount(v float64) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateTotalAmount() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetStatus sets the "status" field.
func (u *SubmissionRecordUpsertBulk) SetStatus(v string) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateStatus() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *SubmissionRecordUpsertBulk) SetErrorMessage(v string) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateErrorMessage() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *SubmissionRecordUpsertBulk) ClearErrorMessage() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearErrorMessage()
	})
}

// SetWarnings sets the "warnings" field.
func (u *SubmissionRecordUpsertBulk) SetWarnings(v []string) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetWarnings(v)
	})
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateWarnings() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateWarnings()
	})
}

// ClearWarnings clears the value of the "warnings" field.
func (u *SubmissionRecordUpsertBulk) ClearWarnings() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.ClearWarnings()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *SubmissionRecordUpsertBulk) SetCreatedAt(v time.Time) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateCreatedAt() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *SubmissionRecordUpsertBulk) SetUpdatedAt(v time.Time) *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *SubmissionRecordUpsertBulk) UpdateUpdatedAt() *SubmissionRecordUpsertBulk {
	return u.Update(func(s *SubmissionRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *SubmissionRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SubmissionRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SubmissionRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SubmissionRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
