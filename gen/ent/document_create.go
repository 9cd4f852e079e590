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
	"github.com/paradize/restodocs/gen/ent/escalationitem"
	"github.com/paradize/restodocs/gen/ent/submissionrecord"
	"github.com/paradize/restodocs/internal/entity"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocType sets the "doc_type" field.
func (_c *DocumentCreate) SetDocType(v string) *DocumentCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetDocNumber sets the "doc_number" field.
func (_c *DocumentCreate) SetDocNumber(v string) *DocumentCreate {
	_c.mutation.SetDocNumber(v)
	return _c
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDocNumber(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDocNumber(*v)
	}
	return _c
}

// SetDocDate sets the "doc_date" field.
func (_c *DocumentCreate) SetDocDate(v string) *DocumentCreate {
	_c.mutation.SetDocDate(v)
	return _c
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDocDate(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDocDate(*v)
	}
	return _c
}

// SetSupplierName sets the "supplier_name" field.
func (_c *DocumentCreate) SetSupplierName(v string) *DocumentCreate {
	_c.mutation.SetSupplierName(v)
	return _c
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSupplierName(v *string) *DocumentCreate {
	if v != nil {
		_c.SetSupplierName(*v)
	}
	return _c
}

// SetSupplierInn sets the "supplier_inn" field.
func (_c *DocumentCreate) SetSupplierInn(v string) *DocumentCreate {
	_c.mutation.SetSupplierInn(v)
	return _c
}

// SetNillableSupplierInn sets the "supplier_inn" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSupplierInn(v *string) *DocumentCreate {
	if v != nil {
		_c.SetSupplierInn(*v)
	}
	return _c
}

// SetBuyerName sets the "buyer_name" field.
func (_c *DocumentCreate) SetBuyerName(v string) *DocumentCreate {
	_c.mutation.SetBuyerName(v)
	return _c
}

// SetNillableBuyerName sets the "buyer_name" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableBuyerName(v *string) *DocumentCreate {
	if v != nil {
		_c.SetBuyerName(*v)
	}
	return _c
}

// SetBuyerInn sets the "buyer_inn" field.
func (_c *DocumentCreate) SetBuyerInn(v string) *DocumentCreate {
	_c.mutation.SetBuyerInn(v)
	return _c
}

// SetNillableBuyerInn sets the "buyer_inn" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableBuyerInn(v *string) *DocumentCreate {
	if v != nil {
		_c.SetBuyerInn(*v)
	}
	return _c
}

// SetItems sets the "items" field.
func (_c *DocumentCreate) SetItems(v []entity.LineItem) *DocumentCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *DocumentCreate) SetTotalAmount(v float64) *DocumentCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *DocumentCreate) SetConfidence(v int) *DocumentCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *DocumentCreate) SetPageCount(v int) *DocumentCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePageCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetIsMerged sets the "is_merged" field.
func (_c *DocumentCreate) SetIsMerged(v bool) *DocumentCreate {
	_c.mutation.SetIsMerged(v)
	return _c
}

// SetNillableIsMerged sets the "is_merged" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableIsMerged(v *bool) *DocumentCreate {
	if v != nil {
		_c.SetIsMerged(*v)
	}
	return _c
}

// SetNeedsReview sets the "needs_review" field.
func (_c *DocumentCreate) SetNeedsReview(v bool) *DocumentCreate {
	_c.mutation.SetNeedsReview(v)
	return _c
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableNeedsReview(v *bool) *DocumentCreate {
	if v != nil {
		_c.SetNeedsReview(*v)
	}
	return _c
}

// SetGroupKey sets the "group_key" field.
func (_c *DocumentCreate) SetGroupKey(v string) *DocumentCreate {
	_c.mutation.SetGroupKey(v)
	return _c
}

// SetNillableGroupKey sets the "group_key" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableGroupKey(v *string) *DocumentCreate {
	if v != nil {
		_c.SetGroupKey(*v)
	}
	return _c
}

// SetWarnings sets the "warnings" field.
func (_c *DocumentCreate) SetWarnings(v []string) *DocumentCreate {
	_c.mutation.SetWarnings(v)
	return _c
}

// SetErrors sets the "errors" field.
func (_c *DocumentCreate) SetErrors(v []string) *DocumentCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocumentCreate) SetStatus(v string) *DocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v uuid.UUID) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableID(v *uuid.UUID) *DocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddSubmissionIDs adds the "submissions" edge to the SubmissionRecord entity by IDs.
func (_c *DocumentCreate) AddSubmissionIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddSubmissionIDs(ids...)
	return _c
}

// AddSubmissions adds the "submissions" edges to the SubmissionRecord entity.
func (_c *DocumentCreate) AddSubmissions(v ...*SubmissionRecord) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSubmissionIDs(ids...)
}

// AddEscalationIDs adds the "escalations" edge to the EscalationItem entity by IDs.
func (_c *DocumentCreate) AddEscalationIDs(ids ...uuid.UUID) *DocumentCreate {
	_c.mutation.AddEscalationIDs(ids...)
	return _c
}

// AddEscalations adds the "escalations" edges to the EscalationItem entity.
func (_c *DocumentCreate) AddEscalations(v ...*EscalationItem) *DocumentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEscalationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.PageCount(); !ok {
		v := document.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.IsMerged(); !ok {
		v := document.DefaultIsMerged
		_c.mutation.SetIsMerged(v)
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		v := document.DefaultNeedsReview
		_c.mutation.SetNeedsReview(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := document.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := document.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.DocType(); !ok {
		return &ValidationError{Name: "doc_type", err: errors.New(`ent: missing required field "Document.doc_type"`)}
	}
	if v, ok := _c.mutation.DocType(); ok {
		if err := document.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Document.doc_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Items(); !ok {
		return &ValidationError{Name: "items", err: errors.New(`ent: missing required field "Document.items"`)}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "Document.total_amount"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Document.confidence"`)}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "Document.page_count"`)}
	}
	if _, ok := _c.mutation.IsMerged(); !ok {
		return &ValidationError{Name: "is_merged", err: errors.New(`ent: missing required field "Document.is_merged"`)}
	}
	if _, ok := _c.mutation.NeedsReview(); !ok {
		return &ValidationError{Name: "needs_review", err: errors.New(`ent: missing required field "Document.needs_review"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Document.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeString, value)
		_node.DocType = value
	}
	if value, ok := _c.mutation.DocNumber(); ok {
		_spec.SetField(document.FieldDocNumber, field.TypeString, value)
		_node.DocNumber = value
	}
	if value, ok := _c.mutation.DocDate(); ok {
		_spec.SetField(document.FieldDocDate, field.TypeString, value)
		_node.DocDate = value
	}
	if value, ok := _c.mutation.SupplierName(); ok {
		_spec.SetField(document.FieldSupplierName, field.TypeString, value)
		_node.SupplierName = &value
	}
	if value, ok := _c.mutation.SupplierInn(); ok {
		_spec.SetField(document.FieldSupplierInn, field.TypeString, value)
		_node.SupplierInn = &value
	}
	if value, ok := _c.mutation.BuyerName(); ok {
		_spec.SetField(document.FieldBuyerName, field.TypeString, value)
		_node.BuyerName = &value
	}
	if value, ok := _c.mutation.BuyerInn(); ok {
		_spec.SetField(document.FieldBuyerInn, field.TypeString, value)
		_node.BuyerInn = &value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(document.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(document.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(document.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.IsMerged(); ok {
		_spec.SetField(document.FieldIsMerged, field.TypeBool, value)
		_node.IsMerged = value
	}
	if value, ok := _c.mutation.NeedsReview(); ok {
		_spec.SetField(document.FieldNeedsReview, field.TypeBool, value)
		_node.NeedsReview = value
	}
	if value, ok := _c.mutation.GroupKey(); ok {
		_spec.SetField(document.FieldGroupKey, field.TypeString, value)
		_node.GroupKey = value
	}
	if value, ok := _c.mutation.Warnings(); ok {
		_spec.SetField(document.FieldWarnings, field.TypeJSON, value)
		_node.Warnings = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(document.FieldErrors, field.TypeJSON, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.SubmissionsTable,
			Columns: []string{document.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submissionrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EscalationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.EscalationsTable,
			Columns: []string{document.EscalationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(escalationitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.Create().
//		SetDocType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetDocType(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocType sets the "doc_type" field.
func (u *DocumentUpsert) SetDocType(v string) *DocumentUpsert {
	u.Set(document.FieldDocType, v)
	return u
}

// UpdateDocType sets the "doc_type" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateDocType() *DocumentUpsert {
	u.SetExcluded(document.FieldDocType)
	return u
}

// SetDocNumber sets the "doc_number" field.
func (u *DocumentUpsert) SetDocNumber(v string) *DocumentUpsert {
	u.Set(document.FieldDocNumber, v)
	return u
}

// UpdateDocNumber sets the "doc_number" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateDocNumber() *DocumentUpsert {
	u.SetExcluded(document.FieldDocNumber)
	return u
}

// ClearDocNumber clears the value of the "doc_number" field.
func (u *DocumentUpsert) ClearDocNumber() *DocumentUpsert {
	u.SetNull(document.FieldDocNumber)
	return u
}

// SetDocDate sets the "doc_date" field.
func (u *DocumentUpsert) SetDocDate(v string) *DocumentUpsert {
	u.Set(document.FieldDocDate, v)
	return u
}

// UpdateDocDate sets the "doc_date" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateDocDate() *DocumentUpsert {
	u.SetExcluded(document.FieldDocDate)
	return u
}

// ClearDocDate clears the value of the "doc_date" field.
func (u *DocumentUpsert) ClearDocDate() *DocumentUpsert {
	u.SetNull(document.FieldDocDate)
	return u
}

// SetSupplierName sets the "supplier_name" field.
func (u *DocumentUpsert) SetSupplierName(v string) *DocumentUpsert {
	u.Set(document.FieldSupplierName, v)
	return u
}

// UpdateSupplierName sets the "supplier_name" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSupplierName() *DocumentUpsert {
	u.SetExcluded(document.FieldSupplierName)
	return u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (u *DocumentUpsert) ClearSupplierName() *DocumentUpsert {
	u.SetNull(document.FieldSupplierName)
	return u
}

// SetSupplierInn sets the "supplier_inn" field.
func (u *DocumentUpsert) SetSupplierInn(v string) *DocumentUpsert {
	u.Set(document.FieldSupplierInn, v)
	return u
}

// UpdateSupplierInn sets the "supplier_inn" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSupplierInn() *DocumentUpsert {
	u.SetExcluded(document.FieldSupplierInn)
	return u
}

// ClearSupplierInn clears the value of the "supplier_inn" field.
func (u *DocumentUpsert) ClearSupplierInn() *DocumentUpsert {
	u.SetNull(document.FieldSupplierInn)
	return u
}

// SetBuyerName sets the "buyer_name" field.
func (u *DocumentUpsert) SetBuyerName(v string) *DocumentUpsert {
	u.Set(document.FieldBuyerName, v)
	return u
}

// UpdateBuyerName sets the "buyer_name" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateBuyerName() *DocumentUpsert {
	u.SetExcluded(document.FieldBuyerName)
	return u
}

// ClearBuyerName clears the value of the "buyer_name" field.
func (u *DocumentUpsert) ClearBuyerName() *DocumentUpsert {
	u.SetNull(document.FieldBuyerName)
	return u
}

// SetBuyerInn sets the "buyer_inn" field.
func (u *DocumentUpsert) SetBuyerInn(v string) *DocumentUpsert {
	u.Set(document.FieldBuyerInn, v)
	return u
}

// UpdateBuyerInn sets the "buyer_inn" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateBuyerInn() *DocumentUpsert {
	u.SetExcluded(document.FieldBuyerInn)
	return u
}

// ClearBuyerInn clears the value of the "buyer_inn" field.
func (u *DocumentUpsert) ClearBuyerInn() *DocumentUpsert {
	u.SetNull(document.FieldBuyerInn)
	return u
}

// SetItems sets the "items" field.
func (u *DocumentUpsert) SetItems(v []entity.LineItem) *DocumentUpsert {
	u.Set(document.FieldItems, v)
	return u
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateItems() *DocumentUpsert {
	u.SetExcluded(document.FieldItems)
	return u
}

// SetTotalAmount sets the "total_amount" field.
func (u *DocumentUpsert) SetTotalAmount(v float64) *DocumentUpsert {
	u.Set(document.FieldTotalAmount, v)
	return u
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateTotalAmount() *DocumentUpsert {
	u.SetExcluded(document.FieldTotalAmount)
	return u
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *DocumentUpsert) AddTotalAmount(v float64) *DocumentUpsert {
	u.Add(document.FieldTotalAmount, v)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *DocumentUpsert) SetConfidence(v int) *DocumentUpsert {
	u.Set(document.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateConfidence() *DocumentUpsert {
	u.SetExcluded(document.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *DocumentUpsert) AddConfidence(v int) *DocumentUpsert {
	u.Add(document.FieldConfidence, v)
	return u
}

// SetPageCount sets the "page_count" field.
func (u *DocumentUpsert) SetPageCount(v int) *DocumentUpsert {
	u.Set(document.FieldPageCount, v)
	return u
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *DocumentUpsert) UpdatePageCount() *DocumentUpsert {
	u.SetExcluded(document.FieldPageCount)
	return u
}

// AddPageCount adds v to the "page_count" field.
func (u *DocumentUpsert) AddPageCount(v int) *DocumentUpsert {
	u.Add(document.FieldPageCount, v)
	return u
}

// SetIsMerged sets the "is_merged" field.
func (u *DocumentUpsert) SetIsMerged(v bool) *DocumentUpsert {
	u.Set(document.FieldIsMerged, v)
	return u
}

// UpdateIsMerged sets the "is_merged" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateIsMerged() *DocumentUpsert {
	u.SetExcluded(document.FieldIsMerged)
	return u
}

// SetNeedsReview sets the "needs_review" field.
func (u *DocumentUpsert) SetNeedsReview(v bool) *DocumentUpsert {
	u.Set(document.FieldNeedsReview, v)
	return u
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateNeedsReview() *DocumentUpsert {
	u.SetExcluded(document.FieldNeedsReview)
	return u
}

// SetGroupKey sets the "group_key" field.
func (u *DocumentUpsert) SetGroupKey(v string) *DocumentUpsert {
	u.Set(document.FieldGroupKey, v)
	return u
}

// UpdateGroupKey sets the "group_key" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateGroupKey() *DocumentUpsert {
	u.SetExcluded(document.FieldGroupKey)
	return u
}

// ClearGroupKey clears the value of the "group_key" field.
func (u *DocumentUpsert) ClearGroupKey() *DocumentUpsert {
	u.SetNull(document.FieldGroupKey)
	return u
}

// SetWarnings sets the "warnings" field.
func (u *DocumentUpsert) SetWarnings(v []string) *DocumentUpsert {
	u.Set(document.FieldWarnings, v)
	return u
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateWarnings() *DocumentUpsert {
	u.SetExcluded(document.FieldWarnings)
	return u
}

// ClearWarnings clears the value of the "warnings" field.
func (u *DocumentUpsert) ClearWarnings() *DocumentUpsert {
	u.SetNull(document.FieldWarnings)
	return u
}

// SetErrors sets the "errors" field.
func (u *DocumentUpsert) SetErrors(v []string) *DocumentUpsert {
	u.Set(document.FieldErrors, v)
	return u
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateErrors() *DocumentUpsert {
	u.SetExcluded(document.FieldErrors)
	return u
}

// ClearErrors clears the value of the "errors" field.
func (u *DocumentUpsert) ClearErrors() *DocumentUpsert {
	u.SetNull(document.FieldErrors)
	return u
}

// SetStatus sets the "status" field.
func (u *DocumentUpsert) SetStatus(v string) *DocumentUpsert {
	u.Set(document.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateStatus() *DocumentUpsert {
	u.SetExcluded(document.FieldStatus)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsert) SetCreatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCreatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsert) SetUpdatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUpdatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(document.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocType sets the "doc_type" field.
func (u *DocumentUpsertOne) SetDocType(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocType(v)
	})
}

// UpdateDocType sets the "doc_type" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateDocType() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocType()
	})
}

// SetDocNumber sets the "doc_number" field.
func (u *DocumentUpsertOne) SetDocNumber(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocNumber(v)
	})
}

// UpdateDocNumber sets the "doc_number" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateDocNumber() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocNumber()
	})
}

// ClearDocNumber clears the value of the "doc_number" field.
func (u *DocumentUpsertOne) ClearDocNumber() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDocNumber()
	})
}

// SetDocDate sets the "doc_date" field.
func (u *DocumentUpsertOne) SetDocDate(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocDate(v)
	})
}

// UpdateDocDate sets the "doc_date" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateDocDate() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocDate()
	})
}

// ClearDocDate clears the value of the "doc_date" field.
func (u *DocumentUpsertOne) ClearDocDate() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDocDate()
	})
}

// SetSupplierName sets the "supplier_name" field.
func (u *DocumentUpsertOne) SetSupplierName(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSupplierName(v)
	})
}

// UpdateSupplierName sets the "supplier_name" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSupplierName() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSupplierName()
	})
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (u *DocumentUpsertOne) ClearSupplierName() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSupplierName()
	})
}

// SetSupplierInn sets the "supplier_inn" field.
func (u *DocumentUpsertOne) SetSupplierInn(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSupplierInn(v)
	})
}

// UpdateSupplierInn sets the "supplier_inn" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSupplierInn() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSupplierInn()
	})
}

// ClearSupplierInn clears the value of the "supplier_inn" field.
func (u *DocumentUpsertOne) ClearSupplierInn() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSupplierInn()
	})
}

// SetBuyerName sets the "buyer_name" field.
func (u *DocumentUpsertOne) SetBuyerName(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetBuyerName(v)
	})
}

// UpdateBuyerName sets the "buyer_name" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateBuyerName() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateBuyerName()
	})
}

// ClearBuyerName clears the value of the "buyer_name" field.
func (u *DocumentUpsertOne) ClearBuyerName() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearBuyerName()
	})
}

// SetBuyerInn sets the "buyer_inn" field.
func (u *DocumentUpsertOne) SetBuyerInn(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetBuyerInn(v)
	})
}

// UpdateBuyerInn sets the "buyer_inn" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateBuyerInn() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateBuyerInn()
	})
}

// ClearBuyerInn clears the value of the "buyer_inn" field.
func (u *DocumentUpsertOne) ClearBuyerInn() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearBuyerInn()
	})
}

// SetItems sets the "items" field.
func (u *DocumentUpsertOne) SetItems(v []entity.LineItem) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetItems(v)
	})
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateItems() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateItems()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *DocumentUpsertOne) SetTotalAmount(v float64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *DocumentUpsertOne) AddTotalAmount(v float64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateTotalAmount() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetConfidence sets the "confidence" field.
func (u *DocumentUpsertOne) SetConfidence(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *DocumentUpsertOne) AddConfidence(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateConfidence() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateConfidence()
	})
}

// SetPageCount sets the "page_count" field.
func (u *DocumentUpsertOne) SetPageCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPageCount(v)
	})
}

// AddPageCount adds v to the "page_count" field.
func (u *DocumentUpsertOne) AddPageCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddPageCount(v)
	})
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdatePageCount() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePageCount()
	})
}

// SetIsMerged sets the "is_merged" field.
func (u *DocumentUpsertOne) SetIsMerged(v bool) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetIsMerged(v)
	})
}

// UpdateIsMerged sets the "is_merged" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateIsMerged() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateIsMerged()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *DocumentUpsertOne) SetNeedsReview(v bool) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateNeedsReview() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetGroupKey sets the "group_key" field.
func (u *DocumentUpsertOne) SetGroupKey(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetGroupKey(v)
	})
}

// UpdateGroupKey sets the "group_key" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateGroupKey() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateGroupKey()
	})
}

// ClearGroupKey clears the value of the "group_key" field.
func (u *DocumentUpsertOne) ClearGroupKey() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearGroupKey()
	})
}

// SetWarnings sets the "warnings" field.
func (u *DocumentUpsertOne) SetWarnings(v []string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetWarnings(v)
	})
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateWarnings() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateWarnings()
	})
}

// ClearWarnings clears the value of the "warnings" field.
func (u *DocumentUpsertOne) ClearWarnings() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearWarnings()
	})
}

// SetErrors sets the "errors" field.
func (u *DocumentUpsertOne) SetErrors(v []string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetErrors(v)
	})
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateErrors() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateErrors()
	})
}

// ClearErrors clears the value of the "errors" field.
func (u *DocumentUpsertOne) ClearErrors() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearErrors()
	})
}

// SetStatus sets the "status" field.
func (u *DocumentUpsertOne) SetStatus(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateStatus() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsertOne) SetCreatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCreatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertOne) SetUpdatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUpdatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentUpsertOne.ID is not supported by MySQL driver. Use DocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetDocType(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(document.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocType sets the "doc_type" field.
func (u *DocumentUpsertBulk) SetDocType(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocType(v)
	})
}

// UpdateDocType sets the "doc_type" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateDocType() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocType()
	})
}

// SetDocNumber sets the "doc_number" field.
func (u *DocumentUpsertBulk) SetDocNumber(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocNumber(v)
	})
}

// UpdateDocNumber sets the "doc_number" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateDocNumber() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocNumber()
	})
}

// ClearDocNumber clears the value of the "doc_number" field.
func (u *DocumentUpsertBulk) ClearDocNumber() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDocNumber()
	})
}

// SetDocDate sets the "doc_date" field.
func (u *DocumentUpsertBulk) SetDocDate(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDocDate(v)
	})
}

// UpdateDocDate sets the "doc_date" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateDocDate() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDocDate()
	})
}

// ClearDocDate clears the value of the "doc_date" field.
func (u *DocumentUpsertBulk) ClearDocDate() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDocDate()
	})
}

// SetSupplierName sets the "supplier_name" field.
func (u *DocumentUpsertBulk) SetSupplierName(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSupplierName(v)
	})
}

// UpdateSupplierName sets the "supplier_name" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSupplierName() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSupplierName()
	})
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (u *DocumentUpsertBulk) ClearSupplierName() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSupplierName()
	})
}

// SetSupplierInn sets the "supplier_inn" field.
func (u *DocumentUpsertBulk) SetSupplierInn(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSupplierInn(v)
	})
}

// UpdateSupplierInn sets the "supplier_inn" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSupplierInn() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSupplierInn()
	})
}

// ClearSupplierInn clears the value of the "supplier_inn" field.
func (u *DocumentUpsertBulk) ClearSupplierInn() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearSupplierInn()
	})
}

// SetBuyerName sets the "buyer_name" field.
func (u *DocumentUpsertBulk) SetBuyerName(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetBuyerName(v)
	})
}

// UpdateBuyerName sets the "buyer_name" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateBuyerName() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateBuyerName()
	})
}

// ClearBuyerName clears the value of the "buyer_name" field.
func (u *DocumentUpsertBulk) ClearBuyerName() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearBuyerName()
	})
}

// SetBuyerInn sets the "buyer_inn" field.
func (u *DocumentUpsertBulk) SetBuyerInn(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetBuyerInn(v)
	})
}

// UpdateBuyerInn sets the "buyer_inn" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateBuyerInn() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateBuyerInn()
	})
}

// ClearBuyerInn clears the value of the "buyer_inn" field.
func (u *DocumentUpsertBulk) ClearBuyerInn() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearBuyerInn()
	})
}

// SetItems sets the "items" field.
func (u *DocumentUpsertBulk) SetItems(v []entity.LineItem) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetItems(v)
	})
}

// UpdateItems sets the "items" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateItems() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateItems()
	})
}

// SetTotalAmount sets the "total_amount" field.
func (u *DocumentUpsertBulk) SetTotalAmount(v float64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTotalAmount(v)
	})
}

// AddTotalAmount adds v to the "total_amount" field.
func (u *DocumentUpsertBulk) AddTotalAmount(v float64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddTotalAmount(v)
	})
}

// UpdateTotalAmount sets the "total_amount" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateTotalAmount() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTotalAmount()
	})
}

// SetConfidence sets the "confidence" field.
func (u *DocumentUpsertBulk) SetConfidence(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *DocumentUpsertBulk) AddConfidence(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateConfidence() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateConfidence()
	})
}

// SetPageCount sets the "page_count" field.
func (u *DocumentUpsertBulk) SetPageCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPageCount(v)
	})
}

// AddPageCount adds v to the "page_count" field.
func (u *DocumentUpsertBulk) AddPageCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddPageCount(v)
	})
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdatePageCount() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePageCount()
	})
}

// SetIsMerged sets the "is_merged" field.
func (u *DocumentUpsertBulk) SetIsMerged(v bool) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetIsMerged(v)
	})
}

// UpdateIsMerged sets the "is_merged" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateIsMerged() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateIsMerged()
	})
}

// SetNeedsReview sets the "needs_review" field.
func (u *DocumentUpsertBulk) SetNeedsReview(v bool) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetNeedsReview(v)
	})
}

// UpdateNeedsReview sets the "needs_review" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateNeedsReview() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateNeedsReview()
	})
}

// SetGroupKey sets the "group_key" field.
func (u *DocumentUpsertBulk) SetGroupKey(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetGroupKey(v)
	})
}

// UpdateGroupKey sets the "group_key" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateGroupKey() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateGroupKey()
	})
}

// ClearGroupKey clears the value of the "group_key" field.
func (u *DocumentUpsertBulk) ClearGroupKey() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearGroupKey()
	})
}

// SetWarnings sets the "warnings" field.
func (u *DocumentUpsertBulk) SetWarnings(v []string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetWarnings(v)
	})
}

// UpdateWarnings sets the "warnings" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateWarnings() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateWarnings()
	})
}

// ClearWarnings clears the value of the "warnings" field.
func (u *DocumentUpsertBulk) ClearWarnings() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearWarnings()
	})
}

// SetErrors sets the "errors" field.
func (u *DocumentUpsertBulk) SetErrors(v []string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetErrors(v)
	})
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateErrors() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateErrors()
	})
}

// ClearErrors clears the value of the "errors" field.
func (u *DocumentUpsertBulk) ClearErrors() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearErrors()
	})
}

// SetStatus sets the "status" field.
func (u *DocumentUpsertBulk) SetStatus(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateStatus() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *DocumentUpsertBulk) SetCreatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCreatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertBulk) SetUpdatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUpdatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
