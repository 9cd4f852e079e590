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
	"github.com/paradize/restodocs/gen/ent/escalationitem"
	"github.com/paradize/restodocs/gen/ent/predicate"
	"github.com/paradize/restodocs/gen/ent/submissionrecord"
	"github.com/paradize/restodocs/internal/entity"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *DocumentUpdate) SetDocType(v string) *DocumentUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetDocNumber sets the "doc_number" field.
func (_u *DocumentUpdate) SetDocNumber(v string) *DocumentUpdate {
	_u.mutation.SetDocNumber(v)
	return _u
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocNumber(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocNumber(*v)
	}
	return _u
}

// ClearDocNumber clears the value of the "doc_number" field.
func (_u *DocumentUpdate) ClearDocNumber() *DocumentUpdate {
	_u.mutation.ClearDocNumber()
	return _u
}

// SetDocDate sets the "doc_date" field.
func (_u *DocumentUpdate) SetDocDate(v string) *DocumentUpdate {
	_u.mutation.SetDocDate(v)
	return _u
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocDate(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocDate(*v)
	}
	return _u
}

// ClearDocDate clears the value of the "doc_date" field.
func (_u *DocumentUpdate) ClearDocDate() *DocumentUpdate {
	_u.mutation.ClearDocDate()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *DocumentUpdate) SetSupplierName(v string) *DocumentUpdate {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSupplierName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *DocumentUpdate) ClearSupplierName() *DocumentUpdate {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetSupplierInn sets the "supplier_inn" field.
func (_u *DocumentUpdate) SetSupplierInn(v string) *DocumentUpdate {
	_u.mutation.SetSupplierInn(v)
	return _u
}

// SetNillableSupplierInn sets the "supplier_inn" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSupplierInn(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSupplierInn(*v)
	}
	return _u
}

// ClearSupplierInn clears the value of the "supplier_inn" field.
func (_u *DocumentUpdate) ClearSupplierInn() *DocumentUpdate {
	_u.mutation.ClearSupplierInn()
	return _u
}

// SetBuyerName sets the "buyer_name" field.
func (_u *DocumentUpdate) SetBuyerName(v string) *DocumentUpdate {
	_u.mutation.SetBuyerName(v)
	return _u
}

// SetNillableBuyerName sets the "buyer_name" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBuyerName(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetBuyerName(*v)
	}
	return _u
}

// ClearBuyerName clears the value of the "buyer_name" field.
func (_u *DocumentUpdate) ClearBuyerName() *DocumentUpdate {
	_u.mutation.ClearBuyerName()
	return _u
}

// SetBuyerInn sets the "buyer_inn" field.
func (_u *DocumentUpdate) SetBuyerInn(v string) *DocumentUpdate {
	_u.mutation.SetBuyerInn(v)
	return _u
}

// SetNillableBuyerInn sets the "buyer_inn" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBuyerInn(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetBuyerInn(*v)
	}
	return _u
}

// ClearBuyerInn clears the value of the "buyer_inn" field.
func (_u *DocumentUpdate) ClearBuyerInn() *DocumentUpdate {
	_u.mutation.ClearBuyerInn()
	return _u
}

// SetItems sets the "items" field.
func (_u *DocumentUpdate) SetItems(v []entity.LineItem) *DocumentUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *DocumentUpdate) AppendItems(v []entity.LineItem) *DocumentUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *DocumentUpdate) SetTotalAmount(v float64) *DocumentUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTotalAmount(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *DocumentUpdate) AddTotalAmount(v float64) *DocumentUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentUpdate) SetConfidence(v int) *DocumentUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableConfidence(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentUpdate) AddConfidence(v int) *DocumentUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdate) SetPageCount(v int) *DocumentUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePageCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdate) AddPageCount(v int) *DocumentUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetIsMerged sets the "is_merged" field.
func (_u *DocumentUpdate) SetIsMerged(v bool) *DocumentUpdate {
	_u.mutation.SetIsMerged(v)
	return _u
}

// SetNillableIsMerged sets the "is_merged" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableIsMerged(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetIsMerged(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *DocumentUpdate) SetNeedsReview(v bool) *DocumentUpdate {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableNeedsReview(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetGroupKey sets the "group_key" field.
func (_u *DocumentUpdate) SetGroupKey(v string) *DocumentUpdate {
	_u.mutation.SetGroupKey(v)
	return _u
}

// SetNillableGroupKey sets the "group_key" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableGroupKey(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetGroupKey(*v)
	}
	return _u
}

// ClearGroupKey clears the value of the "group_key" field.
func (_u *DocumentUpdate) ClearGroupKey() *DocumentUpdate {
	_u.mutation.ClearGroupKey()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *DocumentUpdate) SetWarnings(v []string) *DocumentUpdate {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *DocumentUpdate) AppendWarnings(v []string) *DocumentUpdate {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *DocumentUpdate) ClearWarnings() *DocumentUpdate {
	_u.mutation.ClearWarnings()
	return _u
}

// SetErrors sets the "errors" field.
func (_u *DocumentUpdate) SetErrors(v []string) *DocumentUpdate {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *DocumentUpdate) AppendErrors(v []string) *DocumentUpdate {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *DocumentUpdate) ClearErrors() *DocumentUpdate {
	_u.mutation.ClearErrors()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdate) SetStatus(v string) *DocumentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdate) SetCreatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCreatedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSubmissionIDs adds the "submissions" edge to the SubmissionRecord entity by IDs.
func (_u *DocumentUpdate) AddSubmissionIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the SubmissionRecord entity.
func (_u *DocumentUpdate) AddSubmissions(v ...*SubmissionRecord) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// AddEscalationIDs adds the "escalations" edge to the EscalationItem entity by IDs.
func (_u *DocumentUpdate) AddEscalationIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.AddEscalationIDs(ids...)
	return _u
}

// AddEscalations adds the "escalations" edges to the EscalationItem entity.
func (_u *DocumentUpdate) AddEscalations(v ...*EscalationItem) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEscalationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearSubmissions clears all "submissions" edges to the SubmissionRecord entity.
func (_u *DocumentUpdate) ClearSubmissions() *DocumentUpdate {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to SubmissionRecord entities by IDs.
func (_u *DocumentUpdate) RemoveSubmissionIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to SubmissionRecord entities.
func (_u *DocumentUpdate) RemoveSubmissions(v ...*SubmissionRecord) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// ClearEscalations clears all "escalations" edges to the EscalationItem entity.
func (_u *DocumentUpdate) ClearEscalations() *DocumentUpdate {
	_u.mutation.ClearEscalations()
	return _u
}

// RemoveEscalationIDs removes the "escalations" edge to EscalationItem entities by IDs.
func (_u *DocumentUpdate) RemoveEscalationIDs(ids ...uuid.UUID) *DocumentUpdate {
	_u.mutation.RemoveEscalationIDs(ids...)
	return _u
}

// RemoveEscalations removes "escalations" edges to EscalationItem entities.
func (_u *DocumentUpdate) RemoveEscalations(v ...*EscalationItem) *DocumentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEscalationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := document.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Document.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocNumber(); ok {
		_spec.SetField(document.FieldDocNumber, field.TypeString, value)
	}
	if _u.mutation.DocNumberCleared() {
		_spec.ClearField(document.FieldDocNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DocDate(); ok {
		_spec.SetField(document.FieldDocDate, field.TypeString, value)
	}
	if _u.mutation.DocDateCleared() {
		_spec.ClearField(document.FieldDocDate, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(document.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(document.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierInn(); ok {
		_spec.SetField(document.FieldSupplierInn, field.TypeString, value)
	}
	if _u.mutation.SupplierInnCleared() {
		_spec.ClearField(document.FieldSupplierInn, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerName(); ok {
		_spec.SetField(document.FieldBuyerName, field.TypeString, value)
	}
	if _u.mutation.BuyerNameCleared() {
		_spec.ClearField(document.FieldBuyerName, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerInn(); ok {
		_spec.SetField(document.FieldBuyerInn, field.TypeString, value)
	}
	if _u.mutation.BuyerInnCleared() {
		_spec.ClearField(document.FieldBuyerInn, field.TypeString)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(document.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(document.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(document.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(document.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(document.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsMerged(); ok {
		_spec.SetField(document.FieldIsMerged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(document.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GroupKey(); ok {
		_spec.SetField(document.FieldGroupKey, field.TypeString, value)
	}
	if _u.mutation.GroupKeyCleared() {
		_spec.ClearField(document.FieldGroupKey, field.TypeString)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(document.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(document.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(document.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(document.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EscalationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEscalationsIDs(); len(nodes) > 0 && !_u.mutation.EscalationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EscalationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetDocType sets the "doc_type" field.
func (_u *DocumentUpdateOne) SetDocType(v string) *DocumentUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetDocNumber sets the "doc_number" field.
func (_u *DocumentUpdateOne) SetDocNumber(v string) *DocumentUpdateOne {
	_u.mutation.SetDocNumber(v)
	return _u
}

// SetNillableDocNumber sets the "doc_number" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocNumber(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocNumber(*v)
	}
	return _u
}

// ClearDocNumber clears the value of the "doc_number" field.
func (_u *DocumentUpdateOne) ClearDocNumber() *DocumentUpdateOne {
	_u.mutation.ClearDocNumber()
	return _u
}

// SetDocDate sets the "doc_date" field.
func (_u *DocumentUpdateOne) SetDocDate(v string) *DocumentUpdateOne {
	_u.mutation.SetDocDate(v)
	return _u
}

// SetNillableDocDate sets the "doc_date" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocDate(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocDate(*v)
	}
	return _u
}

// ClearDocDate clears the value of the "doc_date" field.
func (_u *DocumentUpdateOne) ClearDocDate() *DocumentUpdateOne {
	_u.mutation.ClearDocDate()
	return _u
}

// SetSupplierName sets the "supplier_name" field.
func (_u *DocumentUpdateOne) SetSupplierName(v string) *DocumentUpdateOne {
	_u.mutation.SetSupplierName(v)
	return _u
}

// SetNillableSupplierName sets the "supplier_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSupplierName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSupplierName(*v)
	}
	return _u
}

// ClearSupplierName clears the value of the "supplier_name" field.
func (_u *DocumentUpdateOne) ClearSupplierName() *DocumentUpdateOne {
	_u.mutation.ClearSupplierName()
	return _u
}

// SetSupplierInn sets the "supplier_inn" field.
func (_u *DocumentUpdateOne) SetSupplierInn(v string) *DocumentUpdateOne {
	_u.mutation.SetSupplierInn(v)
	return _u
}

// SetNillableSupplierInn sets the "supplier_inn" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSupplierInn(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSupplierInn(*v)
	}
	return _u
}

// ClearSupplierInn clears the value of the "supplier_inn" field.
func (_u *DocumentUpdateOne) ClearSupplierInn() *DocumentUpdateOne {
	_u.mutation.ClearSupplierInn()
	return _u
}

// SetBuyerName sets the "buyer_name" field.
func (_u *DocumentUpdateOne) SetBuyerName(v string) *DocumentUpdateOne {
	_u.mutation.SetBuyerName(v)
	return _u
}

// SetNillableBuyerName sets the "buyer_name" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBuyerName(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetBuyerName(*v)
	}
	return _u
}

// ClearBuyerName clears the value of the "buyer_name" field.
func (_u *DocumentUpdateOne) ClearBuyerName() *DocumentUpdateOne {
	_u.mutation.ClearBuyerName()
	return _u
}

// SetBuyerInn sets the "buyer_inn" field.
func (_u *DocumentUpdateOne) SetBuyerInn(v string) *DocumentUpdateOne {
	_u.mutation.SetBuyerInn(v)
	return _u
}

// SetNillableBuyerInn sets the "buyer_inn" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBuyerInn(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetBuyerInn(*v)
	}
	return _u
}

// ClearBuyerInn clears the value of the "buyer_inn" field.
func (_u *DocumentUpdateOne) ClearBuyerInn() *DocumentUpdateOne {
	_u.mutation.ClearBuyerInn()
	return _u
}

// SetItems sets the "items" field.
func (_u *DocumentUpdateOne) SetItems(v []entity.LineItem) *DocumentUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *DocumentUpdateOne) AppendItems(v []entity.LineItem) *DocumentUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *DocumentUpdateOne) SetTotalAmount(v float64) *DocumentUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTotalAmount(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *DocumentUpdateOne) AddTotalAmount(v float64) *DocumentUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *DocumentUpdateOne) SetConfidence(v int) *DocumentUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableConfidence(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *DocumentUpdateOne) AddConfidence(v int) *DocumentUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdateOne) SetPageCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePageCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdateOne) AddPageCount(v int) *DocumentUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetIsMerged sets the "is_merged" field.
func (_u *DocumentUpdateOne) SetIsMerged(v bool) *DocumentUpdateOne {
	_u.mutation.SetIsMerged(v)
	return _u
}

// SetNillableIsMerged sets the "is_merged" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableIsMerged(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetIsMerged(*v)
	}
	return _u
}

// SetNeedsReview sets the "needs_review" field.
func (_u *DocumentUpdateOne) SetNeedsReview(v bool) *DocumentUpdateOne {
	_u.mutation.SetNeedsReview(v)
	return _u
}

// SetNillableNeedsReview sets the "needs_review" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableNeedsReview(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetNeedsReview(*v)
	}
	return _u
}

// SetGroupKey sets the "group_key" field.
func (_u *DocumentUpdateOne) SetGroupKey(v string) *DocumentUpdateOne {
	_u.mutation.SetGroupKey(v)
	return _u
}

// SetNillableGroupKey sets the "group_key" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableGroupKey(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetGroupKey(*v)
	}
	return _u
}

// ClearGroupKey clears the value of the "group_key" field.
func (_u *DocumentUpdateOne) ClearGroupKey() *DocumentUpdateOne {
	_u.mutation.ClearGroupKey()
	return _u
}

// SetWarnings sets the "warnings" field.
func (_u *DocumentUpdateOne) SetWarnings(v []string) *DocumentUpdateOne {
	_u.mutation.SetWarnings(v)
	return _u
}

// AppendWarnings appends value to the "warnings" field.
func (_u *DocumentUpdateOne) AppendWarnings(v []string) *DocumentUpdateOne {
	_u.mutation.AppendWarnings(v)
	return _u
}

// ClearWarnings clears the value of the "warnings" field.
func (_u *DocumentUpdateOne) ClearWarnings() *DocumentUpdateOne {
	_u.mutation.ClearWarnings()
	return _u
}

// SetErrors sets the "errors" field.
func (_u *DocumentUpdateOne) SetErrors(v []string) *DocumentUpdateOne {
	_u.mutation.SetErrors(v)
	return _u
}

// AppendErrors appends value to the "errors" field.
func (_u *DocumentUpdateOne) AppendErrors(v []string) *DocumentUpdateOne {
	_u.mutation.AppendErrors(v)
	return _u
}

// ClearErrors clears the value of the "errors" field.
func (_u *DocumentUpdateOne) ClearErrors() *DocumentUpdateOne {
	_u.mutation.ClearErrors()
	return _u
}

// SetStatus sets the "status" field.
func (_u *DocumentUpdateOne) SetStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *DocumentUpdateOne) SetCreatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCreatedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddSubmissionIDs adds the "submissions" edge to the SubmissionRecord entity by IDs.
func (_u *DocumentUpdateOne) AddSubmissionIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddSubmissionIDs(ids...)
	return _u
}

// AddSubmissions adds the "submissions" edges to the SubmissionRecord entity.
func (_u *DocumentUpdateOne) AddSubmissions(v ...*SubmissionRecord) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSubmissionIDs(ids...)
}

// AddEscalationIDs adds the "escalations" edge to the EscalationItem entity by IDs.
func (_u *DocumentUpdateOne) AddEscalationIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.AddEscalationIDs(ids...)
	return _u
}

// AddEscalations adds the "escalations" edges to the EscalationItem entity.
func (_u *DocumentUpdateOne) AddEscalations(v ...*EscalationItem) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEscalationIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearSubmissions clears all "submissions" edges to the SubmissionRecord entity.
func (_u *DocumentUpdateOne) ClearSubmissions() *DocumentUpdateOne {
	_u.mutation.ClearSubmissions()
	return _u
}

// RemoveSubmissionIDs removes the "submissions" edge to SubmissionRecord entities by IDs.
func (_u *DocumentUpdateOne) RemoveSubmissionIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveSubmissionIDs(ids...)
	return _u
}

// RemoveSubmissions removes "submissions" edges to SubmissionRecord entities.
func (_u *DocumentUpdateOne) RemoveSubmissions(v ...*SubmissionRecord) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSubmissionIDs(ids...)
}

// ClearEscalations clears all "escalations" edges to the EscalationItem entity.
func (_u *DocumentUpdateOne) ClearEscalations() *DocumentUpdateOne {
	_u.mutation.ClearEscalations()
	return _u
}

// RemoveEscalationIDs removes the "escalations" edge to EscalationItem entities by IDs.
func (_u *DocumentUpdateOne) RemoveEscalationIDs(ids ...uuid.UUID) *DocumentUpdateOne {
	_u.mutation.RemoveEscalationIDs(ids...)
	return _u
}

// RemoveEscalations removes "escalations" edges to EscalationItem entities.
func (_u *DocumentUpdateOne) RemoveEscalations(v ...*EscalationItem) *DocumentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEscalationIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := document.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Document.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(document.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocNumber(); ok {
		_spec.SetField(document.FieldDocNumber, field.TypeString, value)
	}
	if _u.mutation.DocNumberCleared() {
		_spec.ClearField(document.FieldDocNumber, field.TypeString)
	}
	if value, ok := _u.mutation.DocDate(); ok {
		_spec.SetField(document.FieldDocDate, field.TypeString, value)
	}
	if _u.mutation.DocDateCleared() {
		_spec.ClearField(document.FieldDocDate, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierName(); ok {
		_spec.SetField(document.FieldSupplierName, field.TypeString, value)
	}
	if _u.mutation.SupplierNameCleared() {
		_spec.ClearField(document.FieldSupplierName, field.TypeString)
	}
	if value, ok := _u.mutation.SupplierInn(); ok {
		_spec.SetField(document.FieldSupplierInn, field.TypeString, value)
	}
	if _u.mutation.SupplierInnCleared() {
		_spec.ClearField(document.FieldSupplierInn, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerName(); ok {
		_spec.SetField(document.FieldBuyerName, field.TypeString, value)
	}
	if _u.mutation.BuyerNameCleared() {
		_spec.ClearField(document.FieldBuyerName, field.TypeString)
	}
	if value, ok := _u.mutation.BuyerInn(); ok {
		_spec.SetField(document.FieldBuyerInn, field.TypeString, value)
	}
	if _u.mutation.BuyerInnCleared() {
		_spec.ClearField(document.FieldBuyerInn, field.TypeString)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(document.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(document.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(document.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(document.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(document.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsMerged(); ok {
		_spec.SetField(document.FieldIsMerged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.NeedsReview(); ok {
		_spec.SetField(document.FieldNeedsReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.GroupKey(); ok {
		_spec.SetField(document.FieldGroupKey, field.TypeString, value)
	}
	if _u.mutation.GroupKeyCleared() {
		_spec.ClearField(document.FieldGroupKey, field.TypeString)
	}
	if value, ok := _u.mutation.Warnings(); ok {
		_spec.SetField(document.FieldWarnings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWarnings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldWarnings, value)
		})
	}
	if _u.mutation.WarningsCleared() {
		_spec.ClearField(document.FieldWarnings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(document.FieldErrors, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrors(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, document.FieldErrors, value)
		})
	}
	if _u.mutation.ErrorsCleared() {
		_spec.ClearField(document.FieldErrors, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.SubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EscalationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEscalationsIDs(); len(nodes) > 0 && !_u.mutation.EscalationsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EscalationsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
