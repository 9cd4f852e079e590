// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/paradize/restodocs/gen/ent/document"
	"github.com/paradize/restodocs/gen/ent/escalationitem"
	"github.com/paradize/restodocs/gen/ent/predicate"
)

// EscalationItemUpdate is the builder for updating EscalationItem entities.
type EscalationItemUpdate struct {
	config
	hooks    []Hook
	mutation *EscalationItemMutation
}

// Where appends a list predicates to the EscalationItemUpdate builder.
func (_u *EscalationItemUpdate) Where(ps ...predicate.EscalationItem) *EscalationItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *EscalationItemUpdate) SetDocumentID(v uuid.UUID) *EscalationItemUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *EscalationItemUpdate) SetNillableDocumentID(v *uuid.UUID) *EscalationItemUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetRawName sets the "raw_name" field.
func (_u *EscalationItemUpdate) SetRawName(v string) *EscalationItemUpdate {
	_u.mutation.SetRawName(v)
	return _u
}

// SetNillableRawName sets the "raw_name" field if the given value is not nil.
func (_u *EscalationItemUpdate) SetNillableRawName(v *string) *EscalationItemUpdate {
	if v != nil {
		_u.SetRawName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *EscalationItemUpdate) SetNormalizedName(v string) *EscalationItemUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *EscalationItemUpdate) SetNillableNormalizedName(v *string) *EscalationItemUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetCatalogType sets the "catalog_type" field.
func (_u *EscalationItemUpdate) SetCatalogType(v string) *EscalationItemUpdate {
	_u.mutation.SetCatalogType(v)
	return _u
}

// SetNillableCatalogType sets the "catalog_type" field if the given value is not nil.
func (_u *EscalationItemUpdate) SetNillableCatalogType(v *string) *EscalationItemUpdate {
	if v != nil {
		_u.SetCatalogType(*v)
	}
	return _u
}

// SetResolvedID sets the "resolved_id" field.
func (_u *EscalationItemUpdate) SetResolvedID(v uuid.UUID) *EscalationItemUpdate {
	_u.mutation.SetResolvedID(v)
	return _u
}

// SetNillableResolvedID sets the "resolved_id" field if the given value is not nil.
func (_u *EscalationItemUpdate) SetNillableResolvedID(v *uuid.UUID) *EscalationItemUpdate {
	if v != nil {
		_u.SetResolvedID(*v)
	}
	return _u
}

// ClearResolvedID clears the value of the "resolved_id" field.
func (_u *EscalationItemUpdate) ClearResolvedID() *EscalationItemUpdate {
	_u.mutation.ClearResolvedID()
	return _u
}

// SetResolvedName sets the "resolved_name" field.
func (_u *EscalationItemUpdate) SetResolvedName(v string) *EscalationItemUpdate {
	_u.mutation.SetResolvedName(v)
	return _u
}

// SetNillableResolvedName sets the "resolved_name" field if the given value is not nil.
func (_u *EscalationItemUpdate) SetNillableResolvedName(v *string) *EscalationItemUpdate {
	if v != nil {
		_u.SetResolvedName(*v)
	}
	return _u
}

// ClearResolvedName clears the value of the "resolved_name" field.
func (_u *EscalationItemUpdate) ClearResolvedName() *EscalationItemUpdate {
	_u.mutation.ClearResolvedName()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *EscalationItemUpdate) SetResolved(v bool) *EscalationItemUpdate {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *EscalationItemUpdate) SetNillableResolved(v *bool) *EscalationItemUpdate {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EscalationItemUpdate) SetCreatedAt(v time.Time) *EscalationItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EscalationItemUpdate) SetNillableCreatedAt(v *time.Time) *EscalationItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *EscalationItemUpdate) SetDocument(v *Document) *EscalationItemUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the EscalationItemMutation object of the builder.
func (_u *EscalationItemUpdate) Mutation() *EscalationItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *EscalationItemUpdate) ClearDocument() *EscalationItemUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EscalationItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EscalationItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EscalationItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EscalationItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EscalationItemUpdate) check() error {
	if v, ok := _u.mutation.RawName(); ok {
		if err := escalationitem.RawNameValidator(v); err != nil {
			return &ValidationError{Name: "raw_name", err: fmt.Errorf(`ent: validator failed for field "EscalationItem.raw_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := escalationitem.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "EscalationItem.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogType(); ok {
		if err := escalationitem.CatalogTypeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_type", err: fmt.Errorf(`ent: validator failed for field "EscalationItem.catalog_type": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EscalationItem.document"`)
	}
	return nil
}

func (_u *EscalationItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(escalationitem.Table, escalationitem.Columns, sqlgraph.NewFieldSpec(escalationitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawName(); ok {
		_spec.SetField(escalationitem.FieldRawName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(escalationitem.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CatalogType(); ok {
		_spec.SetField(escalationitem.FieldCatalogType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedID(); ok {
		_spec.SetField(escalationitem.FieldResolvedID, field.TypeUUID, value)
	}
	if _u.mutation.ResolvedIDCleared() {
		_spec.ClearField(escalationitem.FieldResolvedID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ResolvedName(); ok {
		_spec.SetField(escalationitem.FieldResolvedName, field.TypeString, value)
	}
	if _u.mutation.ResolvedNameCleared() {
		_spec.ClearField(escalationitem.FieldResolvedName, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(escalationitem.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(escalationitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   escalationitem.DocumentTable,
			Columns: []string{escalationitem.DocumentColumn},
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
			Table:   escalationitem.DocumentTable,
			Columns: []string{escalationitem.DocumentColumn},
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
			err = &NotFoundError{escalationitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EscalationItemUpdateOne is the builder for updating a single EscalationItem entity.
type EscalationItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EscalationItemMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *EscalationItemUpdateOne) SetDocumentID(v uuid.UUID) *EscalationItemUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *EscalationItemUpdateOne) SetNillableDocumentID(v *uuid.UUID) *EscalationItemUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetRawName sets the "raw_name" field.
func (_u *EscalationItemUpdateOne) SetRawName(v string) *EscalationItemUpdateOne {
	_u.mutation.SetRawName(v)
	return _u
}

// SetNillableRawName sets the "raw_name" field if the given value is not nil.
func (_u *EscalationItemUpdateOne) SetNillableRawName(v *string) *EscalationItemUpdateOne {
	if v != nil {
		_u.SetRawName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *EscalationItemUpdateOne) SetNormalizedName(v string) *EscalationItemUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *EscalationItemUpdateOne) SetNillableNormalizedName(v *string) *EscalationItemUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetCatalogType sets the "catalog_type" field.
func (_u *EscalationItemUpdateOne) SetCatalogType(v string) *EscalationItemUpdateOne {
	_u.mutation.SetCatalogType(v)
	return _u
}

// SetNillableCatalogType sets the "catalog_type" field if the given value is not nil.
func (_u *EscalationItemUpdateOne) SetNillableCatalogType(v *string) *EscalationItemUpdateOne {
	if v != nil {
		_u.SetCatalogType(*v)
	}
	return _u
}

// SetResolvedID sets the "resolved_id" field.
func (_u *EscalationItemUpdateOne) SetResolvedID(v uuid.UUID) *EscalationItemUpdateOne {
	_u.mutation.SetResolvedID(v)
	return _u
}

// SetNillableResolvedID sets the "resolved_id" field if the given value is not nil.
func (_u *EscalationItemUpdateOne) SetNillableResolvedID(v *uuid.UUID) *EscalationItemUpdateOne {
	if v != nil {
		_u.SetResolvedID(*v)
	}
	return _u
}

// ClearResolvedID clears the value of the "resolved_id" field.
func (_u *EscalationItemUpdateOne) ClearResolvedID() *EscalationItemUpdateOne {
	_u.mutation.ClearResolvedID()
	return _u
}

// SetResolvedName sets the "resolved_name" field.
func (_u *EscalationItemUpdateOne) SetResolvedName(v string) *EscalationItemUpdateOne {
	_u.mutation.SetResolvedName(v)
	return _u
}

// SetNillableResolvedName sets the "resolved_name" field if the given value is not nil.
func (_u *EscalationItemUpdateOne) SetNillableResolvedName(v *string) *EscalationItemUpdateOne {
	if v != nil {
		_u.SetResolvedName(*v)
	}
	return _u
}

// ClearResolvedName clears the value of the "resolved_name" field.
func (_u *EscalationItemUpdateOne) ClearResolvedName() *EscalationItemUpdateOne {
	_u.mutation.ClearResolvedName()
	return _u
}

// SetResolved sets the "resolved" field.
func (_u *EscalationItemUpdateOne) SetResolved(v bool) *EscalationItemUpdateOne {
	_u.mutation.SetResolved(v)
	return _u
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_u *EscalationItemUpdateOne) SetNillableResolved(v *bool) *EscalationItemUpdateOne {
	if v != nil {
		_u.SetResolved(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *EscalationItemUpdateOne) SetCreatedAt(v time.Time) *EscalationItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *EscalationItemUpdateOne) SetNillableCreatedAt(v *time.Time) *EscalationItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *EscalationItemUpdateOne) SetDocument(v *Document) *EscalationItemUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the EscalationItemMutation object of the builder.
func (_u *EscalationItemUpdateOne) Mutation() *EscalationItemMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *EscalationItemUpdateOne) ClearDocument() *EscalationItemUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the EscalationItemUpdate builder.
func (_u *EscalationItemUpdateOne) Where(ps ...predicate.EscalationItem) *EscalationItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EscalationItemUpdateOne) Select(field string, fields ...string) *EscalationItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EscalationItem entity.
func (_u *EscalationItemUpdateOne) Save(ctx context.Context) (*EscalationItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EscalationItemUpdateOne) SaveX(ctx context.Context) *EscalationItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EscalationItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EscalationItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EscalationItemUpdateOne) check() error {
	if v, ok := _u.mutation.RawName(); ok {
		if err := escalationitem.RawNameValidator(v); err != nil {
			return &ValidationError{Name: "raw_name", err: fmt.Errorf(`ent: validator failed for field "EscalationItem.raw_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NormalizedName(); ok {
		if err := escalationitem.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "EscalationItem.normalized_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogType(); ok {
		if err := escalationitem.CatalogTypeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_type", err: fmt.Errorf(`ent: validator failed for field "EscalationItem.catalog_type": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EscalationItem.document"`)
	}
	return nil
}

func (_u *EscalationItemUpdateOne) sqlSave(ctx context.Context) (_node *EscalationItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(escalationitem.Table, escalationitem.Columns, sqlgraph.NewFieldSpec(escalationitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EscalationItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, escalationitem.FieldID)
		for _, f := range fields {
			if !escalationitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != escalationitem.FieldID {
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
	if value, ok := _u.mutation.RawName(); ok {
		_spec.SetField(escalationitem.FieldRawName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(escalationitem.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CatalogType(); ok {
		_spec.SetField(escalationitem.FieldCatalogType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolvedID(); ok {
		_spec.SetField(escalationitem.FieldResolvedID, field.TypeUUID, value)
	}
	if _u.mutation.ResolvedIDCleared() {
		_spec.ClearField(escalationitem.FieldResolvedID, field.TypeUUID)
	}
	if value, ok := _u.mutation.ResolvedName(); ok {
		_spec.SetField(escalationitem.FieldResolvedName, field.TypeString, value)
	}
	if _u.mutation.ResolvedNameCleared() {
		_spec.ClearField(escalationitem.FieldResolvedName, field.TypeString)
	}
	if value, ok := _u.mutation.Resolved(); ok {
		_spec.SetField(escalationitem.FieldResolved, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(escalationitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   escalationitem.DocumentTable,
			Columns: []string{escalationitem.DocumentColumn},
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
			Table:   escalationitem.DocumentTable,
			Columns: []string{escalationitem.DocumentColumn},
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
	_node = &EscalationItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{escalationitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
