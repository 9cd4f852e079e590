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
	"github.com/paradize/restodocs/gen/ent/mappingentry"
	"github.com/paradize/restodocs/gen/ent/predicate"
)

// MappingEntryUpdate is the builder for updating MappingEntry entities.
type MappingEntryUpdate struct {
	config
	hooks    []Hook
	mutation *MappingEntryMutation
}

// Where appends a list predicates to the MappingEntryUpdate builder.
func (_u *MappingEntryUpdate) Where(ps ...predicate.MappingEntry) *MappingEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRawName sets the "raw_name" field.
func (_u *MappingEntryUpdate) SetRawName(v string) *MappingEntryUpdate {
	_u.mutation.SetRawName(v)
	return _u
}

// SetNillableRawName sets the "raw_name" field if the given value is not nil.
func (_u *MappingEntryUpdate) SetNillableRawName(v *string) *MappingEntryUpdate {
	if v != nil {
		_u.SetRawName(*v)
	}
	return _u
}

// SetCorrectedName sets the "corrected_name" field.
func (_u *MappingEntryUpdate) SetCorrectedName(v string) *MappingEntryUpdate {
	_u.mutation.SetCorrectedName(v)
	return _u
}

// SetNillableCorrectedName sets the "corrected_name" field if the given value is not nil.
func (_u *MappingEntryUpdate) SetNillableCorrectedName(v *string) *MappingEntryUpdate {
	if v != nil {
		_u.SetCorrectedName(*v)
	}
	return _u
}

// SetCatalogID sets the "catalog_id" field.
func (_u *MappingEntryUpdate) SetCatalogID(v uuid.UUID) *MappingEntryUpdate {
	_u.mutation.SetCatalogID(v)
	return _u
}

// SetNillableCatalogID sets the "catalog_id" field if the given value is not nil.
func (_u *MappingEntryUpdate) SetNillableCatalogID(v *uuid.UUID) *MappingEntryUpdate {
	if v != nil {
		_u.SetCatalogID(*v)
	}
	return _u
}

// SetCatalogType sets the "catalog_type" field.
func (_u *MappingEntryUpdate) SetCatalogType(v string) *MappingEntryUpdate {
	_u.mutation.SetCatalogType(v)
	return _u
}

// SetNillableCatalogType sets the "catalog_type" field if the given value is not nil.
func (_u *MappingEntryUpdate) SetNillableCatalogType(v *string) *MappingEntryUpdate {
	if v != nil {
		_u.SetCatalogType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MappingEntryUpdate) SetConfidence(v int) *MappingEntryUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MappingEntryUpdate) SetNillableConfidence(v *int) *MappingEntryUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MappingEntryUpdate) AddConfidence(v int) *MappingEntryUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *MappingEntryUpdate) SetSource(v string) *MappingEntryUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MappingEntryUpdate) SetNillableSource(v *string) *MappingEntryUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *MappingEntryUpdate) SetUseCount(v int) *MappingEntryUpdate {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *MappingEntryUpdate) SetNillableUseCount(v *int) *MappingEntryUpdate {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *MappingEntryUpdate) AddUseCount(v int) *MappingEntryUpdate {
	_u.mutation.AddUseCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *MappingEntryUpdate) SetLastUsedAt(v time.Time) *MappingEntryUpdate {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *MappingEntryUpdate) SetNillableLastUsedAt(v *time.Time) *MappingEntryUpdate {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MappingEntryUpdate) SetCreatedAt(v time.Time) *MappingEntryUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MappingEntryUpdate) SetNillableCreatedAt(v *time.Time) *MappingEntryUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the MappingEntryMutation object of the builder.
func (_u *MappingEntryUpdate) Mutation() *MappingEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MappingEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MappingEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MappingEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MappingEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MappingEntryUpdate) check() error {
	if v, ok := _u.mutation.RawName(); ok {
		if err := mappingentry.RawNameValidator(v); err != nil {
			return &ValidationError{Name: "raw_name", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.raw_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectedName(); ok {
		if err := mappingentry.CorrectedNameValidator(v); err != nil {
			return &ValidationError{Name: "corrected_name", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.corrected_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogType(); ok {
		if err := mappingentry.CatalogTypeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_type", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.catalog_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := mappingentry.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := mappingentry.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.source": %w`, err)}
		}
	}
	return nil
}

func (_u *MappingEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mappingentry.Table, mappingentry.Columns, sqlgraph.NewFieldSpec(mappingentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RawName(); ok {
		_spec.SetField(mappingentry.FieldRawName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedName(); ok {
		_spec.SetField(mappingentry.FieldCorrectedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CatalogID(); ok {
		_spec.SetField(mappingentry.FieldCatalogID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CatalogType(); ok {
		_spec.SetField(mappingentry.FieldCatalogType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(mappingentry.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(mappingentry.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(mappingentry.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(mappingentry.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(mappingentry.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(mappingentry.FieldLastUsedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mappingentry.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mappingentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MappingEntryUpdateOne is the builder for updating a single MappingEntry entity.
type MappingEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MappingEntryMutation
}

// SetRawName sets the "raw_name" field.
func (_u *MappingEntryUpdateOne) SetRawName(v string) *MappingEntryUpdateOne {
	_u.mutation.SetRawName(v)
	return _u
}

// SetNillableRawName sets the "raw_name" field if the given value is not nil.
func (_u *MappingEntryUpdateOne) SetNillableRawName(v *string) *MappingEntryUpdateOne {
	if v != nil {
		_u.SetRawName(*v)
	}
	return _u
}

// SetCorrectedName sets the "corrected_name" field.
func (_u *MappingEntryUpdateOne) SetCorrectedName(v string) *MappingEntryUpdateOne {
	_u.mutation.SetCorrectedName(v)
	return _u
}

// SetNillableCorrectedName sets the "corrected_name" field if the given value is not nil.
func (_u *MappingEntryUpdateOne) SetNillableCorrectedName(v *string) *MappingEntryUpdateOne {
	if v != nil {
		_u.SetCorrectedName(*v)
	}
	return _u
}

// SetCatalogID sets the "catalog_id" field.
func (_u *MappingEntryUpdateOne) SetCatalogID(v uuid.UUID) *MappingEntryUpdateOne {
	_u.mutation.SetCatalogID(v)
	return _u
}

// SetNillableCatalogID sets the "catalog_id" field if the given value is not nil.
func (_u *MappingEntryUpdateOne) SetNillableCatalogID(v *uuid.UUID) *MappingEntryUpdateOne {
	if v != nil {
		_u.SetCatalogID(*v)
	}
	return _u
}

// SetCatalogType sets the "catalog_type" field.
func (_u *MappingEntryUpdateOne) SetCatalogType(v string) *MappingEntryUpdateOne {
	_u.mutation.SetCatalogType(v)
	return _u
}

// SetNillableCatalogType sets the "catalog_type" field if the given value is not nil.
func (_u *MappingEntryUpdateOne) SetNillableCatalogType(v *string) *MappingEntryUpdateOne {
	if v != nil {
		_u.SetCatalogType(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MappingEntryUpdateOne) SetConfidence(v int) *MappingEntryUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MappingEntryUpdateOne) SetNillableConfidence(v *int) *MappingEntryUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MappingEntryUpdateOne) AddConfidence(v int) *MappingEntryUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *MappingEntryUpdateOne) SetSource(v string) *MappingEntryUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MappingEntryUpdateOne) SetNillableSource(v *string) *MappingEntryUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetUseCount sets the "use_count" field.
func (_u *MappingEntryUpdateOne) SetUseCount(v int) *MappingEntryUpdateOne {
	_u.mutation.ResetUseCount()
	_u.mutation.SetUseCount(v)
	return _u
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_u *MappingEntryUpdateOne) SetNillableUseCount(v *int) *MappingEntryUpdateOne {
	if v != nil {
		_u.SetUseCount(*v)
	}
	return _u
}

// AddUseCount adds value to the "use_count" field.
func (_u *MappingEntryUpdateOne) AddUseCount(v int) *MappingEntryUpdateOne {
	_u.mutation.AddUseCount(v)
	return _u
}

// SetLastUsedAt sets the "last_used_at" field.
func (_u *MappingEntryUpdateOne) SetLastUsedAt(v time.Time) *MappingEntryUpdateOne {
	_u.mutation.SetLastUsedAt(v)
	return _u
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_u *MappingEntryUpdateOne) SetNillableLastUsedAt(v *time.Time) *MappingEntryUpdateOne {
	if v != nil {
		_u.SetLastUsedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MappingEntryUpdateOne) SetCreatedAt(v time.Time) *MappingEntryUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MappingEntryUpdateOne) SetNillableCreatedAt(v *time.Time) *MappingEntryUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the MappingEntryMutation object of the builder.
func (_u *MappingEntryUpdateOne) Mutation() *MappingEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the MappingEntryUpdate builder.
func (_u *MappingEntryUpdateOne) Where(ps ...predicate.MappingEntry) *MappingEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MappingEntryUpdateOne) Select(field string, fields ...string) *MappingEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MappingEntry entity.
func (_u *MappingEntryUpdateOne) Save(ctx context.Context) (*MappingEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MappingEntryUpdateOne) SaveX(ctx context.Context) *MappingEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MappingEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MappingEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MappingEntryUpdateOne) check() error {
	if v, ok := _u.mutation.RawName(); ok {
		if err := mappingentry.RawNameValidator(v); err != nil {
			return &ValidationError{Name: "raw_name", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.raw_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectedName(); ok {
		if err := mappingentry.CorrectedNameValidator(v); err != nil {
			return &ValidationError{Name: "corrected_name", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.corrected_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CatalogType(); ok {
		if err := mappingentry.CatalogTypeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_type", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.catalog_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := mappingentry.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.confidence": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := mappingentry.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.source": %w`, err)}
		}
	}
	return nil
}

func (_u *MappingEntryUpdateOne) sqlSave(ctx context.Context) (_node *MappingEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mappingentry.Table, mappingentry.Columns, sqlgraph.NewFieldSpec(mappingentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MappingEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mappingentry.FieldID)
		for _, f := range fields {
			if !mappingentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mappingentry.FieldID {
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
		_spec.SetField(mappingentry.FieldRawName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectedName(); ok {
		_spec.SetField(mappingentry.FieldCorrectedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CatalogID(); ok {
		_spec.SetField(mappingentry.FieldCatalogID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.CatalogType(); ok {
		_spec.SetField(mappingentry.FieldCatalogType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(mappingentry.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(mappingentry.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(mappingentry.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.UseCount(); ok {
		_spec.SetField(mappingentry.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUseCount(); ok {
		_spec.AddField(mappingentry.FieldUseCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUsedAt(); ok {
		_spec.SetField(mappingentry.FieldLastUsedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mappingentry.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &MappingEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mappingentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
