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
	"github.com/paradize/restodocs/gen/ent/mappingentry"
)

// MappingEntryCreate is the builder for creating a MappingEntry entity.
type MappingEntryCreate struct {
	config
	mutation *MappingEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRawName sets the "raw_name" field.
func (_c *MappingEntryCreate) SetRawName(v string) *MappingEntryCreate {
	_c.mutation.SetRawName(v)
	return _c
}

// SetCorrectedName sets the "corrected_name" field.
func (_c *MappingEntryCreate) SetCorrectedName(v string) *MappingEntryCreate {
	_c.mutation.SetCorrectedName(v)
	return _c
}

// SetCatalogID sets the "catalog_id" field.
func (_c *MappingEntryCreate) SetCatalogID(v uuid.UUID) *MappingEntryCreate {
	_c.mutation.SetCatalogID(v)
	return _c
}

// SetCatalogType sets the "catalog_type" field.
func (_c *MappingEntryCreate) SetCatalogType(v string) *MappingEntryCreate {
	_c.mutation.SetCatalogType(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MappingEntryCreate) SetConfidence(v int) *MappingEntryCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *MappingEntryCreate) SetSource(v string) *MappingEntryCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetUseCount sets the "use_count" field.
func (_c *MappingEntryCreate) SetUseCount(v int) *MappingEntryCreate {
	_c.mutation.SetUseCount(v)
	return _c
}

// SetNillableUseCount sets the "use_count" field if the given value is not nil.
func (_c *MappingEntryCreate) SetNillableUseCount(v *int) *MappingEntryCreate {
	if v != nil {
		_c.SetUseCount(*v)
	}
	return _c
}

// SetLastUsedAt sets the "last_used_at" field.
func (_c *MappingEntryCreate) SetLastUsedAt(v time.Time) *MappingEntryCreate {
	_c.mutation.SetLastUsedAt(v)
	return _c
}

// SetNillableLastUsedAt sets the "last_used_at" field if the given value is not nil.
func (_c *MappingEntryCreate) SetNillableLastUsedAt(v *time.Time) *MappingEntryCreate {
	if v != nil {
		_c.SetLastUsedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MappingEntryCreate) SetCreatedAt(v time.Time) *MappingEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MappingEntryCreate) SetNillableCreatedAt(v *time.Time) *MappingEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MappingEntryCreate) SetID(v uuid.UUID) *MappingEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MappingEntryCreate) SetNillableID(v *uuid.UUID) *MappingEntryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MappingEntryMutation object of the builder.
func (_c *MappingEntryCreate) Mutation() *MappingEntryMutation {
	return _c.mutation
}

// Save creates the MappingEntry in the database.
func (_c *MappingEntryCreate) Save(ctx context.Context) (*MappingEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MappingEntryCreate) SaveX(ctx context.Context) *MappingEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MappingEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MappingEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MappingEntryCreate) defaults() {
	if _, ok := _c.mutation.UseCount(); !ok {
		v := mappingentry.DefaultUseCount
		_c.mutation.SetUseCount(v)
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		v := mappingentry.DefaultLastUsedAt()
		_c.mutation.SetLastUsedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mappingentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mappingentry.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MappingEntryCreate) check() error {
	if _, ok := _c.mutation.RawName(); !ok {
		return &ValidationError{Name: "raw_name", err: errors.New(`ent: missing required field "MappingEntry.raw_name"`)}
	}
	if v, ok := _c.mutation.RawName(); ok {
		if err := mappingentry.RawNameValidator(v); err != nil {
			return &ValidationError{Name: "raw_name", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.raw_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectedName(); !ok {
		return &ValidationError{Name: "corrected_name", err: errors.New(`ent: missing required field "MappingEntry.corrected_name"`)}
	}
	if v, ok := _c.mutation.CorrectedName(); ok {
		if err := mappingentry.CorrectedNameValidator(v); err != nil {
			return &ValidationError{Name: "corrected_name", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.corrected_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CatalogID(); !ok {
		return &ValidationError{Name: "catalog_id", err: errors.New(`ent: missing required field "MappingEntry.catalog_id"`)}
	}
	if _, ok := _c.mutation.CatalogType(); !ok {
		return &ValidationError{Name: "catalog_type", err: errors.New(`ent: missing required field "MappingEntry.catalog_type"`)}
	}
	if v, ok := _c.mutation.CatalogType(); ok {
		if err := mappingentry.CatalogTypeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_type", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.catalog_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "MappingEntry.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := mappingentry.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "MappingEntry.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := mappingentry.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "MappingEntry.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UseCount(); !ok {
		return &ValidationError{Name: "use_count", err: errors.New(`ent: missing required field "MappingEntry.use_count"`)}
	}
	if _, ok := _c.mutation.LastUsedAt(); !ok {
		return &ValidationError{Name: "last_used_at", err: errors.New(`ent: missing required field "MappingEntry.last_used_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MappingEntry.created_at"`)}
	}
	return nil
}

func (_c *MappingEntryCreate) sqlSave(ctx context.Context) (*MappingEntry, error) {
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

func (_c *MappingEntryCreate) createSpec() (*MappingEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &MappingEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mappingentry.Table, sqlgraph.NewFieldSpec(mappingentry.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RawName(); ok {
		_spec.SetField(mappingentry.FieldRawName, field.TypeString, value)
		_node.RawName = value
	}
	if value, ok := _c.mutation.CorrectedName(); ok {
		_spec.SetField(mappingentry.FieldCorrectedName, field.TypeString, value)
		_node.CorrectedName = value
	}
	if value, ok := _c.mutation.CatalogID(); ok {
		_spec.SetField(mappingentry.FieldCatalogID, field.TypeUUID, value)
		_node.CatalogID = value
	}
	if value, ok := _c.mutation.CatalogType(); ok {
		_spec.SetField(mappingentry.FieldCatalogType, field.TypeString, value)
		_node.CatalogType = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(mappingentry.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(mappingentry.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.UseCount(); ok {
		_spec.SetField(mappingentry.FieldUseCount, field.TypeInt, value)
		_node.UseCount = value
	}
	if value, ok := _c.mutation.LastUsedAt(); ok {
		_spec.SetField(mappingentry.FieldLastUsedAt, field.TypeTime, value)
		_node.LastUsedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mappingentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MappingEntry.Create().
//		SetRawName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MappingEntryUpsert) {
//			SetRawName(v+v).
//		}).
//		Exec(ctx)
func (_c *MappingEntryCreate) OnConflict(opts ...sql.ConflictOption) *MappingEntryUpsertOne {
	_c.conflict = opts
	return &MappingEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MappingEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MappingEntryCreate) OnConflictColumns(columns ...string) *MappingEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MappingEntryUpsertOne{
		create: _c,
	}
}

type (
	// MappingEntryUpsertOne is the builder for "upsert"-ing
	//  one MappingEntry node.
	MappingEntryUpsertOne struct {
		create *MappingEntryCreate
	}

	// MappingEntryUpsert is the "OnConflict" setter.
	MappingEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetRawName sets the "raw_name" field.
func (u *MappingEntryUpsert) SetRawName(v string) *MappingEntryUpsert {
	u.Set(mappingentry.FieldRawName, v)
	return u
}

// UpdateRawName sets the "raw_name" field to the value that was provided on create.
func (u *MappingEntryUpsert) UpdateRawName() *MappingEntryUpsert {
	u.SetExcluded(mappingentry.FieldRawName)
	return u
}

// SetCorrectedName sets the "corrected_name" field.
func (u *MappingEntryUpsert) SetCorrectedName(v string) *MappingEntryUpsert {
	u.Set(mappingentry.FieldCorrectedName, v)
	return u
}

// UpdateCorrectedName sets the "corrected_name" field to the value that was provided on create.
func (u *MappingEntryUpsert) UpdateCorrectedName() *MappingEntryUpsert {
	u.SetExcluded(mappingentry.FieldCorrectedName)
	return u
}

// SetCatalogID sets the "catalog_id" field.
func (u *MappingEntryUpsert) SetCatalogID(v uuid.UUID) *MappingEntryUpsert {
	u.Set(mappingentry.FieldCatalogID, v)
	return u
}

// UpdateCatalogID sets the "catalog_id" field to the value that was provided on create.
func (u *MappingEntryUpsert) UpdateCatalogID() *MappingEntryUpsert {
	u.SetExcluded(mappingentry.FieldCatalogID)
	return u
}

// SetCatalogType sets the "catalog_type" field.
func (u *MappingEntryUpsert) SetCatalogType(v string) *MappingEntryUpsert {
	u.Set(mappingentry.FieldCatalogType, v)
	return u
}

// UpdateCatalogType sets the "catalog_type" field to the value that was provided on create.
func (u *MappingEntryUpsert) UpdateCatalogType() *MappingEntryUpsert {
	u.SetExcluded(mappingentry.FieldCatalogType)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *MappingEntryUpsert) SetConfidence(v int) *MappingEntryUpsert {
	u.Set(mappingentry.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *MappingEntryUpsert) UpdateConfidence() *MappingEntryUpsert {
	u.SetExcluded(mappingentry.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *MappingEntryUpsert) AddConfidence(v int) *MappingEntryUpsert {
	u.Add(mappingentry.FieldConfidence, v)
	return u
}

// SetSource sets the "source" field.
func (u *MappingEntryUpsert) SetSource(v string) *MappingEntryUpsert {
	u.Set(mappingentry.FieldSource, v)
	return u
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *MappingEntryUpsert) UpdateSource() *MappingEntryUpsert {
	u.SetExcluded(mappingentry.FieldSource)
	return u
}

// SetUseCount sets the "use_count" field.
func (u *MappingEntryUpsert) SetUseCount(v int) *MappingEntryUpsert {
	u.Set(mappingentry.FieldUseCount, v)
	return u
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *MappingEntryUpsert) UpdateUseCount() *MappingEntryUpsert {
	u.SetExcluded(mappingentry.FieldUseCount)
	return u
}

// AddUseCount adds v to the "use_count" field.
func (u *MappingEntryUpsert) AddUseCount(v int) *MappingEntryUpsert {
	u.Add(mappingentry.FieldUseCount, v)
	return u
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *MappingEntryUpsert) SetLastUsedAt(v time.Time) *MappingEntryUpsert {
	u.Set(mappingentry.FieldLastUsedAt, v)
	return u
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *MappingEntryUpsert) UpdateLastUsedAt() *MappingEntryUpsert {
	u.SetExcluded(mappingentry.FieldLastUsedAt)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *MappingEntryUpsert) SetCreatedAt(v time.Time) *MappingEntryUpsert {
	u.Set(mappingentry.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *MappingEntryUpsert) UpdateCreatedAt() *MappingEntryUpsert {
	u.SetExcluded(mappingentry.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.MappingEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mappingentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MappingEntryUpsertOne) UpdateNewValues() *MappingEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(mappingentry.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MappingEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MappingEntryUpsertOne) Ignore() *MappingEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MappingEntryUpsertOne) DoNothing() *MappingEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MappingEntryCreate.OnConflict
// documentation for more info.
func (u *MappingEntryUpsertOne) Update(set func(*MappingEntryUpsert)) *MappingEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MappingEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetRawName sets the "raw_name" field.
func (u *MappingEntryUpsertOne) SetRawName(v string) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetRawName(v)
	})
}

// UpdateRawName sets the "raw_name" field to the value that was provided on create.
func (u *MappingEntryUpsertOne) UpdateRawName() *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateRawName()
	})
}

// SetCorrectedName sets the "corrected_name" field.
func (u *MappingEntryUpsertOne) SetCorrectedName(v string) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetCorrectedName(v)
	})
}

// UpdateCorrectedName sets the "corrected_name" field to the value that was provided on create.
func (u *MappingEntryUpsertOne) UpdateCorrectedName() *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateCorrectedName()
	})
}

// SetCatalogID sets the "catalog_id" field.
func (u *MappingEntryUpsertOne) SetCatalogID(v uuid.UUID) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetCatalogID(v)
	})
}

// UpdateCatalogID sets the "catalog_id" field to the value that was provided on create.
func (u *MappingEntryUpsertOne) UpdateCatalogID() *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateCatalogID()
	})
}

// SetCatalogType sets the "catalog_type" field.
func (u *MappingEntryUpsertOne) SetCatalogType(v string) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetCatalogType(v)
	})
}

// UpdateCatalogType sets the "catalog_type" field to the value that was provided on create.
func (u *MappingEntryUpsertOne) UpdateCatalogType() *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateCatalogType()
	})
}

// SetConfidence sets the "confidence" field.
func (u *MappingEntryUpsertOne) SetConfidence(v int) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *MappingEntryUpsertOne) AddConfidence(v int) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *MappingEntryUpsertOne) UpdateConfidence() *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateConfidence()
	})
}

// SetSource sets the "source" field.
func (u *MappingEntryUpsertOne) SetSource(v string) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *MappingEntryUpsertOne) UpdateSource() *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateSource()
	})
}

// SetUseCount sets the "use_count" field.
func (u *MappingEntryUpsertOne) SetUseCount(v int) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetUseCount(v)
	})
}

// AddUseCount adds v to the "use_count" field.
func (u *MappingEntryUpsertOne) AddUseCount(v int) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.AddUseCount(v)
	})
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *MappingEntryUpsertOne) UpdateUseCount() *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateUseCount()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *MappingEntryUpsertOne) SetLastUsedAt(v time.Time) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *MappingEntryUpsertOne) UpdateLastUsedAt() *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateLastUsedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *MappingEntryUpsertOne) SetCreatedAt(v time.Time) *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *MappingEntryUpsertOne) UpdateCreatedAt() *MappingEntryUpsertOne {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *MappingEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MappingEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MappingEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MappingEntryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MappingEntryUpsertOne.ID is not supported by MySQL driver. Use MappingEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MappingEntryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MappingEntryCreateBulk is the builder for creating many MappingEntry entities in bulk.
type MappingEntryCreateBulk struct {
	config
	err      error
	builders []*MappingEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the MappingEntry entities in the database.
func (_c *MappingEntryCreateBulk) Save(ctx context.Context) ([]*MappingEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MappingEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MappingEntryMutation)
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
func (_c *MappingEntryCreateBulk) SaveX(ctx context.Context) []*MappingEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MappingEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MappingEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.MappingEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MappingEntryUpsert) {
//			SetRawName(v+v).
//		}).
//		Exec(ctx)
func (_c *MappingEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *MappingEntryUpsertBulk {
	_c.conflict = opts
	return &MappingEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.MappingEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MappingEntryCreateBulk) OnConflictColumns(columns ...string) *MappingEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MappingEntryUpsertBulk{
		create: _c,
	}
}

// MappingEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of MappingEntry nodes.
type MappingEntryUpsertBulk struct {
	create *MappingEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.MappingEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(mappingentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MappingEntryUpsertBulk) UpdateNewValues() *MappingEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(mappingentry.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.MappingEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MappingEntryUpsertBulk) Ignore() *MappingEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MappingEntryUpsertBulk) DoNothing() *MappingEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MappingEntryCreateBulk.OnConflict
// documentation for more info.
func (u *MappingEntryUpsertBulk) Update(set func(*MappingEntryUpsert)) *MappingEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MappingEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetRawName sets the "raw_name" field.
func (u *MappingEntryUpsertBulk) SetRawName(v string) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetRawName(v)
	})
}

// UpdateRawName sets the "raw_name" field to the value that was provided on create.
func (u *MappingEntryUpsertBulk) UpdateRawName() *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateRawName()
	})
}

// SetCorrectedName sets the "corrected_name" field.
func (u *MappingEntryUpsertBulk) SetCorrectedName(v string) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetCorrectedName(v)
	})
}

// UpdateCorrectedName sets the "corrected_name" field to the value that was provided on create.
func (u *MappingEntryUpsertBulk) UpdateCorrectedName() *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateCorrectedName()
	})
}

// SetCatalogID sets the "catalog_id" field.
func (u *MappingEntryUpsertBulk) SetCatalogID(v uuid.UUID) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetCatalogID(v)
	})
}

// UpdateCatalogID sets the "catalog_id" field to the value that was provided on create.
func (u *MappingEntryUpsertBulk) UpdateCatalogID() *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateCatalogID()
	})
}

// SetCatalogType sets the "catalog_type" field.
func (u *MappingEntryUpsertBulk) SetCatalogType(v string) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetCatalogType(v)
	})
}

// UpdateCatalogType sets the "catalog_type" field to the value that was provided on create.
func (u *MappingEntryUpsertBulk) UpdateCatalogType() *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateCatalogType()
	})
}

// SetConfidence sets the "confidence" field.
func (u *MappingEntryUpsertBulk) SetConfidence(v int) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *MappingEntryUpsertBulk) AddConfidence(v int) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *MappingEntryUpsertBulk) UpdateConfidence() *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateConfidence()
	})
}

// SetSource sets the "source" field.
func (u *MappingEntryUpsertBulk) SetSource(v string) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetSource(v)
	})
}

// UpdateSource sets the "source" field to the value that was provided on create.
func (u *MappingEntryUpsertBulk) UpdateSource() *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateSource()
	})
}

// SetUseCount sets the "use_count" field.
func (u *MappingEntryUpsertBulk) SetUseCount(v int) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetUseCount(v)
	})
}

// AddUseCount adds v to the "use_count" field.
func (u *MappingEntryUpsertBulk) AddUseCount(v int) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.AddUseCount(v)
	})
}

// UpdateUseCount sets the "use_count" field to the value that was provided on create.
func (u *MappingEntryUpsertBulk) UpdateUseCount() *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateUseCount()
	})
}

// SetLastUsedAt sets the "last_used_at" field.
func (u *MappingEntryUpsertBulk) SetLastUsedAt(v time.Time) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetLastUsedAt(v)
	})
}

// UpdateLastUsedAt sets the "last_used_at" field to the value that was provided on create.
func (u *MappingEntryUpsertBulk) UpdateLastUsedAt() *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateLastUsedAt()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *MappingEntryUpsertBulk) SetCreatedAt(v time.Time) *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *MappingEntryUpsertBulk) UpdateCreatedAt() *MappingEntryUpsertBulk {
	return u.Update(func(s *MappingEntryUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *MappingEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MappingEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MappingEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MappingEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
