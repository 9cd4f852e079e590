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
)

// EscalationItemCreate is the builder for creating a EscalationItem entity.
type EscalationItemCreate struct {
	config
	mutation *EscalationItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentID sets the "document_id" field.
func (_c *EscalationItemCreate) SetDocumentID(v uuid.UUID) *EscalationItemCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetRawName sets the "raw_name" field.
func (_c *EscalationItemCreate) SetRawName(v string) *EscalationItemCreate {
	_c.mutation.SetRawName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *EscalationItemCreate) SetNormalizedName(v string) *EscalationItemCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetCatalogType sets the "catalog_type" field.
func (_c *EscalationItemCreate) SetCatalogType(v string) *EscalationItemCreate {
	_c.mutation.SetCatalogType(v)
	return _c
}

// SetResolvedID sets the "resolved_id" field.
func (_c *EscalationItemCreate) SetResolvedID(v uuid.UUID) *EscalationItemCreate {
	_c.mutation.SetResolvedID(v)
	return _c
}

// SetNillableResolvedID sets the "resolved_id" field if the given value is not nil.
func (_c *EscalationItemCreate) SetNillableResolvedID(v *uuid.UUID) *EscalationItemCreate {
	if v != nil {
		_c.SetResolvedID(*v)
	}
	return _c
}

// SetResolvedName sets the "resolved_name" field.
func (_c *EscalationItemCreate) SetResolvedName(v string) *EscalationItemCreate {
	_c.mutation.SetResolvedName(v)
	return _c
}

// SetNillableResolvedName sets the "resolved_name" field if the given value is not nil.
func (_c *EscalationItemCreate) SetNillableResolvedName(v *string) *EscalationItemCreate {
	if v != nil {
		_c.SetResolvedName(*v)
	}
	return _c
}

// SetResolved sets the "resolved" field.
func (_c *EscalationItemCreate) SetResolved(v bool) *EscalationItemCreate {
	_c.mutation.SetResolved(v)
	return _c
}

// SetNillableResolved sets the "resolved" field if the given value is not nil.
func (_c *EscalationItemCreate) SetNillableResolved(v *bool) *EscalationItemCreate {
	if v != nil {
		_c.SetResolved(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EscalationItemCreate) SetCreatedAt(v time.Time) *EscalationItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EscalationItemCreate) SetNillableCreatedAt(v *time.Time) *EscalationItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EscalationItemCreate) SetID(v uuid.UUID) *EscalationItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EscalationItemCreate) SetNillableID(v *uuid.UUID) *EscalationItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *EscalationItemCreate) SetDocument(v *Document) *EscalationItemCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the EscalationItemMutation object of the builder.
func (_c *EscalationItemCreate) Mutation() *EscalationItemMutation {
	return _c.mutation
}

// Save creates the EscalationItem in the database.
func (_c *EscalationItemCreate) Save(ctx context.Context) (*EscalationItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EscalationItemCreate) SaveX(ctx context.Context) *EscalationItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EscalationItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EscalationItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EscalationItemCreate) defaults() {
	if _, ok := _c.mutation.Resolved(); !ok {
		v := escalationitem.DefaultResolved
		_c.mutation.SetResolved(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := escalationitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := escalationitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EscalationItemCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "EscalationItem.document_id"`)}
	}
	if _, ok := _c.mutation.RawName(); !ok {
		return &ValidationError{Name: "raw_name", err: errors.New(`ent: missing required field "EscalationItem.raw_name"`)}
	}
	if v, ok := _c.mutation.RawName(); ok {
		if err := escalationitem.RawNameValidator(v); err != nil {
			return &ValidationError{Name: "raw_name", err: fmt.Errorf(`ent: validator failed for field "EscalationItem.raw_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "EscalationItem.normalized_name"`)}
	}
	if v, ok := _c.mutation.NormalizedName(); ok {
		if err := escalationitem.NormalizedNameValidator(v); err != nil {
			return &ValidationError{Name: "normalized_name", err: fmt.Errorf(`ent: validator failed for field "EscalationItem.normalized_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CatalogType(); !ok {
		return &ValidationError{Name: "catalog_type", err: errors.New(`ent: missing required field "EscalationItem.catalog_type"`)}
	}
	if v, ok := _c.mutation.CatalogType(); ok {
		if err := escalationitem.CatalogTypeValidator(v); err != nil {
			return &ValidationError{Name: "catalog_type", err: fmt.Errorf(`ent: validator failed for field "EscalationItem.catalog_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Resolved(); !ok {
		return &ValidationError{Name: "resolved", err: errors.New(`ent: missing required field "EscalationItem.resolved"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EscalationItem.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "EscalationItem.document"`)}
	}
	return nil
}

func (_c *EscalationItemCreate) sqlSave(ctx context.Context) (*EscalationItem, error) {
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

func (_c *EscalationItemCreate) createSpec() (*EscalationItem, *sqlgraph.CreateSpec) {
	var (
		_node = &EscalationItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(escalationitem.Table, sqlgraph.NewFieldSpec(escalationitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.RawName(); ok {
		_spec.SetField(escalationitem.FieldRawName, field.TypeString, value)
		_node.RawName = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(escalationitem.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.CatalogType(); ok {
		_spec.SetField(escalationitem.FieldCatalogType, field.TypeString, value)
		_node.CatalogType = value
	}
	if value, ok := _c.mutation.ResolvedID(); ok {
		_spec.SetField(escalationitem.FieldResolvedID, field.TypeUUID, value)
		_node.ResolvedID = &value
	}
	if value, ok := _c.mutation.ResolvedName(); ok {
		_spec.SetField(escalationitem.FieldResolvedName, field.TypeString, value)
		_node.ResolvedName = &value
	}
	if value, ok := _c.mutation.Resolved(); ok {
		_spec.SetField(escalationitem.FieldResolved, field.TypeBool, value)
		_node.Resolved = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(escalationitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EscalationItem.Create().
//		SetDocumentID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EscalationItemUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *EscalationItemCreate) OnConflict(opts ...sql.ConflictOption) *EscalationItemUpsertOne {
	_c.conflict = opts
	return &EscalationItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EscalationItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EscalationItemCreate) OnConflictColumns(columns ...string) *EscalationItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EscalationItemUpsertOne{
		create: _c,
	}
}

type (
	// EscalationItemUpsertOne is the builder for "upsert"-ing
	//  one EscalationItem node.
	EscalationItemUpsertOne struct {
		create *EscalationItemCreate
	}

	// EscalationItemUpsert is the "OnConflict" setter.
	EscalationItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocumentID sets the "document_id" field.
func (u *EscalationItemUpsert) SetDocumentID(v uuid.UUID) *EscalationItemUpsert {
	u.Set(escalationitem.FieldDocumentID, v)
	return u
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *EscalationItemUpsert) UpdateDocumentID() *EscalationItemUpsert {
	u.SetExcluded(escalationitem.FieldDocumentID)
	return u
}

// SetRawName sets the "raw_name" field.
func (u *EscalationItemUpsert) SetRawName(v string) *EscalationItemUpsert {
	u.Set(escalationitem.FieldRawName, v)
	return u
}

// UpdateRawName sets the "raw_name" field to the value that was provided on create.
func (u *EscalationItemUpsert) UpdateRawName() *EscalationItemUpsert {
	u.SetExcluded(escalationitem.FieldRawName)
	return u
}

// SetNormalizedName sets the "normalized_name" field.
func (u *EscalationItemUpsert) SetNormalizedName(v string) *EscalationItemUpsert {
	u.Set(escalationitem.FieldNormalizedName, v)
	return u
}

// UpdateNormalizedName sets the "normalized_name" field to the value that was provided on create.
func (u *EscalationItemUpsert) UpdateNormalizedName() *EscalationItemUpsert {
	u.SetExcluded(escalationitem.FieldNormalizedName)
	return u
}

// SetCatalogType sets the "catalog_type" field.
func (u *EscalationItemUpsert) SetCatalogType(v string) *EscalationItemUpsert {
	u.Set(escalationitem.FieldCatalogType, v)
	return u
}

// UpdateCatalogType sets the "catalog_type" field to the value that was provided on create.
func (u *EscalationItemUpsert) UpdateCatalogType() *EscalationItemUpsert {
	u.SetExcluded(escalationitem.FieldCatalogType)
	return u
}

// SetResolvedID sets the "resolved_id" field.
func (u *EscalationItemUpsert) SetResolvedID(v uuid.UUID) *EscalationItemUpsert {
	u.Set(escalationitem.FieldResolvedID, v)
	return u
}

// UpdateResolvedID sets the "resolved_id" field to the value that was provided on create.
func (u *EscalationItemUpsert) UpdateResolvedID() *EscalationItemUpsert {
	u.SetExcluded(escalationitem.FieldResolvedID)
	return u
}

// ClearResolvedID clears the value of the "resolved_id" field.
func (u *EscalationItemUpsert) ClearResolvedID() *EscalationItemUpsert {
	u.SetNull(escalationitem.FieldResolvedID)
	return u
}

// SetResolvedName sets the "resolved_name" field.
func (u *EscalationItemUpsert) SetResolvedName(v string) *EscalationItemUpsert {
	u.Set(escalationitem.FieldResolvedName, v)
	return u
}

// UpdateResolvedName sets the "resolved_name" field to the value that was provided on create.
func (u *EscalationItemUpsert) UpdateResolvedName() *EscalationItemUpsert {
	u.SetExcluded(escalationitem.FieldResolvedName)
	return u
}

// ClearResolvedName clears the value of the "resolved_name" field.
func (u *EscalationItemUpsert) ClearResolvedName() *EscalationItemUpsert {
	u.SetNull(escalationitem.FieldResolvedName)
	return u
}

// SetResolved sets the "resolved" field.
func (u *EscalationItemUpsert) SetResolved(v bool) *EscalationItemUpsert {
	u.Set(escalationitem.FieldResolved, v)
	return u
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *EscalationItemUpsert) UpdateResolved() *EscalationItemUpsert {
	u.SetExcluded(escalationitem.FieldResolved)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *EscalationItemUpsert) SetCreatedAt(v time.Time) *EscalationItemUpsert {
	u.Set(escalationitem.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EscalationItemUpsert) UpdateCreatedAt() *EscalationItemUpsert {
	u.SetExcluded(escalationitem.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EscalationItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(escalationitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EscalationItemUpsertOne) UpdateNewValues() *EscalationItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(escalationitem.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EscalationItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EscalationItemUpsertOne) Ignore() *EscalationItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EscalationItemUpsertOne) DoNothing() *EscalationItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EscalationItemCreate.OnConflict
// documentation for more info.
func (u *EscalationItemUpsertOne) Update(set func(*EscalationItemUpsert)) *EscalationItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EscalationItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *EscalationItemUpsertOne) SetDocumentID(v uuid.UUID) *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *EscalationItemUpsertOne) UpdateDocumentID() *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateDocumentID()
	})
}

// SetRawName sets the "raw_name" field.
func (u *EscalationItemUpsertOne) SetRawName(v string) *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetRawName(v)
	})
}

// UpdateRawName sets the "raw_name" field to the value that was provided on create.
func (u *EscalationItemUpsertOne) UpdateRawName() *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateRawName()
	})
}

// SetNormalizedName sets the "normalized_name" field.
func (u *EscalationItemUpsertOne) SetNormalizedName(v string) *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetNormalizedName(v)
	})
}

// UpdateNormalizedName sets the "normalized_name" field to the value that was provided on create.
func (u *EscalationItemUpsertOne) UpdateNormalizedName() *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateNormalizedName()
	})
}

// SetCatalogType sets the "catalog_type" field.
func (u *EscalationItemUpsertOne) SetCatalogType(v string) *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetCatalogType(v)
	})
}

// UpdateCatalogType sets the "catalog_type" field to the value that was provided on create.
func (u *EscalationItemUpsertOne) UpdateCatalogType() *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateCatalogType()
	})
}

// SetResolvedID sets the "resolved_id" field.
func (u *EscalationItemUpsertOne) SetResolvedID(v uuid.UUID) *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetResolvedID(v)
	})
}

// UpdateResolvedID sets the "resolved_id" field to the value that was provided on create.
func (u *EscalationItemUpsertOne) UpdateResolvedID() *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateResolvedID()
	})
}

// ClearResolvedID clears the value of the "resolved_id" field.
func (u *EscalationItemUpsertOne) ClearResolvedID() *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.ClearResolvedID()
	})
}

// SetResolvedName sets the "resolved_name" field.
func (u *EscalationItemUpsertOne) SetResolvedName(v string) *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetResolvedName(v)
	})
}

// UpdateResolvedName sets the "resolved_name" field to the value that was provided on create.
func (u *EscalationItemUpsertOne) UpdateResolvedName() *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateResolvedName()
	})
}

// ClearResolvedName clears the value of the "resolved_name" field.
func (u *EscalationItemUpsertOne) ClearResolvedName() *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.ClearResolvedName()
	})
}

// SetResolved sets the "resolved" field.
func (u *EscalationItemUpsertOne) SetResolved(v bool) *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *EscalationItemUpsertOne) UpdateResolved() *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateResolved()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EscalationItemUpsertOne) SetCreatedAt(v time.Time) *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EscalationItemUpsertOne) UpdateCreatedAt() *EscalationItemUpsertOne {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *EscalationItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EscalationItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EscalationItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EscalationItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EscalationItemUpsertOne.ID is not supported by MySQL driver. Use EscalationItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EscalationItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EscalationItemCreateBulk is the builder for creating many EscalationItem entities in bulk.
type EscalationItemCreateBulk struct {
	config
	err      error
	builders []*EscalationItemCreate
	conflict []sql.ConflictOption
}

// Save creates the EscalationItem entities in the database.
func (_c *EscalationItemCreateBulk) Save(ctx context.Context) ([]*EscalationItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EscalationItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EscalationItemMutation)
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
func (_c *EscalationItemCreateBulk) SaveX(ctx context.Context) []*EscalationItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EscalationItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EscalationItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EscalationItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EscalationItemUpsert) {
//			SetDocumentID(v+v).
//		}).
//		Exec(ctx)
func (_c *EscalationItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *EscalationItemUpsertBulk {
	_c.conflict = opts
	return &EscalationItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EscalationItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EscalationItemCreateBulk) OnConflictColumns(columns ...string) *EscalationItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EscalationItemUpsertBulk{
		create: _c,
	}
}

// EscalationItemUpsertBulk is the builder for "upsert"-ing
// a bulk of EscalationItem nodes.
type EscalationItemUpsertBulk struct {
	create *EscalationItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EscalationItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(escalationitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EscalationItemUpsertBulk) UpdateNewValues() *EscalationItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(escalationitem.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EscalationItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EscalationItemUpsertBulk) Ignore() *EscalationItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EscalationItemUpsertBulk) DoNothing() *EscalationItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EscalationItemCreateBulk.OnConflict
// documentation for more info.
func (u *EscalationItemUpsertBulk) Update(set func(*EscalationItemUpsert)) *EscalationItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EscalationItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentID sets the "document_id" field.
func (u *EscalationItemUpsertBulk) SetDocumentID(v uuid.UUID) *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetDocumentID(v)
	})
}

// UpdateDocumentID sets the "document_id" field to the value that was provided on create.
func (u *EscalationItemUpsertBulk) UpdateDocumentID() *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateDocumentID()
	})
}

// SetRawName sets the "raw_name" field.
func (u *EscalationItemUpsertBulk) SetRawName(v string) *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetRawName(v)
	})
}

// UpdateRawName sets the "raw_name" field to the value that was provided on create.
func (u *EscalationItemUpsertBulk) UpdateRawName() *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateRawName()
	})
}

// SetNormalizedName sets the "normalized_name" field.
func (u *EscalationItemUpsertBulk) SetNormalizedName(v string) *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetNormalizedName(v)
	})
}

// UpdateNormalizedName sets the "normalized_name" field to the value that was provided on create.
func (u *EscalationItemUpsertBulk) UpdateNormalizedName() *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateNormalizedName()
	})
}

// SetCatalogType sets the "catalog_type" field.
func (u *EscalationItemUpsertBulk) SetCatalogType(v string) *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetCatalogType(v)
	})
}

// UpdateCatalogType sets the "catalog_type" field to the value that was provided on create.
func (u *EscalationItemUpsertBulk) UpdateCatalogType() *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateCatalogType()
	})
}

// SetResolvedID sets the "resolved_id" field.
func (u *EscalationItemUpsertBulk) SetResolvedID(v uuid.UUID) *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetResolvedID(v)
	})
}

// UpdateResolvedID sets the "resolved_id" field to the value that was provided on create.
func (u *EscalationItemUpsertBulk) UpdateResolvedID() *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateResolvedID()
	})
}

// ClearResolvedID clears the value of the "resolved_id" field.
func (u *EscalationItemUpsertBulk) ClearResolvedID() *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.ClearResolvedID()
	})
}

// SetResolvedName sets the "resolved_name" field.
func (u *EscalationItemUpsertBulk) SetResolvedName(v string) *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetResolvedName(v)
	})
}

// UpdateResolvedName sets the "resolved_name" field to the value that was provided on create.
func (u *EscalationItemUpsertBulk) UpdateResolvedName() *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateResolvedName()
	})
}

// ClearResolvedName clears the value of the "resolved_name" field.
func (u *EscalationItemUpsertBulk) ClearResolvedName() *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.ClearResolvedName()
	})
}

// SetResolved sets the "resolved" field.
func (u *EscalationItemUpsertBulk) SetResolved(v bool) *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetResolved(v)
	})
}

// UpdateResolved sets the "resolved" field to the value that was provided on create.
func (u *EscalationItemUpsertBulk) UpdateResolved() *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateResolved()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EscalationItemUpsertBulk) SetCreatedAt(v time.Time) *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EscalationItemUpsertBulk) UpdateCreatedAt() *EscalationItemUpsertBulk {
	return u.Update(func(s *EscalationItemUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *EscalationItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EscalationItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EscalationItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EscalationItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
