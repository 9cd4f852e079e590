// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/paradize/restodocs/gen/ent/predicate"
	"github.com/paradize/restodocs/gen/ent/submissionrecord"
)

// SubmissionRecordDelete is the builder for deleting a SubmissionRecord entity.
type SubmissionRecordDelete struct {
	config
	hooks    []Hook
	mutation *SubmissionRecordMutation
}

// Where appends a list predicates to the SubmissionRecordDelete builder.
func (_d *SubmissionRecordDelete) Where(ps ...predicate.SubmissionRecord) *SubmissionRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SubmissionRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SubmissionRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SubmissionRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(submissionrecord.Table, sqlgraph.NewFieldSpec(submissionrecord.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SubmissionRecordDeleteOne is the builder for deleting a single SubmissionRecord entity.
type SubmissionRecordDeleteOne struct {
	_d *SubmissionRecordDelete
}

// Where appends a list predicates to the SubmissionRecordDelete builder.
func (_d *SubmissionRecordDeleteOne) Where(ps ...predicate.SubmissionRecord) *SubmissionRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SubmissionRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{submissionrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SubmissionRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
