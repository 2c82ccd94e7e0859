// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
	"github.com/invoiceflow/invoiceflow/ent/scheduleexecution"
)

// ScheduleExecutionDelete is the builder for deleting a ScheduleExecution entity.
type ScheduleExecutionDelete struct {
	config
	hooks    []Hook
	mutation *ScheduleExecutionMutation
}

// Where appends a list predicates to the ScheduleExecutionDelete builder.
func (sed *ScheduleExecutionDelete) Where(ps ...predicate.ScheduleExecution) *ScheduleExecutionDelete {
	sed.mutation.Where(ps...)
	return sed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (sed *ScheduleExecutionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, sed.sqlExec, sed.mutation, sed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (sed *ScheduleExecutionDelete) ExecX(ctx context.Context) int {
	n, err := sed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (sed *ScheduleExecutionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scheduleexecution.Table, sqlgraph.NewFieldSpec(scheduleexecution.FieldID, field.TypeString))
	if ps := sed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, sed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	sed.mutation.done = true
	return affected, err
}

// ScheduleExecutionDeleteOne is the builder for deleting a single ScheduleExecution entity.
type ScheduleExecutionDeleteOne struct {
	sed *ScheduleExecutionDelete
}

// Where appends a list predicates to the ScheduleExecutionDelete builder.
func (sedo *ScheduleExecutionDeleteOne) Where(ps ...predicate.ScheduleExecution) *ScheduleExecutionDeleteOne {
	sedo.sed.mutation.Where(ps...)
	return sedo
}

// Exec executes the deletion query.
func (sedo *ScheduleExecutionDeleteOne) Exec(ctx context.Context) error {
	n, err := sedo.sed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scheduleexecution.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (sedo *ScheduleExecutionDeleteOne) ExecX(ctx context.Context) {
	if err := sedo.Exec(ctx); err != nil {
		panic(err)
	}
}
