// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
)

// RecurringScheduleDelete is the builder for deleting a RecurringSchedule entity.
type RecurringScheduleDelete struct {
	config
	hooks    []Hook
	mutation *RecurringScheduleMutation
}

// Where appends a list predicates to the RecurringScheduleDelete builder.
func (rsd *RecurringScheduleDelete) Where(ps ...predicate.RecurringSchedule) *RecurringScheduleDelete {
	rsd.mutation.Where(ps...)
	return rsd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (rsd *RecurringScheduleDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, rsd.sqlExec, rsd.mutation, rsd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (rsd *RecurringScheduleDelete) ExecX(ctx context.Context) int {
	n, err := rsd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (rsd *RecurringScheduleDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(recurringschedule.Table, sqlgraph.NewFieldSpec(recurringschedule.FieldID, field.TypeString))
	if ps := rsd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, rsd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	rsd.mutation.done = true
	return affected, err
}

// RecurringScheduleDeleteOne is the builder for deleting a single RecurringSchedule entity.
type RecurringScheduleDeleteOne struct {
	rsd *RecurringScheduleDelete
}

// Where appends a list predicates to the RecurringScheduleDelete builder.
func (rsdo *RecurringScheduleDeleteOne) Where(ps ...predicate.RecurringSchedule) *RecurringScheduleDeleteOne {
	rsdo.rsd.mutation.Where(ps...)
	return rsdo
}

// Exec executes the deletion query.
func (rsdo *RecurringScheduleDeleteOne) Exec(ctx context.Context) error {
	n, err := rsdo.rsd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{recurringschedule.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (rsdo *RecurringScheduleDeleteOne) ExecX(ctx context.Context) {
	if err := rsdo.Exec(ctx); err != nil {
		panic(err)
	}
}
