// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
	"github.com/invoiceflow/invoiceflow/ent/scheduleexecution"
	"github.com/shopspring/decimal"
)

// ScheduleExecutionCreate is the builder for creating a ScheduleExecution entity.
type ScheduleExecutionCreate struct {
	config
	mutation *ScheduleExecutionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (sec *ScheduleExecutionCreate) SetTenantID(s string) *ScheduleExecutionCreate {
	sec.mutation.SetTenantID(s)
	return sec
}

// SetStatus sets the "status" field.
func (sec *ScheduleExecutionCreate) SetStatus(s string) *ScheduleExecutionCreate {
	sec.mutation.SetStatus(s)
	return sec
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (sec *ScheduleExecutionCreate) SetNillableStatus(s *string) *ScheduleExecutionCreate {
	if s != nil {
		sec.SetStatus(*s)
	}
	return sec
}

// SetCreatedAt sets the "created_at" field.
func (sec *ScheduleExecutionCreate) SetCreatedAt(t time.Time) *ScheduleExecutionCreate {
	sec.mutation.SetCreatedAt(t)
	return sec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sec *ScheduleExecutionCreate) SetNillableCreatedAt(t *time.Time) *ScheduleExecutionCreate {
	if t != nil {
		sec.SetCreatedAt(*t)
	}
	return sec
}

// SetUpdatedAt sets the "updated_at" field.
func (sec *ScheduleExecutionCreate) SetUpdatedAt(t time.Time) *ScheduleExecutionCreate {
	sec.mutation.SetUpdatedAt(t)
	return sec
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (sec *ScheduleExecutionCreate) SetNillableUpdatedAt(t *time.Time) *ScheduleExecutionCreate {
	if t != nil {
		sec.SetUpdatedAt(*t)
	}
	return sec
}

// SetCreatedBy sets the "created_by" field.
func (sec *ScheduleExecutionCreate) SetCreatedBy(s string) *ScheduleExecutionCreate {
	sec.mutation.SetCreatedBy(s)
	return sec
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (sec *ScheduleExecutionCreate) SetNillableCreatedBy(s *string) *ScheduleExecutionCreate {
	if s != nil {
		sec.SetCreatedBy(*s)
	}
	return sec
}

// SetUpdatedBy sets the "updated_by" field.
func (sec *ScheduleExecutionCreate) SetUpdatedBy(s string) *ScheduleExecutionCreate {
	sec.mutation.SetUpdatedBy(s)
	return sec
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (sec *ScheduleExecutionCreate) SetNillableUpdatedBy(s *string) *ScheduleExecutionCreate {
	if s != nil {
		sec.SetUpdatedBy(*s)
	}
	return sec
}

// SetScheduleID sets the "schedule_id" field.
func (sec *ScheduleExecutionCreate) SetScheduleID(s string) *ScheduleExecutionCreate {
	sec.mutation.SetScheduleID(s)
	return sec
}

// SetPeriodDate sets the "period_date" field.
func (sec *ScheduleExecutionCreate) SetPeriodDate(t time.Time) *ScheduleExecutionCreate {
	sec.mutation.SetPeriodDate(t)
	return sec
}

// SetPeriodStart sets the "period_start" field.
func (sec *ScheduleExecutionCreate) SetPeriodStart(t time.Time) *ScheduleExecutionCreate {
	sec.mutation.SetPeriodStart(t)
	return sec
}

// SetPeriodEnd sets the "period_end" field.
func (sec *ScheduleExecutionCreate) SetPeriodEnd(t time.Time) *ScheduleExecutionCreate {
	sec.mutation.SetPeriodEnd(t)
	return sec
}

// SetExecutionStatus sets the "execution_status" field.
func (sec *ScheduleExecutionCreate) SetExecutionStatus(s string) *ScheduleExecutionCreate {
	sec.mutation.SetExecutionStatus(s)
	return sec
}

// SetInvoiceID sets the "invoice_id" field.
func (sec *ScheduleExecutionCreate) SetInvoiceID(s string) *ScheduleExecutionCreate {
	sec.mutation.SetInvoiceID(s)
	return sec
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (sec *ScheduleExecutionCreate) SetNillableInvoiceID(s *string) *ScheduleExecutionCreate {
	if s != nil {
		sec.SetInvoiceID(*s)
	}
	return sec
}

// SetAmountGenerated sets the "amount_generated" field.
func (sec *ScheduleExecutionCreate) SetAmountGenerated(d decimal.Decimal) *ScheduleExecutionCreate {
	sec.mutation.SetAmountGenerated(d)
	return sec
}

// SetNillableAmountGenerated sets the "amount_generated" field if the given value is not nil.
func (sec *ScheduleExecutionCreate) SetNillableAmountGenerated(d *decimal.Decimal) *ScheduleExecutionCreate {
	if d != nil {
		sec.SetAmountGenerated(*d)
	}
	return sec
}

// SetProratedAmount sets the "prorated_amount" field.
func (sec *ScheduleExecutionCreate) SetProratedAmount(d decimal.Decimal) *ScheduleExecutionCreate {
	sec.mutation.SetProratedAmount(d)
	return sec
}

// SetNillableProratedAmount sets the "prorated_amount" field if the given value is not nil.
func (sec *ScheduleExecutionCreate) SetNillableProratedAmount(d *decimal.Decimal) *ScheduleExecutionCreate {
	if d != nil {
		sec.SetProratedAmount(*d)
	}
	return sec
}

// SetErrorMessage sets the "error_message" field.
func (sec *ScheduleExecutionCreate) SetErrorMessage(s string) *ScheduleExecutionCreate {
	sec.mutation.SetErrorMessage(s)
	return sec
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (sec *ScheduleExecutionCreate) SetNillableErrorMessage(s *string) *ScheduleExecutionCreate {
	if s != nil {
		sec.SetErrorMessage(*s)
	}
	return sec
}

// SetID sets the "id" field.
func (sec *ScheduleExecutionCreate) SetID(s string) *ScheduleExecutionCreate {
	sec.mutation.SetID(s)
	return sec
}

// SetSchedule sets the "schedule" edge to the RecurringSchedule entity.
func (sec *ScheduleExecutionCreate) SetSchedule(r *RecurringSchedule) *ScheduleExecutionCreate {
	return sec.SetScheduleID(r.ID)
}

// Mutation returns the ScheduleExecutionMutation object of the builder.
func (sec *ScheduleExecutionCreate) Mutation() *ScheduleExecutionMutation {
	return sec.mutation
}

// Save creates the ScheduleExecution in the database.
func (sec *ScheduleExecutionCreate) Save(ctx context.Context) (*ScheduleExecution, error) {
	sec.defaults()
	return withHooks(ctx, sec.sqlSave, sec.mutation, sec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sec *ScheduleExecutionCreate) SaveX(ctx context.Context) *ScheduleExecution {
	v, err := sec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sec *ScheduleExecutionCreate) Exec(ctx context.Context) error {
	_, err := sec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sec *ScheduleExecutionCreate) ExecX(ctx context.Context) {
	if err := sec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sec *ScheduleExecutionCreate) defaults() {
	if _, ok := sec.mutation.Status(); !ok {
		v := scheduleexecution.DefaultStatus
		sec.mutation.SetStatus(v)
	}
	if _, ok := sec.mutation.CreatedAt(); !ok {
		v := scheduleexecution.DefaultCreatedAt()
		sec.mutation.SetCreatedAt(v)
	}
	if _, ok := sec.mutation.UpdatedAt(); !ok {
		v := scheduleexecution.DefaultUpdatedAt()
		sec.mutation.SetUpdatedAt(v)
	}
	if _, ok := sec.mutation.AmountGenerated(); !ok {
		v := scheduleexecution.DefaultAmountGenerated
		sec.mutation.SetAmountGenerated(v)
	}
	if _, ok := sec.mutation.ProratedAmount(); !ok {
		v := scheduleexecution.DefaultProratedAmount
		sec.mutation.SetProratedAmount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sec *ScheduleExecutionCreate) check() error {
	if _, ok := sec.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ScheduleExecution.tenant_id"`)}
	}
	if v, ok := sec.mutation.TenantID(); ok {
		if err := scheduleexecution.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleExecution.tenant_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduleExecution.status"`)}
	}
	if _, ok := sec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduleExecution.created_at"`)}
	}
	if _, ok := sec.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScheduleExecution.updated_at"`)}
	}
	if _, ok := sec.mutation.ScheduleID(); !ok {
		return &ValidationError{Name: "schedule_id", err: errors.New(`ent: missing required field "ScheduleExecution.schedule_id"`)}
	}
	if v, ok := sec.mutation.ScheduleID(); ok {
		if err := scheduleexecution.ScheduleIDValidator(v); err != nil {
			return &ValidationError{Name: "schedule_id", err: fmt.Errorf(`ent: validator failed for field "ScheduleExecution.schedule_id": %w`, err)}
		}
	}
	if _, ok := sec.mutation.PeriodDate(); !ok {
		return &ValidationError{Name: "period_date", err: errors.New(`ent: missing required field "ScheduleExecution.period_date"`)}
	}
	if _, ok := sec.mutation.PeriodStart(); !ok {
		return &ValidationError{Name: "period_start", err: errors.New(`ent: missing required field "ScheduleExecution.period_start"`)}
	}
	if _, ok := sec.mutation.PeriodEnd(); !ok {
		return &ValidationError{Name: "period_end", err: errors.New(`ent: missing required field "ScheduleExecution.period_end"`)}
	}
	if _, ok := sec.mutation.ExecutionStatus(); !ok {
		return &ValidationError{Name: "execution_status", err: errors.New(`ent: missing required field "ScheduleExecution.execution_status"`)}
	}
	if v, ok := sec.mutation.ExecutionStatus(); ok {
		if err := scheduleexecution.ExecutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "execution_status", err: fmt.Errorf(`ent: validator failed for field "ScheduleExecution.execution_status": %w`, err)}
		}
	}
	if _, ok := sec.mutation.AmountGenerated(); !ok {
		return &ValidationError{Name: "amount_generated", err: errors.New(`ent: missing required field "ScheduleExecution.amount_generated"`)}
	}
	if _, ok := sec.mutation.ProratedAmount(); !ok {
		return &ValidationError{Name: "prorated_amount", err: errors.New(`ent: missing required field "ScheduleExecution.prorated_amount"`)}
	}
	if len(sec.mutation.ScheduleIDs()) == 0 {
		return &ValidationError{Name: "schedule", err: errors.New(`ent: missing required edge "ScheduleExecution.schedule"`)}
	}
	return nil
}

func (sec *ScheduleExecutionCreate) sqlSave(ctx context.Context) (*ScheduleExecution, error) {
	if err := sec.check(); err != nil {
		return nil, err
	}
	_node, _spec := sec.createSpec()
	if err := sqlgraph.CreateNode(ctx, sec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScheduleExecution.ID type: %T", _spec.ID.Value)
		}
	}
	sec.mutation.id = &_node.ID
	sec.mutation.done = true
	return _node, nil
}

func (sec *ScheduleExecutionCreate) createSpec() (*ScheduleExecution, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduleExecution{config: sec.config}
		_spec = sqlgraph.NewCreateSpec(scheduleexecution.Table, sqlgraph.NewFieldSpec(scheduleexecution.FieldID, field.TypeString))
	)
	if id, ok := sec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := sec.mutation.TenantID(); ok {
		_spec.SetField(scheduleexecution.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := sec.mutation.Status(); ok {
		_spec.SetField(scheduleexecution.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := sec.mutation.CreatedAt(); ok {
		_spec.SetField(scheduleexecution.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := sec.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduleexecution.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := sec.mutation.CreatedBy(); ok {
		_spec.SetField(scheduleexecution.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := sec.mutation.UpdatedBy(); ok {
		_spec.SetField(scheduleexecution.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := sec.mutation.PeriodDate(); ok {
		_spec.SetField(scheduleexecution.FieldPeriodDate, field.TypeTime, value)
		_node.PeriodDate = value
	}
	if value, ok := sec.mutation.PeriodStart(); ok {
		_spec.SetField(scheduleexecution.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = value
	}
	if value, ok := sec.mutation.PeriodEnd(); ok {
		_spec.SetField(scheduleexecution.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = value
	}
	if value, ok := sec.mutation.ExecutionStatus(); ok {
		_spec.SetField(scheduleexecution.FieldExecutionStatus, field.TypeString, value)
		_node.ExecutionStatus = value
	}
	if value, ok := sec.mutation.InvoiceID(); ok {
		_spec.SetField(scheduleexecution.FieldInvoiceID, field.TypeString, value)
		_node.InvoiceID = &value
	}
	if value, ok := sec.mutation.AmountGenerated(); ok {
		_spec.SetField(scheduleexecution.FieldAmountGenerated, field.TypeOther, value)
		_node.AmountGenerated = value
	}
	if value, ok := sec.mutation.ProratedAmount(); ok {
		_spec.SetField(scheduleexecution.FieldProratedAmount, field.TypeOther, value)
		_node.ProratedAmount = value
	}
	if value, ok := sec.mutation.ErrorMessage(); ok {
		_spec.SetField(scheduleexecution.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if nodes := sec.mutation.ScheduleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduleexecution.ScheduleTable,
			Columns: []string{scheduleexecution.ScheduleColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recurringschedule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ScheduleID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduleExecutionCreateBulk is the builder for creating many ScheduleExecution entities in bulk.
type ScheduleExecutionCreateBulk struct {
	config
	err      error
	builders []*ScheduleExecutionCreate
}

// Save creates the ScheduleExecution entities in the database.
func (secb *ScheduleExecutionCreateBulk) Save(ctx context.Context) ([]*ScheduleExecution, error) {
	if secb.err != nil {
		return nil, secb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(secb.builders))
	nodes := make([]*ScheduleExecution, len(secb.builders))
	mutators := make([]Mutator, len(secb.builders))
	for i := range secb.builders {
		func(i int, root context.Context) {
			builder := secb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleExecutionMutation)
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
					_, err = mutators[i+1].Mutate(root, secb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, secb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, secb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (secb *ScheduleExecutionCreateBulk) SaveX(ctx context.Context) []*ScheduleExecution {
	v, err := secb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (secb *ScheduleExecutionCreateBulk) Exec(ctx context.Context) error {
	_, err := secb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (secb *ScheduleExecutionCreateBulk) ExecX(ctx context.Context) {
	if err := secb.Exec(ctx); err != nil {
		panic(err)
	}
}
