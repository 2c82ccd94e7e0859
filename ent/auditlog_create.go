// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoiceflow/invoiceflow/ent/auditlog"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
)

// AuditLogCreate is the builder for creating a AuditLog entity.
type AuditLogCreate struct {
	config
	mutation *AuditLogMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (alc *AuditLogCreate) SetTenantID(s string) *AuditLogCreate {
	alc.mutation.SetTenantID(s)
	return alc
}

// SetStatus sets the "status" field.
func (alc *AuditLogCreate) SetStatus(s string) *AuditLogCreate {
	alc.mutation.SetStatus(s)
	return alc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (alc *AuditLogCreate) SetNillableStatus(s *string) *AuditLogCreate {
	if s != nil {
		alc.SetStatus(*s)
	}
	return alc
}

// SetCreatedAt sets the "created_at" field.
func (alc *AuditLogCreate) SetCreatedAt(t time.Time) *AuditLogCreate {
	alc.mutation.SetCreatedAt(t)
	return alc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (alc *AuditLogCreate) SetNillableCreatedAt(t *time.Time) *AuditLogCreate {
	if t != nil {
		alc.SetCreatedAt(*t)
	}
	return alc
}

// SetUpdatedAt sets the "updated_at" field.
func (alc *AuditLogCreate) SetUpdatedAt(t time.Time) *AuditLogCreate {
	alc.mutation.SetUpdatedAt(t)
	return alc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (alc *AuditLogCreate) SetNillableUpdatedAt(t *time.Time) *AuditLogCreate {
	if t != nil {
		alc.SetUpdatedAt(*t)
	}
	return alc
}

// SetCreatedBy sets the "created_by" field.
func (alc *AuditLogCreate) SetCreatedBy(s string) *AuditLogCreate {
	alc.mutation.SetCreatedBy(s)
	return alc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (alc *AuditLogCreate) SetNillableCreatedBy(s *string) *AuditLogCreate {
	if s != nil {
		alc.SetCreatedBy(*s)
	}
	return alc
}

// SetUpdatedBy sets the "updated_by" field.
func (alc *AuditLogCreate) SetUpdatedBy(s string) *AuditLogCreate {
	alc.mutation.SetUpdatedBy(s)
	return alc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (alc *AuditLogCreate) SetNillableUpdatedBy(s *string) *AuditLogCreate {
	if s != nil {
		alc.SetUpdatedBy(*s)
	}
	return alc
}

// SetScheduleID sets the "schedule_id" field.
func (alc *AuditLogCreate) SetScheduleID(s string) *AuditLogCreate {
	alc.mutation.SetScheduleID(s)
	return alc
}

// SetAction sets the "action" field.
func (alc *AuditLogCreate) SetAction(s string) *AuditLogCreate {
	alc.mutation.SetAction(s)
	return alc
}

// SetDescription sets the "description" field.
func (alc *AuditLogCreate) SetDescription(s string) *AuditLogCreate {
	alc.mutation.SetDescription(s)
	return alc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (alc *AuditLogCreate) SetNillableDescription(s *string) *AuditLogCreate {
	if s != nil {
		alc.SetDescription(*s)
	}
	return alc
}

// SetInvoiceID sets the "invoice_id" field.
func (alc *AuditLogCreate) SetInvoiceID(s string) *AuditLogCreate {
	alc.mutation.SetInvoiceID(s)
	return alc
}

// SetNillableInvoiceID sets the "invoice_id" field if the given value is not nil.
func (alc *AuditLogCreate) SetNillableInvoiceID(s *string) *AuditLogCreate {
	if s != nil {
		alc.SetInvoiceID(*s)
	}
	return alc
}

// SetExecutionID sets the "execution_id" field.
func (alc *AuditLogCreate) SetExecutionID(s string) *AuditLogCreate {
	alc.mutation.SetExecutionID(s)
	return alc
}

// SetNillableExecutionID sets the "execution_id" field if the given value is not nil.
func (alc *AuditLogCreate) SetNillableExecutionID(s *string) *AuditLogCreate {
	if s != nil {
		alc.SetExecutionID(*s)
	}
	return alc
}

// SetPaymentID sets the "payment_id" field.
func (alc *AuditLogCreate) SetPaymentID(s string) *AuditLogCreate {
	alc.mutation.SetPaymentID(s)
	return alc
}

// SetNillablePaymentID sets the "payment_id" field if the given value is not nil.
func (alc *AuditLogCreate) SetNillablePaymentID(s *string) *AuditLogCreate {
	if s != nil {
		alc.SetPaymentID(*s)
	}
	return alc
}

// SetOldValues sets the "old_values" field.
func (alc *AuditLogCreate) SetOldValues(m map[string]interface{}) *AuditLogCreate {
	alc.mutation.SetOldValues(m)
	return alc
}

// SetNewValues sets the "new_values" field.
func (alc *AuditLogCreate) SetNewValues(m map[string]interface{}) *AuditLogCreate {
	alc.mutation.SetNewValues(m)
	return alc
}

// SetID sets the "id" field.
func (alc *AuditLogCreate) SetID(s string) *AuditLogCreate {
	alc.mutation.SetID(s)
	return alc
}

// SetSchedule sets the "schedule" edge to the RecurringSchedule entity.
func (alc *AuditLogCreate) SetSchedule(r *RecurringSchedule) *AuditLogCreate {
	return alc.SetScheduleID(r.ID)
}

// Mutation returns the AuditLogMutation object of the builder.
func (alc *AuditLogCreate) Mutation() *AuditLogMutation {
	return alc.mutation
}

// Save creates the AuditLog in the database.
func (alc *AuditLogCreate) Save(ctx context.Context) (*AuditLog, error) {
	alc.defaults()
	return withHooks(ctx, alc.sqlSave, alc.mutation, alc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (alc *AuditLogCreate) SaveX(ctx context.Context) *AuditLog {
	v, err := alc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (alc *AuditLogCreate) Exec(ctx context.Context) error {
	_, err := alc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alc *AuditLogCreate) ExecX(ctx context.Context) {
	if err := alc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (alc *AuditLogCreate) defaults() {
	if _, ok := alc.mutation.Status(); !ok {
		v := auditlog.DefaultStatus
		alc.mutation.SetStatus(v)
	}
	if _, ok := alc.mutation.CreatedAt(); !ok {
		v := auditlog.DefaultCreatedAt()
		alc.mutation.SetCreatedAt(v)
	}
	if _, ok := alc.mutation.UpdatedAt(); !ok {
		v := auditlog.DefaultUpdatedAt()
		alc.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (alc *AuditLogCreate) check() error {
	if _, ok := alc.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "AuditLog.tenant_id"`)}
	}
	if v, ok := alc.mutation.TenantID(); ok {
		if err := auditlog.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "AuditLog.tenant_id": %w`, err)}
		}
	}
	if _, ok := alc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AuditLog.status"`)}
	}
	if _, ok := alc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AuditLog.created_at"`)}
	}
	if _, ok := alc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AuditLog.updated_at"`)}
	}
	if _, ok := alc.mutation.ScheduleID(); !ok {
		return &ValidationError{Name: "schedule_id", err: errors.New(`ent: missing required field "AuditLog.schedule_id"`)}
	}
	if v, ok := alc.mutation.ScheduleID(); ok {
		if err := auditlog.ScheduleIDValidator(v); err != nil {
			return &ValidationError{Name: "schedule_id", err: fmt.Errorf(`ent: validator failed for field "AuditLog.schedule_id": %w`, err)}
		}
	}
	if _, ok := alc.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "AuditLog.action"`)}
	}
	if v, ok := alc.mutation.Action(); ok {
		if err := auditlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuditLog.action": %w`, err)}
		}
	}
	if len(alc.mutation.ScheduleIDs()) == 0 {
		return &ValidationError{Name: "schedule", err: errors.New(`ent: missing required edge "AuditLog.schedule"`)}
	}
	return nil
}

func (alc *AuditLogCreate) sqlSave(ctx context.Context) (*AuditLog, error) {
	if err := alc.check(); err != nil {
		return nil, err
	}
	_node, _spec := alc.createSpec()
	if err := sqlgraph.CreateNode(ctx, alc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AuditLog.ID type: %T", _spec.ID.Value)
		}
	}
	alc.mutation.id = &_node.ID
	alc.mutation.done = true
	return _node, nil
}

func (alc *AuditLogCreate) createSpec() (*AuditLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditLog{config: alc.config}
		_spec = sqlgraph.NewCreateSpec(auditlog.Table, sqlgraph.NewFieldSpec(auditlog.FieldID, field.TypeString))
	)
	if id, ok := alc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := alc.mutation.TenantID(); ok {
		_spec.SetField(auditlog.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := alc.mutation.Status(); ok {
		_spec.SetField(auditlog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := alc.mutation.CreatedAt(); ok {
		_spec.SetField(auditlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := alc.mutation.UpdatedAt(); ok {
		_spec.SetField(auditlog.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := alc.mutation.CreatedBy(); ok {
		_spec.SetField(auditlog.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := alc.mutation.UpdatedBy(); ok {
		_spec.SetField(auditlog.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := alc.mutation.Action(); ok {
		_spec.SetField(auditlog.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := alc.mutation.Description(); ok {
		_spec.SetField(auditlog.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := alc.mutation.InvoiceID(); ok {
		_spec.SetField(auditlog.FieldInvoiceID, field.TypeString, value)
		_node.InvoiceID = &value
	}
	if value, ok := alc.mutation.ExecutionID(); ok {
		_spec.SetField(auditlog.FieldExecutionID, field.TypeString, value)
		_node.ExecutionID = &value
	}
	if value, ok := alc.mutation.PaymentID(); ok {
		_spec.SetField(auditlog.FieldPaymentID, field.TypeString, value)
		_node.PaymentID = &value
	}
	if value, ok := alc.mutation.OldValues(); ok {
		_spec.SetField(auditlog.FieldOldValues, field.TypeJSON, value)
		_node.OldValues = value
	}
	if value, ok := alc.mutation.NewValues(); ok {
		_spec.SetField(auditlog.FieldNewValues, field.TypeJSON, value)
		_node.NewValues = value
	}
	if nodes := alc.mutation.ScheduleIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditlog.ScheduleTable,
			Columns: []string{auditlog.ScheduleColumn},
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

// AuditLogCreateBulk is the builder for creating many AuditLog entities in bulk.
type AuditLogCreateBulk struct {
	config
	err      error
	builders []*AuditLogCreate
}

// Save creates the AuditLog entities in the database.
func (alcb *AuditLogCreateBulk) Save(ctx context.Context) ([]*AuditLog, error) {
	if alcb.err != nil {
		return nil, alcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(alcb.builders))
	nodes := make([]*AuditLog, len(alcb.builders))
	mutators := make([]Mutator, len(alcb.builders))
	for i := range alcb.builders {
		func(i int, root context.Context) {
			builder := alcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditLogMutation)
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
					_, err = mutators[i+1].Mutate(root, alcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, alcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, alcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (alcb *AuditLogCreateBulk) SaveX(ctx context.Context) []*AuditLog {
	v, err := alcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (alcb *AuditLogCreateBulk) Exec(ctx context.Context) error {
	_, err := alcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (alcb *AuditLogCreateBulk) ExecX(ctx context.Context) {
	if err := alcb.Exec(ctx); err != nil {
		panic(err)
	}
}
