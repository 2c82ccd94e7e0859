// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoiceflow/invoiceflow/ent/payment"
	"github.com/invoiceflow/invoiceflow/ent/paymentattempt"
	"github.com/shopspring/decimal"
)

// PaymentCreate is the builder for creating a Payment entity.
type PaymentCreate struct {
	config
	mutation *PaymentMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (pc *PaymentCreate) SetTenantID(s string) *PaymentCreate {
	pc.mutation.SetTenantID(s)
	return pc
}

// SetStatus sets the "status" field.
func (pc *PaymentCreate) SetStatus(s string) *PaymentCreate {
	pc.mutation.SetStatus(s)
	return pc
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableStatus(s *string) *PaymentCreate {
	if s != nil {
		pc.SetStatus(*s)
	}
	return pc
}

// SetCreatedAt sets the "created_at" field.
func (pc *PaymentCreate) SetCreatedAt(t time.Time) *PaymentCreate {
	pc.mutation.SetCreatedAt(t)
	return pc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableCreatedAt(t *time.Time) *PaymentCreate {
	if t != nil {
		pc.SetCreatedAt(*t)
	}
	return pc
}

// SetUpdatedAt sets the "updated_at" field.
func (pc *PaymentCreate) SetUpdatedAt(t time.Time) *PaymentCreate {
	pc.mutation.SetUpdatedAt(t)
	return pc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableUpdatedAt(t *time.Time) *PaymentCreate {
	if t != nil {
		pc.SetUpdatedAt(*t)
	}
	return pc
}

// SetCreatedBy sets the "created_by" field.
func (pc *PaymentCreate) SetCreatedBy(s string) *PaymentCreate {
	pc.mutation.SetCreatedBy(s)
	return pc
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableCreatedBy(s *string) *PaymentCreate {
	if s != nil {
		pc.SetCreatedBy(*s)
	}
	return pc
}

// SetUpdatedBy sets the "updated_by" field.
func (pc *PaymentCreate) SetUpdatedBy(s string) *PaymentCreate {
	pc.mutation.SetUpdatedBy(s)
	return pc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableUpdatedBy(s *string) *PaymentCreate {
	if s != nil {
		pc.SetUpdatedBy(*s)
	}
	return pc
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (pc *PaymentCreate) SetIdempotencyKey(s string) *PaymentCreate {
	pc.mutation.SetIdempotencyKey(s)
	return pc
}

// SetInvoiceID sets the "invoice_id" field.
func (pc *PaymentCreate) SetInvoiceID(s string) *PaymentCreate {
	pc.mutation.SetInvoiceID(s)
	return pc
}

// SetScheduleID sets the "schedule_id" field.
func (pc *PaymentCreate) SetScheduleID(s string) *PaymentCreate {
	pc.mutation.SetScheduleID(s)
	return pc
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableScheduleID(s *string) *PaymentCreate {
	if s != nil {
		pc.SetScheduleID(*s)
	}
	return pc
}

// SetAmount sets the "amount" field.
func (pc *PaymentCreate) SetAmount(d decimal.Decimal) *PaymentCreate {
	pc.mutation.SetAmount(d)
	return pc
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableAmount(d *decimal.Decimal) *PaymentCreate {
	if d != nil {
		pc.SetAmount(*d)
	}
	return pc
}

// SetCurrency sets the "currency" field.
func (pc *PaymentCreate) SetCurrency(s string) *PaymentCreate {
	pc.mutation.SetCurrency(s)
	return pc
}

// SetPaymentStatus sets the "payment_status" field.
func (pc *PaymentCreate) SetPaymentStatus(s string) *PaymentCreate {
	pc.mutation.SetPaymentStatus(s)
	return pc
}

// SetPaymentGateway sets the "payment_gateway" field.
func (pc *PaymentCreate) SetPaymentGateway(s string) *PaymentCreate {
	pc.mutation.SetPaymentGateway(s)
	return pc
}

// SetNillablePaymentGateway sets the "payment_gateway" field if the given value is not nil.
func (pc *PaymentCreate) SetNillablePaymentGateway(s *string) *PaymentCreate {
	if s != nil {
		pc.SetPaymentGateway(*s)
	}
	return pc
}

// SetGatewayPaymentID sets the "gateway_payment_id" field.
func (pc *PaymentCreate) SetGatewayPaymentID(s string) *PaymentCreate {
	pc.mutation.SetGatewayPaymentID(s)
	return pc
}

// SetNillableGatewayPaymentID sets the "gateway_payment_id" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableGatewayPaymentID(s *string) *PaymentCreate {
	if s != nil {
		pc.SetGatewayPaymentID(*s)
	}
	return pc
}

// SetRetryCount sets the "retry_count" field.
func (pc *PaymentCreate) SetRetryCount(i int) *PaymentCreate {
	pc.mutation.SetRetryCount(i)
	return pc
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableRetryCount(i *int) *PaymentCreate {
	if i != nil {
		pc.SetRetryCount(*i)
	}
	return pc
}

// SetMaxRetries sets the "max_retries" field.
func (pc *PaymentCreate) SetMaxRetries(i int) *PaymentCreate {
	pc.mutation.SetMaxRetries(i)
	return pc
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableMaxRetries(i *int) *PaymentCreate {
	if i != nil {
		pc.SetMaxRetries(*i)
	}
	return pc
}

// SetNextRetryAt sets the "next_retry_at" field.
func (pc *PaymentCreate) SetNextRetryAt(t time.Time) *PaymentCreate {
	pc.mutation.SetNextRetryAt(t)
	return pc
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableNextRetryAt(t *time.Time) *PaymentCreate {
	if t != nil {
		pc.SetNextRetryAt(*t)
	}
	return pc
}

// SetSucceededAt sets the "succeeded_at" field.
func (pc *PaymentCreate) SetSucceededAt(t time.Time) *PaymentCreate {
	pc.mutation.SetSucceededAt(t)
	return pc
}

// SetNillableSucceededAt sets the "succeeded_at" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableSucceededAt(t *time.Time) *PaymentCreate {
	if t != nil {
		pc.SetSucceededAt(*t)
	}
	return pc
}

// SetFailedAt sets the "failed_at" field.
func (pc *PaymentCreate) SetFailedAt(t time.Time) *PaymentCreate {
	pc.mutation.SetFailedAt(t)
	return pc
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableFailedAt(t *time.Time) *PaymentCreate {
	if t != nil {
		pc.SetFailedAt(*t)
	}
	return pc
}

// SetErrorMessage sets the "error_message" field.
func (pc *PaymentCreate) SetErrorMessage(s string) *PaymentCreate {
	pc.mutation.SetErrorMessage(s)
	return pc
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (pc *PaymentCreate) SetNillableErrorMessage(s *string) *PaymentCreate {
	if s != nil {
		pc.SetErrorMessage(*s)
	}
	return pc
}

// SetID sets the "id" field.
func (pc *PaymentCreate) SetID(s string) *PaymentCreate {
	pc.mutation.SetID(s)
	return pc
}

// AddAttemptIDs adds the "attempts" edge to the PaymentAttempt entity by IDs.
func (pc *PaymentCreate) AddAttemptIDs(ids ...string) *PaymentCreate {
	pc.mutation.AddAttemptIDs(ids...)
	return pc
}

// AddAttempts adds the "attempts" edges to the PaymentAttempt entity.
func (pc *PaymentCreate) AddAttempts(p ...*PaymentAttempt) *PaymentCreate {
	ids := make([]string, len(p))
	for i := range p {
		ids[i] = p[i].ID
	}
	return pc.AddAttemptIDs(ids...)
}

// Mutation returns the PaymentMutation object of the builder.
func (pc *PaymentCreate) Mutation() *PaymentMutation {
	return pc.mutation
}

// Save creates the Payment in the database.
func (pc *PaymentCreate) Save(ctx context.Context) (*Payment, error) {
	pc.defaults()
	return withHooks(ctx, pc.sqlSave, pc.mutation, pc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (pc *PaymentCreate) SaveX(ctx context.Context) *Payment {
	v, err := pc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pc *PaymentCreate) Exec(ctx context.Context) error {
	_, err := pc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pc *PaymentCreate) ExecX(ctx context.Context) {
	if err := pc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (pc *PaymentCreate) defaults() {
	if _, ok := pc.mutation.Status(); !ok {
		v := payment.DefaultStatus
		pc.mutation.SetStatus(v)
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		v := payment.DefaultCreatedAt()
		pc.mutation.SetCreatedAt(v)
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		v := payment.DefaultUpdatedAt()
		pc.mutation.SetUpdatedAt(v)
	}
	if _, ok := pc.mutation.Amount(); !ok {
		v := payment.DefaultAmount
		pc.mutation.SetAmount(v)
	}
	if _, ok := pc.mutation.RetryCount(); !ok {
		v := payment.DefaultRetryCount
		pc.mutation.SetRetryCount(v)
	}
	if _, ok := pc.mutation.MaxRetries(); !ok {
		v := payment.DefaultMaxRetries
		pc.mutation.SetMaxRetries(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pc *PaymentCreate) check() error {
	if _, ok := pc.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Payment.tenant_id"`)}
	}
	if v, ok := pc.mutation.TenantID(); ok {
		if err := payment.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Payment.tenant_id": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Payment.status"`)}
	}
	if _, ok := pc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Payment.created_at"`)}
	}
	if _, ok := pc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Payment.updated_at"`)}
	}
	if _, ok := pc.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "Payment.idempotency_key"`)}
	}
	if _, ok := pc.mutation.InvoiceID(); !ok {
		return &ValidationError{Name: "invoice_id", err: errors.New(`ent: missing required field "Payment.invoice_id"`)}
	}
	if v, ok := pc.mutation.InvoiceID(); ok {
		if err := payment.InvoiceIDValidator(v); err != nil {
			return &ValidationError{Name: "invoice_id", err: fmt.Errorf(`ent: validator failed for field "Payment.invoice_id": %w`, err)}
		}
	}
	if _, ok := pc.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "Payment.amount"`)}
	}
	if _, ok := pc.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Payment.currency"`)}
	}
	if v, ok := pc.mutation.Currency(); ok {
		if err := payment.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Payment.currency": %w`, err)}
		}
	}
	if _, ok := pc.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`ent: missing required field "Payment.payment_status"`)}
	}
	if v, ok := pc.mutation.PaymentStatus(); ok {
		if err := payment.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Payment.payment_status": %w`, err)}
		}
	}
	if _, ok := pc.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Payment.retry_count"`)}
	}
	if _, ok := pc.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "Payment.max_retries"`)}
	}
	return nil
}

func (pc *PaymentCreate) sqlSave(ctx context.Context) (*Payment, error) {
	if err := pc.check(); err != nil {
		return nil, err
	}
	_node, _spec := pc.createSpec()
	if err := sqlgraph.CreateNode(ctx, pc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Payment.ID type: %T", _spec.ID.Value)
		}
	}
	pc.mutation.id = &_node.ID
	pc.mutation.done = true
	return _node, nil
}

func (pc *PaymentCreate) createSpec() (*Payment, *sqlgraph.CreateSpec) {
	var (
		_node = &Payment{config: pc.config}
		_spec = sqlgraph.NewCreateSpec(payment.Table, sqlgraph.NewFieldSpec(payment.FieldID, field.TypeString))
	)
	if id, ok := pc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := pc.mutation.TenantID(); ok {
		_spec.SetField(payment.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := pc.mutation.Status(); ok {
		_spec.SetField(payment.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := pc.mutation.CreatedAt(); ok {
		_spec.SetField(payment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := pc.mutation.UpdatedAt(); ok {
		_spec.SetField(payment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := pc.mutation.CreatedBy(); ok {
		_spec.SetField(payment.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := pc.mutation.UpdatedBy(); ok {
		_spec.SetField(payment.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := pc.mutation.IdempotencyKey(); ok {
		_spec.SetField(payment.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := pc.mutation.InvoiceID(); ok {
		_spec.SetField(payment.FieldInvoiceID, field.TypeString, value)
		_node.InvoiceID = value
	}
	if value, ok := pc.mutation.ScheduleID(); ok {
		_spec.SetField(payment.FieldScheduleID, field.TypeString, value)
		_node.ScheduleID = &value
	}
	if value, ok := pc.mutation.Amount(); ok {
		_spec.SetField(payment.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := pc.mutation.Currency(); ok {
		_spec.SetField(payment.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := pc.mutation.PaymentStatus(); ok {
		_spec.SetField(payment.FieldPaymentStatus, field.TypeString, value)
		_node.PaymentStatus = value
	}
	if value, ok := pc.mutation.PaymentGateway(); ok {
		_spec.SetField(payment.FieldPaymentGateway, field.TypeString, value)
		_node.PaymentGateway = &value
	}
	if value, ok := pc.mutation.GatewayPaymentID(); ok {
		_spec.SetField(payment.FieldGatewayPaymentID, field.TypeString, value)
		_node.GatewayPaymentID = &value
	}
	if value, ok := pc.mutation.RetryCount(); ok {
		_spec.SetField(payment.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := pc.mutation.MaxRetries(); ok {
		_spec.SetField(payment.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := pc.mutation.NextRetryAt(); ok {
		_spec.SetField(payment.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := pc.mutation.SucceededAt(); ok {
		_spec.SetField(payment.FieldSucceededAt, field.TypeTime, value)
		_node.SucceededAt = &value
	}
	if value, ok := pc.mutation.FailedAt(); ok {
		_spec.SetField(payment.FieldFailedAt, field.TypeTime, value)
		_node.FailedAt = &value
	}
	if value, ok := pc.mutation.ErrorMessage(); ok {
		_spec.SetField(payment.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := pc.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   payment.AttemptsTable,
			Columns: []string{payment.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PaymentCreateBulk is the builder for creating many Payment entities in bulk.
type PaymentCreateBulk struct {
	config
	err      error
	builders []*PaymentCreate
}

// Save creates the Payment entities in the database.
func (pcb *PaymentCreateBulk) Save(ctx context.Context) ([]*Payment, error) {
	if pcb.err != nil {
		return nil, pcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(pcb.builders))
	nodes := make([]*Payment, len(pcb.builders))
	mutators := make([]Mutator, len(pcb.builders))
	for i := range pcb.builders {
		func(i int, root context.Context) {
			builder := pcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentMutation)
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
					_, err = mutators[i+1].Mutate(root, pcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pcb *PaymentCreateBulk) SaveX(ctx context.Context) []*Payment {
	v, err := pcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pcb *PaymentCreateBulk) Exec(ctx context.Context) error {
	_, err := pcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pcb *PaymentCreateBulk) ExecX(ctx context.Context) {
	if err := pcb.Exec(ctx); err != nil {
		panic(err)
	}
}
