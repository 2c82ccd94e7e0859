// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/invoiceflow/invoiceflow/ent/customer"
	"github.com/invoiceflow/invoiceflow/ent/invoice"
	"github.com/invoiceflow/invoiceflow/ent/invoicelineitem"
	"github.com/shopspring/decimal"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (ic *InvoiceCreate) SetTenantID(s string) *InvoiceCreate {
	ic.mutation.SetTenantID(s)
	return ic
}

// SetStatus sets the "status" field.
func (ic *InvoiceCreate) SetStatus(s string) *InvoiceCreate {
	ic.mutation.SetStatus(s)
	return ic
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableStatus(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetStatus(*s)
	}
	return ic
}

// SetCreatedAt sets the "created_at" field.
func (ic *InvoiceCreate) SetCreatedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetCreatedAt(t)
	return ic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableCreatedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetCreatedAt(*t)
	}
	return ic
}

// SetUpdatedAt sets the "updated_at" field.
func (ic *InvoiceCreate) SetUpdatedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetUpdatedAt(t)
	return ic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableUpdatedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetUpdatedAt(*t)
	}
	return ic
}

// SetCreatedBy sets the "created_by" field.
func (ic *InvoiceCreate) SetCreatedBy(s string) *InvoiceCreate {
	ic.mutation.SetCreatedBy(s)
	return ic
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableCreatedBy(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetCreatedBy(*s)
	}
	return ic
}

// SetUpdatedBy sets the "updated_by" field.
func (ic *InvoiceCreate) SetUpdatedBy(s string) *InvoiceCreate {
	ic.mutation.SetUpdatedBy(s)
	return ic
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableUpdatedBy(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetUpdatedBy(*s)
	}
	return ic
}

// SetMetadata sets the "metadata" field.
func (ic *InvoiceCreate) SetMetadata(m map[string]string) *InvoiceCreate {
	ic.mutation.SetMetadata(m)
	return ic
}

// SetInvoiceNumber sets the "invoice_number" field.
func (ic *InvoiceCreate) SetInvoiceNumber(s string) *InvoiceCreate {
	ic.mutation.SetInvoiceNumber(s)
	return ic
}

// SetCustomerID sets the "customer_id" field.
func (ic *InvoiceCreate) SetCustomerID(s string) *InvoiceCreate {
	ic.mutation.SetCustomerID(s)
	return ic
}

// SetScheduleID sets the "schedule_id" field.
func (ic *InvoiceCreate) SetScheduleID(s string) *InvoiceCreate {
	ic.mutation.SetScheduleID(s)
	return ic
}

// SetNillableScheduleID sets the "schedule_id" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableScheduleID(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetScheduleID(*s)
	}
	return ic
}

// SetIssueDate sets the "issue_date" field.
func (ic *InvoiceCreate) SetIssueDate(t time.Time) *InvoiceCreate {
	ic.mutation.SetIssueDate(t)
	return ic
}

// SetDueDate sets the "due_date" field.
func (ic *InvoiceCreate) SetDueDate(t time.Time) *InvoiceCreate {
	ic.mutation.SetDueDate(t)
	return ic
}

// SetPeriodStart sets the "period_start" field.
func (ic *InvoiceCreate) SetPeriodStart(t time.Time) *InvoiceCreate {
	ic.mutation.SetPeriodStart(t)
	return ic
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePeriodStart(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetPeriodStart(*t)
	}
	return ic
}

// SetPeriodEnd sets the "period_end" field.
func (ic *InvoiceCreate) SetPeriodEnd(t time.Time) *InvoiceCreate {
	ic.mutation.SetPeriodEnd(t)
	return ic
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePeriodEnd(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetPeriodEnd(*t)
	}
	return ic
}

// SetCurrency sets the "currency" field.
func (ic *InvoiceCreate) SetCurrency(s string) *InvoiceCreate {
	ic.mutation.SetCurrency(s)
	return ic
}

// SetSubtotal sets the "subtotal" field.
func (ic *InvoiceCreate) SetSubtotal(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetSubtotal(d)
	return ic
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableSubtotal(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetSubtotal(*d)
	}
	return ic
}

// SetTaxTotal sets the "tax_total" field.
func (ic *InvoiceCreate) SetTaxTotal(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetTaxTotal(d)
	return ic
}

// SetNillableTaxTotal sets the "tax_total" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableTaxTotal(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetTaxTotal(*d)
	}
	return ic
}

// SetTotal sets the "total" field.
func (ic *InvoiceCreate) SetTotal(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetTotal(d)
	return ic
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableTotal(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetTotal(*d)
	}
	return ic
}

// SetAmountPaid sets the "amount_paid" field.
func (ic *InvoiceCreate) SetAmountPaid(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetAmountPaid(d)
	return ic
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableAmountPaid(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetAmountPaid(*d)
	}
	return ic
}

// SetAmountRemaining sets the "amount_remaining" field.
func (ic *InvoiceCreate) SetAmountRemaining(d decimal.Decimal) *InvoiceCreate {
	ic.mutation.SetAmountRemaining(d)
	return ic
}

// SetNillableAmountRemaining sets the "amount_remaining" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableAmountRemaining(d *decimal.Decimal) *InvoiceCreate {
	if d != nil {
		ic.SetAmountRemaining(*d)
	}
	return ic
}

// SetInvoiceStatus sets the "invoice_status" field.
func (ic *InvoiceCreate) SetInvoiceStatus(s string) *InvoiceCreate {
	ic.mutation.SetInvoiceStatus(s)
	return ic
}

// SetPaymentStatus sets the "payment_status" field.
func (ic *InvoiceCreate) SetPaymentStatus(s string) *InvoiceCreate {
	ic.mutation.SetPaymentStatus(s)
	return ic
}

// SetNotes sets the "notes" field.
func (ic *InvoiceCreate) SetNotes(s string) *InvoiceCreate {
	ic.mutation.SetNotes(s)
	return ic
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableNotes(s *string) *InvoiceCreate {
	if s != nil {
		ic.SetNotes(*s)
	}
	return ic
}

// SetPaidAt sets the "paid_at" field.
func (ic *InvoiceCreate) SetPaidAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetPaidAt(t)
	return ic
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillablePaidAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetPaidAt(*t)
	}
	return ic
}

// SetVoidedAt sets the "voided_at" field.
func (ic *InvoiceCreate) SetVoidedAt(t time.Time) *InvoiceCreate {
	ic.mutation.SetVoidedAt(t)
	return ic
}

// SetNillableVoidedAt sets the "voided_at" field if the given value is not nil.
func (ic *InvoiceCreate) SetNillableVoidedAt(t *time.Time) *InvoiceCreate {
	if t != nil {
		ic.SetVoidedAt(*t)
	}
	return ic
}

// SetID sets the "id" field.
func (ic *InvoiceCreate) SetID(s string) *InvoiceCreate {
	ic.mutation.SetID(s)
	return ic
}

// SetCustomer sets the "customer" edge to the Customer entity.
func (ic *InvoiceCreate) SetCustomer(c *Customer) *InvoiceCreate {
	return ic.SetCustomerID(c.ID)
}

// AddLineItemIDs adds the "line_items" edge to the InvoiceLineItem entity by IDs.
func (ic *InvoiceCreate) AddLineItemIDs(ids ...string) *InvoiceCreate {
	ic.mutation.AddLineItemIDs(ids...)
	return ic
}

// AddLineItems adds the "line_items" edges to the InvoiceLineItem entity.
func (ic *InvoiceCreate) AddLineItems(i ...*InvoiceLineItem) *InvoiceCreate {
	ids := make([]string, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return ic.AddLineItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (ic *InvoiceCreate) Mutation() *InvoiceMutation {
	return ic.mutation
}

// Save creates the Invoice in the database.
func (ic *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	ic.defaults()
	return withHooks(ctx, ic.sqlSave, ic.mutation, ic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ic *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := ic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ic *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := ic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ic *InvoiceCreate) ExecX(ctx context.Context) {
	if err := ic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ic *InvoiceCreate) defaults() {
	if _, ok := ic.mutation.Status(); !ok {
		v := invoice.DefaultStatus
		ic.mutation.SetStatus(v)
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		ic.mutation.SetCreatedAt(v)
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		ic.mutation.SetUpdatedAt(v)
	}
	if _, ok := ic.mutation.Metadata(); !ok {
		v := invoice.DefaultMetadata
		ic.mutation.SetMetadata(v)
	}
	if _, ok := ic.mutation.Subtotal(); !ok {
		v := invoice.DefaultSubtotal
		ic.mutation.SetSubtotal(v)
	}
	if _, ok := ic.mutation.TaxTotal(); !ok {
		v := invoice.DefaultTaxTotal
		ic.mutation.SetTaxTotal(v)
	}
	if _, ok := ic.mutation.Total(); !ok {
		v := invoice.DefaultTotal
		ic.mutation.SetTotal(v)
	}
	if _, ok := ic.mutation.AmountPaid(); !ok {
		v := invoice.DefaultAmountPaid
		ic.mutation.SetAmountPaid(v)
	}
	if _, ok := ic.mutation.AmountRemaining(); !ok {
		v := invoice.DefaultAmountRemaining
		ic.mutation.SetAmountRemaining(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ic *InvoiceCreate) check() error {
	if _, ok := ic.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Invoice.tenant_id"`)}
	}
	if v, ok := ic.mutation.TenantID(); ok {
		if err := invoice.TenantIDValidator(v); err != nil {
			return &ValidationError{Name: "tenant_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.tenant_id": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Invoice.status"`)}
	}
	if _, ok := ic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := ic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	if _, ok := ic.mutation.Metadata(); !ok {
		return &ValidationError{Name: "metadata", err: errors.New(`ent: missing required field "Invoice.metadata"`)}
	}
	if _, ok := ic.mutation.InvoiceNumber(); !ok {
		return &ValidationError{Name: "invoice_number", err: errors.New(`ent: missing required field "Invoice.invoice_number"`)}
	}
	if v, ok := ic.mutation.InvoiceNumber(); ok {
		if err := invoice.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_number": %w`, err)}
		}
	}
	if _, ok := ic.mutation.CustomerID(); !ok {
		return &ValidationError{Name: "customer_id", err: errors.New(`ent: missing required field "Invoice.customer_id"`)}
	}
	if v, ok := ic.mutation.CustomerID(); ok {
		if err := invoice.CustomerIDValidator(v); err != nil {
			return &ValidationError{Name: "customer_id", err: fmt.Errorf(`ent: validator failed for field "Invoice.customer_id": %w`, err)}
		}
	}
	if _, ok := ic.mutation.IssueDate(); !ok {
		return &ValidationError{Name: "issue_date", err: errors.New(`ent: missing required field "Invoice.issue_date"`)}
	}
	if _, ok := ic.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`ent: missing required field "Invoice.due_date"`)}
	}
	if _, ok := ic.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Invoice.currency"`)}
	}
	if v, ok := ic.mutation.Currency(); ok {
		if err := invoice.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Invoice.currency": %w`, err)}
		}
	}
	if _, ok := ic.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`ent: missing required field "Invoice.subtotal"`)}
	}
	if _, ok := ic.mutation.TaxTotal(); !ok {
		return &ValidationError{Name: "tax_total", err: errors.New(`ent: missing required field "Invoice.tax_total"`)}
	}
	if _, ok := ic.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "Invoice.total"`)}
	}
	if _, ok := ic.mutation.AmountPaid(); !ok {
		return &ValidationError{Name: "amount_paid", err: errors.New(`ent: missing required field "Invoice.amount_paid"`)}
	}
	if _, ok := ic.mutation.AmountRemaining(); !ok {
		return &ValidationError{Name: "amount_remaining", err: errors.New(`ent: missing required field "Invoice.amount_remaining"`)}
	}
	if _, ok := ic.mutation.InvoiceStatus(); !ok {
		return &ValidationError{Name: "invoice_status", err: errors.New(`ent: missing required field "Invoice.invoice_status"`)}
	}
	if v, ok := ic.mutation.InvoiceStatus(); ok {
		if err := invoice.InvoiceStatusValidator(v); err != nil {
			return &ValidationError{Name: "invoice_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_status": %w`, err)}
		}
	}
	if _, ok := ic.mutation.PaymentStatus(); !ok {
		return &ValidationError{Name: "payment_status", err: errors.New(`ent: missing required field "Invoice.payment_status"`)}
	}
	if v, ok := ic.mutation.PaymentStatus(); ok {
		if err := invoice.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_status": %w`, err)}
		}
	}
	if len(ic.mutation.CustomerIDs()) == 0 {
		return &ValidationError{Name: "customer", err: errors.New(`ent: missing required edge "Invoice.customer"`)}
	}
	return nil
}

func (ic *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := ic.check(); err != nil {
		return nil, err
	}
	_node, _spec := ic.createSpec()
	if err := sqlgraph.CreateNode(ctx, ic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Invoice.ID type: %T", _spec.ID.Value)
		}
	}
	ic.mutation.id = &_node.ID
	ic.mutation.done = true
	return _node, nil
}

func (ic *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: ic.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString))
	)
	if id, ok := ic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ic.mutation.TenantID(); ok {
		_spec.SetField(invoice.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := ic.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ic.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ic.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := ic.mutation.CreatedBy(); ok {
		_spec.SetField(invoice.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	if value, ok := ic.mutation.UpdatedBy(); ok {
		_spec.SetField(invoice.FieldUpdatedBy, field.TypeString, value)
		_node.UpdatedBy = value
	}
	if value, ok := ic.mutation.Metadata(); ok {
		_spec.SetField(invoice.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := ic.mutation.InvoiceNumber(); ok {
		_spec.SetField(invoice.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = value
	}
	if value, ok := ic.mutation.ScheduleID(); ok {
		_spec.SetField(invoice.FieldScheduleID, field.TypeString, value)
		_node.ScheduleID = &value
	}
	if value, ok := ic.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
		_node.IssueDate = value
	}
	if value, ok := ic.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := ic.mutation.PeriodStart(); ok {
		_spec.SetField(invoice.FieldPeriodStart, field.TypeTime, value)
		_node.PeriodStart = &value
	}
	if value, ok := ic.mutation.PeriodEnd(); ok {
		_spec.SetField(invoice.FieldPeriodEnd, field.TypeTime, value)
		_node.PeriodEnd = &value
	}
	if value, ok := ic.mutation.Currency(); ok {
		_spec.SetField(invoice.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := ic.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeOther, value)
		_node.Subtotal = value
	}
	if value, ok := ic.mutation.TaxTotal(); ok {
		_spec.SetField(invoice.FieldTaxTotal, field.TypeOther, value)
		_node.TaxTotal = value
	}
	if value, ok := ic.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeOther, value)
		_node.Total = value
	}
	if value, ok := ic.mutation.AmountPaid(); ok {
		_spec.SetField(invoice.FieldAmountPaid, field.TypeOther, value)
		_node.AmountPaid = value
	}
	if value, ok := ic.mutation.AmountRemaining(); ok {
		_spec.SetField(invoice.FieldAmountRemaining, field.TypeOther, value)
		_node.AmountRemaining = value
	}
	if value, ok := ic.mutation.InvoiceStatus(); ok {
		_spec.SetField(invoice.FieldInvoiceStatus, field.TypeString, value)
		_node.InvoiceStatus = value
	}
	if value, ok := ic.mutation.PaymentStatus(); ok {
		_spec.SetField(invoice.FieldPaymentStatus, field.TypeString, value)
		_node.PaymentStatus = value
	}
	if value, ok := ic.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := ic.mutation.PaidAt(); ok {
		_spec.SetField(invoice.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if value, ok := ic.mutation.VoidedAt(); ok {
		_spec.SetField(invoice.FieldVoidedAt, field.TypeTime, value)
		_node.VoidedAt = &value
	}
	if nodes := ic.mutation.CustomerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.CustomerTable,
			Columns: []string{invoice.CustomerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(customer.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CustomerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ic.mutation.LineItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   invoice.LineItemsTable,
			Columns: []string{invoice.LineItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (icb *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if icb.err != nil {
		return nil, icb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(icb.builders))
	nodes := make([]*Invoice, len(icb.builders))
	mutators := make([]Mutator, len(icb.builders))
	for i := range icb.builders {
		func(i int, root context.Context) {
			builder := icb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
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
					_, err = mutators[i+1].Mutate(root, icb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, icb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, icb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (icb *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := icb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (icb *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := icb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (icb *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := icb.Exec(ctx); err != nil {
		panic(err)
	}
}
