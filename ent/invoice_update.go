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
	"github.com/invoiceflow/invoiceflow/ent/invoice"
	"github.com/invoiceflow/invoiceflow/ent/invoicelineitem"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
	"github.com/shopspring/decimal"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (iu *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	iu.mutation.Where(ps...)
	return iu
}

// SetStatus sets the "status" field.
func (iu *InvoiceUpdate) SetStatus(s string) *InvoiceUpdate {
	iu.mutation.SetStatus(s)
	return iu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableStatus(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetStatus(*s)
	}
	return iu
}

// SetUpdatedAt sets the "updated_at" field.
func (iu *InvoiceUpdate) SetUpdatedAt(t time.Time) *InvoiceUpdate {
	iu.mutation.SetUpdatedAt(t)
	return iu
}

// SetUpdatedBy sets the "updated_by" field.
func (iu *InvoiceUpdate) SetUpdatedBy(s string) *InvoiceUpdate {
	iu.mutation.SetUpdatedBy(s)
	return iu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableUpdatedBy(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetUpdatedBy(*s)
	}
	return iu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (iu *InvoiceUpdate) ClearUpdatedBy() *InvoiceUpdate {
	iu.mutation.ClearUpdatedBy()
	return iu
}

// SetMetadata sets the "metadata" field.
func (iu *InvoiceUpdate) SetMetadata(m map[string]string) *InvoiceUpdate {
	iu.mutation.SetMetadata(m)
	return iu
}

// SetIssueDate sets the "issue_date" field.
func (iu *InvoiceUpdate) SetIssueDate(t time.Time) *InvoiceUpdate {
	iu.mutation.SetIssueDate(t)
	return iu
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableIssueDate(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetIssueDate(*t)
	}
	return iu
}

// SetDueDate sets the "due_date" field.
func (iu *InvoiceUpdate) SetDueDate(t time.Time) *InvoiceUpdate {
	iu.mutation.SetDueDate(t)
	return iu
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableDueDate(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetDueDate(*t)
	}
	return iu
}

// SetPeriodStart sets the "period_start" field.
func (iu *InvoiceUpdate) SetPeriodStart(t time.Time) *InvoiceUpdate {
	iu.mutation.SetPeriodStart(t)
	return iu
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePeriodStart(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetPeriodStart(*t)
	}
	return iu
}

// ClearPeriodStart clears the value of the "period_start" field.
func (iu *InvoiceUpdate) ClearPeriodStart() *InvoiceUpdate {
	iu.mutation.ClearPeriodStart()
	return iu
}

// SetPeriodEnd sets the "period_end" field.
func (iu *InvoiceUpdate) SetPeriodEnd(t time.Time) *InvoiceUpdate {
	iu.mutation.SetPeriodEnd(t)
	return iu
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePeriodEnd(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetPeriodEnd(*t)
	}
	return iu
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (iu *InvoiceUpdate) ClearPeriodEnd() *InvoiceUpdate {
	iu.mutation.ClearPeriodEnd()
	return iu
}

// SetSubtotal sets the "subtotal" field.
func (iu *InvoiceUpdate) SetSubtotal(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetSubtotal(d)
	return iu
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableSubtotal(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetSubtotal(*d)
	}
	return iu
}

// SetTaxTotal sets the "tax_total" field.
func (iu *InvoiceUpdate) SetTaxTotal(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetTaxTotal(d)
	return iu
}

// SetNillableTaxTotal sets the "tax_total" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTaxTotal(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetTaxTotal(*d)
	}
	return iu
}

// SetTotal sets the "total" field.
func (iu *InvoiceUpdate) SetTotal(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetTotal(d)
	return iu
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableTotal(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetTotal(*d)
	}
	return iu
}

// SetAmountPaid sets the "amount_paid" field.
func (iu *InvoiceUpdate) SetAmountPaid(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetAmountPaid(d)
	return iu
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableAmountPaid(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetAmountPaid(*d)
	}
	return iu
}

// SetAmountRemaining sets the "amount_remaining" field.
func (iu *InvoiceUpdate) SetAmountRemaining(d decimal.Decimal) *InvoiceUpdate {
	iu.mutation.SetAmountRemaining(d)
	return iu
}

// SetNillableAmountRemaining sets the "amount_remaining" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableAmountRemaining(d *decimal.Decimal) *InvoiceUpdate {
	if d != nil {
		iu.SetAmountRemaining(*d)
	}
	return iu
}

// SetInvoiceStatus sets the "invoice_status" field.
func (iu *InvoiceUpdate) SetInvoiceStatus(s string) *InvoiceUpdate {
	iu.mutation.SetInvoiceStatus(s)
	return iu
}

// SetNillableInvoiceStatus sets the "invoice_status" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableInvoiceStatus(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetInvoiceStatus(*s)
	}
	return iu
}

// SetPaymentStatus sets the "payment_status" field.
func (iu *InvoiceUpdate) SetPaymentStatus(s string) *InvoiceUpdate {
	iu.mutation.SetPaymentStatus(s)
	return iu
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePaymentStatus(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetPaymentStatus(*s)
	}
	return iu
}

// SetNotes sets the "notes" field.
func (iu *InvoiceUpdate) SetNotes(s string) *InvoiceUpdate {
	iu.mutation.SetNotes(s)
	return iu
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableNotes(s *string) *InvoiceUpdate {
	if s != nil {
		iu.SetNotes(*s)
	}
	return iu
}

// ClearNotes clears the value of the "notes" field.
func (iu *InvoiceUpdate) ClearNotes() *InvoiceUpdate {
	iu.mutation.ClearNotes()
	return iu
}

// SetPaidAt sets the "paid_at" field.
func (iu *InvoiceUpdate) SetPaidAt(t time.Time) *InvoiceUpdate {
	iu.mutation.SetPaidAt(t)
	return iu
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillablePaidAt(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetPaidAt(*t)
	}
	return iu
}

// ClearPaidAt clears the value of the "paid_at" field.
func (iu *InvoiceUpdate) ClearPaidAt() *InvoiceUpdate {
	iu.mutation.ClearPaidAt()
	return iu
}

// SetVoidedAt sets the "voided_at" field.
func (iu *InvoiceUpdate) SetVoidedAt(t time.Time) *InvoiceUpdate {
	iu.mutation.SetVoidedAt(t)
	return iu
}

// SetNillableVoidedAt sets the "voided_at" field if the given value is not nil.
func (iu *InvoiceUpdate) SetNillableVoidedAt(t *time.Time) *InvoiceUpdate {
	if t != nil {
		iu.SetVoidedAt(*t)
	}
	return iu
}

// ClearVoidedAt clears the value of the "voided_at" field.
func (iu *InvoiceUpdate) ClearVoidedAt() *InvoiceUpdate {
	iu.mutation.ClearVoidedAt()
	return iu
}

// AddLineItemIDs adds the "line_items" edge to the InvoiceLineItem entity by IDs.
func (iu *InvoiceUpdate) AddLineItemIDs(ids ...string) *InvoiceUpdate {
	iu.mutation.AddLineItemIDs(ids...)
	return iu
}

// AddLineItems adds the "line_items" edges to the InvoiceLineItem entity.
func (iu *InvoiceUpdate) AddLineItems(i ...*InvoiceLineItem) *InvoiceUpdate {
	ids := make([]string, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return iu.AddLineItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (iu *InvoiceUpdate) Mutation() *InvoiceMutation {
	return iu.mutation
}

// ClearLineItems clears all "line_items" edges to the InvoiceLineItem entity.
func (iu *InvoiceUpdate) ClearLineItems() *InvoiceUpdate {
	iu.mutation.ClearLineItems()
	return iu
}

// RemoveLineItemIDs removes the "line_items" edge to InvoiceLineItem entities by IDs.
func (iu *InvoiceUpdate) RemoveLineItemIDs(ids ...string) *InvoiceUpdate {
	iu.mutation.RemoveLineItemIDs(ids...)
	return iu
}

// RemoveLineItems removes "line_items" edges to InvoiceLineItem entities.
func (iu *InvoiceUpdate) RemoveLineItems(i ...*InvoiceLineItem) *InvoiceUpdate {
	ids := make([]string, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return iu.RemoveLineItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iu *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	iu.defaults()
	return withHooks(ctx, iu.sqlSave, iu.mutation, iu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iu *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := iu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iu *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := iu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iu *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := iu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iu *InvoiceUpdate) defaults() {
	if _, ok := iu.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		iu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iu *InvoiceUpdate) check() error {
	if v, ok := iu.mutation.InvoiceStatus(); ok {
		if err := invoice.InvoiceStatusValidator(v); err != nil {
			return &ValidationError{Name: "invoice_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_status": %w`, err)}
		}
	}
	if v, ok := iu.mutation.PaymentStatus(); ok {
		if err := invoice.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_status": %w`, err)}
		}
	}
	if iu.mutation.CustomerCleared() && len(iu.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.customer"`)
	}
	return nil
}

func (iu *InvoiceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString))
	if ps := iu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iu.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := iu.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if iu.mutation.CreatedByCleared() {
		_spec.ClearField(invoice.FieldCreatedBy, field.TypeString)
	}
	if value, ok := iu.mutation.UpdatedBy(); ok {
		_spec.SetField(invoice.FieldUpdatedBy, field.TypeString, value)
	}
	if iu.mutation.UpdatedByCleared() {
		_spec.ClearField(invoice.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := iu.mutation.Metadata(); ok {
		_spec.SetField(invoice.FieldMetadata, field.TypeJSON, value)
	}
	if iu.mutation.ScheduleIDCleared() {
		_spec.ClearField(invoice.FieldScheduleID, field.TypeString)
	}
	if value, ok := iu.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := iu.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := iu.mutation.PeriodStart(); ok {
		_spec.SetField(invoice.FieldPeriodStart, field.TypeTime, value)
	}
	if iu.mutation.PeriodStartCleared() {
		_spec.ClearField(invoice.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := iu.mutation.PeriodEnd(); ok {
		_spec.SetField(invoice.FieldPeriodEnd, field.TypeTime, value)
	}
	if iu.mutation.PeriodEndCleared() {
		_spec.ClearField(invoice.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := iu.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeOther, value)
	}
	if value, ok := iu.mutation.TaxTotal(); ok {
		_spec.SetField(invoice.FieldTaxTotal, field.TypeOther, value)
	}
	if value, ok := iu.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeOther, value)
	}
	if value, ok := iu.mutation.AmountPaid(); ok {
		_spec.SetField(invoice.FieldAmountPaid, field.TypeOther, value)
	}
	if value, ok := iu.mutation.AmountRemaining(); ok {
		_spec.SetField(invoice.FieldAmountRemaining, field.TypeOther, value)
	}
	if value, ok := iu.mutation.InvoiceStatus(); ok {
		_spec.SetField(invoice.FieldInvoiceStatus, field.TypeString, value)
	}
	if value, ok := iu.mutation.PaymentStatus(); ok {
		_spec.SetField(invoice.FieldPaymentStatus, field.TypeString, value)
	}
	if value, ok := iu.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if iu.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := iu.mutation.PaidAt(); ok {
		_spec.SetField(invoice.FieldPaidAt, field.TypeTime, value)
	}
	if iu.mutation.PaidAtCleared() {
		_spec.ClearField(invoice.FieldPaidAt, field.TypeTime)
	}
	if value, ok := iu.mutation.VoidedAt(); ok {
		_spec.SetField(invoice.FieldVoidedAt, field.TypeTime, value)
	}
	if iu.mutation.VoidedAtCleared() {
		_spec.ClearField(invoice.FieldVoidedAt, field.TypeTime)
	}
	if iu.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iu.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !iu.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iu.mutation.LineItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iu.mutation.done = true
	return n, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetStatus sets the "status" field.
func (iuo *InvoiceUpdateOne) SetStatus(s string) *InvoiceUpdateOne {
	iuo.mutation.SetStatus(s)
	return iuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableStatus(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetStatus(*s)
	}
	return iuo
}

// SetUpdatedAt sets the "updated_at" field.
func (iuo *InvoiceUpdateOne) SetUpdatedAt(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetUpdatedAt(t)
	return iuo
}

// SetUpdatedBy sets the "updated_by" field.
func (iuo *InvoiceUpdateOne) SetUpdatedBy(s string) *InvoiceUpdateOne {
	iuo.mutation.SetUpdatedBy(s)
	return iuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableUpdatedBy(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetUpdatedBy(*s)
	}
	return iuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (iuo *InvoiceUpdateOne) ClearUpdatedBy() *InvoiceUpdateOne {
	iuo.mutation.ClearUpdatedBy()
	return iuo
}

// SetMetadata sets the "metadata" field.
func (iuo *InvoiceUpdateOne) SetMetadata(m map[string]string) *InvoiceUpdateOne {
	iuo.mutation.SetMetadata(m)
	return iuo
}

// SetIssueDate sets the "issue_date" field.
func (iuo *InvoiceUpdateOne) SetIssueDate(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetIssueDate(t)
	return iuo
}

// SetNillableIssueDate sets the "issue_date" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableIssueDate(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetIssueDate(*t)
	}
	return iuo
}

// SetDueDate sets the "due_date" field.
func (iuo *InvoiceUpdateOne) SetDueDate(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetDueDate(t)
	return iuo
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableDueDate(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetDueDate(*t)
	}
	return iuo
}

// SetPeriodStart sets the "period_start" field.
func (iuo *InvoiceUpdateOne) SetPeriodStart(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetPeriodStart(t)
	return iuo
}

// SetNillablePeriodStart sets the "period_start" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePeriodStart(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetPeriodStart(*t)
	}
	return iuo
}

// ClearPeriodStart clears the value of the "period_start" field.
func (iuo *InvoiceUpdateOne) ClearPeriodStart() *InvoiceUpdateOne {
	iuo.mutation.ClearPeriodStart()
	return iuo
}

// SetPeriodEnd sets the "period_end" field.
func (iuo *InvoiceUpdateOne) SetPeriodEnd(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetPeriodEnd(t)
	return iuo
}

// SetNillablePeriodEnd sets the "period_end" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePeriodEnd(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetPeriodEnd(*t)
	}
	return iuo
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (iuo *InvoiceUpdateOne) ClearPeriodEnd() *InvoiceUpdateOne {
	iuo.mutation.ClearPeriodEnd()
	return iuo
}

// SetSubtotal sets the "subtotal" field.
func (iuo *InvoiceUpdateOne) SetSubtotal(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetSubtotal(d)
	return iuo
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableSubtotal(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetSubtotal(*d)
	}
	return iuo
}

// SetTaxTotal sets the "tax_total" field.
func (iuo *InvoiceUpdateOne) SetTaxTotal(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetTaxTotal(d)
	return iuo
}

// SetNillableTaxTotal sets the "tax_total" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTaxTotal(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetTaxTotal(*d)
	}
	return iuo
}

// SetTotal sets the "total" field.
func (iuo *InvoiceUpdateOne) SetTotal(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetTotal(d)
	return iuo
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableTotal(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetTotal(*d)
	}
	return iuo
}

// SetAmountPaid sets the "amount_paid" field.
func (iuo *InvoiceUpdateOne) SetAmountPaid(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetAmountPaid(d)
	return iuo
}

// SetNillableAmountPaid sets the "amount_paid" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableAmountPaid(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetAmountPaid(*d)
	}
	return iuo
}

// SetAmountRemaining sets the "amount_remaining" field.
func (iuo *InvoiceUpdateOne) SetAmountRemaining(d decimal.Decimal) *InvoiceUpdateOne {
	iuo.mutation.SetAmountRemaining(d)
	return iuo
}

// SetNillableAmountRemaining sets the "amount_remaining" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableAmountRemaining(d *decimal.Decimal) *InvoiceUpdateOne {
	if d != nil {
		iuo.SetAmountRemaining(*d)
	}
	return iuo
}

// SetInvoiceStatus sets the "invoice_status" field.
func (iuo *InvoiceUpdateOne) SetInvoiceStatus(s string) *InvoiceUpdateOne {
	iuo.mutation.SetInvoiceStatus(s)
	return iuo
}

// SetNillableInvoiceStatus sets the "invoice_status" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableInvoiceStatus(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetInvoiceStatus(*s)
	}
	return iuo
}

// SetPaymentStatus sets the "payment_status" field.
func (iuo *InvoiceUpdateOne) SetPaymentStatus(s string) *InvoiceUpdateOne {
	iuo.mutation.SetPaymentStatus(s)
	return iuo
}

// SetNillablePaymentStatus sets the "payment_status" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePaymentStatus(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetPaymentStatus(*s)
	}
	return iuo
}

// SetNotes sets the "notes" field.
func (iuo *InvoiceUpdateOne) SetNotes(s string) *InvoiceUpdateOne {
	iuo.mutation.SetNotes(s)
	return iuo
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableNotes(s *string) *InvoiceUpdateOne {
	if s != nil {
		iuo.SetNotes(*s)
	}
	return iuo
}

// ClearNotes clears the value of the "notes" field.
func (iuo *InvoiceUpdateOne) ClearNotes() *InvoiceUpdateOne {
	iuo.mutation.ClearNotes()
	return iuo
}

// SetPaidAt sets the "paid_at" field.
func (iuo *InvoiceUpdateOne) SetPaidAt(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetPaidAt(t)
	return iuo
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillablePaidAt(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetPaidAt(*t)
	}
	return iuo
}

// ClearPaidAt clears the value of the "paid_at" field.
func (iuo *InvoiceUpdateOne) ClearPaidAt() *InvoiceUpdateOne {
	iuo.mutation.ClearPaidAt()
	return iuo
}

// SetVoidedAt sets the "voided_at" field.
func (iuo *InvoiceUpdateOne) SetVoidedAt(t time.Time) *InvoiceUpdateOne {
	iuo.mutation.SetVoidedAt(t)
	return iuo
}

// SetNillableVoidedAt sets the "voided_at" field if the given value is not nil.
func (iuo *InvoiceUpdateOne) SetNillableVoidedAt(t *time.Time) *InvoiceUpdateOne {
	if t != nil {
		iuo.SetVoidedAt(*t)
	}
	return iuo
}

// ClearVoidedAt clears the value of the "voided_at" field.
func (iuo *InvoiceUpdateOne) ClearVoidedAt() *InvoiceUpdateOne {
	iuo.mutation.ClearVoidedAt()
	return iuo
}

// AddLineItemIDs adds the "line_items" edge to the InvoiceLineItem entity by IDs.
func (iuo *InvoiceUpdateOne) AddLineItemIDs(ids ...string) *InvoiceUpdateOne {
	iuo.mutation.AddLineItemIDs(ids...)
	return iuo
}

// AddLineItems adds the "line_items" edges to the InvoiceLineItem entity.
func (iuo *InvoiceUpdateOne) AddLineItems(i ...*InvoiceLineItem) *InvoiceUpdateOne {
	ids := make([]string, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return iuo.AddLineItemIDs(ids...)
}

// Mutation returns the InvoiceMutation object of the builder.
func (iuo *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return iuo.mutation
}

// ClearLineItems clears all "line_items" edges to the InvoiceLineItem entity.
func (iuo *InvoiceUpdateOne) ClearLineItems() *InvoiceUpdateOne {
	iuo.mutation.ClearLineItems()
	return iuo
}

// RemoveLineItemIDs removes the "line_items" edge to InvoiceLineItem entities by IDs.
func (iuo *InvoiceUpdateOne) RemoveLineItemIDs(ids ...string) *InvoiceUpdateOne {
	iuo.mutation.RemoveLineItemIDs(ids...)
	return iuo
}

// RemoveLineItems removes "line_items" edges to InvoiceLineItem entities.
func (iuo *InvoiceUpdateOne) RemoveLineItems(i ...*InvoiceLineItem) *InvoiceUpdateOne {
	ids := make([]string, len(i))
	for j := range i {
		ids[j] = i[j].ID
	}
	return iuo.RemoveLineItemIDs(ids...)
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (iuo *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	iuo.mutation.Where(ps...)
	return iuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iuo *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	iuo.fields = append([]string{field}, fields...)
	return iuo
}

// Save executes the query and returns the updated Invoice entity.
func (iuo *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	iuo.defaults()
	return withHooks(ctx, iuo.sqlSave, iuo.mutation, iuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iuo *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := iuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iuo *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := iuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iuo *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := iuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iuo *InvoiceUpdateOne) defaults() {
	if _, ok := iuo.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		iuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iuo *InvoiceUpdateOne) check() error {
	if v, ok := iuo.mutation.InvoiceStatus(); ok {
		if err := invoice.InvoiceStatusValidator(v); err != nil {
			return &ValidationError{Name: "invoice_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_status": %w`, err)}
		}
	}
	if v, ok := iuo.mutation.PaymentStatus(); ok {
		if err := invoice.PaymentStatusValidator(v); err != nil {
			return &ValidationError{Name: "payment_status", err: fmt.Errorf(`ent: validator failed for field "Invoice.payment_status": %w`, err)}
		}
	}
	if iuo.mutation.CustomerCleared() && len(iuo.mutation.CustomerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.customer"`)
	}
	return nil
}

func (iuo *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := iuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeString))
	id, ok := iuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iuo.mutation.Status(); ok {
		_spec.SetField(invoice.FieldStatus, field.TypeString, value)
	}
	if value, ok := iuo.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if iuo.mutation.CreatedByCleared() {
		_spec.ClearField(invoice.FieldCreatedBy, field.TypeString)
	}
	if value, ok := iuo.mutation.UpdatedBy(); ok {
		_spec.SetField(invoice.FieldUpdatedBy, field.TypeString, value)
	}
	if iuo.mutation.UpdatedByCleared() {
		_spec.ClearField(invoice.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := iuo.mutation.Metadata(); ok {
		_spec.SetField(invoice.FieldMetadata, field.TypeJSON, value)
	}
	if iuo.mutation.ScheduleIDCleared() {
		_spec.ClearField(invoice.FieldScheduleID, field.TypeString)
	}
	if value, ok := iuo.mutation.IssueDate(); ok {
		_spec.SetField(invoice.FieldIssueDate, field.TypeTime, value)
	}
	if value, ok := iuo.mutation.DueDate(); ok {
		_spec.SetField(invoice.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := iuo.mutation.PeriodStart(); ok {
		_spec.SetField(invoice.FieldPeriodStart, field.TypeTime, value)
	}
	if iuo.mutation.PeriodStartCleared() {
		_spec.ClearField(invoice.FieldPeriodStart, field.TypeTime)
	}
	if value, ok := iuo.mutation.PeriodEnd(); ok {
		_spec.SetField(invoice.FieldPeriodEnd, field.TypeTime, value)
	}
	if iuo.mutation.PeriodEndCleared() {
		_spec.ClearField(invoice.FieldPeriodEnd, field.TypeTime)
	}
	if value, ok := iuo.mutation.Subtotal(); ok {
		_spec.SetField(invoice.FieldSubtotal, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.TaxTotal(); ok {
		_spec.SetField(invoice.FieldTaxTotal, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.Total(); ok {
		_spec.SetField(invoice.FieldTotal, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.AmountPaid(); ok {
		_spec.SetField(invoice.FieldAmountPaid, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.AmountRemaining(); ok {
		_spec.SetField(invoice.FieldAmountRemaining, field.TypeOther, value)
	}
	if value, ok := iuo.mutation.InvoiceStatus(); ok {
		_spec.SetField(invoice.FieldInvoiceStatus, field.TypeString, value)
	}
	if value, ok := iuo.mutation.PaymentStatus(); ok {
		_spec.SetField(invoice.FieldPaymentStatus, field.TypeString, value)
	}
	if value, ok := iuo.mutation.Notes(); ok {
		_spec.SetField(invoice.FieldNotes, field.TypeString, value)
	}
	if iuo.mutation.NotesCleared() {
		_spec.ClearField(invoice.FieldNotes, field.TypeString)
	}
	if value, ok := iuo.mutation.PaidAt(); ok {
		_spec.SetField(invoice.FieldPaidAt, field.TypeTime, value)
	}
	if iuo.mutation.PaidAtCleared() {
		_spec.ClearField(invoice.FieldPaidAt, field.TypeTime)
	}
	if value, ok := iuo.mutation.VoidedAt(); ok {
		_spec.SetField(invoice.FieldVoidedAt, field.TypeTime, value)
	}
	if iuo.mutation.VoidedAtCleared() {
		_spec.ClearField(invoice.FieldVoidedAt, field.TypeTime)
	}
	if iuo.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iuo.mutation.RemovedLineItemsIDs(); len(nodes) > 0 && !iuo.mutation.LineItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := iuo.mutation.LineItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: iuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iuo.mutation.done = true
	return _node, nil
}
