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
	"github.com/invoiceflow/invoiceflow/ent/invoicelineitem"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
	"github.com/shopspring/decimal"
)

// InvoiceLineItemUpdate is the builder for updating InvoiceLineItem entities.
type InvoiceLineItemUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceLineItemMutation
}

// Where appends a list predicates to the InvoiceLineItemUpdate builder.
func (iliu *InvoiceLineItemUpdate) Where(ps ...predicate.InvoiceLineItem) *InvoiceLineItemUpdate {
	iliu.mutation.Where(ps...)
	return iliu
}

// SetStatus sets the "status" field.
func (iliu *InvoiceLineItemUpdate) SetStatus(s string) *InvoiceLineItemUpdate {
	iliu.mutation.SetStatus(s)
	return iliu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableStatus(s *string) *InvoiceLineItemUpdate {
	if s != nil {
		iliu.SetStatus(*s)
	}
	return iliu
}

// SetUpdatedAt sets the "updated_at" field.
func (iliu *InvoiceLineItemUpdate) SetUpdatedAt(t time.Time) *InvoiceLineItemUpdate {
	iliu.mutation.SetUpdatedAt(t)
	return iliu
}

// SetUpdatedBy sets the "updated_by" field.
func (iliu *InvoiceLineItemUpdate) SetUpdatedBy(s string) *InvoiceLineItemUpdate {
	iliu.mutation.SetUpdatedBy(s)
	return iliu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableUpdatedBy(s *string) *InvoiceLineItemUpdate {
	if s != nil {
		iliu.SetUpdatedBy(*s)
	}
	return iliu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (iliu *InvoiceLineItemUpdate) ClearUpdatedBy() *InvoiceLineItemUpdate {
	iliu.mutation.ClearUpdatedBy()
	return iliu
}

// SetDescription sets the "description" field.
func (iliu *InvoiceLineItemUpdate) SetDescription(s string) *InvoiceLineItemUpdate {
	iliu.mutation.SetDescription(s)
	return iliu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableDescription(s *string) *InvoiceLineItemUpdate {
	if s != nil {
		iliu.SetDescription(*s)
	}
	return iliu
}

// SetQuantity sets the "quantity" field.
func (iliu *InvoiceLineItemUpdate) SetQuantity(d decimal.Decimal) *InvoiceLineItemUpdate {
	iliu.mutation.SetQuantity(d)
	return iliu
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableQuantity(d *decimal.Decimal) *InvoiceLineItemUpdate {
	if d != nil {
		iliu.SetQuantity(*d)
	}
	return iliu
}

// SetUnitPrice sets the "unit_price" field.
func (iliu *InvoiceLineItemUpdate) SetUnitPrice(d decimal.Decimal) *InvoiceLineItemUpdate {
	iliu.mutation.SetUnitPrice(d)
	return iliu
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableUnitPrice(d *decimal.Decimal) *InvoiceLineItemUpdate {
	if d != nil {
		iliu.SetUnitPrice(*d)
	}
	return iliu
}

// SetAmount sets the "amount" field.
func (iliu *InvoiceLineItemUpdate) SetAmount(d decimal.Decimal) *InvoiceLineItemUpdate {
	iliu.mutation.SetAmount(d)
	return iliu
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableAmount(d *decimal.Decimal) *InvoiceLineItemUpdate {
	if d != nil {
		iliu.SetAmount(*d)
	}
	return iliu
}

// SetProrated sets the "prorated" field.
func (iliu *InvoiceLineItemUpdate) SetProrated(b bool) *InvoiceLineItemUpdate {
	iliu.mutation.SetProrated(b)
	return iliu
}

// SetNillableProrated sets the "prorated" field if the given value is not nil.
func (iliu *InvoiceLineItemUpdate) SetNillableProrated(b *bool) *InvoiceLineItemUpdate {
	if b != nil {
		iliu.SetProrated(*b)
	}
	return iliu
}

// Mutation returns the InvoiceLineItemMutation object of the builder.
func (iliu *InvoiceLineItemUpdate) Mutation() *InvoiceLineItemMutation {
	return iliu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (iliu *InvoiceLineItemUpdate) Save(ctx context.Context) (int, error) {
	iliu.defaults()
	return withHooks(ctx, iliu.sqlSave, iliu.mutation, iliu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iliu *InvoiceLineItemUpdate) SaveX(ctx context.Context) int {
	affected, err := iliu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (iliu *InvoiceLineItemUpdate) Exec(ctx context.Context) error {
	_, err := iliu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iliu *InvoiceLineItemUpdate) ExecX(ctx context.Context) {
	if err := iliu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iliu *InvoiceLineItemUpdate) defaults() {
	if _, ok := iliu.mutation.UpdatedAt(); !ok {
		v := invoicelineitem.UpdateDefaultUpdatedAt()
		iliu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iliu *InvoiceLineItemUpdate) check() error {
	if v, ok := iliu.mutation.Description(); ok {
		if err := invoicelineitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "InvoiceLineItem.description": %w`, err)}
		}
	}
	if iliu.mutation.InvoiceCleared() && len(iliu.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceLineItem.invoice"`)
	}
	return nil
}

func (iliu *InvoiceLineItemUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := iliu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicelineitem.Table, invoicelineitem.Columns, sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeString))
	if ps := iliu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iliu.mutation.Status(); ok {
		_spec.SetField(invoicelineitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := iliu.mutation.UpdatedAt(); ok {
		_spec.SetField(invoicelineitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if iliu.mutation.CreatedByCleared() {
		_spec.ClearField(invoicelineitem.FieldCreatedBy, field.TypeString)
	}
	if value, ok := iliu.mutation.UpdatedBy(); ok {
		_spec.SetField(invoicelineitem.FieldUpdatedBy, field.TypeString, value)
	}
	if iliu.mutation.UpdatedByCleared() {
		_spec.ClearField(invoicelineitem.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := iliu.mutation.Description(); ok {
		_spec.SetField(invoicelineitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := iliu.mutation.Quantity(); ok {
		_spec.SetField(invoicelineitem.FieldQuantity, field.TypeOther, value)
	}
	if value, ok := iliu.mutation.UnitPrice(); ok {
		_spec.SetField(invoicelineitem.FieldUnitPrice, field.TypeOther, value)
	}
	if value, ok := iliu.mutation.Amount(); ok {
		_spec.SetField(invoicelineitem.FieldAmount, field.TypeOther, value)
	}
	if value, ok := iliu.mutation.Prorated(); ok {
		_spec.SetField(invoicelineitem.FieldProrated, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, iliu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicelineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	iliu.mutation.done = true
	return n, nil
}

// InvoiceLineItemUpdateOne is the builder for updating a single InvoiceLineItem entity.
type InvoiceLineItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceLineItemMutation
}

// SetStatus sets the "status" field.
func (iliuo *InvoiceLineItemUpdateOne) SetStatus(s string) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetStatus(s)
	return iliuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableStatus(s *string) *InvoiceLineItemUpdateOne {
	if s != nil {
		iliuo.SetStatus(*s)
	}
	return iliuo
}

// SetUpdatedAt sets the "updated_at" field.
func (iliuo *InvoiceLineItemUpdateOne) SetUpdatedAt(t time.Time) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetUpdatedAt(t)
	return iliuo
}

// SetUpdatedBy sets the "updated_by" field.
func (iliuo *InvoiceLineItemUpdateOne) SetUpdatedBy(s string) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetUpdatedBy(s)
	return iliuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableUpdatedBy(s *string) *InvoiceLineItemUpdateOne {
	if s != nil {
		iliuo.SetUpdatedBy(*s)
	}
	return iliuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (iliuo *InvoiceLineItemUpdateOne) ClearUpdatedBy() *InvoiceLineItemUpdateOne {
	iliuo.mutation.ClearUpdatedBy()
	return iliuo
}

// SetDescription sets the "description" field.
func (iliuo *InvoiceLineItemUpdateOne) SetDescription(s string) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetDescription(s)
	return iliuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableDescription(s *string) *InvoiceLineItemUpdateOne {
	if s != nil {
		iliuo.SetDescription(*s)
	}
	return iliuo
}

// SetQuantity sets the "quantity" field.
func (iliuo *InvoiceLineItemUpdateOne) SetQuantity(d decimal.Decimal) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetQuantity(d)
	return iliuo
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableQuantity(d *decimal.Decimal) *InvoiceLineItemUpdateOne {
	if d != nil {
		iliuo.SetQuantity(*d)
	}
	return iliuo
}

// SetUnitPrice sets the "unit_price" field.
func (iliuo *InvoiceLineItemUpdateOne) SetUnitPrice(d decimal.Decimal) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetUnitPrice(d)
	return iliuo
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableUnitPrice(d *decimal.Decimal) *InvoiceLineItemUpdateOne {
	if d != nil {
		iliuo.SetUnitPrice(*d)
	}
	return iliuo
}

// SetAmount sets the "amount" field.
func (iliuo *InvoiceLineItemUpdateOne) SetAmount(d decimal.Decimal) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetAmount(d)
	return iliuo
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableAmount(d *decimal.Decimal) *InvoiceLineItemUpdateOne {
	if d != nil {
		iliuo.SetAmount(*d)
	}
	return iliuo
}

// SetProrated sets the "prorated" field.
func (iliuo *InvoiceLineItemUpdateOne) SetProrated(b bool) *InvoiceLineItemUpdateOne {
	iliuo.mutation.SetProrated(b)
	return iliuo
}

// SetNillableProrated sets the "prorated" field if the given value is not nil.
func (iliuo *InvoiceLineItemUpdateOne) SetNillableProrated(b *bool) *InvoiceLineItemUpdateOne {
	if b != nil {
		iliuo.SetProrated(*b)
	}
	return iliuo
}

// Mutation returns the InvoiceLineItemMutation object of the builder.
func (iliuo *InvoiceLineItemUpdateOne) Mutation() *InvoiceLineItemMutation {
	return iliuo.mutation
}

// Where appends a list predicates to the InvoiceLineItemUpdate builder.
func (iliuo *InvoiceLineItemUpdateOne) Where(ps ...predicate.InvoiceLineItem) *InvoiceLineItemUpdateOne {
	iliuo.mutation.Where(ps...)
	return iliuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (iliuo *InvoiceLineItemUpdateOne) Select(field string, fields ...string) *InvoiceLineItemUpdateOne {
	iliuo.fields = append([]string{field}, fields...)
	return iliuo
}

// Save executes the query and returns the updated InvoiceLineItem entity.
func (iliuo *InvoiceLineItemUpdateOne) Save(ctx context.Context) (*InvoiceLineItem, error) {
	iliuo.defaults()
	return withHooks(ctx, iliuo.sqlSave, iliuo.mutation, iliuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (iliuo *InvoiceLineItemUpdateOne) SaveX(ctx context.Context) *InvoiceLineItem {
	node, err := iliuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (iliuo *InvoiceLineItemUpdateOne) Exec(ctx context.Context) error {
	_, err := iliuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (iliuo *InvoiceLineItemUpdateOne) ExecX(ctx context.Context) {
	if err := iliuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (iliuo *InvoiceLineItemUpdateOne) defaults() {
	if _, ok := iliuo.mutation.UpdatedAt(); !ok {
		v := invoicelineitem.UpdateDefaultUpdatedAt()
		iliuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (iliuo *InvoiceLineItemUpdateOne) check() error {
	if v, ok := iliuo.mutation.Description(); ok {
		if err := invoicelineitem.DescriptionValidator(v); err != nil {
			return &ValidationError{Name: "description", err: fmt.Errorf(`ent: validator failed for field "InvoiceLineItem.description": %w`, err)}
		}
	}
	if iliuo.mutation.InvoiceCleared() && len(iliuo.mutation.InvoiceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "InvoiceLineItem.invoice"`)
	}
	return nil
}

func (iliuo *InvoiceLineItemUpdateOne) sqlSave(ctx context.Context) (_node *InvoiceLineItem, err error) {
	if err := iliuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoicelineitem.Table, invoicelineitem.Columns, sqlgraph.NewFieldSpec(invoicelineitem.FieldID, field.TypeString))
	id, ok := iliuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InvoiceLineItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := iliuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoicelineitem.FieldID)
		for _, f := range fields {
			if !invoicelineitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoicelineitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := iliuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := iliuo.mutation.Status(); ok {
		_spec.SetField(invoicelineitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := iliuo.mutation.UpdatedAt(); ok {
		_spec.SetField(invoicelineitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if iliuo.mutation.CreatedByCleared() {
		_spec.ClearField(invoicelineitem.FieldCreatedBy, field.TypeString)
	}
	if value, ok := iliuo.mutation.UpdatedBy(); ok {
		_spec.SetField(invoicelineitem.FieldUpdatedBy, field.TypeString, value)
	}
	if iliuo.mutation.UpdatedByCleared() {
		_spec.ClearField(invoicelineitem.FieldUpdatedBy, field.TypeString)
	}
	if value, ok := iliuo.mutation.Description(); ok {
		_spec.SetField(invoicelineitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := iliuo.mutation.Quantity(); ok {
		_spec.SetField(invoicelineitem.FieldQuantity, field.TypeOther, value)
	}
	if value, ok := iliuo.mutation.UnitPrice(); ok {
		_spec.SetField(invoicelineitem.FieldUnitPrice, field.TypeOther, value)
	}
	if value, ok := iliuo.mutation.Amount(); ok {
		_spec.SetField(invoicelineitem.FieldAmount, field.TypeOther, value)
	}
	if value, ok := iliuo.mutation.Prorated(); ok {
		_spec.SetField(invoicelineitem.FieldProrated, field.TypeBool, value)
	}
	_node = &InvoiceLineItem{config: iliuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, iliuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoicelineitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	iliuo.mutation.done = true
	return _node, nil
}
