// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/invoiceflow/invoiceflow/ent/auditlog"
	"github.com/invoiceflow/invoiceflow/ent/customer"
	"github.com/invoiceflow/invoiceflow/ent/invoice"
	"github.com/invoiceflow/invoiceflow/ent/invoicelineitem"
	"github.com/invoiceflow/invoiceflow/ent/payment"
	"github.com/invoiceflow/invoiceflow/ent/paymentattempt"
	"github.com/invoiceflow/invoiceflow/ent/predicate"
	"github.com/invoiceflow/invoiceflow/ent/recurringschedule"
	"github.com/invoiceflow/invoiceflow/ent/scheduleexecution"
	"github.com/invoiceflow/invoiceflow/internal/types"
	"github.com/shopspring/decimal"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditLog          = "AuditLog"
	TypeCustomer          = "Customer"
	TypeInvoice           = "Invoice"
	TypeInvoiceLineItem   = "InvoiceLineItem"
	TypePayment           = "Payment"
	TypePaymentAttempt    = "PaymentAttempt"
	TypeRecurringSchedule = "RecurringSchedule"
	TypeScheduleExecution = "ScheduleExecution"
)

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op              Op
	typ             string
	id              *string
	tenant_id       *string
	status          *string
	created_at      *time.Time
	updated_at      *time.Time
	created_by      *string
	updated_by      *string
	action          *string
	description     *string
	invoice_id      *string
	execution_id    *string
	payment_id      *string
	old_values      *map[string]interface{}
	new_values      *map[string]interface{}
	clearedFields   map[string]struct{}
	schedule        *string
	clearedschedule bool
	done            bool
	oldValue        func(context.Context) (*AuditLog, error)
	predicates      []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id string) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditLog entities.
func (m *AuditLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *AuditLogMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *AuditLogMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *AuditLogMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStatus sets the "status" field.
func (m *AuditLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditLogMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AuditLogMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AuditLogMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AuditLogMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *AuditLogMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *AuditLogMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *AuditLogMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[auditlog.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *AuditLogMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *AuditLogMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, auditlog.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *AuditLogMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *AuditLogMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *AuditLogMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[auditlog.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *AuditLogMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *AuditLogMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, auditlog.FieldUpdatedBy)
}

// SetScheduleID sets the "schedule_id" field.
func (m *AuditLogMutation) SetScheduleID(s string) {
	m.schedule = &s
}

// ScheduleID returns the value of the "schedule_id" field in the mutation.
func (m *AuditLogMutation) ScheduleID() (r string, exists bool) {
	v := m.schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleID returns the old "schedule_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldScheduleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleID: %w", err)
	}
	return oldValue.ScheduleID, nil
}

// ResetScheduleID resets all changes to the "schedule_id" field.
func (m *AuditLogMutation) ResetScheduleID() {
	m.schedule = nil
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetDescription sets the "description" field.
func (m *AuditLogMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *AuditLogMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *AuditLogMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[auditlog.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *AuditLogMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *AuditLogMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, auditlog.FieldDescription)
}

// SetInvoiceID sets the "invoice_id" field.
func (m *AuditLogMutation) SetInvoiceID(s string) {
	m.invoice_id = &s
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *AuditLogMutation) InvoiceID() (r string, exists bool) {
	v := m.invoice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldInvoiceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (m *AuditLogMutation) ClearInvoiceID() {
	m.invoice_id = nil
	m.clearedFields[auditlog.FieldInvoiceID] = struct{}{}
}

// InvoiceIDCleared returns if the "invoice_id" field was cleared in this mutation.
func (m *AuditLogMutation) InvoiceIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldInvoiceID]
	return ok
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *AuditLogMutation) ResetInvoiceID() {
	m.invoice_id = nil
	delete(m.clearedFields, auditlog.FieldInvoiceID)
}

// SetExecutionID sets the "execution_id" field.
func (m *AuditLogMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *AuditLogMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *AuditLogMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[auditlog.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *AuditLogMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *AuditLogMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, auditlog.FieldExecutionID)
}

// SetPaymentID sets the "payment_id" field.
func (m *AuditLogMutation) SetPaymentID(s string) {
	m.payment_id = &s
}

// PaymentID returns the value of the "payment_id" field in the mutation.
func (m *AuditLogMutation) PaymentID() (r string, exists bool) {
	v := m.payment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentID returns the old "payment_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldPaymentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentID: %w", err)
	}
	return oldValue.PaymentID, nil
}

// ClearPaymentID clears the value of the "payment_id" field.
func (m *AuditLogMutation) ClearPaymentID() {
	m.payment_id = nil
	m.clearedFields[auditlog.FieldPaymentID] = struct{}{}
}

// PaymentIDCleared returns if the "payment_id" field was cleared in this mutation.
func (m *AuditLogMutation) PaymentIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldPaymentID]
	return ok
}

// ResetPaymentID resets all changes to the "payment_id" field.
func (m *AuditLogMutation) ResetPaymentID() {
	m.payment_id = nil
	delete(m.clearedFields, auditlog.FieldPaymentID)
}

// SetOldValues sets the "old_values" field.
func (m *AuditLogMutation) SetOldValues(value map[string]interface{}) {
	m.old_values = &value
}

// OldValues returns the value of the "old_values" field in the mutation.
func (m *AuditLogMutation) OldValues() (r map[string]interface{}, exists bool) {
	v := m.old_values
	if v == nil {
		return
	}
	return *v, true
}

// OldOldValues returns the old "old_values" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldOldValues(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOldValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOldValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOldValues: %w", err)
	}
	return oldValue.OldValues, nil
}

// ClearOldValues clears the value of the "old_values" field.
func (m *AuditLogMutation) ClearOldValues() {
	m.old_values = nil
	m.clearedFields[auditlog.FieldOldValues] = struct{}{}
}

// OldValuesCleared returns if the "old_values" field was cleared in this mutation.
func (m *AuditLogMutation) OldValuesCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldOldValues]
	return ok
}

// ResetOldValues resets all changes to the "old_values" field.
func (m *AuditLogMutation) ResetOldValues() {
	m.old_values = nil
	delete(m.clearedFields, auditlog.FieldOldValues)
}

// SetNewValues sets the "new_values" field.
func (m *AuditLogMutation) SetNewValues(value map[string]interface{}) {
	m.new_values = &value
}

// NewValues returns the value of the "new_values" field in the mutation.
func (m *AuditLogMutation) NewValues() (r map[string]interface{}, exists bool) {
	v := m.new_values
	if v == nil {
		return
	}
	return *v, true
}

// OldNewValues returns the old "new_values" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldNewValues(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewValues: %w", err)
	}
	return oldValue.NewValues, nil
}

// ClearNewValues clears the value of the "new_values" field.
func (m *AuditLogMutation) ClearNewValues() {
	m.new_values = nil
	m.clearedFields[auditlog.FieldNewValues] = struct{}{}
}

// NewValuesCleared returns if the "new_values" field was cleared in this mutation.
func (m *AuditLogMutation) NewValuesCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldNewValues]
	return ok
}

// ResetNewValues resets all changes to the "new_values" field.
func (m *AuditLogMutation) ResetNewValues() {
	m.new_values = nil
	delete(m.clearedFields, auditlog.FieldNewValues)
}

// ClearSchedule clears the "schedule" edge to the RecurringSchedule entity.
func (m *AuditLogMutation) ClearSchedule() {
	m.clearedschedule = true
	m.clearedFields[auditlog.FieldScheduleID] = struct{}{}
}

// ScheduleCleared reports if the "schedule" edge to the RecurringSchedule entity was cleared.
func (m *AuditLogMutation) ScheduleCleared() bool {
	return m.clearedschedule
}

// ScheduleIDs returns the "schedule" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScheduleID instead. It exists only for internal usage by the builders.
func (m *AuditLogMutation) ScheduleIDs() (ids []string) {
	if id := m.schedule; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSchedule resets all changes to the "schedule" edge.
func (m *AuditLogMutation) ResetSchedule() {
	m.schedule = nil
	m.clearedschedule = false
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.tenant_id != nil {
		fields = append(fields, auditlog.FieldTenantID)
	}
	if m.status != nil {
		fields = append(fields, auditlog.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, auditlog.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, auditlog.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, auditlog.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, auditlog.FieldUpdatedBy)
	}
	if m.schedule != nil {
		fields = append(fields, auditlog.FieldScheduleID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.description != nil {
		fields = append(fields, auditlog.FieldDescription)
	}
	if m.invoice_id != nil {
		fields = append(fields, auditlog.FieldInvoiceID)
	}
	if m.execution_id != nil {
		fields = append(fields, auditlog.FieldExecutionID)
	}
	if m.payment_id != nil {
		fields = append(fields, auditlog.FieldPaymentID)
	}
	if m.old_values != nil {
		fields = append(fields, auditlog.FieldOldValues)
	}
	if m.new_values != nil {
		fields = append(fields, auditlog.FieldNewValues)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldTenantID:
		return m.TenantID()
	case auditlog.FieldStatus:
		return m.Status()
	case auditlog.FieldCreatedAt:
		return m.CreatedAt()
	case auditlog.FieldUpdatedAt:
		return m.UpdatedAt()
	case auditlog.FieldCreatedBy:
		return m.CreatedBy()
	case auditlog.FieldUpdatedBy:
		return m.UpdatedBy()
	case auditlog.FieldScheduleID:
		return m.ScheduleID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldDescription:
		return m.Description()
	case auditlog.FieldInvoiceID:
		return m.InvoiceID()
	case auditlog.FieldExecutionID:
		return m.ExecutionID()
	case auditlog.FieldPaymentID:
		return m.PaymentID()
	case auditlog.FieldOldValues:
		return m.OldValues()
	case auditlog.FieldNewValues:
		return m.NewValues()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldTenantID:
		return m.OldTenantID(ctx)
	case auditlog.FieldStatus:
		return m.OldStatus(ctx)
	case auditlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case auditlog.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case auditlog.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case auditlog.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case auditlog.FieldScheduleID:
		return m.OldScheduleID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldDescription:
		return m.OldDescription(ctx)
	case auditlog.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case auditlog.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case auditlog.FieldPaymentID:
		return m.OldPaymentID(ctx)
	case auditlog.FieldOldValues:
		return m.OldOldValues(ctx)
	case auditlog.FieldNewValues:
		return m.OldNewValues(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case auditlog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case auditlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case auditlog.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case auditlog.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case auditlog.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case auditlog.FieldScheduleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case auditlog.FieldInvoiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case auditlog.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case auditlog.FieldPaymentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentID(v)
		return nil
	case auditlog.FieldOldValues:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOldValues(v)
		return nil
	case auditlog.FieldNewValues:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewValues(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldCreatedBy) {
		fields = append(fields, auditlog.FieldCreatedBy)
	}
	if m.FieldCleared(auditlog.FieldUpdatedBy) {
		fields = append(fields, auditlog.FieldUpdatedBy)
	}
	if m.FieldCleared(auditlog.FieldDescription) {
		fields = append(fields, auditlog.FieldDescription)
	}
	if m.FieldCleared(auditlog.FieldInvoiceID) {
		fields = append(fields, auditlog.FieldInvoiceID)
	}
	if m.FieldCleared(auditlog.FieldExecutionID) {
		fields = append(fields, auditlog.FieldExecutionID)
	}
	if m.FieldCleared(auditlog.FieldPaymentID) {
		fields = append(fields, auditlog.FieldPaymentID)
	}
	if m.FieldCleared(auditlog.FieldOldValues) {
		fields = append(fields, auditlog.FieldOldValues)
	}
	if m.FieldCleared(auditlog.FieldNewValues) {
		fields = append(fields, auditlog.FieldNewValues)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case auditlog.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case auditlog.FieldDescription:
		m.ClearDescription()
		return nil
	case auditlog.FieldInvoiceID:
		m.ClearInvoiceID()
		return nil
	case auditlog.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case auditlog.FieldPaymentID:
		m.ClearPaymentID()
		return nil
	case auditlog.FieldOldValues:
		m.ClearOldValues()
		return nil
	case auditlog.FieldNewValues:
		m.ClearNewValues()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldTenantID:
		m.ResetTenantID()
		return nil
	case auditlog.FieldStatus:
		m.ResetStatus()
		return nil
	case auditlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case auditlog.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case auditlog.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case auditlog.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case auditlog.FieldScheduleID:
		m.ResetScheduleID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldDescription:
		m.ResetDescription()
		return nil
	case auditlog.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case auditlog.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case auditlog.FieldPaymentID:
		m.ResetPaymentID()
		return nil
	case auditlog.FieldOldValues:
		m.ResetOldValues()
		return nil
	case auditlog.FieldNewValues:
		m.ResetNewValues()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.schedule != nil {
		edges = append(edges, auditlog.EdgeSchedule)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditlog.EdgeSchedule:
		if id := m.schedule; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedschedule {
		edges = append(edges, auditlog.EdgeSchedule)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case auditlog.EdgeSchedule:
		return m.clearedschedule
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	switch name {
	case auditlog.EdgeSchedule:
		m.ClearSchedule()
		return nil
	}
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	switch name {
	case auditlog.EdgeSchedule:
		m.ResetSchedule()
		return nil
	}
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// CustomerMutation represents an operation that mutates the Customer nodes in the graph.
type CustomerMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	tenant_id                 *string
	status                    *string
	created_at                *time.Time
	updated_at                *time.Time
	created_by                *string
	updated_by                *string
	metadata                  *map[string]string
	external_id               *string
	name                      *string
	email                     *string
	timezone                  *string
	gateway_customer_id       *string
	default_payment_method_id *string
	clearedFields             map[string]struct{}
	schedules                 map[string]struct{}
	removedschedules          map[string]struct{}
	clearedschedules          bool
	invoices                  map[string]struct{}
	removedinvoices           map[string]struct{}
	clearedinvoices           bool
	done                      bool
	oldValue                  func(context.Context) (*Customer, error)
	predicates                []predicate.Customer
}

var _ ent.Mutation = (*CustomerMutation)(nil)

// customerOption allows management of the mutation configuration using functional options.
type customerOption func(*CustomerMutation)

// newCustomerMutation creates new mutation for the Customer entity.
func newCustomerMutation(c config, op Op, opts ...customerOption) *CustomerMutation {
	m := &CustomerMutation{
		config:        c,
		op:            op,
		typ:           TypeCustomer,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCustomerID sets the ID field of the mutation.
func withCustomerID(id string) customerOption {
	return func(m *CustomerMutation) {
		var (
			err   error
			once  sync.Once
			value *Customer
		)
		m.oldValue = func(ctx context.Context) (*Customer, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Customer.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCustomer sets the old Customer of the mutation.
func withCustomer(node *Customer) customerOption {
	return func(m *CustomerMutation) {
		m.oldValue = func(context.Context) (*Customer, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CustomerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CustomerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Customer entities.
func (m *CustomerMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CustomerMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CustomerMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Customer.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *CustomerMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *CustomerMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *CustomerMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStatus sets the "status" field.
func (m *CustomerMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *CustomerMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CustomerMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CustomerMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CustomerMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CustomerMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CustomerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CustomerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CustomerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *CustomerMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *CustomerMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *CustomerMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[customer.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *CustomerMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[customer.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *CustomerMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, customer.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *CustomerMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *CustomerMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *CustomerMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[customer.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *CustomerMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[customer.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *CustomerMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, customer.FieldUpdatedBy)
}

// SetMetadata sets the "metadata" field.
func (m *CustomerMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CustomerMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CustomerMutation) ResetMetadata() {
	m.metadata = nil
}

// SetExternalID sets the "external_id" field.
func (m *CustomerMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *CustomerMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ClearExternalID clears the value of the "external_id" field.
func (m *CustomerMutation) ClearExternalID() {
	m.external_id = nil
	m.clearedFields[customer.FieldExternalID] = struct{}{}
}

// ExternalIDCleared returns if the "external_id" field was cleared in this mutation.
func (m *CustomerMutation) ExternalIDCleared() bool {
	_, ok := m.clearedFields[customer.FieldExternalID]
	return ok
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *CustomerMutation) ResetExternalID() {
	m.external_id = nil
	delete(m.clearedFields, customer.FieldExternalID)
}

// SetName sets the "name" field.
func (m *CustomerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CustomerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CustomerMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *CustomerMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *CustomerMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ClearEmail clears the value of the "email" field.
func (m *CustomerMutation) ClearEmail() {
	m.email = nil
	m.clearedFields[customer.FieldEmail] = struct{}{}
}

// EmailCleared returns if the "email" field was cleared in this mutation.
func (m *CustomerMutation) EmailCleared() bool {
	_, ok := m.clearedFields[customer.FieldEmail]
	return ok
}

// ResetEmail resets all changes to the "email" field.
func (m *CustomerMutation) ResetEmail() {
	m.email = nil
	delete(m.clearedFields, customer.FieldEmail)
}

// SetTimezone sets the "timezone" field.
func (m *CustomerMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *CustomerMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *CustomerMutation) ResetTimezone() {
	m.timezone = nil
}

// SetGatewayCustomerID sets the "gateway_customer_id" field.
func (m *CustomerMutation) SetGatewayCustomerID(s string) {
	m.gateway_customer_id = &s
}

// GatewayCustomerID returns the value of the "gateway_customer_id" field in the mutation.
func (m *CustomerMutation) GatewayCustomerID() (r string, exists bool) {
	v := m.gateway_customer_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGatewayCustomerID returns the old "gateway_customer_id" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldGatewayCustomerID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGatewayCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGatewayCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGatewayCustomerID: %w", err)
	}
	return oldValue.GatewayCustomerID, nil
}

// ClearGatewayCustomerID clears the value of the "gateway_customer_id" field.
func (m *CustomerMutation) ClearGatewayCustomerID() {
	m.gateway_customer_id = nil
	m.clearedFields[customer.FieldGatewayCustomerID] = struct{}{}
}

// GatewayCustomerIDCleared returns if the "gateway_customer_id" field was cleared in this mutation.
func (m *CustomerMutation) GatewayCustomerIDCleared() bool {
	_, ok := m.clearedFields[customer.FieldGatewayCustomerID]
	return ok
}

// ResetGatewayCustomerID resets all changes to the "gateway_customer_id" field.
func (m *CustomerMutation) ResetGatewayCustomerID() {
	m.gateway_customer_id = nil
	delete(m.clearedFields, customer.FieldGatewayCustomerID)
}

// SetDefaultPaymentMethodID sets the "default_payment_method_id" field.
func (m *CustomerMutation) SetDefaultPaymentMethodID(s string) {
	m.default_payment_method_id = &s
}

// DefaultPaymentMethodID returns the value of the "default_payment_method_id" field in the mutation.
func (m *CustomerMutation) DefaultPaymentMethodID() (r string, exists bool) {
	v := m.default_payment_method_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultPaymentMethodID returns the old "default_payment_method_id" field's value of the Customer entity.
// If the Customer object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CustomerMutation) OldDefaultPaymentMethodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultPaymentMethodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultPaymentMethodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultPaymentMethodID: %w", err)
	}
	return oldValue.DefaultPaymentMethodID, nil
}

// ClearDefaultPaymentMethodID clears the value of the "default_payment_method_id" field.
func (m *CustomerMutation) ClearDefaultPaymentMethodID() {
	m.default_payment_method_id = nil
	m.clearedFields[customer.FieldDefaultPaymentMethodID] = struct{}{}
}

// DefaultPaymentMethodIDCleared returns if the "default_payment_method_id" field was cleared in this mutation.
func (m *CustomerMutation) DefaultPaymentMethodIDCleared() bool {
	_, ok := m.clearedFields[customer.FieldDefaultPaymentMethodID]
	return ok
}

// ResetDefaultPaymentMethodID resets all changes to the "default_payment_method_id" field.
func (m *CustomerMutation) ResetDefaultPaymentMethodID() {
	m.default_payment_method_id = nil
	delete(m.clearedFields, customer.FieldDefaultPaymentMethodID)
}

// AddScheduleIDs adds the "schedules" edge to the RecurringSchedule entity by ids.
func (m *CustomerMutation) AddScheduleIDs(ids ...string) {
	if m.schedules == nil {
		m.schedules = make(map[string]struct{})
	}
	for i := range ids {
		m.schedules[ids[i]] = struct{}{}
	}
}

// ClearSchedules clears the "schedules" edge to the RecurringSchedule entity.
func (m *CustomerMutation) ClearSchedules() {
	m.clearedschedules = true
}

// SchedulesCleared reports if the "schedules" edge to the RecurringSchedule entity was cleared.
func (m *CustomerMutation) SchedulesCleared() bool {
	return m.clearedschedules
}

// RemoveScheduleIDs removes the "schedules" edge to the RecurringSchedule entity by IDs.
func (m *CustomerMutation) RemoveScheduleIDs(ids ...string) {
	if m.removedschedules == nil {
		m.removedschedules = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.schedules, ids[i])
		m.removedschedules[ids[i]] = struct{}{}
	}
}

// RemovedSchedules returns the removed IDs of the "schedules" edge to the RecurringSchedule entity.
func (m *CustomerMutation) RemovedSchedulesIDs() (ids []string) {
	for id := range m.removedschedules {
		ids = append(ids, id)
	}
	return
}

// SchedulesIDs returns the "schedules" edge IDs in the mutation.
func (m *CustomerMutation) SchedulesIDs() (ids []string) {
	for id := range m.schedules {
		ids = append(ids, id)
	}
	return
}

// ResetSchedules resets all changes to the "schedules" edge.
func (m *CustomerMutation) ResetSchedules() {
	m.schedules = nil
	m.clearedschedules = false
	m.removedschedules = nil
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by ids.
func (m *CustomerMutation) AddInvoiceIDs(ids ...string) {
	if m.invoices == nil {
		m.invoices = make(map[string]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the Invoice entity.
func (m *CustomerMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the Invoice entity was cleared.
func (m *CustomerMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the Invoice entity by IDs.
func (m *CustomerMutation) RemoveInvoiceIDs(ids ...string) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the Invoice entity.
func (m *CustomerMutation) RemovedInvoicesIDs() (ids []string) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *CustomerMutation) InvoicesIDs() (ids []string) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *CustomerMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// Where appends a list predicates to the CustomerMutation builder.
func (m *CustomerMutation) Where(ps ...predicate.Customer) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CustomerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CustomerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Customer, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CustomerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CustomerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Customer).
func (m *CustomerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CustomerMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.tenant_id != nil {
		fields = append(fields, customer.FieldTenantID)
	}
	if m.status != nil {
		fields = append(fields, customer.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, customer.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, customer.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, customer.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, customer.FieldUpdatedBy)
	}
	if m.metadata != nil {
		fields = append(fields, customer.FieldMetadata)
	}
	if m.external_id != nil {
		fields = append(fields, customer.FieldExternalID)
	}
	if m.name != nil {
		fields = append(fields, customer.FieldName)
	}
	if m.email != nil {
		fields = append(fields, customer.FieldEmail)
	}
	if m.timezone != nil {
		fields = append(fields, customer.FieldTimezone)
	}
	if m.gateway_customer_id != nil {
		fields = append(fields, customer.FieldGatewayCustomerID)
	}
	if m.default_payment_method_id != nil {
		fields = append(fields, customer.FieldDefaultPaymentMethodID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CustomerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case customer.FieldTenantID:
		return m.TenantID()
	case customer.FieldStatus:
		return m.Status()
	case customer.FieldCreatedAt:
		return m.CreatedAt()
	case customer.FieldUpdatedAt:
		return m.UpdatedAt()
	case customer.FieldCreatedBy:
		return m.CreatedBy()
	case customer.FieldUpdatedBy:
		return m.UpdatedBy()
	case customer.FieldMetadata:
		return m.Metadata()
	case customer.FieldExternalID:
		return m.ExternalID()
	case customer.FieldName:
		return m.Name()
	case customer.FieldEmail:
		return m.Email()
	case customer.FieldTimezone:
		return m.Timezone()
	case customer.FieldGatewayCustomerID:
		return m.GatewayCustomerID()
	case customer.FieldDefaultPaymentMethodID:
		return m.DefaultPaymentMethodID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CustomerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case customer.FieldTenantID:
		return m.OldTenantID(ctx)
	case customer.FieldStatus:
		return m.OldStatus(ctx)
	case customer.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case customer.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case customer.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case customer.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case customer.FieldMetadata:
		return m.OldMetadata(ctx)
	case customer.FieldExternalID:
		return m.OldExternalID(ctx)
	case customer.FieldName:
		return m.OldName(ctx)
	case customer.FieldEmail:
		return m.OldEmail(ctx)
	case customer.FieldTimezone:
		return m.OldTimezone(ctx)
	case customer.FieldGatewayCustomerID:
		return m.OldGatewayCustomerID(ctx)
	case customer.FieldDefaultPaymentMethodID:
		return m.OldDefaultPaymentMethodID(ctx)
	}
	return nil, fmt.Errorf("unknown Customer field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case customer.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case customer.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case customer.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case customer.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case customer.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case customer.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case customer.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case customer.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case customer.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case customer.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case customer.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case customer.FieldGatewayCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGatewayCustomerID(v)
		return nil
	case customer.FieldDefaultPaymentMethodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultPaymentMethodID(v)
		return nil
	}
	return fmt.Errorf("unknown Customer field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CustomerMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CustomerMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CustomerMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Customer numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CustomerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(customer.FieldCreatedBy) {
		fields = append(fields, customer.FieldCreatedBy)
	}
	if m.FieldCleared(customer.FieldUpdatedBy) {
		fields = append(fields, customer.FieldUpdatedBy)
	}
	if m.FieldCleared(customer.FieldExternalID) {
		fields = append(fields, customer.FieldExternalID)
	}
	if m.FieldCleared(customer.FieldEmail) {
		fields = append(fields, customer.FieldEmail)
	}
	if m.FieldCleared(customer.FieldGatewayCustomerID) {
		fields = append(fields, customer.FieldGatewayCustomerID)
	}
	if m.FieldCleared(customer.FieldDefaultPaymentMethodID) {
		fields = append(fields, customer.FieldDefaultPaymentMethodID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CustomerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CustomerMutation) ClearField(name string) error {
	switch name {
	case customer.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case customer.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case customer.FieldExternalID:
		m.ClearExternalID()
		return nil
	case customer.FieldEmail:
		m.ClearEmail()
		return nil
	case customer.FieldGatewayCustomerID:
		m.ClearGatewayCustomerID()
		return nil
	case customer.FieldDefaultPaymentMethodID:
		m.ClearDefaultPaymentMethodID()
		return nil
	}
	return fmt.Errorf("unknown Customer nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CustomerMutation) ResetField(name string) error {
	switch name {
	case customer.FieldTenantID:
		m.ResetTenantID()
		return nil
	case customer.FieldStatus:
		m.ResetStatus()
		return nil
	case customer.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case customer.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case customer.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case customer.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case customer.FieldMetadata:
		m.ResetMetadata()
		return nil
	case customer.FieldExternalID:
		m.ResetExternalID()
		return nil
	case customer.FieldName:
		m.ResetName()
		return nil
	case customer.FieldEmail:
		m.ResetEmail()
		return nil
	case customer.FieldTimezone:
		m.ResetTimezone()
		return nil
	case customer.FieldGatewayCustomerID:
		m.ResetGatewayCustomerID()
		return nil
	case customer.FieldDefaultPaymentMethodID:
		m.ResetDefaultPaymentMethodID()
		return nil
	}
	return fmt.Errorf("unknown Customer field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CustomerMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.schedules != nil {
		edges = append(edges, customer.EdgeSchedules)
	}
	if m.invoices != nil {
		edges = append(edges, customer.EdgeInvoices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CustomerMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case customer.EdgeSchedules:
		ids := make([]ent.Value, 0, len(m.schedules))
		for id := range m.schedules {
			ids = append(ids, id)
		}
		return ids
	case customer.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CustomerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedschedules != nil {
		edges = append(edges, customer.EdgeSchedules)
	}
	if m.removedinvoices != nil {
		edges = append(edges, customer.EdgeInvoices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CustomerMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case customer.EdgeSchedules:
		ids := make([]ent.Value, 0, len(m.removedschedules))
		for id := range m.removedschedules {
			ids = append(ids, id)
		}
		return ids
	case customer.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CustomerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedschedules {
		edges = append(edges, customer.EdgeSchedules)
	}
	if m.clearedinvoices {
		edges = append(edges, customer.EdgeInvoices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CustomerMutation) EdgeCleared(name string) bool {
	switch name {
	case customer.EdgeSchedules:
		return m.clearedschedules
	case customer.EdgeInvoices:
		return m.clearedinvoices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CustomerMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Customer unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CustomerMutation) ResetEdge(name string) error {
	switch name {
	case customer.EdgeSchedules:
		m.ResetSchedules()
		return nil
	case customer.EdgeInvoices:
		m.ResetInvoices()
		return nil
	}
	return fmt.Errorf("unknown Customer edge %s", name)
}

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op                Op
	typ               string
	id                *string
	tenant_id         *string
	status            *string
	created_at        *time.Time
	updated_at        *time.Time
	created_by        *string
	updated_by        *string
	metadata          *map[string]string
	invoice_number    *string
	schedule_id       *string
	issue_date        *time.Time
	due_date          *time.Time
	period_start      *time.Time
	period_end        *time.Time
	currency          *string
	subtotal          *decimal.Decimal
	tax_total         *decimal.Decimal
	total             *decimal.Decimal
	amount_paid       *decimal.Decimal
	amount_remaining  *decimal.Decimal
	invoice_status    *string
	payment_status    *string
	notes             *string
	paid_at           *time.Time
	voided_at         *time.Time
	clearedFields     map[string]struct{}
	customer          *string
	clearedcustomer   bool
	line_items        map[string]struct{}
	removedline_items map[string]struct{}
	clearedline_items bool
	done              bool
	oldValue          func(context.Context) (*Invoice, error)
	predicates        []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id string) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *InvoiceMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *InvoiceMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *InvoiceMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStatus sets the "status" field.
func (m *InvoiceMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InvoiceMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvoiceMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *InvoiceMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *InvoiceMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *InvoiceMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[invoice.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *InvoiceMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[invoice.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *InvoiceMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, invoice.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *InvoiceMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *InvoiceMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *InvoiceMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[invoice.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *InvoiceMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[invoice.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *InvoiceMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, invoice.FieldUpdatedBy)
}

// SetMetadata sets the "metadata" field.
func (m *InvoiceMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *InvoiceMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *InvoiceMutation) ResetMetadata() {
	m.metadata = nil
}

// SetInvoiceNumber sets the "invoice_number" field.
func (m *InvoiceMutation) SetInvoiceNumber(s string) {
	m.invoice_number = &s
}

// InvoiceNumber returns the value of the "invoice_number" field in the mutation.
func (m *InvoiceMutation) InvoiceNumber() (r string, exists bool) {
	v := m.invoice_number
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNumber returns the old "invoice_number" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNumber: %w", err)
	}
	return oldValue.InvoiceNumber, nil
}

// ResetInvoiceNumber resets all changes to the "invoice_number" field.
func (m *InvoiceMutation) ResetInvoiceNumber() {
	m.invoice_number = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *InvoiceMutation) SetCustomerID(s string) {
	m.customer = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *InvoiceMutation) CustomerID() (r string, exists bool) {
	v := m.customer
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *InvoiceMutation) ResetCustomerID() {
	m.customer = nil
}

// SetScheduleID sets the "schedule_id" field.
func (m *InvoiceMutation) SetScheduleID(s string) {
	m.schedule_id = &s
}

// ScheduleID returns the value of the "schedule_id" field in the mutation.
func (m *InvoiceMutation) ScheduleID() (r string, exists bool) {
	v := m.schedule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleID returns the old "schedule_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldScheduleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleID: %w", err)
	}
	return oldValue.ScheduleID, nil
}

// ClearScheduleID clears the value of the "schedule_id" field.
func (m *InvoiceMutation) ClearScheduleID() {
	m.schedule_id = nil
	m.clearedFields[invoice.FieldScheduleID] = struct{}{}
}

// ScheduleIDCleared returns if the "schedule_id" field was cleared in this mutation.
func (m *InvoiceMutation) ScheduleIDCleared() bool {
	_, ok := m.clearedFields[invoice.FieldScheduleID]
	return ok
}

// ResetScheduleID resets all changes to the "schedule_id" field.
func (m *InvoiceMutation) ResetScheduleID() {
	m.schedule_id = nil
	delete(m.clearedFields, invoice.FieldScheduleID)
}

// SetIssueDate sets the "issue_date" field.
func (m *InvoiceMutation) SetIssueDate(t time.Time) {
	m.issue_date = &t
}

// IssueDate returns the value of the "issue_date" field in the mutation.
func (m *InvoiceMutation) IssueDate() (r time.Time, exists bool) {
	v := m.issue_date
	if v == nil {
		return
	}
	return *v, true
}

// OldIssueDate returns the old "issue_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldIssueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssueDate: %w", err)
	}
	return oldValue.IssueDate, nil
}

// ResetIssueDate resets all changes to the "issue_date" field.
func (m *InvoiceMutation) ResetIssueDate() {
	m.issue_date = nil
}

// SetDueDate sets the "due_date" field.
func (m *InvoiceMutation) SetDueDate(t time.Time) {
	m.due_date = &t
}

// DueDate returns the value of the "due_date" field in the mutation.
func (m *InvoiceMutation) DueDate() (r time.Time, exists bool) {
	v := m.due_date
	if v == nil {
		return
	}
	return *v, true
}

// OldDueDate returns the old "due_date" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldDueDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDueDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDueDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDueDate: %w", err)
	}
	return oldValue.DueDate, nil
}

// ResetDueDate resets all changes to the "due_date" field.
func (m *InvoiceMutation) ResetDueDate() {
	m.due_date = nil
}

// SetPeriodStart sets the "period_start" field.
func (m *InvoiceMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *InvoiceMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPeriodStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ClearPeriodStart clears the value of the "period_start" field.
func (m *InvoiceMutation) ClearPeriodStart() {
	m.period_start = nil
	m.clearedFields[invoice.FieldPeriodStart] = struct{}{}
}

// PeriodStartCleared returns if the "period_start" field was cleared in this mutation.
func (m *InvoiceMutation) PeriodStartCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPeriodStart]
	return ok
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *InvoiceMutation) ResetPeriodStart() {
	m.period_start = nil
	delete(m.clearedFields, invoice.FieldPeriodStart)
}

// SetPeriodEnd sets the "period_end" field.
func (m *InvoiceMutation) SetPeriodEnd(t time.Time) {
	m.period_end = &t
}

// PeriodEnd returns the value of the "period_end" field in the mutation.
func (m *InvoiceMutation) PeriodEnd() (r time.Time, exists bool) {
	v := m.period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodEnd returns the old "period_end" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodEnd: %w", err)
	}
	return oldValue.PeriodEnd, nil
}

// ClearPeriodEnd clears the value of the "period_end" field.
func (m *InvoiceMutation) ClearPeriodEnd() {
	m.period_end = nil
	m.clearedFields[invoice.FieldPeriodEnd] = struct{}{}
}

// PeriodEndCleared returns if the "period_end" field was cleared in this mutation.
func (m *InvoiceMutation) PeriodEndCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPeriodEnd]
	return ok
}

// ResetPeriodEnd resets all changes to the "period_end" field.
func (m *InvoiceMutation) ResetPeriodEnd() {
	m.period_end = nil
	delete(m.clearedFields, invoice.FieldPeriodEnd)
}

// SetCurrency sets the "currency" field.
func (m *InvoiceMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *InvoiceMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *InvoiceMutation) ResetCurrency() {
	m.currency = nil
}

// SetSubtotal sets the "subtotal" field.
func (m *InvoiceMutation) SetSubtotal(d decimal.Decimal) {
	m.subtotal = &d
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *InvoiceMutation) Subtotal() (r decimal.Decimal, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSubtotal(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *InvoiceMutation) ResetSubtotal() {
	m.subtotal = nil
}

// SetTaxTotal sets the "tax_total" field.
func (m *InvoiceMutation) SetTaxTotal(d decimal.Decimal) {
	m.tax_total = &d
}

// TaxTotal returns the value of the "tax_total" field in the mutation.
func (m *InvoiceMutation) TaxTotal() (r decimal.Decimal, exists bool) {
	v := m.tax_total
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxTotal returns the old "tax_total" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTaxTotal(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxTotal: %w", err)
	}
	return oldValue.TaxTotal, nil
}

// ResetTaxTotal resets all changes to the "tax_total" field.
func (m *InvoiceMutation) ResetTaxTotal() {
	m.tax_total = nil
}

// SetTotal sets the "total" field.
func (m *InvoiceMutation) SetTotal(d decimal.Decimal) {
	m.total = &d
}

// Total returns the value of the "total" field in the mutation.
func (m *InvoiceMutation) Total() (r decimal.Decimal, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTotal(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// ResetTotal resets all changes to the "total" field.
func (m *InvoiceMutation) ResetTotal() {
	m.total = nil
}

// SetAmountPaid sets the "amount_paid" field.
func (m *InvoiceMutation) SetAmountPaid(d decimal.Decimal) {
	m.amount_paid = &d
}

// AmountPaid returns the value of the "amount_paid" field in the mutation.
func (m *InvoiceMutation) AmountPaid() (r decimal.Decimal, exists bool) {
	v := m.amount_paid
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountPaid returns the old "amount_paid" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAmountPaid(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountPaid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountPaid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountPaid: %w", err)
	}
	return oldValue.AmountPaid, nil
}

// ResetAmountPaid resets all changes to the "amount_paid" field.
func (m *InvoiceMutation) ResetAmountPaid() {
	m.amount_paid = nil
}

// SetAmountRemaining sets the "amount_remaining" field.
func (m *InvoiceMutation) SetAmountRemaining(d decimal.Decimal) {
	m.amount_remaining = &d
}

// AmountRemaining returns the value of the "amount_remaining" field in the mutation.
func (m *InvoiceMutation) AmountRemaining() (r decimal.Decimal, exists bool) {
	v := m.amount_remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountRemaining returns the old "amount_remaining" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldAmountRemaining(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountRemaining: %w", err)
	}
	return oldValue.AmountRemaining, nil
}

// ResetAmountRemaining resets all changes to the "amount_remaining" field.
func (m *InvoiceMutation) ResetAmountRemaining() {
	m.amount_remaining = nil
}

// SetInvoiceStatus sets the "invoice_status" field.
func (m *InvoiceMutation) SetInvoiceStatus(s string) {
	m.invoice_status = &s
}

// InvoiceStatus returns the value of the "invoice_status" field in the mutation.
func (m *InvoiceMutation) InvoiceStatus() (r string, exists bool) {
	v := m.invoice_status
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceStatus returns the old "invoice_status" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceStatus: %w", err)
	}
	return oldValue.InvoiceStatus, nil
}

// ResetInvoiceStatus resets all changes to the "invoice_status" field.
func (m *InvoiceMutation) ResetInvoiceStatus() {
	m.invoice_status = nil
}

// SetPaymentStatus sets the "payment_status" field.
func (m *InvoiceMutation) SetPaymentStatus(s string) {
	m.payment_status = &s
}

// PaymentStatus returns the value of the "payment_status" field in the mutation.
func (m *InvoiceMutation) PaymentStatus() (r string, exists bool) {
	v := m.payment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentStatus returns the old "payment_status" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPaymentStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentStatus: %w", err)
	}
	return oldValue.PaymentStatus, nil
}

// ResetPaymentStatus resets all changes to the "payment_status" field.
func (m *InvoiceMutation) ResetPaymentStatus() {
	m.payment_status = nil
}

// SetNotes sets the "notes" field.
func (m *InvoiceMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *InvoiceMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *InvoiceMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[invoice.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *InvoiceMutation) NotesCleared() bool {
	_, ok := m.clearedFields[invoice.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *InvoiceMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, invoice.FieldNotes)
}

// SetPaidAt sets the "paid_at" field.
func (m *InvoiceMutation) SetPaidAt(t time.Time) {
	m.paid_at = &t
}

// PaidAt returns the value of the "paid_at" field in the mutation.
func (m *InvoiceMutation) PaidAt() (r time.Time, exists bool) {
	v := m.paid_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPaidAt returns the old "paid_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldPaidAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaidAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaidAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaidAt: %w", err)
	}
	return oldValue.PaidAt, nil
}

// ClearPaidAt clears the value of the "paid_at" field.
func (m *InvoiceMutation) ClearPaidAt() {
	m.paid_at = nil
	m.clearedFields[invoice.FieldPaidAt] = struct{}{}
}

// PaidAtCleared returns if the "paid_at" field was cleared in this mutation.
func (m *InvoiceMutation) PaidAtCleared() bool {
	_, ok := m.clearedFields[invoice.FieldPaidAt]
	return ok
}

// ResetPaidAt resets all changes to the "paid_at" field.
func (m *InvoiceMutation) ResetPaidAt() {
	m.paid_at = nil
	delete(m.clearedFields, invoice.FieldPaidAt)
}

// SetVoidedAt sets the "voided_at" field.
func (m *InvoiceMutation) SetVoidedAt(t time.Time) {
	m.voided_at = &t
}

// VoidedAt returns the value of the "voided_at" field in the mutation.
func (m *InvoiceMutation) VoidedAt() (r time.Time, exists bool) {
	v := m.voided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldVoidedAt returns the old "voided_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldVoidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoidedAt: %w", err)
	}
	return oldValue.VoidedAt, nil
}

// ClearVoidedAt clears the value of the "voided_at" field.
func (m *InvoiceMutation) ClearVoidedAt() {
	m.voided_at = nil
	m.clearedFields[invoice.FieldVoidedAt] = struct{}{}
}

// VoidedAtCleared returns if the "voided_at" field was cleared in this mutation.
func (m *InvoiceMutation) VoidedAtCleared() bool {
	_, ok := m.clearedFields[invoice.FieldVoidedAt]
	return ok
}

// ResetVoidedAt resets all changes to the "voided_at" field.
func (m *InvoiceMutation) ResetVoidedAt() {
	m.voided_at = nil
	delete(m.clearedFields, invoice.FieldVoidedAt)
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (m *InvoiceMutation) ClearCustomer() {
	m.clearedcustomer = true
	m.clearedFields[invoice.FieldCustomerID] = struct{}{}
}

// CustomerCleared reports if the "customer" edge to the Customer entity was cleared.
func (m *InvoiceMutation) CustomerCleared() bool {
	return m.clearedcustomer
}

// CustomerIDs returns the "customer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CustomerID instead. It exists only for internal usage by the builders.
func (m *InvoiceMutation) CustomerIDs() (ids []string) {
	if id := m.customer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCustomer resets all changes to the "customer" edge.
func (m *InvoiceMutation) ResetCustomer() {
	m.customer = nil
	m.clearedcustomer = false
}

// AddLineItemIDs adds the "line_items" edge to the InvoiceLineItem entity by ids.
func (m *InvoiceMutation) AddLineItemIDs(ids ...string) {
	if m.line_items == nil {
		m.line_items = make(map[string]struct{})
	}
	for i := range ids {
		m.line_items[ids[i]] = struct{}{}
	}
}

// ClearLineItems clears the "line_items" edge to the InvoiceLineItem entity.
func (m *InvoiceMutation) ClearLineItems() {
	m.clearedline_items = true
}

// LineItemsCleared reports if the "line_items" edge to the InvoiceLineItem entity was cleared.
func (m *InvoiceMutation) LineItemsCleared() bool {
	return m.clearedline_items
}

// RemoveLineItemIDs removes the "line_items" edge to the InvoiceLineItem entity by IDs.
func (m *InvoiceMutation) RemoveLineItemIDs(ids ...string) {
	if m.removedline_items == nil {
		m.removedline_items = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.line_items, ids[i])
		m.removedline_items[ids[i]] = struct{}{}
	}
}

// RemovedLineItems returns the removed IDs of the "line_items" edge to the InvoiceLineItem entity.
func (m *InvoiceMutation) RemovedLineItemsIDs() (ids []string) {
	for id := range m.removedline_items {
		ids = append(ids, id)
	}
	return
}

// LineItemsIDs returns the "line_items" edge IDs in the mutation.
func (m *InvoiceMutation) LineItemsIDs() (ids []string) {
	for id := range m.line_items {
		ids = append(ids, id)
	}
	return
}

// ResetLineItems resets all changes to the "line_items" edge.
func (m *InvoiceMutation) ResetLineItems() {
	m.line_items = nil
	m.clearedline_items = false
	m.removedline_items = nil
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.tenant_id != nil {
		fields = append(fields, invoice.FieldTenantID)
	}
	if m.status != nil {
		fields = append(fields, invoice.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoice.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, invoice.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, invoice.FieldUpdatedBy)
	}
	if m.metadata != nil {
		fields = append(fields, invoice.FieldMetadata)
	}
	if m.invoice_number != nil {
		fields = append(fields, invoice.FieldInvoiceNumber)
	}
	if m.customer != nil {
		fields = append(fields, invoice.FieldCustomerID)
	}
	if m.schedule_id != nil {
		fields = append(fields, invoice.FieldScheduleID)
	}
	if m.issue_date != nil {
		fields = append(fields, invoice.FieldIssueDate)
	}
	if m.due_date != nil {
		fields = append(fields, invoice.FieldDueDate)
	}
	if m.period_start != nil {
		fields = append(fields, invoice.FieldPeriodStart)
	}
	if m.period_end != nil {
		fields = append(fields, invoice.FieldPeriodEnd)
	}
	if m.currency != nil {
		fields = append(fields, invoice.FieldCurrency)
	}
	if m.subtotal != nil {
		fields = append(fields, invoice.FieldSubtotal)
	}
	if m.tax_total != nil {
		fields = append(fields, invoice.FieldTaxTotal)
	}
	if m.total != nil {
		fields = append(fields, invoice.FieldTotal)
	}
	if m.amount_paid != nil {
		fields = append(fields, invoice.FieldAmountPaid)
	}
	if m.amount_remaining != nil {
		fields = append(fields, invoice.FieldAmountRemaining)
	}
	if m.invoice_status != nil {
		fields = append(fields, invoice.FieldInvoiceStatus)
	}
	if m.payment_status != nil {
		fields = append(fields, invoice.FieldPaymentStatus)
	}
	if m.notes != nil {
		fields = append(fields, invoice.FieldNotes)
	}
	if m.paid_at != nil {
		fields = append(fields, invoice.FieldPaidAt)
	}
	if m.voided_at != nil {
		fields = append(fields, invoice.FieldVoidedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldTenantID:
		return m.TenantID()
	case invoice.FieldStatus:
		return m.Status()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	case invoice.FieldUpdatedAt:
		return m.UpdatedAt()
	case invoice.FieldCreatedBy:
		return m.CreatedBy()
	case invoice.FieldUpdatedBy:
		return m.UpdatedBy()
	case invoice.FieldMetadata:
		return m.Metadata()
	case invoice.FieldInvoiceNumber:
		return m.InvoiceNumber()
	case invoice.FieldCustomerID:
		return m.CustomerID()
	case invoice.FieldScheduleID:
		return m.ScheduleID()
	case invoice.FieldIssueDate:
		return m.IssueDate()
	case invoice.FieldDueDate:
		return m.DueDate()
	case invoice.FieldPeriodStart:
		return m.PeriodStart()
	case invoice.FieldPeriodEnd:
		return m.PeriodEnd()
	case invoice.FieldCurrency:
		return m.Currency()
	case invoice.FieldSubtotal:
		return m.Subtotal()
	case invoice.FieldTaxTotal:
		return m.TaxTotal()
	case invoice.FieldTotal:
		return m.Total()
	case invoice.FieldAmountPaid:
		return m.AmountPaid()
	case invoice.FieldAmountRemaining:
		return m.AmountRemaining()
	case invoice.FieldInvoiceStatus:
		return m.InvoiceStatus()
	case invoice.FieldPaymentStatus:
		return m.PaymentStatus()
	case invoice.FieldNotes:
		return m.Notes()
	case invoice.FieldPaidAt:
		return m.PaidAt()
	case invoice.FieldVoidedAt:
		return m.VoidedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldTenantID:
		return m.OldTenantID(ctx)
	case invoice.FieldStatus:
		return m.OldStatus(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case invoice.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case invoice.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case invoice.FieldMetadata:
		return m.OldMetadata(ctx)
	case invoice.FieldInvoiceNumber:
		return m.OldInvoiceNumber(ctx)
	case invoice.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case invoice.FieldScheduleID:
		return m.OldScheduleID(ctx)
	case invoice.FieldIssueDate:
		return m.OldIssueDate(ctx)
	case invoice.FieldDueDate:
		return m.OldDueDate(ctx)
	case invoice.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case invoice.FieldPeriodEnd:
		return m.OldPeriodEnd(ctx)
	case invoice.FieldCurrency:
		return m.OldCurrency(ctx)
	case invoice.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case invoice.FieldTaxTotal:
		return m.OldTaxTotal(ctx)
	case invoice.FieldTotal:
		return m.OldTotal(ctx)
	case invoice.FieldAmountPaid:
		return m.OldAmountPaid(ctx)
	case invoice.FieldAmountRemaining:
		return m.OldAmountRemaining(ctx)
	case invoice.FieldInvoiceStatus:
		return m.OldInvoiceStatus(ctx)
	case invoice.FieldPaymentStatus:
		return m.OldPaymentStatus(ctx)
	case invoice.FieldNotes:
		return m.OldNotes(ctx)
	case invoice.FieldPaidAt:
		return m.OldPaidAt(ctx)
	case invoice.FieldVoidedAt:
		return m.OldVoidedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case invoice.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case invoice.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case invoice.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case invoice.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case invoice.FieldInvoiceNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNumber(v)
		return nil
	case invoice.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case invoice.FieldScheduleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleID(v)
		return nil
	case invoice.FieldIssueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssueDate(v)
		return nil
	case invoice.FieldDueDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDueDate(v)
		return nil
	case invoice.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case invoice.FieldPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodEnd(v)
		return nil
	case invoice.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case invoice.FieldSubtotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case invoice.FieldTaxTotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxTotal(v)
		return nil
	case invoice.FieldTotal:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case invoice.FieldAmountPaid:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountPaid(v)
		return nil
	case invoice.FieldAmountRemaining:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountRemaining(v)
		return nil
	case invoice.FieldInvoiceStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceStatus(v)
		return nil
	case invoice.FieldPaymentStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentStatus(v)
		return nil
	case invoice.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case invoice.FieldPaidAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaidAt(v)
		return nil
	case invoice.FieldVoidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoidedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldCreatedBy) {
		fields = append(fields, invoice.FieldCreatedBy)
	}
	if m.FieldCleared(invoice.FieldUpdatedBy) {
		fields = append(fields, invoice.FieldUpdatedBy)
	}
	if m.FieldCleared(invoice.FieldScheduleID) {
		fields = append(fields, invoice.FieldScheduleID)
	}
	if m.FieldCleared(invoice.FieldPeriodStart) {
		fields = append(fields, invoice.FieldPeriodStart)
	}
	if m.FieldCleared(invoice.FieldPeriodEnd) {
		fields = append(fields, invoice.FieldPeriodEnd)
	}
	if m.FieldCleared(invoice.FieldNotes) {
		fields = append(fields, invoice.FieldNotes)
	}
	if m.FieldCleared(invoice.FieldPaidAt) {
		fields = append(fields, invoice.FieldPaidAt)
	}
	if m.FieldCleared(invoice.FieldVoidedAt) {
		fields = append(fields, invoice.FieldVoidedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case invoice.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case invoice.FieldScheduleID:
		m.ClearScheduleID()
		return nil
	case invoice.FieldPeriodStart:
		m.ClearPeriodStart()
		return nil
	case invoice.FieldPeriodEnd:
		m.ClearPeriodEnd()
		return nil
	case invoice.FieldNotes:
		m.ClearNotes()
		return nil
	case invoice.FieldPaidAt:
		m.ClearPaidAt()
		return nil
	case invoice.FieldVoidedAt:
		m.ClearVoidedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldTenantID:
		m.ResetTenantID()
		return nil
	case invoice.FieldStatus:
		m.ResetStatus()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case invoice.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case invoice.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case invoice.FieldMetadata:
		m.ResetMetadata()
		return nil
	case invoice.FieldInvoiceNumber:
		m.ResetInvoiceNumber()
		return nil
	case invoice.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case invoice.FieldScheduleID:
		m.ResetScheduleID()
		return nil
	case invoice.FieldIssueDate:
		m.ResetIssueDate()
		return nil
	case invoice.FieldDueDate:
		m.ResetDueDate()
		return nil
	case invoice.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case invoice.FieldPeriodEnd:
		m.ResetPeriodEnd()
		return nil
	case invoice.FieldCurrency:
		m.ResetCurrency()
		return nil
	case invoice.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case invoice.FieldTaxTotal:
		m.ResetTaxTotal()
		return nil
	case invoice.FieldTotal:
		m.ResetTotal()
		return nil
	case invoice.FieldAmountPaid:
		m.ResetAmountPaid()
		return nil
	case invoice.FieldAmountRemaining:
		m.ResetAmountRemaining()
		return nil
	case invoice.FieldInvoiceStatus:
		m.ResetInvoiceStatus()
		return nil
	case invoice.FieldPaymentStatus:
		m.ResetPaymentStatus()
		return nil
	case invoice.FieldNotes:
		m.ResetNotes()
		return nil
	case invoice.FieldPaidAt:
		m.ResetPaidAt()
		return nil
	case invoice.FieldVoidedAt:
		m.ResetVoidedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.customer != nil {
		edges = append(edges, invoice.EdgeCustomer)
	}
	if m.line_items != nil {
		edges = append(edges, invoice.EdgeLineItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeCustomer:
		if id := m.customer; id != nil {
			return []ent.Value{*id}
		}
	case invoice.EdgeLineItems:
		ids := make([]ent.Value, 0, len(m.line_items))
		for id := range m.line_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedline_items != nil {
		edges = append(edges, invoice.EdgeLineItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeLineItems:
		ids := make([]ent.Value, 0, len(m.removedline_items))
		for id := range m.removedline_items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcustomer {
		edges = append(edges, invoice.EdgeCustomer)
	}
	if m.clearedline_items {
		edges = append(edges, invoice.EdgeLineItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case invoice.EdgeCustomer:
		return m.clearedcustomer
	case invoice.EdgeLineItems:
		return m.clearedline_items
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	switch name {
	case invoice.EdgeCustomer:
		m.ClearCustomer()
		return nil
	}
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	switch name {
	case invoice.EdgeCustomer:
		m.ResetCustomer()
		return nil
	case invoice.EdgeLineItems:
		m.ResetLineItems()
		return nil
	}
	return fmt.Errorf("unknown Invoice edge %s", name)
}

// InvoiceLineItemMutation represents an operation that mutates the InvoiceLineItem nodes in the graph.
type InvoiceLineItemMutation struct {
	config
	op             Op
	typ            string
	id             *string
	tenant_id      *string
	status         *string
	created_at     *time.Time
	updated_at     *time.Time
	created_by     *string
	updated_by     *string
	description    *string
	quantity       *decimal.Decimal
	unit_price     *decimal.Decimal
	amount         *decimal.Decimal
	prorated       *bool
	clearedFields  map[string]struct{}
	invoice        *string
	clearedinvoice bool
	done           bool
	oldValue       func(context.Context) (*InvoiceLineItem, error)
	predicates     []predicate.InvoiceLineItem
}

var _ ent.Mutation = (*InvoiceLineItemMutation)(nil)

// invoicelineitemOption allows management of the mutation configuration using functional options.
type invoicelineitemOption func(*InvoiceLineItemMutation)

// newInvoiceLineItemMutation creates new mutation for the InvoiceLineItem entity.
func newInvoiceLineItemMutation(c config, op Op, opts ...invoicelineitemOption) *InvoiceLineItemMutation {
	m := &InvoiceLineItemMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoiceLineItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceLineItemID sets the ID field of the mutation.
func withInvoiceLineItemID(id string) invoicelineitemOption {
	return func(m *InvoiceLineItemMutation) {
		var (
			err   error
			once  sync.Once
			value *InvoiceLineItem
		)
		m.oldValue = func(ctx context.Context) (*InvoiceLineItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().InvoiceLineItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoiceLineItem sets the old InvoiceLineItem of the mutation.
func withInvoiceLineItem(node *InvoiceLineItem) invoicelineitemOption {
	return func(m *InvoiceLineItemMutation) {
		m.oldValue = func(context.Context) (*InvoiceLineItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceLineItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceLineItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of InvoiceLineItem entities.
func (m *InvoiceLineItemMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceLineItemMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceLineItemMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().InvoiceLineItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *InvoiceLineItemMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *InvoiceLineItemMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *InvoiceLineItemMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStatus sets the "status" field.
func (m *InvoiceLineItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *InvoiceLineItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *InvoiceLineItemMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceLineItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceLineItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceLineItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceLineItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceLineItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceLineItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *InvoiceLineItemMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *InvoiceLineItemMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *InvoiceLineItemMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[invoicelineitem.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *InvoiceLineItemMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[invoicelineitem.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *InvoiceLineItemMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, invoicelineitem.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *InvoiceLineItemMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *InvoiceLineItemMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *InvoiceLineItemMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[invoicelineitem.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *InvoiceLineItemMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[invoicelineitem.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *InvoiceLineItemMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, invoicelineitem.FieldUpdatedBy)
}

// SetInvoiceID sets the "invoice_id" field.
func (m *InvoiceLineItemMutation) SetInvoiceID(s string) {
	m.invoice = &s
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *InvoiceLineItemMutation) InvoiceID() (r string, exists bool) {
	v := m.invoice
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldInvoiceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *InvoiceLineItemMutation) ResetInvoiceID() {
	m.invoice = nil
}

// SetDescription sets the "description" field.
func (m *InvoiceLineItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *InvoiceLineItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *InvoiceLineItemMutation) ResetDescription() {
	m.description = nil
}

// SetQuantity sets the "quantity" field.
func (m *InvoiceLineItemMutation) SetQuantity(d decimal.Decimal) {
	m.quantity = &d
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *InvoiceLineItemMutation) Quantity() (r decimal.Decimal, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldQuantity(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *InvoiceLineItemMutation) ResetQuantity() {
	m.quantity = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *InvoiceLineItemMutation) SetUnitPrice(d decimal.Decimal) {
	m.unit_price = &d
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *InvoiceLineItemMutation) UnitPrice() (r decimal.Decimal, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldUnitPrice(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *InvoiceLineItemMutation) ResetUnitPrice() {
	m.unit_price = nil
}

// SetAmount sets the "amount" field.
func (m *InvoiceLineItemMutation) SetAmount(d decimal.Decimal) {
	m.amount = &d
}

// Amount returns the value of the "amount" field in the mutation.
func (m *InvoiceLineItemMutation) Amount() (r decimal.Decimal, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ResetAmount resets all changes to the "amount" field.
func (m *InvoiceLineItemMutation) ResetAmount() {
	m.amount = nil
}

// SetProrated sets the "prorated" field.
func (m *InvoiceLineItemMutation) SetProrated(b bool) {
	m.prorated = &b
}

// Prorated returns the value of the "prorated" field in the mutation.
func (m *InvoiceLineItemMutation) Prorated() (r bool, exists bool) {
	v := m.prorated
	if v == nil {
		return
	}
	return *v, true
}

// OldProrated returns the old "prorated" field's value of the InvoiceLineItem entity.
// If the InvoiceLineItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceLineItemMutation) OldProrated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProrated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProrated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProrated: %w", err)
	}
	return oldValue.Prorated, nil
}

// ResetProrated resets all changes to the "prorated" field.
func (m *InvoiceLineItemMutation) ResetProrated() {
	m.prorated = nil
}

// ClearInvoice clears the "invoice" edge to the Invoice entity.
func (m *InvoiceLineItemMutation) ClearInvoice() {
	m.clearedinvoice = true
	m.clearedFields[invoicelineitem.FieldInvoiceID] = struct{}{}
}

// InvoiceCleared reports if the "invoice" edge to the Invoice entity was cleared.
func (m *InvoiceLineItemMutation) InvoiceCleared() bool {
	return m.clearedinvoice
}

// InvoiceIDs returns the "invoice" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InvoiceID instead. It exists only for internal usage by the builders.
func (m *InvoiceLineItemMutation) InvoiceIDs() (ids []string) {
	if id := m.invoice; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInvoice resets all changes to the "invoice" edge.
func (m *InvoiceLineItemMutation) ResetInvoice() {
	m.invoice = nil
	m.clearedinvoice = false
}

// Where appends a list predicates to the InvoiceLineItemMutation builder.
func (m *InvoiceLineItemMutation) Where(ps ...predicate.InvoiceLineItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceLineItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceLineItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.InvoiceLineItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceLineItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceLineItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (InvoiceLineItem).
func (m *InvoiceLineItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceLineItemMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tenant_id != nil {
		fields = append(fields, invoicelineitem.FieldTenantID)
	}
	if m.status != nil {
		fields = append(fields, invoicelineitem.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, invoicelineitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoicelineitem.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, invoicelineitem.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, invoicelineitem.FieldUpdatedBy)
	}
	if m.invoice != nil {
		fields = append(fields, invoicelineitem.FieldInvoiceID)
	}
	if m.description != nil {
		fields = append(fields, invoicelineitem.FieldDescription)
	}
	if m.quantity != nil {
		fields = append(fields, invoicelineitem.FieldQuantity)
	}
	if m.unit_price != nil {
		fields = append(fields, invoicelineitem.FieldUnitPrice)
	}
	if m.amount != nil {
		fields = append(fields, invoicelineitem.FieldAmount)
	}
	if m.prorated != nil {
		fields = append(fields, invoicelineitem.FieldProrated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceLineItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoicelineitem.FieldTenantID:
		return m.TenantID()
	case invoicelineitem.FieldStatus:
		return m.Status()
	case invoicelineitem.FieldCreatedAt:
		return m.CreatedAt()
	case invoicelineitem.FieldUpdatedAt:
		return m.UpdatedAt()
	case invoicelineitem.FieldCreatedBy:
		return m.CreatedBy()
	case invoicelineitem.FieldUpdatedBy:
		return m.UpdatedBy()
	case invoicelineitem.FieldInvoiceID:
		return m.InvoiceID()
	case invoicelineitem.FieldDescription:
		return m.Description()
	case invoicelineitem.FieldQuantity:
		return m.Quantity()
	case invoicelineitem.FieldUnitPrice:
		return m.UnitPrice()
	case invoicelineitem.FieldAmount:
		return m.Amount()
	case invoicelineitem.FieldProrated:
		return m.Prorated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceLineItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoicelineitem.FieldTenantID:
		return m.OldTenantID(ctx)
	case invoicelineitem.FieldStatus:
		return m.OldStatus(ctx)
	case invoicelineitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoicelineitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case invoicelineitem.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case invoicelineitem.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case invoicelineitem.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case invoicelineitem.FieldDescription:
		return m.OldDescription(ctx)
	case invoicelineitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case invoicelineitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case invoicelineitem.FieldAmount:
		return m.OldAmount(ctx)
	case invoicelineitem.FieldProrated:
		return m.OldProrated(ctx)
	}
	return nil, fmt.Errorf("unknown InvoiceLineItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceLineItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoicelineitem.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case invoicelineitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case invoicelineitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoicelineitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case invoicelineitem.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case invoicelineitem.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case invoicelineitem.FieldInvoiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case invoicelineitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case invoicelineitem.FieldQuantity:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case invoicelineitem.FieldUnitPrice:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case invoicelineitem.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case invoicelineitem.FieldProrated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProrated(v)
		return nil
	}
	return fmt.Errorf("unknown InvoiceLineItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceLineItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceLineItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceLineItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown InvoiceLineItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceLineItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoicelineitem.FieldCreatedBy) {
		fields = append(fields, invoicelineitem.FieldCreatedBy)
	}
	if m.FieldCleared(invoicelineitem.FieldUpdatedBy) {
		fields = append(fields, invoicelineitem.FieldUpdatedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceLineItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceLineItemMutation) ClearField(name string) error {
	switch name {
	case invoicelineitem.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case invoicelineitem.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLineItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceLineItemMutation) ResetField(name string) error {
	switch name {
	case invoicelineitem.FieldTenantID:
		m.ResetTenantID()
		return nil
	case invoicelineitem.FieldStatus:
		m.ResetStatus()
		return nil
	case invoicelineitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoicelineitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case invoicelineitem.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case invoicelineitem.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case invoicelineitem.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case invoicelineitem.FieldDescription:
		m.ResetDescription()
		return nil
	case invoicelineitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case invoicelineitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case invoicelineitem.FieldAmount:
		m.ResetAmount()
		return nil
	case invoicelineitem.FieldProrated:
		m.ResetProrated()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLineItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceLineItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoice != nil {
		edges = append(edges, invoicelineitem.EdgeInvoice)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceLineItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoicelineitem.EdgeInvoice:
		if id := m.invoice; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceLineItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceLineItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceLineItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoice {
		edges = append(edges, invoicelineitem.EdgeInvoice)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceLineItemMutation) EdgeCleared(name string) bool {
	switch name {
	case invoicelineitem.EdgeInvoice:
		return m.clearedinvoice
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceLineItemMutation) ClearEdge(name string) error {
	switch name {
	case invoicelineitem.EdgeInvoice:
		m.ClearInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLineItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceLineItemMutation) ResetEdge(name string) error {
	switch name {
	case invoicelineitem.EdgeInvoice:
		m.ResetInvoice()
		return nil
	}
	return fmt.Errorf("unknown InvoiceLineItem edge %s", name)
}

// PaymentMutation represents an operation that mutates the Payment nodes in the graph.
type PaymentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tenant_id          *string
	status             *string
	created_at         *time.Time
	updated_at         *time.Time
	created_by         *string
	updated_by         *string
	idempotency_key    *string
	invoice_id         *string
	schedule_id        *string
	amount             *decimal.Decimal
	currency           *string
	payment_status     *string
	payment_gateway    *string
	gateway_payment_id *string
	retry_count        *int
	addretry_count     *int
	max_retries        *int
	addmax_retries     *int
	next_retry_at      *time.Time
	succeeded_at       *time.Time
	failed_at          *time.Time
	error_message      *string
	clearedFields      map[string]struct{}
	attempts           map[string]struct{}
	removedattempts    map[string]struct{}
	clearedattempts    bool
	done               bool
	oldValue           func(context.Context) (*Payment, error)
	predicates         []predicate.Payment
}

var _ ent.Mutation = (*PaymentMutation)(nil)

// paymentOption allows management of the mutation configuration using functional options.
type paymentOption func(*PaymentMutation)

// newPaymentMutation creates new mutation for the Payment entity.
func newPaymentMutation(c config, op Op, opts ...paymentOption) *PaymentMutation {
	m := &PaymentMutation{
		config:        c,
		op:            op,
		typ:           TypePayment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentID sets the ID field of the mutation.
func withPaymentID(id string) paymentOption {
	return func(m *PaymentMutation) {
		var (
			err   error
			once  sync.Once
			value *Payment
		)
		m.oldValue = func(ctx context.Context) (*Payment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Payment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPayment sets the old Payment of the mutation.
func withPayment(node *Payment) paymentOption {
	return func(m *PaymentMutation) {
		m.oldValue = func(context.Context) (*Payment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Payment entities.
func (m *PaymentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Payment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *PaymentMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PaymentMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PaymentMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStatus sets the "status" field.
func (m *PaymentMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PaymentMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PaymentMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PaymentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaymentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaymentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaymentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaymentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PaymentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *PaymentMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *PaymentMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *PaymentMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[payment.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *PaymentMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[payment.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *PaymentMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, payment.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *PaymentMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *PaymentMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *PaymentMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[payment.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *PaymentMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[payment.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *PaymentMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, payment.FieldUpdatedBy)
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (m *PaymentMutation) SetIdempotencyKey(s string) {
	m.idempotency_key = &s
}

// IdempotencyKey returns the value of the "idempotency_key" field in the mutation.
func (m *PaymentMutation) IdempotencyKey() (r string, exists bool) {
	v := m.idempotency_key
	if v == nil {
		return
	}
	return *v, true
}

// OldIdempotencyKey returns the old "idempotency_key" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldIdempotencyKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdempotencyKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdempotencyKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdempotencyKey: %w", err)
	}
	return oldValue.IdempotencyKey, nil
}

// ResetIdempotencyKey resets all changes to the "idempotency_key" field.
func (m *PaymentMutation) ResetIdempotencyKey() {
	m.idempotency_key = nil
}

// SetInvoiceID sets the "invoice_id" field.
func (m *PaymentMutation) SetInvoiceID(s string) {
	m.invoice_id = &s
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *PaymentMutation) InvoiceID() (r string, exists bool) {
	v := m.invoice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldInvoiceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *PaymentMutation) ResetInvoiceID() {
	m.invoice_id = nil
}

// SetScheduleID sets the "schedule_id" field.
func (m *PaymentMutation) SetScheduleID(s string) {
	m.schedule_id = &s
}

// ScheduleID returns the value of the "schedule_id" field in the mutation.
func (m *PaymentMutation) ScheduleID() (r string, exists bool) {
	v := m.schedule_id
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleID returns the old "schedule_id" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldScheduleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleID: %w", err)
	}
	return oldValue.ScheduleID, nil
}

// ClearScheduleID clears the value of the "schedule_id" field.
func (m *PaymentMutation) ClearScheduleID() {
	m.schedule_id = nil
	m.clearedFields[payment.FieldScheduleID] = struct{}{}
}

// ScheduleIDCleared returns if the "schedule_id" field was cleared in this mutation.
func (m *PaymentMutation) ScheduleIDCleared() bool {
	_, ok := m.clearedFields[payment.FieldScheduleID]
	return ok
}

// ResetScheduleID resets all changes to the "schedule_id" field.
func (m *PaymentMutation) ResetScheduleID() {
	m.schedule_id = nil
	delete(m.clearedFields, payment.FieldScheduleID)
}

// SetAmount sets the "amount" field.
func (m *PaymentMutation) SetAmount(d decimal.Decimal) {
	m.amount = &d
}

// Amount returns the value of the "amount" field in the mutation.
func (m *PaymentMutation) Amount() (r decimal.Decimal, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ResetAmount resets all changes to the "amount" field.
func (m *PaymentMutation) ResetAmount() {
	m.amount = nil
}

// SetCurrency sets the "currency" field.
func (m *PaymentMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *PaymentMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *PaymentMutation) ResetCurrency() {
	m.currency = nil
}

// SetPaymentStatus sets the "payment_status" field.
func (m *PaymentMutation) SetPaymentStatus(s string) {
	m.payment_status = &s
}

// PaymentStatus returns the value of the "payment_status" field in the mutation.
func (m *PaymentMutation) PaymentStatus() (r string, exists bool) {
	v := m.payment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentStatus returns the old "payment_status" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldPaymentStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentStatus: %w", err)
	}
	return oldValue.PaymentStatus, nil
}

// ResetPaymentStatus resets all changes to the "payment_status" field.
func (m *PaymentMutation) ResetPaymentStatus() {
	m.payment_status = nil
}

// SetPaymentGateway sets the "payment_gateway" field.
func (m *PaymentMutation) SetPaymentGateway(s string) {
	m.payment_gateway = &s
}

// PaymentGateway returns the value of the "payment_gateway" field in the mutation.
func (m *PaymentMutation) PaymentGateway() (r string, exists bool) {
	v := m.payment_gateway
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentGateway returns the old "payment_gateway" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldPaymentGateway(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentGateway is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentGateway requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentGateway: %w", err)
	}
	return oldValue.PaymentGateway, nil
}

// ClearPaymentGateway clears the value of the "payment_gateway" field.
func (m *PaymentMutation) ClearPaymentGateway() {
	m.payment_gateway = nil
	m.clearedFields[payment.FieldPaymentGateway] = struct{}{}
}

// PaymentGatewayCleared returns if the "payment_gateway" field was cleared in this mutation.
func (m *PaymentMutation) PaymentGatewayCleared() bool {
	_, ok := m.clearedFields[payment.FieldPaymentGateway]
	return ok
}

// ResetPaymentGateway resets all changes to the "payment_gateway" field.
func (m *PaymentMutation) ResetPaymentGateway() {
	m.payment_gateway = nil
	delete(m.clearedFields, payment.FieldPaymentGateway)
}

// SetGatewayPaymentID sets the "gateway_payment_id" field.
func (m *PaymentMutation) SetGatewayPaymentID(s string) {
	m.gateway_payment_id = &s
}

// GatewayPaymentID returns the value of the "gateway_payment_id" field in the mutation.
func (m *PaymentMutation) GatewayPaymentID() (r string, exists bool) {
	v := m.gateway_payment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGatewayPaymentID returns the old "gateway_payment_id" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldGatewayPaymentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGatewayPaymentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGatewayPaymentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGatewayPaymentID: %w", err)
	}
	return oldValue.GatewayPaymentID, nil
}

// ClearGatewayPaymentID clears the value of the "gateway_payment_id" field.
func (m *PaymentMutation) ClearGatewayPaymentID() {
	m.gateway_payment_id = nil
	m.clearedFields[payment.FieldGatewayPaymentID] = struct{}{}
}

// GatewayPaymentIDCleared returns if the "gateway_payment_id" field was cleared in this mutation.
func (m *PaymentMutation) GatewayPaymentIDCleared() bool {
	_, ok := m.clearedFields[payment.FieldGatewayPaymentID]
	return ok
}

// ResetGatewayPaymentID resets all changes to the "gateway_payment_id" field.
func (m *PaymentMutation) ResetGatewayPaymentID() {
	m.gateway_payment_id = nil
	delete(m.clearedFields, payment.FieldGatewayPaymentID)
}

// SetRetryCount sets the "retry_count" field.
func (m *PaymentMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *PaymentMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *PaymentMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *PaymentMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *PaymentMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *PaymentMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *PaymentMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *PaymentMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *PaymentMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *PaymentMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *PaymentMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *PaymentMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *PaymentMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[payment.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *PaymentMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[payment.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *PaymentMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, payment.FieldNextRetryAt)
}

// SetSucceededAt sets the "succeeded_at" field.
func (m *PaymentMutation) SetSucceededAt(t time.Time) {
	m.succeeded_at = &t
}

// SucceededAt returns the value of the "succeeded_at" field in the mutation.
func (m *PaymentMutation) SucceededAt() (r time.Time, exists bool) {
	v := m.succeeded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSucceededAt returns the old "succeeded_at" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldSucceededAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSucceededAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSucceededAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSucceededAt: %w", err)
	}
	return oldValue.SucceededAt, nil
}

// ClearSucceededAt clears the value of the "succeeded_at" field.
func (m *PaymentMutation) ClearSucceededAt() {
	m.succeeded_at = nil
	m.clearedFields[payment.FieldSucceededAt] = struct{}{}
}

// SucceededAtCleared returns if the "succeeded_at" field was cleared in this mutation.
func (m *PaymentMutation) SucceededAtCleared() bool {
	_, ok := m.clearedFields[payment.FieldSucceededAt]
	return ok
}

// ResetSucceededAt resets all changes to the "succeeded_at" field.
func (m *PaymentMutation) ResetSucceededAt() {
	m.succeeded_at = nil
	delete(m.clearedFields, payment.FieldSucceededAt)
}

// SetFailedAt sets the "failed_at" field.
func (m *PaymentMutation) SetFailedAt(t time.Time) {
	m.failed_at = &t
}

// FailedAt returns the value of the "failed_at" field in the mutation.
func (m *PaymentMutation) FailedAt() (r time.Time, exists bool) {
	v := m.failed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedAt returns the old "failed_at" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldFailedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedAt: %w", err)
	}
	return oldValue.FailedAt, nil
}

// ClearFailedAt clears the value of the "failed_at" field.
func (m *PaymentMutation) ClearFailedAt() {
	m.failed_at = nil
	m.clearedFields[payment.FieldFailedAt] = struct{}{}
}

// FailedAtCleared returns if the "failed_at" field was cleared in this mutation.
func (m *PaymentMutation) FailedAtCleared() bool {
	_, ok := m.clearedFields[payment.FieldFailedAt]
	return ok
}

// ResetFailedAt resets all changes to the "failed_at" field.
func (m *PaymentMutation) ResetFailedAt() {
	m.failed_at = nil
	delete(m.clearedFields, payment.FieldFailedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *PaymentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PaymentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Payment entity.
// If the Payment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PaymentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[payment.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PaymentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[payment.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PaymentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, payment.FieldErrorMessage)
}

// AddAttemptIDs adds the "attempts" edge to the PaymentAttempt entity by ids.
func (m *PaymentMutation) AddAttemptIDs(ids ...string) {
	if m.attempts == nil {
		m.attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the PaymentAttempt entity.
func (m *PaymentMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the PaymentAttempt entity was cleared.
func (m *PaymentMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the PaymentAttempt entity by IDs.
func (m *PaymentMutation) RemoveAttemptIDs(ids ...string) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the PaymentAttempt entity.
func (m *PaymentMutation) RemovedAttemptsIDs() (ids []string) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *PaymentMutation) AttemptsIDs() (ids []string) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *PaymentMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// Where appends a list predicates to the PaymentMutation builder.
func (m *PaymentMutation) Where(ps ...predicate.Payment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Payment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Payment).
func (m *PaymentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.tenant_id != nil {
		fields = append(fields, payment.FieldTenantID)
	}
	if m.status != nil {
		fields = append(fields, payment.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, payment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, payment.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, payment.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, payment.FieldUpdatedBy)
	}
	if m.idempotency_key != nil {
		fields = append(fields, payment.FieldIdempotencyKey)
	}
	if m.invoice_id != nil {
		fields = append(fields, payment.FieldInvoiceID)
	}
	if m.schedule_id != nil {
		fields = append(fields, payment.FieldScheduleID)
	}
	if m.amount != nil {
		fields = append(fields, payment.FieldAmount)
	}
	if m.currency != nil {
		fields = append(fields, payment.FieldCurrency)
	}
	if m.payment_status != nil {
		fields = append(fields, payment.FieldPaymentStatus)
	}
	if m.payment_gateway != nil {
		fields = append(fields, payment.FieldPaymentGateway)
	}
	if m.gateway_payment_id != nil {
		fields = append(fields, payment.FieldGatewayPaymentID)
	}
	if m.retry_count != nil {
		fields = append(fields, payment.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, payment.FieldMaxRetries)
	}
	if m.next_retry_at != nil {
		fields = append(fields, payment.FieldNextRetryAt)
	}
	if m.succeeded_at != nil {
		fields = append(fields, payment.FieldSucceededAt)
	}
	if m.failed_at != nil {
		fields = append(fields, payment.FieldFailedAt)
	}
	if m.error_message != nil {
		fields = append(fields, payment.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case payment.FieldTenantID:
		return m.TenantID()
	case payment.FieldStatus:
		return m.Status()
	case payment.FieldCreatedAt:
		return m.CreatedAt()
	case payment.FieldUpdatedAt:
		return m.UpdatedAt()
	case payment.FieldCreatedBy:
		return m.CreatedBy()
	case payment.FieldUpdatedBy:
		return m.UpdatedBy()
	case payment.FieldIdempotencyKey:
		return m.IdempotencyKey()
	case payment.FieldInvoiceID:
		return m.InvoiceID()
	case payment.FieldScheduleID:
		return m.ScheduleID()
	case payment.FieldAmount:
		return m.Amount()
	case payment.FieldCurrency:
		return m.Currency()
	case payment.FieldPaymentStatus:
		return m.PaymentStatus()
	case payment.FieldPaymentGateway:
		return m.PaymentGateway()
	case payment.FieldGatewayPaymentID:
		return m.GatewayPaymentID()
	case payment.FieldRetryCount:
		return m.RetryCount()
	case payment.FieldMaxRetries:
		return m.MaxRetries()
	case payment.FieldNextRetryAt:
		return m.NextRetryAt()
	case payment.FieldSucceededAt:
		return m.SucceededAt()
	case payment.FieldFailedAt:
		return m.FailedAt()
	case payment.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case payment.FieldTenantID:
		return m.OldTenantID(ctx)
	case payment.FieldStatus:
		return m.OldStatus(ctx)
	case payment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case payment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case payment.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case payment.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case payment.FieldIdempotencyKey:
		return m.OldIdempotencyKey(ctx)
	case payment.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case payment.FieldScheduleID:
		return m.OldScheduleID(ctx)
	case payment.FieldAmount:
		return m.OldAmount(ctx)
	case payment.FieldCurrency:
		return m.OldCurrency(ctx)
	case payment.FieldPaymentStatus:
		return m.OldPaymentStatus(ctx)
	case payment.FieldPaymentGateway:
		return m.OldPaymentGateway(ctx)
	case payment.FieldGatewayPaymentID:
		return m.OldGatewayPaymentID(ctx)
	case payment.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case payment.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case payment.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case payment.FieldSucceededAt:
		return m.OldSucceededAt(ctx)
	case payment.FieldFailedAt:
		return m.OldFailedAt(ctx)
	case payment.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown Payment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case payment.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case payment.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case payment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case payment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case payment.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case payment.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case payment.FieldIdempotencyKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdempotencyKey(v)
		return nil
	case payment.FieldInvoiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case payment.FieldScheduleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleID(v)
		return nil
	case payment.FieldAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case payment.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case payment.FieldPaymentStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentStatus(v)
		return nil
	case payment.FieldPaymentGateway:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentGateway(v)
		return nil
	case payment.FieldGatewayPaymentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGatewayPaymentID(v)
		return nil
	case payment.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case payment.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case payment.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case payment.FieldSucceededAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSucceededAt(v)
		return nil
	case payment.FieldFailedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedAt(v)
		return nil
	case payment.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown Payment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentMutation) AddedFields() []string {
	var fields []string
	if m.addretry_count != nil {
		fields = append(fields, payment.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, payment.FieldMaxRetries)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case payment.FieldRetryCount:
		return m.AddedRetryCount()
	case payment.FieldMaxRetries:
		return m.AddedMaxRetries()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case payment.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case payment.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	}
	return fmt.Errorf("unknown Payment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(payment.FieldCreatedBy) {
		fields = append(fields, payment.FieldCreatedBy)
	}
	if m.FieldCleared(payment.FieldUpdatedBy) {
		fields = append(fields, payment.FieldUpdatedBy)
	}
	if m.FieldCleared(payment.FieldScheduleID) {
		fields = append(fields, payment.FieldScheduleID)
	}
	if m.FieldCleared(payment.FieldPaymentGateway) {
		fields = append(fields, payment.FieldPaymentGateway)
	}
	if m.FieldCleared(payment.FieldGatewayPaymentID) {
		fields = append(fields, payment.FieldGatewayPaymentID)
	}
	if m.FieldCleared(payment.FieldNextRetryAt) {
		fields = append(fields, payment.FieldNextRetryAt)
	}
	if m.FieldCleared(payment.FieldSucceededAt) {
		fields = append(fields, payment.FieldSucceededAt)
	}
	if m.FieldCleared(payment.FieldFailedAt) {
		fields = append(fields, payment.FieldFailedAt)
	}
	if m.FieldCleared(payment.FieldErrorMessage) {
		fields = append(fields, payment.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentMutation) ClearField(name string) error {
	switch name {
	case payment.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case payment.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case payment.FieldScheduleID:
		m.ClearScheduleID()
		return nil
	case payment.FieldPaymentGateway:
		m.ClearPaymentGateway()
		return nil
	case payment.FieldGatewayPaymentID:
		m.ClearGatewayPaymentID()
		return nil
	case payment.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case payment.FieldSucceededAt:
		m.ClearSucceededAt()
		return nil
	case payment.FieldFailedAt:
		m.ClearFailedAt()
		return nil
	case payment.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Payment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentMutation) ResetField(name string) error {
	switch name {
	case payment.FieldTenantID:
		m.ResetTenantID()
		return nil
	case payment.FieldStatus:
		m.ResetStatus()
		return nil
	case payment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case payment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case payment.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case payment.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case payment.FieldIdempotencyKey:
		m.ResetIdempotencyKey()
		return nil
	case payment.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case payment.FieldScheduleID:
		m.ResetScheduleID()
		return nil
	case payment.FieldAmount:
		m.ResetAmount()
		return nil
	case payment.FieldCurrency:
		m.ResetCurrency()
		return nil
	case payment.FieldPaymentStatus:
		m.ResetPaymentStatus()
		return nil
	case payment.FieldPaymentGateway:
		m.ResetPaymentGateway()
		return nil
	case payment.FieldGatewayPaymentID:
		m.ResetGatewayPaymentID()
		return nil
	case payment.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case payment.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case payment.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case payment.FieldSucceededAt:
		m.ResetSucceededAt()
		return nil
	case payment.FieldFailedAt:
		m.ResetFailedAt()
		return nil
	case payment.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Payment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.attempts != nil {
		edges = append(edges, payment.EdgeAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case payment.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedattempts != nil {
		edges = append(edges, payment.EdgeAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case payment.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedattempts {
		edges = append(edges, payment.EdgeAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentMutation) EdgeCleared(name string) bool {
	switch name {
	case payment.EdgeAttempts:
		return m.clearedattempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Payment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentMutation) ResetEdge(name string) error {
	switch name {
	case payment.EdgeAttempts:
		m.ResetAttempts()
		return nil
	}
	return fmt.Errorf("unknown Payment edge %s", name)
}

// PaymentAttemptMutation represents an operation that mutates the PaymentAttempt nodes in the graph.
type PaymentAttemptMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tenant_id          *string
	status             *string
	created_at         *time.Time
	updated_at         *time.Time
	created_by         *string
	updated_by         *string
	attempt_number     *int
	addattempt_number  *int
	attempt_status     *string
	gateway_attempt_id *string
	next_retry_at      *time.Time
	error_message      *string
	clearedFields      map[string]struct{}
	payment            *string
	clearedpayment     bool
	done               bool
	oldValue           func(context.Context) (*PaymentAttempt, error)
	predicates         []predicate.PaymentAttempt
}

var _ ent.Mutation = (*PaymentAttemptMutation)(nil)

// paymentattemptOption allows management of the mutation configuration using functional options.
type paymentattemptOption func(*PaymentAttemptMutation)

// newPaymentAttemptMutation creates new mutation for the PaymentAttempt entity.
func newPaymentAttemptMutation(c config, op Op, opts ...paymentattemptOption) *PaymentAttemptMutation {
	m := &PaymentAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypePaymentAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentAttemptID sets the ID field of the mutation.
func withPaymentAttemptID(id string) paymentattemptOption {
	return func(m *PaymentAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *PaymentAttempt
		)
		m.oldValue = func(ctx context.Context) (*PaymentAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaymentAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaymentAttempt sets the old PaymentAttempt of the mutation.
func withPaymentAttempt(node *PaymentAttempt) paymentattemptOption {
	return func(m *PaymentAttemptMutation) {
		m.oldValue = func(context.Context) (*PaymentAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaymentAttempt entities.
func (m *PaymentAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaymentAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *PaymentAttemptMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *PaymentAttemptMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *PaymentAttemptMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStatus sets the "status" field.
func (m *PaymentAttemptMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PaymentAttemptMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PaymentAttemptMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PaymentAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaymentAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaymentAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PaymentAttemptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PaymentAttemptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PaymentAttemptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *PaymentAttemptMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *PaymentAttemptMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *PaymentAttemptMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[paymentattempt.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *PaymentAttemptMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[paymentattempt.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *PaymentAttemptMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, paymentattempt.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *PaymentAttemptMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *PaymentAttemptMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *PaymentAttemptMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[paymentattempt.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *PaymentAttemptMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[paymentattempt.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *PaymentAttemptMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, paymentattempt.FieldUpdatedBy)
}

// SetPaymentID sets the "payment_id" field.
func (m *PaymentAttemptMutation) SetPaymentID(s string) {
	m.payment = &s
}

// PaymentID returns the value of the "payment_id" field in the mutation.
func (m *PaymentAttemptMutation) PaymentID() (r string, exists bool) {
	v := m.payment
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentID returns the old "payment_id" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldPaymentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentID: %w", err)
	}
	return oldValue.PaymentID, nil
}

// ResetPaymentID resets all changes to the "payment_id" field.
func (m *PaymentAttemptMutation) ResetPaymentID() {
	m.payment = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *PaymentAttemptMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *PaymentAttemptMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *PaymentAttemptMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *PaymentAttemptMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *PaymentAttemptMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetAttemptStatus sets the "attempt_status" field.
func (m *PaymentAttemptMutation) SetAttemptStatus(s string) {
	m.attempt_status = &s
}

// AttemptStatus returns the value of the "attempt_status" field in the mutation.
func (m *PaymentAttemptMutation) AttemptStatus() (r string, exists bool) {
	v := m.attempt_status
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptStatus returns the old "attempt_status" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldAttemptStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptStatus: %w", err)
	}
	return oldValue.AttemptStatus, nil
}

// ResetAttemptStatus resets all changes to the "attempt_status" field.
func (m *PaymentAttemptMutation) ResetAttemptStatus() {
	m.attempt_status = nil
}

// SetGatewayAttemptID sets the "gateway_attempt_id" field.
func (m *PaymentAttemptMutation) SetGatewayAttemptID(s string) {
	m.gateway_attempt_id = &s
}

// GatewayAttemptID returns the value of the "gateway_attempt_id" field in the mutation.
func (m *PaymentAttemptMutation) GatewayAttemptID() (r string, exists bool) {
	v := m.gateway_attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGatewayAttemptID returns the old "gateway_attempt_id" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldGatewayAttemptID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGatewayAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGatewayAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGatewayAttemptID: %w", err)
	}
	return oldValue.GatewayAttemptID, nil
}

// ClearGatewayAttemptID clears the value of the "gateway_attempt_id" field.
func (m *PaymentAttemptMutation) ClearGatewayAttemptID() {
	m.gateway_attempt_id = nil
	m.clearedFields[paymentattempt.FieldGatewayAttemptID] = struct{}{}
}

// GatewayAttemptIDCleared returns if the "gateway_attempt_id" field was cleared in this mutation.
func (m *PaymentAttemptMutation) GatewayAttemptIDCleared() bool {
	_, ok := m.clearedFields[paymentattempt.FieldGatewayAttemptID]
	return ok
}

// ResetGatewayAttemptID resets all changes to the "gateway_attempt_id" field.
func (m *PaymentAttemptMutation) ResetGatewayAttemptID() {
	m.gateway_attempt_id = nil
	delete(m.clearedFields, paymentattempt.FieldGatewayAttemptID)
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *PaymentAttemptMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *PaymentAttemptMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *PaymentAttemptMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[paymentattempt.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *PaymentAttemptMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[paymentattempt.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *PaymentAttemptMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, paymentattempt.FieldNextRetryAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *PaymentAttemptMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *PaymentAttemptMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the PaymentAttempt entity.
// If the PaymentAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentAttemptMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *PaymentAttemptMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[paymentattempt.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *PaymentAttemptMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[paymentattempt.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *PaymentAttemptMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, paymentattempt.FieldErrorMessage)
}

// ClearPayment clears the "payment" edge to the Payment entity.
func (m *PaymentAttemptMutation) ClearPayment() {
	m.clearedpayment = true
	m.clearedFields[paymentattempt.FieldPaymentID] = struct{}{}
}

// PaymentCleared reports if the "payment" edge to the Payment entity was cleared.
func (m *PaymentAttemptMutation) PaymentCleared() bool {
	return m.clearedpayment
}

// PaymentIDs returns the "payment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PaymentID instead. It exists only for internal usage by the builders.
func (m *PaymentAttemptMutation) PaymentIDs() (ids []string) {
	if id := m.payment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPayment resets all changes to the "payment" edge.
func (m *PaymentAttemptMutation) ResetPayment() {
	m.payment = nil
	m.clearedpayment = false
}

// Where appends a list predicates to the PaymentAttemptMutation builder.
func (m *PaymentAttemptMutation) Where(ps ...predicate.PaymentAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaymentAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaymentAttempt).
func (m *PaymentAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentAttemptMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.tenant_id != nil {
		fields = append(fields, paymentattempt.FieldTenantID)
	}
	if m.status != nil {
		fields = append(fields, paymentattempt.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, paymentattempt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, paymentattempt.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, paymentattempt.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, paymentattempt.FieldUpdatedBy)
	}
	if m.payment != nil {
		fields = append(fields, paymentattempt.FieldPaymentID)
	}
	if m.attempt_number != nil {
		fields = append(fields, paymentattempt.FieldAttemptNumber)
	}
	if m.attempt_status != nil {
		fields = append(fields, paymentattempt.FieldAttemptStatus)
	}
	if m.gateway_attempt_id != nil {
		fields = append(fields, paymentattempt.FieldGatewayAttemptID)
	}
	if m.next_retry_at != nil {
		fields = append(fields, paymentattempt.FieldNextRetryAt)
	}
	if m.error_message != nil {
		fields = append(fields, paymentattempt.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paymentattempt.FieldTenantID:
		return m.TenantID()
	case paymentattempt.FieldStatus:
		return m.Status()
	case paymentattempt.FieldCreatedAt:
		return m.CreatedAt()
	case paymentattempt.FieldUpdatedAt:
		return m.UpdatedAt()
	case paymentattempt.FieldCreatedBy:
		return m.CreatedBy()
	case paymentattempt.FieldUpdatedBy:
		return m.UpdatedBy()
	case paymentattempt.FieldPaymentID:
		return m.PaymentID()
	case paymentattempt.FieldAttemptNumber:
		return m.AttemptNumber()
	case paymentattempt.FieldAttemptStatus:
		return m.AttemptStatus()
	case paymentattempt.FieldGatewayAttemptID:
		return m.GatewayAttemptID()
	case paymentattempt.FieldNextRetryAt:
		return m.NextRetryAt()
	case paymentattempt.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paymentattempt.FieldTenantID:
		return m.OldTenantID(ctx)
	case paymentattempt.FieldStatus:
		return m.OldStatus(ctx)
	case paymentattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case paymentattempt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case paymentattempt.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case paymentattempt.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case paymentattempt.FieldPaymentID:
		return m.OldPaymentID(ctx)
	case paymentattempt.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case paymentattempt.FieldAttemptStatus:
		return m.OldAttemptStatus(ctx)
	case paymentattempt.FieldGatewayAttemptID:
		return m.OldGatewayAttemptID(ctx)
	case paymentattempt.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case paymentattempt.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown PaymentAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paymentattempt.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case paymentattempt.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case paymentattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case paymentattempt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case paymentattempt.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case paymentattempt.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case paymentattempt.FieldPaymentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentID(v)
		return nil
	case paymentattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case paymentattempt.FieldAttemptStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptStatus(v)
		return nil
	case paymentattempt.FieldGatewayAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGatewayAttemptID(v)
		return nil
	case paymentattempt.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case paymentattempt.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, paymentattempt.FieldAttemptNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paymentattempt.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paymentattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paymentattempt.FieldCreatedBy) {
		fields = append(fields, paymentattempt.FieldCreatedBy)
	}
	if m.FieldCleared(paymentattempt.FieldUpdatedBy) {
		fields = append(fields, paymentattempt.FieldUpdatedBy)
	}
	if m.FieldCleared(paymentattempt.FieldGatewayAttemptID) {
		fields = append(fields, paymentattempt.FieldGatewayAttemptID)
	}
	if m.FieldCleared(paymentattempt.FieldNextRetryAt) {
		fields = append(fields, paymentattempt.FieldNextRetryAt)
	}
	if m.FieldCleared(paymentattempt.FieldErrorMessage) {
		fields = append(fields, paymentattempt.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentAttemptMutation) ClearField(name string) error {
	switch name {
	case paymentattempt.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case paymentattempt.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case paymentattempt.FieldGatewayAttemptID:
		m.ClearGatewayAttemptID()
		return nil
	case paymentattempt.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case paymentattempt.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PaymentAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentAttemptMutation) ResetField(name string) error {
	switch name {
	case paymentattempt.FieldTenantID:
		m.ResetTenantID()
		return nil
	case paymentattempt.FieldStatus:
		m.ResetStatus()
		return nil
	case paymentattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case paymentattempt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case paymentattempt.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case paymentattempt.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case paymentattempt.FieldPaymentID:
		m.ResetPaymentID()
		return nil
	case paymentattempt.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case paymentattempt.FieldAttemptStatus:
		m.ResetAttemptStatus()
		return nil
	case paymentattempt.FieldGatewayAttemptID:
		m.ResetGatewayAttemptID()
		return nil
	case paymentattempt.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case paymentattempt.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown PaymentAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.payment != nil {
		edges = append(edges, paymentattempt.EdgePayment)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paymentattempt.EdgePayment:
		if id := m.payment; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpayment {
		edges = append(edges, paymentattempt.EdgePayment)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case paymentattempt.EdgePayment:
		return m.clearedpayment
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentAttemptMutation) ClearEdge(name string) error {
	switch name {
	case paymentattempt.EdgePayment:
		m.ClearPayment()
		return nil
	}
	return fmt.Errorf("unknown PaymentAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentAttemptMutation) ResetEdge(name string) error {
	switch name {
	case paymentattempt.EdgePayment:
		m.ResetPayment()
		return nil
	}
	return fmt.Errorf("unknown PaymentAttempt edge %s", name)
}

// RecurringScheduleMutation represents an operation that mutates the RecurringSchedule nodes in the graph.
type RecurringScheduleMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	tenant_id                   *string
	status                      *string
	created_at                  *time.Time
	updated_at                  *time.Time
	created_by                  *string
	updated_by                  *string
	metadata                    *map[string]string
	description                 *string
	interval_type               *string
	custom_interval_days        *int
	addcustom_interval_days     *int
	anchor_day                  *int
	addanchor_day               *int
	start_date                  *time.Time
	end_date                    *time.Time
	next_run_date               *time.Time
	last_run_date               *time.Time
	timezone                    *string
	schedule_status             *string
	paused_at                   *time.Time
	cancelled_at                *time.Time
	cancellation_reason         *string
	currency                    *string
	base_amount                 *decimal.Decimal
	line_items                  *[]types.ScheduleLineItem
	appendline_items            []types.ScheduleLineItem
	tax_rate                    *decimal.Decimal
	tax_inclusive               *bool
	proration_enabled           *bool
	invoice_notes               *string
	payment_terms_days          *int
	addpayment_terms_days       *int
	auto_charge                 *bool
	retry_enabled               *bool
	max_retry_attempts          *int
	addmax_retry_attempts       *int
	retry_interval_hours        *int
	addretry_interval_hours     *int
	retry_backoff_multiplier    *float64
	addretry_backoff_multiplier *float64
	failure_notification_sent   *bool
	total_invoices_generated    *int
	addtotal_invoices_generated *int
	total_amount_billed         *decimal.Decimal
	clearedFields               map[string]struct{}
	customer                    *string
	clearedcustomer             bool
	executions                  map[string]struct{}
	removedexecutions           map[string]struct{}
	clearedexecutions           bool
	audit_logs                  map[string]struct{}
	removedaudit_logs           map[string]struct{}
	clearedaudit_logs           bool
	done                        bool
	oldValue                    func(context.Context) (*RecurringSchedule, error)
	predicates                  []predicate.RecurringSchedule
}

var _ ent.Mutation = (*RecurringScheduleMutation)(nil)

// recurringscheduleOption allows management of the mutation configuration using functional options.
type recurringscheduleOption func(*RecurringScheduleMutation)

// newRecurringScheduleMutation creates new mutation for the RecurringSchedule entity.
func newRecurringScheduleMutation(c config, op Op, opts ...recurringscheduleOption) *RecurringScheduleMutation {
	m := &RecurringScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeRecurringSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecurringScheduleID sets the ID field of the mutation.
func withRecurringScheduleID(id string) recurringscheduleOption {
	return func(m *RecurringScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *RecurringSchedule
		)
		m.oldValue = func(ctx context.Context) (*RecurringSchedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecurringSchedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecurringSchedule sets the old RecurringSchedule of the mutation.
func withRecurringSchedule(node *RecurringSchedule) recurringscheduleOption {
	return func(m *RecurringScheduleMutation) {
		m.oldValue = func(context.Context) (*RecurringSchedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecurringScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecurringScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecurringSchedule entities.
func (m *RecurringScheduleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecurringScheduleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecurringScheduleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecurringSchedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *RecurringScheduleMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *RecurringScheduleMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *RecurringScheduleMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStatus sets the "status" field.
func (m *RecurringScheduleMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RecurringScheduleMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RecurringScheduleMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RecurringScheduleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RecurringScheduleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RecurringScheduleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RecurringScheduleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RecurringScheduleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RecurringScheduleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *RecurringScheduleMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *RecurringScheduleMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *RecurringScheduleMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[recurringschedule.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *RecurringScheduleMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[recurringschedule.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *RecurringScheduleMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, recurringschedule.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *RecurringScheduleMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *RecurringScheduleMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *RecurringScheduleMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[recurringschedule.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *RecurringScheduleMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[recurringschedule.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *RecurringScheduleMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, recurringschedule.FieldUpdatedBy)
}

// SetMetadata sets the "metadata" field.
func (m *RecurringScheduleMutation) SetMetadata(value map[string]string) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *RecurringScheduleMutation) Metadata() (r map[string]string, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldMetadata(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *RecurringScheduleMutation) ResetMetadata() {
	m.metadata = nil
}

// SetCustomerID sets the "customer_id" field.
func (m *RecurringScheduleMutation) SetCustomerID(s string) {
	m.customer = &s
}

// CustomerID returns the value of the "customer_id" field in the mutation.
func (m *RecurringScheduleMutation) CustomerID() (r string, exists bool) {
	v := m.customer
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomerID returns the old "customer_id" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldCustomerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomerID: %w", err)
	}
	return oldValue.CustomerID, nil
}

// ResetCustomerID resets all changes to the "customer_id" field.
func (m *RecurringScheduleMutation) ResetCustomerID() {
	m.customer = nil
}

// SetDescription sets the "description" field.
func (m *RecurringScheduleMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *RecurringScheduleMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *RecurringScheduleMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[recurringschedule.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *RecurringScheduleMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[recurringschedule.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *RecurringScheduleMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, recurringschedule.FieldDescription)
}

// SetIntervalType sets the "interval_type" field.
func (m *RecurringScheduleMutation) SetIntervalType(s string) {
	m.interval_type = &s
}

// IntervalType returns the value of the "interval_type" field in the mutation.
func (m *RecurringScheduleMutation) IntervalType() (r string, exists bool) {
	v := m.interval_type
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalType returns the old "interval_type" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldIntervalType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalType: %w", err)
	}
	return oldValue.IntervalType, nil
}

// ResetIntervalType resets all changes to the "interval_type" field.
func (m *RecurringScheduleMutation) ResetIntervalType() {
	m.interval_type = nil
}

// SetCustomIntervalDays sets the "custom_interval_days" field.
func (m *RecurringScheduleMutation) SetCustomIntervalDays(i int) {
	m.custom_interval_days = &i
	m.addcustom_interval_days = nil
}

// CustomIntervalDays returns the value of the "custom_interval_days" field in the mutation.
func (m *RecurringScheduleMutation) CustomIntervalDays() (r int, exists bool) {
	v := m.custom_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomIntervalDays returns the old "custom_interval_days" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldCustomIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomIntervalDays: %w", err)
	}
	return oldValue.CustomIntervalDays, nil
}

// AddCustomIntervalDays adds i to the "custom_interval_days" field.
func (m *RecurringScheduleMutation) AddCustomIntervalDays(i int) {
	if m.addcustom_interval_days != nil {
		*m.addcustom_interval_days += i
	} else {
		m.addcustom_interval_days = &i
	}
}

// AddedCustomIntervalDays returns the value that was added to the "custom_interval_days" field in this mutation.
func (m *RecurringScheduleMutation) AddedCustomIntervalDays() (r int, exists bool) {
	v := m.addcustom_interval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetCustomIntervalDays resets all changes to the "custom_interval_days" field.
func (m *RecurringScheduleMutation) ResetCustomIntervalDays() {
	m.custom_interval_days = nil
	m.addcustom_interval_days = nil
}

// SetAnchorDay sets the "anchor_day" field.
func (m *RecurringScheduleMutation) SetAnchorDay(i int) {
	m.anchor_day = &i
	m.addanchor_day = nil
}

// AnchorDay returns the value of the "anchor_day" field in the mutation.
func (m *RecurringScheduleMutation) AnchorDay() (r int, exists bool) {
	v := m.anchor_day
	if v == nil {
		return
	}
	return *v, true
}

// OldAnchorDay returns the old "anchor_day" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldAnchorDay(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnchorDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnchorDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnchorDay: %w", err)
	}
	return oldValue.AnchorDay, nil
}

// AddAnchorDay adds i to the "anchor_day" field.
func (m *RecurringScheduleMutation) AddAnchorDay(i int) {
	if m.addanchor_day != nil {
		*m.addanchor_day += i
	} else {
		m.addanchor_day = &i
	}
}

// AddedAnchorDay returns the value that was added to the "anchor_day" field in this mutation.
func (m *RecurringScheduleMutation) AddedAnchorDay() (r int, exists bool) {
	v := m.addanchor_day
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnchorDay resets all changes to the "anchor_day" field.
func (m *RecurringScheduleMutation) ResetAnchorDay() {
	m.anchor_day = nil
	m.addanchor_day = nil
}

// SetStartDate sets the "start_date" field.
func (m *RecurringScheduleMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *RecurringScheduleMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *RecurringScheduleMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *RecurringScheduleMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *RecurringScheduleMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *RecurringScheduleMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[recurringschedule.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *RecurringScheduleMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[recurringschedule.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *RecurringScheduleMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, recurringschedule.FieldEndDate)
}

// SetNextRunDate sets the "next_run_date" field.
func (m *RecurringScheduleMutation) SetNextRunDate(t time.Time) {
	m.next_run_date = &t
}

// NextRunDate returns the value of the "next_run_date" field in the mutation.
func (m *RecurringScheduleMutation) NextRunDate() (r time.Time, exists bool) {
	v := m.next_run_date
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunDate returns the old "next_run_date" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldNextRunDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunDate: %w", err)
	}
	return oldValue.NextRunDate, nil
}

// ResetNextRunDate resets all changes to the "next_run_date" field.
func (m *RecurringScheduleMutation) ResetNextRunDate() {
	m.next_run_date = nil
}

// SetLastRunDate sets the "last_run_date" field.
func (m *RecurringScheduleMutation) SetLastRunDate(t time.Time) {
	m.last_run_date = &t
}

// LastRunDate returns the value of the "last_run_date" field in the mutation.
func (m *RecurringScheduleMutation) LastRunDate() (r time.Time, exists bool) {
	v := m.last_run_date
	if v == nil {
		return
	}
	return *v, true
}

// OldLastRunDate returns the old "last_run_date" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldLastRunDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastRunDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastRunDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastRunDate: %w", err)
	}
	return oldValue.LastRunDate, nil
}

// ClearLastRunDate clears the value of the "last_run_date" field.
func (m *RecurringScheduleMutation) ClearLastRunDate() {
	m.last_run_date = nil
	m.clearedFields[recurringschedule.FieldLastRunDate] = struct{}{}
}

// LastRunDateCleared returns if the "last_run_date" field was cleared in this mutation.
func (m *RecurringScheduleMutation) LastRunDateCleared() bool {
	_, ok := m.clearedFields[recurringschedule.FieldLastRunDate]
	return ok
}

// ResetLastRunDate resets all changes to the "last_run_date" field.
func (m *RecurringScheduleMutation) ResetLastRunDate() {
	m.last_run_date = nil
	delete(m.clearedFields, recurringschedule.FieldLastRunDate)
}

// SetTimezone sets the "timezone" field.
func (m *RecurringScheduleMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *RecurringScheduleMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *RecurringScheduleMutation) ResetTimezone() {
	m.timezone = nil
}

// SetScheduleStatus sets the "schedule_status" field.
func (m *RecurringScheduleMutation) SetScheduleStatus(s string) {
	m.schedule_status = &s
}

// ScheduleStatus returns the value of the "schedule_status" field in the mutation.
func (m *RecurringScheduleMutation) ScheduleStatus() (r string, exists bool) {
	v := m.schedule_status
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleStatus returns the old "schedule_status" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldScheduleStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleStatus: %w", err)
	}
	return oldValue.ScheduleStatus, nil
}

// ResetScheduleStatus resets all changes to the "schedule_status" field.
func (m *RecurringScheduleMutation) ResetScheduleStatus() {
	m.schedule_status = nil
}

// SetPausedAt sets the "paused_at" field.
func (m *RecurringScheduleMutation) SetPausedAt(t time.Time) {
	m.paused_at = &t
}

// PausedAt returns the value of the "paused_at" field in the mutation.
func (m *RecurringScheduleMutation) PausedAt() (r time.Time, exists bool) {
	v := m.paused_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPausedAt returns the old "paused_at" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldPausedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPausedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPausedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPausedAt: %w", err)
	}
	return oldValue.PausedAt, nil
}

// ClearPausedAt clears the value of the "paused_at" field.
func (m *RecurringScheduleMutation) ClearPausedAt() {
	m.paused_at = nil
	m.clearedFields[recurringschedule.FieldPausedAt] = struct{}{}
}

// PausedAtCleared returns if the "paused_at" field was cleared in this mutation.
func (m *RecurringScheduleMutation) PausedAtCleared() bool {
	_, ok := m.clearedFields[recurringschedule.FieldPausedAt]
	return ok
}

// ResetPausedAt resets all changes to the "paused_at" field.
func (m *RecurringScheduleMutation) ResetPausedAt() {
	m.paused_at = nil
	delete(m.clearedFields, recurringschedule.FieldPausedAt)
}

// SetCancelledAt sets the "cancelled_at" field.
func (m *RecurringScheduleMutation) SetCancelledAt(t time.Time) {
	m.cancelled_at = &t
}

// CancelledAt returns the value of the "cancelled_at" field in the mutation.
func (m *RecurringScheduleMutation) CancelledAt() (r time.Time, exists bool) {
	v := m.cancelled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAt returns the old "cancelled_at" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldCancelledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAt: %w", err)
	}
	return oldValue.CancelledAt, nil
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (m *RecurringScheduleMutation) ClearCancelledAt() {
	m.cancelled_at = nil
	m.clearedFields[recurringschedule.FieldCancelledAt] = struct{}{}
}

// CancelledAtCleared returns if the "cancelled_at" field was cleared in this mutation.
func (m *RecurringScheduleMutation) CancelledAtCleared() bool {
	_, ok := m.clearedFields[recurringschedule.FieldCancelledAt]
	return ok
}

// ResetCancelledAt resets all changes to the "cancelled_at" field.
func (m *RecurringScheduleMutation) ResetCancelledAt() {
	m.cancelled_at = nil
	delete(m.clearedFields, recurringschedule.FieldCancelledAt)
}

// SetCancellationReason sets the "cancellation_reason" field.
func (m *RecurringScheduleMutation) SetCancellationReason(s string) {
	m.cancellation_reason = &s
}

// CancellationReason returns the value of the "cancellation_reason" field in the mutation.
func (m *RecurringScheduleMutation) CancellationReason() (r string, exists bool) {
	v := m.cancellation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellationReason returns the old "cancellation_reason" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldCancellationReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellationReason: %w", err)
	}
	return oldValue.CancellationReason, nil
}

// ClearCancellationReason clears the value of the "cancellation_reason" field.
func (m *RecurringScheduleMutation) ClearCancellationReason() {
	m.cancellation_reason = nil
	m.clearedFields[recurringschedule.FieldCancellationReason] = struct{}{}
}

// CancellationReasonCleared returns if the "cancellation_reason" field was cleared in this mutation.
func (m *RecurringScheduleMutation) CancellationReasonCleared() bool {
	_, ok := m.clearedFields[recurringschedule.FieldCancellationReason]
	return ok
}

// ResetCancellationReason resets all changes to the "cancellation_reason" field.
func (m *RecurringScheduleMutation) ResetCancellationReason() {
	m.cancellation_reason = nil
	delete(m.clearedFields, recurringschedule.FieldCancellationReason)
}

// SetCurrency sets the "currency" field.
func (m *RecurringScheduleMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *RecurringScheduleMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *RecurringScheduleMutation) ResetCurrency() {
	m.currency = nil
}

// SetBaseAmount sets the "base_amount" field.
func (m *RecurringScheduleMutation) SetBaseAmount(d decimal.Decimal) {
	m.base_amount = &d
}

// BaseAmount returns the value of the "base_amount" field in the mutation.
func (m *RecurringScheduleMutation) BaseAmount() (r decimal.Decimal, exists bool) {
	v := m.base_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldBaseAmount returns the old "base_amount" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldBaseAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBaseAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBaseAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBaseAmount: %w", err)
	}
	return oldValue.BaseAmount, nil
}

// ResetBaseAmount resets all changes to the "base_amount" field.
func (m *RecurringScheduleMutation) ResetBaseAmount() {
	m.base_amount = nil
}

// SetLineItems sets the "line_items" field.
func (m *RecurringScheduleMutation) SetLineItems(tli []types.ScheduleLineItem) {
	m.line_items = &tli
	m.appendline_items = nil
}

// LineItems returns the value of the "line_items" field in the mutation.
func (m *RecurringScheduleMutation) LineItems() (r []types.ScheduleLineItem, exists bool) {
	v := m.line_items
	if v == nil {
		return
	}
	return *v, true
}

// OldLineItems returns the old "line_items" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldLineItems(ctx context.Context) (v []types.ScheduleLineItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLineItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLineItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLineItems: %w", err)
	}
	return oldValue.LineItems, nil
}

// AppendLineItems adds tli to the "line_items" field.
func (m *RecurringScheduleMutation) AppendLineItems(tli []types.ScheduleLineItem) {
	m.appendline_items = append(m.appendline_items, tli...)
}

// AppendedLineItems returns the list of values that were appended to the "line_items" field in this mutation.
func (m *RecurringScheduleMutation) AppendedLineItems() ([]types.ScheduleLineItem, bool) {
	if len(m.appendline_items) == 0 {
		return nil, false
	}
	return m.appendline_items, true
}

// ClearLineItems clears the value of the "line_items" field.
func (m *RecurringScheduleMutation) ClearLineItems() {
	m.line_items = nil
	m.appendline_items = nil
	m.clearedFields[recurringschedule.FieldLineItems] = struct{}{}
}

// LineItemsCleared returns if the "line_items" field was cleared in this mutation.
func (m *RecurringScheduleMutation) LineItemsCleared() bool {
	_, ok := m.clearedFields[recurringschedule.FieldLineItems]
	return ok
}

// ResetLineItems resets all changes to the "line_items" field.
func (m *RecurringScheduleMutation) ResetLineItems() {
	m.line_items = nil
	m.appendline_items = nil
	delete(m.clearedFields, recurringschedule.FieldLineItems)
}

// SetTaxRate sets the "tax_rate" field.
func (m *RecurringScheduleMutation) SetTaxRate(d decimal.Decimal) {
	m.tax_rate = &d
}

// TaxRate returns the value of the "tax_rate" field in the mutation.
func (m *RecurringScheduleMutation) TaxRate() (r decimal.Decimal, exists bool) {
	v := m.tax_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxRate returns the old "tax_rate" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldTaxRate(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxRate: %w", err)
	}
	return oldValue.TaxRate, nil
}

// ResetTaxRate resets all changes to the "tax_rate" field.
func (m *RecurringScheduleMutation) ResetTaxRate() {
	m.tax_rate = nil
}

// SetTaxInclusive sets the "tax_inclusive" field.
func (m *RecurringScheduleMutation) SetTaxInclusive(b bool) {
	m.tax_inclusive = &b
}

// TaxInclusive returns the value of the "tax_inclusive" field in the mutation.
func (m *RecurringScheduleMutation) TaxInclusive() (r bool, exists bool) {
	v := m.tax_inclusive
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxInclusive returns the old "tax_inclusive" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldTaxInclusive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxInclusive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxInclusive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxInclusive: %w", err)
	}
	return oldValue.TaxInclusive, nil
}

// ResetTaxInclusive resets all changes to the "tax_inclusive" field.
func (m *RecurringScheduleMutation) ResetTaxInclusive() {
	m.tax_inclusive = nil
}

// SetProrationEnabled sets the "proration_enabled" field.
func (m *RecurringScheduleMutation) SetProrationEnabled(b bool) {
	m.proration_enabled = &b
}

// ProrationEnabled returns the value of the "proration_enabled" field in the mutation.
func (m *RecurringScheduleMutation) ProrationEnabled() (r bool, exists bool) {
	v := m.proration_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldProrationEnabled returns the old "proration_enabled" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldProrationEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProrationEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProrationEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProrationEnabled: %w", err)
	}
	return oldValue.ProrationEnabled, nil
}

// ResetProrationEnabled resets all changes to the "proration_enabled" field.
func (m *RecurringScheduleMutation) ResetProrationEnabled() {
	m.proration_enabled = nil
}

// SetInvoiceNotes sets the "invoice_notes" field.
func (m *RecurringScheduleMutation) SetInvoiceNotes(s string) {
	m.invoice_notes = &s
}

// InvoiceNotes returns the value of the "invoice_notes" field in the mutation.
func (m *RecurringScheduleMutation) InvoiceNotes() (r string, exists bool) {
	v := m.invoice_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceNotes returns the old "invoice_notes" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldInvoiceNotes(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceNotes: %w", err)
	}
	return oldValue.InvoiceNotes, nil
}

// ClearInvoiceNotes clears the value of the "invoice_notes" field.
func (m *RecurringScheduleMutation) ClearInvoiceNotes() {
	m.invoice_notes = nil
	m.clearedFields[recurringschedule.FieldInvoiceNotes] = struct{}{}
}

// InvoiceNotesCleared returns if the "invoice_notes" field was cleared in this mutation.
func (m *RecurringScheduleMutation) InvoiceNotesCleared() bool {
	_, ok := m.clearedFields[recurringschedule.FieldInvoiceNotes]
	return ok
}

// ResetInvoiceNotes resets all changes to the "invoice_notes" field.
func (m *RecurringScheduleMutation) ResetInvoiceNotes() {
	m.invoice_notes = nil
	delete(m.clearedFields, recurringschedule.FieldInvoiceNotes)
}

// SetPaymentTermsDays sets the "payment_terms_days" field.
func (m *RecurringScheduleMutation) SetPaymentTermsDays(i int) {
	m.payment_terms_days = &i
	m.addpayment_terms_days = nil
}

// PaymentTermsDays returns the value of the "payment_terms_days" field in the mutation.
func (m *RecurringScheduleMutation) PaymentTermsDays() (r int, exists bool) {
	v := m.payment_terms_days
	if v == nil {
		return
	}
	return *v, true
}

// OldPaymentTermsDays returns the old "payment_terms_days" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldPaymentTermsDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaymentTermsDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaymentTermsDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaymentTermsDays: %w", err)
	}
	return oldValue.PaymentTermsDays, nil
}

// AddPaymentTermsDays adds i to the "payment_terms_days" field.
func (m *RecurringScheduleMutation) AddPaymentTermsDays(i int) {
	if m.addpayment_terms_days != nil {
		*m.addpayment_terms_days += i
	} else {
		m.addpayment_terms_days = &i
	}
}

// AddedPaymentTermsDays returns the value that was added to the "payment_terms_days" field in this mutation.
func (m *RecurringScheduleMutation) AddedPaymentTermsDays() (r int, exists bool) {
	v := m.addpayment_terms_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetPaymentTermsDays resets all changes to the "payment_terms_days" field.
func (m *RecurringScheduleMutation) ResetPaymentTermsDays() {
	m.payment_terms_days = nil
	m.addpayment_terms_days = nil
}

// SetAutoCharge sets the "auto_charge" field.
func (m *RecurringScheduleMutation) SetAutoCharge(b bool) {
	m.auto_charge = &b
}

// AutoCharge returns the value of the "auto_charge" field in the mutation.
func (m *RecurringScheduleMutation) AutoCharge() (r bool, exists bool) {
	v := m.auto_charge
	if v == nil {
		return
	}
	return *v, true
}

// OldAutoCharge returns the old "auto_charge" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldAutoCharge(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutoCharge is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutoCharge requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutoCharge: %w", err)
	}
	return oldValue.AutoCharge, nil
}

// ResetAutoCharge resets all changes to the "auto_charge" field.
func (m *RecurringScheduleMutation) ResetAutoCharge() {
	m.auto_charge = nil
}

// SetRetryEnabled sets the "retry_enabled" field.
func (m *RecurringScheduleMutation) SetRetryEnabled(b bool) {
	m.retry_enabled = &b
}

// RetryEnabled returns the value of the "retry_enabled" field in the mutation.
func (m *RecurringScheduleMutation) RetryEnabled() (r bool, exists bool) {
	v := m.retry_enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryEnabled returns the old "retry_enabled" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldRetryEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryEnabled: %w", err)
	}
	return oldValue.RetryEnabled, nil
}

// ResetRetryEnabled resets all changes to the "retry_enabled" field.
func (m *RecurringScheduleMutation) ResetRetryEnabled() {
	m.retry_enabled = nil
}

// SetMaxRetryAttempts sets the "max_retry_attempts" field.
func (m *RecurringScheduleMutation) SetMaxRetryAttempts(i int) {
	m.max_retry_attempts = &i
	m.addmax_retry_attempts = nil
}

// MaxRetryAttempts returns the value of the "max_retry_attempts" field in the mutation.
func (m *RecurringScheduleMutation) MaxRetryAttempts() (r int, exists bool) {
	v := m.max_retry_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetryAttempts returns the old "max_retry_attempts" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldMaxRetryAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetryAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetryAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetryAttempts: %w", err)
	}
	return oldValue.MaxRetryAttempts, nil
}

// AddMaxRetryAttempts adds i to the "max_retry_attempts" field.
func (m *RecurringScheduleMutation) AddMaxRetryAttempts(i int) {
	if m.addmax_retry_attempts != nil {
		*m.addmax_retry_attempts += i
	} else {
		m.addmax_retry_attempts = &i
	}
}

// AddedMaxRetryAttempts returns the value that was added to the "max_retry_attempts" field in this mutation.
func (m *RecurringScheduleMutation) AddedMaxRetryAttempts() (r int, exists bool) {
	v := m.addmax_retry_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetryAttempts resets all changes to the "max_retry_attempts" field.
func (m *RecurringScheduleMutation) ResetMaxRetryAttempts() {
	m.max_retry_attempts = nil
	m.addmax_retry_attempts = nil
}

// SetRetryIntervalHours sets the "retry_interval_hours" field.
func (m *RecurringScheduleMutation) SetRetryIntervalHours(i int) {
	m.retry_interval_hours = &i
	m.addretry_interval_hours = nil
}

// RetryIntervalHours returns the value of the "retry_interval_hours" field in the mutation.
func (m *RecurringScheduleMutation) RetryIntervalHours() (r int, exists bool) {
	v := m.retry_interval_hours
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryIntervalHours returns the old "retry_interval_hours" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldRetryIntervalHours(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryIntervalHours is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryIntervalHours requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryIntervalHours: %w", err)
	}
	return oldValue.RetryIntervalHours, nil
}

// AddRetryIntervalHours adds i to the "retry_interval_hours" field.
func (m *RecurringScheduleMutation) AddRetryIntervalHours(i int) {
	if m.addretry_interval_hours != nil {
		*m.addretry_interval_hours += i
	} else {
		m.addretry_interval_hours = &i
	}
}

// AddedRetryIntervalHours returns the value that was added to the "retry_interval_hours" field in this mutation.
func (m *RecurringScheduleMutation) AddedRetryIntervalHours() (r int, exists bool) {
	v := m.addretry_interval_hours
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryIntervalHours resets all changes to the "retry_interval_hours" field.
func (m *RecurringScheduleMutation) ResetRetryIntervalHours() {
	m.retry_interval_hours = nil
	m.addretry_interval_hours = nil
}

// SetRetryBackoffMultiplier sets the "retry_backoff_multiplier" field.
func (m *RecurringScheduleMutation) SetRetryBackoffMultiplier(f float64) {
	m.retry_backoff_multiplier = &f
	m.addretry_backoff_multiplier = nil
}

// RetryBackoffMultiplier returns the value of the "retry_backoff_multiplier" field in the mutation.
func (m *RecurringScheduleMutation) RetryBackoffMultiplier() (r float64, exists bool) {
	v := m.retry_backoff_multiplier
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryBackoffMultiplier returns the old "retry_backoff_multiplier" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldRetryBackoffMultiplier(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryBackoffMultiplier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryBackoffMultiplier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryBackoffMultiplier: %w", err)
	}
	return oldValue.RetryBackoffMultiplier, nil
}

// AddRetryBackoffMultiplier adds f to the "retry_backoff_multiplier" field.
func (m *RecurringScheduleMutation) AddRetryBackoffMultiplier(f float64) {
	if m.addretry_backoff_multiplier != nil {
		*m.addretry_backoff_multiplier += f
	} else {
		m.addretry_backoff_multiplier = &f
	}
}

// AddedRetryBackoffMultiplier returns the value that was added to the "retry_backoff_multiplier" field in this mutation.
func (m *RecurringScheduleMutation) AddedRetryBackoffMultiplier() (r float64, exists bool) {
	v := m.addretry_backoff_multiplier
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryBackoffMultiplier resets all changes to the "retry_backoff_multiplier" field.
func (m *RecurringScheduleMutation) ResetRetryBackoffMultiplier() {
	m.retry_backoff_multiplier = nil
	m.addretry_backoff_multiplier = nil
}

// SetFailureNotificationSent sets the "failure_notification_sent" field.
func (m *RecurringScheduleMutation) SetFailureNotificationSent(b bool) {
	m.failure_notification_sent = &b
}

// FailureNotificationSent returns the value of the "failure_notification_sent" field in the mutation.
func (m *RecurringScheduleMutation) FailureNotificationSent() (r bool, exists bool) {
	v := m.failure_notification_sent
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureNotificationSent returns the old "failure_notification_sent" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldFailureNotificationSent(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureNotificationSent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureNotificationSent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureNotificationSent: %w", err)
	}
	return oldValue.FailureNotificationSent, nil
}

// ResetFailureNotificationSent resets all changes to the "failure_notification_sent" field.
func (m *RecurringScheduleMutation) ResetFailureNotificationSent() {
	m.failure_notification_sent = nil
}

// SetTotalInvoicesGenerated sets the "total_invoices_generated" field.
func (m *RecurringScheduleMutation) SetTotalInvoicesGenerated(i int) {
	m.total_invoices_generated = &i
	m.addtotal_invoices_generated = nil
}

// TotalInvoicesGenerated returns the value of the "total_invoices_generated" field in the mutation.
func (m *RecurringScheduleMutation) TotalInvoicesGenerated() (r int, exists bool) {
	v := m.total_invoices_generated
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalInvoicesGenerated returns the old "total_invoices_generated" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldTotalInvoicesGenerated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalInvoicesGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalInvoicesGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalInvoicesGenerated: %w", err)
	}
	return oldValue.TotalInvoicesGenerated, nil
}

// AddTotalInvoicesGenerated adds i to the "total_invoices_generated" field.
func (m *RecurringScheduleMutation) AddTotalInvoicesGenerated(i int) {
	if m.addtotal_invoices_generated != nil {
		*m.addtotal_invoices_generated += i
	} else {
		m.addtotal_invoices_generated = &i
	}
}

// AddedTotalInvoicesGenerated returns the value that was added to the "total_invoices_generated" field in this mutation.
func (m *RecurringScheduleMutation) AddedTotalInvoicesGenerated() (r int, exists bool) {
	v := m.addtotal_invoices_generated
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalInvoicesGenerated resets all changes to the "total_invoices_generated" field.
func (m *RecurringScheduleMutation) ResetTotalInvoicesGenerated() {
	m.total_invoices_generated = nil
	m.addtotal_invoices_generated = nil
}

// SetTotalAmountBilled sets the "total_amount_billed" field.
func (m *RecurringScheduleMutation) SetTotalAmountBilled(d decimal.Decimal) {
	m.total_amount_billed = &d
}

// TotalAmountBilled returns the value of the "total_amount_billed" field in the mutation.
func (m *RecurringScheduleMutation) TotalAmountBilled() (r decimal.Decimal, exists bool) {
	v := m.total_amount_billed
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAmountBilled returns the old "total_amount_billed" field's value of the RecurringSchedule entity.
// If the RecurringSchedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecurringScheduleMutation) OldTotalAmountBilled(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAmountBilled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAmountBilled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAmountBilled: %w", err)
	}
	return oldValue.TotalAmountBilled, nil
}

// ResetTotalAmountBilled resets all changes to the "total_amount_billed" field.
func (m *RecurringScheduleMutation) ResetTotalAmountBilled() {
	m.total_amount_billed = nil
}

// ClearCustomer clears the "customer" edge to the Customer entity.
func (m *RecurringScheduleMutation) ClearCustomer() {
	m.clearedcustomer = true
	m.clearedFields[recurringschedule.FieldCustomerID] = struct{}{}
}

// CustomerCleared reports if the "customer" edge to the Customer entity was cleared.
func (m *RecurringScheduleMutation) CustomerCleared() bool {
	return m.clearedcustomer
}

// CustomerIDs returns the "customer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CustomerID instead. It exists only for internal usage by the builders.
func (m *RecurringScheduleMutation) CustomerIDs() (ids []string) {
	if id := m.customer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCustomer resets all changes to the "customer" edge.
func (m *RecurringScheduleMutation) ResetCustomer() {
	m.customer = nil
	m.clearedcustomer = false
}

// AddExecutionIDs adds the "executions" edge to the ScheduleExecution entity by ids.
func (m *RecurringScheduleMutation) AddExecutionIDs(ids ...string) {
	if m.executions == nil {
		m.executions = make(map[string]struct{})
	}
	for i := range ids {
		m.executions[ids[i]] = struct{}{}
	}
}

// ClearExecutions clears the "executions" edge to the ScheduleExecution entity.
func (m *RecurringScheduleMutation) ClearExecutions() {
	m.clearedexecutions = true
}

// ExecutionsCleared reports if the "executions" edge to the ScheduleExecution entity was cleared.
func (m *RecurringScheduleMutation) ExecutionsCleared() bool {
	return m.clearedexecutions
}

// RemoveExecutionIDs removes the "executions" edge to the ScheduleExecution entity by IDs.
func (m *RecurringScheduleMutation) RemoveExecutionIDs(ids ...string) {
	if m.removedexecutions == nil {
		m.removedexecutions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.executions, ids[i])
		m.removedexecutions[ids[i]] = struct{}{}
	}
}

// RemovedExecutions returns the removed IDs of the "executions" edge to the ScheduleExecution entity.
func (m *RecurringScheduleMutation) RemovedExecutionsIDs() (ids []string) {
	for id := range m.removedexecutions {
		ids = append(ids, id)
	}
	return
}

// ExecutionsIDs returns the "executions" edge IDs in the mutation.
func (m *RecurringScheduleMutation) ExecutionsIDs() (ids []string) {
	for id := range m.executions {
		ids = append(ids, id)
	}
	return
}

// ResetExecutions resets all changes to the "executions" edge.
func (m *RecurringScheduleMutation) ResetExecutions() {
	m.executions = nil
	m.clearedexecutions = false
	m.removedexecutions = nil
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by ids.
func (m *RecurringScheduleMutation) AddAuditLogIDs(ids ...string) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the AuditLog entity.
func (m *RecurringScheduleMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the AuditLog entity was cleared.
func (m *RecurringScheduleMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the AuditLog entity by IDs.
func (m *RecurringScheduleMutation) RemoveAuditLogIDs(ids ...string) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the AuditLog entity.
func (m *RecurringScheduleMutation) RemovedAuditLogsIDs() (ids []string) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *RecurringScheduleMutation) AuditLogsIDs() (ids []string) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *RecurringScheduleMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// Where appends a list predicates to the RecurringScheduleMutation builder.
func (m *RecurringScheduleMutation) Where(ps ...predicate.RecurringSchedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecurringScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecurringScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecurringSchedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecurringScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecurringScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecurringSchedule).
func (m *RecurringScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecurringScheduleMutation) Fields() []string {
	fields := make([]string, 0, 37)
	if m.tenant_id != nil {
		fields = append(fields, recurringschedule.FieldTenantID)
	}
	if m.status != nil {
		fields = append(fields, recurringschedule.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, recurringschedule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, recurringschedule.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, recurringschedule.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, recurringschedule.FieldUpdatedBy)
	}
	if m.metadata != nil {
		fields = append(fields, recurringschedule.FieldMetadata)
	}
	if m.customer != nil {
		fields = append(fields, recurringschedule.FieldCustomerID)
	}
	if m.description != nil {
		fields = append(fields, recurringschedule.FieldDescription)
	}
	if m.interval_type != nil {
		fields = append(fields, recurringschedule.FieldIntervalType)
	}
	if m.custom_interval_days != nil {
		fields = append(fields, recurringschedule.FieldCustomIntervalDays)
	}
	if m.anchor_day != nil {
		fields = append(fields, recurringschedule.FieldAnchorDay)
	}
	if m.start_date != nil {
		fields = append(fields, recurringschedule.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, recurringschedule.FieldEndDate)
	}
	if m.next_run_date != nil {
		fields = append(fields, recurringschedule.FieldNextRunDate)
	}
	if m.last_run_date != nil {
		fields = append(fields, recurringschedule.FieldLastRunDate)
	}
	if m.timezone != nil {
		fields = append(fields, recurringschedule.FieldTimezone)
	}
	if m.schedule_status != nil {
		fields = append(fields, recurringschedule.FieldScheduleStatus)
	}
	if m.paused_at != nil {
		fields = append(fields, recurringschedule.FieldPausedAt)
	}
	if m.cancelled_at != nil {
		fields = append(fields, recurringschedule.FieldCancelledAt)
	}
	if m.cancellation_reason != nil {
		fields = append(fields, recurringschedule.FieldCancellationReason)
	}
	if m.currency != nil {
		fields = append(fields, recurringschedule.FieldCurrency)
	}
	if m.base_amount != nil {
		fields = append(fields, recurringschedule.FieldBaseAmount)
	}
	if m.line_items != nil {
		fields = append(fields, recurringschedule.FieldLineItems)
	}
	if m.tax_rate != nil {
		fields = append(fields, recurringschedule.FieldTaxRate)
	}
	if m.tax_inclusive != nil {
		fields = append(fields, recurringschedule.FieldTaxInclusive)
	}
	if m.proration_enabled != nil {
		fields = append(fields, recurringschedule.FieldProrationEnabled)
	}
	if m.invoice_notes != nil {
		fields = append(fields, recurringschedule.FieldInvoiceNotes)
	}
	if m.payment_terms_days != nil {
		fields = append(fields, recurringschedule.FieldPaymentTermsDays)
	}
	if m.auto_charge != nil {
		fields = append(fields, recurringschedule.FieldAutoCharge)
	}
	if m.retry_enabled != nil {
		fields = append(fields, recurringschedule.FieldRetryEnabled)
	}
	if m.max_retry_attempts != nil {
		fields = append(fields, recurringschedule.FieldMaxRetryAttempts)
	}
	if m.retry_interval_hours != nil {
		fields = append(fields, recurringschedule.FieldRetryIntervalHours)
	}
	if m.retry_backoff_multiplier != nil {
		fields = append(fields, recurringschedule.FieldRetryBackoffMultiplier)
	}
	if m.failure_notification_sent != nil {
		fields = append(fields, recurringschedule.FieldFailureNotificationSent)
	}
	if m.total_invoices_generated != nil {
		fields = append(fields, recurringschedule.FieldTotalInvoicesGenerated)
	}
	if m.total_amount_billed != nil {
		fields = append(fields, recurringschedule.FieldTotalAmountBilled)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecurringScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recurringschedule.FieldTenantID:
		return m.TenantID()
	case recurringschedule.FieldStatus:
		return m.Status()
	case recurringschedule.FieldCreatedAt:
		return m.CreatedAt()
	case recurringschedule.FieldUpdatedAt:
		return m.UpdatedAt()
	case recurringschedule.FieldCreatedBy:
		return m.CreatedBy()
	case recurringschedule.FieldUpdatedBy:
		return m.UpdatedBy()
	case recurringschedule.FieldMetadata:
		return m.Metadata()
	case recurringschedule.FieldCustomerID:
		return m.CustomerID()
	case recurringschedule.FieldDescription:
		return m.Description()
	case recurringschedule.FieldIntervalType:
		return m.IntervalType()
	case recurringschedule.FieldCustomIntervalDays:
		return m.CustomIntervalDays()
	case recurringschedule.FieldAnchorDay:
		return m.AnchorDay()
	case recurringschedule.FieldStartDate:
		return m.StartDate()
	case recurringschedule.FieldEndDate:
		return m.EndDate()
	case recurringschedule.FieldNextRunDate:
		return m.NextRunDate()
	case recurringschedule.FieldLastRunDate:
		return m.LastRunDate()
	case recurringschedule.FieldTimezone:
		return m.Timezone()
	case recurringschedule.FieldScheduleStatus:
		return m.ScheduleStatus()
	case recurringschedule.FieldPausedAt:
		return m.PausedAt()
	case recurringschedule.FieldCancelledAt:
		return m.CancelledAt()
	case recurringschedule.FieldCancellationReason:
		return m.CancellationReason()
	case recurringschedule.FieldCurrency:
		return m.Currency()
	case recurringschedule.FieldBaseAmount:
		return m.BaseAmount()
	case recurringschedule.FieldLineItems:
		return m.LineItems()
	case recurringschedule.FieldTaxRate:
		return m.TaxRate()
	case recurringschedule.FieldTaxInclusive:
		return m.TaxInclusive()
	case recurringschedule.FieldProrationEnabled:
		return m.ProrationEnabled()
	case recurringschedule.FieldInvoiceNotes:
		return m.InvoiceNotes()
	case recurringschedule.FieldPaymentTermsDays:
		return m.PaymentTermsDays()
	case recurringschedule.FieldAutoCharge:
		return m.AutoCharge()
	case recurringschedule.FieldRetryEnabled:
		return m.RetryEnabled()
	case recurringschedule.FieldMaxRetryAttempts:
		return m.MaxRetryAttempts()
	case recurringschedule.FieldRetryIntervalHours:
		return m.RetryIntervalHours()
	case recurringschedule.FieldRetryBackoffMultiplier:
		return m.RetryBackoffMultiplier()
	case recurringschedule.FieldFailureNotificationSent:
		return m.FailureNotificationSent()
	case recurringschedule.FieldTotalInvoicesGenerated:
		return m.TotalInvoicesGenerated()
	case recurringschedule.FieldTotalAmountBilled:
		return m.TotalAmountBilled()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecurringScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recurringschedule.FieldTenantID:
		return m.OldTenantID(ctx)
	case recurringschedule.FieldStatus:
		return m.OldStatus(ctx)
	case recurringschedule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case recurringschedule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case recurringschedule.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case recurringschedule.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case recurringschedule.FieldMetadata:
		return m.OldMetadata(ctx)
	case recurringschedule.FieldCustomerID:
		return m.OldCustomerID(ctx)
	case recurringschedule.FieldDescription:
		return m.OldDescription(ctx)
	case recurringschedule.FieldIntervalType:
		return m.OldIntervalType(ctx)
	case recurringschedule.FieldCustomIntervalDays:
		return m.OldCustomIntervalDays(ctx)
	case recurringschedule.FieldAnchorDay:
		return m.OldAnchorDay(ctx)
	case recurringschedule.FieldStartDate:
		return m.OldStartDate(ctx)
	case recurringschedule.FieldEndDate:
		return m.OldEndDate(ctx)
	case recurringschedule.FieldNextRunDate:
		return m.OldNextRunDate(ctx)
	case recurringschedule.FieldLastRunDate:
		return m.OldLastRunDate(ctx)
	case recurringschedule.FieldTimezone:
		return m.OldTimezone(ctx)
	case recurringschedule.FieldScheduleStatus:
		return m.OldScheduleStatus(ctx)
	case recurringschedule.FieldPausedAt:
		return m.OldPausedAt(ctx)
	case recurringschedule.FieldCancelledAt:
		return m.OldCancelledAt(ctx)
	case recurringschedule.FieldCancellationReason:
		return m.OldCancellationReason(ctx)
	case recurringschedule.FieldCurrency:
		return m.OldCurrency(ctx)
	case recurringschedule.FieldBaseAmount:
		return m.OldBaseAmount(ctx)
	case recurringschedule.FieldLineItems:
		return m.OldLineItems(ctx)
	case recurringschedule.FieldTaxRate:
		return m.OldTaxRate(ctx)
	case recurringschedule.FieldTaxInclusive:
		return m.OldTaxInclusive(ctx)
	case recurringschedule.FieldProrationEnabled:
		return m.OldProrationEnabled(ctx)
	case recurringschedule.FieldInvoiceNotes:
		return m.OldInvoiceNotes(ctx)
	case recurringschedule.FieldPaymentTermsDays:
		return m.OldPaymentTermsDays(ctx)
	case recurringschedule.FieldAutoCharge:
		return m.OldAutoCharge(ctx)
	case recurringschedule.FieldRetryEnabled:
		return m.OldRetryEnabled(ctx)
	case recurringschedule.FieldMaxRetryAttempts:
		return m.OldMaxRetryAttempts(ctx)
	case recurringschedule.FieldRetryIntervalHours:
		return m.OldRetryIntervalHours(ctx)
	case recurringschedule.FieldRetryBackoffMultiplier:
		return m.OldRetryBackoffMultiplier(ctx)
	case recurringschedule.FieldFailureNotificationSent:
		return m.OldFailureNotificationSent(ctx)
	case recurringschedule.FieldTotalInvoicesGenerated:
		return m.OldTotalInvoicesGenerated(ctx)
	case recurringschedule.FieldTotalAmountBilled:
		return m.OldTotalAmountBilled(ctx)
	}
	return nil, fmt.Errorf("unknown RecurringSchedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecurringScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recurringschedule.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case recurringschedule.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case recurringschedule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case recurringschedule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case recurringschedule.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case recurringschedule.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case recurringschedule.FieldMetadata:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case recurringschedule.FieldCustomerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomerID(v)
		return nil
	case recurringschedule.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case recurringschedule.FieldIntervalType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalType(v)
		return nil
	case recurringschedule.FieldCustomIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomIntervalDays(v)
		return nil
	case recurringschedule.FieldAnchorDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnchorDay(v)
		return nil
	case recurringschedule.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case recurringschedule.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case recurringschedule.FieldNextRunDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunDate(v)
		return nil
	case recurringschedule.FieldLastRunDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastRunDate(v)
		return nil
	case recurringschedule.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case recurringschedule.FieldScheduleStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleStatus(v)
		return nil
	case recurringschedule.FieldPausedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPausedAt(v)
		return nil
	case recurringschedule.FieldCancelledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAt(v)
		return nil
	case recurringschedule.FieldCancellationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellationReason(v)
		return nil
	case recurringschedule.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case recurringschedule.FieldBaseAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBaseAmount(v)
		return nil
	case recurringschedule.FieldLineItems:
		v, ok := value.([]types.ScheduleLineItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLineItems(v)
		return nil
	case recurringschedule.FieldTaxRate:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxRate(v)
		return nil
	case recurringschedule.FieldTaxInclusive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxInclusive(v)
		return nil
	case recurringschedule.FieldProrationEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProrationEnabled(v)
		return nil
	case recurringschedule.FieldInvoiceNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceNotes(v)
		return nil
	case recurringschedule.FieldPaymentTermsDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaymentTermsDays(v)
		return nil
	case recurringschedule.FieldAutoCharge:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutoCharge(v)
		return nil
	case recurringschedule.FieldRetryEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryEnabled(v)
		return nil
	case recurringschedule.FieldMaxRetryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetryAttempts(v)
		return nil
	case recurringschedule.FieldRetryIntervalHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryIntervalHours(v)
		return nil
	case recurringschedule.FieldRetryBackoffMultiplier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryBackoffMultiplier(v)
		return nil
	case recurringschedule.FieldFailureNotificationSent:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureNotificationSent(v)
		return nil
	case recurringschedule.FieldTotalInvoicesGenerated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalInvoicesGenerated(v)
		return nil
	case recurringschedule.FieldTotalAmountBilled:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAmountBilled(v)
		return nil
	}
	return fmt.Errorf("unknown RecurringSchedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecurringScheduleMutation) AddedFields() []string {
	var fields []string
	if m.addcustom_interval_days != nil {
		fields = append(fields, recurringschedule.FieldCustomIntervalDays)
	}
	if m.addanchor_day != nil {
		fields = append(fields, recurringschedule.FieldAnchorDay)
	}
	if m.addpayment_terms_days != nil {
		fields = append(fields, recurringschedule.FieldPaymentTermsDays)
	}
	if m.addmax_retry_attempts != nil {
		fields = append(fields, recurringschedule.FieldMaxRetryAttempts)
	}
	if m.addretry_interval_hours != nil {
		fields = append(fields, recurringschedule.FieldRetryIntervalHours)
	}
	if m.addretry_backoff_multiplier != nil {
		fields = append(fields, recurringschedule.FieldRetryBackoffMultiplier)
	}
	if m.addtotal_invoices_generated != nil {
		fields = append(fields, recurringschedule.FieldTotalInvoicesGenerated)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecurringScheduleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case recurringschedule.FieldCustomIntervalDays:
		return m.AddedCustomIntervalDays()
	case recurringschedule.FieldAnchorDay:
		return m.AddedAnchorDay()
	case recurringschedule.FieldPaymentTermsDays:
		return m.AddedPaymentTermsDays()
	case recurringschedule.FieldMaxRetryAttempts:
		return m.AddedMaxRetryAttempts()
	case recurringschedule.FieldRetryIntervalHours:
		return m.AddedRetryIntervalHours()
	case recurringschedule.FieldRetryBackoffMultiplier:
		return m.AddedRetryBackoffMultiplier()
	case recurringschedule.FieldTotalInvoicesGenerated:
		return m.AddedTotalInvoicesGenerated()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecurringScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case recurringschedule.FieldCustomIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCustomIntervalDays(v)
		return nil
	case recurringschedule.FieldAnchorDay:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnchorDay(v)
		return nil
	case recurringschedule.FieldPaymentTermsDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPaymentTermsDays(v)
		return nil
	case recurringschedule.FieldMaxRetryAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetryAttempts(v)
		return nil
	case recurringschedule.FieldRetryIntervalHours:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryIntervalHours(v)
		return nil
	case recurringschedule.FieldRetryBackoffMultiplier:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryBackoffMultiplier(v)
		return nil
	case recurringschedule.FieldTotalInvoicesGenerated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalInvoicesGenerated(v)
		return nil
	}
	return fmt.Errorf("unknown RecurringSchedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecurringScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(recurringschedule.FieldCreatedBy) {
		fields = append(fields, recurringschedule.FieldCreatedBy)
	}
	if m.FieldCleared(recurringschedule.FieldUpdatedBy) {
		fields = append(fields, recurringschedule.FieldUpdatedBy)
	}
	if m.FieldCleared(recurringschedule.FieldDescription) {
		fields = append(fields, recurringschedule.FieldDescription)
	}
	if m.FieldCleared(recurringschedule.FieldEndDate) {
		fields = append(fields, recurringschedule.FieldEndDate)
	}
	if m.FieldCleared(recurringschedule.FieldLastRunDate) {
		fields = append(fields, recurringschedule.FieldLastRunDate)
	}
	if m.FieldCleared(recurringschedule.FieldPausedAt) {
		fields = append(fields, recurringschedule.FieldPausedAt)
	}
	if m.FieldCleared(recurringschedule.FieldCancelledAt) {
		fields = append(fields, recurringschedule.FieldCancelledAt)
	}
	if m.FieldCleared(recurringschedule.FieldCancellationReason) {
		fields = append(fields, recurringschedule.FieldCancellationReason)
	}
	if m.FieldCleared(recurringschedule.FieldLineItems) {
		fields = append(fields, recurringschedule.FieldLineItems)
	}
	if m.FieldCleared(recurringschedule.FieldInvoiceNotes) {
		fields = append(fields, recurringschedule.FieldInvoiceNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecurringScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecurringScheduleMutation) ClearField(name string) error {
	switch name {
	case recurringschedule.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case recurringschedule.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case recurringschedule.FieldDescription:
		m.ClearDescription()
		return nil
	case recurringschedule.FieldEndDate:
		m.ClearEndDate()
		return nil
	case recurringschedule.FieldLastRunDate:
		m.ClearLastRunDate()
		return nil
	case recurringschedule.FieldPausedAt:
		m.ClearPausedAt()
		return nil
	case recurringschedule.FieldCancelledAt:
		m.ClearCancelledAt()
		return nil
	case recurringschedule.FieldCancellationReason:
		m.ClearCancellationReason()
		return nil
	case recurringschedule.FieldLineItems:
		m.ClearLineItems()
		return nil
	case recurringschedule.FieldInvoiceNotes:
		m.ClearInvoiceNotes()
		return nil
	}
	return fmt.Errorf("unknown RecurringSchedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecurringScheduleMutation) ResetField(name string) error {
	switch name {
	case recurringschedule.FieldTenantID:
		m.ResetTenantID()
		return nil
	case recurringschedule.FieldStatus:
		m.ResetStatus()
		return nil
	case recurringschedule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case recurringschedule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case recurringschedule.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case recurringschedule.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case recurringschedule.FieldMetadata:
		m.ResetMetadata()
		return nil
	case recurringschedule.FieldCustomerID:
		m.ResetCustomerID()
		return nil
	case recurringschedule.FieldDescription:
		m.ResetDescription()
		return nil
	case recurringschedule.FieldIntervalType:
		m.ResetIntervalType()
		return nil
	case recurringschedule.FieldCustomIntervalDays:
		m.ResetCustomIntervalDays()
		return nil
	case recurringschedule.FieldAnchorDay:
		m.ResetAnchorDay()
		return nil
	case recurringschedule.FieldStartDate:
		m.ResetStartDate()
		return nil
	case recurringschedule.FieldEndDate:
		m.ResetEndDate()
		return nil
	case recurringschedule.FieldNextRunDate:
		m.ResetNextRunDate()
		return nil
	case recurringschedule.FieldLastRunDate:
		m.ResetLastRunDate()
		return nil
	case recurringschedule.FieldTimezone:
		m.ResetTimezone()
		return nil
	case recurringschedule.FieldScheduleStatus:
		m.ResetScheduleStatus()
		return nil
	case recurringschedule.FieldPausedAt:
		m.ResetPausedAt()
		return nil
	case recurringschedule.FieldCancelledAt:
		m.ResetCancelledAt()
		return nil
	case recurringschedule.FieldCancellationReason:
		m.ResetCancellationReason()
		return nil
	case recurringschedule.FieldCurrency:
		m.ResetCurrency()
		return nil
	case recurringschedule.FieldBaseAmount:
		m.ResetBaseAmount()
		return nil
	case recurringschedule.FieldLineItems:
		m.ResetLineItems()
		return nil
	case recurringschedule.FieldTaxRate:
		m.ResetTaxRate()
		return nil
	case recurringschedule.FieldTaxInclusive:
		m.ResetTaxInclusive()
		return nil
	case recurringschedule.FieldProrationEnabled:
		m.ResetProrationEnabled()
		return nil
	case recurringschedule.FieldInvoiceNotes:
		m.ResetInvoiceNotes()
		return nil
	case recurringschedule.FieldPaymentTermsDays:
		m.ResetPaymentTermsDays()
		return nil
	case recurringschedule.FieldAutoCharge:
		m.ResetAutoCharge()
		return nil
	case recurringschedule.FieldRetryEnabled:
		m.ResetRetryEnabled()
		return nil
	case recurringschedule.FieldMaxRetryAttempts:
		m.ResetMaxRetryAttempts()
		return nil
	case recurringschedule.FieldRetryIntervalHours:
		m.ResetRetryIntervalHours()
		return nil
	case recurringschedule.FieldRetryBackoffMultiplier:
		m.ResetRetryBackoffMultiplier()
		return nil
	case recurringschedule.FieldFailureNotificationSent:
		m.ResetFailureNotificationSent()
		return nil
	case recurringschedule.FieldTotalInvoicesGenerated:
		m.ResetTotalInvoicesGenerated()
		return nil
	case recurringschedule.FieldTotalAmountBilled:
		m.ResetTotalAmountBilled()
		return nil
	}
	return fmt.Errorf("unknown RecurringSchedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecurringScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.customer != nil {
		edges = append(edges, recurringschedule.EdgeCustomer)
	}
	if m.executions != nil {
		edges = append(edges, recurringschedule.EdgeExecutions)
	}
	if m.audit_logs != nil {
		edges = append(edges, recurringschedule.EdgeAuditLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecurringScheduleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recurringschedule.EdgeCustomer:
		if id := m.customer; id != nil {
			return []ent.Value{*id}
		}
	case recurringschedule.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.executions))
		for id := range m.executions {
			ids = append(ids, id)
		}
		return ids
	case recurringschedule.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecurringScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedexecutions != nil {
		edges = append(edges, recurringschedule.EdgeExecutions)
	}
	if m.removedaudit_logs != nil {
		edges = append(edges, recurringschedule.EdgeAuditLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecurringScheduleMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case recurringschedule.EdgeExecutions:
		ids := make([]ent.Value, 0, len(m.removedexecutions))
		for id := range m.removedexecutions {
			ids = append(ids, id)
		}
		return ids
	case recurringschedule.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecurringScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcustomer {
		edges = append(edges, recurringschedule.EdgeCustomer)
	}
	if m.clearedexecutions {
		edges = append(edges, recurringschedule.EdgeExecutions)
	}
	if m.clearedaudit_logs {
		edges = append(edges, recurringschedule.EdgeAuditLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecurringScheduleMutation) EdgeCleared(name string) bool {
	switch name {
	case recurringschedule.EdgeCustomer:
		return m.clearedcustomer
	case recurringschedule.EdgeExecutions:
		return m.clearedexecutions
	case recurringschedule.EdgeAuditLogs:
		return m.clearedaudit_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecurringScheduleMutation) ClearEdge(name string) error {
	switch name {
	case recurringschedule.EdgeCustomer:
		m.ClearCustomer()
		return nil
	}
	return fmt.Errorf("unknown RecurringSchedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecurringScheduleMutation) ResetEdge(name string) error {
	switch name {
	case recurringschedule.EdgeCustomer:
		m.ResetCustomer()
		return nil
	case recurringschedule.EdgeExecutions:
		m.ResetExecutions()
		return nil
	case recurringschedule.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	}
	return fmt.Errorf("unknown RecurringSchedule edge %s", name)
}

// ScheduleExecutionMutation represents an operation that mutates the ScheduleExecution nodes in the graph.
type ScheduleExecutionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	tenant_id        *string
	status           *string
	created_at       *time.Time
	updated_at       *time.Time
	created_by       *string
	updated_by       *string
	period_date      *time.Time
	period_start     *time.Time
	period_end       *time.Time
	execution_status *string
	invoice_id       *string
	amount_generated *decimal.Decimal
	prorated_amount  *decimal.Decimal
	error_message    *string
	clearedFields    map[string]struct{}
	schedule         *string
	clearedschedule  bool
	done             bool
	oldValue         func(context.Context) (*ScheduleExecution, error)
	predicates       []predicate.ScheduleExecution
}

var _ ent.Mutation = (*ScheduleExecutionMutation)(nil)

// scheduleexecutionOption allows management of the mutation configuration using functional options.
type scheduleexecutionOption func(*ScheduleExecutionMutation)

// newScheduleExecutionMutation creates new mutation for the ScheduleExecution entity.
func newScheduleExecutionMutation(c config, op Op, opts ...scheduleexecutionOption) *ScheduleExecutionMutation {
	m := &ScheduleExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduleExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleExecutionID sets the ID field of the mutation.
func withScheduleExecutionID(id string) scheduleexecutionOption {
	return func(m *ScheduleExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduleExecution
		)
		m.oldValue = func(ctx context.Context) (*ScheduleExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduleExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduleExecution sets the old ScheduleExecution of the mutation.
func withScheduleExecution(node *ScheduleExecution) scheduleexecutionOption {
	return func(m *ScheduleExecutionMutation) {
		m.oldValue = func(context.Context) (*ScheduleExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduleExecution entities.
func (m *ScheduleExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduleExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTenantID sets the "tenant_id" field.
func (m *ScheduleExecutionMutation) SetTenantID(s string) {
	m.tenant_id = &s
}

// TenantID returns the value of the "tenant_id" field in the mutation.
func (m *ScheduleExecutionMutation) TenantID() (r string, exists bool) {
	v := m.tenant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTenantID returns the old "tenant_id" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldTenantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTenantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTenantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTenantID: %w", err)
	}
	return oldValue.TenantID, nil
}

// ResetTenantID resets all changes to the "tenant_id" field.
func (m *ScheduleExecutionMutation) ResetTenantID() {
	m.tenant_id = nil
}

// SetStatus sets the "status" field.
func (m *ScheduleExecutionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduleExecutionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduleExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduleExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduleExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduleExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduleExecutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduleExecutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScheduleExecutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCreatedBy sets the "created_by" field.
func (m *ScheduleExecutionMutation) SetCreatedBy(s string) {
	m.created_by = &s
}

// CreatedBy returns the value of the "created_by" field in the mutation.
func (m *ScheduleExecutionMutation) CreatedBy() (r string, exists bool) {
	v := m.created_by
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedBy returns the old "created_by" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldCreatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedBy: %w", err)
	}
	return oldValue.CreatedBy, nil
}

// ClearCreatedBy clears the value of the "created_by" field.
func (m *ScheduleExecutionMutation) ClearCreatedBy() {
	m.created_by = nil
	m.clearedFields[scheduleexecution.FieldCreatedBy] = struct{}{}
}

// CreatedByCleared returns if the "created_by" field was cleared in this mutation.
func (m *ScheduleExecutionMutation) CreatedByCleared() bool {
	_, ok := m.clearedFields[scheduleexecution.FieldCreatedBy]
	return ok
}

// ResetCreatedBy resets all changes to the "created_by" field.
func (m *ScheduleExecutionMutation) ResetCreatedBy() {
	m.created_by = nil
	delete(m.clearedFields, scheduleexecution.FieldCreatedBy)
}

// SetUpdatedBy sets the "updated_by" field.
func (m *ScheduleExecutionMutation) SetUpdatedBy(s string) {
	m.updated_by = &s
}

// UpdatedBy returns the value of the "updated_by" field in the mutation.
func (m *ScheduleExecutionMutation) UpdatedBy() (r string, exists bool) {
	v := m.updated_by
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedBy returns the old "updated_by" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldUpdatedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedBy: %w", err)
	}
	return oldValue.UpdatedBy, nil
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (m *ScheduleExecutionMutation) ClearUpdatedBy() {
	m.updated_by = nil
	m.clearedFields[scheduleexecution.FieldUpdatedBy] = struct{}{}
}

// UpdatedByCleared returns if the "updated_by" field was cleared in this mutation.
func (m *ScheduleExecutionMutation) UpdatedByCleared() bool {
	_, ok := m.clearedFields[scheduleexecution.FieldUpdatedBy]
	return ok
}

// ResetUpdatedBy resets all changes to the "updated_by" field.
func (m *ScheduleExecutionMutation) ResetUpdatedBy() {
	m.updated_by = nil
	delete(m.clearedFields, scheduleexecution.FieldUpdatedBy)
}

// SetScheduleID sets the "schedule_id" field.
func (m *ScheduleExecutionMutation) SetScheduleID(s string) {
	m.schedule = &s
}

// ScheduleID returns the value of the "schedule_id" field in the mutation.
func (m *ScheduleExecutionMutation) ScheduleID() (r string, exists bool) {
	v := m.schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduleID returns the old "schedule_id" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldScheduleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduleID: %w", err)
	}
	return oldValue.ScheduleID, nil
}

// ResetScheduleID resets all changes to the "schedule_id" field.
func (m *ScheduleExecutionMutation) ResetScheduleID() {
	m.schedule = nil
}

// SetPeriodDate sets the "period_date" field.
func (m *ScheduleExecutionMutation) SetPeriodDate(t time.Time) {
	m.period_date = &t
}

// PeriodDate returns the value of the "period_date" field in the mutation.
func (m *ScheduleExecutionMutation) PeriodDate() (r time.Time, exists bool) {
	v := m.period_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodDate returns the old "period_date" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldPeriodDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodDate: %w", err)
	}
	return oldValue.PeriodDate, nil
}

// ResetPeriodDate resets all changes to the "period_date" field.
func (m *ScheduleExecutionMutation) ResetPeriodDate() {
	m.period_date = nil
}

// SetPeriodStart sets the "period_start" field.
func (m *ScheduleExecutionMutation) SetPeriodStart(t time.Time) {
	m.period_start = &t
}

// PeriodStart returns the value of the "period_start" field in the mutation.
func (m *ScheduleExecutionMutation) PeriodStart() (r time.Time, exists bool) {
	v := m.period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodStart returns the old "period_start" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldPeriodStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodStart: %w", err)
	}
	return oldValue.PeriodStart, nil
}

// ResetPeriodStart resets all changes to the "period_start" field.
func (m *ScheduleExecutionMutation) ResetPeriodStart() {
	m.period_start = nil
}

// SetPeriodEnd sets the "period_end" field.
func (m *ScheduleExecutionMutation) SetPeriodEnd(t time.Time) {
	m.period_end = &t
}

// PeriodEnd returns the value of the "period_end" field in the mutation.
func (m *ScheduleExecutionMutation) PeriodEnd() (r time.Time, exists bool) {
	v := m.period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPeriodEnd returns the old "period_end" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldPeriodEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeriodEnd: %w", err)
	}
	return oldValue.PeriodEnd, nil
}

// ResetPeriodEnd resets all changes to the "period_end" field.
func (m *ScheduleExecutionMutation) ResetPeriodEnd() {
	m.period_end = nil
}

// SetExecutionStatus sets the "execution_status" field.
func (m *ScheduleExecutionMutation) SetExecutionStatus(s string) {
	m.execution_status = &s
}

// ExecutionStatus returns the value of the "execution_status" field in the mutation.
func (m *ScheduleExecutionMutation) ExecutionStatus() (r string, exists bool) {
	v := m.execution_status
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionStatus returns the old "execution_status" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldExecutionStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionStatus: %w", err)
	}
	return oldValue.ExecutionStatus, nil
}

// ResetExecutionStatus resets all changes to the "execution_status" field.
func (m *ScheduleExecutionMutation) ResetExecutionStatus() {
	m.execution_status = nil
}

// SetInvoiceID sets the "invoice_id" field.
func (m *ScheduleExecutionMutation) SetInvoiceID(s string) {
	m.invoice_id = &s
}

// InvoiceID returns the value of the "invoice_id" field in the mutation.
func (m *ScheduleExecutionMutation) InvoiceID() (r string, exists bool) {
	v := m.invoice_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceID returns the old "invoice_id" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldInvoiceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceID: %w", err)
	}
	return oldValue.InvoiceID, nil
}

// ClearInvoiceID clears the value of the "invoice_id" field.
func (m *ScheduleExecutionMutation) ClearInvoiceID() {
	m.invoice_id = nil
	m.clearedFields[scheduleexecution.FieldInvoiceID] = struct{}{}
}

// InvoiceIDCleared returns if the "invoice_id" field was cleared in this mutation.
func (m *ScheduleExecutionMutation) InvoiceIDCleared() bool {
	_, ok := m.clearedFields[scheduleexecution.FieldInvoiceID]
	return ok
}

// ResetInvoiceID resets all changes to the "invoice_id" field.
func (m *ScheduleExecutionMutation) ResetInvoiceID() {
	m.invoice_id = nil
	delete(m.clearedFields, scheduleexecution.FieldInvoiceID)
}

// SetAmountGenerated sets the "amount_generated" field.
func (m *ScheduleExecutionMutation) SetAmountGenerated(d decimal.Decimal) {
	m.amount_generated = &d
}

// AmountGenerated returns the value of the "amount_generated" field in the mutation.
func (m *ScheduleExecutionMutation) AmountGenerated() (r decimal.Decimal, exists bool) {
	v := m.amount_generated
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountGenerated returns the old "amount_generated" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldAmountGenerated(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountGenerated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountGenerated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountGenerated: %w", err)
	}
	return oldValue.AmountGenerated, nil
}

// ResetAmountGenerated resets all changes to the "amount_generated" field.
func (m *ScheduleExecutionMutation) ResetAmountGenerated() {
	m.amount_generated = nil
}

// SetProratedAmount sets the "prorated_amount" field.
func (m *ScheduleExecutionMutation) SetProratedAmount(d decimal.Decimal) {
	m.prorated_amount = &d
}

// ProratedAmount returns the value of the "prorated_amount" field in the mutation.
func (m *ScheduleExecutionMutation) ProratedAmount() (r decimal.Decimal, exists bool) {
	v := m.prorated_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldProratedAmount returns the old "prorated_amount" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldProratedAmount(ctx context.Context) (v decimal.Decimal, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProratedAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProratedAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProratedAmount: %w", err)
	}
	return oldValue.ProratedAmount, nil
}

// ResetProratedAmount resets all changes to the "prorated_amount" field.
func (m *ScheduleExecutionMutation) ResetProratedAmount() {
	m.prorated_amount = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ScheduleExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScheduleExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScheduleExecution entity.
// If the ScheduleExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleExecutionMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScheduleExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scheduleexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScheduleExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scheduleexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScheduleExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scheduleexecution.FieldErrorMessage)
}

// ClearSchedule clears the "schedule" edge to the RecurringSchedule entity.
func (m *ScheduleExecutionMutation) ClearSchedule() {
	m.clearedschedule = true
	m.clearedFields[scheduleexecution.FieldScheduleID] = struct{}{}
}

// ScheduleCleared reports if the "schedule" edge to the RecurringSchedule entity was cleared.
func (m *ScheduleExecutionMutation) ScheduleCleared() bool {
	return m.clearedschedule
}

// ScheduleIDs returns the "schedule" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ScheduleID instead. It exists only for internal usage by the builders.
func (m *ScheduleExecutionMutation) ScheduleIDs() (ids []string) {
	if id := m.schedule; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSchedule resets all changes to the "schedule" edge.
func (m *ScheduleExecutionMutation) ResetSchedule() {
	m.schedule = nil
	m.clearedschedule = false
}

// Where appends a list predicates to the ScheduleExecutionMutation builder.
func (m *ScheduleExecutionMutation) Where(ps ...predicate.ScheduleExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduleExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduleExecution).
func (m *ScheduleExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleExecutionMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.tenant_id != nil {
		fields = append(fields, scheduleexecution.FieldTenantID)
	}
	if m.status != nil {
		fields = append(fields, scheduleexecution.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, scheduleexecution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scheduleexecution.FieldUpdatedAt)
	}
	if m.created_by != nil {
		fields = append(fields, scheduleexecution.FieldCreatedBy)
	}
	if m.updated_by != nil {
		fields = append(fields, scheduleexecution.FieldUpdatedBy)
	}
	if m.schedule != nil {
		fields = append(fields, scheduleexecution.FieldScheduleID)
	}
	if m.period_date != nil {
		fields = append(fields, scheduleexecution.FieldPeriodDate)
	}
	if m.period_start != nil {
		fields = append(fields, scheduleexecution.FieldPeriodStart)
	}
	if m.period_end != nil {
		fields = append(fields, scheduleexecution.FieldPeriodEnd)
	}
	if m.execution_status != nil {
		fields = append(fields, scheduleexecution.FieldExecutionStatus)
	}
	if m.invoice_id != nil {
		fields = append(fields, scheduleexecution.FieldInvoiceID)
	}
	if m.amount_generated != nil {
		fields = append(fields, scheduleexecution.FieldAmountGenerated)
	}
	if m.prorated_amount != nil {
		fields = append(fields, scheduleexecution.FieldProratedAmount)
	}
	if m.error_message != nil {
		fields = append(fields, scheduleexecution.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduleexecution.FieldTenantID:
		return m.TenantID()
	case scheduleexecution.FieldStatus:
		return m.Status()
	case scheduleexecution.FieldCreatedAt:
		return m.CreatedAt()
	case scheduleexecution.FieldUpdatedAt:
		return m.UpdatedAt()
	case scheduleexecution.FieldCreatedBy:
		return m.CreatedBy()
	case scheduleexecution.FieldUpdatedBy:
		return m.UpdatedBy()
	case scheduleexecution.FieldScheduleID:
		return m.ScheduleID()
	case scheduleexecution.FieldPeriodDate:
		return m.PeriodDate()
	case scheduleexecution.FieldPeriodStart:
		return m.PeriodStart()
	case scheduleexecution.FieldPeriodEnd:
		return m.PeriodEnd()
	case scheduleexecution.FieldExecutionStatus:
		return m.ExecutionStatus()
	case scheduleexecution.FieldInvoiceID:
		return m.InvoiceID()
	case scheduleexecution.FieldAmountGenerated:
		return m.AmountGenerated()
	case scheduleexecution.FieldProratedAmount:
		return m.ProratedAmount()
	case scheduleexecution.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduleexecution.FieldTenantID:
		return m.OldTenantID(ctx)
	case scheduleexecution.FieldStatus:
		return m.OldStatus(ctx)
	case scheduleexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scheduleexecution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case scheduleexecution.FieldCreatedBy:
		return m.OldCreatedBy(ctx)
	case scheduleexecution.FieldUpdatedBy:
		return m.OldUpdatedBy(ctx)
	case scheduleexecution.FieldScheduleID:
		return m.OldScheduleID(ctx)
	case scheduleexecution.FieldPeriodDate:
		return m.OldPeriodDate(ctx)
	case scheduleexecution.FieldPeriodStart:
		return m.OldPeriodStart(ctx)
	case scheduleexecution.FieldPeriodEnd:
		return m.OldPeriodEnd(ctx)
	case scheduleexecution.FieldExecutionStatus:
		return m.OldExecutionStatus(ctx)
	case scheduleexecution.FieldInvoiceID:
		return m.OldInvoiceID(ctx)
	case scheduleexecution.FieldAmountGenerated:
		return m.OldAmountGenerated(ctx)
	case scheduleexecution.FieldProratedAmount:
		return m.OldProratedAmount(ctx)
	case scheduleexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduleExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduleexecution.FieldTenantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTenantID(v)
		return nil
	case scheduleexecution.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduleexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scheduleexecution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case scheduleexecution.FieldCreatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedBy(v)
		return nil
	case scheduleexecution.FieldUpdatedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedBy(v)
		return nil
	case scheduleexecution.FieldScheduleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduleID(v)
		return nil
	case scheduleexecution.FieldPeriodDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodDate(v)
		return nil
	case scheduleexecution.FieldPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodStart(v)
		return nil
	case scheduleexecution.FieldPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeriodEnd(v)
		return nil
	case scheduleexecution.FieldExecutionStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionStatus(v)
		return nil
	case scheduleexecution.FieldInvoiceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceID(v)
		return nil
	case scheduleexecution.FieldAmountGenerated:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountGenerated(v)
		return nil
	case scheduleexecution.FieldProratedAmount:
		v, ok := value.(decimal.Decimal)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProratedAmount(v)
		return nil
	case scheduleexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduleExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleExecutionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleExecutionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScheduleExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduleexecution.FieldCreatedBy) {
		fields = append(fields, scheduleexecution.FieldCreatedBy)
	}
	if m.FieldCleared(scheduleexecution.FieldUpdatedBy) {
		fields = append(fields, scheduleexecution.FieldUpdatedBy)
	}
	if m.FieldCleared(scheduleexecution.FieldInvoiceID) {
		fields = append(fields, scheduleexecution.FieldInvoiceID)
	}
	if m.FieldCleared(scheduleexecution.FieldErrorMessage) {
		fields = append(fields, scheduleexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleExecutionMutation) ClearField(name string) error {
	switch name {
	case scheduleexecution.FieldCreatedBy:
		m.ClearCreatedBy()
		return nil
	case scheduleexecution.FieldUpdatedBy:
		m.ClearUpdatedBy()
		return nil
	case scheduleexecution.FieldInvoiceID:
		m.ClearInvoiceID()
		return nil
	case scheduleexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ScheduleExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleExecutionMutation) ResetField(name string) error {
	switch name {
	case scheduleexecution.FieldTenantID:
		m.ResetTenantID()
		return nil
	case scheduleexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduleexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scheduleexecution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case scheduleexecution.FieldCreatedBy:
		m.ResetCreatedBy()
		return nil
	case scheduleexecution.FieldUpdatedBy:
		m.ResetUpdatedBy()
		return nil
	case scheduleexecution.FieldScheduleID:
		m.ResetScheduleID()
		return nil
	case scheduleexecution.FieldPeriodDate:
		m.ResetPeriodDate()
		return nil
	case scheduleexecution.FieldPeriodStart:
		m.ResetPeriodStart()
		return nil
	case scheduleexecution.FieldPeriodEnd:
		m.ResetPeriodEnd()
		return nil
	case scheduleexecution.FieldExecutionStatus:
		m.ResetExecutionStatus()
		return nil
	case scheduleexecution.FieldInvoiceID:
		m.ResetInvoiceID()
		return nil
	case scheduleexecution.FieldAmountGenerated:
		m.ResetAmountGenerated()
		return nil
	case scheduleexecution.FieldProratedAmount:
		m.ResetProratedAmount()
		return nil
	case scheduleexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ScheduleExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.schedule != nil {
		edges = append(edges, scheduleexecution.EdgeSchedule)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scheduleexecution.EdgeSchedule:
		if id := m.schedule; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedschedule {
		edges = append(edges, scheduleexecution.EdgeSchedule)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case scheduleexecution.EdgeSchedule:
		return m.clearedschedule
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleExecutionMutation) ClearEdge(name string) error {
	switch name {
	case scheduleexecution.EdgeSchedule:
		m.ClearSchedule()
		return nil
	}
	return fmt.Errorf("unknown ScheduleExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleExecutionMutation) ResetEdge(name string) error {
	switch name {
	case scheduleexecution.EdgeSchedule:
		m.ResetSchedule()
		return nil
	}
	return fmt.Errorf("unknown ScheduleExecution edge %s", name)
}
