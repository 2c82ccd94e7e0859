// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Customer is the predicate function for customer builders.
type Customer func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceLineItem is the predicate function for invoicelineitem builders.
type InvoiceLineItem func(*sql.Selector)

// Payment is the predicate function for payment builders.
type Payment func(*sql.Selector)

// PaymentAttempt is the predicate function for paymentattempt builders.
type PaymentAttempt func(*sql.Selector)

// RecurringSchedule is the predicate function for recurringschedule builders.
type RecurringSchedule func(*sql.Selector)

// ScheduleExecution is the predicate function for scheduleexecution builders.
type ScheduleExecution func(*sql.Selector)
