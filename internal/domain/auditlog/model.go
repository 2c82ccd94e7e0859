package auditlog

import (
	"github.com/invoiceflow/invoiceflow/ent"
	"github.com/invoiceflow/invoiceflow/internal/types"
)

// Entry is one append-only audit record for a schedule. Entries are
// never updated or deleted.
type Entry struct {
	ID          string                 `json:"id"`
	ScheduleID  string                 `json:"schedule_id"`
	Action      types.AuditAction      `json:"action"`
	Description string                 `json:"description,omitempty"`
	InvoiceID   *string                `json:"invoice_id,omitempty"`
	ExecutionID *string                `json:"execution_id,omitempty"`
	PaymentID   *string                `json:"payment_id,omitempty"`
	OldValues   map[string]interface{} `json:"old_values,omitempty"`
	NewValues   map[string]interface{} `json:"new_values,omitempty"`

	types.BaseModel
}

// FromEnt converts an Ent audit log row to a domain entry
func FromEnt(e *ent.AuditLog) *Entry {
	if e == nil {
		return nil
	}
	return &Entry{
		ID:          e.ID,
		ScheduleID:  e.ScheduleID,
		Action:      types.AuditAction(e.Action),
		Description: e.Description,
		InvoiceID:   e.InvoiceID,
		ExecutionID: e.ExecutionID,
		PaymentID:   e.PaymentID,
		OldValues:   e.OldValues,
		NewValues:   e.NewValues,
		BaseModel: types.BaseModel{
			TenantID:  e.TenantID,
			Status:    types.Status(e.Status),
			CreatedAt: e.CreatedAt,
			UpdatedAt: e.UpdatedAt,
			CreatedBy: e.CreatedBy,
			UpdatedBy: e.UpdatedBy,
		},
	}
}

// FromEntList converts a list of Ent audit rows to domain entries
func FromEntList(entries []*ent.AuditLog) []*Entry {
	result := make([]*Entry, len(entries))
	for i, e := range entries {
		result[i] = FromEnt(e)
	}
	return result
}
