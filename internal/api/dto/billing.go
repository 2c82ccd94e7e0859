package dto

import "time"

// ProcessingReport summarizes one run of the due schedule driver
type ProcessingReport struct {
	SchedulesExamined int               `json:"schedules_examined"`
	InvoicesGenerated int               `json:"invoices_generated"`
	PeriodsSkipped    int               `json:"periods_skipped"`
	SchedulesFailed   int               `json:"schedules_failed"`
	ChargesStarted    int               `json:"charges_started"`
	Outcomes          []ScheduleOutcome `json:"outcomes,omitempty"`
}

// ScheduleOutcome records how one billing period of one schedule was
// resolved during a driver run
type ScheduleOutcome struct {
	ScheduleID string    `json:"schedule_id"`
	PeriodDate time.Time `json:"period_date"`
	Outcome    string    `json:"outcome"`
	InvoiceID  *string   `json:"invoice_id,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// RetryReport summarizes one run of the payment retry driver
type RetryReport struct {
	PaymentsExamined int `json:"payments_examined"`
	Succeeded        int `json:"succeeded"`
	RetriesScheduled int `json:"retries_scheduled"`
	TerminalFailures int `json:"terminal_failures"`
	Exhausted        int `json:"exhausted"`
}
