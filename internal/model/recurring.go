package model

import "github.com/homeledger-dev/homeledger/internal/date"

// Frequency is how often a recurring rule materializes.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurringTransaction is a template that the recurrence engine turns
// into concrete transactions when its due date arrives. NextDueDate and
// LastRun are moved only by the engine or by explicit user edit.
type RecurringTransaction struct {
	ID          string    `json:"id"`
	Frequency   Frequency `json:"frequency"`
	NextDueDate date.Date `json:"nextDueDate"`
	Payee       string    `json:"payee,omitempty"`
	Description string    `json:"description,omitempty"`
	Splits      []Split   `json:"splits"`
	LastRun     date.Date `json:"lastRun,omitzero"`
	Active      bool      `json:"active"`
}
