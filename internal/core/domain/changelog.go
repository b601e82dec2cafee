package domain

import (
	"encoding/json"
	"time"
)

// ChangeLogAction names a mutating operation recorded in the audit log.
type ChangeLogAction string

const (
	ActionIncomeCreated       ChangeLogAction = "INCOME_CREATED"
	ActionIncomeUpdated       ChangeLogAction = "INCOME_UPDATED"
	ActionIncomeDeleted       ChangeLogAction = "INCOME_DELETED"
	ActionExpenseCreated      ChangeLogAction = "EXPENSE_CREATED"
	ActionExpenseUpdated      ChangeLogAction = "EXPENSE_UPDATED"
	ActionExpenseDeleted      ChangeLogAction = "EXPENSE_DELETED"
	ActionCounterpartyCreated ChangeLogAction = "COUNTERPARTY_CREATED"
	ActionCounterpartyDeleted ChangeLogAction = "COUNTERPARTY_DELETED"
	ActionLogoUpdated         ChangeLogAction = "LOGO_UPDATED"
	ActionSettingsUpdated     ChangeLogAction = "SETTINGS_UPDATED"
)

// ChangeLogEntry is a single audit record. The change log is append-only:
// entries are written on every mutating action and never modified or
// deleted afterwards.
type ChangeLogEntry struct {
	EntryID   string          `json:"entryID"` // Primary Key (UUID)
	Timestamp time.Time       `json:"timestamp"`
	Actor     Party           `json:"actor"`
	Action    ChangeLogAction `json:"action"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}
