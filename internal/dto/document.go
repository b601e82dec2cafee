package dto

import (
	"time"

	"github.com/splitbooks/splitbooks_app/internal/core/domain"
)

// ExportResponse wraps the whole persisted document together with a
// timestamped download filename.
type ExportResponse struct {
	Filename string          `json:"filename"`
	Document domain.Document `json:"document"`
}

// ExportFilename builds the suggested download name for an export taken
// at the given instant.
func ExportFilename(now time.Time) string {
	return "splitbooks-export-" + now.Format("20060102-150405") + ".json"
}

// UpdateLogoRequest replaces the stored logo with an opaque image payload
// (base64 data URL). An empty string clears it, so the field binds without
// required.
type UpdateLogoRequest struct {
	Logo string `json:"logo"`
}

// UpdateSettingsRequest changes persisted preferences.
type UpdateSettingsRequest struct {
	DefaultPeriod domain.Period `json:"defaultPeriod" binding:"required,oneof=LAST_6_MONTHS LAST_12_MONTHS YEAR_TO_DATE ALL_TIME"`
}

// ChangeLogEntryResponse is the API shape of one audit record.
type ChangeLogEntryResponse struct {
	EntryID   string                 `json:"entryID"`
	Timestamp time.Time              `json:"timestamp"`
	Actor     domain.Party           `json:"actor"`
	Action    domain.ChangeLogAction `json:"action"`
	Payload   string                 `json:"payload,omitempty"`
}

// ToChangeLogResponse converts audit entries most-recent-first for display.
func ToChangeLogResponse(entries []domain.ChangeLogEntry) []ChangeLogEntryResponse {
	out := make([]ChangeLogEntryResponse, len(entries))
	for i := range entries {
		entry := entries[len(entries)-1-i]
		out[i] = ChangeLogEntryResponse{
			EntryID:   entry.EntryID,
			Timestamp: entry.Timestamp,
			Actor:     entry.Actor,
			Action:    entry.Action,
			Payload:   string(entry.Payload),
		}
	}
	return out
}
