package domain

import "time"

// JournalEntry is a transaction header owning an ordered sequence of line
// items. No orders entries that share the same date.
type JournalEntry struct {
	EntryID   string    `json:"entryID"`   // Primary Key (UUID)
	EntryDate time.Time `json:"entryDate"` // Date the event occurred
	No        int       `json:"no"`        // Same-day ordering key
	Note      string    `json:"note"`      // Nullable user note
	AuditFields
}
