package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a journal entry header row.
type JournalEntry struct {
	EntryID   string    `db:"entry_id"`
	EntryDate time.Time `db:"entry_date"`
	No        int       `db:"no"`
	Note      string    `db:"note"`
	AuditFields
}

// JournalEntryLineItem represents a line item row. OriginalLineItemID is a
// nullable self-referencing foreign key.
type JournalEntryLineItem struct {
	LineItemID         string          `db:"line_item_id"`
	EntryID            string          `db:"entry_id"`
	AccountID          string          `db:"account_id"`
	No                 int             `db:"no"`
	IsDebit            bool            `db:"is_debit"`
	CurrencyCode       string          `db:"currency_code"`
	Amount             decimal.Decimal `db:"amount"`
	OriginalLineItemID *string         `db:"original_line_item_id"`
	Description        string          `db:"description"`
	AuditFields
}
