package domain

import "github.com/shopspring/decimal"

// JournalEntryLineItem is the atomic accounting unit: a single debit or
// credit against one account within a journal entry.
//
// OriginalLineItemID is a self-referencing link: when set, this line item is
// an offset reducing (or reversing) the referenced original line item.
// Offsets are depth-1 only — an offset is never itself offset further.
type JournalEntryLineItem struct {
	LineItemID         string          `json:"lineItemID"` // Primary Key (UUID)
	EntryID            string          `json:"entryID"`    // FK -> JournalEntry (Not Null)
	AccountID          string          `json:"accountID"`  // FK -> Account (Not Null)
	No                 int             `json:"no"`         // Ordering key within the entry
	IsDebit            bool            `json:"isDebit"`
	CurrencyCode       string          `json:"currencyCode"`
	Amount             decimal.Decimal `json:"amount"`                       // Always positive
	OriginalLineItemID *string         `json:"originalLineItemID,omitempty"` // Nullable self-FK
	Description        string          `json:"description"`                  // Nullable
	AuditFields
}

// IsOffset reports whether this line item settles another line item.
func (li JournalEntryLineItem) IsOffset() bool {
	return li.OriginalLineItemID != nil
}
