package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is an inclusive date range. A nil bound means unbounded in that
// direction.
type Period struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// Contains reports whether d falls within the period.
func (p Period) Contains(d time.Time) bool {
	if p.Start != nil && d.Before(*p.Start) {
		return false
	}
	if p.End != nil && d.After(*p.End) {
		return false
	}
	return true
}

// IsValid reports whether the bounds are ordered. Open-ended periods are
// always valid.
func (p Period) IsValid() bool {
	if p.Start == nil || p.End == nil {
		return true
	}
	return !p.End.Before(*p.Start)
}

// UnappliedLineItem is an original line item that is still open: it either
// has no offsets at all or its offsets do not net it to zero. NetBalance is
// computed at query time and never persisted; with zero offsets it equals the
// full original amount.
type UnappliedLineItem struct {
	LineItem    JournalEntryLineItem `json:"lineItem"`
	EntryDate   time.Time            `json:"entryDate"` // Owning entry date, for ordering
	EntryNo     int                  `json:"entryNo"`   // Owning entry same-day ordering key
	OffsetCount int64                `json:"offsetCount"`
	NetBalance  decimal.Decimal      `json:"netBalance"` // Remaining unsettled amount
}

// UnmatchedAccount is an account holding line items that await offsetting but
// have never been linked as an original. Count is always positive; accounts
// with zero matches are excluded from results, never returned with count 0.
type UnmatchedAccount struct {
	Account Account `json:"account"`
	Count   int64   `json:"count"`
}
