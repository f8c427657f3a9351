package accounting

import (
	"fmt"

	"github.com/beanflow/beanflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeNetBalance folds a set of offsets into the remaining balance of an
// original line item. Offsets of the opposite polarity reduce the balance
// (a payment settling an invoice); offsets of the same polarity add to it
// (a reversing entry). With zero offsets the result is the full original
// amount — callers must treat that as "fully unapplied", not as an error.
//
// This is the in-process twin of the single-pass conditional aggregate the
// store runs; both must agree.
func ComputeNetBalance(original domain.JournalEntryLineItem, offsets []domain.JournalEntryLineItem) decimal.Decimal {
	net := original.Amount
	for _, o := range offsets {
		if o.IsDebit == original.IsDebit {
			net = net.Add(o.Amount)
		} else {
			net = net.Sub(o.Amount)
		}
	}
	return net
}

// ValidateEntryBalance checks that the line items of a journal entry are
// well-formed: at least two items, positive amounts, a single currency, and
// debits equal to credits.
func ValidateEntryBalance(lineItems []domain.JournalEntryLineItem) error {
	if len(lineItems) < 2 {
		return fmt.Errorf("journal entry must have at least two line items")
	}

	zero := decimal.NewFromInt(0)
	debits := zero
	credits := zero
	currency := lineItems[0].CurrencyCode

	for _, li := range lineItems {
		if li.Amount.LessThanOrEqual(zero) {
			return fmt.Errorf("line item amount must be positive for line item %s", li.LineItemID)
		}
		if li.CurrencyCode != currency {
			return fmt.Errorf("line items must share one currency: found %s and %s", currency, li.CurrencyCode)
		}
		if li.IsDebit {
			debits = debits.Add(li.Amount)
		} else {
			credits = credits.Add(li.Amount)
		}
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("journal entry does not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}
