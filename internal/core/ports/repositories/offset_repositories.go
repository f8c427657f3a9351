package repositories

import (
	"context"

	"github.com/beanflow/beanflow/internal/core/domain"
)

// OffsetReader defines the offset link resolver: pure reads over the
// self-referencing line item relation.
type OffsetReader interface {
	// FindOffsetsByOriginalID retrieves the line items that declare the given
	// line item as their original, ordered by entry date then entry no.
	FindOffsetsByOriginalID(ctx context.Context, originalLineItemID string) ([]domain.JournalEntryLineItem, error)
}

// UnappliedFinder defines queries surfacing original line items that are
// still open (no offsets, or offsets that do not net to zero).
type UnappliedFinder interface {
	// ListUnappliedForAccount returns the unapplied original line items of
	// one account, each annotated with its net balance, ordered by entry
	// date, entry no, polarity, line item no. isDebit is the original-side
	// polarity expected for the account's classification.
	ListUnappliedForAccount(ctx context.Context, accountID string, isDebit bool) ([]domain.UnappliedLineItem, error)

	// ListAccountsWithUnapplied returns the distinct need-offset accounts
	// holding at least one unapplied original line item, ordered by base
	// code then no.
	ListAccountsWithUnapplied(ctx context.Context) ([]domain.Account, error)
}

// UnmatchedFinder defines the query counting line items that await an offset
// but have never been linked to one.
type UnmatchedFinder interface {
	// ListAccountsWithUnmatched returns need-offset accounts having
	// offset-polarity line items in the given currency and period that are
	// neither offsets themselves nor offset by anything, with the exact
	// match count per account, ordered by base code then no. Accounts with
	// zero matches are excluded.
	ListAccountsWithUnmatched(ctx context.Context, currencyCode string, period domain.Period) ([]domain.UnmatchedAccount, error)
}

// OffsetRepositoryFacade combines the offset engine repository interfaces
type OffsetRepositoryFacade interface {
	OffsetReader
	UnappliedFinder
	UnmatchedFinder
}
