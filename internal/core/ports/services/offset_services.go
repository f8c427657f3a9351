package services

import (
	"context"

	"github.com/beanflow/beanflow/internal/core/domain"
)

// OffsetSvcFacade exposes the offset-matching and unapplied-balance engine.
type OffsetSvcFacade interface {
	// ListOffsets retrieves the offsets applied to an original line item.
	ListOffsets(ctx context.Context, lineItemID string) ([]domain.JournalEntryLineItem, error)

	// GetNetBalance computes the remaining balance of an original line item.
	GetNetBalance(ctx context.Context, lineItemID string) (*domain.UnappliedLineItem, error)

	// ListUnappliedForAccount returns the open original line items of one
	// account, annotated with net balances. Accounts that do not track
	// offsets yield an empty sequence.
	ListUnappliedForAccount(ctx context.Context, accountID string) ([]domain.UnappliedLineItem, error)

	// ListAccountsWithUnapplied returns the accounts holding at least one
	// unapplied original line item.
	ListAccountsWithUnapplied(ctx context.Context) ([]domain.Account, error)

	// ListAccountsWithUnmatched returns accounts with line items awaiting an
	// offset in the given currency and period, with exact match counts.
	ListAccountsWithUnmatched(ctx context.Context, currencyCode string, period domain.Period) ([]domain.UnmatchedAccount, error)
}
