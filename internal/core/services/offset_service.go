package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/beanflow/beanflow/internal/apperrors"
	"github.com/beanflow/beanflow/internal/core/domain"
	portsrepo "github.com/beanflow/beanflow/internal/core/ports/repositories"
	"github.com/beanflow/beanflow/internal/utils/accounting"
)

type offsetService struct {
	BaseService
	offsetRepo   portsrepo.OffsetRepositoryFacade
	journalRepo  portsrepo.JournalRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewOffsetService creates the offset-matching and unapplied-balance service.
func NewOffsetService(
	offsetRepo portsrepo.OffsetRepositoryFacade,
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
) *offsetService {
	return &offsetService{
		offsetRepo:   offsetRepo,
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

// ListOffsets retrieves the offsets applied to an original line item, ordered
// by entry date then entry no. An offset line item has no offsets of its own,
// so it yields an empty slice without hitting the resolver.
func (s *offsetService) ListOffsets(ctx context.Context, lineItemID string) ([]domain.JournalEntryLineItem, error) {
	original, err := s.journalRepo.FindLineItemByID(ctx, lineItemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find line item", slog.String("line_item_id", lineItemID))
		}
		return nil, err
	}
	if original.IsOffset() {
		return []domain.JournalEntryLineItem{}, nil
	}

	offsets, err := s.offsetRepo.FindOffsetsByOriginalID(ctx, lineItemID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list offsets", slog.String("line_item_id", lineItemID))
		return nil, err
	}
	if offsets == nil {
		return []domain.JournalEntryLineItem{}, nil
	}
	return offsets, nil
}

// GetNetBalance computes the remaining balance of an original line item by
// folding its offsets in process: same-polarity offsets add, opposite-polarity
// offsets subtract. With no offsets the net balance equals the full amount.
func (s *offsetService) GetNetBalance(ctx context.Context, lineItemID string) (*domain.UnappliedLineItem, error) {
	original, err := s.journalRepo.FindLineItemByID(ctx, lineItemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find line item", slog.String("line_item_id", lineItemID))
		}
		return nil, err
	}
	if original.IsOffset() {
		return nil, fmt.Errorf("%w: line item %s is an offset and carries no net balance", apperrors.ErrValidation, lineItemID)
	}

	offsets, err := s.offsetRepo.FindOffsetsByOriginalID(ctx, lineItemID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list offsets", slog.String("line_item_id", lineItemID))
		return nil, err
	}

	entry, err := s.journalRepo.FindEntryByID(ctx, original.EntryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find owning entry", slog.String("entry_id", original.EntryID))
		return nil, err
	}

	return &domain.UnappliedLineItem{
		LineItem:    *original,
		EntryDate:   entry.EntryDate,
		EntryNo:     entry.No,
		OffsetCount: int64(len(offsets)),
		NetBalance:  accounting.ComputeNetBalance(*original, offsets),
	}, nil
}

// ListUnappliedForAccount returns the open original line items of one
// account. Accounts that do not track offsets, and classifications that never
// hold originals, yield an empty slice rather than an error.
func (s *offsetService) ListUnappliedForAccount(ctx context.Context, accountID string) ([]domain.UnappliedLineItem, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
		}
		return nil, err
	}
	if !account.IsNeedOffset {
		return []domain.UnappliedLineItem{}, nil
	}

	isDebit, ok := account.Classification().OriginalIsDebit()
	if !ok {
		return []domain.UnappliedLineItem{}, nil
	}

	items, err := s.offsetRepo.ListUnappliedForAccount(ctx, accountID, isDebit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list unapplied line items", slog.String("account_id", accountID))
		return nil, err
	}
	if items == nil {
		return []domain.UnappliedLineItem{}, nil
	}
	return items, nil
}

// ListAccountsWithUnapplied returns the accounts holding at least one
// unapplied original line item, ordered by base code then no.
func (s *offsetService) ListAccountsWithUnapplied(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.offsetRepo.ListAccountsWithUnapplied(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts with unapplied line items")
		return nil, err
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// ListAccountsWithUnmatched returns accounts with line items awaiting an
// offset in the given currency and period. The currency must exist; an
// invalid period is a validation error.
func (s *offsetService) ListAccountsWithUnmatched(ctx context.Context, currencyCode string, period domain.Period) ([]domain.UnmatchedAccount, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: period end precedes start", apperrors.ErrValidation)
	}
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find currency", slog.String("currency_code", currencyCode))
		}
		return nil, fmt.Errorf("currency %s: %w", currencyCode, err)
	}

	accounts, err := s.offsetRepo.ListAccountsWithUnmatched(ctx, currencyCode, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts with unmatched line items", slog.String("currency_code", currencyCode))
		return nil, err
	}
	if accounts == nil {
		return []domain.UnmatchedAccount{}, nil
	}
	return accounts, nil
}
