package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/beanflow/beanflow/internal/apperrors"
	"github.com/beanflow/beanflow/internal/core/domain"
	portsrepo "github.com/beanflow/beanflow/internal/core/ports/repositories"
	"github.com/beanflow/beanflow/internal/dto"
	"github.com/beanflow/beanflow/internal/utils/accounting"
	"github.com/google/uuid"
)

type journalService struct {
	BaseService
	journalRepo  portsrepo.JournalRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewJournalService creates a new journal service.
func NewJournalService(
	journalRepo portsrepo.JournalRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
) *journalService {
	return &journalService{
		journalRepo:  journalRepo,
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

// CreateEntry validates and persists a journal entry with its line items.
// Validation covers the double-entry balance, account and currency existence,
// and the offset links: an offset must point at an existing original on the
// same need-offset account, in the same currency, and originals are never
// themselves offsets.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error) {
	logger := s.GetLogger(ctx)

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		return nil, fmt.Errorf("currency %s: %w", req.CurrencyCode, err)
	}

	now := time.Now()
	entry := domain.JournalEntry{
		EntryID:   uuid.NewString(),
		EntryDate: req.EntryDate,
		Note:      req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	lineItems := make([]domain.JournalEntryLineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		lineItems[i] = domain.JournalEntryLineItem{
			LineItemID:         uuid.NewString(),
			EntryID:            entry.EntryID,
			AccountID:          li.AccountID,
			No:                 i + 1,
			IsDebit:            li.IsDebit,
			CurrencyCode:       req.CurrencyCode,
			Amount:             li.Amount,
			OriginalLineItemID: li.OriginalLineItemID,
			Description:        li.Description,
			AuditFields:        entry.AuditFields,
		}
	}

	if err := accounting.ValidateEntryBalance(lineItems); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	accounts, err := s.fetchEntryAccounts(ctx, lineItems)
	if err != nil {
		return nil, err
	}

	for _, li := range lineItems {
		if li.OriginalLineItemID == nil {
			continue
		}
		if err := s.validateOffsetLink(ctx, li, accounts[li.AccountID]); err != nil {
			return nil, err
		}
	}

	if err := s.journalRepo.SaveEntry(ctx, &entry, lineItems); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()), slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	logger.Info("Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.Int("line_items", len(lineItems)))
	return &entry, nil
}

// fetchEntryAccounts resolves the distinct accounts of an entry and checks
// that each exists and is active.
func (s *journalService) fetchEntryAccounts(ctx context.Context, lineItems []domain.JournalEntryLineItem) (map[string]domain.Account, error) {
	seen := make(map[string]struct{}, len(lineItems))
	ids := make([]string, 0, len(lineItems))
	for _, li := range lineItems {
		if _, ok := seen[li.AccountID]; ok {
			continue
		}
		seen[li.AccountID] = struct{}{}
		ids = append(ids, li.AccountID)
	}

	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve entry accounts: %w", err)
	}
	for _, id := range ids {
		account, ok := accounts[id]
		if !ok {
			return nil, fmt.Errorf("account %s: %w", id, apperrors.ErrNotFound)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.Code)
		}
	}
	return accounts, nil
}

// validateOffsetLink checks a single offset line item against its original.
// The original must exist, sit on the same account, share the currency, carry
// the original-side polarity for the account's classification, and must not
// itself be an offset. Offset polarity is not restricted: opposite-side
// offsets settle the original, same-side offsets add back to it.
func (s *journalService) validateOffsetLink(ctx context.Context, offset domain.JournalEntryLineItem, account domain.Account) error {
	original, err := s.journalRepo.FindLineItemByID(ctx, *offset.OriginalLineItemID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("original line item %s: %w", *offset.OriginalLineItemID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to resolve original line item %s: %w", *offset.OriginalLineItemID, err)
	}

	if original.IsOffset() {
		return fmt.Errorf("%w: line item %s is itself an offset and cannot be offset further", apperrors.ErrValidation, original.LineItemID)
	}
	if original.AccountID != offset.AccountID {
		return fmt.Errorf("%w: offset must be on the same account as its original", apperrors.ErrValidation)
	}
	if original.CurrencyCode != offset.CurrencyCode {
		return fmt.Errorf("%w: offset currency %s differs from original currency %s", apperrors.ErrValidation, offset.CurrencyCode, original.CurrencyCode)
	}
	if !account.IsNeedOffset {
		return fmt.Errorf("%w: account %s does not track offsets", apperrors.ErrValidation, account.Code)
	}

	originalIsDebit, ok := account.Classification().OriginalIsDebit()
	if !ok {
		return fmt.Errorf("%w: account %s cannot hold originals", apperrors.ErrValidation, account.Code)
	}
	if original.IsDebit != originalIsDebit {
		return fmt.Errorf("%w: line item %s does not carry the original-side polarity for account %s", apperrors.ErrValidation, original.LineItemID, account.Code)
	}
	return nil
}

// GetEntryWithLineItems retrieves an entry and its line items.
func (s *journalService) GetEntryWithLineItems(ctx context.Context, entryID string) (*domain.JournalEntry, []domain.JournalEntryLineItem, error) {
	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find journal entry", slog.String("entry_id", entryID))
		}
		return nil, nil, err
	}

	lineItems, err := s.journalRepo.FindLineItemsByEntryID(ctx, entryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load line items", slog.String("entry_id", entryID))
		return nil, nil, err
	}
	return entry, lineItems, nil
}

// ListEntries retrieves a keyset-paginated list of entries in a period.
func (s *journalService) ListEntries(ctx context.Context, period domain.Period, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if !period.IsValid() {
		return nil, nil, fmt.Errorf("%w: period end precedes start", apperrors.ErrValidation)
	}
	if limit <= 0 {
		limit = 50
	}

	entries, next, err := s.journalRepo.ListEntriesByPeriod(ctx, period, limit, nextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list journal entries")
		}
		return nil, nil, err
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, next, nil
}

// DeleteEntry removes an entry. The store rejects the delete when offsets
// outside the entry still reference its line items; that surfaces as
// ErrConflict.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string, userID string) error {
	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to delete journal entry", slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID), slog.String("deleted_by", userID))
	return nil
}
