package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/beanflow/beanflow/internal/apperrors"
	"github.com/beanflow/beanflow/internal/core/domain"
	portsrepo "github.com/beanflow/beanflow/internal/core/ports/repositories"
	"github.com/beanflow/beanflow/internal/dto"
	"github.com/google/uuid"
)

// Hierarchical account codes look like "1123-002": a four digit base code
// carrying the classification prefix, then a three digit ordering suffix.
var accountCodePattern = regexp.MustCompile(`^([1-9]\d{3})-(\d{3})$`)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) *accountService {
	return &accountService{accountRepo: repo}
}

// CreateAccount validates the hierarchical code, derives the base code and
// ordering no from it, and persists the account.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	logger := s.GetLogger(ctx)

	parts := accountCodePattern.FindStringSubmatch(req.Code)
	if parts == nil {
		return nil, fmt.Errorf("%w: account code %q must match BBBB-NNN", apperrors.ErrValidation, req.Code)
	}
	baseCode := parts[1]
	no, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: account code suffix %q is not numeric", apperrors.ErrValidation, parts[2])
	}

	isNeedOffset := false
	if req.IsNeedOffset != nil {
		isNeedOffset = *req.IsNeedOffset
	}
	if _, ok := domain.Classify(baseCode).OriginalIsDebit(); isNeedOffset && !ok {
		return nil, fmt.Errorf("%w: only asset-like and liability-like accounts can track offsets", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Code:         req.Code,
		BaseCode:     baseCode,
		No:           no,
		Title:        req.Title,
		IsNeedOffset: isNeedOffset,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			logger.Error("Failed to save account", slog.String("error", err.Error()), slog.String("code", req.Code))
		}
		return nil, err
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	return &account, nil
}

// GetAccountByID retrieves a specific account by its unique identifier.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountByCode retrieves an account by its hierarchical code.
func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by code", slog.String("code", code))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves a paginated list of accounts ordered by base code
// then no.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 50
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// UpdateAccount applies the provided fields to an existing account.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		account.Title = *req.Title
	}
	if req.No != nil {
		account.No = *req.No
	}
	if req.IsNeedOffset != nil {
		if _, ok := account.Classification().OriginalIsDebit(); *req.IsNeedOffset && !ok {
			return nil, fmt.Errorf("%w: only asset-like and liability-like accounts can track offsets", apperrors.ErrValidation)
		}
		account.IsNeedOffset = *req.IsNeedOffset
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

// DeactivateAccount marks an account as inactive.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		}
		return err
	}
	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
