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
	"github.com/shopspring/decimal"
)

const exportDateFormat = "2006-01-02"

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepositoryFacade
	currencyRepo  portsrepo.CurrencyRepositoryFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	accountRepo portsrepo.AccountRepositoryFacade,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
) *reportingService {
	return &reportingService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
		currencyRepo:  currencyRepo,
	}
}

func (s *reportingService) checkCurrency(ctx context.Context, currencyCode string) error {
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find currency", slog.String("currency_code", currencyCode))
		}
		return fmt.Errorf("currency %s: %w", currencyCode, err)
	}
	return nil
}

// TrialBalance generates a trial balance for a currency as of a date.
func (s *reportingService) TrialBalance(ctx context.Context, currencyCode string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	if err := s.checkCurrency(ctx, currencyCode); err != nil {
		return nil, err
	}
	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, currencyCode, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to build trial balance", slog.String("currency_code", currencyCode))
		return nil, err
	}
	return rows, nil
}

// IncomeStatement generates an income statement for a currency and period.
func (s *reportingService) IncomeStatement(ctx context.Context, currencyCode string, period domain.Period) ([]domain.IncomeStatementRow, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: period end precedes start", apperrors.ErrValidation)
	}
	if err := s.checkCurrency(ctx, currencyCode); err != nil {
		return nil, err
	}
	rows, err := s.reportingRepo.GetIncomeStatementData(ctx, currencyCode, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to build income statement", slog.String("currency_code", currencyCode))
		return nil, err
	}
	return rows, nil
}

// Ledger generates the ledger of an account for a currency and period. The
// sentinel current-assets-and-liabilities ID resolves to the synthetic bucket
// that composes the current asset and liability accounts into one ledger.
func (s *reportingService) Ledger(ctx context.Context, accountID string, currencyCode string, period domain.Period) (domain.PseudoAccount, []domain.LedgerRow, error) {
	if !period.IsValid() {
		return domain.PseudoAccount{}, nil, fmt.Errorf("%w: period end precedes start", apperrors.ErrValidation)
	}
	if err := s.checkCurrency(ctx, currencyCode); err != nil {
		return domain.PseudoAccount{}, nil, err
	}

	var pseudo domain.PseudoAccount
	if accountID == domain.CurrentAssetsLiabilitiesID {
		pseudo = domain.CurrentAssetsAndLiabilities()
	} else {
		account, err := s.accountRepo.FindAccountByID(ctx, accountID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to find account", slog.String("account_id", accountID))
			}
			return domain.PseudoAccount{}, nil, err
		}
		pseudo = domain.NewPseudoAccount(*account)
	}

	rows, err := s.reportingRepo.GetLedgerData(ctx, accountID, currencyCode, period)
	if err != nil {
		s.LogError(ctx, err, "Failed to build ledger", slog.String("account_id", accountID))
		return domain.PseudoAccount{}, nil, err
	}
	return pseudo, rows, nil
}

// TrialBalanceExport renders a trial balance as typed export rows: a header,
// one row per account, and a totals row.
func (s *reportingService) TrialBalanceExport(ctx context.Context, currencyCode string, asOf time.Time) ([]domain.ExportRow, error) {
	rows, err := s.TrialBalance(ctx, currencyCode, asOf)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ExportRow, 0, len(rows)+2)
	out = append(out, domain.ExportRow{
		domain.ExportString("Code"),
		domain.ExportString("Title"),
		domain.ExportString("Debit"),
		domain.ExportString("Credit"),
	})

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
		out = append(out, domain.ExportRow{
			domain.ExportString(row.Code),
			domain.ExportString(row.Title),
			domain.ExportDecimal(row.Debit),
			domain.ExportDecimal(row.Credit),
		})
	}

	out = append(out, domain.ExportRow{
		domain.ExportString("Total"),
		domain.ExportNull(),
		domain.ExportDecimal(totalDebit),
		domain.ExportDecimal(totalCredit),
	})
	return out, nil
}

// IncomeStatementExport renders an income statement as typed export rows.
func (s *reportingService) IncomeStatementExport(ctx context.Context, currencyCode string, period domain.Period) ([]domain.ExportRow, error) {
	rows, err := s.IncomeStatement(ctx, currencyCode, period)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ExportRow, 0, len(rows)+2)
	out = append(out, domain.ExportRow{
		domain.ExportString("Code"),
		domain.ExportString("Title"),
		domain.ExportString("Net"),
	})

	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.NetAmount)
		out = append(out, domain.ExportRow{
			domain.ExportString(row.Code),
			domain.ExportString(row.Title),
			domain.ExportDecimal(row.NetAmount),
		})
	}

	out = append(out, domain.ExportRow{
		domain.ExportString("Total"),
		domain.ExportNull(),
		domain.ExportDecimal(total),
	})
	return out, nil
}

// LedgerExport renders an account ledger as typed export rows. Each row puts
// the amount in either the debit or the credit column and nulls the other, so
// the boundary never confuses "zero" with "absent".
func (s *reportingService) LedgerExport(ctx context.Context, accountID string, currencyCode string, period domain.Period) ([]domain.ExportRow, error) {
	pseudo, rows, err := s.Ledger(ctx, accountID, currencyCode, period)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ExportRow, 0, len(rows)+2)
	out = append(out, domain.ExportRow{
		domain.ExportString(pseudo.String()),
		domain.ExportNull(),
		domain.ExportNull(),
		domain.ExportNull(),
		domain.ExportNull(),
	})
	out = append(out, domain.ExportRow{
		domain.ExportString("Date"),
		domain.ExportString("Debit"),
		domain.ExportString("Credit"),
		domain.ExportString("Balance"),
		domain.ExportString("Description"),
	})

	for _, row := range rows {
		debit := domain.ExportNull()
		credit := domain.ExportNull()
		if row.IsDebit {
			debit = domain.ExportDecimal(row.Amount)
		} else {
			credit = domain.ExportDecimal(row.Amount)
		}
		out = append(out, domain.ExportRow{
			domain.ExportString(row.EntryDate.Format(exportDateFormat)),
			debit,
			credit,
			domain.ExportDecimal(row.Balance),
			domain.ExportString(row.Description),
		})
	}
	return out, nil
}
