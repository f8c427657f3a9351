package services

import (
	"context"
	"time"

	"github.com/beanflow/beanflow/internal/core/domain"
)

// ReportingService defines operations for generating financial reports
type ReportingService interface {
	// TrialBalance generates a trial balance for a currency as of a date.
	TrialBalance(ctx context.Context, currencyCode string, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// IncomeStatement generates an income statement for a currency and period.
	IncomeStatement(ctx context.Context, currencyCode string, period domain.Period) ([]domain.IncomeStatementRow, error)

	// Ledger generates the ledger of an account for a currency and period.
	Ledger(ctx context.Context, accountID string, currencyCode string, period domain.Period) (domain.PseudoAccount, []domain.LedgerRow, error)

	// TrialBalanceExport renders a trial balance as typed export rows.
	TrialBalanceExport(ctx context.Context, currencyCode string, asOf time.Time) ([]domain.ExportRow, error)

	// IncomeStatementExport renders an income statement as typed export rows.
	IncomeStatementExport(ctx context.Context, currencyCode string, period domain.Period) ([]domain.ExportRow, error)

	// LedgerExport renders an account ledger as typed export rows.
	LedgerExport(ctx context.Context, accountID string, currencyCode string, period domain.Period) ([]domain.ExportRow, error)
}
