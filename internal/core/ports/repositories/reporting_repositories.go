package repositories

import (
	"context"
	"time"

	"github.com/beanflow/beanflow/internal/core/domain"
)

// ReportingRepository defines operations for retrieving financial report data
type ReportingRepository interface {
	// GetTrialBalanceData retrieves trial balance data for a currency as of a
	// specific date.
	GetTrialBalanceData(ctx context.Context, currencyCode string, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// GetIncomeStatementData retrieves income statement rows for a currency
	// and period.
	GetIncomeStatementData(ctx context.Context, currencyCode string, period domain.Period) ([]domain.IncomeStatementRow, error)

	// GetLedgerData retrieves the ledger rows of one account for a currency
	// and period, ordered chronologically.
	GetLedgerData(ctx context.Context, accountID string, currencyCode string, period domain.Period) ([]domain.LedgerRow, error)
}
