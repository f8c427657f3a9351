package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/beanflow/beanflow/internal/core/domain"
	portsrepo "github.com/beanflow/beanflow/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetTrialBalanceData retrieves trial balance data for a currency as of a
// specific date.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, currencyCode string, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.title,
			SUM(CASE WHEN li.is_debit THEN li.amount ELSE 0 END) AS total_debit,
			SUM(CASE WHEN NOT li.is_debit THEN li.amount ELSE 0 END) AS total_credit
		FROM journal_entry_line_items li
		JOIN accounts a ON a.account_id = li.account_id
		JOIN journal_entries j ON j.entry_id = li.entry_id
		WHERE li.currency_code = $1
			AND j.entry_date <= $2
		GROUP BY a.account_id, a.code, a.title
		ORDER BY a.base_code, a.no;
	`
	rows, err := r.Pool.Query(ctx, query, currencyCode, asOf)
	if err != nil {
		return nil, fmt.Errorf("error querying trial balance data: %w", err)
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(
			&row.AccountID,
			&row.Code,
			&row.Title,
			&row.Debit,
			&row.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning trial balance row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trial balance rows: %w", err)
	}

	return result, nil
}

// GetIncomeStatementData retrieves income statement rows for a currency and
// period. Income and expense accounts carry base codes outside the balance
// sheet ranges ("1…" assets, "2…" liabilities, "3…" equity); amounts are
// presented credit-positive.
func (r *reportingRepository) GetIncomeStatementData(ctx context.Context, currencyCode string, period domain.Period) ([]domain.IncomeStatementRow, error) {
	query := `
		SELECT
			a.account_id,
			a.code,
			a.title,
			SUM(CASE WHEN li.is_debit THEN -li.amount ELSE li.amount END) AS net
		FROM journal_entry_line_items li
		JOIN accounts a ON a.account_id = li.account_id
		JOIN journal_entries j ON j.entry_id = li.entry_id
		WHERE li.currency_code = $1
			AND a.base_code NOT LIKE '1%'
			AND a.base_code NOT LIKE '2%'
			AND a.base_code NOT LIKE '3%'
			AND ($2::date IS NULL OR j.entry_date >= $2)
			AND ($3::date IS NULL OR j.entry_date <= $3)
		GROUP BY a.account_id, a.code, a.title
		ORDER BY a.base_code, a.no;
	`
	rows, err := r.Pool.Query(ctx, query, currencyCode, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("error querying income statement data: %w", err)
	}
	defer rows.Close()

	result := []domain.IncomeStatementRow{}
	for rows.Next() {
		var row domain.IncomeStatementRow
		var net decimal.Decimal
		if err := rows.Scan(&row.AccountID, &row.Code, &row.Title, &net); err != nil {
			return nil, fmt.Errorf("error scanning income statement row: %w", err)
		}
		row.NetAmount = net
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income statement rows: %w", err)
	}

	return result, nil
}

// currentAssetsLiabilitiesCond selects the accounts folded into the
// current-assets-and-liabilities pseudo account: current asset and current
// liability base code ranges.
const currentAssetsLiabilitiesCond = `(a.base_code LIKE '11%' OR a.base_code LIKE '12%' OR a.base_code LIKE '21%' OR a.base_code LIKE '22%')`

// GetLedgerData retrieves the ledger of one account for a currency and
// period, ordered by entry date, entry no, line item no, with a running
// balance (debit-positive) accumulated across the rows. The sentinel
// current-assets-and-liabilities ID yields a composed ledger across the
// current asset and liability base code ranges.
func (r *reportingRepository) GetLedgerData(ctx context.Context, accountID string, currencyCode string, period domain.Period) ([]domain.LedgerRow, error) {
	accountCond := `li.account_id = $4`
	args := []any{currencyCode, period.Start, period.End, accountID}
	if accountID == domain.CurrentAssetsLiabilitiesID {
		accountCond = currentAssetsLiabilitiesCond
		args = args[:3]
	}

	query := fmt.Sprintf(`
		SELECT li.line_item_id, li.entry_id, j.entry_date, j.no, li.no, li.is_debit, li.amount, li.description
		FROM journal_entry_line_items li
		JOIN accounts a ON a.account_id = li.account_id
		JOIN journal_entries j ON j.entry_id = li.entry_id
		WHERE %s
			AND li.currency_code = $1
			AND ($2::date IS NULL OR j.entry_date >= $2)
			AND ($3::date IS NULL OR j.entry_date <= $3)
		ORDER BY j.entry_date, j.no, li.no;
	`, accountCond)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying ledger data for account %s: %w", accountID, err)
	}
	defer rows.Close()

	result := []domain.LedgerRow{}
	balance := decimal.Zero
	for rows.Next() {
		var row domain.LedgerRow
		if err := rows.Scan(
			&row.LineItemID,
			&row.EntryID,
			&row.EntryDate,
			&row.EntryNo,
			&row.No,
			&row.IsDebit,
			&row.Amount,
			&row.Description,
		); err != nil {
			return nil, fmt.Errorf("error scanning ledger row for account %s: %w", accountID, err)
		}

		if row.IsDebit {
			balance = balance.Add(row.Amount)
		} else {
			balance = balance.Sub(row.Amount)
		}
		row.Balance = balance
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows for account %s: %w", accountID, err)
	}

	return result, nil
}
