package pgsql

import (
	"context"
	"fmt"

	"github.com/beanflow/beanflow/internal/core/domain"
	portsrepo "github.com/beanflow/beanflow/internal/core/ports/repositories"
	"github.com/beanflow/beanflow/internal/models"
	"github.com/beanflow/beanflow/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Reusable query fragments for the self-referencing offset relation. The
// offset side joins through the alias "o" against line items aliased "li";
// offsets are depth-1 only, so the join never recurses.
const (
	// offsetJoin links each candidate original to the line items that
	// declare it as their original. Shared by the net balance queries and
	// the unmatched counter so the join logic exists exactly once.
	offsetJoin = `LEFT JOIN journal_entry_line_items o ON o.original_line_item_id = li.line_item_id`

	// netBalanceExpr is the single-pass conditional aggregate: offsets of
	// the same polarity as the original add to the remaining balance
	// (reversing entries), opposite-polarity offsets reduce it. COALESCE
	// normalizes the zero-row aggregate to "fully unapplied".
	netBalanceExpr = `li.amount + COALESCE(SUM(CASE WHEN o.is_debit = li.is_debit THEN o.amount ELSE -o.amount END), 0)`

	// originalPolarityCond selects the polarity that can remain unapplied
	// per account classification: debits on asset-class accounts, credits
	// on liability-class accounts. Account rows are aliased "a".
	originalPolarityCond = `((a.base_code LIKE '1%' AND li.is_debit) OR (a.base_code LIKE '2%' AND NOT li.is_debit))`

	// offsetPolarityCond is the opposite side: line items that would settle
	// an original but may not be linked to one yet.
	offsetPolarityCond = `((a.base_code LIKE '1%' AND NOT li.is_debit) OR (a.base_code LIKE '2%' AND li.is_debit))`
)

// PgxOffsetRepository implements the offset link resolver, the net balance
// calculator, and the unapplied/unmatched finders. All methods are pure reads.
type PgxOffsetRepository struct {
	BaseRepository
}

// newPgxOffsetRepository creates a new repository for offset matching queries.
func newPgxOffsetRepository(pool *pgxpool.Pool) portsrepo.OffsetRepositoryFacade {
	return &PgxOffsetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OffsetRepositoryFacade = (*PgxOffsetRepository)(nil)

// FindOffsetsByOriginalID retrieves all line items offsetting the given
// original, in chronological order.
func (r *PgxOffsetRepository) FindOffsetsByOriginalID(ctx context.Context, originalLineItemID string) ([]domain.JournalEntryLineItem, error) {
	query := `
		SELECT li.line_item_id, li.entry_id, li.account_id, li.no, li.is_debit, li.currency_code,
			li.amount, li.original_line_item_id, li.description,
			li.created_at, li.created_by, li.last_updated_at, li.last_updated_by
		FROM journal_entry_line_items li
		JOIN journal_entries j ON j.entry_id = li.entry_id
		WHERE li.original_line_item_id = $1
		ORDER BY j.entry_date, j.no, li.no;
	`
	rows, err := r.Pool.Query(ctx, query, originalLineItemID)
	if err != nil {
		return nil, fmt.Errorf("failed to query offsets for line item %s: %w", originalLineItemID, err)
	}
	defer rows.Close()

	modelItems := []models.JournalEntryLineItem{}
	for rows.Next() {
		var li models.JournalEntryLineItem
		if err := rows.Scan(
			&li.LineItemID,
			&li.EntryID,
			&li.AccountID,
			&li.No,
			&li.IsDebit,
			&li.CurrencyCode,
			&li.Amount,
			&li.OriginalLineItemID,
			&li.Description,
			&li.CreatedAt,
			&li.CreatedBy,
			&li.LastUpdatedAt,
			&li.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan offset row for line item %s: %w", originalLineItemID, err)
		}
		modelItems = append(modelItems, li)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offset rows for line item %s: %w", originalLineItemID, err)
	}

	return mapping.ToDomainLineItemSlice(modelItems), nil
}

// ListUnappliedForAccount returns the account's original line items that are
// still open: either never offset, or with offsets that do not net the
// balance to zero. isDebit is the original-side polarity the caller derived
// from the account's classification.
//
// A single outer join feeds the conditional aggregate, so each offset is
// included exactly once per candidate.
func (r *PgxOffsetRepository) ListUnappliedForAccount(ctx context.Context, accountID string, isDebit bool) ([]domain.UnappliedLineItem, error) {
	query := fmt.Sprintf(`
		SELECT li.line_item_id, li.entry_id, li.account_id, li.no, li.is_debit, li.currency_code,
			li.amount, li.original_line_item_id, li.description,
			li.created_at, li.created_by, li.last_updated_at, li.last_updated_by,
			j.entry_date, j.no,
			COUNT(o.line_item_id) AS offset_count,
			%s AS net_balance
		FROM journal_entry_line_items li
		JOIN journal_entries j ON j.entry_id = li.entry_id
		%s
		WHERE li.account_id = $1
			AND li.original_line_item_id IS NULL
			AND li.is_debit = $2
		GROUP BY li.line_item_id, li.entry_id, li.account_id, li.no, li.is_debit, li.currency_code,
			li.amount, li.original_line_item_id, li.description,
			li.created_at, li.created_by, li.last_updated_at, li.last_updated_by,
			j.entry_date, j.no
		HAVING COUNT(o.line_item_id) = 0 OR %s <> 0
		ORDER BY j.entry_date, j.no, li.is_debit, li.no;
	`, netBalanceExpr, offsetJoin, netBalanceExpr)

	rows, err := r.Pool.Query(ctx, query, accountID, isDebit)
	if err != nil {
		return nil, fmt.Errorf("failed to query unapplied line items for account %s: %w", accountID, err)
	}
	defer rows.Close()

	result := []domain.UnappliedLineItem{}
	for rows.Next() {
		var li models.JournalEntryLineItem
		var item domain.UnappliedLineItem

		if err := rows.Scan(
			&li.LineItemID,
			&li.EntryID,
			&li.AccountID,
			&li.No,
			&li.IsDebit,
			&li.CurrencyCode,
			&li.Amount,
			&li.OriginalLineItemID,
			&li.Description,
			&li.CreatedAt,
			&li.CreatedBy,
			&li.LastUpdatedAt,
			&li.LastUpdatedBy,
			&item.EntryDate,
			&item.EntryNo,
			&item.OffsetCount,
			&item.NetBalance,
		); err != nil {
			return nil, fmt.Errorf("failed to scan unapplied row for account %s: %w", accountID, err)
		}

		item.LineItem = mapping.ToDomainLineItem(li)
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unapplied rows for account %s: %w", accountID, err)
	}

	return result, nil
}

// ListAccountsWithUnapplied returns the distinct need-offset accounts that
// hold at least one unapplied original line item, ordered by base code then
// no. An account never appears unless the inner predicate matched a line item.
func (r *PgxOffsetRepository) ListAccountsWithUnapplied(ctx context.Context) ([]domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT a.account_id, a.code, a.base_code, a.no, a.title, a.is_need_offset, a.is_active,
			a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
		FROM accounts a
		JOIN (
			SELECT li.account_id
			FROM journal_entry_line_items li
			JOIN accounts a ON a.account_id = li.account_id
			%s
			WHERE a.is_need_offset
				AND li.original_line_item_id IS NULL
				AND %s
			GROUP BY li.line_item_id, li.account_id, li.amount, li.is_debit
			HAVING COUNT(o.line_item_id) = 0 OR %s <> 0
		) open_items ON open_items.account_id = a.account_id
		GROUP BY a.account_id, a.code, a.base_code, a.no, a.title, a.is_need_offset, a.is_active,
			a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
		ORDER BY a.base_code, a.no;
	`, offsetJoin, originalPolarityCond, netBalanceExpr)

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts with unapplied line items: %w", err)
	}
	defer rows.Close()

	modelAccounts := []models.Account{}
	for rows.Next() {
		var acc models.Account
		if err := rows.Scan(
			&acc.AccountID,
			&acc.Code,
			&acc.BaseCode,
			&acc.No,
			&acc.Title,
			&acc.IsNeedOffset,
			&acc.IsActive,
			&acc.CreatedAt,
			&acc.CreatedBy,
			&acc.LastUpdatedAt,
			&acc.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account with unapplied line items: %w", err)
		}
		modelAccounts = append(modelAccounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts with unapplied line items: %w", err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// ListAccountsWithUnmatched counts, per need-offset account, the line items
// of the given currency and period that carry the offset-side polarity but
// are neither linked to an original nor offset by anything themselves.
// Accounts with zero matches are excluded by the grouping, never returned
// with a zero count.
func (r *PgxOffsetRepository) ListAccountsWithUnmatched(ctx context.Context, currencyCode string, period domain.Period) ([]domain.UnmatchedAccount, error) {
	query := fmt.Sprintf(`
		SELECT a.account_id, a.code, a.base_code, a.no, a.title, a.is_need_offset, a.is_active,
			a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
			COUNT(li.line_item_id) AS unmatched_count
		FROM accounts a
		JOIN journal_entry_line_items li ON li.account_id = a.account_id
		JOIN journal_entries j ON j.entry_id = li.entry_id
		%s
		WHERE a.is_need_offset
			AND li.currency_code = $1
			AND li.original_line_item_id IS NULL
			AND o.line_item_id IS NULL
			AND %s
			AND ($2::date IS NULL OR j.entry_date >= $2)
			AND ($3::date IS NULL OR j.entry_date <= $3)
		GROUP BY a.account_id, a.code, a.base_code, a.no, a.title, a.is_need_offset, a.is_active,
			a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
		HAVING COUNT(li.line_item_id) > 0
		ORDER BY a.base_code, a.no;
	`, offsetJoin, offsetPolarityCond)

	rows, err := r.Pool.Query(ctx, query, currencyCode, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query unmatched accounts for currency %s: %w", currencyCode, err)
	}
	defer rows.Close()

	result := []domain.UnmatchedAccount{}
	for rows.Next() {
		var acc models.Account
		var count int64

		if err := rows.Scan(
			&acc.AccountID,
			&acc.Code,
			&acc.BaseCode,
			&acc.No,
			&acc.Title,
			&acc.IsNeedOffset,
			&acc.IsActive,
			&acc.CreatedAt,
			&acc.CreatedBy,
			&acc.LastUpdatedAt,
			&acc.LastUpdatedBy,
			&count,
		); err != nil {
			return nil, fmt.Errorf("failed to scan unmatched account for currency %s: %w", currencyCode, err)
		}

		result = append(result, domain.UnmatchedAccount{
			Account: mapping.ToDomainAccount(acc),
			Count:   count,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating unmatched accounts for currency %s: %w", currencyCode, err)
	}

	return result, nil
}
