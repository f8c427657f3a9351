package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/beanflow/beanflow/internal/apperrors"
	"github.com/beanflow/beanflow/internal/core/domain"
	portsrepo "github.com/beanflow/beanflow/internal/core/ports/repositories"
	"github.com/beanflow/beanflow/internal/models"
	"github.com/beanflow/beanflow/internal/utils/mapping"
	"github.com/beanflow/beanflow/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const lineItemColumns = `line_item_id, entry_id, account_id, no, is_debit, currency_code, amount, original_line_item_id, description, created_at, created_by, last_updated_at, last_updated_by`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry and line item data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

func scanLineItem(row pgx.Row) (models.JournalEntryLineItem, error) {
	var li models.JournalEntryLineItem
	err := row.Scan(
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
	)
	return li, err
}

// SaveEntry saves a journal entry and its line items within a DB transaction.
// The same-day ordering no is assigned inside the insert so concurrent writers
// on one date cannot race in the service layer; the assigned no is written
// back into entry.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry *domain.JournalEntry, lineItems []domain.JournalEntryLineItem) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	modelEntry := mapping.ToModelJournalEntry(*entry)

	entryQuery := `
		INSERT INTO journal_entries (entry_id, entry_date, no, note, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, (SELECT COALESCE(MAX(no), 0) + 1 FROM journal_entries WHERE entry_date = $2), $3, $4, $5, $6, $7)
		RETURNING no;
	`
	err = tx.QueryRow(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.EntryDate,
		modelEntry.Note,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	).Scan(&entry.No)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", entry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineItemQuery := `
		INSERT INTO journal_entry_line_items (` + lineItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, li := range lineItems {
		modelLi := mapping.ToModelLineItem(li)
		batch.Queue(lineItemQuery,
			modelLi.LineItemID,
			modelLi.EntryID,
			modelLi.AccountID,
			modelLi.No,
			modelLi.IsDebit,
			modelLi.CurrencyCode,
			modelLi.Amount,
			modelLi.OriginalLineItemID,
			modelLi.Description,
			modelLi.CreatedAt,
			modelLi.CreatedBy,
			modelLi.LastUpdatedAt,
			modelLi.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to execute line item batch for entry %s: %w", entry.EntryID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// FindEntryByID retrieves a journal entry by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, entry_date, no, note, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE entry_id = $1;
	`
	var modelEntry models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&modelEntry.EntryID,
		&modelEntry.EntryDate,
		&modelEntry.No,
		&modelEntry.Note,
		&modelEntry.CreatedAt,
		&modelEntry.CreatedBy,
		&modelEntry.LastUpdatedAt,
		&modelEntry.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", entryID, err)
	}

	domainEntry := mapping.ToDomainJournalEntry(modelEntry)
	return &domainEntry, nil
}

// ListEntriesByPeriod retrieves entries within a period using keyset
// pagination over (entry_date, created_at).
func (r *PgxJournalRepository) ListEntriesByPeriod(ctx context.Context, period domain.Period, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := `
		SELECT entry_id, entry_date, no, note, created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE ($1::date IS NULL OR entry_date >= $1)
			AND ($2::date IS NULL OR entry_date <= $2)
			AND ($3::timestamptz IS NULL OR (entry_date, created_at) > ($4::date, $3::timestamptz))
		ORDER BY entry_date, created_at
		LIMIT $5;
	`

	var tokenDate, tokenCreatedAt interface{}
	if nextToken != nil {
		entryDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		tokenDate, tokenCreatedAt = entryDate, createdAt
	}

	// Fetch one extra row to know whether another page exists.
	rows, err := r.Pool.Query(ctx, query, period.Start, period.End, tokenCreatedAt, tokenDate, limit+1)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(
			&e.EntryID,
			&e.EntryDate,
			&e.No,
			&e.Note,
			&e.CreatedAt,
			&e.CreatedBy,
			&e.LastUpdatedAt,
			&e.LastUpdatedBy,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		modelEntries = append(modelEntries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	var next *string
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		last := modelEntries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		next = &token
	}

	entries := make([]domain.JournalEntry, len(modelEntries))
	for i, m := range modelEntries {
		entries[i] = mapping.ToDomainJournalEntry(m)
	}
	return entries, next, nil
}

// DeleteEntry removes an entry and its line items. The self-referencing
// foreign key is RESTRICT, so the delete fails while offsets outside this
// entry still reference its line items; that surfaces as ErrConflict.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM journal_entry_line_items WHERE entry_id = $1;`, entryID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return fmt.Errorf("entry %s line items still referenced by offsets: %w", entryID, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to delete line items for entry %s: %w", entryID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit delete of entry %s: %w", entryID, err)
	}
	return nil
}

// FindLineItemByID retrieves a single line item.
func (r *PgxJournalRepository) FindLineItemByID(ctx context.Context, lineItemID string) (*domain.JournalEntryLineItem, error) {
	query := `SELECT ` + lineItemColumns + ` FROM journal_entry_line_items WHERE line_item_id = $1;`

	modelLi, err := scanLineItem(r.Pool.QueryRow(ctx, query, lineItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find line item by ID %s: %w", lineItemID, err)
	}

	domainLi := mapping.ToDomainLineItem(modelLi)
	return &domainLi, nil
}

// FindLineItemsByEntryID retrieves all line items of an entry ordered by no.
func (r *PgxJournalRepository) FindLineItemsByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLineItem, error) {
	query := `
		SELECT ` + lineItemColumns + `
		FROM journal_entry_line_items
		WHERE entry_id = $1
		ORDER BY no;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	modelItems := []models.JournalEntryLineItem{}
	for rows.Next() {
		li, err := scanLineItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item row for entry %s: %w", entryID, err)
		}
		modelItems = append(modelItems, li)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line item rows for entry %s: %w", entryID, err)
	}

	return mapping.ToDomainLineItemSlice(modelItems), nil
}
