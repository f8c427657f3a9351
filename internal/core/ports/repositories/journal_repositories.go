package repositories

import (
	"context"

	"github.com/beanflow/beanflow/internal/core/domain"
)

// JournalEntryReader defines read operations for journal entry data
type JournalEntryReader interface {
	// FindEntryByID retrieves a specific journal entry by its unique identifier.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntriesByPeriod retrieves a keyset-paginated list of journal entries
	// within a period. It returns the entries, a token for the next page, and
	// an error.
	ListEntriesByPeriod(ctx context.Context, period domain.Period, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalEntryWriter defines write operations for journal entry data
type JournalEntryWriter interface {
	// SaveEntry persists a journal entry and its line items atomically. The
	// store assigns the same-day ordering no and writes it back into entry.
	SaveEntry(ctx context.Context, entry *domain.JournalEntry, lineItems []domain.JournalEntryLineItem) error

	// DeleteEntry removes a journal entry and its line items. The store
	// rejects the delete when any line item is still referenced as an
	// original by offsets outside the entry.
	DeleteEntry(ctx context.Context, entryID string) error
}

// LineItemReader defines read operations for line item data
type LineItemReader interface {
	// FindLineItemByID retrieves a single line item.
	FindLineItemByID(ctx context.Context, lineItemID string) (*domain.JournalEntryLineItem, error)

	// FindLineItemsByEntryID retrieves all line items of an entry ordered by no.
	FindLineItemsByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLineItem, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalEntryReader
	JournalEntryWriter
	LineItemReader
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
