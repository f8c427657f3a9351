package services

import (
	"context"

	"github.com/beanflow/beanflow/internal/core/domain"
	"github.com/beanflow/beanflow/internal/dto"
)

// JournalReaderSvc defines read operations for journal entries
type JournalReaderSvc interface {
	// GetEntryWithLineItems retrieves an entry and its line items.
	GetEntryWithLineItems(ctx context.Context, entryID string) (*domain.JournalEntry, []domain.JournalEntryLineItem, error)

	// ListEntries retrieves a keyset-paginated list of entries in a period.
	ListEntries(ctx context.Context, period domain.Period, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriterSvc defines write operations for journal entries
type JournalWriterSvc interface {
	// CreateEntry validates and persists a journal entry with its line items.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, userID string) (*domain.JournalEntry, error)

	// DeleteEntry removes an entry; fails with a conflict when offsets
	// outside the entry still reference its line items.
	DeleteEntry(ctx context.Context, entryID string, userID string) error
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
