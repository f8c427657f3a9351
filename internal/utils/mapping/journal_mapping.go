package mapping

import (
	"github.com/beanflow/beanflow/internal/core/domain"
	"github.com/beanflow/beanflow/internal/models"
)

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:     d.EntryID,
		EntryDate:   d.EntryDate,
		No:          d.No,
		Note:        d.Note,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     m.EntryID,
		EntryDate:   m.EntryDate,
		No:          m.No,
		Note:        m.Note,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLineItem converts a domain line item to a model line item.
func ToModelLineItem(d domain.JournalEntryLineItem) models.JournalEntryLineItem {
	return models.JournalEntryLineItem{
		LineItemID:         d.LineItemID,
		EntryID:            d.EntryID,
		AccountID:          d.AccountID,
		No:                 d.No,
		IsDebit:            d.IsDebit,
		CurrencyCode:       d.CurrencyCode,
		Amount:             d.Amount,
		OriginalLineItemID: d.OriginalLineItemID,
		Description:        d.Description,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLineItem converts a model line item to a domain line item.
func ToDomainLineItem(m models.JournalEntryLineItem) domain.JournalEntryLineItem {
	return domain.JournalEntryLineItem{
		LineItemID:         m.LineItemID,
		EntryID:            m.EntryID,
		AccountID:          m.AccountID,
		No:                 m.No,
		IsDebit:            m.IsDebit,
		CurrencyCode:       m.CurrencyCode,
		Amount:             m.Amount,
		OriginalLineItemID: m.OriginalLineItemID,
		Description:        m.Description,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLineItemSlice converts a slice of model line items to domain line items.
func ToDomainLineItemSlice(ms []models.JournalEntryLineItem) []domain.JournalEntryLineItem {
	ds := make([]domain.JournalEntryLineItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLineItem(m)
	}
	return ds
}
