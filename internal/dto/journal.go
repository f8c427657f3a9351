package dto

import (
	"time"

	"github.com/beanflow/beanflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLineItemRequest is one debit or credit line within an entry request.
type CreateLineItemRequest struct {
	AccountID          string          `json:"accountID" binding:"required"`
	IsDebit            bool            `json:"isDebit"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	OriginalLineItemID *string         `json:"originalLineItemID"` // Set when this line settles an original
	Description        string          `json:"description"`
}

// CreateJournalEntryRequest defines the data needed to record a journal entry.
type CreateJournalEntryRequest struct {
	EntryDate    time.Time               `json:"entryDate" binding:"required"`
	Note         string                  `json:"note"`
	CurrencyCode string                  `json:"currencyCode" binding:"required,len=3"`
	LineItems    []CreateLineItemRequest `json:"lineItems" binding:"required,min=2,dive"`
}

// LineItemResponse defines the data returned for a line item.
type LineItemResponse struct {
	LineItemID         string          `json:"lineItemID"`
	EntryID            string          `json:"entryID"`
	AccountID          string          `json:"accountID"`
	No                 int             `json:"no"`
	IsDebit            bool            `json:"isDebit"`
	CurrencyCode       string          `json:"currencyCode"`
	Amount             decimal.Decimal `json:"amount"`
	OriginalLineItemID *string         `json:"originalLineItemID,omitempty"`
	Description        string          `json:"description"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID   string             `json:"entryID"`
	EntryDate time.Time          `json:"entryDate"`
	No        int                `json:"no"`
	Note      string             `json:"note"`
	LineItems []LineItemResponse `json:"lineItems,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	CreatedBy string             `json:"createdBy"`
}

// ListJournalEntriesResponse wraps a page of entries with the next token.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToLineItemResponse converts a domain line item to a response DTO.
func ToLineItemResponse(li domain.JournalEntryLineItem) LineItemResponse {
	return LineItemResponse{
		LineItemID:         li.LineItemID,
		EntryID:            li.EntryID,
		AccountID:          li.AccountID,
		No:                 li.No,
		IsDebit:            li.IsDebit,
		CurrencyCode:       li.CurrencyCode,
		Amount:             li.Amount,
		OriginalLineItemID: li.OriginalLineItemID,
		Description:        li.Description,
	}
}

// ToJournalEntryResponse converts a domain entry plus line items to a response DTO.
func ToJournalEntryResponse(entry *domain.JournalEntry, lineItems []domain.JournalEntryLineItem) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:   entry.EntryID,
		EntryDate: entry.EntryDate,
		No:        entry.No,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
		CreatedBy: entry.CreatedBy,
	}
	for _, li := range lineItems {
		resp.LineItems = append(resp.LineItems, ToLineItemResponse(li))
	}
	return resp
}
