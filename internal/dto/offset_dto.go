package dto

import (
	"time"

	"github.com/beanflow/beanflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnappliedLineItemResponse is one open original line item with its net balance.
type UnappliedLineItemResponse struct {
	LineItem    LineItemResponse `json:"lineItem"`
	EntryDate   time.Time        `json:"entryDate"`
	EntryNo     int              `json:"entryNo"`
	OffsetCount int64            `json:"offsetCount"`
	NetBalance  decimal.Decimal  `json:"netBalance"`
}

// UnappliedAccountListResponse lists accounts holding unapplied originals.
type UnappliedAccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// UnmatchedAccountResponse is one account with its unmatched line item count.
type UnmatchedAccountResponse struct {
	Account AccountResponse `json:"account"`
	Count   int64           `json:"count"`
}

// UnmatchedAccountListResponse lists accounts with unmatched line items for a
// currency and period.
type UnmatchedAccountListResponse struct {
	CurrencyCode string                     `json:"currencyCode"`
	From         *string                    `json:"from,omitempty"`
	To           *string                    `json:"to,omitempty"`
	Accounts     []UnmatchedAccountResponse `json:"accounts"`
}

// ToUnappliedLineItemResponse converts a domain unapplied item to a response DTO.
func ToUnappliedLineItemResponse(u domain.UnappliedLineItem) UnappliedLineItemResponse {
	return UnappliedLineItemResponse{
		LineItem:    ToLineItemResponse(u.LineItem),
		EntryDate:   u.EntryDate,
		EntryNo:     u.EntryNo,
		OffsetCount: u.OffsetCount,
		NetBalance:  u.NetBalance,
	}
}

// ToUnappliedLineItemResponseSlice converts domain unapplied items to response DTOs.
func ToUnappliedLineItemResponseSlice(us []domain.UnappliedLineItem) []UnappliedLineItemResponse {
	out := make([]UnappliedLineItemResponse, len(us))
	for i, u := range us {
		out[i] = ToUnappliedLineItemResponse(u)
	}
	return out
}

// ToUnmatchedAccountListResponse converts domain unmatched accounts to a response DTO.
func ToUnmatchedAccountListResponse(currencyCode string, period domain.Period, us []domain.UnmatchedAccount) UnmatchedAccountListResponse {
	resp := UnmatchedAccountListResponse{
		CurrencyCode: currencyCode,
		Accounts:     make([]UnmatchedAccountResponse, len(us)),
	}
	if period.Start != nil {
		from := period.Start.Format("2006-01-02")
		resp.From = &from
	}
	if period.End != nil {
		to := period.End.Format("2006-01-02")
		resp.To = &to
	}
	for i, u := range us {
		resp.Accounts[i] = UnmatchedAccountResponse{
			Account: ToAccountResponse(&u.Account),
			Count:   u.Count,
		}
	}
	return resp
}
