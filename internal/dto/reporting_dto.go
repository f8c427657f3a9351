package dto

import (
	"time"

	"github.com/beanflow/beanflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceResponse defines the data returned for a trial balance report.
type TrialBalanceResponse struct {
	CurrencyCode string                   `json:"currencyCode"`
	AsOf         time.Time                `json:"asOf"`
	Rows         []domain.TrialBalanceRow `json:"rows"`
	TotalDebit   decimal.Decimal          `json:"totalDebit"`
	TotalCredit  decimal.Decimal          `json:"totalCredit"`
}

// IncomeStatementResponse defines the data returned for an income statement.
type IncomeStatementResponse struct {
	CurrencyCode string                      `json:"currencyCode"`
	From         *string                     `json:"from,omitempty"`
	To           *string                     `json:"to,omitempty"`
	Rows         []domain.IncomeStatementRow `json:"rows"`
	NetTotal     decimal.Decimal             `json:"netTotal"`
}

// LedgerResponse defines the data returned for an account ledger.
type LedgerResponse struct {
	AccountCode  string             `json:"accountCode"`
	AccountTitle string             `json:"accountTitle"`
	CurrencyCode string             `json:"currencyCode"`
	From         *string            `json:"from,omitempty"`
	To           *string            `json:"to,omitempty"`
	Rows         []domain.LedgerRow `json:"rows"`
}

// ToTrialBalanceResponse assembles a trial balance response with totals.
func ToTrialBalanceResponse(currencyCode string, asOf time.Time, rows []domain.TrialBalanceRow) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		CurrencyCode: currencyCode,
		AsOf:         asOf,
		Rows:         rows,
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
	}
	for _, row := range rows {
		resp.TotalDebit = resp.TotalDebit.Add(row.Debit)
		resp.TotalCredit = resp.TotalCredit.Add(row.Credit)
	}
	return resp
}

// ToIncomeStatementResponse assembles an income statement response with the
// net total.
func ToIncomeStatementResponse(currencyCode string, period domain.Period, rows []domain.IncomeStatementRow) IncomeStatementResponse {
	resp := IncomeStatementResponse{
		CurrencyCode: currencyCode,
		Rows:         rows,
		NetTotal:     decimal.Zero,
	}
	if period.Start != nil {
		from := period.Start.Format("2006-01-02")
		resp.From = &from
	}
	if period.End != nil {
		to := period.End.Format("2006-01-02")
		resp.To = &to
	}
	for _, row := range rows {
		resp.NetTotal = resp.NetTotal.Add(row.NetAmount)
	}
	return resp
}

// ToLedgerResponse assembles a ledger response for an account, which may be
// the current-assets-and-liabilities pseudo account.
func ToLedgerResponse(account domain.PseudoAccount, currencyCode string, period domain.Period, rows []domain.LedgerRow) LedgerResponse {
	resp := LedgerResponse{
		AccountCode:  account.Code,
		AccountTitle: account.Title,
		CurrencyCode: currencyCode,
		Rows:         rows,
	}
	if period.Start != nil {
		from := period.Start.Format("2006-01-02")
		resp.From = &from
	}
	if period.End != nil {
		to := period.End.Format("2006-01-02")
		resp.To = &to
	}
	return resp
}
