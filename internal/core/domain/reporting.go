package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report.
type TrialBalanceRow struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Title     string          `json:"title"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// IncomeStatementRow represents an account with its net amount for the
// income statement.
type IncomeStatementRow struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Title     string          `json:"title"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// LedgerRow is one line item in an account ledger with the balance after it.
type LedgerRow struct {
	LineItemID  string          `json:"lineItemID"`
	EntryID     string          `json:"entryID"`
	EntryDate   time.Time       `json:"entryDate"`
	EntryNo     int             `json:"entryNo"`
	No          int             `json:"no"`
	IsDebit     bool            `json:"isDebit"`
	Amount      decimal.Decimal `json:"amount"`
	Balance     decimal.Decimal `json:"balance"` // Running balance after this row
	Description string          `json:"description"`
}

// ExportCell is one typed value in an export row: a string, a decimal, or
// null. The export boundary consumes these without ever confusing "zero" with
// "absent".
type ExportCell struct {
	Str *string
	Num *decimal.Decimal
}

// ExportString returns a string-valued cell.
func ExportString(s string) ExportCell { return ExportCell{Str: &s} }

// ExportDecimal returns a decimal-valued cell.
func ExportDecimal(d decimal.Decimal) ExportCell { return ExportCell{Num: &d} }

// ExportNull returns the null cell.
func ExportNull() ExportCell { return ExportCell{} }

// IsNull reports whether the cell carries no value.
func (c ExportCell) IsNull() bool { return c.Str == nil && c.Num == nil }

// Render returns the cell's serialized form; null renders as the empty string.
func (c ExportCell) Render() string {
	switch {
	case c.Str != nil:
		return *c.Str
	case c.Num != nil:
		return c.Num.String()
	default:
		return ""
	}
}

// ExportRow is an ordered row of typed cells handed to the exporter.
type ExportRow []ExportCell
