package accounting_test

import (
	"testing"

	"github.com/beanflow/beanflow/internal/core/domain"
	"github.com/beanflow/beanflow/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineItem(isDebit bool, amount int64) domain.JournalEntryLineItem {
	return domain.JournalEntryLineItem{
		IsDebit:      isDebit,
		CurrencyCode: "USD",
		Amount:       decimal.NewFromInt(amount),
	}
}

func TestComputeNetBalance_NoOffsets(t *testing.T) {
	original := lineItem(true, 1000)

	net := accounting.ComputeNetBalance(original, nil)

	assert.True(t, net.Equal(decimal.NewFromInt(1000)), "no offsets must yield the full amount")
}

func TestComputeNetBalance_FullyOffset(t *testing.T) {
	original := lineItem(true, 1000)
	offsets := []domain.JournalEntryLineItem{lineItem(false, 1000)}

	net := accounting.ComputeNetBalance(original, offsets)

	assert.True(t, net.IsZero())
}

func TestComputeNetBalance_PartialOffset(t *testing.T) {
	original := lineItem(true, 1000)
	offsets := []domain.JournalEntryLineItem{lineItem(false, 400)}

	net := accounting.ComputeNetBalance(original, offsets)

	assert.True(t, net.Equal(decimal.NewFromInt(600)))
}

func TestComputeNetBalance_SamePolarityAdds(t *testing.T) {
	original := lineItem(false, 500)
	offsets := []domain.JournalEntryLineItem{
		lineItem(true, 200),  // payment against a payable
		lineItem(false, 100), // reversing entry adds back
	}

	net := accounting.ComputeNetBalance(original, offsets)

	assert.True(t, net.Equal(decimal.NewFromInt(400)))
}

func TestValidateEntryBalance_Balanced(t *testing.T) {
	items := []domain.JournalEntryLineItem{
		lineItem(true, 300),
		lineItem(true, 700),
		lineItem(false, 1000),
	}

	require.NoError(t, accounting.ValidateEntryBalance(items))
}

func TestValidateEntryBalance_Unbalanced(t *testing.T) {
	items := []domain.JournalEntryLineItem{
		lineItem(true, 1000),
		lineItem(false, 900),
	}

	assert.Error(t, accounting.ValidateEntryBalance(items))
}

func TestValidateEntryBalance_TooFewItems(t *testing.T) {
	assert.Error(t, accounting.ValidateEntryBalance([]domain.JournalEntryLineItem{lineItem(true, 100)}))
}

func TestValidateEntryBalance_NonPositiveAmount(t *testing.T) {
	items := []domain.JournalEntryLineItem{
		lineItem(true, 0),
		lineItem(false, 0),
	}

	assert.Error(t, accounting.ValidateEntryBalance(items))
}

func TestValidateEntryBalance_MixedCurrencies(t *testing.T) {
	a := lineItem(true, 100)
	b := lineItem(false, 100)
	b.CurrencyCode = "JPY"

	assert.Error(t, accounting.ValidateEntryBalance([]domain.JournalEntryLineItem{a, b}))
}
