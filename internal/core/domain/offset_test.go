package domain_test

import (
	"testing"
	"time"

	"github.com/beanflow/beanflow/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPeriodContains(t *testing.T) {
	start := date(2023, 1, 1)
	end := date(2023, 12, 31)
	p := domain.Period{Start: &start, End: &end}

	assert.True(t, p.Contains(date(2023, 6, 15)))
	assert.True(t, p.Contains(start), "period bounds are inclusive")
	assert.True(t, p.Contains(end), "period bounds are inclusive")
	assert.False(t, p.Contains(date(2022, 12, 31)))
	assert.False(t, p.Contains(date(2024, 1, 1)))
}

func TestPeriodContains_OpenEnded(t *testing.T) {
	start := date(2023, 1, 1)

	assert.True(t, domain.Period{}.Contains(date(1999, 1, 1)))
	assert.True(t, domain.Period{Start: &start}.Contains(date(2099, 1, 1)))
	assert.False(t, domain.Period{Start: &start}.Contains(date(2022, 1, 1)))
}

func TestPeriodIsValid(t *testing.T) {
	start := date(2023, 1, 1)
	end := date(2023, 12, 31)

	assert.True(t, domain.Period{Start: &start, End: &end}.IsValid())
	assert.True(t, domain.Period{}.IsValid())
	assert.True(t, domain.Period{Start: &start, End: &start}.IsValid(), "single-day period is valid")
	assert.False(t, domain.Period{Start: &end, End: &start}.IsValid())
}

func TestPseudoAccount(t *testing.T) {
	account := domain.Account{AccountID: "acc-1", Code: "1123-002", Title: "Receivable"}

	wrapped := domain.NewPseudoAccount(account)
	assert.Equal(t, "1123-002 Receivable", wrapped.String())
	assert.False(t, wrapped.IsCurrentAssetsAndLiabilities())

	bucket := domain.CurrentAssetsAndLiabilities()
	assert.True(t, bucket.IsCurrentAssetsAndLiabilities())
	assert.Equal(t, domain.CurrentAssetsLiabilitiesCode, bucket.Code)
}
