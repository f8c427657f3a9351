package domain_test

import (
	"testing"

	"github.com/beanflow/beanflow/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, domain.AssetLike, domain.Classify("1123"))
	assert.Equal(t, domain.LiabilityLike, domain.Classify("2141"))
	assert.Equal(t, domain.OtherClass, domain.Classify("3351"))
	assert.Equal(t, domain.OtherClass, domain.Classify("4111"))
	assert.Equal(t, domain.OtherClass, domain.Classify(""))
}

func TestOriginalIsDebit(t *testing.T) {
	isDebit, ok := domain.AssetLike.OriginalIsDebit()
	assert.True(t, ok)
	assert.True(t, isDebit, "asset-like originals are debits (receivables)")

	isDebit, ok = domain.LiabilityLike.OriginalIsDebit()
	assert.True(t, ok)
	assert.False(t, isDebit, "liability-like originals are credits (payables)")

	_, ok = domain.OtherClass.OriginalIsDebit()
	assert.False(t, ok)
}

func TestOffsetIsDebit_IsOppositeOfOriginal(t *testing.T) {
	for _, c := range []domain.AccountClassification{domain.AssetLike, domain.LiabilityLike} {
		original, _ := c.OriginalIsDebit()
		offset, ok := c.OffsetIsDebit()
		assert.True(t, ok)
		assert.Equal(t, !original, offset)
	}
}

func TestAccountClassification(t *testing.T) {
	receivable := domain.Account{Code: "1123-002", BaseCode: "1123"}
	assert.Equal(t, domain.AssetLike, receivable.Classification())

	payable := domain.Account{Code: "2141-001", BaseCode: "2141"}
	assert.Equal(t, domain.LiabilityLike, payable.Classification())
}
