package domain

import "strings"

// AccountClassification is the closed set of classifications derived from an
// account's base code prefix. All polarity rules in the offset engine key off
// this value instead of scattering prefix checks across call sites.
type AccountClassification string

const (
	AssetLike     AccountClassification = "ASSET_LIKE"     // base code "1…"
	LiabilityLike AccountClassification = "LIABILITY_LIKE" // base code "2…"
	OtherClass    AccountClassification = "OTHER"
)

const (
	assetBaseCodePrefix     = "1"
	liabilityBaseCodePrefix = "2"
)

// Classify maps a base code to its account classification.
func Classify(baseCode string) AccountClassification {
	switch {
	case strings.HasPrefix(baseCode, assetBaseCodePrefix):
		return AssetLike
	case strings.HasPrefix(baseCode, liabilityBaseCodePrefix):
		return LiabilityLike
	default:
		return OtherClass
	}
}

// OriginalIsDebit reports the polarity an "original" (offsettable) line item
// carries under this classification: debits on asset-like accounts
// (receivables), credits on liability-like accounts (payables).
// ok is false for classifications that never hold originals.
func (c AccountClassification) OriginalIsDebit() (isDebit bool, ok bool) {
	switch c {
	case AssetLike:
		return true, true
	case LiabilityLike:
		return false, true
	default:
		return false, false
	}
}

// OffsetIsDebit reports the polarity of a line item that settles an original
// under this classification; it is the opposite side of OriginalIsDebit.
func (c AccountClassification) OffsetIsDebit() (isDebit bool, ok bool) {
	isDebit, ok = c.OriginalIsDebit()
	return !isDebit, ok
}

// Account represents a bookkeeping account within the core domain.
// Codes are hierarchical ("1123-002"); the base code is the classification
// prefix ("1123").
type Account struct {
	AccountID    string `json:"accountID"` // Primary Key (UUID)
	Code         string `json:"code"`      // Hierarchical account code, unique
	BaseCode     string `json:"baseCode"`  // Classification prefix of Code
	No           int    `json:"no"`        // Ordering key within the base code
	Title        string `json:"title"`
	IsNeedOffset bool   `json:"isNeedOffset"` // Participates in offset tracking
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Classification derives the classification from the account's base code.
func (a Account) Classification() AccountClassification {
	return Classify(a.BaseCode)
}
