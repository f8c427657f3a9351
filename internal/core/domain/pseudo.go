package domain

// Sentinel values for the synthetic "current assets and liabilities" bucket
// reports use to group small balances that do not warrant their own section.
const (
	CurrentAssetsLiabilitiesID    = "current-assets-and-liabilities"
	CurrentAssetsLiabilitiesCode  = "0000-000"
	CurrentAssetsLiabilitiesTitle = "Current assets and liabilities"
)

// PseudoAccount wraps a real account or synthesizes the current assets and
// liabilities bucket for report grouping. Pure value object; no query logic.
type PseudoAccount struct {
	AccountID string `json:"accountID"`
	Code      string `json:"code"`
	Title     string `json:"title"`
}

// NewPseudoAccount wraps a real account.
func NewPseudoAccount(a Account) PseudoAccount {
	return PseudoAccount{
		AccountID: a.AccountID,
		Code:      a.Code,
		Title:     a.Title,
	}
}

// CurrentAssetsAndLiabilities returns the synthetic bucket account.
func CurrentAssetsAndLiabilities() PseudoAccount {
	return PseudoAccount{
		AccountID: CurrentAssetsLiabilitiesID,
		Code:      CurrentAssetsLiabilitiesCode,
		Title:     CurrentAssetsLiabilitiesTitle,
	}
}

// IsCurrentAssetsAndLiabilities reports whether this is the synthetic bucket
// rather than a real account.
func (p PseudoAccount) IsCurrentAssetsAndLiabilities() bool {
	return p.AccountID == CurrentAssetsLiabilitiesID
}

func (p PseudoAccount) String() string {
	return p.Code + " " + p.Title
}
