package dto

import (
	"time"

	"github.com/beanflow/beanflow/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// The base code and ordering no are derived from the hierarchical code.
type CreateAccountRequest struct {
	Code         string `json:"code" binding:"required,accountcode"`
	Title        string `json:"title" binding:"required"`
	IsNeedOffset *bool  `json:"isNeedOffset"` // Optional; defaults to false
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Title        *string `json:"title"`
	No           *int    `json:"no"`
	IsNeedOffset *bool   `json:"isNeedOffset"`
	IsActive     *bool   `json:"isActive"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID      string    `json:"accountID"`
	Code           string    `json:"code"`
	BaseCode       string    `json:"baseCode"`
	No             int       `json:"no"`
	Title          string    `json:"title"`
	Classification string    `json:"classification"`
	IsNeedOffset   bool      `json:"isNeedOffset"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy  string    `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      acc.AccountID,
		Code:           acc.Code,
		BaseCode:       acc.BaseCode,
		No:             acc.No,
		Title:          acc.Title,
		Classification: string(acc.Classification()),
		IsNeedOffset:   acc.IsNeedOffset,
		IsActive:       acc.IsActive,
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
		LastUpdatedAt:  acc.LastUpdatedAt,
		LastUpdatedBy:  acc.LastUpdatedBy,
	}
}

// ToAccountResponseSlice converts domain accounts to response DTOs.
func ToAccountResponseSlice(accs []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accs))
	for i := range accs {
		out[i] = ToAccountResponse(&accs[i])
	}
	return out
}
