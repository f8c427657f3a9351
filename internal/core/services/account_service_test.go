package services_test

import (
	"context"
	"testing"

	"github.com/beanflow/beanflow/internal/apperrors"
	"github.com/beanflow/beanflow/internal/core/domain"
	portssvc "github.com/beanflow/beanflow/internal/core/ports/services"
	"github.com/beanflow/beanflow/internal/core/services"
	"github.com/beanflow/beanflow/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountService(suite.mockRepo)
}

func boolPtr(b bool) *bool { return &b }

func (suite *AccountServiceTestSuite) TestCreateAccount_DerivesBaseCodeAndNo() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Code:         "1123-002",
		Title:        "Accounts receivable - trade",
		IsNeedOffset: boolPtr(true),
	}

	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.Code == "1123-002" && a.BaseCode == "1123" && a.No == 2 && a.IsNeedOffset && a.IsActive
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal("1123", account.BaseCode)
	suite.Equal(2, account.No)
	suite.Equal(domain.AssetLike, account.Classification())
	suite.Equal(userID, account.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InvalidCodeFormat() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "receivables", Title: "Bad"}

	account, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NeedOffsetOnExpenseRejected() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:         "6111-001",
		Title:        "Office supplies",
		IsNeedOffset: boolPtr(true),
	}

	account, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Duplicate() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Code: "1111-001", Title: "Cash"}

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(apperrors.ErrDuplicate).Once()

	account, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NeedOffsetOnOtherClassRejected() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID: uuid.NewString(),
		Code:      "6111-001",
		BaseCode:  "6111",
		Title:     "Office supplies",
		IsActive:  true,
	}

	suite.mockRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, account.AccountID, dto.UpdateAccountRequest{IsNeedOffset: boolPtr(true)}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateAccount")
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, accountID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
