package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/beanflow/beanflow/internal/apperrors"
	"github.com/beanflow/beanflow/internal/core/domain"
	portssvc "github.com/beanflow/beanflow/internal/core/ports/services"
	"github.com/beanflow/beanflow/internal/core/services"
	"github.com/beanflow/beanflow/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo  *MockJournalRepository
	mockAccountRepo  *MockAccountRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.JournalSvcFacade

	cashAccount       domain.Account
	receivableAccount domain.Account
	salesAccount      domain.Account
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewJournalService(
		suite.mockJournalRepo,
		suite.mockAccountRepo,
		suite.mockCurrencyRepo,
	)

	suite.cashAccount = domain.Account{
		AccountID: uuid.NewString(), Code: "1111-001", BaseCode: "1111", Title: "Cash", IsActive: true,
	}
	suite.receivableAccount = domain.Account{
		AccountID: uuid.NewString(), Code: "1123-002", BaseCode: "1123", Title: "Receivable", IsNeedOffset: true, IsActive: true,
	}
	suite.salesAccount = domain.Account{
		AccountID: uuid.NewString(), Code: "4111-001", BaseCode: "4111", Title: "Sales", IsActive: true,
	}
}

func (suite *JournalServiceTestSuite) expectCurrency(code string) {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, code).Return(&domain.Currency{CurrencyCode: code}, nil).Once()
}

func (suite *JournalServiceTestSuite) expectAccounts(accounts ...domain.Account) {
	m := make(map[string]domain.Account, len(accounts))
	for _, a := range accounts {
		m[a.AccountID] = a
	}
	suite.mockAccountRepo.On("FindAccountsByIDs", mock.Anything, mock.Anything).Return(m, nil).Once()
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateJournalEntryRequest{
		EntryDate:    time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "USD",
		Note:         "invoice",
		LineItems: []dto.CreateLineItemRequest{
			{AccountID: suite.receivableAccount.AccountID, IsDebit: true, Amount: decimal.NewFromInt(1000)},
			{AccountID: suite.salesAccount.AccountID, IsDebit: false, Amount: decimal.NewFromInt(1000)},
		},
	}

	suite.expectCurrency("USD")
	suite.expectAccounts(suite.receivableAccount, suite.salesAccount)
	suite.mockJournalRepo.On("SaveEntry", mock.Anything, mock.AnythingOfType("*domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryLineItem")).
		Run(func(args mock.Arguments) {
			entry := args.Get(1).(*domain.JournalEntry)
			entry.No = 1
			lineItems := args.Get(2).([]domain.JournalEntryLineItem)
			suite.Len(lineItems, 2)
			suite.Equal(1, lineItems[0].No)
			suite.Equal(2, lineItems[1].No)
			suite.Equal("USD", lineItems[0].CurrencyCode)
		}).
		Return(nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(1, entry.No)
	suite.Equal(userID, entry.CreatedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:    time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "USD",
		LineItems: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, IsDebit: true, Amount: decimal.NewFromInt(1000)},
			{AccountID: suite.salesAccount.AccountID, IsDebit: false, Amount: decimal.NewFromInt(900)},
		},
	}

	suite.expectCurrency("USD")

	entry, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalServiceTestSuite) TestCreateEntry_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:    time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "XXX",
		LineItems: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, IsDebit: true, Amount: decimal.NewFromInt(100)},
			{AccountID: suite.salesAccount.AccountID, IsDebit: false, Amount: decimal.NewFromInt(100)},
		},
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_InactiveAccount() {
	ctx := context.Background()
	inactive := suite.cashAccount
	inactive.IsActive = false
	req := dto.CreateJournalEntryRequest{
		EntryDate:    time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "USD",
		LineItems: []dto.CreateLineItemRequest{
			{AccountID: inactive.AccountID, IsDebit: true, Amount: decimal.NewFromInt(100)},
			{AccountID: suite.salesAccount.AccountID, IsDebit: false, Amount: decimal.NewFromInt(100)},
		},
	}

	suite.expectCurrency("USD")
	suite.expectAccounts(inactive, suite.salesAccount)

	entry, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateEntry_OffsetOriginalNotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()
	req := dto.CreateJournalEntryRequest{
		EntryDate:    time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "USD",
		LineItems: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, IsDebit: true, Amount: decimal.NewFromInt(400)},
			{AccountID: suite.receivableAccount.AccountID, IsDebit: false, Amount: decimal.NewFromInt(400), OriginalLineItemID: &missingID},
		},
	}

	suite.expectCurrency("USD")
	suite.expectAccounts(suite.cashAccount, suite.receivableAccount)
	suite.mockJournalRepo.On("FindLineItemByID", mock.Anything, missingID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalServiceTestSuite) TestCreateEntry_OffsetOnOffsetRejected() {
	ctx := context.Background()
	someOriginalID := uuid.NewString()
	offsetItem := &domain.JournalEntryLineItem{
		LineItemID:         uuid.NewString(),
		EntryID:            uuid.NewString(),
		AccountID:          suite.receivableAccount.AccountID,
		IsDebit:            false,
		CurrencyCode:       "USD",
		Amount:             decimal.NewFromInt(400),
		OriginalLineItemID: &someOriginalID,
	}
	req := dto.CreateJournalEntryRequest{
		EntryDate:    time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "USD",
		LineItems: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, IsDebit: true, Amount: decimal.NewFromInt(400)},
			{AccountID: suite.receivableAccount.AccountID, IsDebit: false, Amount: decimal.NewFromInt(400), OriginalLineItemID: &offsetItem.LineItemID},
		},
	}

	suite.expectCurrency("USD")
	suite.expectAccounts(suite.cashAccount, suite.receivableAccount)
	suite.mockJournalRepo.On("FindLineItemByID", mock.Anything, offsetItem.LineItemID).Return(offsetItem, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry")
}

func (suite *JournalServiceTestSuite) TestCreateEntry_OffsetAcrossAccountsRejected() {
	ctx := context.Background()
	original := &domain.JournalEntryLineItem{
		LineItemID:   uuid.NewString(),
		EntryID:      uuid.NewString(),
		AccountID:    uuid.NewString(), // different account
		IsDebit:      true,
		CurrencyCode: "USD",
		Amount:       decimal.NewFromInt(400),
	}
	req := dto.CreateJournalEntryRequest{
		EntryDate:    time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		CurrencyCode: "USD",
		LineItems: []dto.CreateLineItemRequest{
			{AccountID: suite.cashAccount.AccountID, IsDebit: true, Amount: decimal.NewFromInt(400)},
			{AccountID: suite.receivableAccount.AccountID, IsDebit: false, Amount: decimal.NewFromInt(400), OriginalLineItemID: &original.LineItemID},
		},
	}

	suite.expectCurrency("USD")
	suite.expectAccounts(suite.cashAccount, suite.receivableAccount)
	suite.mockJournalRepo.On("FindLineItemByID", mock.Anything, original.LineItemID).Return(original, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestDeleteEntry_ConflictPropagated() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockJournalRepo.On("DeleteEntry", ctx, entryID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteEntry(ctx, entryID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JournalServiceTestSuite) TestListEntries_InvalidPeriod() {
	ctx := context.Background()
	from := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	entries, next, err := suite.service.ListEntries(ctx, domain.Period{Start: &from, End: &to}, 10, nil)

	suite.Require().Error(err)
	suite.Nil(entries)
	suite.Nil(next)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ListEntriesByPeriod")
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
