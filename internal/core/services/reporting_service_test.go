package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/beanflow/beanflow/internal/apperrors"
	"github.com/beanflow/beanflow/internal/core/domain"
	portssvc "github.com/beanflow/beanflow/internal/core/ports/services"
	"github.com/beanflow/beanflow/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	mockAccountRepo   *MockAccountRepository
	mockCurrencyRepo  *MockCurrencyRepository
	service           portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewReportingService(
		suite.mockReportingRepo,
		suite.mockAccountRepo,
		suite.mockCurrencyRepo,
	)
}

func (suite *ReportingServiceTestSuite) expectCurrency(code string) {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, code).Return(&domain.Currency{CurrencyCode: code}, nil).Once()
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_UnknownCurrency() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	rows, err := suite.service.TrialBalance(ctx, "XXX", time.Now())

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetTrialBalanceData")
}

func (suite *ReportingServiceTestSuite) TestTrialBalanceExport_AppendsTotals() {
	ctx := context.Background()
	asOf := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	data := []domain.TrialBalanceRow{
		{Code: "1111-001", Title: "Cash", Debit: decimal.NewFromInt(700), Credit: decimal.NewFromInt(100)},
		{Code: "4111-001", Title: "Sales", Debit: decimal.Zero, Credit: decimal.NewFromInt(600)},
	}

	suite.expectCurrency("USD")
	suite.mockReportingRepo.On("GetTrialBalanceData", ctx, "USD", asOf).Return(data, nil).Once()

	rows, err := suite.service.TrialBalanceExport(ctx, "USD", asOf)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 4) // header + 2 accounts + totals

	totals := rows[3]
	suite.Equal("Total", totals[0].Render())
	suite.True(totals[1].IsNull())
	suite.Equal("700", totals[2].Render())
	suite.Equal("700", totals[3].Render())
}

func (suite *ReportingServiceTestSuite) TestLedger_RealAccount() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), Code: "1123-002", BaseCode: "1123", Title: "Receivable"}
	data := []domain.LedgerRow{
		{EntryDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), IsDebit: true, Amount: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(1000)},
	}

	suite.expectCurrency("USD")
	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockReportingRepo.On("GetLedgerData", ctx, account.AccountID, "USD", domain.Period{}).Return(data, nil).Once()

	pseudo, rows, err := suite.service.Ledger(ctx, account.AccountID, "USD", domain.Period{})

	suite.Require().NoError(err)
	suite.Equal("1123-002 Receivable", pseudo.String())
	suite.False(pseudo.IsCurrentAssetsAndLiabilities())
	suite.Len(rows, 1)
}

func (suite *ReportingServiceTestSuite) TestLedger_PseudoAccountSkipsAccountLookup() {
	ctx := context.Background()

	suite.expectCurrency("USD")
	suite.mockReportingRepo.On("GetLedgerData", ctx, domain.CurrentAssetsLiabilitiesID, "USD", domain.Period{}).Return([]domain.LedgerRow{}, nil).Once()

	pseudo, rows, err := suite.service.Ledger(ctx, domain.CurrentAssetsLiabilitiesID, "USD", domain.Period{})

	suite.Require().NoError(err)
	suite.True(pseudo.IsCurrentAssetsAndLiabilities())
	suite.Empty(rows)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID")
}

func (suite *ReportingServiceTestSuite) TestLedgerExport_SplitsDebitAndCreditColumns() {
	ctx := context.Background()
	account := &domain.Account{AccountID: uuid.NewString(), Code: "1123-002", BaseCode: "1123", Title: "Receivable"}
	data := []domain.LedgerRow{
		{EntryDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC), IsDebit: true, Amount: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(1000), Description: "invoice"},
		{EntryDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), IsDebit: false, Amount: decimal.NewFromInt(400), Balance: decimal.NewFromInt(600), Description: "payment"},
	}

	suite.expectCurrency("USD")
	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockReportingRepo.On("GetLedgerData", ctx, account.AccountID, "USD", domain.Period{}).Return(data, nil).Once()

	rows, err := suite.service.LedgerExport(ctx, account.AccountID, "USD", domain.Period{})

	suite.Require().NoError(err)
	suite.Require().Len(rows, 4) // title + header + 2 rows

	debitRow := rows[2]
	suite.Equal("2023-04-01", debitRow[0].Render())
	suite.Equal("1000", debitRow[1].Render())
	suite.True(debitRow[2].IsNull(), "credit cell must be null, not zero")

	creditRow := rows[3]
	suite.True(creditRow[1].IsNull(), "debit cell must be null, not zero")
	suite.Equal("400", creditRow[2].Render())
	suite.Equal("600", creditRow[3].Render())
}

func (suite *ReportingServiceTestSuite) TestIncomeStatement_InvalidPeriod() {
	ctx := context.Background()
	from := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	rows, err := suite.service.IncomeStatement(ctx, "USD", domain.Period{Start: &from, End: &to})

	suite.Require().Error(err)
	suite.Nil(rows)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
