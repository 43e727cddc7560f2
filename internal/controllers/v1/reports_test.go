package v1_test

import (
	"net/http"

	v1 "github.com/familybiz/backend/internal/controllers/v1"
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/test"
	"github.com/familybiz/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestReportOverview() {
	suite.createTestInvestment(v1.InvestmentEditable{Investor: models.StakeholderHusband, Amount: decimal.NewFromInt(300)})
	suite.createTestInvestment(v1.InvestmentEditable{Investor: models.StakeholderWife, Amount: decimal.NewFromInt(700)})

	r := suite.request(http.MethodGet, "/v1/reports/overview", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(response.Data.Stakeholders[models.StakeholderHusband].Share.Equal(decimal.NewFromInt(30)))
	suite.Assert().True(response.Data.Stakeholders[models.StakeholderWife].Share.Equal(decimal.NewFromInt(70)))
}

func (suite *TestSuiteStandard) TestReportSummary() {
	suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(1000), Date: types.NewDate(2024, 1, 10)})
	suite.createTestTransaction(v1.TransactionEditable{
		Type:     models.TransactionExpense,
		Category: "cost",
		Amount:   decimal.NewFromInt(250),
		Date:     types.NewDate(2024, 1, 12),
	})

	// A different month stays out of the aggregates
	suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(999), Date: types.NewDate(2024, 2, 1)})

	r := suite.request(http.MethodGet, "/v1/reports/summary?month=2024-01", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.Income.Equal(decimal.NewFromInt(1000)))
	suite.Assert().True(response.Data.Expense.Equal(decimal.NewFromInt(250)))
	suite.Assert().True(response.Data.NetProfit.Equal(decimal.NewFromInt(750)))
	suite.Assert().Len(response.Data.Transactions, 2)
	suite.Assert().Equal("750.00", response.Data.Display.NetProfit)
}

func (suite *TestSuiteStandard) TestReportSummaryInvalidMonth() {
	r := suite.request(http.MethodGet, "/v1/reports/summary?month=January", nil)
	suite.Assert().Equal(http.StatusBadRequest, r.Code)
}

func (suite *TestSuiteStandard) TestReportCostReserve() {
	suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(1000), DeductCost: true})
	suite.createTestInvestment(v1.InvestmentEditable{Amount: decimal.NewFromInt(500)})
	suite.createTestWithdrawal(v1.WithdrawalEditable{Amount: decimal.NewFromInt(100)})

	r := suite.request(http.MethodGet, "/v1/reports/cost-reserve", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ReserveResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.TotalDeducted.Equal(decimal.NewFromInt(300)))
	suite.Assert().True(response.Data.TotalInvestments.Equal(decimal.NewFromInt(500)))
	suite.Assert().True(response.Data.TotalWithdrawn.Equal(decimal.NewFromInt(100)))
	suite.Assert().True(response.Data.Balance.Equal(decimal.NewFromInt(700)))
	suite.Assert().Equal("700.00", response.Data.DisplayBalance)
	suite.Assert().Len(response.Data.Withdrawals, 1)
}

func (suite *TestSuiteStandard) TestReportProfitShare() {
	husband, wife := 60, 40
	suite.createTestTransaction(v1.TransactionEditable{
		Amount:       decimal.NewFromInt(1000),
		DeductCost:   true,
		HusbandShare: &husband,
		WifeShare:    &wife,
	})

	r := suite.request(http.MethodGet, "/v1/reports/profit-share", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().True(response.Data.TotalProfit.Equal(decimal.NewFromInt(700)))
	suite.Assert().True(response.Data.NetProfit.Equal(decimal.NewFromInt(700)))
	suite.Assert().True(response.Data.Stakeholders[models.StakeholderHusband].Amount.Equal(decimal.NewFromInt(420)))
	suite.Assert().True(response.Data.Stakeholders[models.StakeholderWife].Amount.Equal(decimal.NewFromInt(280)))
	suite.Assert().True(response.Data.Stakeholders[models.StakeholderHusband].Share.Equal(decimal.NewFromInt(60)))
}

func (suite *TestSuiteStandard) TestReportProfitShareMonthFilter() {
	suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(1000), Date: types.NewDate(2024, 1, 10)})
	suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(400), Date: types.NewDate(2024, 2, 10)})

	r := suite.request(http.MethodGet, "/v1/reports/profit-share?month=2024-02", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.TotalProfit.Equal(decimal.NewFromInt(400)))
}

func (suite *TestSuiteStandard) TestReportDividends() {
	suite.createTestInvestment(v1.InvestmentEditable{Investor: models.StakeholderHusband, Amount: decimal.NewFromInt(300)})
	suite.createTestInvestment(v1.InvestmentEditable{Investor: models.StakeholderWife, Amount: decimal.NewFromInt(700)})

	r := suite.request(http.MethodGet, "/v1/reports/dividends?profit=1000", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DividendsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	// 30 percent buffer retained, the rest split 30/70
	suite.Assert().True(response.Data.Deduction.Equal(decimal.NewFromInt(300)))
	suite.Assert().True(response.Data.Distributable.Equal(decimal.NewFromInt(700)))
	suite.Assert().True(response.Data.Stakeholders[models.StakeholderHusband].Equal(decimal.NewFromInt(210)))
	suite.Assert().True(response.Data.Stakeholders[models.StakeholderWife].Equal(decimal.NewFromInt(490)))
}

func (suite *TestSuiteStandard) TestReportDividendsInvalidProfit() {
	r := suite.request(http.MethodGet, "/v1/reports/dividends?profit=lots", nil)
	suite.Assert().Equal(http.StatusBadRequest, r.Code)
}
