package v1_test

import (
	"net/http"

	v1 "github.com/familybiz/backend/internal/controllers/v1"
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestWithdrawalCreate() {
	// 1000 income with deductCost at the default 30 percent backs a
	// reserve of 300
	suite.createTestTransaction(v1.TransactionEditable{
		Amount:     decimal.NewFromInt(1000),
		DeductCost: true,
	})

	withdrawal := suite.createTestWithdrawal(v1.WithdrawalEditable{
		Amount: decimal.NewFromInt(200),
		Note:   "New shelving",
	})

	suite.Assert().NotEmpty(withdrawal.ID)

	// The linked expense transaction exists
	r := suite.request(http.MethodGet, "/v1/transactions?type=expense", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	suite.Require().Len(transactions.Data, 1)
	suite.Assert().True(transactions.Data[0].IsFundWithdrawal)
	suite.Require().NotNil(transactions.Data[0].LinkedWithdrawalID)
	suite.Assert().Equal(withdrawal.ID, *transactions.Data[0].LinkedWithdrawalID)
}

func (suite *TestSuiteStandard) TestWithdrawalExceedingReserveRejected() {
	suite.createTestTransaction(v1.TransactionEditable{
		Amount:     decimal.NewFromInt(1000),
		DeductCost: true,
	})

	r := suite.request(http.MethodPost, "/v1/withdrawals", v1.WithdrawalEditable{
		Amount: decimal.NewFromInt(301),
	})
	suite.Assert().Equal(http.StatusBadRequest, r.Code)

	var response v1.WithdrawalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "exceeds")

	// Nothing was created
	withdrawals, err := models.Withdrawals(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Empty(withdrawals)
}

func (suite *TestSuiteStandard) TestWithdrawalDeleteCascades() {
	suite.createTestTransaction(v1.TransactionEditable{
		Amount:     decimal.NewFromInt(1000),
		DeductCost: true,
	})
	withdrawal := suite.createTestWithdrawal(v1.WithdrawalEditable{Amount: decimal.NewFromInt(100)})

	r := suite.request(http.MethodDelete, "/v1/withdrawals/"+withdrawal.ID, nil)
	suite.Assert().Equal(http.StatusNoContent, r.Code)

	// The mirror expense transaction is gone with it
	list := suite.request(http.MethodGet, "/v1/transactions?type=expense", nil)
	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &list, &transactions)
	suite.Assert().Empty(transactions.Data)
}

func (suite *TestSuiteStandard) TestWithdrawalList() {
	suite.createTestTransaction(v1.TransactionEditable{
		Amount:     decimal.NewFromInt(1000),
		DeductCost: true,
	})
	suite.createTestWithdrawal(v1.WithdrawalEditable{Amount: decimal.NewFromInt(50)})
	suite.createTestWithdrawal(v1.WithdrawalEditable{Amount: decimal.NewFromInt(20)})

	r := suite.request(http.MethodGet, "/v1/withdrawals", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WithdrawalListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 2)
}
