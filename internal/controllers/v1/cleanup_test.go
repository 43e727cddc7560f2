package v1_test

import (
	"net/http"

	v1 "github.com/familybiz/backend/internal/controllers/v1"
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCleanup() {
	suite.createTestTransaction(v1.TransactionEditable{Amount: decimal.NewFromInt(1000), DeductCost: true})
	suite.createTestInvestment(v1.InvestmentEditable{})
	suite.createTestWithdrawal(v1.WithdrawalEditable{Amount: decimal.NewFromInt(10)})

	r := suite.request(http.MethodDelete, "/v1?confirm=yes-please-delete-everything", nil)
	suite.Assert().Equal(http.StatusNoContent, r.Code)

	for _, model := range []any{
		&[]models.Transaction{},
		&[]models.Investment{},
		&[]models.Withdrawal{},
		&[]models.Category{},
	} {
		suite.Require().Nil(models.DB.Find(model).Error)
		suite.Assert().Empty(model)
	}
}

func (suite *TestSuiteStandard) TestCleanupResetsSettings() {
	r := suite.request(http.MethodPatch, "/v1/settings", map[string]any{"costPercent": 10})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = suite.request(http.MethodDelete, "/v1?confirm=yes-please-delete-everything", nil)
	suite.Assert().Equal(http.StatusNoContent, r.Code)

	r = suite.request(http.MethodGet, "/v1/settings", nil)
	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(30, response.Data.CostPercent)
}

func (suite *TestSuiteStandard) TestCleanupWrongConfirmation() {
	suite.createTestTransaction(v1.TransactionEditable{})

	for _, query := range []string{"", "?confirm=yes-please-delete-it"} {
		r := suite.request(http.MethodDelete, "/v1"+query, nil)
		suite.Assert().Equal(http.StatusBadRequest, r.Code)
	}

	// Nothing was deleted
	transactions, err := models.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 1)
}
