package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/familybiz/backend/internal/controllers/v1"
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestInvestmentOptions() {
	r := suite.request(http.MethodOptions, "/v1/investments", nil)
	suite.Assert().Equal(http.StatusNoContent, r.Code)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestInvestmentCreate() {
	investment := suite.createTestInvestment(v1.InvestmentEditable{
		Amount:   decimal.NewFromInt(500),
		Investor: models.StakeholderWife,
		Note:     "Opening capital",
	})

	suite.Assert().NotEmpty(investment.ID)
	suite.Assert().Equal(models.StakeholderWife, investment.Investor)
	suite.Assert().True(investment.Amount.Equal(decimal.NewFromInt(500)))
}

func (suite *TestSuiteStandard) TestInvestmentCreateValidated() {
	tests := []struct {
		name string
		body any
	}{
		{"Missing investor", map[string]any{"amount": 100}},
		{"Zero amount", map[string]any{"investor": "husband"}},
		{"Broken JSON", `{ "amount": `},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPost, "/v1/investments", tt.body)
			suite.Assert().Equal(http.StatusBadRequest, r.Code)
		})
	}
}

func (suite *TestSuiteStandard) TestInvestmentGet() {
	investment := suite.createTestInvestment(v1.InvestmentEditable{})

	r := suite.request(http.MethodGet, "/v1/investments/"+investment.ID, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InvestmentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(investment.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestInvestmentGetNotFound() {
	r := suite.request(http.MethodGet, "/v1/investments/does-not-exist", nil)
	suite.Assert().Equal(http.StatusNotFound, r.Code)
}

func (suite *TestSuiteStandard) TestInvestmentList() {
	suite.createTestInvestment(v1.InvestmentEditable{Amount: decimal.NewFromInt(100)})
	suite.createTestInvestment(v1.InvestmentEditable{Amount: decimal.NewFromInt(200)})

	r := suite.request(http.MethodGet, "/v1/investments", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InvestmentListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 2)
}

func (suite *TestSuiteStandard) TestInvestmentUpdate() {
	investment := suite.createTestInvestment(v1.InvestmentEditable{Note: "Old note"})

	r := suite.request(http.MethodPatch, "/v1/investments/"+investment.ID, map[string]any{
		"note": "Corrected note",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InvestmentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Corrected note", response.Data.Note)

	// The amount was not part of the update and is unchanged
	suite.Assert().True(response.Data.Amount.Equal(investment.Amount))
}

func (suite *TestSuiteStandard) TestInvestmentUpdateUnknownID() {
	r := suite.request(http.MethodPatch, "/v1/investments/does-not-exist", map[string]any{
		"note": "Nothing to update",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.InvestmentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Nil(response.Data)
	suite.Assert().Nil(response.Error)
}

func (suite *TestSuiteStandard) TestInvestmentDelete() {
	investment := suite.createTestInvestment(v1.InvestmentEditable{})

	r := suite.request(http.MethodDelete, "/v1/investments/"+investment.ID, nil)
	suite.Assert().Equal(http.StatusNoContent, r.Code)

	r = suite.request(http.MethodGet, "/v1/investments/"+investment.ID, nil)
	suite.Assert().Equal(http.StatusNotFound, r.Code)
}

func (suite *TestSuiteStandard) TestInvestmentDeleteUnknownID() {
	r := suite.request(http.MethodDelete, "/v1/investments/does-not-exist", nil)
	suite.Assert().Equal(http.StatusNoContent, r.Code)
}
