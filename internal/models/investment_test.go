package models_test

import (
	"github.com/familybiz/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestInvestmentIDIsTimeOrderedUUID() {
	investment := suite.createTestInvestment(models.Investment{})

	parsed, err := uuid.Parse(investment.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(uuid.Version(7), parsed.Version())
}

func (suite *TestSuiteStandard) TestInvestmentInvestorRequired() {
	investment := models.Investment{
		Amount:   decimal.NewFromInt(100),
		Investor: "   ",
	}

	err := models.DB.Create(&investment).Error
	suite.Assert().ErrorIs(err, models.ErrInvestorNotSet)
}

func (suite *TestSuiteStandard) TestInvestmentAmountMustBePositive() {
	investment := models.Investment{
		Amount:   decimal.NewFromInt(-1),
		Investor: models.StakeholderWife,
	}

	err := models.DB.Create(&investment).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)
}
