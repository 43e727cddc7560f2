package models_test

import (
	"github.com/familybiz/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestWithdrawalCreatesLinkedTransaction() {
	withdrawal := suite.createTestWithdrawal(models.Withdrawal{
		Amount: decimal.NewFromInt(75),
		Note:   "New shelving",
	})

	transactions, err := models.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)

	mirror := transactions[0]
	suite.Assert().Equal(models.TransactionExpense, mirror.Type)
	suite.Assert().Equal(models.CategoryWithdrawal, mirror.Category)
	suite.Assert().True(mirror.IsFundWithdrawal)
	suite.Assert().True(mirror.Amount.Equal(withdrawal.Amount))
	suite.Assert().Equal("New shelving", mirror.Description)
	suite.Require().NotNil(mirror.LinkedWithdrawalID)
	suite.Assert().Equal(withdrawal.ID, *mirror.LinkedWithdrawalID)
}

func (suite *TestSuiteStandard) TestWithdrawalDefaultDescription() {
	_ = suite.createTestWithdrawal(models.Withdrawal{})

	transactions, err := models.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal("Withdrawal from cost reserve", transactions[0].Description)
}

func (suite *TestSuiteStandard) TestWithdrawalAmountMustBePositive() {
	err := models.CreateWithdrawal(models.DB, &models.Withdrawal{Amount: decimal.Zero})
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	// The rejected withdrawal must not leave a mirror transaction behind
	transactions, listErr := models.Transactions(models.DB)
	suite.Require().Nil(listErr)
	suite.Assert().Empty(transactions)
}

func (suite *TestSuiteStandard) TestDeleteWithdrawalCascades() {
	withdrawal := suite.createTestWithdrawal(models.Withdrawal{})
	unrelated := suite.createTestTransaction(models.Transaction{Description: "keep me"})

	suite.Require().Nil(models.DeleteWithdrawal(models.DB, withdrawal.ID))

	withdrawals, err := models.Withdrawals(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Empty(withdrawals)

	transactions, err := models.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)
	suite.Assert().Equal(unrelated.ID, transactions[0].ID)
}

func (suite *TestSuiteStandard) TestDeleteWithdrawalUnknownIDIsNoOp() {
	suite.Assert().Nil(models.DeleteWithdrawal(models.DB, "does-not-exist"))
}

func (suite *TestSuiteStandard) TestDeleteLinkedTransactionDoesNotCascade() {
	// The link cleanup is asymmetric: removing the mirror transaction
	// leaves the withdrawal in place
	withdrawal := suite.createTestWithdrawal(models.Withdrawal{})

	transactions, err := models.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 1)

	suite.Require().Nil(models.DB.Delete(&models.Transaction{}, "id = ?", transactions[0].ID).Error)

	withdrawals, err := models.Withdrawals(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(withdrawals, 1)
	suite.Assert().Equal(withdrawal.ID, withdrawals[0].ID)
}
