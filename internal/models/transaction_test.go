package models_test

import (
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestTransactionCreateAssignsID() {
	transaction := suite.createTestTransaction(models.Transaction{})

	suite.Assert().NotEmpty(transaction.ID)
	suite.Assert().False(transaction.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionKeepsExplicitID() {
	// Records restored from the cloud keep their identifier
	transaction := suite.createTestTransaction(models.Transaction{
		DefaultModel: models.DefaultModel{ID: "1699999999999"},
	})

	suite.Assert().Equal("1699999999999", transaction.ID)
}

func (suite *TestSuiteStandard) TestTransactionTypeValidated() {
	transaction := models.Transaction{
		Type:     "transfer",
		Amount:   decimal.NewFromInt(10),
		Category: "sales",
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrTransactionTypeInvalid)
}

func (suite *TestSuiteStandard) TestTransactionAmountMustBePositive() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		transaction := models.Transaction{
			Type:     models.TransactionIncome,
			Amount:   amount,
			Category: "sales",
		}

		err := models.DB.Create(&transaction).Error
		suite.Assert().ErrorIs(err, models.ErrAmountNotPositive, "amount %s must be rejected", amount)
	}
}

func (suite *TestSuiteStandard) TestTransactionShareRange() {
	share := 140
	transaction := models.Transaction{
		Type:         models.TransactionIncome,
		Amount:       decimal.NewFromInt(10),
		Category:     "sales",
		HusbandShare: &share,
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrShareOutOfRange)
}

func (suite *TestSuiteStandard) TestTransactionExpenseDropsIncomeFields() {
	share := 60
	transaction := suite.createTestTransaction(models.Transaction{
		Type:         models.TransactionExpense,
		Amount:       decimal.NewFromInt(10),
		Category:     "cost",
		DeductCost:   true,
		HusbandShare: &share,
	})

	suite.Assert().False(transaction.DeductCost)
	suite.Assert().Nil(transaction.HusbandShare)
	suite.Assert().Nil(transaction.WifeShare)
}

func (suite *TestSuiteStandard) TestTransactionFundWithdrawalInvariant() {
	// A mirror transaction must be an expense in the withdrawal
	// category and reference its withdrawal
	transaction := models.Transaction{
		Type:             models.TransactionExpense,
		Amount:           decimal.NewFromInt(10),
		Category:         models.CategoryWithdrawal,
		IsFundWithdrawal: true,
	}

	err := models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrWithdrawalLinkMissing)

	id := "w-1"
	transaction = models.Transaction{
		Type:               models.TransactionIncome,
		Amount:             decimal.NewFromInt(10),
		Category:           models.CategoryWithdrawal,
		IsFundWithdrawal:   true,
		LinkedWithdrawalID: &id,
	}

	err = models.DB.Create(&transaction).Error
	suite.Assert().ErrorIs(err, models.ErrWithdrawalNotExpense)
}

func (suite *TestSuiteStandard) TestTransactionDateDefaultsToToday() {
	transaction := suite.createTestTransaction(models.Transaction{})
	suite.Assert().True(transaction.Date.Equal(types.Today()))
}

func (suite *TestSuiteStandard) TestTransactionsNewestFirst() {
	first := suite.createTestTransaction(models.Transaction{Description: "first"})
	second := suite.createTestTransaction(models.Transaction{Description: "second"})

	transactions, err := models.Transactions(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(transactions, 2)

	// Both were created in the same instant as far as the second-based
	// ordering is concerned, so only verify both are present
	ids := []string{transactions[0].ID, transactions[1].ID}
	suite.Assert().Contains(ids, first.ID)
	suite.Assert().Contains(ids, second.ID)
}

func (suite *TestSuiteStandard) TestTransactionNotFound() {
	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", "does-not-exist").Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "transaction")
}
