package models

import (
	"strings"

	"github.com/familybiz/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the type of a transaction: money coming in or going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// CategoryWithdrawal is the reserved category id for expense transactions
// that mirror a cost-reserve withdrawal.
const CategoryWithdrawal = "withdrawal"

// Transaction represents a single money movement in the ledger.
type Transaction struct {
	DefaultModel
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Category    string          `json:"category"`
	Date        types.Date      `json:"date"`
	Description string          `json:"description"`

	// Income only: whether this income feeds the cost reserve.
	DeductCost bool `json:"deductCost"`

	// Income only: per-transaction override of the default profit split.
	// When nil, the split from the settings applies.
	HusbandShare *int `json:"husbandShare"`
	WifeShare    *int `json:"wifeShare"`

	// Set on the expense transaction that mirrors a cost-reserve
	// withdrawal. LinkedWithdrawalID references the Withdrawal.
	IsFundWithdrawal   bool    `json:"isFundWithdrawal"`
	LinkedWithdrawalID *string `json:"linkedWithdrawalId"`
}

// BeforeSave validates the transaction and enforces the fund-withdrawal
// invariant: a withdrawal mirror is always an expense in the reserved
// withdrawal category and references its withdrawal.
func (t *Transaction) BeforeSave(db *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Type != TransactionIncome && t.Type != TransactionExpense {
		return ErrTransactionTypeInvalid
	}

	if amountInvalid(db, t.Amount) {
		return ErrAmountNotPositive
	}

	for _, share := range []*int{t.HusbandShare, t.WifeShare} {
		if share != nil && (*share < 0 || *share > 100) {
			return ErrShareOutOfRange
		}
	}

	// The deduct-cost flag and split overrides only apply to income
	if t.Type == TransactionExpense {
		t.DeductCost = false
		t.HusbandShare = nil
		t.WifeShare = nil
	}

	if t.IsFundWithdrawal {
		if t.LinkedWithdrawalID == nil || *t.LinkedWithdrawalID == "" {
			return ErrWithdrawalLinkMissing
		}

		if t.Type != TransactionExpense || t.Category != CategoryWithdrawal {
			return ErrWithdrawalNotExpense
		}
	}

	if t.Date.IsZero() {
		t.Date = types.Today()
	}

	return nil
}

// Transactions returns all transactions, newest first.
func Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction
	err := db.Order("datetime(transactions.created_at) DESC").Find(&transactions).Error
	return transactions, err
}

// SplitOverride returns the per-transaction profit-split override for the
// stakeholder, or nil when the default from the settings applies. The
// storage schema knows the two fixed stakeholders; other ids never have
// an override.
func (t Transaction) SplitOverride(stakeholder string) *int {
	switch stakeholder {
	case StakeholderHusband:
		return t.HusbandShare
	case StakeholderWife:
		return t.WifeShare
	}

	return nil
}

// ExcludedFromExpenses reports whether the transaction must not count as
// a business expense in summaries and profit distribution. Reserve
// withdrawals are disbursements of already-earned money, counting them
// again would double-book the cost.
func (t Transaction) ExcludedFromExpenses() bool {
	return t.IsFundWithdrawal || t.Category == CategoryWithdrawal
}
