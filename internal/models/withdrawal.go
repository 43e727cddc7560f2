package models

import (
	"strings"

	"github.com/familybiz/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Withdrawal is a disbursement from the accumulated cost reserve.
//
// Every withdrawal has exactly one linked expense transaction that
// mirrors it in the ledger, created in the same database transaction.
type Withdrawal struct {
	DefaultModel
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Date   types.Date      `json:"date"`
	Note   string          `json:"note"`
}

func (w *Withdrawal) BeforeSave(db *gorm.DB) error {
	w.Note = strings.TrimSpace(w.Note)

	if amountInvalid(db, w.Amount) {
		return ErrAmountNotPositive
	}

	if w.Date.IsZero() {
		w.Date = types.Today()
	}

	return nil
}

// Withdrawals returns all withdrawals, newest first.
func Withdrawals(db *gorm.DB) ([]Withdrawal, error) {
	var withdrawals []Withdrawal
	err := db.Order("datetime(withdrawals.created_at) DESC").Find(&withdrawals).Error
	return withdrawals, err
}

// CreateWithdrawal creates the withdrawal and its linked expense
// transaction atomically. Readers never observe one without the other.
func CreateWithdrawal(db *gorm.DB, withdrawal *Withdrawal) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(withdrawal).Error; err != nil {
			return err
		}

		description := withdrawal.Note
		if description == "" {
			description = "Withdrawal from cost reserve"
		}

		mirror := Transaction{
			Type:               TransactionExpense,
			Amount:             withdrawal.Amount,
			Category:           CategoryWithdrawal,
			Date:               withdrawal.Date,
			Description:        description,
			IsFundWithdrawal:   true,
			LinkedWithdrawalID: &withdrawal.ID,
		}

		return tx.Create(&mirror).Error
	})
}

// DeleteWithdrawal deletes the withdrawal and every transaction linked
// to it. Deleting an unknown id is a no-op.
//
// Note the link cleanup is asymmetric on purpose: deleting the linked
// transaction directly does not cascade back to the withdrawal.
func DeleteWithdrawal(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Delete(&Withdrawal{}, "id = ?", id).Error
		if err != nil {
			return err
		}

		return tx.Where("linked_withdrawal_id = ?", id).Delete(&Transaction{}).Error
	})
}
