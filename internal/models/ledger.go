package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// restoreKey marks writes that restore remote state. The sync wire
// format defaults unparseable amounts to zero, and a single such row
// must not make the whole restore fail, so amount validation accepts
// zero for these writes. Negative amounts stay rejected everywhere.
const restoreKey = "familybiz:restore"

// amountInvalid reports whether the amount fails validation for this
// write. Positive always passes, zero passes only when restoring
// remote state.
func amountInvalid(db *gorm.DB, amount decimal.Decimal) bool {
	if amount.IsPositive() {
		return false
	}

	if _, restore := db.Get(restoreKey); restore && amount.IsZero() {
		return false
	}

	return true
}

// Ledger is the full state of the store. It is the unit of exchange for
// the sync endpoints: both directions replace the entire state.
type Ledger struct {
	Transactions     []Transaction `json:"transactions"`
	Investments      []Investment  `json:"investments"`
	Withdrawals      []Withdrawal  `json:"withdrawals"`
	CustomCategories []Category    `json:"customCategories"`
	Settings         Settings      `json:"settings"`
}

// Snapshot reads the full ledger state, collections ordered newest first.
func Snapshot(db *gorm.DB) (Ledger, error) {
	var ledger Ledger
	var err error

	if ledger.Transactions, err = Transactions(db); err != nil {
		return Ledger{}, err
	}

	if ledger.Investments, err = Investments(db); err != nil {
		return Ledger{}, err
	}

	if ledger.Withdrawals, err = Withdrawals(db); err != nil {
		return Ledger{}, err
	}

	if ledger.CustomCategories, err = Categories(db); err != nil {
		return Ledger{}, err
	}

	if ledger.Settings, err = LoadSettings(db); err != nil {
		return Ledger{}, err
	}

	return ledger, nil
}

// Replace overwrites the entire store with the passed ledger in one
// database transaction. Either the full new state is visible afterwards
// or nothing changed.
func Replace(db *gorm.DB, ledger Ledger) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{Transaction{}, Investment{}, Withdrawal{}, Category{}} {
			if err := tx.Where("true").Delete(&model).Error; err != nil {
				return err
			}
		}

		restore := tx.Set(restoreKey, true)

		// Create errors on empty slices, so guard each collection
		if len(ledger.Transactions) > 0 {
			if err := restore.Create(&ledger.Transactions).Error; err != nil {
				return err
			}
		}

		if len(ledger.Investments) > 0 {
			if err := restore.Create(&ledger.Investments).Error; err != nil {
				return err
			}
		}

		if len(ledger.Withdrawals) > 0 {
			if err := restore.Create(&ledger.Withdrawals).Error; err != nil {
				return err
			}
		}

		if len(ledger.CustomCategories) > 0 {
			if err := restore.Create(&ledger.CustomCategories).Error; err != nil {
				return err
			}
		}

		return SaveSettings(tx, ledger.Settings)
	})
}
