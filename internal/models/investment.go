package models

import (
	"strings"

	"github.com/familybiz/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stakeholder ids of the two co-owners. The accounting engine works on
// arbitrary stakeholder sets; these are the ones the storage schema and
// the sync wire format know about.
const (
	StakeholderHusband = "husband"
	StakeholderWife    = "wife"
)

// Investment is a capital contribution by one of the stakeholders.
type Investment struct {
	DefaultModel
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)"`
	Investor string          `json:"investor" example:"husband"`
	Date     types.Date      `json:"date"`
	Note     string          `json:"note"`
}

func (i *Investment) BeforeSave(db *gorm.DB) error {
	i.Note = strings.TrimSpace(i.Note)

	if amountInvalid(db, i.Amount) {
		return ErrAmountNotPositive
	}

	if strings.TrimSpace(i.Investor) == "" {
		return ErrInvestorNotSet
	}

	if i.Date.IsZero() {
		i.Date = types.Today()
	}

	return nil
}

// Investments returns all investments, newest first.
func Investments(db *gorm.DB) ([]Investment, error) {
	var investments []Investment
	err := db.Order("datetime(investments.created_at) DESC").Find(&investments).Error
	return investments, err
}
