package models

import (
	"errors"

	"gorm.io/gorm"
)

// Default values for the settings record.
const (
	DefaultCostPercent   = 30
	DefaultHusbandShare  = 50
	DefaultWifeShare     = 50
	settingsSingletonRow = 1
)

// Settings is the process-wide configuration of the accounting rules.
// There is exactly one row.
type Settings struct {
	ID           uint `json:"-" gorm:"primaryKey"`
	CostPercent  int  `json:"costPercent" example:"30"`  // Percentage of deduct-flagged income reserved as cost buffer
	HusbandShare int  `json:"husbandShare" example:"50"` // Default profit-split percentage for the husband
	WifeShare    int  `json:"wifeShare" example:"50"`    // Default profit-split percentage for the wife
}

func (s *Settings) BeforeSave(_ *gorm.DB) error {
	for _, percent := range []int{s.CostPercent, s.HusbandShare, s.WifeShare} {
		if percent < 0 || percent > 100 {
			return ErrPercentOutOfRange
		}
	}

	return nil
}

// DefaultSettings returns the settings used before the user saved any.
func DefaultSettings() Settings {
	return Settings{
		ID:           settingsSingletonRow,
		CostPercent:  DefaultCostPercent,
		HusbandShare: DefaultHusbandShare,
		WifeShare:    DefaultWifeShare,
	}
}

// LoadSettings returns the stored settings, falling back to the defaults
// when none have been saved yet.
func LoadSettings(db *gorm.DB) (Settings, error) {
	var settings Settings
	err := db.First(&settings, settingsSingletonRow).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return DefaultSettings(), nil
		}
		return Settings{}, err
	}

	return settings, nil
}

// SaveSettings replaces the settings record.
func SaveSettings(db *gorm.DB, settings Settings) error {
	settings.ID = settingsSingletonRow
	return db.Save(&settings).Error
}
