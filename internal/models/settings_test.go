package models_test

import (
	"github.com/familybiz/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSettingsDefaults() {
	settings, err := models.LoadSettings(models.DB)
	suite.Require().Nil(err)

	suite.Assert().Equal(models.DefaultCostPercent, settings.CostPercent)
	suite.Assert().Equal(models.DefaultHusbandShare, settings.HusbandShare)
	suite.Assert().Equal(models.DefaultWifeShare, settings.WifeShare)
}

func (suite *TestSuiteStandard) TestSettingsSaveAndLoad() {
	settings := models.Settings{CostPercent: 20, HusbandShare: 70, WifeShare: 30}
	suite.Require().Nil(models.SaveSettings(models.DB, settings))

	loaded, err := models.LoadSettings(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Equal(20, loaded.CostPercent)
	suite.Assert().Equal(70, loaded.HusbandShare)
	suite.Assert().Equal(30, loaded.WifeShare)
}

func (suite *TestSuiteStandard) TestSettingsSingleRow() {
	suite.Require().Nil(models.SaveSettings(models.DB, models.Settings{CostPercent: 20, HusbandShare: 50, WifeShare: 50}))
	suite.Require().Nil(models.SaveSettings(models.DB, models.Settings{CostPercent: 40, HusbandShare: 50, WifeShare: 50}))

	var count int64
	suite.Require().Nil(models.DB.Model(&models.Settings{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestSettingsPercentValidated() {
	err := models.SaveSettings(models.DB, models.Settings{CostPercent: 101, HusbandShare: 50, WifeShare: 50})
	suite.Assert().ErrorIs(err, models.ErrPercentOutOfRange)
}
