package v1

import (
	"net/http"

	"github.com/familybiz/backend/internal/httputil"
	"github.com/familybiz/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type SettingsEditable struct {
	CostPercent  *int `json:"costPercent" example:"30" minimum:"0" maximum:"100"`  // Percentage of deduct-flagged income reserved as cost buffer
	HusbandShare *int `json:"husbandShare" example:"50" minimum:"0" maximum:"100"` // Default profit-split percentage for the husband
	WifeShare    *int `json:"wifeShare" example:"50" minimum:"0" maximum:"100"`    // Default profit-split percentage for the wife
}

type SettingsResponse struct {
	Data  *models.Settings `json:"data"`  // The settings
	Error *string          `json:"error"` // The error, if any occurred
}

func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get settings
// @Description	Returns the settings, the defaults when none have been saved yet
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}

// @Summary		Update settings
// @Description	Updates the settings. Only values to be updated need to be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	var update SettingsEditable
	if err := httputil.BindData(c, &update); err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	if update.CostPercent != nil {
		settings.CostPercent = *update.CostPercent
	}

	if update.HusbandShare != nil {
		settings.HusbandShare = *update.HusbandShare
	}

	if update.WifeShare != nil {
		settings.WifeShare = *update.WifeShare
	}

	if err := models.SaveSettings(models.DB, settings); err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{Error: &e})
		return
	}

	sync.Schedule()
	c.JSON(http.StatusOK, SettingsResponse{Data: &settings})
}
