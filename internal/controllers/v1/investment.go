package v1

import (
	"net/http"

	"github.com/familybiz/backend/internal/httputil"
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type InvestmentEditable struct {
	Amount   decimal.Decimal `json:"amount" example:"300" minimum:"0.00000001" multipleOf:"0.00000001"` // The contributed capital
	Investor string          `json:"investor" example:"husband"`                                        // Stakeholder id of the contributor
	Date     types.Date      `json:"date" example:"2024-01-15"`                                         // Civil date of the contribution
	Note     string          `json:"note" example:"Opening capital" default:""`                         // Optional note
}

// model returns the database resource for the API representation of the editable fields
func (editable InvestmentEditable) model() models.Investment {
	return models.Investment{
		Amount:   editable.Amount,
		Investor: editable.Investor,
		Date:     editable.Date,
		Note:     editable.Note,
	}
}

type InvestmentResponse struct {
	Data  *models.Investment `json:"data"`  // The resource
	Error *string            `json:"error"` // The error, if any occurred
}

type InvestmentListResponse struct {
	Data  []models.Investment `json:"data"`  // List of resources
	Error *string             `json:"error"` // The error, if any occurred
}

func RegisterInvestmentRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsInvestments)
		r.GET("", GetInvestments)
		r.POST("", CreateInvestment)
	}
	{
		r.OPTIONS("/:id", OptionsInvestmentDetail)
		r.GET("/:id", GetInvestment)
		r.PATCH("/:id", UpdateInvestment)
		r.DELETE("/:id", DeleteInvestment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Router			/v1/investments [options]
func OptionsInvestments(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Investments
// @Success		204
// @Param			id	path	string	true	"ID of the investment"
// @Router			/v1/investments/{id} [options]
func OptionsInvestmentDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create investment
// @Description	Creates a new investment
// @Tags			Investments
// @Produce		json
// @Success		201			{object}	InvestmentResponse
// @Failure		400			{object}	InvestmentResponse
// @Failure		500			{object}	InvestmentResponse
// @Param			investment	body		InvestmentEditable	true	"Investment"
// @Router			/v1/investments [post]
func CreateInvestment(c *gin.Context) {
	var editable InvestmentEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{Error: &e})
		return
	}

	investment := editable.model()
	if err := models.DB.Create(&investment).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{Error: &e})
		return
	}

	sync.Schedule()
	c.JSON(http.StatusCreated, InvestmentResponse{Data: &investment})
}

// @Summary		Get investments
// @Description	Returns a list of investments, newest first
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	InvestmentListResponse
// @Failure		500	{object}	InvestmentListResponse
// @Router			/v1/investments [get]
func GetInvestments(c *gin.Context) {
	investments, err := models.Investments(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, InvestmentListResponse{Data: investments})
}

// @Summary		Get investment
// @Description	Returns a specific investment
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	InvestmentResponse
// @Failure		404	{object}	InvestmentResponse
// @Failure		500	{object}	InvestmentResponse
// @Param			id	path		string	true	"ID of the investment"
// @Router			/v1/investments/{id} [get]
func GetInvestment(c *gin.Context) {
	var investment models.Investment

	err := models.DB.First(&investment, "id = ?", c.Param("id")).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, InvestmentResponse{Data: &investment})
}

// @Summary		Update investment
// @Description	Updates an existing investment. Only values to be updated need to be specified. Updating an unknown ID is a no-op.
// @Tags			Investments
// @Accept			json
// @Produce		json
// @Success		200			{object}	InvestmentResponse
// @Failure		400			{object}	InvestmentResponse
// @Failure		500			{object}	InvestmentResponse
// @Param			id			path		string				true	"ID of the investment"
// @Param			investment	body		InvestmentEditable	true	"Investment"
// @Router			/v1/investments/{id} [patch]
func UpdateInvestment(c *gin.Context) {
	updateFields, err := httputil.GetBodyFields(c, InvestmentEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{Error: &e})
		return
	}

	var update InvestmentEditable
	if err := httputil.BindData(c, &update); err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{Error: &e})
		return
	}

	var investment models.Investment
	err = models.DB.First(&investment, "id = ?", c.Param("id")).Error
	if err != nil {
		// Updating an unknown id is a no-op, not an error
		if status(err) == http.StatusNotFound {
			c.JSON(http.StatusOK, InvestmentResponse{})
			return
		}

		e := err.Error()
		c.JSON(status(err), InvestmentResponse{Error: &e})
		return
	}

	if update.Amount.IsZero() {
		update.Amount = investment.Amount
	}

	if update.Investor == "" {
		update.Investor = investment.Investor
	}

	err = models.DB.Model(&investment).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InvestmentResponse{Error: &e})
		return
	}

	sync.Schedule()
	c.JSON(http.StatusOK, InvestmentResponse{Data: &investment})
}

// @Summary		Delete investment
// @Description	Deletes an investment. Deleting an unknown ID is a no-op.
// @Tags			Investments
// @Success		204
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the investment"
// @Router			/v1/investments/{id} [delete]
func DeleteInvestment(c *gin.Context) {
	err := models.DB.Delete(&models.Investment{}, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	sync.Schedule()
	c.JSON(http.StatusNoContent, nil)
}
