package v1

import (
	"net/http"

	"github.com/familybiz/backend/internal/accounting"
	"github.com/familybiz/backend/internal/httputil"
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WithdrawalEditable struct {
	Amount decimal.Decimal `json:"amount" example:"100" minimum:"0.00000001" multipleOf:"0.00000001"` // The amount disbursed from the reserve
	Date   types.Date      `json:"date" example:"2024-01-15"`                                         // Civil date of the disbursement
	Note   string          `json:"note" example:"New packaging machine" default:""`                   // Optional note
}

// model returns the database resource for the API representation of the editable fields
func (editable WithdrawalEditable) model() models.Withdrawal {
	return models.Withdrawal{
		Amount: editable.Amount,
		Date:   editable.Date,
		Note:   editable.Note,
	}
}

type WithdrawalResponse struct {
	Data  *models.Withdrawal `json:"data"`  // The resource
	Error *string            `json:"error"` // The error, if any occurred
}

type WithdrawalListResponse struct {
	Data  []models.Withdrawal `json:"data"`  // List of resources
	Error *string             `json:"error"` // The error, if any occurred
}

func RegisterWithdrawalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsWithdrawals)
		r.GET("", GetWithdrawals)
		r.POST("", CreateWithdrawal)
	}
	{
		r.OPTIONS("/:id", OptionsWithdrawalDetail)
		r.GET("/:id", GetWithdrawal)
		r.DELETE("/:id", DeleteWithdrawal)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Withdrawals
// @Success		204
// @Router			/v1/withdrawals [options]
func OptionsWithdrawals(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Withdrawals
// @Success		204
// @Param			id	path	string	true	"ID of the withdrawal"
// @Router			/v1/withdrawals/{id} [options]
func OptionsWithdrawalDetail(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Create withdrawal
// @Description	Creates a cost-reserve withdrawal together with its linked expense transaction. Rejected when the amount exceeds the current reserve balance.
// @Tags			Withdrawals
// @Produce		json
// @Success		201			{object}	WithdrawalResponse
// @Failure		400			{object}	WithdrawalResponse
// @Failure		500			{object}	WithdrawalResponse
// @Param			withdrawal	body		WithdrawalEditable	true	"Withdrawal"
// @Router			/v1/withdrawals [post]
func CreateWithdrawal(c *gin.Context) {
	var editable WithdrawalEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), WithdrawalResponse{Error: &e})
		return
	}

	// The engine itself never rejects over-withdrawal, the guard lives
	// at this boundary
	reserve, err := currentReserve()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WithdrawalResponse{Error: &e})
		return
	}

	if editable.Amount.GreaterThan(reserve.Balance) {
		e := errWithdrawalExceedsReserve.Error()
		c.JSON(http.StatusBadRequest, WithdrawalResponse{Error: &e})
		return
	}

	withdrawal := editable.model()
	if err := models.CreateWithdrawal(models.DB, &withdrawal); err != nil {
		e := err.Error()
		c.JSON(status(err), WithdrawalResponse{Error: &e})
		return
	}

	sync.Schedule()
	c.JSON(http.StatusCreated, WithdrawalResponse{Data: &withdrawal})
}

// @Summary		Get withdrawals
// @Description	Returns a list of withdrawals, newest first
// @Tags			Withdrawals
// @Produce		json
// @Success		200	{object}	WithdrawalListResponse
// @Failure		500	{object}	WithdrawalListResponse
// @Router			/v1/withdrawals [get]
func GetWithdrawals(c *gin.Context) {
	withdrawals, err := models.Withdrawals(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WithdrawalListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, WithdrawalListResponse{Data: withdrawals})
}

// @Summary		Get withdrawal
// @Description	Returns a specific withdrawal
// @Tags			Withdrawals
// @Produce		json
// @Success		200	{object}	WithdrawalResponse
// @Failure		404	{object}	WithdrawalResponse
// @Failure		500	{object}	WithdrawalResponse
// @Param			id	path		string	true	"ID of the withdrawal"
// @Router			/v1/withdrawals/{id} [get]
func GetWithdrawal(c *gin.Context) {
	var withdrawal models.Withdrawal

	err := models.DB.First(&withdrawal, "id = ?", c.Param("id")).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WithdrawalResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, WithdrawalResponse{Data: &withdrawal})
}

// @Summary		Delete withdrawal
// @Description	Deletes a withdrawal and its linked expense transaction. Deleting an unknown ID is a no-op.
// @Tags			Withdrawals
// @Success		204
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the withdrawal"
// @Router			/v1/withdrawals/{id} [delete]
func DeleteWithdrawal(c *gin.Context) {
	err := models.DeleteWithdrawal(models.DB, c.Param("id"))
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	sync.Schedule()
	c.JSON(http.StatusNoContent, nil)
}

// currentReserve computes the reserve state from the full ledger.
func currentReserve() (accounting.Reserve, error) {
	transactions, err := models.Transactions(models.DB)
	if err != nil {
		return accounting.Reserve{}, err
	}

	investments, err := models.Investments(models.DB)
	if err != nil {
		return accounting.Reserve{}, err
	}

	withdrawals, err := models.Withdrawals(models.DB)
	if err != nil {
		return accounting.Reserve{}, err
	}

	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		return accounting.Reserve{}, err
	}

	return accounting.CostReserve(transactions, investments, withdrawals, settings.CostPercent), nil
}
