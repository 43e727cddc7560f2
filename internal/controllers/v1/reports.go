package v1

import (
	"net/http"
	"time"

	"github.com/familybiz/backend/internal/accounting"
	"github.com/familybiz/backend/internal/httputil"
	"github.com/familybiz/backend/internal/models"
	"github.com/familybiz/backend/internal/money"
	"github.com/familybiz/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OverviewResponse struct {
	Data  *accounting.Overview `json:"data"`  // The investment-ownership split
	Error *string              `json:"error"` // The error, if any occurred
}

type Summary struct {
	accounting.Summary
	Display DisplayAmounts `json:"display"` // Formatted amounts for the dashboard
}

type DisplayAmounts struct {
	Income    string `json:"income" example:"1,000.00"`
	Expense   string `json:"expense" example:"250.00"`
	NetProfit string `json:"netProfit" example:"750.00"`
}

type SummaryResponse struct {
	Data  *Summary `json:"data"`  // The monthly aggregates
	Error *string  `json:"error"` // The error, if any occurred
}

type ReserveResponse struct {
	Data  *Reserve `json:"data"`  // The state of the cost reserve
	Error *string  `json:"error"` // The error, if any occurred
}

type Reserve struct {
	accounting.Reserve
	DisplayBalance string `json:"displayBalance" example:"1,150.00"` // Formatted balance for the dashboard
}

type DistributionResponse struct {
	Data  *accounting.Distribution `json:"data"`  // The profit-sharing result
	Error *string                  `json:"error"` // The error, if any occurred
}

type DividendsResponse struct {
	Data  *accounting.Dividends `json:"data"`  // The dividend payout calculation
	Error *string               `json:"error"` // The error, if any occurred
}

func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/overview", httputil.OptionsGet)
	r.GET("/overview", GetOverview)

	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", GetSummary)

	r.OPTIONS("/cost-reserve", httputil.OptionsGet)
	r.GET("/cost-reserve", GetCostReserve)

	r.OPTIONS("/profit-share", httputil.OptionsGet)
	r.GET("/profit-share", GetProfitShare)

	r.OPTIONS("/dividends", httputil.OptionsGet)
	r.GET("/dividends", GetDividends)
}

// @Summary		Investment overview
// @Description	Returns the investment-ownership split between the stakeholders
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	OverviewResponse
// @Failure		500	{object}	OverviewResponse
// @Router			/v1/reports/overview [get]
func GetOverview(c *gin.Context) {
	investments, err := models.Investments(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OverviewResponse{Error: &e})
		return
	}

	overview := accounting.InvestmentOverview(accounting.DefaultStakeholders(), investments)
	c.JSON(http.StatusOK, OverviewResponse{Data: &overview})
}

// @Summary		Monthly summary
// @Description	Returns income, expenses and net profit of a calendar month. Defaults to the current month.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			month	query		string	false	"The month, YYYY-MM. Defaults to the current month."
// @Router			/v1/reports/summary [get]
func GetSummary(c *gin.Context) {
	month := types.MonthOf(time.Now())
	if query := c.Query("month"); query != "" {
		parsed, err := types.ParseMonth(query)
		if err != nil {
			e := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, SummaryResponse{Error: &e})
			return
		}
		month = parsed
	}

	transactions, err := models.Transactions(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	investments, err := models.Investments(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	summary := accounting.MonthlySummary(transactions, investments, month)
	c.JSON(http.StatusOK, SummaryResponse{Data: &Summary{
		Summary: summary,
		Display: DisplayAmounts{
			Income:    money.Format(summary.Income),
			Expense:   money.Format(summary.Expense),
			NetProfit: money.Format(summary.NetProfit),
		},
	}})
}

// @Summary		Cost reserve
// @Description	Returns the state of the cost reserve. The balance is not clamped and may be negative.
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReserveResponse
// @Failure		500	{object}	ReserveResponse
// @Router			/v1/reports/cost-reserve [get]
func GetCostReserve(c *gin.Context) {
	reserve, err := currentReserve()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReserveResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ReserveResponse{Data: &Reserve{
		Reserve:        reserve,
		DisplayBalance: money.Format(reserve.Balance),
	}})
}

// @Summary		Profit share
// @Description	Returns the profit distribution between the stakeholders, over the full history or one calendar month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	DistributionResponse
// @Failure		400		{object}	DistributionResponse
// @Failure		500		{object}	DistributionResponse
// @Param			month	query		string	false	"Restrict to this calendar month, YYYY-MM. Defaults to the full history."
// @Router			/v1/reports/profit-share [get]
func GetProfitShare(c *gin.Context) {
	var month *types.Month
	if query := c.Query("month"); query != "" {
		parsed, err := types.ParseMonth(query)
		if err != nil {
			e := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, DistributionResponse{Error: &e})
			return
		}
		month = &parsed
	}

	transactions, err := models.Transactions(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DistributionResponse{Error: &e})
		return
	}

	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DistributionResponse{Error: &e})
		return
	}

	distribution := accounting.ProfitShare(transactions, accounting.ConfigFromSettings(settings), month)
	c.JSON(http.StatusOK, DistributionResponse{Data: &distribution})
}

// @Summary		Dividends
// @Description	Calculates the dividend payout for a profit figure: the cost buffer is retained, the remainder is split by investment-ownership share. Without a profit parameter the net profit of the full history is used.
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	DividendsResponse
// @Failure		400		{object}	DividendsResponse
// @Failure		500		{object}	DividendsResponse
// @Param			profit	query		string	false	"The profit to distribute"
// @Router			/v1/reports/dividends [get]
func GetDividends(c *gin.Context) {
	transactions, err := models.Transactions(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DividendsResponse{Error: &e})
		return
	}

	investments, err := models.Investments(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DividendsResponse{Error: &e})
		return
	}

	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DividendsResponse{Error: &e})
		return
	}

	profit := accounting.ProfitShare(transactions, accounting.ConfigFromSettings(settings), nil).NetProfit
	if query := c.Query("profit"); query != "" {
		parsed, parseErr := decimal.NewFromString(query)
		if parseErr != nil {
			e := parseErr.Error()
			c.JSON(http.StatusBadRequest, DividendsResponse{Error: &e})
			return
		}
		profit = parsed
	}

	overview := accounting.InvestmentOverview(accounting.DefaultStakeholders(), investments)
	dividends := accounting.CalculateDividends(profit, settings.CostPercent, overview)
	c.JSON(http.StatusOK, DividendsResponse{Data: &dividends})
}
