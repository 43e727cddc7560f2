// Package v1 implements the ledger API.
package v1

import (
	"github.com/familybiz/backend/internal/bridge"
	"github.com/familybiz/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// sync is the bridge pushing the ledger to the cloud after mutations.
// It is nil when sync is disabled, which the bridge handles itself.
var sync *bridge.Bridge

// RegisterRoutes registers the ledger API on the passed group.
func RegisterRoutes(r *gin.RouterGroup, b *bridge.Bridge) {
	sync = b

	r.OPTIONS("", OptionsRoot)
	r.GET("", GetRoot)
	r.DELETE("", Cleanup)

	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterInvestmentRoutes(r.Group("/investments"))
	RegisterWithdrawalRoutes(r.Group("/withdrawals"))
	RegisterSettingsRoutes(r.Group("/settings"))
	RegisterCategoryRoutes(r.Group("/categories"))
	RegisterReportRoutes(r.Group("/reports"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Transactions string `json:"transactions" example:"/v1/transactions"`
	Investments  string `json:"investments" example:"/v1/investments"`
	Withdrawals  string `json:"withdrawals" example:"/v1/withdrawals"`
	Settings     string `json:"settings" example:"/v1/settings"`
	Categories   string `json:"categories" example:"/v1/categories"`
	Reports      string `json:"reports" example:"/v1/reports"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		v1 API
// @Description	Entrypoint for the v1 API with links to all endpoints
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	c.JSON(200, RootResponse{
		Links: RootLinks{
			Transactions: "/v1/transactions",
			Investments:  "/v1/investments",
			Withdrawals:  "/v1/withdrawals",
			Settings:     "/v1/settings",
			Categories:   "/v1/categories",
			Reports:      "/v1/reports",
		},
	})
}
