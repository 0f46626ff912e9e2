package main

import (
	"net/http"

	"github.com/RBMarketing1011/restaunax/internal/config"
	"github.com/RBMarketing1011/restaunax/internal/services"

	"github.com/labstack/echo/v4"
)

// registerDevRoutes wires the reset/reseed endpoint. Hard-disabled in
// production regardless of who is asking.
func registerDevRoutes(g *echo.Group, devSvc *services.DevService, cfg *config.Config) {
	g.GET("/dev/reset-db", func(c echo.Context) error {
		if cfg.IsProduction() {
			return c.JSON(http.StatusForbidden, echo.Map{
				"message": "database reset is not allowed in production",
			})
		}

		accountID := c.QueryParam("accountId")
		msg, created, err := devSvc.Reset(c.Request().Context(), accountID)
		if err != nil {
			return jsonError(c, err)
		}

		resp := echo.Map{"message": msg}
		if accountID != "" {
			resp["accountId"] = accountID
			resp["ordersCreated"] = created
		}
		return c.JSON(http.StatusOK, resp)
	})
}
