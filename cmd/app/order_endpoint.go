package main

import (
	"net/http"

	"github.com/RBMarketing1011/restaunax/internal/middleware"
	"github.com/RBMarketing1011/restaunax/internal/model"
	"github.com/RBMarketing1011/restaunax/internal/services"

	"github.com/labstack/echo/v4"
)

type updateStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func registerOrderRoutes(g *echo.Group, orderSvc *services.OrderService) {
	o := g.Group("/orders")
	o.Use(middleware.JWTMiddleware())

	// Every response carries demoMode so the UI can warn that changes are not
	// durable while the store is down.

	o.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		orders, demoMode, err := orderSvc.List(c.Request().Context(), claims.AccountID)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"orders":   orders,
			"demoMode": demoMode,
		})
	})

	o.GET("/grouped", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		buckets, demoMode, err := orderSvc.Grouped(c.Request().Context(), claims.AccountID)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"orders":   buckets,
			"demoMode": demoMode,
		})
	})

	o.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		var in services.CreateOrderInput
		if err := c.Bind(&in); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		order, demoMode, err := orderSvc.Create(c.Request().Context(), claims.AccountID, in)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"order":    order,
			"demoMode": demoMode,
		})
	})

	o.PATCH("/:id/status", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		req := new(updateStatusRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		order, demoMode, err := orderSvc.Advance(c.Request().Context(), claims.AccountID, c.Param("id"), req.Status)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"order":    order,
			"demoMode": demoMode,
		})
	})
}
