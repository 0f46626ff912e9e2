package main

import (
	"net/http"

	"github.com/RBMarketing1011/restaunax/internal/middleware"
	"github.com/RBMarketing1011/restaunax/internal/services"

	"github.com/labstack/echo/v4"
)

type updateAccountRequest struct {
	Name string `json:"name"`
}

type addUserRequest struct {
	Email string `json:"email"`
}

type removeUserRequest struct {
	UserID string `json:"userId"`
}

func registerAccountRoutes(g *echo.Group, accountSvc *services.AccountService) {
	a := g.Group("/account")
	a.Use(middleware.JWTMiddleware())

	// All four operations are owner-gated in the service; handlers only move
	// bytes.

	a.PATCH("/update", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		req := new(updateAccountRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		if err := accountSvc.Rename(c.Request().Context(), claims.UserID, req.Name); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "account name updated successfully"})
	})

	a.POST("/add-user", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		req := new(addUserRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		if err := accountSvc.AddUser(c.Request().Context(), claims.UserID, req.Email); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "user added to account successfully"})
	})

	a.POST("/remove-user", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		req := new(removeUserRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		if err := accountSvc.RemoveUser(c.Request().Context(), claims.UserID, req.UserID); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "user removed from account successfully"})
	})

	a.DELETE("/delete", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		if err := accountSvc.Delete(c.Request().Context(), claims.UserID); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "account deleted successfully"})
	})
}
