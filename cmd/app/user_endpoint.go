package main

import (
	"net/http"

	"github.com/RBMarketing1011/restaunax/internal/middleware"
	"github.com/RBMarketing1011/restaunax/internal/services"

	"github.com/labstack/echo/v4"
)

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func getProfileHandler(userSvc *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		profile, err := userSvc.Profile(c.Request().Context(), claims.UserID)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, profile)
	}
}

func updateProfileHandler(userSvc *services.UserService) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}

		req := new(updateProfileRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}

		msg, err := userSvc.UpdateProfile(c.Request().Context(), claims.UserID, req.Name, req.Email)
		if err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": msg})
	}
}

func registerUserRoutes(g *echo.Group, userSvc *services.UserService) {
	u := g.Group("/user")
	u.Use(middleware.JWTMiddleware())

	u.GET("/profile", getProfileHandler(userSvc))
	u.PATCH("/profile", updateProfileHandler(userSvc))
}
