package main

import (
	"net/http"

	"github.com/RBMarketing1011/restaunax/internal/middleware"
	"github.com/RBMarketing1011/restaunax/internal/services"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// registerHandler handles unauthenticated signup: creates the user plus their
// owned account and sends the verification email.
func registerHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(registerRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid request",
			})
		}

		id, err := authSvc.Register(
			c.Request().Context(),
			req.Name,
			req.Email,
			req.Password,
		)
		if err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusCreated, echo.Map{
			"id":      id,
			"message": "registration successful, please check your email",
		})
	}
}

// checkCredentialsHandler verifies an email/password pair without issuing a
// session. 401 for any credential mismatch, 403 with a stable code when the
// pair is right but the email is unverified.
func checkCredentialsHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(credentialsRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid request",
			})
		}

		user, err := authSvc.CheckCredentials(
			c.Request().Context(),
			req.Email,
			req.Password,
		)
		if err != nil {
			return jsonError(c, err)
		}

		return c.JSON(http.StatusOK, echo.Map{
			"success":   true,
			"id":        user.ID,
			"email":     user.Email,
			"name":      user.Name,
			"accountId": user.AccountID,
		})
	}
}

func loginHandler(authSvc *services.AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := new(credentialsRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid request",
			})
		}

		user, err := authSvc.CheckCredentials(
			c.Request().Context(),
			req.Email,
			req.Password,
		)
		if err != nil {
			return jsonError(c, err)
		}

		accountID := ""
		if user.AccountID != nil {
			accountID = *user.AccountID
		}
		token, err := middleware.GenerateToken(user.ID, user.Email, accountID, 24)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "could not create token",
			})
		}

		return c.JSON(http.StatusOK, echo.Map{
			"token": token,
			"user": echo.Map{
				"id":        user.ID,
				"name":      user.Name,
				"email":     user.Email,
				"accountId": user.AccountID,
			},
		})
	}
}

// meHandler returns the authenticated user's info from the token
func meHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"id":        claims.UserID,
			"email":     claims.Email,
			"accountId": claims.AccountID,
			"exp":       claims.ExpiresAt,
		})
	}
}

func registerAuthRoutes(g *echo.Group, authSvc *services.AuthService) {
	auth := g.Group("/auth")

	// public
	auth.POST("/register", registerHandler(authSvc))
	auth.POST("/login", loginHandler(authSvc))
	auth.POST("/check-credentials", checkCredentialsHandler(authSvc))
	auth.GET("/verify-email", verifyEmailHandler(authSvc))

	// authenticated
	protected := auth.Group("")
	protected.Use(middleware.JWTMiddleware())
	protected.GET("/me", meHandler())
}
