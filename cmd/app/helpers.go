package main

import (
	"github.com/RBMarketing1011/restaunax/internal/apperr"

	"github.com/labstack/echo/v4"
)

// jsonError maps a service error to its HTTP status once, at the boundary.
// Unclassified errors are logged and surfaced as a generic 500.
func jsonError(c echo.Context, err error) error {
	if apperr.KindOf(err) == apperr.KindInternal {
		c.Logger().Error(err)
	}
	body := echo.Map{"error": apperr.Message(err)}
	if code := apperr.CodeOf(err); code != "" {
		body["code"] = code
	}
	return c.JSON(apperr.HTTPStatus(err), body)
}
