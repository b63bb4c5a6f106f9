package controller

import (
	"github.com/labstack/echo/v4"
)

// baseURL is the scheme and host the request was addressed to.
func baseURL(c echo.Context) string {
	return c.Scheme() + "://" + c.Request().Host
}
