package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeHandler renders the homepage.
func HomeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "homepage", nil)
	}
}
