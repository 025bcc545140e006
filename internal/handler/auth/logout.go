package auth

import (
	"net/http"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler clears the session cookie. Logging out while not logged in
// flashes a warning instead of erroring.
func LogoutHandler(cc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if middleware.CurrentUser(c) == nil {
			middleware.Flash(c, cc, "danger", "Access unauthorized.")
			return c.Redirect(http.StatusSeeOther, "/")
		}
		middleware.ClearSessionCookie(c)
		middleware.Flash(c, cc, "success", "successfully logged out")
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
