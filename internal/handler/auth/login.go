package auth

import (
	"fmt"
	"net/http"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/database"
	"cafe-directory/internal/dto"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/service"

	"github.com/labstack/echo/v4"
)

// LoginFormHandler shows the login form.
func LoginFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "auth/login-form", map[string]any{
			"Form": dto.LoginRequest{},
		})
	}
}

// LoginHandler authenticates and sets the session cookie. Unknown username
// and wrong password surface identically as "Invalid credentials".
func LoginHandler(db database.DB, cc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req dto.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.Render(http.StatusBadRequest, "auth/login-form", map[string]any{
				"Form":   req,
				"Errors": "invalid form data",
			})
		}
		if err := c.Validate(&req); err != nil {
			return c.Render(http.StatusOK, "auth/login-form", map[string]any{
				"Form":   req,
				"Errors": err.Error(),
			})
		}

		user, err := service.Authenticate(c.Request().Context(), db, req.Username, req.Password)
		if err != nil {
			return err
		}
		if user == nil {
			middleware.Flash(c, cc, "danger", "Invalid credentials")
			return c.Render(http.StatusOK, "auth/login-form", map[string]any{
				"Form": req,
			})
		}

		token, err := service.IssueSessionToken(*user, sessionTTL)
		if err != nil {
			return err
		}
		middleware.SetSessionCookie(c, token)
		middleware.Flash(c, cc, "success", fmt.Sprintf("Hello, %s!", user.Username))
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
