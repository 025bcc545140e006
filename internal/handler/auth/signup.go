package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/database"
	"cafe-directory/internal/dto"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/model"
	"cafe-directory/internal/service"
	"cafe-directory/internal/store"

	"github.com/labstack/echo/v4"
)

const sessionTTL = 24 * time.Hour

// SignupFormHandler shows the signup form. Visiting it logs out any
// existing session first, matching the signup flow's fresh-start rule.
func SignupFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		middleware.ClearSessionCookie(c)
		return c.Render(http.StatusOK, "auth/signup-form", map[string]any{
			"Form": dto.SignupRequest{},
		})
	}
}

// SignupHandler creates the account, hashes the password, and auto-logs-in.
// A taken username or email re-presents the form with a flashed message.
func SignupHandler(db database.DB, cc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		middleware.ClearSessionCookie(c)

		var req dto.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.Render(http.StatusBadRequest, "auth/signup-form", map[string]any{
				"Form":   req,
				"Errors": "invalid form data",
			})
		}
		if err := c.Validate(&req); err != nil {
			return c.Render(http.StatusOK, "auth/signup-form", map[string]any{
				"Form":   req,
				"Errors": err.Error(),
			})
		}

		req.Email = strings.ToLower(req.Email)

		hash, err := service.HashPassword(req.Password)
		if err != nil {
			return err
		}

		user := &model.User{
			Username:    req.Username,
			Email:       req.Email,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			Admin:       false,
			Password:    hash,
		}

		created, err := store.CreateUser(c.Request().Context(), db, user)
		if err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				middleware.Flash(c, cc, "danger", "Username already taken")
				return c.Render(http.StatusOK, "auth/signup-form", map[string]any{
					"Form": req,
				})
			}
			return err
		}

		token, err := service.IssueSessionToken(*created, sessionTTL)
		if err != nil {
			return err
		}
		middleware.SetSessionCookie(c, token)
		middleware.Flash(c, cc, "success", "You are signed up and logged in.")
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
