package profile

import (
	"errors"
	"net/http"
	"strings"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/database"
	"cafe-directory/internal/dto"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/store"

	"github.com/labstack/echo/v4"
)

// EditFormHandler shows the profile form prefilled with the stored fields.
func EditFormHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentUser(c)

		user, err := store.GetUserByID(c.Request().Context(), db, claims.UserID)
		if err != nil {
			return err
		}

		return c.Render(http.StatusOK, "profile/edit-form", map[string]any{
			"Form": dto.ProfileEditRequest{
				FirstName:   user.FirstName,
				LastName:    user.LastName,
				Description: user.Description,
				Email:       user.Email,
				ImageURL:    user.ImageURL,
			},
		})
	}
}

// EditHandler overwrites the current user's profile fields. A blank image
// URL falls back to the default placeholder; no password change here.
func EditHandler(db database.DB, cc cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentUser(c)
		ctx := c.Request().Context()

		var req dto.ProfileEditRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			return c.Render(http.StatusOK, "profile/edit-form", map[string]any{
				"Form":   req,
				"Errors": err.Error(),
			})
		}

		user, err := store.GetUserByID(ctx, db, claims.UserID)
		if err != nil {
			return err
		}

		user.FirstName = req.FirstName
		user.LastName = req.LastName
		user.Description = req.Description
		user.Email = strings.ToLower(req.Email)
		user.ImageURL = req.ImageURL

		if err := store.UpdateUserProfile(ctx, db, user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				middleware.Flash(c, cc, "danger", "E-mail already taken")
				return c.Render(http.StatusOK, "profile/edit-form", map[string]any{
					"Form": req,
				})
			}
			return err
		}

		middleware.Flash(c, cc, "success", "Profile edited.")
		return c.Redirect(http.StatusSeeOther, "/profile")
	}
}
