package profile

import (
	"net/http"

	"cafe-directory/internal/database"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/store"

	"github.com/labstack/echo/v4"
)

// DetailHandler shows the current user's profile and liked cafes.
func DetailHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentUser(c)
		ctx := c.Request().Context()

		user, err := store.GetUserByID(ctx, db, claims.UserID)
		if err != nil {
			return err
		}
		likedCafes, err := store.ListLikedCafes(ctx, db, claims.UserID)
		if err != nil {
			return err
		}

		return c.Render(http.StatusOK, "profile/detail", map[string]any{
			"Profile":    user,
			"LikedCafes": likedCafes,
		})
	}
}
