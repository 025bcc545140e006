package cafes

import (
	"errors"
	"net/http"
	"strconv"

	"cafe-directory/internal/database"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/store"

	"github.com/labstack/echo/v4"
)

// DetailHandler shows one cafe with its specialities and the liked flag for
// the current user.
func DetailHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cafeID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		ctx := c.Request().Context()

		cafe, err := store.GetCafe(ctx, db, cafeID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound)
			}
			return err
		}

		specialities, err := store.ListSpecialities(ctx, db, cafeID)
		if err != nil {
			return err
		}

		liked := false
		if claims := middleware.CurrentUser(c); claims != nil {
			liked, err = store.HasLiked(ctx, db, claims.UserID, cafeID)
			if err != nil {
				return err
			}
		}

		return c.Render(http.StatusOK, "cafe/detail", map[string]any{
			"Cafe":         cafe,
			"Specialities": specialities,
			"Liked":        liked,
		})
	}
}
