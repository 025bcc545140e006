package cafes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/database"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/store"

	"github.com/labstack/echo/v4"
)

// DeleteHandler removes the cafe along with its likes and specialities.
func DeleteHandler(db database.DB, cc cache.Cache) echo.HandlerFunc {
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

		if err := store.DeleteCafe(ctx, db, cafeID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound)
			}
			return err
		}

		middleware.Flash(c, cc, "success", fmt.Sprintf("%s deleted.", cafe.Name))
		return c.Redirect(http.StatusSeeOther, "/cafes")
	}
}
