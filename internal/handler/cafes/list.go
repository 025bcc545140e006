package cafes

import (
	"net/http"

	"cafe-directory/internal/database"
	"cafe-directory/internal/store"

	"github.com/labstack/echo/v4"
)

// ListHandler shows every cafe ordered by name.
func ListHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cafes, err := store.ListCafes(c.Request().Context(), db)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "cafe/list", map[string]any{
			"Cafes": cafes,
		})
	}
}
