package handler

import (
	"net/http"

	"cafe-directory/internal/database"
	"cafe-directory/internal/store"

	"github.com/labstack/echo/v4"
)

// SearchHandler runs the substring search over cafe names and speciality
// names. An empty query lists every cafe and matches no speciality.
func SearchHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		q := c.QueryParam("q")

		cafes, err := store.SearchCafes(ctx, db, q)
		if err != nil {
			return err
		}
		specialities, err := store.SearchSpecialities(ctx, db, q)
		if err != nil {
			return err
		}

		return c.Render(http.StatusOK, "search/results", map[string]any{
			"Query":        q,
			"Cafes":        cafes,
			"Specialities": specialities,
		})
	}
}
