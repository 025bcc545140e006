package cafes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/database"
	"cafe-directory/internal/dto"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/model"
	"cafe-directory/internal/service"
	"cafe-directory/internal/store"
	"cafe-directory/internal/worker"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// EditFormHandler shows the cafe form prefilled from the stored row. The
// speciality field shows the cafe's current speciality, if any.
func EditFormHandler(db database.DB) echo.HandlerFunc {
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
		cities, err := store.ListCities(ctx, db)
		if err != nil {
			return err
		}

		form := dto.CafeRequest{
			Name:        cafe.Name,
			Description: cafe.Description,
			URL:         cafe.URL,
			Address:     cafe.Address,
			CityCode:    cafe.CityCode,
			ImageURL:    cafe.ImageURL,
		}
		if len(specialities) > 0 {
			form.Speciality = specialities[0].Name
		}

		return c.Render(http.StatusOK, "cafe/edit-form", map[string]any{
			"Cafe":   cafe,
			"Form":   form,
			"Cities": cities,
		})
	}
}

// EditHandler overwrites the cafe's mutable fields, wholesale-replaces its
// speciality set, and queues a fresh map fetch.
func EditHandler(db database.DB, cc cache.Cache, wp worker.Pool, maps *service.MapFetcher, log *zap.Logger) echo.HandlerFunc {
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

		var req dto.CafeRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			cities, lerr := store.ListCities(ctx, db)
			if lerr != nil {
				return lerr
			}
			return c.Render(http.StatusOK, "cafe/edit-form", map[string]any{
				"Cafe":   cafe,
				"Form":   req,
				"Cities": cities,
				"Errors": err.Error(),
			})
		}

		updated := &model.Cafe{
			ID:          cafeID,
			Name:        req.Name,
			Description: req.Description,
			URL:         req.URL,
			Address:     req.Address,
			CityCode:    req.CityCode,
			ImageURL:    req.ImageURL,
		}
		if err := store.UpdateCafe(ctx, db, updated, req.Speciality); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return echo.NewHTTPError(http.StatusNotFound)
			}
			if errors.Is(err, store.ErrDuplicate) {
				cities, lerr := store.ListCities(ctx, db)
				if lerr != nil {
					return lerr
				}
				return c.Render(http.StatusOK, "cafe/edit-form", map[string]any{
					"Cafe":   cafe,
					"Form":   req,
					"Cities": cities,
					"Errors": err.Error(),
				})
			}
			return err
		}

		submitMapFetch(ctx, db, wp, maps, log, cafeID)

		middleware.Flash(c, cc, "success", fmt.Sprintf("%s edited.", updated.Name))
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/cafes/%d", cafeID))
	}
}
