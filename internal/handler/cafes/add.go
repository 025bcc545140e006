package cafes

import (
	"context"
	"errors"
	"fmt"
	"net/http"

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

// AddFormHandler shows the empty cafe form with the city choices.
func AddFormHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cities, err := store.ListCities(c.Request().Context(), db)
		if err != nil {
			return err
		}
		return c.Render(http.StatusOK, "cafe/add-form", map[string]any{
			"Form":   dto.CafeRequest{},
			"Cities": cities,
		})
	}
}

// AddHandler creates the cafe (with its optional single speciality) and
// queues a best-effort map-image fetch.
func AddHandler(db database.DB, cc cache.Cache, wp worker.Pool, maps *service.MapFetcher, log *zap.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var req dto.CafeRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
		}
		if err := c.Validate(&req); err != nil {
			cities, lerr := store.ListCities(ctx, db)
			if lerr != nil {
				return lerr
			}
			return c.Render(http.StatusOK, "cafe/add-form", map[string]any{
				"Form":   req,
				"Cities": cities,
				"Errors": err.Error(),
			})
		}

		cafe := &model.Cafe{
			Name:        req.Name,
			Description: req.Description,
			URL:         req.URL,
			Address:     req.Address,
			CityCode:    req.CityCode,
			ImageURL:    req.ImageURL,
		}
		created, err := store.CreateCafe(ctx, db, cafe, req.Speciality)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrDuplicate) {
				cities, lerr := store.ListCities(ctx, db)
				if lerr != nil {
					return lerr
				}
				return c.Render(http.StatusOK, "cafe/add-form", map[string]any{
					"Form":   req,
					"Cities": cities,
					"Errors": err.Error(),
				})
			}
			return err
		}

		submitMapFetch(ctx, db, wp, maps, log, created.ID)

		middleware.Flash(c, cc, "success", fmt.Sprintf("%s added.", created.Name))
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/cafes/%d", created.ID))
	}
}

// submitMapFetch queues a static-map download for the cafe. The cafe row is
// already committed; a failed fetch is logged and the cafe keeps its
// previous image.
func submitMapFetch(ctx context.Context, db database.DB, wp worker.Pool, maps *service.MapFetcher, log *zap.Logger, cafeID int) {
	cafe, err := store.GetCafe(ctx, db, cafeID)
	if err != nil {
		log.Warn("map fetch skipped", zap.Int("cafe_id", cafeID), zap.Error(err))
		return
	}
	address, city, state := cafe.Address, cafe.City.Name, cafe.City.State
	wp.Submit(func(ctx context.Context) {
		if err := maps.FetchAndStore(ctx, cafeID, address, city, state); err != nil {
			log.Warn("map fetch failed", zap.Int("cafe_id", cafeID), zap.Error(err))
		}
	})
}
