package likes

import (
	"errors"
	"net/http"

	"cafe-directory/internal/database"
	"cafe-directory/internal/dto"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/store"

	"github.com/labstack/echo/v4"
)

// LikeHandler makes the current user like a cafe
// @Summary     Like a cafe
// @Description Records a like for the logged-in user; liking twice is a no-op
// @Tags        likes
// @Accept      json
// @Produce     json
// @Param       body body dto.LikeRequest true "Cafe to like"
// @Success     200 {object} dto.LikedResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /api/like [post]
func LikeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentUser(c)
		if claims == nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: notLoggedInMsg})
		}

		var req dto.LikeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: err.Error()})
		}

		err := store.AddLike(c.Request().Context(), db, claims.UserID, req.CafeID)
		switch {
		case err == nil, errors.Is(err, store.ErrAlreadyLiked):
			// An existing like keeps the endpoint idempotent.
			return c.JSON(http.StatusOK, dto.LikedResponse{Liked: req.CafeID})
		case errors.Is(err, store.ErrNotFound):
			return c.JSON(http.StatusNotFound, dto.HTTPError{Error: "Not found"})
		default:
			return err
		}
	}
}
