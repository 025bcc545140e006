package likes

import (
	"net/http"

	"cafe-directory/internal/database"
	"cafe-directory/internal/dto"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/store"

	"github.com/labstack/echo/v4"
)

// UnlikeHandler makes the current user unlike a cafe
// @Summary     Unlike a cafe
// @Description Removes the like; unliking a cafe that was never liked is a no-op
// @Tags        likes
// @Accept      json
// @Produce     json
// @Param       body body dto.LikeRequest true "Cafe to unlike"
// @Success     200 {object} dto.UnlikedResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /api/unlike [post]
func UnlikeHandler(db database.DB) echo.HandlerFunc {
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

		if err := store.RemoveLike(c.Request().Context(), db, claims.UserID, req.CafeID); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.UnlikedResponse{Unliked: req.CafeID})
	}
}
