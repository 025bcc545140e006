package likes

import (
	"net/http"
	"strconv"

	"cafe-directory/internal/database"
	"cafe-directory/internal/dto"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/store"

	"github.com/labstack/echo/v4"
)

const notLoggedInMsg = "Not logged in"

// StatusHandler reports whether the current user likes a cafe
// @Summary     Like status
// @Description Returns whether the logged-in user has liked the cafe
// @Tags        likes
// @Produce     json
// @Param       cafe_id query int true "Cafe ID"
// @Success     200 {object} dto.LikesResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /api/likes [get]
func StatusHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.CurrentUser(c)
		if claims == nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: notLoggedInMsg})
		}

		cafeID, err := strconv.Atoi(c.QueryParam("cafe_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Error: "invalid cafe_id"})
		}

		liked, err := store.HasLiked(c.Request().Context(), db, claims.UserID, cafeID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.LikesResponse{Likes: liked})
	}
}
