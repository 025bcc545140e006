package router

import (
	"net/http"
	"strings"

	"cafe-directory/internal/cache"
	"cafe-directory/internal/database"
	"cafe-directory/internal/dto"
	"cafe-directory/internal/handler"
	"cafe-directory/internal/handler/auth"
	"cafe-directory/internal/handler/cafes"
	"cafe-directory/internal/handler/likes"
	"cafe-directory/internal/handler/profile"
	"cafe-directory/internal/middleware"
	"cafe-directory/internal/service"
	"cafe-directory/internal/worker"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Setup registers every route. Middleware that applies to all routes
// (visitor id, session loading, CSRF, logging) is installed by the caller.
func Setup(e *echo.Echo, db database.DB, cc cache.Cache, wp worker.Pool, maps *service.MapFetcher, log *zap.Logger) {
	requireLogin := middleware.RequireLogin(cc)
	requireAdmin := middleware.RequireAdmin(cc)

	e.GET("/", handler.HomeHandler())

	e.GET("/signup", auth.SignupFormHandler())
	e.POST("/signup", auth.SignupHandler(db, cc))
	e.GET("/login", auth.LoginFormHandler())
	e.POST("/login", auth.LoginHandler(db, cc))
	e.POST("/logout", auth.LogoutHandler(cc))

	e.GET("/cafes", cafes.ListHandler(db), requireLogin)
	e.GET("/cafes/add", cafes.AddFormHandler(db), requireAdmin)
	e.POST("/cafes/add", cafes.AddHandler(db, cc, wp, maps, log), requireAdmin)
	e.GET("/cafes/:id", cafes.DetailHandler(db), requireLogin)
	e.GET("/cafes/:id/edit", cafes.EditFormHandler(db), requireAdmin)
	e.POST("/cafes/:id/edit", cafes.EditHandler(db, cc, wp, maps, log), requireAdmin)
	e.POST("/cafes/:id/delete", cafes.DeleteHandler(db, cc), requireAdmin)

	e.GET("/search", handler.SearchHandler(db), requireLogin)

	e.GET("/profile", profile.DetailHandler(db), requireLogin)
	e.GET("/profile/edit", profile.EditFormHandler(db), requireLogin)
	e.POST("/profile/edit", profile.EditHandler(db, cc), requireLogin)

	api := e.Group("/api")
	api.GET("/likes", likes.StatusHandler(db))
	api.POST("/like", likes.LikeHandler(db))
	api.POST("/unlike", likes.UnlikeHandler(db))
}

// NewHTTPErrorHandler renders the 404 and 500 pages for web routes and JSON
// bodies for the API; unexpected errors are logged before surfacing as 500.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		if code >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
			)
		}

		if strings.HasPrefix(c.Request().URL.Path, "/api/") {
			_ = c.JSON(code, dto.HTTPError{Error: http.StatusText(code)})
			return
		}

		name := "error"
		if code == http.StatusNotFound {
			name = "404"
		}
		if rerr := c.Render(code, name, nil); rerr != nil {
			_ = c.String(code, http.StatusText(code))
		}
	}
}
